package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/attafarid/studyai/internal/exam"
	"github.com/attafarid/studyai/internal/examgen"
	"github.com/attafarid/studyai/internal/export"
	"github.com/attafarid/studyai/internal/ingest"
	"github.com/attafarid/studyai/internal/llm"
	"github.com/attafarid/studyai/internal/settings"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an exam from source documents",
	Long: "Reads the given source documents, asks the configured LLM to " +
		"produce an exam matching your settings, and writes the result as " +
		"JSON for later editing and export.",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, _ := cmd.Flags().GetStringArray("file")
		if len(paths) == 0 {
			return fmt.Errorf("at least one --file is required")
		}

		if err := checkGate(); err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()

		repo, err := settings.NewRepo(s.DB())
		if err != nil {
			return err
		}
		cfg, err := repo.LoadConfig(ctx)
		if err != nil {
			return err
		}
		applyConfigFlags(cmd, &cfg)

		if save, _ := cmd.Flags().GetBool("save-defaults"); save {
			if err := repo.SaveConfig(ctx, cfg); err != nil {
				return err
			}
		}

		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return err
		}

		loader := ingest.NewLoader(ingest.NewDocxExtractor())
		files, fileErrs := loader.Load(paths)
		for _, fe := range fileErrs {
			fmt.Fprintf(os.Stderr, "warning: %v\n", fe)
		}
		if len(files) == 0 {
			return fmt.Errorf("no readable source documents")
		}

		generator := examgen.New(provider, examgen.DefaultConfig())

		examStore := exam.NewStore()
		token := examStore.Begin()

		fmt.Fprintf(os.Stderr, "Generating %d questions from %d document(s)...\n",
			cfg.TotalQuestions(), len(files))

		generated, err := generator.Generate(ctx, files, cfg)
		if err != nil {
			return err
		}
		examStore.Replace(token, generated)

		outPath, _ := cmd.Flags().GetString("out")
		if outPath == "" {
			outPath = export.Filename(cfg.ExamName) + ".json"
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()

		if err := export.WriteJSON(f, examStore.Current()); err != nil {
			return err
		}

		fmt.Printf("Generated %d questions -> %s\n", len(generated.Questions), outPath)
		return nil
	},
}

// applyConfigFlags overlays explicitly set flags onto the persisted
// configuration. Unset flags leave the stored values alone.
func applyConfigFlags(cmd *cobra.Command, cfg *examgen.ExamConfig) {
	flags := cmd.Flags()

	if flags.Changed("mcq") {
		cfg.MCQCount, _ = flags.GetInt("mcq")
	}
	if flags.Changed("short") {
		cfg.ShortCount, _ = flags.GetInt("short")
	}
	if flags.Changed("essay") {
		cfg.EssayCount, _ = flags.GetInt("essay")
	}
	if flags.Changed("long") {
		cfg.LongAnswerCount, _ = flags.GetInt("long")
	}
	if flags.Changed("tf") {
		cfg.TFCount, _ = flags.GetInt("tf")
	}
	if flags.Changed("fill") {
		cfg.FillCount, _ = flags.GetInt("fill")
	}
	if flags.Changed("matching") {
		cfg.MatchingCount, _ = flags.GetInt("matching")
	}
	if flags.Changed("difficulty") {
		d, _ := flags.GetString("difficulty")
		cfg.Difficulty = examgen.Difficulty(d)
	}
	if flags.Changed("topic") {
		cfg.TopicFocus, _ = flags.GetString("topic")
	}
	if flags.Changed("name") {
		cfg.ExamName, _ = flags.GetString("name")
	}
}

func init() {
	generateCmd.Flags().StringArrayP("file", "f", nil, "Source document (repeatable): txt, md, docx, pdf, or image")
	generateCmd.Flags().Int("mcq", 0, "Number of multiple choice questions")
	generateCmd.Flags().Int("short", 0, "Number of short answer questions")
	generateCmd.Flags().Int("essay", 0, "Number of essay questions")
	generateCmd.Flags().Int("long", 0, "Number of long answer questions")
	generateCmd.Flags().Int("tf", 0, "Number of true/false questions")
	generateCmd.Flags().Int("fill", 0, "Number of fill-in-the-blank questions")
	generateCmd.Flags().Int("matching", 0, "Number of matching questions")
	generateCmd.Flags().String("difficulty", "", "Target difficulty: Simple, Medium, Hard, Conceptual, Important")
	generateCmd.Flags().String("topic", "", "Specific topic focus within the source material")
	generateCmd.Flags().String("name", "", "Exam name used in headers and filenames")
	generateCmd.Flags().StringP("out", "o", "", "Output JSON path (default derived from exam name)")
	generateCmd.Flags().Bool("save-defaults", false, "Persist the effective configuration as the new defaults")
}
