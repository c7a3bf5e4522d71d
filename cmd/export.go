package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/attafarid/studyai/internal/export"
	"github.com/attafarid/studyai/internal/settings"
)

var exportCmd = &cobra.Command{
	Use:   "export <exam.json>",
	Short: "Export a saved exam as PDF, answer key, text, or JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if err := validateExportFormat(format); err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open exam file: %w", err)
		}
		exam, err := export.ReadJSON(f)
		f.Close()
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		repo, err := settings.NewRepo(s.DB())
		if err != nil {
			return err
		}
		cfg, err := repo.LoadConfig(cmd.Context())
		if err != nil {
			return err
		}
		if name, _ := cmd.Flags().GetString("name"); name != "" {
			cfg.ExamName = name
		}
		cfg = cfg.Normalized()

		outPath, _ := cmd.Flags().GetString("out")
		if outPath == "" {
			outPath = defaultExportPath(format, cfg.ExamName)
		}

		out, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()

		var renderer export.FPDFRenderer
		switch format {
		case "pdf":
			err = renderer.Render(out, exam, cfg)
		case "key":
			err = renderer.RenderAnswerKey(out, exam, cfg)
		case "txt":
			err = export.WriteText(out, exam, cfg)
		case "json":
			err = export.WriteJSON(out, exam)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", outPath)
		return nil
	},
}

// validateExportFormat rejects unknown formats up front, before the
// exam file is read or any output file is created.
func validateExportFormat(format string) error {
	switch format {
	case "pdf", "key", "txt", "json":
		return nil
	default:
		return fmt.Errorf("unknown format %q (want pdf, key, txt, or json)", format)
	}
}

// defaultExportPath derives an output filename from the exam name when
// --out is not given. The format is validated before this runs.
func defaultExportPath(format, examName string) string {
	base := export.Filename(examName)
	switch format {
	case "key":
		return base + "_answer_key.pdf"
	case "txt":
		return base + ".txt"
	case "json":
		return base + ".json"
	default:
		return base + ".pdf"
	}
}

func init() {
	exportCmd.Flags().String("format", "pdf", "Output format: pdf, key (answer key PDF), txt, json")
	exportCmd.Flags().String("name", "", "Override the exam name for this export")
	exportCmd.Flags().StringP("out", "o", "", "Output path (default derived from exam name and format)")
}
