package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/attafarid/studyai/internal/examgen"
	"github.com/attafarid/studyai/internal/settings"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the persisted exam configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current exam configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		fmt.Printf("Exam name:         %s\n", cfg.ExamName)
		fmt.Printf("Subtitle:          %s\n", cfg.Subtitle)
		fmt.Printf("Difficulty:        %s\n", cfg.Difficulty)
		fmt.Printf("Topic focus:       %s\n", orDash(cfg.TopicFocus))
		fmt.Println()
		fmt.Printf("MCQ:               %d\n", cfg.MCQCount)
		fmt.Printf("Short answer:      %d\n", cfg.ShortCount)
		fmt.Printf("Essay:             %d\n", cfg.EssayCount)
		fmt.Printf("Long answer:       %d\n", cfg.LongAnswerCount)
		fmt.Printf("True/False:        %d\n", cfg.TFCount)
		fmt.Printf("Fill in the blank: %d\n", cfg.FillCount)
		fmt.Printf("Matching:          %d\n", cfg.MatchingCount)
		fmt.Printf("Total:             %d\n", cfg.TotalQuestions())
		fmt.Println()
		fmt.Printf("Font theme:        %s\n", cfg.PDFFontTheme)
		fmt.Printf("Header font size:  %d\n", cfg.HeaderFontSize)
		fmt.Printf("Show logo:         %v\n", cfg.ShowLogo)
		fmt.Printf("Student name line: %v\n", cfg.StudentNameLine)
		fmt.Printf("Watermark:         %s (opacity %.2f)\n", orDash(cfg.WatermarkText), cfg.WatermarkOpacity)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change and persist exam configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		applyStyleFlags(cmd, &cfg)
		cfg = cfg.Normalized()

		if err := repo.SaveConfig(ctx, cfg); err != nil {
			return err
		}
		fmt.Println("Configuration saved.")
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default exam configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		repo, err := settings.NewRepo(s.DB())
		if err != nil {
			return err
		}
		if err := repo.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Configuration reset to defaults.")
		return nil
	},
}

// applyStyleFlags overlays the presentation flags onto cfg. Only flags
// the user actually set are applied.
func applyStyleFlags(cmd *cobra.Command, cfg *examgen.ExamConfig) {
	flags := cmd.Flags()

	if flags.Changed("subtitle") {
		cfg.Subtitle, _ = flags.GetString("subtitle")
	}
	if flags.Changed("watermark") {
		cfg.WatermarkText, _ = flags.GetString("watermark")
	}
	if flags.Changed("watermark-opacity") {
		cfg.WatermarkOpacity, _ = flags.GetFloat64("watermark-opacity")
	}
	if flags.Changed("header-size") {
		cfg.HeaderFontSize, _ = flags.GetInt("header-size")
	}
	if flags.Changed("theme") {
		t, _ := flags.GetString("theme")
		cfg.PDFFontTheme = examgen.FontTheme(t)
	}
	if flags.Changed("logo") {
		cfg.ShowLogo, _ = flags.GetBool("logo")
	}
	if flags.Changed("student-line") {
		cfg.StudentNameLine, _ = flags.GetBool("student-line")
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	configSetCmd.Flags().Int("mcq", 0, "Number of multiple choice questions")
	configSetCmd.Flags().Int("short", 0, "Number of short answer questions")
	configSetCmd.Flags().Int("essay", 0, "Number of essay questions")
	configSetCmd.Flags().Int("long", 0, "Number of long answer questions")
	configSetCmd.Flags().Int("tf", 0, "Number of true/false questions")
	configSetCmd.Flags().Int("fill", 0, "Number of fill-in-the-blank questions")
	configSetCmd.Flags().Int("matching", 0, "Number of matching questions")
	configSetCmd.Flags().String("difficulty", "", "Target difficulty: Simple, Medium, Hard, Conceptual, Important")
	configSetCmd.Flags().String("topic", "", "Specific topic focus within the source material")
	configSetCmd.Flags().String("name", "", "Exam name used in headers and filenames")
	configSetCmd.Flags().String("subtitle", "", "Subtitle shown under the exam name")
	configSetCmd.Flags().String("watermark", "", "Watermark text (empty disables)")
	configSetCmd.Flags().Float64("watermark-opacity", 0.1, "Watermark opacity in [0, 1]")
	configSetCmd.Flags().Int("header-size", 22, "Header font size in points")
	configSetCmd.Flags().String("theme", "", "PDF font theme: Modern, Classic, Elegant")
	configSetCmd.Flags().Bool("logo", true, "Show the Study.AI logo mark in the header")
	configSetCmd.Flags().Bool("student-line", true, "Include the Name/Score line")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
}
