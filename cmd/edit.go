package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/attafarid/studyai/internal/exam"
	"github.com/attafarid/studyai/internal/export"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a saved exam in place",
	Long: "Modifies a generated exam JSON file: change question fields, " +
		"delete questions, or reorder them. Question numbers are 1-based, " +
		"matching the exported paper.",
}

var editSetCmd = &cobra.Command{
	Use:   "set <exam.json> <number> <field> <value>",
	Short: "Set a question field (question, answer, notes, difficulty, type, id)",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withExamFile(args[0], func(s *exam.Store) error {
			n, err := questionNumber(args[1], s.Len())
			if err != nil {
				return err
			}
			return s.UpdateField(n-1, args[2], args[3])
		})
	},
}

var editDeleteCmd = &cobra.Command{
	Use:   "delete <exam.json> <number>",
	Short: "Delete a question",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withExamFile(args[0], func(s *exam.Store) error {
			n, err := questionNumber(args[1], s.Len())
			if err != nil {
				return err
			}
			s.Delete(n - 1)
			return nil
		})
	},
}

var editMoveCmd = &cobra.Command{
	Use:   "move <exam.json> <number> <up|down>",
	Short: "Move a question up or down one position",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var dir int
		switch args[2] {
		case "up":
			dir = -1
		case "down":
			dir = 1
		default:
			return fmt.Errorf("direction must be 'up' or 'down', got %q", args[2])
		}

		return withExamFile(args[0], func(s *exam.Store) error {
			n, err := questionNumber(args[1], s.Len())
			if err != nil {
				return err
			}
			s.Move(n-1, dir)
			return nil
		})
	},
}

// withExamFile loads the exam into a store, runs fn, and writes the
// result back to the same path. The file is only rewritten when fn
// succeeds.
func withExamFile(path string, fn func(*exam.Store) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open exam file: %w", err)
	}
	loaded, err := export.ReadJSON(f)
	f.Close()
	if err != nil {
		return err
	}

	s := exam.NewStore()
	s.Replace(s.Begin(), loaded)

	if err := fn(s); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rewrite exam file: %w", err)
	}
	defer out.Close()

	return export.WriteJSON(out, s.Current())
}

func questionNumber(arg string, total int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid question number %q: %w", arg, err)
	}
	if n < 1 || n > total {
		return 0, fmt.Errorf("question number %d out of range (exam has %d)", n, total)
	}
	return n, nil
}

func init() {
	editCmd.AddCommand(editSetCmd)
	editCmd.AddCommand(editDeleteCmd)
	editCmd.AddCommand(editMoveCmd)
}
