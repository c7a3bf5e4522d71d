package export

import (
	"fmt"
	"io"

	"github.com/attafarid/studyai/internal/examgen"
)

// WriteText writes the exam as a plain numbered list: the exam name,
// then one "N. question" entry per question, each followed by a blank
// line. Options, answers, and notes are deliberately absent; the text
// form is a shareable question sheet, not a key.
func WriteText(w io.Writer, exam *examgen.GeneratedExam, cfg examgen.ExamConfig) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", cfg.ExamName); err != nil {
		return err
	}
	for i, q := range exam.Questions {
		if _, err := fmt.Fprintf(w, "%d. %s\n\n", i+1, q.Question); err != nil {
			return err
		}
	}
	return nil
}
