// Package export renders a generated exam to its output formats: PDF
// (question paper and answer key), JSON, and plain text.
package export

import (
	"io"
	"strings"

	"github.com/attafarid/studyai/internal/examgen"
)

// Renderer writes an exam in one output format.
type Renderer interface {
	Render(w io.Writer, exam *examgen.GeneratedExam, cfg examgen.ExamConfig) error
}

// Filename derives a file-safe base name from the exam name: runs of
// whitespace collapse to single underscores. Empty names fall back to
// "exam".
func Filename(examName string) string {
	fields := strings.Fields(examName)
	if len(fields) == 0 {
		return "exam"
	}
	return strings.Join(fields, "_")
}
