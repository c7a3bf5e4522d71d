package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/attafarid/studyai/internal/examgen"
)

// WriteJSON writes the exam as indented JSON. The output round-trips
// through ReadJSON, so it doubles as the save format for later editing.
func WriteJSON(w io.Writer, exam *examgen.GeneratedExam) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(exam); err != nil {
		return fmt.Errorf("encode exam: %w", err)
	}
	return nil
}

// ReadJSON parses an exam previously written by WriteJSON.
func ReadJSON(r io.Reader) (*examgen.GeneratedExam, error) {
	var exam examgen.GeneratedExam
	if err := json.NewDecoder(r).Decode(&exam); err != nil {
		return nil, fmt.Errorf("decode exam: %w", err)
	}
	if exam.Questions == nil {
		exam.Questions = []examgen.Question{}
	}
	return &exam, nil
}
