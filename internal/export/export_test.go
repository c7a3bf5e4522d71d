package export

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/attafarid/studyai/internal/examgen"
)

func sampleExam() *examgen.GeneratedExam {
	return &examgen.GeneratedExam{
		Timestamp: 1700000000000,
		Questions: []examgen.Question{
			{
				ID:         "q1",
				Type:       examgen.TypeMCQ,
				Question:   "Which planet is largest?",
				Options:    []string{"Mars", "Jupiter", "Venus", "Earth"},
				Answer:     "Jupiter",
				Difficulty: examgen.DifficultyMedium,
			},
			{
				ID:         "q2",
				Type:       examgen.TypeShortAnswer,
				Question:   "Define gravity.",
				Answer:     "The attractive force between masses.",
				Difficulty: examgen.DifficultySimple,
				Notes:      "Accept any mention of mass attraction.",
			},
			{
				ID:         "q3",
				Type:       examgen.TypeMatching,
				Question:   "Match the planet to its feature.",
				Difficulty: examgen.DifficultyMedium,
				Pairs: []examgen.Pair{
					{Left: "Mars", Right: "Red surface"},
					{Left: "Saturn", Right: "Prominent rings"},
				},
			},
			{
				ID:         "q4",
				Type:       examgen.TypeEssay,
				Question:   "Discuss planetary formation.",
				Difficulty: examgen.DifficultyHard,
			},
		},
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Final Examination", "Final_Examination"},
		{"  spaced   out  name ", "spaced_out_name"},
		{"single", "single"},
		{"", "exam"},
		{"   ", "exam"},
		{"tabs\tand\nnewlines", "tabs_and_newlines"},
	}
	for _, tt := range tests {
		if got := Filename(tt.in); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	want := sampleExam()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, want); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestReadJSONEmptyQuestions(t *testing.T) {
	got, err := ReadJSON(strings.NewReader(`{"timestamp": 1}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.Questions == nil {
		t.Error("missing questions should decode as empty slice, not nil")
	}
}

func TestWriteText(t *testing.T) {
	cfg := examgen.DefaultExamConfig()
	cfg.ExamName = "Astronomy Quiz"

	var buf bytes.Buffer
	if err := WriteText(&buf, sampleExam(), cfg); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "Astronomy Quiz\n\n") {
		t.Errorf("missing exam name header:\n%s", out)
	}
	if !strings.Contains(out, "1. Which planet is largest?\n\n2. Define gravity.") {
		t.Error("questions should be separated by a blank line")
	}
	if !strings.HasSuffix(out, "4. Discuss planetary formation.\n\n") {
		t.Error("missing numbered last question")
	}
	// The text sheet never reveals answers or choices.
	if strings.Contains(out, "Jupiter") {
		t.Error("text export leaked answer content")
	}
	if strings.Contains(out, "Accept any mention") {
		t.Error("text export leaked notes")
	}
}

func TestRenderPDF(t *testing.T) {
	cfg := examgen.DefaultExamConfig()
	cfg.ExamName = "Astronomy Quiz"
	cfg.Subtitle = "Unit 3"

	var renderer FPDFRenderer
	var buf bytes.Buffer
	if err := renderer.Render(&buf, sampleExam(), cfg); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
	if buf.Len() < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", buf.Len())
	}
}

func TestRenderPDFAllThemes(t *testing.T) {
	for _, theme := range []examgen.FontTheme{examgen.ThemeModern, examgen.ThemeClassic, examgen.ThemeElegant} {
		t.Run(string(theme), func(t *testing.T) {
			cfg := examgen.DefaultExamConfig()
			cfg.PDFFontTheme = theme

			var renderer FPDFRenderer
			var buf bytes.Buffer
			if err := renderer.Render(&buf, sampleExam(), cfg); err != nil {
				t.Fatalf("Render with theme %s: %v", theme, err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
				t.Error("output is not a PDF document")
			}
		})
	}
}

func TestRenderAnswerKey(t *testing.T) {
	cfg := examgen.DefaultExamConfig()

	var renderer FPDFRenderer
	var buf bytes.Buffer
	if err := renderer.RenderAnswerKey(&buf, sampleExam(), cfg); err != nil {
		t.Fatalf("RenderAnswerKey: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}

func TestRenderPDFNoWatermark(t *testing.T) {
	cfg := examgen.DefaultExamConfig()
	cfg.WatermarkText = ""

	var renderer FPDFRenderer
	var buf bytes.Buffer
	if err := renderer.Render(&buf, sampleExam(), cfg); err != nil {
		t.Fatalf("Render without watermark: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}
