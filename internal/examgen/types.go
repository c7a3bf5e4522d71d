package examgen

// QuestionType tags the seven supported question kinds. Rendering and
// export switch exhaustively over these.
type QuestionType string

const (
	TypeMCQ         QuestionType = "MCQ"
	TypeShortAnswer QuestionType = "SHORT_ANSWER"
	TypeTrueFalse   QuestionType = "TRUE_FALSE"
	TypeEssay       QuestionType = "ESSAY"
	TypeLongAnswer  QuestionType = "LONG_ANSWER"
	TypeFillBlank   QuestionType = "FILL_BLANK"
	TypeMatching    QuestionType = "MATCHING"
)

// QuestionTypes lists all kinds in the fixed order the prompt builder
// checks requested counts: MCQ, SHORT_ANSWER, ESSAY, LONG_ANSWER,
// TRUE_FALSE, FILL_BLANK, MATCHING.
var QuestionTypes = []QuestionType{
	TypeMCQ,
	TypeShortAnswer,
	TypeEssay,
	TypeLongAnswer,
	TypeTrueFalse,
	TypeFillBlank,
	TypeMatching,
}

// Valid reports whether t is one of the seven known kinds.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeMCQ, TypeShortAnswer, TypeTrueFalse, TypeEssay,
		TypeLongAnswer, TypeFillBlank, TypeMatching:
		return true
	}
	return false
}

// Difficulty is the requested exam complexity level.
type Difficulty string

const (
	DifficultySimple     Difficulty = "Simple"
	DifficultyMedium     Difficulty = "Medium"
	DifficultyHard       Difficulty = "Hard"
	DifficultyConceptual Difficulty = "Conceptual"
	DifficultyImportant  Difficulty = "Important"
)

// Difficulties lists all levels in display order.
var Difficulties = []Difficulty{
	DifficultySimple,
	DifficultyMedium,
	DifficultyHard,
	DifficultyConceptual,
	DifficultyImportant,
}

// Pair is one left/right match in a MATCHING question.
type Pair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Question is a single generated exam question. Options is present iff
// Type is MCQ; Pairs is present iff Type is MATCHING. Questions are
// only ever created by a generation call, never hand-built.
type Question struct {
	ID         string       `json:"id"`
	Type       QuestionType `json:"type"`
	Question   string       `json:"question"`
	Options    []string     `json:"options,omitempty"`
	Answer     string       `json:"answer,omitempty"`
	Difficulty Difficulty   `json:"difficulty"`
	Notes      string       `json:"notes,omitempty"`
	Pairs      []Pair       `json:"pairs,omitempty"`
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	out := q
	if q.Options != nil {
		out.Options = append([]string(nil), q.Options...)
	}
	if q.Pairs != nil {
		out.Pairs = append([]Pair(nil), q.Pairs...)
	}
	return out
}

// GeneratedExam is the result of one generation call. Each successful
// call replaces the previous exam wholesale.
type GeneratedExam struct {
	Questions []Question `json:"questions"`

	// Timestamp is milliseconds since the Unix epoch at generation time.
	Timestamp int64 `json:"timestamp"`
}

// Clone returns a deep copy of the exam.
func (e *GeneratedExam) Clone() *GeneratedExam {
	if e == nil {
		return nil
	}
	out := &GeneratedExam{Timestamp: e.Timestamp}
	out.Questions = make([]Question, len(e.Questions))
	for i, q := range e.Questions {
		out.Questions[i] = q.Clone()
	}
	return out
}
