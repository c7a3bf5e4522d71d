package examgen

// FontTheme selects the PDF typography set.
type FontTheme string

const (
	ThemeModern  FontTheme = "Modern"  // sans throughout
	ThemeClassic FontTheme = "Classic" // sans headers, serif body
	ThemeElegant FontTheme = "Elegant" // serif throughout
)

// ExamConfig holds the user-facing exam parameters. JSON tags match the
// persisted settings blob.
type ExamConfig struct {
	ExamName        string `json:"examName"`
	Subtitle        string `json:"subtitle"`
	StudentNameLine bool   `json:"studentNamePlaceholder"`
	WatermarkText   string `json:"watermarkText"`

	// WatermarkOpacity is in [0, 1].
	WatermarkOpacity float64 `json:"watermarkOpacity"`

	MCQCount        int `json:"mcqCount"`
	ShortCount      int `json:"shortCount"`
	EssayCount      int `json:"essayCount"`
	LongAnswerCount int `json:"longAnswerCount"`
	TFCount         int `json:"tfCount"`
	FillCount       int `json:"fillCount"`
	MatchingCount   int `json:"matchingCount"`

	Difficulty Difficulty `json:"difficulty"`
	TopicFocus string     `json:"topicFocus"`

	// PDF styling.
	HeaderFontSize int       `json:"headerFontSize"`
	ShowLogo       bool      `json:"showLogo"`
	PDFFontTheme   FontTheme `json:"pdfFontTheme"`
}

// DefaultExamConfig is the hardcoded fallback used when no settings
// have been persisted or the stored blob does not parse.
func DefaultExamConfig() ExamConfig {
	return ExamConfig{
		ExamName:         "Final Examination",
		Subtitle:         "Generated Assessment",
		StudentNameLine:  true,
		WatermarkText:    "STUDY.AI",
		WatermarkOpacity: 0.1,
		MCQCount:         5,
		ShortCount:       3,
		TFCount:          2,
		Difficulty:       DifficultyMedium,
		HeaderFontSize:   22,
		ShowLogo:         true,
		PDFFontTheme:     ThemeClassic,
	}
}

// Count returns the requested count for the given question type.
func (c ExamConfig) Count(t QuestionType) int {
	switch t {
	case TypeMCQ:
		return c.MCQCount
	case TypeShortAnswer:
		return c.ShortCount
	case TypeEssay:
		return c.EssayCount
	case TypeLongAnswer:
		return c.LongAnswerCount
	case TypeTrueFalse:
		return c.TFCount
	case TypeFillBlank:
		return c.FillCount
	case TypeMatching:
		return c.MatchingCount
	}
	return 0
}

// TotalQuestions returns the sum of all requested counts.
func (c ExamConfig) TotalQuestions() int {
	total := 0
	for _, t := range QuestionTypes {
		if n := c.Count(t); n > 0 {
			total += n
		}
	}
	return total
}

// Normalized returns a copy with out-of-range values clamped: negative
// counts become zero and the watermark opacity is clamped to [0, 1].
// Persisted configs are normalized on the way into a generation
// request, never rejected.
func (c ExamConfig) Normalized() ExamConfig {
	out := c
	out.MCQCount = max(out.MCQCount, 0)
	out.ShortCount = max(out.ShortCount, 0)
	out.EssayCount = max(out.EssayCount, 0)
	out.LongAnswerCount = max(out.LongAnswerCount, 0)
	out.TFCount = max(out.TFCount, 0)
	out.FillCount = max(out.FillCount, 0)
	out.MatchingCount = max(out.MatchingCount, 0)

	if out.WatermarkOpacity < 0 {
		out.WatermarkOpacity = 0
	} else if out.WatermarkOpacity > 1 {
		out.WatermarkOpacity = 1
	}

	if out.PDFFontTheme == "" {
		out.PDFFontTheme = ThemeClassic
	}
	return out
}
