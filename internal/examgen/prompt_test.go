package examgen

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func TestBuildPromptStructureLines(t *testing.T) {
	cfg := DefaultExamConfig()
	cfg.MCQCount = 4
	cfg.ShortCount = 0
	cfg.EssayCount = 1
	cfg.TFCount = 0
	cfg.MatchingCount = 2

	prompt := buildPrompt(cfg, seededRand(1))

	if !strings.Contains(prompt, "- 4 Multiple Choice Questions (Type: MCQ)") {
		t.Error("missing MCQ structure line")
	}
	if !strings.Contains(prompt, "- 1 Essay Questions (Type: ESSAY)") {
		t.Error("missing essay structure line")
	}
	if !strings.Contains(prompt, "- 2 Matching Questions (Type: MATCHING)") {
		t.Error("missing matching structure line")
	}
	if strings.Contains(prompt, "SHORT_ANSWER") {
		t.Error("zero-count type should be omitted")
	}
	if strings.Contains(prompt, "TRUE_FALSE") {
		t.Error("zero-count type should be omitted")
	}
}

func TestBuildPromptTypeOrder(t *testing.T) {
	cfg := ExamConfig{MCQCount: 2, TFCount: 1, Difficulty: DifficultyMedium}

	prompt := buildPrompt(cfg, seededRand(1))

	mcqAt := strings.Index(prompt, "Type: MCQ")
	tfAt := strings.Index(prompt, "Type: TRUE_FALSE")
	if mcqAt < 0 || tfAt < 0 {
		t.Fatalf("expected both structure lines:\n%s", prompt)
	}
	if mcqAt > tfAt {
		t.Error("MCQ line must precede TRUE_FALSE line")
	}

	// Exactly two structure lines.
	if got := strings.Count(prompt, "(Type: "); got != 2 {
		t.Errorf("expected 2 structure lines, got %d", got)
	}
}

func TestBuildPromptConfiguration(t *testing.T) {
	cfg := DefaultExamConfig()
	cfg.Difficulty = DifficultySimple
	cfg.TopicFocus = "photosynthesis"

	prompt := buildPrompt(cfg, seededRand(1))

	if !strings.Contains(prompt, "- Target Difficulty: Simple") {
		t.Error("missing difficulty line")
	}
	if !strings.Contains(prompt, "- Specific Focus: photosynthesis") {
		t.Error("missing topic focus line")
	}
}

func TestBuildPromptDefaultFocus(t *testing.T) {
	cfg := DefaultExamConfig()
	cfg.TopicFocus = ""

	prompt := buildPrompt(cfg, seededRand(1))

	if !strings.Contains(prompt, "- Specific Focus: Comprehensive coverage") {
		t.Error("empty topic focus should default to comprehensive coverage")
	}
}

func TestBuildPromptDifficultyGuidance(t *testing.T) {
	for _, d := range []Difficulty{DifficultyConceptual, DifficultyImportant, DifficultyHard} {
		cfg := DefaultExamConfig()
		cfg.Difficulty = d
		prompt := buildPrompt(cfg, seededRand(1))
		if !strings.Contains(prompt, "CRITICAL:") {
			t.Errorf("difficulty %s should add critical guidance", d)
		}
	}

	for _, d := range []Difficulty{DifficultySimple, DifficultyMedium} {
		cfg := DefaultExamConfig()
		cfg.Difficulty = d
		prompt := buildPrompt(cfg, seededRand(1))
		if strings.Contains(prompt, "CRITICAL:") {
			t.Errorf("difficulty %s should not add critical guidance", d)
		}
	}
}

func TestBuildPromptDeterministicForSeed(t *testing.T) {
	cfg := DefaultExamConfig()

	a := buildPrompt(cfg, seededRand(42))
	b := buildPrompt(cfg, seededRand(42))
	if a != b {
		t.Error("identical seeds should produce byte-identical prompts")
	}

	c := buildPrompt(cfg, seededRand(43))
	if a == c {
		t.Error("different seeds should vary the strategy or entropy token")
	}
}

func TestBuildPromptEntropyToken(t *testing.T) {
	prompt := buildPrompt(DefaultExamConfig(), seededRand(7))

	_, rest, found := strings.Cut(prompt, "session_entropy_id: ")
	if !found {
		t.Fatal("missing session entropy line")
	}
	token, _, _ := strings.Cut(rest, " ")
	if len(token) != 13 {
		t.Errorf("entropy token should be 13 characters, got %d (%q)", len(token), token)
	}
	for _, r := range token {
		if !strings.ContainsRune(entropyAlphabet, r) {
			t.Errorf("entropy token has non-base36 character %q", r)
		}
	}
}

func TestAnalysisStrategyVaries(t *testing.T) {
	seen := map[string]bool{}
	for seed := uint64(0); seed < 50; seed++ {
		prompt := buildPrompt(DefaultExamConfig(), seededRand(seed))
		_, rest, found := strings.Cut(prompt, "ANALYSIS VECTOR: ")
		if !found {
			t.Fatal("missing analysis vector line")
		}
		line, _, _ := strings.Cut(rest, "\n")
		seen[line] = true
	}
	if len(seen) < 3 {
		t.Errorf("expected multiple strategies across seeds, saw %d", len(seen))
	}
}
