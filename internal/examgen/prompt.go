package examgen

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const systemInstruction = `You are 'Study.AI', an elite, high-performance academic assessment engine.
Your directive is to analyze source material with extreme depth and generate unique, rigorous exam content.
NEVER generate generic or repetitive questions.
Every execution must yield a fresh perspective, focusing on different nuances, details, or conceptual links within the text.

Output Rules:
1. STRICT JSON format matching the schema.
2. Questions must be unambiguous but intellectually stimulating.
3. For 'MCQ', options must be highly plausible distractors, avoiding obvious wrong answers.
4. For 'MATCHING', ensure relationships are non-trivial.
5. For 'LONG_ANSWER' and 'ESSAY', prompts must require synthesis, critical thinking, and evidence from the source.`

// analysisStrategies nudge the model toward a different analytical lens
// on each run, so repeated generations over the same material diverge.
var analysisStrategies = [7]string{
	"Focus on cause-and-effect relationships and underlying logic.",
	"Focus on practical applications and real-world scenarios.",
	"Focus on critical analysis, comparing and contrasting key concepts.",
	"Focus on minute details, definitions, and specific terminology.",
	"Focus on high-level synthesis and broad thematic connections.",
	"Focus on controversial or complex aspects of the text.",
	"Focus on chronological or process-oriented sequences.",
}

// structureLines maps each question type to its requirement template.
// Emitted in QuestionTypes order for every type with a positive count.
var structureLines = map[QuestionType]string{
	TypeMCQ:         "- %d Multiple Choice Questions (Type: MCQ). Options must be challenging.",
	TypeShortAnswer: "- %d Short Answer Questions (Type: SHORT_ANSWER).",
	TypeEssay:       "- %d Essay Questions (Type: ESSAY). Require deep explanation.",
	TypeLongAnswer:  "- %d Detailed Long Answer Questions (Type: LONG_ANSWER).",
	TypeTrueFalse:   "- %d True/False Questions (Type: TRUE_FALSE). Focus on common misconceptions.",
	TypeFillBlank:   "- %d Fill in the Blank Questions (Type: FILL_BLANK).",
	TypeMatching:    "- %d Matching Questions (Type: MATCHING). Create 4-5 pairs per question.",
}

const entropyAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// entropyToken returns an opaque 13-character base-36 string. It is a
// textual hint only; the model is told not to repeat output across
// sessions with different tokens.
func entropyToken(rng *rand.Rand) string {
	var b strings.Builder
	for range 13 {
		b.WriteByte(entropyAlphabet[rng.IntN(len(entropyAlphabet))])
	}
	return b.String()
}

// buildPrompt assembles the free-text instruction block. Pure assembly:
// it never fails and accepts the config as given. All randomness comes
// from rng, so a seeded source makes the output fully deterministic.
func buildPrompt(cfg ExamConfig, rng *rand.Rand) string {
	strategy := analysisStrategies[rng.IntN(len(analysisStrategies))]
	entropy := entropyToken(rng)

	focus := cfg.TopicFocus
	if focus == "" {
		focus = "Comprehensive coverage"
	}

	var b strings.Builder

	b.WriteString("GENERATE A UNIQUE EXAM.\n")
	fmt.Fprintf(&b, "session_entropy_id: %s (Do not repeat questions from previous sessions with different IDs).\n", entropy)
	b.WriteString("\n")
	fmt.Fprintf(&b, "ANALYSIS VECTOR: %s\n", strategy)
	b.WriteString("\n")
	b.WriteString("Configuration:\n")
	fmt.Fprintf(&b, "- Target Difficulty: %s\n", cfg.Difficulty)
	fmt.Fprintf(&b, "- Specific Focus: %s\n", focus)
	b.WriteString("\n")
	b.WriteString("Structure Requirements:\n")

	for _, t := range QuestionTypes {
		if n := cfg.Count(t); n > 0 {
			fmt.Fprintf(&b, structureLines[t]+"\n", n)
		}
	}

	if line := difficultyGuidance(cfg.Difficulty); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\nEnsure the JSON output strictly follows the schema. Generate distinct IDs.")

	return b.String()
}

// difficultyGuidance returns the extra critical-instruction sentence
// for the three levels that carry one; the rest add nothing.
func difficultyGuidance(d Difficulty) string {
	switch d {
	case DifficultyConceptual:
		return "CRITICAL: Disregard surface-level facts. Test deep understanding of *why* and *how*."
	case DifficultyImportant:
		return "CRITICAL: Filter content to only include the most vital, high-yield concepts."
	case DifficultyHard:
		return "CRITICAL: Create complex, multi-step problems or questions that require connecting disparate facts."
	}
	return ""
}
