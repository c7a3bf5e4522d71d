package examgen

import "github.com/attafarid/studyai/internal/llm"

// ExamSchema defines the JSON schema for exam generation responses.
// Each question requires id, type, question, and difficulty; options,
// answer, notes, and pairs are optional and type-dependent.
var ExamSchema = &llm.Schema{
	Name:        "exam-paper",
	Description: "A full exam: an ordered list of questions of mixed types",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Unique identifier, distinct across the exam",
						},
						"type": map[string]any{
							"type": "string",
							"enum": []any{
								"MCQ", "SHORT_ANSWER", "TRUE_FALSE", "ESSAY",
								"LONG_ANSWER", "FILL_BLANK", "MATCHING",
							},
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the student",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Answer choices. MCQ only.",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The canonical correct answer",
						},
						"difficulty": map[string]any{
							"type": "string",
						},
						"notes": map[string]any{
							"type":        "string",
							"description": "Optional grading or context notes",
						},
						"pairs": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"left":  map[string]any{"type": "string"},
									"right": map[string]any{"type": "string"},
								},
							},
							"description": "Left/right match pairs. MATCHING only.",
						},
					},
					"required": []any{"id", "type", "question", "difficulty"},
				},
			},
		},
		"required": []any{"questions"},
	},
}
