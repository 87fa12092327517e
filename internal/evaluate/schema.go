package evaluate

import "github.com/abhisek/docent/internal/llm"

// RubricSchema defines the JSON schema for free-text grading responses.
var RubricSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "A rubric grade for a learner's answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "How well the learner's answer matches the correct answer, from 0 to 100",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Why the answer earned its score, restating the correct answer and citing the supporting passage",
			},
		},
		"required":             []any{"score", "feedback"},
		"additionalProperties": false,
	},
}
