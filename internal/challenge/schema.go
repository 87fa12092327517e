package challenge

import "github.com/abhisek/docent/internal/llm"

// ChallengeSchema defines the JSON schema for LLM question batch responses.
var ChallengeSchema = &llm.Schema{
	Name:        "challenge-questions",
	Description: "A batch of multiple-choice comprehension questions about a document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt, answerable from the excerpts alone",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 answer options of similar length and form",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The text of the correct option, matching one entry in options exactly",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct option is right, briefly",
						},
						"source_locators": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Locators of the excerpts that support the correct answer",
						},
					},
					"required":             []any{"question", "options", "answer", "explanation", "source_locators"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
