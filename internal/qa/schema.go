package qa

import "github.com/abhisek/docent/internal/llm"

// AnswerSchema defines the JSON schema for grounded answer responses.
var AnswerSchema = &llm.Schema{
	Name:        "grounded-answer",
	Description: "An answer to a question, grounded in the provided document excerpts",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{
				"type":        "string",
				"description": "The answer to the question, using only the provided excerpts. If they do not contain the answer, say so explicitly.",
			},
			"cited": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "integer",
				},
				"description": "1-based numbers of the excerpts that support the answer. Empty when found is false.",
			},
			"found": map[string]any{
				"type":        "boolean",
				"description": "Whether the excerpts contain the information needed to answer the question",
			},
		},
		"required":             []any{"answer", "cited", "found"},
		"additionalProperties": false,
	},
}
