package summary

import "github.com/abhisek/docent/internal/llm"

// SummarySchema defines the JSON schema for document summaries.
var SummarySchema = &llm.Schema{
	Name:        "document-summary",
	Description: "A short prose summary of an uploaded document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Summary of the document in at most 150 words",
			},
		},
		"required":             []any{"summary"},
		"additionalProperties": false,
	},
}
