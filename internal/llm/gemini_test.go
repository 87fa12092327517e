package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-flash-lite", "gemini-2.5-flash-lite"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer":     map[string]any{"type": "string"},
			"score":      map[string]any{"type": "integer"},
			"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"cited": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"answer", "score"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["answer"].Type != "STRING" {
		t.Fatalf("expected STRING for answer, got %s", schema.Properties["answer"].Type)
	}
	if schema.Properties["score"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for score, got %s", schema.Properties["score"].Type)
	}
	if len(schema.Properties["difficulty"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["difficulty"].Enum))
	}
	if schema.Properties["cited"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for cited, got %s", schema.Properties["cited"].Type)
	}
	if schema.Properties["cited"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for cited items, got %s", schema.Properties["cited"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
