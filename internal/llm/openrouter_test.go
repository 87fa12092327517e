package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "google/gemini-2.5-flash",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "google/gemini-2.5-flash" {
			t.Errorf("model = %q, want %q", p.ModelID(), "google/gemini-2.5-flash")
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		})
		if err == nil {
			t.Fatal("expected error for empty API key")
		}
	})

	t.Run("default base URL", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "meta-llama/llama-3-8b",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// The provider should be created successfully with default base URL.
		if p == nil {
			t.Fatal("expected non-nil provider")
		}
	})

	t.Run("custom model pass-through", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "anthropic/claude-3-haiku",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Model ID should be used as-is (no friendly-name mapping).
		if p.ModelID() != "anthropic/claude-3-haiku" {
			t.Errorf("model = %q, want %q", p.ModelID(), "anthropic/claude-3-haiku")
		}
	})

	t.Run("custom base URL", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey:  "sk-or-test",
			Model:   "google/gemini-2.5-flash",
			BaseURL: "https://custom.openrouter.example/v1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p == nil {
			t.Fatal("expected non-nil provider")
		}
	})
}

func TestOpenRouterProvider_AttributionHeaders(t *testing.T) {
	var referer, title string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		referer = r.Header.Get("HTTP-Referer")
		title = r.Header.Get("X-Title")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "gen-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "google/gemini-2.5-flash",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": `{"summary":"A short document about photosynthesis."}`,
					},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     20,
				"completion_tokens": 10,
				"total_tokens":      30,
			},
		})
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "google/gemini-2.5-flash",
		BaseURL: server.URL + "/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Summarize the document."}},
		MaxTokens: 64,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if referer != openRouterReferer {
		t.Errorf("HTTP-Referer = %q, want %q", referer, openRouterReferer)
	}
	if title != openRouterTitle {
		t.Errorf("X-Title = %q, want %q", title, openRouterTitle)
	}
}
