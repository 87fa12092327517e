package summary

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/docent/internal/llm"
)

func TestSummarizer_ReturnsSummary(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary": "A short overview of photosynthesis."}`),
	})
	s := NewSummarizer(mock, DefaultConfig())

	got, err := s.Summarize(t.Context(), "Photosynthesis converts light into chemical energy.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "A short overview of photosynthesis." {
		t.Fatalf("unexpected summary: %q", got)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "document-summary" {
		t.Error("expected schema name 'document-summary'")
	}
	if req.Temperature != 0.3 {
		t.Errorf("expected temperature 0.3, got %f", req.Temperature)
	}
	if mock.Purposes[0] != "summary" {
		t.Errorf("expected purpose summary, got %q", mock.Purposes[0])
	}
}

func TestSummarizer_TruncatesLongDocuments(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary": "ok"}`),
	})
	cfg := DefaultConfig()
	cfg.MaxContentChars = 100
	s := NewSummarizer(mock, cfg)

	long := strings.Repeat("many words fill this document. ", 50)
	if _, err := s.Summarize(t.Context(), long); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if len(prompt) > 100+400 {
		t.Fatalf("prompt should carry truncated content, got %d bytes", len(prompt))
	}
}

func TestSummarizer_PropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	s := NewSummarizer(mock, DefaultConfig())

	_, err := s.Summarize(t.Context(), "some text")
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got %v", err)
	}
}
