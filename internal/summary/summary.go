package summary

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/docent/internal/chunker"
	"github.com/abhisek/docent/internal/llm"
)

// Summarizer produces the short overview shown after a document is
// ingested.
type Summarizer struct {
	provider llm.Provider
	cfg      Config
}

// Config holds summarization settings.
type Config struct {
	// MaxTokens bounds the generated summary.
	MaxTokens int

	// Temperature keeps phrasing varied without drifting from the text.
	Temperature float64

	// MaxContentChars is how much document text feeds the prompt.
	// Long documents are cut here; the opening usually carries the
	// framing a summary needs.
	MaxContentChars int
}

// DefaultConfig returns sensible defaults for summarization.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       256,
		Temperature:     0.3,
		MaxContentChars: 8000,
	}
}

// NewSummarizer creates a document summarizer.
func NewSummarizer(provider llm.Provider, cfg Config) *Summarizer {
	return &Summarizer{provider: provider, cfg: cfg}
}

type summaryOutput struct {
	Summary string `json:"summary"`
}

// Summarize produces a summary of at most 150 words for the given
// document text.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	ctx = llm.WithPurpose(ctx, "summary")

	req := llm.Request{
		System: summarySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSummaryUserMessage(text, s.cfg.MaxContentChars)},
		},
		Schema:      SummarySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("summarize document: %w", err)
	}

	var out summaryOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse summary response: %w", err)
	}

	return out.Summary, nil
}

// truncate cuts text to at most n bytes on a rune boundary.
func truncate(text string, n int) string {
	if len(text) <= n {
		return text
	}
	return chunker.Preview(text, n)
}
