package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/docent/internal/store"
)

// captureEventRepo records appended events in memory.
type captureEventRepo struct {
	events    []store.LLMRequestEventData
	appendErr error
}

func (c *captureEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if c.appendErr != nil {
		return c.appendErr
	}
	c.events = append(c.events, data)
	return nil
}

func (c *captureEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (c *captureEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (c *captureEventRepo) LLMUsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (c *captureEventRepo) LLMUsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func TestLogging_RecordsSuccessfulCall(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"summary":"Light becomes sugar."}`),
		Usage:   Usage{InputTokens: 120, OutputTokens: 30, TotalTokens: 150},
	})
	repo := &captureEventRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "summary")
	req := Request{
		System:   "You summarize documents.",
		Messages: []Message{{Role: RoleUser, Content: "Summarize: photosynthesis."}},
	}
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Purpose != "summary" {
		t.Errorf("purpose = %q, want %q", e.Purpose, "summary")
	}
	if e.Model != "mock" {
		t.Errorf("model = %q, want %q", e.Model, "mock")
	}
	if !e.Success {
		t.Error("expected success event")
	}
	if e.InputTokens != 120 || e.OutputTokens != 30 {
		t.Errorf("tokens = %d/%d, want 120/30", e.InputTokens, e.OutputTokens)
	}
	if !strings.Contains(e.RequestBody, "[system]") || !strings.Contains(e.RequestBody, "[user]") {
		t.Errorf("request body missing sections: %q", e.RequestBody)
	}
	if e.ResponseBody != `{"summary":"Light becomes sugar."}` {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLogging_RecordsFailedCall(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Err: &ErrRateLimit{Err: errors.New("too many requests")},
	})
	repo := &captureEventRepo{}
	p := WithLogging(mock, repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("expected failure event")
	}
	if e.ErrorMessage == "" {
		t.Error("expected error message")
	}
	if e.Purpose != "unknown" {
		t.Errorf("purpose = %q, want %q for unlabeled context", e.Purpose, "unknown")
	}
	if e.ResponseBody != "" {
		t.Errorf("response body = %q, want empty on failure", e.ResponseBody)
	}
}

func TestLogging_AppendFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"summary":"ok"}`),
	})
	repo := &captureEventRepo{appendErr: errors.New("disk full")}
	p := WithLogging(mock, repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("request must survive a logging failure, got %v", err)
	}
	if string(resp.Content) != `{"summary":"ok"}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestProviderFamily(t *testing.T) {
	tests := []struct {
		modelID string
		want    string
	}{
		{"claude-haiku-4-5-20251001", "anthropic"},
		{"gpt-4o-mini", "openai"},
		{"o1-mini", "openai"},
		{"gemini-2.5-flash", "google"},
		{"google/gemini-2.5-flash", "openrouter"},
		{"anthropic/claude-3-haiku", "openrouter"},
		{"mock", "mock"},
	}
	for _, tt := range tests {
		if got := providerFamily(tt.modelID); got != tt.want {
			t.Errorf("providerFamily(%q) = %q, want %q", tt.modelID, got, tt.want)
		}
	}
}
