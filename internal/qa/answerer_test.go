package qa

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/docent/internal/chunker"
	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/retrieval"
)

// orderedSelector returns the first min(k, len) chunks in input order
// with fixed scores, so tests control exactly what the prompt sees.
type orderedSelector struct {
	scores []float64
}

func (s orderedSelector) Select(_ context.Context, _ string, chunks []chunker.Chunk, k int) ([]retrieval.Scored, error) {
	n := min(len(chunks), k)
	out := make([]retrieval.Scored, 0, n)
	for i := 0; i < n; i++ {
		score := 1.0
		if i < len(s.scores) {
			score = s.scores[i]
		}
		out = append(out, retrieval.Scored{Chunk: chunks[i], Score: score})
	}
	return out, nil
}

type failingSelector struct {
	err error
}

func (s failingSelector) Select(_ context.Context, _ string, _ []chunker.Chunk, _ int) ([]retrieval.Scored, error) {
	return nil, s.err
}

func answerChunks() []chunker.Chunk {
	return []chunker.Chunk{
		{Index: 0, Start: 0, End: 10, Locator: "Paragraph 1", Text: "alpha beta"},
		{Index: 1, Start: 10, End: 21, Locator: "Paragraph 2", Text: "gamma delta"},
		{Index: 2, Start: 21, End: 33, Locator: "Paragraph 3", Text: "epsilon zeta"},
	}
}

func foundJSON(answer string, cited ...int) json.RawMessage {
	out := map[string]any{"answer": answer, "cited": cited, "found": true}
	raw, _ := json.Marshal(out)
	return raw
}

func TestAnswer_GroundedInDocument(t *testing.T) {
	chunks, err := chunker.Split("The sky is blue. Grass is green.", chunker.Config{Size: 20, Overlap: 5})
	if err != nil {
		t.Fatalf("chunking failed: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"answer": "Grass is green.", "cited": [1], "found": true}`),
	})
	a := NewAnswerer(mock, retrieval.NewLexicalSelector(), DefaultConfig())

	ans, err := a.Answer(t.Context(), Input{
		DocumentID: "doc-1",
		Question:   "What color is grass?",
		Chunks:     chunks,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(ans.Text, "green") {
		t.Errorf("answer should mention green, got %q", ans.Text)
	}
	if !ans.Found {
		t.Error("expected Found to be true")
	}
	if len(ans.Citations) == 0 {
		t.Fatal("expected at least one citation")
	}

	// The cited locator must resolve to a chunk that actually contains
	// the supporting text.
	supported := false
	for _, c := range chunks {
		if c.Locator == ans.Citations[0] && strings.Contains(c.Text, "Grass is green") {
			supported = true
		}
	}
	if !supported {
		t.Errorf("citation %q does not map to the chunk containing the answer", ans.Citations[0])
	}

	if ans.Confidence <= 0 || ans.Confidence > 1 {
		t.Errorf("confidence out of range: %f", ans.Confidence)
	}

	req := mock.Calls[0]
	if req.Temperature != 0.1 {
		t.Errorf("expected temperature 0.1, got %f", req.Temperature)
	}
	if mock.Purposes[0] != "grounded-answer" {
		t.Errorf("expected purpose grounded-answer, got %q", mock.Purposes[0])
	}
	if req.Schema == nil || req.Schema.Name != "grounded-answer" {
		t.Error("expected schema name 'grounded-answer'")
	}
	prompt := req.Messages[0].Content
	if !strings.Contains(prompt, "Excerpt 1") {
		t.Error("prompt should label excerpts")
	}
	if !strings.Contains(prompt, "Question: What color is grass?") {
		t.Error("prompt should include the question")
	}
}

func TestAnswer_EmptyDocument(t *testing.T) {
	mock := llm.NewMockProvider()
	a := NewAnswerer(mock, retrieval.NewLexicalSelector(), DefaultConfig())

	_, err := a.Answer(t.Context(), Input{DocumentID: "doc-1", Question: "anything?"})
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM calls, got %d", mock.CallCount())
	}
}

func TestAnswer_BlankQuestion(t *testing.T) {
	mock := llm.NewMockProvider()
	a := NewAnswerer(mock, retrieval.NewLexicalSelector(), DefaultConfig())

	_, err := a.Answer(t.Context(), Input{
		DocumentID: "doc-1",
		Question:   "   \t",
		Chunks:     answerChunks(),
	})
	if !errors.Is(err, ErrEmptyQuestion) {
		t.Fatalf("expected ErrEmptyQuestion, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM calls, got %d", mock.CallCount())
	}
}

func TestAnswer_NotFound(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"answer": "The document does not contain this information.", "cited": [], "found": false}`),
	})
	a := NewAnswerer(mock, orderedSelector{}, DefaultConfig())

	ans, err := a.Answer(t.Context(), Input{
		DocumentID: "doc-1",
		Question:   "What is the capital of France?",
		Chunks:     answerChunks(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ans.Found {
		t.Error("expected Found to be false")
	}
	if len(ans.Citations) != 0 {
		t.Errorf("expected no citations, got %v", ans.Citations)
	}
	if ans.Confidence > 0.3 {
		t.Errorf("not-found confidence must be capped at 0.3, got %f", ans.Confidence)
	}
}

func TestAnswer_CitationFallbackToAllExcerpts(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: foundJSON("alpha and gamma are related"),
	})
	a := NewAnswerer(mock, orderedSelector{}, DefaultConfig())

	chunks := answerChunks()
	ans, err := a.Answer(t.Context(), Input{
		DocumentID: "doc-1",
		Question:   "How do alpha and gamma relate?",
		Chunks:     chunks,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ans.Citations) != len(chunks) {
		t.Fatalf("expected %d fallback citations, got %d", len(chunks), len(ans.Citations))
	}
	for i, c := range chunks {
		if ans.Citations[i] != c.Locator {
			t.Errorf("citation %d: expected %q, got %q", i, c.Locator, ans.Citations[i])
		}
	}
}

func TestAnswer_DropsInvalidCitations(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: foundJSON("gamma delta", 0, 99, 2, 2),
	})
	a := NewAnswerer(mock, orderedSelector{}, DefaultConfig())

	ans, err := a.Answer(t.Context(), Input{
		DocumentID: "doc-1",
		Question:   "What comes after gamma?",
		Chunks:     answerChunks(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ans.Citations) != 1 {
		t.Fatalf("expected 1 citation after filtering, got %v", ans.Citations)
	}
	if ans.Citations[0] != "Paragraph 2" {
		t.Errorf("expected citation for excerpt 2, got %q", ans.Citations[0])
	}
}

func TestAnswer_ProviderTimeout(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrTimeout{After: 45 * time.Second, Err: context.DeadlineExceeded},
	})
	a := NewAnswerer(mock, orderedSelector{}, DefaultConfig())

	_, err := a.Answer(t.Context(), Input{
		DocumentID: "doc-1",
		Question:   "What is alpha?",
		Chunks:     answerChunks(),
	})
	if err == nil {
		t.Fatal("expected error")
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.Stage != "generate" {
		t.Errorf("expected stage generate, got %q", genErr.Stage)
	}
	if genErr.Document != "doc-1" {
		t.Errorf("expected document doc-1, got %q", genErr.Document)
	}

	var timeout *llm.ErrTimeout
	if !errors.As(err, &timeout) {
		t.Error("expected wrapped ErrTimeout")
	}
}

func TestAnswer_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	a := NewAnswerer(mock, orderedSelector{}, DefaultConfig())

	_, err := a.Answer(t.Context(), Input{
		DocumentID: "doc-1",
		Question:   "What is alpha?",
		Chunks:     answerChunks(),
	})

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.Stage != "parse" {
		t.Errorf("expected stage parse, got %q", genErr.Stage)
	}
}

func TestAnswer_SelectorFailure(t *testing.T) {
	mock := llm.NewMockProvider()
	a := NewAnswerer(mock, failingSelector{err: errors.New("index unavailable")}, DefaultConfig())

	_, err := a.Answer(t.Context(), Input{
		DocumentID: "doc-1",
		Question:   "What is alpha?",
		Chunks:     answerChunks(),
	})

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.Stage != "select" {
		t.Errorf("expected stage select, got %q", genErr.Stage)
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM calls, got %d", mock.CallCount())
	}
}
