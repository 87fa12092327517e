package challenge

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/docent/internal/chunker"
	"github.com/abhisek/docent/internal/llm"
)

func docChunks() []chunker.Chunk {
	return []chunker.Chunk{
		{Index: 0, Locator: "Paragraph 1", Text: "Chlorophyll absorbs light during photosynthesis."},
		{Index: 1, Locator: "Paragraph 2", Text: "Photosynthesis takes place in the chloroplasts."},
		{Index: 2, Locator: "Paragraph 3", Text: "Roots draw water and minerals from the soil."},
		{Index: 3, Locator: "Paragraph 4", Text: "Stomata let carbon dioxide into the leaf."},
	}
}

func questionItem(text string) string {
	return fmt.Sprintf(`{
		"question": %q,
		"options": ["Chlorophyll", "Hemoglobin", "Keratin", "Melanin"],
		"answer": "Chlorophyll",
		"explanation": "The excerpt names chlorophyll as the pigment.",
		"source_locators": ["Paragraph 1"]
	}`, text)
}

func batchJSON(items ...string) json.RawMessage {
	return json.RawMessage(`{"questions": [` + strings.Join(items, ",") + `]}`)
}

func TestGenerate_FullBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(
			questionItem("Which pigment absorbs light during photosynthesis?"),
			questionItem("Where does carbon dioxide enter the leaf?"),
		),
	})
	gen := New(mock, DefaultConfig())

	questions, err := gen.Generate(t.Context(), Input{
		DocumentID: "doc-1",
		Chunks:     docChunks(),
		Difficulty: DifficultyMedium,
		Count:      2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	for _, q := range questions {
		if q.Difficulty != DifficultyMedium {
			t.Errorf("expected difficulty medium, got %q", q.Difficulty)
		}
		if len(q.Options) != 4 {
			t.Errorf("expected 4 options, got %d", len(q.Options))
		}
		if len(q.SourceLocators) == 0 {
			t.Error("expected source locators")
		}
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %f", req.Temperature)
	}
	if req.Schema == nil || req.Schema.Name != "challenge-questions" {
		t.Error("expected schema name 'challenge-questions'")
	}
	if mock.Purposes[0] != "challenge-gen" {
		t.Errorf("expected purpose challenge-gen, got %q", mock.Purposes[0])
	}
	prompt := req.Messages[0].Content
	if !strings.Contains(prompt, "Create 2 medium questions.") {
		t.Error("prompt should state count and difficulty")
	}
	if !strings.Contains(prompt, "[Paragraph 1]") {
		t.Error("prompt should label excerpts with locators")
	}
}

func TestGenerate_TooFewChunks(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	questions, err := gen.Generate(t.Context(), Input{
		DocumentID: "doc-1",
		Chunks:     docChunks()[:2],
		Difficulty: DifficultyEasy,
		Count:      3,
	})

	var insufficient *InsufficientContentError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientContentError, got %v", err)
	}
	if insufficient.Generated != 0 {
		t.Errorf("expected 0 generated, got %d", insufficient.Generated)
	}
	if len(questions) != 0 {
		t.Errorf("expected no questions, got %d", len(questions))
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM calls, got %d", mock.CallCount())
	}
}

func TestGenerate_DeduplicatesAndTopsUp(t *testing.T) {
	// Round one returns a question and a near-rephrasing of it; the
	// top-up round supplies a distinct one.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: batchJSON(
			questionItem("What pigment makes leaves green?"),
			questionItem("What pigment makes the leaves green?"),
		)},
		llm.MockResponse{Content: batchJSON(
			questionItem("Where does photosynthesis take place?"),
		)},
	)
	gen := New(mock, DefaultConfig())

	questions, err := gen.Generate(t.Context(), Input{
		DocumentID: "doc-1",
		Chunks:     docChunks(),
		Difficulty: DifficultyEasy,
		Count:      2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].Text == questions[1].Text {
		t.Error("batch contains duplicate questions")
	}

	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 LLM calls, got %d", mock.CallCount())
	}
	topUp := mock.Calls[1].Messages[0].Content
	if !strings.Contains(topUp, "Create 1 easy questions.") {
		t.Error("top-up round should request only the shortfall")
	}
	if !strings.Contains(topUp, "What pigment makes leaves green?") {
		t.Error("top-up round should list already generated questions")
	}
}

func TestGenerate_ShortBatchAfterAllRounds(t *testing.T) {
	invalid := `{
		"question": "Which pigment absorbs light?",
		"options": ["Chlorophyll", "Hemoglobin"],
		"answer": "Chlorophyll",
		"explanation": "Too few options.",
		"source_locators": ["Paragraph 1"]
	}`
	dup := questionItem("What pigment makes leaves green?")

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: batchJSON(questionItem("What pigment makes leaves green?"), invalid)},
		llm.MockResponse{Content: batchJSON(dup)},
		llm.MockResponse{Content: batchJSON(dup)},
	)
	gen := New(mock, DefaultConfig())

	questions, err := gen.Generate(t.Context(), Input{
		DocumentID: "doc-1",
		Chunks:     docChunks(),
		Difficulty: DifficultyEasy,
		Count:      2,
	})

	var insufficient *InsufficientContentError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientContentError, got %v", err)
	}
	if insufficient.Requested != 2 || insufficient.Generated != 1 {
		t.Errorf("expected 1 of 2, got %d of %d", insufficient.Generated, insufficient.Requested)
	}
	if len(questions) != 1 {
		t.Fatalf("short batch should still be returned, got %d questions", len(questions))
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected initial round plus 2 retries, got %d calls", mock.CallCount())
	}
}

func TestGenerate_TrimsOverproduction(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(
			questionItem("Which pigment absorbs light during photosynthesis?"),
			questionItem("Where does carbon dioxide enter the leaf?"),
			questionItem("Where does photosynthesis take place?"),
		),
	})
	gen := New(mock, DefaultConfig())

	questions, err := gen.Generate(t.Context(), Input{
		DocumentID: "doc-1",
		Chunks:     docChunks(),
		Difficulty: DifficultyHard,
		Count:      1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected exactly 1 question, got %d", len(questions))
	}
}

func TestGenerate_BadCount(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	for _, count := range []int{0, -1, 11} {
		_, err := gen.Generate(t.Context(), Input{
			DocumentID: "doc-1",
			Chunks:     docChunks(),
			Difficulty: DifficultyEasy,
			Count:      count,
		})
		var reqErr *RequestError
		if !errors.As(err, &reqErr) {
			t.Errorf("count %d: expected RequestError, got %v", count, err)
		}
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM calls, got %d", mock.CallCount())
	}
}

func TestGenerate_BadDifficulty(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(t.Context(), Input{
		DocumentID: "doc-1",
		Chunks:     docChunks(),
		Difficulty: "impossible",
		Count:      2,
	})
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Field != "difficulty" {
		t.Errorf("expected field difficulty, got %q", reqErr.Field)
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(t.Context(), Input{
		DocumentID: "doc-1",
		Chunks:     docChunks(),
		Difficulty: DifficultyEasy,
		Count:      2,
	})

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
}

func TestGenerate_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions": "oops"}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(t.Context(), Input{
		DocumentID: "doc-1",
		Chunks:     docChunks(),
		Difficulty: DifficultyEasy,
		Count:      1,
	})

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.Stage != "parse" {
		t.Errorf("expected stage parse, got %q", genErr.Stage)
	}
}
