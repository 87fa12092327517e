package evaluate

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/abhisek/docent/internal/chunker"
	"github.com/abhisek/docent/internal/llm"
)

func evalInput() Input {
	return Input{
		DocumentID:    "doc-1",
		Question:      "Which pigment absorbs light during photosynthesis?",
		CorrectAnswer: "Chlorophyll",
		UserAnswer:    "Chlorophyll",
		Options:       []string{"Chlorophyll", "Hemoglobin", "Keratin", "Melanin"},
		SourceChunks: []chunker.Chunk{
			{Index: 0, Locator: "Paragraph 2", Text: "Chlorophyll absorbs light during photosynthesis."},
		},
	}
}

func TestEvaluate_MultipleChoiceExactMatch(t *testing.T) {
	mock := llm.NewMockProvider()
	e := NewEvaluator(mock, DefaultConfig())

	input := evalInput()
	input.UserAnswer = "  chlorophyll "

	ev, err := e.Evaluate(t.Context(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Score != 100 {
		t.Errorf("expected score 100, got %d", ev.Score)
	}
	if !ev.Correct {
		t.Error("expected correct verdict")
	}
	if !strings.Contains(ev.Feedback, "Chlorophyll") {
		t.Errorf("feedback should restate the correct answer, got %q", ev.Feedback)
	}
	if !strings.Contains(ev.Feedback, "Paragraph 2") {
		t.Errorf("feedback should cite the supporting chunk, got %q", ev.Feedback)
	}
	if mock.CallCount() != 0 {
		t.Errorf("multiple-choice grading must not call the LLM, got %d calls", mock.CallCount())
	}
}

func TestEvaluate_MultipleChoiceWrong(t *testing.T) {
	mock := llm.NewMockProvider()
	e := NewEvaluator(mock, DefaultConfig())

	input := evalInput()
	input.UserAnswer = "Melanin"

	ev, err := e.Evaluate(t.Context(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Score != 0 {
		t.Errorf("expected score 0, got %d", ev.Score)
	}
	if ev.Correct {
		t.Error("expected incorrect verdict")
	}
	if !strings.Contains(ev.Feedback, "Chlorophyll") {
		t.Errorf("feedback should restate the correct answer, got %q", ev.Feedback)
	}
	if mock.CallCount() != 0 {
		t.Errorf("multiple-choice grading must not call the LLM, got %d calls", mock.CallCount())
	}
}

func TestEvaluate_BlankAnswer(t *testing.T) {
	mock := llm.NewMockProvider()
	e := NewEvaluator(mock, DefaultConfig())

	input := evalInput()
	input.Options = nil
	input.UserAnswer = "   "

	ev, err := e.Evaluate(t.Context(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Score != 0 || ev.Correct {
		t.Errorf("expected failing grade, got score %d correct %t", ev.Score, ev.Correct)
	}
	if !strings.Contains(ev.Feedback, "Chlorophyll") {
		t.Errorf("feedback should restate the correct answer, got %q", ev.Feedback)
	}
	if mock.CallCount() != 0 {
		t.Errorf("blank answers must not call the LLM, got %d calls", mock.CallCount())
	}
}

func TestEvaluate_FreeTextPass(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 85, "feedback": "Close paraphrase. The correct answer is Chlorophyll; see Paragraph 2."}`),
	})
	e := NewEvaluator(mock, DefaultConfig())

	input := evalInput()
	input.Options = nil
	input.UserAnswer = "The green pigment chlorophyll captures the light."

	ev, err := e.Evaluate(t.Context(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Score != 85 {
		t.Errorf("expected score 85, got %d", ev.Score)
	}
	if !ev.Correct {
		t.Error("expected correct verdict at score 85")
	}

	req := mock.Calls[0]
	if req.Temperature != 0.2 {
		t.Errorf("expected temperature 0.2, got %f", req.Temperature)
	}
	if req.Schema == nil || req.Schema.Name != "answer-evaluation" {
		t.Error("expected schema name 'answer-evaluation'")
	}
	if mock.Purposes[0] != "evaluation" {
		t.Errorf("expected purpose evaluation, got %q", mock.Purposes[0])
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{
		"Question: Which pigment absorbs light during photosynthesis?",
		"Correct answer: Chlorophyll",
		"Learner's answer: The green pigment chlorophyll captures the light.",
		"[Paragraph 2]",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestEvaluate_FreeTextFail(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 40, "feedback": "The answer names the wrong pigment. The correct answer is Chlorophyll; see Paragraph 2."}`),
	})
	e := NewEvaluator(mock, DefaultConfig())

	input := evalInput()
	input.Options = nil
	input.UserAnswer = "Hemoglobin does it."

	ev, err := e.Evaluate(t.Context(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Score != 40 || ev.Correct {
		t.Errorf("expected failing grade, got score %d correct %t", ev.Score, ev.Correct)
	}
}

func TestEvaluate_VerdictConsistentAtThreshold(t *testing.T) {
	for _, tt := range []struct {
		score   int
		correct bool
	}{
		{70, true},
		{69, false},
	} {
		mock := llm.NewMockProvider(llm.MockResponse{
			Content: json.RawMessage(`{"score": ` + strconv.Itoa(tt.score) + `, "feedback": "Borderline."}`),
		})
		e := NewEvaluator(mock, DefaultConfig())

		input := evalInput()
		input.Options = nil
		input.UserAnswer = "Some partial answer."

		ev, err := e.Evaluate(t.Context(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Correct != tt.correct {
			t.Errorf("score %d: expected correct=%t", tt.score, tt.correct)
		}
	}
}

func TestEvaluate_ClampsScore(t *testing.T) {
	for _, tt := range []struct {
		raw  string
		want int
	}{
		{"150", 100},
		{"-10", 0},
	} {
		mock := llm.NewMockProvider(llm.MockResponse{
			Content: json.RawMessage(`{"score": ` + tt.raw + `, "feedback": "Out of range."}`),
		})
		e := NewEvaluator(mock, DefaultConfig())

		input := evalInput()
		input.Options = nil
		input.UserAnswer = "Some answer."

		ev, err := e.Evaluate(t.Context(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Score != tt.want {
			t.Errorf("raw score %s: expected %d, got %d", tt.raw, tt.want, ev.Score)
		}
	}
}

func TestEvaluate_EmptyFeedbackFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 80, "feedback": "  "}`),
	})
	e := NewEvaluator(mock, DefaultConfig())

	input := evalInput()
	input.Options = nil
	input.UserAnswer = "Chlorophyll captures it."

	ev, err := e.Evaluate(t.Context(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(ev.Feedback, "Chlorophyll") || !strings.Contains(ev.Feedback, "Paragraph 2") {
		t.Errorf("fallback feedback should restate answer and citation, got %q", ev.Feedback)
	}
}

func TestEvaluate_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	e := NewEvaluator(mock, DefaultConfig())

	input := evalInput()
	input.Options = nil
	input.UserAnswer = "Some answer."

	_, err := e.Evaluate(t.Context(), input)
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected EvaluationError, got %v", err)
	}
	if evalErr.Document != "doc-1" {
		t.Errorf("expected document doc-1, got %q", evalErr.Document)
	}
}

func TestEvaluate_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`oops`),
	})
	e := NewEvaluator(mock, DefaultConfig())

	input := evalInput()
	input.Options = nil
	input.UserAnswer = "Some answer."

	_, err := e.Evaluate(t.Context(), input)
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected EvaluationError, got %v", err)
	}
}
