package evaluate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/docent/internal/chunker"
	"github.com/abhisek/docent/internal/llm"
)

// Config controls the behavior of the Evaluator.
type Config struct {
	// PassThreshold is the minimum score that counts as correct.
	PassThreshold int

	// MaxTokens is the token budget for the LLM rubric response.
	MaxTokens int

	// Temperature controls LLM output randomness. Kept low so grading
	// is stable.
	Temperature float64

	// MaxContextChars bounds how much source text goes into the rubric
	// prompt.
	MaxContextChars int
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		PassThreshold:   70,
		MaxTokens:       512,
		Temperature:     0.2,
		MaxContextChars: 2000,
	}
}

// Evaluator grades submitted answers against known correct answers.
// Multiple-choice answers are graded locally by exact option match;
// free-text answers are graded by an LLM rubric.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
}

// NewEvaluator creates an Evaluator with the given provider and config.
func NewEvaluator(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

// rubricOutput is the raw LLM response for a free-text evaluation.
type rubricOutput struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Evaluate grades the submitted answer. Multiple-choice inputs never
// reach the LLM: the score is 100 on a normalized exact match with the
// correct option and 0 otherwise.
func (e *Evaluator) Evaluate(ctx context.Context, input Input) (*Evaluation, error) {
	if strings.TrimSpace(input.UserAnswer) == "" {
		return e.grade(0, fmt.Sprintf("No answer was given. The correct answer is %q; see %s.",
			input.CorrectAnswer, citationFor(input.SourceChunks))), nil
	}

	if len(input.Options) > 0 {
		return e.evaluateChoice(input), nil
	}
	return e.evaluateFreeText(ctx, input)
}

// evaluateChoice grades a multiple-choice answer by normalized match.
func (e *Evaluator) evaluateChoice(input Input) *Evaluation {
	citation := citationFor(input.SourceChunks)

	if normalize(input.UserAnswer) == normalize(input.CorrectAnswer) {
		return e.grade(100, fmt.Sprintf("Correct. %q is the right answer; see %s.",
			input.CorrectAnswer, citation))
	}
	return e.grade(0, fmt.Sprintf("Incorrect. The correct answer is %q; see %s.",
		input.CorrectAnswer, citation))
}

// evaluateFreeText grades an open answer with an LLM rubric.
func (e *Evaluator) evaluateFreeText(ctx context.Context, input Input) (*Evaluation, error) {
	ctx = llm.WithPurpose(ctx, "evaluation")

	req := llm.Request{
		System: rubricSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRubricMessage(input, e.cfg.MaxContextChars)},
		},
		Schema:      RubricSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, &EvaluationError{Document: input.DocumentID, Err: err}
	}

	var raw rubricOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &EvaluationError{Document: input.DocumentID, Err: err}
	}

	score := raw.Score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	feedback := strings.TrimSpace(raw.Feedback)
	if feedback == "" {
		feedback = fmt.Sprintf("The correct answer is %q; see %s.",
			input.CorrectAnswer, citationFor(input.SourceChunks))
	}

	return e.grade(score, feedback), nil
}

// grade builds an Evaluation whose verdict agrees with the score.
func (e *Evaluator) grade(score int, feedback string) *Evaluation {
	return &Evaluation{
		Score:    score,
		Correct:  score >= e.cfg.PassThreshold,
		Feedback: feedback,
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// citationFor names the first supporting chunk, falling back to the
// document as a whole.
func citationFor(chunks []chunker.Chunk) string {
	if len(chunks) == 0 {
		return "the document"
	}
	return chunks[0].Locator
}
