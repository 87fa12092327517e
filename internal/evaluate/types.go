package evaluate

import (
	"fmt"

	"github.com/abhisek/docent/internal/chunker"
)

// Evaluation is the graded result of a submitted answer.
type Evaluation struct {
	// Score is the grade in [0,100].
	Score int

	// Correct reports whether Score reached the pass threshold.
	// Always consistent with Score.
	Correct bool

	// Feedback explains the grade. It restates the correct answer and
	// points at supporting text.
	Feedback string
}

// Input holds everything needed to evaluate one submitted answer.
type Input struct {
	// DocumentID identifies the source document, used in error reporting.
	DocumentID string

	// Question is the prompt the user answered.
	Question string

	// CorrectAnswer is the known correct answer.
	CorrectAnswer string

	// UserAnswer is what the user submitted.
	UserAnswer string

	// Options, when non-empty, marks this as a multiple-choice
	// evaluation graded by exact option match.
	Options []string

	// SourceChunks ground the rubric and the feedback citation.
	SourceChunks []chunker.Chunk
}

// EvaluationError reports a failure while grading a free-text answer.
// The caller may retry or present the evaluation as unavailable.
type EvaluationError struct {
	Document string
	Err      error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("answer evaluation failed for document %s: %v", e.Document, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }
