package challenge

import (
	"fmt"

	"github.com/abhisek/docent/internal/chunker"
)

// Difficulty tags how demanding a question is.
type Difficulty string

const (
	// DifficultyEasy asks for facts stated directly in the text.
	DifficultyEasy Difficulty = "easy"

	// DifficultyMedium asks the reader to apply or connect facts.
	DifficultyMedium Difficulty = "medium"

	// DifficultyHard asks for inferences the text supports but does not state.
	DifficultyHard Difficulty = "hard"
)

// Valid reports whether d is a recognized difficulty.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Question is a generated multiple-choice comprehension question.
type Question struct {
	// Text is the question prompt.
	Text string

	// Options contains exactly 4 answer options in display order.
	Options []string

	// Answer is the text of the correct option. Always matches exactly
	// one entry in Options.
	Answer string

	// Explanation says why the correct option is right.
	Explanation string

	// Difficulty is the difficulty the batch was generated for.
	Difficulty Difficulty

	// SourceLocators points at the chunks that support the correct
	// answer, for evaluation feedback later.
	SourceLocators []string
}

// Input holds everything needed to generate one batch of questions.
type Input struct {
	// DocumentID identifies the source document, used in error reporting.
	DocumentID string

	// Chunks is the document's full chunk set.
	Chunks []chunker.Chunk

	// Difficulty applies to every question in the batch.
	Difficulty Difficulty

	// Count is the number of questions requested.
	Count int
}

// RequestError reports invalid generation parameters. It is a caller
// bug and never worth retrying.
type RequestError struct {
	Field  string
	Reason string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("invalid challenge request: %s %s", e.Field, e.Reason)
}

// InsufficientContentError signals that the document could not support
// the full requested batch. It is non-fatal: the questions that were
// generated accompany it.
type InsufficientContentError struct {
	Requested int
	Generated int
	Reason    string
}

func (e *InsufficientContentError) Error() string {
	return fmt.Sprintf("generated %d of %d requested questions: %s", e.Generated, e.Requested, e.Reason)
}

// GenerationError reports a failure while producing a batch, with
// enough context for the caller to log which document and stage failed.
type GenerationError struct {
	Document string
	Stage    string // "generate" or "parse"
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("challenge generation failed for document %s at stage %s: %v", e.Document, e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
