package qa

import (
	"errors"
	"fmt"

	"github.com/abhisek/docent/internal/chunker"
)

var (
	// ErrEmptyDocument is returned when the document has no chunks to
	// answer from. No LLM call is made in that case.
	ErrEmptyDocument = errors.New("document has no text content")

	// ErrEmptyQuestion is returned when the question is blank.
	ErrEmptyQuestion = errors.New("question is empty")
)

// Answer is a grounded response to a question about a document.
type Answer struct {
	// Text is the answer shown to the user. When Found is false it
	// states that the document does not contain the information.
	Text string

	// Citations lists the locators of the chunks the answer draws on.
	// Non-empty whenever Found is true.
	Citations []string

	// Confidence is a heuristic reliability estimate in [0,1], derived
	// from retrieval scores and citation coverage.
	Confidence float64

	// Found reports whether the document contained relevant information.
	Found bool
}

// Input holds everything needed to answer one question about one document.
type Input struct {
	// DocumentID identifies the source document, used in error reporting.
	DocumentID string

	// Question is the user's question.
	Question string

	// Chunks is the document's full chunk set to retrieve from.
	Chunks []chunker.Chunk
}

// GenerationError reports a failure while producing an answer, with
// enough context for the caller to log which document and stage failed.
type GenerationError struct {
	Document string
	Stage    string // "select", "generate", or "parse"
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("answer generation failed for document %s at stage %s: %v", e.Document, e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
