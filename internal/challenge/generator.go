package challenge

import "context"

// Generator produces a batch of challenge questions for a document.
type Generator interface {
	// Generate returns Count questions for the input document. When the
	// document cannot support a full batch, it returns the questions it
	// could produce together with an *InsufficientContentError; the
	// short batch is still usable.
	Generate(ctx context.Context, input Input) ([]Question, error)
}
