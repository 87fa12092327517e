package challenge

import "fmt"

// SourceLocatorValidator checks that every source locator a question
// claims actually exists in the document's chunk set, so evaluation
// feedback can always trace back to real text.
type SourceLocatorValidator struct{}

func (v *SourceLocatorValidator) Name() string { return "source-locators" }

func (v *SourceLocatorValidator) Validate(q *Question, input Input) *ValidationError {
	if len(q.SourceLocators) == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "no source locators",
			Retryable: true,
		}
	}

	known := make(map[string]bool, len(input.Chunks))
	for _, c := range input.Chunks {
		known[c.Locator] = true
	}

	for _, loc := range q.SourceLocators {
		if !known[loc] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("locator %q not found in document", loc),
				Retryable: true,
			}
		}
	}
	return nil
}
