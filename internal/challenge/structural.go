package challenge

import (
	"fmt"
	"strings"
)

const (
	minQuestionLen = 5
	maxQuestionLen = 1000
	optionCount    = 4
)

// StructuralValidator checks that required fields are present, within
// length limits, and that the option set is well formed.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ Input) *ValidationError {
	text := strings.TrimSpace(q.Text)
	if len(text) < minQuestionLen {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("question text shorter than %d characters", minQuestionLen),
			Retryable: true,
		}
	}
	if len(text) > maxQuestionLen {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("question text exceeds %d characters", maxQuestionLen),
			Retryable: true,
		}
	}
	if len(q.Options) != optionCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d options, got %d", optionCount, len(q.Options)),
			Retryable: true,
		}
	}

	seen := make(map[string]bool, optionCount)
	matches := 0
	for _, opt := range q.Options {
		norm := normalizeOption(opt)
		if norm == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "option is empty",
				Retryable: true,
			}
		}
		if seen[norm] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate option %q", opt),
				Retryable: true,
			}
		}
		seen[norm] = true
		if norm == normalizeOption(q.Answer) {
			matches++
		}
	}
	if matches != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer does not match exactly one option",
			Retryable: true,
		}
	}

	if strings.TrimSpace(q.Explanation) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if !q.Difficulty.Valid() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown difficulty %q", q.Difficulty),
			Retryable: true,
		}
	}
	return nil
}

func normalizeOption(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
