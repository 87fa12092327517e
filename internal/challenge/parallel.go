package challenge

import (
	"fmt"
	"unicode/utf8"
)

// defaultMaxLengthRatio is the allowed spread between the longest and
// shortest option. Beyond it the odd option out gives the answer away.
const defaultMaxLengthRatio = 3.0

// ParallelOptionsValidator checks that the 4 options are of comparable
// length, so the correct one cannot be picked by shape alone.
type ParallelOptionsValidator struct {
	// MaxRatio overrides the allowed longest/shortest length ratio
	// when positive.
	MaxRatio float64
}

func (v *ParallelOptionsValidator) Name() string { return "parallel-options" }

func (v *ParallelOptionsValidator) Validate(q *Question, _ Input) *ValidationError {
	if len(q.Options) == 0 {
		return nil // structural validator reports this case
	}

	ratio := v.MaxRatio
	if ratio <= 0 {
		ratio = defaultMaxLengthRatio
	}

	shortest, longest := -1, 0
	for _, opt := range q.Options {
		n := utf8.RuneCountInString(opt)
		if shortest == -1 || n < shortest {
			shortest = n
		}
		if n > longest {
			longest = n
		}
	}
	if shortest < 1 {
		return nil // empty options are a structural failure
	}

	if float64(longest) > ratio*float64(shortest) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("option lengths too uneven: %d vs %d characters", shortest, longest),
			Retryable: true,
		}
	}
	return nil
}
