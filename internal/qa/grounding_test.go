package qa

import (
	"reflect"
	"testing"

	"github.com/abhisek/docent/internal/chunker"
	"github.com/abhisek/docent/internal/retrieval"
)

func scoredChunks(scores ...float64) []retrieval.Scored {
	out := make([]retrieval.Scored, len(scores))
	for i, s := range scores {
		out[i] = retrieval.Scored{
			Chunk: chunker.Chunk{Index: i, Locator: "Paragraph " + string(rune('1'+i))},
			Score: s,
		}
	}
	return out
}

func TestCitedLocators(t *testing.T) {
	selected := scoredChunks(3.0, 2.0, 1.0)

	tests := []struct {
		name  string
		cited []int
		want  []string
	}{
		{"valid in order", []int{1, 3}, []string{"Paragraph 1", "Paragraph 3"}},
		{"out of range dropped", []int{0, 4, 2}, []string{"Paragraph 2"}},
		{"duplicates dropped", []int{1, 1, 1}, []string{"Paragraph 1"}},
		{"all invalid", []int{-1, 0, 99}, nil},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := citedLocators(tt.cited, selected)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("citedLocators(%v) = %v, want %v", tt.cited, got, tt.want)
			}
		})
	}
}

func TestConfidence_EmptySelection(t *testing.T) {
	if got := confidence(nil, 0, true); got != 0 {
		t.Errorf("expected 0 for empty selection, got %f", got)
	}
}

func TestConfidence_RisesWithTopScore(t *testing.T) {
	low := confidence(scoredChunks(0.5, 0.1), 1, true)
	high := confidence(scoredChunks(5.0, 0.1), 1, true)
	if high <= low {
		t.Errorf("higher top score should raise confidence: %f vs %f", high, low)
	}
}

func TestConfidence_RisesWithCitations(t *testing.T) {
	selected := scoredChunks(2.0, 1.5, 1.0)
	few := confidence(selected, 1, true)
	many := confidence(selected, 3, true)
	if many <= few {
		t.Errorf("more citations should raise confidence: %f vs %f", many, few)
	}
}

func TestConfidence_Bounded(t *testing.T) {
	if got := confidence(scoredChunks(1000.0), 1, true); got > 1 {
		t.Errorf("confidence must not exceed 1, got %f", got)
	}
	if got := confidence(scoredChunks(-2.0), 0, true); got < 0 {
		t.Errorf("confidence must not go negative, got %f", got)
	}
}

func TestConfidence_NotFoundCapped(t *testing.T) {
	// Strong retrieval signal, but the model reported not-found.
	got := confidence(scoredChunks(10.0, 8.0, 6.0), 3, false)
	if got > 0.3 {
		t.Errorf("not-found confidence must be capped at 0.3, got %f", got)
	}
}
