package retrieval

import (
	"context"
	"math"
	"strings"
	"unicode"

	"github.com/abhisek/docent/internal/chunker"
)

// LexicalSelector scores chunks by weighted term overlap with the query.
// Per query term, weight is a rarity factor ln(1 + N/df) times a
// saturating frequency factor 1 + ln(1 + tf). Both factors are positive
// and grow with matches, so adding matching terms to a chunk can only
// raise its score. No external calls, no state; safe for concurrent use.
type LexicalSelector struct{}

// NewLexicalSelector returns the default relevance scorer.
func NewLexicalSelector() *LexicalSelector {
	return &LexicalSelector{}
}

func (s *LexicalSelector) Select(_ context.Context, query string, chunks []chunker.Chunk, k int) ([]Scored, error) {
	if len(chunks) == 0 || k <= 0 {
		return nil, nil
	}

	terms := uniqueTokens(query)

	// Term frequency per chunk and document frequency per term.
	freqs := make([]map[string]int, len(chunks))
	df := make(map[string]int, len(terms))
	for i, c := range chunks {
		tf := termCounts(c.Text)
		freqs[i] = tf
		for _, t := range terms {
			if tf[t] > 0 {
				df[t]++
			}
		}
	}

	n := float64(len(chunks))
	scored := make([]Scored, len(chunks))
	for i, c := range chunks {
		var score float64
		for _, t := range terms {
			tf := freqs[i][t]
			if tf == 0 {
				continue
			}
			rarity := math.Log(1 + n/float64(df[t]))
			score += rarity * (1 + math.Log(1+float64(tf)))
		}
		scored[i] = Scored{Chunk: c, Score: score}
	}

	return rank(scored, k), nil
}

// tokenize lowercases and splits on anything that is not a letter or
// digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// uniqueTokens returns the distinct tokens of text in first-seen order,
// which keeps score accumulation order stable.
func uniqueTokens(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range tokenize(text) {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, t := range tokenize(text) {
		counts[t]++
	}
	return counts
}
