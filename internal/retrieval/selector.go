package retrieval

import (
	"context"
	"sort"

	"github.com/abhisek/docent/internal/chunker"
)

// Scored pairs a chunk with its relevance to a query.
type Scored struct {
	Chunk chunker.Chunk
	Score float64
}

// Selector ranks a document's chunks against a query and returns the
// top k, descending by score. Implementations must be deterministic:
// equal scores are ordered by ascending chunk index. An empty chunk set
// yields an empty result, never an error.
type Selector interface {
	Select(ctx context.Context, query string, chunks []chunker.Chunk, k int) ([]Scored, error)
}

// DefaultTopK is how many chunks feed a grounded prompt by default.
const DefaultTopK = 5

// rank orders scored chunks descending by score with ties broken by
// ascending chunk index, then truncates to k.
func rank(scored []Scored, k int) []Scored {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Chunk.Index < scored[j].Chunk.Index
	})
	if k < 0 {
		k = 0
	}
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}
