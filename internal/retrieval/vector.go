package retrieval

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	chromem "github.com/philippgille/chromem-go"

	"github.com/abhisek/docent/internal/chunker"
)

// VectorSelector ranks chunks by embedding similarity using a chromem
// collection that has been populated with the same chunks via
// IndexChunks. Falls back to nothing on its own: a collection that was
// never indexed yields empty results.
type VectorSelector struct {
	col *chromem.Collection
}

// NewVectorSelector wraps an existing chromem collection.
func NewVectorSelector(col *chromem.Collection) *VectorSelector {
	return &VectorSelector{col: col}
}

func (s *VectorSelector) Select(ctx context.Context, query string, chunks []chunker.Chunk, k int) ([]Scored, error) {
	if len(chunks) == 0 || k <= 0 {
		return nil, nil
	}

	n := k
	if count := s.col.Count(); n > count {
		n = count
	}
	if n > len(chunks) {
		n = len(chunks)
	}
	if n == 0 {
		return nil, nil
	}

	results, err := s.col.Query(ctx, query, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("vector query: %w", err)
	}

	byIndex := make(map[int]chunker.Chunk, len(chunks))
	for _, c := range chunks {
		byIndex[c.Index] = c
	}

	var scored []Scored
	for _, r := range results {
		idx, err := strconv.Atoi(r.ID)
		if err != nil {
			continue
		}
		c, ok := byIndex[idx]
		if !ok {
			continue
		}
		scored = append(scored, Scored{Chunk: c, Score: float64(r.Similarity)})
	}

	return rank(scored, k), nil
}

// IndexChunks writes a document's chunks into a chromem collection,
// keyed by chunk index, embedding them with the collection's embedding
// function.
func IndexChunks(ctx context.Context, col *chromem.Collection, chunks []chunker.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	docs := make([]chromem.Document, len(chunks))
	for i, c := range chunks {
		docs[i] = chromem.Document{
			ID:      strconv.Itoa(c.Index),
			Content: c.Text,
			Metadata: map[string]string{
				"locator": c.Locator,
			},
		}
	}

	if err := col.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("index chunks: %w", err)
	}
	return nil
}

// CollectionName returns the chromem collection name for a document.
func CollectionName(documentID string) string {
	return "doc-" + documentID
}
