package retrieval

import (
	"context"
	"math"
	"strings"
	"testing"

	chromem "github.com/philippgille/chromem-go"
)

// vocabEmbedding is a deterministic embedding for tests: it counts
// occurrences of a tiny vocabulary plus a constant bias dimension, then
// normalizes. No network, stable across runs.
func vocabEmbedding(_ context.Context, text string) ([]float32, error) {
	vocab := []string{"sky", "grass", "water"}
	lower := strings.ToLower(text)

	vec := make([]float32, len(vocab)+1)
	for i, w := range vocab {
		vec[i] = float32(strings.Count(lower, w))
	}
	vec[len(vocab)] = 0.1

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
	return vec, nil
}

func newTestCollection(t *testing.T) *chromem.Collection {
	t.Helper()
	db := chromem.NewDB()
	col, err := db.GetOrCreateCollection("doc-test", nil, vocabEmbedding)
	if err != nil {
		t.Fatalf("create collection: %v", err)
	}
	return col
}

func TestVector_RanksBySimilarity(t *testing.T) {
	chunks := makeChunks(
		"The sky is blue today.",
		"Grass is green and grass grows everywhere.",
		"Water is wet.",
	)
	col := newTestCollection(t)
	if err := IndexChunks(context.Background(), col, chunks); err != nil {
		t.Fatalf("index: %v", err)
	}

	sel := NewVectorSelector(col)
	got, err := sel.Select(context.Background(), "tell me about grass", chunks, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Chunk.Index != 1 {
		t.Fatalf("expected grass chunk first, got index %d", got[0].Chunk.Index)
	}
	if got[0].Score < got[1].Score {
		t.Fatal("scores not non-increasing")
	}
}

func TestVector_ClampsKToCollectionSize(t *testing.T) {
	chunks := makeChunks("the sky", "the grass")
	col := newTestCollection(t)
	if err := IndexChunks(context.Background(), col, chunks); err != nil {
		t.Fatalf("index: %v", err)
	}

	sel := NewVectorSelector(col)
	got, err := sel.Select(context.Background(), "sky and grass and water", chunks, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
}

func TestVector_EmptyChunkSet(t *testing.T) {
	col := newTestCollection(t)
	sel := NewVectorSelector(col)

	got, err := sel.Select(context.Background(), "anything", nil, 3)
	if err != nil {
		t.Fatalf("empty chunk set must not fail: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestVector_ResultsCarryChunkMetadata(t *testing.T) {
	chunks := makeChunks("sky chunk", "grass chunk")
	col := newTestCollection(t)
	if err := IndexChunks(context.Background(), col, chunks); err != nil {
		t.Fatalf("index: %v", err)
	}

	sel := NewVectorSelector(col)
	got, err := sel.Select(context.Background(), "grass", chunks, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Chunk.Locator == "" || got[0].Chunk.Text == "" {
		t.Fatalf("selector must return full chunks, got %+v", got[0].Chunk)
	}
}

func TestCollectionName(t *testing.T) {
	if got := CollectionName("abc-123"); got != "doc-abc-123" {
		t.Fatalf("unexpected collection name %q", got)
	}
}
