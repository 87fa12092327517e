package retrieval

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/abhisek/docent/internal/chunker"
)

func makeChunks(texts ...string) []chunker.Chunk {
	chunks := make([]chunker.Chunk, len(texts))
	pos := 0
	for i, txt := range texts {
		chunks[i] = chunker.Chunk{
			Index:   i,
			Start:   pos,
			End:     pos + len(txt),
			Locator: "Paragraph " + string(rune('1'+i)),
			Text:    txt,
		}
		pos += len(txt)
	}
	return chunks
}

func TestLexical_RanksMatchingChunkFirst(t *testing.T) {
	chunks := makeChunks(
		"The sky is blue.",
		"Grass is green and grass grows.",
		"Water is wet.",
	)
	sel := NewLexicalSelector()

	got, err := sel.Select(context.Background(), "What color is grass?", chunks, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	if got[0].Chunk.Index != 1 {
		t.Fatalf("expected grass chunk first, got index %d", got[0].Chunk.Index)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("scores not non-increasing at position %d", i)
		}
	}
}

func TestLexical_AtMostK(t *testing.T) {
	chunks := makeChunks("alpha one", "alpha two", "alpha three", "alpha four")
	sel := NewLexicalSelector()

	got, err := sel.Select(context.Background(), "alpha", chunks, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
}

func TestLexical_FewerChunksThanK(t *testing.T) {
	chunks := makeChunks("only one chunk here")
	sel := NewLexicalSelector()

	got, err := sel.Select(context.Background(), "chunk", chunks, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
}

func TestLexical_EmptyChunkSet(t *testing.T) {
	sel := NewLexicalSelector()
	got, err := sel.Select(context.Background(), "anything", nil, 5)
	if err != nil {
		t.Fatalf("empty chunk set must not fail: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestLexical_TiesBrokenByAscendingIndex(t *testing.T) {
	// Identical texts score identically; order must follow chunk index.
	chunks := makeChunks("same text", "same text", "same text")
	sel := NewLexicalSelector()

	got, err := sel.Select(context.Background(), "text", chunks, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, s := range got {
		if s.Chunk.Index != i {
			t.Fatalf("tie order broken: position %d holds index %d", i, s.Chunk.Index)
		}
	}
}

func TestLexical_MoreMatchesNeverLowerScore(t *testing.T) {
	base := makeChunks("grass on the hill", "something unrelated")
	richer := makeChunks("grass on the hill with more grass", "something unrelated")
	sel := NewLexicalSelector()

	gotBase, err := sel.Select(context.Background(), "grass", base, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gotRicher, err := sel.Select(context.Background(), "grass", richer, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotRicher[0].Score < gotBase[0].Score {
		t.Fatalf("adding a matching term lowered the score: %f < %f",
			gotRicher[0].Score, gotBase[0].Score)
	}
}

func TestLexical_Deterministic(t *testing.T) {
	chunks := makeChunks(
		"The quick brown fox jumps over the lazy dog.",
		"Pack my box with five dozen liquor jugs.",
		"How vexingly quick daft zebras jump.",
	)
	sel := NewLexicalSelector()

	first, err := sel.Select(context.Background(), "quick jumping animals", chunks, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := sel.Select(context.Background(), "quick jumping animals", chunks, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated selection produced different rankings")
	}
}

func TestLexical_ZeroScoreChunksStillFillK(t *testing.T) {
	chunks := makeChunks("relevant grass text", "nothing in common", "also unrelated")
	sel := NewLexicalSelector()

	got, err := sel.Select(context.Background(), "grass", chunks, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 results including zero-score chunks, got %d", len(got))
	}
	if got[0].Chunk.Index != 0 || got[0].Score <= 0 {
		t.Fatalf("expected the matching chunk on top, got index %d score %f",
			got[0].Chunk.Index, got[0].Score)
	}
	if got[1].Chunk.Index != 1 || got[2].Chunk.Index != 2 {
		t.Fatal("zero-score chunks must keep ascending index order")
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("What's the Sky-Color, really?")
	want := []string{"what", "s", "the", "sky", "color", "really"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("tokenize = %v, want %v", got, want)
	}
}
