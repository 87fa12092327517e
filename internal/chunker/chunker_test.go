package chunker

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplit_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero size", Config{Size: 0, Overlap: 0}},
		{"negative size", Config{Size: -5, Overlap: 0}},
		{"negative overlap", Config{Size: 100, Overlap: -1}},
		{"overlap equals size", Config{Size: 100, Overlap: 100}},
		{"overlap exceeds size", Config{Size: 100, Overlap: 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split("some text", tt.cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %T: %v", err, err)
			}
		})
	}
}

func TestSplit_EmptyTextYieldsNoChunks(t *testing.T) {
	chunks, err := Split("", DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 0 {
		t.Fatalf("expected no chunks, got %d", len(chunks))
	}
}

func TestSplit_ShortTextIsSingleChunk(t *testing.T) {
	text := "A single short paragraph."
	chunks, err := Split(text, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	c := chunks[0]
	if c.Start != 0 || c.End != len(text) || c.Text != text {
		t.Fatalf("chunk does not span the text: %+v", c)
	}
	if c.Locator != "Paragraph 1" {
		t.Fatalf("expected locator 'Paragraph 1', got %q", c.Locator)
	}
}

// assertCoverage checks the span invariant: first chunk starts at 0, the
// last ends at len(text), every span matches its text, and consecutive
// chunks leave no gap.
func assertCoverage(t *testing.T, text string, chunks []Chunk) {
	t.Helper()
	if len(chunks) == 0 {
		t.Fatal("no chunks")
	}
	if chunks[0].Start != 0 {
		t.Fatalf("first chunk starts at %d, want 0", chunks[0].Start)
	}
	if last := chunks[len(chunks)-1]; last.End != len(text) {
		t.Fatalf("last chunk ends at %d, want %d", last.End, len(text))
	}
	for i, c := range chunks {
		if c.Index != i {
			t.Fatalf("chunk %d has index %d", i, c.Index)
		}
		if c.Text != text[c.Start:c.End] {
			t.Fatalf("chunk %d text does not match its span", i)
		}
		if c.End <= c.Start {
			t.Fatalf("chunk %d has empty span [%d,%d)", i, c.Start, c.End)
		}
		if i > 0 && c.Start > chunks[i-1].End {
			t.Fatalf("gap between chunk %d (end %d) and chunk %d (start %d)",
				i-1, chunks[i-1].End, i, c.Start)
		}
	}
}

func TestSplit_CoverageAcrossShapes(t *testing.T) {
	tests := []struct {
		name string
		text string
		cfg  Config
	}{
		{
			"paragraphs",
			"First paragraph with a few sentences. More here.\n\nSecond paragraph follows on.\n\nThird one closes the document.",
			Config{Size: 50, Overlap: 10},
		},
		{
			"one long paragraph",
			strings.Repeat("Reasonably sized sentences keep on coming here. ", 40),
			Config{Size: 200, Overlap: 40},
		},
		{
			"no break opportunities",
			strings.Repeat("x", 500),
			Config{Size: 64, Overlap: 8},
		},
		{
			"tiny chunks",
			"alpha beta gamma delta epsilon",
			Config{Size: 8, Overlap: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := Split(tt.text, tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertCoverage(t, tt.text, chunks)
			for i, c := range chunks {
				if len(c.Text) > tt.cfg.Size {
					t.Fatalf("chunk %d exceeds size: %d > %d", i, len(c.Text), tt.cfg.Size)
				}
			}
		})
	}
}

func TestSplit_IsDeterministic(t *testing.T) {
	text := "Determinism matters for caching. The same input must yield the same chunks.\n\nEvery time, without exception."
	cfg := Config{Size: 40, Overlap: 10}

	first, err := Split(text, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Split(text, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated Split calls produced different chunk sequences")
	}
}

func TestSplit_SkyGrassScenario(t *testing.T) {
	text := "The sky is blue. Grass is green."
	chunks, err := Split(text, Config{Size: 20, Overlap: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}
	assertCoverage(t, text, chunks)

	found := false
	for _, c := range chunks {
		if strings.Contains(c.Text, "Grass is green") {
			found = true
		}
	}
	if !found {
		t.Fatal("no chunk contains 'Grass is green'")
	}
}

func TestSplit_PrefersSentenceBoundaries(t *testing.T) {
	text := "The sky is blue. Grass is green."
	chunks, err := Split(text, Config{Size: 20, Overlap: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := chunks[0].Text; got != "The sky is blue." {
		t.Fatalf("first chunk should end at the sentence boundary, got %q", got)
	}
}

func TestSplit_ParagraphLocators(t *testing.T) {
	text := "First paragraph.\n\nSecond paragraph.\n\nThird paragraph."
	chunks, err := Split(text, Config{Size: 18, Overlap: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chunks[0].Locator != "Paragraph 1" {
		t.Fatalf("chunk 0 locator = %q", chunks[0].Locator)
	}
	var sawLater bool
	for _, c := range chunks[1:] {
		if c.Locator == "Paragraph 2" || c.Locator == "Paragraph 3" {
			sawLater = true
		}
	}
	if !sawLater {
		t.Fatal("no chunk was attributed to a later paragraph")
	}
}

func TestSplit_PageLocators(t *testing.T) {
	page1 := "Content of the opening page.\n\n"
	page2 := "Content of the second page, which continues."
	text := page1 + page2

	chunks, err := Split(text, Config{
		Size:        30,
		Overlap:     5,
		PageOffsets: []int{0, len(page1)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(chunks[0].Locator, "Page 1, Paragraph ") {
		t.Fatalf("chunk 0 locator = %q", chunks[0].Locator)
	}
	var sawPage2 bool
	for _, c := range chunks {
		if strings.HasPrefix(c.Locator, "Page 2, ") {
			sawPage2 = true
		}
	}
	if !sawPage2 {
		t.Fatal("no chunk attributed to page 2")
	}
}

func TestSplit_KeepsRunesIntact(t *testing.T) {
	text := strings.Repeat("héllo wörld ünïcodé tæxt ", 30)
	chunks, err := Split(text, Config{Size: 50, Overlap: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCoverage(t, text, chunks)
	for i, c := range chunks {
		if !utf8.ValidString(c.Text) {
			t.Fatalf("chunk %d contains a broken rune", i)
		}
	}
}

func TestPreview(t *testing.T) {
	if got := Preview("short", 10); got != "short" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
	long := strings.Repeat("word ", 20)
	got := Preview(long, 12)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected truncation marker, got %q", got)
	}
	if len(got) > 12+len("…") {
		t.Fatalf("preview too long: %d bytes", len(got))
	}
}

func TestFindByLocator(t *testing.T) {
	text := "One.\n\nTwo.\n\nThree."
	chunks, err := Split(text, Config{Size: 6, Overlap: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := chunks[len(chunks)-1]
	got, ok := FindByLocator(chunks, want.Locator)
	if !ok {
		t.Fatalf("locator %q not found", want.Locator)
	}
	if got.Index != want.Index {
		t.Fatalf("found chunk %d, want %d", got.Index, want.Index)
	}
	if _, ok := FindByLocator(chunks, "Page 99, Paragraph 1"); ok {
		t.Fatal("unexpected match for unknown locator")
	}
}
