package chunker

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Chunk is a contiguous, addressable slice of a document's extracted text.
// Chunks are the unit of retrieval and citation: everything the engine
// answers or asks is traceable to one or more of them.
type Chunk struct {
	// Index is the 0-based position of this chunk in the document order.
	Index int

	// Start and End are byte offsets into the source text, [Start, End).
	// Consecutive chunks may overlap; the union of all spans covers the
	// full text with no gaps.
	Start int
	End   int

	// Locator is the human-readable reference shown in citations,
	// e.g. "Page 3, Paragraph 2" or "Paragraph 7".
	Locator string

	// Text is the chunk content, exactly text[Start:End].
	Text string
}

// Config controls how a document is split.
type Config struct {
	// Size is the maximum chunk length in bytes.
	Size int

	// Overlap is how many bytes of the previous chunk are carried into
	// the next one for context continuity. Must be smaller than Size.
	Overlap int

	// PageOffsets, when present, holds the byte offset where each page
	// of the source document begins (the first entry is always 0).
	// Locators then carry page numbers.
	PageOffsets []int
}

// DefaultConfig mirrors the splitting parameters the engine was tuned
// with: 1000-byte chunks with a 200-byte overlap.
func DefaultConfig() Config {
	return Config{Size: 1000, Overlap: 200}
}

// ConfigError reports invalid splitting parameters. Callers get this
// back immediately, before any splitting work happens.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid chunker config: %s=%d (%s)", e.Field, e.Value, e.Reason)
}

func (c Config) validate() error {
	if c.Size <= 0 {
		return &ConfigError{Field: "size", Value: c.Size, Reason: "must be positive"}
	}
	if c.Overlap < 0 {
		return &ConfigError{Field: "overlap", Value: c.Overlap, Reason: "must not be negative"}
	}
	if c.Overlap >= c.Size {
		return &ConfigError{Field: "overlap", Value: c.Overlap, Reason: "must be smaller than size"}
	}
	return nil
}

// Split cuts text into an ordered sequence of overlapping chunks.
// Cuts prefer paragraph breaks, then sentence ends, then word breaks,
// within a bounded lookback window; only when none exists does a chunk
// end on a hard byte cut. The result is deterministic for identical
// input and config.
func Split(text string, cfg Config) ([]Chunk, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}

	locs := newLocatorIndex(text, cfg.PageOffsets)

	var chunks []Chunk
	start := 0
	for start < len(text) {
		end := start + cfg.Size
		if end >= len(text) {
			end = len(text)
		} else {
			end = breakPoint(text, start, end, cfg.Size)
		}

		chunks = append(chunks, Chunk{
			Index:   len(chunks),
			Start:   start,
			End:     end,
			Locator: locs.locate(start),
			Text:    text[start:end],
		})

		if end == len(text) {
			break
		}

		next := end - cfg.Overlap
		if next <= start {
			next = start + 1
		}
		for next < end && !utf8.RuneStart(text[next]) {
			next++
		}
		start = next
	}

	return chunks, nil
}

// breakPoint picks the cut position for a chunk starting at start whose
// hard limit is hardEnd. It scans back over at most a quarter of the
// chunk for, in order of preference, a paragraph break, a sentence end,
// or a space. Returns a position in (start, hardEnd].
func breakPoint(text string, start, hardEnd, size int) int {
	window := size / 4
	if window < 1 {
		window = 1
	}
	lo := hardEnd - window
	if lo <= start {
		lo = start + 1
	}

	paragraph, sentence, space := -1, -1, -1
	for i := hardEnd - 1; i >= lo; i-- {
		c := text[i]
		switch {
		case c == '\n' && i > 0 && text[i-1] == '\n':
			if paragraph < 0 {
				paragraph = i + 1
			}
		case (c == '.' || c == '!' || c == '?') && i+1 < len(text) && isBlank(text[i+1]):
			if sentence < 0 {
				sentence = i + 1
			}
		case c == ' ':
			if space < 0 {
				space = i + 1
			}
		}
	}

	switch {
	case paragraph > start:
		return paragraph
	case sentence > start:
		return sentence
	case space > start:
		return space
	}

	// Hard cut. Back off to a rune boundary so multi-byte characters
	// stay intact.
	end := hardEnd
	for end > start+1 && !utf8.RuneStart(text[end]) {
		end--
	}
	return end
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r'
}

// locatorIndex precomputes paragraph (and optionally page) boundaries
// so each chunk can be labeled by where it starts.
type locatorIndex struct {
	paragraphs []int // byte offsets where paragraphs begin
	pages      []int // byte offsets where pages begin; nil when unknown
}

func newLocatorIndex(text string, pageOffsets []int) *locatorIndex {
	idx := &locatorIndex{paragraphs: paragraphStarts(text)}
	if len(pageOffsets) > 0 {
		pages := make([]int, len(pageOffsets))
		copy(pages, pageOffsets)
		sort.Ints(pages)
		if pages[0] != 0 {
			pages = append([]int{0}, pages...)
		}
		idx.pages = pages
	}
	return idx
}

// paragraphStarts treats a blank line (two or more consecutive
// newlines) as the separator, which is the form extraction normalizes
// source text into.
func paragraphStarts(text string) []int {
	starts := []int{0}
	for i := 0; i+1 < len(text); i++ {
		if text[i] == '\n' && text[i+1] == '\n' {
			j := i + 1
			for j < len(text) && text[j] == '\n' {
				j++
			}
			if j < len(text) {
				starts = append(starts, j)
			}
			i = j - 1
		}
	}
	return starts
}

func (l *locatorIndex) locate(offset int) string {
	if l.pages == nil {
		return fmt.Sprintf("Paragraph %d", ordinal(l.paragraphs, offset))
	}

	page := ordinal(l.pages, offset)
	pageStart := l.pages[page-1]

	// Paragraph ordinal restarts on each page.
	par := 1
	for _, p := range l.paragraphs {
		if p > offset {
			break
		}
		if p > pageStart {
			par++
		}
	}
	return fmt.Sprintf("Page %d, Paragraph %d", page, par)
}

// ordinal returns 1 + the number of boundary offsets at or before the
// given offset, counting the implicit first region.
func ordinal(bounds []int, offset int) int {
	n := 0
	for _, b := range bounds {
		if b > offset {
			break
		}
		n++
	}
	if n == 0 {
		n = 1
	}
	return n
}

// Locators returns the locator of every chunk, in order. Convenient for
// building citation sets.
func Locators(chunks []Chunk) []string {
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Locator
	}
	return out
}

// FindByLocator returns the first chunk carrying the given locator.
func FindByLocator(chunks []Chunk, locator string) (Chunk, bool) {
	for _, c := range chunks {
		if c.Locator == locator {
			return c, true
		}
	}
	return Chunk{}, false
}

// Preview returns the first n bytes of text, cut at a rune boundary,
// with a trailing marker when truncated.
func Preview(text string, n int) string {
	if len(text) <= n {
		return text
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return strings.TrimRight(text[:cut], " \n") + "…"
}
