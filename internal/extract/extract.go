package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
)

// Status reports how completely a document's text was recovered.
type Status string

const (
	// StatusSuccess means every part of the source yielded text.
	StatusSuccess Status = "success"
	// StatusPartial means some pages failed to extract but usable text
	// remains (scanned or malformed pages in an otherwise fine PDF).
	StatusPartial Status = "partial"
)

// Result is the extracted text plus enough structure for locators.
type Result struct {
	Text string

	// PageOffsets holds the byte offset where each page begins within
	// Text. Empty for formats without page structure.
	PageOffsets []int

	Status Status
}

// ExtractError reports an extraction failure with enough context for
// the caller to tell the user what to do about it.
type ExtractError struct {
	File   string
	Format string
	Reason string
	Err    error
}

func (e *ExtractError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract %s (%s): %s: %v", e.File, e.Format, e.Reason, e.Err)
	}
	return fmt.Sprintf("extract %s (%s): %s", e.File, e.Format, e.Reason)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// Extractor turns source files into plain text. Supported formats:
// .txt and .md (verbatim), .pdf (per-page plain text), .docx (XML tag
// stripping). Anything else is rejected up front.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// SupportedExtensions lists the file extensions Extract accepts.
func SupportedExtensions() []string {
	return []string{".txt", ".md", ".pdf", ".docx"}
}

// Extract reads and extracts the file at path, dispatching on its
// extension. The returned text is normalized: trimmed lines, blank-line
// runs collapsed to single paragraph breaks.
func (x *Extractor) Extract(path string) (*Result, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".txt", ".md":
		return x.extractPlain(path, ext)
	case ".pdf":
		return x.extractPDF(path)
	case ".docx":
		return x.extractDOCX(path)
	default:
		return nil, &ExtractError{
			File:   filepath.Base(path),
			Format: ext,
			Reason: "unsupported file type",
		}
	}
}

func (x *Extractor) extractPlain(path, ext string) (*Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExtractError{File: filepath.Base(path), Format: ext, Reason: "read failed", Err: err}
	}

	text := Normalize(string(b))
	if text == "" {
		return nil, &ExtractError{File: filepath.Base(path), Format: ext, Reason: "file contains no text"}
	}

	return &Result{Text: text, Status: StatusSuccess}, nil
}

func (x *Extractor) extractPDF(path string) (*Result, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, &ExtractError{File: filepath.Base(path), Format: ".pdf", Reason: "open failed", Err: err}
	}
	defer f.Close()

	var b strings.Builder
	var offsets []int
	failed := 0

	total := reader.NumPage()
	for pageIndex := 1; pageIndex <= total; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			failed++
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			log.Debug().Int("page", pageIndex).Err(err).Msg("pdf page extraction failed")
			failed++
			continue
		}

		pageText := Normalize(content)
		if pageText == "" {
			continue
		}

		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		offsets = append(offsets, b.Len())
		b.WriteString(pageText)
	}

	text := b.String()
	if text == "" {
		return nil, &ExtractError{File: filepath.Base(path), Format: ".pdf", Reason: "no extractable text (scanned document?)"}
	}

	status := StatusSuccess
	if failed > 0 {
		status = StatusPartial
	}
	return &Result{Text: text, PageOffsets: offsets, Status: status}, nil
}

func (x *Extractor) extractDOCX(path string) (*Result, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, &ExtractError{File: filepath.Base(path), Format: ".docx", Reason: "open failed", Err: err}
	}
	defer r.Close()

	var documentXML []byte
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return nil, &ExtractError{File: filepath.Base(path), Format: ".docx", Reason: "read document.xml", Err: err}
			}
			documentXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return nil, &ExtractError{File: filepath.Base(path), Format: ".docx", Reason: "read document.xml", Err: err}
			}
			break
		}
	}

	if len(documentXML) == 0 {
		return nil, &ExtractError{File: filepath.Base(path), Format: ".docx", Reason: "document.xml not found"}
	}

	text := Normalize(stripDocXML(documentXML))
	if text == "" {
		return nil, &ExtractError{File: filepath.Base(path), Format: ".docx", Reason: "no extractable text"}
	}

	return &Result{Text: text, Status: StatusSuccess}, nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// stripDocXML reduces WordprocessingML to plain text: paragraph and
// break tags become newlines, every other tag is dropped, basic
// entities are decoded.
func stripDocXML(src []byte) string {
	s := string(src)

	s = strings.ReplaceAll(s, "</w:p>", "\n")
	s = strings.ReplaceAll(s, "<w:br/>", "\n")
	s = strings.ReplaceAll(s, "<w:br />", "\n")
	s = strings.ReplaceAll(s, "<w:tab/>", "\t")

	s = xmlTagPattern.ReplaceAllString(s, "")

	replacer := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
	return replacer.Replace(s)
}

// Normalize cleans up extracted text: CRLF to LF, trimmed lines, runs
// of blank lines collapsed so paragraphs are separated by exactly one
// blank line. The chunker relies on that invariant for paragraph
// locators.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	buf := bytes.Buffer{}

	emptyCount := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			emptyCount++
			if emptyCount > 1 {
				continue
			}
			buf.WriteString("\n")
			continue
		}
		emptyCount = 0
		buf.WriteString(trimmed)
		buf.WriteString("\n")
	}

	return strings.TrimSpace(buf.String())
}
