package extract

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestExtract_PlainText(t *testing.T) {
	path := writeTempFile(t, "notes.txt", "  First line.  \n\n\n\nSecond paragraph.\n")

	res, err := NewExtractor().Extract(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("expected success status, got %q", res.Status)
	}
	want := "First line.\n\nSecond paragraph."
	if res.Text != want {
		t.Fatalf("normalized text = %q, want %q", res.Text, want)
	}
	if len(res.PageOffsets) != 0 {
		t.Fatal("plain text must not carry page offsets")
	}
}

func TestExtract_Markdown(t *testing.T) {
	path := writeTempFile(t, "readme.md", "# Title\n\nBody text here.")

	res, err := NewExtractor().Extract(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Text, "Body text here.") {
		t.Fatalf("markdown body missing from %q", res.Text)
	}
}

func TestExtract_EmptyFileFails(t *testing.T) {
	path := writeTempFile(t, "empty.txt", "   \n\n  \n")

	_, err := NewExtractor().Extract(path)
	if err == nil {
		t.Fatal("expected error for empty file")
	}
	var exErr *ExtractError
	if !errors.As(err, &exErr) {
		t.Fatalf("expected ExtractError, got %T", err)
	}
	if exErr.File != "empty.txt" {
		t.Fatalf("error should name the file, got %q", exErr.File)
	}
}

func TestExtract_UnsupportedType(t *testing.T) {
	path := writeTempFile(t, "sheet.xlsx", "not really a spreadsheet")

	_, err := NewExtractor().Extract(path)
	if err == nil {
		t.Fatal("expected error for unsupported type")
	}
	var exErr *ExtractError
	if !errors.As(err, &exErr) {
		t.Fatalf("expected ExtractError, got %T", err)
	}
	if exErr.Format != ".xlsx" {
		t.Fatalf("error should carry the format, got %q", exErr.Format)
	}
}

func writeTestDocx(t *testing.T, documentXML string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.docx")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return path
}

func TestExtract_Docx(t *testing.T) {
	xml := `<?xml version="1.0"?><w:document><w:body>` +
		`<w:p><w:r><w:t>Hello &amp; welcome.</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Second paragraph.</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	path := writeTestDocx(t, xml)

	res, err := NewExtractor().Extract(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Text, "Hello & welcome.") {
		t.Fatalf("entity decoding failed: %q", res.Text)
	}
	if !strings.Contains(res.Text, "Second paragraph.") {
		t.Fatalf("second paragraph missing: %q", res.Text)
	}
}

func TestExtract_DocxWithoutDocumentXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	zw := zip.NewWriter(f)
	w, _ := zw.Create("word/other.xml")
	_, _ = w.Write([]byte("<nothing/>"))
	_ = zw.Close()
	_ = f.Close()

	_, err = NewExtractor().Extract(path)
	if err == nil {
		t.Fatal("expected error for docx without document.xml")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"trims lines", "  a  \n  b  ", "a\nb"},
		{"collapses blank runs", "a\n\n\n\n\nb", "a\n\nb"},
		{"trims edges", "\n\n a \n\n", "a"},
		{"empty", "   \n  \n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
