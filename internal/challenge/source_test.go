package challenge

import (
	"testing"

	"github.com/abhisek/docent/internal/chunker"
)

func sourceInput() Input {
	return Input{
		DocumentID: "doc-1",
		Chunks: []chunker.Chunk{
			{Index: 0, Locator: "Paragraph 1", Text: "Chlorophyll absorbs light."},
			{Index: 1, Locator: "Paragraph 2", Text: "Roots draw water from soil."},
		},
	}
}

func TestSourceLocator_KnownLocator(t *testing.T) {
	v := &SourceLocatorValidator{}
	err := v.Validate(validChallengeQuestion(), sourceInput())
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestSourceLocator_UnknownLocator(t *testing.T) {
	v := &SourceLocatorValidator{}
	q := validChallengeQuestion()
	q.SourceLocators = []string{"Paragraph 1", "Page 9, Paragraph 3"}
	err := v.Validate(q, sourceInput())
	if err == nil {
		t.Fatal("expected error for unknown locator")
	}
	if err.Validator != "source-locators" {
		t.Errorf("expected validator %q, got %q", "source-locators", err.Validator)
	}
}

func TestSourceLocator_NoLocators(t *testing.T) {
	v := &SourceLocatorValidator{}
	q := validChallengeQuestion()
	q.SourceLocators = nil
	err := v.Validate(q, sourceInput())
	if err == nil {
		t.Fatal("expected error for missing locators")
	}
}
