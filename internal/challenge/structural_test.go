package challenge

import (
	"strings"
	"testing"
)

func validChallengeQuestion() *Question {
	return &Question{
		Text:        "Which pigment absorbs light during photosynthesis?",
		Options:     []string{"Chlorophyll", "Hemoglobin", "Keratin", "Melanin"},
		Answer:      "Chlorophyll",
		Explanation: "The excerpt names chlorophyll as the light-absorbing pigment.",
		Difficulty:  DifficultyMedium,
		SourceLocators: []string{
			"Paragraph 1",
		},
	}
}

func TestStructural_ValidQuestion(t *testing.T) {
	v := &StructuralValidator{}
	err := v.Validate(validChallengeQuestion(), Input{})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_QuestionTooShort(t *testing.T) {
	v := &StructuralValidator{}
	q := validChallengeQuestion()
	q.Text = "Who?"
	err := v.Validate(q, Input{})
	if err == nil {
		t.Fatal("expected error for short question text")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
	if !err.Retryable {
		t.Error("expected retryable")
	}
}

func TestStructural_QuestionTooLong(t *testing.T) {
	v := &StructuralValidator{}
	q := validChallengeQuestion()
	q.Text = strings.Repeat("a", 1001)
	err := v.Validate(q, Input{})
	if err == nil {
		t.Fatal("expected error for long question text")
	}
}

func TestStructural_WrongOptionCount(t *testing.T) {
	v := &StructuralValidator{}

	for _, opts := range [][]string{
		{"Chlorophyll"},
		{"Chlorophyll", "Hemoglobin", "Keratin"},
		{"Chlorophyll", "Hemoglobin", "Keratin", "Melanin", "Carotene"},
		nil,
	} {
		q := validChallengeQuestion()
		q.Options = opts
		err := v.Validate(q, Input{})
		if err == nil {
			t.Errorf("expected error for %d options", len(opts))
		}
	}
}

func TestStructural_DuplicateOptions(t *testing.T) {
	v := &StructuralValidator{}
	q := validChallengeQuestion()
	q.Options = []string{"Chlorophyll", "chlorophyll ", "Keratin", "Melanin"}
	err := v.Validate(q, Input{})
	if err == nil {
		t.Fatal("expected error for duplicate options")
	}
}

func TestStructural_EmptyOption(t *testing.T) {
	v := &StructuralValidator{}
	q := validChallengeQuestion()
	q.Options = []string{"Chlorophyll", "", "Keratin", "Melanin"}
	err := v.Validate(q, Input{})
	if err == nil {
		t.Fatal("expected error for empty option")
	}
}

func TestStructural_AnswerNotAnOption(t *testing.T) {
	v := &StructuralValidator{}
	q := validChallengeQuestion()
	q.Answer = "Carotene"
	err := v.Validate(q, Input{})
	if err == nil {
		t.Fatal("expected error when answer is not among the options")
	}
}

func TestStructural_AnswerMatchesCaseInsensitively(t *testing.T) {
	v := &StructuralValidator{}
	q := validChallengeQuestion()
	q.Answer = "  chlorophyll "
	err := v.Validate(q, Input{})
	if err != nil {
		t.Fatalf("expected nil for case-insensitive match, got %v", err)
	}
}

func TestStructural_EmptyExplanation(t *testing.T) {
	v := &StructuralValidator{}
	q := validChallengeQuestion()
	q.Explanation = "   "
	err := v.Validate(q, Input{})
	if err == nil {
		t.Fatal("expected error for empty explanation")
	}
}

func TestStructural_UnknownDifficulty(t *testing.T) {
	v := &StructuralValidator{}
	q := validChallengeQuestion()
	q.Difficulty = "brutal"
	err := v.Validate(q, Input{})
	if err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}
