package challenge

import "testing"

func TestParallelOptions_EvenLengths(t *testing.T) {
	v := &ParallelOptionsValidator{}
	err := v.Validate(validChallengeQuestion(), Input{})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestParallelOptions_OneLongOptionRejected(t *testing.T) {
	v := &ParallelOptionsValidator{}
	q := validChallengeQuestion()
	q.Options = []string{
		"Chlorophyll, the green pigment found in the chloroplasts of plants and algae",
		"Keratin",
		"Melanin",
		"Insulin",
	}
	err := v.Validate(q, Input{})
	if err == nil {
		t.Fatal("expected error for uneven option lengths")
	}
	if err.Validator != "parallel-options" {
		t.Errorf("expected validator %q, got %q", "parallel-options", err.Validator)
	}
	if !err.Retryable {
		t.Error("expected retryable")
	}
}

func TestParallelOptions_CustomRatio(t *testing.T) {
	v := &ParallelOptionsValidator{MaxRatio: 1.5}
	q := validChallengeQuestion()
	q.Options = []string{"Chlorophyll", "Iron", "Zinc", "Salt"}
	err := v.Validate(q, Input{})
	if err == nil {
		t.Fatal("expected error under tighter ratio")
	}
}

func TestParallelOptions_NoOptions(t *testing.T) {
	// Option count problems belong to the structural validator.
	v := &ParallelOptionsValidator{}
	q := validChallengeQuestion()
	q.Options = nil
	if err := v.Validate(q, Input{}); err != nil {
		t.Fatalf("expected nil for missing options, got %v", err)
	}
}
