package challenge

import "testing"

func TestSimilarity_Identical(t *testing.T) {
	if got := similarity("What makes leaves green?", "What makes leaves green?"); got != 1 {
		t.Errorf("expected 1, got %f", got)
	}
}

func TestSimilarity_WordOrderIgnored(t *testing.T) {
	if got := similarity("green leaves what makes", "what makes leaves green"); got != 1 {
		t.Errorf("expected 1 for reordered tokens, got %f", got)
	}
}

func TestSimilarity_CaseAndPunctuationIgnored(t *testing.T) {
	if got := similarity("What makes LEAVES green?", "what makes leaves green"); got != 1 {
		t.Errorf("expected 1, got %f", got)
	}
}

func TestSimilarity_Disjoint(t *testing.T) {
	if got := similarity("alpha beta gamma", "delta epsilon zeta"); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
}

func TestSimilarity_Partial(t *testing.T) {
	// 2 shared tokens, 6 in the union.
	got := similarity("what makes leaves green", "what makes stems grow")
	if got <= 0 || got >= 1 {
		t.Errorf("expected partial similarity, got %f", got)
	}
}

func TestIsDuplicate(t *testing.T) {
	prior := []string{"What pigment makes leaves green?"}

	if !isDuplicate("What pigment makes the leaves green?", prior, 0.8) {
		t.Error("near-rephrasing should count as duplicate")
	}
	if isDuplicate("Where does photosynthesis take place?", prior, 0.8) {
		t.Error("distinct question should not count as duplicate")
	}
	if isDuplicate("anything at all", nil, 0.8) {
		t.Error("no priors means no duplicates")
	}
}
