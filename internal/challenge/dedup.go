package challenge

import (
	"strings"
	"unicode"
)

// similarity returns the Jaccard similarity of the token sets of a and
// b, in [0,1]. Word order and repetition do not matter, so light
// rephrasings of the same question score high.
func similarity(a, b string) float64 {
	as := tokenSet(a)
	bs := tokenSet(b)
	if len(as) == 0 && len(bs) == 0 {
		return 1
	}

	inter := 0
	for tok := range as {
		if bs[tok] {
			inter++
		}
	}
	union := len(as) + len(bs) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func tokenSet(text string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

// isDuplicate reports whether candidate is a near-duplicate of any of
// the prior question texts at or above the threshold.
func isDuplicate(candidate string, prior []string, threshold float64) bool {
	for _, p := range prior {
		if similarity(candidate, p) >= threshold {
			return true
		}
	}
	return false
}
