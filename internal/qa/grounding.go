package qa

import "github.com/abhisek/docent/internal/retrieval"

// notFoundConfidenceCap bounds confidence when the model reports the
// document does not contain the answer.
const notFoundConfidenceCap = 0.3

// citedLocators maps the model's 1-based excerpt numbers to chunk
// locators, dropping out-of-range and repeated numbers. Citations that
// do not correspond to an excerpt actually shown to the model are
// discarded rather than trusted.
func citedLocators(cited []int, selected []retrieval.Scored) []string {
	seen := make(map[int]bool, len(cited))
	var locs []string
	for _, n := range cited {
		if n < 1 || n > len(selected) || seen[n] {
			continue
		}
		seen[n] = true
		locs = append(locs, selected[n-1].Chunk.Locator)
	}
	return locs
}

// allLocators returns the locator of every selected chunk, in rank order.
func allLocators(selected []retrieval.Scored) []string {
	locs := make([]string, len(selected))
	for i, s := range selected {
		locs[i] = s.Chunk.Locator
	}
	return locs
}

// confidence estimates answer reliability in [0,1]. It rises with the
// top retrieval score and with how many of the selected chunks the
// answer actually cites. Raw retrieval scores are unbounded, so the top
// score is squashed with s/(1+s) before blending.
func confidence(selected []retrieval.Scored, citations int, found bool) float64 {
	if len(selected) == 0 {
		return 0
	}

	top := selected[0].Score
	if top < 0 {
		top = 0
	}
	topNorm := top / (1 + top)
	coverage := float64(citations) / float64(len(selected))

	conf := 0.6*topNorm + 0.4*coverage
	if conf > 1 {
		conf = 1
	}
	if !found && conf > notFoundConfidenceCap {
		conf = notFoundConfidenceCap
	}
	return conf
}
