package challenge

import (
	"fmt"
	"strings"

	"github.com/abhisek/docent/internal/chunker"
)

const challengeSystemPrompt = `You create multiple-choice comprehension questions about a document.

Rules:
- Every question must be answerable from the provided excerpts alone.
- Provide exactly 4 options per question. Exactly one option is correct, and the answer field must match that option exactly.
- Keep the 4 options similar in length and grammatical form so the correct one does not stand out.
- The explanation briefly says why the correct option is right.
- In source_locators, list the locator of each excerpt that supports the correct answer. Use only locators shown in brackets in the excerpts.
- Do not repeat or rephrase any question from the "already generated" list.`

// difficultyInstruction maps a difficulty to the kind of thinking the
// questions should demand.
func difficultyInstruction(d Difficulty) string {
	switch d {
	case DifficultyEasy:
		return "Ask recall questions about facts stated directly in the excerpts."
	case DifficultyMedium:
		return "Ask application questions that connect or apply facts from the excerpts."
	case DifficultyHard:
		return "Ask inference questions whose answers follow from the excerpts but are not stated outright."
	}
	return ""
}

// buildChallengeMessage constructs the user message for one generation
// round: how many questions, at what difficulty, from which excerpts,
// avoiding which prior questions.
func buildChallengeMessage(input Input, need int, prior []string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create %d %s questions.\n", need, input.Difficulty)
	b.WriteString(difficultyInstruction(input.Difficulty))
	b.WriteString("\n\nExcerpts from the document:\n")
	b.WriteString(buildExcerpts(input.Chunks, cfg.MaxContentChars))

	b.WriteString("\nAlready generated questions:\n")
	b.WriteString(buildPrior(prior))

	return b.String()
}

// buildExcerpts formats chunks with their locators, stopping once the
// character budget is spent. At least one chunk is always included.
func buildExcerpts(chunks []chunker.Chunk, budget int) string {
	var b strings.Builder
	for _, c := range chunks {
		if b.Len() > 0 && budget > 0 && b.Len()+len(c.Text) > budget {
			break
		}
		fmt.Fprintf(&b, "\n[%s]\n%s\n", c.Locator, c.Text)
	}
	return b.String()
}

// buildPrior formats prior question texts for the prompt.
// Returns "None" if there are none.
func buildPrior(prior []string) string {
	if len(prior) == 0 {
		return "None"
	}

	var b strings.Builder
	for i, p := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return strings.TrimRight(b.String(), "\n")
}
