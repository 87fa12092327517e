package evaluate

import (
	"fmt"
	"strings"

	"github.com/abhisek/docent/internal/chunker"
)

const rubricSystemPrompt = `You grade a learner's answer against the known correct answer, using the document context as ground truth.

Rules:
- Score semantic equivalence, not wording: a paraphrase of the correct answer deserves full or near-full credit.
- Partial understanding earns partial credit.
- Score 0 for answers that are wrong or unrelated.
- The feedback must say why the answer earned its score, restate the correct answer, and point at the supporting passage by its locator.
- Keep feedback to a few sentences.`

// buildRubricMessage formats the question, both answers, and the
// supporting context for the grading prompt.
func buildRubricMessage(input Input, maxContextChars int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", input.Question)
	fmt.Fprintf(&b, "Correct answer: %s\n", input.CorrectAnswer)
	fmt.Fprintf(&b, "Learner's answer: %s\n", input.UserAnswer)

	b.WriteString("\nDocument context:\n")
	b.WriteString(buildContext(input.SourceChunks, maxContextChars))

	return b.String()
}

// buildContext formats source chunks with their locators, stopping once
// the character budget is spent. At least one chunk is always included.
func buildContext(chunks []chunker.Chunk, budget int) string {
	if len(chunks) == 0 {
		return "None provided."
	}

	var b strings.Builder
	for _, c := range chunks {
		if b.Len() > 0 && budget > 0 && b.Len()+len(c.Text) > budget {
			break
		}
		fmt.Fprintf(&b, "\n[%s]\n%s\n", c.Locator, c.Text)
	}
	return b.String()
}
