package qa

import (
	"fmt"
	"strings"

	"github.com/abhisek/docent/internal/retrieval"
)

const answerSystemPrompt = `You answer questions about a document using only the excerpts provided.

Rules:
- Only use information from the provided excerpts. Never draw on outside knowledge.
- If the excerpts do not contain the answer, set found to false and state clearly that the document does not contain this information.
- List the numbers of the excerpts that support your answer in the cited array.
- Be precise and factual. Keep the answer concise.`

// buildAnswerMessage formats the selected chunks as numbered excerpts
// with their locators, followed by the question.
func buildAnswerMessage(question string, selected []retrieval.Scored) string {
	var b strings.Builder

	b.WriteString("Excerpts from the document:\n")
	for i, s := range selected {
		fmt.Fprintf(&b, "\nExcerpt %d [%s]:\n%s\n", i+1, s.Chunk.Locator, s.Chunk.Text)
	}

	fmt.Fprintf(&b, "\nQuestion: %s", question)
	return b.String()
}
