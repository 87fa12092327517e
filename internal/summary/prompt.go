package summary

import (
	"fmt"
	"strings"
)

const summarySystemPrompt = `You summarize documents for a study assistant. Readers use your summary to decide whether the document answers their needs before they dig in.`

func buildSummaryUserMessage(text string, maxChars int) string {
	var b strings.Builder

	b.WriteString("Document text:\n")
	b.WriteString(truncate(text, maxChars))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, `Instructions:
Write a summary of the document in at most 150 words.
- Cover the main topic and the key points, in the document's own terms.
- Use only information present in the text above. Do not add outside knowledge.
- Write plain prose, no headings or bullet lists.`)

	return b.String()
}
