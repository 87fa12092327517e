package assistant

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/docent/internal/qa"
	"github.com/abhisek/docent/internal/store"
)

// Ask answers a question about a document, grounded in its chunks, and
// records the exchange in the document's history.
func (a *Assistant) Ask(ctx context.Context, documentID, question string) (*qa.Answer, error) {
	chunks, err := a.documentChunks(ctx, documentID)
	if err != nil {
		return nil, err
	}

	answerer := qa.NewAnswerer(a.provider, a.selectorFor(documentID), a.cfg.QA)

	start := time.Now()
	ans, err := answerer.Answer(ctx, qa.Input{
		DocumentID: documentID,
		Question:   question,
		Chunks:     chunks,
	})
	if err != nil {
		return nil, err
	}

	a.recordHistory(ctx, &store.HistoryEntry{
		DocumentID:     documentID,
		Question:       question,
		Answer:         ans.Text,
		Type:           "freeform",
		Citations:      ans.Citations,
		Confidence:     ans.Confidence,
		Found:          ans.Found,
		ResponseTimeMs: time.Since(start).Milliseconds(),
	})

	return ans, nil
}

// recordHistory appends to the question log. A write failure is logged,
// never surfaced.
func (a *Assistant) recordHistory(ctx context.Context, entry *store.HistoryEntry) {
	if err := a.stores.History.Append(ctx, entry); err != nil {
		log.Warn().Err(err).Str("document", entry.DocumentID).Msg("failed to record question history")
	}
}
