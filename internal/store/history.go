package store

import (
	"context"
	"fmt"

	"github.com/abhisek/docent/ent"
	"github.com/abhisek/docent/ent/questionhistory"
)

// historyRepo implements HistoryRepo using the ent client.
type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) Append(ctx context.Context, entry *HistoryEntry) error {
	_, err := r.client.QuestionHistory.Create().
		SetDocumentID(entry.DocumentID).
		SetQuestion(entry.Question).
		SetAnswer(entry.Answer).
		SetQuestionType(entry.Type).
		SetCitations(entry.Citations).
		SetConfidence(entry.Confidence).
		SetFound(entry.Found).
		SetResponseTimeMs(entry.ResponseTimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save history entry: %w", err)
	}
	return nil
}

func (r *historyRepo) ListByDocument(ctx context.Context, documentID string, limit int) ([]HistoryEntry, error) {
	query := r.client.QuestionHistory.Query().
		Where(questionhistory.DocumentID(documentID)).
		Order(ent.Desc(questionhistory.FieldID))

	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list question history: %w", err)
	}

	records := make([]HistoryEntry, len(rows))
	for i, h := range rows {
		records[i] = HistoryEntry{
			ID:             h.ID,
			DocumentID:     h.DocumentID,
			Question:       h.Question,
			Answer:         h.Answer,
			Type:           h.QuestionType,
			Citations:      h.Citations,
			Confidence:     h.Confidence,
			Found:          h.Found,
			ResponseTimeMs: h.ResponseTimeMs,
			CreatedAt:      h.CreatedAt,
		}
	}
	return records, nil
}
