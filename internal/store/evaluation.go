package store

import (
	"context"
	"fmt"

	"github.com/abhisek/docent/ent"
	"github.com/abhisek/docent/ent/evaluation"
)

// evaluationRepo implements EvaluationRepo using the ent client.
type evaluationRepo struct {
	client *ent.Client
}

func (r *evaluationRepo) Create(ctx context.Context, ev *Evaluation) error {
	_, err := r.client.Evaluation.Create().
		SetDocumentID(ev.DocumentID).
		SetQuestionID(ev.QuestionID).
		SetQuestion(ev.Question).
		SetUserAnswer(ev.UserAnswer).
		SetCorrectAnswer(ev.CorrectAnswer).
		SetScore(ev.Score).
		SetCorrect(ev.Correct).
		SetFeedback(ev.Feedback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save evaluation: %w", err)
	}
	return nil
}

func (r *evaluationRepo) ListByDocument(ctx context.Context, documentID string) ([]Evaluation, error) {
	rows, err := r.client.Evaluation.Query().
		Where(evaluation.DocumentID(documentID)).
		Order(ent.Desc(evaluation.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}

	records := make([]Evaluation, len(rows))
	for i, e := range rows {
		records[i] = Evaluation{
			ID:            e.ID,
			DocumentID:    e.DocumentID,
			QuestionID:    e.QuestionID,
			Question:      e.Question,
			UserAnswer:    e.UserAnswer,
			CorrectAnswer: e.CorrectAnswer,
			Score:         e.Score,
			Correct:       e.Correct,
			Feedback:      e.Feedback,
			CreatedAt:     e.CreatedAt,
		}
	}
	return records, nil
}
