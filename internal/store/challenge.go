package store

import (
	"context"
	"fmt"

	"github.com/abhisek/docent/ent"
	"github.com/abhisek/docent/ent/challengequestion"
)

// challengeRepo implements ChallengeRepo using the ent client.
type challengeRepo struct {
	client *ent.Client
}

func (r *challengeRepo) CreateBatch(ctx context.Context, questions []ChallengeQuestion) error {
	if len(questions) == 0 {
		return nil
	}

	builders := make([]*ent.ChallengeQuestionCreate, len(questions))
	for i, q := range questions {
		builders[i] = r.client.ChallengeQuestion.Create().
			SetQuestionID(q.ID).
			SetDocumentID(q.DocumentID).
			SetQuestion(q.Question).
			SetOptions(q.Options).
			SetAnswer(q.Answer).
			SetExplanation(q.Explanation).
			SetDifficulty(q.Difficulty).
			SetSourceLocators(q.SourceLocators)
	}
	if _, err := r.client.ChallengeQuestion.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("save challenge questions: %w", err)
	}
	return nil
}

func (r *challengeRepo) Get(ctx context.Context, id string) (*ChallengeQuestion, error) {
	q, err := r.client.ChallengeQuestion.Query().
		Where(challengequestion.QuestionID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query challenge question: %w", err)
	}
	return entChallengeToChallenge(q), nil
}

func (r *challengeRepo) ListByDocument(ctx context.Context, documentID string) ([]ChallengeQuestion, error) {
	rows, err := r.client.ChallengeQuestion.Query().
		Where(challengequestion.DocumentID(documentID)).
		Order(ent.Asc(challengequestion.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list challenge questions: %w", err)
	}

	records := make([]ChallengeQuestion, len(rows))
	for i, q := range rows {
		records[i] = *entChallengeToChallenge(q)
	}
	return records, nil
}

// entChallengeToChallenge converts an ent ChallengeQuestion to a store record.
func entChallengeToChallenge(q *ent.ChallengeQuestion) *ChallengeQuestion {
	return &ChallengeQuestion{
		ID:             q.QuestionID,
		DocumentID:     q.DocumentID,
		Question:       q.Question,
		Options:        q.Options,
		Answer:         q.Answer,
		Explanation:    q.Explanation,
		Difficulty:     q.Difficulty,
		SourceLocators: q.SourceLocators,
		CreatedAt:      q.CreatedAt,
	}
}
