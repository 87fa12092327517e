package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/docent/internal/challenge"
	"github.com/abhisek/docent/internal/store"
)

// Challenge generates, stores and returns a batch of quiz questions for a
// document. When the document cannot support the full count, the stored
// short batch is returned together with a *challenge.InsufficientContentError.
func (a *Assistant) Challenge(ctx context.Context, documentID, difficulty string, count int) ([]store.ChallengeQuestion, error) {
	chunks, err := a.documentChunks(ctx, documentID)
	if err != nil {
		return nil, err
	}

	questions, genErr := a.generator.Generate(ctx, challenge.Input{
		DocumentID: documentID,
		Chunks:     chunks,
		Difficulty: challenge.Difficulty(difficulty),
		Count:      count,
	})
	var insufficient *challenge.InsufficientContentError
	if genErr != nil && !errors.As(genErr, &insufficient) {
		return nil, genErr
	}

	records := make([]store.ChallengeQuestion, len(questions))
	for i, q := range questions {
		records[i] = store.ChallengeQuestion{
			ID:             uuid.NewString(),
			DocumentID:     documentID,
			Question:       q.Text,
			Options:        q.Options,
			Answer:         q.Answer,
			Explanation:    q.Explanation,
			Difficulty:     string(q.Difficulty),
			SourceLocators: q.SourceLocators,
		}
	}
	if len(records) > 0 {
		if err := a.stores.Challenges.CreateBatch(ctx, records); err != nil {
			return nil, fmt.Errorf("store challenge questions: %w", err)
		}
	}

	return records, genErr
}
