package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/docent/internal/evaluate"
	"github.com/abhisek/docent/internal/qa"
	"github.com/abhisek/docent/internal/store"
)

// EvaluateChallenge grades a submitted answer to a stored challenge
// question and records the result. Multiple-choice questions are graded
// by exact option match without calling the model.
func (a *Assistant) EvaluateChallenge(ctx context.Context, questionID, userAnswer string) (*evaluate.Evaluation, error) {
	q, err := a.stores.Challenges.Get(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("load challenge question: %w", err)
	}
	if q == nil {
		return nil, fmt.Errorf("%s: %w", questionID, ErrQuestionNotFound)
	}

	chunks, err := a.documentChunks(ctx, q.DocumentID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ev, err := a.evaluator.Evaluate(ctx, evaluate.Input{
		DocumentID:    q.DocumentID,
		Question:      q.Question,
		CorrectAnswer: q.Answer,
		UserAnswer:    userAnswer,
		Options:       q.Options,
		SourceChunks:  resolveLocators(chunks, q.SourceLocators),
	})
	if err != nil {
		return nil, err
	}

	a.persistEvaluation(ctx, q.DocumentID, q.ID, q.Question, userAnswer, q.Answer, ev)
	a.recordHistory(ctx, &store.HistoryEntry{
		DocumentID:     q.DocumentID,
		Question:       q.Question,
		Answer:         userAnswer,
		Type:           "challenge",
		Found:          true,
		ResponseTimeMs: time.Since(start).Milliseconds(),
	})

	return ev, nil
}

// EvaluateFree grades a free-form answer to an arbitrary question about a
// document. The engine first derives the reference answer from the
// document, then grades the submission against it.
func (a *Assistant) EvaluateFree(ctx context.Context, documentID, question, userAnswer string) (*evaluate.Evaluation, error) {
	chunks, err := a.documentChunks(ctx, documentID)
	if err != nil {
		return nil, err
	}

	answerer := qa.NewAnswerer(a.provider, a.selectorFor(documentID), a.cfg.QA)

	start := time.Now()
	reference, err := answerer.Answer(ctx, qa.Input{
		DocumentID: documentID,
		Question:   question,
		Chunks:     chunks,
	})
	if err != nil {
		return nil, err
	}

	ev, err := a.evaluator.Evaluate(ctx, evaluate.Input{
		DocumentID:    documentID,
		Question:      question,
		CorrectAnswer: reference.Text,
		UserAnswer:    userAnswer,
		SourceChunks:  resolveLocators(chunks, reference.Citations),
	})
	if err != nil {
		return nil, err
	}

	a.persistEvaluation(ctx, documentID, "", question, userAnswer, reference.Text, ev)
	a.recordHistory(ctx, &store.HistoryEntry{
		DocumentID:     documentID,
		Question:       question,
		Answer:         userAnswer,
		Type:           "challenge",
		Found:          reference.Found,
		ResponseTimeMs: time.Since(start).Milliseconds(),
	})

	return ev, nil
}

// persistEvaluation stores a graded result. A write failure is logged,
// never surfaced.
func (a *Assistant) persistEvaluation(ctx context.Context, documentID, questionID, question, userAnswer, correctAnswer string, ev *evaluate.Evaluation) {
	err := a.stores.Evaluations.Create(ctx, &store.Evaluation{
		DocumentID:    documentID,
		QuestionID:    questionID,
		Question:      question,
		UserAnswer:    userAnswer,
		CorrectAnswer: correctAnswer,
		Score:         ev.Score,
		Correct:       ev.Correct,
		Feedback:      ev.Feedback,
	})
	if err != nil {
		log.Warn().Err(err).Str("document", documentID).Msg("failed to record evaluation")
	}
}
