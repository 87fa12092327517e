// Code generated by ent, DO NOT EDIT.

package evaluation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/docent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldDocumentID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldQuestionID, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldQuestion, v))
}

// UserAnswer applies equality check predicate on the "user_answer" field. It's identical to UserAnswerEQ.
func UserAnswer(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldUserAnswer, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCorrectAnswer, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldScore, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCorrect, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldFeedback, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldDocumentID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldQuestionID, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldQuestion, v))
}

// UserAnswerEQ applies the EQ predicate on the "user_answer" field.
func UserAnswerEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldUserAnswer, v))
}

// UserAnswerNEQ applies the NEQ predicate on the "user_answer" field.
func UserAnswerNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldUserAnswer, v))
}

// UserAnswerIn applies the In predicate on the "user_answer" field.
func UserAnswerIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldUserAnswer, vs...))
}

// UserAnswerNotIn applies the NotIn predicate on the "user_answer" field.
func UserAnswerNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldUserAnswer, vs...))
}

// UserAnswerGT applies the GT predicate on the "user_answer" field.
func UserAnswerGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldUserAnswer, v))
}

// UserAnswerGTE applies the GTE predicate on the "user_answer" field.
func UserAnswerGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldUserAnswer, v))
}

// UserAnswerLT applies the LT predicate on the "user_answer" field.
func UserAnswerLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldUserAnswer, v))
}

// UserAnswerLTE applies the LTE predicate on the "user_answer" field.
func UserAnswerLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldUserAnswer, v))
}

// UserAnswerContains applies the Contains predicate on the "user_answer" field.
func UserAnswerContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldUserAnswer, v))
}

// UserAnswerHasPrefix applies the HasPrefix predicate on the "user_answer" field.
func UserAnswerHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldUserAnswer, v))
}

// UserAnswerHasSuffix applies the HasSuffix predicate on the "user_answer" field.
func UserAnswerHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldUserAnswer, v))
}

// UserAnswerEqualFold applies the EqualFold predicate on the "user_answer" field.
func UserAnswerEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldUserAnswer, v))
}

// UserAnswerContainsFold applies the ContainsFold predicate on the "user_answer" field.
func UserAnswerContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldUserAnswer, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldScore, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldCorrect, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldFeedback, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.NotPredicates(p))
}
