// Code generated by ent, DO NOT EDIT.

package challengequestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/docent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldLTE(FieldID, id))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEQ(FieldQuestionID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEQ(FieldDocumentID, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEQ(FieldQuestion, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEQ(FieldAnswer, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEQ(FieldExplanation, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEQ(FieldDifficulty, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldContainsFold(FieldQuestionID, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldContainsFold(FieldDocumentID, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldContainsFold(FieldQuestion, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldContainsFold(FieldAnswer, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldContainsFold(FieldExplanation, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldContainsFold(FieldDifficulty, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChallengeQuestion) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChallengeQuestion) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChallengeQuestion) predicate.ChallengeQuestion {
	return predicate.ChallengeQuestion(sql.NotPredicates(p))
}
