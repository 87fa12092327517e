// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/docent/ent/evaluation"
)

// Evaluation is the model entity for the Evaluation schema.
type Evaluation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Document the answer was graded against
	DocumentID string `json:"document_id,omitempty"`
	// Challenge question this grades, empty for free-form answers
	QuestionID string `json:"question_id,omitempty"`
	// The question that was answered
	Question string `json:"question,omitempty"`
	// The answer the user submitted
	UserAnswer string `json:"user_answer,omitempty"`
	// The known correct answer
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// Grade from 0 to 100
	Score int `json:"score,omitempty"`
	// Whether the score reached the pass threshold
	Correct bool `json:"correct,omitempty"`
	// Why the answer earned its score
	Feedback string `json:"feedback,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Evaluation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluation.FieldCorrect:
			values[i] = new(sql.NullBool)
		case evaluation.FieldID, evaluation.FieldScore:
			values[i] = new(sql.NullInt64)
		case evaluation.FieldDocumentID, evaluation.FieldQuestionID, evaluation.FieldQuestion, evaluation.FieldUserAnswer, evaluation.FieldCorrectAnswer, evaluation.FieldFeedback:
			values[i] = new(sql.NullString)
		case evaluation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Evaluation fields.
func (_m *Evaluation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case evaluation.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case evaluation.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case evaluation.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case evaluation.FieldUserAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_answer", values[i])
			} else if value.Valid {
				_m.UserAnswer = value.String
			}
		case evaluation.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		case evaluation.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case evaluation.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case evaluation.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = value.String
			}
		case evaluation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Evaluation.
// This includes values selected through modifiers, order, etc.
func (_m *Evaluation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Evaluation.
// Note that you need to call Evaluation.Unwrap() before calling this method if this Evaluation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Evaluation) Update() *EvaluationUpdateOne {
	return NewEvaluationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Evaluation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Evaluation) Unwrap() *Evaluation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Evaluation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Evaluation) String() string {
	var builder strings.Builder
	builder.WriteString("Evaluation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("user_answer=")
	builder.WriteString(_m.UserAnswer)
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(_m.Feedback)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Evaluations is a parsable slice of Evaluation.
type Evaluations []*Evaluation
