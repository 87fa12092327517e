// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/docent/ent/challengequestion"
)

// ChallengeQuestion is the model entity for the ChallengeQuestion schema.
type ChallengeQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// External identifier used when submitting answers
	QuestionID string `json:"question_id,omitempty"`
	// Document the question was generated from
	DocumentID string `json:"document_id,omitempty"`
	// The question prompt
	Question string `json:"question,omitempty"`
	// Exactly 4 answer options in display order
	Options []string `json:"options,omitempty"`
	// The text of the correct option
	Answer string `json:"answer,omitempty"`
	// Why the correct option is right
	Explanation string `json:"explanation,omitempty"`
	// easy, medium, or hard
	Difficulty string `json:"difficulty,omitempty"`
	// Chunk locators that support the correct answer
	SourceLocators []string `json:"source_locators,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChallengeQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case challengequestion.FieldOptions, challengequestion.FieldSourceLocators:
			values[i] = new([]byte)
		case challengequestion.FieldID:
			values[i] = new(sql.NullInt64)
		case challengequestion.FieldQuestionID, challengequestion.FieldDocumentID, challengequestion.FieldQuestion, challengequestion.FieldAnswer, challengequestion.FieldExplanation, challengequestion.FieldDifficulty:
			values[i] = new(sql.NullString)
		case challengequestion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChallengeQuestion fields.
func (_m *ChallengeQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case challengequestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case challengequestion.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case challengequestion.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case challengequestion.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case challengequestion.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case challengequestion.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case challengequestion.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case challengequestion.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case challengequestion.FieldSourceLocators:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_locators", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SourceLocators); err != nil {
					return fmt.Errorf("unmarshal field source_locators: %w", err)
				}
			}
		case challengequestion.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ChallengeQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *ChallengeQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChallengeQuestion.
// Note that you need to call ChallengeQuestion.Unwrap() before calling this method if this ChallengeQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChallengeQuestion) Update() *ChallengeQuestionUpdateOne {
	return NewChallengeQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChallengeQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChallengeQuestion) Unwrap() *ChallengeQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChallengeQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChallengeQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("ChallengeQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("source_locators=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceLocators))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChallengeQuestions is a parsable slice of ChallengeQuestion.
type ChallengeQuestions []*ChallengeQuestion
