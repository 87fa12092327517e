// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/docent/ent/questionhistory"
)

// QuestionHistory is the model entity for the QuestionHistory schema.
type QuestionHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Document the question was asked about
	DocumentID string `json:"document_id,omitempty"`
	// The question as asked
	Question string `json:"question,omitempty"`
	// The answer that was given
	Answer string `json:"answer,omitempty"`
	// freeform or challenge
	QuestionType string `json:"question_type,omitempty"`
	// Chunk locators the answer cited
	Citations []string `json:"citations,omitempty"`
	// Heuristic answer confidence in [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// Whether the document contained the information
	Found bool `json:"found,omitempty"`
	// Wall-clock time to produce the answer
	ResponseTimeMs int64 `json:"response_time_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionhistory.FieldCitations:
			values[i] = new([]byte)
		case questionhistory.FieldFound:
			values[i] = new(sql.NullBool)
		case questionhistory.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case questionhistory.FieldID, questionhistory.FieldResponseTimeMs:
			values[i] = new(sql.NullInt64)
		case questionhistory.FieldDocumentID, questionhistory.FieldQuestion, questionhistory.FieldAnswer, questionhistory.FieldQuestionType:
			values[i] = new(sql.NullString)
		case questionhistory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionHistory fields.
func (_m *QuestionHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionhistory.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case questionhistory.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case questionhistory.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case questionhistory.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case questionhistory.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case questionhistory.FieldCitations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field citations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Citations); err != nil {
					return fmt.Errorf("unmarshal field citations: %w", err)
				}
			}
		case questionhistory.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case questionhistory.FieldFound:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field found", values[i])
			} else if value.Valid {
				_m.Found = value.Bool
			}
		case questionhistory.FieldResponseTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_time_ms", values[i])
			} else if value.Valid {
				_m.ResponseTimeMs = value.Int64
			}
		case questionhistory.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionHistory.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuestionHistory.
// Note that you need to call QuestionHistory.Unwrap() before calling this method if this QuestionHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionHistory) Update() *QuestionHistoryUpdateOne {
	return NewQuestionHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionHistory) Unwrap() *QuestionHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionHistory) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(_m.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("citations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Citations))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("found=")
	builder.WriteString(fmt.Sprintf("%v", _m.Found))
	builder.WriteString(", ")
	builder.WriteString("response_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseTimeMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuestionHistories is a parsable slice of QuestionHistory.
type QuestionHistories []*QuestionHistory
