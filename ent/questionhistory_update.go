// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/docent/ent/predicate"
	"github.com/abhisek/docent/ent/questionhistory"
)

// QuestionHistoryUpdate is the builder for updating QuestionHistory entities.
type QuestionHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionHistoryMutation
}

// Where appends a list predicates to the QuestionHistoryUpdate builder.
func (_u *QuestionHistoryUpdate) Where(ps ...predicate.QuestionHistory) *QuestionHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QuestionHistoryUpdate) SetQuestion(v string) *QuestionHistoryUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QuestionHistoryUpdate) SetNillableQuestion(v *string) *QuestionHistoryUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QuestionHistoryUpdate) SetAnswer(v string) *QuestionHistoryUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QuestionHistoryUpdate) SetNillableAnswer(v *string) *QuestionHistoryUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *QuestionHistoryUpdate) SetQuestionType(v string) *QuestionHistoryUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *QuestionHistoryUpdate) SetNillableQuestionType(v *string) *QuestionHistoryUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetCitations sets the "citations" field.
func (_u *QuestionHistoryUpdate) SetCitations(v []string) *QuestionHistoryUpdate {
	_u.mutation.SetCitations(v)
	return _u
}

// AppendCitations appends value to the "citations" field.
func (_u *QuestionHistoryUpdate) AppendCitations(v []string) *QuestionHistoryUpdate {
	_u.mutation.AppendCitations(v)
	return _u
}

// ClearCitations clears the value of the "citations" field.
func (_u *QuestionHistoryUpdate) ClearCitations() *QuestionHistoryUpdate {
	_u.mutation.ClearCitations()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *QuestionHistoryUpdate) SetConfidence(v float64) *QuestionHistoryUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *QuestionHistoryUpdate) SetNillableConfidence(v *float64) *QuestionHistoryUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *QuestionHistoryUpdate) AddConfidence(v float64) *QuestionHistoryUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetFound sets the "found" field.
func (_u *QuestionHistoryUpdate) SetFound(v bool) *QuestionHistoryUpdate {
	_u.mutation.SetFound(v)
	return _u
}

// SetNillableFound sets the "found" field if the given value is not nil.
func (_u *QuestionHistoryUpdate) SetNillableFound(v *bool) *QuestionHistoryUpdate {
	if v != nil {
		_u.SetFound(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *QuestionHistoryUpdate) SetResponseTimeMs(v int64) *QuestionHistoryUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *QuestionHistoryUpdate) SetNillableResponseTimeMs(v *int64) *QuestionHistoryUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *QuestionHistoryUpdate) AddResponseTimeMs(v int64) *QuestionHistoryUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// Mutation returns the QuestionHistoryMutation object of the builder.
func (_u *QuestionHistoryUpdate) Mutation() *QuestionHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuestionHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(questionhistory.Table, questionhistory.Columns, sqlgraph.NewFieldSpec(questionhistory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(questionhistory.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(questionhistory.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(questionhistory.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Citations(); ok {
		_spec.SetField(questionhistory.FieldCitations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCitations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionhistory.FieldCitations, value)
		})
	}
	if _u.mutation.CitationsCleared() {
		_spec.ClearField(questionhistory.FieldCitations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(questionhistory.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(questionhistory.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Found(); ok {
		_spec.SetField(questionhistory.FieldFound, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(questionhistory.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(questionhistory.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionHistoryUpdateOne is the builder for updating a single QuestionHistory entity.
type QuestionHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionHistoryMutation
}

// SetQuestion sets the "question" field.
func (_u *QuestionHistoryUpdateOne) SetQuestion(v string) *QuestionHistoryUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QuestionHistoryUpdateOne) SetNillableQuestion(v *string) *QuestionHistoryUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QuestionHistoryUpdateOne) SetAnswer(v string) *QuestionHistoryUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QuestionHistoryUpdateOne) SetNillableAnswer(v *string) *QuestionHistoryUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *QuestionHistoryUpdateOne) SetQuestionType(v string) *QuestionHistoryUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *QuestionHistoryUpdateOne) SetNillableQuestionType(v *string) *QuestionHistoryUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetCitations sets the "citations" field.
func (_u *QuestionHistoryUpdateOne) SetCitations(v []string) *QuestionHistoryUpdateOne {
	_u.mutation.SetCitations(v)
	return _u
}

// AppendCitations appends value to the "citations" field.
func (_u *QuestionHistoryUpdateOne) AppendCitations(v []string) *QuestionHistoryUpdateOne {
	_u.mutation.AppendCitations(v)
	return _u
}

// ClearCitations clears the value of the "citations" field.
func (_u *QuestionHistoryUpdateOne) ClearCitations() *QuestionHistoryUpdateOne {
	_u.mutation.ClearCitations()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *QuestionHistoryUpdateOne) SetConfidence(v float64) *QuestionHistoryUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *QuestionHistoryUpdateOne) SetNillableConfidence(v *float64) *QuestionHistoryUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *QuestionHistoryUpdateOne) AddConfidence(v float64) *QuestionHistoryUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetFound sets the "found" field.
func (_u *QuestionHistoryUpdateOne) SetFound(v bool) *QuestionHistoryUpdateOne {
	_u.mutation.SetFound(v)
	return _u
}

// SetNillableFound sets the "found" field if the given value is not nil.
func (_u *QuestionHistoryUpdateOne) SetNillableFound(v *bool) *QuestionHistoryUpdateOne {
	if v != nil {
		_u.SetFound(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *QuestionHistoryUpdateOne) SetResponseTimeMs(v int64) *QuestionHistoryUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *QuestionHistoryUpdateOne) SetNillableResponseTimeMs(v *int64) *QuestionHistoryUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *QuestionHistoryUpdateOne) AddResponseTimeMs(v int64) *QuestionHistoryUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// Mutation returns the QuestionHistoryMutation object of the builder.
func (_u *QuestionHistoryUpdateOne) Mutation() *QuestionHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionHistoryUpdate builder.
func (_u *QuestionHistoryUpdateOne) Where(ps ...predicate.QuestionHistory) *QuestionHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionHistoryUpdateOne) Select(field string, fields ...string) *QuestionHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionHistory entity.
func (_u *QuestionHistoryUpdateOne) Save(ctx context.Context) (*QuestionHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionHistoryUpdateOne) SaveX(ctx context.Context) *QuestionHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuestionHistoryUpdateOne) sqlSave(ctx context.Context) (_node *QuestionHistory, err error) {
	_spec := sqlgraph.NewUpdateSpec(questionhistory.Table, questionhistory.Columns, sqlgraph.NewFieldSpec(questionhistory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionhistory.FieldID)
		for _, f := range fields {
			if !questionhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionhistory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(questionhistory.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(questionhistory.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(questionhistory.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Citations(); ok {
		_spec.SetField(questionhistory.FieldCitations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCitations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionhistory.FieldCitations, value)
		})
	}
	if _u.mutation.CitationsCleared() {
		_spec.ClearField(questionhistory.FieldCitations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(questionhistory.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(questionhistory.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Found(); ok {
		_spec.SetField(questionhistory.FieldFound, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(questionhistory.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(questionhistory.FieldResponseTimeMs, field.TypeInt64, value)
	}
	_node = &QuestionHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
