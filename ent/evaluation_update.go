// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/docent/ent/evaluation"
	"github.com/abhisek/docent/ent/predicate"
)

// EvaluationUpdate is the builder for updating Evaluation entities.
type EvaluationUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationMutation
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdate) Where(ps ...predicate.Evaluation) *EvaluationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *EvaluationUpdate) SetQuestion(v string) *EvaluationUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableQuestion(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *EvaluationUpdate) SetUserAnswer(v string) *EvaluationUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableUserAnswer(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *EvaluationUpdate) SetCorrectAnswer(v string) *EvaluationUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableCorrectAnswer(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *EvaluationUpdate) SetScore(v int) *EvaluationUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableScore(v *int) *EvaluationUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *EvaluationUpdate) AddScore(v int) *EvaluationUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *EvaluationUpdate) SetCorrect(v bool) *EvaluationUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableCorrect(v *bool) *EvaluationUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *EvaluationUpdate) SetFeedback(v string) *EvaluationUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableFeedback(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdate) Mutation() *EvaluationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EvaluationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(evaluation.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(evaluation.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(evaluation.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(evaluation.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(evaluation.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(evaluation.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(evaluation.FieldFeedback, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationUpdateOne is the builder for updating a single Evaluation entity.
type EvaluationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationMutation
}

// SetQuestion sets the "question" field.
func (_u *EvaluationUpdateOne) SetQuestion(v string) *EvaluationUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableQuestion(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *EvaluationUpdateOne) SetUserAnswer(v string) *EvaluationUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableUserAnswer(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *EvaluationUpdateOne) SetCorrectAnswer(v string) *EvaluationUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableCorrectAnswer(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *EvaluationUpdateOne) SetScore(v int) *EvaluationUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableScore(v *int) *EvaluationUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *EvaluationUpdateOne) AddScore(v int) *EvaluationUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *EvaluationUpdateOne) SetCorrect(v bool) *EvaluationUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableCorrect(v *bool) *EvaluationUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *EvaluationUpdateOne) SetFeedback(v string) *EvaluationUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableFeedback(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdateOne) Mutation() *EvaluationMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdateOne) Where(ps ...predicate.Evaluation) *EvaluationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationUpdateOne) Select(field string, fields ...string) *EvaluationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Evaluation entity.
func (_u *EvaluationUpdateOne) Save(ctx context.Context) (*Evaluation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdateOne) SaveX(ctx context.Context) *Evaluation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EvaluationUpdateOne) sqlSave(ctx context.Context) (_node *Evaluation, err error) {
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Evaluation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluation.FieldID)
		for _, f := range fields {
			if !evaluation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluation.FieldID {
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
		_spec.SetField(evaluation.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(evaluation.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(evaluation.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(evaluation.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(evaluation.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(evaluation.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(evaluation.FieldFeedback, field.TypeString, value)
	}
	_node = &Evaluation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
