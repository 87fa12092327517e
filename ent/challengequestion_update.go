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
	"github.com/abhisek/docent/ent/challengequestion"
	"github.com/abhisek/docent/ent/predicate"
)

// ChallengeQuestionUpdate is the builder for updating ChallengeQuestion entities.
type ChallengeQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *ChallengeQuestionMutation
}

// Where appends a list predicates to the ChallengeQuestionUpdate builder.
func (_u *ChallengeQuestionUpdate) Where(ps ...predicate.ChallengeQuestion) *ChallengeQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *ChallengeQuestionUpdate) SetQuestion(v string) *ChallengeQuestionUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ChallengeQuestionUpdate) SetNillableQuestion(v *string) *ChallengeQuestionUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ChallengeQuestionUpdate) SetOptions(v []string) *ChallengeQuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *ChallengeQuestionUpdate) AppendOptions(v []string) *ChallengeQuestionUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ChallengeQuestionUpdate) SetAnswer(v string) *ChallengeQuestionUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ChallengeQuestionUpdate) SetNillableAnswer(v *string) *ChallengeQuestionUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *ChallengeQuestionUpdate) SetExplanation(v string) *ChallengeQuestionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *ChallengeQuestionUpdate) SetNillableExplanation(v *string) *ChallengeQuestionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ChallengeQuestionUpdate) SetDifficulty(v string) *ChallengeQuestionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ChallengeQuestionUpdate) SetNillableDifficulty(v *string) *ChallengeQuestionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSourceLocators sets the "source_locators" field.
func (_u *ChallengeQuestionUpdate) SetSourceLocators(v []string) *ChallengeQuestionUpdate {
	_u.mutation.SetSourceLocators(v)
	return _u
}

// AppendSourceLocators appends value to the "source_locators" field.
func (_u *ChallengeQuestionUpdate) AppendSourceLocators(v []string) *ChallengeQuestionUpdate {
	_u.mutation.AppendSourceLocators(v)
	return _u
}

// Mutation returns the ChallengeQuestionMutation object of the builder.
func (_u *ChallengeQuestionUpdate) Mutation() *ChallengeQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChallengeQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChallengeQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChallengeQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(challengequestion.Table, challengequestion.Columns, sqlgraph.NewFieldSpec(challengequestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(challengequestion.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(challengequestion.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, challengequestion.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(challengequestion.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(challengequestion.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(challengequestion.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceLocators(); ok {
		_spec.SetField(challengequestion.FieldSourceLocators, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceLocators(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, challengequestion.FieldSourceLocators, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengequestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChallengeQuestionUpdateOne is the builder for updating a single ChallengeQuestion entity.
type ChallengeQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChallengeQuestionMutation
}

// SetQuestion sets the "question" field.
func (_u *ChallengeQuestionUpdateOne) SetQuestion(v string) *ChallengeQuestionUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ChallengeQuestionUpdateOne) SetNillableQuestion(v *string) *ChallengeQuestionUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ChallengeQuestionUpdateOne) SetOptions(v []string) *ChallengeQuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *ChallengeQuestionUpdateOne) AppendOptions(v []string) *ChallengeQuestionUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ChallengeQuestionUpdateOne) SetAnswer(v string) *ChallengeQuestionUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ChallengeQuestionUpdateOne) SetNillableAnswer(v *string) *ChallengeQuestionUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *ChallengeQuestionUpdateOne) SetExplanation(v string) *ChallengeQuestionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *ChallengeQuestionUpdateOne) SetNillableExplanation(v *string) *ChallengeQuestionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ChallengeQuestionUpdateOne) SetDifficulty(v string) *ChallengeQuestionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ChallengeQuestionUpdateOne) SetNillableDifficulty(v *string) *ChallengeQuestionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSourceLocators sets the "source_locators" field.
func (_u *ChallengeQuestionUpdateOne) SetSourceLocators(v []string) *ChallengeQuestionUpdateOne {
	_u.mutation.SetSourceLocators(v)
	return _u
}

// AppendSourceLocators appends value to the "source_locators" field.
func (_u *ChallengeQuestionUpdateOne) AppendSourceLocators(v []string) *ChallengeQuestionUpdateOne {
	_u.mutation.AppendSourceLocators(v)
	return _u
}

// Mutation returns the ChallengeQuestionMutation object of the builder.
func (_u *ChallengeQuestionUpdateOne) Mutation() *ChallengeQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChallengeQuestionUpdate builder.
func (_u *ChallengeQuestionUpdateOne) Where(ps ...predicate.ChallengeQuestion) *ChallengeQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChallengeQuestionUpdateOne) Select(field string, fields ...string) *ChallengeQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChallengeQuestion entity.
func (_u *ChallengeQuestionUpdateOne) Save(ctx context.Context) (*ChallengeQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeQuestionUpdateOne) SaveX(ctx context.Context) *ChallengeQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChallengeQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChallengeQuestionUpdateOne) sqlSave(ctx context.Context) (_node *ChallengeQuestion, err error) {
	_spec := sqlgraph.NewUpdateSpec(challengequestion.Table, challengequestion.Columns, sqlgraph.NewFieldSpec(challengequestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChallengeQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, challengequestion.FieldID)
		for _, f := range fields {
			if !challengequestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != challengequestion.FieldID {
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
		_spec.SetField(challengequestion.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(challengequestion.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, challengequestion.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(challengequestion.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(challengequestion.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(challengequestion.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceLocators(); ok {
		_spec.SetField(challengequestion.FieldSourceLocators, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceLocators(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, challengequestion.FieldSourceLocators, value)
		})
	}
	_node = &ChallengeQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengequestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
