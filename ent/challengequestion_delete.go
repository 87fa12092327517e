// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/docent/ent/challengequestion"
	"github.com/abhisek/docent/ent/predicate"
)

// ChallengeQuestionDelete is the builder for deleting a ChallengeQuestion entity.
type ChallengeQuestionDelete struct {
	config
	hooks    []Hook
	mutation *ChallengeQuestionMutation
}

// Where appends a list predicates to the ChallengeQuestionDelete builder.
func (_d *ChallengeQuestionDelete) Where(ps ...predicate.ChallengeQuestion) *ChallengeQuestionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChallengeQuestionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChallengeQuestionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChallengeQuestionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(challengequestion.Table, sqlgraph.NewFieldSpec(challengequestion.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ChallengeQuestionDeleteOne is the builder for deleting a single ChallengeQuestion entity.
type ChallengeQuestionDeleteOne struct {
	_d *ChallengeQuestionDelete
}

// Where appends a list predicates to the ChallengeQuestionDelete builder.
func (_d *ChallengeQuestionDeleteOne) Where(ps ...predicate.ChallengeQuestion) *ChallengeQuestionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChallengeQuestionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{challengequestion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChallengeQuestionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
