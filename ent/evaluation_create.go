// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/docent/ent/evaluation"
)

// EvaluationCreate is the builder for creating a Evaluation entity.
type EvaluationCreate struct {
	config
	mutation *EvaluationMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *EvaluationCreate) SetDocumentID(v string) *EvaluationCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *EvaluationCreate) SetQuestionID(v string) *EvaluationCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableQuestionID(v *string) *EvaluationCreate {
	if v != nil {
		_c.SetQuestionID(*v)
	}
	return _c
}

// SetQuestion sets the "question" field.
func (_c *EvaluationCreate) SetQuestion(v string) *EvaluationCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *EvaluationCreate) SetUserAnswer(v string) *EvaluationCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *EvaluationCreate) SetCorrectAnswer(v string) *EvaluationCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *EvaluationCreate) SetScore(v int) *EvaluationCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *EvaluationCreate) SetCorrect(v bool) *EvaluationCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *EvaluationCreate) SetFeedback(v string) *EvaluationCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvaluationCreate) SetCreatedAt(v time.Time) *EvaluationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableCreatedAt(v *time.Time) *EvaluationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the EvaluationMutation object of the builder.
func (_c *EvaluationCreate) Mutation() *EvaluationMutation {
	return _c.mutation
}

// Save creates the Evaluation in the database.
func (_c *EvaluationCreate) Save(ctx context.Context) (*Evaluation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationCreate) SaveX(ctx context.Context) *Evaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationCreate) defaults() {
	if _, ok := _c.mutation.QuestionID(); !ok {
		v := evaluation.DefaultQuestionID
		_c.mutation.SetQuestionID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evaluation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Evaluation.document_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Evaluation.question_id"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Evaluation.question"`)}
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "Evaluation.user_answer"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "Evaluation.correct_answer"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Evaluation.score"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "Evaluation.correct"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "Evaluation.feedback"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Evaluation.created_at"`)}
	}
	return nil
}

func (_c *EvaluationCreate) sqlSave(ctx context.Context) (*Evaluation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationCreate) createSpec() (*Evaluation, *sqlgraph.CreateSpec) {
	var (
		_node = &Evaluation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluation.Table, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(evaluation.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(evaluation.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(evaluation.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(evaluation.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(evaluation.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(evaluation.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(evaluation.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(evaluation.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evaluation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// EvaluationCreateBulk is the builder for creating many Evaluation entities in bulk.
type EvaluationCreateBulk struct {
	config
	err      error
	builders []*EvaluationCreate
}

// Save creates the Evaluation entities in the database.
func (_c *EvaluationCreateBulk) Save(ctx context.Context) ([]*Evaluation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Evaluation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EvaluationCreateBulk) SaveX(ctx context.Context) []*Evaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
