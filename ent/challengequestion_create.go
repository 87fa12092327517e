// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/docent/ent/challengequestion"
)

// ChallengeQuestionCreate is the builder for creating a ChallengeQuestion entity.
type ChallengeQuestionCreate struct {
	config
	mutation *ChallengeQuestionMutation
	hooks    []Hook
}

// SetQuestionID sets the "question_id" field.
func (_c *ChallengeQuestionCreate) SetQuestionID(v string) *ChallengeQuestionCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *ChallengeQuestionCreate) SetDocumentID(v string) *ChallengeQuestionCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *ChallengeQuestionCreate) SetQuestion(v string) *ChallengeQuestionCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *ChallengeQuestionCreate) SetOptions(v []string) *ChallengeQuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *ChallengeQuestionCreate) SetAnswer(v string) *ChallengeQuestionCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *ChallengeQuestionCreate) SetExplanation(v string) *ChallengeQuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ChallengeQuestionCreate) SetDifficulty(v string) *ChallengeQuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetSourceLocators sets the "source_locators" field.
func (_c *ChallengeQuestionCreate) SetSourceLocators(v []string) *ChallengeQuestionCreate {
	_c.mutation.SetSourceLocators(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChallengeQuestionCreate) SetCreatedAt(v time.Time) *ChallengeQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChallengeQuestionCreate) SetNillableCreatedAt(v *time.Time) *ChallengeQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ChallengeQuestionMutation object of the builder.
func (_c *ChallengeQuestionCreate) Mutation() *ChallengeQuestionMutation {
	return _c.mutation
}

// Save creates the ChallengeQuestion in the database.
func (_c *ChallengeQuestionCreate) Save(ctx context.Context) (*ChallengeQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChallengeQuestionCreate) SaveX(ctx context.Context) *ChallengeQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChallengeQuestionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := challengequestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChallengeQuestionCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ChallengeQuestion.question_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ChallengeQuestion.document_id"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "ChallengeQuestion.question"`)}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "ChallengeQuestion.options"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "ChallengeQuestion.answer"`)}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "ChallengeQuestion.explanation"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ChallengeQuestion.difficulty"`)}
	}
	if _, ok := _c.mutation.SourceLocators(); !ok {
		return &ValidationError{Name: "source_locators", err: errors.New(`ent: missing required field "ChallengeQuestion.source_locators"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChallengeQuestion.created_at"`)}
	}
	return nil
}

func (_c *ChallengeQuestionCreate) sqlSave(ctx context.Context) (*ChallengeQuestion, error) {
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

func (_c *ChallengeQuestionCreate) createSpec() (*ChallengeQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &ChallengeQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(challengequestion.Table, sqlgraph.NewFieldSpec(challengequestion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(challengequestion.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(challengequestion.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(challengequestion.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(challengequestion.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(challengequestion.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(challengequestion.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(challengequestion.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.SourceLocators(); ok {
		_spec.SetField(challengequestion.FieldSourceLocators, field.TypeJSON, value)
		_node.SourceLocators = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(challengequestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ChallengeQuestionCreateBulk is the builder for creating many ChallengeQuestion entities in bulk.
type ChallengeQuestionCreateBulk struct {
	config
	err      error
	builders []*ChallengeQuestionCreate
}

// Save creates the ChallengeQuestion entities in the database.
func (_c *ChallengeQuestionCreateBulk) Save(ctx context.Context) ([]*ChallengeQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChallengeQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChallengeQuestionMutation)
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
func (_c *ChallengeQuestionCreateBulk) SaveX(ctx context.Context) []*ChallengeQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
