// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/docent/ent/questionhistory"
)

// QuestionHistoryCreate is the builder for creating a QuestionHistory entity.
type QuestionHistoryCreate struct {
	config
	mutation *QuestionHistoryMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *QuestionHistoryCreate) SetDocumentID(v string) *QuestionHistoryCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *QuestionHistoryCreate) SetQuestion(v string) *QuestionHistoryCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *QuestionHistoryCreate) SetAnswer(v string) *QuestionHistoryCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *QuestionHistoryCreate) SetQuestionType(v string) *QuestionHistoryCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_c *QuestionHistoryCreate) SetNillableQuestionType(v *string) *QuestionHistoryCreate {
	if v != nil {
		_c.SetQuestionType(*v)
	}
	return _c
}

// SetCitations sets the "citations" field.
func (_c *QuestionHistoryCreate) SetCitations(v []string) *QuestionHistoryCreate {
	_c.mutation.SetCitations(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *QuestionHistoryCreate) SetConfidence(v float64) *QuestionHistoryCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *QuestionHistoryCreate) SetNillableConfidence(v *float64) *QuestionHistoryCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetFound sets the "found" field.
func (_c *QuestionHistoryCreate) SetFound(v bool) *QuestionHistoryCreate {
	_c.mutation.SetFound(v)
	return _c
}

// SetNillableFound sets the "found" field if the given value is not nil.
func (_c *QuestionHistoryCreate) SetNillableFound(v *bool) *QuestionHistoryCreate {
	if v != nil {
		_c.SetFound(*v)
	}
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *QuestionHistoryCreate) SetResponseTimeMs(v int64) *QuestionHistoryCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_c *QuestionHistoryCreate) SetNillableResponseTimeMs(v *int64) *QuestionHistoryCreate {
	if v != nil {
		_c.SetResponseTimeMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionHistoryCreate) SetCreatedAt(v time.Time) *QuestionHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionHistoryCreate) SetNillableCreatedAt(v *time.Time) *QuestionHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the QuestionHistoryMutation object of the builder.
func (_c *QuestionHistoryCreate) Mutation() *QuestionHistoryMutation {
	return _c.mutation
}

// Save creates the QuestionHistory in the database.
func (_c *QuestionHistoryCreate) Save(ctx context.Context) (*QuestionHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionHistoryCreate) SaveX(ctx context.Context) *QuestionHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionHistoryCreate) defaults() {
	if _, ok := _c.mutation.QuestionType(); !ok {
		v := questionhistory.DefaultQuestionType
		_c.mutation.SetQuestionType(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := questionhistory.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Found(); !ok {
		v := questionhistory.DefaultFound
		_c.mutation.SetFound(v)
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		v := questionhistory.DefaultResponseTimeMs
		_c.mutation.SetResponseTimeMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionhistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionHistoryCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "QuestionHistory.document_id"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "QuestionHistory.question"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "QuestionHistory.answer"`)}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "QuestionHistory.question_type"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "QuestionHistory.confidence"`)}
	}
	if _, ok := _c.mutation.Found(); !ok {
		return &ValidationError{Name: "found", err: errors.New(`ent: missing required field "QuestionHistory.found"`)}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "QuestionHistory.response_time_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuestionHistory.created_at"`)}
	}
	return nil
}

func (_c *QuestionHistoryCreate) sqlSave(ctx context.Context) (*QuestionHistory, error) {
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

func (_c *QuestionHistoryCreate) createSpec() (*QuestionHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionhistory.Table, sqlgraph.NewFieldSpec(questionhistory.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(questionhistory.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(questionhistory.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(questionhistory.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(questionhistory.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Citations(); ok {
		_spec.SetField(questionhistory.FieldCitations, field.TypeJSON, value)
		_node.Citations = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(questionhistory.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Found(); ok {
		_spec.SetField(questionhistory.FieldFound, field.TypeBool, value)
		_node.Found = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(questionhistory.FieldResponseTimeMs, field.TypeInt64, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionhistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// QuestionHistoryCreateBulk is the builder for creating many QuestionHistory entities in bulk.
type QuestionHistoryCreateBulk struct {
	config
	err      error
	builders []*QuestionHistoryCreate
}

// Save creates the QuestionHistory entities in the database.
func (_c *QuestionHistoryCreateBulk) Save(ctx context.Context) ([]*QuestionHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionHistoryMutation)
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
func (_c *QuestionHistoryCreateBulk) SaveX(ctx context.Context) []*QuestionHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
