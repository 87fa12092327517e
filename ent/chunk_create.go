// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/docent/ent/chunk"
)

// ChunkCreate is the builder for creating a Chunk entity.
type ChunkCreate struct {
	config
	mutation *ChunkMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ChunkCreate) SetDocumentID(v string) *ChunkCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetChunkIndex sets the "chunk_index" field.
func (_c *ChunkCreate) SetChunkIndex(v int) *ChunkCreate {
	_c.mutation.SetChunkIndex(v)
	return _c
}

// SetStartOffset sets the "start_offset" field.
func (_c *ChunkCreate) SetStartOffset(v int) *ChunkCreate {
	_c.mutation.SetStartOffset(v)
	return _c
}

// SetEndOffset sets the "end_offset" field.
func (_c *ChunkCreate) SetEndOffset(v int) *ChunkCreate {
	_c.mutation.SetEndOffset(v)
	return _c
}

// SetLocator sets the "locator" field.
func (_c *ChunkCreate) SetLocator(v string) *ChunkCreate {
	_c.mutation.SetLocator(v)
	return _c
}

// SetText sets the "text" field.
func (_c *ChunkCreate) SetText(v string) *ChunkCreate {
	_c.mutation.SetText(v)
	return _c
}

// Mutation returns the ChunkMutation object of the builder.
func (_c *ChunkCreate) Mutation() *ChunkMutation {
	return _c.mutation
}

// Save creates the Chunk in the database.
func (_c *ChunkCreate) Save(ctx context.Context) (*Chunk, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChunkCreate) SaveX(ctx context.Context) *Chunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChunkCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Chunk.document_id"`)}
	}
	if _, ok := _c.mutation.ChunkIndex(); !ok {
		return &ValidationError{Name: "chunk_index", err: errors.New(`ent: missing required field "Chunk.chunk_index"`)}
	}
	if _, ok := _c.mutation.StartOffset(); !ok {
		return &ValidationError{Name: "start_offset", err: errors.New(`ent: missing required field "Chunk.start_offset"`)}
	}
	if _, ok := _c.mutation.EndOffset(); !ok {
		return &ValidationError{Name: "end_offset", err: errors.New(`ent: missing required field "Chunk.end_offset"`)}
	}
	if _, ok := _c.mutation.Locator(); !ok {
		return &ValidationError{Name: "locator", err: errors.New(`ent: missing required field "Chunk.locator"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Chunk.text"`)}
	}
	return nil
}

func (_c *ChunkCreate) sqlSave(ctx context.Context) (*Chunk, error) {
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

func (_c *ChunkCreate) createSpec() (*Chunk, *sqlgraph.CreateSpec) {
	var (
		_node = &Chunk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chunk.Table, sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(chunk.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.ChunkIndex(); ok {
		_spec.SetField(chunk.FieldChunkIndex, field.TypeInt, value)
		_node.ChunkIndex = value
	}
	if value, ok := _c.mutation.StartOffset(); ok {
		_spec.SetField(chunk.FieldStartOffset, field.TypeInt, value)
		_node.StartOffset = value
	}
	if value, ok := _c.mutation.EndOffset(); ok {
		_spec.SetField(chunk.FieldEndOffset, field.TypeInt, value)
		_node.EndOffset = value
	}
	if value, ok := _c.mutation.Locator(); ok {
		_spec.SetField(chunk.FieldLocator, field.TypeString, value)
		_node.Locator = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(chunk.FieldText, field.TypeString, value)
		_node.Text = value
	}
	return _node, _spec
}

// ChunkCreateBulk is the builder for creating many Chunk entities in bulk.
type ChunkCreateBulk struct {
	config
	err      error
	builders []*ChunkCreate
}

// Save creates the Chunk entities in the database.
func (_c *ChunkCreateBulk) Save(ctx context.Context) ([]*Chunk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Chunk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChunkMutation)
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
func (_c *ChunkCreateBulk) SaveX(ctx context.Context) []*Chunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
