// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/docent/ent/chunk"
	"github.com/abhisek/docent/ent/predicate"
)

// ChunkUpdate is the builder for updating Chunk entities.
type ChunkUpdate struct {
	config
	hooks    []Hook
	mutation *ChunkMutation
}

// Where appends a list predicates to the ChunkUpdate builder.
func (_u *ChunkUpdate) Where(ps ...predicate.Chunk) *ChunkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStartOffset sets the "start_offset" field.
func (_u *ChunkUpdate) SetStartOffset(v int) *ChunkUpdate {
	_u.mutation.ResetStartOffset()
	_u.mutation.SetStartOffset(v)
	return _u
}

// SetNillableStartOffset sets the "start_offset" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableStartOffset(v *int) *ChunkUpdate {
	if v != nil {
		_u.SetStartOffset(*v)
	}
	return _u
}

// AddStartOffset adds value to the "start_offset" field.
func (_u *ChunkUpdate) AddStartOffset(v int) *ChunkUpdate {
	_u.mutation.AddStartOffset(v)
	return _u
}

// SetEndOffset sets the "end_offset" field.
func (_u *ChunkUpdate) SetEndOffset(v int) *ChunkUpdate {
	_u.mutation.ResetEndOffset()
	_u.mutation.SetEndOffset(v)
	return _u
}

// SetNillableEndOffset sets the "end_offset" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableEndOffset(v *int) *ChunkUpdate {
	if v != nil {
		_u.SetEndOffset(*v)
	}
	return _u
}

// AddEndOffset adds value to the "end_offset" field.
func (_u *ChunkUpdate) AddEndOffset(v int) *ChunkUpdate {
	_u.mutation.AddEndOffset(v)
	return _u
}

// SetLocator sets the "locator" field.
func (_u *ChunkUpdate) SetLocator(v string) *ChunkUpdate {
	_u.mutation.SetLocator(v)
	return _u
}

// SetNillableLocator sets the "locator" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableLocator(v *string) *ChunkUpdate {
	if v != nil {
		_u.SetLocator(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ChunkUpdate) SetText(v string) *ChunkUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableText(v *string) *ChunkUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// Mutation returns the ChunkMutation object of the builder.
func (_u *ChunkUpdate) Mutation() *ChunkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChunkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChunkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChunkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(chunk.Table, chunk.Columns, sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StartOffset(); ok {
		_spec.SetField(chunk.FieldStartOffset, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartOffset(); ok {
		_spec.AddField(chunk.FieldStartOffset, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndOffset(); ok {
		_spec.SetField(chunk.FieldEndOffset, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndOffset(); ok {
		_spec.AddField(chunk.FieldEndOffset, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Locator(); ok {
		_spec.SetField(chunk.FieldLocator, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(chunk.FieldText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChunkUpdateOne is the builder for updating a single Chunk entity.
type ChunkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChunkMutation
}

// SetStartOffset sets the "start_offset" field.
func (_u *ChunkUpdateOne) SetStartOffset(v int) *ChunkUpdateOne {
	_u.mutation.ResetStartOffset()
	_u.mutation.SetStartOffset(v)
	return _u
}

// SetNillableStartOffset sets the "start_offset" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableStartOffset(v *int) *ChunkUpdateOne {
	if v != nil {
		_u.SetStartOffset(*v)
	}
	return _u
}

// AddStartOffset adds value to the "start_offset" field.
func (_u *ChunkUpdateOne) AddStartOffset(v int) *ChunkUpdateOne {
	_u.mutation.AddStartOffset(v)
	return _u
}

// SetEndOffset sets the "end_offset" field.
func (_u *ChunkUpdateOne) SetEndOffset(v int) *ChunkUpdateOne {
	_u.mutation.ResetEndOffset()
	_u.mutation.SetEndOffset(v)
	return _u
}

// SetNillableEndOffset sets the "end_offset" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableEndOffset(v *int) *ChunkUpdateOne {
	if v != nil {
		_u.SetEndOffset(*v)
	}
	return _u
}

// AddEndOffset adds value to the "end_offset" field.
func (_u *ChunkUpdateOne) AddEndOffset(v int) *ChunkUpdateOne {
	_u.mutation.AddEndOffset(v)
	return _u
}

// SetLocator sets the "locator" field.
func (_u *ChunkUpdateOne) SetLocator(v string) *ChunkUpdateOne {
	_u.mutation.SetLocator(v)
	return _u
}

// SetNillableLocator sets the "locator" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableLocator(v *string) *ChunkUpdateOne {
	if v != nil {
		_u.SetLocator(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ChunkUpdateOne) SetText(v string) *ChunkUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableText(v *string) *ChunkUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// Mutation returns the ChunkMutation object of the builder.
func (_u *ChunkUpdateOne) Mutation() *ChunkMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChunkUpdate builder.
func (_u *ChunkUpdateOne) Where(ps ...predicate.Chunk) *ChunkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChunkUpdateOne) Select(field string, fields ...string) *ChunkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Chunk entity.
func (_u *ChunkUpdateOne) Save(ctx context.Context) (*Chunk, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkUpdateOne) SaveX(ctx context.Context) *Chunk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChunkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChunkUpdateOne) sqlSave(ctx context.Context) (_node *Chunk, err error) {
	_spec := sqlgraph.NewUpdateSpec(chunk.Table, chunk.Columns, sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Chunk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chunk.FieldID)
		for _, f := range fields {
			if !chunk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chunk.FieldID {
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
	if value, ok := _u.mutation.StartOffset(); ok {
		_spec.SetField(chunk.FieldStartOffset, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartOffset(); ok {
		_spec.AddField(chunk.FieldStartOffset, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndOffset(); ok {
		_spec.SetField(chunk.FieldEndOffset, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndOffset(); ok {
		_spec.AddField(chunk.FieldEndOffset, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Locator(); ok {
		_spec.SetField(chunk.FieldLocator, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(chunk.FieldText, field.TypeString, value)
	}
	_node = &Chunk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
