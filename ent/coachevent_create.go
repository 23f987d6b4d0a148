// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusbar/ent/coachevent"
)

// CoachEventCreate is the builder for creating a CoachEvent entity.
type CoachEventCreate struct {
	config
	mutation *CoachEventMutation
	hooks    []Hook
}

// SetTimestamp sets the "timestamp" field.
func (_c *CoachEventCreate) SetTimestamp(v time.Time) *CoachEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CoachEventCreate) SetNillableTimestamp(v *time.Time) *CoachEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *CoachEventCreate) SetProvider(v string) *CoachEventCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *CoachEventCreate) SetModel(v string) *CoachEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *CoachEventCreate) SetPurpose(v string) *CoachEventCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *CoachEventCreate) SetInputTokens(v int) *CoachEventCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *CoachEventCreate) SetNillableInputTokens(v *int) *CoachEventCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *CoachEventCreate) SetOutputTokens(v int) *CoachEventCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *CoachEventCreate) SetNillableOutputTokens(v *int) *CoachEventCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *CoachEventCreate) SetLatencyMs(v int64) *CoachEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *CoachEventCreate) SetNillableLatencyMs(v *int64) *CoachEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *CoachEventCreate) SetSuccess(v bool) *CoachEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CoachEventCreate) SetErrorMessage(v string) *CoachEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CoachEventCreate) SetNillableErrorMessage(v *string) *CoachEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the CoachEventMutation object of the builder.
func (_c *CoachEventCreate) Mutation() *CoachEventMutation {
	return _c.mutation
}

// Save creates the CoachEvent in the database.
func (_c *CoachEventCreate) Save(ctx context.Context) (*CoachEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CoachEventCreate) SaveX(ctx context.Context) *CoachEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoachEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoachEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CoachEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := coachevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := coachevent.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := coachevent.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := coachevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := coachevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CoachEventCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CoachEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "CoachEvent.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "CoachEvent.model"`)}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "CoachEvent.purpose"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "CoachEvent.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "CoachEvent.output_tokens"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "CoachEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "CoachEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "CoachEvent.error_message"`)}
	}
	return nil
}

func (_c *CoachEventCreate) sqlSave(ctx context.Context) (*CoachEvent, error) {
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

func (_c *CoachEventCreate) createSpec() (*CoachEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CoachEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(coachevent.Table, sqlgraph.NewFieldSpec(coachevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(coachevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(coachevent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(coachevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(coachevent.FieldPurpose, field.TypeString, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(coachevent.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(coachevent.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(coachevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(coachevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(coachevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// CoachEventCreateBulk is the builder for creating many CoachEvent entities in bulk.
type CoachEventCreateBulk struct {
	config
	err      error
	builders []*CoachEventCreate
}

// Save creates the CoachEvent entities in the database.
func (_c *CoachEventCreateBulk) Save(ctx context.Context) ([]*CoachEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CoachEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CoachEventMutation)
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
func (_c *CoachEventCreateBulk) SaveX(ctx context.Context) []*CoachEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoachEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoachEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
