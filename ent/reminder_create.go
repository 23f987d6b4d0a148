// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusbar/ent/reminder"
)

// ReminderCreate is the builder for creating a Reminder entity.
type ReminderCreate struct {
	config
	mutation *ReminderMutation
	hooks    []Hook
}

// SetRid sets the "rid" field.
func (_c *ReminderCreate) SetRid(v string) *ReminderCreate {
	_c.mutation.SetRid(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ReminderCreate) SetTitle(v string) *ReminderCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ReminderCreate) SetNotes(v string) *ReminderCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableNotes(v *string) *ReminderCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *ReminderCreate) SetCompleted(v bool) *ReminderCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableCompleted(v *bool) *ReminderCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReminderCreate) SetCreatedAt(v time.Time) *ReminderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableCreatedAt(v *time.Time) *ReminderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ReminderMutation object of the builder.
func (_c *ReminderCreate) Mutation() *ReminderMutation {
	return _c.mutation
}

// Save creates the Reminder in the database.
func (_c *ReminderCreate) Save(ctx context.Context) (*Reminder, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReminderCreate) SaveX(ctx context.Context) *Reminder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReminderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReminderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReminderCreate) defaults() {
	if _, ok := _c.mutation.Notes(); !ok {
		v := reminder.DefaultNotes
		_c.mutation.SetNotes(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := reminder.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reminder.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReminderCreate) check() error {
	if _, ok := _c.mutation.Rid(); !ok {
		return &ValidationError{Name: "rid", err: errors.New(`ent: missing required field "Reminder.rid"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Reminder.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := reminder.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Reminder.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "Reminder.notes"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "Reminder.completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Reminder.created_at"`)}
	}
	return nil
}

func (_c *ReminderCreate) sqlSave(ctx context.Context) (*Reminder, error) {
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

func (_c *ReminderCreate) createSpec() (*Reminder, *sqlgraph.CreateSpec) {
	var (
		_node = &Reminder{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reminder.Table, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Rid(); ok {
		_spec.SetField(reminder.FieldRid, field.TypeString, value)
		_node.Rid = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(reminder.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(reminder.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(reminder.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reminder.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ReminderCreateBulk is the builder for creating many Reminder entities in bulk.
type ReminderCreateBulk struct {
	config
	err      error
	builders []*ReminderCreate
}

// Save creates the Reminder entities in the database.
func (_c *ReminderCreateBulk) Save(ctx context.Context) ([]*Reminder, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Reminder, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReminderMutation)
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
func (_c *ReminderCreateBulk) SaveX(ctx context.Context) []*Reminder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReminderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReminderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
