// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusbar/ent/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetSid sets the "sid" field.
func (_c *SessionCreate) SetSid(v string) *SessionCreate {
	_c.mutation.SetSid(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *SessionCreate) SetStartTime(v time.Time) *SessionCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *SessionCreate) SetEndTime(v time.Time) *SessionCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *SessionCreate) SetNillableEndTime(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *SessionCreate) SetDurationSecs(v int) *SessionCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *SessionCreate) SetKind(v string) *SessionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *SessionCreate) SetCompleted(v bool) *SessionCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCompleted(v *bool) *SessionCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetReminderID sets the "reminder_id" field.
func (_c *SessionCreate) SetReminderID(v string) *SessionCreate {
	_c.mutation.SetReminderID(v)
	return _c
}

// SetNillableReminderID sets the "reminder_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableReminderID(v *string) *SessionCreate {
	if v != nil {
		_c.SetReminderID(*v)
	}
	return _c
}

// SetReminderTitle sets the "reminder_title" field.
func (_c *SessionCreate) SetReminderTitle(v string) *SessionCreate {
	_c.mutation.SetReminderTitle(v)
	return _c
}

// SetNillableReminderTitle sets the "reminder_title" field if the given value is not nil.
func (_c *SessionCreate) SetNillableReminderTitle(v *string) *SessionCreate {
	if v != nil {
		_c.SetReminderTitle(*v)
	}
	return _c
}

// SetXpEarned sets the "xp_earned" field.
func (_c *SessionCreate) SetXpEarned(v int) *SessionCreate {
	_c.mutation.SetXpEarned(v)
	return _c
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_c *SessionCreate) SetNillableXpEarned(v *int) *SessionCreate {
	if v != nil {
		_c.SetXpEarned(*v)
	}
	return _c
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := session.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		v := session.DefaultXpEarned
		_c.mutation.SetXpEarned(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.Sid(); !ok {
		return &ValidationError{Name: "sid", err: errors.New(`ent: missing required field "Session.sid"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "Session.start_time"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "Session.duration_secs"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Session.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := session.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Session.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "Session.completed"`)}
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		return &ValidationError{Name: "xp_earned", err: errors.New(`ent: missing required field "Session.xp_earned"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sid(); ok {
		_spec.SetField(session.FieldSid, field.TypeString, value)
		_node.Sid = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(session.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(session.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(session.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(session.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(session.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.ReminderID(); ok {
		_spec.SetField(session.FieldReminderID, field.TypeString, value)
		_node.ReminderID = &value
	}
	if value, ok := _c.mutation.ReminderTitle(); ok {
		_spec.SetField(session.FieldReminderTitle, field.TypeString, value)
		_node.ReminderTitle = &value
	}
	if value, ok := _c.mutation.XpEarned(); ok {
		_spec.SetField(session.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = value
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
