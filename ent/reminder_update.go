// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusbar/ent/predicate"
	"github.com/abhisek/focusbar/ent/reminder"
)

// ReminderUpdate is the builder for updating Reminder entities.
type ReminderUpdate struct {
	config
	hooks    []Hook
	mutation *ReminderMutation
}

// Where appends a list predicates to the ReminderUpdate builder.
func (_u *ReminderUpdate) Where(ps ...predicate.Reminder) *ReminderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReminderUpdate) SetTitle(v string) *ReminderUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableTitle(v *string) *ReminderUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ReminderUpdate) SetNotes(v string) *ReminderUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableNotes(v *string) *ReminderUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ReminderUpdate) SetCompleted(v bool) *ReminderUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableCompleted(v *bool) *ReminderUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the ReminderMutation object of the builder.
func (_u *ReminderUpdate) Mutation() *ReminderMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReminderUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReminderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReminderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReminderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReminderUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := reminder.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Reminder.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ReminderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminder.Table, reminder.Columns, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(reminder.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(reminder.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(reminder.FieldCompleted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReminderUpdateOne is the builder for updating a single Reminder entity.
type ReminderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReminderMutation
}

// SetTitle sets the "title" field.
func (_u *ReminderUpdateOne) SetTitle(v string) *ReminderUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableTitle(v *string) *ReminderUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ReminderUpdateOne) SetNotes(v string) *ReminderUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableNotes(v *string) *ReminderUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ReminderUpdateOne) SetCompleted(v bool) *ReminderUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableCompleted(v *bool) *ReminderUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the ReminderMutation object of the builder.
func (_u *ReminderUpdateOne) Mutation() *ReminderMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReminderUpdate builder.
func (_u *ReminderUpdateOne) Where(ps ...predicate.Reminder) *ReminderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReminderUpdateOne) Select(field string, fields ...string) *ReminderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reminder entity.
func (_u *ReminderUpdateOne) Save(ctx context.Context) (*Reminder, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReminderUpdateOne) SaveX(ctx context.Context) *Reminder {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReminderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReminderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReminderUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := reminder.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Reminder.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ReminderUpdateOne) sqlSave(ctx context.Context) (_node *Reminder, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminder.Table, reminder.Columns, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reminder.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reminder.FieldID)
		for _, f := range fields {
			if !reminder.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reminder.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(reminder.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(reminder.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(reminder.FieldCompleted, field.TypeBool, value)
	}
	_node = &Reminder{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
