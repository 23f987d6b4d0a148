// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusbar/ent/predicate"
	"github.com/abhisek/focusbar/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *SessionUpdate) SetEndTime(v time.Time) *SessionUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableEndTime(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *SessionUpdate) ClearEndTime() *SessionUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionUpdate) SetDurationSecs(v int) *SessionUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDurationSecs(v *int) *SessionUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionUpdate) AddDurationSecs(v int) *SessionUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *SessionUpdate) SetKind(v string) *SessionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableKind(v *string) *SessionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *SessionUpdate) SetCompleted(v bool) *SessionUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCompleted(v *bool) *SessionUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetReminderID sets the "reminder_id" field.
func (_u *SessionUpdate) SetReminderID(v string) *SessionUpdate {
	_u.mutation.SetReminderID(v)
	return _u
}

// SetNillableReminderID sets the "reminder_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableReminderID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetReminderID(*v)
	}
	return _u
}

// ClearReminderID clears the value of the "reminder_id" field.
func (_u *SessionUpdate) ClearReminderID() *SessionUpdate {
	_u.mutation.ClearReminderID()
	return _u
}

// SetReminderTitle sets the "reminder_title" field.
func (_u *SessionUpdate) SetReminderTitle(v string) *SessionUpdate {
	_u.mutation.SetReminderTitle(v)
	return _u
}

// SetNillableReminderTitle sets the "reminder_title" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableReminderTitle(v *string) *SessionUpdate {
	if v != nil {
		_u.SetReminderTitle(*v)
	}
	return _u
}

// ClearReminderTitle clears the value of the "reminder_title" field.
func (_u *SessionUpdate) ClearReminderTitle() *SessionUpdate {
	_u.mutation.ClearReminderTitle()
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *SessionUpdate) SetXpEarned(v int) *SessionUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableXpEarned(v *int) *SessionUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *SessionUpdate) AddXpEarned(v int) *SessionUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := session.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Session.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(session.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(session.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(session.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(session.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(session.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(session.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReminderID(); ok {
		_spec.SetField(session.FieldReminderID, field.TypeString, value)
	}
	if _u.mutation.ReminderIDCleared() {
		_spec.ClearField(session.FieldReminderID, field.TypeString)
	}
	if value, ok := _u.mutation.ReminderTitle(); ok {
		_spec.SetField(session.FieldReminderTitle, field.TypeString, value)
	}
	if _u.mutation.ReminderTitleCleared() {
		_spec.ClearField(session.FieldReminderTitle, field.TypeString)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(session.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(session.FieldXpEarned, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetEndTime sets the "end_time" field.
func (_u *SessionUpdateOne) SetEndTime(v time.Time) *SessionUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableEndTime(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *SessionUpdateOne) ClearEndTime() *SessionUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionUpdateOne) SetDurationSecs(v int) *SessionUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDurationSecs(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionUpdateOne) AddDurationSecs(v int) *SessionUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *SessionUpdateOne) SetKind(v string) *SessionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableKind(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *SessionUpdateOne) SetCompleted(v bool) *SessionUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCompleted(v *bool) *SessionUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetReminderID sets the "reminder_id" field.
func (_u *SessionUpdateOne) SetReminderID(v string) *SessionUpdateOne {
	_u.mutation.SetReminderID(v)
	return _u
}

// SetNillableReminderID sets the "reminder_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableReminderID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetReminderID(*v)
	}
	return _u
}

// ClearReminderID clears the value of the "reminder_id" field.
func (_u *SessionUpdateOne) ClearReminderID() *SessionUpdateOne {
	_u.mutation.ClearReminderID()
	return _u
}

// SetReminderTitle sets the "reminder_title" field.
func (_u *SessionUpdateOne) SetReminderTitle(v string) *SessionUpdateOne {
	_u.mutation.SetReminderTitle(v)
	return _u
}

// SetNillableReminderTitle sets the "reminder_title" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableReminderTitle(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetReminderTitle(*v)
	}
	return _u
}

// ClearReminderTitle clears the value of the "reminder_title" field.
func (_u *SessionUpdateOne) ClearReminderTitle() *SessionUpdateOne {
	_u.mutation.ClearReminderTitle()
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *SessionUpdateOne) SetXpEarned(v int) *SessionUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableXpEarned(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *SessionUpdateOne) AddXpEarned(v int) *SessionUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := session.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Session.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(session.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(session.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(session.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(session.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(session.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(session.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReminderID(); ok {
		_spec.SetField(session.FieldReminderID, field.TypeString, value)
	}
	if _u.mutation.ReminderIDCleared() {
		_spec.ClearField(session.FieldReminderID, field.TypeString)
	}
	if value, ok := _u.mutation.ReminderTitle(); ok {
		_spec.SetField(session.FieldReminderTitle, field.TypeString, value)
	}
	if _u.mutation.ReminderTitleCleared() {
		_spec.ClearField(session.FieldReminderTitle, field.TypeString)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(session.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(session.FieldXpEarned, field.TypeInt, value)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
