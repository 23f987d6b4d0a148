// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusbar/ent/dailystat"
	"github.com/abhisek/focusbar/ent/predicate"
)

// DailyStatUpdate is the builder for updating DailyStat entities.
type DailyStatUpdate struct {
	config
	hooks    []Hook
	mutation *DailyStatMutation
}

// Where appends a list predicates to the DailyStatUpdate builder.
func (_u *DailyStatUpdate) Where(ps ...predicate.DailyStat) *DailyStatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDate sets the "date" field.
func (_u *DailyStatUpdate) SetDate(v string) *DailyStatUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *DailyStatUpdate) SetNillableDate(v *string) *DailyStatUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetPomodorosCompleted sets the "pomodoros_completed" field.
func (_u *DailyStatUpdate) SetPomodorosCompleted(v int) *DailyStatUpdate {
	_u.mutation.ResetPomodorosCompleted()
	_u.mutation.SetPomodorosCompleted(v)
	return _u
}

// SetNillablePomodorosCompleted sets the "pomodoros_completed" field if the given value is not nil.
func (_u *DailyStatUpdate) SetNillablePomodorosCompleted(v *int) *DailyStatUpdate {
	if v != nil {
		_u.SetPomodorosCompleted(*v)
	}
	return _u
}

// AddPomodorosCompleted adds value to the "pomodoros_completed" field.
func (_u *DailyStatUpdate) AddPomodorosCompleted(v int) *DailyStatUpdate {
	_u.mutation.AddPomodorosCompleted(v)
	return _u
}

// SetTotalFocusMinutes sets the "total_focus_minutes" field.
func (_u *DailyStatUpdate) SetTotalFocusMinutes(v int) *DailyStatUpdate {
	_u.mutation.ResetTotalFocusMinutes()
	_u.mutation.SetTotalFocusMinutes(v)
	return _u
}

// SetNillableTotalFocusMinutes sets the "total_focus_minutes" field if the given value is not nil.
func (_u *DailyStatUpdate) SetNillableTotalFocusMinutes(v *int) *DailyStatUpdate {
	if v != nil {
		_u.SetTotalFocusMinutes(*v)
	}
	return _u
}

// AddTotalFocusMinutes adds value to the "total_focus_minutes" field.
func (_u *DailyStatUpdate) AddTotalFocusMinutes(v int) *DailyStatUpdate {
	_u.mutation.AddTotalFocusMinutes(v)
	return _u
}

// SetStreakMaintained sets the "streak_maintained" field.
func (_u *DailyStatUpdate) SetStreakMaintained(v bool) *DailyStatUpdate {
	_u.mutation.SetStreakMaintained(v)
	return _u
}

// SetNillableStreakMaintained sets the "streak_maintained" field if the given value is not nil.
func (_u *DailyStatUpdate) SetNillableStreakMaintained(v *bool) *DailyStatUpdate {
	if v != nil {
		_u.SetStreakMaintained(*v)
	}
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *DailyStatUpdate) SetXpEarned(v int) *DailyStatUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *DailyStatUpdate) SetNillableXpEarned(v *int) *DailyStatUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *DailyStatUpdate) AddXpEarned(v int) *DailyStatUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// Mutation returns the DailyStatMutation object of the builder.
func (_u *DailyStatUpdate) Mutation() *DailyStatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DailyStatUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyStatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DailyStatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyStatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyStatUpdate) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := dailystat.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "DailyStat.date": %w`, err)}
		}
	}
	return nil
}

func (_u *DailyStatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailystat.Table, dailystat.Columns, sqlgraph.NewFieldSpec(dailystat.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(dailystat.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.PomodorosCompleted(); ok {
		_spec.SetField(dailystat.FieldPomodorosCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPomodorosCompleted(); ok {
		_spec.AddField(dailystat.FieldPomodorosCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalFocusMinutes(); ok {
		_spec.SetField(dailystat.FieldTotalFocusMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFocusMinutes(); ok {
		_spec.AddField(dailystat.FieldTotalFocusMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakMaintained(); ok {
		_spec.SetField(dailystat.FieldStreakMaintained, field.TypeBool, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(dailystat.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(dailystat.FieldXpEarned, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailystat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DailyStatUpdateOne is the builder for updating a single DailyStat entity.
type DailyStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyStatMutation
}

// SetDate sets the "date" field.
func (_u *DailyStatUpdateOne) SetDate(v string) *DailyStatUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *DailyStatUpdateOne) SetNillableDate(v *string) *DailyStatUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetPomodorosCompleted sets the "pomodoros_completed" field.
func (_u *DailyStatUpdateOne) SetPomodorosCompleted(v int) *DailyStatUpdateOne {
	_u.mutation.ResetPomodorosCompleted()
	_u.mutation.SetPomodorosCompleted(v)
	return _u
}

// SetNillablePomodorosCompleted sets the "pomodoros_completed" field if the given value is not nil.
func (_u *DailyStatUpdateOne) SetNillablePomodorosCompleted(v *int) *DailyStatUpdateOne {
	if v != nil {
		_u.SetPomodorosCompleted(*v)
	}
	return _u
}

// AddPomodorosCompleted adds value to the "pomodoros_completed" field.
func (_u *DailyStatUpdateOne) AddPomodorosCompleted(v int) *DailyStatUpdateOne {
	_u.mutation.AddPomodorosCompleted(v)
	return _u
}

// SetTotalFocusMinutes sets the "total_focus_minutes" field.
func (_u *DailyStatUpdateOne) SetTotalFocusMinutes(v int) *DailyStatUpdateOne {
	_u.mutation.ResetTotalFocusMinutes()
	_u.mutation.SetTotalFocusMinutes(v)
	return _u
}

// SetNillableTotalFocusMinutes sets the "total_focus_minutes" field if the given value is not nil.
func (_u *DailyStatUpdateOne) SetNillableTotalFocusMinutes(v *int) *DailyStatUpdateOne {
	if v != nil {
		_u.SetTotalFocusMinutes(*v)
	}
	return _u
}

// AddTotalFocusMinutes adds value to the "total_focus_minutes" field.
func (_u *DailyStatUpdateOne) AddTotalFocusMinutes(v int) *DailyStatUpdateOne {
	_u.mutation.AddTotalFocusMinutes(v)
	return _u
}

// SetStreakMaintained sets the "streak_maintained" field.
func (_u *DailyStatUpdateOne) SetStreakMaintained(v bool) *DailyStatUpdateOne {
	_u.mutation.SetStreakMaintained(v)
	return _u
}

// SetNillableStreakMaintained sets the "streak_maintained" field if the given value is not nil.
func (_u *DailyStatUpdateOne) SetNillableStreakMaintained(v *bool) *DailyStatUpdateOne {
	if v != nil {
		_u.SetStreakMaintained(*v)
	}
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *DailyStatUpdateOne) SetXpEarned(v int) *DailyStatUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *DailyStatUpdateOne) SetNillableXpEarned(v *int) *DailyStatUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *DailyStatUpdateOne) AddXpEarned(v int) *DailyStatUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// Mutation returns the DailyStatMutation object of the builder.
func (_u *DailyStatUpdateOne) Mutation() *DailyStatMutation {
	return _u.mutation
}

// Where appends a list predicates to the DailyStatUpdate builder.
func (_u *DailyStatUpdateOne) Where(ps ...predicate.DailyStat) *DailyStatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DailyStatUpdateOne) Select(field string, fields ...string) *DailyStatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DailyStat entity.
func (_u *DailyStatUpdateOne) Save(ctx context.Context) (*DailyStat, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyStatUpdateOne) SaveX(ctx context.Context) *DailyStat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DailyStatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyStatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyStatUpdateOne) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := dailystat.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "DailyStat.date": %w`, err)}
		}
	}
	return nil
}

func (_u *DailyStatUpdateOne) sqlSave(ctx context.Context) (_node *DailyStat, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailystat.Table, dailystat.Columns, sqlgraph.NewFieldSpec(dailystat.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailystat.FieldID)
		for _, f := range fields {
			if !dailystat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailystat.FieldID {
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
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(dailystat.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.PomodorosCompleted(); ok {
		_spec.SetField(dailystat.FieldPomodorosCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPomodorosCompleted(); ok {
		_spec.AddField(dailystat.FieldPomodorosCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalFocusMinutes(); ok {
		_spec.SetField(dailystat.FieldTotalFocusMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFocusMinutes(); ok {
		_spec.AddField(dailystat.FieldTotalFocusMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakMaintained(); ok {
		_spec.SetField(dailystat.FieldStreakMaintained, field.TypeBool, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(dailystat.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(dailystat.FieldXpEarned, field.TypeInt, value)
	}
	_node = &DailyStat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailystat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
