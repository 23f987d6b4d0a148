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
	"github.com/abhisek/focusbar/ent/progress"
)

// ProgressUpdate is the builder for updating Progress entities.
type ProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdate) Where(ps ...predicate.Progress) *ProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetXp sets the "xp" field.
func (_u *ProgressUpdate) SetXp(v int) *ProgressUpdate {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableXp(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *ProgressUpdate) AddXp(v int) *ProgressUpdate {
	_u.mutation.AddXp(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *ProgressUpdate) SetLevel(v int) *ProgressUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableLevel(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ProgressUpdate) AddLevel(v int) *ProgressUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *ProgressUpdate) SetCurrentStreak(v int) *ProgressUpdate {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableCurrentStreak(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *ProgressUpdate) AddCurrentStreak(v int) *ProgressUpdate {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetFreezesRemaining sets the "freezes_remaining" field.
func (_u *ProgressUpdate) SetFreezesRemaining(v int) *ProgressUpdate {
	_u.mutation.ResetFreezesRemaining()
	_u.mutation.SetFreezesRemaining(v)
	return _u
}

// SetNillableFreezesRemaining sets the "freezes_remaining" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableFreezesRemaining(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetFreezesRemaining(*v)
	}
	return _u
}

// AddFreezesRemaining adds value to the "freezes_remaining" field.
func (_u *ProgressUpdate) AddFreezesRemaining(v int) *ProgressUpdate {
	_u.mutation.AddFreezesRemaining(v)
	return _u
}

// SetLastStreakDate sets the "last_streak_date" field.
func (_u *ProgressUpdate) SetLastStreakDate(v string) *ProgressUpdate {
	_u.mutation.SetLastStreakDate(v)
	return _u
}

// SetNillableLastStreakDate sets the "last_streak_date" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableLastStreakDate(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetLastStreakDate(*v)
	}
	return _u
}

// SetLastFreezeResetWeek sets the "last_freeze_reset_week" field.
func (_u *ProgressUpdate) SetLastFreezeResetWeek(v string) *ProgressUpdate {
	_u.mutation.SetLastFreezeResetWeek(v)
	return _u
}

// SetNillableLastFreezeResetWeek sets the "last_freeze_reset_week" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableLastFreezeResetWeek(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetLastFreezeResetWeek(*v)
	}
	return _u
}

// SetDailyGoal sets the "daily_goal" field.
func (_u *ProgressUpdate) SetDailyGoal(v int) *ProgressUpdate {
	_u.mutation.ResetDailyGoal()
	_u.mutation.SetDailyGoal(v)
	return _u
}

// SetNillableDailyGoal sets the "daily_goal" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableDailyGoal(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetDailyGoal(*v)
	}
	return _u
}

// AddDailyGoal adds value to the "daily_goal" field.
func (_u *ProgressUpdate) AddDailyGoal(v int) *ProgressUpdate {
	_u.mutation.AddDailyGoal(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressUpdate) SetUpdatedAt(v time.Time) *ProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdate) Mutation() *ProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(progress.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(progress.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(progress.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(progress.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(progress.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(progress.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FreezesRemaining(); ok {
		_spec.SetField(progress.FieldFreezesRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFreezesRemaining(); ok {
		_spec.AddField(progress.FieldFreezesRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastStreakDate(); ok {
		_spec.SetField(progress.FieldLastStreakDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastFreezeResetWeek(); ok {
		_spec.SetField(progress.FieldLastFreezeResetWeek, field.TypeString, value)
	}
	if value, ok := _u.mutation.DailyGoal(); ok {
		_spec.SetField(progress.FieldDailyGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyGoal(); ok {
		_spec.AddField(progress.FieldDailyGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressUpdateOne is the builder for updating a single Progress entity.
type ProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMutation
}

// SetXp sets the "xp" field.
func (_u *ProgressUpdateOne) SetXp(v int) *ProgressUpdateOne {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableXp(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *ProgressUpdateOne) AddXp(v int) *ProgressUpdateOne {
	_u.mutation.AddXp(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *ProgressUpdateOne) SetLevel(v int) *ProgressUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableLevel(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ProgressUpdateOne) AddLevel(v int) *ProgressUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *ProgressUpdateOne) SetCurrentStreak(v int) *ProgressUpdateOne {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableCurrentStreak(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *ProgressUpdateOne) AddCurrentStreak(v int) *ProgressUpdateOne {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetFreezesRemaining sets the "freezes_remaining" field.
func (_u *ProgressUpdateOne) SetFreezesRemaining(v int) *ProgressUpdateOne {
	_u.mutation.ResetFreezesRemaining()
	_u.mutation.SetFreezesRemaining(v)
	return _u
}

// SetNillableFreezesRemaining sets the "freezes_remaining" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableFreezesRemaining(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetFreezesRemaining(*v)
	}
	return _u
}

// AddFreezesRemaining adds value to the "freezes_remaining" field.
func (_u *ProgressUpdateOne) AddFreezesRemaining(v int) *ProgressUpdateOne {
	_u.mutation.AddFreezesRemaining(v)
	return _u
}

// SetLastStreakDate sets the "last_streak_date" field.
func (_u *ProgressUpdateOne) SetLastStreakDate(v string) *ProgressUpdateOne {
	_u.mutation.SetLastStreakDate(v)
	return _u
}

// SetNillableLastStreakDate sets the "last_streak_date" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableLastStreakDate(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetLastStreakDate(*v)
	}
	return _u
}

// SetLastFreezeResetWeek sets the "last_freeze_reset_week" field.
func (_u *ProgressUpdateOne) SetLastFreezeResetWeek(v string) *ProgressUpdateOne {
	_u.mutation.SetLastFreezeResetWeek(v)
	return _u
}

// SetNillableLastFreezeResetWeek sets the "last_freeze_reset_week" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableLastFreezeResetWeek(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetLastFreezeResetWeek(*v)
	}
	return _u
}

// SetDailyGoal sets the "daily_goal" field.
func (_u *ProgressUpdateOne) SetDailyGoal(v int) *ProgressUpdateOne {
	_u.mutation.ResetDailyGoal()
	_u.mutation.SetDailyGoal(v)
	return _u
}

// SetNillableDailyGoal sets the "daily_goal" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableDailyGoal(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetDailyGoal(*v)
	}
	return _u
}

// AddDailyGoal adds value to the "daily_goal" field.
func (_u *ProgressUpdateOne) AddDailyGoal(v int) *ProgressUpdateOne {
	_u.mutation.AddDailyGoal(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressUpdateOne) SetUpdatedAt(v time.Time) *ProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdateOne) Mutation() *ProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdateOne) Where(ps ...predicate.Progress) *ProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressUpdateOne) Select(field string, fields ...string) *ProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Progress entity.
func (_u *ProgressUpdateOne) Save(ctx context.Context) (*Progress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdateOne) SaveX(ctx context.Context) *Progress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProgressUpdateOne) sqlSave(ctx context.Context) (_node *Progress, err error) {
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Progress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progress.FieldID)
		for _, f := range fields {
			if !progress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progress.FieldID {
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
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(progress.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(progress.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(progress.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(progress.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(progress.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(progress.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FreezesRemaining(); ok {
		_spec.SetField(progress.FieldFreezesRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFreezesRemaining(); ok {
		_spec.AddField(progress.FieldFreezesRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastStreakDate(); ok {
		_spec.SetField(progress.FieldLastStreakDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastFreezeResetWeek(); ok {
		_spec.SetField(progress.FieldLastFreezeResetWeek, field.TypeString, value)
	}
	if value, ok := _u.mutation.DailyGoal(); ok {
		_spec.SetField(progress.FieldDailyGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyGoal(); ok {
		_spec.AddField(progress.FieldDailyGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Progress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
