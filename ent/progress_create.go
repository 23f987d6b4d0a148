// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusbar/ent/progress"
)

// ProgressCreate is the builder for creating a Progress entity.
type ProgressCreate struct {
	config
	mutation *ProgressMutation
	hooks    []Hook
}

// SetXp sets the "xp" field.
func (_c *ProgressCreate) SetXp(v int) *ProgressCreate {
	_c.mutation.SetXp(v)
	return _c
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableXp(v *int) *ProgressCreate {
	if v != nil {
		_c.SetXp(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *ProgressCreate) SetLevel(v int) *ProgressCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableLevel(v *int) *ProgressCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetCurrentStreak sets the "current_streak" field.
func (_c *ProgressCreate) SetCurrentStreak(v int) *ProgressCreate {
	_c.mutation.SetCurrentStreak(v)
	return _c
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableCurrentStreak(v *int) *ProgressCreate {
	if v != nil {
		_c.SetCurrentStreak(*v)
	}
	return _c
}

// SetFreezesRemaining sets the "freezes_remaining" field.
func (_c *ProgressCreate) SetFreezesRemaining(v int) *ProgressCreate {
	_c.mutation.SetFreezesRemaining(v)
	return _c
}

// SetNillableFreezesRemaining sets the "freezes_remaining" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableFreezesRemaining(v *int) *ProgressCreate {
	if v != nil {
		_c.SetFreezesRemaining(*v)
	}
	return _c
}

// SetLastStreakDate sets the "last_streak_date" field.
func (_c *ProgressCreate) SetLastStreakDate(v string) *ProgressCreate {
	_c.mutation.SetLastStreakDate(v)
	return _c
}

// SetNillableLastStreakDate sets the "last_streak_date" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableLastStreakDate(v *string) *ProgressCreate {
	if v != nil {
		_c.SetLastStreakDate(*v)
	}
	return _c
}

// SetLastFreezeResetWeek sets the "last_freeze_reset_week" field.
func (_c *ProgressCreate) SetLastFreezeResetWeek(v string) *ProgressCreate {
	_c.mutation.SetLastFreezeResetWeek(v)
	return _c
}

// SetNillableLastFreezeResetWeek sets the "last_freeze_reset_week" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableLastFreezeResetWeek(v *string) *ProgressCreate {
	if v != nil {
		_c.SetLastFreezeResetWeek(*v)
	}
	return _c
}

// SetDailyGoal sets the "daily_goal" field.
func (_c *ProgressCreate) SetDailyGoal(v int) *ProgressCreate {
	_c.mutation.SetDailyGoal(v)
	return _c
}

// SetNillableDailyGoal sets the "daily_goal" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableDailyGoal(v *int) *ProgressCreate {
	if v != nil {
		_c.SetDailyGoal(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProgressCreate) SetUpdatedAt(v time.Time) *ProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableUpdatedAt(v *time.Time) *ProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressMutation object of the builder.
func (_c *ProgressCreate) Mutation() *ProgressMutation {
	return _c.mutation
}

// Save creates the Progress in the database.
func (_c *ProgressCreate) Save(ctx context.Context) (*Progress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressCreate) SaveX(ctx context.Context) *Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressCreate) defaults() {
	if _, ok := _c.mutation.Xp(); !ok {
		v := progress.DefaultXp
		_c.mutation.SetXp(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := progress.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		v := progress.DefaultCurrentStreak
		_c.mutation.SetCurrentStreak(v)
	}
	if _, ok := _c.mutation.FreezesRemaining(); !ok {
		v := progress.DefaultFreezesRemaining
		_c.mutation.SetFreezesRemaining(v)
	}
	if _, ok := _c.mutation.LastStreakDate(); !ok {
		v := progress.DefaultLastStreakDate
		_c.mutation.SetLastStreakDate(v)
	}
	if _, ok := _c.mutation.LastFreezeResetWeek(); !ok {
		v := progress.DefaultLastFreezeResetWeek
		_c.mutation.SetLastFreezeResetWeek(v)
	}
	if _, ok := _c.mutation.DailyGoal(); !ok {
		v := progress.DefaultDailyGoal
		_c.mutation.SetDailyGoal(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := progress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressCreate) check() error {
	if _, ok := _c.mutation.Xp(); !ok {
		return &ValidationError{Name: "xp", err: errors.New(`ent: missing required field "Progress.xp"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Progress.level"`)}
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		return &ValidationError{Name: "current_streak", err: errors.New(`ent: missing required field "Progress.current_streak"`)}
	}
	if _, ok := _c.mutation.FreezesRemaining(); !ok {
		return &ValidationError{Name: "freezes_remaining", err: errors.New(`ent: missing required field "Progress.freezes_remaining"`)}
	}
	if _, ok := _c.mutation.LastStreakDate(); !ok {
		return &ValidationError{Name: "last_streak_date", err: errors.New(`ent: missing required field "Progress.last_streak_date"`)}
	}
	if _, ok := _c.mutation.LastFreezeResetWeek(); !ok {
		return &ValidationError{Name: "last_freeze_reset_week", err: errors.New(`ent: missing required field "Progress.last_freeze_reset_week"`)}
	}
	if _, ok := _c.mutation.DailyGoal(); !ok {
		return &ValidationError{Name: "daily_goal", err: errors.New(`ent: missing required field "Progress.daily_goal"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Progress.updated_at"`)}
	}
	return nil
}

func (_c *ProgressCreate) sqlSave(ctx context.Context) (*Progress, error) {
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

func (_c *ProgressCreate) createSpec() (*Progress, *sqlgraph.CreateSpec) {
	var (
		_node = &Progress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progress.Table, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Xp(); ok {
		_spec.SetField(progress.FieldXp, field.TypeInt, value)
		_node.Xp = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(progress.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.CurrentStreak(); ok {
		_spec.SetField(progress.FieldCurrentStreak, field.TypeInt, value)
		_node.CurrentStreak = value
	}
	if value, ok := _c.mutation.FreezesRemaining(); ok {
		_spec.SetField(progress.FieldFreezesRemaining, field.TypeInt, value)
		_node.FreezesRemaining = value
	}
	if value, ok := _c.mutation.LastStreakDate(); ok {
		_spec.SetField(progress.FieldLastStreakDate, field.TypeString, value)
		_node.LastStreakDate = value
	}
	if value, ok := _c.mutation.LastFreezeResetWeek(); ok {
		_spec.SetField(progress.FieldLastFreezeResetWeek, field.TypeString, value)
		_node.LastFreezeResetWeek = value
	}
	if value, ok := _c.mutation.DailyGoal(); ok {
		_spec.SetField(progress.FieldDailyGoal, field.TypeInt, value)
		_node.DailyGoal = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProgressCreateBulk is the builder for creating many Progress entities in bulk.
type ProgressCreateBulk struct {
	config
	err      error
	builders []*ProgressCreate
}

// Save creates the Progress entities in the database.
func (_c *ProgressCreateBulk) Save(ctx context.Context) ([]*Progress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Progress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressMutation)
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
func (_c *ProgressCreateBulk) SaveX(ctx context.Context) []*Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
