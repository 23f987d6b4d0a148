// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusbar/ent/dailystat"
)

// DailyStatCreate is the builder for creating a DailyStat entity.
type DailyStatCreate struct {
	config
	mutation *DailyStatMutation
	hooks    []Hook
}

// SetDate sets the "date" field.
func (_c *DailyStatCreate) SetDate(v string) *DailyStatCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetPomodorosCompleted sets the "pomodoros_completed" field.
func (_c *DailyStatCreate) SetPomodorosCompleted(v int) *DailyStatCreate {
	_c.mutation.SetPomodorosCompleted(v)
	return _c
}

// SetNillablePomodorosCompleted sets the "pomodoros_completed" field if the given value is not nil.
func (_c *DailyStatCreate) SetNillablePomodorosCompleted(v *int) *DailyStatCreate {
	if v != nil {
		_c.SetPomodorosCompleted(*v)
	}
	return _c
}

// SetTotalFocusMinutes sets the "total_focus_minutes" field.
func (_c *DailyStatCreate) SetTotalFocusMinutes(v int) *DailyStatCreate {
	_c.mutation.SetTotalFocusMinutes(v)
	return _c
}

// SetNillableTotalFocusMinutes sets the "total_focus_minutes" field if the given value is not nil.
func (_c *DailyStatCreate) SetNillableTotalFocusMinutes(v *int) *DailyStatCreate {
	if v != nil {
		_c.SetTotalFocusMinutes(*v)
	}
	return _c
}

// SetStreakMaintained sets the "streak_maintained" field.
func (_c *DailyStatCreate) SetStreakMaintained(v bool) *DailyStatCreate {
	_c.mutation.SetStreakMaintained(v)
	return _c
}

// SetNillableStreakMaintained sets the "streak_maintained" field if the given value is not nil.
func (_c *DailyStatCreate) SetNillableStreakMaintained(v *bool) *DailyStatCreate {
	if v != nil {
		_c.SetStreakMaintained(*v)
	}
	return _c
}

// SetXpEarned sets the "xp_earned" field.
func (_c *DailyStatCreate) SetXpEarned(v int) *DailyStatCreate {
	_c.mutation.SetXpEarned(v)
	return _c
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_c *DailyStatCreate) SetNillableXpEarned(v *int) *DailyStatCreate {
	if v != nil {
		_c.SetXpEarned(*v)
	}
	return _c
}

// Mutation returns the DailyStatMutation object of the builder.
func (_c *DailyStatCreate) Mutation() *DailyStatMutation {
	return _c.mutation
}

// Save creates the DailyStat in the database.
func (_c *DailyStatCreate) Save(ctx context.Context) (*DailyStat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DailyStatCreate) SaveX(ctx context.Context) *DailyStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyStatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyStatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DailyStatCreate) defaults() {
	if _, ok := _c.mutation.PomodorosCompleted(); !ok {
		v := dailystat.DefaultPomodorosCompleted
		_c.mutation.SetPomodorosCompleted(v)
	}
	if _, ok := _c.mutation.TotalFocusMinutes(); !ok {
		v := dailystat.DefaultTotalFocusMinutes
		_c.mutation.SetTotalFocusMinutes(v)
	}
	if _, ok := _c.mutation.StreakMaintained(); !ok {
		v := dailystat.DefaultStreakMaintained
		_c.mutation.SetStreakMaintained(v)
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		v := dailystat.DefaultXpEarned
		_c.mutation.SetXpEarned(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DailyStatCreate) check() error {
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "DailyStat.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := dailystat.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "DailyStat.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PomodorosCompleted(); !ok {
		return &ValidationError{Name: "pomodoros_completed", err: errors.New(`ent: missing required field "DailyStat.pomodoros_completed"`)}
	}
	if _, ok := _c.mutation.TotalFocusMinutes(); !ok {
		return &ValidationError{Name: "total_focus_minutes", err: errors.New(`ent: missing required field "DailyStat.total_focus_minutes"`)}
	}
	if _, ok := _c.mutation.StreakMaintained(); !ok {
		return &ValidationError{Name: "streak_maintained", err: errors.New(`ent: missing required field "DailyStat.streak_maintained"`)}
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		return &ValidationError{Name: "xp_earned", err: errors.New(`ent: missing required field "DailyStat.xp_earned"`)}
	}
	return nil
}

func (_c *DailyStatCreate) sqlSave(ctx context.Context) (*DailyStat, error) {
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

func (_c *DailyStatCreate) createSpec() (*DailyStat, *sqlgraph.CreateSpec) {
	var (
		_node = &DailyStat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dailystat.Table, sqlgraph.NewFieldSpec(dailystat.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(dailystat.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.PomodorosCompleted(); ok {
		_spec.SetField(dailystat.FieldPomodorosCompleted, field.TypeInt, value)
		_node.PomodorosCompleted = value
	}
	if value, ok := _c.mutation.TotalFocusMinutes(); ok {
		_spec.SetField(dailystat.FieldTotalFocusMinutes, field.TypeInt, value)
		_node.TotalFocusMinutes = value
	}
	if value, ok := _c.mutation.StreakMaintained(); ok {
		_spec.SetField(dailystat.FieldStreakMaintained, field.TypeBool, value)
		_node.StreakMaintained = value
	}
	if value, ok := _c.mutation.XpEarned(); ok {
		_spec.SetField(dailystat.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = value
	}
	return _node, _spec
}

// DailyStatCreateBulk is the builder for creating many DailyStat entities in bulk.
type DailyStatCreateBulk struct {
	config
	err      error
	builders []*DailyStatCreate
}

// Save creates the DailyStat entities in the database.
func (_c *DailyStatCreateBulk) Save(ctx context.Context) ([]*DailyStat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DailyStat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DailyStatMutation)
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
func (_c *DailyStatCreateBulk) SaveX(ctx context.Context) []*DailyStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyStatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyStatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
