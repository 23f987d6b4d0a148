// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusbar/ent/achievement"
)

// AchievementCreate is the builder for creating a Achievement entity.
type AchievementCreate struct {
	config
	mutation *AchievementMutation
	hooks    []Hook
}

// SetAchievementID sets the "achievement_id" field.
func (_c *AchievementCreate) SetAchievementID(v string) *AchievementCreate {
	_c.mutation.SetAchievementID(v)
	return _c
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_c *AchievementCreate) SetUnlockedAt(v time.Time) *AchievementCreate {
	_c.mutation.SetUnlockedAt(v)
	return _c
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableUnlockedAt(v *time.Time) *AchievementCreate {
	if v != nil {
		_c.SetUnlockedAt(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AchievementCreate) SetMetadata(v string) *AchievementCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableMetadata(v *string) *AchievementCreate {
	if v != nil {
		_c.SetMetadata(*v)
	}
	return _c
}

// Mutation returns the AchievementMutation object of the builder.
func (_c *AchievementCreate) Mutation() *AchievementMutation {
	return _c.mutation
}

// Save creates the Achievement in the database.
func (_c *AchievementCreate) Save(ctx context.Context) (*Achievement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AchievementCreate) SaveX(ctx context.Context) *Achievement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AchievementCreate) defaults() {
	if _, ok := _c.mutation.UnlockedAt(); !ok {
		v := achievement.DefaultUnlockedAt()
		_c.mutation.SetUnlockedAt(v)
	}
	if _, ok := _c.mutation.Metadata(); !ok {
		v := achievement.DefaultMetadata
		_c.mutation.SetMetadata(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AchievementCreate) check() error {
	if _, ok := _c.mutation.AchievementID(); !ok {
		return &ValidationError{Name: "achievement_id", err: errors.New(`ent: missing required field "Achievement.achievement_id"`)}
	}
	if v, ok := _c.mutation.AchievementID(); ok {
		if err := achievement.AchievementIDValidator(v); err != nil {
			return &ValidationError{Name: "achievement_id", err: fmt.Errorf(`ent: validator failed for field "Achievement.achievement_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnlockedAt(); !ok {
		return &ValidationError{Name: "unlocked_at", err: errors.New(`ent: missing required field "Achievement.unlocked_at"`)}
	}
	if _, ok := _c.mutation.Metadata(); !ok {
		return &ValidationError{Name: "metadata", err: errors.New(`ent: missing required field "Achievement.metadata"`)}
	}
	return nil
}

func (_c *AchievementCreate) sqlSave(ctx context.Context) (*Achievement, error) {
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

func (_c *AchievementCreate) createSpec() (*Achievement, *sqlgraph.CreateSpec) {
	var (
		_node = &Achievement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(achievement.Table, sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AchievementID(); ok {
		_spec.SetField(achievement.FieldAchievementID, field.TypeString, value)
		_node.AchievementID = value
	}
	if value, ok := _c.mutation.UnlockedAt(); ok {
		_spec.SetField(achievement.FieldUnlockedAt, field.TypeTime, value)
		_node.UnlockedAt = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(achievement.FieldMetadata, field.TypeString, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// AchievementCreateBulk is the builder for creating many Achievement entities in bulk.
type AchievementCreateBulk struct {
	config
	err      error
	builders []*AchievementCreate
}

// Save creates the Achievement entities in the database.
func (_c *AchievementCreateBulk) Save(ctx context.Context) ([]*Achievement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Achievement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AchievementMutation)
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
func (_c *AchievementCreateBulk) SaveX(ctx context.Context) []*Achievement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
