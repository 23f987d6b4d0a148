// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/focusbar/ent/coachevent"
	"github.com/abhisek/focusbar/ent/predicate"
)

// CoachEventUpdate is the builder for updating CoachEvent entities.
type CoachEventUpdate struct {
	config
	hooks    []Hook
	mutation *CoachEventMutation
}

// Where appends a list predicates to the CoachEventUpdate builder.
func (_u *CoachEventUpdate) Where(ps ...predicate.CoachEvent) *CoachEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *CoachEventUpdate) SetProvider(v string) *CoachEventUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CoachEventUpdate) SetNillableProvider(v *string) *CoachEventUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *CoachEventUpdate) SetModel(v string) *CoachEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *CoachEventUpdate) SetNillableModel(v *string) *CoachEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *CoachEventUpdate) SetPurpose(v string) *CoachEventUpdate {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *CoachEventUpdate) SetNillablePurpose(v *string) *CoachEventUpdate {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *CoachEventUpdate) SetInputTokens(v int) *CoachEventUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *CoachEventUpdate) SetNillableInputTokens(v *int) *CoachEventUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *CoachEventUpdate) AddInputTokens(v int) *CoachEventUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *CoachEventUpdate) SetOutputTokens(v int) *CoachEventUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *CoachEventUpdate) SetNillableOutputTokens(v *int) *CoachEventUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *CoachEventUpdate) AddOutputTokens(v int) *CoachEventUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *CoachEventUpdate) SetLatencyMs(v int64) *CoachEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *CoachEventUpdate) SetNillableLatencyMs(v *int64) *CoachEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *CoachEventUpdate) AddLatencyMs(v int64) *CoachEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *CoachEventUpdate) SetSuccess(v bool) *CoachEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *CoachEventUpdate) SetNillableSuccess(v *bool) *CoachEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CoachEventUpdate) SetErrorMessage(v string) *CoachEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CoachEventUpdate) SetNillableErrorMessage(v *string) *CoachEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the CoachEventMutation object of the builder.
func (_u *CoachEventUpdate) Mutation() *CoachEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CoachEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoachEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CoachEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoachEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CoachEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(coachevent.Table, coachevent.Columns, sqlgraph.NewFieldSpec(coachevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(coachevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(coachevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(coachevent.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(coachevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(coachevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(coachevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(coachevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(coachevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(coachevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(coachevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(coachevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coachevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CoachEventUpdateOne is the builder for updating a single CoachEvent entity.
type CoachEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CoachEventMutation
}

// SetProvider sets the "provider" field.
func (_u *CoachEventUpdateOne) SetProvider(v string) *CoachEventUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CoachEventUpdateOne) SetNillableProvider(v *string) *CoachEventUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *CoachEventUpdateOne) SetModel(v string) *CoachEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *CoachEventUpdateOne) SetNillableModel(v *string) *CoachEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *CoachEventUpdateOne) SetPurpose(v string) *CoachEventUpdateOne {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *CoachEventUpdateOne) SetNillablePurpose(v *string) *CoachEventUpdateOne {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *CoachEventUpdateOne) SetInputTokens(v int) *CoachEventUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *CoachEventUpdateOne) SetNillableInputTokens(v *int) *CoachEventUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *CoachEventUpdateOne) AddInputTokens(v int) *CoachEventUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *CoachEventUpdateOne) SetOutputTokens(v int) *CoachEventUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *CoachEventUpdateOne) SetNillableOutputTokens(v *int) *CoachEventUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *CoachEventUpdateOne) AddOutputTokens(v int) *CoachEventUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *CoachEventUpdateOne) SetLatencyMs(v int64) *CoachEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *CoachEventUpdateOne) SetNillableLatencyMs(v *int64) *CoachEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *CoachEventUpdateOne) AddLatencyMs(v int64) *CoachEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *CoachEventUpdateOne) SetSuccess(v bool) *CoachEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *CoachEventUpdateOne) SetNillableSuccess(v *bool) *CoachEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CoachEventUpdateOne) SetErrorMessage(v string) *CoachEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CoachEventUpdateOne) SetNillableErrorMessage(v *string) *CoachEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the CoachEventMutation object of the builder.
func (_u *CoachEventUpdateOne) Mutation() *CoachEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CoachEventUpdate builder.
func (_u *CoachEventUpdateOne) Where(ps ...predicate.CoachEvent) *CoachEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CoachEventUpdateOne) Select(field string, fields ...string) *CoachEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CoachEvent entity.
func (_u *CoachEventUpdateOne) Save(ctx context.Context) (*CoachEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoachEventUpdateOne) SaveX(ctx context.Context) *CoachEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CoachEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoachEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CoachEventUpdateOne) sqlSave(ctx context.Context) (_node *CoachEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(coachevent.Table, coachevent.Columns, sqlgraph.NewFieldSpec(coachevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CoachEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, coachevent.FieldID)
		for _, f := range fields {
			if !coachevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != coachevent.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(coachevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(coachevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(coachevent.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(coachevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(coachevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(coachevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(coachevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(coachevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(coachevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(coachevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(coachevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &CoachEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coachevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
