// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/focusbar/ent/achievement"
	"github.com/abhisek/focusbar/ent/coachevent"
	"github.com/abhisek/focusbar/ent/dailystat"
	"github.com/abhisek/focusbar/ent/predicate"
	"github.com/abhisek/focusbar/ent/progress"
	"github.com/abhisek/focusbar/ent/reminder"
	"github.com/abhisek/focusbar/ent/session"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAchievement = "Achievement"
	TypeCoachEvent  = "CoachEvent"
	TypeDailyStat   = "DailyStat"
	TypeProgress    = "Progress"
	TypeReminder    = "Reminder"
	TypeSession     = "Session"
)

// AchievementMutation represents an operation that mutates the Achievement nodes in the graph.
type AchievementMutation struct {
	config
	op             Op
	typ            string
	id             *int
	achievement_id *string
	unlocked_at    *time.Time
	metadata       *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Achievement, error)
	predicates     []predicate.Achievement
}

var _ ent.Mutation = (*AchievementMutation)(nil)

// achievementOption allows management of the mutation configuration using functional options.
type achievementOption func(*AchievementMutation)

// newAchievementMutation creates new mutation for the Achievement entity.
func newAchievementMutation(c config, op Op, opts ...achievementOption) *AchievementMutation {
	m := &AchievementMutation{
		config:        c,
		op:            op,
		typ:           TypeAchievement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAchievementID sets the ID field of the mutation.
func withAchievementID(id int) achievementOption {
	return func(m *AchievementMutation) {
		var (
			err   error
			once  sync.Once
			value *Achievement
		)
		m.oldValue = func(ctx context.Context) (*Achievement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Achievement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAchievement sets the old Achievement of the mutation.
func withAchievement(node *Achievement) achievementOption {
	return func(m *AchievementMutation) {
		m.oldValue = func(context.Context) (*Achievement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AchievementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AchievementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AchievementMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AchievementMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Achievement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAchievementID sets the "achievement_id" field.
func (m *AchievementMutation) SetAchievementID(s string) {
	m.achievement_id = &s
}

// AchievementID returns the value of the "achievement_id" field in the mutation.
func (m *AchievementMutation) AchievementID() (r string, exists bool) {
	v := m.achievement_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAchievementID returns the old "achievement_id" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldAchievementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAchievementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAchievementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAchievementID: %w", err)
	}
	return oldValue.AchievementID, nil
}

// ResetAchievementID resets all changes to the "achievement_id" field.
func (m *AchievementMutation) ResetAchievementID() {
	m.achievement_id = nil
}

// SetUnlockedAt sets the "unlocked_at" field.
func (m *AchievementMutation) SetUnlockedAt(t time.Time) {
	m.unlocked_at = &t
}

// UnlockedAt returns the value of the "unlocked_at" field in the mutation.
func (m *AchievementMutation) UnlockedAt() (r time.Time, exists bool) {
	v := m.unlocked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUnlockedAt returns the old "unlocked_at" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldUnlockedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnlockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnlockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnlockedAt: %w", err)
	}
	return oldValue.UnlockedAt, nil
}

// ResetUnlockedAt resets all changes to the "unlocked_at" field.
func (m *AchievementMutation) ResetUnlockedAt() {
	m.unlocked_at = nil
}

// SetMetadata sets the "metadata" field.
func (m *AchievementMutation) SetMetadata(s string) {
	m.metadata = &s
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AchievementMutation) Metadata() (r string, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldMetadata(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AchievementMutation) ResetMetadata() {
	m.metadata = nil
}

// Where appends a list predicates to the AchievementMutation builder.
func (m *AchievementMutation) Where(ps ...predicate.Achievement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AchievementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AchievementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Achievement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AchievementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AchievementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Achievement).
func (m *AchievementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AchievementMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.achievement_id != nil {
		fields = append(fields, achievement.FieldAchievementID)
	}
	if m.unlocked_at != nil {
		fields = append(fields, achievement.FieldUnlockedAt)
	}
	if m.metadata != nil {
		fields = append(fields, achievement.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AchievementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case achievement.FieldAchievementID:
		return m.AchievementID()
	case achievement.FieldUnlockedAt:
		return m.UnlockedAt()
	case achievement.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AchievementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case achievement.FieldAchievementID:
		return m.OldAchievementID(ctx)
	case achievement.FieldUnlockedAt:
		return m.OldUnlockedAt(ctx)
	case achievement.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown Achievement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case achievement.FieldAchievementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAchievementID(v)
		return nil
	case achievement.FieldUnlockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnlockedAt(v)
		return nil
	case achievement.FieldMetadata:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown Achievement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AchievementMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AchievementMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Achievement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AchievementMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AchievementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AchievementMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Achievement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AchievementMutation) ResetField(name string) error {
	switch name {
	case achievement.FieldAchievementID:
		m.ResetAchievementID()
		return nil
	case achievement.FieldUnlockedAt:
		m.ResetUnlockedAt()
		return nil
	case achievement.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown Achievement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AchievementMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AchievementMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AchievementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AchievementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AchievementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AchievementMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AchievementMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Achievement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AchievementMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Achievement edge %s", name)
}

// CoachEventMutation represents an operation that mutates the CoachEvent nodes in the graph.
type CoachEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*CoachEvent, error)
	predicates       []predicate.CoachEvent
}

var _ ent.Mutation = (*CoachEventMutation)(nil)

// coacheventOption allows management of the mutation configuration using functional options.
type coacheventOption func(*CoachEventMutation)

// newCoachEventMutation creates new mutation for the CoachEvent entity.
func newCoachEventMutation(c config, op Op, opts ...coacheventOption) *CoachEventMutation {
	m := &CoachEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCoachEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCoachEventID sets the ID field of the mutation.
func withCoachEventID(id int) coacheventOption {
	return func(m *CoachEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CoachEvent
		)
		m.oldValue = func(ctx context.Context) (*CoachEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CoachEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCoachEvent sets the old CoachEvent of the mutation.
func withCoachEvent(node *CoachEvent) coacheventOption {
	return func(m *CoachEventMutation) {
		m.oldValue = func(context.Context) (*CoachEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CoachEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CoachEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CoachEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CoachEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CoachEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *CoachEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *CoachEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the CoachEvent entity.
// If the CoachEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoachEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *CoachEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *CoachEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *CoachEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the CoachEvent entity.
// If the CoachEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoachEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *CoachEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *CoachEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *CoachEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the CoachEvent entity.
// If the CoachEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoachEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *CoachEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *CoachEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *CoachEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the CoachEvent entity.
// If the CoachEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoachEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *CoachEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *CoachEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *CoachEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the CoachEvent entity.
// If the CoachEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoachEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *CoachEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *CoachEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *CoachEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *CoachEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *CoachEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the CoachEvent entity.
// If the CoachEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoachEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *CoachEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *CoachEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *CoachEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *CoachEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *CoachEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the CoachEvent entity.
// If the CoachEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoachEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *CoachEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *CoachEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *CoachEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *CoachEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *CoachEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the CoachEvent entity.
// If the CoachEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoachEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *CoachEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *CoachEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *CoachEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the CoachEvent entity.
// If the CoachEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoachEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *CoachEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the CoachEventMutation builder.
func (m *CoachEventMutation) Where(ps ...predicate.CoachEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CoachEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CoachEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CoachEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CoachEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CoachEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CoachEvent).
func (m *CoachEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CoachEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.timestamp != nil {
		fields = append(fields, coachevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, coachevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, coachevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, coachevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, coachevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, coachevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, coachevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, coachevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, coachevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CoachEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case coachevent.FieldTimestamp:
		return m.Timestamp()
	case coachevent.FieldProvider:
		return m.Provider()
	case coachevent.FieldModel:
		return m.Model()
	case coachevent.FieldPurpose:
		return m.Purpose()
	case coachevent.FieldInputTokens:
		return m.InputTokens()
	case coachevent.FieldOutputTokens:
		return m.OutputTokens()
	case coachevent.FieldLatencyMs:
		return m.LatencyMs()
	case coachevent.FieldSuccess:
		return m.Success()
	case coachevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CoachEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case coachevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case coachevent.FieldProvider:
		return m.OldProvider(ctx)
	case coachevent.FieldModel:
		return m.OldModel(ctx)
	case coachevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case coachevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case coachevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case coachevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case coachevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case coachevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown CoachEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoachEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case coachevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case coachevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case coachevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case coachevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case coachevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case coachevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case coachevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case coachevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case coachevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown CoachEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CoachEventMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, coachevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, coachevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, coachevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CoachEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case coachevent.FieldInputTokens:
		return m.AddedInputTokens()
	case coachevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case coachevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoachEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case coachevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case coachevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case coachevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown CoachEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CoachEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CoachEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CoachEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CoachEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CoachEventMutation) ResetField(name string) error {
	switch name {
	case coachevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case coachevent.FieldProvider:
		m.ResetProvider()
		return nil
	case coachevent.FieldModel:
		m.ResetModel()
		return nil
	case coachevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case coachevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case coachevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case coachevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case coachevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case coachevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown CoachEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CoachEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CoachEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CoachEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CoachEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CoachEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CoachEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CoachEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CoachEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CoachEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CoachEvent edge %s", name)
}

// DailyStatMutation represents an operation that mutates the DailyStat nodes in the graph.
type DailyStatMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	date                   *string
	pomodoros_completed    *int
	addpomodoros_completed *int
	total_focus_minutes    *int
	addtotal_focus_minutes *int
	streak_maintained      *bool
	xp_earned              *int
	addxp_earned           *int
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*DailyStat, error)
	predicates             []predicate.DailyStat
}

var _ ent.Mutation = (*DailyStatMutation)(nil)

// dailystatOption allows management of the mutation configuration using functional options.
type dailystatOption func(*DailyStatMutation)

// newDailyStatMutation creates new mutation for the DailyStat entity.
func newDailyStatMutation(c config, op Op, opts ...dailystatOption) *DailyStatMutation {
	m := &DailyStatMutation{
		config:        c,
		op:            op,
		typ:           TypeDailyStat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDailyStatID sets the ID field of the mutation.
func withDailyStatID(id int) dailystatOption {
	return func(m *DailyStatMutation) {
		var (
			err   error
			once  sync.Once
			value *DailyStat
		)
		m.oldValue = func(ctx context.Context) (*DailyStat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DailyStat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDailyStat sets the old DailyStat of the mutation.
func withDailyStat(node *DailyStat) dailystatOption {
	return func(m *DailyStatMutation) {
		m.oldValue = func(context.Context) (*DailyStat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DailyStatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DailyStatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DailyStatMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DailyStatMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DailyStat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDate sets the "date" field.
func (m *DailyStatMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *DailyStatMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the DailyStat entity.
// If the DailyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyStatMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *DailyStatMutation) ResetDate() {
	m.date = nil
}

// SetPomodorosCompleted sets the "pomodoros_completed" field.
func (m *DailyStatMutation) SetPomodorosCompleted(i int) {
	m.pomodoros_completed = &i
	m.addpomodoros_completed = nil
}

// PomodorosCompleted returns the value of the "pomodoros_completed" field in the mutation.
func (m *DailyStatMutation) PomodorosCompleted() (r int, exists bool) {
	v := m.pomodoros_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldPomodorosCompleted returns the old "pomodoros_completed" field's value of the DailyStat entity.
// If the DailyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyStatMutation) OldPomodorosCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPomodorosCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPomodorosCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPomodorosCompleted: %w", err)
	}
	return oldValue.PomodorosCompleted, nil
}

// AddPomodorosCompleted adds i to the "pomodoros_completed" field.
func (m *DailyStatMutation) AddPomodorosCompleted(i int) {
	if m.addpomodoros_completed != nil {
		*m.addpomodoros_completed += i
	} else {
		m.addpomodoros_completed = &i
	}
}

// AddedPomodorosCompleted returns the value that was added to the "pomodoros_completed" field in this mutation.
func (m *DailyStatMutation) AddedPomodorosCompleted() (r int, exists bool) {
	v := m.addpomodoros_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetPomodorosCompleted resets all changes to the "pomodoros_completed" field.
func (m *DailyStatMutation) ResetPomodorosCompleted() {
	m.pomodoros_completed = nil
	m.addpomodoros_completed = nil
}

// SetTotalFocusMinutes sets the "total_focus_minutes" field.
func (m *DailyStatMutation) SetTotalFocusMinutes(i int) {
	m.total_focus_minutes = &i
	m.addtotal_focus_minutes = nil
}

// TotalFocusMinutes returns the value of the "total_focus_minutes" field in the mutation.
func (m *DailyStatMutation) TotalFocusMinutes() (r int, exists bool) {
	v := m.total_focus_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalFocusMinutes returns the old "total_focus_minutes" field's value of the DailyStat entity.
// If the DailyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyStatMutation) OldTotalFocusMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalFocusMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalFocusMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalFocusMinutes: %w", err)
	}
	return oldValue.TotalFocusMinutes, nil
}

// AddTotalFocusMinutes adds i to the "total_focus_minutes" field.
func (m *DailyStatMutation) AddTotalFocusMinutes(i int) {
	if m.addtotal_focus_minutes != nil {
		*m.addtotal_focus_minutes += i
	} else {
		m.addtotal_focus_minutes = &i
	}
}

// AddedTotalFocusMinutes returns the value that was added to the "total_focus_minutes" field in this mutation.
func (m *DailyStatMutation) AddedTotalFocusMinutes() (r int, exists bool) {
	v := m.addtotal_focus_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalFocusMinutes resets all changes to the "total_focus_minutes" field.
func (m *DailyStatMutation) ResetTotalFocusMinutes() {
	m.total_focus_minutes = nil
	m.addtotal_focus_minutes = nil
}

// SetStreakMaintained sets the "streak_maintained" field.
func (m *DailyStatMutation) SetStreakMaintained(b bool) {
	m.streak_maintained = &b
}

// StreakMaintained returns the value of the "streak_maintained" field in the mutation.
func (m *DailyStatMutation) StreakMaintained() (r bool, exists bool) {
	v := m.streak_maintained
	if v == nil {
		return
	}
	return *v, true
}

// OldStreakMaintained returns the old "streak_maintained" field's value of the DailyStat entity.
// If the DailyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyStatMutation) OldStreakMaintained(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreakMaintained is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreakMaintained requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreakMaintained: %w", err)
	}
	return oldValue.StreakMaintained, nil
}

// ResetStreakMaintained resets all changes to the "streak_maintained" field.
func (m *DailyStatMutation) ResetStreakMaintained() {
	m.streak_maintained = nil
}

// SetXpEarned sets the "xp_earned" field.
func (m *DailyStatMutation) SetXpEarned(i int) {
	m.xp_earned = &i
	m.addxp_earned = nil
}

// XpEarned returns the value of the "xp_earned" field in the mutation.
func (m *DailyStatMutation) XpEarned() (r int, exists bool) {
	v := m.xp_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldXpEarned returns the old "xp_earned" field's value of the DailyStat entity.
// If the DailyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyStatMutation) OldXpEarned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXpEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXpEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXpEarned: %w", err)
	}
	return oldValue.XpEarned, nil
}

// AddXpEarned adds i to the "xp_earned" field.
func (m *DailyStatMutation) AddXpEarned(i int) {
	if m.addxp_earned != nil {
		*m.addxp_earned += i
	} else {
		m.addxp_earned = &i
	}
}

// AddedXpEarned returns the value that was added to the "xp_earned" field in this mutation.
func (m *DailyStatMutation) AddedXpEarned() (r int, exists bool) {
	v := m.addxp_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetXpEarned resets all changes to the "xp_earned" field.
func (m *DailyStatMutation) ResetXpEarned() {
	m.xp_earned = nil
	m.addxp_earned = nil
}

// Where appends a list predicates to the DailyStatMutation builder.
func (m *DailyStatMutation) Where(ps ...predicate.DailyStat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DailyStatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DailyStatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DailyStat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DailyStatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DailyStatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DailyStat).
func (m *DailyStatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DailyStatMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.date != nil {
		fields = append(fields, dailystat.FieldDate)
	}
	if m.pomodoros_completed != nil {
		fields = append(fields, dailystat.FieldPomodorosCompleted)
	}
	if m.total_focus_minutes != nil {
		fields = append(fields, dailystat.FieldTotalFocusMinutes)
	}
	if m.streak_maintained != nil {
		fields = append(fields, dailystat.FieldStreakMaintained)
	}
	if m.xp_earned != nil {
		fields = append(fields, dailystat.FieldXpEarned)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DailyStatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dailystat.FieldDate:
		return m.Date()
	case dailystat.FieldPomodorosCompleted:
		return m.PomodorosCompleted()
	case dailystat.FieldTotalFocusMinutes:
		return m.TotalFocusMinutes()
	case dailystat.FieldStreakMaintained:
		return m.StreakMaintained()
	case dailystat.FieldXpEarned:
		return m.XpEarned()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DailyStatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dailystat.FieldDate:
		return m.OldDate(ctx)
	case dailystat.FieldPomodorosCompleted:
		return m.OldPomodorosCompleted(ctx)
	case dailystat.FieldTotalFocusMinutes:
		return m.OldTotalFocusMinutes(ctx)
	case dailystat.FieldStreakMaintained:
		return m.OldStreakMaintained(ctx)
	case dailystat.FieldXpEarned:
		return m.OldXpEarned(ctx)
	}
	return nil, fmt.Errorf("unknown DailyStat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyStatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dailystat.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case dailystat.FieldPomodorosCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPomodorosCompleted(v)
		return nil
	case dailystat.FieldTotalFocusMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalFocusMinutes(v)
		return nil
	case dailystat.FieldStreakMaintained:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreakMaintained(v)
		return nil
	case dailystat.FieldXpEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXpEarned(v)
		return nil
	}
	return fmt.Errorf("unknown DailyStat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DailyStatMutation) AddedFields() []string {
	var fields []string
	if m.addpomodoros_completed != nil {
		fields = append(fields, dailystat.FieldPomodorosCompleted)
	}
	if m.addtotal_focus_minutes != nil {
		fields = append(fields, dailystat.FieldTotalFocusMinutes)
	}
	if m.addxp_earned != nil {
		fields = append(fields, dailystat.FieldXpEarned)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DailyStatMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dailystat.FieldPomodorosCompleted:
		return m.AddedPomodorosCompleted()
	case dailystat.FieldTotalFocusMinutes:
		return m.AddedTotalFocusMinutes()
	case dailystat.FieldXpEarned:
		return m.AddedXpEarned()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyStatMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dailystat.FieldPomodorosCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPomodorosCompleted(v)
		return nil
	case dailystat.FieldTotalFocusMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalFocusMinutes(v)
		return nil
	case dailystat.FieldXpEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXpEarned(v)
		return nil
	}
	return fmt.Errorf("unknown DailyStat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DailyStatMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DailyStatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DailyStatMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DailyStat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DailyStatMutation) ResetField(name string) error {
	switch name {
	case dailystat.FieldDate:
		m.ResetDate()
		return nil
	case dailystat.FieldPomodorosCompleted:
		m.ResetPomodorosCompleted()
		return nil
	case dailystat.FieldTotalFocusMinutes:
		m.ResetTotalFocusMinutes()
		return nil
	case dailystat.FieldStreakMaintained:
		m.ResetStreakMaintained()
		return nil
	case dailystat.FieldXpEarned:
		m.ResetXpEarned()
		return nil
	}
	return fmt.Errorf("unknown DailyStat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DailyStatMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DailyStatMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DailyStatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DailyStatMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DailyStatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DailyStatMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DailyStatMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DailyStat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DailyStatMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DailyStat edge %s", name)
}

// ProgressMutation represents an operation that mutates the Progress nodes in the graph.
type ProgressMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	xp                     *int
	addxp                  *int
	level                  *int
	addlevel               *int
	current_streak         *int
	addcurrent_streak      *int
	freezes_remaining      *int
	addfreezes_remaining   *int
	last_streak_date       *string
	last_freeze_reset_week *string
	daily_goal             *int
	adddaily_goal          *int
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Progress, error)
	predicates             []predicate.Progress
}

var _ ent.Mutation = (*ProgressMutation)(nil)

// progressOption allows management of the mutation configuration using functional options.
type progressOption func(*ProgressMutation)

// newProgressMutation creates new mutation for the Progress entity.
func newProgressMutation(c config, op Op, opts ...progressOption) *ProgressMutation {
	m := &ProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProgressID sets the ID field of the mutation.
func withProgressID(id int) progressOption {
	return func(m *ProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *Progress
		)
		m.oldValue = func(ctx context.Context) (*Progress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Progress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProgress sets the old Progress of the mutation.
func withProgress(node *Progress) progressOption {
	return func(m *ProgressMutation) {
		m.oldValue = func(context.Context) (*Progress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Progress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetXp sets the "xp" field.
func (m *ProgressMutation) SetXp(i int) {
	m.xp = &i
	m.addxp = nil
}

// Xp returns the value of the "xp" field in the mutation.
func (m *ProgressMutation) Xp() (r int, exists bool) {
	v := m.xp
	if v == nil {
		return
	}
	return *v, true
}

// OldXp returns the old "xp" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldXp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXp: %w", err)
	}
	return oldValue.Xp, nil
}

// AddXp adds i to the "xp" field.
func (m *ProgressMutation) AddXp(i int) {
	if m.addxp != nil {
		*m.addxp += i
	} else {
		m.addxp = &i
	}
}

// AddedXp returns the value that was added to the "xp" field in this mutation.
func (m *ProgressMutation) AddedXp() (r int, exists bool) {
	v := m.addxp
	if v == nil {
		return
	}
	return *v, true
}

// ResetXp resets all changes to the "xp" field.
func (m *ProgressMutation) ResetXp() {
	m.xp = nil
	m.addxp = nil
}

// SetLevel sets the "level" field.
func (m *ProgressMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *ProgressMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *ProgressMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *ProgressMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *ProgressMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetCurrentStreak sets the "current_streak" field.
func (m *ProgressMutation) SetCurrentStreak(i int) {
	m.current_streak = &i
	m.addcurrent_streak = nil
}

// CurrentStreak returns the value of the "current_streak" field in the mutation.
func (m *ProgressMutation) CurrentStreak() (r int, exists bool) {
	v := m.current_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStreak returns the old "current_streak" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldCurrentStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStreak: %w", err)
	}
	return oldValue.CurrentStreak, nil
}

// AddCurrentStreak adds i to the "current_streak" field.
func (m *ProgressMutation) AddCurrentStreak(i int) {
	if m.addcurrent_streak != nil {
		*m.addcurrent_streak += i
	} else {
		m.addcurrent_streak = &i
	}
}

// AddedCurrentStreak returns the value that was added to the "current_streak" field in this mutation.
func (m *ProgressMutation) AddedCurrentStreak() (r int, exists bool) {
	v := m.addcurrent_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStreak resets all changes to the "current_streak" field.
func (m *ProgressMutation) ResetCurrentStreak() {
	m.current_streak = nil
	m.addcurrent_streak = nil
}

// SetFreezesRemaining sets the "freezes_remaining" field.
func (m *ProgressMutation) SetFreezesRemaining(i int) {
	m.freezes_remaining = &i
	m.addfreezes_remaining = nil
}

// FreezesRemaining returns the value of the "freezes_remaining" field in the mutation.
func (m *ProgressMutation) FreezesRemaining() (r int, exists bool) {
	v := m.freezes_remaining
	if v == nil {
		return
	}
	return *v, true
}

// OldFreezesRemaining returns the old "freezes_remaining" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldFreezesRemaining(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreezesRemaining is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreezesRemaining requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreezesRemaining: %w", err)
	}
	return oldValue.FreezesRemaining, nil
}

// AddFreezesRemaining adds i to the "freezes_remaining" field.
func (m *ProgressMutation) AddFreezesRemaining(i int) {
	if m.addfreezes_remaining != nil {
		*m.addfreezes_remaining += i
	} else {
		m.addfreezes_remaining = &i
	}
}

// AddedFreezesRemaining returns the value that was added to the "freezes_remaining" field in this mutation.
func (m *ProgressMutation) AddedFreezesRemaining() (r int, exists bool) {
	v := m.addfreezes_remaining
	if v == nil {
		return
	}
	return *v, true
}

// ResetFreezesRemaining resets all changes to the "freezes_remaining" field.
func (m *ProgressMutation) ResetFreezesRemaining() {
	m.freezes_remaining = nil
	m.addfreezes_remaining = nil
}

// SetLastStreakDate sets the "last_streak_date" field.
func (m *ProgressMutation) SetLastStreakDate(s string) {
	m.last_streak_date = &s
}

// LastStreakDate returns the value of the "last_streak_date" field in the mutation.
func (m *ProgressMutation) LastStreakDate() (r string, exists bool) {
	v := m.last_streak_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastStreakDate returns the old "last_streak_date" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldLastStreakDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastStreakDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastStreakDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastStreakDate: %w", err)
	}
	return oldValue.LastStreakDate, nil
}

// ResetLastStreakDate resets all changes to the "last_streak_date" field.
func (m *ProgressMutation) ResetLastStreakDate() {
	m.last_streak_date = nil
}

// SetLastFreezeResetWeek sets the "last_freeze_reset_week" field.
func (m *ProgressMutation) SetLastFreezeResetWeek(s string) {
	m.last_freeze_reset_week = &s
}

// LastFreezeResetWeek returns the value of the "last_freeze_reset_week" field in the mutation.
func (m *ProgressMutation) LastFreezeResetWeek() (r string, exists bool) {
	v := m.last_freeze_reset_week
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFreezeResetWeek returns the old "last_freeze_reset_week" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldLastFreezeResetWeek(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFreezeResetWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFreezeResetWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFreezeResetWeek: %w", err)
	}
	return oldValue.LastFreezeResetWeek, nil
}

// ResetLastFreezeResetWeek resets all changes to the "last_freeze_reset_week" field.
func (m *ProgressMutation) ResetLastFreezeResetWeek() {
	m.last_freeze_reset_week = nil
}

// SetDailyGoal sets the "daily_goal" field.
func (m *ProgressMutation) SetDailyGoal(i int) {
	m.daily_goal = &i
	m.adddaily_goal = nil
}

// DailyGoal returns the value of the "daily_goal" field in the mutation.
func (m *ProgressMutation) DailyGoal() (r int, exists bool) {
	v := m.daily_goal
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyGoal returns the old "daily_goal" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldDailyGoal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyGoal: %w", err)
	}
	return oldValue.DailyGoal, nil
}

// AddDailyGoal adds i to the "daily_goal" field.
func (m *ProgressMutation) AddDailyGoal(i int) {
	if m.adddaily_goal != nil {
		*m.adddaily_goal += i
	} else {
		m.adddaily_goal = &i
	}
}

// AddedDailyGoal returns the value that was added to the "daily_goal" field in this mutation.
func (m *ProgressMutation) AddedDailyGoal() (r int, exists bool) {
	v := m.adddaily_goal
	if v == nil {
		return
	}
	return *v, true
}

// ResetDailyGoal resets all changes to the "daily_goal" field.
func (m *ProgressMutation) ResetDailyGoal() {
	m.daily_goal = nil
	m.adddaily_goal = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProgressMutation builder.
func (m *ProgressMutation) Where(ps ...predicate.Progress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Progress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Progress).
func (m *ProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProgressMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.xp != nil {
		fields = append(fields, progress.FieldXp)
	}
	if m.level != nil {
		fields = append(fields, progress.FieldLevel)
	}
	if m.current_streak != nil {
		fields = append(fields, progress.FieldCurrentStreak)
	}
	if m.freezes_remaining != nil {
		fields = append(fields, progress.FieldFreezesRemaining)
	}
	if m.last_streak_date != nil {
		fields = append(fields, progress.FieldLastStreakDate)
	}
	if m.last_freeze_reset_week != nil {
		fields = append(fields, progress.FieldLastFreezeResetWeek)
	}
	if m.daily_goal != nil {
		fields = append(fields, progress.FieldDailyGoal)
	}
	if m.updated_at != nil {
		fields = append(fields, progress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case progress.FieldXp:
		return m.Xp()
	case progress.FieldLevel:
		return m.Level()
	case progress.FieldCurrentStreak:
		return m.CurrentStreak()
	case progress.FieldFreezesRemaining:
		return m.FreezesRemaining()
	case progress.FieldLastStreakDate:
		return m.LastStreakDate()
	case progress.FieldLastFreezeResetWeek:
		return m.LastFreezeResetWeek()
	case progress.FieldDailyGoal:
		return m.DailyGoal()
	case progress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case progress.FieldXp:
		return m.OldXp(ctx)
	case progress.FieldLevel:
		return m.OldLevel(ctx)
	case progress.FieldCurrentStreak:
		return m.OldCurrentStreak(ctx)
	case progress.FieldFreezesRemaining:
		return m.OldFreezesRemaining(ctx)
	case progress.FieldLastStreakDate:
		return m.OldLastStreakDate(ctx)
	case progress.FieldLastFreezeResetWeek:
		return m.OldLastFreezeResetWeek(ctx)
	case progress.FieldDailyGoal:
		return m.OldDailyGoal(ctx)
	case progress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Progress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case progress.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXp(v)
		return nil
	case progress.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case progress.FieldCurrentStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStreak(v)
		return nil
	case progress.FieldFreezesRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreezesRemaining(v)
		return nil
	case progress.FieldLastStreakDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastStreakDate(v)
		return nil
	case progress.FieldLastFreezeResetWeek:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFreezeResetWeek(v)
		return nil
	case progress.FieldDailyGoal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyGoal(v)
		return nil
	case progress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Progress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProgressMutation) AddedFields() []string {
	var fields []string
	if m.addxp != nil {
		fields = append(fields, progress.FieldXp)
	}
	if m.addlevel != nil {
		fields = append(fields, progress.FieldLevel)
	}
	if m.addcurrent_streak != nil {
		fields = append(fields, progress.FieldCurrentStreak)
	}
	if m.addfreezes_remaining != nil {
		fields = append(fields, progress.FieldFreezesRemaining)
	}
	if m.adddaily_goal != nil {
		fields = append(fields, progress.FieldDailyGoal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case progress.FieldXp:
		return m.AddedXp()
	case progress.FieldLevel:
		return m.AddedLevel()
	case progress.FieldCurrentStreak:
		return m.AddedCurrentStreak()
	case progress.FieldFreezesRemaining:
		return m.AddedFreezesRemaining()
	case progress.FieldDailyGoal:
		return m.AddedDailyGoal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case progress.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXp(v)
		return nil
	case progress.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	case progress.FieldCurrentStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStreak(v)
		return nil
	case progress.FieldFreezesRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFreezesRemaining(v)
		return nil
	case progress.FieldDailyGoal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDailyGoal(v)
		return nil
	}
	return fmt.Errorf("unknown Progress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProgressMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProgressMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Progress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProgressMutation) ResetField(name string) error {
	switch name {
	case progress.FieldXp:
		m.ResetXp()
		return nil
	case progress.FieldLevel:
		m.ResetLevel()
		return nil
	case progress.FieldCurrentStreak:
		m.ResetCurrentStreak()
		return nil
	case progress.FieldFreezesRemaining:
		m.ResetFreezesRemaining()
		return nil
	case progress.FieldLastStreakDate:
		m.ResetLastStreakDate()
		return nil
	case progress.FieldLastFreezeResetWeek:
		m.ResetLastFreezeResetWeek()
		return nil
	case progress.FieldDailyGoal:
		m.ResetDailyGoal()
		return nil
	case progress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Progress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Progress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Progress edge %s", name)
}

// ReminderMutation represents an operation that mutates the Reminder nodes in the graph.
type ReminderMutation struct {
	config
	op            Op
	typ           string
	id            *int
	rid           *string
	title         *string
	notes         *string
	completed     *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Reminder, error)
	predicates    []predicate.Reminder
}

var _ ent.Mutation = (*ReminderMutation)(nil)

// reminderOption allows management of the mutation configuration using functional options.
type reminderOption func(*ReminderMutation)

// newReminderMutation creates new mutation for the Reminder entity.
func newReminderMutation(c config, op Op, opts ...reminderOption) *ReminderMutation {
	m := &ReminderMutation{
		config:        c,
		op:            op,
		typ:           TypeReminder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReminderID sets the ID field of the mutation.
func withReminderID(id int) reminderOption {
	return func(m *ReminderMutation) {
		var (
			err   error
			once  sync.Once
			value *Reminder
		)
		m.oldValue = func(ctx context.Context) (*Reminder, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Reminder.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReminder sets the old Reminder of the mutation.
func withReminder(node *Reminder) reminderOption {
	return func(m *ReminderMutation) {
		m.oldValue = func(context.Context) (*Reminder, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReminderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReminderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReminderMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReminderMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Reminder.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRid sets the "rid" field.
func (m *ReminderMutation) SetRid(s string) {
	m.rid = &s
}

// Rid returns the value of the "rid" field in the mutation.
func (m *ReminderMutation) Rid() (r string, exists bool) {
	v := m.rid
	if v == nil {
		return
	}
	return *v, true
}

// OldRid returns the old "rid" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldRid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRid: %w", err)
	}
	return oldValue.Rid, nil
}

// ResetRid resets all changes to the "rid" field.
func (m *ReminderMutation) ResetRid() {
	m.rid = nil
}

// SetTitle sets the "title" field.
func (m *ReminderMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ReminderMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ReminderMutation) ResetTitle() {
	m.title = nil
}

// SetNotes sets the "notes" field.
func (m *ReminderMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *ReminderMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ResetNotes resets all changes to the "notes" field.
func (m *ReminderMutation) ResetNotes() {
	m.notes = nil
}

// SetCompleted sets the "completed" field.
func (m *ReminderMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *ReminderMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *ReminderMutation) ResetCompleted() {
	m.completed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReminderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReminderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReminderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ReminderMutation builder.
func (m *ReminderMutation) Where(ps ...predicate.Reminder) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReminderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReminderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Reminder, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReminderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReminderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Reminder).
func (m *ReminderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReminderMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.rid != nil {
		fields = append(fields, reminder.FieldRid)
	}
	if m.title != nil {
		fields = append(fields, reminder.FieldTitle)
	}
	if m.notes != nil {
		fields = append(fields, reminder.FieldNotes)
	}
	if m.completed != nil {
		fields = append(fields, reminder.FieldCompleted)
	}
	if m.created_at != nil {
		fields = append(fields, reminder.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReminderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reminder.FieldRid:
		return m.Rid()
	case reminder.FieldTitle:
		return m.Title()
	case reminder.FieldNotes:
		return m.Notes()
	case reminder.FieldCompleted:
		return m.Completed()
	case reminder.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReminderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reminder.FieldRid:
		return m.OldRid(ctx)
	case reminder.FieldTitle:
		return m.OldTitle(ctx)
	case reminder.FieldNotes:
		return m.OldNotes(ctx)
	case reminder.FieldCompleted:
		return m.OldCompleted(ctx)
	case reminder.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Reminder field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReminderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reminder.FieldRid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRid(v)
		return nil
	case reminder.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case reminder.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case reminder.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case reminder.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Reminder field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReminderMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReminderMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReminderMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Reminder numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReminderMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReminderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReminderMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Reminder nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReminderMutation) ResetField(name string) error {
	switch name {
	case reminder.FieldRid:
		m.ResetRid()
		return nil
	case reminder.FieldTitle:
		m.ResetTitle()
		return nil
	case reminder.FieldNotes:
		m.ResetNotes()
		return nil
	case reminder.FieldCompleted:
		m.ResetCompleted()
		return nil
	case reminder.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Reminder field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReminderMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReminderMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReminderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReminderMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReminderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReminderMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReminderMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Reminder unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReminderMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Reminder edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sid              *string
	start_time       *time.Time
	end_time         *time.Time
	duration_secs    *int
	addduration_secs *int
	kind             *string
	completed        *bool
	reminder_id      *string
	reminder_title   *string
	xp_earned        *int
	addxp_earned     *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Session, error)
	predicates       []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id int) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSid sets the "sid" field.
func (m *SessionMutation) SetSid(s string) {
	m.sid = &s
}

// Sid returns the value of the "sid" field in the mutation.
func (m *SessionMutation) Sid() (r string, exists bool) {
	v := m.sid
	if v == nil {
		return
	}
	return *v, true
}

// OldSid returns the old "sid" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSid: %w", err)
	}
	return oldValue.Sid, nil
}

// ResetSid resets all changes to the "sid" field.
func (m *SessionMutation) ResetSid() {
	m.sid = nil
}

// SetStartTime sets the "start_time" field.
func (m *SessionMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *SessionMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *SessionMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *SessionMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *SessionMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *SessionMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[session.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *SessionMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[session.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *SessionMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, session.FieldEndTime)
}

// SetDurationSecs sets the "duration_secs" field.
func (m *SessionMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *SessionMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *SessionMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *SessionMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *SessionMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// SetKind sets the "kind" field.
func (m *SessionMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *SessionMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *SessionMutation) ResetKind() {
	m.kind = nil
}

// SetCompleted sets the "completed" field.
func (m *SessionMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *SessionMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *SessionMutation) ResetCompleted() {
	m.completed = nil
}

// SetReminderID sets the "reminder_id" field.
func (m *SessionMutation) SetReminderID(s string) {
	m.reminder_id = &s
}

// ReminderID returns the value of the "reminder_id" field in the mutation.
func (m *SessionMutation) ReminderID() (r string, exists bool) {
	v := m.reminder_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReminderID returns the old "reminder_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldReminderID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReminderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReminderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReminderID: %w", err)
	}
	return oldValue.ReminderID, nil
}

// ClearReminderID clears the value of the "reminder_id" field.
func (m *SessionMutation) ClearReminderID() {
	m.reminder_id = nil
	m.clearedFields[session.FieldReminderID] = struct{}{}
}

// ReminderIDCleared returns if the "reminder_id" field was cleared in this mutation.
func (m *SessionMutation) ReminderIDCleared() bool {
	_, ok := m.clearedFields[session.FieldReminderID]
	return ok
}

// ResetReminderID resets all changes to the "reminder_id" field.
func (m *SessionMutation) ResetReminderID() {
	m.reminder_id = nil
	delete(m.clearedFields, session.FieldReminderID)
}

// SetReminderTitle sets the "reminder_title" field.
func (m *SessionMutation) SetReminderTitle(s string) {
	m.reminder_title = &s
}

// ReminderTitle returns the value of the "reminder_title" field in the mutation.
func (m *SessionMutation) ReminderTitle() (r string, exists bool) {
	v := m.reminder_title
	if v == nil {
		return
	}
	return *v, true
}

// OldReminderTitle returns the old "reminder_title" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldReminderTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReminderTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReminderTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReminderTitle: %w", err)
	}
	return oldValue.ReminderTitle, nil
}

// ClearReminderTitle clears the value of the "reminder_title" field.
func (m *SessionMutation) ClearReminderTitle() {
	m.reminder_title = nil
	m.clearedFields[session.FieldReminderTitle] = struct{}{}
}

// ReminderTitleCleared returns if the "reminder_title" field was cleared in this mutation.
func (m *SessionMutation) ReminderTitleCleared() bool {
	_, ok := m.clearedFields[session.FieldReminderTitle]
	return ok
}

// ResetReminderTitle resets all changes to the "reminder_title" field.
func (m *SessionMutation) ResetReminderTitle() {
	m.reminder_title = nil
	delete(m.clearedFields, session.FieldReminderTitle)
}

// SetXpEarned sets the "xp_earned" field.
func (m *SessionMutation) SetXpEarned(i int) {
	m.xp_earned = &i
	m.addxp_earned = nil
}

// XpEarned returns the value of the "xp_earned" field in the mutation.
func (m *SessionMutation) XpEarned() (r int, exists bool) {
	v := m.xp_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldXpEarned returns the old "xp_earned" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldXpEarned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXpEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXpEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXpEarned: %w", err)
	}
	return oldValue.XpEarned, nil
}

// AddXpEarned adds i to the "xp_earned" field.
func (m *SessionMutation) AddXpEarned(i int) {
	if m.addxp_earned != nil {
		*m.addxp_earned += i
	} else {
		m.addxp_earned = &i
	}
}

// AddedXpEarned returns the value that was added to the "xp_earned" field in this mutation.
func (m *SessionMutation) AddedXpEarned() (r int, exists bool) {
	v := m.addxp_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetXpEarned resets all changes to the "xp_earned" field.
func (m *SessionMutation) ResetXpEarned() {
	m.xp_earned = nil
	m.addxp_earned = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sid != nil {
		fields = append(fields, session.FieldSid)
	}
	if m.start_time != nil {
		fields = append(fields, session.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, session.FieldEndTime)
	}
	if m.duration_secs != nil {
		fields = append(fields, session.FieldDurationSecs)
	}
	if m.kind != nil {
		fields = append(fields, session.FieldKind)
	}
	if m.completed != nil {
		fields = append(fields, session.FieldCompleted)
	}
	if m.reminder_id != nil {
		fields = append(fields, session.FieldReminderID)
	}
	if m.reminder_title != nil {
		fields = append(fields, session.FieldReminderTitle)
	}
	if m.xp_earned != nil {
		fields = append(fields, session.FieldXpEarned)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldSid:
		return m.Sid()
	case session.FieldStartTime:
		return m.StartTime()
	case session.FieldEndTime:
		return m.EndTime()
	case session.FieldDurationSecs:
		return m.DurationSecs()
	case session.FieldKind:
		return m.Kind()
	case session.FieldCompleted:
		return m.Completed()
	case session.FieldReminderID:
		return m.ReminderID()
	case session.FieldReminderTitle:
		return m.ReminderTitle()
	case session.FieldXpEarned:
		return m.XpEarned()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldSid:
		return m.OldSid(ctx)
	case session.FieldStartTime:
		return m.OldStartTime(ctx)
	case session.FieldEndTime:
		return m.OldEndTime(ctx)
	case session.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	case session.FieldKind:
		return m.OldKind(ctx)
	case session.FieldCompleted:
		return m.OldCompleted(ctx)
	case session.FieldReminderID:
		return m.OldReminderID(ctx)
	case session.FieldReminderTitle:
		return m.OldReminderTitle(ctx)
	case session.FieldXpEarned:
		return m.OldXpEarned(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldSid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSid(v)
		return nil
	case session.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case session.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case session.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	case session.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case session.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case session.FieldReminderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReminderID(v)
		return nil
	case session.FieldReminderTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReminderTitle(v)
		return nil
	case session.FieldXpEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXpEarned(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_secs != nil {
		fields = append(fields, session.FieldDurationSecs)
	}
	if m.addxp_earned != nil {
		fields = append(fields, session.FieldXpEarned)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldDurationSecs:
		return m.AddedDurationSecs()
	case session.FieldXpEarned:
		return m.AddedXpEarned()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	case session.FieldXpEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXpEarned(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldEndTime) {
		fields = append(fields, session.FieldEndTime)
	}
	if m.FieldCleared(session.FieldReminderID) {
		fields = append(fields, session.FieldReminderID)
	}
	if m.FieldCleared(session.FieldReminderTitle) {
		fields = append(fields, session.FieldReminderTitle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldEndTime:
		m.ClearEndTime()
		return nil
	case session.FieldReminderID:
		m.ClearReminderID()
		return nil
	case session.FieldReminderTitle:
		m.ClearReminderTitle()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldSid:
		m.ResetSid()
		return nil
	case session.FieldStartTime:
		m.ResetStartTime()
		return nil
	case session.FieldEndTime:
		m.ResetEndTime()
		return nil
	case session.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	case session.FieldKind:
		m.ResetKind()
		return nil
	case session.FieldCompleted:
		m.ResetCompleted()
		return nil
	case session.FieldReminderID:
		m.ResetReminderID()
		return nil
	case session.FieldReminderTitle:
		m.ResetReminderTitle()
		return nil
	case session.FieldXpEarned:
		m.ResetXpEarned()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Session edge %s", name)
}
