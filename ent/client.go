// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/focusbar/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/focusbar/ent/achievement"
	"github.com/abhisek/focusbar/ent/coachevent"
	"github.com/abhisek/focusbar/ent/dailystat"
	"github.com/abhisek/focusbar/ent/progress"
	"github.com/abhisek/focusbar/ent/reminder"
	"github.com/abhisek/focusbar/ent/session"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Achievement is the client for interacting with the Achievement builders.
	Achievement *AchievementClient
	// CoachEvent is the client for interacting with the CoachEvent builders.
	CoachEvent *CoachEventClient
	// DailyStat is the client for interacting with the DailyStat builders.
	DailyStat *DailyStatClient
	// Progress is the client for interacting with the Progress builders.
	Progress *ProgressClient
	// Reminder is the client for interacting with the Reminder builders.
	Reminder *ReminderClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Achievement = NewAchievementClient(c.config)
	c.CoachEvent = NewCoachEventClient(c.config)
	c.DailyStat = NewDailyStatClient(c.config)
	c.Progress = NewProgressClient(c.config)
	c.Reminder = NewReminderClient(c.config)
	c.Session = NewSessionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		Achievement: NewAchievementClient(cfg),
		CoachEvent:  NewCoachEventClient(cfg),
		DailyStat:   NewDailyStatClient(cfg),
		Progress:    NewProgressClient(cfg),
		Reminder:    NewReminderClient(cfg),
		Session:     NewSessionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		Achievement: NewAchievementClient(cfg),
		CoachEvent:  NewCoachEventClient(cfg),
		DailyStat:   NewDailyStatClient(cfg),
		Progress:    NewProgressClient(cfg),
		Reminder:    NewReminderClient(cfg),
		Session:     NewSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Achievement.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Achievement, c.CoachEvent, c.DailyStat, c.Progress, c.Reminder, c.Session,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Achievement, c.CoachEvent, c.DailyStat, c.Progress, c.Reminder, c.Session,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AchievementMutation:
		return c.Achievement.mutate(ctx, m)
	case *CoachEventMutation:
		return c.CoachEvent.mutate(ctx, m)
	case *DailyStatMutation:
		return c.DailyStat.mutate(ctx, m)
	case *ProgressMutation:
		return c.Progress.mutate(ctx, m)
	case *ReminderMutation:
		return c.Reminder.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AchievementClient is a client for the Achievement schema.
type AchievementClient struct {
	config
}

// NewAchievementClient returns a client for the Achievement from the given config.
func NewAchievementClient(c config) *AchievementClient {
	return &AchievementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `achievement.Hooks(f(g(h())))`.
func (c *AchievementClient) Use(hooks ...Hook) {
	c.hooks.Achievement = append(c.hooks.Achievement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `achievement.Intercept(f(g(h())))`.
func (c *AchievementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Achievement = append(c.inters.Achievement, interceptors...)
}

// Create returns a builder for creating a Achievement entity.
func (c *AchievementClient) Create() *AchievementCreate {
	mutation := newAchievementMutation(c.config, OpCreate)
	return &AchievementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Achievement entities.
func (c *AchievementClient) CreateBulk(builders ...*AchievementCreate) *AchievementCreateBulk {
	return &AchievementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AchievementClient) MapCreateBulk(slice any, setFunc func(*AchievementCreate, int)) *AchievementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AchievementCreateBulk{err: fmt.Errorf("calling to AchievementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AchievementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AchievementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Achievement.
func (c *AchievementClient) Update() *AchievementUpdate {
	mutation := newAchievementMutation(c.config, OpUpdate)
	return &AchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AchievementClient) UpdateOne(_m *Achievement) *AchievementUpdateOne {
	mutation := newAchievementMutation(c.config, OpUpdateOne, withAchievement(_m))
	return &AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AchievementClient) UpdateOneID(id int) *AchievementUpdateOne {
	mutation := newAchievementMutation(c.config, OpUpdateOne, withAchievementID(id))
	return &AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Achievement.
func (c *AchievementClient) Delete() *AchievementDelete {
	mutation := newAchievementMutation(c.config, OpDelete)
	return &AchievementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AchievementClient) DeleteOne(_m *Achievement) *AchievementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AchievementClient) DeleteOneID(id int) *AchievementDeleteOne {
	builder := c.Delete().Where(achievement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AchievementDeleteOne{builder}
}

// Query returns a query builder for Achievement.
func (c *AchievementClient) Query() *AchievementQuery {
	return &AchievementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAchievement},
		inters: c.Interceptors(),
	}
}

// Get returns a Achievement entity by its id.
func (c *AchievementClient) Get(ctx context.Context, id int) (*Achievement, error) {
	return c.Query().Where(achievement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AchievementClient) GetX(ctx context.Context, id int) *Achievement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AchievementClient) Hooks() []Hook {
	return c.hooks.Achievement
}

// Interceptors returns the client interceptors.
func (c *AchievementClient) Interceptors() []Interceptor {
	return c.inters.Achievement
}

func (c *AchievementClient) mutate(ctx context.Context, m *AchievementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AchievementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AchievementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Achievement mutation op: %q", m.Op())
	}
}

// CoachEventClient is a client for the CoachEvent schema.
type CoachEventClient struct {
	config
}

// NewCoachEventClient returns a client for the CoachEvent from the given config.
func NewCoachEventClient(c config) *CoachEventClient {
	return &CoachEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `coachevent.Hooks(f(g(h())))`.
func (c *CoachEventClient) Use(hooks ...Hook) {
	c.hooks.CoachEvent = append(c.hooks.CoachEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `coachevent.Intercept(f(g(h())))`.
func (c *CoachEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CoachEvent = append(c.inters.CoachEvent, interceptors...)
}

// Create returns a builder for creating a CoachEvent entity.
func (c *CoachEventClient) Create() *CoachEventCreate {
	mutation := newCoachEventMutation(c.config, OpCreate)
	return &CoachEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CoachEvent entities.
func (c *CoachEventClient) CreateBulk(builders ...*CoachEventCreate) *CoachEventCreateBulk {
	return &CoachEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CoachEventClient) MapCreateBulk(slice any, setFunc func(*CoachEventCreate, int)) *CoachEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CoachEventCreateBulk{err: fmt.Errorf("calling to CoachEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CoachEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CoachEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CoachEvent.
func (c *CoachEventClient) Update() *CoachEventUpdate {
	mutation := newCoachEventMutation(c.config, OpUpdate)
	return &CoachEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CoachEventClient) UpdateOne(_m *CoachEvent) *CoachEventUpdateOne {
	mutation := newCoachEventMutation(c.config, OpUpdateOne, withCoachEvent(_m))
	return &CoachEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CoachEventClient) UpdateOneID(id int) *CoachEventUpdateOne {
	mutation := newCoachEventMutation(c.config, OpUpdateOne, withCoachEventID(id))
	return &CoachEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CoachEvent.
func (c *CoachEventClient) Delete() *CoachEventDelete {
	mutation := newCoachEventMutation(c.config, OpDelete)
	return &CoachEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CoachEventClient) DeleteOne(_m *CoachEvent) *CoachEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CoachEventClient) DeleteOneID(id int) *CoachEventDeleteOne {
	builder := c.Delete().Where(coachevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CoachEventDeleteOne{builder}
}

// Query returns a query builder for CoachEvent.
func (c *CoachEventClient) Query() *CoachEventQuery {
	return &CoachEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCoachEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CoachEvent entity by its id.
func (c *CoachEventClient) Get(ctx context.Context, id int) (*CoachEvent, error) {
	return c.Query().Where(coachevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CoachEventClient) GetX(ctx context.Context, id int) *CoachEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CoachEventClient) Hooks() []Hook {
	return c.hooks.CoachEvent
}

// Interceptors returns the client interceptors.
func (c *CoachEventClient) Interceptors() []Interceptor {
	return c.inters.CoachEvent
}

func (c *CoachEventClient) mutate(ctx context.Context, m *CoachEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CoachEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CoachEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CoachEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CoachEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CoachEvent mutation op: %q", m.Op())
	}
}

// DailyStatClient is a client for the DailyStat schema.
type DailyStatClient struct {
	config
}

// NewDailyStatClient returns a client for the DailyStat from the given config.
func NewDailyStatClient(c config) *DailyStatClient {
	return &DailyStatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dailystat.Hooks(f(g(h())))`.
func (c *DailyStatClient) Use(hooks ...Hook) {
	c.hooks.DailyStat = append(c.hooks.DailyStat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dailystat.Intercept(f(g(h())))`.
func (c *DailyStatClient) Intercept(interceptors ...Interceptor) {
	c.inters.DailyStat = append(c.inters.DailyStat, interceptors...)
}

// Create returns a builder for creating a DailyStat entity.
func (c *DailyStatClient) Create() *DailyStatCreate {
	mutation := newDailyStatMutation(c.config, OpCreate)
	return &DailyStatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DailyStat entities.
func (c *DailyStatClient) CreateBulk(builders ...*DailyStatCreate) *DailyStatCreateBulk {
	return &DailyStatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DailyStatClient) MapCreateBulk(slice any, setFunc func(*DailyStatCreate, int)) *DailyStatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DailyStatCreateBulk{err: fmt.Errorf("calling to DailyStatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DailyStatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DailyStatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DailyStat.
func (c *DailyStatClient) Update() *DailyStatUpdate {
	mutation := newDailyStatMutation(c.config, OpUpdate)
	return &DailyStatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DailyStatClient) UpdateOne(_m *DailyStat) *DailyStatUpdateOne {
	mutation := newDailyStatMutation(c.config, OpUpdateOne, withDailyStat(_m))
	return &DailyStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DailyStatClient) UpdateOneID(id int) *DailyStatUpdateOne {
	mutation := newDailyStatMutation(c.config, OpUpdateOne, withDailyStatID(id))
	return &DailyStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DailyStat.
func (c *DailyStatClient) Delete() *DailyStatDelete {
	mutation := newDailyStatMutation(c.config, OpDelete)
	return &DailyStatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DailyStatClient) DeleteOne(_m *DailyStat) *DailyStatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DailyStatClient) DeleteOneID(id int) *DailyStatDeleteOne {
	builder := c.Delete().Where(dailystat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DailyStatDeleteOne{builder}
}

// Query returns a query builder for DailyStat.
func (c *DailyStatClient) Query() *DailyStatQuery {
	return &DailyStatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDailyStat},
		inters: c.Interceptors(),
	}
}

// Get returns a DailyStat entity by its id.
func (c *DailyStatClient) Get(ctx context.Context, id int) (*DailyStat, error) {
	return c.Query().Where(dailystat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DailyStatClient) GetX(ctx context.Context, id int) *DailyStat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DailyStatClient) Hooks() []Hook {
	return c.hooks.DailyStat
}

// Interceptors returns the client interceptors.
func (c *DailyStatClient) Interceptors() []Interceptor {
	return c.inters.DailyStat
}

func (c *DailyStatClient) mutate(ctx context.Context, m *DailyStatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DailyStatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DailyStatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DailyStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DailyStatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DailyStat mutation op: %q", m.Op())
	}
}

// ProgressClient is a client for the Progress schema.
type ProgressClient struct {
	config
}

// NewProgressClient returns a client for the Progress from the given config.
func NewProgressClient(c config) *ProgressClient {
	return &ProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progress.Hooks(f(g(h())))`.
func (c *ProgressClient) Use(hooks ...Hook) {
	c.hooks.Progress = append(c.hooks.Progress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progress.Intercept(f(g(h())))`.
func (c *ProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.Progress = append(c.inters.Progress, interceptors...)
}

// Create returns a builder for creating a Progress entity.
func (c *ProgressClient) Create() *ProgressCreate {
	mutation := newProgressMutation(c.config, OpCreate)
	return &ProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Progress entities.
func (c *ProgressClient) CreateBulk(builders ...*ProgressCreate) *ProgressCreateBulk {
	return &ProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressClient) MapCreateBulk(slice any, setFunc func(*ProgressCreate, int)) *ProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressCreateBulk{err: fmt.Errorf("calling to ProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Progress.
func (c *ProgressClient) Update() *ProgressUpdate {
	mutation := newProgressMutation(c.config, OpUpdate)
	return &ProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressClient) UpdateOne(_m *Progress) *ProgressUpdateOne {
	mutation := newProgressMutation(c.config, OpUpdateOne, withProgress(_m))
	return &ProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressClient) UpdateOneID(id int) *ProgressUpdateOne {
	mutation := newProgressMutation(c.config, OpUpdateOne, withProgressID(id))
	return &ProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Progress.
func (c *ProgressClient) Delete() *ProgressDelete {
	mutation := newProgressMutation(c.config, OpDelete)
	return &ProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressClient) DeleteOne(_m *Progress) *ProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressClient) DeleteOneID(id int) *ProgressDeleteOne {
	builder := c.Delete().Where(progress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressDeleteOne{builder}
}

// Query returns a query builder for Progress.
func (c *ProgressClient) Query() *ProgressQuery {
	return &ProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a Progress entity by its id.
func (c *ProgressClient) Get(ctx context.Context, id int) (*Progress, error) {
	return c.Query().Where(progress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressClient) GetX(ctx context.Context, id int) *Progress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProgressClient) Hooks() []Hook {
	return c.hooks.Progress
}

// Interceptors returns the client interceptors.
func (c *ProgressClient) Interceptors() []Interceptor {
	return c.inters.Progress
}

func (c *ProgressClient) mutate(ctx context.Context, m *ProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Progress mutation op: %q", m.Op())
	}
}

// ReminderClient is a client for the Reminder schema.
type ReminderClient struct {
	config
}

// NewReminderClient returns a client for the Reminder from the given config.
func NewReminderClient(c config) *ReminderClient {
	return &ReminderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reminder.Hooks(f(g(h())))`.
func (c *ReminderClient) Use(hooks ...Hook) {
	c.hooks.Reminder = append(c.hooks.Reminder, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reminder.Intercept(f(g(h())))`.
func (c *ReminderClient) Intercept(interceptors ...Interceptor) {
	c.inters.Reminder = append(c.inters.Reminder, interceptors...)
}

// Create returns a builder for creating a Reminder entity.
func (c *ReminderClient) Create() *ReminderCreate {
	mutation := newReminderMutation(c.config, OpCreate)
	return &ReminderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Reminder entities.
func (c *ReminderClient) CreateBulk(builders ...*ReminderCreate) *ReminderCreateBulk {
	return &ReminderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReminderClient) MapCreateBulk(slice any, setFunc func(*ReminderCreate, int)) *ReminderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReminderCreateBulk{err: fmt.Errorf("calling to ReminderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReminderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReminderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Reminder.
func (c *ReminderClient) Update() *ReminderUpdate {
	mutation := newReminderMutation(c.config, OpUpdate)
	return &ReminderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReminderClient) UpdateOne(_m *Reminder) *ReminderUpdateOne {
	mutation := newReminderMutation(c.config, OpUpdateOne, withReminder(_m))
	return &ReminderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReminderClient) UpdateOneID(id int) *ReminderUpdateOne {
	mutation := newReminderMutation(c.config, OpUpdateOne, withReminderID(id))
	return &ReminderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Reminder.
func (c *ReminderClient) Delete() *ReminderDelete {
	mutation := newReminderMutation(c.config, OpDelete)
	return &ReminderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReminderClient) DeleteOne(_m *Reminder) *ReminderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReminderClient) DeleteOneID(id int) *ReminderDeleteOne {
	builder := c.Delete().Where(reminder.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReminderDeleteOne{builder}
}

// Query returns a query builder for Reminder.
func (c *ReminderClient) Query() *ReminderQuery {
	return &ReminderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReminder},
		inters: c.Interceptors(),
	}
}

// Get returns a Reminder entity by its id.
func (c *ReminderClient) Get(ctx context.Context, id int) (*Reminder, error) {
	return c.Query().Where(reminder.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReminderClient) GetX(ctx context.Context, id int) *Reminder {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReminderClient) Hooks() []Hook {
	return c.hooks.Reminder
}

// Interceptors returns the client interceptors.
func (c *ReminderClient) Interceptors() []Interceptor {
	return c.inters.Reminder
}

func (c *ReminderClient) mutate(ctx context.Context, m *ReminderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReminderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReminderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReminderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReminderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Reminder mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id int) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id int) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id int) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id int) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Achievement, CoachEvent, DailyStat, Progress, Reminder, Session []ent.Hook
	}
	inters struct {
		Achievement, CoachEvent, DailyStat, Progress, Reminder,
		Session []ent.Interceptor
	}
)
