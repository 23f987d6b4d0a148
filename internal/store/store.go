package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/abhisek/focusbar/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Repos bundles all repositories bound to one client, either the store's
// root client or a transaction client.
type Repos struct {
	Sessions     SessionRepo
	Stats        StatsRepo
	Achievements AchievementRepo
	Progress     ProgressRepo
	Reminders    ReminderRepo
	Events       EventRepo
}

// Repos returns repositories bound to the root client.
func (s *Store) Repos() Repos {
	return reposFor(s.client)
}

// Tx runs fn with repositories bound to a single transaction. The
// per-completion writes (session record, counters, daily aggregate,
// unlocks) go through here so a mid-update interruption cannot leave
// the counters and the aggregate disagreeing.
func (s *Store) Tx(ctx context.Context, fn func(r Repos) error) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(reposFor(tx.Client())); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func reposFor(client *ent.Client) Repos {
	return Repos{
		Sessions:     &sessionRepo{client: client},
		Stats:        &statsRepo{client: client},
		Achievements: &achievementRepo{client: client},
		Progress:     &progressRepo{client: client},
		Reminders:    &reminderRepo{client: client},
		Events:       &eventRepo{client: client},
	}
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. FOCUSBAR_DB environment variable
// 2. $XDG_DATA_HOME/focusbar/focusbar.db
// 3. ~/.local/share/focusbar/focusbar.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("FOCUSBAR_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "focusbar", "focusbar.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
