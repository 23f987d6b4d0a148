package store

import (
	"context"
	"time"
)

// SessionRecord is one finished session as stored. Records are created
// when a session completes or is skipped and are immutable afterwards.
type SessionRecord struct {
	SID           string
	StartTime     time.Time
	EndTime       *time.Time
	DurationSecs  int
	Kind          string
	Completed     bool
	ReminderID    *string
	ReminderTitle *string
	XPEarned      int
}

// DailyStatRecord aggregates one local calendar day.
type DailyStatRecord struct {
	Date               string // yyyy-MM-dd
	PomodorosCompleted int
	TotalFocusMinutes  int
	StreakMaintained   bool
	XPEarned           int
}

// AchievementRecord is one unlocked achievement.
type AchievementRecord struct {
	AchievementID string
	UnlockedAt    time.Time
	Metadata      string
}

// ProgressRecord holds the persisted cross-session counters.
type ProgressRecord struct {
	XP                  int
	Level               int
	CurrentStreak       int
	FreezesRemaining    int
	LastStreakDate      string // yyyy-MM-dd, empty if never credited
	LastFreezeResetWeek string // e.g. 2026-W35
	DailyGoal           int    // 0 means use the configured default
}

// ReminderRecord is one local task-list item.
type ReminderRecord struct {
	RID       string
	Title     string
	Notes     string
	Completed bool
	CreatedAt time.Time
}

// SessionMetrics are the aggregate counts the achievement predicates need.
type SessionMetrics struct {
	TotalFocusCompleted int
	WeekendFocusCount   int
	LinkedCompleted     int
}

// SessionRepo provides access to session history.
type SessionRepo interface {
	// Append stores a new session record.
	Append(ctx context.Context, rec SessionRecord) error

	// CountFocusOn returns the number of completed focus sessions whose
	// start time falls on the given local day.
	CountFocusOn(ctx context.Context, day time.Time) (int, error)

	// Metrics returns the lifetime aggregates used by achievement
	// evaluation.
	Metrics(ctx context.Context) (SessionMetrics, error)

	// All returns every session, oldest first. Used by export.
	All(ctx context.Context) ([]SessionRecord, error)
}

// StatsRepo manages daily aggregates.
type StatsRepo interface {
	// Apply adds the deltas to today's row, creating it if absent.
	// One row per day: the date string is the unique key. The
	// streakMaintained flag is sticky once set.
	Apply(ctx context.Context, date string, addPomodoros, addMinutes, addXP int, streakMaintained bool) error

	// Day returns the aggregate for the given date, or nil if absent.
	Day(ctx context.Context, date string) (*DailyStatRecord, error)

	// All returns every daily aggregate, oldest first.
	All(ctx context.Context) ([]DailyStatRecord, error)
}

// AchievementRepo manages unlock records.
type AchievementRepo interface {
	// UnlockedSet returns the ids of every unlocked achievement.
	UnlockedSet(ctx context.Context) (map[string]bool, error)

	// RecordUnlock stores a new unlock. Inserting an id twice is an error
	// (unique constraint); callers filter against UnlockedSet first.
	RecordUnlock(ctx context.Context, rec AchievementRecord) error

	// All returns every unlock, oldest first.
	All(ctx context.Context) ([]AchievementRecord, error)
}

// ProgressRepo manages the singleton counter row.
type ProgressRepo interface {
	// Get returns the counters, creating the default row on first use.
	Get(ctx context.Context) (*ProgressRecord, error)

	// Save overwrites the counters.
	Save(ctx context.Context, rec *ProgressRecord) error
}

// ReminderRepo manages the local task list.
type ReminderRepo interface {
	Insert(ctx context.Context, rec ReminderRecord) error
	Get(ctx context.Context, rid string) (*ReminderRecord, error)
	Open(ctx context.Context) ([]ReminderRecord, error)
	AppendNote(ctx context.Context, rid, note string) error
	MarkComplete(ctx context.Context, rid string) error
}

// CoachEventData captures one LLM API call made by the coach.
type CoachEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append access to coach events.
type EventRepo interface {
	AppendCoachEvent(ctx context.Context, data CoachEventData) error
}
