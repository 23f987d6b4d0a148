// Code generated by ent, DO NOT EDIT.

package progress

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progress type in the database.
	Label = "progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldXp holds the string denoting the xp field in the database.
	FieldXp = "xp"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldCurrentStreak holds the string denoting the current_streak field in the database.
	FieldCurrentStreak = "current_streak"
	// FieldFreezesRemaining holds the string denoting the freezes_remaining field in the database.
	FieldFreezesRemaining = "freezes_remaining"
	// FieldLastStreakDate holds the string denoting the last_streak_date field in the database.
	FieldLastStreakDate = "last_streak_date"
	// FieldLastFreezeResetWeek holds the string denoting the last_freeze_reset_week field in the database.
	FieldLastFreezeResetWeek = "last_freeze_reset_week"
	// FieldDailyGoal holds the string denoting the daily_goal field in the database.
	FieldDailyGoal = "daily_goal"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the progress in the database.
	Table = "progresses"
)

// Columns holds all SQL columns for progress fields.
var Columns = []string{
	FieldID,
	FieldXp,
	FieldLevel,
	FieldCurrentStreak,
	FieldFreezesRemaining,
	FieldLastStreakDate,
	FieldLastFreezeResetWeek,
	FieldDailyGoal,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultXp holds the default value on creation for the "xp" field.
	DefaultXp int
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel int
	// DefaultCurrentStreak holds the default value on creation for the "current_streak" field.
	DefaultCurrentStreak int
	// DefaultFreezesRemaining holds the default value on creation for the "freezes_remaining" field.
	DefaultFreezesRemaining int
	// DefaultLastStreakDate holds the default value on creation for the "last_streak_date" field.
	DefaultLastStreakDate string
	// DefaultLastFreezeResetWeek holds the default value on creation for the "last_freeze_reset_week" field.
	DefaultLastFreezeResetWeek string
	// DefaultDailyGoal holds the default value on creation for the "daily_goal" field.
	DefaultDailyGoal int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Progress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByXp orders the results by the xp field.
func ByXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXp, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByCurrentStreak orders the results by the current_streak field.
func ByCurrentStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStreak, opts...).ToFunc()
}

// ByFreezesRemaining orders the results by the freezes_remaining field.
func ByFreezesRemaining(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreezesRemaining, opts...).ToFunc()
}

// ByLastStreakDate orders the results by the last_streak_date field.
func ByLastStreakDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastStreakDate, opts...).ToFunc()
}

// ByLastFreezeResetWeek orders the results by the last_freeze_reset_week field.
func ByLastFreezeResetWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastFreezeResetWeek, opts...).ToFunc()
}

// ByDailyGoal orders the results by the daily_goal field.
func ByDailyGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyGoal, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
