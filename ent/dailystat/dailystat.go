// Code generated by ent, DO NOT EDIT.

package dailystat

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dailystat type in the database.
	Label = "daily_stat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldPomodorosCompleted holds the string denoting the pomodoros_completed field in the database.
	FieldPomodorosCompleted = "pomodoros_completed"
	// FieldTotalFocusMinutes holds the string denoting the total_focus_minutes field in the database.
	FieldTotalFocusMinutes = "total_focus_minutes"
	// FieldStreakMaintained holds the string denoting the streak_maintained field in the database.
	FieldStreakMaintained = "streak_maintained"
	// FieldXpEarned holds the string denoting the xp_earned field in the database.
	FieldXpEarned = "xp_earned"
	// Table holds the table name of the dailystat in the database.
	Table = "daily_stats"
)

// Columns holds all SQL columns for dailystat fields.
var Columns = []string{
	FieldID,
	FieldDate,
	FieldPomodorosCompleted,
	FieldTotalFocusMinutes,
	FieldStreakMaintained,
	FieldXpEarned,
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
	// DateValidator is a validator for the "date" field. It is called by the builders before save.
	DateValidator func(string) error
	// DefaultPomodorosCompleted holds the default value on creation for the "pomodoros_completed" field.
	DefaultPomodorosCompleted int
	// DefaultTotalFocusMinutes holds the default value on creation for the "total_focus_minutes" field.
	DefaultTotalFocusMinutes int
	// DefaultStreakMaintained holds the default value on creation for the "streak_maintained" field.
	DefaultStreakMaintained bool
	// DefaultXpEarned holds the default value on creation for the "xp_earned" field.
	DefaultXpEarned int
)

// OrderOption defines the ordering options for the DailyStat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByPomodorosCompleted orders the results by the pomodoros_completed field.
func ByPomodorosCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPomodorosCompleted, opts...).ToFunc()
}

// ByTotalFocusMinutes orders the results by the total_focus_minutes field.
func ByTotalFocusMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalFocusMinutes, opts...).ToFunc()
}

// ByStreakMaintained orders the results by the streak_maintained field.
func ByStreakMaintained(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakMaintained, opts...).ToFunc()
}

// ByXpEarned orders the results by the xp_earned field.
func ByXpEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpEarned, opts...).ToFunc()
}
