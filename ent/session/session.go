// Code generated by ent, DO NOT EDIT.

package session

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSid holds the string denoting the sid field in the database.
	FieldSid = "sid"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldReminderID holds the string denoting the reminder_id field in the database.
	FieldReminderID = "reminder_id"
	// FieldReminderTitle holds the string denoting the reminder_title field in the database.
	FieldReminderTitle = "reminder_title"
	// FieldXpEarned holds the string denoting the xp_earned field in the database.
	FieldXpEarned = "xp_earned"
	// Table holds the table name of the session in the database.
	Table = "sessions"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldSid,
	FieldStartTime,
	FieldEndTime,
	FieldDurationSecs,
	FieldKind,
	FieldCompleted,
	FieldReminderID,
	FieldReminderTitle,
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
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DefaultXpEarned holds the default value on creation for the "xp_earned" field.
	DefaultXpEarned int
)

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySid orders the results by the sid field.
func BySid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSid, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByReminderID orders the results by the reminder_id field.
func ByReminderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReminderID, opts...).ToFunc()
}

// ByReminderTitle orders the results by the reminder_title field.
func ByReminderTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReminderTitle, opts...).ToFunc()
}

// ByXpEarned orders the results by the xp_earned field.
func ByXpEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpEarned, opts...).ToFunc()
}
