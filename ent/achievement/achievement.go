// Code generated by ent, DO NOT EDIT.

package achievement

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the achievement type in the database.
	Label = "achievement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAchievementID holds the string denoting the achievement_id field in the database.
	FieldAchievementID = "achievement_id"
	// FieldUnlockedAt holds the string denoting the unlocked_at field in the database.
	FieldUnlockedAt = "unlocked_at"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the achievement in the database.
	Table = "achievements"
)

// Columns holds all SQL columns for achievement fields.
var Columns = []string{
	FieldID,
	FieldAchievementID,
	FieldUnlockedAt,
	FieldMetadata,
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
	// AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	AchievementIDValidator func(string) error
	// DefaultUnlockedAt holds the default value on creation for the "unlocked_at" field.
	DefaultUnlockedAt func() time.Time
	// DefaultMetadata holds the default value on creation for the "metadata" field.
	DefaultMetadata string
)

// OrderOption defines the ordering options for the Achievement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAchievementID orders the results by the achievement_id field.
func ByAchievementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAchievementID, opts...).ToFunc()
}

// ByUnlockedAt orders the results by the unlocked_at field.
func ByUnlockedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnlockedAt, opts...).ToFunc()
}

// ByMetadata orders the results by the metadata field.
func ByMetadata(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetadata, opts...).ToFunc()
}
