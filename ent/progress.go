// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/focusbar/ent/progress"
)

// Progress is the model entity for the Progress schema.
type Progress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Lifetime XP, never decreases
	Xp int `json:"xp,omitempty"`
	// Cached level derived from xp
	Level int `json:"level,omitempty"`
	// CurrentStreak holds the value of the "current_streak" field.
	CurrentStreak int `json:"current_streak,omitempty"`
	// Streak freezes left this week
	FreezesRemaining int `json:"freezes_remaining,omitempty"`
	// Last day the daily goal was credited, yyyy-MM-dd
	LastStreakDate string `json:"last_streak_date,omitempty"`
	// ISO week of the last freeze refill, e.g. 2026-W35
	LastFreezeResetWeek string `json:"last_freeze_reset_week,omitempty"`
	// Per-user override; 0 means use the configured default
	DailyGoal int `json:"daily_goal,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Progress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progress.FieldID, progress.FieldXp, progress.FieldLevel, progress.FieldCurrentStreak, progress.FieldFreezesRemaining, progress.FieldDailyGoal:
			values[i] = new(sql.NullInt64)
		case progress.FieldLastStreakDate, progress.FieldLastFreezeResetWeek:
			values[i] = new(sql.NullString)
		case progress.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Progress fields.
func (_m *Progress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case progress.FieldXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp", values[i])
			} else if value.Valid {
				_m.Xp = int(value.Int64)
			}
		case progress.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case progress.FieldCurrentStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_streak", values[i])
			} else if value.Valid {
				_m.CurrentStreak = int(value.Int64)
			}
		case progress.FieldFreezesRemaining:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field freezes_remaining", values[i])
			} else if value.Valid {
				_m.FreezesRemaining = int(value.Int64)
			}
		case progress.FieldLastStreakDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_streak_date", values[i])
			} else if value.Valid {
				_m.LastStreakDate = value.String
			}
		case progress.FieldLastFreezeResetWeek:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_freeze_reset_week", values[i])
			} else if value.Valid {
				_m.LastFreezeResetWeek = value.String
			}
		case progress.FieldDailyGoal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_goal", values[i])
			} else if value.Valid {
				_m.DailyGoal = int(value.Int64)
			}
		case progress.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Progress.
// This includes values selected through modifiers, order, etc.
func (_m *Progress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Progress.
// Note that you need to call Progress.Unwrap() before calling this method if this Progress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Progress) Update() *ProgressUpdateOne {
	return NewProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Progress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Progress) Unwrap() *Progress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Progress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Progress) String() string {
	var builder strings.Builder
	builder.WriteString("Progress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.Xp))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("current_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStreak))
	builder.WriteString(", ")
	builder.WriteString("freezes_remaining=")
	builder.WriteString(fmt.Sprintf("%v", _m.FreezesRemaining))
	builder.WriteString(", ")
	builder.WriteString("last_streak_date=")
	builder.WriteString(_m.LastStreakDate)
	builder.WriteString(", ")
	builder.WriteString("last_freeze_reset_week=")
	builder.WriteString(_m.LastFreezeResetWeek)
	builder.WriteString(", ")
	builder.WriteString("daily_goal=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyGoal))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Progresses is a parsable slice of Progress.
type Progresses []*Progress
