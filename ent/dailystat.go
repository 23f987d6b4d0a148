// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/focusbar/ent/dailystat"
)

// DailyStat is the model entity for the DailyStat schema.
type DailyStat struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Local calendar day, yyyy-MM-dd
	Date string `json:"date,omitempty"`
	// PomodorosCompleted holds the value of the "pomodoros_completed" field.
	PomodorosCompleted int `json:"pomodoros_completed,omitempty"`
	// TotalFocusMinutes holds the value of the "total_focus_minutes" field.
	TotalFocusMinutes int `json:"total_focus_minutes,omitempty"`
	// StreakMaintained holds the value of the "streak_maintained" field.
	StreakMaintained bool `json:"streak_maintained,omitempty"`
	// XpEarned holds the value of the "xp_earned" field.
	XpEarned     int `json:"xp_earned,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyStat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailystat.FieldStreakMaintained:
			values[i] = new(sql.NullBool)
		case dailystat.FieldID, dailystat.FieldPomodorosCompleted, dailystat.FieldTotalFocusMinutes, dailystat.FieldXpEarned:
			values[i] = new(sql.NullInt64)
		case dailystat.FieldDate:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyStat fields.
func (_m *DailyStat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailystat.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case dailystat.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case dailystat.FieldPomodorosCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pomodoros_completed", values[i])
			} else if value.Valid {
				_m.PomodorosCompleted = int(value.Int64)
			}
		case dailystat.FieldTotalFocusMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_focus_minutes", values[i])
			} else if value.Valid {
				_m.TotalFocusMinutes = int(value.Int64)
			}
		case dailystat.FieldStreakMaintained:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field streak_maintained", values[i])
			} else if value.Valid {
				_m.StreakMaintained = value.Bool
			}
		case dailystat.FieldXpEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_earned", values[i])
			} else if value.Valid {
				_m.XpEarned = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DailyStat.
// This includes values selected through modifiers, order, etc.
func (_m *DailyStat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DailyStat.
// Note that you need to call DailyStat.Unwrap() before calling this method if this DailyStat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DailyStat) Update() *DailyStatUpdateOne {
	return NewDailyStatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DailyStat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DailyStat) Unwrap() *DailyStat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyStat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DailyStat) String() string {
	var builder strings.Builder
	builder.WriteString("DailyStat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("pomodoros_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.PomodorosCompleted))
	builder.WriteString(", ")
	builder.WriteString("total_focus_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalFocusMinutes))
	builder.WriteString(", ")
	builder.WriteString("streak_maintained=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakMaintained))
	builder.WriteString(", ")
	builder.WriteString("xp_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpEarned))
	builder.WriteByte(')')
	return builder.String()
}

// DailyStats is a parsable slice of DailyStat.
type DailyStats []*DailyStat
