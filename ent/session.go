// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/focusbar/ent/session"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID for the session
	Sid string `json:"sid,omitempty"`
	// When the session began
	StartTime time.Time `json:"start_time,omitempty"`
	// When the session finished (nil for legacy rows)
	EndTime *time.Time `json:"end_time,omitempty"`
	// Planned duration the session was credited with
	DurationSecs int `json:"duration_secs,omitempty"`
	// focus, shortBreak or longBreak
	Kind string `json:"kind,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// Linked reminder, if any
	ReminderID *string `json:"reminder_id,omitempty"`
	// ReminderTitle holds the value of the "reminder_title" field.
	ReminderTitle *string `json:"reminder_title,omitempty"`
	// XpEarned holds the value of the "xp_earned" field.
	XpEarned     int `json:"xp_earned,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldCompleted:
			values[i] = new(sql.NullBool)
		case session.FieldID, session.FieldDurationSecs, session.FieldXpEarned:
			values[i] = new(sql.NullInt64)
		case session.FieldSid, session.FieldKind, session.FieldReminderID, session.FieldReminderTitle:
			values[i] = new(sql.NullString)
		case session.FieldStartTime, session.FieldEndTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case session.FieldSid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sid", values[i])
			} else if value.Valid {
				_m.Sid = value.String
			}
		case session.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case session.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = new(time.Time)
				*_m.EndTime = value.Time
			}
		case session.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		case session.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case session.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case session.FieldReminderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reminder_id", values[i])
			} else if value.Valid {
				_m.ReminderID = new(string)
				*_m.ReminderID = value.String
			}
		case session.FieldReminderTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reminder_title", values[i])
			} else if value.Valid {
				_m.ReminderTitle = new(string)
				*_m.ReminderTitle = value.String
			}
		case session.FieldXpEarned:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sid=")
	builder.WriteString(_m.Sid)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndTime; v != nil {
		builder.WriteString("end_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	if v := _m.ReminderID; v != nil {
		builder.WriteString("reminder_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReminderTitle; v != nil {
		builder.WriteString("reminder_title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("xp_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpEarned))
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
