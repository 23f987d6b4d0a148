// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Achievement is the predicate function for achievement builders.
type Achievement func(*sql.Selector)

// CoachEvent is the predicate function for coachevent builders.
type CoachEvent func(*sql.Selector)

// DailyStat is the predicate function for dailystat builders.
type DailyStat func(*sql.Selector)

// Progress is the predicate function for progress builders.
type Progress func(*sql.Selector)

// Reminder is the predicate function for reminder builders.
type Reminder func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)
