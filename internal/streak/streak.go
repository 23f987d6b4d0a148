// Package streak tracks daily-goal streak continuity with a weekly
// "streak freeze" allowance. Day and week boundaries use the local
// calendar, not rolling 24-hour windows.
package streak

import (
	"fmt"
	"time"
)

// WeeklyFreezes is the freeze allotment refilled each ISO week.
const WeeklyFreezes = 1

// dateLayout is the persisted day format.
const dateLayout = "2006-01-02"

// State carries the persisted streak counters. The engine mutates a copy
// in memory; the orchestrator persists it.
type State struct {
	CurrentStreak       int
	FreezesRemaining    int
	LastStreakDate      string // yyyy-MM-dd, empty if never credited
	LastFreezeResetWeek string // e.g. 2026-W35
	DailyGoal           int
}

// Outcome reports what a continuity check did.
type Outcome int

const (
	// OutcomeIntact: nothing to do (never credited, credited today, or
	// credited yesterday).
	OutcomeIntact Outcome = iota
	// OutcomeFreezeConsumed: a gap was bridged by consuming a freeze.
	OutcomeFreezeConsumed
	// OutcomeReset: a gap with no freezes left; streak dropped to 0.
	OutcomeReset
)

// Engine applies streak rules to a State.
type Engine struct {
	now   func() time.Time
	state State
}

// New creates an engine over the given persisted state.
func New(state State) *Engine {
	return &Engine{now: time.Now, state: state}
}

// Snapshot returns the current counters for persistence.
func (e *Engine) Snapshot() State {
	return e.state
}

// Restore rewinds the counters to a prior snapshot. Used when the write
// that was meant to persist them rolled back, so memory and storage
// stay in step.
func (e *Engine) Restore(state State) {
	e.state = state
}

// CheckAndUpdate reconciles streak continuity against elapsed calendar
// days. Called once per app start or foreground.
func (e *Engine) CheckAndUpdate() Outcome {
	e.resetWeeklyFreezesIfNeeded()

	last := e.state.LastStreakDate
	if last == "" || last == e.today() || last == e.yesterday() {
		return OutcomeIntact
	}

	// Gap of two or more days: a freeze preserves the streak.
	if e.UseFreeze() {
		return OutcomeFreezeConsumed
	}
	e.state.CurrentStreak = 0
	return OutcomeReset
}

// Increment credits today's goal: bumps the streak and records today as
// the last credited day. The orchestrator calls it only on the
// goal-just-met transition, so repeat sessions the same day don't
// double-credit.
func (e *Engine) Increment() {
	e.state.CurrentStreak++
	e.state.LastStreakDate = e.today()
}

// UseFreeze consumes one freeze if available and reports whether it did.
func (e *Engine) UseFreeze() bool {
	if e.state.FreezesRemaining <= 0 {
		return false
	}
	e.state.FreezesRemaining--
	return true
}

// resetWeeklyFreezesIfNeeded refills the allowance when the ISO week has
// changed since the last refill.
func (e *Engine) resetWeeklyFreezesIfNeeded() {
	week := isoWeek(e.now())
	if e.state.LastFreezeResetWeek == week {
		return
	}
	e.state.FreezesRemaining = WeeklyFreezes
	e.state.LastFreezeResetWeek = week
}

func (e *Engine) today() string {
	return e.now().Format(dateLayout)
}

func (e *Engine) yesterday() string {
	return e.now().AddDate(0, 0, -1).Format(dateLayout)
}

// isoWeek formats the year-qualified ISO week, e.g. "2026-W35". The year
// qualifier keeps week 1 of one year distinct from week 1 of the next.
func isoWeek(t time.Time) string {
	y, w := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", y, w)
}

// Today returns the local calendar day in the persisted format.
func Today(t time.Time) string {
	return t.Format(dateLayout)
}
