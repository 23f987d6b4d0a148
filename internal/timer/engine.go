// Package timer implements the session timer state machine. Remaining
// time is always derived from wall-clock timestamps, never from counting
// tick invocations, so missed ticks (sleep, suspended terminal, dropped
// callbacks) cannot drift the countdown.
package timer

import (
	"sync"
	"time"

	"github.com/abhisek/focusbar/internal/config"
)

// State is the timer's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Completion reports one finished or skipped session. Exactly one
// Completion is produced per session; the caller dispatches it to the
// orchestrator.
type Completion struct {
	Kind Kind

	// DurationSecs is the planned total duration, not elapsed time.
	// A skipped session is credited with its full planned length.
	DurationSecs int
}

// Engine is the session timer state machine. All mutations are serialized
// through one mutex: the periodic tick and the sleep/wake handlers may
// arrive on different goroutines.
//
// Invalid operations (pause while idle, start while running) are silent
// no-ops. This is a UI-driven control surface where spurious calls are
// expected and harmless.
type Engine struct {
	mu  sync.Mutex
	cfg config.Config
	now func() time.Time

	state State
	kind  Kind

	// completedFocusInCycle counts focus sessions since the last long
	// break; it drives the long-break cadence.
	completedFocusInCycle int

	totalSecs       int
	remaining       int
	startedAt       time.Time
	pausedRemaining int
}

// New creates an engine starting Idle on a focus session.
func New(cfg config.Config) *Engine {
	return &Engine{
		cfg:  cfg,
		now:  time.Now,
		kind: KindFocus,
	}
}

// Start begins or resumes the timer. overrideMinutes > 0 replaces the
// configured duration when starting from Idle.
func (e *Engine) Start(overrideMinutes int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case StateIdle:
		minutes := overrideMinutes
		if minutes <= 0 {
			minutes = e.kind.Minutes(e.cfg)
		}
		e.totalSecs = minutes * 60
		e.remaining = e.totalSecs
		e.startedAt = e.now()
		e.state = StateRunning

	case StatePaused:
		// Shift the effective start so that elapsed time excludes the
		// pause: resuming preserves the remaining time at pause.
		elapsed := e.totalSecs - e.pausedRemaining
		e.startedAt = e.now().Add(-time.Duration(elapsed) * time.Second)
		e.remaining = e.pausedRemaining
		e.state = StateRunning

	case StateRunning:
		// No-op.
	}
}

// Pause snapshots the remaining time and stops counting down.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateRunning {
		return
	}
	e.pausedRemaining = e.remaining
	e.state = StatePaused
}

// Reset clears all timer state and returns to Idle without emitting a
// completion.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clearLocked()
}

// Skip ends the current session immediately, crediting the full planned
// duration. Returns nil from Idle.
func (e *Engine) Skip() *Completion {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateIdle {
		return nil
	}
	c := &Completion{Kind: e.kind, DurationSecs: e.totalSecs}
	e.clearLocked()
	return c
}

// Tick recomputes the remaining time from the wall clock. While Running
// it returns the new remaining seconds; when the countdown reaches zero
// it returns the session's single Completion and the engine goes Idle.
func (e *Engine) Tick() (int, *Completion) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateRunning {
		return e.remaining, nil
	}

	elapsed := int(e.now().Sub(e.startedAt).Seconds())
	e.remaining = e.totalSecs - elapsed
	if e.remaining < 0 {
		e.remaining = 0
	}

	if e.remaining > 0 {
		return e.remaining, nil
	}

	c := &Completion{Kind: e.kind, DurationSecs: e.totalSecs}
	e.clearLocked()
	return 0, c
}

// HandleSleep snapshots the remaining time when the system is about to
// sleep. The state stays Running: the wake handler re-derives remaining
// time from timestamps, the snapshot only covers UIs that render while
// the tick source is suspended.
func (e *Engine) HandleSleep() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateRunning {
		return
	}
	e.pausedRemaining = e.remaining
}

// HandleWake recomputes the remaining time from the stored start
// timestamp after a sleep gap. If the session ran out while asleep, the
// completion fires synchronously here rather than waiting for a tick.
func (e *Engine) HandleWake() *Completion {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateRunning {
		return nil
	}

	elapsed := int(e.now().Sub(e.startedAt).Seconds())
	e.remaining = e.totalSecs - elapsed
	if e.remaining > 0 {
		return nil
	}
	e.remaining = 0

	c := &Completion{Kind: e.kind, DurationSecs: e.totalSecs}
	e.clearLocked()
	return c
}

// AdvanceToNextSession moves to the next session kind. A focus session
// increments the in-cycle counter; the Nth focus leads into a long break,
// after which the counter resets. Breaks always lead back to focus.
func (e *Engine) AdvanceToNextSession() {
	e.mu.Lock()
	defer e.mu.Unlock()

	maxSessions := e.cfg.SessionsUntilLongBreak
	if maxSessions <= 0 {
		maxSessions = config.DefaultSessionsUntilLongBreak
	}

	switch e.kind {
	case KindFocus:
		e.completedFocusInCycle++
		if e.completedFocusInCycle >= maxSessions {
			e.kind = KindLongBreak
		} else {
			e.kind = KindShortBreak
		}
	case KindShortBreak, KindLongBreak:
		if e.kind == KindLongBreak {
			e.completedFocusInCycle = 0
		}
		e.kind = KindFocus
	}
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Kind returns the current session kind.
func (e *Engine) Kind() Kind {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.kind
}

// Remaining returns the last computed remaining seconds.
func (e *Engine) Remaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remaining
}

// TotalSecs returns the planned duration of the current session, or 0
// when Idle.
func (e *Engine) TotalSecs() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalSecs
}

// CompletedFocusInCycle returns the focus count since the last long break.
func (e *Engine) CompletedFocusInCycle() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completedFocusInCycle
}

// StartedAt returns the effective session start timestamp.
func (e *Engine) StartedAt() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.startedAt
}

func (e *Engine) clearLocked() {
	e.state = StateIdle
	e.remaining = 0
	e.totalSecs = 0
	e.startedAt = time.Time{}
	e.pausedRemaining = 0
}
