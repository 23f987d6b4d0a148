package streak

import (
	"testing"
	"time"
)

func engineAt(t time.Time, state State) *Engine {
	e := New(state)
	e.now = func() time.Time { return t }
	return e
}

func TestCheckAndUpdate_NeverCredited(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	e := engineAt(now, State{FreezesRemaining: 1, LastFreezeResetWeek: isoWeek(now)})

	if got := e.CheckAndUpdate(); got != OutcomeIntact {
		t.Fatalf("outcome = %v, want intact", got)
	}
	if s := e.Snapshot(); s.FreezesRemaining != 1 {
		t.Errorf("freezes = %d, want 1", s.FreezesRemaining)
	}
}

func TestCheckAndUpdate_CreditedTodayOrYesterday(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	for _, last := range []string{"2026-08-31", "2026-08-30"} {
		e := engineAt(now, State{
			CurrentStreak:       5,
			FreezesRemaining:    1,
			LastStreakDate:      last,
			LastFreezeResetWeek: isoWeek(now),
		})
		if got := e.CheckAndUpdate(); got != OutcomeIntact {
			t.Errorf("last=%s: outcome = %v, want intact", last, got)
		}
		if s := e.Snapshot(); s.CurrentStreak != 5 || s.FreezesRemaining != 1 {
			t.Errorf("last=%s: state mutated: %+v", last, s)
		}
	}
}

func TestCheckAndUpdate_GapConsumesFreeze(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	e := engineAt(now, State{
		CurrentStreak:       7,
		FreezesRemaining:    1,
		LastStreakDate:      "2026-08-28", // three days ago
		LastFreezeResetWeek: isoWeek(now),
	})

	if got := e.CheckAndUpdate(); got != OutcomeFreezeConsumed {
		t.Fatalf("outcome = %v, want freeze consumed", got)
	}
	s := e.Snapshot()
	if s.CurrentStreak != 7 {
		t.Errorf("streak = %d, want 7 preserved", s.CurrentStreak)
	}
	if s.FreezesRemaining != 0 {
		t.Errorf("freezes = %d, want 0", s.FreezesRemaining)
	}
}

func TestCheckAndUpdate_GapWithoutFreezeResets(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	e := engineAt(now, State{
		CurrentStreak:       7,
		FreezesRemaining:    0,
		LastStreakDate:      "2026-08-28",
		LastFreezeResetWeek: isoWeek(now),
	})

	if got := e.CheckAndUpdate(); got != OutcomeReset {
		t.Fatalf("outcome = %v, want reset", got)
	}
	if s := e.Snapshot(); s.CurrentStreak != 0 {
		t.Errorf("streak = %d, want 0", s.CurrentStreak)
	}
}

func TestCheckAndUpdate_WeeklyFreezeRefill(t *testing.T) {
	// Monday of a new ISO week refills the allowance before the gap is
	// judged, so a fresh freeze can bridge it.
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local) // Monday, 2026-W36
	e := engineAt(now, State{
		CurrentStreak:       3,
		FreezesRemaining:    0,
		LastStreakDate:      "2026-08-28",
		LastFreezeResetWeek: "2026-W35",
	})

	if got := e.CheckAndUpdate(); got != OutcomeFreezeConsumed {
		t.Fatalf("outcome = %v, want freeze consumed after refill", got)
	}
	s := e.Snapshot()
	if s.CurrentStreak != 3 {
		t.Errorf("streak = %d, want 3 preserved", s.CurrentStreak)
	}
	if s.FreezesRemaining != 0 {
		t.Errorf("freezes = %d, want 0 after refill+consume", s.FreezesRemaining)
	}
	if s.LastFreezeResetWeek != isoWeek(now) {
		t.Errorf("reset week = %q, want %q", s.LastFreezeResetWeek, isoWeek(now))
	}
}

func TestCheckAndUpdate_SameWeekNoRefill(t *testing.T) {
	now := time.Date(2026, 9, 2, 9, 0, 0, 0, time.Local) // Wednesday, same week
	e := engineAt(now, State{
		FreezesRemaining:    0,
		LastFreezeResetWeek: isoWeek(now),
	})
	e.CheckAndUpdate()
	if s := e.Snapshot(); s.FreezesRemaining != 0 {
		t.Errorf("freezes = %d, want 0 (no mid-week refill)", s.FreezesRemaining)
	}
}

func TestIncrement(t *testing.T) {
	now := time.Date(2026, 8, 31, 21, 30, 0, 0, time.Local)
	e := engineAt(now, State{CurrentStreak: 2})

	e.Increment()

	s := e.Snapshot()
	if s.CurrentStreak != 3 {
		t.Errorf("streak = %d, want 3", s.CurrentStreak)
	}
	if s.LastStreakDate != "2026-08-31" {
		t.Errorf("last credited = %q, want 2026-08-31", s.LastStreakDate)
	}
}

func TestUseFreeze(t *testing.T) {
	e := New(State{FreezesRemaining: 1})
	if !e.UseFreeze() {
		t.Fatal("first UseFreeze should succeed")
	}
	if e.UseFreeze() {
		t.Fatal("second UseFreeze should fail")
	}
}

func TestIsoWeekYearBoundary(t *testing.T) {
	// 2024-12-30 and 2025-01-02 share ISO week 1 of 2025.
	a := isoWeek(time.Date(2024, 12, 30, 0, 0, 0, 0, time.Local))
	b := isoWeek(time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local))
	if a != b || a != "2025-W01" {
		t.Errorf("isoWeek = %q, %q, want both 2025-W01", a, b)
	}
}
