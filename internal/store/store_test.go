package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionAppendAndCount(t *testing.T) {
	s := openTestStore(t)
	repos := s.Repos()
	ctx := context.Background()

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	for _, rec := range []SessionRecord{
		{SID: uuid.New().String(), StartTime: now, DurationSecs: 1500, Kind: KindFocus, Completed: true},
		{SID: uuid.New().String(), StartTime: now, DurationSecs: 300, Kind: KindShortBreak, Completed: true},
		{SID: uuid.New().String(), StartTime: yesterday, DurationSecs: 1500, Kind: KindFocus, Completed: true},
	} {
		if err := repos.Sessions.Append(ctx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	n, err := repos.Sessions.CountFocusOn(ctx, now)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("CountFocusOn(today) = %d, want 1 (breaks and other days excluded)", n)
	}
}

func TestSessionMetrics_LinkedAndTotals(t *testing.T) {
	s := openTestStore(t)
	repos := s.Repos()
	ctx := context.Background()

	rid := "reminder-1"
	title := "Write report"
	recs := []SessionRecord{
		{SID: uuid.New().String(), StartTime: time.Now(), DurationSecs: 1500, Kind: KindFocus, Completed: true, ReminderID: &rid, ReminderTitle: &title},
		{SID: uuid.New().String(), StartTime: time.Now(), DurationSecs: 1500, Kind: KindFocus, Completed: true},
	}
	for _, rec := range recs {
		if err := repos.Sessions.Append(ctx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	m, err := repos.Sessions.Metrics(ctx)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if m.TotalFocusCompleted != 2 {
		t.Errorf("TotalFocusCompleted = %d, want 2", m.TotalFocusCompleted)
	}
	if m.LinkedCompleted != 1 {
		t.Errorf("LinkedCompleted = %d, want 1", m.LinkedCompleted)
	}
}

func TestStatsApply_UpsertsOneRowPerDay(t *testing.T) {
	s := openTestStore(t)
	repos := s.Repos()
	ctx := context.Background()

	date := "2026-08-31"
	if err := repos.Stats.Apply(ctx, date, 1, 25, 26, false); err != nil {
		t.Fatalf("apply (create): %v", err)
	}
	if err := repos.Stats.Apply(ctx, date, 1, 25, 27, true); err != nil {
		t.Fatalf("apply (update): %v", err)
	}

	day, err := repos.Stats.Day(ctx, date)
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	if day == nil {
		t.Fatal("expected a daily stat row")
	}
	if day.PomodorosCompleted != 2 || day.TotalFocusMinutes != 50 || day.XPEarned != 53 {
		t.Errorf("aggregate = %+v, want pomodoros 2, minutes 50, xp 53", day)
	}
	if !day.StreakMaintained {
		t.Error("expected streak flag from the latest apply")
	}

	all, err := repos.Stats.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("len(all) = %d, want 1 (one row per day)", len(all))
	}
}

func TestAchievementUnlockedSet(t *testing.T) {
	s := openTestStore(t)
	repos := s.Repos()
	ctx := context.Background()

	err := repos.Achievements.RecordUnlock(ctx, AchievementRecord{
		AchievementID: "first_focus",
		UnlockedAt:    time.Now(),
	})
	if err != nil {
		t.Fatalf("record unlock: %v", err)
	}

	set, err := repos.Achievements.UnlockedSet(ctx)
	if err != nil {
		t.Fatalf("unlocked set: %v", err)
	}
	if !set["first_focus"] {
		t.Error("expected first_focus in unlocked set")
	}

	// Unique constraint: unlocking the same id again must fail.
	err = repos.Achievements.RecordUnlock(ctx, AchievementRecord{
		AchievementID: "first_focus",
		UnlockedAt:    time.Now(),
	})
	if err == nil {
		t.Error("expected duplicate unlock to fail")
	}
}

func TestProgressGetCreatesDefaults(t *testing.T) {
	s := openTestStore(t)
	repos := s.Repos()
	ctx := context.Background()

	p, err := repos.Progress.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.XP != 0 || p.Level != 1 || p.CurrentStreak != 0 {
		t.Errorf("defaults = %+v, want xp 0, level 1, streak 0", p)
	}

	p.XP = 120
	p.Level = 1
	p.CurrentStreak = 3
	p.LastStreakDate = "2026-08-30"
	if err := repos.Progress.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	p2, err := repos.Progress.Get(ctx)
	if err != nil {
		t.Fatalf("get after save: %v", err)
	}
	if p2.XP != 120 || p2.CurrentStreak != 3 || p2.LastStreakDate != "2026-08-30" {
		t.Errorf("round-trip = %+v", p2)
	}
}

func TestTxRollsBackOnError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	errBoom := context.DeadlineExceeded // any sentinel
	err := s.Tx(ctx, func(r Repos) error {
		if err := r.Sessions.Append(ctx, SessionRecord{
			SID: uuid.New().String(), StartTime: time.Now(),
			DurationSecs: 1500, Kind: KindFocus, Completed: true,
		}); err != nil {
			return err
		}
		return errBoom
	})
	if err == nil {
		t.Fatal("expected error from Tx")
	}

	n, err := s.Repos().Sessions.CountFocusOn(ctx, time.Now())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("count after rollback = %d, want 0", n)
	}
}

func TestReminderLifecycle(t *testing.T) {
	s := openTestStore(t)
	repos := s.Repos()
	ctx := context.Background()

	rec := ReminderRecord{
		RID:       uuid.New().String(),
		Title:     "Ship the release",
		CreatedAt: time.Now(),
	}
	if err := repos.Reminders.Insert(ctx, rec); err != nil {
		t.Fatalf("insert: %v", err)
	}

	open, err := repos.Reminders.Open(ctx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(open) != 1 {
		t.Fatalf("len(open) = %d, want 1", len(open))
	}

	if err := repos.Reminders.AppendNote(ctx, rec.RID, "25 min on 2026-08-31"); err != nil {
		t.Fatalf("append note: %v", err)
	}
	if err := repos.Reminders.AppendNote(ctx, rec.RID, "25 min on 2026-09-01"); err != nil {
		t.Fatalf("append second note: %v", err)
	}

	got, err := repos.Reminders.Get(ctx, rec.RID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := "25 min on 2026-08-31\n25 min on 2026-09-01"
	if got.Notes != want {
		t.Errorf("notes = %q, want %q", got.Notes, want)
	}

	if err := repos.Reminders.MarkComplete(ctx, rec.RID); err != nil {
		t.Fatalf("mark complete: %v", err)
	}
	open, err = repos.Reminders.Open(ctx)
	if err != nil {
		t.Fatalf("open after complete: %v", err)
	}
	if len(open) != 0 {
		t.Errorf("len(open) = %d after completion, want 0", len(open))
	}
}
