package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/focusbar/internal/config"
	"github.com/abhisek/focusbar/internal/store"
	"github.com/abhisek/focusbar/internal/streak"
	"github.com/abhisek/focusbar/internal/timer"
)

// fakeRepos is an in-memory store.Repos backend shared by all its repo
// implementations.
type fakeRepos struct {
	sessions  []store.SessionRecord
	stats     map[string]*store.DailyStatRecord
	unlocked  map[string]bool
	progress  store.ProgressRecord
	reminders map[string]*store.ReminderRecord
}

func newFakeRepos() *fakeRepos {
	return &fakeRepos{
		stats:     map[string]*store.DailyStatRecord{},
		unlocked:  map[string]bool{},
		progress:  store.ProgressRecord{Level: 1, FreezesRemaining: 1},
		reminders: map[string]*store.ReminderRecord{},
	}
}

func (f *fakeRepos) repos() store.Repos {
	return store.Repos{
		Sessions:     (*fakeSessions)(f),
		Stats:        (*fakeStats)(f),
		Achievements: (*fakeAchievements)(f),
		Progress:     (*fakeProgress)(f),
		Reminders:    (*fakeReminders)(f),
	}
}

// Tx runs fn directly against the shared state. Rollback fidelity is
// covered by the store's own transaction tests.
func (f *fakeRepos) Tx(_ context.Context, fn func(r store.Repos) error) error {
	return fn(f.repos())
}

type failingTx struct{}

func (failingTx) Tx(context.Context, func(r store.Repos) error) error {
	return errors.New("disk full")
}

// rollbackTx runs the body against scratch state and then fails, like a
// transaction that rolled back at commit: writes discarded, error
// returned.
type rollbackTx struct{}

func (rollbackTx) Tx(_ context.Context, fn func(r store.Repos) error) error {
	_ = fn(newFakeRepos().repos())
	return errors.New("commit failed")
}

type fakeSessions fakeRepos

func (f *fakeSessions) Append(_ context.Context, rec store.SessionRecord) error {
	f.sessions = append(f.sessions, rec)
	return nil
}

func (f *fakeSessions) CountFocusOn(_ context.Context, day time.Time) (int, error) {
	date := day.Format("2006-01-02")
	n := 0
	for _, s := range f.sessions {
		if s.Kind == store.KindFocus && s.Completed && s.StartTime.Format("2006-01-02") == date {
			n++
		}
	}
	return n, nil
}

func (f *fakeSessions) Metrics(context.Context) (store.SessionMetrics, error) {
	var m store.SessionMetrics
	for _, s := range f.sessions {
		if s.Kind != store.KindFocus || !s.Completed {
			continue
		}
		m.TotalFocusCompleted++
		if wd := s.StartTime.Weekday(); wd == time.Saturday || wd == time.Sunday {
			m.WeekendFocusCount++
		}
		if s.ReminderID != nil {
			m.LinkedCompleted++
		}
	}
	return m, nil
}

func (f *fakeSessions) All(context.Context) ([]store.SessionRecord, error) {
	return f.sessions, nil
}

type fakeStats fakeRepos

func (f *fakeStats) Apply(_ context.Context, date string, addPomodoros, addMinutes, addXP int, streakMaintained bool) error {
	d := f.stats[date]
	if d == nil {
		d = &store.DailyStatRecord{Date: date}
		f.stats[date] = d
	}
	d.PomodorosCompleted += addPomodoros
	d.TotalFocusMinutes += addMinutes
	d.XPEarned += addXP
	d.StreakMaintained = d.StreakMaintained || streakMaintained
	return nil
}

func (f *fakeStats) Day(_ context.Context, date string) (*store.DailyStatRecord, error) {
	return f.stats[date], nil
}

func (f *fakeStats) All(context.Context) ([]store.DailyStatRecord, error) {
	var out []store.DailyStatRecord
	for _, d := range f.stats {
		out = append(out, *d)
	}
	return out, nil
}

type fakeAchievements fakeRepos

func (f *fakeAchievements) UnlockedSet(context.Context) (map[string]bool, error) {
	out := map[string]bool{}
	for id := range f.unlocked {
		out[id] = true
	}
	return out, nil
}

func (f *fakeAchievements) RecordUnlock(_ context.Context, rec store.AchievementRecord) error {
	if f.unlocked[rec.AchievementID] {
		return fmt.Errorf("duplicate unlock: %s", rec.AchievementID)
	}
	f.unlocked[rec.AchievementID] = true
	return nil
}

func (f *fakeAchievements) All(context.Context) ([]store.AchievementRecord, error) {
	return nil, nil
}

type fakeProgress fakeRepos

func (f *fakeProgress) Get(context.Context) (*store.ProgressRecord, error) {
	p := f.progress
	return &p, nil
}

func (f *fakeProgress) Save(_ context.Context, rec *store.ProgressRecord) error {
	f.progress = *rec
	return nil
}

type fakeReminders fakeRepos

func (f *fakeReminders) Insert(_ context.Context, rec store.ReminderRecord) error {
	r := rec
	f.reminders[rec.RID] = &r
	return nil
}

func (f *fakeReminders) Get(_ context.Context, rid string) (*store.ReminderRecord, error) {
	return f.reminders[rid], nil
}

func (f *fakeReminders) Open(context.Context) ([]store.ReminderRecord, error) {
	return nil, nil
}

func (f *fakeReminders) AppendNote(_ context.Context, rid, note string) error {
	r := f.reminders[rid]
	if r == nil {
		return fmt.Errorf("no reminder %s", rid)
	}
	if r.Notes != "" {
		r.Notes += "\n"
	}
	r.Notes += note
	return nil
}

func (f *fakeReminders) MarkComplete(_ context.Context, rid string) error {
	if r := f.reminders[rid]; r != nil {
		r.Completed = true
	}
	return nil
}

// recordingNotifier counts notification calls.
type recordingNotifier struct {
	sessions int
	unlocks  []string
	levelUps []int
	goals    []int
	sounds   int
}

func (n *recordingNotifier) SessionComplete(timer.Kind, timer.Kind) error {
	n.sessions++
	return nil
}

func (n *recordingNotifier) AchievementUnlocked(title string, _ int) error {
	n.unlocks = append(n.unlocks, title)
	return nil
}

func (n *recordingNotifier) LevelUp(level int, _ string) error {
	n.levelUps = append(n.levelUps, level)
	return nil
}

func (n *recordingNotifier) DailyGoalMet(streak int) error {
	n.goals = append(n.goals, streak)
	return nil
}

func (n *recordingNotifier) PlayCompletionSound() error {
	n.sounds++
	return nil
}

func newTestOrchestrator(cfg config.Config, db TxRunner, n *recordingNotifier, now time.Time) (*Orchestrator, *timer.Engine) {
	tm := timer.New(cfg)
	o := New(&cfg, tm, streak.New(streak.State{FreezesRemaining: 1}), db, n, nil)
	o.now = func() time.Time { return now }
	return o, tm
}

func TestHandleCompletion_FirstFocus(t *testing.T) {
	cfg := config.Default()
	db := newFakeRepos()
	n := &recordingNotifier{}
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	o, tm := newTestOrchestrator(cfg, db, n, now)

	res := o.HandleCompletion(context.Background(), &timer.Completion{Kind: timer.KindFocus, DurationSecs: 1500})

	if res.PersistErr != nil {
		t.Fatalf("persist err: %v", res.PersistErr)
	}
	// Base 25 * streak 1.0 * level 1.05, rounded.
	if res.XP.TotalXP != 26 {
		t.Errorf("session XP = %d, want 26", res.XP.TotalXP)
	}
	if len(res.Unlocks) != 1 || res.Unlocks[0].AchievementID != "first_focus" {
		t.Fatalf("unlocks = %+v, want first_focus only", res.Unlocks)
	}
	// 26 session XP + 10 unlock bonus.
	if db.progress.XP != 36 {
		t.Errorf("persisted XP = %d, want 36", db.progress.XP)
	}
	if db.progress.Level != 1 {
		t.Errorf("level = %d, want 1", db.progress.Level)
	}

	if len(db.sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(db.sessions))
	}
	s := db.sessions[0]
	if s.Kind != store.KindFocus || !s.Completed || s.DurationSecs != 1500 || s.XPEarned != 26 {
		t.Errorf("bad session record: %+v", s)
	}

	day := db.stats["2026-08-31"]
	if day == nil {
		t.Fatal("no daily stat row")
	}
	if day.PomodorosCompleted != 1 || day.TotalFocusMinutes != 25 || day.XPEarned != 36 {
		t.Errorf("bad daily stat: %+v", day)
	}
	if day.StreakMaintained {
		t.Error("streak flagged maintained before goal")
	}

	if res.NextKind != timer.KindShortBreak || tm.Kind() != timer.KindShortBreak {
		t.Errorf("next kind = %v, want short break", res.NextKind)
	}
	if tm.State() != timer.StateRunning {
		t.Error("timer not auto-started")
	}
	if n.sessions != 1 {
		t.Errorf("session notifications = %d, want 1", n.sessions)
	}
	if len(n.unlocks) != 1 {
		t.Errorf("unlock notifications = %v, want one", n.unlocks)
	}
}

func TestHandleCompletion_DailyGoalEdgeTriggered(t *testing.T) {
	cfg := config.Default() // daily goal 4
	db := newFakeRepos()
	db.unlocked["first_focus"] = true
	n := &recordingNotifier{}
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local)
	o, _ := newTestOrchestrator(cfg, db, n, now)

	// Three focus sessions already done today.
	for i := 0; i < 3; i++ {
		db.sessions = append(db.sessions, store.SessionRecord{
			SID:       fmt.Sprintf("s%d", i),
			StartTime: now.Add(-time.Duration(i+1) * time.Hour),
			Kind:      store.KindFocus,
			Completed: true,
		})
	}

	res := o.HandleCompletion(context.Background(), &timer.Completion{Kind: timer.KindFocus, DurationSecs: 1500})

	if !res.DailyGoalJustMet {
		t.Fatal("fourth focus should meet the goal")
	}
	// 26 session XP + 50 goal bonus.
	if res.XP.TotalXP != 76 {
		t.Errorf("session XP = %d, want 76", res.XP.TotalXP)
	}
	if res.Streak != 1 {
		t.Errorf("streak = %d, want 1", res.Streak)
	}
	if db.progress.CurrentStreak != 1 {
		t.Errorf("persisted streak = %d, want 1", db.progress.CurrentStreak)
	}
	if len(n.goals) != 1 || n.goals[0] != 1 {
		t.Errorf("goal notifications = %v, want [1]", n.goals)
	}
	if !db.stats["2026-08-31"].StreakMaintained {
		t.Error("daily stat not flagged streak-maintained")
	}
	if !db.unlocked["half_day"] {
		t.Error("half_day should unlock at 4 sessions in a day")
	}

	// A fifth focus the same day must not re-trigger the goal.
	res = o.HandleCompletion(context.Background(), &timer.Completion{Kind: timer.KindFocus, DurationSecs: 1500})
	if res.DailyGoalJustMet {
		t.Error("goal re-triggered past the threshold")
	}
	if len(n.goals) != 1 {
		t.Errorf("goal notifications = %v, want still one", n.goals)
	}
	if db.progress.CurrentStreak != 1 {
		t.Errorf("streak double-credited: %d", db.progress.CurrentStreak)
	}
}

func TestHandleCompletion_BreakAwardsXPWithoutCount(t *testing.T) {
	cfg := config.Default()
	db := newFakeRepos()
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	o, tm := newTestOrchestrator(cfg, db, &recordingNotifier{}, now)
	// Move the engine onto a break so advancement returns to focus.
	tm.AdvanceToNextSession()

	res := o.HandleCompletion(context.Background(), &timer.Completion{Kind: timer.KindShortBreak, DurationSecs: 300})

	// Base 5 * 1.0 * 1.05 rounds to 5.
	if res.XP.TotalXP != 5 {
		t.Errorf("break XP = %d, want 5", res.XP.TotalXP)
	}
	day := db.stats["2026-08-31"]
	if day == nil || day.PomodorosCompleted != 0 || day.TotalFocusMinutes != 0 {
		t.Errorf("break counted as pomodoro: %+v", day)
	}
	if day.XPEarned != 5 {
		t.Errorf("daily XP = %d, want 5", day.XPEarned)
	}
	if res.NextKind != timer.KindFocus {
		t.Errorf("next kind = %v, want focus", res.NextKind)
	}
}

func TestHandleCompletion_PersistFailureKeepsTimerRunning(t *testing.T) {
	cfg := config.Default()
	n := &recordingNotifier{}
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	o, tm := newTestOrchestrator(cfg, failingTx{}, n, now)

	res := o.HandleCompletion(context.Background(), &timer.Completion{Kind: timer.KindFocus, DurationSecs: 1500})

	if res.PersistErr == nil {
		t.Fatal("expected persist error")
	}
	if tm.Kind() != timer.KindShortBreak || tm.State() != timer.StateRunning {
		t.Error("timer did not advance past the failed persist")
	}
	if n.sessions != 1 {
		t.Errorf("session notifications = %d, want 1", n.sessions)
	}
	// Progression banners are suppressed when nothing was persisted.
	if len(n.unlocks) != 0 || len(n.levelUps) != 0 || len(n.goals) != 0 {
		t.Error("progression notifications sent despite persist failure")
	}
}

func TestHandleCompletion_TxFailureRewindsStreak(t *testing.T) {
	cfg := config.Default()
	cfg.DailyGoal = 1
	n := &recordingNotifier{}
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	o, _ := newTestOrchestrator(cfg, rollbackTx{}, n, now)

	res := o.HandleCompletion(context.Background(), &timer.Completion{Kind: timer.KindFocus, DurationSecs: 1500})
	if res.PersistErr == nil {
		t.Fatal("expected persist error")
	}
	if got := o.streak.Snapshot().CurrentStreak; got != 0 {
		t.Fatalf("streak after rolled-back transaction = %d, want 0", got)
	}

	// With storage back, the goal edge re-fires and credits exactly once.
	o.db = newFakeRepos()
	res = o.HandleCompletion(context.Background(), &timer.Completion{Kind: timer.KindFocus, DurationSecs: 1500})
	if res.PersistErr != nil {
		t.Fatalf("unexpected persist error: %v", res.PersistErr)
	}
	if !res.DailyGoalJustMet {
		t.Error("goal edge did not re-fire after the rollback")
	}
	if got := o.streak.Snapshot().CurrentStreak; got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

func TestHandleCompletion_BannerDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.BannerEnabled = false
	n := &recordingNotifier{}
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	o, _ := newTestOrchestrator(cfg, newFakeRepos(), n, now)

	o.HandleCompletion(context.Background(), &timer.Completion{Kind: timer.KindFocus, DurationSecs: 1500})

	if n.sessions != 0 {
		t.Errorf("session notifications = %d, want 0 with banner off", n.sessions)
	}
	// Progression banners are not gated by the session banner toggle.
	if len(n.unlocks) != 1 {
		t.Errorf("unlock notifications = %v, want one", n.unlocks)
	}
}

func TestHandleCompletion_LinkedReminder(t *testing.T) {
	cfg := config.Default()
	db := newFakeRepos()
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	o, _ := newTestOrchestrator(cfg, db, &recordingNotifier{}, now)

	rem := store.ReminderRecord{RID: "r1", Title: "Write report"}
	if err := db.repos().Reminders.Insert(context.Background(), rem); err != nil {
		t.Fatal(err)
	}
	o.LinkReminder(&rem)

	o.HandleCompletion(context.Background(), &timer.Completion{Kind: timer.KindFocus, DurationSecs: 1500})

	s := db.sessions[0]
	if s.ReminderID == nil || *s.ReminderID != "r1" || *s.ReminderTitle != "Write report" {
		t.Errorf("session not linked: %+v", s)
	}
	if got := db.reminders["r1"].Notes; got != "25 min on 2026-08-31" {
		t.Errorf("reminder note = %q", got)
	}
}

func TestHandleCompletion_NilCompletion(t *testing.T) {
	o, _ := newTestOrchestrator(config.Default(), newFakeRepos(), &recordingNotifier{}, time.Now())
	if res := o.HandleCompletion(context.Background(), nil); res != nil {
		t.Errorf("nil completion produced result: %+v", res)
	}
}

func TestLoad_RunsStreakCheck(t *testing.T) {
	cfg := config.Default()
	db := newFakeRepos()
	db.progress = store.ProgressRecord{
		Level:            1,
		CurrentStreak:    6,
		FreezesRemaining: 1,
		LastStreakDate:   time.Now().AddDate(0, 0, -3).Format("2006-01-02"),
	}

	eng, prog, froze, err := Load(context.Background(), cfg, db, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !froze {
		t.Error("three-day gap with a freeze available should consume it")
	}
	if got := eng.Snapshot().CurrentStreak; got != 6 {
		t.Errorf("streak = %d, want 6 preserved by freeze", got)
	}
	if prog.FreezesRemaining != 0 {
		t.Errorf("freezes = %d, want 0", prog.FreezesRemaining)
	}
	if db.progress.FreezesRemaining != 0 {
		t.Error("freeze consumption not persisted")
	}
	if prog.DailyGoal != cfg.DailyGoal {
		t.Errorf("daily goal = %d, want config default %d", prog.DailyGoal, cfg.DailyGoal)
	}
}
