// Package orchestrator wires the timer, gamification and streak engines
// to storage and notifications. It is the sole writer of the persisted
// counters: every completion event is applied in one transaction so an
// interrupted update cannot leave XP, streak and the daily aggregate
// disagreeing.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/focusbar/internal/apperr"
	"github.com/abhisek/focusbar/internal/config"
	"github.com/abhisek/focusbar/internal/gamification"
	"github.com/abhisek/focusbar/internal/notify"
	"github.com/abhisek/focusbar/internal/store"
	"github.com/abhisek/focusbar/internal/streak"
	"github.com/abhisek/focusbar/internal/timer"
)

// TxRunner runs a function with repositories bound to one transaction.
// *store.Store satisfies it.
type TxRunner interface {
	Tx(ctx context.Context, fn func(r store.Repos) error) error
}

// Result summarizes what one completion event did. The UI renders it:
// XP toast, unlock banners, and the persistence advisory if any.
type Result struct {
	Kind             timer.Kind
	NextKind         timer.Kind
	XP               gamification.XPResult
	Level            int
	LeveledUp        bool
	LevelTitle       string
	DailyGoalJustMet bool
	Streak           int
	Unlocks          []gamification.Unlock

	// PersistErr is advisory: the timer has already advanced and
	// restarted when it is set.
	PersistErr error
}

// Orchestrator consumes completion events from the timer engine. The
// config pointer is shared with the settings screen so runtime toggles
// take effect immediately.
type Orchestrator struct {
	cfg      *config.Config
	timer    *timer.Engine
	streak   *streak.Engine
	db       TxRunner
	notifier notify.Notifier
	log      *slog.Logger
	now      func() time.Time

	// freezeUsed remembers whether a streak freeze was consumed this
	// process lifetime; it feeds the streak-saver unlock predicate.
	freezeUsed bool

	// linked is the reminder the user attached to the running focus
	// session, nil when none.
	linked *store.ReminderRecord
}

// New wires an orchestrator. The streak engine must already carry the
// persisted counters (see Load).
func New(cfg *config.Config, tm *timer.Engine, sk *streak.Engine, db TxRunner, n notify.Notifier, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		cfg:      cfg,
		timer:    tm,
		streak:   sk,
		db:       db,
		notifier: n,
		log:      log,
		now:      time.Now,
	}
}

// Load reads the persisted counters, runs the streak continuity check,
// and persists any change it made. Called once at startup.
func Load(ctx context.Context, cfg config.Config, db TxRunner, log *slog.Logger) (*streak.Engine, *store.ProgressRecord, bool, error) {
	var prog *store.ProgressRecord
	err := db.Tx(ctx, func(r store.Repos) error {
		var err error
		prog, err = r.Progress.Get(ctx)
		return err
	})
	if err != nil {
		return nil, nil, false, fmt.Errorf("load progress: %w", err)
	}

	if prog.DailyGoal <= 0 {
		prog.DailyGoal = cfg.DailyGoal
	}

	eng := streak.New(streak.State{
		CurrentStreak:       prog.CurrentStreak,
		FreezesRemaining:    prog.FreezesRemaining,
		LastStreakDate:      prog.LastStreakDate,
		LastFreezeResetWeek: prog.LastFreezeResetWeek,
		DailyGoal:           prog.DailyGoal,
	})

	outcome := eng.CheckAndUpdate()
	froze := outcome == streak.OutcomeFreezeConsumed
	if outcome != streak.OutcomeIntact || eng.Snapshot() != streakStateOf(prog) {
		s := eng.Snapshot()
		prog.CurrentStreak = s.CurrentStreak
		prog.FreezesRemaining = s.FreezesRemaining
		prog.LastFreezeResetWeek = s.LastFreezeResetWeek
		saveErr := db.Tx(ctx, func(r store.Repos) error {
			return r.Progress.Save(ctx, prog)
		})
		if saveErr != nil && log != nil {
			log.Warn("persist streak check failed", "err", saveErr)
		}
	}
	return eng, prog, froze, nil
}

func streakStateOf(prog *store.ProgressRecord) streak.State {
	return streak.State{
		CurrentStreak:       prog.CurrentStreak,
		FreezesRemaining:    prog.FreezesRemaining,
		LastStreakDate:      prog.LastStreakDate,
		LastFreezeResetWeek: prog.LastFreezeResetWeek,
		DailyGoal:           prog.DailyGoal,
	}
}

// MarkFreezeUsed records that a freeze was consumed, for the
// streak-saver unlock.
func (o *Orchestrator) MarkFreezeUsed() {
	o.freezeUsed = true
}

// LinkReminder attaches a task to the next focus completion; nil clears
// the link.
func (o *Orchestrator) LinkReminder(rec *store.ReminderRecord) {
	o.linked = rec
}

// LinkedReminder returns the attached task, or nil.
func (o *Orchestrator) LinkedReminder() *store.ReminderRecord {
	return o.linked
}

// HandleCompletion applies one completion event end to end: persist the
// session and every derived counter in one transaction, then advance and
// restart the timer. Persistence failure never stops the timer; it is
// reported in Result.PersistErr as an advisory.
func (o *Orchestrator) HandleCompletion(ctx context.Context, c *timer.Completion) *Result {
	if c == nil {
		return nil
	}

	res := &Result{Kind: c.Kind}
	now := o.now()

	// The transactional body mutates the streak engine; if the Tx rolls
	// back the counters must rewind with it, or the next goal edge
	// would double-increment.
	streakBefore := o.streak.Snapshot()
	err := o.db.Tx(ctx, func(r store.Repos) error {
		return o.applyCompletion(ctx, r, c, now, res)
	})
	if err != nil {
		o.streak.Restore(streakBefore)
		o.log.Warn("persist completion failed", "kind", c.Kind, "err", err)
		res.PersistErr = &apperr.DataError{Op: "persist completion", Err: err}
	}

	// Steps below run regardless of persistence outcome: the timer keeps
	// going no matter what storage did.
	o.timer.AdvanceToNextSession()
	res.NextKind = o.timer.Kind()

	if res.PersistErr == nil {
		o.publish(res)
	}
	if o.cfg.BannerEnabled {
		if err := o.notifier.SessionComplete(c.Kind, res.NextKind); err != nil {
			o.log.Debug("session notification failed", "err", err)
		}
	}
	if o.cfg.SoundEnabled {
		if err := o.notifier.PlayCompletionSound(); err != nil {
			o.log.Debug("completion sound failed", "err", err)
		}
	}

	o.timer.Start(0)
	return res
}

// applyCompletion is the transactional body: session record, XP, level,
// streak credit, unlocks, daily aggregate and the linked-reminder note.
func (o *Orchestrator) applyCompletion(ctx context.Context, r store.Repos, c *timer.Completion, now time.Time, res *Result) error {
	countBefore, err := r.Sessions.CountFocusOn(ctx, now)
	if err != nil {
		return err
	}
	countToday := countBefore
	if c.Kind == timer.KindFocus {
		countToday++
	}

	prog, err := r.Progress.Get(ctx)
	if err != nil {
		return err
	}
	goal := prog.DailyGoal
	if goal <= 0 {
		goal = o.cfg.DailyGoal
	}

	// Edge-triggered: true only on the session that reaches the goal.
	res.DailyGoalJustMet = c.Kind == timer.KindFocus && countToday == goal

	sk := o.streak.Snapshot()
	res.XP = gamification.CalculateXP(c.Kind, sk.CurrentStreak, prog.Level, res.DailyGoalJustMet)

	rec := store.SessionRecord{
		SID:          uuid.NewString(),
		StartTime:    now.Add(-time.Duration(c.DurationSecs) * time.Second),
		EndTime:      &now,
		DurationSecs: c.DurationSecs,
		Kind:         string(c.Kind),
		Completed:    true,
		XPEarned:     res.XP.TotalXP,
	}
	if o.linked != nil && c.Kind == timer.KindFocus {
		rid, title := o.linked.RID, o.linked.Title
		rec.ReminderID = &rid
		rec.ReminderTitle = &title
	}
	if err := r.Sessions.Append(ctx, rec); err != nil {
		return err
	}

	startLevel := prog.Level
	prog.XP += res.XP.TotalXP
	prog.Level = gamification.LevelForXP(prog.XP).Level

	if res.DailyGoalJustMet {
		o.streak.Increment()
	}

	unlocks, err := o.evaluateUnlocks(ctx, r, prog, countToday, now)
	if err != nil {
		return err
	}
	res.Unlocks = unlocks
	for _, u := range unlocks {
		prog.XP += u.XPBonus
	}

	// Bonus XP can push a second threshold; the final level wins.
	level := gamification.LevelForXP(prog.XP)
	prog.Level = level.Level
	res.Level = level.Level
	res.LevelTitle = level.Title
	res.LeveledUp = level.Level > startLevel

	minutes := 0
	pomodoros := 0
	if c.Kind == timer.KindFocus {
		minutes = c.DurationSecs / 60
		pomodoros = 1
	}
	xpDelta := res.XP.TotalXP
	for _, u := range unlocks {
		xpDelta += u.XPBonus
	}
	date := streak.Today(now)
	if err := r.Stats.Apply(ctx, date, pomodoros, minutes, xpDelta, res.DailyGoalJustMet); err != nil {
		return err
	}

	if rec.ReminderID != nil && minutes > 0 {
		note := fmt.Sprintf("%d min on %s", minutes, date)
		if err := r.Reminders.AppendNote(ctx, *rec.ReminderID, note); err != nil {
			return err
		}
	}

	s := o.streak.Snapshot()
	prog.CurrentStreak = s.CurrentStreak
	prog.FreezesRemaining = s.FreezesRemaining
	prog.LastStreakDate = s.LastStreakDate
	prog.LastFreezeResetWeek = s.LastFreezeResetWeek
	res.Streak = s.CurrentStreak
	return r.Progress.Save(ctx, prog)
}

// evaluateUnlocks builds the metrics snapshot from storage and records
// any newly satisfied catalog entries.
func (o *Orchestrator) evaluateUnlocks(ctx context.Context, r store.Repos, prog *store.ProgressRecord, countToday int, now time.Time) ([]gamification.Unlock, error) {
	metrics, err := r.Sessions.Metrics(ctx)
	if err != nil {
		return nil, err
	}
	unlocked, err := r.Achievements.UnlockedSet(ctx)
	if err != nil {
		return nil, err
	}

	m := gamification.Metrics{
		TotalPomodoros:  metrics.TotalFocusCompleted,
		CurrentStreak:   o.streak.Snapshot().CurrentStreak,
		DailyPomodoros:  countToday,
		SessionHour:     now.Hour(),
		WeekendSessions: metrics.WeekendFocusCount,
		LinkedSessions:  metrics.LinkedCompleted,
		CurrentLevel:    prog.Level,
		UsedFreeze:      o.freezeUsed,
	}

	unlocks := gamification.EvaluateAchievements(m, unlocked)
	for _, u := range unlocks {
		err := r.Achievements.RecordUnlock(ctx, store.AchievementRecord{
			AchievementID: u.AchievementID,
			UnlockedAt:    now,
		})
		if err != nil {
			return nil, err
		}
	}
	return unlocks, nil
}

// publish sends the progression banners for a persisted result.
func (o *Orchestrator) publish(res *Result) {
	if res.DailyGoalJustMet {
		if err := o.notifier.DailyGoalMet(res.Streak); err != nil {
			o.log.Debug("goal notification failed", "err", err)
		}
	}
	if res.LeveledUp {
		if err := o.notifier.LevelUp(res.Level, res.LevelTitle); err != nil {
			o.log.Debug("level notification failed", "err", err)
		}
	}
	for _, u := range res.Unlocks {
		if err := o.notifier.AchievementUnlocked(u.Title, u.XPBonus); err != nil {
			o.log.Debug("unlock notification failed", "err", err)
		}
	}
}
