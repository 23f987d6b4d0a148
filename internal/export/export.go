// Package export writes the full data set as one deterministic JSON
// document: sorted keys, two-space indent, stable field order. The
// document shape is part of the app's contract and round-trips.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/abhisek/focusbar/internal/apperr"
	"github.com/abhisek/focusbar/internal/config"
	"github.com/abhisek/focusbar/internal/store"
)

// Document is the top-level export object.
type Document struct {
	ExportDate   string            `json:"exportDate"`
	Sessions     []Session         `json:"sessions"`
	Achievements []Achievement     `json:"achievements"`
	DailyStats   []DailyStat       `json:"dailyStats"`
	Preferences  map[string]string `json:"preferences"`
}

// Session is one exported session record.
type Session struct {
	ID        string  `json:"id"`
	StartTime string  `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Duration  int     `json:"duration"`
	Type      string  `json:"type"`
	Completed bool    `json:"completed"`

	// ReminderTitle is the linked task's title, null when unlinked.
	ReminderTitle *string `json:"reminderTitle"`
	XPEarned      int     `json:"xpEarned"`
}

// Achievement is one exported unlock.
type Achievement struct {
	Type       string `json:"type"`
	UnlockedAt string `json:"unlockedAt"`
}

// DailyStat is one exported daily aggregate.
type DailyStat struct {
	Date               string `json:"date"`
	PomodorosCompleted int    `json:"pomodorosCompleted"`
	TotalFocusMinutes  int    `json:"totalFocusMinutes"`
	XPEarned           int    `json:"xpEarned"`
}

// Source supplies the data to export. store.Repos satisfies the three
// repo fields.
type Source struct {
	Sessions     store.SessionRepo
	Achievements store.AchievementRepo
	Stats        store.StatsRepo
	Progress     store.ProgressRepo
}

// Exporter builds and writes export documents.
type Exporter struct {
	src Source
	cfg config.Config
	now func() time.Time
}

// New creates an Exporter.
func New(src Source, cfg config.Config) *Exporter {
	return &Exporter{src: src, cfg: cfg, now: time.Now}
}

// Build assembles the document from storage.
func (e *Exporter) Build(ctx context.Context) (*Document, error) {
	sessions, err := e.src.Sessions.All(ctx)
	if err != nil {
		return nil, &apperr.DataError{Op: "read sessions", Err: err}
	}
	unlocks, err := e.src.Achievements.All(ctx)
	if err != nil {
		return nil, &apperr.DataError{Op: "read achievements", Err: err}
	}
	stats, err := e.src.Stats.All(ctx)
	if err != nil {
		return nil, &apperr.DataError{Op: "read daily stats", Err: err}
	}
	prog, err := e.src.Progress.Get(ctx)
	if err != nil {
		return nil, &apperr.DataError{Op: "read progress", Err: err}
	}

	doc := &Document{
		ExportDate:   e.now().UTC().Format(time.RFC3339),
		Sessions:     make([]Session, 0, len(sessions)),
		Achievements: make([]Achievement, 0, len(unlocks)),
		DailyStats:   make([]DailyStat, 0, len(stats)),
		Preferences:  preferences(e.cfg, prog),
	}
	for _, s := range sessions {
		doc.Sessions = append(doc.Sessions, exportSession(s))
	}
	for _, a := range unlocks {
		doc.Achievements = append(doc.Achievements, Achievement{
			Type:       a.AchievementID,
			UnlockedAt: a.UnlockedAt.UTC().Format(time.RFC3339),
		})
	}
	for _, d := range stats {
		doc.DailyStats = append(doc.DailyStats, DailyStat{
			Date:               d.Date,
			PomodorosCompleted: d.PomodorosCompleted,
			TotalFocusMinutes:  d.TotalFocusMinutes,
			XPEarned:           d.XPEarned,
		})
	}
	return doc, nil
}

// Encode renders the document as indented JSON and validates it against
// the embedded schema. Failures are encode-stage export errors.
func (e *Exporter) Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, &apperr.ExportError{Stage: apperr.ExportEncode, Err: err}
	}
	data := buf.Bytes()
	if err := validateDocument(data); err != nil {
		return nil, &apperr.ExportError{Stage: apperr.ExportEncode, Err: err}
	}
	return data, nil
}

// WriteFile exports everything to path. Encode and write failures carry
// distinct stages so the caller can report which half failed.
func (e *Exporter) WriteFile(ctx context.Context, path string) error {
	doc, err := e.Build(ctx)
	if err != nil {
		return err
	}
	data, err := e.Encode(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &apperr.ExportError{Stage: apperr.ExportWrite, Err: err}
	}
	return nil
}

// DefaultFilename returns the dated export filename.
func (e *Exporter) DefaultFilename() string {
	return fmt.Sprintf("focusbar-export-%s.json", e.now().Format("2006-01-02"))
}

func exportSession(s store.SessionRecord) Session {
	out := Session{
		ID:            s.SID,
		StartTime:     s.StartTime.UTC().Format(time.RFC3339),
		Duration:      s.DurationSecs,
		Type:          s.Kind,
		Completed:     s.Completed,
		ReminderTitle: s.ReminderTitle,
		XPEarned:      s.XPEarned,
	}
	if s.EndTime != nil {
		v := s.EndTime.UTC().Format(time.RFC3339)
		out.EndTime = &v
	}
	return out
}

// preferences flattens the configuration and persisted counters into
// the string-keyed preference map.
func preferences(cfg config.Config, prog *store.ProgressRecord) map[string]string {
	return map[string]string{
		"focusBar.timer.pomodoroDuration":       strconv.Itoa(cfg.FocusMinutes),
		"focusBar.timer.shortBreakDuration":     strconv.Itoa(cfg.ShortBreakMinutes),
		"focusBar.timer.longBreakDuration":      strconv.Itoa(cfg.LongBreakMinutes),
		"focusBar.timer.sessionsUntilLongBreak": strconv.Itoa(cfg.SessionsUntilLongBreak),
		"focusBar.gamification.dailyGoal":       strconv.Itoa(cfg.DailyGoal),
		"focusBar.gamification.currentXP":       strconv.Itoa(prog.XP),
		"focusBar.gamification.currentLevel":    strconv.Itoa(prog.Level),
		"focusBar.gamification.currentStreak":   strconv.Itoa(prog.CurrentStreak),
	}
}
