package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/focusbar/internal/apperr"
	"github.com/abhisek/focusbar/internal/config"
	"github.com/abhisek/focusbar/internal/store"
)

type fakeSource struct {
	sessions []store.SessionRecord
	unlocks  []store.AchievementRecord
	stats    []store.DailyStatRecord
	progress store.ProgressRecord
}

func (f *fakeSource) Append(context.Context, store.SessionRecord) error { return nil }
func (f *fakeSource) CountFocusOn(context.Context, time.Time) (int, error) {
	return 0, nil
}
func (f *fakeSource) Metrics(context.Context) (store.SessionMetrics, error) {
	return store.SessionMetrics{}, nil
}
func (f *fakeSource) All(context.Context) ([]store.SessionRecord, error) {
	return f.sessions, nil
}

type fakeAchievements fakeSource

func (f *fakeAchievements) UnlockedSet(context.Context) (map[string]bool, error) { return nil, nil }
func (f *fakeAchievements) RecordUnlock(context.Context, store.AchievementRecord) error {
	return nil
}
func (f *fakeAchievements) All(context.Context) ([]store.AchievementRecord, error) {
	return f.unlocks, nil
}

type fakeStats fakeSource

func (f *fakeStats) Apply(context.Context, string, int, int, int, bool) error { return nil }
func (f *fakeStats) Day(context.Context, string) (*store.DailyStatRecord, error) {
	return nil, nil
}
func (f *fakeStats) All(context.Context) ([]store.DailyStatRecord, error) {
	return f.stats, nil
}

type fakeProgress fakeSource

func (f *fakeProgress) Get(context.Context) (*store.ProgressRecord, error) {
	p := f.progress
	return &p, nil
}
func (f *fakeProgress) Save(context.Context, *store.ProgressRecord) error { return nil }

func newExporter(f *fakeSource) *Exporter {
	e := New(Source{
		Sessions:     f,
		Achievements: (*fakeAchievements)(f),
		Stats:        (*fakeStats)(f),
		Progress:     (*fakeProgress)(f),
	}, config.Default())
	e.now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	}
	return e
}

func seededSource() *fakeSource {
	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	end := start.Add(25 * time.Minute)
	title := "Write report"
	return &fakeSource{
		sessions: []store.SessionRecord{
			{SID: "a", StartTime: start, EndTime: &end, DurationSecs: 1500, Kind: store.KindFocus, Completed: true, ReminderTitle: &title, XPEarned: 26},
			{SID: "b", StartTime: end, DurationSecs: 300, Kind: store.KindShortBreak, Completed: true, XPEarned: 5},
		},
		unlocks: []store.AchievementRecord{
			{AchievementID: "first_focus", UnlockedAt: end},
		},
		stats: []store.DailyStatRecord{
			{Date: "2026-08-30", PomodorosCompleted: 1, TotalFocusMinutes: 25, XPEarned: 41},
		},
		progress: store.ProgressRecord{XP: 41, Level: 1, CurrentStreak: 2},
	}
}

func TestExportRoundTrip(t *testing.T) {
	e := newExporter(seededSource())

	doc, err := e.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	data, err := e.Encode(doc)
	if err != nil {
		t.Fatal(err)
	}

	var decoded Document
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded.Sessions) != 2 || len(decoded.Achievements) != 1 || len(decoded.DailyStats) != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1",
			len(decoded.Sessions), len(decoded.Achievements), len(decoded.DailyStats))
	}

	s := decoded.Sessions[0]
	if s.ID != "a" || s.Type != "focus" || s.Duration != 1500 {
		t.Errorf("bad session: %+v", s)
	}
	if s.ReminderTitle == nil || *s.ReminderTitle != "Write report" {
		t.Errorf("reminderTitle = %v", s.ReminderTitle)
	}
	if decoded.Sessions[1].EndTime != nil || decoded.Sessions[1].ReminderTitle != nil {
		t.Error("unset optionals should decode as nil")
	}
	if decoded.Achievements[0].Type != "first_focus" {
		t.Errorf("achievement type = %q", decoded.Achievements[0].Type)
	}
	if got := decoded.Preferences["focusBar.gamification.currentXP"]; got != "41" {
		t.Errorf("currentXP pref = %q, want 41", got)
	}
}

func TestExportDeterministic(t *testing.T) {
	e := newExporter(seededSource())
	ctx := context.Background()

	first, err := e.Build(ctx)
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Build(ctx)
	if err != nil {
		t.Fatal(err)
	}

	a, err := e.Encode(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.Encode(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two exports of the same data differ")
	}
}

func TestEncodeRejectsBadKind(t *testing.T) {
	e := newExporter(&fakeSource{})
	doc := &Document{
		ExportDate: "2026-08-31T12:00:00Z",
		Sessions: []Session{
			{ID: "x", StartTime: "2026-08-31T09:00:00Z", Type: "nap", Duration: 60},
		},
		Achievements: []Achievement{},
		DailyStats:   []DailyStat{},
		Preferences:  map[string]string{},
	}

	_, err := e.Encode(doc)
	var xerr *apperr.ExportError
	if !errors.As(err, &xerr) {
		t.Fatalf("err = %v, want ExportError", err)
	}
	if xerr.Stage != apperr.ExportEncode {
		t.Errorf("stage = %v, want encode", xerr.Stage)
	}
}

func TestWriteFileStages(t *testing.T) {
	e := newExporter(seededSource())
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), e.DefaultFilename())
	if err := e.WriteFile(ctx, path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}

	err := e.WriteFile(ctx, filepath.Join(t.TempDir(), "missing", "out.json"))
	var xerr *apperr.ExportError
	if !errors.As(err, &xerr) {
		t.Fatalf("err = %v, want ExportError", err)
	}
	if xerr.Stage != apperr.ExportWrite {
		t.Errorf("stage = %v, want write", xerr.Stage)
	}
}

func TestDefaultFilename(t *testing.T) {
	e := newExporter(&fakeSource{})
	if got := e.DefaultFilename(); got != "focusbar-export-2026-08-31.json" {
		t.Errorf("filename = %q", got)
	}
}
