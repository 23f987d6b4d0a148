package coach

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/focusbar/internal/llm"
	"github.com/abhisek/focusbar/internal/store"
)

type stubStats struct {
	days []store.DailyStatRecord
}

func (s *stubStats) Apply(context.Context, string, int, int, int, bool) error { return nil }
func (s *stubStats) Day(context.Context, string) (*store.DailyStatRecord, error) {
	return nil, nil
}
func (s *stubStats) All(context.Context) ([]store.DailyStatRecord, error) {
	return s.days, nil
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 31, 18, 0, 0, 0, time.Local)
}

func TestWeeklyRecap(t *testing.T) {
	mock := llm.NewMockProvider(llm.RecapResponse(
		"Strong week", "You logged 9 pomodoros.", "Protect your morning block.",
	))
	stats := &stubStats{days: []store.DailyStatRecord{
		{Date: "2026-08-29", PomodorosCompleted: 4, TotalFocusMinutes: 100, XPEarned: 160, StreakMaintained: true},
		{Date: "2026-08-30", PomodorosCompleted: 5, TotalFocusMinutes: 125, XPEarned: 210, StreakMaintained: true},
		{Date: "2026-08-20", PomodorosCompleted: 3, TotalFocusMinutes: 75, XPEarned: 90},
	}}
	svc := New(mock, stats)
	svc.now = fixedNow

	recap, err := svc.WeeklyRecap(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if recap.Headline != "Strong week" || recap.Suggestion == "" {
		t.Errorf("bad recap: %+v", recap)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	prompt := req.Messages[0].Content
	if !strings.Contains(prompt, "2026-08-29: 4 pomodoros") {
		t.Errorf("prompt missing day line:\n%s", prompt)
	}
	// The stale day from eleven days ago must be excluded.
	if strings.Contains(prompt, "2026-08-20") {
		t.Errorf("prompt includes day outside the week:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Totals: 9 pomodoros, 225 focus minutes") {
		t.Errorf("prompt missing totals:\n%s", prompt)
	}
	if req.Schema == nil || req.Schema.Name != "weekly-recap" {
		t.Error("request missing recap schema")
	}
}

func TestWeeklyRecap_NoData(t *testing.T) {
	svc := New(llm.NewMockProvider(), &stubStats{})
	svc.now = fixedNow

	if _, err := svc.WeeklyRecap(context.Background()); err == nil {
		t.Fatal("expected error with no recorded days")
	}
}
