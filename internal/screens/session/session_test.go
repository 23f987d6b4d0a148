package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/focusbar/internal/config"
	"github.com/abhisek/focusbar/internal/notify"
	"github.com/abhisek/focusbar/internal/orchestrator"
	"github.com/abhisek/focusbar/internal/store"
	"github.com/abhisek/focusbar/internal/streak"
	"github.com/abhisek/focusbar/internal/timer"
)

// errTx always fails; the timer must keep going anyway.
type errTx struct{}

func (errTx) Tx(ctx context.Context, fn func(r store.Repos) error) error {
	return errors.New("db unavailable")
}

func newTestScreen(t *testing.T) *SessionScreen {
	t.Helper()
	cfg := config.Default()
	engine := timer.New(cfg)
	sk := streak.New(streak.State{DailyGoal: cfg.DailyGoal})
	orch := orchestrator.New(&cfg, engine, sk, errTx{}, notify.Nop{}, slog.Default())
	return New(&cfg, engine, orch, store.Repos{}, nil)
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestSpaceTogglesStartPause(t *testing.T) {
	s := newTestScreen(t)

	if s.engine.State() != timer.StateIdle {
		t.Fatalf("state = %v, want idle", s.engine.State())
	}

	s.Update(keyPress(' '))
	if s.engine.State() != timer.StateRunning {
		t.Fatalf("state after space = %v, want running", s.engine.State())
	}

	s.Update(keyPress(' '))
	if s.engine.State() != timer.StatePaused {
		t.Fatalf("state after second space = %v, want paused", s.engine.State())
	}
}

func TestSkipDispatchesCompletion(t *testing.T) {
	s := newTestScreen(t)
	s.Update(keyPress(' '))

	_, cmd := s.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("skip produced no command")
	}

	// The orchestrator advanced to a short break and restarted.
	if got := s.engine.Kind(); got != timer.KindShortBreak {
		t.Errorf("kind after skip = %v, want shortBreak", got)
	}
	if got := s.engine.State(); got != timer.StateRunning {
		t.Errorf("state after skip = %v, want running", got)
	}

	if s.lastResult == nil {
		t.Fatal("no result toast after skip")
	}
	if s.lastResult.PersistErr == nil {
		t.Error("expected persistence advisory with failing store")
	}

	msg := cmd()
	prog, ok := msg.(ProgressMsg)
	if !ok {
		t.Fatalf("cmd msg = %T, want ProgressMsg", msg)
	}
	if prog.Streak != 0 {
		t.Errorf("streak = %d, want 0", prog.Streak)
	}
}

func TestSkipFromIdleIsNoop(t *testing.T) {
	s := newTestScreen(t)

	_, cmd := s.Update(keyPress('s'))
	if cmd != nil {
		t.Error("skip from idle should produce no command")
	}
	if s.lastResult != nil {
		t.Error("skip from idle should produce no toast")
	}
}

func TestResetReturnsToIdle(t *testing.T) {
	s := newTestScreen(t)
	s.Update(keyPress(' '))
	s.Update(keyPress('r'))

	if got := s.engine.State(); got != timer.StateIdle {
		t.Errorf("state after reset = %v, want idle", got)
	}
}

func TestViewShowsAdvisoryOnPersistFailure(t *testing.T) {
	s := newTestScreen(t)
	s.Update(keyPress(' '))
	s.Update(keyPress('s'))

	view := s.View(80, 24)
	if !strings.Contains(view, "Couldn't save") {
		t.Errorf("view missing persistence advisory:\n%s", view)
	}
}

func TestRenderBigCountdown(t *testing.T) {
	out := renderBigCountdown("25:00")
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d rows, want 3", len(lines))
	}
	// Block glyphs are multi-byte, so measure in runes, not bytes.
	want := utf8.RuneCountInString(lines[0])
	for i := 1; i < 3; i++ {
		if got := utf8.RuneCountInString(lines[i]); got != want {
			t.Errorf("row %d width %d != row 0 width %d", i, got, want)
		}
	}
}
