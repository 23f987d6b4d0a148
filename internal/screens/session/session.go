// Package session implements the timer screen: the live countdown, the
// session controls, and the completion toasts for XP, unlocks and level
// ups.
package session

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/focusbar/internal/config"
	"github.com/abhisek/focusbar/internal/orchestrator"
	"github.com/abhisek/focusbar/internal/reminders"
	"github.com/abhisek/focusbar/internal/router"
	"github.com/abhisek/focusbar/internal/screen"
	"github.com/abhisek/focusbar/internal/screens/achievements"
	remindersscreen "github.com/abhisek/focusbar/internal/screens/reminders"
	"github.com/abhisek/focusbar/internal/screens/settings"
	"github.com/abhisek/focusbar/internal/screens/stats"
	"github.com/abhisek/focusbar/internal/store"
	"github.com/abhisek/focusbar/internal/timer"
	"github.com/abhisek/focusbar/internal/ui/layout"
)

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// ProgressMsg reports new progression totals after a completion. The
// app model consumes it to refresh the header.
type ProgressMsg struct {
	Level  int
	Streak int
}

// wakeGapThreshold is the tick gap treated as a sleep or suspend rather
// than ordinary scheduling jitter.
const wakeGapThreshold = 3 * time.Second

// toastTicks is how many ticks a completion toast stays visible.
const toastTicks = 8

// SessionScreen is the timer screen, the root of the screen stack.
type SessionScreen struct {
	cfg    *config.Config
	engine *timer.Engine
	orch   *orchestrator.Orchestrator
	repos  store.Repos
	tasks  *reminders.Service

	lastTick time.Time

	lastResult *orchestrator.Result
	toastTTL   int
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates the timer screen with injected dependencies.
func New(cfg *config.Config, engine *timer.Engine, orch *orchestrator.Orchestrator, repos store.Repos, tasks *reminders.Service) *SessionScreen {
	return &SessionScreen{
		cfg:    cfg,
		engine: engine,
		orch:   orch,
		repos:  repos,
		tasks:  tasks,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (s *SessionScreen) Title() string {
	return ""
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	primary := layout.KeyHint{Key: "Space", Description: "Start"}
	if s.engine.State() == timer.StateRunning {
		primary.Description = "Pause"
	}
	return []layout.KeyHint{
		primary,
		{Key: "S", Description: "Skip"},
		{Key: "T", Description: "Tasks"},
		{Key: "D", Description: "Stats"},
		{Key: "A", Description: "Awards"},
		{Key: "O", Description: "Options"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick(time.Time(msg))

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// handleTick advances the countdown. A large gap between ticks means the
// process was suspended: the wake path re-derives remaining time from
// the wall clock, and a session that ran out while asleep completes
// immediately.
func (s *SessionScreen) handleTick(now time.Time) (screen.Screen, tea.Cmd) {
	slept := !s.lastTick.IsZero() && now.Sub(s.lastTick) > wakeGapThreshold
	s.lastTick = now

	var completion *timer.Completion
	if slept {
		completion = s.engine.HandleWake()
	} else {
		_, completion = s.engine.Tick()
	}

	if s.toastTTL > 0 {
		s.toastTTL--
		if s.toastTTL == 0 {
			s.lastResult = nil
		}
	}

	if completion == nil {
		return s, tickCmd()
	}
	return s, tea.Batch(tickCmd(), s.dispatch(completion))
}

// dispatch applies a completion through the orchestrator and reports the
// new progression totals upward.
func (s *SessionScreen) dispatch(c *timer.Completion) tea.Cmd {
	res := s.orch.HandleCompletion(context.Background(), c)
	if res == nil {
		return nil
	}
	s.lastResult = res
	s.toastTTL = toastTicks
	return func() tea.Msg {
		return ProgressMsg{Level: res.Level, Streak: res.Streak}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case " ", "space":
		if s.engine.State() == timer.StateRunning {
			s.engine.Pause()
		} else {
			s.engine.Start(0)
			s.lastTick = time.Now()
		}
		return s, nil

	case "s":
		if completion := s.engine.Skip(); completion != nil {
			return s, s.dispatch(completion)
		}
		return s, nil

	case "r":
		s.engine.Reset()
		return s, nil

	case "t":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: remindersscreen.New(s.tasks, s.orch)}
		}

	case "d":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: stats.New(s.repos, *s.cfg)}
		}

	case "a":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: achievements.New(s.repos.Achievements)}
		}

	case "o":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: settings.New(s.cfg, s.repos.Progress)}
		}
	}
	return s, nil
}
