// Package stats implements the progress dashboard: level, XP, streak
// and the recent daily history.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/focusbar/internal/config"
	"github.com/abhisek/focusbar/internal/gamification"
	"github.com/abhisek/focusbar/internal/router"
	"github.com/abhisek/focusbar/internal/screen"
	"github.com/abhisek/focusbar/internal/store"
	"github.com/abhisek/focusbar/internal/streak"
	"github.com/abhisek/focusbar/internal/ui/components"
	"github.com/abhisek/focusbar/internal/ui/layout"
	"github.com/abhisek/focusbar/internal/ui/theme"
)

// maxHistoryRows caps the recent-days table.
const maxHistoryRows = 14

var timeNow = time.Now

type statsLoadedMsg struct {
	Progress *store.ProgressRecord
	Days     []store.DailyStatRecord
	Today    int
	Err      error
}

// StatsScreen displays the progress dashboard.
type StatsScreen struct {
	repos store.Repos
	cfg   config.Config

	progress *store.ProgressRecord
	days     []store.DailyStatRecord
	today    int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(repos store.Repos, cfg config.Config) *StatsScreen {
	return &StatsScreen{repos: repos, cfg: cfg}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		prog, err := s.repos.Progress.Get(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		days, err := s.repos.Stats.All(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		today := 0
		if d, err := s.repos.Stats.Day(ctx, streak.Today(timeNow())); err == nil && d != nil {
			today = d.PomodorosCompleted
		}

		return statsLoadedMsg{Progress: prog, Days: days, Today: today}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.progress = msg.Progress
			s.days = msg.Days
			s.today = msg.Today
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}

	var b strings.Builder
	b.WriteString("\n")

	prog := s.progress
	level := gamification.LevelForXP(prog.XP)
	next := gamification.XPForNextLevel(prog.XP)

	// Level card: title, then XP progress toward the next threshold.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("Level %d — %s", level.Level, level.Title))))
	b.WriteString("\n")

	pct := 1.0
	if next > level.XPRequired {
		pct = float64(prog.XP-level.XPRequired) / float64(next-level.XPRequired)
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("%d / %d XP", prog.XP, next), pct, false, 32)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Streak line.
	streakLine := fmt.Sprintf("★ %d day streak   ❄ %d freeze", prog.CurrentStreak, prog.FreezesRemaining)
	if prog.FreezesRemaining != 1 {
		streakLine += "s"
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(streakLine)))
	b.WriteString("\n")

	goal := prog.DailyGoal
	if goal <= 0 {
		goal = s.cfg.DailyGoal
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("Today: %d / %d Pomodoros", s.today, goal))))
	b.WriteString("\n\n")

	if len(s.days) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("No sessions yet. Start your first Pomodoro!")))
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 44)))))
	b.WriteString("\n")

	// Recent days, newest first.
	start := len(s.days) - maxHistoryRows
	if start < 0 {
		start = 0
	}
	recent := s.days[start:]
	for i := len(recent) - 1; i >= 0; i-- {
		d := recent[i]
		mark := " "
		if d.StreakMaintained {
			mark = "★"
		}
		line := fmt.Sprintf("%s  %s  %2d 🍅  %3d min  %4d XP",
			d.Date, mark, d.PomodorosCompleted, d.TotalFocusMinutes, d.XPEarned)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
