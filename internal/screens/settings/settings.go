// Package settings implements the options screen. Duration values are
// shown read-only (they come from the environment); the display mode and
// notification toggles can be changed for the running process.
package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/focusbar/internal/config"
	"github.com/abhisek/focusbar/internal/router"
	"github.com/abhisek/focusbar/internal/screen"
	"github.com/abhisek/focusbar/internal/store"
	"github.com/abhisek/focusbar/internal/ui/components"
	"github.com/abhisek/focusbar/internal/ui/layout"
	"github.com/abhisek/focusbar/internal/ui/theme"
)

// displayModes is the cycle order for the display-mode setting.
var displayModes = []config.DisplayMode{
	config.DisplayTimerText,
	config.DisplayIcon,
	config.DisplayProgressBar,
}

// maxDailyGoal caps the daily-goal cycle.
const maxDailyGoal = 12

// SettingsScreen shows and edits the runtime options.
type SettingsScreen struct {
	cfg      *config.Config
	progress store.ProgressRepo
	menu     components.Menu
	errMsg   string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a new SettingsScreen. The config pointer is shared with
// the rest of the app so toggles take effect immediately; the daily goal
// is additionally persisted as the Progress-row override.
func New(cfg *config.Config, progress store.ProgressRepo) *SettingsScreen {
	s := &SettingsScreen{cfg: cfg, progress: progress}
	s.menu = components.NewMenu(s.buildItems())
	return s
}

type goalSavedMsg struct {
	Err error
}

// buildItems renders the toggle rows with their current values. Actions
// mutate the shared config; labels are rebuilt after every update.
func (s *SettingsScreen) buildItems() []components.MenuItem {
	toggle := func(mutate func()) func() tea.Cmd {
		return func() tea.Cmd {
			mutate()
			return nil
		}
	}

	return []components.MenuItem{
		{
			Label: fmt.Sprintf("Display mode       %s", displayModeLabel(s.cfg.DisplayMode)),
			Action: toggle(func() {
				s.cfg.DisplayMode = nextDisplayMode(s.cfg.DisplayMode)
			}),
		},
		{
			Label: fmt.Sprintf("Banners            %s", onOff(s.cfg.BannerEnabled)),
			Action: toggle(func() {
				s.cfg.BannerEnabled = !s.cfg.BannerEnabled
			}),
		},
		{
			Label: fmt.Sprintf("Sound              %s", onOff(s.cfg.SoundEnabled)),
			Action: toggle(func() {
				s.cfg.SoundEnabled = !s.cfg.SoundEnabled
			}),
		},
		{
			Label:  fmt.Sprintf("Daily goal         %d Pomodoros", s.cfg.DailyGoal),
			Action: s.cycleDailyGoal,
		},
	}
}

// cycleDailyGoal advances the goal and persists it as the Progress-row
// override so the orchestrator picks it up on the next completion.
func (s *SettingsScreen) cycleDailyGoal() tea.Cmd {
	goal := s.cfg.DailyGoal%maxDailyGoal + 1
	s.cfg.DailyGoal = goal
	if s.progress == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		prog, err := s.progress.Get(ctx)
		if err != nil {
			return goalSavedMsg{Err: err}
		}
		prog.DailyGoal = goal
		return goalSavedMsg{Err: s.progress.Save(ctx, prog)}
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Options"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if saved, ok := msg.(goalSavedMsg); ok {
		if saved.Err != nil {
			s.errMsg = "Couldn't save the daily goal."
		} else {
			s.errMsg = ""
		}
		return s, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	// Labels embed the current values; refresh them after any toggle.
	s.menu.Items = s.buildItems()
	return s, cmd
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 44)))))
	b.WriteString("\n")

	// Durations are environment-driven; shown for reference.
	info := []string{
		fmt.Sprintf("Focus              %d min", s.cfg.FocusMinutes),
		fmt.Sprintf("Short break        %d min", s.cfg.ShortBreakMinutes),
		fmt.Sprintf("Long break         %d min", s.cfg.LongBreakMinutes),
		fmt.Sprintf("Long break every   %d sessions", s.cfg.SessionsUntilLongBreak),
		fmt.Sprintf("Daily goal         %d Pomodoros", s.cfg.DailyGoal),
	}
	for _, row := range info {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+row)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Durations are set via FOCUSBAR_* environment variables.")))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
	}

	return b.String()
}

func nextDisplayMode(m config.DisplayMode) config.DisplayMode {
	for i, mode := range displayModes {
		if mode == m {
			return displayModes[(i+1)%len(displayModes)]
		}
	}
	return displayModes[0]
}

func displayModeLabel(m config.DisplayMode) string {
	switch m {
	case config.DisplayIcon:
		return "Icon"
	case config.DisplayProgressBar:
		return "Progress bar"
	default:
		return "Timer text"
	}
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
