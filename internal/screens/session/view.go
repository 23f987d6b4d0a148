package session

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/focusbar/internal/apperr"
	"github.com/abhisek/focusbar/internal/timer"
	"github.com/abhisek/focusbar/internal/ui/layout"
	"github.com/abhisek/focusbar/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	kind := s.engine.Kind()
	state := s.engine.State()

	// Kind line.
	kindLine := fmt.Sprintf("%s %s", kind.Icon(), kind.DisplayName())
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Secondary).Bold(true).
		Render(kindLine))
	b.WriteString("\n\n")

	// Countdown. Idle shows the planned duration of the upcoming session.
	secs := s.engine.Remaining()
	if state == timer.StateIdle {
		secs = kind.Minutes(*s.cfg) * 60
	}
	countdown := renderBigCountdown(layout.FormatCountdown(secs))
	countdownStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	switch state {
	case timer.StateRunning:
		countdownStyle = countdownStyle.Foreground(theme.Primary)
	case timer.StatePaused:
		countdownStyle = countdownStyle.Foreground(theme.Accent)
	}
	for _, line := range strings.Split(countdown, "\n") {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, countdownStyle.Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// State line.
	switch state {
	case timer.StateRunning:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Running.Render("● running")))
	case timer.StatePaused:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Paused.Render("‖ paused")))
	default:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("press Space to start")))
	}
	b.WriteString("\n\n")

	// Cycle dots: one per focus session until the long break.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderCycleDots()))
	b.WriteString("\n")

	if linked := s.orch.LinkedReminder(); linked != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render(fmt.Sprintf("Working on: %s", linked.Title))))
		b.WriteString("\n")
	}

	if s.lastResult != nil {
		b.WriteString("\n")
		b.WriteString(s.renderToast(width))
	}

	return b.String()
}

// renderCycleDots shows the position within the focus cycle.
func (s *SessionScreen) renderCycleDots() string {
	total := s.cfg.SessionsUntilLongBreak
	done := s.engine.CompletedFocusInCycle()

	var b strings.Builder
	for i := 0; i < total; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if i < done {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("●"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("○"))
		}
	}
	return b.String()
}

// renderToast shows the most recent completion result.
func (s *SessionScreen) renderToast(width int) string {
	res := s.lastResult
	var b strings.Builder

	writeLine := func(style lipgloss.Style, text string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text)))
		b.WriteString("\n")
	}

	writeLine(lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
		fmt.Sprintf("%s %s complete  +%d XP", res.Kind.Icon(), res.Kind.DisplayName(), res.XP.TotalXP))

	if res.DailyGoalJustMet {
		writeLine(lipgloss.NewStyle().Foreground(theme.Accent),
			fmt.Sprintf("★ Daily goal met! %d day streak", res.Streak))
	}
	for _, u := range res.Unlocks {
		writeLine(theme.Unlocked, fmt.Sprintf("🏆 %s  +%d XP", u.Title, u.XPBonus))
	}
	if res.LeveledUp {
		writeLine(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
			fmt.Sprintf("⬆ Level %d: %s", res.Level, res.LevelTitle))
	}
	if res.PersistErr != nil {
		msg := "Couldn't save this session."
		var adv apperr.Advisory
		if errors.As(res.PersistErr, &adv) {
			msg = adv.UserMessage()
		}
		writeLine(lipgloss.NewStyle().Foreground(theme.Error), "⚠ "+msg)
	}
	return b.String()
}

// bigDigits maps countdown runes to 3-row block glyphs.
var bigDigits = map[rune][3]string{
	'0': {"█▀█", "█ █", "█▄█"},
	'1': {" █ ", " █ ", " █ "},
	'2': {"▀▀█", "█▀▀", "█▄▄"},
	'3': {"▀▀█", " ▀█", "▄▄█"},
	'4': {"█ █", "▀▀█", "  █"},
	'5': {"█▀▀", "▀▀█", "▄▄█"},
	'6': {"█▀▀", "█▀█", "█▄█"},
	'7': {"▀▀█", "  █", "  █"},
	'8': {"█▀█", "█▀█", "█▄█"},
	'9': {"█▀█", "▀▀█", "▄▄█"},
	':': {"   ", " ▀ ", " ▀ "},
}

// renderBigCountdown renders the countdown string in block glyphs.
func renderBigCountdown(text string) string {
	var rows [3]strings.Builder
	for i, r := range text {
		glyph, ok := bigDigits[r]
		if !ok {
			continue
		}
		for row := 0; row < 3; row++ {
			if i > 0 {
				rows[row].WriteString(" ")
			}
			rows[row].WriteString(glyph[row])
		}
	}
	return rows[0].String() + "\n" + rows[1].String() + "\n" + rows[2].String()
}
