// Package achievements implements the achievement gallery, grouped by
// catalog category with unlocked entries highlighted.
package achievements

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/focusbar/internal/gamification"
	"github.com/abhisek/focusbar/internal/router"
	"github.com/abhisek/focusbar/internal/screen"
	"github.com/abhisek/focusbar/internal/store"
	"github.com/abhisek/focusbar/internal/ui/layout"
	"github.com/abhisek/focusbar/internal/ui/theme"
)

type unlocksLoadedMsg struct {
	Unlocked map[string]bool
	Err      error
}

// AchievementsScreen displays the catalog against the unlock records.
type AchievementsScreen struct {
	repo store.AchievementRepo

	unlocked map[string]bool
	loaded   bool
	errMsg   string
	scroll   int
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New creates a new AchievementsScreen.
func New(repo store.AchievementRepo) *AchievementsScreen {
	return &AchievementsScreen{repo: repo}
}

func (s *AchievementsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		unlocked, err := s.repo.UnlockedSet(context.Background())
		if err != nil {
			return unlocksLoadedMsg{Err: err}
		}
		return unlocksLoadedMsg{Unlocked: unlocked}
	}
}

func (s *AchievementsScreen) Title() string {
	return "Achievements"
}

func (s *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case unlocksLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.unlocked = msg.Unlocked
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
			return s, nil
		case "down", "j":
			s.scroll++
			return s, nil
		}
	}
	return s, nil
}

func (s *AchievementsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading achievements...")
	}

	lines := s.renderLines(width)

	// Clamp scroll so the last page stays full.
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := s.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[s.scroll:end], "\n")
}

func (s *AchievementsScreen) renderLines(width int) []string {
	count := 0
	for _, def := range gamification.Catalog {
		if s.unlocked[def.ID] {
			count++
		}
	}

	lines := []string{
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("%d of %d unlocked", count, len(gamification.Catalog)))),
		"",
	}

	category := ""
	for _, def := range gamification.Catalog {
		if def.Category != category {
			category = def.Category
			lines = append(lines,
				lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(category)),
			)
		}

		var line string
		if s.unlocked[def.ID] {
			line = theme.Unlocked.Render(fmt.Sprintf("🏆 %-20s %s  +%d XP", def.Title, def.Description, def.XPBonus))
		} else {
			line = theme.Locked.Render(fmt.Sprintf("🔒 %-20s %s", def.Title, def.Description))
		}
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
	}
	return lines
}
