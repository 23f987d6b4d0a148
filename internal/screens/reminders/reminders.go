// Package reminders implements the task-list screen: browse open items,
// add new ones, and link a task to the next focus session.
package reminders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/focusbar/internal/apperr"
	"github.com/abhisek/focusbar/internal/orchestrator"
	"github.com/abhisek/focusbar/internal/reminders"
	"github.com/abhisek/focusbar/internal/router"
	"github.com/abhisek/focusbar/internal/screen"
	"github.com/abhisek/focusbar/internal/store"
	"github.com/abhisek/focusbar/internal/ui/components"
	"github.com/abhisek/focusbar/internal/ui/layout"
	"github.com/abhisek/focusbar/internal/ui/theme"
)

type itemsLoadedMsg struct {
	Items []store.ReminderRecord
	Err   error
}

// RemindersScreen shows the open task list.
type RemindersScreen struct {
	tasks *reminders.Service
	orch  *orchestrator.Orchestrator

	items    []store.ReminderRecord
	selected int
	loaded   bool
	errMsg   string

	adding    bool
	searching bool
	input     components.TextInput
}

var _ screen.Screen = (*RemindersScreen)(nil)
var _ screen.KeyHintProvider = (*RemindersScreen)(nil)

// New creates a new RemindersScreen.
func New(tasks *reminders.Service, orch *orchestrator.Orchestrator) *RemindersScreen {
	return &RemindersScreen{tasks: tasks, orch: orch}
}

func (s *RemindersScreen) Init() tea.Cmd {
	return s.load()
}

func (s *RemindersScreen) load() tea.Cmd {
	return func() tea.Msg {
		items, err := s.tasks.FetchOpenItems(context.Background())
		return itemsLoadedMsg{Items: items, Err: err}
	}
}

func (s *RemindersScreen) Title() string {
	return "Tasks"
}

func (s *RemindersScreen) KeyHints() []layout.KeyHint {
	if s.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Add"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Search"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Link"},
		{Key: "N", Description: "New"},
		{Key: "/", Description: "Search"},
		{Key: "C", Description: "Done"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RemindersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = userMessage(msg.Err)
		} else {
			s.errMsg = ""
			s.items = msg.Items
			if s.selected >= len(s.items) {
				s.selected = len(s.items) - 1
			}
			if s.selected < 0 {
				s.selected = 0
			}
		}
		return s, nil

	case tea.KeyMsg:
		if s.adding {
			return s.updateAdding(msg)
		}
		if s.searching {
			return s.updateSearching(msg)
		}
		return s.updateList(msg)
	}
	return s, nil
}

func (s *RemindersScreen) updateSearching(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.searching = false
		return s, s.load()
	case "enter":
		query := strings.TrimSpace(s.input.Value())
		s.searching = false
		s.selected = 0
		return s, func() tea.Msg {
			items, err := s.tasks.Search(context.Background(), query)
			return itemsLoadedMsg{Items: items, Err: err}
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *RemindersScreen) updateAdding(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.adding = false
		return s, nil
	case "enter":
		title := strings.TrimSpace(s.input.Value())
		if title == "" {
			return s, nil
		}
		s.adding = false
		return s, func() tea.Msg {
			if _, err := s.tasks.Create(context.Background(), title); err != nil {
				return itemsLoadedMsg{Err: err}
			}
			items, err := s.tasks.FetchOpenItems(context.Background())
			return itemsLoadedMsg{Items: items, Err: err}
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *RemindersScreen) updateList(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
		return s, nil

	case "down", "j":
		if s.selected < len(s.items)-1 {
			s.selected++
		}
		return s, nil

	case "n":
		s.adding = true
		s.input = components.NewTextInput("What are you working on?", false, 60)
		return s, s.input.Init()

	case "/":
		s.searching = true
		s.input = components.NewTextInput("Search tasks...", false, 60)
		return s, s.input.Init()

	case "enter":
		if s.selected >= len(s.items) {
			return s, nil
		}
		item := s.items[s.selected]
		// Selecting the linked task again unlinks it.
		if linked := s.orch.LinkedReminder(); linked != nil && linked.RID == item.RID {
			s.orch.LinkReminder(nil)
		} else {
			s.orch.LinkReminder(&item)
		}
		return s, nil

	case "c":
		if s.selected >= len(s.items) {
			return s, nil
		}
		item := s.items[s.selected]
		if linked := s.orch.LinkedReminder(); linked != nil && linked.RID == item.RID {
			s.orch.LinkReminder(nil)
		}
		return s, func() tea.Msg {
			if err := s.tasks.MarkComplete(context.Background(), item.RID); err != nil {
				return itemsLoadedMsg{Err: err}
			}
			items, err := s.tasks.FetchOpenItems(context.Background())
			return itemsLoadedMsg{Items: items, Err: err}
		}
	}
	return s, nil
}

func (s *RemindersScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n%s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading tasks...")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.adding {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render("New task: "+s.input.View())))
		b.WriteString("\n\n")
	}
	if s.searching {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render("Search: "+s.input.View())))
		b.WriteString("\n\n")
	}

	if len(s.items) == 0 && !s.adding && !s.searching {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("No open tasks. Press N to add one.")))
		return b.String()
	}

	linked := s.orch.LinkedReminder()
	for i, item := range s.items {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected && !s.adding && !s.searching {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		mark := "○"
		if linked != nil && linked.RID == item.RID {
			mark = "◉"
		}
		line := fmt.Sprintf("%s%s %s", prefix, mark, item.Title)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hint := "Linked tasks are logged with each focus session."
	if linked != nil {
		hint = fmt.Sprintf("Next focus session counts toward: %s", linked.Title)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(hint)))

	return b.String()
}

// userMessage prefers the advisory text for taxonomy errors.
func userMessage(err error) string {
	var adv apperr.Advisory
	if errors.As(err, &adv) {
		return adv.UserMessage()
	}
	return fmt.Sprintf("Error: %v", err)
}
