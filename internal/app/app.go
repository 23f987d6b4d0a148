package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/focusbar/internal/config"
	"github.com/abhisek/focusbar/internal/orchestrator"
	"github.com/abhisek/focusbar/internal/reminders"
	"github.com/abhisek/focusbar/internal/router"
	"github.com/abhisek/focusbar/internal/screen"
	"github.com/abhisek/focusbar/internal/screens/session"
	"github.com/abhisek/focusbar/internal/screens/welcome"
	"github.com/abhisek/focusbar/internal/store"
	"github.com/abhisek/focusbar/internal/timer"
	"github.com/abhisek/focusbar/internal/ui/layout"
)

// Deps bundles everything the TUI needs; cmd wires it at startup.
type Deps struct {
	Config       *config.Config
	Engine       *timer.Engine
	Orchestrator *orchestrator.Orchestrator
	Repos        store.Repos
	Tasks        *reminders.Service

	// InitialLevel and InitialStreak seed the header before the first
	// completion of this run.
	InitialLevel  int
	InitialStreak int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	router *router.Router
	width  int
	height int

	// Header progression cache, refreshed on every completion.
	level  int
	streak int
}

// newAppModel creates a new AppModel. The splash screen replaces itself
// with the timer screen on the first keypress.
func newAppModel(deps Deps) AppModel {
	root := welcome.New(func() screen.Screen {
		return session.New(deps.Config, deps.Engine, deps.Orchestrator, deps.Repos, deps.Tasks)
	})
	return AppModel{
		deps:   deps,
		router: router.New(root),
		level:  deps.InitialLevel,
		streak: deps.InitialStreak,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case session.ProgressMsg:
		m.level = msg.Level
		m.streak = msg.Streak
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStatus(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(provider.KeyHints(), footerHints...)
	} else if m.router.Depth() > 1 {
		footerHints = append([]layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}, footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// headerStatus builds the header's live status cell from the engine.
func (m AppModel) headerStatus() layout.HeaderStatus {
	e := m.deps.Engine
	running := e.State() == timer.StateRunning

	progress := 0.0
	if total := e.TotalSecs(); total > 0 {
		progress = 1 - float64(e.Remaining())/float64(total)
	}

	timerText := ""
	if e.State() != timer.StateIdle {
		timerText = layout.FormatCountdown(e.Remaining())
	}

	return layout.HeaderStatus{
		Display:     m.deps.Config.DisplayMode,
		SessionIcon: e.Kind().Icon(),
		TimerText:   timerText,
		Progress:    progress,
		Running:     running,
		Level:       m.level,
		Streak:      m.streak,
	}
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
