package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/focusbar/internal/config"
	"github.com/abhisek/focusbar/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStatus carries the live timer and progression state the header
// renders. The Display mode picks between icon-only, countdown text and
// a compact progress bar, mirroring a menu-bar display toggle.
type HeaderStatus struct {
	Display config.DisplayMode

	// SessionIcon and TimerText describe the current session; Progress
	// is elapsed fraction in [0,1].
	SessionIcon string
	TimerText   string
	Progress    float64
	Running     bool

	Level  int
	Streak int
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the available height for screen content.
func ContentHeight(totalHeight int) int {
	h := totalHeight - HeaderHeight - FooterHeight
	if h < 0 {
		return 0
	}
	return h
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	msg := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
	return msg
}

// statusCell renders the header's timer cell for the selected display
// mode.
func statusCell(s HeaderStatus) string {
	switch s.Display {
	case config.DisplayIcon:
		return s.SessionIcon
	case config.DisplayProgressBar:
		return s.SessionIcon + " " + miniBar(s.Progress, 10)
	default: // timer text
		if s.TimerText == "" {
			return s.SessionIcon
		}
		return s.SessionIcon + " " + s.TimerText
	}
}

// miniBar renders a narrow inline progress bar for the header.
func miniBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", width-filled))
}

// RenderHeader renders the application header bar: brand left, timer
// status center, level and streak right.
func RenderHeader(title string, status HeaderStatus, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  FocusBar")
	if title != "" {
		left += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(" · " + title)
	}

	centerStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if status.Running {
		centerStyle = theme.Running
	}
	center := centerStyle.Render(statusCell(status))

	right := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("Lv %d", status.Level)) +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("   ") +
		lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("★ %d day", status.Streak))

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := width - 4 // account for border padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}

	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	box := lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)

	return box
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ")

	box := lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)

	return box
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}

// FormatCountdown renders whole seconds as m:ss (or h:mm:ss past an
// hour).
func FormatCountdown(secs int) string {
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
