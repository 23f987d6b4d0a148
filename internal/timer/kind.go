package timer

import "github.com/abhisek/focusbar/internal/config"

// Kind identifies the session type. The string values are the persisted
// and exported vocabulary.
type Kind string

const (
	KindFocus      Kind = "focus"
	KindShortBreak Kind = "shortBreak"
	KindLongBreak  Kind = "longBreak"
)

// DisplayName returns a human-readable label for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindFocus:
		return "Focus"
	case KindShortBreak:
		return "Short Break"
	case KindLongBreak:
		return "Long Break"
	default:
		return string(k)
	}
}

// Icon returns the display icon for the kind.
func (k Kind) Icon() string {
	switch k {
	case KindFocus:
		return "🍅"
	case KindShortBreak:
		return "☕"
	case KindLongBreak:
		return "🌿"
	default:
		return "⏱"
	}
}

// BaseXP returns the fixed XP value awarded for completing this kind.
func (k Kind) BaseXP() int {
	switch k {
	case KindFocus:
		return 25
	case KindShortBreak:
		return 5
	case KindLongBreak:
		return 15
	default:
		return 0
	}
}

// Minutes returns the configured duration for this kind, falling back to
// the built-in default when the configured value is non-positive.
func (k Kind) Minutes(cfg config.Config) int {
	var v, def int
	switch k {
	case KindFocus:
		v, def = cfg.FocusMinutes, config.DefaultFocusMinutes
	case KindShortBreak:
		v, def = cfg.ShortBreakMinutes, config.DefaultShortBreakMinutes
	case KindLongBreak:
		v, def = cfg.LongBreakMinutes, config.DefaultLongBreakMinutes
	default:
		return config.DefaultFocusMinutes
	}
	if v <= 0 {
		return def
	}
	return v
}
