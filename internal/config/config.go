// Package config holds the explicit configuration surface for focusbar.
// The config is loaded once at startup and passed into the engines; engine
// logic never reads ambient globals, which keeps it testable in isolation.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Built-in defaults, used whenever a value is unset or non-positive.
const (
	DefaultFocusMinutes           = 25
	DefaultShortBreakMinutes      = 5
	DefaultLongBreakMinutes       = 15
	DefaultSessionsUntilLongBreak = 4
	DefaultDailyGoal              = 4
)

// DisplayMode selects how the header renders the running timer.
type DisplayMode string

const (
	DisplayIcon        DisplayMode = "icon"
	DisplayTimerText   DisplayMode = "timerText"
	DisplayProgressBar DisplayMode = "progressBar"
)

// Config is the full configuration surface.
type Config struct {
	// Session durations in minutes.
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int

	// SessionsUntilLongBreak is the focus-session count per cycle.
	SessionsUntilLongBreak int

	// DailyGoal is the number of completed focus sessions that credits
	// the streak for the day.
	DailyGoal int

	// Notification toggles.
	BannerEnabled bool
	SoundEnabled  bool

	// DisplayMode selects the header timer rendering.
	DisplayMode DisplayMode

	// Debug enables verbose logging.
	Debug bool
}

// Default returns a Config with the built-in defaults.
func Default() Config {
	return Config{
		FocusMinutes:           DefaultFocusMinutes,
		ShortBreakMinutes:      DefaultShortBreakMinutes,
		LongBreakMinutes:       DefaultLongBreakMinutes,
		SessionsUntilLongBreak: DefaultSessionsUntilLongBreak,
		DailyGoal:              DefaultDailyGoal,
		BannerEnabled:          true,
		SoundEnabled:           true,
		DisplayMode:            DisplayTimerText,
	}
}

// FromEnv builds a Config from FOCUSBAR_* environment variables, falling
// back to defaults for unset or invalid values.
func FromEnv() Config {
	cfg := Default()

	cfg.FocusMinutes = envMinutes("FOCUSBAR_FOCUS_MINUTES", cfg.FocusMinutes)
	cfg.ShortBreakMinutes = envMinutes("FOCUSBAR_SHORT_BREAK_MINUTES", cfg.ShortBreakMinutes)
	cfg.LongBreakMinutes = envMinutes("FOCUSBAR_LONG_BREAK_MINUTES", cfg.LongBreakMinutes)
	cfg.SessionsUntilLongBreak = envMinutes("FOCUSBAR_SESSIONS_UNTIL_LONG_BREAK", cfg.SessionsUntilLongBreak)
	cfg.DailyGoal = envMinutes("FOCUSBAR_DAILY_GOAL", cfg.DailyGoal)

	if v := os.Getenv("FOCUSBAR_BANNER"); v != "" {
		cfg.BannerEnabled = v != "0" && v != "false"
	}
	if v := os.Getenv("FOCUSBAR_SOUND"); v != "" {
		cfg.SoundEnabled = v != "0" && v != "false"
	}
	if v := os.Getenv("FOCUSBAR_DISPLAY"); v != "" {
		cfg.DisplayMode = DisplayMode(v)
	}
	if v := os.Getenv("FOCUSBAR_DEBUG"); v == "1" || v == "true" {
		cfg.Debug = true
	}

	return cfg
}

// Validate checks that all values are usable.
func (c Config) Validate() error {
	if c.FocusMinutes <= 0 || c.ShortBreakMinutes <= 0 || c.LongBreakMinutes <= 0 {
		return fmt.Errorf("session durations must be positive")
	}
	if c.SessionsUntilLongBreak <= 0 {
		return fmt.Errorf("sessions-until-long-break must be positive")
	}
	if c.DailyGoal <= 0 {
		return fmt.Errorf("daily goal must be positive")
	}
	switch c.DisplayMode {
	case DisplayIcon, DisplayTimerText, DisplayProgressBar:
	default:
		return fmt.Errorf("unknown display mode: %q", c.DisplayMode)
	}
	return nil
}

// envMinutes reads a positive integer env var, returning fallback for
// unset, unparseable or non-positive values.
func envMinutes(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
