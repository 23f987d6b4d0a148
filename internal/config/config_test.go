package config

import "testing"

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("FOCUSBAR_FOCUS_MINUTES", "50")
	t.Setenv("FOCUSBAR_DAILY_GOAL", "6")
	t.Setenv("FOCUSBAR_BANNER", "0")
	t.Setenv("FOCUSBAR_DISPLAY", "progressBar")

	cfg := FromEnv()
	if cfg.FocusMinutes != 50 {
		t.Errorf("FocusMinutes = %d, want 50", cfg.FocusMinutes)
	}
	if cfg.DailyGoal != 6 {
		t.Errorf("DailyGoal = %d, want 6", cfg.DailyGoal)
	}
	if cfg.BannerEnabled {
		t.Error("expected banner disabled")
	}
	if cfg.DisplayMode != DisplayProgressBar {
		t.Errorf("DisplayMode = %q, want progressBar", cfg.DisplayMode)
	}
}

func TestFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("FOCUSBAR_FOCUS_MINUTES", "-3")
	t.Setenv("FOCUSBAR_SHORT_BREAK_MINUTES", "abc")

	cfg := FromEnv()
	if cfg.FocusMinutes != DefaultFocusMinutes {
		t.Errorf("FocusMinutes = %d, want default %d", cfg.FocusMinutes, DefaultFocusMinutes)
	}
	if cfg.ShortBreakMinutes != DefaultShortBreakMinutes {
		t.Errorf("ShortBreakMinutes = %d, want default %d", cfg.ShortBreakMinutes, DefaultShortBreakMinutes)
	}
}

func TestValidateRejectsBadDisplayMode(t *testing.T) {
	cfg := Default()
	cfg.DisplayMode = "marquee"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown display mode")
	}
}
