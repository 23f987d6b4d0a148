package gamification

import (
	"testing"

	"github.com/abhisek/focusbar/internal/timer"
)

func TestCalculateXP_BaselineFocus(t *testing.T) {
	// Spec example: focus base 25, no streak, level 1, no goal bonus.
	r := CalculateXP(timer.KindFocus, 0, 1, false)

	if r.BaseXP != 25 {
		t.Errorf("BaseXP = %d, want 25", r.BaseXP)
	}
	if r.StreakMultiplier != 1.0 {
		t.Errorf("StreakMultiplier = %v, want 1.0", r.StreakMultiplier)
	}
	if r.LevelMultiplier != 1.05 {
		t.Errorf("LevelMultiplier = %v, want 1.05", r.LevelMultiplier)
	}
	if r.TotalXP != 26 {
		t.Errorf("TotalXP = %d, want round(25*1.0*1.05) = 26", r.TotalXP)
	}
}

func TestCalculateXP_StreakCap(t *testing.T) {
	// 40 streak days would give 3.0; capped at 2.0.
	r := CalculateXP(timer.KindFocus, 40, 1, false)
	if r.StreakMultiplier != 2.0 {
		t.Errorf("StreakMultiplier = %v, want cap 2.0", r.StreakMultiplier)
	}
	// 25 * 2.0 * 1.05 = 52.5 → 53 (half away from zero).
	if r.TotalXP != 53 {
		t.Errorf("TotalXP = %d, want 53", r.TotalXP)
	}
}

func TestCalculateXP_GoalBonus(t *testing.T) {
	r := CalculateXP(timer.KindFocus, 0, 1, true)
	if r.DailyGoalBonus != DailyGoalBonusXP {
		t.Errorf("DailyGoalBonus = %d, want %d", r.DailyGoalBonus, DailyGoalBonusXP)
	}
	if r.TotalXP != 26+DailyGoalBonusXP {
		t.Errorf("TotalXP = %d, want %d", r.TotalXP, 26+DailyGoalBonusXP)
	}
}

func TestCalculateXP_BreakKinds(t *testing.T) {
	tests := []struct {
		kind timer.Kind
		base int
	}{
		{timer.KindShortBreak, 5},
		{timer.KindLongBreak, 15},
	}
	for _, tt := range tests {
		r := CalculateXP(tt.kind, 0, 0, false)
		if r.BaseXP != tt.base {
			t.Errorf("%s BaseXP = %d, want %d", tt.kind, r.BaseXP, tt.base)
		}
		// Level 0 and streak 0: multipliers are 1.0, total == base.
		if r.TotalXP != tt.base {
			t.Errorf("%s TotalXP = %d, want %d", tt.kind, r.TotalXP, tt.base)
		}
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp        int
		wantLevel int
		wantTitle string
	}{
		{0, 1, "Seedling"},
		{249, 1, "Seedling"},
		{250, 2, "Sprout"},
		{4999, 9, "Branching Tree"},
		{5000, 10, "Mighty Oak"},
		{100000, 30, "Focus Master"},
		{250000, 30, "Focus Master"},
	}
	for _, tt := range tests {
		got := LevelForXP(tt.xp)
		if got.Level != tt.wantLevel || got.Title != tt.wantTitle {
			t.Errorf("LevelForXP(%d) = %d %q, want %d %q",
				tt.xp, got.Level, got.Title, tt.wantLevel, tt.wantTitle)
		}
	}
}

func TestXPForNextLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 250},
		{250, 600},
		{4999, 5000},
		{99999, 100000},
		{100000, 100000}, // top level: no further threshold
		{500000, 100000},
	}
	for _, tt := range tests {
		if got := XPForNextLevel(tt.xp); got != tt.want {
			t.Errorf("XPForNextLevel(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelTableStrictlyIncreasing(t *testing.T) {
	for i := 1; i < len(Levels); i++ {
		if Levels[i].XPRequired <= Levels[i-1].XPRequired {
			t.Errorf("threshold for level %d (%d) not above level %d (%d)",
				Levels[i].Level, Levels[i].XPRequired,
				Levels[i-1].Level, Levels[i-1].XPRequired)
		}
		if Levels[i].Level != Levels[i-1].Level+1 {
			t.Errorf("level numbering gap at index %d", i)
		}
	}
	if Levels[0].XPRequired != 0 {
		t.Error("level 1 must have threshold 0")
	}
}
