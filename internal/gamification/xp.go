// Package gamification holds the pure reward calculations: XP, levels
// and achievement unlocks. Nothing here performs I/O or keeps mutable
// state; the orchestrator feeds in counters and persists the results.
package gamification

import (
	"math"

	"github.com/abhisek/focusbar/internal/timer"
)

// Multiplier constants.
const (
	StreakMultiplierPerDay  = 0.05
	MaxStreakMultiplier     = 2.0
	LevelMultiplierPerLevel = 0.05
	DailyGoalBonusXP        = 50
)

// XPResult breaks down one session's XP award.
type XPResult struct {
	BaseXP           int
	StreakMultiplier float64
	LevelMultiplier  float64
	DailyGoalBonus   int
	TotalXP          int
}

// CalculateXP computes the XP award for a completed session.
// Total = round(base * streakMult * levelMult) + goal bonus, with
// rounding half away from zero.
func CalculateXP(kind timer.Kind, streakDays, level int, dailyGoalJustMet bool) XPResult {
	base := kind.BaseXP()

	streakMult := 1.0 + float64(streakDays)*StreakMultiplierPerDay
	if streakMult > MaxStreakMultiplier {
		streakMult = MaxStreakMultiplier
	}
	levelMult := 1.0 + float64(level)*LevelMultiplierPerLevel

	goalBonus := 0
	if dailyGoalJustMet {
		goalBonus = DailyGoalBonusXP
	}

	total := int(math.Round(float64(base)*streakMult*levelMult)) + goalBonus

	return XPResult{
		BaseXP:           base,
		StreakMultiplier: streakMult,
		LevelMultiplier:  levelMult,
		DailyGoalBonus:   goalBonus,
		TotalXP:          total,
	}
}
