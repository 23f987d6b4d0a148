package gamification

import (
	"testing"
)

func TestEvaluateAchievements_FirstFocus(t *testing.T) {
	unlocks := EvaluateAchievements(Metrics{TotalPomodoros: 1, CurrentLevel: 1, SessionHour: 10}, nil)

	if len(unlocks) != 1 {
		t.Fatalf("got %d unlocks, want 1: %+v", len(unlocks), unlocks)
	}
	u := unlocks[0]
	if u.AchievementID != "first_focus" || u.Title != "First Focus" || u.XPBonus != 10 {
		t.Errorf("unlock = %+v", u)
	}
}

func TestEvaluateAchievements_NeverReemits(t *testing.T) {
	already := map[string]bool{"first_focus": true, "dip_your_toes": true}
	unlocks := EvaluateAchievements(Metrics{TotalPomodoros: 5, CurrentLevel: 1, SessionHour: 10}, already)

	for _, u := range unlocks {
		if already[u.AchievementID] {
			t.Errorf("re-emitted already unlocked id %q", u.AchievementID)
		}
	}
	if len(unlocks) != 0 {
		t.Errorf("got %d unlocks, want 0: %+v", len(unlocks), unlocks)
	}
}

func TestEvaluateAchievements_CatalogOrder(t *testing.T) {
	// Metrics that trip many predicates at once.
	m := Metrics{
		TotalPomodoros:  1000,
		CurrentStreak:   30,
		DailyPomodoros:  12,
		SessionHour:     6,
		WeekendSessions: 20,
		LinkedSessions:  50,
		CurrentLevel:    10,
		UsedFreeze:      true,
	}
	unlocks := EvaluateAchievements(m, nil)

	// Night owl (hour 6 not in 0-4) is the only predicate that fails.
	if len(unlocks) != len(Catalog)-1 {
		t.Fatalf("got %d unlocks, want %d", len(unlocks), len(Catalog)-1)
	}

	// Output order must follow catalog order.
	pos := make(map[string]int, len(Catalog))
	for i, def := range Catalog {
		pos[def.ID] = i
	}
	for i := 1; i < len(unlocks); i++ {
		if pos[unlocks[i].AchievementID] < pos[unlocks[i-1].AchievementID] {
			t.Errorf("unlocks out of catalog order at %d: %s before %s",
				i, unlocks[i-1].AchievementID, unlocks[i].AchievementID)
		}
	}
}

func TestEvaluateAchievements_HourWindows(t *testing.T) {
	tests := []struct {
		hour      string
		sessionHr int
		nightOwl  bool
		earlyBird bool
	}{
		{"midnight", 0, true, false},
		{"3am", 3, true, false},
		{"4am", 4, false, false},
		{"5am", 5, false, true},
		{"6am", 6, false, true},
		{"7am", 7, false, false},
		{"noon", 12, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.hour, func(t *testing.T) {
			unlocks := EvaluateAchievements(Metrics{SessionHour: tt.sessionHr}, nil)
			got := map[string]bool{}
			for _, u := range unlocks {
				got[u.AchievementID] = true
			}
			if got["night_owl"] != tt.nightOwl {
				t.Errorf("night_owl = %v, want %v", got["night_owl"], tt.nightOwl)
			}
			if got["early_bird"] != tt.earlyBird {
				t.Errorf("early_bird = %v, want %v", got["early_bird"], tt.earlyBird)
			}
		})
	}
}

func TestCatalogByID(t *testing.T) {
	def := CatalogByID("century_club")
	if def == nil || def.XPBonus != 150 {
		t.Errorf("CatalogByID(century_club) = %+v", def)
	}
	if CatalogByID("no_such_id") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range Catalog {
		if seen[def.ID] {
			t.Errorf("duplicate catalog id %q", def.ID)
		}
		seen[def.ID] = true
	}
}
