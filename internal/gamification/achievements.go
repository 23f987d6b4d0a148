package gamification

// AchievementDef is one row of the fixed achievement catalog.
type AchievementDef struct {
	ID          string
	Title       string
	Description string
	Category    string
	XPBonus     int
}

// Catalog is the fixed achievement table, in display and evaluation order.
var Catalog = []AchievementDef{
	{"first_focus", "First Focus", "Complete your first Pomodoro", "Getting Started", 10},
	{"dip_your_toes", "Dip Your Toes", "Complete 5 Pomodoros", "Getting Started", 25},
	{"getting_serious", "Getting Serious", "Complete 25 Pomodoros", "Getting Started", 50},
	{"level_five", "Rising Star", "Reach level 5", "Getting Started", 75},
	{"level_ten", "Mighty Achiever", "Reach level 10", "Getting Started", 200},

	{"week_warrior", "Week Warrior", "Maintain a 7-day streak", "Consistency", 100},
	{"fortnight_fighter", "Fortnight Fighter", "Maintain a 14-day streak", "Consistency", 200},
	{"monthly_master", "Monthly Master", "Maintain a 30-day streak", "Consistency", 500},
	{"streak_saver", "Streak Saver", "Use your first streak freeze", "Consistency", 15},

	{"century_club", "Century Club", "Complete 100 Pomodoros", "Volume", 150},
	{"five_hundred_club", "Five Hundred Club", "Complete 500 Pomodoros", "Volume", 500},
	{"thousand_club", "Thousand Club", "Complete 1,000 Pomodoros", "Volume", 1000},

	{"half_day", "Half Day", "Complete 4 Pomodoros in one day", "Daily Intensity", 50},
	{"marathon", "Marathon", "Complete 8 Pomodoros in one day", "Daily Intensity", 100},
	{"iron_focus", "Iron Focus", "Complete 12 Pomodoros in one day", "Daily Intensity", 200},

	{"night_owl", "Night Owl", "Complete a session between 12-4 AM", "Time Based", 25},
	{"early_bird", "Early Bird", "Complete a session between 5-7 AM", "Time Based", 25},
	{"weekend_warrior", "Weekend Warrior", "Complete 20 sessions on weekends", "Time Based", 100},

	{"task_master", "Task Master", "Link 10 sessions to reminders", "Task Mastery", 50},
	{"project_pro", "Project Pro", "Complete 50 linked sessions", "Task Mastery", 150},
}

// CatalogByID returns the catalog entry for id, or nil if unknown.
func CatalogByID(id string) *AchievementDef {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

// Metrics is the snapshot of counters the unlock predicates evaluate
// against. The orchestrator assembles it from storage after each
// completion.
type Metrics struct {
	TotalPomodoros  int
	CurrentStreak   int
	DailyPomodoros  int
	SessionHour     int // local hour-of-day of the completed session
	WeekendSessions int
	LinkedSessions  int
	CurrentLevel    int
	UsedFreeze      bool
}

// Unlock is one newly unlocked achievement.
type Unlock struct {
	AchievementID string
	Title         string
	XPBonus       int
}

// EvaluateAchievements checks every catalog predicate against the
// metrics snapshot and returns unlocks for predicates that hold and are
// not already in alreadyUnlocked. No predicate depends on another's
// outcome; output follows catalog order for reproducibility.
func EvaluateAchievements(m Metrics, alreadyUnlocked map[string]bool) []Unlock {
	conditions := map[string]bool{
		"first_focus":       m.TotalPomodoros >= 1,
		"dip_your_toes":     m.TotalPomodoros >= 5,
		"getting_serious":   m.TotalPomodoros >= 25,
		"level_five":        m.CurrentLevel >= 5,
		"level_ten":         m.CurrentLevel >= 10,
		"week_warrior":      m.CurrentStreak >= 7,
		"fortnight_fighter": m.CurrentStreak >= 14,
		"monthly_master":    m.CurrentStreak >= 30,
		"streak_saver":      m.UsedFreeze,
		"century_club":      m.TotalPomodoros >= 100,
		"five_hundred_club": m.TotalPomodoros >= 500,
		"thousand_club":     m.TotalPomodoros >= 1000,
		"half_day":          m.DailyPomodoros >= 4,
		"marathon":          m.DailyPomodoros >= 8,
		"iron_focus":        m.DailyPomodoros >= 12,
		"night_owl":         m.SessionHour >= 0 && m.SessionHour < 4,
		"early_bird":        m.SessionHour >= 5 && m.SessionHour < 7,
		"weekend_warrior":   m.WeekendSessions >= 20,
		"task_master":       m.LinkedSessions >= 10,
		"project_pro":       m.LinkedSessions >= 50,
	}

	var unlocks []Unlock
	for _, def := range Catalog {
		if !conditions[def.ID] || alreadyUnlocked[def.ID] {
			continue
		}
		unlocks = append(unlocks, Unlock{
			AchievementID: def.ID,
			Title:         def.Title,
			XPBonus:       def.XPBonus,
		})
	}
	return unlocks
}
