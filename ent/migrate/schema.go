// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "achievement_id", Type: field.TypeString, Unique: true},
		{Name: "unlocked_at", Type: field.TypeTime},
		{Name: "metadata", Type: field.TypeString, Default: ""},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievement_unlocked_at",
				Unique:  false,
				Columns: []*schema.Column{AchievementsColumns[2]},
			},
		},
	}
	// CoachEventsColumns holds the columns for the "coach_events" table.
	CoachEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// CoachEventsTable holds the schema information for the "coach_events" table.
	CoachEventsTable = &schema.Table{
		Name:       "coach_events",
		Columns:    CoachEventsColumns,
		PrimaryKey: []*schema.Column{CoachEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "coachevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CoachEventsColumns[1]},
			},
			{
				Name:    "coachevent_provider",
				Unique:  false,
				Columns: []*schema.Column{CoachEventsColumns[2]},
			},
		},
	}
	// DailyStatsColumns holds the columns for the "daily_stats" table.
	DailyStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "date", Type: field.TypeString, Unique: true},
		{Name: "pomodoros_completed", Type: field.TypeInt, Default: 0},
		{Name: "total_focus_minutes", Type: field.TypeInt, Default: 0},
		{Name: "streak_maintained", Type: field.TypeBool, Default: false},
		{Name: "xp_earned", Type: field.TypeInt, Default: 0},
	}
	// DailyStatsTable holds the schema information for the "daily_stats" table.
	DailyStatsTable = &schema.Table{
		Name:       "daily_stats",
		Columns:    DailyStatsColumns,
		PrimaryKey: []*schema.Column{DailyStatsColumns[0]},
	}
	// ProgressesColumns holds the columns for the "progresses" table.
	ProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "current_streak", Type: field.TypeInt, Default: 0},
		{Name: "freezes_remaining", Type: field.TypeInt, Default: 1},
		{Name: "last_streak_date", Type: field.TypeString, Default: ""},
		{Name: "last_freeze_reset_week", Type: field.TypeString, Default: ""},
		{Name: "daily_goal", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressesTable holds the schema information for the "progresses" table.
	ProgressesTable = &schema.Table{
		Name:       "progresses",
		Columns:    ProgressesColumns,
		PrimaryKey: []*schema.Column{ProgressesColumns[0]},
	}
	// RemindersColumns holds the columns for the "reminders" table.
	RemindersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "rid", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "notes", Type: field.TypeString, Default: ""},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RemindersTable holds the schema information for the "reminders" table.
	RemindersTable = &schema.Table{
		Name:       "reminders",
		Columns:    RemindersColumns,
		PrimaryKey: []*schema.Column{RemindersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reminder_completed",
				Unique:  false,
				Columns: []*schema.Column{RemindersColumns[4]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sid", Type: field.TypeString, Unique: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "duration_secs", Type: field.TypeInt},
		{Name: "kind", Type: field.TypeString},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "reminder_id", Type: field.TypeString, Nullable: true},
		{Name: "reminder_title", Type: field.TypeString, Nullable: true},
		{Name: "xp_earned", Type: field.TypeInt, Default: 0},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_start_time",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2]},
			},
			{
				Name:    "session_kind",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[5]},
			},
			{
				Name:    "session_completed",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		CoachEventsTable,
		DailyStatsTable,
		ProgressesTable,
		RemindersTable,
		SessionsTable,
	}
)

func init() {
}
