package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Progress is the singleton row holding the cross-session counters:
// XP, cached level, streak state and freeze allowance. The orchestrator
// is the sole writer and updates it inside the per-completion transaction.
type Progress struct {
	ent.Schema
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.Int("xp").
			Default(0).
			Comment("Lifetime XP, never decreases"),
		field.Int("level").
			Default(1).
			Comment("Cached level derived from xp"),
		field.Int("current_streak").
			Default(0),
		field.Int("freezes_remaining").
			Default(1).
			Comment("Streak freezes left this week"),
		field.String("last_streak_date").
			Default("").
			Comment("Last day the daily goal was credited, yyyy-MM-dd"),
		field.String("last_freeze_reset_week").
			Default("").
			Comment("ISO week of the last freeze refill, e.g. 2026-W35"),
		field.Int("daily_goal").
			Default(0).
			Comment("Per-user override; 0 means use the configured default"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
