package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// DailyStat aggregates one local calendar day. The date string is the
// unique key, so upserts keep the one-row-per-day invariant.
type DailyStat struct {
	ent.Schema
}

func (DailyStat) Fields() []ent.Field {
	return []ent.Field{
		field.String("date").
			Unique().
			NotEmpty().
			Comment("Local calendar day, yyyy-MM-dd"),
		field.Int("pomodoros_completed").
			Default(0),
		field.Int("total_focus_minutes").
			Default(0),
		field.Bool("streak_maintained").
			Default(false),
		field.Int("xp_earned").
			Default(0),
	}
}
