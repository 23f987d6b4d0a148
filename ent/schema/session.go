package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session records one finished focus or break session. Rows are written
// when a session completes (or is skipped) and never updated afterwards.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("sid").
			Unique().
			Immutable().
			Comment("UUID for the session"),
		field.Time("start_time").
			Immutable().
			Comment("When the session began"),
		field.Time("end_time").
			Optional().
			Nillable().
			Comment("When the session finished (nil for legacy rows)"),
		field.Int("duration_secs").
			Comment("Planned duration the session was credited with"),
		field.String("kind").
			NotEmpty().
			Comment("focus, shortBreak or longBreak"),
		field.Bool("completed").
			Default(false),
		field.String("reminder_id").
			Optional().
			Nillable().
			Comment("Linked reminder, if any"),
		field.String("reminder_title").
			Optional().
			Nillable(),
		field.Int("xp_earned").
			Default(0),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("start_time"),
		index.Fields("kind"),
		index.Fields("completed"),
	}
}
