package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Achievement is a one-time unlock record. The achievement_id comes from
// the fixed catalog; the unique constraint enforces at most one unlock
// per catalog id ever.
type Achievement struct {
	ent.Schema
}

func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("achievement_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Catalog id, e.g. first_focus"),
		field.Time("unlocked_at").
			Default(time.Now).
			Immutable(),
		field.String("metadata").
			Default(""),
	}
}

func (Achievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unlocked_at"),
	}
}
