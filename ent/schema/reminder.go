package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Reminder is a local task-list item that focus sessions can link to.
type Reminder struct {
	ent.Schema
}

func (Reminder) Fields() []ent.Field {
	return []ent.Field{
		field.String("rid").
			Unique().
			Immutable().
			Comment("UUID for the reminder"),
		field.String("title").
			NotEmpty(),
		field.String("notes").
			Default(""),
		field.Bool("completed").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Reminder) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("completed"),
	}
}
