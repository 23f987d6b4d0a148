package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CoachEvent records every LLM API call made by the coach, for cost
// tracking and debugging.
type CoachEvent struct {
	ent.Schema
}

func (CoachEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("provider").
			Comment("Provider name: anthropic, openai, gemini"),
		field.String("model").
			Comment("Actual model ID used"),
		field.String("purpose").
			Comment("Consumer-provided label, e.g. weekly-recap"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.String("error_message").
			Default(""),
	}
}

func (CoachEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("provider"),
	}
}
