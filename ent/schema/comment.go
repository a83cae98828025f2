package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Comment holds the schema definition for the Comment entity. Only the
// per-emotion LLM summary rows are persisted; raw fetched comments stay in
// memory.
type Comment struct {
	ent.Schema
}

// Fields of the Comment.
func (Comment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("report_id"),
		field.Enum("comment_type").
			NamedValues(
				"Positive", "POSITIVE",
				"Negative", "NEGATIVE",
				"Neutral", "NEUTRAL",
				"AdviceOpinion", "ADVICE_OPINION",
			),
		field.Text("content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Comment.
func (Comment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id"),
	}
}
