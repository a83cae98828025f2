package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Idea holds the schema definition for the Idea entity. Ideas are
// bulk-inserted by the idea step and bookmarked later by the user-facing app.
type Idea struct {
	ent.Schema
}

// Fields of the Idea.
func (Idea) Fields() []ent.Field {
	return []ent.Field{
		field.Int("channel_id"),
		field.String("title"),
		field.Text("content"),
		field.String("hash_tag").
			Comment("JSON-encoded tag list"),
		field.Int("is_book_marked").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Idea.
func (Idea) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel_id"),
	}
}
