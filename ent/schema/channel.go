package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Channel holds the schema definition for the Channel entity. Read-only from
// the pipeline's perspective.
type Channel struct {
	ent.Schema
}

// Fields of the Channel.
func (Channel) Fields() []ent.Field {
	return []ent.Field{
		field.String("youtube_channel_id"),
		field.String("name"),
		field.String("concept").
			Optional().
			Comment("Creator-declared channel concept, feeds trend prompts"),
		field.String("target").
			Optional().
			Comment("Declared target audience"),
		field.String("channel_hash_tag").
			Optional(),
		field.Int64("subscribe").
			Optional(),
		field.Int64("view").
			Optional(),
		field.Int("video_count").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
