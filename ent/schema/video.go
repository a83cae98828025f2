package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Video holds the schema definition for the Video entity. Videos are owned
// by an external ingestion system; the pipeline only reads them.
type Video struct {
	ent.Schema
}

// Fields of the Video.
func (Video) Fields() []ent.Field {
	return []ent.Field{
		field.Int("channel_id"),
		field.String("youtube_video_id"),
		field.String("video_category"),
		field.String("title").
			Optional(),
		field.Text("description").
			Optional(),
		field.Int64("view").
			Optional(),
		field.Int64("like_count").
			Optional(),
		field.Int64("comment_count").
			Optional(),
		field.String("link").
			Optional(),
		field.Time("upload_date").
			Optional().
			Nillable(),
		field.String("thumbnail").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Video.
func (Video) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel_id"),
		index.Fields("youtube_video_id"),
	}
}
