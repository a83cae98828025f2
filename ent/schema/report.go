package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Report holds the schema definition for the Report entity. A report is
// created with only video_id populated; each step handler fills in its own
// slice of columns via partial updates.
type Report struct {
	ent.Schema
}

// Fields of the Report.
func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.Int("video_id"),
		field.String("title").
			Optional(),

		field.Int64("view").
			Optional(),
		field.Float("view_channel_avg").
			Optional().
			Comment("Percent delta vs channel-wide mean"),
		field.Float("view_topic_avg").
			Optional().
			Comment("Percent delta vs same-category mean"),

		field.Int64("like_count").
			Optional(),
		field.Float("like_channel_avg").
			Optional(),
		field.Float("like_topic_avg").
			Optional(),

		field.Int64("comment_count").
			Optional(),
		field.Float("comment_channel_avg").
			Optional(),
		field.Float("comment_topic_avg").
			Optional(),

		field.Float("concept").
			Optional().
			Comment("Concept consistency score, 0-100"),
		field.Float("seo").
			Optional().
			Comment("SEO score, 0-100"),
		field.Float("revisit").
			Optional().
			Comment("Revisit rate, percent"),

		field.Text("summary").
			Optional(),

		field.Int("positive_comment").
			Optional(),
		field.Int("negative_comment").
			Optional(),
		field.Int("neutral_comment").
			Optional(),
		field.Int("advice_comment").
			Optional(),

		field.Text("leave_analyze").
			Optional(),
		field.Text("optimization").
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Report.
func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("video_id"),
	}
}
