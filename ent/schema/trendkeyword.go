package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrendKeyword holds the schema definition for the TrendKeyword entity.
// Rows are written once by the idea step and never updated.
type TrendKeyword struct {
	ent.Schema
}

// Fields of the TrendKeyword.
func (TrendKeyword) Fields() []ent.Field {
	return []ent.Field{
		field.Int("report_id"),
		field.Enum("keyword_type").
			NamedValues(
				"RealTime", "REAL_TIME",
				"Channel", "CHANNEL",
			),
		field.String("keyword").
			MaxLen(255),
		field.Int("score").
			Comment("Relevance score, 0-100"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TrendKeyword.
func (TrendKeyword) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id"),
	}
}
