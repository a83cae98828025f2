package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity. One task row
// parallels each report and tracks the three step axes the client polls.
// Each axis transitions pending -> {completed, failed} exactly once per
// attempt and is written only by its own step handler.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.Int("report_id"),
		field.Enum("overview_status").
			Values("pending", "completed", "failed").
			Default("pending"),
		field.Enum("analysis_status").
			Values("pending", "completed", "failed").
			Default("pending"),
		field.Enum("idea_status").
			Values("pending", "completed", "failed").
			Default("pending"),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id"),
	}
}
