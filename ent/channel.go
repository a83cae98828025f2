// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/channeling-app/reportpipe/ent/channel"
)

// Channel is the model entity for the Channel schema.
type Channel struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// YoutubeChannelID holds the value of the "youtube_channel_id" field.
	YoutubeChannelID string `json:"youtube_channel_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Creator-declared channel concept, feeds trend prompts
	Concept string `json:"concept,omitempty"`
	// Declared target audience
	Target string `json:"target,omitempty"`
	// ChannelHashTag holds the value of the "channel_hash_tag" field.
	ChannelHashTag string `json:"channel_hash_tag,omitempty"`
	// Subscribe holds the value of the "subscribe" field.
	Subscribe int64 `json:"subscribe,omitempty"`
	// View holds the value of the "view" field.
	View int64 `json:"view,omitempty"`
	// VideoCount holds the value of the "video_count" field.
	VideoCount int `json:"video_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Channel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case channel.FieldID, channel.FieldSubscribe, channel.FieldView, channel.FieldVideoCount:
			values[i] = new(sql.NullInt64)
		case channel.FieldYoutubeChannelID, channel.FieldName, channel.FieldConcept, channel.FieldTarget, channel.FieldChannelHashTag:
			values[i] = new(sql.NullString)
		case channel.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Channel fields.
func (_m *Channel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case channel.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case channel.FieldYoutubeChannelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field youtube_channel_id", values[i])
			} else if value.Valid {
				_m.YoutubeChannelID = value.String
			}
		case channel.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case channel.FieldConcept:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept", values[i])
			} else if value.Valid {
				_m.Concept = value.String
			}
		case channel.FieldTarget:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target", values[i])
			} else if value.Valid {
				_m.Target = value.String
			}
		case channel.FieldChannelHashTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel_hash_tag", values[i])
			} else if value.Valid {
				_m.ChannelHashTag = value.String
			}
		case channel.FieldSubscribe:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subscribe", values[i])
			} else if value.Valid {
				_m.Subscribe = value.Int64
			}
		case channel.FieldView:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field view", values[i])
			} else if value.Valid {
				_m.View = value.Int64
			}
		case channel.FieldVideoCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field video_count", values[i])
			} else if value.Valid {
				_m.VideoCount = int(value.Int64)
			}
		case channel.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Channel.
// This includes values selected through modifiers, order, etc.
func (_m *Channel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Channel.
// Note that you need to call Channel.Unwrap() before calling this method if this Channel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Channel) Update() *ChannelUpdateOne {
	return NewChannelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Channel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Channel) Unwrap() *Channel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Channel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Channel) String() string {
	var builder strings.Builder
	builder.WriteString("Channel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("youtube_channel_id=")
	builder.WriteString(_m.YoutubeChannelID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("concept=")
	builder.WriteString(_m.Concept)
	builder.WriteString(", ")
	builder.WriteString("target=")
	builder.WriteString(_m.Target)
	builder.WriteString(", ")
	builder.WriteString("channel_hash_tag=")
	builder.WriteString(_m.ChannelHashTag)
	builder.WriteString(", ")
	builder.WriteString("subscribe=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subscribe))
	builder.WriteString(", ")
	builder.WriteString("view=")
	builder.WriteString(fmt.Sprintf("%v", _m.View))
	builder.WriteString(", ")
	builder.WriteString("video_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.VideoCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Channels is a parsable slice of Channel.
type Channels []*Channel
