// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/channeling-app/reportpipe/ent/idea"
)

// Idea is the model entity for the Idea schema.
type Idea struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ChannelID holds the value of the "channel_id" field.
	ChannelID int `json:"channel_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// JSON-encoded tag list
	HashTag string `json:"hash_tag,omitempty"`
	// IsBookMarked holds the value of the "is_book_marked" field.
	IsBookMarked int `json:"is_book_marked,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Idea) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case idea.FieldID, idea.FieldChannelID, idea.FieldIsBookMarked:
			values[i] = new(sql.NullInt64)
		case idea.FieldTitle, idea.FieldContent, idea.FieldHashTag:
			values[i] = new(sql.NullString)
		case idea.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Idea fields.
func (_m *Idea) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case idea.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case idea.FieldChannelID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field channel_id", values[i])
			} else if value.Valid {
				_m.ChannelID = int(value.Int64)
			}
		case idea.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case idea.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case idea.FieldHashTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hash_tag", values[i])
			} else if value.Valid {
				_m.HashTag = value.String
			}
		case idea.FieldIsBookMarked:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field is_book_marked", values[i])
			} else if value.Valid {
				_m.IsBookMarked = int(value.Int64)
			}
		case idea.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Idea.
// This includes values selected through modifiers, order, etc.
func (_m *Idea) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Idea.
// Note that you need to call Idea.Unwrap() before calling this method if this Idea
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Idea) Update() *IdeaUpdateOne {
	return NewIdeaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Idea entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Idea) Unwrap() *Idea {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Idea is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Idea) String() string {
	var builder strings.Builder
	builder.WriteString("Idea(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("channel_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChannelID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("hash_tag=")
	builder.WriteString(_m.HashTag)
	builder.WriteString(", ")
	builder.WriteString("is_book_marked=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBookMarked))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Ideas is a parsable slice of Idea.
type Ideas []*Idea
