// Code generated by ent, DO NOT EDIT.

package channel

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the channel type in the database.
	Label = "channel"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldYoutubeChannelID holds the string denoting the youtube_channel_id field in the database.
	FieldYoutubeChannelID = "youtube_channel_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldConcept holds the string denoting the concept field in the database.
	FieldConcept = "concept"
	// FieldTarget holds the string denoting the target field in the database.
	FieldTarget = "target"
	// FieldChannelHashTag holds the string denoting the channel_hash_tag field in the database.
	FieldChannelHashTag = "channel_hash_tag"
	// FieldSubscribe holds the string denoting the subscribe field in the database.
	FieldSubscribe = "subscribe"
	// FieldView holds the string denoting the view field in the database.
	FieldView = "view"
	// FieldVideoCount holds the string denoting the video_count field in the database.
	FieldVideoCount = "video_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the channel in the database.
	Table = "channels"
)

// Columns holds all SQL columns for channel fields.
var Columns = []string{
	FieldID,
	FieldYoutubeChannelID,
	FieldName,
	FieldConcept,
	FieldTarget,
	FieldChannelHashTag,
	FieldSubscribe,
	FieldView,
	FieldVideoCount,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Channel queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByYoutubeChannelID orders the results by the youtube_channel_id field.
func ByYoutubeChannelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYoutubeChannelID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByConcept orders the results by the concept field.
func ByConcept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcept, opts...).ToFunc()
}

// ByTarget orders the results by the target field.
func ByTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTarget, opts...).ToFunc()
}

// ByChannelHashTag orders the results by the channel_hash_tag field.
func ByChannelHashTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelHashTag, opts...).ToFunc()
}

// BySubscribe orders the results by the subscribe field.
func BySubscribe(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscribe, opts...).ToFunc()
}

// ByView orders the results by the view field.
func ByView(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldView, opts...).ToFunc()
}

// ByVideoCount orders the results by the video_count field.
func ByVideoCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
