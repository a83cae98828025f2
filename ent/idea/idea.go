// Code generated by ent, DO NOT EDIT.

package idea

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the idea type in the database.
	Label = "idea"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldChannelID holds the string denoting the channel_id field in the database.
	FieldChannelID = "channel_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldHashTag holds the string denoting the hash_tag field in the database.
	FieldHashTag = "hash_tag"
	// FieldIsBookMarked holds the string denoting the is_book_marked field in the database.
	FieldIsBookMarked = "is_book_marked"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the idea in the database.
	Table = "ideas"
)

// Columns holds all SQL columns for idea fields.
var Columns = []string{
	FieldID,
	FieldChannelID,
	FieldTitle,
	FieldContent,
	FieldHashTag,
	FieldIsBookMarked,
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
	// DefaultIsBookMarked holds the default value on creation for the "is_book_marked" field.
	DefaultIsBookMarked int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Idea queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChannelID orders the results by the channel_id field.
func ByChannelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByHashTag orders the results by the hash_tag field.
func ByHashTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashTag, opts...).ToFunc()
}

// ByIsBookMarked orders the results by the is_book_marked field.
func ByIsBookMarked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBookMarked, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
