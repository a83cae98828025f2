// Code generated by ent, DO NOT EDIT.

package comment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the comment type in the database.
	Label = "comment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldCommentType holds the string denoting the comment_type field in the database.
	FieldCommentType = "comment_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the comment in the database.
	Table = "comments"
)

// Columns holds all SQL columns for comment fields.
var Columns = []string{
	FieldID,
	FieldReportID,
	FieldCommentType,
	FieldContent,
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

// CommentType defines the type for the "comment_type" enum field.
type CommentType string

// CommentType values.
const (
	CommentTypePositive      CommentType = "POSITIVE"
	CommentTypeNegative      CommentType = "NEGATIVE"
	CommentTypeNeutral       CommentType = "NEUTRAL"
	CommentTypeAdviceOpinion CommentType = "ADVICE_OPINION"
)

func (ct CommentType) String() string {
	return string(ct)
}

// CommentTypeValidator is a validator for the "comment_type" field enum values. It is called by the builders before save.
func CommentTypeValidator(ct CommentType) error {
	switch ct {
	case CommentTypePositive, CommentTypeNegative, CommentTypeNeutral, CommentTypeAdviceOpinion:
		return nil
	default:
		return fmt.Errorf("comment: invalid enum value for comment_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the Comment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByCommentType orders the results by the comment_type field.
func ByCommentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommentType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
