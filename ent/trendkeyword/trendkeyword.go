// Code generated by ent, DO NOT EDIT.

package trendkeyword

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the trendkeyword type in the database.
	Label = "trend_keyword"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldKeywordType holds the string denoting the keyword_type field in the database.
	FieldKeywordType = "keyword_type"
	// FieldKeyword holds the string denoting the keyword field in the database.
	FieldKeyword = "keyword"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the trendkeyword in the database.
	Table = "trend_keywords"
)

// Columns holds all SQL columns for trendkeyword fields.
var Columns = []string{
	FieldID,
	FieldReportID,
	FieldKeywordType,
	FieldKeyword,
	FieldScore,
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
	// KeywordValidator is a validator for the "keyword" field. It is called by the builders before save.
	KeywordValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// KeywordType defines the type for the "keyword_type" enum field.
type KeywordType string

// KeywordType values.
const (
	KeywordTypeRealTime KeywordType = "REAL_TIME"
	KeywordTypeChannel  KeywordType = "CHANNEL"
)

func (kt KeywordType) String() string {
	return string(kt)
}

// KeywordTypeValidator is a validator for the "keyword_type" field enum values. It is called by the builders before save.
func KeywordTypeValidator(kt KeywordType) error {
	switch kt {
	case KeywordTypeRealTime, KeywordTypeChannel:
		return nil
	default:
		return fmt.Errorf("trendkeyword: invalid enum value for keyword_type field: %q", kt)
	}
}

// OrderOption defines the ordering options for the TrendKeyword queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByKeywordType orders the results by the keyword_type field.
func ByKeywordType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeywordType, opts...).ToFunc()
}

// ByKeyword orders the results by the keyword field.
func ByKeyword(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyword, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
