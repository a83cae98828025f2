// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/channeling-app/reportpipe/ent/trendkeyword"
)

// TrendKeyword is the model entity for the TrendKeyword schema.
type TrendKeyword struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID int `json:"report_id,omitempty"`
	// KeywordType holds the value of the "keyword_type" field.
	KeywordType trendkeyword.KeywordType `json:"keyword_type,omitempty"`
	// Keyword holds the value of the "keyword" field.
	Keyword string `json:"keyword,omitempty"`
	// Relevance score, 0-100
	Score int `json:"score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrendKeyword) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trendkeyword.FieldID, trendkeyword.FieldReportID, trendkeyword.FieldScore:
			values[i] = new(sql.NullInt64)
		case trendkeyword.FieldKeywordType, trendkeyword.FieldKeyword:
			values[i] = new(sql.NullString)
		case trendkeyword.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrendKeyword fields.
func (_m *TrendKeyword) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trendkeyword.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case trendkeyword.FieldReportID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = int(value.Int64)
			}
		case trendkeyword.FieldKeywordType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field keyword_type", values[i])
			} else if value.Valid {
				_m.KeywordType = trendkeyword.KeywordType(value.String)
			}
		case trendkeyword.FieldKeyword:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field keyword", values[i])
			} else if value.Valid {
				_m.Keyword = value.String
			}
		case trendkeyword.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case trendkeyword.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TrendKeyword.
// This includes values selected through modifiers, order, etc.
func (_m *TrendKeyword) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TrendKeyword.
// Note that you need to call TrendKeyword.Unwrap() before calling this method if this TrendKeyword
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrendKeyword) Update() *TrendKeywordUpdateOne {
	return NewTrendKeywordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrendKeyword entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrendKeyword) Unwrap() *TrendKeyword {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrendKeyword is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrendKeyword) String() string {
	var builder strings.Builder
	builder.WriteString("TrendKeyword(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportID))
	builder.WriteString(", ")
	builder.WriteString("keyword_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeywordType))
	builder.WriteString(", ")
	builder.WriteString("keyword=")
	builder.WriteString(_m.Keyword)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrendKeywords is a parsable slice of TrendKeyword.
type TrendKeywords []*TrendKeyword
