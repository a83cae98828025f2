// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/channeling-app/reportpipe/ent/report"
)

// Report is the model entity for the Report schema.
type Report struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// VideoID holds the value of the "video_id" field.
	VideoID int `json:"video_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// View holds the value of the "view" field.
	View int64 `json:"view,omitempty"`
	// Percent delta vs channel-wide mean
	ViewChannelAvg float64 `json:"view_channel_avg,omitempty"`
	// Percent delta vs same-category mean
	ViewTopicAvg float64 `json:"view_topic_avg,omitempty"`
	// LikeCount holds the value of the "like_count" field.
	LikeCount int64 `json:"like_count,omitempty"`
	// LikeChannelAvg holds the value of the "like_channel_avg" field.
	LikeChannelAvg float64 `json:"like_channel_avg,omitempty"`
	// LikeTopicAvg holds the value of the "like_topic_avg" field.
	LikeTopicAvg float64 `json:"like_topic_avg,omitempty"`
	// CommentCount holds the value of the "comment_count" field.
	CommentCount int64 `json:"comment_count,omitempty"`
	// CommentChannelAvg holds the value of the "comment_channel_avg" field.
	CommentChannelAvg float64 `json:"comment_channel_avg,omitempty"`
	// CommentTopicAvg holds the value of the "comment_topic_avg" field.
	CommentTopicAvg float64 `json:"comment_topic_avg,omitempty"`
	// Concept consistency score, 0-100
	Concept float64 `json:"concept,omitempty"`
	// SEO score, 0-100
	Seo float64 `json:"seo,omitempty"`
	// Revisit rate, percent
	Revisit float64 `json:"revisit,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// PositiveComment holds the value of the "positive_comment" field.
	PositiveComment int `json:"positive_comment,omitempty"`
	// NegativeComment holds the value of the "negative_comment" field.
	NegativeComment int `json:"negative_comment,omitempty"`
	// NeutralComment holds the value of the "neutral_comment" field.
	NeutralComment int `json:"neutral_comment,omitempty"`
	// AdviceComment holds the value of the "advice_comment" field.
	AdviceComment int `json:"advice_comment,omitempty"`
	// LeaveAnalyze holds the value of the "leave_analyze" field.
	LeaveAnalyze string `json:"leave_analyze,omitempty"`
	// Optimization holds the value of the "optimization" field.
	Optimization string `json:"optimization,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Report) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case report.FieldViewChannelAvg, report.FieldViewTopicAvg, report.FieldLikeChannelAvg, report.FieldLikeTopicAvg, report.FieldCommentChannelAvg, report.FieldCommentTopicAvg, report.FieldConcept, report.FieldSeo, report.FieldRevisit:
			values[i] = new(sql.NullFloat64)
		case report.FieldID, report.FieldVideoID, report.FieldView, report.FieldLikeCount, report.FieldCommentCount, report.FieldPositiveComment, report.FieldNegativeComment, report.FieldNeutralComment, report.FieldAdviceComment:
			values[i] = new(sql.NullInt64)
		case report.FieldTitle, report.FieldSummary, report.FieldLeaveAnalyze, report.FieldOptimization:
			values[i] = new(sql.NullString)
		case report.FieldCreatedAt, report.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Report fields.
func (_m *Report) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case report.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case report.FieldVideoID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field video_id", values[i])
			} else if value.Valid {
				_m.VideoID = int(value.Int64)
			}
		case report.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case report.FieldView:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field view", values[i])
			} else if value.Valid {
				_m.View = value.Int64
			}
		case report.FieldViewChannelAvg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field view_channel_avg", values[i])
			} else if value.Valid {
				_m.ViewChannelAvg = value.Float64
			}
		case report.FieldViewTopicAvg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field view_topic_avg", values[i])
			} else if value.Valid {
				_m.ViewTopicAvg = value.Float64
			}
		case report.FieldLikeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field like_count", values[i])
			} else if value.Valid {
				_m.LikeCount = value.Int64
			}
		case report.FieldLikeChannelAvg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field like_channel_avg", values[i])
			} else if value.Valid {
				_m.LikeChannelAvg = value.Float64
			}
		case report.FieldLikeTopicAvg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field like_topic_avg", values[i])
			} else if value.Valid {
				_m.LikeTopicAvg = value.Float64
			}
		case report.FieldCommentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field comment_count", values[i])
			} else if value.Valid {
				_m.CommentCount = value.Int64
			}
		case report.FieldCommentChannelAvg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field comment_channel_avg", values[i])
			} else if value.Valid {
				_m.CommentChannelAvg = value.Float64
			}
		case report.FieldCommentTopicAvg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field comment_topic_avg", values[i])
			} else if value.Valid {
				_m.CommentTopicAvg = value.Float64
			}
		case report.FieldConcept:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field concept", values[i])
			} else if value.Valid {
				_m.Concept = value.Float64
			}
		case report.FieldSeo:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field seo", values[i])
			} else if value.Valid {
				_m.Seo = value.Float64
			}
		case report.FieldRevisit:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field revisit", values[i])
			} else if value.Valid {
				_m.Revisit = value.Float64
			}
		case report.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case report.FieldPositiveComment:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field positive_comment", values[i])
			} else if value.Valid {
				_m.PositiveComment = int(value.Int64)
			}
		case report.FieldNegativeComment:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field negative_comment", values[i])
			} else if value.Valid {
				_m.NegativeComment = int(value.Int64)
			}
		case report.FieldNeutralComment:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field neutral_comment", values[i])
			} else if value.Valid {
				_m.NeutralComment = int(value.Int64)
			}
		case report.FieldAdviceComment:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field advice_comment", values[i])
			} else if value.Valid {
				_m.AdviceComment = int(value.Int64)
			}
		case report.FieldLeaveAnalyze:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field leave_analyze", values[i])
			} else if value.Valid {
				_m.LeaveAnalyze = value.String
			}
		case report.FieldOptimization:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field optimization", values[i])
			} else if value.Valid {
				_m.Optimization = value.String
			}
		case report.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case report.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Report.
// This includes values selected through modifiers, order, etc.
func (_m *Report) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Report.
// Note that you need to call Report.Unwrap() before calling this method if this Report
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Report) Update() *ReportUpdateOne {
	return NewReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Report entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Report) Unwrap() *Report {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Report is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Report) String() string {
	var builder strings.Builder
	builder.WriteString("Report(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("video_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.VideoID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("view=")
	builder.WriteString(fmt.Sprintf("%v", _m.View))
	builder.WriteString(", ")
	builder.WriteString("view_channel_avg=")
	builder.WriteString(fmt.Sprintf("%v", _m.ViewChannelAvg))
	builder.WriteString(", ")
	builder.WriteString("view_topic_avg=")
	builder.WriteString(fmt.Sprintf("%v", _m.ViewTopicAvg))
	builder.WriteString(", ")
	builder.WriteString("like_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LikeCount))
	builder.WriteString(", ")
	builder.WriteString("like_channel_avg=")
	builder.WriteString(fmt.Sprintf("%v", _m.LikeChannelAvg))
	builder.WriteString(", ")
	builder.WriteString("like_topic_avg=")
	builder.WriteString(fmt.Sprintf("%v", _m.LikeTopicAvg))
	builder.WriteString(", ")
	builder.WriteString("comment_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommentCount))
	builder.WriteString(", ")
	builder.WriteString("comment_channel_avg=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommentChannelAvg))
	builder.WriteString(", ")
	builder.WriteString("comment_topic_avg=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommentTopicAvg))
	builder.WriteString(", ")
	builder.WriteString("concept=")
	builder.WriteString(fmt.Sprintf("%v", _m.Concept))
	builder.WriteString(", ")
	builder.WriteString("seo=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seo))
	builder.WriteString(", ")
	builder.WriteString("revisit=")
	builder.WriteString(fmt.Sprintf("%v", _m.Revisit))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("positive_comment=")
	builder.WriteString(fmt.Sprintf("%v", _m.PositiveComment))
	builder.WriteString(", ")
	builder.WriteString("negative_comment=")
	builder.WriteString(fmt.Sprintf("%v", _m.NegativeComment))
	builder.WriteString(", ")
	builder.WriteString("neutral_comment=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeutralComment))
	builder.WriteString(", ")
	builder.WriteString("advice_comment=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdviceComment))
	builder.WriteString(", ")
	builder.WriteString("leave_analyze=")
	builder.WriteString(_m.LeaveAnalyze)
	builder.WriteString(", ")
	builder.WriteString("optimization=")
	builder.WriteString(_m.Optimization)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Reports is a parsable slice of Report.
type Reports []*Report
