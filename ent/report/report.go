// Code generated by ent, DO NOT EDIT.

package report

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the report type in the database.
	Label = "report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVideoID holds the string denoting the video_id field in the database.
	FieldVideoID = "video_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldView holds the string denoting the view field in the database.
	FieldView = "view"
	// FieldViewChannelAvg holds the string denoting the view_channel_avg field in the database.
	FieldViewChannelAvg = "view_channel_avg"
	// FieldViewTopicAvg holds the string denoting the view_topic_avg field in the database.
	FieldViewTopicAvg = "view_topic_avg"
	// FieldLikeCount holds the string denoting the like_count field in the database.
	FieldLikeCount = "like_count"
	// FieldLikeChannelAvg holds the string denoting the like_channel_avg field in the database.
	FieldLikeChannelAvg = "like_channel_avg"
	// FieldLikeTopicAvg holds the string denoting the like_topic_avg field in the database.
	FieldLikeTopicAvg = "like_topic_avg"
	// FieldCommentCount holds the string denoting the comment_count field in the database.
	FieldCommentCount = "comment_count"
	// FieldCommentChannelAvg holds the string denoting the comment_channel_avg field in the database.
	FieldCommentChannelAvg = "comment_channel_avg"
	// FieldCommentTopicAvg holds the string denoting the comment_topic_avg field in the database.
	FieldCommentTopicAvg = "comment_topic_avg"
	// FieldConcept holds the string denoting the concept field in the database.
	FieldConcept = "concept"
	// FieldSeo holds the string denoting the seo field in the database.
	FieldSeo = "seo"
	// FieldRevisit holds the string denoting the revisit field in the database.
	FieldRevisit = "revisit"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldPositiveComment holds the string denoting the positive_comment field in the database.
	FieldPositiveComment = "positive_comment"
	// FieldNegativeComment holds the string denoting the negative_comment field in the database.
	FieldNegativeComment = "negative_comment"
	// FieldNeutralComment holds the string denoting the neutral_comment field in the database.
	FieldNeutralComment = "neutral_comment"
	// FieldAdviceComment holds the string denoting the advice_comment field in the database.
	FieldAdviceComment = "advice_comment"
	// FieldLeaveAnalyze holds the string denoting the leave_analyze field in the database.
	FieldLeaveAnalyze = "leave_analyze"
	// FieldOptimization holds the string denoting the optimization field in the database.
	FieldOptimization = "optimization"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the report in the database.
	Table = "reports"
)

// Columns holds all SQL columns for report fields.
var Columns = []string{
	FieldID,
	FieldVideoID,
	FieldTitle,
	FieldView,
	FieldViewChannelAvg,
	FieldViewTopicAvg,
	FieldLikeCount,
	FieldLikeChannelAvg,
	FieldLikeTopicAvg,
	FieldCommentCount,
	FieldCommentChannelAvg,
	FieldCommentTopicAvg,
	FieldConcept,
	FieldSeo,
	FieldRevisit,
	FieldSummary,
	FieldPositiveComment,
	FieldNegativeComment,
	FieldNeutralComment,
	FieldAdviceComment,
	FieldLeaveAnalyze,
	FieldOptimization,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Report queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVideoID orders the results by the video_id field.
func ByVideoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByView orders the results by the view field.
func ByView(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldView, opts...).ToFunc()
}

// ByViewChannelAvg orders the results by the view_channel_avg field.
func ByViewChannelAvg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViewChannelAvg, opts...).ToFunc()
}

// ByViewTopicAvg orders the results by the view_topic_avg field.
func ByViewTopicAvg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViewTopicAvg, opts...).ToFunc()
}

// ByLikeCount orders the results by the like_count field.
func ByLikeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLikeCount, opts...).ToFunc()
}

// ByLikeChannelAvg orders the results by the like_channel_avg field.
func ByLikeChannelAvg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLikeChannelAvg, opts...).ToFunc()
}

// ByLikeTopicAvg orders the results by the like_topic_avg field.
func ByLikeTopicAvg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLikeTopicAvg, opts...).ToFunc()
}

// ByCommentCount orders the results by the comment_count field.
func ByCommentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommentCount, opts...).ToFunc()
}

// ByCommentChannelAvg orders the results by the comment_channel_avg field.
func ByCommentChannelAvg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommentChannelAvg, opts...).ToFunc()
}

// ByCommentTopicAvg orders the results by the comment_topic_avg field.
func ByCommentTopicAvg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommentTopicAvg, opts...).ToFunc()
}

// ByConcept orders the results by the concept field.
func ByConcept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcept, opts...).ToFunc()
}

// BySeo orders the results by the seo field.
func BySeo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeo, opts...).ToFunc()
}

// ByRevisit orders the results by the revisit field.
func ByRevisit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevisit, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByPositiveComment orders the results by the positive_comment field.
func ByPositiveComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPositiveComment, opts...).ToFunc()
}

// ByNegativeComment orders the results by the negative_comment field.
func ByNegativeComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNegativeComment, opts...).ToFunc()
}

// ByNeutralComment orders the results by the neutral_comment field.
func ByNeutralComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeutralComment, opts...).ToFunc()
}

// ByAdviceComment orders the results by the advice_comment field.
func ByAdviceComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdviceComment, opts...).ToFunc()
}

// ByLeaveAnalyze orders the results by the leave_analyze field.
func ByLeaveAnalyze(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaveAnalyze, opts...).ToFunc()
}

// ByOptimization orders the results by the optimization field.
func ByOptimization(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptimization, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
