// Code generated by ent, DO NOT EDIT.

package report

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/channeling-app/reportpipe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldID, id))
}

// VideoID applies equality check predicate on the "video_id" field. It's identical to VideoIDEQ.
func VideoID(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldVideoID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTitle, v))
}

// View applies equality check predicate on the "view" field. It's identical to ViewEQ.
func View(v int64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldView, v))
}

// ViewChannelAvg applies equality check predicate on the "view_channel_avg" field. It's identical to ViewChannelAvgEQ.
func ViewChannelAvg(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldViewChannelAvg, v))
}

// ViewTopicAvg applies equality check predicate on the "view_topic_avg" field. It's identical to ViewTopicAvgEQ.
func ViewTopicAvg(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldViewTopicAvg, v))
}

// LikeCount applies equality check predicate on the "like_count" field. It's identical to LikeCountEQ.
func LikeCount(v int64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLikeCount, v))
}

// LikeChannelAvg applies equality check predicate on the "like_channel_avg" field. It's identical to LikeChannelAvgEQ.
func LikeChannelAvg(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLikeChannelAvg, v))
}

// LikeTopicAvg applies equality check predicate on the "like_topic_avg" field. It's identical to LikeTopicAvgEQ.
func LikeTopicAvg(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLikeTopicAvg, v))
}

// CommentCount applies equality check predicate on the "comment_count" field. It's identical to CommentCountEQ.
func CommentCount(v int64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCommentCount, v))
}

// CommentChannelAvg applies equality check predicate on the "comment_channel_avg" field. It's identical to CommentChannelAvgEQ.
func CommentChannelAvg(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCommentChannelAvg, v))
}

// CommentTopicAvg applies equality check predicate on the "comment_topic_avg" field. It's identical to CommentTopicAvgEQ.
func CommentTopicAvg(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCommentTopicAvg, v))
}

// Concept applies equality check predicate on the "concept" field. It's identical to ConceptEQ.
func Concept(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldConcept, v))
}

// Seo applies equality check predicate on the "seo" field. It's identical to SeoEQ.
func Seo(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSeo, v))
}

// Revisit applies equality check predicate on the "revisit" field. It's identical to RevisitEQ.
func Revisit(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldRevisit, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSummary, v))
}

// PositiveComment applies equality check predicate on the "positive_comment" field. It's identical to PositiveCommentEQ.
func PositiveComment(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldPositiveComment, v))
}

// NegativeComment applies equality check predicate on the "negative_comment" field. It's identical to NegativeCommentEQ.
func NegativeComment(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldNegativeComment, v))
}

// NeutralComment applies equality check predicate on the "neutral_comment" field. It's identical to NeutralCommentEQ.
func NeutralComment(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldNeutralComment, v))
}

// AdviceComment applies equality check predicate on the "advice_comment" field. It's identical to AdviceCommentEQ.
func AdviceComment(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldAdviceComment, v))
}

// LeaveAnalyze applies equality check predicate on the "leave_analyze" field. It's identical to LeaveAnalyzeEQ.
func LeaveAnalyze(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLeaveAnalyze, v))
}

// Optimization applies equality check predicate on the "optimization" field. It's identical to OptimizationEQ.
func Optimization(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldOptimization, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpdatedAt, v))
}

// VideoIDEQ applies the EQ predicate on the "video_id" field.
func VideoIDEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldVideoID, v))
}

// VideoIDNEQ applies the NEQ predicate on the "video_id" field.
func VideoIDNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldVideoID, v))
}

// VideoIDIn applies the In predicate on the "video_id" field.
func VideoIDIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldVideoID, vs...))
}

// VideoIDNotIn applies the NotIn predicate on the "video_id" field.
func VideoIDNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldVideoID, vs...))
}

// VideoIDGT applies the GT predicate on the "video_id" field.
func VideoIDGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldVideoID, v))
}

// VideoIDGTE applies the GTE predicate on the "video_id" field.
func VideoIDGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldVideoID, v))
}

// VideoIDLT applies the LT predicate on the "video_id" field.
func VideoIDLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldVideoID, v))
}

// VideoIDLTE applies the LTE predicate on the "video_id" field.
func VideoIDLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldVideoID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldTitle, v))
}

// ViewEQ applies the EQ predicate on the "view" field.
func ViewEQ(v int64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldView, v))
}

// ViewNEQ applies the NEQ predicate on the "view" field.
func ViewNEQ(v int64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldView, v))
}

// ViewIn applies the In predicate on the "view" field.
func ViewIn(vs ...int64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldView, vs...))
}

// ViewNotIn applies the NotIn predicate on the "view" field.
func ViewNotIn(vs ...int64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldView, vs...))
}

// ViewGT applies the GT predicate on the "view" field.
func ViewGT(v int64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldView, v))
}

// ViewGTE applies the GTE predicate on the "view" field.
func ViewGTE(v int64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldView, v))
}

// ViewLT applies the LT predicate on the "view" field.
func ViewLT(v int64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldView, v))
}

// ViewLTE applies the LTE predicate on the "view" field.
func ViewLTE(v int64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldView, v))
}

// ViewIsNil applies the IsNil predicate on the "view" field.
func ViewIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldView))
}

// ViewNotNil applies the NotNil predicate on the "view" field.
func ViewNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldView))
}

// ViewChannelAvgEQ applies the EQ predicate on the "view_channel_avg" field.
func ViewChannelAvgEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldViewChannelAvg, v))
}

// ViewChannelAvgNEQ applies the NEQ predicate on the "view_channel_avg" field.
func ViewChannelAvgNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldViewChannelAvg, v))
}

// ViewChannelAvgIn applies the In predicate on the "view_channel_avg" field.
func ViewChannelAvgIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldViewChannelAvg, vs...))
}

// ViewChannelAvgNotIn applies the NotIn predicate on the "view_channel_avg" field.
func ViewChannelAvgNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldViewChannelAvg, vs...))
}

// ViewChannelAvgGT applies the GT predicate on the "view_channel_avg" field.
func ViewChannelAvgGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldViewChannelAvg, v))
}

// ViewChannelAvgGTE applies the GTE predicate on the "view_channel_avg" field.
func ViewChannelAvgGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldViewChannelAvg, v))
}

// ViewChannelAvgLT applies the LT predicate on the "view_channel_avg" field.
func ViewChannelAvgLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldViewChannelAvg, v))
}

// ViewChannelAvgLTE applies the LTE predicate on the "view_channel_avg" field.
func ViewChannelAvgLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldViewChannelAvg, v))
}

// ViewChannelAvgIsNil applies the IsNil predicate on the "view_channel_avg" field.
func ViewChannelAvgIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldViewChannelAvg))
}

// ViewChannelAvgNotNil applies the NotNil predicate on the "view_channel_avg" field.
func ViewChannelAvgNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldViewChannelAvg))
}

// ViewTopicAvgEQ applies the EQ predicate on the "view_topic_avg" field.
func ViewTopicAvgEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldViewTopicAvg, v))
}

// ViewTopicAvgNEQ applies the NEQ predicate on the "view_topic_avg" field.
func ViewTopicAvgNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldViewTopicAvg, v))
}

// ViewTopicAvgIn applies the In predicate on the "view_topic_avg" field.
func ViewTopicAvgIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldViewTopicAvg, vs...))
}

// ViewTopicAvgNotIn applies the NotIn predicate on the "view_topic_avg" field.
func ViewTopicAvgNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldViewTopicAvg, vs...))
}

// ViewTopicAvgGT applies the GT predicate on the "view_topic_avg" field.
func ViewTopicAvgGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldViewTopicAvg, v))
}

// ViewTopicAvgGTE applies the GTE predicate on the "view_topic_avg" field.
func ViewTopicAvgGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldViewTopicAvg, v))
}

// ViewTopicAvgLT applies the LT predicate on the "view_topic_avg" field.
func ViewTopicAvgLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldViewTopicAvg, v))
}

// ViewTopicAvgLTE applies the LTE predicate on the "view_topic_avg" field.
func ViewTopicAvgLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldViewTopicAvg, v))
}

// ViewTopicAvgIsNil applies the IsNil predicate on the "view_topic_avg" field.
func ViewTopicAvgIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldViewTopicAvg))
}

// ViewTopicAvgNotNil applies the NotNil predicate on the "view_topic_avg" field.
func ViewTopicAvgNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldViewTopicAvg))
}

// LikeCountEQ applies the EQ predicate on the "like_count" field.
func LikeCountEQ(v int64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLikeCount, v))
}

// LikeCountNEQ applies the NEQ predicate on the "like_count" field.
func LikeCountNEQ(v int64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldLikeCount, v))
}

// LikeCountIn applies the In predicate on the "like_count" field.
func LikeCountIn(vs ...int64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldLikeCount, vs...))
}

// LikeCountNotIn applies the NotIn predicate on the "like_count" field.
func LikeCountNotIn(vs ...int64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldLikeCount, vs...))
}

// LikeCountGT applies the GT predicate on the "like_count" field.
func LikeCountGT(v int64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldLikeCount, v))
}

// LikeCountGTE applies the GTE predicate on the "like_count" field.
func LikeCountGTE(v int64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldLikeCount, v))
}

// LikeCountLT applies the LT predicate on the "like_count" field.
func LikeCountLT(v int64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldLikeCount, v))
}

// LikeCountLTE applies the LTE predicate on the "like_count" field.
func LikeCountLTE(v int64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldLikeCount, v))
}

// LikeCountIsNil applies the IsNil predicate on the "like_count" field.
func LikeCountIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldLikeCount))
}

// LikeCountNotNil applies the NotNil predicate on the "like_count" field.
func LikeCountNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldLikeCount))
}

// LikeChannelAvgEQ applies the EQ predicate on the "like_channel_avg" field.
func LikeChannelAvgEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLikeChannelAvg, v))
}

// LikeChannelAvgNEQ applies the NEQ predicate on the "like_channel_avg" field.
func LikeChannelAvgNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldLikeChannelAvg, v))
}

// LikeChannelAvgIn applies the In predicate on the "like_channel_avg" field.
func LikeChannelAvgIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldLikeChannelAvg, vs...))
}

// LikeChannelAvgNotIn applies the NotIn predicate on the "like_channel_avg" field.
func LikeChannelAvgNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldLikeChannelAvg, vs...))
}

// LikeChannelAvgGT applies the GT predicate on the "like_channel_avg" field.
func LikeChannelAvgGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldLikeChannelAvg, v))
}

// LikeChannelAvgGTE applies the GTE predicate on the "like_channel_avg" field.
func LikeChannelAvgGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldLikeChannelAvg, v))
}

// LikeChannelAvgLT applies the LT predicate on the "like_channel_avg" field.
func LikeChannelAvgLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldLikeChannelAvg, v))
}

// LikeChannelAvgLTE applies the LTE predicate on the "like_channel_avg" field.
func LikeChannelAvgLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldLikeChannelAvg, v))
}

// LikeChannelAvgIsNil applies the IsNil predicate on the "like_channel_avg" field.
func LikeChannelAvgIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldLikeChannelAvg))
}

// LikeChannelAvgNotNil applies the NotNil predicate on the "like_channel_avg" field.
func LikeChannelAvgNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldLikeChannelAvg))
}

// LikeTopicAvgEQ applies the EQ predicate on the "like_topic_avg" field.
func LikeTopicAvgEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLikeTopicAvg, v))
}

// LikeTopicAvgNEQ applies the NEQ predicate on the "like_topic_avg" field.
func LikeTopicAvgNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldLikeTopicAvg, v))
}

// LikeTopicAvgIn applies the In predicate on the "like_topic_avg" field.
func LikeTopicAvgIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldLikeTopicAvg, vs...))
}

// LikeTopicAvgNotIn applies the NotIn predicate on the "like_topic_avg" field.
func LikeTopicAvgNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldLikeTopicAvg, vs...))
}

// LikeTopicAvgGT applies the GT predicate on the "like_topic_avg" field.
func LikeTopicAvgGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldLikeTopicAvg, v))
}

// LikeTopicAvgGTE applies the GTE predicate on the "like_topic_avg" field.
func LikeTopicAvgGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldLikeTopicAvg, v))
}

// LikeTopicAvgLT applies the LT predicate on the "like_topic_avg" field.
func LikeTopicAvgLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldLikeTopicAvg, v))
}

// LikeTopicAvgLTE applies the LTE predicate on the "like_topic_avg" field.
func LikeTopicAvgLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldLikeTopicAvg, v))
}

// LikeTopicAvgIsNil applies the IsNil predicate on the "like_topic_avg" field.
func LikeTopicAvgIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldLikeTopicAvg))
}

// LikeTopicAvgNotNil applies the NotNil predicate on the "like_topic_avg" field.
func LikeTopicAvgNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldLikeTopicAvg))
}

// CommentCountEQ applies the EQ predicate on the "comment_count" field.
func CommentCountEQ(v int64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCommentCount, v))
}

// CommentCountNEQ applies the NEQ predicate on the "comment_count" field.
func CommentCountNEQ(v int64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCommentCount, v))
}

// CommentCountIn applies the In predicate on the "comment_count" field.
func CommentCountIn(vs ...int64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCommentCount, vs...))
}

// CommentCountNotIn applies the NotIn predicate on the "comment_count" field.
func CommentCountNotIn(vs ...int64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCommentCount, vs...))
}

// CommentCountGT applies the GT predicate on the "comment_count" field.
func CommentCountGT(v int64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCommentCount, v))
}

// CommentCountGTE applies the GTE predicate on the "comment_count" field.
func CommentCountGTE(v int64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCommentCount, v))
}

// CommentCountLT applies the LT predicate on the "comment_count" field.
func CommentCountLT(v int64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCommentCount, v))
}

// CommentCountLTE applies the LTE predicate on the "comment_count" field.
func CommentCountLTE(v int64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCommentCount, v))
}

// CommentCountIsNil applies the IsNil predicate on the "comment_count" field.
func CommentCountIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldCommentCount))
}

// CommentCountNotNil applies the NotNil predicate on the "comment_count" field.
func CommentCountNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldCommentCount))
}

// CommentChannelAvgEQ applies the EQ predicate on the "comment_channel_avg" field.
func CommentChannelAvgEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCommentChannelAvg, v))
}

// CommentChannelAvgNEQ applies the NEQ predicate on the "comment_channel_avg" field.
func CommentChannelAvgNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCommentChannelAvg, v))
}

// CommentChannelAvgIn applies the In predicate on the "comment_channel_avg" field.
func CommentChannelAvgIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCommentChannelAvg, vs...))
}

// CommentChannelAvgNotIn applies the NotIn predicate on the "comment_channel_avg" field.
func CommentChannelAvgNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCommentChannelAvg, vs...))
}

// CommentChannelAvgGT applies the GT predicate on the "comment_channel_avg" field.
func CommentChannelAvgGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCommentChannelAvg, v))
}

// CommentChannelAvgGTE applies the GTE predicate on the "comment_channel_avg" field.
func CommentChannelAvgGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCommentChannelAvg, v))
}

// CommentChannelAvgLT applies the LT predicate on the "comment_channel_avg" field.
func CommentChannelAvgLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCommentChannelAvg, v))
}

// CommentChannelAvgLTE applies the LTE predicate on the "comment_channel_avg" field.
func CommentChannelAvgLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCommentChannelAvg, v))
}

// CommentChannelAvgIsNil applies the IsNil predicate on the "comment_channel_avg" field.
func CommentChannelAvgIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldCommentChannelAvg))
}

// CommentChannelAvgNotNil applies the NotNil predicate on the "comment_channel_avg" field.
func CommentChannelAvgNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldCommentChannelAvg))
}

// CommentTopicAvgEQ applies the EQ predicate on the "comment_topic_avg" field.
func CommentTopicAvgEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCommentTopicAvg, v))
}

// CommentTopicAvgNEQ applies the NEQ predicate on the "comment_topic_avg" field.
func CommentTopicAvgNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCommentTopicAvg, v))
}

// CommentTopicAvgIn applies the In predicate on the "comment_topic_avg" field.
func CommentTopicAvgIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCommentTopicAvg, vs...))
}

// CommentTopicAvgNotIn applies the NotIn predicate on the "comment_topic_avg" field.
func CommentTopicAvgNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCommentTopicAvg, vs...))
}

// CommentTopicAvgGT applies the GT predicate on the "comment_topic_avg" field.
func CommentTopicAvgGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCommentTopicAvg, v))
}

// CommentTopicAvgGTE applies the GTE predicate on the "comment_topic_avg" field.
func CommentTopicAvgGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCommentTopicAvg, v))
}

// CommentTopicAvgLT applies the LT predicate on the "comment_topic_avg" field.
func CommentTopicAvgLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCommentTopicAvg, v))
}

// CommentTopicAvgLTE applies the LTE predicate on the "comment_topic_avg" field.
func CommentTopicAvgLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCommentTopicAvg, v))
}

// CommentTopicAvgIsNil applies the IsNil predicate on the "comment_topic_avg" field.
func CommentTopicAvgIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldCommentTopicAvg))
}

// CommentTopicAvgNotNil applies the NotNil predicate on the "comment_topic_avg" field.
func CommentTopicAvgNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldCommentTopicAvg))
}

// ConceptEQ applies the EQ predicate on the "concept" field.
func ConceptEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldConcept, v))
}

// ConceptNEQ applies the NEQ predicate on the "concept" field.
func ConceptNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldConcept, v))
}

// ConceptIn applies the In predicate on the "concept" field.
func ConceptIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldConcept, vs...))
}

// ConceptNotIn applies the NotIn predicate on the "concept" field.
func ConceptNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldConcept, vs...))
}

// ConceptGT applies the GT predicate on the "concept" field.
func ConceptGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldConcept, v))
}

// ConceptGTE applies the GTE predicate on the "concept" field.
func ConceptGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldConcept, v))
}

// ConceptLT applies the LT predicate on the "concept" field.
func ConceptLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldConcept, v))
}

// ConceptLTE applies the LTE predicate on the "concept" field.
func ConceptLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldConcept, v))
}

// ConceptIsNil applies the IsNil predicate on the "concept" field.
func ConceptIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldConcept))
}

// ConceptNotNil applies the NotNil predicate on the "concept" field.
func ConceptNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldConcept))
}

// SeoEQ applies the EQ predicate on the "seo" field.
func SeoEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSeo, v))
}

// SeoNEQ applies the NEQ predicate on the "seo" field.
func SeoNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldSeo, v))
}

// SeoIn applies the In predicate on the "seo" field.
func SeoIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldSeo, vs...))
}

// SeoNotIn applies the NotIn predicate on the "seo" field.
func SeoNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldSeo, vs...))
}

// SeoGT applies the GT predicate on the "seo" field.
func SeoGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldSeo, v))
}

// SeoGTE applies the GTE predicate on the "seo" field.
func SeoGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldSeo, v))
}

// SeoLT applies the LT predicate on the "seo" field.
func SeoLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldSeo, v))
}

// SeoLTE applies the LTE predicate on the "seo" field.
func SeoLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldSeo, v))
}

// SeoIsNil applies the IsNil predicate on the "seo" field.
func SeoIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldSeo))
}

// SeoNotNil applies the NotNil predicate on the "seo" field.
func SeoNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldSeo))
}

// RevisitEQ applies the EQ predicate on the "revisit" field.
func RevisitEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldRevisit, v))
}

// RevisitNEQ applies the NEQ predicate on the "revisit" field.
func RevisitNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldRevisit, v))
}

// RevisitIn applies the In predicate on the "revisit" field.
func RevisitIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldRevisit, vs...))
}

// RevisitNotIn applies the NotIn predicate on the "revisit" field.
func RevisitNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldRevisit, vs...))
}

// RevisitGT applies the GT predicate on the "revisit" field.
func RevisitGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldRevisit, v))
}

// RevisitGTE applies the GTE predicate on the "revisit" field.
func RevisitGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldRevisit, v))
}

// RevisitLT applies the LT predicate on the "revisit" field.
func RevisitLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldRevisit, v))
}

// RevisitLTE applies the LTE predicate on the "revisit" field.
func RevisitLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldRevisit, v))
}

// RevisitIsNil applies the IsNil predicate on the "revisit" field.
func RevisitIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldRevisit))
}

// RevisitNotNil applies the NotNil predicate on the "revisit" field.
func RevisitNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldRevisit))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldSummary, v))
}

// PositiveCommentEQ applies the EQ predicate on the "positive_comment" field.
func PositiveCommentEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldPositiveComment, v))
}

// PositiveCommentNEQ applies the NEQ predicate on the "positive_comment" field.
func PositiveCommentNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldPositiveComment, v))
}

// PositiveCommentIn applies the In predicate on the "positive_comment" field.
func PositiveCommentIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldPositiveComment, vs...))
}

// PositiveCommentNotIn applies the NotIn predicate on the "positive_comment" field.
func PositiveCommentNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldPositiveComment, vs...))
}

// PositiveCommentGT applies the GT predicate on the "positive_comment" field.
func PositiveCommentGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldPositiveComment, v))
}

// PositiveCommentGTE applies the GTE predicate on the "positive_comment" field.
func PositiveCommentGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldPositiveComment, v))
}

// PositiveCommentLT applies the LT predicate on the "positive_comment" field.
func PositiveCommentLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldPositiveComment, v))
}

// PositiveCommentLTE applies the LTE predicate on the "positive_comment" field.
func PositiveCommentLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldPositiveComment, v))
}

// PositiveCommentIsNil applies the IsNil predicate on the "positive_comment" field.
func PositiveCommentIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldPositiveComment))
}

// PositiveCommentNotNil applies the NotNil predicate on the "positive_comment" field.
func PositiveCommentNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldPositiveComment))
}

// NegativeCommentEQ applies the EQ predicate on the "negative_comment" field.
func NegativeCommentEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldNegativeComment, v))
}

// NegativeCommentNEQ applies the NEQ predicate on the "negative_comment" field.
func NegativeCommentNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldNegativeComment, v))
}

// NegativeCommentIn applies the In predicate on the "negative_comment" field.
func NegativeCommentIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldNegativeComment, vs...))
}

// NegativeCommentNotIn applies the NotIn predicate on the "negative_comment" field.
func NegativeCommentNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldNegativeComment, vs...))
}

// NegativeCommentGT applies the GT predicate on the "negative_comment" field.
func NegativeCommentGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldNegativeComment, v))
}

// NegativeCommentGTE applies the GTE predicate on the "negative_comment" field.
func NegativeCommentGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldNegativeComment, v))
}

// NegativeCommentLT applies the LT predicate on the "negative_comment" field.
func NegativeCommentLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldNegativeComment, v))
}

// NegativeCommentLTE applies the LTE predicate on the "negative_comment" field.
func NegativeCommentLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldNegativeComment, v))
}

// NegativeCommentIsNil applies the IsNil predicate on the "negative_comment" field.
func NegativeCommentIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldNegativeComment))
}

// NegativeCommentNotNil applies the NotNil predicate on the "negative_comment" field.
func NegativeCommentNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldNegativeComment))
}

// NeutralCommentEQ applies the EQ predicate on the "neutral_comment" field.
func NeutralCommentEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldNeutralComment, v))
}

// NeutralCommentNEQ applies the NEQ predicate on the "neutral_comment" field.
func NeutralCommentNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldNeutralComment, v))
}

// NeutralCommentIn applies the In predicate on the "neutral_comment" field.
func NeutralCommentIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldNeutralComment, vs...))
}

// NeutralCommentNotIn applies the NotIn predicate on the "neutral_comment" field.
func NeutralCommentNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldNeutralComment, vs...))
}

// NeutralCommentGT applies the GT predicate on the "neutral_comment" field.
func NeutralCommentGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldNeutralComment, v))
}

// NeutralCommentGTE applies the GTE predicate on the "neutral_comment" field.
func NeutralCommentGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldNeutralComment, v))
}

// NeutralCommentLT applies the LT predicate on the "neutral_comment" field.
func NeutralCommentLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldNeutralComment, v))
}

// NeutralCommentLTE applies the LTE predicate on the "neutral_comment" field.
func NeutralCommentLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldNeutralComment, v))
}

// NeutralCommentIsNil applies the IsNil predicate on the "neutral_comment" field.
func NeutralCommentIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldNeutralComment))
}

// NeutralCommentNotNil applies the NotNil predicate on the "neutral_comment" field.
func NeutralCommentNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldNeutralComment))
}

// AdviceCommentEQ applies the EQ predicate on the "advice_comment" field.
func AdviceCommentEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldAdviceComment, v))
}

// AdviceCommentNEQ applies the NEQ predicate on the "advice_comment" field.
func AdviceCommentNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldAdviceComment, v))
}

// AdviceCommentIn applies the In predicate on the "advice_comment" field.
func AdviceCommentIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldAdviceComment, vs...))
}

// AdviceCommentNotIn applies the NotIn predicate on the "advice_comment" field.
func AdviceCommentNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldAdviceComment, vs...))
}

// AdviceCommentGT applies the GT predicate on the "advice_comment" field.
func AdviceCommentGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldAdviceComment, v))
}

// AdviceCommentGTE applies the GTE predicate on the "advice_comment" field.
func AdviceCommentGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldAdviceComment, v))
}

// AdviceCommentLT applies the LT predicate on the "advice_comment" field.
func AdviceCommentLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldAdviceComment, v))
}

// AdviceCommentLTE applies the LTE predicate on the "advice_comment" field.
func AdviceCommentLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldAdviceComment, v))
}

// AdviceCommentIsNil applies the IsNil predicate on the "advice_comment" field.
func AdviceCommentIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldAdviceComment))
}

// AdviceCommentNotNil applies the NotNil predicate on the "advice_comment" field.
func AdviceCommentNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldAdviceComment))
}

// LeaveAnalyzeEQ applies the EQ predicate on the "leave_analyze" field.
func LeaveAnalyzeEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLeaveAnalyze, v))
}

// LeaveAnalyzeNEQ applies the NEQ predicate on the "leave_analyze" field.
func LeaveAnalyzeNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldLeaveAnalyze, v))
}

// LeaveAnalyzeIn applies the In predicate on the "leave_analyze" field.
func LeaveAnalyzeIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldLeaveAnalyze, vs...))
}

// LeaveAnalyzeNotIn applies the NotIn predicate on the "leave_analyze" field.
func LeaveAnalyzeNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldLeaveAnalyze, vs...))
}

// LeaveAnalyzeGT applies the GT predicate on the "leave_analyze" field.
func LeaveAnalyzeGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldLeaveAnalyze, v))
}

// LeaveAnalyzeGTE applies the GTE predicate on the "leave_analyze" field.
func LeaveAnalyzeGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldLeaveAnalyze, v))
}

// LeaveAnalyzeLT applies the LT predicate on the "leave_analyze" field.
func LeaveAnalyzeLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldLeaveAnalyze, v))
}

// LeaveAnalyzeLTE applies the LTE predicate on the "leave_analyze" field.
func LeaveAnalyzeLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldLeaveAnalyze, v))
}

// LeaveAnalyzeContains applies the Contains predicate on the "leave_analyze" field.
func LeaveAnalyzeContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldLeaveAnalyze, v))
}

// LeaveAnalyzeHasPrefix applies the HasPrefix predicate on the "leave_analyze" field.
func LeaveAnalyzeHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldLeaveAnalyze, v))
}

// LeaveAnalyzeHasSuffix applies the HasSuffix predicate on the "leave_analyze" field.
func LeaveAnalyzeHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldLeaveAnalyze, v))
}

// LeaveAnalyzeIsNil applies the IsNil predicate on the "leave_analyze" field.
func LeaveAnalyzeIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldLeaveAnalyze))
}

// LeaveAnalyzeNotNil applies the NotNil predicate on the "leave_analyze" field.
func LeaveAnalyzeNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldLeaveAnalyze))
}

// LeaveAnalyzeEqualFold applies the EqualFold predicate on the "leave_analyze" field.
func LeaveAnalyzeEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldLeaveAnalyze, v))
}

// LeaveAnalyzeContainsFold applies the ContainsFold predicate on the "leave_analyze" field.
func LeaveAnalyzeContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldLeaveAnalyze, v))
}

// OptimizationEQ applies the EQ predicate on the "optimization" field.
func OptimizationEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldOptimization, v))
}

// OptimizationNEQ applies the NEQ predicate on the "optimization" field.
func OptimizationNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldOptimization, v))
}

// OptimizationIn applies the In predicate on the "optimization" field.
func OptimizationIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldOptimization, vs...))
}

// OptimizationNotIn applies the NotIn predicate on the "optimization" field.
func OptimizationNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldOptimization, vs...))
}

// OptimizationGT applies the GT predicate on the "optimization" field.
func OptimizationGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldOptimization, v))
}

// OptimizationGTE applies the GTE predicate on the "optimization" field.
func OptimizationGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldOptimization, v))
}

// OptimizationLT applies the LT predicate on the "optimization" field.
func OptimizationLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldOptimization, v))
}

// OptimizationLTE applies the LTE predicate on the "optimization" field.
func OptimizationLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldOptimization, v))
}

// OptimizationContains applies the Contains predicate on the "optimization" field.
func OptimizationContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldOptimization, v))
}

// OptimizationHasPrefix applies the HasPrefix predicate on the "optimization" field.
func OptimizationHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldOptimization, v))
}

// OptimizationHasSuffix applies the HasSuffix predicate on the "optimization" field.
func OptimizationHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldOptimization, v))
}

// OptimizationIsNil applies the IsNil predicate on the "optimization" field.
func OptimizationIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldOptimization))
}

// OptimizationNotNil applies the NotNil predicate on the "optimization" field.
func OptimizationNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldOptimization))
}

// OptimizationEqualFold applies the EqualFold predicate on the "optimization" field.
func OptimizationEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldOptimization, v))
}

// OptimizationContainsFold applies the ContainsFold predicate on the "optimization" field.
func OptimizationContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldOptimization, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Report) predicate.Report {
	return predicate.Report(sql.NotPredicates(p))
}
