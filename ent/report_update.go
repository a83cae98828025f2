// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/channeling-app/reportpipe/ent/predicate"
	"github.com/channeling-app/reportpipe/ent/report"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVideoID sets the "video_id" field.
func (_u *ReportUpdate) SetVideoID(v int) *ReportUpdate {
	_u.mutation.ResetVideoID()
	_u.mutation.SetVideoID(v)
	return _u
}

// SetNillableVideoID sets the "video_id" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableVideoID(v *int) *ReportUpdate {
	if v != nil {
		_u.SetVideoID(*v)
	}
	return _u
}

// AddVideoID adds value to the "video_id" field.
func (_u *ReportUpdate) AddVideoID(v int) *ReportUpdate {
	_u.mutation.AddVideoID(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReportUpdate) SetTitle(v string) *ReportUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableTitle(v *string) *ReportUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ReportUpdate) ClearTitle() *ReportUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetView sets the "view" field.
func (_u *ReportUpdate) SetView(v int64) *ReportUpdate {
	_u.mutation.ResetView()
	_u.mutation.SetView(v)
	return _u
}

// SetNillableView sets the "view" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableView(v *int64) *ReportUpdate {
	if v != nil {
		_u.SetView(*v)
	}
	return _u
}

// AddView adds value to the "view" field.
func (_u *ReportUpdate) AddView(v int64) *ReportUpdate {
	_u.mutation.AddView(v)
	return _u
}

// ClearView clears the value of the "view" field.
func (_u *ReportUpdate) ClearView() *ReportUpdate {
	_u.mutation.ClearView()
	return _u
}

// SetViewChannelAvg sets the "view_channel_avg" field.
func (_u *ReportUpdate) SetViewChannelAvg(v float64) *ReportUpdate {
	_u.mutation.ResetViewChannelAvg()
	_u.mutation.SetViewChannelAvg(v)
	return _u
}

// SetNillableViewChannelAvg sets the "view_channel_avg" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableViewChannelAvg(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetViewChannelAvg(*v)
	}
	return _u
}

// AddViewChannelAvg adds value to the "view_channel_avg" field.
func (_u *ReportUpdate) AddViewChannelAvg(v float64) *ReportUpdate {
	_u.mutation.AddViewChannelAvg(v)
	return _u
}

// ClearViewChannelAvg clears the value of the "view_channel_avg" field.
func (_u *ReportUpdate) ClearViewChannelAvg() *ReportUpdate {
	_u.mutation.ClearViewChannelAvg()
	return _u
}

// SetViewTopicAvg sets the "view_topic_avg" field.
func (_u *ReportUpdate) SetViewTopicAvg(v float64) *ReportUpdate {
	_u.mutation.ResetViewTopicAvg()
	_u.mutation.SetViewTopicAvg(v)
	return _u
}

// SetNillableViewTopicAvg sets the "view_topic_avg" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableViewTopicAvg(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetViewTopicAvg(*v)
	}
	return _u
}

// AddViewTopicAvg adds value to the "view_topic_avg" field.
func (_u *ReportUpdate) AddViewTopicAvg(v float64) *ReportUpdate {
	_u.mutation.AddViewTopicAvg(v)
	return _u
}

// ClearViewTopicAvg clears the value of the "view_topic_avg" field.
func (_u *ReportUpdate) ClearViewTopicAvg() *ReportUpdate {
	_u.mutation.ClearViewTopicAvg()
	return _u
}

// SetLikeCount sets the "like_count" field.
func (_u *ReportUpdate) SetLikeCount(v int64) *ReportUpdate {
	_u.mutation.ResetLikeCount()
	_u.mutation.SetLikeCount(v)
	return _u
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableLikeCount(v *int64) *ReportUpdate {
	if v != nil {
		_u.SetLikeCount(*v)
	}
	return _u
}

// AddLikeCount adds value to the "like_count" field.
func (_u *ReportUpdate) AddLikeCount(v int64) *ReportUpdate {
	_u.mutation.AddLikeCount(v)
	return _u
}

// ClearLikeCount clears the value of the "like_count" field.
func (_u *ReportUpdate) ClearLikeCount() *ReportUpdate {
	_u.mutation.ClearLikeCount()
	return _u
}

// SetLikeChannelAvg sets the "like_channel_avg" field.
func (_u *ReportUpdate) SetLikeChannelAvg(v float64) *ReportUpdate {
	_u.mutation.ResetLikeChannelAvg()
	_u.mutation.SetLikeChannelAvg(v)
	return _u
}

// SetNillableLikeChannelAvg sets the "like_channel_avg" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableLikeChannelAvg(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetLikeChannelAvg(*v)
	}
	return _u
}

// AddLikeChannelAvg adds value to the "like_channel_avg" field.
func (_u *ReportUpdate) AddLikeChannelAvg(v float64) *ReportUpdate {
	_u.mutation.AddLikeChannelAvg(v)
	return _u
}

// ClearLikeChannelAvg clears the value of the "like_channel_avg" field.
func (_u *ReportUpdate) ClearLikeChannelAvg() *ReportUpdate {
	_u.mutation.ClearLikeChannelAvg()
	return _u
}

// SetLikeTopicAvg sets the "like_topic_avg" field.
func (_u *ReportUpdate) SetLikeTopicAvg(v float64) *ReportUpdate {
	_u.mutation.ResetLikeTopicAvg()
	_u.mutation.SetLikeTopicAvg(v)
	return _u
}

// SetNillableLikeTopicAvg sets the "like_topic_avg" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableLikeTopicAvg(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetLikeTopicAvg(*v)
	}
	return _u
}

// AddLikeTopicAvg adds value to the "like_topic_avg" field.
func (_u *ReportUpdate) AddLikeTopicAvg(v float64) *ReportUpdate {
	_u.mutation.AddLikeTopicAvg(v)
	return _u
}

// ClearLikeTopicAvg clears the value of the "like_topic_avg" field.
func (_u *ReportUpdate) ClearLikeTopicAvg() *ReportUpdate {
	_u.mutation.ClearLikeTopicAvg()
	return _u
}

// SetCommentCount sets the "comment_count" field.
func (_u *ReportUpdate) SetCommentCount(v int64) *ReportUpdate {
	_u.mutation.ResetCommentCount()
	_u.mutation.SetCommentCount(v)
	return _u
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableCommentCount(v *int64) *ReportUpdate {
	if v != nil {
		_u.SetCommentCount(*v)
	}
	return _u
}

// AddCommentCount adds value to the "comment_count" field.
func (_u *ReportUpdate) AddCommentCount(v int64) *ReportUpdate {
	_u.mutation.AddCommentCount(v)
	return _u
}

// ClearCommentCount clears the value of the "comment_count" field.
func (_u *ReportUpdate) ClearCommentCount() *ReportUpdate {
	_u.mutation.ClearCommentCount()
	return _u
}

// SetCommentChannelAvg sets the "comment_channel_avg" field.
func (_u *ReportUpdate) SetCommentChannelAvg(v float64) *ReportUpdate {
	_u.mutation.ResetCommentChannelAvg()
	_u.mutation.SetCommentChannelAvg(v)
	return _u
}

// SetNillableCommentChannelAvg sets the "comment_channel_avg" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableCommentChannelAvg(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetCommentChannelAvg(*v)
	}
	return _u
}

// AddCommentChannelAvg adds value to the "comment_channel_avg" field.
func (_u *ReportUpdate) AddCommentChannelAvg(v float64) *ReportUpdate {
	_u.mutation.AddCommentChannelAvg(v)
	return _u
}

// ClearCommentChannelAvg clears the value of the "comment_channel_avg" field.
func (_u *ReportUpdate) ClearCommentChannelAvg() *ReportUpdate {
	_u.mutation.ClearCommentChannelAvg()
	return _u
}

// SetCommentTopicAvg sets the "comment_topic_avg" field.
func (_u *ReportUpdate) SetCommentTopicAvg(v float64) *ReportUpdate {
	_u.mutation.ResetCommentTopicAvg()
	_u.mutation.SetCommentTopicAvg(v)
	return _u
}

// SetNillableCommentTopicAvg sets the "comment_topic_avg" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableCommentTopicAvg(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetCommentTopicAvg(*v)
	}
	return _u
}

// AddCommentTopicAvg adds value to the "comment_topic_avg" field.
func (_u *ReportUpdate) AddCommentTopicAvg(v float64) *ReportUpdate {
	_u.mutation.AddCommentTopicAvg(v)
	return _u
}

// ClearCommentTopicAvg clears the value of the "comment_topic_avg" field.
func (_u *ReportUpdate) ClearCommentTopicAvg() *ReportUpdate {
	_u.mutation.ClearCommentTopicAvg()
	return _u
}

// SetConcept sets the "concept" field.
func (_u *ReportUpdate) SetConcept(v float64) *ReportUpdate {
	_u.mutation.ResetConcept()
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableConcept(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// AddConcept adds value to the "concept" field.
func (_u *ReportUpdate) AddConcept(v float64) *ReportUpdate {
	_u.mutation.AddConcept(v)
	return _u
}

// ClearConcept clears the value of the "concept" field.
func (_u *ReportUpdate) ClearConcept() *ReportUpdate {
	_u.mutation.ClearConcept()
	return _u
}

// SetSeo sets the "seo" field.
func (_u *ReportUpdate) SetSeo(v float64) *ReportUpdate {
	_u.mutation.ResetSeo()
	_u.mutation.SetSeo(v)
	return _u
}

// SetNillableSeo sets the "seo" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableSeo(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetSeo(*v)
	}
	return _u
}

// AddSeo adds value to the "seo" field.
func (_u *ReportUpdate) AddSeo(v float64) *ReportUpdate {
	_u.mutation.AddSeo(v)
	return _u
}

// ClearSeo clears the value of the "seo" field.
func (_u *ReportUpdate) ClearSeo() *ReportUpdate {
	_u.mutation.ClearSeo()
	return _u
}

// SetRevisit sets the "revisit" field.
func (_u *ReportUpdate) SetRevisit(v float64) *ReportUpdate {
	_u.mutation.ResetRevisit()
	_u.mutation.SetRevisit(v)
	return _u
}

// SetNillableRevisit sets the "revisit" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableRevisit(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetRevisit(*v)
	}
	return _u
}

// AddRevisit adds value to the "revisit" field.
func (_u *ReportUpdate) AddRevisit(v float64) *ReportUpdate {
	_u.mutation.AddRevisit(v)
	return _u
}

// ClearRevisit clears the value of the "revisit" field.
func (_u *ReportUpdate) ClearRevisit() *ReportUpdate {
	_u.mutation.ClearRevisit()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ReportUpdate) SetSummary(v string) *ReportUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableSummary(v *string) *ReportUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ReportUpdate) ClearSummary() *ReportUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetPositiveComment sets the "positive_comment" field.
func (_u *ReportUpdate) SetPositiveComment(v int) *ReportUpdate {
	_u.mutation.ResetPositiveComment()
	_u.mutation.SetPositiveComment(v)
	return _u
}

// SetNillablePositiveComment sets the "positive_comment" field if the given value is not nil.
func (_u *ReportUpdate) SetNillablePositiveComment(v *int) *ReportUpdate {
	if v != nil {
		_u.SetPositiveComment(*v)
	}
	return _u
}

// AddPositiveComment adds value to the "positive_comment" field.
func (_u *ReportUpdate) AddPositiveComment(v int) *ReportUpdate {
	_u.mutation.AddPositiveComment(v)
	return _u
}

// ClearPositiveComment clears the value of the "positive_comment" field.
func (_u *ReportUpdate) ClearPositiveComment() *ReportUpdate {
	_u.mutation.ClearPositiveComment()
	return _u
}

// SetNegativeComment sets the "negative_comment" field.
func (_u *ReportUpdate) SetNegativeComment(v int) *ReportUpdate {
	_u.mutation.ResetNegativeComment()
	_u.mutation.SetNegativeComment(v)
	return _u
}

// SetNillableNegativeComment sets the "negative_comment" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableNegativeComment(v *int) *ReportUpdate {
	if v != nil {
		_u.SetNegativeComment(*v)
	}
	return _u
}

// AddNegativeComment adds value to the "negative_comment" field.
func (_u *ReportUpdate) AddNegativeComment(v int) *ReportUpdate {
	_u.mutation.AddNegativeComment(v)
	return _u
}

// ClearNegativeComment clears the value of the "negative_comment" field.
func (_u *ReportUpdate) ClearNegativeComment() *ReportUpdate {
	_u.mutation.ClearNegativeComment()
	return _u
}

// SetNeutralComment sets the "neutral_comment" field.
func (_u *ReportUpdate) SetNeutralComment(v int) *ReportUpdate {
	_u.mutation.ResetNeutralComment()
	_u.mutation.SetNeutralComment(v)
	return _u
}

// SetNillableNeutralComment sets the "neutral_comment" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableNeutralComment(v *int) *ReportUpdate {
	if v != nil {
		_u.SetNeutralComment(*v)
	}
	return _u
}

// AddNeutralComment adds value to the "neutral_comment" field.
func (_u *ReportUpdate) AddNeutralComment(v int) *ReportUpdate {
	_u.mutation.AddNeutralComment(v)
	return _u
}

// ClearNeutralComment clears the value of the "neutral_comment" field.
func (_u *ReportUpdate) ClearNeutralComment() *ReportUpdate {
	_u.mutation.ClearNeutralComment()
	return _u
}

// SetAdviceComment sets the "advice_comment" field.
func (_u *ReportUpdate) SetAdviceComment(v int) *ReportUpdate {
	_u.mutation.ResetAdviceComment()
	_u.mutation.SetAdviceComment(v)
	return _u
}

// SetNillableAdviceComment sets the "advice_comment" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableAdviceComment(v *int) *ReportUpdate {
	if v != nil {
		_u.SetAdviceComment(*v)
	}
	return _u
}

// AddAdviceComment adds value to the "advice_comment" field.
func (_u *ReportUpdate) AddAdviceComment(v int) *ReportUpdate {
	_u.mutation.AddAdviceComment(v)
	return _u
}

// ClearAdviceComment clears the value of the "advice_comment" field.
func (_u *ReportUpdate) ClearAdviceComment() *ReportUpdate {
	_u.mutation.ClearAdviceComment()
	return _u
}

// SetLeaveAnalyze sets the "leave_analyze" field.
func (_u *ReportUpdate) SetLeaveAnalyze(v string) *ReportUpdate {
	_u.mutation.SetLeaveAnalyze(v)
	return _u
}

// SetNillableLeaveAnalyze sets the "leave_analyze" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableLeaveAnalyze(v *string) *ReportUpdate {
	if v != nil {
		_u.SetLeaveAnalyze(*v)
	}
	return _u
}

// ClearLeaveAnalyze clears the value of the "leave_analyze" field.
func (_u *ReportUpdate) ClearLeaveAnalyze() *ReportUpdate {
	_u.mutation.ClearLeaveAnalyze()
	return _u
}

// SetOptimization sets the "optimization" field.
func (_u *ReportUpdate) SetOptimization(v string) *ReportUpdate {
	_u.mutation.SetOptimization(v)
	return _u
}

// SetNillableOptimization sets the "optimization" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableOptimization(v *string) *ReportUpdate {
	if v != nil {
		_u.SetOptimization(*v)
	}
	return _u
}

// ClearOptimization clears the value of the "optimization" field.
func (_u *ReportUpdate) ClearOptimization() *ReportUpdate {
	_u.mutation.ClearOptimization()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdate) SetUpdatedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VideoID(); ok {
		_spec.SetField(report.FieldVideoID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVideoID(); ok {
		_spec.AddField(report.FieldVideoID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(report.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.View(); ok {
		_spec.SetField(report.FieldView, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedView(); ok {
		_spec.AddField(report.FieldView, field.TypeInt64, value)
	}
	if _u.mutation.ViewCleared() {
		_spec.ClearField(report.FieldView, field.TypeInt64)
	}
	if value, ok := _u.mutation.ViewChannelAvg(); ok {
		_spec.SetField(report.FieldViewChannelAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedViewChannelAvg(); ok {
		_spec.AddField(report.FieldViewChannelAvg, field.TypeFloat64, value)
	}
	if _u.mutation.ViewChannelAvgCleared() {
		_spec.ClearField(report.FieldViewChannelAvg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ViewTopicAvg(); ok {
		_spec.SetField(report.FieldViewTopicAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedViewTopicAvg(); ok {
		_spec.AddField(report.FieldViewTopicAvg, field.TypeFloat64, value)
	}
	if _u.mutation.ViewTopicAvgCleared() {
		_spec.ClearField(report.FieldViewTopicAvg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LikeCount(); ok {
		_spec.SetField(report.FieldLikeCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLikeCount(); ok {
		_spec.AddField(report.FieldLikeCount, field.TypeInt64, value)
	}
	if _u.mutation.LikeCountCleared() {
		_spec.ClearField(report.FieldLikeCount, field.TypeInt64)
	}
	if value, ok := _u.mutation.LikeChannelAvg(); ok {
		_spec.SetField(report.FieldLikeChannelAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLikeChannelAvg(); ok {
		_spec.AddField(report.FieldLikeChannelAvg, field.TypeFloat64, value)
	}
	if _u.mutation.LikeChannelAvgCleared() {
		_spec.ClearField(report.FieldLikeChannelAvg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LikeTopicAvg(); ok {
		_spec.SetField(report.FieldLikeTopicAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLikeTopicAvg(); ok {
		_spec.AddField(report.FieldLikeTopicAvg, field.TypeFloat64, value)
	}
	if _u.mutation.LikeTopicAvgCleared() {
		_spec.ClearField(report.FieldLikeTopicAvg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CommentCount(); ok {
		_spec.SetField(report.FieldCommentCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCommentCount(); ok {
		_spec.AddField(report.FieldCommentCount, field.TypeInt64, value)
	}
	if _u.mutation.CommentCountCleared() {
		_spec.ClearField(report.FieldCommentCount, field.TypeInt64)
	}
	if value, ok := _u.mutation.CommentChannelAvg(); ok {
		_spec.SetField(report.FieldCommentChannelAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommentChannelAvg(); ok {
		_spec.AddField(report.FieldCommentChannelAvg, field.TypeFloat64, value)
	}
	if _u.mutation.CommentChannelAvgCleared() {
		_spec.ClearField(report.FieldCommentChannelAvg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CommentTopicAvg(); ok {
		_spec.SetField(report.FieldCommentTopicAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommentTopicAvg(); ok {
		_spec.AddField(report.FieldCommentTopicAvg, field.TypeFloat64, value)
	}
	if _u.mutation.CommentTopicAvgCleared() {
		_spec.ClearField(report.FieldCommentTopicAvg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(report.FieldConcept, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConcept(); ok {
		_spec.AddField(report.FieldConcept, field.TypeFloat64, value)
	}
	if _u.mutation.ConceptCleared() {
		_spec.ClearField(report.FieldConcept, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Seo(); ok {
		_spec.SetField(report.FieldSeo, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeo(); ok {
		_spec.AddField(report.FieldSeo, field.TypeFloat64, value)
	}
	if _u.mutation.SeoCleared() {
		_spec.ClearField(report.FieldSeo, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Revisit(); ok {
		_spec.SetField(report.FieldRevisit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRevisit(); ok {
		_spec.AddField(report.FieldRevisit, field.TypeFloat64, value)
	}
	if _u.mutation.RevisitCleared() {
		_spec.ClearField(report.FieldRevisit, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(report.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(report.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.PositiveComment(); ok {
		_spec.SetField(report.FieldPositiveComment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPositiveComment(); ok {
		_spec.AddField(report.FieldPositiveComment, field.TypeInt, value)
	}
	if _u.mutation.PositiveCommentCleared() {
		_spec.ClearField(report.FieldPositiveComment, field.TypeInt)
	}
	if value, ok := _u.mutation.NegativeComment(); ok {
		_spec.SetField(report.FieldNegativeComment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNegativeComment(); ok {
		_spec.AddField(report.FieldNegativeComment, field.TypeInt, value)
	}
	if _u.mutation.NegativeCommentCleared() {
		_spec.ClearField(report.FieldNegativeComment, field.TypeInt)
	}
	if value, ok := _u.mutation.NeutralComment(); ok {
		_spec.SetField(report.FieldNeutralComment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNeutralComment(); ok {
		_spec.AddField(report.FieldNeutralComment, field.TypeInt, value)
	}
	if _u.mutation.NeutralCommentCleared() {
		_spec.ClearField(report.FieldNeutralComment, field.TypeInt)
	}
	if value, ok := _u.mutation.AdviceComment(); ok {
		_spec.SetField(report.FieldAdviceComment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAdviceComment(); ok {
		_spec.AddField(report.FieldAdviceComment, field.TypeInt, value)
	}
	if _u.mutation.AdviceCommentCleared() {
		_spec.ClearField(report.FieldAdviceComment, field.TypeInt)
	}
	if value, ok := _u.mutation.LeaveAnalyze(); ok {
		_spec.SetField(report.FieldLeaveAnalyze, field.TypeString, value)
	}
	if _u.mutation.LeaveAnalyzeCleared() {
		_spec.ClearField(report.FieldLeaveAnalyze, field.TypeString)
	}
	if value, ok := _u.mutation.Optimization(); ok {
		_spec.SetField(report.FieldOptimization, field.TypeString, value)
	}
	if _u.mutation.OptimizationCleared() {
		_spec.ClearField(report.FieldOptimization, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetVideoID sets the "video_id" field.
func (_u *ReportUpdateOne) SetVideoID(v int) *ReportUpdateOne {
	_u.mutation.ResetVideoID()
	_u.mutation.SetVideoID(v)
	return _u
}

// SetNillableVideoID sets the "video_id" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableVideoID(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetVideoID(*v)
	}
	return _u
}

// AddVideoID adds value to the "video_id" field.
func (_u *ReportUpdateOne) AddVideoID(v int) *ReportUpdateOne {
	_u.mutation.AddVideoID(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReportUpdateOne) SetTitle(v string) *ReportUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableTitle(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ReportUpdateOne) ClearTitle() *ReportUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetView sets the "view" field.
func (_u *ReportUpdateOne) SetView(v int64) *ReportUpdateOne {
	_u.mutation.ResetView()
	_u.mutation.SetView(v)
	return _u
}

// SetNillableView sets the "view" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableView(v *int64) *ReportUpdateOne {
	if v != nil {
		_u.SetView(*v)
	}
	return _u
}

// AddView adds value to the "view" field.
func (_u *ReportUpdateOne) AddView(v int64) *ReportUpdateOne {
	_u.mutation.AddView(v)
	return _u
}

// ClearView clears the value of the "view" field.
func (_u *ReportUpdateOne) ClearView() *ReportUpdateOne {
	_u.mutation.ClearView()
	return _u
}

// SetViewChannelAvg sets the "view_channel_avg" field.
func (_u *ReportUpdateOne) SetViewChannelAvg(v float64) *ReportUpdateOne {
	_u.mutation.ResetViewChannelAvg()
	_u.mutation.SetViewChannelAvg(v)
	return _u
}

// SetNillableViewChannelAvg sets the "view_channel_avg" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableViewChannelAvg(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetViewChannelAvg(*v)
	}
	return _u
}

// AddViewChannelAvg adds value to the "view_channel_avg" field.
func (_u *ReportUpdateOne) AddViewChannelAvg(v float64) *ReportUpdateOne {
	_u.mutation.AddViewChannelAvg(v)
	return _u
}

// ClearViewChannelAvg clears the value of the "view_channel_avg" field.
func (_u *ReportUpdateOne) ClearViewChannelAvg() *ReportUpdateOne {
	_u.mutation.ClearViewChannelAvg()
	return _u
}

// SetViewTopicAvg sets the "view_topic_avg" field.
func (_u *ReportUpdateOne) SetViewTopicAvg(v float64) *ReportUpdateOne {
	_u.mutation.ResetViewTopicAvg()
	_u.mutation.SetViewTopicAvg(v)
	return _u
}

// SetNillableViewTopicAvg sets the "view_topic_avg" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableViewTopicAvg(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetViewTopicAvg(*v)
	}
	return _u
}

// AddViewTopicAvg adds value to the "view_topic_avg" field.
func (_u *ReportUpdateOne) AddViewTopicAvg(v float64) *ReportUpdateOne {
	_u.mutation.AddViewTopicAvg(v)
	return _u
}

// ClearViewTopicAvg clears the value of the "view_topic_avg" field.
func (_u *ReportUpdateOne) ClearViewTopicAvg() *ReportUpdateOne {
	_u.mutation.ClearViewTopicAvg()
	return _u
}

// SetLikeCount sets the "like_count" field.
func (_u *ReportUpdateOne) SetLikeCount(v int64) *ReportUpdateOne {
	_u.mutation.ResetLikeCount()
	_u.mutation.SetLikeCount(v)
	return _u
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableLikeCount(v *int64) *ReportUpdateOne {
	if v != nil {
		_u.SetLikeCount(*v)
	}
	return _u
}

// AddLikeCount adds value to the "like_count" field.
func (_u *ReportUpdateOne) AddLikeCount(v int64) *ReportUpdateOne {
	_u.mutation.AddLikeCount(v)
	return _u
}

// ClearLikeCount clears the value of the "like_count" field.
func (_u *ReportUpdateOne) ClearLikeCount() *ReportUpdateOne {
	_u.mutation.ClearLikeCount()
	return _u
}

// SetLikeChannelAvg sets the "like_channel_avg" field.
func (_u *ReportUpdateOne) SetLikeChannelAvg(v float64) *ReportUpdateOne {
	_u.mutation.ResetLikeChannelAvg()
	_u.mutation.SetLikeChannelAvg(v)
	return _u
}

// SetNillableLikeChannelAvg sets the "like_channel_avg" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableLikeChannelAvg(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetLikeChannelAvg(*v)
	}
	return _u
}

// AddLikeChannelAvg adds value to the "like_channel_avg" field.
func (_u *ReportUpdateOne) AddLikeChannelAvg(v float64) *ReportUpdateOne {
	_u.mutation.AddLikeChannelAvg(v)
	return _u
}

// ClearLikeChannelAvg clears the value of the "like_channel_avg" field.
func (_u *ReportUpdateOne) ClearLikeChannelAvg() *ReportUpdateOne {
	_u.mutation.ClearLikeChannelAvg()
	return _u
}

// SetLikeTopicAvg sets the "like_topic_avg" field.
func (_u *ReportUpdateOne) SetLikeTopicAvg(v float64) *ReportUpdateOne {
	_u.mutation.ResetLikeTopicAvg()
	_u.mutation.SetLikeTopicAvg(v)
	return _u
}

// SetNillableLikeTopicAvg sets the "like_topic_avg" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableLikeTopicAvg(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetLikeTopicAvg(*v)
	}
	return _u
}

// AddLikeTopicAvg adds value to the "like_topic_avg" field.
func (_u *ReportUpdateOne) AddLikeTopicAvg(v float64) *ReportUpdateOne {
	_u.mutation.AddLikeTopicAvg(v)
	return _u
}

// ClearLikeTopicAvg clears the value of the "like_topic_avg" field.
func (_u *ReportUpdateOne) ClearLikeTopicAvg() *ReportUpdateOne {
	_u.mutation.ClearLikeTopicAvg()
	return _u
}

// SetCommentCount sets the "comment_count" field.
func (_u *ReportUpdateOne) SetCommentCount(v int64) *ReportUpdateOne {
	_u.mutation.ResetCommentCount()
	_u.mutation.SetCommentCount(v)
	return _u
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableCommentCount(v *int64) *ReportUpdateOne {
	if v != nil {
		_u.SetCommentCount(*v)
	}
	return _u
}

// AddCommentCount adds value to the "comment_count" field.
func (_u *ReportUpdateOne) AddCommentCount(v int64) *ReportUpdateOne {
	_u.mutation.AddCommentCount(v)
	return _u
}

// ClearCommentCount clears the value of the "comment_count" field.
func (_u *ReportUpdateOne) ClearCommentCount() *ReportUpdateOne {
	_u.mutation.ClearCommentCount()
	return _u
}

// SetCommentChannelAvg sets the "comment_channel_avg" field.
func (_u *ReportUpdateOne) SetCommentChannelAvg(v float64) *ReportUpdateOne {
	_u.mutation.ResetCommentChannelAvg()
	_u.mutation.SetCommentChannelAvg(v)
	return _u
}

// SetNillableCommentChannelAvg sets the "comment_channel_avg" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableCommentChannelAvg(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetCommentChannelAvg(*v)
	}
	return _u
}

// AddCommentChannelAvg adds value to the "comment_channel_avg" field.
func (_u *ReportUpdateOne) AddCommentChannelAvg(v float64) *ReportUpdateOne {
	_u.mutation.AddCommentChannelAvg(v)
	return _u
}

// ClearCommentChannelAvg clears the value of the "comment_channel_avg" field.
func (_u *ReportUpdateOne) ClearCommentChannelAvg() *ReportUpdateOne {
	_u.mutation.ClearCommentChannelAvg()
	return _u
}

// SetCommentTopicAvg sets the "comment_topic_avg" field.
func (_u *ReportUpdateOne) SetCommentTopicAvg(v float64) *ReportUpdateOne {
	_u.mutation.ResetCommentTopicAvg()
	_u.mutation.SetCommentTopicAvg(v)
	return _u
}

// SetNillableCommentTopicAvg sets the "comment_topic_avg" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableCommentTopicAvg(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetCommentTopicAvg(*v)
	}
	return _u
}

// AddCommentTopicAvg adds value to the "comment_topic_avg" field.
func (_u *ReportUpdateOne) AddCommentTopicAvg(v float64) *ReportUpdateOne {
	_u.mutation.AddCommentTopicAvg(v)
	return _u
}

// ClearCommentTopicAvg clears the value of the "comment_topic_avg" field.
func (_u *ReportUpdateOne) ClearCommentTopicAvg() *ReportUpdateOne {
	_u.mutation.ClearCommentTopicAvg()
	return _u
}

// SetConcept sets the "concept" field.
func (_u *ReportUpdateOne) SetConcept(v float64) *ReportUpdateOne {
	_u.mutation.ResetConcept()
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableConcept(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// AddConcept adds value to the "concept" field.
func (_u *ReportUpdateOne) AddConcept(v float64) *ReportUpdateOne {
	_u.mutation.AddConcept(v)
	return _u
}

// ClearConcept clears the value of the "concept" field.
func (_u *ReportUpdateOne) ClearConcept() *ReportUpdateOne {
	_u.mutation.ClearConcept()
	return _u
}

// SetSeo sets the "seo" field.
func (_u *ReportUpdateOne) SetSeo(v float64) *ReportUpdateOne {
	_u.mutation.ResetSeo()
	_u.mutation.SetSeo(v)
	return _u
}

// SetNillableSeo sets the "seo" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableSeo(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetSeo(*v)
	}
	return _u
}

// AddSeo adds value to the "seo" field.
func (_u *ReportUpdateOne) AddSeo(v float64) *ReportUpdateOne {
	_u.mutation.AddSeo(v)
	return _u
}

// ClearSeo clears the value of the "seo" field.
func (_u *ReportUpdateOne) ClearSeo() *ReportUpdateOne {
	_u.mutation.ClearSeo()
	return _u
}

// SetRevisit sets the "revisit" field.
func (_u *ReportUpdateOne) SetRevisit(v float64) *ReportUpdateOne {
	_u.mutation.ResetRevisit()
	_u.mutation.SetRevisit(v)
	return _u
}

// SetNillableRevisit sets the "revisit" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableRevisit(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetRevisit(*v)
	}
	return _u
}

// AddRevisit adds value to the "revisit" field.
func (_u *ReportUpdateOne) AddRevisit(v float64) *ReportUpdateOne {
	_u.mutation.AddRevisit(v)
	return _u
}

// ClearRevisit clears the value of the "revisit" field.
func (_u *ReportUpdateOne) ClearRevisit() *ReportUpdateOne {
	_u.mutation.ClearRevisit()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ReportUpdateOne) SetSummary(v string) *ReportUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableSummary(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ReportUpdateOne) ClearSummary() *ReportUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetPositiveComment sets the "positive_comment" field.
func (_u *ReportUpdateOne) SetPositiveComment(v int) *ReportUpdateOne {
	_u.mutation.ResetPositiveComment()
	_u.mutation.SetPositiveComment(v)
	return _u
}

// SetNillablePositiveComment sets the "positive_comment" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillablePositiveComment(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetPositiveComment(*v)
	}
	return _u
}

// AddPositiveComment adds value to the "positive_comment" field.
func (_u *ReportUpdateOne) AddPositiveComment(v int) *ReportUpdateOne {
	_u.mutation.AddPositiveComment(v)
	return _u
}

// ClearPositiveComment clears the value of the "positive_comment" field.
func (_u *ReportUpdateOne) ClearPositiveComment() *ReportUpdateOne {
	_u.mutation.ClearPositiveComment()
	return _u
}

// SetNegativeComment sets the "negative_comment" field.
func (_u *ReportUpdateOne) SetNegativeComment(v int) *ReportUpdateOne {
	_u.mutation.ResetNegativeComment()
	_u.mutation.SetNegativeComment(v)
	return _u
}

// SetNillableNegativeComment sets the "negative_comment" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableNegativeComment(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetNegativeComment(*v)
	}
	return _u
}

// AddNegativeComment adds value to the "negative_comment" field.
func (_u *ReportUpdateOne) AddNegativeComment(v int) *ReportUpdateOne {
	_u.mutation.AddNegativeComment(v)
	return _u
}

// ClearNegativeComment clears the value of the "negative_comment" field.
func (_u *ReportUpdateOne) ClearNegativeComment() *ReportUpdateOne {
	_u.mutation.ClearNegativeComment()
	return _u
}

// SetNeutralComment sets the "neutral_comment" field.
func (_u *ReportUpdateOne) SetNeutralComment(v int) *ReportUpdateOne {
	_u.mutation.ResetNeutralComment()
	_u.mutation.SetNeutralComment(v)
	return _u
}

// SetNillableNeutralComment sets the "neutral_comment" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableNeutralComment(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetNeutralComment(*v)
	}
	return _u
}

// AddNeutralComment adds value to the "neutral_comment" field.
func (_u *ReportUpdateOne) AddNeutralComment(v int) *ReportUpdateOne {
	_u.mutation.AddNeutralComment(v)
	return _u
}

// ClearNeutralComment clears the value of the "neutral_comment" field.
func (_u *ReportUpdateOne) ClearNeutralComment() *ReportUpdateOne {
	_u.mutation.ClearNeutralComment()
	return _u
}

// SetAdviceComment sets the "advice_comment" field.
func (_u *ReportUpdateOne) SetAdviceComment(v int) *ReportUpdateOne {
	_u.mutation.ResetAdviceComment()
	_u.mutation.SetAdviceComment(v)
	return _u
}

// SetNillableAdviceComment sets the "advice_comment" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableAdviceComment(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetAdviceComment(*v)
	}
	return _u
}

// AddAdviceComment adds value to the "advice_comment" field.
func (_u *ReportUpdateOne) AddAdviceComment(v int) *ReportUpdateOne {
	_u.mutation.AddAdviceComment(v)
	return _u
}

// ClearAdviceComment clears the value of the "advice_comment" field.
func (_u *ReportUpdateOne) ClearAdviceComment() *ReportUpdateOne {
	_u.mutation.ClearAdviceComment()
	return _u
}

// SetLeaveAnalyze sets the "leave_analyze" field.
func (_u *ReportUpdateOne) SetLeaveAnalyze(v string) *ReportUpdateOne {
	_u.mutation.SetLeaveAnalyze(v)
	return _u
}

// SetNillableLeaveAnalyze sets the "leave_analyze" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableLeaveAnalyze(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetLeaveAnalyze(*v)
	}
	return _u
}

// ClearLeaveAnalyze clears the value of the "leave_analyze" field.
func (_u *ReportUpdateOne) ClearLeaveAnalyze() *ReportUpdateOne {
	_u.mutation.ClearLeaveAnalyze()
	return _u
}

// SetOptimization sets the "optimization" field.
func (_u *ReportUpdateOne) SetOptimization(v string) *ReportUpdateOne {
	_u.mutation.SetOptimization(v)
	return _u
}

// SetNillableOptimization sets the "optimization" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableOptimization(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetOptimization(*v)
	}
	return _u
}

// ClearOptimization clears the value of the "optimization" field.
func (_u *ReportUpdateOne) ClearOptimization() *ReportUpdateOne {
	_u.mutation.ClearOptimization()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdateOne) SetUpdatedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VideoID(); ok {
		_spec.SetField(report.FieldVideoID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVideoID(); ok {
		_spec.AddField(report.FieldVideoID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(report.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.View(); ok {
		_spec.SetField(report.FieldView, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedView(); ok {
		_spec.AddField(report.FieldView, field.TypeInt64, value)
	}
	if _u.mutation.ViewCleared() {
		_spec.ClearField(report.FieldView, field.TypeInt64)
	}
	if value, ok := _u.mutation.ViewChannelAvg(); ok {
		_spec.SetField(report.FieldViewChannelAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedViewChannelAvg(); ok {
		_spec.AddField(report.FieldViewChannelAvg, field.TypeFloat64, value)
	}
	if _u.mutation.ViewChannelAvgCleared() {
		_spec.ClearField(report.FieldViewChannelAvg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ViewTopicAvg(); ok {
		_spec.SetField(report.FieldViewTopicAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedViewTopicAvg(); ok {
		_spec.AddField(report.FieldViewTopicAvg, field.TypeFloat64, value)
	}
	if _u.mutation.ViewTopicAvgCleared() {
		_spec.ClearField(report.FieldViewTopicAvg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LikeCount(); ok {
		_spec.SetField(report.FieldLikeCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLikeCount(); ok {
		_spec.AddField(report.FieldLikeCount, field.TypeInt64, value)
	}
	if _u.mutation.LikeCountCleared() {
		_spec.ClearField(report.FieldLikeCount, field.TypeInt64)
	}
	if value, ok := _u.mutation.LikeChannelAvg(); ok {
		_spec.SetField(report.FieldLikeChannelAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLikeChannelAvg(); ok {
		_spec.AddField(report.FieldLikeChannelAvg, field.TypeFloat64, value)
	}
	if _u.mutation.LikeChannelAvgCleared() {
		_spec.ClearField(report.FieldLikeChannelAvg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LikeTopicAvg(); ok {
		_spec.SetField(report.FieldLikeTopicAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLikeTopicAvg(); ok {
		_spec.AddField(report.FieldLikeTopicAvg, field.TypeFloat64, value)
	}
	if _u.mutation.LikeTopicAvgCleared() {
		_spec.ClearField(report.FieldLikeTopicAvg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CommentCount(); ok {
		_spec.SetField(report.FieldCommentCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCommentCount(); ok {
		_spec.AddField(report.FieldCommentCount, field.TypeInt64, value)
	}
	if _u.mutation.CommentCountCleared() {
		_spec.ClearField(report.FieldCommentCount, field.TypeInt64)
	}
	if value, ok := _u.mutation.CommentChannelAvg(); ok {
		_spec.SetField(report.FieldCommentChannelAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommentChannelAvg(); ok {
		_spec.AddField(report.FieldCommentChannelAvg, field.TypeFloat64, value)
	}
	if _u.mutation.CommentChannelAvgCleared() {
		_spec.ClearField(report.FieldCommentChannelAvg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CommentTopicAvg(); ok {
		_spec.SetField(report.FieldCommentTopicAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommentTopicAvg(); ok {
		_spec.AddField(report.FieldCommentTopicAvg, field.TypeFloat64, value)
	}
	if _u.mutation.CommentTopicAvgCleared() {
		_spec.ClearField(report.FieldCommentTopicAvg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(report.FieldConcept, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConcept(); ok {
		_spec.AddField(report.FieldConcept, field.TypeFloat64, value)
	}
	if _u.mutation.ConceptCleared() {
		_spec.ClearField(report.FieldConcept, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Seo(); ok {
		_spec.SetField(report.FieldSeo, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeo(); ok {
		_spec.AddField(report.FieldSeo, field.TypeFloat64, value)
	}
	if _u.mutation.SeoCleared() {
		_spec.ClearField(report.FieldSeo, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Revisit(); ok {
		_spec.SetField(report.FieldRevisit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRevisit(); ok {
		_spec.AddField(report.FieldRevisit, field.TypeFloat64, value)
	}
	if _u.mutation.RevisitCleared() {
		_spec.ClearField(report.FieldRevisit, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(report.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(report.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.PositiveComment(); ok {
		_spec.SetField(report.FieldPositiveComment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPositiveComment(); ok {
		_spec.AddField(report.FieldPositiveComment, field.TypeInt, value)
	}
	if _u.mutation.PositiveCommentCleared() {
		_spec.ClearField(report.FieldPositiveComment, field.TypeInt)
	}
	if value, ok := _u.mutation.NegativeComment(); ok {
		_spec.SetField(report.FieldNegativeComment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNegativeComment(); ok {
		_spec.AddField(report.FieldNegativeComment, field.TypeInt, value)
	}
	if _u.mutation.NegativeCommentCleared() {
		_spec.ClearField(report.FieldNegativeComment, field.TypeInt)
	}
	if value, ok := _u.mutation.NeutralComment(); ok {
		_spec.SetField(report.FieldNeutralComment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNeutralComment(); ok {
		_spec.AddField(report.FieldNeutralComment, field.TypeInt, value)
	}
	if _u.mutation.NeutralCommentCleared() {
		_spec.ClearField(report.FieldNeutralComment, field.TypeInt)
	}
	if value, ok := _u.mutation.AdviceComment(); ok {
		_spec.SetField(report.FieldAdviceComment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAdviceComment(); ok {
		_spec.AddField(report.FieldAdviceComment, field.TypeInt, value)
	}
	if _u.mutation.AdviceCommentCleared() {
		_spec.ClearField(report.FieldAdviceComment, field.TypeInt)
	}
	if value, ok := _u.mutation.LeaveAnalyze(); ok {
		_spec.SetField(report.FieldLeaveAnalyze, field.TypeString, value)
	}
	if _u.mutation.LeaveAnalyzeCleared() {
		_spec.ClearField(report.FieldLeaveAnalyze, field.TypeString)
	}
	if value, ok := _u.mutation.Optimization(); ok {
		_spec.SetField(report.FieldOptimization, field.TypeString, value)
	}
	if _u.mutation.OptimizationCleared() {
		_spec.ClearField(report.FieldOptimization, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
