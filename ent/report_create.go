// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/channeling-app/reportpipe/ent/report"
)

// ReportCreate is the builder for creating a Report entity.
type ReportCreate struct {
	config
	mutation *ReportMutation
	hooks    []Hook
}

// SetVideoID sets the "video_id" field.
func (_c *ReportCreate) SetVideoID(v int) *ReportCreate {
	_c.mutation.SetVideoID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ReportCreate) SetTitle(v string) *ReportCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ReportCreate) SetNillableTitle(v *string) *ReportCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetView sets the "view" field.
func (_c *ReportCreate) SetView(v int64) *ReportCreate {
	_c.mutation.SetView(v)
	return _c
}

// SetNillableView sets the "view" field if the given value is not nil.
func (_c *ReportCreate) SetNillableView(v *int64) *ReportCreate {
	if v != nil {
		_c.SetView(*v)
	}
	return _c
}

// SetViewChannelAvg sets the "view_channel_avg" field.
func (_c *ReportCreate) SetViewChannelAvg(v float64) *ReportCreate {
	_c.mutation.SetViewChannelAvg(v)
	return _c
}

// SetNillableViewChannelAvg sets the "view_channel_avg" field if the given value is not nil.
func (_c *ReportCreate) SetNillableViewChannelAvg(v *float64) *ReportCreate {
	if v != nil {
		_c.SetViewChannelAvg(*v)
	}
	return _c
}

// SetViewTopicAvg sets the "view_topic_avg" field.
func (_c *ReportCreate) SetViewTopicAvg(v float64) *ReportCreate {
	_c.mutation.SetViewTopicAvg(v)
	return _c
}

// SetNillableViewTopicAvg sets the "view_topic_avg" field if the given value is not nil.
func (_c *ReportCreate) SetNillableViewTopicAvg(v *float64) *ReportCreate {
	if v != nil {
		_c.SetViewTopicAvg(*v)
	}
	return _c
}

// SetLikeCount sets the "like_count" field.
func (_c *ReportCreate) SetLikeCount(v int64) *ReportCreate {
	_c.mutation.SetLikeCount(v)
	return _c
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (_c *ReportCreate) SetNillableLikeCount(v *int64) *ReportCreate {
	if v != nil {
		_c.SetLikeCount(*v)
	}
	return _c
}

// SetLikeChannelAvg sets the "like_channel_avg" field.
func (_c *ReportCreate) SetLikeChannelAvg(v float64) *ReportCreate {
	_c.mutation.SetLikeChannelAvg(v)
	return _c
}

// SetNillableLikeChannelAvg sets the "like_channel_avg" field if the given value is not nil.
func (_c *ReportCreate) SetNillableLikeChannelAvg(v *float64) *ReportCreate {
	if v != nil {
		_c.SetLikeChannelAvg(*v)
	}
	return _c
}

// SetLikeTopicAvg sets the "like_topic_avg" field.
func (_c *ReportCreate) SetLikeTopicAvg(v float64) *ReportCreate {
	_c.mutation.SetLikeTopicAvg(v)
	return _c
}

// SetNillableLikeTopicAvg sets the "like_topic_avg" field if the given value is not nil.
func (_c *ReportCreate) SetNillableLikeTopicAvg(v *float64) *ReportCreate {
	if v != nil {
		_c.SetLikeTopicAvg(*v)
	}
	return _c
}

// SetCommentCount sets the "comment_count" field.
func (_c *ReportCreate) SetCommentCount(v int64) *ReportCreate {
	_c.mutation.SetCommentCount(v)
	return _c
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_c *ReportCreate) SetNillableCommentCount(v *int64) *ReportCreate {
	if v != nil {
		_c.SetCommentCount(*v)
	}
	return _c
}

// SetCommentChannelAvg sets the "comment_channel_avg" field.
func (_c *ReportCreate) SetCommentChannelAvg(v float64) *ReportCreate {
	_c.mutation.SetCommentChannelAvg(v)
	return _c
}

// SetNillableCommentChannelAvg sets the "comment_channel_avg" field if the given value is not nil.
func (_c *ReportCreate) SetNillableCommentChannelAvg(v *float64) *ReportCreate {
	if v != nil {
		_c.SetCommentChannelAvg(*v)
	}
	return _c
}

// SetCommentTopicAvg sets the "comment_topic_avg" field.
func (_c *ReportCreate) SetCommentTopicAvg(v float64) *ReportCreate {
	_c.mutation.SetCommentTopicAvg(v)
	return _c
}

// SetNillableCommentTopicAvg sets the "comment_topic_avg" field if the given value is not nil.
func (_c *ReportCreate) SetNillableCommentTopicAvg(v *float64) *ReportCreate {
	if v != nil {
		_c.SetCommentTopicAvg(*v)
	}
	return _c
}

// SetConcept sets the "concept" field.
func (_c *ReportCreate) SetConcept(v float64) *ReportCreate {
	_c.mutation.SetConcept(v)
	return _c
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_c *ReportCreate) SetNillableConcept(v *float64) *ReportCreate {
	if v != nil {
		_c.SetConcept(*v)
	}
	return _c
}

// SetSeo sets the "seo" field.
func (_c *ReportCreate) SetSeo(v float64) *ReportCreate {
	_c.mutation.SetSeo(v)
	return _c
}

// SetNillableSeo sets the "seo" field if the given value is not nil.
func (_c *ReportCreate) SetNillableSeo(v *float64) *ReportCreate {
	if v != nil {
		_c.SetSeo(*v)
	}
	return _c
}

// SetRevisit sets the "revisit" field.
func (_c *ReportCreate) SetRevisit(v float64) *ReportCreate {
	_c.mutation.SetRevisit(v)
	return _c
}

// SetNillableRevisit sets the "revisit" field if the given value is not nil.
func (_c *ReportCreate) SetNillableRevisit(v *float64) *ReportCreate {
	if v != nil {
		_c.SetRevisit(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ReportCreate) SetSummary(v string) *ReportCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *ReportCreate) SetNillableSummary(v *string) *ReportCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetPositiveComment sets the "positive_comment" field.
func (_c *ReportCreate) SetPositiveComment(v int) *ReportCreate {
	_c.mutation.SetPositiveComment(v)
	return _c
}

// SetNillablePositiveComment sets the "positive_comment" field if the given value is not nil.
func (_c *ReportCreate) SetNillablePositiveComment(v *int) *ReportCreate {
	if v != nil {
		_c.SetPositiveComment(*v)
	}
	return _c
}

// SetNegativeComment sets the "negative_comment" field.
func (_c *ReportCreate) SetNegativeComment(v int) *ReportCreate {
	_c.mutation.SetNegativeComment(v)
	return _c
}

// SetNillableNegativeComment sets the "negative_comment" field if the given value is not nil.
func (_c *ReportCreate) SetNillableNegativeComment(v *int) *ReportCreate {
	if v != nil {
		_c.SetNegativeComment(*v)
	}
	return _c
}

// SetNeutralComment sets the "neutral_comment" field.
func (_c *ReportCreate) SetNeutralComment(v int) *ReportCreate {
	_c.mutation.SetNeutralComment(v)
	return _c
}

// SetNillableNeutralComment sets the "neutral_comment" field if the given value is not nil.
func (_c *ReportCreate) SetNillableNeutralComment(v *int) *ReportCreate {
	if v != nil {
		_c.SetNeutralComment(*v)
	}
	return _c
}

// SetAdviceComment sets the "advice_comment" field.
func (_c *ReportCreate) SetAdviceComment(v int) *ReportCreate {
	_c.mutation.SetAdviceComment(v)
	return _c
}

// SetNillableAdviceComment sets the "advice_comment" field if the given value is not nil.
func (_c *ReportCreate) SetNillableAdviceComment(v *int) *ReportCreate {
	if v != nil {
		_c.SetAdviceComment(*v)
	}
	return _c
}

// SetLeaveAnalyze sets the "leave_analyze" field.
func (_c *ReportCreate) SetLeaveAnalyze(v string) *ReportCreate {
	_c.mutation.SetLeaveAnalyze(v)
	return _c
}

// SetNillableLeaveAnalyze sets the "leave_analyze" field if the given value is not nil.
func (_c *ReportCreate) SetNillableLeaveAnalyze(v *string) *ReportCreate {
	if v != nil {
		_c.SetLeaveAnalyze(*v)
	}
	return _c
}

// SetOptimization sets the "optimization" field.
func (_c *ReportCreate) SetOptimization(v string) *ReportCreate {
	_c.mutation.SetOptimization(v)
	return _c
}

// SetNillableOptimization sets the "optimization" field if the given value is not nil.
func (_c *ReportCreate) SetNillableOptimization(v *string) *ReportCreate {
	if v != nil {
		_c.SetOptimization(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportCreate) SetCreatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableCreatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReportCreate) SetUpdatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableUpdatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ReportMutation object of the builder.
func (_c *ReportCreate) Mutation() *ReportMutation {
	return _c.mutation
}

// Save creates the Report in the database.
func (_c *ReportCreate) Save(ctx context.Context) (*Report, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportCreate) SaveX(ctx context.Context) *Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := report.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := report.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportCreate) check() error {
	if _, ok := _c.mutation.VideoID(); !ok {
		return &ValidationError{Name: "video_id", err: errors.New(`ent: missing required field "Report.video_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Report.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Report.updated_at"`)}
	}
	return nil
}

func (_c *ReportCreate) sqlSave(ctx context.Context) (*Report, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReportCreate) createSpec() (*Report, *sqlgraph.CreateSpec) {
	var (
		_node = &Report{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(report.Table, sqlgraph.NewFieldSpec(report.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.VideoID(); ok {
		_spec.SetField(report.FieldVideoID, field.TypeInt, value)
		_node.VideoID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.View(); ok {
		_spec.SetField(report.FieldView, field.TypeInt64, value)
		_node.View = value
	}
	if value, ok := _c.mutation.ViewChannelAvg(); ok {
		_spec.SetField(report.FieldViewChannelAvg, field.TypeFloat64, value)
		_node.ViewChannelAvg = value
	}
	if value, ok := _c.mutation.ViewTopicAvg(); ok {
		_spec.SetField(report.FieldViewTopicAvg, field.TypeFloat64, value)
		_node.ViewTopicAvg = value
	}
	if value, ok := _c.mutation.LikeCount(); ok {
		_spec.SetField(report.FieldLikeCount, field.TypeInt64, value)
		_node.LikeCount = value
	}
	if value, ok := _c.mutation.LikeChannelAvg(); ok {
		_spec.SetField(report.FieldLikeChannelAvg, field.TypeFloat64, value)
		_node.LikeChannelAvg = value
	}
	if value, ok := _c.mutation.LikeTopicAvg(); ok {
		_spec.SetField(report.FieldLikeTopicAvg, field.TypeFloat64, value)
		_node.LikeTopicAvg = value
	}
	if value, ok := _c.mutation.CommentCount(); ok {
		_spec.SetField(report.FieldCommentCount, field.TypeInt64, value)
		_node.CommentCount = value
	}
	if value, ok := _c.mutation.CommentChannelAvg(); ok {
		_spec.SetField(report.FieldCommentChannelAvg, field.TypeFloat64, value)
		_node.CommentChannelAvg = value
	}
	if value, ok := _c.mutation.CommentTopicAvg(); ok {
		_spec.SetField(report.FieldCommentTopicAvg, field.TypeFloat64, value)
		_node.CommentTopicAvg = value
	}
	if value, ok := _c.mutation.Concept(); ok {
		_spec.SetField(report.FieldConcept, field.TypeFloat64, value)
		_node.Concept = value
	}
	if value, ok := _c.mutation.Seo(); ok {
		_spec.SetField(report.FieldSeo, field.TypeFloat64, value)
		_node.Seo = value
	}
	if value, ok := _c.mutation.Revisit(); ok {
		_spec.SetField(report.FieldRevisit, field.TypeFloat64, value)
		_node.Revisit = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(report.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.PositiveComment(); ok {
		_spec.SetField(report.FieldPositiveComment, field.TypeInt, value)
		_node.PositiveComment = value
	}
	if value, ok := _c.mutation.NegativeComment(); ok {
		_spec.SetField(report.FieldNegativeComment, field.TypeInt, value)
		_node.NegativeComment = value
	}
	if value, ok := _c.mutation.NeutralComment(); ok {
		_spec.SetField(report.FieldNeutralComment, field.TypeInt, value)
		_node.NeutralComment = value
	}
	if value, ok := _c.mutation.AdviceComment(); ok {
		_spec.SetField(report.FieldAdviceComment, field.TypeInt, value)
		_node.AdviceComment = value
	}
	if value, ok := _c.mutation.LeaveAnalyze(); ok {
		_spec.SetField(report.FieldLeaveAnalyze, field.TypeString, value)
		_node.LeaveAnalyze = value
	}
	if value, ok := _c.mutation.Optimization(); ok {
		_spec.SetField(report.FieldOptimization, field.TypeString, value)
		_node.Optimization = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ReportCreateBulk is the builder for creating many Report entities in bulk.
type ReportCreateBulk struct {
	config
	err      error
	builders []*ReportCreate
}

// Save creates the Report entities in the database.
func (_c *ReportCreateBulk) Save(ctx context.Context) ([]*Report, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Report, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReportCreateBulk) SaveX(ctx context.Context) []*Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
