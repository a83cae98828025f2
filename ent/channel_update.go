// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/channeling-app/reportpipe/ent/channel"
	"github.com/channeling-app/reportpipe/ent/predicate"
)

// ChannelUpdate is the builder for updating Channel entities.
type ChannelUpdate struct {
	config
	hooks    []Hook
	mutation *ChannelMutation
}

// Where appends a list predicates to the ChannelUpdate builder.
func (_u *ChannelUpdate) Where(ps ...predicate.Channel) *ChannelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetYoutubeChannelID sets the "youtube_channel_id" field.
func (_u *ChannelUpdate) SetYoutubeChannelID(v string) *ChannelUpdate {
	_u.mutation.SetYoutubeChannelID(v)
	return _u
}

// SetNillableYoutubeChannelID sets the "youtube_channel_id" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableYoutubeChannelID(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetYoutubeChannelID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ChannelUpdate) SetName(v string) *ChannelUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableName(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *ChannelUpdate) SetConcept(v string) *ChannelUpdate {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableConcept(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// ClearConcept clears the value of the "concept" field.
func (_u *ChannelUpdate) ClearConcept() *ChannelUpdate {
	_u.mutation.ClearConcept()
	return _u
}

// SetTarget sets the "target" field.
func (_u *ChannelUpdate) SetTarget(v string) *ChannelUpdate {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableTarget(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// ClearTarget clears the value of the "target" field.
func (_u *ChannelUpdate) ClearTarget() *ChannelUpdate {
	_u.mutation.ClearTarget()
	return _u
}

// SetChannelHashTag sets the "channel_hash_tag" field.
func (_u *ChannelUpdate) SetChannelHashTag(v string) *ChannelUpdate {
	_u.mutation.SetChannelHashTag(v)
	return _u
}

// SetNillableChannelHashTag sets the "channel_hash_tag" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableChannelHashTag(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetChannelHashTag(*v)
	}
	return _u
}

// ClearChannelHashTag clears the value of the "channel_hash_tag" field.
func (_u *ChannelUpdate) ClearChannelHashTag() *ChannelUpdate {
	_u.mutation.ClearChannelHashTag()
	return _u
}

// SetSubscribe sets the "subscribe" field.
func (_u *ChannelUpdate) SetSubscribe(v int64) *ChannelUpdate {
	_u.mutation.ResetSubscribe()
	_u.mutation.SetSubscribe(v)
	return _u
}

// SetNillableSubscribe sets the "subscribe" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableSubscribe(v *int64) *ChannelUpdate {
	if v != nil {
		_u.SetSubscribe(*v)
	}
	return _u
}

// AddSubscribe adds value to the "subscribe" field.
func (_u *ChannelUpdate) AddSubscribe(v int64) *ChannelUpdate {
	_u.mutation.AddSubscribe(v)
	return _u
}

// ClearSubscribe clears the value of the "subscribe" field.
func (_u *ChannelUpdate) ClearSubscribe() *ChannelUpdate {
	_u.mutation.ClearSubscribe()
	return _u
}

// SetView sets the "view" field.
func (_u *ChannelUpdate) SetView(v int64) *ChannelUpdate {
	_u.mutation.ResetView()
	_u.mutation.SetView(v)
	return _u
}

// SetNillableView sets the "view" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableView(v *int64) *ChannelUpdate {
	if v != nil {
		_u.SetView(*v)
	}
	return _u
}

// AddView adds value to the "view" field.
func (_u *ChannelUpdate) AddView(v int64) *ChannelUpdate {
	_u.mutation.AddView(v)
	return _u
}

// ClearView clears the value of the "view" field.
func (_u *ChannelUpdate) ClearView() *ChannelUpdate {
	_u.mutation.ClearView()
	return _u
}

// SetVideoCount sets the "video_count" field.
func (_u *ChannelUpdate) SetVideoCount(v int) *ChannelUpdate {
	_u.mutation.ResetVideoCount()
	_u.mutation.SetVideoCount(v)
	return _u
}

// SetNillableVideoCount sets the "video_count" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableVideoCount(v *int) *ChannelUpdate {
	if v != nil {
		_u.SetVideoCount(*v)
	}
	return _u
}

// AddVideoCount adds value to the "video_count" field.
func (_u *ChannelUpdate) AddVideoCount(v int) *ChannelUpdate {
	_u.mutation.AddVideoCount(v)
	return _u
}

// ClearVideoCount clears the value of the "video_count" field.
func (_u *ChannelUpdate) ClearVideoCount() *ChannelUpdate {
	_u.mutation.ClearVideoCount()
	return _u
}

// Mutation returns the ChannelMutation object of the builder.
func (_u *ChannelUpdate) Mutation() *ChannelMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChannelUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChannelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChannelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(channel.Table, channel.Columns, sqlgraph.NewFieldSpec(channel.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.YoutubeChannelID(); ok {
		_spec.SetField(channel.FieldYoutubeChannelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(channel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(channel.FieldConcept, field.TypeString, value)
	}
	if _u.mutation.ConceptCleared() {
		_spec.ClearField(channel.FieldConcept, field.TypeString)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(channel.FieldTarget, field.TypeString, value)
	}
	if _u.mutation.TargetCleared() {
		_spec.ClearField(channel.FieldTarget, field.TypeString)
	}
	if value, ok := _u.mutation.ChannelHashTag(); ok {
		_spec.SetField(channel.FieldChannelHashTag, field.TypeString, value)
	}
	if _u.mutation.ChannelHashTagCleared() {
		_spec.ClearField(channel.FieldChannelHashTag, field.TypeString)
	}
	if value, ok := _u.mutation.Subscribe(); ok {
		_spec.SetField(channel.FieldSubscribe, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubscribe(); ok {
		_spec.AddField(channel.FieldSubscribe, field.TypeInt64, value)
	}
	if _u.mutation.SubscribeCleared() {
		_spec.ClearField(channel.FieldSubscribe, field.TypeInt64)
	}
	if value, ok := _u.mutation.View(); ok {
		_spec.SetField(channel.FieldView, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedView(); ok {
		_spec.AddField(channel.FieldView, field.TypeInt64, value)
	}
	if _u.mutation.ViewCleared() {
		_spec.ClearField(channel.FieldView, field.TypeInt64)
	}
	if value, ok := _u.mutation.VideoCount(); ok {
		_spec.SetField(channel.FieldVideoCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVideoCount(); ok {
		_spec.AddField(channel.FieldVideoCount, field.TypeInt, value)
	}
	if _u.mutation.VideoCountCleared() {
		_spec.ClearField(channel.FieldVideoCount, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChannelUpdateOne is the builder for updating a single Channel entity.
type ChannelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChannelMutation
}

// SetYoutubeChannelID sets the "youtube_channel_id" field.
func (_u *ChannelUpdateOne) SetYoutubeChannelID(v string) *ChannelUpdateOne {
	_u.mutation.SetYoutubeChannelID(v)
	return _u
}

// SetNillableYoutubeChannelID sets the "youtube_channel_id" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableYoutubeChannelID(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetYoutubeChannelID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ChannelUpdateOne) SetName(v string) *ChannelUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableName(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *ChannelUpdateOne) SetConcept(v string) *ChannelUpdateOne {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableConcept(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// ClearConcept clears the value of the "concept" field.
func (_u *ChannelUpdateOne) ClearConcept() *ChannelUpdateOne {
	_u.mutation.ClearConcept()
	return _u
}

// SetTarget sets the "target" field.
func (_u *ChannelUpdateOne) SetTarget(v string) *ChannelUpdateOne {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableTarget(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// ClearTarget clears the value of the "target" field.
func (_u *ChannelUpdateOne) ClearTarget() *ChannelUpdateOne {
	_u.mutation.ClearTarget()
	return _u
}

// SetChannelHashTag sets the "channel_hash_tag" field.
func (_u *ChannelUpdateOne) SetChannelHashTag(v string) *ChannelUpdateOne {
	_u.mutation.SetChannelHashTag(v)
	return _u
}

// SetNillableChannelHashTag sets the "channel_hash_tag" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableChannelHashTag(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetChannelHashTag(*v)
	}
	return _u
}

// ClearChannelHashTag clears the value of the "channel_hash_tag" field.
func (_u *ChannelUpdateOne) ClearChannelHashTag() *ChannelUpdateOne {
	_u.mutation.ClearChannelHashTag()
	return _u
}

// SetSubscribe sets the "subscribe" field.
func (_u *ChannelUpdateOne) SetSubscribe(v int64) *ChannelUpdateOne {
	_u.mutation.ResetSubscribe()
	_u.mutation.SetSubscribe(v)
	return _u
}

// SetNillableSubscribe sets the "subscribe" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableSubscribe(v *int64) *ChannelUpdateOne {
	if v != nil {
		_u.SetSubscribe(*v)
	}
	return _u
}

// AddSubscribe adds value to the "subscribe" field.
func (_u *ChannelUpdateOne) AddSubscribe(v int64) *ChannelUpdateOne {
	_u.mutation.AddSubscribe(v)
	return _u
}

// ClearSubscribe clears the value of the "subscribe" field.
func (_u *ChannelUpdateOne) ClearSubscribe() *ChannelUpdateOne {
	_u.mutation.ClearSubscribe()
	return _u
}

// SetView sets the "view" field.
func (_u *ChannelUpdateOne) SetView(v int64) *ChannelUpdateOne {
	_u.mutation.ResetView()
	_u.mutation.SetView(v)
	return _u
}

// SetNillableView sets the "view" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableView(v *int64) *ChannelUpdateOne {
	if v != nil {
		_u.SetView(*v)
	}
	return _u
}

// AddView adds value to the "view" field.
func (_u *ChannelUpdateOne) AddView(v int64) *ChannelUpdateOne {
	_u.mutation.AddView(v)
	return _u
}

// ClearView clears the value of the "view" field.
func (_u *ChannelUpdateOne) ClearView() *ChannelUpdateOne {
	_u.mutation.ClearView()
	return _u
}

// SetVideoCount sets the "video_count" field.
func (_u *ChannelUpdateOne) SetVideoCount(v int) *ChannelUpdateOne {
	_u.mutation.ResetVideoCount()
	_u.mutation.SetVideoCount(v)
	return _u
}

// SetNillableVideoCount sets the "video_count" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableVideoCount(v *int) *ChannelUpdateOne {
	if v != nil {
		_u.SetVideoCount(*v)
	}
	return _u
}

// AddVideoCount adds value to the "video_count" field.
func (_u *ChannelUpdateOne) AddVideoCount(v int) *ChannelUpdateOne {
	_u.mutation.AddVideoCount(v)
	return _u
}

// ClearVideoCount clears the value of the "video_count" field.
func (_u *ChannelUpdateOne) ClearVideoCount() *ChannelUpdateOne {
	_u.mutation.ClearVideoCount()
	return _u
}

// Mutation returns the ChannelMutation object of the builder.
func (_u *ChannelUpdateOne) Mutation() *ChannelMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChannelUpdate builder.
func (_u *ChannelUpdateOne) Where(ps ...predicate.Channel) *ChannelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChannelUpdateOne) Select(field string, fields ...string) *ChannelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Channel entity.
func (_u *ChannelUpdateOne) Save(ctx context.Context) (*Channel, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelUpdateOne) SaveX(ctx context.Context) *Channel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChannelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChannelUpdateOne) sqlSave(ctx context.Context) (_node *Channel, err error) {
	_spec := sqlgraph.NewUpdateSpec(channel.Table, channel.Columns, sqlgraph.NewFieldSpec(channel.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Channel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, channel.FieldID)
		for _, f := range fields {
			if !channel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != channel.FieldID {
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
	if value, ok := _u.mutation.YoutubeChannelID(); ok {
		_spec.SetField(channel.FieldYoutubeChannelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(channel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(channel.FieldConcept, field.TypeString, value)
	}
	if _u.mutation.ConceptCleared() {
		_spec.ClearField(channel.FieldConcept, field.TypeString)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(channel.FieldTarget, field.TypeString, value)
	}
	if _u.mutation.TargetCleared() {
		_spec.ClearField(channel.FieldTarget, field.TypeString)
	}
	if value, ok := _u.mutation.ChannelHashTag(); ok {
		_spec.SetField(channel.FieldChannelHashTag, field.TypeString, value)
	}
	if _u.mutation.ChannelHashTagCleared() {
		_spec.ClearField(channel.FieldChannelHashTag, field.TypeString)
	}
	if value, ok := _u.mutation.Subscribe(); ok {
		_spec.SetField(channel.FieldSubscribe, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubscribe(); ok {
		_spec.AddField(channel.FieldSubscribe, field.TypeInt64, value)
	}
	if _u.mutation.SubscribeCleared() {
		_spec.ClearField(channel.FieldSubscribe, field.TypeInt64)
	}
	if value, ok := _u.mutation.View(); ok {
		_spec.SetField(channel.FieldView, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedView(); ok {
		_spec.AddField(channel.FieldView, field.TypeInt64, value)
	}
	if _u.mutation.ViewCleared() {
		_spec.ClearField(channel.FieldView, field.TypeInt64)
	}
	if value, ok := _u.mutation.VideoCount(); ok {
		_spec.SetField(channel.FieldVideoCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVideoCount(); ok {
		_spec.AddField(channel.FieldVideoCount, field.TypeInt, value)
	}
	if _u.mutation.VideoCountCleared() {
		_spec.ClearField(channel.FieldVideoCount, field.TypeInt)
	}
	_node = &Channel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
