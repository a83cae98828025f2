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
	"github.com/channeling-app/reportpipe/ent/video"
)

// VideoUpdate is the builder for updating Video entities.
type VideoUpdate struct {
	config
	hooks    []Hook
	mutation *VideoMutation
}

// Where appends a list predicates to the VideoUpdate builder.
func (_u *VideoUpdate) Where(ps ...predicate.Video) *VideoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChannelID sets the "channel_id" field.
func (_u *VideoUpdate) SetChannelID(v int) *VideoUpdate {
	_u.mutation.ResetChannelID()
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableChannelID(v *int) *VideoUpdate {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// AddChannelID adds value to the "channel_id" field.
func (_u *VideoUpdate) AddChannelID(v int) *VideoUpdate {
	_u.mutation.AddChannelID(v)
	return _u
}

// SetYoutubeVideoID sets the "youtube_video_id" field.
func (_u *VideoUpdate) SetYoutubeVideoID(v string) *VideoUpdate {
	_u.mutation.SetYoutubeVideoID(v)
	return _u
}

// SetNillableYoutubeVideoID sets the "youtube_video_id" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableYoutubeVideoID(v *string) *VideoUpdate {
	if v != nil {
		_u.SetYoutubeVideoID(*v)
	}
	return _u
}

// SetVideoCategory sets the "video_category" field.
func (_u *VideoUpdate) SetVideoCategory(v string) *VideoUpdate {
	_u.mutation.SetVideoCategory(v)
	return _u
}

// SetNillableVideoCategory sets the "video_category" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableVideoCategory(v *string) *VideoUpdate {
	if v != nil {
		_u.SetVideoCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *VideoUpdate) SetTitle(v string) *VideoUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableTitle(v *string) *VideoUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *VideoUpdate) ClearTitle() *VideoUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetDescription sets the "description" field.
func (_u *VideoUpdate) SetDescription(v string) *VideoUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableDescription(v *string) *VideoUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *VideoUpdate) ClearDescription() *VideoUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetView sets the "view" field.
func (_u *VideoUpdate) SetView(v int64) *VideoUpdate {
	_u.mutation.ResetView()
	_u.mutation.SetView(v)
	return _u
}

// SetNillableView sets the "view" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableView(v *int64) *VideoUpdate {
	if v != nil {
		_u.SetView(*v)
	}
	return _u
}

// AddView adds value to the "view" field.
func (_u *VideoUpdate) AddView(v int64) *VideoUpdate {
	_u.mutation.AddView(v)
	return _u
}

// ClearView clears the value of the "view" field.
func (_u *VideoUpdate) ClearView() *VideoUpdate {
	_u.mutation.ClearView()
	return _u
}

// SetLikeCount sets the "like_count" field.
func (_u *VideoUpdate) SetLikeCount(v int64) *VideoUpdate {
	_u.mutation.ResetLikeCount()
	_u.mutation.SetLikeCount(v)
	return _u
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableLikeCount(v *int64) *VideoUpdate {
	if v != nil {
		_u.SetLikeCount(*v)
	}
	return _u
}

// AddLikeCount adds value to the "like_count" field.
func (_u *VideoUpdate) AddLikeCount(v int64) *VideoUpdate {
	_u.mutation.AddLikeCount(v)
	return _u
}

// ClearLikeCount clears the value of the "like_count" field.
func (_u *VideoUpdate) ClearLikeCount() *VideoUpdate {
	_u.mutation.ClearLikeCount()
	return _u
}

// SetCommentCount sets the "comment_count" field.
func (_u *VideoUpdate) SetCommentCount(v int64) *VideoUpdate {
	_u.mutation.ResetCommentCount()
	_u.mutation.SetCommentCount(v)
	return _u
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableCommentCount(v *int64) *VideoUpdate {
	if v != nil {
		_u.SetCommentCount(*v)
	}
	return _u
}

// AddCommentCount adds value to the "comment_count" field.
func (_u *VideoUpdate) AddCommentCount(v int64) *VideoUpdate {
	_u.mutation.AddCommentCount(v)
	return _u
}

// ClearCommentCount clears the value of the "comment_count" field.
func (_u *VideoUpdate) ClearCommentCount() *VideoUpdate {
	_u.mutation.ClearCommentCount()
	return _u
}

// SetLink sets the "link" field.
func (_u *VideoUpdate) SetLink(v string) *VideoUpdate {
	_u.mutation.SetLink(v)
	return _u
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableLink(v *string) *VideoUpdate {
	if v != nil {
		_u.SetLink(*v)
	}
	return _u
}

// ClearLink clears the value of the "link" field.
func (_u *VideoUpdate) ClearLink() *VideoUpdate {
	_u.mutation.ClearLink()
	return _u
}

// SetUploadDate sets the "upload_date" field.
func (_u *VideoUpdate) SetUploadDate(v time.Time) *VideoUpdate {
	_u.mutation.SetUploadDate(v)
	return _u
}

// SetNillableUploadDate sets the "upload_date" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableUploadDate(v *time.Time) *VideoUpdate {
	if v != nil {
		_u.SetUploadDate(*v)
	}
	return _u
}

// ClearUploadDate clears the value of the "upload_date" field.
func (_u *VideoUpdate) ClearUploadDate() *VideoUpdate {
	_u.mutation.ClearUploadDate()
	return _u
}

// SetThumbnail sets the "thumbnail" field.
func (_u *VideoUpdate) SetThumbnail(v string) *VideoUpdate {
	_u.mutation.SetThumbnail(v)
	return _u
}

// SetNillableThumbnail sets the "thumbnail" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableThumbnail(v *string) *VideoUpdate {
	if v != nil {
		_u.SetThumbnail(*v)
	}
	return _u
}

// ClearThumbnail clears the value of the "thumbnail" field.
func (_u *VideoUpdate) ClearThumbnail() *VideoUpdate {
	_u.mutation.ClearThumbnail()
	return _u
}

// Mutation returns the VideoMutation object of the builder.
func (_u *VideoUpdate) Mutation() *VideoMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VideoUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VideoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VideoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VideoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VideoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(video.Table, video.Columns, sqlgraph.NewFieldSpec(video.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChannelID(); ok {
		_spec.SetField(video.FieldChannelID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChannelID(); ok {
		_spec.AddField(video.FieldChannelID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.YoutubeVideoID(); ok {
		_spec.SetField(video.FieldYoutubeVideoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoCategory(); ok {
		_spec.SetField(video.FieldVideoCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(video.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(video.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(video.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(video.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.View(); ok {
		_spec.SetField(video.FieldView, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedView(); ok {
		_spec.AddField(video.FieldView, field.TypeInt64, value)
	}
	if _u.mutation.ViewCleared() {
		_spec.ClearField(video.FieldView, field.TypeInt64)
	}
	if value, ok := _u.mutation.LikeCount(); ok {
		_spec.SetField(video.FieldLikeCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLikeCount(); ok {
		_spec.AddField(video.FieldLikeCount, field.TypeInt64, value)
	}
	if _u.mutation.LikeCountCleared() {
		_spec.ClearField(video.FieldLikeCount, field.TypeInt64)
	}
	if value, ok := _u.mutation.CommentCount(); ok {
		_spec.SetField(video.FieldCommentCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCommentCount(); ok {
		_spec.AddField(video.FieldCommentCount, field.TypeInt64, value)
	}
	if _u.mutation.CommentCountCleared() {
		_spec.ClearField(video.FieldCommentCount, field.TypeInt64)
	}
	if value, ok := _u.mutation.Link(); ok {
		_spec.SetField(video.FieldLink, field.TypeString, value)
	}
	if _u.mutation.LinkCleared() {
		_spec.ClearField(video.FieldLink, field.TypeString)
	}
	if value, ok := _u.mutation.UploadDate(); ok {
		_spec.SetField(video.FieldUploadDate, field.TypeTime, value)
	}
	if _u.mutation.UploadDateCleared() {
		_spec.ClearField(video.FieldUploadDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Thumbnail(); ok {
		_spec.SetField(video.FieldThumbnail, field.TypeString, value)
	}
	if _u.mutation.ThumbnailCleared() {
		_spec.ClearField(video.FieldThumbnail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{video.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VideoUpdateOne is the builder for updating a single Video entity.
type VideoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VideoMutation
}

// SetChannelID sets the "channel_id" field.
func (_u *VideoUpdateOne) SetChannelID(v int) *VideoUpdateOne {
	_u.mutation.ResetChannelID()
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableChannelID(v *int) *VideoUpdateOne {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// AddChannelID adds value to the "channel_id" field.
func (_u *VideoUpdateOne) AddChannelID(v int) *VideoUpdateOne {
	_u.mutation.AddChannelID(v)
	return _u
}

// SetYoutubeVideoID sets the "youtube_video_id" field.
func (_u *VideoUpdateOne) SetYoutubeVideoID(v string) *VideoUpdateOne {
	_u.mutation.SetYoutubeVideoID(v)
	return _u
}

// SetNillableYoutubeVideoID sets the "youtube_video_id" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableYoutubeVideoID(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetYoutubeVideoID(*v)
	}
	return _u
}

// SetVideoCategory sets the "video_category" field.
func (_u *VideoUpdateOne) SetVideoCategory(v string) *VideoUpdateOne {
	_u.mutation.SetVideoCategory(v)
	return _u
}

// SetNillableVideoCategory sets the "video_category" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableVideoCategory(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetVideoCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *VideoUpdateOne) SetTitle(v string) *VideoUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableTitle(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *VideoUpdateOne) ClearTitle() *VideoUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetDescription sets the "description" field.
func (_u *VideoUpdateOne) SetDescription(v string) *VideoUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableDescription(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *VideoUpdateOne) ClearDescription() *VideoUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetView sets the "view" field.
func (_u *VideoUpdateOne) SetView(v int64) *VideoUpdateOne {
	_u.mutation.ResetView()
	_u.mutation.SetView(v)
	return _u
}

// SetNillableView sets the "view" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableView(v *int64) *VideoUpdateOne {
	if v != nil {
		_u.SetView(*v)
	}
	return _u
}

// AddView adds value to the "view" field.
func (_u *VideoUpdateOne) AddView(v int64) *VideoUpdateOne {
	_u.mutation.AddView(v)
	return _u
}

// ClearView clears the value of the "view" field.
func (_u *VideoUpdateOne) ClearView() *VideoUpdateOne {
	_u.mutation.ClearView()
	return _u
}

// SetLikeCount sets the "like_count" field.
func (_u *VideoUpdateOne) SetLikeCount(v int64) *VideoUpdateOne {
	_u.mutation.ResetLikeCount()
	_u.mutation.SetLikeCount(v)
	return _u
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableLikeCount(v *int64) *VideoUpdateOne {
	if v != nil {
		_u.SetLikeCount(*v)
	}
	return _u
}

// AddLikeCount adds value to the "like_count" field.
func (_u *VideoUpdateOne) AddLikeCount(v int64) *VideoUpdateOne {
	_u.mutation.AddLikeCount(v)
	return _u
}

// ClearLikeCount clears the value of the "like_count" field.
func (_u *VideoUpdateOne) ClearLikeCount() *VideoUpdateOne {
	_u.mutation.ClearLikeCount()
	return _u
}

// SetCommentCount sets the "comment_count" field.
func (_u *VideoUpdateOne) SetCommentCount(v int64) *VideoUpdateOne {
	_u.mutation.ResetCommentCount()
	_u.mutation.SetCommentCount(v)
	return _u
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableCommentCount(v *int64) *VideoUpdateOne {
	if v != nil {
		_u.SetCommentCount(*v)
	}
	return _u
}

// AddCommentCount adds value to the "comment_count" field.
func (_u *VideoUpdateOne) AddCommentCount(v int64) *VideoUpdateOne {
	_u.mutation.AddCommentCount(v)
	return _u
}

// ClearCommentCount clears the value of the "comment_count" field.
func (_u *VideoUpdateOne) ClearCommentCount() *VideoUpdateOne {
	_u.mutation.ClearCommentCount()
	return _u
}

// SetLink sets the "link" field.
func (_u *VideoUpdateOne) SetLink(v string) *VideoUpdateOne {
	_u.mutation.SetLink(v)
	return _u
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableLink(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetLink(*v)
	}
	return _u
}

// ClearLink clears the value of the "link" field.
func (_u *VideoUpdateOne) ClearLink() *VideoUpdateOne {
	_u.mutation.ClearLink()
	return _u
}

// SetUploadDate sets the "upload_date" field.
func (_u *VideoUpdateOne) SetUploadDate(v time.Time) *VideoUpdateOne {
	_u.mutation.SetUploadDate(v)
	return _u
}

// SetNillableUploadDate sets the "upload_date" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableUploadDate(v *time.Time) *VideoUpdateOne {
	if v != nil {
		_u.SetUploadDate(*v)
	}
	return _u
}

// ClearUploadDate clears the value of the "upload_date" field.
func (_u *VideoUpdateOne) ClearUploadDate() *VideoUpdateOne {
	_u.mutation.ClearUploadDate()
	return _u
}

// SetThumbnail sets the "thumbnail" field.
func (_u *VideoUpdateOne) SetThumbnail(v string) *VideoUpdateOne {
	_u.mutation.SetThumbnail(v)
	return _u
}

// SetNillableThumbnail sets the "thumbnail" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableThumbnail(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetThumbnail(*v)
	}
	return _u
}

// ClearThumbnail clears the value of the "thumbnail" field.
func (_u *VideoUpdateOne) ClearThumbnail() *VideoUpdateOne {
	_u.mutation.ClearThumbnail()
	return _u
}

// Mutation returns the VideoMutation object of the builder.
func (_u *VideoUpdateOne) Mutation() *VideoMutation {
	return _u.mutation
}

// Where appends a list predicates to the VideoUpdate builder.
func (_u *VideoUpdateOne) Where(ps ...predicate.Video) *VideoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VideoUpdateOne) Select(field string, fields ...string) *VideoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Video entity.
func (_u *VideoUpdateOne) Save(ctx context.Context) (*Video, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VideoUpdateOne) SaveX(ctx context.Context) *Video {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VideoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VideoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VideoUpdateOne) sqlSave(ctx context.Context) (_node *Video, err error) {
	_spec := sqlgraph.NewUpdateSpec(video.Table, video.Columns, sqlgraph.NewFieldSpec(video.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Video.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, video.FieldID)
		for _, f := range fields {
			if !video.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != video.FieldID {
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
	if value, ok := _u.mutation.ChannelID(); ok {
		_spec.SetField(video.FieldChannelID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChannelID(); ok {
		_spec.AddField(video.FieldChannelID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.YoutubeVideoID(); ok {
		_spec.SetField(video.FieldYoutubeVideoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoCategory(); ok {
		_spec.SetField(video.FieldVideoCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(video.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(video.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(video.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(video.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.View(); ok {
		_spec.SetField(video.FieldView, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedView(); ok {
		_spec.AddField(video.FieldView, field.TypeInt64, value)
	}
	if _u.mutation.ViewCleared() {
		_spec.ClearField(video.FieldView, field.TypeInt64)
	}
	if value, ok := _u.mutation.LikeCount(); ok {
		_spec.SetField(video.FieldLikeCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLikeCount(); ok {
		_spec.AddField(video.FieldLikeCount, field.TypeInt64, value)
	}
	if _u.mutation.LikeCountCleared() {
		_spec.ClearField(video.FieldLikeCount, field.TypeInt64)
	}
	if value, ok := _u.mutation.CommentCount(); ok {
		_spec.SetField(video.FieldCommentCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCommentCount(); ok {
		_spec.AddField(video.FieldCommentCount, field.TypeInt64, value)
	}
	if _u.mutation.CommentCountCleared() {
		_spec.ClearField(video.FieldCommentCount, field.TypeInt64)
	}
	if value, ok := _u.mutation.Link(); ok {
		_spec.SetField(video.FieldLink, field.TypeString, value)
	}
	if _u.mutation.LinkCleared() {
		_spec.ClearField(video.FieldLink, field.TypeString)
	}
	if value, ok := _u.mutation.UploadDate(); ok {
		_spec.SetField(video.FieldUploadDate, field.TypeTime, value)
	}
	if _u.mutation.UploadDateCleared() {
		_spec.ClearField(video.FieldUploadDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Thumbnail(); ok {
		_spec.SetField(video.FieldThumbnail, field.TypeString, value)
	}
	if _u.mutation.ThumbnailCleared() {
		_spec.ClearField(video.FieldThumbnail, field.TypeString)
	}
	_node = &Video{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{video.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
