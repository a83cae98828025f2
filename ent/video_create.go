// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/channeling-app/reportpipe/ent/video"
)

// VideoCreate is the builder for creating a Video entity.
type VideoCreate struct {
	config
	mutation *VideoMutation
	hooks    []Hook
}

// SetChannelID sets the "channel_id" field.
func (_c *VideoCreate) SetChannelID(v int) *VideoCreate {
	_c.mutation.SetChannelID(v)
	return _c
}

// SetYoutubeVideoID sets the "youtube_video_id" field.
func (_c *VideoCreate) SetYoutubeVideoID(v string) *VideoCreate {
	_c.mutation.SetYoutubeVideoID(v)
	return _c
}

// SetVideoCategory sets the "video_category" field.
func (_c *VideoCreate) SetVideoCategory(v string) *VideoCreate {
	_c.mutation.SetVideoCategory(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *VideoCreate) SetTitle(v string) *VideoCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *VideoCreate) SetNillableTitle(v *string) *VideoCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *VideoCreate) SetDescription(v string) *VideoCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *VideoCreate) SetNillableDescription(v *string) *VideoCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetView sets the "view" field.
func (_c *VideoCreate) SetView(v int64) *VideoCreate {
	_c.mutation.SetView(v)
	return _c
}

// SetNillableView sets the "view" field if the given value is not nil.
func (_c *VideoCreate) SetNillableView(v *int64) *VideoCreate {
	if v != nil {
		_c.SetView(*v)
	}
	return _c
}

// SetLikeCount sets the "like_count" field.
func (_c *VideoCreate) SetLikeCount(v int64) *VideoCreate {
	_c.mutation.SetLikeCount(v)
	return _c
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (_c *VideoCreate) SetNillableLikeCount(v *int64) *VideoCreate {
	if v != nil {
		_c.SetLikeCount(*v)
	}
	return _c
}

// SetCommentCount sets the "comment_count" field.
func (_c *VideoCreate) SetCommentCount(v int64) *VideoCreate {
	_c.mutation.SetCommentCount(v)
	return _c
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_c *VideoCreate) SetNillableCommentCount(v *int64) *VideoCreate {
	if v != nil {
		_c.SetCommentCount(*v)
	}
	return _c
}

// SetLink sets the "link" field.
func (_c *VideoCreate) SetLink(v string) *VideoCreate {
	_c.mutation.SetLink(v)
	return _c
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_c *VideoCreate) SetNillableLink(v *string) *VideoCreate {
	if v != nil {
		_c.SetLink(*v)
	}
	return _c
}

// SetUploadDate sets the "upload_date" field.
func (_c *VideoCreate) SetUploadDate(v time.Time) *VideoCreate {
	_c.mutation.SetUploadDate(v)
	return _c
}

// SetNillableUploadDate sets the "upload_date" field if the given value is not nil.
func (_c *VideoCreate) SetNillableUploadDate(v *time.Time) *VideoCreate {
	if v != nil {
		_c.SetUploadDate(*v)
	}
	return _c
}

// SetThumbnail sets the "thumbnail" field.
func (_c *VideoCreate) SetThumbnail(v string) *VideoCreate {
	_c.mutation.SetThumbnail(v)
	return _c
}

// SetNillableThumbnail sets the "thumbnail" field if the given value is not nil.
func (_c *VideoCreate) SetNillableThumbnail(v *string) *VideoCreate {
	if v != nil {
		_c.SetThumbnail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VideoCreate) SetCreatedAt(v time.Time) *VideoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VideoCreate) SetNillableCreatedAt(v *time.Time) *VideoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the VideoMutation object of the builder.
func (_c *VideoCreate) Mutation() *VideoMutation {
	return _c.mutation
}

// Save creates the Video in the database.
func (_c *VideoCreate) Save(ctx context.Context) (*Video, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VideoCreate) SaveX(ctx context.Context) *Video {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VideoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VideoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VideoCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := video.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VideoCreate) check() error {
	if _, ok := _c.mutation.ChannelID(); !ok {
		return &ValidationError{Name: "channel_id", err: errors.New(`ent: missing required field "Video.channel_id"`)}
	}
	if _, ok := _c.mutation.YoutubeVideoID(); !ok {
		return &ValidationError{Name: "youtube_video_id", err: errors.New(`ent: missing required field "Video.youtube_video_id"`)}
	}
	if _, ok := _c.mutation.VideoCategory(); !ok {
		return &ValidationError{Name: "video_category", err: errors.New(`ent: missing required field "Video.video_category"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Video.created_at"`)}
	}
	return nil
}

func (_c *VideoCreate) sqlSave(ctx context.Context) (*Video, error) {
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

func (_c *VideoCreate) createSpec() (*Video, *sqlgraph.CreateSpec) {
	var (
		_node = &Video{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(video.Table, sqlgraph.NewFieldSpec(video.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ChannelID(); ok {
		_spec.SetField(video.FieldChannelID, field.TypeInt, value)
		_node.ChannelID = value
	}
	if value, ok := _c.mutation.YoutubeVideoID(); ok {
		_spec.SetField(video.FieldYoutubeVideoID, field.TypeString, value)
		_node.YoutubeVideoID = value
	}
	if value, ok := _c.mutation.VideoCategory(); ok {
		_spec.SetField(video.FieldVideoCategory, field.TypeString, value)
		_node.VideoCategory = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(video.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(video.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.View(); ok {
		_spec.SetField(video.FieldView, field.TypeInt64, value)
		_node.View = value
	}
	if value, ok := _c.mutation.LikeCount(); ok {
		_spec.SetField(video.FieldLikeCount, field.TypeInt64, value)
		_node.LikeCount = value
	}
	if value, ok := _c.mutation.CommentCount(); ok {
		_spec.SetField(video.FieldCommentCount, field.TypeInt64, value)
		_node.CommentCount = value
	}
	if value, ok := _c.mutation.Link(); ok {
		_spec.SetField(video.FieldLink, field.TypeString, value)
		_node.Link = value
	}
	if value, ok := _c.mutation.UploadDate(); ok {
		_spec.SetField(video.FieldUploadDate, field.TypeTime, value)
		_node.UploadDate = &value
	}
	if value, ok := _c.mutation.Thumbnail(); ok {
		_spec.SetField(video.FieldThumbnail, field.TypeString, value)
		_node.Thumbnail = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(video.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// VideoCreateBulk is the builder for creating many Video entities in bulk.
type VideoCreateBulk struct {
	config
	err      error
	builders []*VideoCreate
}

// Save creates the Video entities in the database.
func (_c *VideoCreateBulk) Save(ctx context.Context) ([]*Video, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Video, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VideoMutation)
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
func (_c *VideoCreateBulk) SaveX(ctx context.Context) []*Video {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VideoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VideoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
