// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/channeling-app/reportpipe/ent/channel"
)

// ChannelCreate is the builder for creating a Channel entity.
type ChannelCreate struct {
	config
	mutation *ChannelMutation
	hooks    []Hook
}

// SetYoutubeChannelID sets the "youtube_channel_id" field.
func (_c *ChannelCreate) SetYoutubeChannelID(v string) *ChannelCreate {
	_c.mutation.SetYoutubeChannelID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ChannelCreate) SetName(v string) *ChannelCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetConcept sets the "concept" field.
func (_c *ChannelCreate) SetConcept(v string) *ChannelCreate {
	_c.mutation.SetConcept(v)
	return _c
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableConcept(v *string) *ChannelCreate {
	if v != nil {
		_c.SetConcept(*v)
	}
	return _c
}

// SetTarget sets the "target" field.
func (_c *ChannelCreate) SetTarget(v string) *ChannelCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableTarget(v *string) *ChannelCreate {
	if v != nil {
		_c.SetTarget(*v)
	}
	return _c
}

// SetChannelHashTag sets the "channel_hash_tag" field.
func (_c *ChannelCreate) SetChannelHashTag(v string) *ChannelCreate {
	_c.mutation.SetChannelHashTag(v)
	return _c
}

// SetNillableChannelHashTag sets the "channel_hash_tag" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableChannelHashTag(v *string) *ChannelCreate {
	if v != nil {
		_c.SetChannelHashTag(*v)
	}
	return _c
}

// SetSubscribe sets the "subscribe" field.
func (_c *ChannelCreate) SetSubscribe(v int64) *ChannelCreate {
	_c.mutation.SetSubscribe(v)
	return _c
}

// SetNillableSubscribe sets the "subscribe" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableSubscribe(v *int64) *ChannelCreate {
	if v != nil {
		_c.SetSubscribe(*v)
	}
	return _c
}

// SetView sets the "view" field.
func (_c *ChannelCreate) SetView(v int64) *ChannelCreate {
	_c.mutation.SetView(v)
	return _c
}

// SetNillableView sets the "view" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableView(v *int64) *ChannelCreate {
	if v != nil {
		_c.SetView(*v)
	}
	return _c
}

// SetVideoCount sets the "video_count" field.
func (_c *ChannelCreate) SetVideoCount(v int) *ChannelCreate {
	_c.mutation.SetVideoCount(v)
	return _c
}

// SetNillableVideoCount sets the "video_count" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableVideoCount(v *int) *ChannelCreate {
	if v != nil {
		_c.SetVideoCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChannelCreate) SetCreatedAt(v time.Time) *ChannelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableCreatedAt(v *time.Time) *ChannelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ChannelMutation object of the builder.
func (_c *ChannelCreate) Mutation() *ChannelMutation {
	return _c.mutation
}

// Save creates the Channel in the database.
func (_c *ChannelCreate) Save(ctx context.Context) (*Channel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChannelCreate) SaveX(ctx context.Context) *Channel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChannelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChannelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChannelCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := channel.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChannelCreate) check() error {
	if _, ok := _c.mutation.YoutubeChannelID(); !ok {
		return &ValidationError{Name: "youtube_channel_id", err: errors.New(`ent: missing required field "Channel.youtube_channel_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Channel.name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Channel.created_at"`)}
	}
	return nil
}

func (_c *ChannelCreate) sqlSave(ctx context.Context) (*Channel, error) {
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

func (_c *ChannelCreate) createSpec() (*Channel, *sqlgraph.CreateSpec) {
	var (
		_node = &Channel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(channel.Table, sqlgraph.NewFieldSpec(channel.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.YoutubeChannelID(); ok {
		_spec.SetField(channel.FieldYoutubeChannelID, field.TypeString, value)
		_node.YoutubeChannelID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(channel.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Concept(); ok {
		_spec.SetField(channel.FieldConcept, field.TypeString, value)
		_node.Concept = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(channel.FieldTarget, field.TypeString, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.ChannelHashTag(); ok {
		_spec.SetField(channel.FieldChannelHashTag, field.TypeString, value)
		_node.ChannelHashTag = value
	}
	if value, ok := _c.mutation.Subscribe(); ok {
		_spec.SetField(channel.FieldSubscribe, field.TypeInt64, value)
		_node.Subscribe = value
	}
	if value, ok := _c.mutation.View(); ok {
		_spec.SetField(channel.FieldView, field.TypeInt64, value)
		_node.View = value
	}
	if value, ok := _c.mutation.VideoCount(); ok {
		_spec.SetField(channel.FieldVideoCount, field.TypeInt, value)
		_node.VideoCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(channel.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ChannelCreateBulk is the builder for creating many Channel entities in bulk.
type ChannelCreateBulk struct {
	config
	err      error
	builders []*ChannelCreate
}

// Save creates the Channel entities in the database.
func (_c *ChannelCreateBulk) Save(ctx context.Context) ([]*Channel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Channel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChannelMutation)
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
func (_c *ChannelCreateBulk) SaveX(ctx context.Context) []*Channel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChannelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChannelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
