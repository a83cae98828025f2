// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/channeling-app/reportpipe/ent/idea"
)

// IdeaCreate is the builder for creating a Idea entity.
type IdeaCreate struct {
	config
	mutation *IdeaMutation
	hooks    []Hook
}

// SetChannelID sets the "channel_id" field.
func (_c *IdeaCreate) SetChannelID(v int) *IdeaCreate {
	_c.mutation.SetChannelID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *IdeaCreate) SetTitle(v string) *IdeaCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *IdeaCreate) SetContent(v string) *IdeaCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetHashTag sets the "hash_tag" field.
func (_c *IdeaCreate) SetHashTag(v string) *IdeaCreate {
	_c.mutation.SetHashTag(v)
	return _c
}

// SetIsBookMarked sets the "is_book_marked" field.
func (_c *IdeaCreate) SetIsBookMarked(v int) *IdeaCreate {
	_c.mutation.SetIsBookMarked(v)
	return _c
}

// SetNillableIsBookMarked sets the "is_book_marked" field if the given value is not nil.
func (_c *IdeaCreate) SetNillableIsBookMarked(v *int) *IdeaCreate {
	if v != nil {
		_c.SetIsBookMarked(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IdeaCreate) SetCreatedAt(v time.Time) *IdeaCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IdeaCreate) SetNillableCreatedAt(v *time.Time) *IdeaCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the IdeaMutation object of the builder.
func (_c *IdeaCreate) Mutation() *IdeaMutation {
	return _c.mutation
}

// Save creates the Idea in the database.
func (_c *IdeaCreate) Save(ctx context.Context) (*Idea, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IdeaCreate) SaveX(ctx context.Context) *Idea {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IdeaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IdeaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IdeaCreate) defaults() {
	if _, ok := _c.mutation.IsBookMarked(); !ok {
		v := idea.DefaultIsBookMarked
		_c.mutation.SetIsBookMarked(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := idea.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IdeaCreate) check() error {
	if _, ok := _c.mutation.ChannelID(); !ok {
		return &ValidationError{Name: "channel_id", err: errors.New(`ent: missing required field "Idea.channel_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Idea.title"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Idea.content"`)}
	}
	if _, ok := _c.mutation.HashTag(); !ok {
		return &ValidationError{Name: "hash_tag", err: errors.New(`ent: missing required field "Idea.hash_tag"`)}
	}
	if _, ok := _c.mutation.IsBookMarked(); !ok {
		return &ValidationError{Name: "is_book_marked", err: errors.New(`ent: missing required field "Idea.is_book_marked"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Idea.created_at"`)}
	}
	return nil
}

func (_c *IdeaCreate) sqlSave(ctx context.Context) (*Idea, error) {
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

func (_c *IdeaCreate) createSpec() (*Idea, *sqlgraph.CreateSpec) {
	var (
		_node = &Idea{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(idea.Table, sqlgraph.NewFieldSpec(idea.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ChannelID(); ok {
		_spec.SetField(idea.FieldChannelID, field.TypeInt, value)
		_node.ChannelID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(idea.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(idea.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.HashTag(); ok {
		_spec.SetField(idea.FieldHashTag, field.TypeString, value)
		_node.HashTag = value
	}
	if value, ok := _c.mutation.IsBookMarked(); ok {
		_spec.SetField(idea.FieldIsBookMarked, field.TypeInt, value)
		_node.IsBookMarked = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(idea.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// IdeaCreateBulk is the builder for creating many Idea entities in bulk.
type IdeaCreateBulk struct {
	config
	err      error
	builders []*IdeaCreate
}

// Save creates the Idea entities in the database.
func (_c *IdeaCreateBulk) Save(ctx context.Context) ([]*Idea, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Idea, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IdeaMutation)
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
func (_c *IdeaCreateBulk) SaveX(ctx context.Context) []*Idea {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IdeaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IdeaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
