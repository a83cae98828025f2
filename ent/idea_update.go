// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/channeling-app/reportpipe/ent/idea"
	"github.com/channeling-app/reportpipe/ent/predicate"
)

// IdeaUpdate is the builder for updating Idea entities.
type IdeaUpdate struct {
	config
	hooks    []Hook
	mutation *IdeaMutation
}

// Where appends a list predicates to the IdeaUpdate builder.
func (_u *IdeaUpdate) Where(ps ...predicate.Idea) *IdeaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChannelID sets the "channel_id" field.
func (_u *IdeaUpdate) SetChannelID(v int) *IdeaUpdate {
	_u.mutation.ResetChannelID()
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *IdeaUpdate) SetNillableChannelID(v *int) *IdeaUpdate {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// AddChannelID adds value to the "channel_id" field.
func (_u *IdeaUpdate) AddChannelID(v int) *IdeaUpdate {
	_u.mutation.AddChannelID(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *IdeaUpdate) SetTitle(v string) *IdeaUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IdeaUpdate) SetNillableTitle(v *string) *IdeaUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *IdeaUpdate) SetContent(v string) *IdeaUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *IdeaUpdate) SetNillableContent(v *string) *IdeaUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetHashTag sets the "hash_tag" field.
func (_u *IdeaUpdate) SetHashTag(v string) *IdeaUpdate {
	_u.mutation.SetHashTag(v)
	return _u
}

// SetNillableHashTag sets the "hash_tag" field if the given value is not nil.
func (_u *IdeaUpdate) SetNillableHashTag(v *string) *IdeaUpdate {
	if v != nil {
		_u.SetHashTag(*v)
	}
	return _u
}

// SetIsBookMarked sets the "is_book_marked" field.
func (_u *IdeaUpdate) SetIsBookMarked(v int) *IdeaUpdate {
	_u.mutation.ResetIsBookMarked()
	_u.mutation.SetIsBookMarked(v)
	return _u
}

// SetNillableIsBookMarked sets the "is_book_marked" field if the given value is not nil.
func (_u *IdeaUpdate) SetNillableIsBookMarked(v *int) *IdeaUpdate {
	if v != nil {
		_u.SetIsBookMarked(*v)
	}
	return _u
}

// AddIsBookMarked adds value to the "is_book_marked" field.
func (_u *IdeaUpdate) AddIsBookMarked(v int) *IdeaUpdate {
	_u.mutation.AddIsBookMarked(v)
	return _u
}

// Mutation returns the IdeaMutation object of the builder.
func (_u *IdeaUpdate) Mutation() *IdeaMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IdeaUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IdeaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IdeaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IdeaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IdeaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(idea.Table, idea.Columns, sqlgraph.NewFieldSpec(idea.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChannelID(); ok {
		_spec.SetField(idea.FieldChannelID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChannelID(); ok {
		_spec.AddField(idea.FieldChannelID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(idea.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(idea.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.HashTag(); ok {
		_spec.SetField(idea.FieldHashTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsBookMarked(); ok {
		_spec.SetField(idea.FieldIsBookMarked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIsBookMarked(); ok {
		_spec.AddField(idea.FieldIsBookMarked, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{idea.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IdeaUpdateOne is the builder for updating a single Idea entity.
type IdeaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IdeaMutation
}

// SetChannelID sets the "channel_id" field.
func (_u *IdeaUpdateOne) SetChannelID(v int) *IdeaUpdateOne {
	_u.mutation.ResetChannelID()
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *IdeaUpdateOne) SetNillableChannelID(v *int) *IdeaUpdateOne {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// AddChannelID adds value to the "channel_id" field.
func (_u *IdeaUpdateOne) AddChannelID(v int) *IdeaUpdateOne {
	_u.mutation.AddChannelID(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *IdeaUpdateOne) SetTitle(v string) *IdeaUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IdeaUpdateOne) SetNillableTitle(v *string) *IdeaUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *IdeaUpdateOne) SetContent(v string) *IdeaUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *IdeaUpdateOne) SetNillableContent(v *string) *IdeaUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetHashTag sets the "hash_tag" field.
func (_u *IdeaUpdateOne) SetHashTag(v string) *IdeaUpdateOne {
	_u.mutation.SetHashTag(v)
	return _u
}

// SetNillableHashTag sets the "hash_tag" field if the given value is not nil.
func (_u *IdeaUpdateOne) SetNillableHashTag(v *string) *IdeaUpdateOne {
	if v != nil {
		_u.SetHashTag(*v)
	}
	return _u
}

// SetIsBookMarked sets the "is_book_marked" field.
func (_u *IdeaUpdateOne) SetIsBookMarked(v int) *IdeaUpdateOne {
	_u.mutation.ResetIsBookMarked()
	_u.mutation.SetIsBookMarked(v)
	return _u
}

// SetNillableIsBookMarked sets the "is_book_marked" field if the given value is not nil.
func (_u *IdeaUpdateOne) SetNillableIsBookMarked(v *int) *IdeaUpdateOne {
	if v != nil {
		_u.SetIsBookMarked(*v)
	}
	return _u
}

// AddIsBookMarked adds value to the "is_book_marked" field.
func (_u *IdeaUpdateOne) AddIsBookMarked(v int) *IdeaUpdateOne {
	_u.mutation.AddIsBookMarked(v)
	return _u
}

// Mutation returns the IdeaMutation object of the builder.
func (_u *IdeaUpdateOne) Mutation() *IdeaMutation {
	return _u.mutation
}

// Where appends a list predicates to the IdeaUpdate builder.
func (_u *IdeaUpdateOne) Where(ps ...predicate.Idea) *IdeaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IdeaUpdateOne) Select(field string, fields ...string) *IdeaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Idea entity.
func (_u *IdeaUpdateOne) Save(ctx context.Context) (*Idea, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IdeaUpdateOne) SaveX(ctx context.Context) *Idea {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IdeaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IdeaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IdeaUpdateOne) sqlSave(ctx context.Context) (_node *Idea, err error) {
	_spec := sqlgraph.NewUpdateSpec(idea.Table, idea.Columns, sqlgraph.NewFieldSpec(idea.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Idea.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, idea.FieldID)
		for _, f := range fields {
			if !idea.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != idea.FieldID {
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
		_spec.SetField(idea.FieldChannelID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChannelID(); ok {
		_spec.AddField(idea.FieldChannelID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(idea.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(idea.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.HashTag(); ok {
		_spec.SetField(idea.FieldHashTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsBookMarked(); ok {
		_spec.SetField(idea.FieldIsBookMarked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIsBookMarked(); ok {
		_spec.AddField(idea.FieldIsBookMarked, field.TypeInt, value)
	}
	_node = &Idea{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{idea.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
