// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/channeling-app/reportpipe/ent/predicate"
	"github.com/channeling-app/reportpipe/ent/trendkeyword"
)

// TrendKeywordUpdate is the builder for updating TrendKeyword entities.
type TrendKeywordUpdate struct {
	config
	hooks    []Hook
	mutation *TrendKeywordMutation
}

// Where appends a list predicates to the TrendKeywordUpdate builder.
func (_u *TrendKeywordUpdate) Where(ps ...predicate.TrendKeyword) *TrendKeywordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *TrendKeywordUpdate) SetReportID(v int) *TrendKeywordUpdate {
	_u.mutation.ResetReportID()
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *TrendKeywordUpdate) SetNillableReportID(v *int) *TrendKeywordUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// AddReportID adds value to the "report_id" field.
func (_u *TrendKeywordUpdate) AddReportID(v int) *TrendKeywordUpdate {
	_u.mutation.AddReportID(v)
	return _u
}

// SetKeywordType sets the "keyword_type" field.
func (_u *TrendKeywordUpdate) SetKeywordType(v trendkeyword.KeywordType) *TrendKeywordUpdate {
	_u.mutation.SetKeywordType(v)
	return _u
}

// SetNillableKeywordType sets the "keyword_type" field if the given value is not nil.
func (_u *TrendKeywordUpdate) SetNillableKeywordType(v *trendkeyword.KeywordType) *TrendKeywordUpdate {
	if v != nil {
		_u.SetKeywordType(*v)
	}
	return _u
}

// SetKeyword sets the "keyword" field.
func (_u *TrendKeywordUpdate) SetKeyword(v string) *TrendKeywordUpdate {
	_u.mutation.SetKeyword(v)
	return _u
}

// SetNillableKeyword sets the "keyword" field if the given value is not nil.
func (_u *TrendKeywordUpdate) SetNillableKeyword(v *string) *TrendKeywordUpdate {
	if v != nil {
		_u.SetKeyword(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *TrendKeywordUpdate) SetScore(v int) *TrendKeywordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TrendKeywordUpdate) SetNillableScore(v *int) *TrendKeywordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TrendKeywordUpdate) AddScore(v int) *TrendKeywordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the TrendKeywordMutation object of the builder.
func (_u *TrendKeywordUpdate) Mutation() *TrendKeywordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrendKeywordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrendKeywordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrendKeywordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrendKeywordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrendKeywordUpdate) check() error {
	if v, ok := _u.mutation.KeywordType(); ok {
		if err := trendkeyword.KeywordTypeValidator(v); err != nil {
			return &ValidationError{Name: "keyword_type", err: fmt.Errorf(`ent: validator failed for field "TrendKeyword.keyword_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Keyword(); ok {
		if err := trendkeyword.KeywordValidator(v); err != nil {
			return &ValidationError{Name: "keyword", err: fmt.Errorf(`ent: validator failed for field "TrendKeyword.keyword": %w`, err)}
		}
	}
	return nil
}

func (_u *TrendKeywordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trendkeyword.Table, trendkeyword.Columns, sqlgraph.NewFieldSpec(trendkeyword.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(trendkeyword.FieldReportID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReportID(); ok {
		_spec.AddField(trendkeyword.FieldReportID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.KeywordType(); ok {
		_spec.SetField(trendkeyword.FieldKeywordType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Keyword(); ok {
		_spec.SetField(trendkeyword.FieldKeyword, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(trendkeyword.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(trendkeyword.FieldScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trendkeyword.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrendKeywordUpdateOne is the builder for updating a single TrendKeyword entity.
type TrendKeywordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrendKeywordMutation
}

// SetReportID sets the "report_id" field.
func (_u *TrendKeywordUpdateOne) SetReportID(v int) *TrendKeywordUpdateOne {
	_u.mutation.ResetReportID()
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *TrendKeywordUpdateOne) SetNillableReportID(v *int) *TrendKeywordUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// AddReportID adds value to the "report_id" field.
func (_u *TrendKeywordUpdateOne) AddReportID(v int) *TrendKeywordUpdateOne {
	_u.mutation.AddReportID(v)
	return _u
}

// SetKeywordType sets the "keyword_type" field.
func (_u *TrendKeywordUpdateOne) SetKeywordType(v trendkeyword.KeywordType) *TrendKeywordUpdateOne {
	_u.mutation.SetKeywordType(v)
	return _u
}

// SetNillableKeywordType sets the "keyword_type" field if the given value is not nil.
func (_u *TrendKeywordUpdateOne) SetNillableKeywordType(v *trendkeyword.KeywordType) *TrendKeywordUpdateOne {
	if v != nil {
		_u.SetKeywordType(*v)
	}
	return _u
}

// SetKeyword sets the "keyword" field.
func (_u *TrendKeywordUpdateOne) SetKeyword(v string) *TrendKeywordUpdateOne {
	_u.mutation.SetKeyword(v)
	return _u
}

// SetNillableKeyword sets the "keyword" field if the given value is not nil.
func (_u *TrendKeywordUpdateOne) SetNillableKeyword(v *string) *TrendKeywordUpdateOne {
	if v != nil {
		_u.SetKeyword(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *TrendKeywordUpdateOne) SetScore(v int) *TrendKeywordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TrendKeywordUpdateOne) SetNillableScore(v *int) *TrendKeywordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TrendKeywordUpdateOne) AddScore(v int) *TrendKeywordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the TrendKeywordMutation object of the builder.
func (_u *TrendKeywordUpdateOne) Mutation() *TrendKeywordMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrendKeywordUpdate builder.
func (_u *TrendKeywordUpdateOne) Where(ps ...predicate.TrendKeyword) *TrendKeywordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrendKeywordUpdateOne) Select(field string, fields ...string) *TrendKeywordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrendKeyword entity.
func (_u *TrendKeywordUpdateOne) Save(ctx context.Context) (*TrendKeyword, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrendKeywordUpdateOne) SaveX(ctx context.Context) *TrendKeyword {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrendKeywordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrendKeywordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrendKeywordUpdateOne) check() error {
	if v, ok := _u.mutation.KeywordType(); ok {
		if err := trendkeyword.KeywordTypeValidator(v); err != nil {
			return &ValidationError{Name: "keyword_type", err: fmt.Errorf(`ent: validator failed for field "TrendKeyword.keyword_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Keyword(); ok {
		if err := trendkeyword.KeywordValidator(v); err != nil {
			return &ValidationError{Name: "keyword", err: fmt.Errorf(`ent: validator failed for field "TrendKeyword.keyword": %w`, err)}
		}
	}
	return nil
}

func (_u *TrendKeywordUpdateOne) sqlSave(ctx context.Context) (_node *TrendKeyword, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trendkeyword.Table, trendkeyword.Columns, sqlgraph.NewFieldSpec(trendkeyword.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrendKeyword.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trendkeyword.FieldID)
		for _, f := range fields {
			if !trendkeyword.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trendkeyword.FieldID {
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
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(trendkeyword.FieldReportID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReportID(); ok {
		_spec.AddField(trendkeyword.FieldReportID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.KeywordType(); ok {
		_spec.SetField(trendkeyword.FieldKeywordType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Keyword(); ok {
		_spec.SetField(trendkeyword.FieldKeyword, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(trendkeyword.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(trendkeyword.FieldScore, field.TypeInt, value)
	}
	_node = &TrendKeyword{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trendkeyword.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
