// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/channeling-app/reportpipe/ent/trendkeyword"
)

// TrendKeywordCreate is the builder for creating a TrendKeyword entity.
type TrendKeywordCreate struct {
	config
	mutation *TrendKeywordMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *TrendKeywordCreate) SetReportID(v int) *TrendKeywordCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetKeywordType sets the "keyword_type" field.
func (_c *TrendKeywordCreate) SetKeywordType(v trendkeyword.KeywordType) *TrendKeywordCreate {
	_c.mutation.SetKeywordType(v)
	return _c
}

// SetKeyword sets the "keyword" field.
func (_c *TrendKeywordCreate) SetKeyword(v string) *TrendKeywordCreate {
	_c.mutation.SetKeyword(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *TrendKeywordCreate) SetScore(v int) *TrendKeywordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrendKeywordCreate) SetCreatedAt(v time.Time) *TrendKeywordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrendKeywordCreate) SetNillableCreatedAt(v *time.Time) *TrendKeywordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the TrendKeywordMutation object of the builder.
func (_c *TrendKeywordCreate) Mutation() *TrendKeywordMutation {
	return _c.mutation
}

// Save creates the TrendKeyword in the database.
func (_c *TrendKeywordCreate) Save(ctx context.Context) (*TrendKeyword, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrendKeywordCreate) SaveX(ctx context.Context) *TrendKeyword {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrendKeywordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrendKeywordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrendKeywordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trendkeyword.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrendKeywordCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "TrendKeyword.report_id"`)}
	}
	if _, ok := _c.mutation.KeywordType(); !ok {
		return &ValidationError{Name: "keyword_type", err: errors.New(`ent: missing required field "TrendKeyword.keyword_type"`)}
	}
	if v, ok := _c.mutation.KeywordType(); ok {
		if err := trendkeyword.KeywordTypeValidator(v); err != nil {
			return &ValidationError{Name: "keyword_type", err: fmt.Errorf(`ent: validator failed for field "TrendKeyword.keyword_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Keyword(); !ok {
		return &ValidationError{Name: "keyword", err: errors.New(`ent: missing required field "TrendKeyword.keyword"`)}
	}
	if v, ok := _c.mutation.Keyword(); ok {
		if err := trendkeyword.KeywordValidator(v); err != nil {
			return &ValidationError{Name: "keyword", err: fmt.Errorf(`ent: validator failed for field "TrendKeyword.keyword": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "TrendKeyword.score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrendKeyword.created_at"`)}
	}
	return nil
}

func (_c *TrendKeywordCreate) sqlSave(ctx context.Context) (*TrendKeyword, error) {
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

func (_c *TrendKeywordCreate) createSpec() (*TrendKeyword, *sqlgraph.CreateSpec) {
	var (
		_node = &TrendKeyword{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trendkeyword.Table, sqlgraph.NewFieldSpec(trendkeyword.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ReportID(); ok {
		_spec.SetField(trendkeyword.FieldReportID, field.TypeInt, value)
		_node.ReportID = value
	}
	if value, ok := _c.mutation.KeywordType(); ok {
		_spec.SetField(trendkeyword.FieldKeywordType, field.TypeEnum, value)
		_node.KeywordType = value
	}
	if value, ok := _c.mutation.Keyword(); ok {
		_spec.SetField(trendkeyword.FieldKeyword, field.TypeString, value)
		_node.Keyword = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(trendkeyword.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trendkeyword.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TrendKeywordCreateBulk is the builder for creating many TrendKeyword entities in bulk.
type TrendKeywordCreateBulk struct {
	config
	err      error
	builders []*TrendKeywordCreate
}

// Save creates the TrendKeyword entities in the database.
func (_c *TrendKeywordCreateBulk) Save(ctx context.Context) ([]*TrendKeyword, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrendKeyword, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrendKeywordMutation)
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
func (_c *TrendKeywordCreateBulk) SaveX(ctx context.Context) []*TrendKeyword {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrendKeywordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrendKeywordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
