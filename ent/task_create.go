// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/channeling-app/reportpipe/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *TaskCreate) SetReportID(v int) *TaskCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetOverviewStatus sets the "overview_status" field.
func (_c *TaskCreate) SetOverviewStatus(v task.OverviewStatus) *TaskCreate {
	_c.mutation.SetOverviewStatus(v)
	return _c
}

// SetNillableOverviewStatus sets the "overview_status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableOverviewStatus(v *task.OverviewStatus) *TaskCreate {
	if v != nil {
		_c.SetOverviewStatus(*v)
	}
	return _c
}

// SetAnalysisStatus sets the "analysis_status" field.
func (_c *TaskCreate) SetAnalysisStatus(v task.AnalysisStatus) *TaskCreate {
	_c.mutation.SetAnalysisStatus(v)
	return _c
}

// SetNillableAnalysisStatus sets the "analysis_status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAnalysisStatus(v *task.AnalysisStatus) *TaskCreate {
	if v != nil {
		_c.SetAnalysisStatus(*v)
	}
	return _c
}

// SetIdeaStatus sets the "idea_status" field.
func (_c *TaskCreate) SetIdeaStatus(v task.IdeaStatus) *TaskCreate {
	_c.mutation.SetIdeaStatus(v)
	return _c
}

// SetNillableIdeaStatus sets the "idea_status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableIdeaStatus(v *task.IdeaStatus) *TaskCreate {
	if v != nil {
		_c.SetIdeaStatus(*v)
	}
	return _c
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.OverviewStatus(); !ok {
		v := task.DefaultOverviewStatus
		_c.mutation.SetOverviewStatus(v)
	}
	if _, ok := _c.mutation.AnalysisStatus(); !ok {
		v := task.DefaultAnalysisStatus
		_c.mutation.SetAnalysisStatus(v)
	}
	if _, ok := _c.mutation.IdeaStatus(); !ok {
		v := task.DefaultIdeaStatus
		_c.mutation.SetIdeaStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "Task.report_id"`)}
	}
	if _, ok := _c.mutation.OverviewStatus(); !ok {
		return &ValidationError{Name: "overview_status", err: errors.New(`ent: missing required field "Task.overview_status"`)}
	}
	if v, ok := _c.mutation.OverviewStatus(); ok {
		if err := task.OverviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "overview_status", err: fmt.Errorf(`ent: validator failed for field "Task.overview_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnalysisStatus(); !ok {
		return &ValidationError{Name: "analysis_status", err: errors.New(`ent: missing required field "Task.analysis_status"`)}
	}
	if v, ok := _c.mutation.AnalysisStatus(); ok {
		if err := task.AnalysisStatusValidator(v); err != nil {
			return &ValidationError{Name: "analysis_status", err: fmt.Errorf(`ent: validator failed for field "Task.analysis_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IdeaStatus(); !ok {
		return &ValidationError{Name: "idea_status", err: errors.New(`ent: missing required field "Task.idea_status"`)}
	}
	if v, ok := _c.mutation.IdeaStatus(); ok {
		if err := task.IdeaStatusValidator(v); err != nil {
			return &ValidationError{Name: "idea_status", err: fmt.Errorf(`ent: validator failed for field "Task.idea_status": %w`, err)}
		}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
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

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ReportID(); ok {
		_spec.SetField(task.FieldReportID, field.TypeInt, value)
		_node.ReportID = value
	}
	if value, ok := _c.mutation.OverviewStatus(); ok {
		_spec.SetField(task.FieldOverviewStatus, field.TypeEnum, value)
		_node.OverviewStatus = value
	}
	if value, ok := _c.mutation.AnalysisStatus(); ok {
		_spec.SetField(task.FieldAnalysisStatus, field.TypeEnum, value)
		_node.AnalysisStatus = value
	}
	if value, ok := _c.mutation.IdeaStatus(); ok {
		_spec.SetField(task.FieldIdeaStatus, field.TypeEnum, value)
		_node.IdeaStatus = value
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
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
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
