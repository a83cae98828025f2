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
	"github.com/channeling-app/reportpipe/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *TaskUpdate) SetReportID(v int) *TaskUpdate {
	_u.mutation.ResetReportID()
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableReportID(v *int) *TaskUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// AddReportID adds value to the "report_id" field.
func (_u *TaskUpdate) AddReportID(v int) *TaskUpdate {
	_u.mutation.AddReportID(v)
	return _u
}

// SetOverviewStatus sets the "overview_status" field.
func (_u *TaskUpdate) SetOverviewStatus(v task.OverviewStatus) *TaskUpdate {
	_u.mutation.SetOverviewStatus(v)
	return _u
}

// SetNillableOverviewStatus sets the "overview_status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableOverviewStatus(v *task.OverviewStatus) *TaskUpdate {
	if v != nil {
		_u.SetOverviewStatus(*v)
	}
	return _u
}

// SetAnalysisStatus sets the "analysis_status" field.
func (_u *TaskUpdate) SetAnalysisStatus(v task.AnalysisStatus) *TaskUpdate {
	_u.mutation.SetAnalysisStatus(v)
	return _u
}

// SetNillableAnalysisStatus sets the "analysis_status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAnalysisStatus(v *task.AnalysisStatus) *TaskUpdate {
	if v != nil {
		_u.SetAnalysisStatus(*v)
	}
	return _u
}

// SetIdeaStatus sets the "idea_status" field.
func (_u *TaskUpdate) SetIdeaStatus(v task.IdeaStatus) *TaskUpdate {
	_u.mutation.SetIdeaStatus(v)
	return _u
}

// SetNillableIdeaStatus sets the "idea_status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIdeaStatus(v *task.IdeaStatus) *TaskUpdate {
	if v != nil {
		_u.SetIdeaStatus(*v)
	}
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.OverviewStatus(); ok {
		if err := task.OverviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "overview_status", err: fmt.Errorf(`ent: validator failed for field "Task.overview_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnalysisStatus(); ok {
		if err := task.AnalysisStatusValidator(v); err != nil {
			return &ValidationError{Name: "analysis_status", err: fmt.Errorf(`ent: validator failed for field "Task.analysis_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IdeaStatus(); ok {
		if err := task.IdeaStatusValidator(v); err != nil {
			return &ValidationError{Name: "idea_status", err: fmt.Errorf(`ent: validator failed for field "Task.idea_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(task.FieldReportID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReportID(); ok {
		_spec.AddField(task.FieldReportID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverviewStatus(); ok {
		_spec.SetField(task.FieldOverviewStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnalysisStatus(); ok {
		_spec.SetField(task.FieldAnalysisStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IdeaStatus(); ok {
		_spec.SetField(task.FieldIdeaStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetReportID sets the "report_id" field.
func (_u *TaskUpdateOne) SetReportID(v int) *TaskUpdateOne {
	_u.mutation.ResetReportID()
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableReportID(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// AddReportID adds value to the "report_id" field.
func (_u *TaskUpdateOne) AddReportID(v int) *TaskUpdateOne {
	_u.mutation.AddReportID(v)
	return _u
}

// SetOverviewStatus sets the "overview_status" field.
func (_u *TaskUpdateOne) SetOverviewStatus(v task.OverviewStatus) *TaskUpdateOne {
	_u.mutation.SetOverviewStatus(v)
	return _u
}

// SetNillableOverviewStatus sets the "overview_status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableOverviewStatus(v *task.OverviewStatus) *TaskUpdateOne {
	if v != nil {
		_u.SetOverviewStatus(*v)
	}
	return _u
}

// SetAnalysisStatus sets the "analysis_status" field.
func (_u *TaskUpdateOne) SetAnalysisStatus(v task.AnalysisStatus) *TaskUpdateOne {
	_u.mutation.SetAnalysisStatus(v)
	return _u
}

// SetNillableAnalysisStatus sets the "analysis_status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAnalysisStatus(v *task.AnalysisStatus) *TaskUpdateOne {
	if v != nil {
		_u.SetAnalysisStatus(*v)
	}
	return _u
}

// SetIdeaStatus sets the "idea_status" field.
func (_u *TaskUpdateOne) SetIdeaStatus(v task.IdeaStatus) *TaskUpdateOne {
	_u.mutation.SetIdeaStatus(v)
	return _u
}

// SetNillableIdeaStatus sets the "idea_status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIdeaStatus(v *task.IdeaStatus) *TaskUpdateOne {
	if v != nil {
		_u.SetIdeaStatus(*v)
	}
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.OverviewStatus(); ok {
		if err := task.OverviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "overview_status", err: fmt.Errorf(`ent: validator failed for field "Task.overview_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnalysisStatus(); ok {
		if err := task.AnalysisStatusValidator(v); err != nil {
			return &ValidationError{Name: "analysis_status", err: fmt.Errorf(`ent: validator failed for field "Task.analysis_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IdeaStatus(); ok {
		if err := task.IdeaStatusValidator(v); err != nil {
			return &ValidationError{Name: "idea_status", err: fmt.Errorf(`ent: validator failed for field "Task.idea_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
		_spec.SetField(task.FieldReportID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReportID(); ok {
		_spec.AddField(task.FieldReportID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverviewStatus(); ok {
		_spec.SetField(task.FieldOverviewStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnalysisStatus(); ok {
		_spec.SetField(task.FieldAnalysisStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IdeaStatus(); ok {
		_spec.SetField(task.FieldIdeaStatus, field.TypeEnum, value)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
