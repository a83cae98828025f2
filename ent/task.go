// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/channeling-app/reportpipe/ent/task"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID int `json:"report_id,omitempty"`
	// OverviewStatus holds the value of the "overview_status" field.
	OverviewStatus task.OverviewStatus `json:"overview_status,omitempty"`
	// AnalysisStatus holds the value of the "analysis_status" field.
	AnalysisStatus task.AnalysisStatus `json:"analysis_status,omitempty"`
	// IdeaStatus holds the value of the "idea_status" field.
	IdeaStatus   task.IdeaStatus `json:"idea_status,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldID, task.FieldReportID:
			values[i] = new(sql.NullInt64)
		case task.FieldOverviewStatus, task.FieldAnalysisStatus, task.FieldIdeaStatus:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case task.FieldReportID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = int(value.Int64)
			}
		case task.FieldOverviewStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field overview_status", values[i])
			} else if value.Valid {
				_m.OverviewStatus = task.OverviewStatus(value.String)
			}
		case task.FieldAnalysisStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_status", values[i])
			} else if value.Valid {
				_m.AnalysisStatus = task.AnalysisStatus(value.String)
			}
		case task.FieldIdeaStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idea_status", values[i])
			} else if value.Valid {
				_m.IdeaStatus = task.IdeaStatus(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportID))
	builder.WriteString(", ")
	builder.WriteString("overview_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverviewStatus))
	builder.WriteString(", ")
	builder.WriteString("analysis_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalysisStatus))
	builder.WriteString(", ")
	builder.WriteString("idea_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.IdeaStatus))
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
