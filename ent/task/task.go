// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldOverviewStatus holds the string denoting the overview_status field in the database.
	FieldOverviewStatus = "overview_status"
	// FieldAnalysisStatus holds the string denoting the analysis_status field in the database.
	FieldAnalysisStatus = "analysis_status"
	// FieldIdeaStatus holds the string denoting the idea_status field in the database.
	FieldIdeaStatus = "idea_status"
	// Table holds the table name of the task in the database.
	Table = "tasks"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldReportID,
	FieldOverviewStatus,
	FieldAnalysisStatus,
	FieldIdeaStatus,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OverviewStatus defines the type for the "overview_status" enum field.
type OverviewStatus string

// OverviewStatusPending is the default value of the OverviewStatus enum.
const DefaultOverviewStatus = OverviewStatusPending

// OverviewStatus values.
const (
	OverviewStatusPending   OverviewStatus = "pending"
	OverviewStatusCompleted OverviewStatus = "completed"
	OverviewStatusFailed    OverviewStatus = "failed"
)

func (os OverviewStatus) String() string {
	return string(os)
}

// OverviewStatusValidator is a validator for the "overview_status" field enum values. It is called by the builders before save.
func OverviewStatusValidator(os OverviewStatus) error {
	switch os {
	case OverviewStatusPending, OverviewStatusCompleted, OverviewStatusFailed:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for overview_status field: %q", os)
	}
}

// AnalysisStatus defines the type for the "analysis_status" enum field.
type AnalysisStatus string

// AnalysisStatusPending is the default value of the AnalysisStatus enum.
const DefaultAnalysisStatus = AnalysisStatusPending

// AnalysisStatus values.
const (
	AnalysisStatusPending   AnalysisStatus = "pending"
	AnalysisStatusCompleted AnalysisStatus = "completed"
	AnalysisStatusFailed    AnalysisStatus = "failed"
)

func (as AnalysisStatus) String() string {
	return string(as)
}

// AnalysisStatusValidator is a validator for the "analysis_status" field enum values. It is called by the builders before save.
func AnalysisStatusValidator(as AnalysisStatus) error {
	switch as {
	case AnalysisStatusPending, AnalysisStatusCompleted, AnalysisStatusFailed:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for analysis_status field: %q", as)
	}
}

// IdeaStatus defines the type for the "idea_status" enum field.
type IdeaStatus string

// IdeaStatusPending is the default value of the IdeaStatus enum.
const DefaultIdeaStatus = IdeaStatusPending

// IdeaStatus values.
const (
	IdeaStatusPending   IdeaStatus = "pending"
	IdeaStatusCompleted IdeaStatus = "completed"
	IdeaStatusFailed    IdeaStatus = "failed"
)

func (is IdeaStatus) String() string {
	return string(is)
}

// IdeaStatusValidator is a validator for the "idea_status" field enum values. It is called by the builders before save.
func IdeaStatusValidator(is IdeaStatus) error {
	switch is {
	case IdeaStatusPending, IdeaStatusCompleted, IdeaStatusFailed:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for idea_status field: %q", is)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByOverviewStatus orders the results by the overview_status field.
func ByOverviewStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverviewStatus, opts...).ToFunc()
}

// ByAnalysisStatus orders the results by the analysis_status field.
func ByAnalysisStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisStatus, opts...).ToFunc()
}

// ByIdeaStatus orders the results by the idea_status field.
func ByIdeaStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdeaStatus, opts...).ToFunc()
}
