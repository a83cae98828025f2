// Code generated by ent, DO NOT EDIT.

package task

import (
	"entgo.io/ent/dialect/sql"
	"github.com/channeling-app/reportpipe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldReportID, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldReportID, v))
}

// OverviewStatusEQ applies the EQ predicate on the "overview_status" field.
func OverviewStatusEQ(v OverviewStatus) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldOverviewStatus, v))
}

// OverviewStatusNEQ applies the NEQ predicate on the "overview_status" field.
func OverviewStatusNEQ(v OverviewStatus) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldOverviewStatus, v))
}

// OverviewStatusIn applies the In predicate on the "overview_status" field.
func OverviewStatusIn(vs ...OverviewStatus) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldOverviewStatus, vs...))
}

// OverviewStatusNotIn applies the NotIn predicate on the "overview_status" field.
func OverviewStatusNotIn(vs ...OverviewStatus) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldOverviewStatus, vs...))
}

// AnalysisStatusEQ applies the EQ predicate on the "analysis_status" field.
func AnalysisStatusEQ(v AnalysisStatus) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAnalysisStatus, v))
}

// AnalysisStatusNEQ applies the NEQ predicate on the "analysis_status" field.
func AnalysisStatusNEQ(v AnalysisStatus) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAnalysisStatus, v))
}

// AnalysisStatusIn applies the In predicate on the "analysis_status" field.
func AnalysisStatusIn(vs ...AnalysisStatus) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAnalysisStatus, vs...))
}

// AnalysisStatusNotIn applies the NotIn predicate on the "analysis_status" field.
func AnalysisStatusNotIn(vs ...AnalysisStatus) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAnalysisStatus, vs...))
}

// IdeaStatusEQ applies the EQ predicate on the "idea_status" field.
func IdeaStatusEQ(v IdeaStatus) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIdeaStatus, v))
}

// IdeaStatusNEQ applies the NEQ predicate on the "idea_status" field.
func IdeaStatusNEQ(v IdeaStatus) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIdeaStatus, v))
}

// IdeaStatusIn applies the In predicate on the "idea_status" field.
func IdeaStatusIn(vs ...IdeaStatus) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldIdeaStatus, vs...))
}

// IdeaStatusNotIn applies the NotIn predicate on the "idea_status" field.
func IdeaStatusNotIn(vs ...IdeaStatus) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldIdeaStatus, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
