// Code generated by ent, DO NOT EDIT.

package trendkeyword

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/channeling-app/reportpipe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldLTE(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldEQ(FieldReportID, v))
}

// Keyword applies equality check predicate on the "keyword" field. It's identical to KeywordEQ.
func Keyword(v string) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldEQ(FieldKeyword, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldEQ(FieldScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldEQ(FieldCreatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldLTE(FieldReportID, v))
}

// KeywordTypeEQ applies the EQ predicate on the "keyword_type" field.
func KeywordTypeEQ(v KeywordType) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldEQ(FieldKeywordType, v))
}

// KeywordTypeNEQ applies the NEQ predicate on the "keyword_type" field.
func KeywordTypeNEQ(v KeywordType) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldNEQ(FieldKeywordType, v))
}

// KeywordTypeIn applies the In predicate on the "keyword_type" field.
func KeywordTypeIn(vs ...KeywordType) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldIn(FieldKeywordType, vs...))
}

// KeywordTypeNotIn applies the NotIn predicate on the "keyword_type" field.
func KeywordTypeNotIn(vs ...KeywordType) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldNotIn(FieldKeywordType, vs...))
}

// KeywordEQ applies the EQ predicate on the "keyword" field.
func KeywordEQ(v string) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldEQ(FieldKeyword, v))
}

// KeywordNEQ applies the NEQ predicate on the "keyword" field.
func KeywordNEQ(v string) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldNEQ(FieldKeyword, v))
}

// KeywordIn applies the In predicate on the "keyword" field.
func KeywordIn(vs ...string) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldIn(FieldKeyword, vs...))
}

// KeywordNotIn applies the NotIn predicate on the "keyword" field.
func KeywordNotIn(vs ...string) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldNotIn(FieldKeyword, vs...))
}

// KeywordGT applies the GT predicate on the "keyword" field.
func KeywordGT(v string) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldGT(FieldKeyword, v))
}

// KeywordGTE applies the GTE predicate on the "keyword" field.
func KeywordGTE(v string) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldGTE(FieldKeyword, v))
}

// KeywordLT applies the LT predicate on the "keyword" field.
func KeywordLT(v string) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldLT(FieldKeyword, v))
}

// KeywordLTE applies the LTE predicate on the "keyword" field.
func KeywordLTE(v string) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldLTE(FieldKeyword, v))
}

// KeywordContains applies the Contains predicate on the "keyword" field.
func KeywordContains(v string) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldContains(FieldKeyword, v))
}

// KeywordHasPrefix applies the HasPrefix predicate on the "keyword" field.
func KeywordHasPrefix(v string) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldHasPrefix(FieldKeyword, v))
}

// KeywordHasSuffix applies the HasSuffix predicate on the "keyword" field.
func KeywordHasSuffix(v string) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldHasSuffix(FieldKeyword, v))
}

// KeywordEqualFold applies the EqualFold predicate on the "keyword" field.
func KeywordEqualFold(v string) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldEqualFold(FieldKeyword, v))
}

// KeywordContainsFold applies the ContainsFold predicate on the "keyword" field.
func KeywordContainsFold(v string) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldContainsFold(FieldKeyword, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldLTE(FieldScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrendKeyword) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrendKeyword) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrendKeyword) predicate.TrendKeyword {
	return predicate.TrendKeyword(sql.NotPredicates(p))
}
