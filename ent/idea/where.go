// Code generated by ent, DO NOT EDIT.

package idea

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/channeling-app/reportpipe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldID, id))
}

// ChannelID applies equality check predicate on the "channel_id" field. It's identical to ChannelIDEQ.
func ChannelID(v int) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldChannelID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldTitle, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldContent, v))
}

// HashTag applies equality check predicate on the "hash_tag" field. It's identical to HashTagEQ.
func HashTag(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldHashTag, v))
}

// IsBookMarked applies equality check predicate on the "is_book_marked" field. It's identical to IsBookMarkedEQ.
func IsBookMarked(v int) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldIsBookMarked, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldCreatedAt, v))
}

// ChannelIDEQ applies the EQ predicate on the "channel_id" field.
func ChannelIDEQ(v int) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldChannelID, v))
}

// ChannelIDNEQ applies the NEQ predicate on the "channel_id" field.
func ChannelIDNEQ(v int) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldChannelID, v))
}

// ChannelIDIn applies the In predicate on the "channel_id" field.
func ChannelIDIn(vs ...int) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldChannelID, vs...))
}

// ChannelIDNotIn applies the NotIn predicate on the "channel_id" field.
func ChannelIDNotIn(vs ...int) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldChannelID, vs...))
}

// ChannelIDGT applies the GT predicate on the "channel_id" field.
func ChannelIDGT(v int) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldChannelID, v))
}

// ChannelIDGTE applies the GTE predicate on the "channel_id" field.
func ChannelIDGTE(v int) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldChannelID, v))
}

// ChannelIDLT applies the LT predicate on the "channel_id" field.
func ChannelIDLT(v int) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldChannelID, v))
}

// ChannelIDLTE applies the LTE predicate on the "channel_id" field.
func ChannelIDLTE(v int) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldChannelID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Idea {
	return predicate.Idea(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Idea {
	return predicate.Idea(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Idea {
	return predicate.Idea(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Idea {
	return predicate.Idea(sql.FieldContainsFold(FieldTitle, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Idea {
	return predicate.Idea(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Idea {
	return predicate.Idea(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Idea {
	return predicate.Idea(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Idea {
	return predicate.Idea(sql.FieldContainsFold(FieldContent, v))
}

// HashTagEQ applies the EQ predicate on the "hash_tag" field.
func HashTagEQ(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldHashTag, v))
}

// HashTagNEQ applies the NEQ predicate on the "hash_tag" field.
func HashTagNEQ(v string) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldHashTag, v))
}

// HashTagIn applies the In predicate on the "hash_tag" field.
func HashTagIn(vs ...string) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldHashTag, vs...))
}

// HashTagNotIn applies the NotIn predicate on the "hash_tag" field.
func HashTagNotIn(vs ...string) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldHashTag, vs...))
}

// HashTagGT applies the GT predicate on the "hash_tag" field.
func HashTagGT(v string) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldHashTag, v))
}

// HashTagGTE applies the GTE predicate on the "hash_tag" field.
func HashTagGTE(v string) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldHashTag, v))
}

// HashTagLT applies the LT predicate on the "hash_tag" field.
func HashTagLT(v string) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldHashTag, v))
}

// HashTagLTE applies the LTE predicate on the "hash_tag" field.
func HashTagLTE(v string) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldHashTag, v))
}

// HashTagContains applies the Contains predicate on the "hash_tag" field.
func HashTagContains(v string) predicate.Idea {
	return predicate.Idea(sql.FieldContains(FieldHashTag, v))
}

// HashTagHasPrefix applies the HasPrefix predicate on the "hash_tag" field.
func HashTagHasPrefix(v string) predicate.Idea {
	return predicate.Idea(sql.FieldHasPrefix(FieldHashTag, v))
}

// HashTagHasSuffix applies the HasSuffix predicate on the "hash_tag" field.
func HashTagHasSuffix(v string) predicate.Idea {
	return predicate.Idea(sql.FieldHasSuffix(FieldHashTag, v))
}

// HashTagEqualFold applies the EqualFold predicate on the "hash_tag" field.
func HashTagEqualFold(v string) predicate.Idea {
	return predicate.Idea(sql.FieldEqualFold(FieldHashTag, v))
}

// HashTagContainsFold applies the ContainsFold predicate on the "hash_tag" field.
func HashTagContainsFold(v string) predicate.Idea {
	return predicate.Idea(sql.FieldContainsFold(FieldHashTag, v))
}

// IsBookMarkedEQ applies the EQ predicate on the "is_book_marked" field.
func IsBookMarkedEQ(v int) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldIsBookMarked, v))
}

// IsBookMarkedNEQ applies the NEQ predicate on the "is_book_marked" field.
func IsBookMarkedNEQ(v int) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldIsBookMarked, v))
}

// IsBookMarkedIn applies the In predicate on the "is_book_marked" field.
func IsBookMarkedIn(vs ...int) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldIsBookMarked, vs...))
}

// IsBookMarkedNotIn applies the NotIn predicate on the "is_book_marked" field.
func IsBookMarkedNotIn(vs ...int) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldIsBookMarked, vs...))
}

// IsBookMarkedGT applies the GT predicate on the "is_book_marked" field.
func IsBookMarkedGT(v int) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldIsBookMarked, v))
}

// IsBookMarkedGTE applies the GTE predicate on the "is_book_marked" field.
func IsBookMarkedGTE(v int) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldIsBookMarked, v))
}

// IsBookMarkedLT applies the LT predicate on the "is_book_marked" field.
func IsBookMarkedLT(v int) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldIsBookMarked, v))
}

// IsBookMarkedLTE applies the LTE predicate on the "is_book_marked" field.
func IsBookMarkedLTE(v int) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldIsBookMarked, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Idea {
	return predicate.Idea(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Idea) predicate.Idea {
	return predicate.Idea(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Idea) predicate.Idea {
	return predicate.Idea(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Idea) predicate.Idea {
	return predicate.Idea(sql.NotPredicates(p))
}
