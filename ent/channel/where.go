// Code generated by ent, DO NOT EDIT.

package channel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/channeling-app/reportpipe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldID, id))
}

// YoutubeChannelID applies equality check predicate on the "youtube_channel_id" field. It's identical to YoutubeChannelIDEQ.
func YoutubeChannelID(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldYoutubeChannelID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldName, v))
}

// Concept applies equality check predicate on the "concept" field. It's identical to ConceptEQ.
func Concept(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldConcept, v))
}

// Target applies equality check predicate on the "target" field. It's identical to TargetEQ.
func Target(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldTarget, v))
}

// ChannelHashTag applies equality check predicate on the "channel_hash_tag" field. It's identical to ChannelHashTagEQ.
func ChannelHashTag(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldChannelHashTag, v))
}

// Subscribe applies equality check predicate on the "subscribe" field. It's identical to SubscribeEQ.
func Subscribe(v int64) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldSubscribe, v))
}

// View applies equality check predicate on the "view" field. It's identical to ViewEQ.
func View(v int64) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldView, v))
}

// VideoCount applies equality check predicate on the "video_count" field. It's identical to VideoCountEQ.
func VideoCount(v int) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldVideoCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldCreatedAt, v))
}

// YoutubeChannelIDEQ applies the EQ predicate on the "youtube_channel_id" field.
func YoutubeChannelIDEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldYoutubeChannelID, v))
}

// YoutubeChannelIDNEQ applies the NEQ predicate on the "youtube_channel_id" field.
func YoutubeChannelIDNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldYoutubeChannelID, v))
}

// YoutubeChannelIDIn applies the In predicate on the "youtube_channel_id" field.
func YoutubeChannelIDIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldYoutubeChannelID, vs...))
}

// YoutubeChannelIDNotIn applies the NotIn predicate on the "youtube_channel_id" field.
func YoutubeChannelIDNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldYoutubeChannelID, vs...))
}

// YoutubeChannelIDGT applies the GT predicate on the "youtube_channel_id" field.
func YoutubeChannelIDGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldYoutubeChannelID, v))
}

// YoutubeChannelIDGTE applies the GTE predicate on the "youtube_channel_id" field.
func YoutubeChannelIDGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldYoutubeChannelID, v))
}

// YoutubeChannelIDLT applies the LT predicate on the "youtube_channel_id" field.
func YoutubeChannelIDLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldYoutubeChannelID, v))
}

// YoutubeChannelIDLTE applies the LTE predicate on the "youtube_channel_id" field.
func YoutubeChannelIDLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldYoutubeChannelID, v))
}

// YoutubeChannelIDContains applies the Contains predicate on the "youtube_channel_id" field.
func YoutubeChannelIDContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldYoutubeChannelID, v))
}

// YoutubeChannelIDHasPrefix applies the HasPrefix predicate on the "youtube_channel_id" field.
func YoutubeChannelIDHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldYoutubeChannelID, v))
}

// YoutubeChannelIDHasSuffix applies the HasSuffix predicate on the "youtube_channel_id" field.
func YoutubeChannelIDHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldYoutubeChannelID, v))
}

// YoutubeChannelIDEqualFold applies the EqualFold predicate on the "youtube_channel_id" field.
func YoutubeChannelIDEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldYoutubeChannelID, v))
}

// YoutubeChannelIDContainsFold applies the ContainsFold predicate on the "youtube_channel_id" field.
func YoutubeChannelIDContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldYoutubeChannelID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldName, v))
}

// ConceptEQ applies the EQ predicate on the "concept" field.
func ConceptEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldConcept, v))
}

// ConceptNEQ applies the NEQ predicate on the "concept" field.
func ConceptNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldConcept, v))
}

// ConceptIn applies the In predicate on the "concept" field.
func ConceptIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldConcept, vs...))
}

// ConceptNotIn applies the NotIn predicate on the "concept" field.
func ConceptNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldConcept, vs...))
}

// ConceptGT applies the GT predicate on the "concept" field.
func ConceptGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldConcept, v))
}

// ConceptGTE applies the GTE predicate on the "concept" field.
func ConceptGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldConcept, v))
}

// ConceptLT applies the LT predicate on the "concept" field.
func ConceptLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldConcept, v))
}

// ConceptLTE applies the LTE predicate on the "concept" field.
func ConceptLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldConcept, v))
}

// ConceptContains applies the Contains predicate on the "concept" field.
func ConceptContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldConcept, v))
}

// ConceptHasPrefix applies the HasPrefix predicate on the "concept" field.
func ConceptHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldConcept, v))
}

// ConceptHasSuffix applies the HasSuffix predicate on the "concept" field.
func ConceptHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldConcept, v))
}

// ConceptIsNil applies the IsNil predicate on the "concept" field.
func ConceptIsNil() predicate.Channel {
	return predicate.Channel(sql.FieldIsNull(FieldConcept))
}

// ConceptNotNil applies the NotNil predicate on the "concept" field.
func ConceptNotNil() predicate.Channel {
	return predicate.Channel(sql.FieldNotNull(FieldConcept))
}

// ConceptEqualFold applies the EqualFold predicate on the "concept" field.
func ConceptEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldConcept, v))
}

// ConceptContainsFold applies the ContainsFold predicate on the "concept" field.
func ConceptContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldConcept, v))
}

// TargetEQ applies the EQ predicate on the "target" field.
func TargetEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldTarget, v))
}

// TargetNEQ applies the NEQ predicate on the "target" field.
func TargetNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldTarget, v))
}

// TargetIn applies the In predicate on the "target" field.
func TargetIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldTarget, vs...))
}

// TargetNotIn applies the NotIn predicate on the "target" field.
func TargetNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldTarget, vs...))
}

// TargetGT applies the GT predicate on the "target" field.
func TargetGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldTarget, v))
}

// TargetGTE applies the GTE predicate on the "target" field.
func TargetGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldTarget, v))
}

// TargetLT applies the LT predicate on the "target" field.
func TargetLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldTarget, v))
}

// TargetLTE applies the LTE predicate on the "target" field.
func TargetLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldTarget, v))
}

// TargetContains applies the Contains predicate on the "target" field.
func TargetContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldTarget, v))
}

// TargetHasPrefix applies the HasPrefix predicate on the "target" field.
func TargetHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldTarget, v))
}

// TargetHasSuffix applies the HasSuffix predicate on the "target" field.
func TargetHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldTarget, v))
}

// TargetIsNil applies the IsNil predicate on the "target" field.
func TargetIsNil() predicate.Channel {
	return predicate.Channel(sql.FieldIsNull(FieldTarget))
}

// TargetNotNil applies the NotNil predicate on the "target" field.
func TargetNotNil() predicate.Channel {
	return predicate.Channel(sql.FieldNotNull(FieldTarget))
}

// TargetEqualFold applies the EqualFold predicate on the "target" field.
func TargetEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldTarget, v))
}

// TargetContainsFold applies the ContainsFold predicate on the "target" field.
func TargetContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldTarget, v))
}

// ChannelHashTagEQ applies the EQ predicate on the "channel_hash_tag" field.
func ChannelHashTagEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldChannelHashTag, v))
}

// ChannelHashTagNEQ applies the NEQ predicate on the "channel_hash_tag" field.
func ChannelHashTagNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldChannelHashTag, v))
}

// ChannelHashTagIn applies the In predicate on the "channel_hash_tag" field.
func ChannelHashTagIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldChannelHashTag, vs...))
}

// ChannelHashTagNotIn applies the NotIn predicate on the "channel_hash_tag" field.
func ChannelHashTagNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldChannelHashTag, vs...))
}

// ChannelHashTagGT applies the GT predicate on the "channel_hash_tag" field.
func ChannelHashTagGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldChannelHashTag, v))
}

// ChannelHashTagGTE applies the GTE predicate on the "channel_hash_tag" field.
func ChannelHashTagGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldChannelHashTag, v))
}

// ChannelHashTagLT applies the LT predicate on the "channel_hash_tag" field.
func ChannelHashTagLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldChannelHashTag, v))
}

// ChannelHashTagLTE applies the LTE predicate on the "channel_hash_tag" field.
func ChannelHashTagLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldChannelHashTag, v))
}

// ChannelHashTagContains applies the Contains predicate on the "channel_hash_tag" field.
func ChannelHashTagContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldChannelHashTag, v))
}

// ChannelHashTagHasPrefix applies the HasPrefix predicate on the "channel_hash_tag" field.
func ChannelHashTagHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldChannelHashTag, v))
}

// ChannelHashTagHasSuffix applies the HasSuffix predicate on the "channel_hash_tag" field.
func ChannelHashTagHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldChannelHashTag, v))
}

// ChannelHashTagIsNil applies the IsNil predicate on the "channel_hash_tag" field.
func ChannelHashTagIsNil() predicate.Channel {
	return predicate.Channel(sql.FieldIsNull(FieldChannelHashTag))
}

// ChannelHashTagNotNil applies the NotNil predicate on the "channel_hash_tag" field.
func ChannelHashTagNotNil() predicate.Channel {
	return predicate.Channel(sql.FieldNotNull(FieldChannelHashTag))
}

// ChannelHashTagEqualFold applies the EqualFold predicate on the "channel_hash_tag" field.
func ChannelHashTagEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldChannelHashTag, v))
}

// ChannelHashTagContainsFold applies the ContainsFold predicate on the "channel_hash_tag" field.
func ChannelHashTagContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldChannelHashTag, v))
}

// SubscribeEQ applies the EQ predicate on the "subscribe" field.
func SubscribeEQ(v int64) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldSubscribe, v))
}

// SubscribeNEQ applies the NEQ predicate on the "subscribe" field.
func SubscribeNEQ(v int64) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldSubscribe, v))
}

// SubscribeIn applies the In predicate on the "subscribe" field.
func SubscribeIn(vs ...int64) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldSubscribe, vs...))
}

// SubscribeNotIn applies the NotIn predicate on the "subscribe" field.
func SubscribeNotIn(vs ...int64) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldSubscribe, vs...))
}

// SubscribeGT applies the GT predicate on the "subscribe" field.
func SubscribeGT(v int64) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldSubscribe, v))
}

// SubscribeGTE applies the GTE predicate on the "subscribe" field.
func SubscribeGTE(v int64) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldSubscribe, v))
}

// SubscribeLT applies the LT predicate on the "subscribe" field.
func SubscribeLT(v int64) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldSubscribe, v))
}

// SubscribeLTE applies the LTE predicate on the "subscribe" field.
func SubscribeLTE(v int64) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldSubscribe, v))
}

// SubscribeIsNil applies the IsNil predicate on the "subscribe" field.
func SubscribeIsNil() predicate.Channel {
	return predicate.Channel(sql.FieldIsNull(FieldSubscribe))
}

// SubscribeNotNil applies the NotNil predicate on the "subscribe" field.
func SubscribeNotNil() predicate.Channel {
	return predicate.Channel(sql.FieldNotNull(FieldSubscribe))
}

// ViewEQ applies the EQ predicate on the "view" field.
func ViewEQ(v int64) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldView, v))
}

// ViewNEQ applies the NEQ predicate on the "view" field.
func ViewNEQ(v int64) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldView, v))
}

// ViewIn applies the In predicate on the "view" field.
func ViewIn(vs ...int64) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldView, vs...))
}

// ViewNotIn applies the NotIn predicate on the "view" field.
func ViewNotIn(vs ...int64) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldView, vs...))
}

// ViewGT applies the GT predicate on the "view" field.
func ViewGT(v int64) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldView, v))
}

// ViewGTE applies the GTE predicate on the "view" field.
func ViewGTE(v int64) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldView, v))
}

// ViewLT applies the LT predicate on the "view" field.
func ViewLT(v int64) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldView, v))
}

// ViewLTE applies the LTE predicate on the "view" field.
func ViewLTE(v int64) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldView, v))
}

// ViewIsNil applies the IsNil predicate on the "view" field.
func ViewIsNil() predicate.Channel {
	return predicate.Channel(sql.FieldIsNull(FieldView))
}

// ViewNotNil applies the NotNil predicate on the "view" field.
func ViewNotNil() predicate.Channel {
	return predicate.Channel(sql.FieldNotNull(FieldView))
}

// VideoCountEQ applies the EQ predicate on the "video_count" field.
func VideoCountEQ(v int) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldVideoCount, v))
}

// VideoCountNEQ applies the NEQ predicate on the "video_count" field.
func VideoCountNEQ(v int) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldVideoCount, v))
}

// VideoCountIn applies the In predicate on the "video_count" field.
func VideoCountIn(vs ...int) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldVideoCount, vs...))
}

// VideoCountNotIn applies the NotIn predicate on the "video_count" field.
func VideoCountNotIn(vs ...int) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldVideoCount, vs...))
}

// VideoCountGT applies the GT predicate on the "video_count" field.
func VideoCountGT(v int) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldVideoCount, v))
}

// VideoCountGTE applies the GTE predicate on the "video_count" field.
func VideoCountGTE(v int) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldVideoCount, v))
}

// VideoCountLT applies the LT predicate on the "video_count" field.
func VideoCountLT(v int) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldVideoCount, v))
}

// VideoCountLTE applies the LTE predicate on the "video_count" field.
func VideoCountLTE(v int) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldVideoCount, v))
}

// VideoCountIsNil applies the IsNil predicate on the "video_count" field.
func VideoCountIsNil() predicate.Channel {
	return predicate.Channel(sql.FieldIsNull(FieldVideoCount))
}

// VideoCountNotNil applies the NotNil predicate on the "video_count" field.
func VideoCountNotNil() predicate.Channel {
	return predicate.Channel(sql.FieldNotNull(FieldVideoCount))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Channel) predicate.Channel {
	return predicate.Channel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Channel) predicate.Channel {
	return predicate.Channel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Channel) predicate.Channel {
	return predicate.Channel(sql.NotPredicates(p))
}
