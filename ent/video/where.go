// Code generated by ent, DO NOT EDIT.

package video

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/channeling-app/reportpipe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldID, id))
}

// ChannelID applies equality check predicate on the "channel_id" field. It's identical to ChannelIDEQ.
func ChannelID(v int) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldChannelID, v))
}

// YoutubeVideoID applies equality check predicate on the "youtube_video_id" field. It's identical to YoutubeVideoIDEQ.
func YoutubeVideoID(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldYoutubeVideoID, v))
}

// VideoCategory applies equality check predicate on the "video_category" field. It's identical to VideoCategoryEQ.
func VideoCategory(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldVideoCategory, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldDescription, v))
}

// View applies equality check predicate on the "view" field. It's identical to ViewEQ.
func View(v int64) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldView, v))
}

// LikeCount applies equality check predicate on the "like_count" field. It's identical to LikeCountEQ.
func LikeCount(v int64) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldLikeCount, v))
}

// CommentCount applies equality check predicate on the "comment_count" field. It's identical to CommentCountEQ.
func CommentCount(v int64) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldCommentCount, v))
}

// Link applies equality check predicate on the "link" field. It's identical to LinkEQ.
func Link(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldLink, v))
}

// UploadDate applies equality check predicate on the "upload_date" field. It's identical to UploadDateEQ.
func UploadDate(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldUploadDate, v))
}

// Thumbnail applies equality check predicate on the "thumbnail" field. It's identical to ThumbnailEQ.
func Thumbnail(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldThumbnail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldCreatedAt, v))
}

// ChannelIDEQ applies the EQ predicate on the "channel_id" field.
func ChannelIDEQ(v int) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldChannelID, v))
}

// ChannelIDNEQ applies the NEQ predicate on the "channel_id" field.
func ChannelIDNEQ(v int) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldChannelID, v))
}

// ChannelIDIn applies the In predicate on the "channel_id" field.
func ChannelIDIn(vs ...int) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldChannelID, vs...))
}

// ChannelIDNotIn applies the NotIn predicate on the "channel_id" field.
func ChannelIDNotIn(vs ...int) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldChannelID, vs...))
}

// ChannelIDGT applies the GT predicate on the "channel_id" field.
func ChannelIDGT(v int) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldChannelID, v))
}

// ChannelIDGTE applies the GTE predicate on the "channel_id" field.
func ChannelIDGTE(v int) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldChannelID, v))
}

// ChannelIDLT applies the LT predicate on the "channel_id" field.
func ChannelIDLT(v int) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldChannelID, v))
}

// ChannelIDLTE applies the LTE predicate on the "channel_id" field.
func ChannelIDLTE(v int) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldChannelID, v))
}

// YoutubeVideoIDEQ applies the EQ predicate on the "youtube_video_id" field.
func YoutubeVideoIDEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldYoutubeVideoID, v))
}

// YoutubeVideoIDNEQ applies the NEQ predicate on the "youtube_video_id" field.
func YoutubeVideoIDNEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldYoutubeVideoID, v))
}

// YoutubeVideoIDIn applies the In predicate on the "youtube_video_id" field.
func YoutubeVideoIDIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldYoutubeVideoID, vs...))
}

// YoutubeVideoIDNotIn applies the NotIn predicate on the "youtube_video_id" field.
func YoutubeVideoIDNotIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldYoutubeVideoID, vs...))
}

// YoutubeVideoIDGT applies the GT predicate on the "youtube_video_id" field.
func YoutubeVideoIDGT(v string) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldYoutubeVideoID, v))
}

// YoutubeVideoIDGTE applies the GTE predicate on the "youtube_video_id" field.
func YoutubeVideoIDGTE(v string) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldYoutubeVideoID, v))
}

// YoutubeVideoIDLT applies the LT predicate on the "youtube_video_id" field.
func YoutubeVideoIDLT(v string) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldYoutubeVideoID, v))
}

// YoutubeVideoIDLTE applies the LTE predicate on the "youtube_video_id" field.
func YoutubeVideoIDLTE(v string) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldYoutubeVideoID, v))
}

// YoutubeVideoIDContains applies the Contains predicate on the "youtube_video_id" field.
func YoutubeVideoIDContains(v string) predicate.Video {
	return predicate.Video(sql.FieldContains(FieldYoutubeVideoID, v))
}

// YoutubeVideoIDHasPrefix applies the HasPrefix predicate on the "youtube_video_id" field.
func YoutubeVideoIDHasPrefix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasPrefix(FieldYoutubeVideoID, v))
}

// YoutubeVideoIDHasSuffix applies the HasSuffix predicate on the "youtube_video_id" field.
func YoutubeVideoIDHasSuffix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasSuffix(FieldYoutubeVideoID, v))
}

// YoutubeVideoIDEqualFold applies the EqualFold predicate on the "youtube_video_id" field.
func YoutubeVideoIDEqualFold(v string) predicate.Video {
	return predicate.Video(sql.FieldEqualFold(FieldYoutubeVideoID, v))
}

// YoutubeVideoIDContainsFold applies the ContainsFold predicate on the "youtube_video_id" field.
func YoutubeVideoIDContainsFold(v string) predicate.Video {
	return predicate.Video(sql.FieldContainsFold(FieldYoutubeVideoID, v))
}

// VideoCategoryEQ applies the EQ predicate on the "video_category" field.
func VideoCategoryEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldVideoCategory, v))
}

// VideoCategoryNEQ applies the NEQ predicate on the "video_category" field.
func VideoCategoryNEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldVideoCategory, v))
}

// VideoCategoryIn applies the In predicate on the "video_category" field.
func VideoCategoryIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldVideoCategory, vs...))
}

// VideoCategoryNotIn applies the NotIn predicate on the "video_category" field.
func VideoCategoryNotIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldVideoCategory, vs...))
}

// VideoCategoryGT applies the GT predicate on the "video_category" field.
func VideoCategoryGT(v string) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldVideoCategory, v))
}

// VideoCategoryGTE applies the GTE predicate on the "video_category" field.
func VideoCategoryGTE(v string) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldVideoCategory, v))
}

// VideoCategoryLT applies the LT predicate on the "video_category" field.
func VideoCategoryLT(v string) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldVideoCategory, v))
}

// VideoCategoryLTE applies the LTE predicate on the "video_category" field.
func VideoCategoryLTE(v string) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldVideoCategory, v))
}

// VideoCategoryContains applies the Contains predicate on the "video_category" field.
func VideoCategoryContains(v string) predicate.Video {
	return predicate.Video(sql.FieldContains(FieldVideoCategory, v))
}

// VideoCategoryHasPrefix applies the HasPrefix predicate on the "video_category" field.
func VideoCategoryHasPrefix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasPrefix(FieldVideoCategory, v))
}

// VideoCategoryHasSuffix applies the HasSuffix predicate on the "video_category" field.
func VideoCategoryHasSuffix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasSuffix(FieldVideoCategory, v))
}

// VideoCategoryEqualFold applies the EqualFold predicate on the "video_category" field.
func VideoCategoryEqualFold(v string) predicate.Video {
	return predicate.Video(sql.FieldEqualFold(FieldVideoCategory, v))
}

// VideoCategoryContainsFold applies the ContainsFold predicate on the "video_category" field.
func VideoCategoryContainsFold(v string) predicate.Video {
	return predicate.Video(sql.FieldContainsFold(FieldVideoCategory, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Video {
	return predicate.Video(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Video {
	return predicate.Video(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Video {
	return predicate.Video(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Video {
	return predicate.Video(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Video {
	return predicate.Video(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Video {
	return predicate.Video(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Video {
	return predicate.Video(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Video {
	return predicate.Video(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Video {
	return predicate.Video(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Video {
	return predicate.Video(sql.FieldContainsFold(FieldDescription, v))
}

// ViewEQ applies the EQ predicate on the "view" field.
func ViewEQ(v int64) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldView, v))
}

// ViewNEQ applies the NEQ predicate on the "view" field.
func ViewNEQ(v int64) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldView, v))
}

// ViewIn applies the In predicate on the "view" field.
func ViewIn(vs ...int64) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldView, vs...))
}

// ViewNotIn applies the NotIn predicate on the "view" field.
func ViewNotIn(vs ...int64) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldView, vs...))
}

// ViewGT applies the GT predicate on the "view" field.
func ViewGT(v int64) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldView, v))
}

// ViewGTE applies the GTE predicate on the "view" field.
func ViewGTE(v int64) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldView, v))
}

// ViewLT applies the LT predicate on the "view" field.
func ViewLT(v int64) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldView, v))
}

// ViewLTE applies the LTE predicate on the "view" field.
func ViewLTE(v int64) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldView, v))
}

// ViewIsNil applies the IsNil predicate on the "view" field.
func ViewIsNil() predicate.Video {
	return predicate.Video(sql.FieldIsNull(FieldView))
}

// ViewNotNil applies the NotNil predicate on the "view" field.
func ViewNotNil() predicate.Video {
	return predicate.Video(sql.FieldNotNull(FieldView))
}

// LikeCountEQ applies the EQ predicate on the "like_count" field.
func LikeCountEQ(v int64) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldLikeCount, v))
}

// LikeCountNEQ applies the NEQ predicate on the "like_count" field.
func LikeCountNEQ(v int64) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldLikeCount, v))
}

// LikeCountIn applies the In predicate on the "like_count" field.
func LikeCountIn(vs ...int64) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldLikeCount, vs...))
}

// LikeCountNotIn applies the NotIn predicate on the "like_count" field.
func LikeCountNotIn(vs ...int64) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldLikeCount, vs...))
}

// LikeCountGT applies the GT predicate on the "like_count" field.
func LikeCountGT(v int64) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldLikeCount, v))
}

// LikeCountGTE applies the GTE predicate on the "like_count" field.
func LikeCountGTE(v int64) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldLikeCount, v))
}

// LikeCountLT applies the LT predicate on the "like_count" field.
func LikeCountLT(v int64) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldLikeCount, v))
}

// LikeCountLTE applies the LTE predicate on the "like_count" field.
func LikeCountLTE(v int64) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldLikeCount, v))
}

// LikeCountIsNil applies the IsNil predicate on the "like_count" field.
func LikeCountIsNil() predicate.Video {
	return predicate.Video(sql.FieldIsNull(FieldLikeCount))
}

// LikeCountNotNil applies the NotNil predicate on the "like_count" field.
func LikeCountNotNil() predicate.Video {
	return predicate.Video(sql.FieldNotNull(FieldLikeCount))
}

// CommentCountEQ applies the EQ predicate on the "comment_count" field.
func CommentCountEQ(v int64) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldCommentCount, v))
}

// CommentCountNEQ applies the NEQ predicate on the "comment_count" field.
func CommentCountNEQ(v int64) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldCommentCount, v))
}

// CommentCountIn applies the In predicate on the "comment_count" field.
func CommentCountIn(vs ...int64) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldCommentCount, vs...))
}

// CommentCountNotIn applies the NotIn predicate on the "comment_count" field.
func CommentCountNotIn(vs ...int64) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldCommentCount, vs...))
}

// CommentCountGT applies the GT predicate on the "comment_count" field.
func CommentCountGT(v int64) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldCommentCount, v))
}

// CommentCountGTE applies the GTE predicate on the "comment_count" field.
func CommentCountGTE(v int64) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldCommentCount, v))
}

// CommentCountLT applies the LT predicate on the "comment_count" field.
func CommentCountLT(v int64) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldCommentCount, v))
}

// CommentCountLTE applies the LTE predicate on the "comment_count" field.
func CommentCountLTE(v int64) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldCommentCount, v))
}

// CommentCountIsNil applies the IsNil predicate on the "comment_count" field.
func CommentCountIsNil() predicate.Video {
	return predicate.Video(sql.FieldIsNull(FieldCommentCount))
}

// CommentCountNotNil applies the NotNil predicate on the "comment_count" field.
func CommentCountNotNil() predicate.Video {
	return predicate.Video(sql.FieldNotNull(FieldCommentCount))
}

// LinkEQ applies the EQ predicate on the "link" field.
func LinkEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldLink, v))
}

// LinkNEQ applies the NEQ predicate on the "link" field.
func LinkNEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldLink, v))
}

// LinkIn applies the In predicate on the "link" field.
func LinkIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldLink, vs...))
}

// LinkNotIn applies the NotIn predicate on the "link" field.
func LinkNotIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldLink, vs...))
}

// LinkGT applies the GT predicate on the "link" field.
func LinkGT(v string) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldLink, v))
}

// LinkGTE applies the GTE predicate on the "link" field.
func LinkGTE(v string) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldLink, v))
}

// LinkLT applies the LT predicate on the "link" field.
func LinkLT(v string) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldLink, v))
}

// LinkLTE applies the LTE predicate on the "link" field.
func LinkLTE(v string) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldLink, v))
}

// LinkContains applies the Contains predicate on the "link" field.
func LinkContains(v string) predicate.Video {
	return predicate.Video(sql.FieldContains(FieldLink, v))
}

// LinkHasPrefix applies the HasPrefix predicate on the "link" field.
func LinkHasPrefix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasPrefix(FieldLink, v))
}

// LinkHasSuffix applies the HasSuffix predicate on the "link" field.
func LinkHasSuffix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasSuffix(FieldLink, v))
}

// LinkIsNil applies the IsNil predicate on the "link" field.
func LinkIsNil() predicate.Video {
	return predicate.Video(sql.FieldIsNull(FieldLink))
}

// LinkNotNil applies the NotNil predicate on the "link" field.
func LinkNotNil() predicate.Video {
	return predicate.Video(sql.FieldNotNull(FieldLink))
}

// LinkEqualFold applies the EqualFold predicate on the "link" field.
func LinkEqualFold(v string) predicate.Video {
	return predicate.Video(sql.FieldEqualFold(FieldLink, v))
}

// LinkContainsFold applies the ContainsFold predicate on the "link" field.
func LinkContainsFold(v string) predicate.Video {
	return predicate.Video(sql.FieldContainsFold(FieldLink, v))
}

// UploadDateEQ applies the EQ predicate on the "upload_date" field.
func UploadDateEQ(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldUploadDate, v))
}

// UploadDateNEQ applies the NEQ predicate on the "upload_date" field.
func UploadDateNEQ(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldUploadDate, v))
}

// UploadDateIn applies the In predicate on the "upload_date" field.
func UploadDateIn(vs ...time.Time) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldUploadDate, vs...))
}

// UploadDateNotIn applies the NotIn predicate on the "upload_date" field.
func UploadDateNotIn(vs ...time.Time) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldUploadDate, vs...))
}

// UploadDateGT applies the GT predicate on the "upload_date" field.
func UploadDateGT(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldUploadDate, v))
}

// UploadDateGTE applies the GTE predicate on the "upload_date" field.
func UploadDateGTE(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldUploadDate, v))
}

// UploadDateLT applies the LT predicate on the "upload_date" field.
func UploadDateLT(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldUploadDate, v))
}

// UploadDateLTE applies the LTE predicate on the "upload_date" field.
func UploadDateLTE(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldUploadDate, v))
}

// UploadDateIsNil applies the IsNil predicate on the "upload_date" field.
func UploadDateIsNil() predicate.Video {
	return predicate.Video(sql.FieldIsNull(FieldUploadDate))
}

// UploadDateNotNil applies the NotNil predicate on the "upload_date" field.
func UploadDateNotNil() predicate.Video {
	return predicate.Video(sql.FieldNotNull(FieldUploadDate))
}

// ThumbnailEQ applies the EQ predicate on the "thumbnail" field.
func ThumbnailEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldThumbnail, v))
}

// ThumbnailNEQ applies the NEQ predicate on the "thumbnail" field.
func ThumbnailNEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldThumbnail, v))
}

// ThumbnailIn applies the In predicate on the "thumbnail" field.
func ThumbnailIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldThumbnail, vs...))
}

// ThumbnailNotIn applies the NotIn predicate on the "thumbnail" field.
func ThumbnailNotIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldThumbnail, vs...))
}

// ThumbnailGT applies the GT predicate on the "thumbnail" field.
func ThumbnailGT(v string) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldThumbnail, v))
}

// ThumbnailGTE applies the GTE predicate on the "thumbnail" field.
func ThumbnailGTE(v string) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldThumbnail, v))
}

// ThumbnailLT applies the LT predicate on the "thumbnail" field.
func ThumbnailLT(v string) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldThumbnail, v))
}

// ThumbnailLTE applies the LTE predicate on the "thumbnail" field.
func ThumbnailLTE(v string) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldThumbnail, v))
}

// ThumbnailContains applies the Contains predicate on the "thumbnail" field.
func ThumbnailContains(v string) predicate.Video {
	return predicate.Video(sql.FieldContains(FieldThumbnail, v))
}

// ThumbnailHasPrefix applies the HasPrefix predicate on the "thumbnail" field.
func ThumbnailHasPrefix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasPrefix(FieldThumbnail, v))
}

// ThumbnailHasSuffix applies the HasSuffix predicate on the "thumbnail" field.
func ThumbnailHasSuffix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasSuffix(FieldThumbnail, v))
}

// ThumbnailIsNil applies the IsNil predicate on the "thumbnail" field.
func ThumbnailIsNil() predicate.Video {
	return predicate.Video(sql.FieldIsNull(FieldThumbnail))
}

// ThumbnailNotNil applies the NotNil predicate on the "thumbnail" field.
func ThumbnailNotNil() predicate.Video {
	return predicate.Video(sql.FieldNotNull(FieldThumbnail))
}

// ThumbnailEqualFold applies the EqualFold predicate on the "thumbnail" field.
func ThumbnailEqualFold(v string) predicate.Video {
	return predicate.Video(sql.FieldEqualFold(FieldThumbnail, v))
}

// ThumbnailContainsFold applies the ContainsFold predicate on the "thumbnail" field.
func ThumbnailContainsFold(v string) predicate.Video {
	return predicate.Video(sql.FieldContainsFold(FieldThumbnail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Video) predicate.Video {
	return predicate.Video(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Video) predicate.Video {
	return predicate.Video(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Video) predicate.Video {
	return predicate.Video(sql.NotPredicates(p))
}
