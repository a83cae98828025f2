// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/channeling-app/reportpipe/ent/channel"
	"github.com/channeling-app/reportpipe/ent/comment"
	"github.com/channeling-app/reportpipe/ent/idea"
	"github.com/channeling-app/reportpipe/ent/report"
	"github.com/channeling-app/reportpipe/ent/schema"
	"github.com/channeling-app/reportpipe/ent/trendkeyword"
	"github.com/channeling-app/reportpipe/ent/video"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	channelFields := schema.Channel{}.Fields()
	_ = channelFields
	// channelDescCreatedAt is the schema descriptor for created_at field.
	channelDescCreatedAt := channelFields[8].Descriptor()
	// channel.DefaultCreatedAt holds the default value on creation for the created_at field.
	channel.DefaultCreatedAt = channelDescCreatedAt.Default.(func() time.Time)
	commentFields := schema.Comment{}.Fields()
	_ = commentFields
	// commentDescCreatedAt is the schema descriptor for created_at field.
	commentDescCreatedAt := commentFields[3].Descriptor()
	// comment.DefaultCreatedAt holds the default value on creation for the created_at field.
	comment.DefaultCreatedAt = commentDescCreatedAt.Default.(func() time.Time)
	ideaFields := schema.Idea{}.Fields()
	_ = ideaFields
	// ideaDescIsBookMarked is the schema descriptor for is_book_marked field.
	ideaDescIsBookMarked := ideaFields[4].Descriptor()
	// idea.DefaultIsBookMarked holds the default value on creation for the is_book_marked field.
	idea.DefaultIsBookMarked = ideaDescIsBookMarked.Default.(int)
	// ideaDescCreatedAt is the schema descriptor for created_at field.
	ideaDescCreatedAt := ideaFields[5].Descriptor()
	// idea.DefaultCreatedAt holds the default value on creation for the created_at field.
	idea.DefaultCreatedAt = ideaDescCreatedAt.Default.(func() time.Time)
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[21].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescUpdatedAt is the schema descriptor for updated_at field.
	reportDescUpdatedAt := reportFields[22].Descriptor()
	// report.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	report.DefaultUpdatedAt = reportDescUpdatedAt.Default.(func() time.Time)
	// report.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	report.UpdateDefaultUpdatedAt = reportDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	trendkeywordFields := schema.TrendKeyword{}.Fields()
	_ = trendkeywordFields
	// trendkeywordDescKeyword is the schema descriptor for keyword field.
	trendkeywordDescKeyword := trendkeywordFields[2].Descriptor()
	// trendkeyword.KeywordValidator is a validator for the "keyword" field. It is called by the builders before save.
	trendkeyword.KeywordValidator = trendkeywordDescKeyword.Validators[0].(func(string) error)
	// trendkeywordDescCreatedAt is the schema descriptor for created_at field.
	trendkeywordDescCreatedAt := trendkeywordFields[4].Descriptor()
	// trendkeyword.DefaultCreatedAt holds the default value on creation for the created_at field.
	trendkeyword.DefaultCreatedAt = trendkeywordDescCreatedAt.Default.(func() time.Time)
	videoFields := schema.Video{}.Fields()
	_ = videoFields
	// videoDescCreatedAt is the schema descriptor for created_at field.
	videoDescCreatedAt := videoFields[11].Descriptor()
	// video.DefaultCreatedAt holds the default value on creation for the created_at field.
	video.DefaultCreatedAt = videoDescCreatedAt.Default.(func() time.Time)
}
