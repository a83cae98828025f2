// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChannelsColumns holds the columns for the "channels" table.
	ChannelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "youtube_channel_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "concept", Type: field.TypeString, Nullable: true},
		{Name: "target", Type: field.TypeString, Nullable: true},
		{Name: "channel_hash_tag", Type: field.TypeString, Nullable: true},
		{Name: "subscribe", Type: field.TypeInt64, Nullable: true},
		{Name: "view", Type: field.TypeInt64, Nullable: true},
		{Name: "video_count", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChannelsTable holds the schema information for the "channels" table.
	ChannelsTable = &schema.Table{
		Name:       "channels",
		Columns:    ChannelsColumns,
		PrimaryKey: []*schema.Column{ChannelsColumns[0]},
	}
	// CommentsColumns holds the columns for the "comments" table.
	CommentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "report_id", Type: field.TypeInt},
		{Name: "comment_type", Type: field.TypeEnum, Enums: []string{"POSITIVE", "NEGATIVE", "NEUTRAL", "ADVICE_OPINION"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CommentsTable holds the schema information for the "comments" table.
	CommentsTable = &schema.Table{
		Name:       "comments",
		Columns:    CommentsColumns,
		PrimaryKey: []*schema.Column{CommentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "comment_report_id",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[1]},
			},
		},
	}
	// IdeasColumns holds the columns for the "ideas" table.
	IdeasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel_id", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "hash_tag", Type: field.TypeString},
		{Name: "is_book_marked", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// IdeasTable holds the schema information for the "ideas" table.
	IdeasTable = &schema.Table{
		Name:       "ideas",
		Columns:    IdeasColumns,
		PrimaryKey: []*schema.Column{IdeasColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idea_channel_id",
				Unique:  false,
				Columns: []*schema.Column{IdeasColumns[1]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "video_id", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "view", Type: field.TypeInt64, Nullable: true},
		{Name: "view_channel_avg", Type: field.TypeFloat64, Nullable: true},
		{Name: "view_topic_avg", Type: field.TypeFloat64, Nullable: true},
		{Name: "like_count", Type: field.TypeInt64, Nullable: true},
		{Name: "like_channel_avg", Type: field.TypeFloat64, Nullable: true},
		{Name: "like_topic_avg", Type: field.TypeFloat64, Nullable: true},
		{Name: "comment_count", Type: field.TypeInt64, Nullable: true},
		{Name: "comment_channel_avg", Type: field.TypeFloat64, Nullable: true},
		{Name: "comment_topic_avg", Type: field.TypeFloat64, Nullable: true},
		{Name: "concept", Type: field.TypeFloat64, Nullable: true},
		{Name: "seo", Type: field.TypeFloat64, Nullable: true},
		{Name: "revisit", Type: field.TypeFloat64, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "positive_comment", Type: field.TypeInt, Nullable: true},
		{Name: "negative_comment", Type: field.TypeInt, Nullable: true},
		{Name: "neutral_comment", Type: field.TypeInt, Nullable: true},
		{Name: "advice_comment", Type: field.TypeInt, Nullable: true},
		{Name: "leave_analyze", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "optimization", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "report_video_id",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[1]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "report_id", Type: field.TypeInt},
		{Name: "overview_status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "failed"}, Default: "pending"},
		{Name: "analysis_status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "failed"}, Default: "pending"},
		{Name: "idea_status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "failed"}, Default: "pending"},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_report_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
		},
	}
	// TrendKeywordsColumns holds the columns for the "trend_keywords" table.
	TrendKeywordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "report_id", Type: field.TypeInt},
		{Name: "keyword_type", Type: field.TypeEnum, Enums: []string{"REAL_TIME", "CHANNEL"}},
		{Name: "keyword", Type: field.TypeString, Size: 255},
		{Name: "score", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TrendKeywordsTable holds the schema information for the "trend_keywords" table.
	TrendKeywordsTable = &schema.Table{
		Name:       "trend_keywords",
		Columns:    TrendKeywordsColumns,
		PrimaryKey: []*schema.Column{TrendKeywordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trendkeyword_report_id",
				Unique:  false,
				Columns: []*schema.Column{TrendKeywordsColumns[1]},
			},
		},
	}
	// VideosColumns holds the columns for the "videos" table.
	VideosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel_id", Type: field.TypeInt},
		{Name: "youtube_video_id", Type: field.TypeString},
		{Name: "video_category", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "view", Type: field.TypeInt64, Nullable: true},
		{Name: "like_count", Type: field.TypeInt64, Nullable: true},
		{Name: "comment_count", Type: field.TypeInt64, Nullable: true},
		{Name: "link", Type: field.TypeString, Nullable: true},
		{Name: "upload_date", Type: field.TypeTime, Nullable: true},
		{Name: "thumbnail", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VideosTable holds the schema information for the "videos" table.
	VideosTable = &schema.Table{
		Name:       "videos",
		Columns:    VideosColumns,
		PrimaryKey: []*schema.Column{VideosColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "video_channel_id",
				Unique:  false,
				Columns: []*schema.Column{VideosColumns[1]},
			},
			{
				Name:    "video_youtube_video_id",
				Unique:  false,
				Columns: []*schema.Column{VideosColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChannelsTable,
		CommentsTable,
		IdeasTable,
		ReportsTable,
		TasksTable,
		TrendKeywordsTable,
		VideosTable,
	}
)

func init() {
}
