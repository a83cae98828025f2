package models

// TranscriptSegment is one caption entry of a structured transcript.
type TranscriptSegment struct {
	Text      string  `json:"text"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

// RetentionRow is one sample of the per-video audience retention curve.
// ElapsedRatio is the elapsedVideoTimeRatio dimension (0.00–1.00, ≤100 rows).
type RetentionRow struct {
	ElapsedRatio        float64
	AudienceWatchRatio  float64
	RelativePerformance float64
}

// VideoDetails is the subset of the YouTube Data v3 video resource consumed
// by the pipeline.
type VideoDetails struct {
	Title        string
	Description  string
	Tags         []string
	PublishedAt  string
	Duration     string // ISO-8601, e.g. "PT5M12S"
	ViewCount    int64
	LikeCount    int64
	CommentCount int64
	ChannelID    string
	ChannelTitle string
}

// ChannelStats is the subset of the YouTube Data v3 channel statistics
// consumed by the pipeline.
type ChannelStats struct {
	SubscriberCount int64
	ViewCount       int64
	VideoCount      int64
}

// PopularVideo is one entry of a category-popular chart lookup.
type PopularVideo struct {
	Title        string
	Description  string
	ChannelTitle string
	Tags         []string
}

// VideoAnalytics is the single-row aggregate returned by the Analytics v2
// overview query.
type VideoAnalytics struct {
	Views               int64
	AverageViewDuration float64
	Likes               int64
	Shares              int64
	SubscribersGained   int64
}
