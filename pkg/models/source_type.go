package models

// SourceType tags a content chunk with the analytical artifact it belongs to.
// Retrieval is always scoped by source type.
type SourceType string

// Content chunk source types.
const (
	SourceVideoSummary          SourceType = "VIDEO_SUMMARY"
	SourceCommentReaction       SourceType = "COMMENT_REACTION"
	SourceViewerEscapeAnalysis  SourceType = "VIEWER_ESCAPE_ANALYSIS"
	SourceAlgorithmOptimization SourceType = "ALGORITHM_OPTIMIZATION"
	SourcePersonalizedKeywords  SourceType = "PERSONALIZED_KEYWORDS"
	SourceIdeaRecommendation    SourceType = "IDEA_RECOMMENDATION"
)

// Chunk types stored in chunk metadata under the "chunk_type" key.
const (
	ChunkTypeTime    = "time"
	ChunkTypeMeaning = "mean"
)
