package models

import "time"

// CommentType is the emotion bucket assigned to a comment.
type CommentType string

// Comment emotion buckets.
const (
	CommentPositive CommentType = "POSITIVE"
	CommentNegative CommentType = "NEGATIVE"
	CommentNeutral  CommentType = "NEUTRAL"
	CommentAdvice   CommentType = "ADVICE_OPINION"
)

// CommentTypes lists all buckets in a stable order.
var CommentTypes = []CommentType{CommentPositive, CommentNegative, CommentNeutral, CommentAdvice}

// CommentTypeFromEmotionCode maps the classifier's integer emotion code to a
// bucket. Unknown codes fall back to NEUTRAL.
func CommentTypeFromEmotionCode(code int) CommentType {
	switch code {
	case 1:
		return CommentPositive
	case 2:
		return CommentNegative
	case 3:
		return CommentNeutral
	case 4:
		return CommentAdvice
	}
	return CommentNeutral
}

// Comment is the transient analytical comment shape. Raw fetched comments are
// classified and extrapolated in memory; only per-emotion summary rows are
// persisted.
type Comment struct {
	ReportID  int
	Type      CommentType
	Content   string
	LikeCount int
	CreatedAt time.Time
}
