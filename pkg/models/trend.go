package models

// TrendKeywordType distinguishes realtime trends from channel-tailored ones.
type TrendKeywordType string

// Trend keyword types.
const (
	TrendRealTime TrendKeywordType = "REAL_TIME"
	TrendChannel  TrendKeywordType = "CHANNEL"
)

// Trend is one item of the raw realtime trend feed.
type Trend struct {
	Keyword            string   `json:"keyword"`
	SearchVolume       int      `json:"search_volume"`
	IncreasePercentage int      `json:"increase_percentage"`
	Categories         []string `json:"categories"`
	TrendBreakdown     []string `json:"trend_breakdown"`
}

// ScoredKeyword is one LLM-curated trend keyword with a 0–100 relevance score.
type ScoredKeyword struct {
	Keyword string `json:"keyword"`
	Score   int    `json:"score"`
}

// IdeaDraft is one parsed entry of the idea-generation LLM response.
type IdeaDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
