// Package analyzer computes the report metrics: concept consistency, SEO
// score, revisit rate, and channel/topic average deltas.
package analyzer

import (
	"math"

	"github.com/channeling-app/reportpipe/pkg/models"
)

// Consistency scores how well the target video fits its channel: 100 times
// the mean cosine similarity between the target's embedding and each
// sibling's. A video with no siblings scores a perfect 100.
func Consistency(target []float32, siblings [][]float32) float64 {
	if len(siblings) == 0 {
		return 100
	}

	var sum float64
	for _, sib := range siblings {
		sum += cosineSimilarity(target, sib)
	}
	return 100 * sum / float64(len(siblings))
}

func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SEOScore computes the weighted search-optimization score from per-video
// analytics and the video's total duration in seconds. Sub-scores are
// clipped to [0, 1]; the result is rounded to one decimal. Zero views
// scores zero.
func SEOScore(a models.VideoAnalytics, totalDurationSec float64) float64 {
	if a.Views == 0 || totalDurationSec <= 0 {
		return 0
	}

	per1000 := func(n int64) float64 {
		return float64(n) / float64(a.Views) * 1000
	}

	duration := clip01(a.AverageViewDuration / totalDurationSec)
	likesRate := clip01(per1000(a.Likes) / 30)
	sharesRate := clip01(per1000(a.Shares) / 5)
	subsRate := clip01(per1000(a.SubscribersGained) / 5)

	score := 50*duration + 15*likesRate + 15*sharesRate + 20*subsRate
	return math.Round(score*10) / 10
}

// RevisitRate computes the engagement-per-view percentage, rounded to two
// decimals. Zero views scores zero.
func RevisitRate(a models.VideoAnalytics) float64 {
	if a.Views == 0 {
		return 0
	}
	rate := 100 * float64(a.Likes+a.Shares+a.SubscribersGained) / float64(a.Views)
	return math.Round(rate*100) / 100
}

// VideoCounts is the engagement triple used for average deltas.
type VideoCounts struct {
	Views    int64
	Likes    int64
	Comments int64
}

// AverageDeltas holds the six percentage deltas of the target video
// against its channel peers and its category peers.
type AverageDeltas struct {
	ViewChannel    float64
	ViewTopic      float64
	LikeChannel    float64
	LikeTopic      float64
	CommentChannel float64
	CommentTopic   float64
}

// AverageDeltasFor computes each delta as the percentage difference
// between the target and the peer mean, truncated to two decimals. A
// missing peer set yields zeros for its side.
func AverageDeltasFor(target VideoCounts, channelPeers, topicPeers []VideoCounts) AverageDeltas {
	return AverageDeltas{
		ViewChannel:    deltaPercent(target.Views, channelPeers, func(v VideoCounts) int64 { return v.Views }),
		ViewTopic:      deltaPercent(target.Views, topicPeers, func(v VideoCounts) int64 { return v.Views }),
		LikeChannel:    deltaPercent(target.Likes, channelPeers, func(v VideoCounts) int64 { return v.Likes }),
		LikeTopic:      deltaPercent(target.Likes, topicPeers, func(v VideoCounts) int64 { return v.Likes }),
		CommentChannel: deltaPercent(target.Comments, channelPeers, func(v VideoCounts) int64 { return v.Comments }),
		CommentTopic:   deltaPercent(target.Comments, topicPeers, func(v VideoCounts) int64 { return v.Comments }),
	}
}

func deltaPercent(target int64, peers []VideoCounts, pick func(VideoCounts) int64) float64 {
	if len(peers) == 0 {
		return 0
	}

	var sum int64
	for _, p := range peers {
		sum += pick(p)
	}
	mean := float64(sum) / float64(len(peers))
	if mean == 0 {
		return 0
	}

	delta := (float64(target) - mean) / mean * 100
	return math.Trunc(delta*100) / 100
}

func clip01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
