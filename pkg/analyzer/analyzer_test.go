package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/channeling-app/reportpipe/pkg/models"
)

func TestSEOScoreHappyPath(t *testing.T) {
	// 10000 views, 300 likes, 120s average view duration of a 300s video,
	// 50 shares, 50 subscribers gained:
	// 50*min(120/300,1) + 15*min(30/30,1) + 15*min(5/5,1) + 20*min(5/5,1) = 70.0
	a := models.VideoAnalytics{
		Views:               10000,
		AverageViewDuration: 120,
		Likes:               300,
		Shares:              50,
		SubscribersGained:   50,
	}
	assert.Equal(t, 70.0, SEOScore(a, 300))
}

func TestSEOScoreClipsSubScores(t *testing.T) {
	// Every rate far above target still caps at the full weight sum.
	a := models.VideoAnalytics{
		Views:               100,
		AverageViewDuration: 500,
		Likes:               1000,
		Shares:              1000,
		SubscribersGained:   1000,
	}
	assert.Equal(t, 100.0, SEOScore(a, 300))
}

func TestSEOScoreZeroViews(t *testing.T) {
	assert.Equal(t, 0.0, SEOScore(models.VideoAnalytics{}, 300))
}

func TestRevisitRate(t *testing.T) {
	a := models.VideoAnalytics{
		Views:             10000,
		Likes:             300,
		Shares:            50,
		SubscribersGained: 50,
	}
	assert.Equal(t, 4.00, RevisitRate(a))
}

func TestRevisitRateZeroViews(t *testing.T) {
	assert.Equal(t, 0.0, RevisitRate(models.VideoAnalytics{Likes: 10}))
}

func TestConsistencyNoSiblings(t *testing.T) {
	assert.Equal(t, 100.0, Consistency([]float32{1, 0}, nil))
}

func TestConsistencyIdenticalSiblings(t *testing.T) {
	target := []float32{0.6, 0.8}
	score := Consistency(target, [][]float32{{0.6, 0.8}, {0.6, 0.8}})
	assert.InDelta(t, 100.0, score, 1e-9)
}

func TestConsistencyOrthogonalSibling(t *testing.T) {
	score := Consistency([]float32{1, 0}, [][]float32{{0, 1}})
	assert.InDelta(t, 0.0, score, 1e-9)
}

func TestAverageDeltasNoPeers(t *testing.T) {
	deltas := AverageDeltasFor(VideoCounts{Views: 100, Likes: 10, Comments: 5}, nil, nil)
	assert.Equal(t, AverageDeltas{}, deltas)
}

func TestAverageDeltasTruncatesTwoDecimals(t *testing.T) {
	// Target 100 vs peer mean 300: (100-300)/300*100 = -66.666... -> -66.66
	target := VideoCounts{Views: 100}
	peers := []VideoCounts{{Views: 300}}

	deltas := AverageDeltasFor(target, peers, nil)
	assert.Equal(t, -66.66, deltas.ViewChannel)
	assert.Equal(t, 0.0, deltas.ViewTopic)
}

func TestAverageDeltasPerMetric(t *testing.T) {
	target := VideoCounts{Views: 200, Likes: 20, Comments: 10}
	peers := []VideoCounts{
		{Views: 100, Likes: 10, Comments: 20},
		{Views: 100, Likes: 10, Comments: 20},
	}

	deltas := AverageDeltasFor(target, peers, peers)
	assert.Equal(t, 100.0, deltas.ViewChannel)
	assert.Equal(t, 100.0, deltas.ViewTopic)
	assert.Equal(t, 100.0, deltas.LikeChannel)
	assert.Equal(t, -50.0, deltas.CommentChannel)
}
