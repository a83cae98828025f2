package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/channeling-app/reportpipe/pkg/config"
)

func newTestAnalyticsClient(baseURL string) *AnalyticsClient {
	return NewAnalyticsClient(config.YouTubeConfig{AnalyticsBaseURL: baseURL})
}

func TestVideoOverview(t *testing.T) {
	published := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		assert.Equal(t, "channel==MINE", r.URL.Query().Get("ids"))
		assert.Equal(t, "video==vid1", r.URL.Query().Get("filters"))
		assert.Equal(t, "2026-08-01", r.URL.Query().Get("startDate"))
		fmt.Fprint(w, `{"rows": [[10000, 120.5, 300, 50, 50]]}`)
	}))
	defer srv.Close()

	got, err := newTestAnalyticsClient(srv.URL).VideoOverview(context.Background(), "token-1", "vid1", published)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), got.Views)
	assert.Equal(t, 120.5, got.AverageViewDuration)
	assert.Equal(t, int64(300), got.Likes)
	assert.Equal(t, int64(50), got.Shares)
	assert.Equal(t, int64(50), got.SubscribersGained)
}

func TestVideoOverviewEmptyRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"rows": []}`)
	}))
	defer srv.Close()

	got, err := newTestAnalyticsClient(srv.URL).VideoOverview(context.Background(), "t", "vid1", time.Now())
	require.NoError(t, err)
	assert.Zero(t, got.Views)
}

func TestRetentionCurve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "elapsedVideoTimeRatio", r.URL.Query().Get("dimensions"))
		fmt.Fprint(w, `{"rows": [[0.0, 1.0, 1.1], [0.01, 0.95, 1.0], [0.02, 0.80, 0.9]]}`)
	}))
	defer srv.Close()

	rows, err := newTestAnalyticsClient(srv.URL).RetentionCurve(context.Background(), "t", "vid1", time.Now())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 0.01, rows[1].ElapsedRatio)
	assert.Equal(t, 0.95, rows[1].AudienceWatchRatio)
	assert.Equal(t, 1.0, rows[1].RelativePerformance)
}

func TestRetentionCurveAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": "invalid credentials"}`)
	}))
	defer srv.Close()

	_, err := newTestAnalyticsClient(srv.URL).RetentionCurve(context.Background(), "bad", "vid1", time.Now())
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.False(t, IsTransient(err))
}
