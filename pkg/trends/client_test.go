package trends

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/channeling-app/reportpipe/pkg/config"
)

func newTestClient(baseURL string, limit int) *Client {
	return NewClient(config.TrendsConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Geo:     "KR",
		Limit:   limit,
	})
}

func TestRealtime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "google_trends_trending_now", r.URL.Query().Get("engine"))
		assert.Equal(t, "KR", r.URL.Query().Get("geo"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		fmt.Fprint(w, `{
			"trending_searches": [
				{
					"query": "키워드1",
					"search_volume": 50000,
					"increase_percentage": 900,
					"categories": [{"name": "Entertainment"}, {"name": "Sports"}],
					"trend_breakdown": ["키워드1", "관련어"]
				},
				{"query": "키워드2", "search_volume": 2000}
			]
		}`)
	}))
	defer srv.Close()

	trends, err := newTestClient(srv.URL, 5).Realtime(context.Background())
	require.NoError(t, err)
	require.Len(t, trends, 2)

	assert.Equal(t, "키워드1", trends[0].Keyword)
	assert.Equal(t, 50000, trends[0].SearchVolume)
	assert.Equal(t, 900, trends[0].IncreasePercentage)
	assert.Equal(t, []string{"Entertainment", "Sports"}, trends[0].Categories)
	assert.Equal(t, "키워드2", trends[1].Keyword)
}

func TestRealtimeCapsAtLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"trending_searches": [
				{"query": "a"}, {"query": "b"}, {"query": "c"}, {"query": "d"}
			]
		}`)
	}))
	defer srv.Close()

	trends, err := newTestClient(srv.URL, 2).Realtime(context.Background())
	require.NoError(t, err)
	assert.Len(t, trends, 2)
}

func TestRealtimeErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": "rate limited"}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, 5).Realtime(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}
