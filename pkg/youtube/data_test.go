package youtube

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

func newTestDataClient(baseURL string) *DataClient {
	return NewDataClient(config.YouTubeConfig{
		APIKey:      "test-key",
		RegionCode:  "KR",
		DataBaseURL: baseURL,
	})
}

func TestVideoDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		fmt.Fprint(w, `{
			"items": [{
				"snippet": {
					"title": "테스트 영상",
					"description": "설명",
					"tags": ["a", "b"],
					"publishedAt": "2026-08-01T00:00:00Z",
					"channelId": "UC123",
					"channelTitle": "채널"
				},
				"contentDetails": {"duration": "PT5M"},
				"statistics": {"viewCount": "10000", "likeCount": "300", "commentCount": "12"}
			}]
		}`)
	}))
	defer srv.Close()

	details, err := newTestDataClient(srv.URL).VideoDetails(context.Background(), "vid1")
	require.NoError(t, err)
	assert.Equal(t, "테스트 영상", details.Title)
	assert.Equal(t, "PT5M", details.Duration)
	assert.Equal(t, int64(10000), details.ViewCount)
	assert.Equal(t, int64(300), details.LikeCount)
	assert.Equal(t, "UC123", details.ChannelID)
}

func TestVideoDetailsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": []}`)
	}))
	defer srv.Close()

	_, err := newTestDataClient(srv.URL).VideoDetails(context.Background(), "missing")
	assert.Error(t, err)
}

func TestCommentsPaginatesAndFlattensReplies(t *testing.T) {
	page := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/commentThreads", r.URL.Path)
		page++
		if r.URL.Query().Get("pageToken") == "" {
			fmt.Fprint(w, `{
				"nextPageToken": "page2",
				"items": [{
					"snippet": {"topLevelComment": {"snippet": {"textDisplay": "c1", "likeCount": 3, "publishedAt": "2026-08-01T00:00:00Z"}}},
					"replies": {"comments": [{"snippet": {"textDisplay": "r1", "likeCount": 1, "publishedAt": "2026-08-01T01:00:00Z"}}]}
				}]
			}`)
			return
		}
		fmt.Fprint(w, `{
			"items": [{
				"snippet": {"topLevelComment": {"snippet": {"textDisplay": "c2", "likeCount": 0, "publishedAt": "2026-08-02T00:00:00Z"}}}
			}]
		}`)
	}))
	defer srv.Close()

	comments, err := newTestDataClient(srv.URL).Comments(context.Background(), "vid1", 1000)
	require.NoError(t, err)
	assert.Equal(t, 2, page)

	texts := make([]string, len(comments))
	for i, c := range comments {
		texts[i] = c.Text
	}
	assert.Equal(t, []string{"c1", "r1", "c2"}, texts)
	assert.Equal(t, 3, comments[0].LikeCount)
}

func TestCommentsStopsAtLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"nextPageToken": "more",
			"items": [
				{"snippet": {"topLevelComment": {"snippet": {"textDisplay": "a"}}}},
				{"snippet": {"topLevelComment": {"snippet": {"textDisplay": "b"}}}},
				{"snippet": {"topLevelComment": {"snippet": {"textDisplay": "c"}}}}
			]
		}`)
	}))
	defer srv.Close()

	comments, err := newTestDataClient(srv.URL).Comments(context.Background(), "vid1", 2)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestCommentsDisabledSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error": {"errors": [{"reason": "commentsDisabled"}]}}`)
	}))
	defer srv.Close()

	_, err := newTestDataClient(srv.URL).Comments(context.Background(), "vid1", 100)
	require.Error(t, err)
	assert.True(t, IsCommentsDisabled(err))
}

func TestPopularByCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "mostPopular", r.URL.Query().Get("chart"))
		assert.Equal(t, "22", r.URL.Query().Get("videoCategoryId"))
		assert.Equal(t, "KR", r.URL.Query().Get("regionCode"))
		fmt.Fprint(w, `{
			"items": [
				{"snippet": {"title": "p1", "channelTitle": "ch1"}},
				{"snippet": {"title": "p2", "channelTitle": "ch2"}}
			]
		}`)
	}))
	defer srv.Close()

	videos, err := newTestDataClient(srv.URL).PopularByCategory(context.Background(), "22", 3)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "p1", videos[0].Title)
}
