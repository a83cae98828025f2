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
	"github.com/channeling-app/reportpipe/pkg/models"
)

func TestTranscriptSegments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transcripts/vid1", r.URL.Path)
		fmt.Fprint(w, `[
			{"text": "안녕하세요", "start_time": 0, "end_time": 2.5},
			{"text": "오늘은", "start_time": 2.5, "end_time": 4}
		]`)
	}))
	defer srv.Close()

	client := NewTranscriptClient(config.YouTubeConfig{TranscriptURL: srv.URL})
	segments, err := client.Segments(context.Background(), "vid1")
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "안녕하세요", segments[0].Text)
	assert.Equal(t, 2.5, segments[0].EndTime)
}

func TestTranscriptSegmentsMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewTranscriptClient(config.YouTubeConfig{TranscriptURL: srv.URL})
	segments, err := client.Segments(context.Background(), "vid1")
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestFullText(t *testing.T) {
	segments := []models.TranscriptSegment{
		{Text: "안녕하세요 "},
		{Text: ""},
		{Text: "  "},
		{Text: "오늘은"},
	}
	assert.Equal(t, "안녕하세요 오늘은", FullText(segments))
	assert.Equal(t, "", FullText(nil))
}
