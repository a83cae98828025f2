package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/channeling-app/reportpipe/pkg/config"
	"github.com/channeling-app/reportpipe/pkg/models"
)

// NoTranscriptPlaceholder is the viewer-facing summary stored when a video
// has no usable captions.
const NoTranscriptPlaceholder = "자막을 불러올 수 없는 영상입니다."

// TranscriptClient fetches structured captions from the transcript sidecar.
type TranscriptClient struct {
	http    *http.Client
	baseURL string
}

// NewTranscriptClient creates a transcript client from configuration.
func NewTranscriptClient(cfg config.YouTubeConfig) *TranscriptClient {
	return &TranscriptClient{
		http:    &http.Client{Timeout: 60 * time.Second},
		baseURL: cfg.TranscriptURL,
	}
}

// Segments fetches the caption segments for a video. A video without
// captions yields an empty slice and no error; callers substitute
// NoTranscriptPlaceholder downstream.
func (c *TranscriptClient) Segments(ctx context.Context, videoID string) ([]models.TranscriptSegment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transcripts/"+videoID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcript request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var segments []models.TranscriptSegment
	if err := json.Unmarshal(body, &segments); err != nil {
		return nil, fmt.Errorf("failed to decode transcript: %w", err)
	}
	return segments, nil
}

// FullText joins segment texts into one transcript string.
func FullText(segments []models.TranscriptSegment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if s := strings.TrimSpace(seg.Text); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
