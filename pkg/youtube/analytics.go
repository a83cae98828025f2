package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/channeling-app/reportpipe/pkg/config"
	"github.com/channeling-app/reportpipe/pkg/models"
)

// AnalyticsClient talks to the YouTube Analytics v2 API on behalf of the
// channel owner. Every call needs the owner's Google OAuth access token.
type AnalyticsClient struct {
	http    *http.Client
	baseURL string
}

// NewAnalyticsClient creates an Analytics v2 client from configuration.
func NewAnalyticsClient(cfg config.YouTubeConfig) *AnalyticsClient {
	return &AnalyticsClient{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: cfg.AnalyticsBaseURL,
	}
}

// VideoOverview fetches the aggregate metrics row for one video between
// publish date and today.
func (c *AnalyticsClient) VideoOverview(ctx context.Context, accessToken, videoID string, publishedAt time.Time) (*models.VideoAnalytics, error) {
	params := url.Values{
		"ids":       {"channel==MINE"},
		"startDate": {publishedAt.Format("2006-01-02")},
		"endDate":   {time.Now().Format("2006-01-02")},
		"metrics":   {"views,averageViewDuration,likes,shares,subscribersGained"},
		"filters":   {"video==" + videoID},
	}

	rows, err := c.query(ctx, accessToken, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &models.VideoAnalytics{}, nil
	}

	row := rows[0]
	if len(row) < 5 {
		return nil, fmt.Errorf("analytics overview row has %d columns, want 5", len(row))
	}
	return &models.VideoAnalytics{
		Views:               int64(row[0]),
		AverageViewDuration: row[1],
		Likes:               int64(row[2]),
		Shares:              int64(row[3]),
		SubscribersGained:   int64(row[4]),
	}, nil
}

// RetentionCurve fetches the audience retention curve for one video. The
// API returns up to 100 rows keyed by elapsedVideoTimeRatio.
func (c *AnalyticsClient) RetentionCurve(ctx context.Context, accessToken, videoID string, publishedAt time.Time) ([]models.RetentionRow, error) {
	params := url.Values{
		"ids":        {"channel==MINE"},
		"startDate":  {publishedAt.Format("2006-01-02")},
		"endDate":    {time.Now().Format("2006-01-02")},
		"metrics":    {"audienceWatchRatio,relativeRetentionPerformance"},
		"dimensions": {"elapsedVideoTimeRatio"},
		"filters":    {"video==" + videoID + ";audienceType==ORGANIC"},
	}

	rows, err := c.query(ctx, accessToken, params)
	if err != nil {
		return nil, err
	}

	curve := make([]models.RetentionRow, 0, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		curve = append(curve, models.RetentionRow{
			ElapsedRatio:        row[0],
			AudienceWatchRatio:  row[1],
			RelativePerformance: row[2],
		})
	}
	return curve, nil
}

// query runs one Analytics reports query and returns the numeric rows.
// Dimension values arrive as JSON numbers for elapsedVideoTimeRatio, so a
// plain float matrix covers both queries used here.
func (c *AnalyticsClient) query(ctx context.Context, accessToken string, params url.Values) ([][]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reports?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube analytics request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var result struct {
		Rows [][]float64 `json:"rows"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result.Rows, nil
}
