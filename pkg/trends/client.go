// Package trends adapts the realtime search trend feed.
package trends

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

// Client fetches the realtime trending searches for one region.
type Client struct {
	http    *http.Client
	apiKey  string
	baseURL string
	geo     string
	limit   int
}

// NewClient creates a trend feed client from configuration.
func NewClient(cfg config.TrendsConfig) *Client {
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		geo:     cfg.Geo,
		limit:   cfg.Limit,
	}
}

// Realtime returns the current trending searches, capped at the configured
// limit.
func (c *Client) Realtime(ctx context.Context) ([]models.Trend, error) {
	params := url.Values{
		"engine":  {"google_trends_trending_now"},
		"geo":     {c.geo},
		"api_key": {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trend feed request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trend feed returned status %d: %s", resp.StatusCode, body)
	}

	var result struct {
		TrendingSearches []struct {
			Query              string `json:"query"`
			SearchVolume       int    `json:"search_volume"`
			IncreasePercentage int    `json:"increase_percentage"`
			Categories         []struct {
				Name string `json:"name"`
			} `json:"categories"`
			TrendBreakdown []string `json:"trend_breakdown"`
		} `json:"trending_searches"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode trend feed: %w", err)
	}

	trends := make([]models.Trend, 0, c.limit)
	for _, item := range result.TrendingSearches {
		categories := make([]string, 0, len(item.Categories))
		for _, cat := range item.Categories {
			categories = append(categories, cat.Name)
		}
		trends = append(trends, models.Trend{
			Keyword:            item.Query,
			SearchVolume:       item.SearchVolume,
			IncreasePercentage: item.IncreasePercentage,
			Categories:         categories,
			TrendBreakdown:     item.TrendBreakdown,
		})
		if len(trends) >= c.limit {
			break
		}
	}
	return trends, nil
}
