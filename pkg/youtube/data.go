// Package youtube adapts the YouTube Data v3 API, the YouTube Analytics v2
// API, and the transcript sidecar for the report pipeline.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/channeling-app/reportpipe/pkg/config"
	"github.com/channeling-app/reportpipe/pkg/models"
)

const commentPageSize = 100

// FetchedComment is one raw comment (top-level or reply) pulled from the
// comment threads endpoint.
type FetchedComment struct {
	Text        string
	LikeCount   int
	PublishedAt time.Time
}

// DataClient talks to the YouTube Data v3 API with an API key.
type DataClient struct {
	http       *http.Client
	apiKey     string
	baseURL    string
	regionCode string
}

// NewDataClient creates a Data v3 client from configuration.
func NewDataClient(cfg config.YouTubeConfig) *DataClient {
	return &DataClient{
		http:       &http.Client{Timeout: 30 * time.Second},
		apiKey:     cfg.APIKey,
		baseURL:    cfg.DataBaseURL,
		regionCode: cfg.RegionCode,
	}
}

// VideoDetails fetches snippet, statistics, and contentDetails for one video.
func (c *DataClient) VideoDetails(ctx context.Context, videoID string) (*models.VideoDetails, error) {
	params := url.Values{
		"part": {"snippet,statistics,contentDetails"},
		"id":   {videoID},
	}

	var resp struct {
		Items []struct {
			Snippet struct {
				Title        string   `json:"title"`
				Description  string   `json:"description"`
				Tags         []string `json:"tags"`
				PublishedAt  string   `json:"publishedAt"`
				ChannelID    string   `json:"channelId"`
				ChannelTitle string   `json:"channelTitle"`
			} `json:"snippet"`
			ContentDetails struct {
				Duration string `json:"duration"`
			} `json:"contentDetails"`
			Statistics struct {
				ViewCount    string `json:"viewCount"`
				LikeCount    string `json:"likeCount"`
				CommentCount string `json:"commentCount"`
			} `json:"statistics"`
		} `json:"items"`
	}
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("video %s not found", videoID)
	}

	item := resp.Items[0]
	return &models.VideoDetails{
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		Tags:         item.Snippet.Tags,
		PublishedAt:  item.Snippet.PublishedAt,
		Duration:     item.ContentDetails.Duration,
		ViewCount:    parseCount(item.Statistics.ViewCount),
		LikeCount:    parseCount(item.Statistics.LikeCount),
		CommentCount: parseCount(item.Statistics.CommentCount),
		ChannelID:    item.Snippet.ChannelID,
		ChannelTitle: item.Snippet.ChannelTitle,
	}, nil
}

// ChannelStats fetches subscriber, view, and video counts for one channel.
func (c *DataClient) ChannelStats(ctx context.Context, channelID string) (*models.ChannelStats, error) {
	params := url.Values{
		"part": {"statistics"},
		"id":   {channelID},
	}

	var resp struct {
		Items []struct {
			Statistics struct {
				SubscriberCount string `json:"subscriberCount"`
				ViewCount       string `json:"viewCount"`
				VideoCount      string `json:"videoCount"`
			} `json:"statistics"`
		} `json:"items"`
	}
	if err := c.get(ctx, "/channels", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("channel %s not found", channelID)
	}

	stats := resp.Items[0].Statistics
	return &models.ChannelStats{
		SubscriberCount: parseCount(stats.SubscriberCount),
		ViewCount:       parseCount(stats.ViewCount),
		VideoCount:      parseCount(stats.VideoCount),
	}, nil
}

// Comments fetches up to limit comments for a video, paginating through the
// comment threads endpoint and flattening replies into the same list.
// Reaching the limit stops pagination mid-thread.
func (c *DataClient) Comments(ctx context.Context, videoID string, limit int) ([]FetchedComment, error) {
	var (
		comments  []FetchedComment
		pageToken string
	)

	for {
		params := url.Values{
			"part":       {"snippet,replies"},
			"videoId":    {videoID},
			"maxResults": {strconv.Itoa(commentPageSize)},
			"textFormat": {"plainText"},
		}
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var resp struct {
			NextPageToken string `json:"nextPageToken"`
			Items         []struct {
				Snippet struct {
					TopLevelComment commentResource `json:"topLevelComment"`
				} `json:"snippet"`
				Replies struct {
					Comments []commentResource `json:"comments"`
				} `json:"replies"`
			} `json:"items"`
		}
		if err := c.get(ctx, "/commentThreads", params, &resp); err != nil {
			return nil, err
		}

		for _, item := range resp.Items {
			comments = append(comments, item.Snippet.TopLevelComment.toFetched())
			for _, reply := range item.Replies.Comments {
				comments = append(comments, reply.toFetched())
			}
			if len(comments) >= limit {
				return comments[:limit], nil
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return comments, nil
		}
	}
}

// PopularByCategory fetches the top n entries of the most-popular chart for
// one video category in the configured region.
func (c *DataClient) PopularByCategory(ctx context.Context, categoryID string, n int) ([]models.PopularVideo, error) {
	params := url.Values{
		"part":            {"snippet"},
		"chart":           {"mostPopular"},
		"videoCategoryId": {categoryID},
		"regionCode":      {c.regionCode},
		"maxResults":      {strconv.Itoa(n)},
	}

	var resp struct {
		Items []struct {
			Snippet struct {
				Title        string   `json:"title"`
				Description  string   `json:"description"`
				ChannelTitle string   `json:"channelTitle"`
				Tags         []string `json:"tags"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		return nil, err
	}

	videos := make([]models.PopularVideo, 0, len(resp.Items))
	for _, item := range resp.Items {
		videos = append(videos, models.PopularVideo{
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
			Tags:         item.Snippet.Tags,
		})
	}
	return videos, nil
}

type commentResource struct {
	Snippet struct {
		TextDisplay string `json:"textDisplay"`
		LikeCount   int    `json:"likeCount"`
		PublishedAt string `json:"publishedAt"`
	} `json:"snippet"`
}

func (r commentResource) toFetched() FetchedComment {
	published, _ := time.Parse(time.RFC3339, r.Snippet.PublishedAt)
	return FetchedComment{
		Text:        r.Snippet.TextDisplay,
		LikeCount:   r.Snippet.LikeCount,
		PublishedAt: published,
	}
}

func (c *DataClient) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("youtube data request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func parseCount(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
