package services

import (
	"context"
	"fmt"

	"github.com/channeling-app/reportpipe/ent"
	"github.com/channeling-app/reportpipe/ent/video"
	"github.com/channeling-app/reportpipe/pkg/database"
)

// VideoService reads Video rows. Videos are owned by the ingestion system;
// the pipeline never writes them.
type VideoService struct {
	db *database.Client
}

// NewVideoService creates a video service.
func NewVideoService(db *database.Client) *VideoService {
	return &VideoService{db: db}
}

// Get fetches one video by ID.
func (s *VideoService) Get(ctx context.Context, id int) (*ent.Video, error) {
	v, err := s.db.Video.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("video %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to get video %d: %w", id, err)
	}
	return v, nil
}

// ListByChannel returns all videos of a channel.
func (s *VideoService) ListByChannel(ctx context.Context, channelID int) ([]*ent.Video, error) {
	videos, err := s.db.Video.Query().
		Where(video.ChannelID(channelID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos of channel %d: %w", channelID, err)
	}
	return videos, nil
}

// ListByCategory returns all videos sharing a category.
func (s *VideoService) ListByCategory(ctx context.Context, category string) ([]*ent.Video, error) {
	videos, err := s.db.Video.Query().
		Where(video.VideoCategory(category)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos of category %q: %w", category, err)
	}
	return videos, nil
}
