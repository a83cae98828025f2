package services

import (
	"context"
	"fmt"

	"github.com/channeling-app/reportpipe/ent"
	"github.com/channeling-app/reportpipe/pkg/database"
)

// ChannelService reads Channel rows. Read-only for the pipeline.
type ChannelService struct {
	db *database.Client
}

// NewChannelService creates a channel service.
func NewChannelService(db *database.Client) *ChannelService {
	return &ChannelService{db: db}
}

// Get fetches one channel by ID.
func (s *ChannelService) Get(ctx context.Context, id int) (*ent.Channel, error) {
	ch, err := s.db.Channel.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("channel %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to get channel %d: %w", id, err)
	}
	return ch, nil
}
