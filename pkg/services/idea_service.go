package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/channeling-app/reportpipe/ent"
	"github.com/channeling-app/reportpipe/pkg/database"
	"github.com/channeling-app/reportpipe/pkg/models"
)

// IdeaService persists generated content ideas.
type IdeaService struct {
	db *database.Client
}

// NewIdeaService creates an idea service.
func NewIdeaService(db *database.Client) *IdeaService {
	return &IdeaService{db: db}
}

// CreateBulk inserts all idea drafts for a channel in one statement. Tags
// are stored JSON-encoded in hash_tag.
func (s *IdeaService) CreateBulk(ctx context.Context, channelID int, drafts []models.IdeaDraft) error {
	if len(drafts) == 0 {
		return nil
	}

	builders := make([]*ent.IdeaCreate, len(drafts))
	for i, d := range drafts {
		tags, err := json.Marshal(d.Tags)
		if err != nil {
			return fmt.Errorf("failed to encode tags of idea %q: %w", d.Title, err)
		}
		builders[i] = s.db.Idea.Create().
			SetChannelID(channelID).
			SetTitle(d.Title).
			SetContent(d.Description).
			SetHashTag(string(tags))
	}

	if _, err := s.db.Idea.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to insert %d ideas: %w", len(drafts), err)
	}

	slog.Info("Persisted ideas", "channel_id", channelID, "count", len(drafts))
	return nil
}
