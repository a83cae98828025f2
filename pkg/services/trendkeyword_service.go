package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/channeling-app/reportpipe/ent"
	"github.com/channeling-app/reportpipe/ent/trendkeyword"
	"github.com/channeling-app/reportpipe/pkg/database"
	"github.com/channeling-app/reportpipe/pkg/models"
)

// TrendKeywordService persists the realtime and channel-tailored keyword
// sets of the idea step.
type TrendKeywordService struct {
	db *database.Client
}

// NewTrendKeywordService creates a trend keyword service.
func NewTrendKeywordService(db *database.Client) *TrendKeywordService {
	return &TrendKeywordService{db: db}
}

// SaveRealtime inserts the scored realtime trend set.
func (s *TrendKeywordService) SaveRealtime(ctx context.Context, reportID int, keywords []models.ScoredKeyword) error {
	if len(keywords) == 0 {
		return nil
	}

	builders := make([]*ent.TrendKeywordCreate, len(keywords))
	for i, k := range keywords {
		builders[i] = s.db.TrendKeyword.Create().
			SetReportID(reportID).
			SetKeywordType(trendkeyword.KeywordTypeRealTime).
			SetKeyword(k.Keyword).
			SetScore(k.Score)
	}

	if _, err := s.db.TrendKeyword.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to insert %d realtime keywords: %w", len(keywords), err)
	}

	slog.Info("Persisted realtime keywords", "report_id", reportID, "count", len(keywords))
	return nil
}

// SaveChannel inserts the LLM-curated channel keyword set.
func (s *TrendKeywordService) SaveChannel(ctx context.Context, reportID int, keywords []models.ScoredKeyword) error {
	if len(keywords) == 0 {
		return nil
	}

	builders := make([]*ent.TrendKeywordCreate, len(keywords))
	for i, k := range keywords {
		builders[i] = s.db.TrendKeyword.Create().
			SetReportID(reportID).
			SetKeywordType(trendkeyword.KeywordTypeChannel).
			SetKeyword(k.Keyword).
			SetScore(k.Score)
	}

	if _, err := s.db.TrendKeyword.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to insert %d channel keywords: %w", len(keywords), err)
	}

	slog.Info("Persisted channel keywords", "report_id", reportID, "count", len(keywords))
	return nil
}
