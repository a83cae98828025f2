package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/channeling-app/reportpipe/ent"
	"github.com/channeling-app/reportpipe/ent/comment"
	"github.com/channeling-app/reportpipe/pkg/database"
	"github.com/channeling-app/reportpipe/pkg/models"
)

// CommentService persists the per-emotion comment summary rows.
type CommentService struct {
	db *database.Client
}

// NewCommentService creates a comment service.
func NewCommentService(db *database.Client) *CommentService {
	return &CommentService{db: db}
}

// CreateBulk inserts all summary rows in one statement.
func (s *CommentService) CreateBulk(ctx context.Context, rows []models.Comment) error {
	if len(rows) == 0 {
		return nil
	}

	builders := make([]*ent.CommentCreate, len(rows))
	for i, row := range rows {
		builders[i] = s.db.Comment.Create().
			SetReportID(row.ReportID).
			SetCommentType(comment.CommentType(row.Type)).
			SetContent(row.Content).
			SetCreatedAt(row.CreatedAt)
	}

	if _, err := s.db.Comment.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to insert %d comment summaries: %w", len(rows), err)
	}

	slog.Info("Persisted comment summaries", "count", len(rows))
	return nil
}
