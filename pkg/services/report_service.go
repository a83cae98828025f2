// Package services implements the persistence layer over Ent. Each service
// owns one entity; report updates are strictly partial so concurrent step
// handlers never clobber each other's columns.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/channeling-app/reportpipe/ent"
	"github.com/channeling-app/reportpipe/pkg/analyzer"
	"github.com/channeling-app/reportpipe/pkg/database"
	"github.com/channeling-app/reportpipe/pkg/models"
)

// ReportService manages Report rows.
type ReportService struct {
	db *database.Client
}

// NewReportService creates a report service.
func NewReportService(db *database.Client) *ReportService {
	return &ReportService{db: db}
}

// Create inserts an empty report shell for a video. Step handlers fill in
// the rest through partial updates.
func (s *ReportService) Create(ctx context.Context, videoID int) (*ent.Report, error) {
	report, err := s.db.Report.Create().
		SetVideoID(videoID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create report for video %d: %w", videoID, err)
	}

	slog.Info("Created report", "report_id", report.ID, "video_id", videoID)
	return report, nil
}

// Get fetches one report by ID.
func (s *ReportService) Get(ctx context.Context, id int) (*ent.Report, error) {
	report, err := s.db.Report.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("report %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to get report %d: %w", id, err)
	}
	return report, nil
}

// UpdateSummary writes the overview summary and title.
func (s *ReportService) UpdateSummary(ctx context.Context, id int, title, summary string) error {
	_, err := s.db.Report.UpdateOneID(id).
		SetTitle(title).
		SetSummary(summary).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update summary of report %d: %w", id, err)
	}
	return nil
}

// Metrics is the overview metrics column set.
type Metrics struct {
	Views        int64
	LikeCount    int64
	CommentCount int64
	Deltas       analyzer.AverageDeltas
	Concept      float64
	SEO          float64
	Revisit      float64
}

// UpdateMetrics writes the metrics columns computed by the overview step.
func (s *ReportService) UpdateMetrics(ctx context.Context, id int, m Metrics) error {
	_, err := s.db.Report.UpdateOneID(id).
		SetView(m.Views).
		SetViewChannelAvg(m.Deltas.ViewChannel).
		SetViewTopicAvg(m.Deltas.ViewTopic).
		SetLikeCount(m.LikeCount).
		SetLikeChannelAvg(m.Deltas.LikeChannel).
		SetLikeTopicAvg(m.Deltas.LikeTopic).
		SetCommentCount(m.CommentCount).
		SetCommentChannelAvg(m.Deltas.CommentChannel).
		SetCommentTopicAvg(m.Deltas.CommentTopic).
		SetConcept(m.Concept).
		SetSeo(m.SEO).
		SetRevisit(m.Revisit).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update metrics of report %d: %w", id, err)
	}
	return nil
}

// UpdateEmotionCounts writes the extrapolated sentiment composition.
func (s *ReportService) UpdateEmotionCounts(ctx context.Context, id int, counts map[models.CommentType]int) error {
	_, err := s.db.Report.UpdateOneID(id).
		SetPositiveComment(counts[models.CommentPositive]).
		SetNegativeComment(counts[models.CommentNegative]).
		SetNeutralComment(counts[models.CommentNeutral]).
		SetAdviceComment(counts[models.CommentAdvice]).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update emotion counts of report %d: %w", id, err)
	}
	return nil
}

// UpdateLeaveAnalyze writes the viewer-retention analysis prose.
func (s *ReportService) UpdateLeaveAnalyze(ctx context.Context, id int, text string) error {
	_, err := s.db.Report.UpdateOneID(id).
		SetLeaveAnalyze(text).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update leave analysis of report %d: %w", id, err)
	}
	return nil
}

// UpdateOptimization writes the algorithm-optimization prose.
func (s *ReportService) UpdateOptimization(ctx context.Context, id int, text string) error {
	_, err := s.db.Report.UpdateOneID(id).
		SetOptimization(text).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update optimization of report %d: %w", id, err)
	}
	return nil
}

// WaitForSummary polls the report summary up to attempts times at the
// given interval. Best-effort: returns the summary if it appeared, or
// empty and false if it did not. The idea step uses this as a hint, never
// a barrier.
func (s *ReportService) WaitForSummary(ctx context.Context, id, attempts int, interval time.Duration) (string, bool) {
	return pollSummary(ctx, attempts, interval, func() (string, bool) {
		report, err := s.Get(ctx, id)
		if err != nil || report.Summary == "" {
			return "", false
		}
		return report.Summary, true
	})
}

// pollSummary drives the attempt schedule. The interval elapses between
// attempts only; a failed final attempt returns immediately.
func pollSummary(ctx context.Context, attempts int, interval time.Duration, fetch func() (string, bool)) (string, bool) {
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return "", false
			case <-time.After(interval):
			}
		}
		if summary, ok := fetch(); ok {
			return summary, true
		}
	}
	return "", false
}
