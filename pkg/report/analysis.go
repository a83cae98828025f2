package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/channeling-app/reportpipe/ent"
	"github.com/channeling-app/reportpipe/pkg/chunking"
	"github.com/channeling-app/reportpipe/pkg/llm"
	"github.com/channeling-app/reportpipe/pkg/models"
	"github.com/channeling-app/reportpipe/pkg/retry"
	"github.com/channeling-app/reportpipe/pkg/youtube"
)

// RetentionFailurePlaceholder is persisted as the retention analysis when
// the analytics API stays unreachable through the whole retry budget.
const RetentionFailurePlaceholder = "시청자 이탈 분석 실패 (네트워크 타임아웃)"

const descriptionPrefixLen = 200

// retrievalQuestions ground the retention prompt: one retrieval per
// question, three chunks each.
var retrievalQuestions = []string{
	"시청자가 이 구간에서 이탈한 원인",
	"시청 지속률을 높이기 위한 개선 방법",
	"영상 편집 흐름과 구성",
}

// Analysis handles one analysis step message: retention analysis, then
// algorithm optimization. Retention analysis degrades to a placeholder on
// network exhaustion instead of failing the axis.
func (h *Handlers) Analysis(ctx context.Context, msg models.StepMessage) error {
	rpt, video, ok := h.resolve(ctx, msg)
	if !ok {
		return nil
	}

	return h.finalize(ctx, msg, h.runAnalysis(ctx, msg, rpt, video))
}

func (h *Handlers) runAnalysis(ctx context.Context, msg models.StepMessage, rpt *ent.Report, video *ent.Video) error {
	start := time.Now()

	if err := h.retentionSubphase(ctx, msg, rpt, video); err != nil {
		return fmt.Errorf("retention sub-phase: %w", err)
	}
	slog.Info("Retention sub-phase done", "report_id", rpt.ID, "elapsed", time.Since(start))

	if err := h.optimizationSubphase(ctx, msg, rpt, video); err != nil {
		return fmt.Errorf("optimization sub-phase: %w", err)
	}
	slog.Info("Optimization sub-phase done", "report_id", rpt.ID, "elapsed", time.Since(start))

	return nil
}

// retentionSubphase locates the sharpest retention drop, runs the dual
// chunking passes, and grounds a single LLM analysis on retrieved chunks.
func (h *Handlers) retentionSubphase(ctx context.Context, msg models.StepMessage, rpt *ent.Report, video *ent.Video) error {
	details, err := h.data.VideoDetails(ctx, video.YoutubeVideoID)
	if err != nil {
		return fmt.Errorf("failed to fetch video details: %w", err)
	}
	durationSec, err := youtube.ParseDuration(details.Duration)
	if err != nil {
		return err
	}
	publishedAt, err := time.Parse(time.RFC3339, details.PublishedAt)
	if err != nil {
		return fmt.Errorf("unparsable publish date %q: %w", details.PublishedAt, err)
	}

	var rows []models.RetentionRow
	err = retry.Do(ctx, h.cfg.RetentionRetries, retry.Linear(h.retentionBackoff), youtube.IsTransient,
		func(ctx context.Context) error {
			var fetchErr error
			rows, fetchErr = h.analytics.RetentionCurve(ctx, msg.GoogleAccessToken, video.YoutubeVideoID, publishedAt)
			return fetchErr
		})
	if err != nil {
		if !youtube.IsTransient(err) {
			return fmt.Errorf("failed to fetch retention curve: %w", err)
		}
		// Network exhaustion: degrade to the placeholder and let the
		// optimization sub-phase run.
		slog.Warn("Retention curve unreachable, persisting placeholder",
			"report_id", rpt.ID, "error", err)
		return h.reports.UpdateLeaveAnalyze(ctx, rpt.ID, RetentionFailurePlaceholder)
	}

	worstRatio := chunking.WorstDropRatio(rows)

	segments, err := h.transcript.Segments(ctx, video.YoutubeVideoID)
	if err != nil {
		return fmt.Errorf("failed to fetch transcript: %w", err)
	}

	timeChunks := chunking.BuildTimeChunks(segments, rows, durationSec, worstRatio)
	if !msg.SkipVectorSave {
		if _, err := h.chunker.IngestTimeChunks(ctx, video.ID, timeChunks); err != nil {
			return err
		}
	}

	var focus []chunking.RawChunk
	for _, c := range timeChunks {
		if c.IsFocusZone {
			focus = append(focus, c)
		}
	}

	// A persistently unparsable meaning response is not terminal; the
	// analysis just runs without the meaning chunks.
	meaning, err := h.chunker.MeaningChunks(ctx, focus)
	if err != nil {
		slog.Warn("Meaning chunking gave up", "report_id", rpt.ID, "error", err)
	} else if !msg.SkipVectorSave {
		if err := h.chunker.IngestMeaningChunks(ctx, video.ID, meaning); err != nil {
			return err
		}
	}

	grounding, err := h.retrieveGrounding(ctx, video.ID)
	if err != nil {
		return err
	}

	system, user := llm.RetentionPrompt(worstRatio, grounding)
	prose, err := h.llm.Complete(ctx, system, user)
	if err != nil {
		return fmt.Errorf("retention analysis completion failed: %w", err)
	}

	if err := h.reports.UpdateLeaveAnalyze(ctx, rpt.ID, prose); err != nil {
		return err
	}
	if msg.SkipVectorSave {
		return nil
	}
	return h.store.SaveText(ctx, models.SourceViewerEscapeAnalysis, rpt.ID, prose, nil)
}

// retrieveGrounding pulls the top-3 transcript chunks for each grounding
// question and joins them into one context block.
func (h *Handlers) retrieveGrounding(ctx context.Context, videoID int) (string, error) {
	var parts []string
	seen := make(map[string]bool)

	for _, q := range retrievalQuestions {
		results, err := h.store.SearchSimilar(ctx, q, models.SourceViewerEscapeAnalysis, videoID, 3)
		if err != nil {
			return "", fmt.Errorf("grounding retrieval failed: %w", err)
		}
		for _, r := range results {
			if !seen[r.Content] {
				seen[r.Content] = true
				parts = append(parts, r.Content)
			}
		}
	}
	return strings.Join(parts, "\n"), nil
}

// optimizationSubphase grounds the algorithm-optimization prose on prior
// optimization chunks retrieved by title and description similarity.
func (h *Handlers) optimizationSubphase(ctx context.Context, msg models.StepMessage, rpt *ent.Report, video *ent.Video) error {
	details, err := h.data.VideoDetails(ctx, video.YoutubeVideoID)
	if err != nil {
		return fmt.Errorf("failed to fetch video details: %w", err)
	}

	channel, err := h.channels.Get(ctx, video.ChannelID)
	if err != nil {
		return err
	}
	stats, err := h.data.ChannelStats(ctx, channel.YoutubeChannelID)
	if err != nil {
		return fmt.Errorf("failed to fetch channel stats: %w", err)
	}

	query := details.Title + " " + prefix(details.Description, descriptionPrefixLen)
	queryVec, err := h.llm.Embed(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to embed optimization query: %w", err)
	}

	similar, err := h.store.SearchSimilarByEmbedding(ctx, queryVec, models.SourceAlgorithmOptimization, 0, 3, nil)
	if err != nil {
		return err
	}

	var contextParts []string
	for _, r := range similar {
		contextParts = append(contextParts, r.Content)
	}
	contextParts = append(contextParts, fmt.Sprintf(
		"채널 구독자 %d명, 총 조회수 %d회, 영상 %d개",
		stats.SubscriberCount, stats.ViewCount, stats.VideoCount))

	system, user := llm.OptimizationPrompt(details.Title, details.Description, strings.Join(contextParts, "\n"))
	prose, err := h.llm.Complete(ctx, system, user)
	if err != nil {
		return fmt.Errorf("optimization completion failed: %w", err)
	}

	if err := h.reports.UpdateOptimization(ctx, rpt.ID, prose); err != nil {
		return err
	}
	if msg.SkipVectorSave {
		return nil
	}
	return h.store.SaveText(ctx, models.SourceAlgorithmOptimization, rpt.ID, prose, nil)
}

func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
