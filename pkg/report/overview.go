package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/channeling-app/reportpipe/ent"
	"github.com/channeling-app/reportpipe/pkg/analyzer"
	"github.com/channeling-app/reportpipe/pkg/llm"
	"github.com/channeling-app/reportpipe/pkg/models"
	"github.com/channeling-app/reportpipe/pkg/services"
	"github.com/channeling-app/reportpipe/pkg/youtube"
)

// Overview handles one overview step message: summary, comments, and
// metrics, in that order. The first failing sub-phase fails the axis and
// skips the rest.
func (h *Handlers) Overview(ctx context.Context, msg models.StepMessage) error {
	rpt, video, ok := h.resolve(ctx, msg)
	if !ok {
		return nil
	}

	return h.finalize(ctx, msg, h.runOverview(ctx, msg, rpt, video))
}

func (h *Handlers) runOverview(ctx context.Context, msg models.StepMessage, rpt *ent.Report, video *ent.Video) error {
	start := time.Now()

	if err := h.summarySubphase(ctx, msg, rpt, video); err != nil {
		return fmt.Errorf("summary sub-phase: %w", err)
	}
	slog.Info("Summary sub-phase done", "report_id", rpt.ID, "elapsed", time.Since(start))

	if err := h.commentsSubphase(ctx, rpt, video); err != nil {
		return fmt.Errorf("comments sub-phase: %w", err)
	}
	slog.Info("Comments sub-phase done", "report_id", rpt.ID, "elapsed", time.Since(start))

	if err := h.metricsSubphase(ctx, msg, rpt, video); err != nil {
		return fmt.Errorf("metrics sub-phase: %w", err)
	}
	slog.Info("Metrics sub-phase done", "report_id", rpt.ID, "elapsed", time.Since(start))

	return nil
}

// summarySubphase summarizes the transcript and stores the summary both on
// the report and, unless vector saves are skipped, as VIDEO_SUMMARY chunks
// keyed by report ID.
func (h *Handlers) summarySubphase(ctx context.Context, msg models.StepMessage, rpt *ent.Report, video *ent.Video) error {
	segments, err := h.transcript.Segments(ctx, video.YoutubeVideoID)
	if err != nil {
		return fmt.Errorf("failed to fetch transcript: %w", err)
	}

	text := youtube.FullText(segments)
	summary := youtube.NoTranscriptPlaceholder
	if text != "" {
		system, user := llm.SummaryPrompt(video.Title, text)
		summary, err = h.llm.Complete(ctx, system, user)
		if err != nil {
			return fmt.Errorf("failed to summarize transcript: %w", err)
		}

		if !msg.SkipVectorSave {
			if err := h.store.SaveText(ctx, models.SourceVideoSummary, rpt.ID, summary, nil); err != nil {
				return fmt.Errorf("failed to store summary chunks: %w", err)
			}
		}
	}

	return h.reports.UpdateSummary(ctx, rpt.ID, video.Title, summary)
}

// commentsSubphase runs the sentiment pipeline. Disabled comments yield
// zero counts and no summary rows but do not fail the step.
func (h *Handlers) commentsSubphase(ctx context.Context, rpt *ent.Report, video *ent.Video) error {
	fetched, err := h.data.Comments(ctx, video.YoutubeVideoID, h.cfg.CommentCap)
	if err != nil {
		if !youtube.IsCommentsDisabled(err) {
			return fmt.Errorf("failed to fetch comments: %w", err)
		}
		slog.Info("Comments disabled for video", "video_id", video.ID)
		fetched = nil
	}

	breakdown, err := h.sentiments.Analyze(ctx, rpt.ID, fetched)
	if err != nil {
		return err
	}

	if err := h.comments.CreateBulk(ctx, breakdown.Summaries); err != nil {
		return err
	}
	return h.reports.UpdateEmotionCounts(ctx, rpt.ID, breakdown.Counts)
}

// metricsSubphase computes concept consistency, SEO, revisit, and the six
// average deltas, then writes them in one partial update.
func (h *Handlers) metricsSubphase(ctx context.Context, msg models.StepMessage, rpt *ent.Report, video *ent.Video) error {
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

	vidAnalytics, err := h.analytics.VideoOverview(ctx, msg.GoogleAccessToken, video.YoutubeVideoID, publishedAt)
	if err != nil {
		return fmt.Errorf("failed to fetch video analytics: %w", err)
	}

	siblings, err := h.videos.ListByChannel(ctx, video.ChannelID)
	if err != nil {
		return err
	}

	concept, err := h.consistency(ctx, video, siblings)
	if err != nil {
		return err
	}

	topicPeers, err := h.videos.ListByCategory(ctx, video.VideoCategory)
	if err != nil {
		return err
	}

	deltas := analyzer.AverageDeltasFor(
		analyzer.VideoCounts{Views: video.View, Likes: video.LikeCount, Comments: video.CommentCount},
		peerCounts(siblings, video.ID),
		peerCounts(topicPeers, video.ID),
	)

	return h.reports.UpdateMetrics(ctx, rpt.ID, services.Metrics{
		Views:        video.View,
		LikeCount:    video.LikeCount,
		CommentCount: video.CommentCount,
		Deltas:       deltas,
		Concept:      concept,
		SEO:          analyzer.SEOScore(*vidAnalytics, durationSec),
		Revisit:      analyzer.RevisitRate(*vidAnalytics),
	})
}

// consistency embeds the target and every sibling video's title plus
// description and scores the mean cosine similarity.
func (h *Handlers) consistency(ctx context.Context, video *ent.Video, channelVideos []*ent.Video) (float64, error) {
	var siblingTexts []string
	for _, v := range channelVideos {
		if v.ID == video.ID {
			continue
		}
		siblingTexts = append(siblingTexts, v.Title+" "+v.Description)
	}
	if len(siblingTexts) == 0 {
		return 100, nil
	}

	target, err := h.llm.Embed(ctx, video.Title+" "+video.Description)
	if err != nil {
		return 0, fmt.Errorf("failed to embed target video: %w", err)
	}

	siblings, err := h.llm.EmbedBatch(ctx, siblingTexts)
	if err != nil {
		return 0, fmt.Errorf("failed to embed sibling videos: %w", err)
	}
	return analyzer.Consistency(target, siblings), nil
}

func peerCounts(videos []*ent.Video, excludeID int) []analyzer.VideoCounts {
	var peers []analyzer.VideoCounts
	for _, v := range videos {
		if v.ID == excludeID {
			continue
		}
		peers = append(peers, analyzer.VideoCounts{
			Views:    v.View,
			Likes:    v.LikeCount,
			Comments: v.CommentCount,
		})
	}
	return peers
}
