package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/channeling-app/reportpipe/ent"
	"github.com/channeling-app/reportpipe/pkg/llm"
	"github.com/channeling-app/reportpipe/pkg/models"
)

const (
	popularVideoCount   = 3
	ideaRetrievalLimit  = 5
	summaryWaitAttempts = 3
	summaryWaitInterval = time.Second
)

// Idea handles one idea step message: trend extraction, then idea
// generation.
func (h *Handlers) Idea(ctx context.Context, msg models.StepMessage) error {
	rpt, video, ok := h.resolve(ctx, msg)
	if !ok {
		return nil
	}

	channel, err := h.channels.Get(ctx, video.ChannelID)
	if err != nil {
		slog.Warn("Dropping message for missing channel",
			"report_id", msg.ReportID, "channel_id", video.ChannelID, "error", err)
		return nil
	}

	return h.finalize(ctx, msg, h.runIdea(ctx, msg, rpt, video, channel))
}

func (h *Handlers) runIdea(ctx context.Context, msg models.StepMessage, rpt *ent.Report, video *ent.Video, channel *ent.Channel) error {
	start := time.Now()

	keywords, err := h.trendSubphase(ctx, msg, rpt, channel)
	if err != nil {
		return fmt.Errorf("trend sub-phase: %w", err)
	}
	slog.Info("Trend sub-phase done", "report_id", rpt.ID, "elapsed", time.Since(start))

	if err := h.ideaSubphase(ctx, msg, rpt, video, channel, keywords); err != nil {
		return fmt.Errorf("idea sub-phase: %w", err)
	}
	slog.Info("Idea sub-phase done", "report_id", rpt.ID, "elapsed", time.Since(start))

	return nil
}

// trendSubphase stores the LLM-scored realtime trend set and the
// LLM-curated channel set, returning the curated keywords for idea
// generation.
func (h *Handlers) trendSubphase(ctx context.Context, msg models.StepMessage, rpt *ent.Report, channel *ent.Channel) ([]string, error) {
	realtime, err := h.trends.Realtime(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch realtime trends: %w", err)
	}

	names := make([]string, len(realtime))
	for i, t := range realtime {
		names[i] = t.Keyword
	}

	var realtimeScored []models.ScoredKeyword
	system, user := llm.RealtimeKeywordsPrompt(names)
	if err := h.completeJSONRetry(ctx, system, user, &realtimeScored); err != nil {
		// Unparsable scoring falls back to volume-derived scores so the
		// realtime set still lands inside the score range.
		slog.Warn("Realtime keyword scoring unparsable, using volume-derived scores",
			"report_id", rpt.ID, "error", err)
		realtimeScored = volumeScored(realtime)
	}

	var scored []models.ScoredKeyword
	system, user = llm.ChannelKeywordsPrompt(channel.Concept, channel.Target, names)
	if err := h.completeJSONRetry(ctx, system, user, &scored); err != nil {
		// Persistently unparsable curation degrades to an empty channel
		// set; the realtime set still gets stored.
		slog.Warn("Keyword curation unparsable, continuing without channel set",
			"report_id", rpt.ID, "error", err)
		scored = nil
	}

	if err := h.keywords.SaveRealtime(ctx, rpt.ID, clampScores(realtimeScored)); err != nil {
		return nil, err
	}
	if err := h.keywords.SaveChannel(ctx, rpt.ID, clampScores(scored)); err != nil {
		return nil, err
	}

	curated := make([]string, len(scored))
	for i, k := range scored {
		curated[i] = k.Keyword
	}

	if !msg.SkipVectorSave && len(curated) > 0 {
		if err := h.store.SaveText(ctx, models.SourcePersonalizedKeywords, rpt.ID, strings.Join(curated, ", "), nil); err != nil {
			return nil, err
		}
	}
	return curated, nil
}

// volumeScored derives keyword scores from search volume relative to the
// feed's maximum.
func volumeScored(trends []models.Trend) []models.ScoredKeyword {
	var max int
	for _, t := range trends {
		if t.SearchVolume > max {
			max = t.SearchVolume
		}
	}

	scored := make([]models.ScoredKeyword, len(trends))
	for i, t := range trends {
		score := 0
		if max > 0 {
			score = t.SearchVolume * 100 / max
		}
		scored[i] = models.ScoredKeyword{Keyword: t.Keyword, Score: score}
	}
	return scored
}

// clampScores forces every keyword score into the 0-100 range the score
// column expects, whatever the model emitted.
func clampScores(keywords []models.ScoredKeyword) []models.ScoredKeyword {
	for i := range keywords {
		if keywords[i].Score < 0 {
			keywords[i].Score = 0
		}
		if keywords[i].Score > 100 {
			keywords[i].Score = 100
		}
	}
	return keywords
}

// ideaSubphase grounds idea generation on category-popular videos and
// prior idea chunks, then bulk-inserts the parsed drafts.
func (h *Handlers) ideaSubphase(ctx context.Context, msg models.StepMessage, rpt *ent.Report, video *ent.Video, channel *ent.Channel, keywords []string) error {
	popular, err := h.data.PopularByCategory(ctx, video.VideoCategory, popularVideoCount)
	if err != nil {
		return fmt.Errorf("failed to fetch popular videos: %w", err)
	}

	if !msg.SkipVectorSave {
		for _, p := range popular {
			text := p.Title + "\n" + p.Description
			if err := h.store.SaveText(ctx, models.SourceIdeaRecommendation, video.ID, text, nil); err != nil {
				return err
			}
		}
	}

	queryVec, err := h.llm.Embed(ctx, video.Title+" "+video.Description+" "+video.VideoCategory)
	if err != nil {
		return fmt.Errorf("failed to embed idea query: %w", err)
	}
	similar, err := h.store.SearchSimilarByEmbedding(ctx, queryVec, models.SourceIdeaRecommendation, 0, ideaRetrievalLimit, nil)
	if err != nil {
		return err
	}

	var contextParts []string
	if summary, ok := h.reports.WaitForSummary(ctx, rpt.ID, summaryWaitAttempts, summaryWaitInterval); ok {
		contextParts = append(contextParts, "영상 요약: "+summary)
	}
	for _, p := range popular {
		contextParts = append(contextParts, fmt.Sprintf("인기 영상 (%s): %s", p.ChannelTitle, p.Title))
	}
	for _, r := range similar {
		contextParts = append(contextParts, r.Content)
	}

	var drafts []models.IdeaDraft
	system, user := llm.IdeaPrompt(channel.Concept, channel.Target, keywords, strings.Join(contextParts, "\n"))
	if err := h.completeJSONRetry(ctx, system, user, &drafts); err != nil {
		slog.Warn("Idea generation unparsable, no ideas persisted",
			"report_id", rpt.ID, "error", err)
		return nil
	}

	return h.ideas.CreateBulk(ctx, video.ChannelID, drafts)
}
