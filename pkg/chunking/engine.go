// Package chunking splits video transcripts into retrieval chunks guided
// by the audience retention curve. Two passes feed the vector store: a
// time-uniform sweep over the whole video, refined inside the focus window
// around the worst retention drop, and an LLM-driven meaning pass over the
// focus window only.
package chunking

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/channeling-app/reportpipe/pkg/llm"
	"github.com/channeling-app/reportpipe/pkg/models"
	"github.com/channeling-app/reportpipe/pkg/vectorstore"
)

// Params are the chunk sizes derived from video length L in seconds.
type Params struct {
	BaseChunk   float64
	FocusChunk  float64
	FocusWindow float64
}

// ParamsFor derives chunk sizes from video length. Short videos floor at
// 7s base chunks; focus chunks and the focus window are clamped so long
// videos stay tractable.
func ParamsFor(videoLength float64) Params {
	return Params{
		BaseChunk:   math.Max(7, math.Floor(0.02*videoLength)),
		FocusChunk:  math.Max(5, math.Min(math.Floor(0.006*videoLength), 60)),
		FocusWindow: math.Max(10, math.Min(math.Floor(0.04*videoLength), 300)),
	}
}

// RawChunk is one time-aligned transcript chunk with its averaged
// retention metrics.
type RawChunk struct {
	Text                   string
	Start                  float64
	End                    float64
	IsFocusZone            bool
	AvgWatchRatio          float64
	AvgRelativePerformance float64
}

// WorstDropRatio returns the elapsed-time ratio of the sharpest
// audienceWatchRatio drop between consecutive retention rows. The tail of
// the curve (elapsed ratio ≥ 0.95) is ignored because every video drops
// off at the outro. Returns 0 when the curve has fewer than two rows.
func WorstDropRatio(rows []models.RetentionRow) float64 {
	var (
		worstRatio float64
		worstDrop  = math.Inf(-1)
	)
	for i := 1; i < len(rows); i++ {
		if rows[i].ElapsedRatio >= 0.95 {
			break
		}
		drop := rows[i-1].AudienceWatchRatio - rows[i].AudienceWatchRatio
		if drop > worstDrop {
			worstDrop = drop
			worstRatio = rows[i].ElapsedRatio
		}
	}
	if math.IsInf(worstDrop, -1) {
		return 0
	}
	return worstRatio
}

// BuildTimeChunks sweeps the video from 0 to videoLength, emitting
// focus-sized chunks inside the focus window and base-sized chunks
// elsewhere. Each chunk carries the transcript text overlapping its
// interval and the averaged retention rows of its ratio span.
func BuildTimeChunks(segments []models.TranscriptSegment, retention []models.RetentionRow, videoLength, worstRatio float64) []RawChunk {
	if videoLength <= 0 {
		return nil
	}

	p := ParamsFor(videoLength)
	center := worstRatio * videoLength
	focusStart := math.Max(0, center-p.FocusWindow/2)
	focusEnd := math.Min(videoLength, center+p.FocusWindow/2)

	var chunks []RawChunk
	for current := 0.0; current < videoLength; {
		inFocus := current >= focusStart && current < focusEnd
		size := p.BaseChunk
		if inFocus {
			size = p.FocusChunk
		}
		end := math.Min(current+size, videoLength)

		avgWatch, avgRel := averageRetention(retention, current/videoLength, end/videoLength)
		chunks = append(chunks, RawChunk{
			Text:                   textInWindow(segments, current, end),
			Start:                  current,
			End:                    end,
			IsFocusZone:            inFocus,
			AvgWatchRatio:          avgWatch,
			AvgRelativePerformance: avgRel,
		})
		current = end
	}
	return chunks
}

// textInWindow joins transcript snippets whose intervals overlap
// [start, end). The first candidate snippet is located by binary search:
// the largest index whose start time is at or before the window start.
func textInWindow(segments []models.TranscriptSegment, start, end float64) string {
	if len(segments) == 0 {
		return ""
	}

	first := sort.Search(len(segments), func(i int) bool {
		return segments[i].StartTime > start
	}) - 1
	if first < 0 {
		first = 0
	}

	var parts []string
	for i := first; i < len(segments); i++ {
		seg := segments[i]
		if seg.StartTime >= end {
			break
		}
		if seg.EndTime <= start {
			continue
		}
		if s := strings.TrimSpace(seg.Text); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func averageRetention(rows []models.RetentionRow, startRatio, endRatio float64) (avgWatch, avgRel float64) {
	var n int
	for _, row := range rows {
		if row.ElapsedRatio >= startRatio && row.ElapsedRatio < endRatio {
			avgWatch += row.AudienceWatchRatio
			avgRel += row.RelativePerformance
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return avgWatch / float64(n), avgRel / float64(n)
}

// JSONCompleter is the LLM surface the meaning pass depends on.
type JSONCompleter interface {
	CompleteJSON(ctx context.Context, system, user string, out any) (string, error)
}

// ChunkStore is the vector-store surface the engine writes through.
type ChunkStore interface {
	SaveChunks(ctx context.Context, sourceType models.SourceType, sourceID int, chunks []vectorstore.Chunk) error
	HasChunks(ctx context.Context, sourceID int, chunkType string) (bool, error)
}

// Engine ingests chunks into the vector store.
type Engine struct {
	store          ChunkStore
	llm            JSONCompleter
	meaningRetries int
}

// NewEngine creates a chunking engine. meaningRetries bounds the JSON
// parse retry loop of the meaning pass.
func NewEngine(store ChunkStore, completer JSONCompleter, meaningRetries int) *Engine {
	if meaningRetries < 1 {
		meaningRetries = 1
	}
	return &Engine{
		store:          store,
		llm:            completer,
		meaningRetries: meaningRetries,
	}
}

// IngestTimeChunks stores time-uniform chunks for a video unless a prior
// run already did. Returns whether anything was written.
func (e *Engine) IngestTimeChunks(ctx context.Context, videoID int, chunks []RawChunk) (bool, error) {
	exists, err := e.store.HasChunks(ctx, videoID, models.ChunkTypeTime)
	if err != nil {
		return false, err
	}
	if exists {
		slog.Info("Time chunks already ingested, skipping", "video_id", videoID)
		return false, nil
	}

	return true, e.save(ctx, videoID, models.ChunkTypeTime, chunks)
}

// MeaningChunks asks the LLM to regroup the focus-window chunks into
// semantically coherent ones. The model answers with a JSON array of
// [text, start_sec, end_sec] triplets; malformed answers are retried up
// to the configured budget. Retention metrics for each result are averaged
// from the raw chunks its interval covers.
func (e *Engine) MeaningChunks(ctx context.Context, focusChunks []RawChunk) ([]RawChunk, error) {
	if len(focusChunks) == 0 {
		return nil, nil
	}

	type promptChunk struct {
		Text  string  `json:"text"`
		Start float64 `json:"start_sec"`
		End   float64 `json:"end_sec"`
	}
	prompt := make([]promptChunk, len(focusChunks))
	for i, c := range focusChunks {
		prompt[i] = promptChunk{Text: c.Text, Start: c.Start, End: c.End}
	}
	payload, err := json.Marshal(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal focus chunks: %w", err)
	}

	system, user := llm.MeaningChunksPrompt(string(payload))

	var lastErr error
	for attempt := 1; attempt <= e.meaningRetries; attempt++ {
		var triplets [][]json.RawMessage
		if _, err := e.llm.CompleteJSON(ctx, system, user, &triplets); err != nil {
			lastErr = err
			slog.Warn("Meaning chunk response unparsable, retrying",
				"attempt", attempt, "max_attempts", e.meaningRetries, "error", err)
			continue
		}

		chunks, err := tripletsToChunks(triplets, focusChunks)
		if err != nil {
			lastErr = err
			slog.Warn("Meaning chunk triplets malformed, retrying",
				"attempt", attempt, "max_attempts", e.meaningRetries, "error", err)
			continue
		}
		return chunks, nil
	}
	return nil, fmt.Errorf("meaning chunking failed after %d attempts: %w", e.meaningRetries, lastErr)
}

// IngestMeaningChunks stores meaning chunks for a video.
func (e *Engine) IngestMeaningChunks(ctx context.Context, videoID int, chunks []RawChunk) error {
	return e.save(ctx, videoID, models.ChunkTypeMeaning, chunks)
}

func (e *Engine) save(ctx context.Context, videoID int, chunkType string, chunks []RawChunk) error {
	stored := make([]vectorstore.Chunk, 0, len(chunks))
	for _, c := range chunks {
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		stored = append(stored, vectorstore.Chunk{
			Content: c.Text,
			Meta: map[string]any{
				"chunk_type":               chunkType,
				"is_focus_zone":            c.IsFocusZone,
				"start_time":               c.Start,
				"end_time":                 c.End,
				"avg_watch_ratio":          c.AvgWatchRatio,
				"avg_relative_performance": c.AvgRelativePerformance,
			},
		})
	}
	// Transcript chunks live under the viewer-escape source keyed by video,
	// apart from the report-keyed summary prose.
	return e.store.SaveChunks(ctx, models.SourceViewerEscapeAnalysis, videoID, stored)
}

func tripletsToChunks(triplets [][]json.RawMessage, raw []RawChunk) ([]RawChunk, error) {
	chunks := make([]RawChunk, 0, len(triplets))
	for i, t := range triplets {
		if len(t) != 3 {
			return nil, fmt.Errorf("triplet %d has %d elements, want 3", i, len(t))
		}

		var (
			text       string
			start, end float64
		)
		if err := json.Unmarshal(t[0], &text); err != nil {
			return nil, fmt.Errorf("triplet %d text: %w", i, err)
		}
		if err := json.Unmarshal(t[1], &start); err != nil {
			return nil, fmt.Errorf("triplet %d start: %w", i, err)
		}
		if err := json.Unmarshal(t[2], &end); err != nil {
			return nil, fmt.Errorf("triplet %d end: %w", i, err)
		}

		avgWatch, avgRel, inFocus := coverMetrics(raw, start, end)
		chunks = append(chunks, RawChunk{
			Text:                   text,
			Start:                  start,
			End:                    end,
			IsFocusZone:            inFocus,
			AvgWatchRatio:          avgWatch,
			AvgRelativePerformance: avgRel,
		})
	}
	return chunks, nil
}

// coverMetrics averages the retention metrics of raw chunks overlapping
// [start, end).
func coverMetrics(raw []RawChunk, start, end float64) (avgWatch, avgRel float64, inFocus bool) {
	var n int
	for _, c := range raw {
		if c.Start >= end || c.End <= start {
			continue
		}
		avgWatch += c.AvgWatchRatio
		avgRel += c.AvgRelativePerformance
		inFocus = inFocus || c.IsFocusZone
		n++
	}
	if n > 0 {
		avgWatch /= float64(n)
		avgRel /= float64(n)
	}
	return avgWatch, avgRel, inFocus
}
