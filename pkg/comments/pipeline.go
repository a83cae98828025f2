// Package comments implements the sentiment pipeline: sample, classify,
// extrapolate, and summarize the comments of one video. Sampling bounds
// the LLM cost on high-comment videos while the weighted extrapolation
// keeps the reported counts representative of the full population.
package comments

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/channeling-app/reportpipe/pkg/llm"
	"github.com/channeling-app/reportpipe/pkg/models"
	"github.com/channeling-app/reportpipe/pkg/youtube"
)

// Completer is the LLM surface the pipeline depends on.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
	CompleteJSON(ctx context.Context, system, user string, out any) (string, error)
}

// Breakdown is the outcome of one comment analysis run.
type Breakdown struct {
	// Counts is the full-population sentiment composition: classified
	// sample counts plus weighted-draw assignments for unsampled comments.
	Counts map[models.CommentType]int
	// Summaries are the persistable per-emotion summary rows, built from
	// sampled comments only.
	Summaries []models.Comment
	// Sampled reports whether the population exceeded the threshold.
	Sampled bool
}

// Pipeline analyzes the comments of one video. Safe for concurrent use by
// multiple workers.
type Pipeline struct {
	llm       Completer
	threshold int
	rate      float64
	minimum   int
	retries   int

	// mu guards rng: one pipeline is shared across every step worker.
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a comment pipeline. threshold is the population size above
// which sampling kicks in, rate the sample fraction, minimum the sample
// size floor, retries the per-bucket summary parse budget.
func New(completer Completer, threshold int, rate float64, minimum, retries int) *Pipeline {
	if retries < 1 {
		retries = 1
	}
	return &Pipeline{
		llm:       completer,
		threshold: threshold,
		rate:      rate,
		minimum:   minimum,
		retries:   retries,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand replaces the random source. Tests use this for determinism.
func (p *Pipeline) WithRand(rng *rand.Rand) *Pipeline {
	p.rng = rng
	return p
}

// SampleSize returns how many comments out of n get classified, and
// whether that is a proper subset.
func (p *Pipeline) SampleSize(n int) (size int, sampled bool) {
	if n < p.threshold {
		return n, false
	}
	size = int(math.Floor(float64(n) * p.rate))
	if size < p.minimum {
		size = p.minimum
	}
	if size > n {
		size = n
	}
	return size, true
}

// Analyze runs the full pipeline over fetched comments and returns the
// sentiment breakdown for one report.
func (p *Pipeline) Analyze(ctx context.Context, reportID int, fetched []youtube.FetchedComment) (*Breakdown, error) {
	counts := make(map[models.CommentType]int, len(models.CommentTypes))
	for _, t := range models.CommentTypes {
		counts[t] = 0
	}

	breakdown := &Breakdown{Counts: counts}
	if len(fetched) == 0 {
		return breakdown, nil
	}

	size, sampled := p.SampleSize(len(fetched))
	breakdown.Sampled = sampled

	p.mu.Lock()
	sampleIdx := p.rng.Perm(len(fetched))[:size]
	p.mu.Unlock()

	buckets := make(map[models.CommentType][]string, len(models.CommentTypes))
	for _, idx := range sampleIdx {
		text := fetched[idx].Text
		emotion := p.classify(ctx, text)
		buckets[emotion] = append(buckets[emotion], text)
		counts[emotion]++
	}

	// Weighted-draw extrapolation over the unsampled remainder. Only the
	// counts extend to the full population; summarization sticks to the
	// sample, where content and label are actually linked.
	if unsampled := len(fetched) - size; unsampled > 0 {
		p.extrapolate(counts, size, unsampled)
	}

	now := time.Now().UTC()
	for _, emotion := range models.CommentTypes {
		bucket := buckets[emotion]
		if len(bucket) == 0 {
			continue
		}

		// Counts are already final at this point; a persistently
		// unparsable summary drops this bucket's rows and moves on.
		summaries, err := p.summarize(ctx, emotion, bucket)
		if err != nil {
			slog.Warn("Comment summarization unparsable, skipping bucket",
				"report_id", reportID, "emotion", emotion, "error", err)
			continue
		}
		for _, s := range summaries {
			breakdown.Summaries = append(breakdown.Summaries, models.Comment{
				ReportID:  reportID,
				Type:      emotion,
				Content:   s,
				CreatedAt: now,
			})
		}
	}

	slog.Info("Comment analysis finished",
		"report_id", reportID,
		"total", len(fetched),
		"sampled", size,
		"summary_rows", len(breakdown.Summaries))
	return breakdown, nil
}

// classify labels one comment. Any LLM or parse failure falls back to
// NEUTRAL rather than failing the pipeline.
func (p *Pipeline) classify(ctx context.Context, text string) models.CommentType {
	system, user := llm.ClassifyCommentPrompt(text)
	raw, err := p.llm.Complete(ctx, system, user)
	if err != nil {
		slog.Warn("Comment classification failed, defaulting to neutral", "error", err)
		return models.CommentNeutral
	}

	code, err := strconv.Atoi(strings.TrimSpace(llm.StripCodeFence(raw)))
	if err != nil {
		return models.CommentNeutral
	}
	return models.CommentTypeFromEmotionCode(code)
}

// extrapolate assigns an emotion to each unsampled comment by weighted
// random draw from the sampled distribution, updating counts in place.
func (p *Pipeline) extrapolate(counts map[models.CommentType]int, sampleSize, unsampled int) {
	cumulative := make([]float64, len(models.CommentTypes))
	var acc float64
	for i, t := range models.CommentTypes {
		acc += float64(counts[t]) / float64(sampleSize)
		cumulative[i] = acc
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := 0; i < unsampled; i++ {
		r := p.rng.Float64() * acc
		for j, bound := range cumulative {
			if r < bound || j == len(cumulative)-1 {
				counts[models.CommentTypes[j]]++
				break
			}
		}
	}
}

// summarize retries the per-bucket summary completion against the parse
// budget before giving up.
func (p *Pipeline) summarize(ctx context.Context, emotion models.CommentType, bucket []string) ([]string, error) {
	system, user := llm.EmotionSummaryPrompt(emotion, strings.Join(bucket, "\n"))

	var lastErr error
	for attempt := 1; attempt <= p.retries; attempt++ {
		var summaries []string
		if _, err := p.llm.CompleteJSON(ctx, system, user, &summaries); err != nil {
			lastErr = err
			continue
		}
		return summaries, nil
	}
	return nil, fmt.Errorf("summary unparsable after %d attempts: %w", p.retries, lastErr)
}
