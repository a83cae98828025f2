package comments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/channeling-app/reportpipe/pkg/models"
	"github.com/channeling-app/reportpipe/pkg/youtube"
)

// scriptedCompleter classifies comments by keyword and answers summary
// requests with one summary line per bucket.
type scriptedCompleter struct {
	classifyErr  bool
	summaryCalls int
}

func (s *scriptedCompleter) Complete(_ context.Context, _, user string) (string, error) {
	if s.classifyErr {
		return "", errors.New("llm unavailable")
	}
	switch {
	case strings.Contains(user, "good"):
		return "1", nil
	case strings.Contains(user, "bad"):
		return "2", nil
	case strings.Contains(user, "advice"):
		return "4", nil
	}
	return "3", nil
}

func (s *scriptedCompleter) CompleteJSON(_ context.Context, _, user string, out any) (string, error) {
	s.summaryCalls++
	raw := fmt.Sprintf(`["summary %d"]`, s.summaryCalls)
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return raw, err
	}
	return raw, nil
}

func newTestPipeline(completer Completer) *Pipeline {
	return New(completer, 200, 0.1, 20, 2).WithRand(rand.New(rand.NewSource(1)))
}

func TestSampleSize(t *testing.T) {
	p := newTestPipeline(nil)

	tests := []struct {
		n       int
		size    int
		sampled bool
	}{
		{0, 0, false},
		{50, 50, false},
		{199, 199, false},
		{200, 20, true},
		{250, 25, true},
		{1000, 100, true},
	}
	for _, tc := range tests {
		size, sampled := p.SampleSize(tc.n)
		assert.Equal(t, tc.size, size, "n=%d", tc.n)
		assert.Equal(t, tc.sampled, sampled, "n=%d", tc.n)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	p := newTestPipeline(&scriptedCompleter{})

	breakdown, err := p.Analyze(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.False(t, breakdown.Sampled)
	assert.Empty(t, breakdown.Summaries)
	for _, typ := range models.CommentTypes {
		assert.Zero(t, breakdown.Counts[typ])
	}
}

func TestAnalyzeBelowThresholdClassifiesAll(t *testing.T) {
	completer := &scriptedCompleter{}
	p := newTestPipeline(completer)

	fetched := []youtube.FetchedComment{
		{Text: "good one"},
		{Text: "good two"},
		{Text: "bad one"},
		{Text: "advice here"},
		{Text: "whatever"},
	}

	breakdown, err := p.Analyze(context.Background(), 7, fetched)
	require.NoError(t, err)
	assert.False(t, breakdown.Sampled)

	assert.Equal(t, 2, breakdown.Counts[models.CommentPositive])
	assert.Equal(t, 1, breakdown.Counts[models.CommentNegative])
	assert.Equal(t, 1, breakdown.Counts[models.CommentNeutral])
	assert.Equal(t, 1, breakdown.Counts[models.CommentAdvice])

	// One summary call per non-empty bucket, one row each.
	assert.Equal(t, 4, completer.summaryCalls)
	require.Len(t, breakdown.Summaries, 4)
	for _, row := range breakdown.Summaries {
		assert.Equal(t, 7, row.ReportID)
		assert.NotEmpty(t, row.Content)
	}
}

func TestAnalyzeExtrapolatesToPopulation(t *testing.T) {
	completer := &scriptedCompleter{}
	p := newTestPipeline(completer)

	fetched := make([]youtube.FetchedComment, 500)
	for i := range fetched {
		if i%2 == 0 {
			fetched[i] = youtube.FetchedComment{Text: fmt.Sprintf("good %d", i)}
		} else {
			fetched[i] = youtube.FetchedComment{Text: fmt.Sprintf("bad %d", i)}
		}
	}

	breakdown, err := p.Analyze(context.Background(), 1, fetched)
	require.NoError(t, err)
	assert.True(t, breakdown.Sampled)

	var total int
	for _, typ := range models.CommentTypes {
		total += breakdown.Counts[typ]
	}
	assert.Equal(t, 500, total)

	// Only POSITIVE and NEGATIVE appear in the sample, so the draw can
	// never assign the other buckets.
	assert.Zero(t, breakdown.Counts[models.CommentNeutral])
	assert.Zero(t, breakdown.Counts[models.CommentAdvice])
	assert.Greater(t, breakdown.Counts[models.CommentPositive], 100)
	assert.Greater(t, breakdown.Counts[models.CommentNegative], 100)

	// Summaries come from the 50-comment sample, not the population.
	assert.Equal(t, 2, completer.summaryCalls)
}

// brokenSummaryCompleter classifies everything positive but never returns
// parsable summary JSON.
type brokenSummaryCompleter struct {
	jsonCalls int
}

func (b *brokenSummaryCompleter) Complete(context.Context, string, string) (string, error) {
	return "1", nil
}

func (b *brokenSummaryCompleter) CompleteJSON(context.Context, string, string, any) (string, error) {
	b.jsonCalls++
	return "", errors.New("response is not json")
}

func TestAnalyzeSummaryExhaustionDropsBucket(t *testing.T) {
	completer := &brokenSummaryCompleter{}
	p := newTestPipeline(completer)

	fetched := []youtube.FetchedComment{
		{Text: "good one"},
		{Text: "good two"},
		{Text: "good three"},
	}

	breakdown, err := p.Analyze(context.Background(), 1, fetched)
	require.NoError(t, err)

	// The counts survive; only the summary rows of the unparsable bucket
	// are dropped, after the full parse budget.
	assert.Equal(t, 3, breakdown.Counts[models.CommentPositive])
	assert.Empty(t, breakdown.Summaries)
	assert.Equal(t, 2, completer.jsonCalls)
}

// statelessCompleter is safe for concurrent use.
type statelessCompleter struct{}

func (statelessCompleter) Complete(context.Context, string, string) (string, error) {
	return "1", nil
}

func (statelessCompleter) CompleteJSON(_ context.Context, _, _ string, out any) (string, error) {
	raw := `["요약"]`
	return raw, json.Unmarshal([]byte(raw), out)
}

func TestAnalyzeConcurrentReports(t *testing.T) {
	p := New(statelessCompleter{}, 200, 0.1, 20, 1)

	fetched := make([]youtube.FetchedComment, 300)
	for i := range fetched {
		fetched[i] = youtube.FetchedComment{Text: fmt.Sprintf("good %d", i)}
	}

	var wg sync.WaitGroup
	for i := 1; i <= 4; i++ {
		wg.Add(1)
		go func(reportID int) {
			defer wg.Done()
			breakdown, err := p.Analyze(context.Background(), reportID, fetched)
			if !assert.NoError(t, err) {
				return
			}
			var total int
			for _, typ := range models.CommentTypes {
				total += breakdown.Counts[typ]
			}
			assert.Equal(t, 300, total)
		}(i)
	}
	wg.Wait()
}

func TestClassifyFallsBackToNeutral(t *testing.T) {
	p := newTestPipeline(&scriptedCompleter{classifyErr: true})
	assert.Equal(t, models.CommentNeutral, p.classify(context.Background(), "anything"))
}

type garbageCompleter struct{}

func (garbageCompleter) Complete(context.Context, string, string) (string, error) {
	return "definitely not a number", nil
}

func (garbageCompleter) CompleteJSON(context.Context, string, string, any) (string, error) {
	return "", errors.New("unused")
}

func TestClassifyNonNumericFallsBackToNeutral(t *testing.T) {
	p := newTestPipeline(garbageCompleter{})
	assert.Equal(t, models.CommentNeutral, p.classify(context.Background(), "anything"))
}

func TestClassifyStripsCodeFence(t *testing.T) {
	p := newTestPipeline(fencedCompleter{})
	assert.Equal(t, models.CommentPositive, p.classify(context.Background(), "anything"))
}

type fencedCompleter struct{}

func (fencedCompleter) Complete(context.Context, string, string) (string, error) {
	return "```\n1\n```", nil
}

func (fencedCompleter) CompleteJSON(context.Context, string, string, any) (string, error) {
	return "", errors.New("unused")
}
