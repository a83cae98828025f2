package chunking

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/channeling-app/reportpipe/pkg/models"
	"github.com/channeling-app/reportpipe/pkg/vectorstore"
)

func TestParamsFor(t *testing.T) {
	// Short video: every parameter floors.
	p := ParamsFor(5)
	assert.Equal(t, 7.0, p.BaseChunk)
	assert.Equal(t, 5.0, p.FocusChunk)
	assert.Equal(t, 10.0, p.FocusWindow)

	// 1000s video: proportional sizing.
	p = ParamsFor(1000)
	assert.Equal(t, 20.0, p.BaseChunk)
	assert.Equal(t, 6.0, p.FocusChunk)
	assert.Equal(t, 40.0, p.FocusWindow)

	// Very long video: focus chunk and window cap.
	p = ParamsFor(100000)
	assert.Equal(t, 2000.0, p.BaseChunk)
	assert.Equal(t, 60.0, p.FocusChunk)
	assert.Equal(t, 300.0, p.FocusWindow)
}

func TestWorstDropRatio(t *testing.T) {
	rows := []models.RetentionRow{
		{ElapsedRatio: 0.00, AudienceWatchRatio: 1.00},
		{ElapsedRatio: 0.10, AudienceWatchRatio: 0.95},
		{ElapsedRatio: 0.20, AudienceWatchRatio: 0.60},
		{ElapsedRatio: 0.30, AudienceWatchRatio: 0.55},
	}
	assert.Equal(t, 0.20, WorstDropRatio(rows))
}

func TestWorstDropRatioIgnoresOutro(t *testing.T) {
	rows := []models.RetentionRow{
		{ElapsedRatio: 0.00, AudienceWatchRatio: 1.00},
		{ElapsedRatio: 0.50, AudienceWatchRatio: 0.90},
		// The end-of-video cliff must not win.
		{ElapsedRatio: 0.96, AudienceWatchRatio: 0.10},
	}
	assert.Equal(t, 0.50, WorstDropRatio(rows))
}

func TestWorstDropRatioEmpty(t *testing.T) {
	assert.Equal(t, 0.0, WorstDropRatio(nil))
	assert.Equal(t, 0.0, WorstDropRatio([]models.RetentionRow{{ElapsedRatio: 0.5}}))
}

func TestBuildTimeChunksShortVideo(t *testing.T) {
	segments := []models.TranscriptSegment{
		{Text: "hello", StartTime: 0, EndTime: 5},
	}

	chunks := BuildTimeChunks(segments, nil, 5, 0)
	require.Len(t, chunks, 1)
	assert.Equal(t, "hello", chunks[0].Text)
	assert.Equal(t, 0.0, chunks[0].Start)
	assert.Equal(t, 5.0, chunks[0].End)
}

func TestBuildTimeChunksFocusWindow(t *testing.T) {
	var segments []models.TranscriptSegment
	for i := 0; i < 100; i++ {
		segments = append(segments, models.TranscriptSegment{
			Text:      "seg",
			StartTime: float64(i * 10),
			EndTime:   float64(i*10 + 10),
		})
	}
	retention := []models.RetentionRow{
		{ElapsedRatio: 0.45, AudienceWatchRatio: 0.8, RelativePerformance: 1.1},
		{ElapsedRatio: 0.55, AudienceWatchRatio: 0.6, RelativePerformance: 0.9},
	}

	// L=1000: base 20s, focus 6s, window 40s centered on 500s.
	chunks := BuildTimeChunks(segments, retention, 1000, 0.5)
	require.NotEmpty(t, chunks)

	var focus []RawChunk
	for _, c := range chunks {
		if c.IsFocusZone {
			focus = append(focus, c)
			assert.Equal(t, 6.0, c.End-c.Start)
			assert.GreaterOrEqual(t, c.Start, 480.0)
			assert.Less(t, c.Start, 520.0)
		}
	}
	assert.NotEmpty(t, focus)

	// Coverage is gapless from 0 to L.
	assert.Equal(t, 0.0, chunks[0].Start)
	assert.Equal(t, 1000.0, chunks[len(chunks)-1].End)
	for i := 1; i < len(chunks); i++ {
		assert.Equal(t, chunks[i-1].End, chunks[i].Start)
	}
}

func TestBuildTimeChunksZeroLength(t *testing.T) {
	assert.Nil(t, BuildTimeChunks(nil, nil, 0, 0.5))
}

func TestTextInWindowBinarySearch(t *testing.T) {
	segments := []models.TranscriptSegment{
		{Text: "a", StartTime: 0, EndTime: 10},
		{Text: "b", StartTime: 10, EndTime: 20},
		{Text: "c", StartTime: 20, EndTime: 30},
	}

	assert.Equal(t, "a", textInWindow(segments, 0, 10))
	assert.Equal(t, "a b", textInWindow(segments, 5, 15))
	assert.Equal(t, "b c", textInWindow(segments, 10, 30))
	assert.Equal(t, "", textInWindow(segments, 100, 110))
	assert.Equal(t, "", textInWindow(nil, 0, 10))
}

type fakeChunkStore struct {
	saved  map[string][]vectorstore.Chunk
	exists bool
}

func newFakeChunkStore() *fakeChunkStore {
	return &fakeChunkStore{saved: make(map[string][]vectorstore.Chunk)}
}

func (f *fakeChunkStore) SaveChunks(_ context.Context, sourceType models.SourceType, sourceID int, chunks []vectorstore.Chunk) error {
	f.saved[string(sourceType)] = append(f.saved[string(sourceType)], chunks...)
	return nil
}

func (f *fakeChunkStore) HasChunks(context.Context, int, string) (bool, error) {
	return f.exists, nil
}

type fakeCompleter struct {
	responses []string
	calls     int
}

func (f *fakeCompleter) CompleteJSON(_ context.Context, _, _ string, out any) (string, error) {
	resp := f.responses[f.calls]
	f.calls++
	if err := json.Unmarshal([]byte(resp), out); err != nil {
		return resp, err
	}
	return resp, nil
}

func TestIngestTimeChunksSkipsWhenAlreadyIngested(t *testing.T) {
	store := newFakeChunkStore()
	store.exists = true
	engine := NewEngine(store, nil, 4)

	ingested, err := engine.IngestTimeChunks(context.Background(), 7, []RawChunk{{Text: "x"}})
	require.NoError(t, err)
	assert.False(t, ingested)
	assert.Empty(t, store.saved)
}

func TestIngestTimeChunksWritesOnce(t *testing.T) {
	store := newFakeChunkStore()
	engine := NewEngine(store, nil, 4)

	ingested, err := engine.IngestTimeChunks(context.Background(), 7, []RawChunk{
		{Text: "x", Start: 0, End: 7, AvgWatchRatio: 0.9},
		{Text: "   "},
	})
	require.NoError(t, err)
	assert.True(t, ingested)

	// Chunks land under the viewer-escape source, not the summary-prose one.
	assert.Empty(t, store.saved[string(models.SourceVideoSummary)])
	chunks := store.saved[string(models.SourceViewerEscapeAnalysis)]
	require.Len(t, chunks, 1)
	assert.Equal(t, models.ChunkTypeTime, chunks[0].Meta["chunk_type"])
	assert.Equal(t, 0.9, chunks[0].Meta["avg_watch_ratio"])
}

func TestMeaningChunksRetriesOnParseFailure(t *testing.T) {
	completer := &fakeCompleter{responses: []string{
		"not json",
		`[["grouped text", 10.0, 22.0]]`,
	}}
	engine := NewEngine(newFakeChunkStore(), completer, 4)

	focus := []RawChunk{
		{Text: "a", Start: 10, End: 16, IsFocusZone: true, AvgWatchRatio: 0.8, AvgRelativePerformance: 1.0},
		{Text: "b", Start: 16, End: 22, IsFocusZone: true, AvgWatchRatio: 0.6, AvgRelativePerformance: 0.8},
	}

	chunks, err := engine.MeaningChunks(context.Background(), focus)
	require.NoError(t, err)
	assert.Equal(t, 2, completer.calls)

	require.Len(t, chunks, 1)
	assert.Equal(t, "grouped text", chunks[0].Text)
	assert.Equal(t, 10.0, chunks[0].Start)
	assert.Equal(t, 22.0, chunks[0].End)
	assert.True(t, chunks[0].IsFocusZone)
	assert.InDelta(t, 0.7, chunks[0].AvgWatchRatio, 1e-9)
}

func TestMeaningChunksExhaustsBudget(t *testing.T) {
	completer := &fakeCompleter{responses: []string{"x", "y", "z", "w"}}
	engine := NewEngine(newFakeChunkStore(), completer, 4)

	_, err := engine.MeaningChunks(context.Background(), []RawChunk{{Text: "a", Start: 0, End: 5}})
	require.Error(t, err)
	assert.Equal(t, 4, completer.calls)
}

func TestMeaningChunksRejectsMalformedTriplet(t *testing.T) {
	completer := &fakeCompleter{responses: []string{
		`[["only text"]]`,
		`[["ok", 0.0, 5.0]]`,
	}}
	engine := NewEngine(newFakeChunkStore(), completer, 4)

	chunks, err := engine.MeaningChunks(context.Background(), []RawChunk{{Text: "a", Start: 0, End: 5}})
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "ok", chunks[0].Text)
}

func TestMeaningChunksEmptyFocus(t *testing.T) {
	engine := NewEngine(newFakeChunkStore(), nil, 4)
	chunks, err := engine.MeaningChunks(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, chunks)
}

func TestMeaningChunksCompleterError(t *testing.T) {
	var errCompleter fakeErrCompleter
	engine := NewEngine(newFakeChunkStore(), &errCompleter, 2)

	_, err := engine.MeaningChunks(context.Background(), []RawChunk{{Text: "a"}})
	require.Error(t, err)
	assert.Equal(t, 2, errCompleter.calls)
}

type fakeErrCompleter struct {
	calls int
}

func (f *fakeErrCompleter) CompleteJSON(context.Context, string, string, any) (string, error) {
	f.calls++
	return "", errors.New("llm unavailable")
}
