package report

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/channeling-app/reportpipe/ent"
	"github.com/channeling-app/reportpipe/pkg/chunking"
	"github.com/channeling-app/reportpipe/pkg/comments"
	"github.com/channeling-app/reportpipe/pkg/config"
	"github.com/channeling-app/reportpipe/pkg/models"
	"github.com/channeling-app/reportpipe/pkg/services"
	"github.com/channeling-app/reportpipe/pkg/vectorstore"
	"github.com/channeling-app/reportpipe/pkg/youtube"
)

// --- fakes ---------------------------------------------------------------

type fakeLLM struct {
	completeOut   string
	completeErr   error
	completeCalls int

	jsonResponses []string
	jsonErr       error
	jsonCalls     int

	embedCalls int
}

func (f *fakeLLM) Complete(context.Context, string, string) (string, error) {
	f.completeCalls++
	return f.completeOut, f.completeErr
}

func (f *fakeLLM) CompleteJSON(_ context.Context, _, _ string, out any) (string, error) {
	f.jsonCalls++
	if f.jsonErr != nil {
		return "", f.jsonErr
	}
	raw := f.jsonResponses[0]
	if len(f.jsonResponses) > 1 {
		f.jsonResponses = f.jsonResponses[1:]
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return raw, err
	}
	return raw, nil
}

func (f *fakeLLM) Embed(context.Context, string) ([]float32, error) {
	f.embedCalls++
	return []float32{1, 0, 0}, nil
}

func (f *fakeLLM) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	vecs := make([][]float32, len(texts))
	for i := range vecs {
		vecs[i] = []float32{1, 0, 0}
	}
	return vecs, nil
}

type savedText struct {
	sourceType models.SourceType
	sourceID   int
	text       string
}

type searchQuery struct {
	sourceType models.SourceType
	sourceID   int
}

type fakeStore struct {
	saves         []savedText
	searches      []searchQuery
	searchResults []vectorstore.Result
}

func (f *fakeStore) SaveText(_ context.Context, sourceType models.SourceType, sourceID int, text string, _ map[string]any) error {
	f.saves = append(f.saves, savedText{sourceType, sourceID, text})
	return nil
}

func (f *fakeStore) SearchSimilar(_ context.Context, _ string, sourceType models.SourceType, sourceID, _ int) ([]vectorstore.Result, error) {
	f.searches = append(f.searches, searchQuery{sourceType, sourceID})
	return f.searchResults, nil
}

func (f *fakeStore) SearchSimilarByEmbedding(context.Context, []float32, models.SourceType, int, int, map[string]string) ([]vectorstore.Result, error) {
	return f.searchResults, nil
}

func (f *fakeStore) savesOf(sourceType models.SourceType) []savedText {
	var out []savedText
	for _, s := range f.saves {
		if s.sourceType == sourceType {
			out = append(out, s)
		}
	}
	return out
}

type fakeData struct {
	details     *models.VideoDetails
	stats       *models.ChannelStats
	comments    []youtube.FetchedComment
	commentsErr error
	popular     []models.PopularVideo
}

func (f *fakeData) VideoDetails(context.Context, string) (*models.VideoDetails, error) {
	return f.details, nil
}

func (f *fakeData) ChannelStats(context.Context, string) (*models.ChannelStats, error) {
	return f.stats, nil
}

func (f *fakeData) Comments(context.Context, string, int) ([]youtube.FetchedComment, error) {
	return f.comments, f.commentsErr
}

func (f *fakeData) PopularByCategory(context.Context, string, int) ([]models.PopularVideo, error) {
	return f.popular, nil
}

type fakeAnalytics struct {
	overview       *models.VideoAnalytics
	retention      []models.RetentionRow
	retentionErr   error
	retentionCalls int
}

func (f *fakeAnalytics) VideoOverview(context.Context, string, string, time.Time) (*models.VideoAnalytics, error) {
	return f.overview, nil
}

func (f *fakeAnalytics) RetentionCurve(context.Context, string, string, time.Time) ([]models.RetentionRow, error) {
	f.retentionCalls++
	return f.retention, f.retentionErr
}

type fakeTranscript struct {
	segments []models.TranscriptSegment
	err      error
}

func (f *fakeTranscript) Segments(context.Context, string) ([]models.TranscriptSegment, error) {
	return f.segments, f.err
}

type fakeTrends struct {
	trends []models.Trend
}

func (f *fakeTrends) Realtime(context.Context) ([]models.Trend, error) {
	return f.trends, nil
}

type fakeReports struct {
	report *ent.Report
	getErr error

	summaryTitle  string
	summary       string
	metrics       *services.Metrics
	emotionCounts map[models.CommentType]int
	leaveAnalyze  string
	optimization  string

	waitSummary string
	waitOK      bool
}

func (f *fakeReports) Get(context.Context, int) (*ent.Report, error) {
	return f.report, f.getErr
}

func (f *fakeReports) UpdateSummary(_ context.Context, _ int, title, summary string) error {
	f.summaryTitle, f.summary = title, summary
	return nil
}

func (f *fakeReports) UpdateMetrics(_ context.Context, _ int, m services.Metrics) error {
	f.metrics = &m
	return nil
}

func (f *fakeReports) UpdateEmotionCounts(_ context.Context, _ int, counts map[models.CommentType]int) error {
	f.emotionCounts = counts
	return nil
}

func (f *fakeReports) UpdateLeaveAnalyze(_ context.Context, _ int, text string) error {
	f.leaveAnalyze = text
	return nil
}

func (f *fakeReports) UpdateOptimization(_ context.Context, _ int, text string) error {
	f.optimization = text
	return nil
}

func (f *fakeReports) WaitForSummary(context.Context, int, int, time.Duration) (string, bool) {
	return f.waitSummary, f.waitOK
}

type markedStep struct {
	taskID    int
	step      models.Step
	succeeded bool
}

type fakeTasks struct {
	marks []markedStep
}

func (f *fakeTasks) MarkStep(_ context.Context, taskID int, step models.Step, succeeded bool) error {
	f.marks = append(f.marks, markedStep{taskID, step, succeeded})
	return nil
}

type fakeVideos struct {
	video      *ent.Video
	getErr     error
	byChannel  []*ent.Video
	byCategory []*ent.Video
}

func (f *fakeVideos) Get(context.Context, int) (*ent.Video, error) {
	return f.video, f.getErr
}

func (f *fakeVideos) ListByChannel(context.Context, int) ([]*ent.Video, error) {
	return f.byChannel, nil
}

func (f *fakeVideos) ListByCategory(context.Context, string) ([]*ent.Video, error) {
	return f.byCategory, nil
}

type fakeChannels struct {
	channel *ent.Channel
}

func (f *fakeChannels) Get(context.Context, int) (*ent.Channel, error) {
	if f.channel == nil {
		return nil, errors.New("channel not found")
	}
	return f.channel, nil
}

type fakeComments struct {
	created []models.Comment
}

func (f *fakeComments) CreateBulk(_ context.Context, rows []models.Comment) error {
	f.created = append(f.created, rows...)
	return nil
}

type fakeIdeas struct {
	channelID int
	drafts    []models.IdeaDraft
	calls     int
}

func (f *fakeIdeas) CreateBulk(_ context.Context, channelID int, drafts []models.IdeaDraft) error {
	f.calls++
	f.channelID = channelID
	f.drafts = drafts
	return nil
}

type fakeKeywords struct {
	realtime []models.ScoredKeyword
	channel  []models.ScoredKeyword
}

func (f *fakeKeywords) SaveRealtime(_ context.Context, _ int, keywords []models.ScoredKeyword) error {
	f.realtime = keywords
	return nil
}

func (f *fakeKeywords) SaveChannel(_ context.Context, _ int, keywords []models.ScoredKeyword) error {
	f.channel = keywords
	return nil
}

type fakeSentiments struct {
	fetched   []youtube.FetchedComment
	breakdown *comments.Breakdown
}

func (f *fakeSentiments) Analyze(_ context.Context, _ int, fetched []youtube.FetchedComment) (*comments.Breakdown, error) {
	f.fetched = fetched
	if f.breakdown != nil {
		return f.breakdown, nil
	}
	counts := make(map[models.CommentType]int)
	for _, t := range models.CommentTypes {
		counts[t] = 0
	}
	return &comments.Breakdown{Counts: counts}, nil
}

type fakeChunker struct {
	timeChunks    []chunking.RawChunk
	timeCalls     int
	meaning       []chunking.RawChunk
	meaningErr    error
	meaningSaved  []chunking.RawChunk
	meaningCalls  int
	meaningSaves  int
	meaningResult []chunking.RawChunk
}

func (f *fakeChunker) IngestTimeChunks(_ context.Context, _ int, chunks []chunking.RawChunk) (bool, error) {
	f.timeCalls++
	f.timeChunks = chunks
	return true, nil
}

func (f *fakeChunker) MeaningChunks(_ context.Context, focus []chunking.RawChunk) ([]chunking.RawChunk, error) {
	f.meaningCalls++
	f.meaning = focus
	return f.meaningResult, f.meaningErr
}

func (f *fakeChunker) IngestMeaningChunks(_ context.Context, _ int, chunks []chunking.RawChunk) error {
	f.meaningSaves++
	f.meaningSaved = chunks
	return nil
}

// --- fixtures ------------------------------------------------------------

type fixture struct {
	h *Handlers

	llm        *fakeLLM
	store      *fakeStore
	data       *fakeData
	analytics  *fakeAnalytics
	transcript *fakeTranscript
	trends     *fakeTrends
	reports    *fakeReports
	tasks      *fakeTasks
	videos     *fakeVideos
	channels   *fakeChannels
	comments   *fakeComments
	ideas      *fakeIdeas
	keywords   *fakeKeywords
	sentiments *fakeSentiments
	chunker    *fakeChunker
}

func newFixture() *fixture {
	f := &fixture{
		llm: &fakeLLM{completeOut: "생성된 분석 텍스트"},
		store: &fakeStore{
			searchResults: []vectorstore.Result{{Content: "근거 청크"}},
		},
		data: &fakeData{
			details: &models.VideoDetails{
				Title:       "영상 제목",
				Description: "영상 설명",
				PublishedAt: "2026-08-01T00:00:00Z",
				Duration:    "PT10M",
			},
			stats:   &models.ChannelStats{SubscriberCount: 1000, ViewCount: 50000, VideoCount: 20},
			popular: []models.PopularVideo{{Title: "인기1", ChannelTitle: "ch"}, {Title: "인기2", ChannelTitle: "ch"}},
		},
		analytics: &fakeAnalytics{
			overview: &models.VideoAnalytics{Views: 10000, AverageViewDuration: 300, Likes: 300, Shares: 50, SubscribersGained: 50},
			retention: []models.RetentionRow{
				{ElapsedRatio: 0.0, AudienceWatchRatio: 1.0, RelativePerformance: 1.0},
				{ElapsedRatio: 0.5, AudienceWatchRatio: 0.5, RelativePerformance: 0.8},
			},
		},
		transcript: &fakeTranscript{
			segments: []models.TranscriptSegment{{Text: "자막 내용", StartTime: 0, EndTime: 600}},
		},
		trends:     &fakeTrends{trends: []models.Trend{{Keyword: "트렌드1", SearchVolume: 5000}, {Keyword: "트렌드2", SearchVolume: 100}}},
		reports:    &fakeReports{report: &ent.Report{ID: 1, VideoID: 10}},
		tasks:      &fakeTasks{},
		channels:   &fakeChannels{channel: &ent.Channel{ID: 5, YoutubeChannelID: "UC1", Concept: "요리", Target: "20대"}},
		comments:   &fakeComments{},
		ideas:      &fakeIdeas{},
		keywords:   &fakeKeywords{},
		sentiments: &fakeSentiments{},
		chunker:    &fakeChunker{},
	}
	f.videos = &fakeVideos{
		video: &ent.Video{
			ID:             10,
			ChannelID:      5,
			YoutubeVideoID: "yt-1",
			VideoCategory:  "22",
			Title:          "영상 제목",
			Description:    "영상 설명",
			View:           10000,
			LikeCount:      300,
			CommentCount:   12,
		},
	}

	f.h = New(Deps{
		Config: config.PipelineConfig{
			CommentCap:       1000,
			RetentionRetries: 3,
			JSONParseRetries: 2,
		},
		Reports:    f.reports,
		Tasks:      f.tasks,
		Videos:     f.videos,
		Channels:   f.channels,
		Comments:   f.comments,
		Ideas:      f.ideas,
		Keywords:   f.keywords,
		LLM:        f.llm,
		Store:      f.store,
		Chunker:    f.chunker,
		Sentiments: f.sentiments,
		Data:       f.data,
		Analytics:  f.analytics,
		Transcript: f.transcript,
		Trends:     f.trends,
	})
	f.h.retentionBackoff = 0
	return f
}

func testMessage(step models.Step) models.StepMessage {
	return models.StepMessage{
		TaskID:            3,
		ReportID:          1,
		Step:              step,
		GoogleAccessToken: "token",
		Timestamp:         time.Now(),
	}
}

// --- overview ------------------------------------------------------------

func TestOverviewHappyPath(t *testing.T) {
	f := newFixture()
	f.data.comments = []youtube.FetchedComment{{Text: "댓글"}}
	f.sentiments.breakdown = &comments.Breakdown{
		Counts: map[models.CommentType]int{
			models.CommentPositive: 3,
			models.CommentNegative: 1,
			models.CommentNeutral:  1,
			models.CommentAdvice:   0,
		},
		Summaries: []models.Comment{{ReportID: 1, Type: models.CommentPositive, Content: "좋아요 많음"}},
	}

	err := f.h.Overview(context.Background(), testMessage(models.StepOverview))
	require.NoError(t, err)

	// Summary persisted on the report and in the vector store.
	assert.Equal(t, "영상 제목", f.reports.summaryTitle)
	assert.Equal(t, "생성된 분석 텍스트", f.reports.summary)
	summarySaves := f.store.savesOf(models.SourceVideoSummary)
	require.Len(t, summarySaves, 1)
	assert.Equal(t, 1, summarySaves[0].sourceID)

	// Comment breakdown persisted.
	assert.Equal(t, 3, f.reports.emotionCounts[models.CommentPositive])
	require.Len(t, f.comments.created, 1)
	assert.Equal(t, "좋아요 많음", f.comments.created[0].Content)

	// Metrics written in one update; no siblings means full concept score.
	require.NotNil(t, f.reports.metrics)
	assert.Equal(t, int64(10000), f.reports.metrics.Views)
	assert.Equal(t, 100.0, f.reports.metrics.Concept)
	assert.Greater(t, f.reports.metrics.SEO, 0.0)

	assert.Equal(t, []markedStep{{3, models.StepOverview, true}}, f.tasks.marks)
}

func TestOverviewNoTranscript(t *testing.T) {
	f := newFixture()
	f.transcript.segments = nil

	err := f.h.Overview(context.Background(), testMessage(models.StepOverview))
	require.NoError(t, err)

	assert.Equal(t, youtube.NoTranscriptPlaceholder, f.reports.summary)
	assert.Empty(t, f.store.savesOf(models.SourceVideoSummary))
	assert.Zero(t, f.llm.completeCalls)
	assert.Equal(t, []markedStep{{3, models.StepOverview, true}}, f.tasks.marks)
}

func TestOverviewCommentsDisabled(t *testing.T) {
	f := newFixture()
	f.data.commentsErr = &youtube.APIError{StatusCode: 403, Message: "commentsDisabled"}

	err := f.h.Overview(context.Background(), testMessage(models.StepOverview))
	require.NoError(t, err)

	assert.Nil(t, f.sentiments.fetched)
	assert.Zero(t, f.reports.emotionCounts[models.CommentPositive])
	assert.Equal(t, []markedStep{{3, models.StepOverview, true}}, f.tasks.marks)
}

func TestOverviewSubphaseFailureFailsAxis(t *testing.T) {
	f := newFixture()
	f.transcript.err = errors.New("transcript service down")

	err := f.h.Overview(context.Background(), testMessage(models.StepOverview))
	require.Error(t, err)
	assert.Equal(t, []markedStep{{3, models.StepOverview, false}}, f.tasks.marks)
}

func TestOverviewMissingReportDropsSilently(t *testing.T) {
	f := newFixture()
	f.reports.report = nil
	f.reports.getErr = errors.New("report not found")

	err := f.h.Overview(context.Background(), testMessage(models.StepOverview))
	require.NoError(t, err)
	assert.Empty(t, f.tasks.marks)
}

func TestOverviewSkipVectorSave(t *testing.T) {
	f := newFixture()

	msg := testMessage(models.StepOverview)
	msg.SkipVectorSave = true
	require.NoError(t, f.h.Overview(context.Background(), msg))

	assert.Empty(t, f.store.saves)
	assert.Equal(t, "생성된 분석 텍스트", f.reports.summary)
}

// --- analysis ------------------------------------------------------------

func TestAnalysisHappyPath(t *testing.T) {
	f := newFixture()
	f.chunker.meaningResult = []chunking.RawChunk{{Text: "의미 청크", Start: 280, End: 320}}

	err := f.h.Analysis(context.Background(), testMessage(models.StepAnalysis))
	require.NoError(t, err)

	// Both chunking passes ran against the video.
	assert.Equal(t, 1, f.chunker.timeCalls)
	assert.NotEmpty(t, f.chunker.timeChunks)
	assert.Equal(t, 1, f.chunker.meaningCalls)
	assert.Equal(t, 1, f.chunker.meaningSaves)
	assert.Equal(t, f.chunker.meaningResult, f.chunker.meaningSaved)

	// Only focus-zone chunks reach the meaning pass.
	for _, c := range f.chunker.meaning {
		assert.True(t, c.IsFocusZone)
	}

	// Retention grounding retrieves transcript chunks keyed by the video,
	// never the report-keyed summary prose.
	require.NotEmpty(t, f.store.searches)
	for _, q := range f.store.searches {
		assert.NotEqual(t, models.SourceVideoSummary, q.sourceType)
	}
	assert.Equal(t, searchQuery{models.SourceViewerEscapeAnalysis, 10}, f.store.searches[0])

	// Prose written to the report and mirrored into the vector store.
	assert.Equal(t, "생성된 분석 텍스트", f.reports.leaveAnalyze)
	assert.Equal(t, "생성된 분석 텍스트", f.reports.optimization)
	assert.Len(t, f.store.savesOf(models.SourceViewerEscapeAnalysis), 1)
	assert.Len(t, f.store.savesOf(models.SourceAlgorithmOptimization), 1)

	assert.Equal(t, []markedStep{{3, models.StepAnalysis, true}}, f.tasks.marks)
}

func TestAnalysisRetentionExhaustionDegrades(t *testing.T) {
	f := newFixture()
	f.analytics.retention = nil
	f.analytics.retentionErr = &youtube.APIError{StatusCode: 503, Message: "backend error"}

	err := f.h.Analysis(context.Background(), testMessage(models.StepAnalysis))
	require.NoError(t, err)

	assert.Equal(t, 3, f.analytics.retentionCalls)
	assert.Equal(t, RetentionFailurePlaceholder, f.reports.leaveAnalyze)

	// The optimization sub-phase still ran and the axis completed.
	assert.Equal(t, "생성된 분석 텍스트", f.reports.optimization)
	assert.Equal(t, []markedStep{{3, models.StepAnalysis, true}}, f.tasks.marks)
}

func TestAnalysisAuthErrorFailsWithoutRetry(t *testing.T) {
	f := newFixture()
	f.analytics.retention = nil
	f.analytics.retentionErr = &youtube.APIError{StatusCode: 401, Message: "invalid token"}

	err := f.h.Analysis(context.Background(), testMessage(models.StepAnalysis))
	require.Error(t, err)

	assert.Equal(t, 1, f.analytics.retentionCalls)
	assert.Empty(t, f.reports.leaveAnalyze)
	assert.Equal(t, []markedStep{{3, models.StepAnalysis, false}}, f.tasks.marks)
}

func TestAnalysisMeaningFailureIsNotTerminal(t *testing.T) {
	f := newFixture()
	f.chunker.meaningErr = errors.New("meaning chunking failed after 4 attempts")

	err := f.h.Analysis(context.Background(), testMessage(models.StepAnalysis))
	require.NoError(t, err)

	assert.Zero(t, f.chunker.meaningSaves)
	assert.Equal(t, "생성된 분석 텍스트", f.reports.leaveAnalyze)
	assert.Equal(t, []markedStep{{3, models.StepAnalysis, true}}, f.tasks.marks)
}

func TestAnalysisSkipVectorSave(t *testing.T) {
	f := newFixture()
	f.chunker.meaningResult = []chunking.RawChunk{{Text: "의미 청크"}}

	msg := testMessage(models.StepAnalysis)
	msg.SkipVectorSave = true
	require.NoError(t, f.h.Analysis(context.Background(), msg))

	assert.Zero(t, f.chunker.timeCalls)
	assert.Zero(t, f.chunker.meaningSaves)
	assert.Empty(t, f.store.saves)

	// Analysis prose is still produced and persisted on the report.
	assert.Equal(t, "생성된 분석 텍스트", f.reports.leaveAnalyze)
	assert.Equal(t, "생성된 분석 텍스트", f.reports.optimization)
}

// --- idea ----------------------------------------------------------------

func TestIdeaHappyPath(t *testing.T) {
	f := newFixture()
	f.reports.waitSummary = "요약"
	f.reports.waitOK = true
	f.llm.jsonResponses = []string{
		`[{"keyword": "트렌드1", "score": 80}, {"keyword": "트렌드2", "score": 35}]`,
		`[{"keyword": "쇼츠", "score": 90}]`,
		`[{"title": "아이디어1", "description": "설명1", "tags": ["태그"]}]`,
	}

	err := f.h.Idea(context.Background(), testMessage(models.StepIdea))
	require.NoError(t, err)

	// Both keyword sets stored, realtime with its LLM suitability scores.
	require.Len(t, f.keywords.realtime, 2)
	assert.Equal(t, models.ScoredKeyword{Keyword: "트렌드1", Score: 80}, f.keywords.realtime[0])
	require.Len(t, f.keywords.channel, 1)
	assert.Equal(t, "쇼츠", f.keywords.channel[0].Keyword)
	assert.Len(t, f.store.savesOf(models.SourcePersonalizedKeywords), 1)

	// One idea chunk per popular video, keyed by the source video.
	popularSaves := f.store.savesOf(models.SourceIdeaRecommendation)
	require.Len(t, popularSaves, 2)
	assert.Equal(t, 10, popularSaves[0].sourceID)

	// Drafts persisted under the channel.
	assert.Equal(t, 1, f.ideas.calls)
	assert.Equal(t, 5, f.ideas.channelID)
	require.Len(t, f.ideas.drafts, 1)
	assert.Equal(t, "아이디어1", f.ideas.drafts[0].Title)

	assert.Equal(t, []markedStep{{3, models.StepIdea, true}}, f.tasks.marks)
}

func TestIdeaParseExhaustionDegrades(t *testing.T) {
	f := newFixture()
	f.llm.jsonErr = errors.New("response is not json")

	err := f.h.Idea(context.Background(), testMessage(models.StepIdea))
	require.NoError(t, err)

	// Scoring, curation, and generation each burn the full parse budget.
	assert.Equal(t, 6, f.llm.jsonCalls)

	// The realtime set is still stored with volume-derived scores; the
	// channel set and ideas degrade.
	require.Len(t, f.keywords.realtime, 2)
	assert.Equal(t, models.ScoredKeyword{Keyword: "트렌드1", Score: 100}, f.keywords.realtime[0])
	assert.Equal(t, models.ScoredKeyword{Keyword: "트렌드2", Score: 2}, f.keywords.realtime[1])
	assert.Empty(t, f.keywords.channel)
	assert.Empty(t, f.store.savesOf(models.SourcePersonalizedKeywords))
	assert.Zero(t, f.ideas.calls)

	assert.Equal(t, []markedStep{{3, models.StepIdea, true}}, f.tasks.marks)
}

func TestIdeaKeywordScoresClampedToRange(t *testing.T) {
	f := newFixture()
	f.llm.jsonResponses = []string{
		`[{"keyword": "트렌드1", "score": 150}, {"keyword": "트렌드2", "score": -5}]`,
		`[{"keyword": "쇼츠", "score": 120}]`,
		`[]`,
	}

	err := f.h.Idea(context.Background(), testMessage(models.StepIdea))
	require.NoError(t, err)

	require.Len(t, f.keywords.realtime, 2)
	assert.Equal(t, 100, f.keywords.realtime[0].Score)
	assert.Equal(t, 0, f.keywords.realtime[1].Score)
	require.Len(t, f.keywords.channel, 1)
	assert.Equal(t, 100, f.keywords.channel[0].Score)
}

func TestIdeaMissingChannelDropsSilently(t *testing.T) {
	f := newFixture()
	f.channels.channel = nil

	err := f.h.Idea(context.Background(), testMessage(models.StepIdea))
	require.NoError(t, err)
	assert.Empty(t, f.tasks.marks)
}
