// Package report implements the three step handlers dispatched from the
// message bus: overview, analysis, and idea. Handlers share a preamble
// that resolves the report and video rows and a finalizer that flips the
// step's task axis.
package report

import (
	"context"
	"time"

	"github.com/channeling-app/reportpipe/ent"
	"github.com/channeling-app/reportpipe/pkg/chunking"
	"github.com/channeling-app/reportpipe/pkg/comments"
	"github.com/channeling-app/reportpipe/pkg/config"
	"github.com/channeling-app/reportpipe/pkg/llm"
	"github.com/channeling-app/reportpipe/pkg/models"
	"github.com/channeling-app/reportpipe/pkg/services"
	"github.com/channeling-app/reportpipe/pkg/trends"
	"github.com/channeling-app/reportpipe/pkg/vectorstore"
	"github.com/channeling-app/reportpipe/pkg/youtube"
)

// LLM is the completion and embedding surface the handlers depend on.
type LLM interface {
	Complete(ctx context.Context, system, user string) (string, error)
	CompleteJSON(ctx context.Context, system, user string, out any) (string, error)
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorStore is the chunk persistence and retrieval surface.
type VectorStore interface {
	SaveText(ctx context.Context, sourceType models.SourceType, sourceID int, text string, meta map[string]any) error
	SearchSimilar(ctx context.Context, query string, sourceType models.SourceType, sourceID, limit int) ([]vectorstore.Result, error)
	SearchSimilarByEmbedding(ctx context.Context, embedding []float32, sourceType models.SourceType, sourceID, limit int, metaFilter map[string]string) ([]vectorstore.Result, error)
}

// DataAPI is the YouTube Data v3 surface.
type DataAPI interface {
	VideoDetails(ctx context.Context, videoID string) (*models.VideoDetails, error)
	ChannelStats(ctx context.Context, channelID string) (*models.ChannelStats, error)
	Comments(ctx context.Context, videoID string, limit int) ([]youtube.FetchedComment, error)
	PopularByCategory(ctx context.Context, categoryID string, n int) ([]models.PopularVideo, error)
}

// AnalyticsAPI is the YouTube Analytics v2 surface.
type AnalyticsAPI interface {
	VideoOverview(ctx context.Context, accessToken, videoID string, publishedAt time.Time) (*models.VideoAnalytics, error)
	RetentionCurve(ctx context.Context, accessToken, videoID string, publishedAt time.Time) ([]models.RetentionRow, error)
}

// TranscriptAPI fetches structured captions.
type TranscriptAPI interface {
	Segments(ctx context.Context, videoID string) ([]models.TranscriptSegment, error)
}

// TrendFeed fetches the realtime trending searches.
type TrendFeed interface {
	Realtime(ctx context.Context) ([]models.Trend, error)
}

// ReportRepo is the report persistence surface.
type ReportRepo interface {
	Get(ctx context.Context, id int) (*ent.Report, error)
	UpdateSummary(ctx context.Context, id int, title, summary string) error
	UpdateMetrics(ctx context.Context, id int, m services.Metrics) error
	UpdateEmotionCounts(ctx context.Context, id int, counts map[models.CommentType]int) error
	UpdateLeaveAnalyze(ctx context.Context, id int, text string) error
	UpdateOptimization(ctx context.Context, id int, text string) error
	WaitForSummary(ctx context.Context, id, attempts int, interval time.Duration) (string, bool)
}

// TaskRepo advances task axes.
type TaskRepo interface {
	MarkStep(ctx context.Context, taskID int, step models.Step, succeeded bool) error
}

// VideoRepo reads video rows.
type VideoRepo interface {
	Get(ctx context.Context, id int) (*ent.Video, error)
	ListByChannel(ctx context.Context, channelID int) ([]*ent.Video, error)
	ListByCategory(ctx context.Context, category string) ([]*ent.Video, error)
}

// ChannelRepo reads channel rows.
type ChannelRepo interface {
	Get(ctx context.Context, id int) (*ent.Channel, error)
}

// CommentRepo persists comment summary rows.
type CommentRepo interface {
	CreateBulk(ctx context.Context, rows []models.Comment) error
}

// IdeaRepo persists generated ideas.
type IdeaRepo interface {
	CreateBulk(ctx context.Context, channelID int, drafts []models.IdeaDraft) error
}

// KeywordRepo persists trend keyword sets.
type KeywordRepo interface {
	SaveRealtime(ctx context.Context, reportID int, keywords []models.ScoredKeyword) error
	SaveChannel(ctx context.Context, reportID int, keywords []models.ScoredKeyword) error
}

// CommentAnalyzer runs the comment sentiment pipeline.
type CommentAnalyzer interface {
	Analyze(ctx context.Context, reportID int, fetched []youtube.FetchedComment) (*comments.Breakdown, error)
}

// Chunker runs the dual chunking passes.
type Chunker interface {
	IngestTimeChunks(ctx context.Context, videoID int, chunks []chunking.RawChunk) (bool, error)
	MeaningChunks(ctx context.Context, focusChunks []chunking.RawChunk) ([]chunking.RawChunk, error)
	IngestMeaningChunks(ctx context.Context, videoID int, chunks []chunking.RawChunk) error
}

// Handlers holds every dependency of the three step handlers.
type Handlers struct {
	cfg config.PipelineConfig

	// retentionBackoff is the base delay of the retention retry schedule
	// (5s, 10s, 15s). Tests shrink it.
	retentionBackoff time.Duration

	reports  ReportRepo
	tasks    TaskRepo
	videos   VideoRepo
	channels ChannelRepo
	comments CommentRepo
	ideas    IdeaRepo
	keywords KeywordRepo

	llm        LLM
	store      VectorStore
	chunker    Chunker
	sentiments CommentAnalyzer

	data       DataAPI
	analytics  AnalyticsAPI
	transcript TranscriptAPI
	trends     TrendFeed
}

// Deps bundles the handler dependencies for construction.
type Deps struct {
	Config   config.PipelineConfig
	Reports  ReportRepo
	Tasks    TaskRepo
	Videos   VideoRepo
	Channels ChannelRepo
	Comments CommentRepo
	Ideas    IdeaRepo
	Keywords KeywordRepo

	LLM        LLM
	Store      VectorStore
	Chunker    Chunker
	Sentiments CommentAnalyzer

	Data       DataAPI
	Analytics  AnalyticsAPI
	Transcript TranscriptAPI
	Trends     TrendFeed
}

// New creates the step handlers.
func New(d Deps) *Handlers {
	return &Handlers{
		cfg:              d.Config,
		retentionBackoff: 5 * time.Second,
		reports:          d.Reports,
		tasks:            d.Tasks,
		videos:           d.Videos,
		channels:         d.Channels,
		comments:         d.Comments,
		ideas:            d.Ideas,
		keywords:         d.Keywords,
		llm:              d.LLM,
		store:            d.Store,
		chunker:          d.Chunker,
		sentiments:       d.Sentiments,
		data:             d.Data,
		analytics:        d.Analytics,
		transcript:       d.Transcript,
		trends:           d.Trends,
	}
}

var (
	_ LLM             = (*llm.Client)(nil)
	_ VectorStore     = (*vectorstore.Store)(nil)
	_ DataAPI         = (*youtube.DataClient)(nil)
	_ AnalyticsAPI    = (*youtube.AnalyticsClient)(nil)
	_ TranscriptAPI   = (*youtube.TranscriptClient)(nil)
	_ TrendFeed       = (*trends.Client)(nil)
	_ ReportRepo      = (*services.ReportService)(nil)
	_ TaskRepo        = (*services.TaskService)(nil)
	_ VideoRepo       = (*services.VideoService)(nil)
	_ ChannelRepo     = (*services.ChannelService)(nil)
	_ CommentRepo     = (*services.CommentService)(nil)
	_ IdeaRepo        = (*services.IdeaService)(nil)
	_ KeywordRepo     = (*services.TrendKeywordService)(nil)
	_ CommentAnalyzer = (*comments.Pipeline)(nil)
	_ Chunker         = (*chunking.Engine)(nil)
)
