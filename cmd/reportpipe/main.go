// reportpipe server — provides the report-creation HTTP API and runs the
// Kafka step workers that generate channel reports.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/channeling-app/reportpipe/pkg/api"
	"github.com/channeling-app/reportpipe/pkg/bus"
	"github.com/channeling-app/reportpipe/pkg/chunking"
	"github.com/channeling-app/reportpipe/pkg/comments"
	"github.com/channeling-app/reportpipe/pkg/config"
	"github.com/channeling-app/reportpipe/pkg/database"
	"github.com/channeling-app/reportpipe/pkg/llm"
	"github.com/channeling-app/reportpipe/pkg/report"
	"github.com/channeling-app/reportpipe/pkg/services"
	"github.com/channeling-app/reportpipe/pkg/trends"
	"github.com/channeling-app/reportpipe/pkg/vectorstore"
	"github.com/channeling-app/reportpipe/pkg/youtube"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting reportpipe", "http_port", httpPort)

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Connect database and run migrations
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	reportService := services.NewReportService(dbClient)
	taskService := services.NewTaskService(dbClient)
	videoService := services.NewVideoService(dbClient)
	channelService := services.NewChannelService(dbClient)
	commentService := services.NewCommentService(dbClient)
	ideaService := services.NewIdeaService(dbClient)
	keywordService := services.NewTrendKeywordService(dbClient)
	slog.Info("Services initialized")

	// 4. LLM client and vector store
	llmClient := llm.NewClient(cfg.LLM)
	store := vectorstore.New(dbClient.DB(), llmClient, cfg.Pipeline.ChunkSize, cfg.Pipeline.ChunkOverlap)
	chunker := chunking.NewEngine(store, llmClient, cfg.Pipeline.MeaningChunkRetries)

	// 5. External adapters
	dataClient := youtube.NewDataClient(cfg.YouTube)
	analyticsClient := youtube.NewAnalyticsClient(cfg.YouTube)
	transcriptClient := youtube.NewTranscriptClient(cfg.YouTube)
	trendClient := trends.NewClient(cfg.Trends)

	sentimentPipeline := comments.New(llmClient,
		cfg.Pipeline.SampleThreshold, cfg.Pipeline.SampleRate, cfg.Pipeline.SampleMinimum,
		cfg.Pipeline.JSONParseRetries)

	// 6. Step handlers and Kafka consumers
	handlers := report.New(report.Deps{
		Config:     cfg.Pipeline,
		Reports:    reportService,
		Tasks:      taskService,
		Videos:     videoService,
		Channels:   channelService,
		Comments:   commentService,
		Ideas:      ideaService,
		Keywords:   keywordService,
		LLM:        llmClient,
		Store:      store,
		Chunker:    chunker,
		Sentiments: sentimentPipeline,
		Data:       dataClient,
		Analytics:  analyticsClient,
		Transcript: transcriptClient,
		Trends:     trendClient,
	})

	consumer := bus.NewConsumer(cfg.Kafka, cfg.Pipeline.WorkersPerTopic)
	consumer.Register(cfg.Kafka.OverviewTopic, handlers.Overview)
	consumer.Register(cfg.Kafka.AnalysisTopic, handlers.Analysis)
	consumer.Register(cfg.Kafka.IdeaTopic, handlers.Idea)
	consumer.Register(config.V2Topic(cfg.Kafka.OverviewTopic), handlers.Overview)
	consumer.Register(config.V2Topic(cfg.Kafka.AnalysisTopic), handlers.Analysis)
	if cfg.Pipeline.V2RunIdea {
		consumer.Register(config.V2Topic(cfg.Kafka.IdeaTopic), handlers.Idea)
	}

	consumerCtx, stopConsumers := context.WithCancel(ctx)
	defer stopConsumers()
	consumer.Start(consumerCtx)
	slog.Info("Kafka consumers started", "brokers", cfg.Kafka.Brokers)

	// 7. Producer and HTTP control plane
	producer := bus.NewProducer(cfg.Kafka)
	defer func() {
		if err := producer.Close(); err != nil {
			slog.Error("Error closing Kafka producer", "error", err)
		}
	}()

	httpServer := api.NewServer(":"+httpPort, dbClient, reportService, taskService, videoService, producer, cfg.Kafka, cfg.Pipeline)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			errCh <- err
		}
	}()

	// 8. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("Received shutdown signal", "signal", sig)
	case err := <-errCh:
		slog.Error("HTTP server failed", "error", err)
	}

	// 9. Graceful shutdown: stop accepting requests, then drain consumers
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}

	stopConsumers()
	if err := consumer.Close(); err != nil {
		slog.Error("Kafka consumer shutdown failed", "error", err)
	}

	slog.Info("Shutdown complete")
}
