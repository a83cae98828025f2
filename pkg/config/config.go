// Package config loads process-wide configuration from the environment.
// Everything is initialized once at startup and passed down through
// constructors; nothing here is mutated after Load returns.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the root configuration record threaded through main.
type Config struct {
	Kafka    KafkaConfig
	LLM      LLMConfig
	YouTube  YouTubeConfig
	Trends   TrendsConfig
	Pipeline PipelineConfig
}

// KafkaConfig holds message bus settings.
type KafkaConfig struct {
	Brokers            []string
	GroupID            string
	AutoCommitInterval time.Duration
	PublishMaxRetries  int

	OverviewTopic string
	AnalysisTopic string
	IdeaTopic     string
}

// V2Topic returns the -v2 variant of a topic. Handlers on v2 topics skip
// vector-store writes.
func V2Topic(topic string) string {
	return topic + "-v2"
}

// LLMConfig holds OpenAI chat and embedding settings.
type LLMConfig struct {
	APIKey              string
	Model               string
	EmbeddingModel      string
	EmbeddingDimensions int
	Temperature         float64
}

// YouTubeConfig holds YouTube Data v3 / Analytics v2 adapter settings.
type YouTubeConfig struct {
	APIKey     string
	RegionCode string
	// DataBaseURL and AnalyticsBaseURL are overridable for tests.
	DataBaseURL      string
	AnalyticsBaseURL string
	TranscriptURL    string
}

// TrendsConfig holds the realtime trend feed settings.
type TrendsConfig struct {
	APIKey  string
	BaseURL string
	Geo     string
	Limit   int
}

// PipelineConfig holds tuning knobs for the report pipeline itself.
type PipelineConfig struct {
	// Comment pipeline.
	CommentCap      int
	SampleThreshold int
	SampleRate      float64
	SampleMinimum   int

	// Vector store chunking of prose artifacts.
	ChunkSize    int
	ChunkOverlap int

	// Retry budgets.
	MeaningChunkRetries int
	RetentionRetries    int
	JSONParseRetries    int

	// Workers per topic. Overview is CPU-light, analysis is the heavy path;
	// both scale independently.
	WorkersPerTopic int

	// Whether the v2 flow runs the idea step at all. The control plane
	// pre-marks idea_status completed for v2 when this is false.
	V2RunIdea bool
}

// Load reads the full configuration from environment variables, applying
// defaults for everything except credentials.
func Load() (*Config, error) {
	llmKey := os.Getenv("OPENAI_API_KEY")
	if llmKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	cfg := &Config{
		Kafka: KafkaConfig{
			Brokers:            strings.Split(getEnv("KAFKA_BOOTSTRAP_SERVERS", "localhost:9092"), ","),
			GroupID:            getEnv("KAFKA_CONSUMER_GROUP_ID", "llm-service-group"),
			AutoCommitInterval: getDuration("KAFKA_AUTO_COMMIT_INTERVAL", 5*time.Second),
			PublishMaxRetries:  getInt("KAFKA_PUBLISH_MAX_RETRIES", 3),
			OverviewTopic:      getEnv("KAFKA_OVERVIEW_TOPIC", "overview-topic"),
			AnalysisTopic:      getEnv("KAFKA_ANALYSIS_TOPIC", "analysis-topic"),
			IdeaTopic:          getEnv("KAFKA_IDEA_TOPIC", "idea-topic"),
		},
		LLM: LLMConfig{
			APIKey:              llmKey,
			Model:               getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			EmbeddingModel:      getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-large"),
			EmbeddingDimensions: getInt("OPENAI_EMBEDDING_DIMENSIONS", 3072),
			Temperature:         getFloat("OPENAI_TEMPERATURE", 0.7),
		},
		YouTube: YouTubeConfig{
			APIKey:           os.Getenv("YOUTUBE_API_KEY"),
			RegionCode:       getEnv("YOUTUBE_REGION_CODE", "KR"),
			DataBaseURL:      getEnv("YOUTUBE_DATA_BASE_URL", "https://www.googleapis.com/youtube/v3"),
			AnalyticsBaseURL: getEnv("YOUTUBE_ANALYTICS_BASE_URL", "https://youtubeanalytics.googleapis.com/v2"),
			TranscriptURL:    getEnv("TRANSCRIPT_SERVICE_URL", "http://localhost:8090"),
		},
		Trends: TrendsConfig{
			APIKey:  os.Getenv("SERPAPI_KEY"),
			BaseURL: getEnv("TREND_FEED_BASE_URL", "https://serpapi.com"),
			Geo:     getEnv("TREND_FEED_GEO", "KR"),
			Limit:   getInt("TREND_FEED_LIMIT", 5),
		},
		Pipeline: PipelineConfig{
			CommentCap:          getInt("PIPELINE_COMMENT_CAP", 1000),
			SampleThreshold:     getInt("PIPELINE_SAMPLE_THRESHOLD", 200),
			SampleRate:          getFloat("PIPELINE_SAMPLE_RATE", 0.1),
			SampleMinimum:       getInt("PIPELINE_SAMPLE_MINIMUM", 20),
			ChunkSize:           getInt("PIPELINE_CHUNK_SIZE", 150),
			ChunkOverlap:        getInt("PIPELINE_CHUNK_OVERLAP", 15),
			MeaningChunkRetries: getInt("PIPELINE_MEANING_CHUNK_RETRIES", 4),
			RetentionRetries:    getInt("PIPELINE_RETENTION_RETRIES", 3),
			JSONParseRetries:    getInt("PIPELINE_JSON_PARSE_RETRIES", 3),
			WorkersPerTopic:     getInt("PIPELINE_WORKERS_PER_TOPIC", 1),
			V2RunIdea:           getBool("PIPELINE_V2_RUN_IDEA", false),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
