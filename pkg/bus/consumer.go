package bus

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/channeling-app/reportpipe/pkg/config"
	"github.com/channeling-app/reportpipe/pkg/models"
)

// Handler processes one validated step message. A returned error marks the
// step failed in the task record upstream; the message is still committed.
type Handler func(ctx context.Context, msg models.StepMessage) error

// messageReader is the reader surface the consume loop depends on.
// *kafka.Reader satisfies it.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Consumer runs one reader goroutine pool per registered topic.
type Consumer struct {
	cfg      config.KafkaConfig
	workers  int
	handlers map[string]Handler

	// fetchBackoff delays the next fetch after a fetch error so a broker
	// outage does not spin the loop. Tests shrink it.
	fetchBackoff time.Duration

	mu      sync.Mutex
	readers []*kafka.Reader
	wg      sync.WaitGroup
}

// NewConsumer creates a consumer with no registered topics.
func NewConsumer(cfg config.KafkaConfig, workersPerTopic int) *Consumer {
	if workersPerTopic < 1 {
		workersPerTopic = 1
	}
	return &Consumer{
		cfg:          cfg,
		workers:      workersPerTopic,
		handlers:     make(map[string]Handler),
		fetchBackoff: time.Second,
	}
}

// Register binds a handler to a topic. Must be called before Start.
func (c *Consumer) Register(topic string, h Handler) {
	c.handlers[topic] = h
}

// Start launches the reader goroutines. It returns immediately; readers run
// until ctx is canceled or Close is called.
func (c *Consumer) Start(ctx context.Context) {
	for topic, handler := range c.handlers {
		for i := 0; i < c.workers; i++ {
			reader := kafka.NewReader(kafka.ReaderConfig{
				Brokers:        c.cfg.Brokers,
				GroupID:        c.cfg.GroupID,
				Topic:          topic,
				StartOffset:    kafka.LastOffset,
				CommitInterval: c.cfg.AutoCommitInterval,
				MinBytes:       1,
				MaxBytes:       10e6,
				MaxWait:        500 * time.Millisecond,
			})

			c.mu.Lock()
			c.readers = append(c.readers, reader)
			c.mu.Unlock()

			c.wg.Add(1)
			go c.run(ctx, reader, topic, handler)
		}
	}
}

func (c *Consumer) run(ctx context.Context, reader messageReader, topic string, handler Handler) {
	defer c.wg.Done()

	slog.Info("Kafka consumer started", "topic", topic, "group_id", c.cfg.GroupID)

	for {
		raw, err := reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				slog.Info("Kafka consumer stopping", "topic", topic)
				return
			}
			slog.Error("Kafka fetch failed", "topic", topic, "error", err)
			select {
			case <-ctx.Done():
				slog.Info("Kafka consumer stopping", "topic", topic)
				return
			case <-time.After(c.fetchBackoff):
			}
			continue
		}

		c.dispatch(ctx, topic, handler, raw)

		// Commit regardless of handler outcome. Step failures are recorded on
		// the task row; redelivering the message would just repeat the failure.
		if err := reader.CommitMessages(ctx, raw); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Kafka commit failed", "topic", topic, "offset", raw.Offset, "error", err)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, topic string, handler Handler, raw kafka.Message) {
	var msg models.StepMessage
	if err := json.Unmarshal(raw.Value, &msg); err != nil {
		slog.Error("Dropping malformed message", "topic", topic, "offset", raw.Offset, "error", err)
		return
	}
	if err := msg.Validate(); err != nil {
		slog.Error("Dropping invalid message", "topic", topic, "offset", raw.Offset, "error", err)
		return
	}

	start := time.Now()
	slog.Info("Processing step message",
		"topic", topic,
		"report_id", msg.ReportID,
		"task_id", msg.TaskID,
		"step", msg.Step)

	if err := handler(ctx, msg); err != nil {
		slog.Error("Step handler failed",
			"topic", topic,
			"report_id", msg.ReportID,
			"step", msg.Step,
			"duration", time.Since(start),
			"error", err)
		return
	}

	slog.Info("Step completed",
		"topic", topic,
		"report_id", msg.ReportID,
		"step", msg.Step,
		"duration", time.Since(start))
}

// Close stops all readers and waits for in-flight handlers to finish.
func (c *Consumer) Close() error {
	c.mu.Lock()
	readers := c.readers
	c.readers = nil
	c.mu.Unlock()

	var firstErr error
	for _, r := range readers {
		if err := r.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.wg.Wait()
	return firstErr
}
