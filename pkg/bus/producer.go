// Package bus wraps Kafka publish and consume for the report pipeline.
// One StepMessage per topic per report; handlers commit unconditionally
// after processing so a poisoned message never wedges a partition.
package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"

	"github.com/channeling-app/reportpipe/pkg/config"
	"github.com/channeling-app/reportpipe/pkg/models"
)

// Producer publishes step messages. Safe for concurrent use.
type Producer struct {
	writer     *kafka.Writer
	maxRetries int
}

// NewProducer creates a producer targeting the configured brokers.
func NewProducer(cfg config.KafkaConfig) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Gzip,
		BatchTimeout: 10 * time.Millisecond,
	}
	return &Producer{
		writer:     writer,
		maxRetries: cfg.PublishMaxRetries,
	}
}

// Publish sends one step message to the given topic, keyed by report ID so
// all steps of a report land on one partition. Failed publishes back off
// exponentially (1s, 2s, 4s, ...) up to the configured retry budget.
func (p *Producer) Publish(ctx context.Context, topic string, msg models.StepMessage) error {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal step message: %w", err)
	}

	record := kafka.Message{
		Topic: topic,
		Key:   []byte(strconv.Itoa(msg.ReportID)),
		Value: payload,
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(p.maxRetries)), ctx)

	attempt := 0
	err = backoff.Retry(func() error {
		attempt++
		if werr := p.writer.WriteMessages(ctx, record); werr != nil {
			slog.Warn("Kafka publish failed",
				"topic", topic,
				"report_id", msg.ReportID,
				"step", msg.Step,
				"attempt", attempt,
				"error", werr)
			return werr
		}
		return nil
	}, policy)
	if err != nil {
		return fmt.Errorf("failed to publish %s message for report %d: %w", msg.Step, msg.ReportID, err)
	}

	slog.Info("Published step message",
		"topic", topic,
		"report_id", msg.ReportID,
		"task_id", msg.TaskID,
		"step", msg.Step)
	return nil
}

// Close flushes and releases the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
