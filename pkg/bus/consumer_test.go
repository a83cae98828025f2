package bus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/channeling-app/reportpipe/pkg/config"
	"github.com/channeling-app/reportpipe/pkg/models"
)

// scriptedReader fails its first fetch, serves one message, then signals
// shutdown.
type scriptedReader struct {
	payload    []byte
	calls      int
	fetchTimes []time.Time
	commits    []kafka.Message
}

func (r *scriptedReader) FetchMessage(context.Context) (kafka.Message, error) {
	r.calls++
	r.fetchTimes = append(r.fetchTimes, time.Now())
	switch r.calls {
	case 1:
		return kafka.Message{}, errors.New("broker unavailable")
	case 2:
		return kafka.Message{Value: r.payload, Offset: 42}, nil
	}
	return kafka.Message{}, context.Canceled
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.commits = append(r.commits, msgs...)
	return nil
}

func TestRunBacksOffAfterFetchError(t *testing.T) {
	const backoff = 20 * time.Millisecond

	payload, err := json.Marshal(models.StepMessage{
		TaskID:    3,
		ReportID:  7,
		Step:      models.StepOverview,
		Timestamp: time.Now().UTC(),
	})
	require.NoError(t, err)

	reader := &scriptedReader{payload: payload}

	c := NewConsumer(config.KafkaConfig{GroupID: "test-group"}, 1)
	c.fetchBackoff = backoff

	var handled []models.StepMessage
	c.wg.Add(1)
	c.run(context.Background(), reader, "report-overview", func(_ context.Context, msg models.StepMessage) error {
		handled = append(handled, msg)
		return nil
	})

	// The failed fetch delays the next one by the backoff.
	require.GreaterOrEqual(t, reader.calls, 2)
	assert.GreaterOrEqual(t, reader.fetchTimes[1].Sub(reader.fetchTimes[0]), backoff)

	// The message after the outage is still dispatched and committed.
	require.Len(t, handled, 1)
	assert.Equal(t, 7, handled[0].ReportID)
	require.Len(t, reader.commits, 1)
	assert.Equal(t, int64(42), reader.commits[0].Offset)
}

func TestRunStopsDuringBackoffOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader := &scriptedReader{}
	c := NewConsumer(config.KafkaConfig{GroupID: "test-group"}, 1)
	c.fetchBackoff = time.Hour

	done := make(chan struct{})
	c.wg.Add(1)
	go func() {
		defer close(done)
		c.run(ctx, reader, "report-overview", func(context.Context, models.StepMessage) error {
			return nil
		})
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop during backoff")
	}
	assert.Equal(t, 1, reader.calls)
}
