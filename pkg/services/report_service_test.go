package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollSummaryReturnsOnFirstHit(t *testing.T) {
	calls := 0
	summary, ok := pollSummary(context.Background(), 3, time.Hour, func() (string, bool) {
		calls++
		return "요약", true
	})

	assert.True(t, ok)
	assert.Equal(t, "요약", summary)
	assert.Equal(t, 1, calls)
}

func TestPollSummaryNoSleepAfterFinalAttempt(t *testing.T) {
	const interval = 50 * time.Millisecond

	calls := 0
	start := time.Now()
	_, ok := pollSummary(context.Background(), 3, interval, func() (string, bool) {
		calls++
		return "", false
	})
	elapsed := time.Since(start)

	assert.False(t, ok)
	assert.Equal(t, 3, calls)

	// Two intervals between three attempts, none after the last one.
	assert.GreaterOrEqual(t, elapsed, 2*interval)
	assert.Less(t, elapsed, 3*interval)
}

func TestPollSummaryStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, ok := pollSummary(ctx, 3, time.Hour, func() (string, bool) {
		calls++
		return "", false
	})

	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}
