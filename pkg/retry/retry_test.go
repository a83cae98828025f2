package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 3, nil, nil, func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("boom")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnNonRetryable(t *testing.T) {
	permanent := errors.New("permanent")
	calls := 0
	err := Do(context.Background(), 5, nil, func(error) bool { return false }, func(context.Context) error {
		calls++
		return permanent
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, permanent, err)
}

func TestDoExhaustsBudget(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Do(context.Background(), 3, nil, nil, func(context.Context) error {
		calls++
		return boom
	})

	assert.Equal(t, 3, calls)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "exhausted 3 attempts")
}

func TestDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, 3, Fixed(time.Hour), nil, func(context.Context) error {
		calls++
		return errors.New("boom")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestLinearSchedule(t *testing.T) {
	sched := Linear(5 * time.Second)
	assert.Equal(t, 5*time.Second, sched(0))
	assert.Equal(t, 10*time.Second, sched(1))
	assert.Equal(t, 15*time.Second, sched(2))
}

func TestFixedSchedule(t *testing.T) {
	sched := Fixed(2 * time.Second)
	assert.Equal(t, 2*time.Second, sched(0))
	assert.Equal(t, 2*time.Second, sched(7))
}
