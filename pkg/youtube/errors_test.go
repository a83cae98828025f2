package youtube

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsQuotaExceeded(t *testing.T) {
	assert.True(t, IsQuotaExceeded(&APIError{StatusCode: 429}))
	assert.True(t, IsQuotaExceeded(&APIError{StatusCode: 403, Message: "quotaExceeded"}))
	assert.False(t, IsQuotaExceeded(&APIError{StatusCode: 403, Message: "forbidden"}))
	assert.False(t, IsQuotaExceeded(errors.New("boom")))
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(&APIError{StatusCode: 401}))
	assert.True(t, IsAuthError(&APIError{StatusCode: 403, Message: "insufficient scope"}))
	assert.False(t, IsAuthError(&APIError{StatusCode: 403, Message: "quotaExceeded"}))
	assert.False(t, IsAuthError(&APIError{StatusCode: 500}))
}

func TestIsCommentsDisabled(t *testing.T) {
	assert.True(t, IsCommentsDisabled(&APIError{StatusCode: 403, Message: `{"reason":"commentsDisabled"}`}))
	assert.False(t, IsCommentsDisabled(&APIError{StatusCode: 403, Message: "forbidden"}))
	assert.False(t, IsCommentsDisabled(errors.New("boom")))
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(&APIError{StatusCode: 500}))
	assert.True(t, IsTransient(&APIError{StatusCode: 503}))
	assert.False(t, IsTransient(&APIError{StatusCode: 401}))
	assert.False(t, IsTransient(&APIError{StatusCode: 429}))
	assert.True(t, IsTransient(errors.New("dial tcp: connection refused")))

	// Wrapped errors keep their classification.
	wrapped := fmt.Errorf("exhausted 3 attempts: %w", &APIError{StatusCode: 502})
	assert.True(t, IsTransient(wrapped))
}
