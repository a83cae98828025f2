package youtube

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// APIError is a non-2xx response from a Google API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube api error (status %d): %s", e.StatusCode, e.Message)
}

// IsQuotaExceeded reports whether err is a quota or rate limit rejection.
func IsQuotaExceeded(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode == 429 {
		return true
	}
	return apiErr.StatusCode == 403 && strings.Contains(strings.ToLower(apiErr.Message), "quota")
}

// IsCommentsDisabled reports whether err means the video has comments
// turned off. The comment pipeline treats this as an empty comment set.
func IsCommentsDisabled(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == 403 && strings.Contains(apiErr.Message, "commentsDisabled")
}

// IsAuthError reports whether err means the access token is missing,
// expired, or lacks the required scope.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == 401 || (apiErr.StatusCode == 403 && !IsQuotaExceeded(err))
}

// IsTransient reports whether err is worth retrying: network failures,
// timeouts, and server-side 5xx responses. Quota and auth rejections are
// not transient.
func IsTransient(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// http.Client wraps transport failures in *url.Error, which satisfies
	// net.Error for timeouts but not for all connection failures.
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "EOF")
}
