package github

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUserNotFound is returned when the requested account does not exist.
var ErrUserNotFound = errors.New("github user not found")

// defaultRetryAfter is used when the API gave no hint about when to retry.
const defaultRetryAfter = 5 * time.Minute

// RateLimitError represents an error due to GitHub API rate limiting.
type RateLimitError struct {
	// Message is the error message from the API.
	Message string

	// RetryAfter is the duration to wait before retrying (if known).
	RetryAfter time.Duration

	// Limit is the rate limit (requests per period).
	Limit int

	// Remaining is the number of requests remaining.
	Remaining int

	// ResetTime is when the rate limit resets.
	ResetTime time.Time
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("github API rate limit exceeded: %s (retry after %v)", e.Message, e.RetryAfter)
	}
	if !e.ResetTime.IsZero() {
		return fmt.Sprintf("github API rate limit exceeded: %s (resets at %v)", e.Message, e.ResetTime.Format(time.RFC3339))
	}
	return fmt.Sprintf("github API rate limit exceeded: %s", e.Message)
}

// NewRateLimitError creates a new rate limit error.
func NewRateLimitError(message string) *RateLimitError {
	return &RateLimitError{Message: message}
}

// WithRetryAfter sets the retry after duration.
func (e *RateLimitError) WithRetryAfter(d time.Duration) *RateLimitError {
	e.RetryAfter = d
	return e
}

// WithResetTime sets the rate limit reset time.
func (e *RateLimitError) WithResetTime(t time.Time) *RateLimitError {
	e.ResetTime = t
	return e
}

// WithRateLimitInfo sets the rate limit counters.
func (e *RateLimitError) WithRateLimitInfo(limit, remaining int) *RateLimitError {
	e.Limit = limit
	e.Remaining = remaining
	return e
}

// IsRateLimitError reports whether err is, or reads like, a rate limit error.
func IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}

	var rle *RateLimitError
	if errors.As(err, &rle) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, indicator := range []string{"rate limit", "rate-limit", "too many requests", "api rate limit exceeded"} {
		if strings.Contains(msg, indicator) {
			return true
		}
	}
	return false
}

// GetRetryAfter returns how long to wait before retrying err, relative to
// now. It falls back to five minutes when the error carries no hint.
func GetRetryAfter(err error, now time.Time) time.Duration {
	if err == nil {
		return 0
	}

	var rle *RateLimitError
	if errors.As(err, &rle) {
		if rle.RetryAfter > 0 {
			return rle.RetryAfter
		}
		if !rle.ResetTime.IsZero() {
			if d := rle.ResetTime.Sub(now); d > 0 {
				return d
			}
		}
	}
	return defaultRetryAfter
}
