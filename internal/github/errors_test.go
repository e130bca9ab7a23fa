package github

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitError_Message(t *testing.T) {
	reset := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "github API rate limit exceeded: slow down (retry after 1m0s)",
		NewRateLimitError("slow down").WithRetryAfter(time.Minute).Error())
	assert.Equal(t, "github API rate limit exceeded: slow down (resets at 2026-01-01T00:00:00Z)",
		NewRateLimitError("slow down").WithResetTime(reset).Error())
	assert.Equal(t, "github API rate limit exceeded: slow down",
		NewRateLimitError("slow down").Error())
}

func TestIsRateLimitError(t *testing.T) {
	assert.False(t, IsRateLimitError(nil))
	assert.False(t, IsRateLimitError(errors.New("connection refused")))
	assert.True(t, IsRateLimitError(fmt.Errorf("fetching: %w", NewRateLimitError("x"))))
	assert.True(t, IsRateLimitError(errors.New("429 Too Many Requests")))
}

func TestGetRetryAfter(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Zero(t, GetRetryAfter(nil, now))
	assert.Equal(t, 30*time.Second, GetRetryAfter(NewRateLimitError("x").WithRetryAfter(30*time.Second), now))
	assert.Equal(t, 10*time.Minute, GetRetryAfter(NewRateLimitError("x").WithResetTime(now.Add(10*time.Minute)), now))
	assert.Equal(t, defaultRetryAfter, GetRetryAfter(NewRateLimitError("x").WithResetTime(now.Add(-time.Minute)), now))
	assert.Equal(t, defaultRetryAfter, GetRetryAfter(errors.New("other"), now))
}
