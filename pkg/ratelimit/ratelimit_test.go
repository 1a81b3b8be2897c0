package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_AllowUpToMax(t *testing.T) {
	now := time.Now()
	l := NewWithClock(3, time.Minute, func() time.Time { return now })

	assert.True(t, l.Allow())
	assert.True(t, l.Allow())
	assert.True(t, l.Allow())
	assert.False(t, l.Allow())
	assert.Equal(t, 0, l.Remaining())
}

func TestLimiter_WindowSlides(t *testing.T) {
	now := time.Now()
	l := NewWithClock(2, time.Minute, func() time.Time { return now })

	assert.True(t, l.Allow())
	assert.True(t, l.Allow())
	assert.False(t, l.Allow())

	// Move past the window; both events expire.
	now = now.Add(61 * time.Second)
	assert.True(t, l.Allow())
	assert.Equal(t, 1, l.Remaining())
}

func TestLimiter_TimeUntilReset(t *testing.T) {
	base := time.Now()
	now := base
	l := NewWithClock(1, time.Minute, func() time.Time { return now })

	assert.Equal(t, time.Duration(0), l.TimeUntilReset())
	assert.True(t, l.Allow())

	now = base.Add(20 * time.Second)
	assert.Equal(t, 40*time.Second, l.TimeUntilReset())

	now = base.Add(2 * time.Minute)
	assert.Equal(t, time.Duration(0), l.TimeUntilReset())
}
