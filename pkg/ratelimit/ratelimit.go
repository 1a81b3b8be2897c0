// Package ratelimit provides a sliding-window search limiter.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter allows at most max events per window. The zero value is not
// usable; construct with New.
type Limiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	now    func() time.Time
	events []time.Time
}

func New(max int, window time.Duration) *Limiter {
	return &Limiter{max: max, window: window, now: time.Now}
}

// NewWithClock injects the clock so tests can advance time directly.
func NewWithClock(max int, window time.Duration, now func() time.Time) *Limiter {
	return &Limiter{max: max, window: window, now: now}
}

// Allow reports whether another event fits in the current window and
// records it if so.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	if len(l.events) >= l.max {
		return false
	}
	l.events = append(l.events, now)
	return true
}

// Remaining returns how many events fit in the current window.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(l.now())
	remaining := l.max - len(l.events)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// TimeUntilReset returns how long until the oldest recorded event leaves
// the window, or 0 when the window is clear.
func (l *Limiter) TimeUntilReset() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	if len(l.events) == 0 {
		return 0
	}
	until := l.window - now.Sub(l.events[0])
	if until < 0 {
		return 0
	}
	return until
}

// prune drops events older than the window; caller holds the lock.
func (l *Limiter) prune(now time.Time) {
	kept := l.events[:0]
	for _, ts := range l.events {
		if now.Sub(ts) < l.window {
			kept = append(kept, ts)
		}
	}
	l.events = kept
}
