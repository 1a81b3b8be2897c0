// Package retry implements a fixed-interval bounded poll.
package retry

import (
	"context"
	"errors"
	"time"
)

// ErrExhausted is returned when every attempt ran without success.
var ErrExhausted = errors.New("retry: attempts exhausted")

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Policy polls an operation up to MaxAttempts times, waiting Interval
// between attempts. Sleep may be replaced in tests to avoid real delays.
type Policy struct {
	MaxAttempts int
	Interval    time.Duration
	Sleep       SleepFunc
}

// NewPolicy returns a Policy with the default sleeper.
func NewPolicy(maxAttempts int, interval time.Duration) Policy {
	return Policy{MaxAttempts: maxAttempts, Interval: interval, Sleep: sleep}
}

// Do runs fn until it reports done, an error occurs, or attempts run out.
// fn returning done=false with a nil error means "not yet, poll again".
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) (done bool, err error)) error {
	sleepFn := p.Sleep
	if sleepFn == nil {
		sleepFn = sleep
	}

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		done, err := fn(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if attempt == p.MaxAttempts {
			break
		}
		if err := sleepFn(ctx, p.Interval); err != nil {
			return err
		}
	}
	return ErrExhausted
}
