package backoff

import (
	"context"
	"time"
)

// Strategy returns the delay after last, last is 0 before the first sleep.
type Strategy func(start, last time.Duration) time.Duration

type Backoff struct {
	NextDuration time.Duration

	start    time.Duration
	limit    time.Duration
	last     time.Duration
	count    int
	strategy Strategy
}

// NewBackoff caps every delay at limit, a limit <= 0 means no cap
func NewBackoff(strategy Strategy, start, limit time.Duration) *Backoff {
	b := &Backoff{strategy: strategy, start: start, limit: limit}
	b.Reset()
	return b
}

// NewExponential doubles the delay after every sleep
func NewExponential(start, limit time.Duration) *Backoff {
	return NewBackoff(exponential, start, limit)
}

// NewConstant sleeps for the same duration every time.
func NewConstant(d time.Duration) *Backoff {
	return NewBackoff(constant, d, 0)
}

func exponential(start, last time.Duration) time.Duration {
	if last <= 0 {
		return start
	}
	return 2 * last
}

func constant(start, _ time.Duration) time.Duration {
	return start
}

func (b *Backoff) Reset() {
	b.count = 0
	b.last = 0
	b.NextDuration = b.next()
}

// Count returns how many times Backoff has slept to completion.
func (b *Backoff) Count() int {
	return b.count
}

// Backoff sleeps for NextDuration. It returns ctx.Err() if ctx is done first.
func (b *Backoff) Backoff(ctx context.Context) error {
	timer := time.NewTimer(b.NextDuration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	b.count++
	b.last = b.NextDuration
	b.NextDuration = b.next()
	return nil
}

func (b *Backoff) next() time.Duration {
	d := b.strategy(b.start, b.last)
	// doubling past the limit may overflow, clamp on both ends
	if b.limit > 0 && (d > b.limit || d <= 0) {
		d = b.limit
	}
	return d
}
