// Package pacing provides ports.Pacer implementations for spacing out
// outbound service calls.
package pacing

import (
	"context"
	"time"

	"pagesync/internal/ports"
)

// Fixed waits a constant delay after every call
type Fixed struct {
	delay time.Duration
	sleep func(ctx context.Context, d time.Duration)
}

// Ensure Fixed implements Pacer
var _ ports.Pacer = (*Fixed)(nil)

// NewFixed creates a pacer waiting delay after every call
func NewFixed(delay time.Duration) *Fixed {
	return &Fixed{delay: delay, sleep: sleepContext}
}

// Delay returns the configured delay
func (f *Fixed) Delay() time.Duration {
	return f.delay
}

// Wait blocks for the configured delay or until ctx is done
func (f *Fixed) Wait(ctx context.Context) {
	if f.delay <= 0 {
		return
	}
	f.sleep(ctx, f.delay)
}

func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// None returns a pacer that never waits
func None() ports.Pacer {
	return ports.PacerFunc(func(context.Context) {})
}
