// Package backoff provides the cancellable-sleep primitive every wait in
// the engine routes through (spec §4.1), plus the linear backoff
// schedule the retry cascade uses.
package backoff

import (
	"context"
	"time"
)

// Delay sleeps for d, honoring ctx cancellation. It returns nil if the
// sleep completed, or ctx.Err() if ctx was cancelled first.
func Delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Linear returns the delay before attempt k (1-indexed) under the
// engine's linear (not geometric) sequential-retry backoff: baseDelay*k
// (spec §4.1).
func Linear(base time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return base * time.Duration(attempt)
}
