// Package gate implements the bounded in-flight counter (spec §4.2): a
// semaphore that suspends Acquire until in-flight count is below bound,
// and honors cancellation. The engine uses two independently
// parameterized gates per pipeline invocation — one for chunks/groups,
// one for the individual-fallback fan-out within a group.
package gate

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Gate is a bounded concurrency limiter.
type Gate struct {
	sem   *semaphore.Weighted
	bound int
}

// New creates a Gate with the given bound. A bound <= 0 is treated as 1
// (at least one in-flight task is always allowed; the engine never
// configures a zero-concurrency gate).
func New(bound int) *Gate {
	if bound <= 0 {
		bound = 1
	}
	return &Gate{sem: semaphore.NewWeighted(int64(bound)), bound: bound}
}

// Acquire blocks until a slot is available or ctx is cancelled.
func (g *Gate) Acquire(ctx context.Context) error {
	return g.sem.Acquire(ctx, 1)
}

// Release frees one in-flight slot.
func (g *Gate) Release() {
	g.sem.Release(1)
}

// Bound returns the configured concurrency bound.
func (g *Gate) Bound() int { return g.bound }
