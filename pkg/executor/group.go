package executor

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phunguyenpt/admitpredict/pkg/backoff"
	"github.com/phunguyenpt/admitpredict/pkg/concurrency"
	"github.com/phunguyenpt/admitpredict/pkg/gate"
	"github.com/phunguyenpt/admitpredict/pkg/metrics"
)

// BatchFunc attempts a single batch-endpoint call for a chunk of inputs
// with the given computed concurrency query parameter.
type BatchFunc[T any, R any] func(ctx context.Context, items []T, concurrency int) ([]R, error)

// SingleFunc attempts a single-endpoint call for one input.
type SingleFunc[T any, R any] func(ctx context.Context, item T) ([]R, error)

// runGroup executes the three-stage retry cascade (spec §4.7) for one
// chunk's worth of inputs, all sharing groupKey. It never returns an
// error for partial failure — permanently failed inputs are logged and
// simply contribute no results, per spec §7's "partial success is the
// contract."
func runGroup[T any, R any](
	ctx context.Context,
	groupKey string,
	inputs []T,
	cfg Config,
	individualGate *gate.Gate,
	batch BatchFunc[T, R],
	single SingleFunc[T, R],
	logger *slog.Logger,
) []R {
	if len(inputs) == 0 {
		return nil
	}

	// Stage 1: batch attempt.
	concurrencyParam := concurrency.Dynamic(len(inputs), cfg.ServiceInputsPerWorker, cfg.ServiceMinBatchConcurrency, cfg.ServiceBatchConcurrency)
	results, err := batch(ctx, inputs, concurrencyParam)
	if err == nil {
		cfg.Metrics.AddBatchOutcome(true)
		logger.Info("batch stage succeeded", "group", groupKey, "total", len(inputs), "concurrency", concurrencyParam)
		return results
	}
	cfg.Metrics.AddBatchOutcome(false)
	logger.Warn("batch stage failed, falling back to individual fallback", "group", groupKey, "total", len(inputs), "error", err)

	// Stage 2: parallel individual fallback, bounded by individualGate.
	succeeded, failed := stage2(ctx, groupKey, inputs, cfg, individualGate, single, logger)
	results = append(results, succeeded...)
	cfg.Metrics.AddStage2Outcome(int64(len(inputs)-len(failed)), int64(len(failed)))

	if len(failed) == 0 {
		return results
	}

	// Stage 3: strict sequential retry over the inputs Stage 2 could not place.
	results = append(results, stage3(ctx, groupKey, failed, cfg, single, logger)...)
	return results
}

func stage2[T any, R any](
	ctx context.Context,
	groupKey string,
	inputs []T,
	cfg Config,
	individualGate *gate.Gate,
	single SingleFunc[T, R],
	logger *slog.Logger,
) (succeeded []R, failed []T) {
	if err := backoff.Delay(ctx, cfg.RetryBaseDelay); err != nil {
		// Cancelled before Stage 2 even starts: everything is "failed" for Stage 3 to (not) retry.
		return nil, inputs
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for i, input := range inputs {
		i, input := i, input
		wg.Add(1)
		go func() {
			defer wg.Done()

			if err := individualGate.Acquire(ctx); err != nil {
				mu.Lock()
				failed = append(failed, input)
				mu.Unlock()
				return
			}
			defer individualGate.Release()

			if i > 0 {
				if err := backoff.Delay(ctx, cfg.RequestDelay); err != nil {
					mu.Lock()
					failed = append(failed, input)
					mu.Unlock()
					return
				}
			}

			res, err := single(ctx, input)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed = append(failed, input)
				return
			}
			succeeded = append(succeeded, res...)
		}()
	}

	wg.Wait()

	logger.Info("individual fallback stage complete", "group", groupKey, "succeeded", len(inputs)-len(failed), "failed", len(failed))
	return succeeded, failed
}

func stage3[T any, R any](
	ctx context.Context,
	groupKey string,
	failed []T,
	cfg Config,
	single SingleFunc[T, R],
	logger *slog.Logger,
) []R {
	var results []R

	maxRetries := cfg.ServiceMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	for idx, input := range failed {
		var lastErr error
		succeeded := false

		for attempt := 1; attempt <= maxRetries; attempt++ {
			if ctx.Err() != nil {
				lastErr = ctx.Err()
				break
			}

			res, err := single(ctx, input)
			if err == nil {
				results = append(results, res...)
				succeeded = true
				cfg.Metrics.IncStage3Success()
				break
			}
			lastErr = err

			if attempt < maxRetries {
				if err := backoff.Delay(ctx, backoff.Linear(cfg.RetryBaseDelay, attempt)); err != nil {
					lastErr = err
					break
				}
			}
		}

		if !succeeded {
			cfg.Metrics.IncStage3PermanentFailure()
			logger.Error("sequential retry exhausted, input permanently failed", "group", groupKey, "error", lastErr)
		}

		// No delay after the last failed input (spec §8 invariant 8).
		if idx < len(failed)-1 {
			if err := backoff.Delay(ctx, cfg.RetryIterationDelay); err != nil {
				break
			}
		}
	}

	return results
}
