package executor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/phunguyenpt/admitpredict/pkg/backoff"
	"github.com/phunguyenpt/admitpredict/pkg/chunk"
	"github.com/phunguyenpt/admitpredict/pkg/gate"
)

// RunChunked splits inputs into server-sized chunks (pkg/chunk), dispatches
// each chunk through the three-stage retry cascade bounded by chunkGate,
// and staggers chunk launches by chunkDelay. This is the L1/L2 dispatch
// shape (spec §4.7): L1 and L2 sub-chunk a group's scenarios before
// sending them to the batch endpoint; L3 does not (see RunWhole).
func RunChunked[T any, R any](
	ctx context.Context,
	groupKey string,
	inputs []T,
	hints chunk.Hints,
	chunkDelay time.Duration,
	cfg Config,
	chunkGate *gate.Gate,
	individualGate *gate.Gate,
	batch BatchFunc[T, R],
	single SingleFunc[T, R],
	logger *slog.Logger,
) []R {
	if len(inputs) == 0 {
		return nil
	}
	cfg.Metrics.IncGroupDispatched()

	plan := chunk.OptimalSize(len(inputs), hints)
	size := plan.Size
	if size < 1 {
		size = 1
	}
	logger.Info("chunk plan computed", "group", groupKey, "total", len(inputs), "chunkSize", size, "limitingFactor", plan.LimitingFactor)

	var chunks [][]T
	for start := 0; start < len(inputs); start += size {
		end := start + size
		if end > len(inputs) {
			end = len(inputs)
		}
		chunks = append(chunks, inputs[start:end])
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []R
	)

	for i, c := range chunks {
		if i > 0 {
			if err := backoff.Delay(ctx, chunkDelay); err != nil {
				break
			}
		}

		c := c
		idx := i
		wg.Add(1)
		go func() {
			defer wg.Done()

			if err := chunkGate.Acquire(ctx); err != nil {
				logger.Warn("chunk dispatch cancelled before acquiring gate", "group", groupKey, "chunk", idx, "error", err)
				return
			}
			defer chunkGate.Release()
			cfg.Metrics.IncChunkDispatched()

			out := runGroup(ctx, groupKey, c, cfg, individualGate, batch, single, logger)

			mu.Lock()
			results = append(results, out...)
			mu.Unlock()
		}()
	}

	wg.Wait()
	return results
}

// RunWhole dispatches an entire group through the retry cascade as a
// single unit, with no sub-chunking. L3 uses this: its batch endpoint
// operates over whole major-group sets (spec §4.7).
func RunWhole[T any, R any](
	ctx context.Context,
	groupKey string,
	inputs []T,
	cfg Config,
	individualGate *gate.Gate,
	batch BatchFunc[T, R],
	single SingleFunc[T, R],
	logger *slog.Logger,
) []R {
	cfg.Metrics.IncGroupDispatched()
	return runGroup(ctx, groupKey, inputs, cfg, individualGate, batch, single, logger)
}
