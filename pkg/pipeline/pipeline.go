// Package pipeline assembles expander, executor, and post-processor
// into the three public entry points the engine exposes (spec §4.9):
// fetch the profile, expand it into request inputs, run the retry
// cascade across groups, post-process, and return the result list.
package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/phunguyenpt/admitpredict/pkg/chunk"
	"github.com/phunguyenpt/admitpredict/pkg/executor"
	"github.com/phunguyenpt/admitpredict/pkg/gate"
	"github.com/phunguyenpt/admitpredict/pkg/logging"
	"github.com/phunguyenpt/admitpredict/pkg/perr"
	"github.com/phunguyenpt/admitpredict/pkg/repository"
	"github.com/phunguyenpt/admitpredict/pkg/student"
)

// Config bundles the executor tuning (pkg/executor.Config) with the
// pipeline-specific chunk delays and chunk-planner hints L1/L2 need
// (spec §4.7: "L1 and L2 use independently tunable [chunk delay]
// values").
type Config struct {
	Executor executor.Config

	L1ChunkHints chunk.Hints
	L2ChunkHints chunk.Hints
	L1ChunkDelay time.Duration
	L2ChunkDelay time.Duration
}

// Identity is the (studentId, userId|null) lookup key (spec §4.9 step 1).
type Identity struct {
	StudentID string
	UserID    string // empty means "no ownership scoping"
}

// fetchProfile resolves id via repo, turning a not-found lookup into
// perr.NotFound (spec §4.9 step 1).
func fetchProfile(ctx context.Context, repo repository.Repository, id Identity) (*student.Profile, error) {
	profile, err := repo.FindStudent(ctx, id.StudentID, id.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, perr.NotFound(id.StudentID)
	}
	return profile, nil
}

// dispatchGroups runs groupFn concurrently over every partition in
// groups, preserving each group's slot in the returned slice regardless
// of completion order, then flattens. The post-processor — not the
// scheduler — is what needs a deterministic collection order (spec §5
// "insertion-order semantics of the result map"), so results are
// reassembled in original group order even though groups race.
func dispatchGroups[T any, R any](groups []executor.Group[T], groupFn func(group executor.Group[T]) []R) []R {
	slots := make([][]R, len(groups))
	var wg sync.WaitGroup
	for i, g := range groups {
		i, g := i, g
		wg.Add(1)
		go func() {
			defer wg.Done()
			slots[i] = groupFn(g)
		}()
	}
	wg.Wait()

	var out []R
	for _, s := range slots {
		out = append(out, s...)
	}
	return out
}

// taggedLogger tags the caller-supplied logger (or slog.Default(), if
// nil) with this run's pipeline name and student id, so every log line
// the retry cascade emits is scoped to the request that produced it.
func taggedLogger(l *slog.Logger, pipelineName string, id Identity) *slog.Logger {
	return logging.WithPipeline(l, pipelineName, id.StudentID)
}

// newGates builds the two semaphores the engine's concurrency model
// uses (spec §4.2/§5): one for groups/chunks, one for the
// individual-fallback fan-out within a group.
func newGates(cfg executor.Config) (chunkGate, individualGate *gate.Gate) {
	return gate.New(cfg.ServerBatchConcurrency), gate.New(cfg.ServicePredictionConcurrency)
}
