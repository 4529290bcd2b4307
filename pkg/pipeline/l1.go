package pipeline

import (
	"context"
	"log/slog"

	"github.com/phunguyenpt/admitpredict/pkg/executor"
	"github.com/phunguyenpt/admitpredict/pkg/expander"
	"github.com/phunguyenpt/admitpredict/pkg/perr"
	"github.com/phunguyenpt/admitpredict/pkg/postprocess"
	"github.com/phunguyenpt/admitpredict/pkg/predictclient"
	"github.com/phunguyenpt/admitpredict/pkg/repository"
	"github.com/phunguyenpt/admitpredict/pkg/scenario"
)

// L1 runs the priority-based pipeline for one student (spec §4.9).
func L1(ctx context.Context, repo repository.Repository, client *predictclient.Client, cfg Config, id Identity, logger *slog.Logger) ([]postprocess.L1Result, error) {
	logger = taggedLogger(logger, "l1", id)

	profile, err := fetchProfile(ctx, repo, id)
	if err != nil {
		return nil, err
	}

	inputs, err := expander.L1(profile)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, perr.InvalidInput("L1 expansion produced no request inputs")
	}

	groups := executor.PartitionByKey(inputs, func(u scenario.UserInputL1) string { return u.NhomNganh })
	chunkGate, individualGate := newGates(cfg.Executor)

	batch := func(ctx context.Context, items []scenario.UserInputL1, concurrency int) ([]scenario.L1PredictResult, error) {
		return client.PredictL1Batch(ctx, items, concurrency)
	}
	single := func(ctx context.Context, item scenario.UserInputL1) ([]scenario.L1PredictResult, error) {
		return client.PredictL1(ctx, item)
	}

	results := dispatchGroups(groups, func(g executor.Group[scenario.UserInputL1]) []scenario.L1PredictResult {
		return executor.RunChunked(ctx, g.Key, g.Items, cfg.L1ChunkHints, cfg.L1ChunkDelay, cfg.Executor, chunkGate, individualGate, batch, single, logger)
	})

	return postprocess.L1(results), nil
}
