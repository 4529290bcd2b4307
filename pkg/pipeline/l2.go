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

// L2 runs the exam-based pipeline for one student (spec §4.9).
func L2(ctx context.Context, repo repository.Repository, client *predictclient.Client, cfg Config, id Identity, logger *slog.Logger) ([]scenario.L2PredictResult, error) {
	logger = taggedLogger(logger, "l2", id)

	profile, err := fetchProfile(ctx, repo, id)
	if err != nil {
		return nil, err
	}

	inputs, err := expander.L2(profile)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, perr.InvalidInput("L2 expansion produced no request inputs")
	}

	// Inputs arrive pre-sorted by to_hop_mon (spec §4.5 L2 step 5);
	// PartitionByKey's first-seen ordering preserves that for chunk
	// dispatch ordering (spec §5).
	groups := executor.PartitionByKey(inputs, func(u scenario.UserInputL2) string { return u.ToHopMon })
	chunkGate, individualGate := newGates(cfg.Executor)

	batch := func(ctx context.Context, items []scenario.UserInputL2, concurrency int) ([]scenario.L2PredictResult, error) {
		return client.PredictL2Batch(ctx, items, concurrency)
	}
	single := func(ctx context.Context, item scenario.UserInputL2) ([]scenario.L2PredictResult, error) {
		return client.PredictL2(ctx, item)
	}

	results := dispatchGroups(groups, func(g executor.Group[scenario.UserInputL2]) []scenario.L2PredictResult {
		return executor.RunChunked(ctx, g.Key, g.Items, cfg.L2ChunkHints, cfg.L2ChunkDelay, cfg.Executor, chunkGate, individualGate, batch, single, logger)
	})

	return postprocess.L2(results), nil
}
