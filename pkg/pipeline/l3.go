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

// L3 runs the transcript-based pipeline for one student (spec §4.9).
func L3(ctx context.Context, repo repository.Repository, client *predictclient.Client, cfg Config, id Identity, logger *slog.Logger) ([]scenario.L3PredictResult, error) {
	logger = taggedLogger(logger, "l3", id)

	profile, err := fetchProfile(ctx, repo, id)
	if err != nil {
		return nil, err
	}

	if len(profile.TranscriptRecords) == 0 && len(profile.TranscriptFiles) == 0 {
		files, err := repo.FindActiveFiles(ctx, id.StudentID)
		if err != nil {
			return nil, err
		}
		// Copy rather than mutate the repository's stored profile in place.
		withFiles := *profile
		withFiles.TranscriptFiles = files
		profile = &withFiles
	}

	inputs, err := expander.L3(profile)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, perr.InvalidInput("L3 expansion produced no request inputs")
	}

	groups := executor.PartitionByKey(inputs, func(u scenario.UserInputL3) string { return u.NhomNganh })
	chunkGate, individualGate := newGates(cfg.Executor)

	batch := func(ctx context.Context, items []scenario.UserInputL3, concurrency int) ([]scenario.L3PredictResult, error) {
		return client.CalculateL3Batch(ctx, items)
	}
	single := func(ctx context.Context, item scenario.UserInputL3) ([]scenario.L3PredictResult, error) {
		result, ok, err := client.CalculateL3(ctx, item)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return []scenario.L3PredictResult{result}, nil
	}

	// L3 dispatches whole major-groups without sub-chunking (spec §4.7),
	// but each group still counts against the shared chunk gate.
	results := dispatchGroups(groups, func(g executor.Group[scenario.UserInputL3]) []scenario.L3PredictResult {
		if err := chunkGate.Acquire(ctx); err != nil {
			logger.Warn("L3 group dispatch cancelled before acquiring gate", "group", g.Key, "error", err)
			return nil
		}
		defer chunkGate.Release()
		return executor.RunWhole(ctx, g.Key, g.Items, cfg.Executor, individualGate, batch, single, logger)
	})

	return postprocess.L3(results), nil
}
