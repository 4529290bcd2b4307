package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phunguyenpt/admitpredict/pkg/config"
	"github.com/phunguyenpt/admitpredict/pkg/expander"
	"github.com/phunguyenpt/admitpredict/pkg/perr"
	"github.com/phunguyenpt/admitpredict/pkg/pipeline"
	"github.com/phunguyenpt/admitpredict/pkg/predictclient"
	"github.com/phunguyenpt/admitpredict/pkg/repository"
	"github.com/phunguyenpt/admitpredict/pkg/student"
)

// L1Cmd runs the priority-based pipeline.
type L1Cmd struct {
	predictArgs
}

func (c *L1Cmd) Run() error {
	c.configureLogging()
	studentID, _ := c.identity()

	if c.DryRun {
		return dryRun("l1", studentID, c.UserID, func(p *student.Profile) (int, error) {
			inputs, err := expander.L1(p)
			return len(inputs), err
		})
	}

	ctx, cancel := setupContext()
	defer cancel()

	cfg, repo, client, err := wireUp()
	if err != nil {
		return wrapRunErr("l1", err)
	}

	results, err := pipeline.L1(ctx, repo, client, buildPipelineConfig(cfg), identityOf(c.predictArgs), slog.Default())
	if err != nil {
		return wrapRunErr("l1", err)
	}
	return writeResults(cfg.Output.Format, results)
}

// L2Cmd runs the exam-based pipeline.
type L2Cmd struct {
	predictArgs
}

func (c *L2Cmd) Run() error {
	c.configureLogging()
	studentID, _ := c.identity()

	if c.DryRun {
		return dryRun("l2", studentID, c.UserID, func(p *student.Profile) (int, error) {
			inputs, err := expander.L2(p)
			return len(inputs), err
		})
	}

	ctx, cancel := setupContext()
	defer cancel()

	cfg, repo, client, err := wireUp()
	if err != nil {
		return wrapRunErr("l2", err)
	}

	results, err := pipeline.L2(ctx, repo, client, buildPipelineConfig(cfg), identityOf(c.predictArgs), slog.Default())
	if err != nil {
		return wrapRunErr("l2", err)
	}
	return writeResults(cfg.Output.Format, results)
}

// L3Cmd runs the transcript-based pipeline.
type L3Cmd struct {
	predictArgs
}

func (c *L3Cmd) Run() error {
	c.configureLogging()
	studentID, _ := c.identity()

	if c.DryRun {
		return dryRun("l3", studentID, c.UserID, func(p *student.Profile) (int, error) {
			inputs, err := expander.L3(p)
			return len(inputs), err
		})
	}

	ctx, cancel := setupContext()
	defer cancel()

	cfg, repo, client, err := wireUp()
	if err != nil {
		return wrapRunErr("l3", err)
	}

	results, err := pipeline.L3(ctx, repo, client, buildPipelineConfig(cfg), identityOf(c.predictArgs), slog.Default())
	if err != nil {
		return wrapRunErr("l3", err)
	}
	return writeResults(cfg.Output.Format, results)
}

// setupContext wires Ctrl-C/SIGTERM cancellation, mirroring the
// teacher's ScanCmd.setupContext (minus the overall-scan timeout, which
// spec §6 has no equivalent of: the engine's own retry cascade is the
// only bound on a single prediction's wall-clock time).
func setupContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// wireUp loads config and builds the repository + HTTP client a real
// (non-dry-run) pipeline call needs.
func wireUp() (*config.Config, repository.Repository, *predictclient.Client, error) {
	cfg, err := loadEngineConfig(CLI.ConfigFile, CLI.Profile)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, demoRepository(), newPredictClient(cfg), nil
}

func identityOf(a predictArgs) pipeline.Identity {
	return pipeline.Identity{StudentID: a.StudentID, UserID: a.UserID}
}

// buildPipelineConfig assembles a pkg/pipeline.Config from the loaded
// engine config, composing the conversions config.EngineConfig exposes.
func buildPipelineConfig(cfg *config.Config) pipeline.Config {
	return pipeline.Config{
		Executor:     cfg.Engine.ToExecutorConfig(),
		L1ChunkHints: cfg.Engine.ToL1ChunkHints(),
		L2ChunkHints: cfg.Engine.ToL2ChunkHints(),
		L1ChunkDelay: cfg.Engine.L1ChunkDelay(),
		L2ChunkDelay: cfg.Engine.L2ChunkDelay(),
	}
}

// dryRun resolves studentID/userID against the demo repository and
// calls expand, printing the resulting input count without dispatching
// any HTTP traffic (spec §2 "dry-run / scenario-count mode").
func dryRun(pipelineName, studentID, userID string, expand func(*student.Profile) (int, error)) error {
	repo := demoRepository()
	profile, err := repo.FindStudent(context.Background(), studentID, userID)
	if err != nil {
		return wrapRunErr(pipelineName, err)
	}
	if profile == nil {
		return wrapRunErr(pipelineName, perr.NotFound(studentID))
	}

	n, err := expand(profile)
	if err != nil {
		return wrapRunErr(pipelineName, err)
	}

	fmt.Printf("%s: %d request input(s) expanded for student %q (no HTTP calls made)\n", pipelineName, n, studentID)
	return nil
}
