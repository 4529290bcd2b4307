package main

import (
	"fmt"
	"log/slog"

	"github.com/phunguyenpt/admitpredict/pkg/logging"
)

// CLI is the predictor command-line interface.
var CLI struct {
	Debug      bool   `help:"Enable debug logging." short:"d" env:"ADMITPREDICT_DEBUG"`
	LogFormat  string `help:"Log format: text or json." enum:"text,json" default:"text" name:"log-format"`
	ConfigFile string `help:"YAML config file path." type:"existingfile" name:"config-file" short:"c"`
	Profile    string `help:"Named config profile to apply on top of the base config." name:"profile"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Predict PredictCmd `cmd:"" help:"Run a prediction pipeline for one student."`
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	printVersion()
	return nil
}

// PredictCmd groups the three pipeline subcommands, mirroring the
// teacher's single-level ScanCmd but split per pipeline since each
// expects a different request-input shape.
type PredictCmd struct {
	L1 L1Cmd `cmd:"" help:"Run the priority-based pipeline (awards x major)."`
	L2 L2Cmd `cmd:"" help:"Run the exam-based pipeline (exam scenario x language cert x major)."`
	L3 L3Cmd `cmd:"" help:"Run the transcript-based pipeline (english cert x intl cert x aptitude x major)."`
}

// predictArgs are the flags shared by predict l1/l2/l3.
type predictArgs struct {
	StudentID string `arg:"" help:"Student identity to look up." name:"student-id"`
	UserID    string `help:"Optional owning user id, for ownership-scoped lookups." name:"user-id"`
	DryRun    bool   `help:"Only expand request inputs and print the count; make no HTTP calls." name:"dry-run"`
}

func (a predictArgs) configureLogging() {
	level := slog.LevelInfo
	if CLI.Debug {
		level = slog.LevelDebug
	}
	logging.Configure(level, CLI.LogFormat, nil)
}

func (a predictArgs) identity() (studentID, userID string) {
	return a.StudentID, a.UserID
}

func wrapRunErr(pipeline string, err error) error {
	return fmt.Errorf("predict %s: %w", pipeline, err)
}
