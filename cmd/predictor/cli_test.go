package main

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kongExit struct{ code int }

// TestCLIStructParsing mirrors the teacher's top-level command parsing
// smoke test: every registered subcommand should parse without error.
func TestCLIStructParsing(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "help flag", args: []string{"--help"}},
		{name: "version command", args: []string{"version"}},
		{name: "predict l1 with student id", args: []string{"predict", "l1", "demo-student"}},
		{name: "predict l2 dry-run", args: []string{"predict", "l2", "demo-student", "--dry-run"}},
		{name: "predict l3 with user id", args: []string{"predict", "l3", "demo-student", "--user-id", "u1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cli struct {
				Debug      bool       `help:"Enable debug logging." short:"d"`
				LogFormat  string     `help:"Log format." enum:"text,json" default:"text" name:"log-format"`
				ConfigFile string     `help:"YAML config file path." name:"config-file" short:"c"`
				Profile    string     `help:"Named config profile." name:"profile"`
				Version    VersionCmd `cmd:"" help:"Print version information."`
				Predict    PredictCmd `cmd:"" help:"Run a prediction pipeline for one student."`
			}

			var stdout bytes.Buffer
			didExit := false
			exitCode := -1

			parser, err := kong.New(&cli,
				kong.Name("predictor"),
				kong.Exit(func(code int) {
					didExit = true
					exitCode = code
					panic(kongExit{code: code})
				}),
			)
			require.NoError(t, err)
			parser.Stdout = &stdout
			parser.Stderr = &stdout

			var parseErr error
			func() {
				defer func() {
					if r := recover(); r != nil {
						if _, ok := r.(kongExit); ok {
							return
						}
						panic(r)
					}
				}()
				_, parseErr = parser.Parse(tt.args)
			}()

			if tt.name == "help flag" {
				assert.True(t, didExit)
				assert.Equal(t, 0, exitCode)
				assert.Contains(t, stdout.String(), "Usage: predictor")
				return
			}
			assert.NoError(t, parseErr)
			assert.False(t, didExit)
		})
	}
}

// TestPredictCmdRequiresStudentID checks the positional arg is enforced.
func TestPredictCmdRequiresStudentID(t *testing.T) {
	var cli struct {
		Predict PredictCmd `cmd:""`
	}

	parser, err := kong.New(&cli, kong.Name("predictor"), kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"predict", "l1"})
	assert.Error(t, err)
}

// TestPredictCmdFlagParsing verifies student-id/user-id/dry-run parse
// into the expected fields across all three pipeline subcommands.
func TestPredictCmdFlagParsing(t *testing.T) {
	var cli struct {
		Predict PredictCmd `cmd:""`
	}

	parser, err := kong.New(&cli, kong.Name("predictor"), kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"predict", "l2", "s-42", "--user-id", "u-7", "--dry-run"})
	require.NoError(t, err)

	assert.Equal(t, "s-42", cli.Predict.L2.StudentID)
	assert.Equal(t, "u-7", cli.Predict.L2.UserID)
	assert.True(t, cli.Predict.L2.DryRun)
}

// TestVersionCmdRun verifies VersionCmd.Run() does not error.
func TestVersionCmdRun(t *testing.T) {
	cmd := VersionCmd{}
	assert.NoError(t, cmd.Run())
}
