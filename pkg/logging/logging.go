package logging

import (
	"io"
	"log/slog"
	"os"
)

// Configure sets up the global slog logger with specified level and format.
//
// Formats:
//   - "json": Structured JSON output for production
//   - "text": Human-readable text for development
//
// Levels: slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError
func Configure(level slog.Level, format string, output io.Writer) {
	if output == nil {
		output = os.Stderr
	}

	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: level,
	}

	switch format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	case "text":
		handler = slog.NewTextHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// ParseLevel converts string to slog.Level
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithPipeline tags logger with the two fields every pipeline log line
// in this engine carries: which of l1/l2/l3 is running and which
// student it's running for (spec §7 observability: "every stage
// transition emits a structured log event ... scoped to the request
// that produced it"). Falls back to slog.Default() when logger is nil,
// so callers never need their own nil check before tagging.
func WithPipeline(logger *slog.Logger, pipeline, studentID string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("pipeline", pipeline, "student_id", studentID)
}
