package executor

import (
	"time"

	"github.com/phunguyenpt/admitpredict/pkg/metrics"
)

// Config mirrors the "Engine-visible configuration" struct (spec §6)
// that is relevant to the batch executor and chunk/concurrency
// scheduling. All durations are already converted from the
// milliseconds the wire config uses.
type Config struct {
	ServerBatchConcurrency       int // bound on concurrent chunk/group dispatch
	ServiceBatchConcurrency      int // upper bound for the computed concurrency query param
	ServiceMinBatchConcurrency   int // lower bound for the computed concurrency query param
	ServiceInputsPerWorker       int // divisor for dynamic concurrency
	ServicePredictionConcurrency int // bound on Stage-2 individual-fallback fan-out
	ServiceMaxRetries            int // max attempts in Stage 3
	RetryBaseDelay               time.Duration
	RetryIterationDelay          time.Duration
	RequestDelay                 time.Duration

	// Metrics records stage-transition outcomes (spec §7 observability).
	// Nil is valid: every Metrics method no-ops on a nil receiver.
	Metrics *metrics.Metrics
}
