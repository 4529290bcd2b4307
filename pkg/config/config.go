// Package config loads the engine's tunables: the concurrency/retry
// knobs the executor and chunk planner read (spec §6), plus the
// surrounding service config (inference server URL, output format).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/phunguyenpt/admitpredict/pkg/chunk"
	"github.com/phunguyenpt/admitpredict/pkg/executor"
)

// Config is the complete engine configuration.
type Config struct {
	Engine   EngineConfig       `yaml:"engine" koanf:"engine"`
	Client   ClientConfig       `yaml:"client" koanf:"client"`
	Output   OutputConfig       `yaml:"output" koanf:"output"`
	Profiles map[string]Profile `yaml:"profiles,omitempty" koanf:"profiles"`
}

// Profile is a named override bundle, applied on top of the base
// Config by name (e.g. "staging" dialing retries down for faster
// local iteration).
type Profile struct {
	Engine EngineConfig `yaml:"engine,omitempty"`
	Client ClientConfig `yaml:"client,omitempty"`
	Output OutputConfig `yaml:"output,omitempty"`
}

// EngineConfig is the single engine-visible configuration struct spec
// §6 names. All *Ms fields are milliseconds on the wire; ToExecutorConfig and
// the ToL1ChunkHints/ToL2ChunkHints helpers convert to the typed values
// pkg/executor and pkg/chunk expect.
type EngineConfig struct {
	ServerBatchConcurrency int `yaml:"server_batch_concurrency" koanf:"server_batch_concurrency" validate:"gte=1"`

	ServiceBatchConcurrency    int `yaml:"service_batch_concurrency" koanf:"service_batch_concurrency" validate:"gte=1"`
	ServiceMinBatchConcurrency int `yaml:"service_min_batch_concurrency" koanf:"service_min_batch_concurrency" validate:"gte=1"`
	ServiceInputsPerWorker     int `yaml:"service_inputs_per_worker" koanf:"service_inputs_per_worker" validate:"gte=1"`

	ServicePredictionConcurrency int `yaml:"service_prediction_concurrency" koanf:"service_prediction_concurrency" validate:"gte=1"`
	ServiceMaxRetries            int `yaml:"service_max_retries" koanf:"service_max_retries" validate:"gte=0"`

	ServiceRetryBaseDelayMs      int `yaml:"service_retry_base_delay_ms" koanf:"service_retry_base_delay_ms" validate:"gte=0"`
	ServiceRetryIterationDelayMs int `yaml:"service_retry_iteration_delay_ms" koanf:"service_retry_iteration_delay_ms" validate:"gte=0"`
	ServiceRequestDelayMs        int `yaml:"service_request_delay_ms" koanf:"service_request_delay_ms" validate:"gte=0"`

	ServiceL1ChunkDelayMs int `yaml:"service_l1_chunk_delay_ms" koanf:"service_l1_chunk_delay_ms" validate:"gte=0"`
	ServiceL2ChunkDelayMs int `yaml:"service_l2_chunk_delay_ms" koanf:"service_l2_chunk_delay_ms" validate:"gte=0"`

	ServiceL1ChunkSizeInputArray int `yaml:"service_l1_chunk_size_input_array" koanf:"service_l1_chunk_size_input_array" validate:"gte=1"`
	ServiceL2ChunkSizeInputArray int `yaml:"service_l2_chunk_size_input_array" koanf:"service_l2_chunk_size_input_array" validate:"gte=1"`

	ServiceNetworkLatencyMs int `yaml:"service_network_latency_ms" koanf:"service_network_latency_ms" validate:"gte=0"`

	// ProcessingComplexity tunes the chunk planner's complexity factor
	// (spec §4.4); not one of spec §6's named fields but the planner
	// has no other source for it.
	ProcessingComplexity string `yaml:"processing_complexity" koanf:"processing_complexity" validate:"omitempty,oneof=low medium high"`
	// MemoryLimitMb feeds the chunk planner's memory-based candidate
	// (spec §4.4 step 2 "memoryBased"); likewise engine-internal rather
	// than a spec §6 field.
	MemoryLimitMb int `yaml:"memory_limit_mb" koanf:"memory_limit_mb" validate:"gte=1"`
}

// ClientConfig configures the inference HTTP client (spec §4.6).
type ClientConfig struct {
	BaseURL   string `yaml:"base_url" koanf:"base_url" validate:"required,url"`
	TimeoutMs int    `yaml:"timeout_ms" koanf:"timeout_ms" validate:"gte=1"`
}

// OutputConfig controls how CLI results are rendered (grounded on the
// teacher's own OutputConfig).
type OutputConfig struct {
	Format string `yaml:"format" koanf:"format" validate:"omitempty,oneof=json jsonl table"`
	Path   string `yaml:"path" koanf:"path"`
}

// Validate cross-checks what the struct tags alone can't express: the
// min/max batch concurrency ordering. It also defaults an empty
// processing complexity to "medium" and rejects unknown output formats.
func (c *Config) Validate() error {
	e := c.Engine
	if e.ServiceMinBatchConcurrency > e.ServiceBatchConcurrency {
		return fmt.Errorf("engine.service_min_batch_concurrency (%d) must be <= engine.service_batch_concurrency (%d)", e.ServiceMinBatchConcurrency, e.ServiceBatchConcurrency)
	}
	if e.ProcessingComplexity == "" {
		e.ProcessingComplexity = "medium"
		c.Engine.ProcessingComplexity = e.ProcessingComplexity
	}
	if c.Output.Format != "" {
		validFormats := map[string]bool{"json": true, "jsonl": true, "table": true}
		if !validFormats[c.Output.Format] {
			return fmt.Errorf("invalid output format: %s (valid: json, jsonl, table)", c.Output.Format)
		}
	}
	return nil
}

// Merge merges another config into this one, with the other config
// taking precedence on any field it sets to a non-zero value.
func (c *Config) Merge(other *Config) {
	mergeEngine(&c.Engine, other.Engine)

	if other.Client.BaseURL != "" {
		c.Client.BaseURL = other.Client.BaseURL
	}
	if other.Client.TimeoutMs != 0 {
		c.Client.TimeoutMs = other.Client.TimeoutMs
	}

	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Path != "" {
		c.Output.Path = other.Output.Path
	}
}

func mergeEngine(c *EngineConfig, other EngineConfig) {
	if other.ServerBatchConcurrency != 0 {
		c.ServerBatchConcurrency = other.ServerBatchConcurrency
	}
	if other.ServiceBatchConcurrency != 0 {
		c.ServiceBatchConcurrency = other.ServiceBatchConcurrency
	}
	if other.ServiceMinBatchConcurrency != 0 {
		c.ServiceMinBatchConcurrency = other.ServiceMinBatchConcurrency
	}
	if other.ServiceInputsPerWorker != 0 {
		c.ServiceInputsPerWorker = other.ServiceInputsPerWorker
	}
	if other.ServicePredictionConcurrency != 0 {
		c.ServicePredictionConcurrency = other.ServicePredictionConcurrency
	}
	if other.ServiceMaxRetries != 0 {
		c.ServiceMaxRetries = other.ServiceMaxRetries
	}
	if other.ServiceRetryBaseDelayMs != 0 {
		c.ServiceRetryBaseDelayMs = other.ServiceRetryBaseDelayMs
	}
	if other.ServiceRetryIterationDelayMs != 0 {
		c.ServiceRetryIterationDelayMs = other.ServiceRetryIterationDelayMs
	}
	if other.ServiceRequestDelayMs != 0 {
		c.ServiceRequestDelayMs = other.ServiceRequestDelayMs
	}
	if other.ServiceL1ChunkDelayMs != 0 {
		c.ServiceL1ChunkDelayMs = other.ServiceL1ChunkDelayMs
	}
	if other.ServiceL2ChunkDelayMs != 0 {
		c.ServiceL2ChunkDelayMs = other.ServiceL2ChunkDelayMs
	}
	if other.ServiceL1ChunkSizeInputArray != 0 {
		c.ServiceL1ChunkSizeInputArray = other.ServiceL1ChunkSizeInputArray
	}
	if other.ServiceL2ChunkSizeInputArray != 0 {
		c.ServiceL2ChunkSizeInputArray = other.ServiceL2ChunkSizeInputArray
	}
	if other.ServiceNetworkLatencyMs != 0 {
		c.ServiceNetworkLatencyMs = other.ServiceNetworkLatencyMs
	}
	if other.ProcessingComplexity != "" {
		c.ProcessingComplexity = other.ProcessingComplexity
	}
	if other.MemoryLimitMb != 0 {
		c.MemoryLimitMb = other.MemoryLimitMb
	}
}

// ApplyProfile applies a named profile to this config.
func (c *Config) ApplyProfile(profileName string) error {
	profile, exists := c.Profiles[profileName]
	if !exists {
		return fmt.Errorf("profile %q not found", profileName)
	}
	c.Merge(&Config{Engine: profile.Engine, Client: profile.Client, Output: profile.Output})
	return nil
}

// ToExecutorConfig converts the millisecond wire fields into the typed
// durations pkg/executor.Config expects.
func (e EngineConfig) ToExecutorConfig() executor.Config {
	return executor.Config{
		ServerBatchConcurrency:       e.ServerBatchConcurrency,
		ServiceBatchConcurrency:      e.ServiceBatchConcurrency,
		ServiceMinBatchConcurrency:   e.ServiceMinBatchConcurrency,
		ServiceInputsPerWorker:       e.ServiceInputsPerWorker,
		ServicePredictionConcurrency: e.ServicePredictionConcurrency,
		ServiceMaxRetries:            e.ServiceMaxRetries,
		RetryBaseDelay:               time.Duration(e.ServiceRetryBaseDelayMs) * time.Millisecond,
		RetryIterationDelay:          time.Duration(e.ServiceRetryIterationDelayMs) * time.Millisecond,
		RequestDelay:                 time.Duration(e.ServiceRequestDelayMs) * time.Millisecond,
	}
}

// ToL1ChunkHints builds the chunk planner hints for the L1 pipeline
// (spec §4.4/§4.7: "L1 and L2 use independently tunable maxChunkSize").
func (e EngineConfig) ToL1ChunkHints() chunk.Hints {
	return chunk.Hints{
		ServerConcurrency:    e.ServerBatchConcurrency,
		NetworkLatencyMs:     float64(e.ServiceNetworkLatencyMs),
		MemoryLimit:          float64(e.MemoryLimitMb),
		ProcessingComplexity: chunk.Complexity(e.ProcessingComplexity),
		MaxChunkSize:         e.ServiceL1ChunkSizeInputArray,
	}
}

// ToL2ChunkHints builds the chunk planner hints for the L2 pipeline.
func (e EngineConfig) ToL2ChunkHints() chunk.Hints {
	return chunk.Hints{
		ServerConcurrency:    e.ServerBatchConcurrency,
		NetworkLatencyMs:     float64(e.ServiceNetworkLatencyMs),
		MemoryLimit:          float64(e.MemoryLimitMb),
		ProcessingComplexity: chunk.Complexity(e.ProcessingComplexity),
		MaxChunkSize:         e.ServiceL2ChunkSizeInputArray,
	}
}

// L1ChunkDelay returns the between-chunk delay for the L1 pipeline.
// cmd/predictor composes this with ToExecutorConfig/ToL1ChunkHints to
// build a pkg/pipeline.Config; this package does not import
// pkg/pipeline, and cmd wires both.
func (e EngineConfig) L1ChunkDelay() time.Duration {
	return time.Duration(e.ServiceL1ChunkDelayMs) * time.Millisecond
}

// L2ChunkDelay returns the between-chunk delay for the L2 pipeline.
func (e EngineConfig) L2ChunkDelay() time.Duration {
	return time.Duration(e.ServiceL2ChunkDelayMs) * time.Millisecond
}

// interpolateEnvVars replaces ${VAR} with environment variable values.
func interpolateEnvVars(s string, getenv func(string) (string, bool)) (string, error) {
	result := s
	start := 0
	for {
		idx := strings.Index(result[start:], "${")
		if idx == -1 {
			break
		}
		idx += start

		endIdx := strings.Index(result[idx:], "}")
		if endIdx == -1 {
			return "", fmt.Errorf("unclosed environment variable reference at position %d", idx)
		}
		endIdx += idx

		varName := result[idx+2 : endIdx]
		value, ok := getenv(varName)
		if !ok {
			return "", fmt.Errorf("environment variable %q is not set", varName)
		}

		result = result[:idx] + value + result[endIdx+1:]
		start = idx + len(value)
	}
	return result, nil
}
