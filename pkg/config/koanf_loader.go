package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// defaultConfig returns the engine's out-of-the-box tuning, sized for a
// local inference server rather than a production fleet (spec §6 names
// the engine concurrency/retry/delay/chunk fields; processing_complexity,
// memory_limit_mb and the client/output blocks are this engine's own
// additions; all values are this engine's own defaults).
func defaultConfig() Config {
	return Config{
		Engine: EngineConfig{
			ServerBatchConcurrency:       4,
			ServiceBatchConcurrency:      8,
			ServiceMinBatchConcurrency:   2,
			ServiceInputsPerWorker:       5,
			ServicePredictionConcurrency: 4,
			ServiceMaxRetries:            3,
			ServiceRetryBaseDelayMs:      500,
			ServiceRetryIterationDelayMs: 200,
			ServiceRequestDelayMs:        50,
			ServiceL1ChunkDelayMs:        100,
			ServiceL2ChunkDelayMs:        100,
			ServiceL1ChunkSizeInputArray: 20,
			ServiceL2ChunkSizeInputArray: 20,
			ServiceNetworkLatencyMs:      100,
			ProcessingComplexity:         "medium",
			MemoryLimitMb:                512,
		},
		Client: ClientConfig{
			BaseURL:   "http://localhost:8000",
			TimeoutMs: 20000,
		},
		Output: OutputConfig{
			Format: "json",
		},
	}
}

// LoadConfigKoanf loads configuration with precedence:
// Environment Variables > Config File > built-in defaults.
func LoadConfigKoanf(configPath string) (*Config, error) {
	cfg := defaultConfig()

	k := koanf.New(".")

	// 1. Load YAML config file, if given.
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// 2. Load environment variables over the file.
	// ADMITPREDICT_ENGINE__SERVICE_MAX_RETRIES -> engine.service_max_retries
	// ADMITPREDICT_CLIENT__BASE_URL -> client.base_url
	err := k.Load(env.Provider("ADMITPREDICT_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "ADMITPREDICT_")
		s = strings.Replace(s, "__", ".", -1)
		s = strings.ToLower(s)
		return s
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var loaded Config
	if err := k.UnmarshalWithConf("", &loaded, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}
	cfg.Merge(&loaded)

	v := validator.New()
	if err := v.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
