// Package config loads the application configuration for the CLI from an
// optional YAML file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "COMUNIDATA_CONFIG"
	databasePathEnv   = "COMUNIDATA_DB"
	validatorHostEnv  = "COMUNIDATA_VALIDATOR_HOST"
	validatorModelEnv = "COMUNIDATA_VALIDATOR_MODEL"
	embeddingHostEnv  = "COMUNIDATA_EMBEDDING_HOST"
	embeddingModelEnv = "COMUNIDATA_EMBEDDING_MODEL"
)

// Config holds the settings required across the application.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	AI       AIConfig       `yaml:"ai"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// DatabaseConfig describes where the Badger store lives.
type DatabaseConfig struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"inMemory"`
}

// AIConfig defines how to reach the validation and embedding services.
type AIConfig struct {
	ValidatorHost  string `yaml:"validatorHost"`
	ValidatorModel string `yaml:"validatorModel"`
	EmbeddingHost  string `yaml:"embeddingHost"`
	EmbeddingModel string `yaml:"embeddingModel"`
	Dimensions     int    `yaml:"dimensions"`
}

// PipelineConfig tunes batch processing.
type PipelineConfig struct {
	GroupSize   int      `yaml:"groupSize"`
	WaveSize    int      `yaml:"waveSize"`
	WaveTimeout Duration `yaml:"waveTimeout"`
}

// Duration wraps time.Duration so YAML values like "2m" parse naturally.
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Load reads YAML configuration (if present) and applies environment
// overrides. A missing or unreadable file is an error only when it was
// explicitly requested via COMUNIDATA_CONFIG.
func Load() (Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databasePathEnv); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(validatorHostEnv); v != "" {
		c.AI.ValidatorHost = v
	}
	if v := os.Getenv(validatorModelEnv); v != "" {
		c.AI.ValidatorModel = v
	}
	if v := os.Getenv(embeddingHostEnv); v != "" {
		c.AI.EmbeddingHost = v
	}
	if v := os.Getenv(embeddingModelEnv); v != "" {
		c.AI.EmbeddingModel = v
	}
}

func defaultConfig() Config {
	return Config{
		Database: DatabaseConfig{Path: "comunidata.db"},
		AI: AIConfig{
			ValidatorHost:  "http://localhost:11434/v1",
			ValidatorModel: "gpt-4o-mini",
			EmbeddingHost:  "http://localhost:11434/v1",
			EmbeddingModel: "text-embedding-3-small",
			Dimensions:     1536,
		},
		Pipeline: PipelineConfig{
			GroupSize:   50,
			WaveSize:    3,
			WaveTimeout: Duration(10 * time.Minute),
		},
	}
}
