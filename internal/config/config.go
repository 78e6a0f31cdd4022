package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Output string      `yaml:"output"`
	Log    LogConfig   `yaml:"log"`
	Batch  BatchConfig `yaml:"batch"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type BatchConfig struct {
	// StateDir holds the canonicalization state database. Empty means
	// alongside the practice directory being processed.
	StateDir string `yaml:"state_dir"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Output: "text",
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads config from a YAML file over the defaults, then applies
// environment variable overrides:
//
//	SWIMNOTES_OUTPUT, SWIMNOTES_LOG_LEVEL, SWIMNOTES_BATCH_STATE_DIR
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SWIMNOTES_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("SWIMNOTES_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SWIMNOTES_BATCH_STATE_DIR"); v != "" {
		cfg.Batch.StateDir = v
	}
}

func (c *Config) validate() error {
	switch c.Output {
	case "text", "json", "metrics":
	default:
		return fmt.Errorf("output must be text, json or metrics, got %q", c.Output)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}

// SlogLevel maps the configured log level to its slog value.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
