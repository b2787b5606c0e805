package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Batch modes.
const (
	ModeEnsemble = "ensemble"
	ModePolish   = "polish"
)

type Config struct {
	Mode    string        `yaml:"mode"`
	Paths   PathsConfig   `yaml:"paths"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Polish  PolishConfig  `yaml:"polish"`
	Logging LoggingConfig `yaml:"logging"`
	Watch   WatchConfig   `yaml:"watch"`
}

type PathsConfig struct {
	Corpus     string `yaml:"corpus"`
	Output     string `yaml:"output"`
	APIKeyFile string `yaml:"api_key_file"`
}

type GeminiConfig struct {
	Model           string `yaml:"model"`
	MaxOutputTokens int32  `yaml:"max_output_tokens"`
}

// PolishConfig controls output naming in polish mode: the OCR engine tag in
// the source filename is swapped for the processed tag.
type PolishConfig struct {
	InputTag  string `yaml:"input_tag"`
	OutputTag string `yaml:"output_tag"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type WatchConfig struct {
	SettleDelayMs int `yaml:"settle_delay_ms"`
}

// Load reads and validates a yaml configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Corpus == "" {
		return fmt.Errorf("paths.corpus is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Paths.APIKeyFile == "" {
		return fmt.Errorf("paths.api_key_file is required")
	}

	if c.Mode == "" {
		c.Mode = ModeEnsemble
	}
	if c.Mode != ModeEnsemble && c.Mode != ModePolish {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeEnsemble, ModePolish, c.Mode)
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.MaxOutputTokens == 0 {
		c.Gemini.MaxOutputTokens = 4096
	}
	if c.Polish.InputTag == "" {
		c.Polish.InputTag = "ABBYY"
	}
	if c.Polish.OutputTag == "" {
		c.Polish.OutputTag = "PROCESSED"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Watch.SettleDelayMs == 0 {
		c.Watch.SettleDelayMs = 500
	}

	return nil
}
