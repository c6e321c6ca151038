package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file expected at the repo root.
const FileName = "upitrail.yaml"

// Config represents the top-level upitrail.yaml configuration.
type Config struct {
	Currency   string         `yaml:"currency"`
	Categories []CategoryRule `yaml:"categories,omitempty"`
	Feed       FeedConfig     `yaml:"feed"`
}

// CategoryRule overrides one entry of the category keyword table. When any
// rules are present they replace the built-in table wholesale, in file order.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// FeedConfig tunes the simulated transaction feed.
type FeedConfig struct {
	CountMin int `yaml:"count_min"`
	CountMax int `yaml:"count_max"`
	DaysBack int `yaml:"days_back"`
}

// Load reads an upitrail.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Currency: "INR",
		Feed: FeedConfig{
			CountMin: 20,
			CountMax: 35,
			DaysBack: 30,
		},
	}
}
