package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all parameters of a counting run. It is populated once at
// startup, from a YAML file and/or command line flags, and read-only
// afterwards.
type Config struct {
	// Corpus is the input text file. Empty means standard input.
	Corpus string `yaml:"corpus"`
	// TokenCounts is the token count output file. Empty means standard output.
	TokenCounts string `yaml:"token_counts"`
	// NgramCounts is the ngram count output file. Empty disables ngram
	// counting entirely.
	NgramCounts string `yaml:"ngram_counts"`

	TokenMin int `yaml:"token_min"`
	NgramMin int `yaml:"ngram_min"`
	MinN     int `yaml:"min_n"`
	MaxN     int `yaml:"max_n"`

	// FilterFirst applies the TokenMin filter before ngram expansion.
	// Without it, TokenMin is not applied at all when ngram counting is
	// enabled.
	FilterFirst bool `yaml:"filter_first"`
	// NoBracket disables wrapping tokens in '<' and '>' before ngram
	// extraction.
	NoBracket bool `yaml:"no_bracket"`
}

// Default returns a config with the standard parameter values.
func Default() *Config {
	return &Config{
		TokenMin: 1,
		NgramMin: 1,
		MinN:     3,
		MaxN:     6,
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid parameter, if any.
func (c *Config) Validate() error {
	if c.MinN < 1 {
		return fmt.Errorf("min_n is %d, the minimum ngram length cannot be smaller than 1", c.MinN)
	}
	if c.MinN > c.MaxN {
		return fmt.Errorf("max_n (%d) must be equal to or greater than min_n (%d)", c.MaxN, c.MinN)
	}
	if c.TokenMin < 0 {
		return fmt.Errorf("token_min cannot be negative, got %d", c.TokenMin)
	}
	if c.NgramMin < 0 {
		return fmt.Errorf("ngram_min cannot be negative, got %d", c.NgramMin)
	}
	return nil
}
