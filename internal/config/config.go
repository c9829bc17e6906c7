// Package config manages global (~/.config/contextf/config.toml) and
// explicitly loaded configuration for contextF.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all settings for a context build.
type Config struct {
	Search SearchConfig `toml:"search"`
	Tokens TokenConfig  `toml:"tokens"`
	LLM    LLMConfig    `toml:"llm"`
	Keys   KeysConfig   `toml:"keys"`
}

// SearchConfig controls file discovery and pattern matching.
type SearchConfig struct {
	DocsPath            string   `toml:"docs_path"`
	FilePatterns        []string `toml:"file_patterns"`
	MaxPatternsPerQuery int      `toml:"max_patterns_per_query"`
	MaxMatchesPerFile   int      `toml:"max_matches_per_file"`
	CaseSensitive       bool     `toml:"case_sensitive"`
}

// TokenConfig holds the token budgets and the tokenizer encoding.
type TokenConfig struct {
	Encoding            string `toml:"encoding"`
	ContextWindowTokens int    `toml:"context_window_tokens"`
	MaxContextTokens    int    `toml:"max_context_tokens"`
	MaxFileTokens       int    `toml:"max_file_tokens"`
}

// LLMConfig controls pattern generation from a free-form query.
type LLMConfig struct {
	Enabled     bool    `toml:"enabled"`
	Provider    string  `toml:"provider"`
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
}

// KeysConfig holds provider API keys. Env vars take precedence.
type KeysConfig struct {
	OpenAI    string `toml:"openai"`
	Anthropic string `toml:"anthropic"`
}

// Default returns sensible defaults.
func Default() Config {
	return Config{
		Search: SearchConfig{
			DocsPath:            "./docs",
			FilePatterns:        []string{"*.md", "*.txt"},
			MaxPatternsPerQuery: 3,
			MaxMatchesPerFile:   3,
			CaseSensitive:       false,
		},
		Tokens: TokenConfig{
			Encoding:            "cl100k_base",
			ContextWindowTokens: 10000,
			MaxContextTokens:    500000,
			MaxFileTokens:       200000,
		},
		LLM: LLMConfig{
			Enabled:     true,
			Provider:    "openai",
			Temperature: 0.3,
		},
	}
}

// GlobalPath returns the path to the global config file.
func GlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "contextf", "config.toml"), nil
}

// Load returns the effective configuration: defaults, overlaid with the
// global config file if present, overlaid with the file at path if non-empty.
func Load(path string) (Config, error) {
	cfg := Default()

	if global, err := GlobalPath(); err == nil {
		if _, err := os.Stat(global); err == nil {
			if _, err := toml.DecodeFile(global, &cfg); err != nil {
				return cfg, fmt.Errorf("config: load global: %w", err)
			}
		}
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	// Let env vars override config file API keys.
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Keys.OpenAI = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.Keys.Anthropic = v
	}

	return cfg, cfg.Validate()
}

// Validate checks budgets and search parameters.
func (c Config) Validate() error {
	if c.Tokens.ContextWindowTokens <= 0 {
		return fmt.Errorf("config: context_window_tokens must be positive, got %d", c.Tokens.ContextWindowTokens)
	}
	if c.Tokens.MaxContextTokens <= 0 {
		return fmt.Errorf("config: max_context_tokens must be positive, got %d", c.Tokens.MaxContextTokens)
	}
	if c.Tokens.MaxFileTokens <= 0 {
		return fmt.Errorf("config: max_file_tokens must be positive, got %d", c.Tokens.MaxFileTokens)
	}
	if c.Search.MaxPatternsPerQuery <= 0 {
		return fmt.Errorf("config: max_patterns_per_query must be positive, got %d", c.Search.MaxPatternsPerQuery)
	}
	if c.Search.MaxMatchesPerFile <= 0 {
		return fmt.Errorf("config: max_matches_per_file must be positive, got %d", c.Search.MaxMatchesPerFile)
	}
	if len(c.Search.FilePatterns) == 0 {
		return fmt.Errorf("config: file_patterns cannot be empty")
	}
	if c.Search.DocsPath == "" {
		return fmt.Errorf("config: docs_path cannot be empty")
	}
	return nil
}

// Save writes the config to the global config file.
func Save(cfg Config) error {
	path, err := GlobalPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
