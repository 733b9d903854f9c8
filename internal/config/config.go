// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// Credentials and backends
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for the embedding capability
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty runs the in-memory store

	// Models
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name (default text-embedding-004)

	// Behavior
	NumOptions int  `json:"num_options,omitempty"` // Rewrite options requested per item (default 3)
	Debug      bool `json:"debug,omitempty"`       // Verbose/debug logging
	JSONLog    bool `json:"json_log,omitempty"`    // JSON log encoding
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills unset fields from environment variables.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.NumOptions < 0 {
		return fmt.Errorf("config error: 'num_options' must be non-negative")
	}
	return nil
}
