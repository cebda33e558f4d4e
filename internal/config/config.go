package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backends understood by STORAGE_BACKEND
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Storage   StorageConfig
	Redis     RedisConfig
	OpenAI    OpenAIConfig
	Narrative NarrativeConfig
	Session   SessionConfig
}

// StorageConfig selects where games are saved
type StorageConfig struct {
	Backend    string `env:"STORAGE_BACKEND" envDefault:"file"`
	SavePath   string `env:"SAVE_PATH" envDefault:"game_data"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"game_data/saves.db"`
	Slot       string `env:"SAVE_SLOT" envDefault:"default"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	TTL time.Duration `env:"REDIS_TTL" envDefault:"720h"`
}

// OpenAIConfig holds chat completion settings. An empty key disables the
// LLM narrator and leaves only the built-in stories.
type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
}

// NarrativeConfig bounds narrative calls
type NarrativeConfig struct {
	Timeout time.Duration `env:"NARRATIVE_TIMEOUT" envDefault:"10s"`
}

// SessionConfig holds multiplayer lobby settings
type SessionConfig struct {
	MaxAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"24h"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that struct tags cannot express
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendFile, BackendRedis, BackendSQLite:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of memory, file, redis, sqlite; got %q", c.Storage.Backend)
	}
	if c.Narrative.Timeout <= 0 {
		return fmt.Errorf("NARRATIVE_TIMEOUT must be positive")
	}
	if c.Session.MaxAge <= 0 {
		return fmt.Errorf("SESSION_MAX_AGE must be positive")
	}
	return nil
}

// NarratorEnabled reports whether an LLM key is configured
func (c *Config) NarratorEnabled() bool {
	return strings.TrimSpace(c.OpenAI.APIKey) != ""
}
