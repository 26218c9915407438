// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Progress store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config holds every setting the kitchen reads from SPROUT_* variables.
type Config struct {
	Store       string        `env:"SPROUT_STORE" envDefault:"memory"`
	SQLitePath  string        `env:"SPROUT_SQLITE_PATH" envDefault:".sprout/progress.db"`
	RedisAddr   string        `env:"SPROUT_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB     int           `env:"SPROUT_REDIS_DB" envDefault:"0"`
	Dwell       time.Duration `env:"SPROUT_DWELL" envDefault:"1500ms"`
	CatalogPath string        `env:"SPROUT_CATALOG"`
	Sound       bool          `env:"SPROUT_SOUND" envDefault:"true"`
	LogFile     string        `env:"SPROUT_LOG_FILE" envDefault:".sprout/sprout.log"`
}

// ErrUnknownStore is returned for a Store value outside the known backends.
var ErrUnknownStore = errors.New("unknown progress store")

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the optional dotenv files, then the environment. Variables
// already set in the environment win over dotenv values.
func Load(dotenv ...string) (Config, error) {
	_ = godotenv.Load(dotenv...)

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the env parser cannot.
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStore, c.Store)
	}
	if c.Dwell < 0 {
		return fmt.Errorf("dwell must not be negative, got %s", c.Dwell)
	}
	return nil
}
