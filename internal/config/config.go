// Package config loads service configuration from the environment
package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	rpgerrors "github.com/KirkDiggler/rpg-worlds/internal/errors"
)

// Config holds everything the commands need to reach storage and log
type Config struct {
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisUseTLS   bool   `env:"REDIS_USE_TLS" envDefault:"false"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"LOG_JSON" envDefault:"false"`

	// WorldID is the world commands act on when none is given
	WorldID string `env:"WORLD_ID"`
}

// Load reads the optional dotenv files, then the environment.
// Variables already set in the environment win over dotenv values.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, rpgerrors.Wrapf(err, "failed to load %s", file)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, rpgerrors.Wrap(err, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values env tags cannot express
func (c *Config) Validate() error {
	vb := rpgerrors.NewValidationBuilder()

	rpgerrors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)
	rpgerrors.ValidateRange("REDIS_DB", c.RedisDB, 0, 15, vb)
	if c.RedisPoolSize < 1 {
		vb.Field("REDIS_POOL_SIZE", "must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		vb.Field("LOG_LEVEL", "must be one of: debug, info, warn, error")
	}

	return vb.Build()
}
