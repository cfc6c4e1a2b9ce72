package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionSecret signs session tokens. Rotating it invalidates every
	// outstanding session.
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL, default=24h"`

	PageSize int `env:"PAGE_SIZE, default=15"`

	Postgres PostgresConfig
	Redis    RedisConfig
}

type PostgresConfig struct {
	URI      string `env:"DATABASE_URL, default=postgres://localhost:5432/pechomax"`
	MaxConns int32  `env:"PG_MAX_CONNS, default=10"`
	MinConns int32  `env:"PG_MIN_CONNS, default=2"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
