package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"adex/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// SeedDemoData inserts demo profiles and ads on startup. Intended for
	// local development only.
	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"false"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the Redis connection backing the sign-out denylist.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Nats configures the ledger event bus. Publishing is disabled when
	// the URL is empty.
	Nats configs.Nats `envPrefix:"NATS_"`

	// Auth configures bearer token verification.
	Auth configs.Auth `envPrefix:"AUTH_"`

	// Rewards configures the token reward policy.
	Rewards configs.Rewards `envPrefix:"REWARDS_"`
}

// Load reads configuration from environment variables into a Config. A .env
// file in the working directory is loaded first when present. If parsing
// fails, an error is returned. All fields are loaded with their specified
// defaults when no environment variable is provided.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
