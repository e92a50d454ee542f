package config

import (
	"fmt"
	"log"
	"time"

	"github.com/cloo-solutions/moviescreen/internal/domain"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "MOVIESCREEN"

type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	OMDbAPIKey  string        `envconfig:"OMDB_API_KEY"`
	OMDbURL     string        `envconfig:"OMDB_URL" default:"http://www.omdbapi.com/"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// SessionIdleTTL drops daemon sessions unused for this long. Zero keeps
	// them for the life of the process.
	SessionIdleTTL       time.Duration `envconfig:"SESSION_IDLE_TTL" default:"0"`
	SessionSweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"1m"`

	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	return cfg
}

// Validate checks the settings every entry point needs. The API key is not
// marked required on the struct because CLI flags may still supply it.
func (c *Config) Validate() error {
	if c.OMDbAPIKey == "" {
		return fmt.Errorf("%w (set %s_OMDB_API_KEY or --api-key)", domain.ErrMissingAPIKey, envPrefix)
	}
	if c.OMDbURL == "" {
		return fmt.Errorf("%s_OMDB_URL cannot be empty", envPrefix)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%s_HTTP_TIMEOUT cannot be negative", envPrefix)
	}
	if c.SessionIdleTTL > 0 && c.SessionSweepInterval <= 0 {
		return fmt.Errorf("%s_SESSION_SWEEP_INTERVAL must be positive when sessions expire", envPrefix)
	}
	return nil
}

// ApplyOverrides layers non-empty flag values over the environment.
func (c *Config) ApplyOverrides(apiKey, apiURL string) {
	if apiKey != "" {
		c.OMDbAPIKey = apiKey
	}
	if apiURL != "" {
		c.OMDbURL = apiURL
	}
}

func (c *Config) ExpiresSessions() bool {
	return c.SessionIdleTTL > 0
}

func (c *Config) HasSentry() bool {
	return c.SentryDSN != ""
}
