// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), loads them into structured Go types, and
// validates that required values are present so the application fails
// fast on bad or missing config.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// envPrefix namespaces every environment variable consumed by this service.
// Keys are nested with "." after the prefix is stripped, e.g.
// PERSONAPI_SERVER.PORT -> server.port -> Config.Server.Port.
const envPrefix = "PERSONAPI_"

// Config is the root configuration object for the application.
//
// The `koanf` tags name the key each field is unmarshaled from; the
// `validate` tags are enforced by go-playground/validator after loading.
// Observability is a pointer because it is optional; defaults are
// injected when it is absent.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Upload        UploadConfig         `koanf:"upload"`
	RateLimit     RateLimitConfig      `koanf:"rate_limit"`
	Email         EmailConfig          `koanf:"email"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs/traces and to switch behavior per environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// UploadConfig bounds multipart file uploads.
type UploadConfig struct {
	// MaxBytes is the largest accepted upload. Zero means "use default".
	MaxBytes int64 `koanf:"max_bytes"`
}

// DefaultUploadMaxBytes caps image uploads at 5 MiB unless overridden.
const DefaultUploadMaxBytes = 5 << 20

// RateLimitConfig tunes the per-IP limiter applied to the login route.
type RateLimitConfig struct {
	// RPS is the sustained requests-per-second allowance. Zero means default.
	RPS float64 `koanf:"rps"`

	// Burst is the short-term burst allowance. Zero means default.
	Burst int `koanf:"burst"`
}

// EmailConfig configures the outbound email provider (Resend).
// An empty APIKey disables email sending; contact submissions are then
// only logged.
type EmailConfig struct {
	APIKey string `koanf:"api_key"`
	From   string `koanf:"from"`
	To     string `koanf:"to"`
}

// Load reads configuration from the environment, unmarshals it into
// Config, validates it, and applies defaults for the optional blocks.
func Load() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	if cfg.Upload.MaxBytes <= 0 {
		cfg.Upload.MaxBytes = DefaultUploadMaxBytes
	}
	if cfg.RateLimit.RPS <= 0 {
		cfg.RateLimit.RPS = 1
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = 5
	}

	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are not user-configurable: telemetry
	// must see consistent naming across deployments.
	cfg.Observability.ServiceName = "person-api"
	cfg.Observability.Environment = cfg.Primary.Env

	if err := cfg.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return cfg, nil
}
