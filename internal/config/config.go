// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flight-search/amadeus-flight-search/internal/domain"
	"github.com/flight-search/amadeus-flight-search/internal/infrastructure/logger"
)

// Environment variable names for the Amadeus credentials.
const (
	EnvAmadeusAPIURL    = "AMADEUS_API_URL"
	EnvAmadeusAPIKey    = "AMADEUS_API_KEY"
	EnvAmadeusAPISecret = "AMADEUS_API_SECRET"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Amadeus AmadeusConfig
	Cache   CacheConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// AmadeusConfig holds the provider endpoint, credentials and client tuning.
// It implements domain.CredentialProvider.
type AmadeusConfig struct {
	BaseURL string `env:"AMADEUS_API_URL"`
	Key     string `env:"AMADEUS_API_KEY"`
	Secret  string `env:"AMADEUS_API_SECRET"`

	RequestTimeout time.Duration `env:"AMADEUS_REQUEST_TIMEOUT" envDefault:"15s"`
	TokenLeeway    time.Duration `env:"AMADEUS_TOKEN_LEEWAY" envDefault:"60s"`
	RateLimit      float64       `env:"AMADEUS_RATE_LIMIT" envDefault:"10"`
	RateBurst      int           `env:"AMADEUS_RATE_BURST" envDefault:"10"`
	MaxAttempts    int           `env:"AMADEUS_MAX_ATTEMPTS" envDefault:"2"`
}

// CacheConfig holds the airport lookup cache settings.
type CacheConfig struct {
	Enabled       bool          `env:"CACHE_ENABLED" envDefault:"false"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	AirportTTL    time.Duration `env:"CACHE_AIRPORT_TTL" envDefault:"24h"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	// Missing credentials are a startup failure, not a first-request surprise.
	for _, get := range []func() (string, error){cfg.Amadeus.APIURL, cfg.Amadeus.APIKey, cfg.Amadeus.APISecret} {
		if _, err := get(); err != nil {
			return err
		}
	}

	if cfg.Amadeus.RequestTimeout <= 0 {
		return fmt.Errorf("AMADEUS_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Amadeus.TokenLeeway < 0 {
		return fmt.Errorf("AMADEUS_TOKEN_LEEWAY must not be negative")
	}
	if cfg.Amadeus.RateLimit <= 0 {
		return fmt.Errorf("AMADEUS_RATE_LIMIT must be positive")
	}
	if cfg.Amadeus.RateBurst < 1 {
		return fmt.Errorf("AMADEUS_RATE_BURST must be at least 1")
	}
	if cfg.Amadeus.MaxAttempts < 1 {
		return fmt.Errorf("AMADEUS_MAX_ATTEMPTS must be at least 1")
	}

	if cfg.Cache.Enabled {
		if cfg.Cache.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_ENABLED is true")
		}
		if cfg.Cache.AirportTTL <= 0 {
			return fmt.Errorf("CACHE_AIRPORT_TTL must be positive")
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// APIURL returns the provider base URL without a trailing slash.
func (a AmadeusConfig) APIURL() (string, error) {
	url := strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if url == "" {
		return "", domain.NewConfigurationError(EnvAmadeusAPIURL)
	}
	return url, nil
}

// APIKey returns the OAuth client ID.
func (a AmadeusConfig) APIKey() (string, error) {
	if strings.TrimSpace(a.Key) == "" {
		return "", domain.NewConfigurationError(EnvAmadeusAPIKey)
	}
	return a.Key, nil
}

// APISecret returns the OAuth client secret.
func (a AmadeusConfig) APISecret() (string, error) {
	if strings.TrimSpace(a.Secret) == "" {
		return "", domain.NewConfigurationError(EnvAmadeusAPISecret)
	}
	return a.Secret, nil
}

// LoggerConfig converts the logging settings for the logger package.
func (c *Config) LoggerConfig() logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.EnableCaller = c.IsDevelopment()
	return cfg
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
