package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Logging     LogConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Content     ContentConfig
	Limits      LimitsConfig
	Compression CompressionConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`

	// GlobalRPS caps total throughput across clients; 0 disables it
	GlobalRPS int `envconfig:"RATE_LIMIT_GLOBAL_RPS" default:"0"`
}

// CORSConfig holds the origins allowed to call the API.
type CORSConfig struct {
	Origins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

// ContentConfig locates the topic catalog. Empty means the embedded catalog.
type ContentConfig struct {
	Path string `envconfig:"CONTENT_PATH"`
}

// LimitsConfig bounds per-request engine work.
type LimitsConfig struct {
	MaxSeriesTerms int `envconfig:"MAX_SERIES_TERMS" default:"10000"`
	MaxSimTrials   int `envconfig:"MAX_SIM_TRIALS" default:"5000"`
	MaxSampleSize  int `envconfig:"MAX_SAMPLE_SIZE" default:"10000"`
}

// CompressionConfig toggles response compression.
type CompressionConfig struct {
	Gzip bool `envconfig:"GZIP_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		CORS: CORSConfig{
			Origins: []string{"*"},
		},
		Limits: LimitsConfig{
			MaxSeriesTerms: 10000,
			MaxSimTrials:   5000,
			MaxSampleSize:  10000,
		},
		Compression: CompressionConfig{
			Gzip: true,
		},
	}
}

// Validate rejects limits that would disable the engines.
func (c *Config) Validate() error {
	if c.Limits.MaxSeriesTerms <= 0 || c.Limits.MaxSimTrials <= 0 || c.Limits.MaxSampleSize <= 0 {
		return fmt.Errorf("invalid config: limits must be positive")
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid config: rate limit rps and burst must be positive")
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}
