// Package config loads application configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Preview   PreviewConfig
	MathAPI   MathAPIConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// StorageConfig holds document persistence configuration.
type StorageConfig struct {
	// Backend selects the store implementation: "file" or "memory".
	Backend string `envconfig:"STORAGE_BACKEND" default:"file"`
	Path    string `envconfig:"STORAGE_PATH" default:"/tmp/content-hub/documents"`
}

// PreviewConfig holds preview rendering configuration.
type PreviewConfig struct {
	// Sandbox is the iframe sandbox attribute applied to previews.
	Sandbox string `envconfig:"PREVIEW_SANDBOX" default:"allow-scripts allow-same-origin"`
	// ScriptTimeoutMS bounds JS lint execution.
	ScriptTimeoutMS int `envconfig:"PREVIEW_SCRIPT_TIMEOUT_MS" default:"2000"`
}

// MathAPIConfig holds third-party math visualization configuration.
type MathAPIConfig struct {
	DesmosAPIKey   string `envconfig:"DESMOS_API_KEY" default:"dcb31709b452b1cf9dc26972add0fda6"`
	ProbeOnStartup bool   `envconfig:"MATH_API_PROBE" default:"false"`
	ProbeTimeoutMS int    `envconfig:"MATH_API_PROBE_TIMEOUT_MS" default:"3000"`
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
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
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
		Storage: StorageConfig{
			Backend: "file",
			Path:    "/tmp/content-hub/documents",
		},
		Preview: PreviewConfig{
			Sandbox:         "allow-scripts allow-same-origin",
			ScriptTimeoutMS: 2000,
		},
		MathAPI: MathAPIConfig{
			DesmosAPIKey:   "dcb31709b452b1cf9dc26972add0fda6",
			ProbeOnStartup: false,
			ProbeTimeoutMS: 3000,
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
	}
}
