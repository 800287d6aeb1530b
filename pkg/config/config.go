// Package config holds runtime settings for the detection engine.
// Settings load from an optional YAML file, then environment variables
// override individual values. Invalid settings fail the load; the engine
// never starts with a configuration it cannot honor.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// RateLimitConfig controls the per-user sliding window.
type RateLimitConfig struct {
	Enabled       bool `yaml:"enabled"`
	MaxRequests   int  `yaml:"max_requests"`
	WindowSeconds int  `yaml:"window_seconds"`
}

// Window returns the configured window as a duration.
func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowSeconds) * time.Second
}

// RedisConfig selects the distributed rate-limit backend. When disabled
// the in-memory store is used.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// LoggingConfig controls the JSONL audit file sink.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// PostgresConfig enables the database audit sink.
type PostgresConfig struct {
	Enabled bool   `yaml:"enabled"`
	DSN     string `yaml:"dsn"`
}

// WebhookConfig enables block_notify delivery to an external endpoint.
type WebhookConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
}

// IntelConfig enables outbound threat-intelligence reporting of blocked
// verdicts (hashed rule ids only).
type IntelConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
}

// HistoryConfig bounds the behavioral analyzer's per-user window.
type HistoryConfig struct {
	Capacity   int `yaml:"capacity"`
	TTLSeconds int `yaml:"ttl_seconds"`
}

// TTL returns the configured retention as a duration.
func (c HistoryConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// ServerConfig holds serve-mode settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// Config is the full engine configuration.
type Config struct {
	Sensitivity string            `yaml:"sensitivity"`
	OwnerIDs    []string          `yaml:"owner_ids"`
	Actions     map[string]string `yaml:"actions"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Redis       RedisConfig       `yaml:"redis"`
	Logging     LoggingConfig     `yaml:"logging"`
	Postgres    PostgresConfig    `yaml:"postgres"`
	Webhook     WebhookConfig     `yaml:"webhook"`
	Intel       IntelConfig       `yaml:"intel"`
	History     HistoryConfig     `yaml:"history"`
	Server      ServerConfig      `yaml:"server"`
}

// Default returns the configuration used when no file is given. Values
// mirror the documented defaults; environment variables still override.
func Default() *Config {
	return &Config{
		Sensitivity: "medium",
		Actions: map[string]string{
			"low":      "log",
			"medium":   "warn",
			"high":     "block",
			"critical": "block_notify",
		},
		RateLimit: RateLimitConfig{
			Enabled:       true,
			MaxRequests:   30,
			WindowSeconds: 60,
		},
		Redis: RedisConfig{
			Enabled: false,
			Addr:    "localhost:6379",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Path:    "guard_events.jsonl",
		},
		History: HistoryConfig{
			Capacity:   50,
			TTLSeconds: 900,
		},
		Server: ServerConfig{Port: 8787},
	}
}

// Load reads the YAML file at path (empty path means defaults only),
// applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides individual fields from PROMPTWARD_* variables.
func (c *Config) applyEnv() {
	c.Sensitivity = GetEnv("PROMPTWARD_SENSITIVITY", c.Sensitivity)
	c.OwnerIDs = GetEnvSlice("PROMPTWARD_OWNER_IDS", c.OwnerIDs)

	c.RateLimit.Enabled = GetEnvBool("PROMPTWARD_RATE_LIMIT_ENABLED", c.RateLimit.Enabled)
	c.RateLimit.MaxRequests = GetEnvInt("PROMPTWARD_RATE_LIMIT_MAX", c.RateLimit.MaxRequests)
	c.RateLimit.WindowSeconds = GetEnvInt("PROMPTWARD_RATE_LIMIT_WINDOW", c.RateLimit.WindowSeconds)

	c.Redis.Enabled = GetEnvBool("PROMPTWARD_REDIS_ENABLED", c.Redis.Enabled)
	c.Redis.Addr = GetEnv("PROMPTWARD_REDIS_ADDR", c.Redis.Addr)

	c.Logging.Enabled = GetEnvBool("PROMPTWARD_LOG_ENABLED", c.Logging.Enabled)
	c.Logging.Path = GetEnv("PROMPTWARD_LOG_PATH", c.Logging.Path)

	c.Postgres.Enabled = GetEnvBool("PROMPTWARD_POSTGRES_ENABLED", c.Postgres.Enabled)
	c.Postgres.DSN = GetEnv("PROMPTWARD_POSTGRES_DSN", c.Postgres.DSN)

	c.Webhook.Enabled = GetEnvBool("PROMPTWARD_WEBHOOK_ENABLED", c.Webhook.Enabled)
	c.Webhook.URL = GetEnv("PROMPTWARD_WEBHOOK_URL", c.Webhook.URL)

	c.Intel.Enabled = GetEnvBool("PROMPTWARD_INTEL_ENABLED", c.Intel.Enabled)
	c.Intel.URL = GetEnv("PROMPTWARD_INTEL_URL", c.Intel.URL)

	c.Server.Port = GetEnvInt("PROMPTWARD_PORT", c.Server.Port)
}

var validSensitivities = map[string]bool{
	"low": true, "medium": true, "high": true, "paranoid": true,
}

var validActions = map[string]bool{
	"allow": true, "log": true, "warn": true, "block": true, "block_notify": true,
}

var validActionKeys = map[string]bool{
	"low": true, "medium": true, "high": true, "critical": true,
}

// Validate rejects configurations the engine cannot enforce. Load failure
// is fatal at startup; there is no degraded mode with a broken policy.
func (c *Config) Validate() error {
	if !validSensitivities[c.Sensitivity] {
		return fmt.Errorf("invalid sensitivity %q (want low, medium, high or paranoid)", c.Sensitivity)
	}

	for key, action := range c.Actions {
		if !validActionKeys[strings.ToLower(key)] {
			return fmt.Errorf("invalid severity key %q in actions map", key)
		}
		if !validActions[action] {
			return fmt.Errorf("invalid action %q for severity %q", action, key)
		}
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.MaxRequests <= 0 {
			return fmt.Errorf("rate_limit.max_requests must be positive, got %d", c.RateLimit.MaxRequests)
		}
		if c.RateLimit.WindowSeconds <= 0 {
			return fmt.Errorf("rate_limit.window_seconds must be positive, got %d", c.RateLimit.WindowSeconds)
		}
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr required when redis is enabled")
	}
	if c.Postgres.Enabled && c.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn required when postgres is enabled")
	}
	if c.Webhook.Enabled && c.Webhook.URL == "" {
		return fmt.Errorf("webhook.url required when webhook is enabled")
	}
	if c.Intel.Enabled && c.Intel.URL == "" {
		return fmt.Errorf("intel.url required when intel reporting is enabled")
	}

	if c.History.Capacity <= 0 {
		return fmt.Errorf("history.capacity must be positive, got %d", c.History.Capacity)
	}
	if c.History.TTLSeconds <= 0 {
		return fmt.Errorf("history.ttl_seconds must be positive, got %d", c.History.TTLSeconds)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// IsOwner reports whether userID is in the configured owner list.
func (c *Config) IsOwner(userID string) bool {
	for _, id := range c.OwnerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// GetEnv returns the environment variable or defaultValue if unset.
func GetEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// GetEnvBool parses a boolean environment variable.
func GetEnvBool(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	switch strings.ToLower(v) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}
	return defaultValue
}

// GetEnvInt parses an integer environment variable.
func GetEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetEnvSlice parses a comma-separated environment variable.
func GetEnvSlice(key string, defaultValue []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
