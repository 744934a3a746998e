package fetcher

import (
	"fmt"
	"time"

	pkgconfig "articles-parser/pkg/config"
)

// Config holds the configuration for remote feed retrieval.
//
// Security settings:
//   - DenyPrivateIPs: blocks URLs resolving to private or loopback addresses
//   - MaxBodySize: rejects oversized responses
//   - MaxRedirects: bounds redirect chains
type Config struct {
	// Timeout is the maximum duration for a single HTTP request.
	// Default: 30s
	Timeout time.Duration

	// MaxBodySize is the maximum HTTP response body size in bytes.
	// It is enforced while reading, not from the Content-Length header.
	// Default: 10485760 (10MB)
	MaxBodySize int64

	// MaxRedirects is the maximum number of HTTP redirects to follow.
	// Default: 5
	MaxRedirects int

	// DenyPrivateIPs rejects URLs whose host resolves to a private address.
	// Default: false
	DenyPrivateIPs bool

	// UserAgent is sent with every request.
	// Default: ArticlesParser/1.0
	UserAgent string
}

// DefaultConfig returns the default fetch configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:        30 * time.Second,
		MaxBodySize:    10 * 1024 * 1024, // 10MB
		MaxRedirects:   5,
		DenyPrivateIPs: false,
		UserAgent:      "ArticlesParser/1.0",
	}
}

// Validate checks if the configuration values are usable.
//
// Validation rules:
//   - Timeout: > 0
//   - MaxBodySize: 1KB-100MB
//   - MaxRedirects: 0-10
func (c *Config) Validate() error {
	if err := pkgconfig.ValidatePositiveDuration(c.Timeout); err != nil {
		return fmt.Errorf("timeout: %w", err)
	}

	minBodySize := int64(1024)              // 1KB
	maxBodySize := int64(100 * 1024 * 1024) // 100MB
	if c.MaxBodySize < minBodySize || c.MaxBodySize > maxBodySize {
		return fmt.Errorf("max body size must be between %d and %d bytes, got %d", minBodySize, maxBodySize, c.MaxBodySize)
	}

	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}

	return nil
}

// LoadConfigFromEnv applies environment overrides on top of base and validates the result.
//
// Environment variables:
//   - FETCH_TIMEOUT: duration string, e.g. "10s"
//   - FETCH_MAX_BODY_SIZE: integer in bytes
//   - FETCH_MAX_REDIRECTS: integer
//   - FETCH_DENY_PRIVATE_IPS: "true" or "false"
//   - FETCH_USER_AGENT: string
func LoadConfigFromEnv(base Config) (Config, error) {
	cfg := base
	cfg.Timeout = pkgconfig.GetEnvDuration("FETCH_TIMEOUT", cfg.Timeout)
	cfg.MaxBodySize = pkgconfig.GetEnvInt64("FETCH_MAX_BODY_SIZE", cfg.MaxBodySize)
	cfg.MaxRedirects = pkgconfig.GetEnvInt("FETCH_MAX_REDIRECTS", cfg.MaxRedirects)
	cfg.DenyPrivateIPs = pkgconfig.GetEnvBool("FETCH_DENY_PRIVATE_IPS", cfg.DenyPrivateIPs)
	cfg.UserAgent = pkgconfig.GetEnvString("FETCH_USER_AGENT", cfg.UserAgent)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("fetch configuration validation failed: %w", err)
	}
	return cfg, nil
}
