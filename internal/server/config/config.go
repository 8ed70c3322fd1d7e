// Package config handles configuration for the server component.
// Values are resolved as defaults overlaid by environment variables;
// bind address and database path can additionally be overridden by
// command-line flags in cmd/server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Environment variable names understood by Load
const (
	EnvAppPort             = "APP_PORT"
	EnvDatabasePath        = "DATABASE_PATH"
	EnvJWTSecret           = "JWT_SECRET"
	EnvAccessTokenExpires  = "JWT_ACCESS_TOKEN_EXPIRES"
	EnvRefreshTokenExpires = "JWT_REFRESH_TOKEN_EXPIRES"
	EnvAPIKey              = "API_KEY"
	EnvBcryptCost          = "BCRYPT_COST"
)

// Config holds runtime settings for the authgate server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DatabasePath: path to the SQLite database file.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required.
//   - AccessTokenTTL / RefreshTokenTTL: token lifetimes.
//   - APIKey: optional guard for the registration endpoint; empty disables it.
//   - BcryptCost: cost factor for password and refresh-token hashing.
type Config struct {
	Addr            string
	DatabasePath    string
	SecretKey       string
	APIKey          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	BcryptCost      int
}

// LoadDefaults populates Config with development defaults.
// The secret has no default: the server refuses to start without one.
func (c *Config) LoadDefaults() {
	c.Addr = ":9999"
	c.DatabasePath = "authgate.db"
	c.AccessTokenTTL = 15 * time.Minute
	c.RefreshTokenTTL = 30 * 24 * time.Hour
	c.BcryptCost = bcrypt.DefaultCost
}

// parseEnv overlays values from environment variables.
// Token lifetimes are given in seconds, as in JWT_ACCESS_TOKEN_EXPIRES=900.
func (c *Config) parseEnv() error {
	if port := os.Getenv(EnvAppPort); port != "" {
		c.Addr = ":" + port
	}
	if path := os.Getenv(EnvDatabasePath); path != "" {
		c.DatabasePath = path
	}
	if secret := os.Getenv(EnvJWTSecret); secret != "" {
		c.SecretKey = secret
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		c.APIKey = key
	}

	if v := os.Getenv(EnvAccessTokenExpires); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvAccessTokenExpires, err)
		}
		c.AccessTokenTTL = time.Duration(seconds) * time.Second
	}
	if v := os.Getenv(EnvRefreshTokenExpires); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRefreshTokenExpires, err)
		}
		c.RefreshTokenTTL = time.Duration(seconds) * time.Second
	}
	if v := os.Getenv(EnvBcryptCost); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvBcryptCost, err)
		}
		c.BcryptCost = cost
	}

	return nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("%s is required", EnvJWTSecret)
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("access token lifetime must be positive")
	}
	if c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("refresh token lifetime must be positive")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// Load builds a Config from defaults and environment
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := cfg.parseEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
