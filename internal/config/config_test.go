package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{DSN: "postgres://localhost/kenchi", MaxConns: 25, MinConns: 5},
		Auth: AuthConfig{
			JWTSecret:      strings.Repeat("s", 32),
			JWTIssuer:      "kenchi",
			AccessTokenTTL: 12 * time.Hour,
		},
		RateLimit: RateLimitConfig{Enabled: true, RequestsPerWindow: 300, Window: time.Minute},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()
	require.NoError(t, validConfig().Validate())
}

func TestValidate_ShortJWTSecret(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "jwt_secret")
}

func TestValidate_NonPositiveTokenTTL(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.AccessTokenTTL = 0
	require.Error(t, cfg.Validate())
}

func TestValidate_PoolBounds(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Database.MaxConns = 2
	cfg.Database.MinConns = 5
	require.Error(t, cfg.Validate())
}

func TestValidate_RateLimit(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.RateLimit.RequestsPerWindow = 0
	require.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.RateLimit.Enabled = false
	cfg.RateLimit.RequestsPerWindow = 0
	require.NoError(t, cfg.Validate())
}
