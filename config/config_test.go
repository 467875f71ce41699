package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnv(t *testing.T, key, value string) {
	t.Helper()
	original, had := os.LookupEnv(key)
	os.Setenv(key, value)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, original)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "test", cfg.GoEnv)
	assert.Equal(t, "https://homecare-api.iamnokia.dev", cfg.UpstreamBaseURL)
	assert.Equal(t, 15, cfg.UpstreamTimeoutSec)
	assert.Equal(t, "sessions.db", cfg.SessionDBURL)
	assert.Equal(t, 24, cfg.SessionTTLHours)
}

func TestLoad_EnvOverrides(t *testing.T) {
	withEnv(t, "PORT", "9090")
	withEnv(t, "UPSTREAM_BASE_URL", "http://localhost:3000")
	withEnv(t, "UPSTREAM_TIMEOUT_SECONDS", "5")
	withEnv(t, "SESSION_TTL_HOURS", "48")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://localhost:3000", cfg.UpstreamBaseURL)
	assert.Equal(t, 5, cfg.UpstreamTimeoutSec)
	assert.Equal(t, 48, cfg.SessionTTLHours)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "valid",
			cfg:     Config{GoEnv: "test", UpstreamBaseURL: "http://x", UpstreamTimeoutSec: 10, JWTSecret: "s"},
			wantErr: false,
		},
		{
			name:    "missing upstream",
			cfg:     Config{GoEnv: "test", UpstreamTimeoutSec: 10, JWTSecret: "s"},
			wantErr: true,
		},
		{
			name:    "zero timeout",
			cfg:     Config{GoEnv: "test", UpstreamBaseURL: "http://x", JWTSecret: "s"},
			wantErr: true,
		},
		{
			name:    "dev secret in production",
			cfg:     Config{GoEnv: "production", UpstreamBaseURL: "http://x", UpstreamTimeoutSec: 10, JWTSecret: "homecare-dev-secret"},
			wantErr: true,
		},
		{
			name:    "dev secret outside production",
			cfg:     Config{GoEnv: "development", UpstreamBaseURL: "http://x", UpstreamTimeoutSec: 10, JWTSecret: "homecare-dev-secret"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvironmentChecks(t *testing.T) {
	assert.True(t, (&Config{GoEnv: "production"}).IsProduction())
	assert.True(t, (&Config{GoEnv: "test"}).IsTest())
	assert.True(t, (&Config{GoEnv: "development"}).IsDevelopment())
	assert.False(t, (&Config{GoEnv: "development"}).IsProduction())
}

func TestGetSetConfig(t *testing.T) {
	original := GetConfig()
	defer SetConfig(original)

	cfg := &Config{Port: "1234"}
	SetConfig(cfg)
	assert.Equal(t, cfg, GetConfig())
}
