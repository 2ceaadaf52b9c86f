package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "secret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "klantinteracties", cfg.Mongo.Database)
	assert.Equal(t, time.Hour, cfg.Redis.PendingDeleteTTL)
	assert.Equal(t, 10*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, 3, cfg.Remote.RetryMax)
	assert.Empty(t, cfg.Remote.Credentials)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":          "secret",
		"ENV":                 "production",
		"REMOTE_TIMEOUT":      "0s",
		"REMOTE_CREDENTIALS":  "http://zrc.test/api/v1/|kic|a,b;http://drc.test/api/v1/|kic|c",
		"BOOTSTRAP_CLIENT_ID": "admin",
		"BOOTSTRAP_SECRET":    "admin-secret",
		"LOG_PRETTY":          "true",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.LogPretty)
	assert.Zero(t, cfg.Remote.Timeout)
	assert.Equal(t, []string{"http://zrc.test/api/v1/|kic|a,b", "http://drc.test/api/v1/|kic|c"}, cfg.Remote.Credentials)
	assert.Equal(t, "admin", cfg.Bootstrap.ClientID)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing jwt secret", env: map[string]string{}},
		{name: "negative retries", env: map[string]string{"JWT_SECRET": "s", "REMOTE_RETRY_MAX": "-1"}},
		{name: "half bootstrap", env: map[string]string{"JWT_SECRET": "s", "BOOTSTRAP_CLIENT_ID": "admin"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(context.Background(), envconfig.MapLookuper(tc.env))
			assert.Error(t, err)
		})
	}
}
