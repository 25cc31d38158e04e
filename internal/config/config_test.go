package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcosic/portfolio/internal/apperr"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, DefaultSiteURL, cfg.SiteURL)
	assert.True(t, cfg.MetricsEnabled)
	assert.True(t, cfg.Debug())
	assert.Empty(t, cfg.ContentPath)
}

func TestFromLookupOverrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"PORT":              "9000",
		"GIN_MODE":          "release",
		"LOG_LEVEL":         "DEBUG",
		"LOG_FORMAT":        "text",
		"PORTFOLIO_CONTENT": "/etc/portfolio.yaml",
		"SITE_URL":          "https://example.com/",
		"METRICS_ENABLED":   "false",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.False(t, cfg.Debug())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "/etc/portfolio.yaml", cfg.ContentPath)
	assert.Equal(t, "https://example.com", cfg.SiteURL)
	assert.False(t, cfg.MetricsEnabled)
}

func TestFromLookupInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port not a number", map[string]string{"PORT": "http"}},
		{"port out of range", map[string]string{"PORT": "70000"}},
		{"gin mode", map[string]string{"GIN_MODE": "prod"}},
		{"log format", map[string]string{"LOG_FORMAT": "xml"}},
		{"site url", map[string]string{"SITE_URL": "example.com"}},
		{"metrics flag", map[string]string{"METRICS_ENABLED": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromLookup(lookupFrom(tt.env))
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrConfig)
		})
	}
}
