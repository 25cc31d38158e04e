// Package config reads the server settings from the environment. A .env
// file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/dcosic/portfolio/internal/apperr"
)

const (
	DefaultPort    = "8080"
	DefaultSiteURL = "http://localhost:8080"
)

type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	ContentPath    string
	SiteURL        string
	MetricsEnabled bool
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Debug reports whether the server runs in gin's debug mode.
func (c Config) Debug() bool {
	return c.GinMode == "" || c.GinMode == "debug"
}

// Load builds a Config from the process environment.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary lookup function so tests do
// not have to touch the process environment.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		Port:        get("PORT", DefaultPort),
		GinMode:     get("GIN_MODE", ""),
		LogLevel:    strings.ToLower(get("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(get("LOG_FORMAT", "json")),
		ContentPath: get("PORTFOLIO_CONTENT", ""),
		SiteURL:     strings.TrimRight(get("SITE_URL", DefaultSiteURL), "/"),
	}

	metrics, err := strconv.ParseBool(get("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, apperr.Wrap(err, apperr.ErrConfig, "METRICS_ENABLED")
	}
	cfg.MetricsEnabled = metrics

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return apperr.Wrap(fmt.Errorf("invalid port %q", c.Port), apperr.ErrConfig, "PORT")
	}
	switch c.GinMode {
	case "", "debug", "release", "test":
	default:
		return apperr.Wrap(fmt.Errorf("unknown mode %q", c.GinMode), apperr.ErrConfig, "GIN_MODE")
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return apperr.Wrap(fmt.Errorf("unknown format %q", c.LogFormat), apperr.ErrConfig, "LOG_FORMAT")
	}
	u, err := url.Parse(c.SiteURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return apperr.Wrap(fmt.Errorf("invalid site url %q", c.SiteURL), apperr.ErrConfig, "SITE_URL")
	}
	return nil
}
