package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	switch c.Storage.Driver {
	case DriverPostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required with storage.driver=%s", DriverPostgres)
		}
		if c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("storage.driver must be %q or %q (got %q)", DriverPostgres, DriverMemory, c.Storage.Driver)
	}

	gateways := []struct {
		name string
		cfg  GatewayConfig
	}{
		{"case_registry", c.Gateways.CaseRegistry},
		{"directory", c.Gateways.Directory},
		{"notification", c.Gateways.Notification},
	}
	for _, g := range gateways {
		if err := g.cfg.validate(); err != nil {
			return fmt.Errorf("gateways.%s: %w", g.name, err)
		}
	}

	if c.Cache.Enabled() && c.Cache.TemplateTTL <= 0 {
		return fmt.Errorf("cache.template_ttl must be > 0 (got %s)", c.Cache.TemplateTTL)
	}

	if !domain.AssignmentRole(c.Assignment.OfficerRole).IsValid() {
		return fmt.Errorf("assignment.officer_role %q is not a known assignment role", c.Assignment.OfficerRole)
	}
	if strings.TrimSpace(c.Assignment.DirectoryRole) == "" {
		return fmt.Errorf("assignment.directory_role is required")
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	return nil
}

func (g GatewayConfig) validate() error {
	if strings.TrimSpace(g.BaseURL) == "" {
		return fmt.Errorf("base_url is required")
	}
	u, err := url.Parse(g.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q is not an absolute URL", g.BaseURL)
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", g.Timeout)
	}
	if g.RetryCount < 0 {
		return fmt.Errorf("retry_count must be >= 0 (got %d)", g.RetryCount)
	}
	return nil
}
