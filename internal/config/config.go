package config

import (
	"fmt"

	"github.com/creasty/defaults"
)

type Configuration struct {
	Server    Server         `mapstructure:"server"`
	Database  Database       `mapstructure:"database"`
	Auth      Authentication `mapstructure:"auth"`
	List      List           `mapstructure:"list"`
	LogFormat string         `mapstructure:"log-format" default:"console"`
	LogLevel  string         `mapstructure:"log-level" default:"info"`
}

type Server struct {
	ServerMode  string   `mapstructure:"mode" default:"dev"`
	HTTPPort    int      `mapstructure:"http-port" default:"8000"`
	CORSOrigins []string `mapstructure:"cors-origins" default:"[\"http://localhost:5173\"]"`
	// RateLimit is the number of requests per minute allowed per client IP. 0 disables it.
	RateLimit int `mapstructure:"rate-limit" default:"600"`
}

type Database struct {
	Path string `mapstructure:"path" default:"academy.duckdb"`
}

const (
	AdminPolicyTable     = "table"
	AdminPolicyAllowList = "allowlist"
)

type Authentication struct {
	Enabled        bool     `mapstructure:"enabled" default:"true"`
	JWTSecret      string   `mapstructure:"jwt-secret"`
	AdminPolicy    string   `mapstructure:"admin-policy" default:"table"`
	AdminAllowList []string `mapstructure:"admin-allowlist"`
	// DevUser is the identity injected on every request when authentication is disabled.
	DevUser string `mapstructure:"dev-user" default:"dev-user"`
}

type List struct {
	EmptyFetchAll  bool `mapstructure:"empty-fetch-all" default:"true"`
	DefaultPageEnd int  `mapstructure:"default-page-end" default:"10"`
}

// NewConfigurationWithDefaults returns a configuration with every default tag applied.
func NewConfigurationWithDefaults() *Configuration {
	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		// defaults only fail on malformed tags
		panic(err)
	}
	return cfg
}

func (c *Configuration) Validate() error {
	switch c.Server.ServerMode {
	case "dev", "prod":
	default:
		return fmt.Errorf("invalid server mode %q: must be 'dev' or 'prod'", c.Server.ServerMode)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.Server.HTTPPort)
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt-secret is required when authentication is enabled")
	}
	if !c.Auth.Enabled && c.Auth.DevUser == "" {
		return fmt.Errorf("auth.dev-user is required when authentication is disabled")
	}
	switch c.Auth.AdminPolicy {
	case AdminPolicyTable, AdminPolicyAllowList:
	default:
		return fmt.Errorf("invalid admin policy %q: must be %q or %q", c.Auth.AdminPolicy, AdminPolicyTable, AdminPolicyAllowList)
	}
	if c.List.DefaultPageEnd < 0 {
		return fmt.Errorf("invalid list.default-page-end %d", c.List.DefaultPageEnd)
	}
	return nil
}

// DebugMap returns the configuration as a map suitable for logging. Secrets are masked.
func (c *Configuration) DebugMap() map[string]any {
	secret := ""
	if c.Auth.JWTSecret != "" {
		secret = "(sensitive)"
	}
	return map[string]any{
		"server.mode":           c.Server.ServerMode,
		"server.http-port":      c.Server.HTTPPort,
		"server.cors-origins":   c.Server.CORSOrigins,
		"server.rate-limit":     c.Server.RateLimit,
		"database.path":         c.Database.Path,
		"auth.enabled":          c.Auth.Enabled,
		"auth.jwt-secret":       secret,
		"auth.admin-policy":     c.Auth.AdminPolicy,
		"auth.admin-allowlist":  c.Auth.AdminAllowList,
		"auth.dev-user":         c.Auth.DevUser,
		"list.empty-fetch-all":  c.List.EmptyFetchAll,
		"list.default-page-end": c.List.DefaultPageEnd,
		"log-format":            c.LogFormat,
		"log-level":             c.LogLevel,
	}
}
