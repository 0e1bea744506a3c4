// Package config defines the configuration structure for the academy API.
//
// Configuration is organized into logical sections and filled, in order of
// precedence, from command line flags, ACADEMY_* environment variables, an
// optional configuration file and the `default` struct tags.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Database       - DuckDB location
//	├── Auth           - Bearer token verification and admin policy
//	├── List           - List-query defaults
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────────────┬──────────────────────────┬───────────────────────────────────┐
//	│ Key              │ Default                  │ Description                       │
//	├──────────────────┼──────────────────────────┼───────────────────────────────────┤
//	│ server.mode      │ "dev"                    │ "dev" or "prod" (gin release)     │
//	│ server.http-port │ 8000                     │ HTTP listen port                  │
//	│ server.cors-...  │ ["http://localhost:5173"]│ Admin frontend origins            │
//	│ server.rate-limit│ 600                      │ Requests/minute per IP, 0 = off   │
//	└──────────────────┴──────────────────────────┴───────────────────────────────────┘
//
// # Auth Configuration
//
//	┌──────────────────────┬─────────────┬────────────────────────────────────────────┐
//	│ Key                  │ Default     │ Description                                │
//	├──────────────────────┼─────────────┼────────────────────────────────────────────┤
//	│ auth.enabled         │ true        │ Verify HS256 bearer tokens                 │
//	│ auth.jwt-secret      │ ""          │ Secret shared with the identity provider   │
//	│ auth.admin-policy    │ "table"     │ "table" (admins table) or "allowlist"      │
//	│ auth.admin-allowlist │ []          │ Admin user ids for the allowlist policy    │
//	│ auth.dev-user        │ "dev-user"  │ Identity used when auth is disabled        │
//	└──────────────────────┴─────────────┴────────────────────────────────────────────┘
//
// The admin policy is always chosen explicitly. Nothing in this package looks
// at the runtime environment to grant privileges.
//
// # List Configuration
//
//	┌───────────────────────┬─────────┬───────────────────────────────────────────────┐
//	│ Key                   │ Default │ Description                                   │
//	├───────────────────────┼─────────┼───────────────────────────────────────────────┤
//	│ list.empty-fetch-all  │ true    │ No parameters returns the whole collection    │
//	│ list.default-page-end │ 10      │ Inclusive window end when no range is given   │
//	└───────────────────────┴─────────┴───────────────────────────────────────────────┘
//
// # Usage Example
//
//	cfg := config.NewConfigurationWithDefaults()
//	config.RegisterFlags(cmd.Flags(), cfg)
//	...
//	if err := config.Load(cmd.Flags(), configFile); err != nil {
//	    return err
//	}
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config
