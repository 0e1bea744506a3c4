package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "ACADEMY"

// RegisterFlags binds every configuration field to a flag on fs. Flag names
// are the dotted configuration keys with dots replaced by dashes.
func RegisterFlags(fs *pflag.FlagSet, cfg *Configuration) {
	fs.StringVar(&cfg.Server.ServerMode, "server-mode", cfg.Server.ServerMode, "Server mode: 'dev' or 'prod'")
	fs.IntVar(&cfg.Server.HTTPPort, "server-http-port", cfg.Server.HTTPPort, "HTTP listen port")
	fs.StringSliceVar(&cfg.Server.CORSOrigins, "server-cors-origins", cfg.Server.CORSOrigins, "Origins allowed to call the API ('*' for any)")
	fs.IntVar(&cfg.Server.RateLimit, "server-rate-limit", cfg.Server.RateLimit, "Requests per minute per client IP (0 disables)")

	fs.StringVar(&cfg.Database.Path, "database-path", cfg.Database.Path, "Path to the DuckDB database file")

	fs.BoolVar(&cfg.Auth.Enabled, "auth-enabled", cfg.Auth.Enabled, "Verify bearer tokens")
	fs.StringVar(&cfg.Auth.JWTSecret, "auth-jwt-secret", cfg.Auth.JWTSecret, "HMAC secret shared with the identity provider")
	fs.StringVar(&cfg.Auth.AdminPolicy, "auth-admin-policy", cfg.Auth.AdminPolicy, "Admin policy: 'table' or 'allowlist'")
	fs.StringSliceVar(&cfg.Auth.AdminAllowList, "auth-admin-allowlist", cfg.Auth.AdminAllowList, "User ids granted admin rights by the allowlist policy")
	fs.StringVar(&cfg.Auth.DevUser, "auth-dev-user", cfg.Auth.DevUser, "User id injected when authentication is disabled")

	fs.BoolVar(&cfg.List.EmptyFetchAll, "list-empty-fetch-all", cfg.List.EmptyFetchAll, "Return the whole collection for list requests without parameters")
	fs.IntVar(&cfg.List.DefaultPageEnd, "list-default-page-end", cfg.List.DefaultPageEnd, "Default inclusive end of the list window")

	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: 'console' or 'json'")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
}

// Load fills flags that were not set on the command line from ACADEMY_*
// environment variables and, when configFile is not empty, from that file.
// Precedence is flag > environment > file > default.
func Load(fs *pflag.FlagSet, configFile string) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %q: %w", configFile, err)
		}
	}

	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		key := flagToKey(f.Name)
		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))); err != nil {
			errs = append(errs, err)
			return
		}
		if !v.IsSet(key) {
			return
		}

		var value string
		if strings.HasSuffix(f.Value.Type(), "Slice") {
			value = strings.Join(v.GetStringSlice(key), ",")
		} else {
			value = v.GetString(key)
		}
		if err := fs.Set(f.Name, value); err != nil {
			errs = append(errs, fmt.Errorf("invalid value for %s: %w", key, err))
		}
	})
	return errors.Join(errs...)
}

// flagToKey maps "server-http-port" to "server.http-port".
func flagToKey(name string) string {
	for _, section := range []string{"server", "database", "auth", "list"} {
		if strings.HasPrefix(name, section+"-") {
			return section + "." + strings.TrimPrefix(name, section+"-")
		}
	}
	return name
}
