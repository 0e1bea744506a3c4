package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/learnloop/academy/internal/config"
)

var _ = Describe("Configuration", func() {
	It("should apply defaults", func() {
		cfg := config.NewConfigurationWithDefaults()

		Expect(cfg.Server.ServerMode).To(Equal("dev"))
		Expect(cfg.Server.HTTPPort).To(Equal(8000))
		Expect(cfg.Server.CORSOrigins).To(Equal([]string{"http://localhost:5173"}))
		Expect(cfg.Auth.Enabled).To(BeTrue())
		Expect(cfg.Auth.AdminPolicy).To(Equal(config.AdminPolicyTable))
		Expect(cfg.List.EmptyFetchAll).To(BeTrue())
		Expect(cfg.List.DefaultPageEnd).To(Equal(10))
	})

	Context("Validate", func() {
		It("should require a jwt secret when authentication is enabled", func() {
			cfg := config.NewConfigurationWithDefaults()

			Expect(cfg.Validate()).To(MatchError(ContainSubstring("jwt-secret")))

			cfg.Auth.JWTSecret = "secret"
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should reject an unknown admin policy", func() {
			cfg := config.NewConfigurationWithDefaults()
			cfg.Auth.JWTSecret = "secret"
			cfg.Auth.AdminPolicy = "development"

			Expect(cfg.Validate()).To(MatchError(ContainSubstring("invalid admin policy")))
		})
	})

	Context("Load", func() {
		var (
			cfg *config.Configuration
			fs  *pflag.FlagSet
		)

		BeforeEach(func() {
			cfg = config.NewConfigurationWithDefaults()
			fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
			config.RegisterFlags(fs, cfg)
		})

		// Given a value in the environment and another on the command line
		// When the configuration is loaded
		// Then the flag should win and the environment should fill the rest
		It("should prefer flags over environment variables", func() {
			GinkgoT().Setenv("ACADEMY_SERVER_HTTP_PORT", "9100")
			GinkgoT().Setenv("ACADEMY_DATABASE_PATH", "/tmp/env.duckdb")

			Expect(fs.Parse([]string{"--server-http-port=9200"})).To(Succeed())
			Expect(config.Load(fs, "")).To(Succeed())

			Expect(cfg.Server.HTTPPort).To(Equal(9200))
			Expect(cfg.Database.Path).To(Equal("/tmp/env.duckdb"))
		})

		It("should read a configuration file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "academy.yaml")
			content := "auth:\n  admin-policy: allowlist\n  admin-allowlist:\n    - alice\n    - bob\nlist:\n  empty-fetch-all: false\n"
			Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())

			Expect(fs.Parse(nil)).To(Succeed())
			Expect(config.Load(fs, path)).To(Succeed())

			Expect(cfg.Auth.AdminPolicy).To(Equal(config.AdminPolicyAllowList))
			Expect(cfg.Auth.AdminAllowList).To(Equal([]string{"alice", "bob"}))
			Expect(cfg.List.EmptyFetchAll).To(BeFalse())
		})
	})
})
