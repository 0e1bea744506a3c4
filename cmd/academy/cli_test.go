package main

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/learnloop/academy/internal/auth"
	"github.com/learnloop/academy/internal/config"
)

func execute(args ...string) (string, error) {
	out := &bytes.Buffer{}
	root := newRootCmd(config.NewConfigurationWithDefaults())
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

var _ = Describe("academy CLI", func() {
	BeforeEach(func() {
		color.NoColor = true
	})

	Context("token", func() {
		It("should sign a token the validator accepts", func() {
			out, err := execute("token", "user-1", "--auth-jwt-secret", "s3cret", "--name", "Ada")
			Expect(err).NotTo(HaveOccurred())

			claims, err := auth.NewValidator("s3cret").Validate(strings.TrimSpace(out))
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.Subject).To(Equal("user-1"))
			Expect(claims.Name).To(Equal("Ada"))
		})

		It("should fail without a secret", func() {
			_, err := execute("token", "user-1")
			Expect(err).To(MatchError(ContainSubstring("jwt-secret")))
		})

		It("should read the secret from the environment", func() {
			GinkgoT().Setenv("ACADEMY_AUTH_JWT_SECRET", "from-env")

			out, err := execute("token", "user-2")
			Expect(err).NotTo(HaveOccurred())

			_, err = auth.NewValidator("from-env").Validate(strings.TrimSpace(out))
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("logger", func() {
		It("should reject an unknown format", func() {
			_, err := execute("--log-format", "xml", "token", "user-1", "--auth-jwt-secret", "s")
			Expect(err).To(MatchError(ContainSubstring("invalid log format")))
		})

		It("should reject an unknown level", func() {
			_, err := execute("--log-level", "loud", "token", "user-1", "--auth-jwt-secret", "s")
			Expect(err).To(MatchError(ContainSubstring("invalid log level")))
		})
	})

	Context("admins", func() {
		var dbPath string

		BeforeEach(func() {
			dbPath = filepath.Join(GinkgoT().TempDir(), "academy.duckdb")
		})

		It("should grant, list and revoke admins", func() {
			out, err := execute("admins", "grant", "user-1", "--database-path", dbPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("granted user-1"))

			out, err = execute("admins", "list", "--database-path", dbPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("user-1"))

			out, err = execute("admins", "revoke", "user-1", "--database-path", dbPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("revoked user-1"))

			out, err = execute("admins", "list", "--database-path", dbPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("no admins"))
		})

		It("should fail to revoke an unknown admin", func() {
			_, err := execute("admins", "revoke", "ghost", "--database-path", dbPath)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("migrate", func() {
		It("should be idempotent", func() {
			dbPath := filepath.Join(GinkgoT().TempDir(), "academy.duckdb")

			_, err := execute("migrate", "--database-path", dbPath)
			Expect(err).NotTo(HaveOccurred())
			_, err = execute("migrate", "--database-path", dbPath)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
