package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/learnloop/academy/internal/auth"
	"github.com/learnloop/academy/internal/config"
)

func newTokenCmd(cfg *config.Configuration) *cobra.Command {
	var (
		name    string
		picture string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token USER_ID",
		Short: "Sign a bearer token for local testing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Auth.JWTSecret == "" {
				return errors.New("auth.jwt-secret is required to sign tokens")
			}

			token, err := auth.NewValidator(cfg.Auth.JWTSecret).Issue(args[0], name, picture, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name claim")
	cmd.Flags().StringVar(&picture, "picture", "", "Avatar URL claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	return cmd
}
