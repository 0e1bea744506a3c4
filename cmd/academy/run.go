package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/learnloop/academy/internal/auth"
	"github.com/learnloop/academy/internal/authz"
	"github.com/learnloop/academy/internal/config"
	"github.com/learnloop/academy/internal/handlers"
	"github.com/learnloop/academy/internal/server"
	"github.com/learnloop/academy/internal/services"
	"github.com/learnloop/academy/pkg/listquery"
)

const shutdownTimeout = 15 * time.Second

func newRunCmd(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Migrate the database and start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			log := zap.S().Named("run")
			log.Infow("starting academy", "configuration", cfg.DebugMap())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			policy, err := authz.NewPolicy(cfg.Auth, st.Admins())
			if err != nil {
				return err
			}
			if !cfg.Auth.Enabled {
				log.Warnw("authentication disabled, every request runs as the dev user", "user_id", cfg.Auth.DevUser)
			}
			authenticator := auth.NewAuthenticator(cfg.Auth)

			parser := listquery.NewParser(
				listquery.WithEmptyFetchAll(cfg.List.EmptyFetchAll),
				listquery.WithDefaultPageEnd(cfg.List.DefaultPageEnd),
			)
			h := handlers.New(services.New(st), parser, st.Ping)

			srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
				handlers.RegisterRoutes(router, h, handlers.Middlewares{
					Authenticate: authenticator.Required(),
					Identify:     authenticator.Optional(),
					RequireAdmin: authz.RequireAdmin(policy),
				})
			})
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start(ctx)
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Stop(shutdownCtx)
			}
		},
	}
}
