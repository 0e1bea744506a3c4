package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/learnloop/academy/internal/config"
	"github.com/learnloop/academy/internal/store"
	"github.com/learnloop/academy/internal/store/migrations"
)

func newMigrateCmd(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			zap.S().Named("migrate").Infow("database is up to date", "path", cfg.Database.Path)
			return nil
		},
	}
}

// openStore opens the configured database and applies pending migrations.
func openStore(ctx context.Context, cfg *config.Configuration) (*store.Store, error) {
	db, err := store.NewDB(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if err := migrations.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store.NewStore(db), nil
}
