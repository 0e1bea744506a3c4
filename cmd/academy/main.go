package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/learnloop/academy/internal/config"
)

func main() {
	cfg := config.NewConfigurationWithDefaults()
	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Configuration) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "academy",
		Short:         "Learning platform admin and learner API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Load(cmd.Flags(), configFile); err != nil {
				return err
			}
			return setupLogger(cfg.LogFormat, cfg.LogLevel)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = zap.L().Sync()
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "Path to a configuration file (yaml, json or toml)")
	config.RegisterFlags(root.PersistentFlags(), cfg)

	root.AddCommand(
		newRunCmd(cfg),
		newMigrateCmd(cfg),
		newAdminsCmd(cfg),
		newTokenCmd(cfg),
	)
	return root
}

func setupLogger(format, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var zcfg zap.Config
	switch format {
	case "json":
		zcfg = zap.NewProductionConfig()
	case "console":
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return fmt.Errorf("invalid log format %q: must be 'console' or 'json'", format)
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zcfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
