package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pydis/site-api/siteapi"
	"github.com/pydis/site-api/siteapi/database"
	"github.com/pydis/site-api/siteapi/logger"
)

var (
	version = "dev"
	commit  = "unknown"

	configPath string
	cfg        *siteapi.Config
)

var rootCmd = &cobra.Command{
	Use:           "siteapi",
	Short:         "Data API for the community bot",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := siteapi.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		slog.SetDefault(slog.New(logger.NewHandler("SiteAPI", cfg.Log.Level)))
		slog.Info("Configuration loaded",
			slog.String("type", "sys"),
			slog.String("path", configPath),
			slog.String("version", version),
			slog.String("commit", commit))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to config")
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.LogError("Command failed", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func connect(ctx context.Context) (*database.DB, error) {
	start := time.Now()
	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("type", "db"),
			slog.Any("error", err),
			slog.Duration("attempted_for", time.Since(start)))
		return nil, err
	}

	slog.Info("Database connected successfully",
		slog.String("type", "db"),
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(start)))
	return db, nil
}
