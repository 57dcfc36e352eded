package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pydis/site-api/backend"
	"github.com/pydis/site-api/backend/handlers"
	"github.com/pydis/site-api/siteapi/database/repositories"
	"github.com/pydis/site-api/siteapi/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCMD = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		db, err := connect(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		repos, err := repositories.New(db.BunDB(), cfg.Cache.UserCacheSize)
		if err != nil {
			return fmt.Errorf("failed to build repositories: %w", err)
		}

		app := backend.NewApp(&handlers.WebApp{
			Config:  cfg,
			DB:      db,
			Repos:   repos,
			Version: version,
			Commit:  commit,
		})

		addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
		errs := make(chan error, 1)
		go func() {
			logger.LogSystem("Starting HTTP server", slog.String("address", addr))
			errs <- app.Listen(addr)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err = <-errs:
			return fmt.Errorf("server stopped: %w", err)
		case <-quit:
		}

		logger.LogSystem("Shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err = app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.LogError("Server forced to shutdown", err)
			return err
		}

		logger.LogSystem("Server exited")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCMD)
}
