package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun/migrate"

	"github.com/pydis/site-api/siteapi/config"
)

var migrateCMD = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database schema migrations",
}

// migrationCommand wraps a migrator action with a connection, a timeout and
// the migration lock.
func migrationCommand(use, short string, locked bool, run func(ctx context.Context, m *migrate.Migrator) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), config.MigrationTimeout)
			defer cancel()

			db, err := connect(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			migrator := db.Migrator()
			if !locked {
				return run(ctx, migrator)
			}

			if err = migrator.Lock(ctx); err != nil {
				return err
			}
			defer func() {
				if err := migrator.Unlock(ctx); err != nil {
					slog.Error("Failed to release migration lock",
						slog.String("type", "db"),
						slog.Any("error", err))
				}
			}()
			return run(ctx, migrator)
		},
	}
}

var migrateInitCMD = migrationCommand("init", "Create the migration bookkeeping tables", false,
	func(ctx context.Context, m *migrate.Migrator) error {
		if err := m.Init(ctx); err != nil {
			return err
		}
		slog.Info("Migration tables created", slog.String("type", "db"))
		return nil
	})

var migrateUpCMD = migrationCommand("up", "Apply all pending migrations", true,
	func(ctx context.Context, m *migrate.Migrator) error {
		group, err := m.Migrate(ctx)
		if err != nil {
			return err
		}
		if group.IsZero() {
			slog.Info("No new migrations to run", slog.String("type", "db"))
			return nil
		}
		slog.Info("Migrations applied",
			slog.String("type", "db"),
			slog.Int64("group", group.ID),
			slog.String("migrations", group.Migrations.String()))
		return nil
	})

var migrateDownCMD = migrationCommand("down", "Roll back the last migration group", true,
	func(ctx context.Context, m *migrate.Migrator) error {
		group, err := m.Rollback(ctx)
		if err != nil {
			return err
		}
		if group.IsZero() {
			slog.Info("No groups to roll back", slog.String("type", "db"))
			return nil
		}
		slog.Info("Migrations rolled back",
			slog.String("type", "db"),
			slog.Int64("group", group.ID),
			slog.String("migrations", group.Migrations.String()))
		return nil
	})

var migrateStatusCMD = migrationCommand("status", "Show applied and pending migrations", false,
	func(ctx context.Context, m *migrate.Migrator) error {
		ms, err := m.MigrationsWithStatus(ctx)
		if err != nil {
			return err
		}
		slog.Info("Migration status",
			slog.String("type", "db"),
			slog.String("migrations", ms.String()),
			slog.String("unapplied", ms.Unapplied().String()),
			slog.String("last_group", ms.LastGroup().String()))
		return nil
	})

func init() {
	migrateCMD.AddCommand(migrateInitCMD, migrateUpCMD, migrateDownCMD, migrateStatusCMD)
	rootCmd.AddCommand(migrateCMD)
}
