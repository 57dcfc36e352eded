package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"golang.org/x/sync/errgroup"

	"github.com/pydis/site-api/siteapi"
	"github.com/pydis/site-api/siteapi/database/migrations"
)

const (
	defaultConnTimeout   = 5 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
)

// DB bundles the pgx pool used for health checks and the bun handle used by
// repositories and migrations. Both point at the same database.
type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg siteapi.DBConfig) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolConfig.ConnConfig.ConnectTimeout = defaultConnTimeout
	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxLifetime) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	db := &DB{pool: pool, bunDB: newBunDB(cfg)}

	for i := 0; i < defaultMaxRetries; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, defaultConnTimeout)
		err = db.Ping(pingCtx)
		cancel()
		if err == nil {
			break
		}
		slog.Warn("Database not reachable yet",
			slog.String("type", "db"),
			slog.Int("attempt", i+1),
			slog.Any("error", err),
		)
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("database server unreachable after %d attempts: %w", defaultMaxRetries, err)
	}

	return db, nil
}

func buildConnString(cfg siteapi.DBConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode,
	)
}

func newBunDB(cfg siteapi.DBConfig) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(buildConnString(cfg)),
		pgdriver.WithDialTimeout(defaultConnTimeout),
	))
	if cfg.PoolSize > 0 {
		sqldb.SetMaxOpenConns(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	return bun.NewDB(sqldb, pgdialect.New())
}

func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

// Migrator returns a migrator over the embedded schema migrations.
func (db *DB) Migrator() *migrate.Migrator {
	return NewMigrator(db.bunDB, migrations.Migrations)
}

// NewMigrator records a migration as applied only after its up step
// succeeds, so a failed step is attempted again on the next run.
func NewMigrator(db *bun.DB, ms *migrate.Migrations) *migrate.Migrator {
	return migrate.NewMigrator(db, ms, migrate.WithMarkAppliedOnSuccess(true))
}

// Ping checks both connection paths concurrently.
func (db *DB) Ping(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := db.pool.Ping(ctx); err != nil {
			return fmt.Errorf("pgx pool: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := db.bunDB.PingContext(ctx); err != nil {
			return fmt.Errorf("bun: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func (db *DB) Close() {
	if db.bunDB != nil {
		if err := db.bunDB.Close(); err != nil {
			slog.Error("Failed to close bun connection", slog.Any("error", err))
		}
	}
	if db.pool != nil {
		db.pool.Close()
	}
}
