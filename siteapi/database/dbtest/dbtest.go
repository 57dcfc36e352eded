//go:build integration

// Package dbtest opens throwaway Postgres schemas for integration tests.
package dbtest

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// DSNEnv names the variable holding the test server's connection string.
const DSNEnv = "SITEAPI_TEST_DSN"

// Open returns a handle whose search_path is a fresh schema, dropped when
// the test ends. The test is skipped when DSNEnv is unset.
func Open(t *testing.T) *bun.DB {
	t.Helper()

	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skipf("%s not set", DSNEnv)
	}

	admin := connect(dsn)
	t.Cleanup(func() { _ = admin.Close() })

	schema := fmt.Sprintf("siteapi_test_%d", time.Now().UnixNano())
	_, err := admin.ExecContext(context.Background(), "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = admin.ExecContext(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
	})

	db := connect(dsn, pgdriver.WithConnParams(map[string]interface{}{"search_path": schema}))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func connect(dsn string, opts ...pgdriver.Option) *bun.DB {
	opts = append([]pgdriver.Option{pgdriver.WithDSN(dsn)}, opts...)
	return bun.NewDB(sql.OpenDB(pgdriver.NewConnector(opts...)), pgdialect.New())
}
