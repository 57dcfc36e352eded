//go:build integration

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/pydis/site-api/siteapi/database/dbtest"
	"github.com/pydis/site-api/siteapi/database/migrations"
)

func TestMigrator_FailedStepRunsAgain(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	fail := true
	ms := migrate.NewMigrations()
	ms.Add(migrate.Migration{
		Name:    "20240101000000",
		Comment: "flaky_step",
		Up: func(ctx context.Context, db *bun.DB) error {
			if fail {
				return errors.New("write failed")
			}
			_, err := db.ExecContext(ctx, `CREATE TABLE flaky (id int)`)
			return err
		},
		Down: func(ctx context.Context, db *bun.DB) error {
			_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS flaky`)
			return err
		},
	})

	m := NewMigrator(db, ms)
	require.NoError(t, m.Init(ctx))

	_, err := m.Migrate(ctx)
	require.ErrorContains(t, err, "write failed")

	status, err := m.MigrationsWithStatus(ctx)
	require.NoError(t, err)
	assert.Empty(t, status.Applied())

	fail = false
	group, err := m.Migrate(ctx)
	require.NoError(t, err)
	require.False(t, group.IsZero())
	assert.Len(t, group.Migrations, 1)

	_, err = db.NewSelect().TableExpr("flaky").Exists(ctx)
	require.NoError(t, err, "table from the retried step should exist")
}

func TestMigrator_SchemaUpAndDown(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	m := NewMigrator(db, migrations.Migrations)
	require.NoError(t, m.Init(ctx))

	group, err := m.Migrate(ctx)
	require.NoError(t, err)
	assert.Len(t, group.Migrations, 2)

	again, err := m.Migrate(ctx)
	require.NoError(t, err)
	assert.True(t, again.IsZero())

	rolled, err := m.Rollback(ctx)
	require.NoError(t, err)
	assert.Len(t, rolled.Migrations, 2)
}
