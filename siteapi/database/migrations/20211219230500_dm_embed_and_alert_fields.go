package migrations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/pydis/site-api/siteapi/logger"
)

func init() {
	Migrations.MustRegister(addDMEmbedAndAlertFields, resetFilterListAlerts)
}

// FilterList is the filter list row as this migration sees it. It is kept
// separate from the application model so later model changes cannot alter
// what the migration writes.
type FilterList struct {
	bun.BaseModel `bun:"table:api_filterlist,alias:fl"`

	ID        int64   `bun:"id,pk,autoincrement"`
	Name      string  `bun:"name,notnull"`
	SendAlert *bool   `bun:"send_alert"`
	DMEmbed   *string `bun:"dm_embed"`
}

var sendAlertByName = map[string]bool{
	"token":     true,
	"domain":    true,
	"invite":    true,
	"extension": false,
	"redirect":  false,
}

var addAlertColumns = []string{
	`ALTER TABLE api_filter ADD COLUMN IF NOT EXISTS send_alert boolean NULL`,
	`ALTER TABLE api_filter ADD COLUMN IF NOT EXISTS dm_embed varchar(2000) NULL`,
	`ALTER TABLE api_filterlist ADD COLUMN IF NOT EXISTS send_alert boolean NULL DEFAULT true`,
	`ALTER TABLE api_filterlist ADD COLUMN IF NOT EXISTS dm_embed varchar(2000) NULL`,
}

// SendAlertFor returns the initial send_alert value for a list name, or nil
// for names outside the known set.
func SendAlertFor(name string) *bool {
	v, ok := sendAlertByName[name]
	if !ok {
		return nil
	}
	return &v
}

func ForwardFilterList(fl *FilterList) {
	empty := ""
	fl.SendAlert = SendAlertFor(fl.Name)
	fl.DMEmbed = &empty
}

func ReverseFilterList(fl *FilterList) {
	alert := true
	fl.SendAlert = &alert
}

func addDMEmbedAndAlertFields(ctx context.Context, db *bun.DB) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, stmt := range addAlertColumns {
			start := time.Now()
			_, err := tx.ExecContext(ctx, stmt)
			logger.LogQuery("add_column", stmt, time.Since(start), err)
			if err != nil {
				return fmt.Errorf("failed to add filter columns: %w", err)
			}
		}

		n, err := rewriteFilterLists(ctx, tx, ForwardFilterList, "send_alert", "dm_embed")
		if err != nil {
			return err
		}
		slog.Info("Backfilled filter list alerts",
			slog.String("type", "db"),
			slog.Int("rows", n),
		)
		return nil
	})
}

func resetFilterListAlerts(ctx context.Context, db *bun.DB) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		n, err := rewriteFilterLists(ctx, tx, ReverseFilterList, "send_alert")
		if err != nil {
			return err
		}

		var legacy bool
		err = tx.QueryRowContext(ctx, `SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_schema = current_schema()
				AND table_name = 'api_filterlist'
				AND column_name = 'server_message_embed'
		)`).Scan(&legacy)
		if err != nil {
			return fmt.Errorf("failed to inspect api_filterlist: %w", err)
		}
		if legacy {
			if _, err := tx.ExecContext(ctx, `UPDATE api_filterlist SET server_message_embed = NULL`); err != nil {
				return fmt.Errorf("failed to clear server_message_embed: %w", err)
			}
		}

		slog.Info("Reset filter list alerts",
			slog.String("type", "db"),
			slog.Int("rows", n),
			slog.Bool("legacy_embed_cleared", legacy),
		)
		return nil
	})
}

func rewriteFilterLists(ctx context.Context, tx bun.Tx, apply func(*FilterList), columns ...string) (int, error) {
	var lists []FilterList
	if err := tx.NewSelect().Model(&lists).Column("id", "name").Order("id").Scan(ctx); err != nil {
		return 0, fmt.Errorf("failed to load filter lists: %w", err)
	}

	for i := range lists {
		apply(&lists[i])
		if _, err := tx.NewUpdate().Model(&lists[i]).Column(columns...).WherePK().Exec(ctx); err != nil {
			return i, fmt.Errorf("failed to update filter list %d: %w", lists[i].ID, err)
		}
	}
	return len(lists), nil
}
