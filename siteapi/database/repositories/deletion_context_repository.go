package repositories

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/pydis/site-api/siteapi/database/models"
)

type DeletionContextRepository interface {
	Store[models.MessageDeletionContext, int64]
	CreateWithMessages(ctx context.Context, dc *models.MessageDeletionContext, messages []*models.DeletedMessage) error
	GetWithMessages(ctx context.Context, id int64) (*models.MessageDeletionContext, error)
}

type deletionContextRepository struct {
	Store[models.MessageDeletionContext, int64]
	*BaseRepository
}

func NewDeletionContextRepository(db *bun.DB) DeletionContextRepository {
	return &deletionContextRepository{
		Store:          NewStore[models.MessageDeletionContext, int64](db, "message deletion context", "id"),
		BaseRepository: NewBaseRepository(db),
	}
}

// CreateWithMessages writes the context and then its messages, each pointing
// at the new context id, in a single transaction.
func (r *deletionContextRepository) CreateWithMessages(ctx context.Context, dc *models.MessageDeletionContext, messages []*models.DeletedMessage) error {
	err := r.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(dc).Returning("*").Exec(ctx); err != nil {
			return fmt.Errorf("insert context: %w", err)
		}

		if len(messages) == 0 {
			return nil
		}
		for _, m := range messages {
			m.DeletionContextID = dc.ID
		}
		if _, err := tx.NewInsert().Model(&messages).Exec(ctx); err != nil {
			return fmt.Errorf("insert deleted messages: %w", err)
		}
		return nil
	})
	if err != nil {
		dc.ID = 0
		return r.HandleError("create_with_messages", "message deletion context", err)
	}

	dc.DeletedMessages = messages
	return nil
}

func (r *deletionContextRepository) GetWithMessages(ctx context.Context, id int64) (*models.MessageDeletionContext, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	dc := new(models.MessageDeletionContext)
	err := r.GetDB().NewSelect().
		Model(dc).
		Relation("DeletedMessages", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("dm.id ASC")
		}).
		Where("mdc.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get_with_messages", "message deletion context", id, err)
	}
	return dc, nil
}
