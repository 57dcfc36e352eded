package serializers

import (
	"context"

	"github.com/pydis/site-api/siteapi/database/models"
)

//go:generate mockgen -source=gateways.go -destination=mock/gateways.go -package=mock

// KeyLookup answers whether a record with the given primary key exists.
type KeyLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type UserGateway interface {
	Exists(ctx context.Context, id int64) (bool, error)
	Get(ctx context.Context, id int64) (*models.User, error)
}

// Writer persists a validated record.
type Writer[M any] interface {
	Create(ctx context.Context, m *M) error
}

type UserWriter interface {
	Create(ctx context.Context, user *models.User) error
	CreateMany(ctx context.Context, users []*models.User) error
}

type DeletionContextWriter interface {
	CreateWithMessages(ctx context.Context, dc *models.MessageDeletionContext, messages []*models.DeletedMessage) error
}
