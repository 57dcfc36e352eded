package repositories

import (
	"context"
	"log/slog"
	"slices"

	lru "github.com/hashicorp/golang-lru"
	"github.com/uptrace/bun"

	"github.com/pydis/site-api/siteapi/config"
	"github.com/pydis/site-api/siteapi/database/models"
)

type UserRepository interface {
	Store[models.User, int64]
	CreateMany(ctx context.Context, users []*models.User) error
}

// userRepository serves Get from an LRU cache. Writes through this
// repository keep the cache coherent; writes from elsewhere are not seen
// until the entry is evicted.
type userRepository struct {
	Store[models.User, int64]
	base  *BaseRepository
	cache *lru.Cache
}

func NewUserRepository(db *bun.DB, cacheSize int) (UserRepository, error) {
	return newCachedUserRepository(NewStore[models.User, int64](db, "user", "id"), NewBaseRepository(db), cacheSize)
}

func newCachedUserRepository(s Store[models.User, int64], base *BaseRepository, cacheSize int) (*userRepository, error) {
	if cacheSize <= 0 {
		cacheSize = config.DefaultUserCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &userRepository{Store: s, base: base, cache: cache}, nil
}

func (r *userRepository) Get(ctx context.Context, id int64) (*models.User, error) {
	if v, ok := r.cache.Get(id); ok {
		slog.Debug("User cache hit",
			slog.String("type", "db"),
			slog.Int64("user_id", id))
		return cloneUser(v.(*models.User)), nil
	}

	user, err := r.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.Add(id, cloneUser(user))
	return user, nil
}

func (r *userRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if r.cache.Contains(id) {
		return true, nil
	}
	return r.Store.Exists(ctx, id)
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.Store.Create(ctx, user); err != nil {
		return err
	}
	r.cache.Add(user.ID, cloneUser(user))
	return nil
}

// CreateMany inserts all users in one statement; either every row is written or none.
func (r *userRepository) CreateMany(ctx context.Context, users []*models.User) error {
	if len(users) == 0 {
		return nil
	}
	if err := r.base.BatchInsert(ctx, "user", &users); err != nil {
		return err
	}
	for _, u := range users {
		r.cache.Add(u.ID, cloneUser(u))
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	r.cache.Remove(user.ID)
	return r.Store.Update(ctx, user)
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	r.cache.Remove(id)
	return r.Store.Delete(ctx, id)
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.Roles = slices.Clone(u.Roles)
	if u.AvatarHash != nil {
		hash := *u.AvatarHash
		c.AvatarHash = &hash
	}
	return &c
}
