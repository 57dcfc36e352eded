package repositories

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// QueryOption narrows a list query.
type QueryOption func(*bun.SelectQuery) *bun.SelectQuery

// WhereEq filters on column = value.
func WhereEq(column string, value any) QueryOption {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("? = ?", bun.Ident(column), value)
	}
}

// Store is the set of operations every record type supports, keyed by its
// primary key column.
type Store[M any, K comparable] interface {
	List(ctx context.Context, opts ...QueryOption) ([]*M, error)
	Get(ctx context.Context, key K) (*M, error)
	Exists(ctx context.Context, key K) (bool, error)
	Create(ctx context.Context, m *M) error
	Update(ctx context.Context, m *M) error
	Delete(ctx context.Context, key K) error
}

type store[M any, K comparable] struct {
	*BaseRepository
	entity string
	pk     string
}

func NewStore[M any, K comparable](db *bun.DB, entity, pk string) Store[M, K] {
	return &store[M, K]{
		BaseRepository: NewBaseRepository(db),
		entity:         entity,
		pk:             pk,
	}
}

func (s *store[M, K]) List(ctx context.Context, opts ...QueryOption) ([]*M, error) {
	ctx, cancel := s.WithTimeout(ctx)
	defer cancel()

	var out []*M
	q := s.db.NewSelect().Model(&out)
	for _, opt := range opts {
		q = opt(q)
	}
	if err := q.OrderExpr("? ASC", bun.Ident(s.pk)).Scan(ctx); err != nil {
		return nil, s.HandleError("list", s.entity, err)
	}
	return out, nil
}

func (s *store[M, K]) Get(ctx context.Context, key K) (*M, error) {
	ctx, cancel := s.WithTimeout(ctx)
	defer cancel()

	m := new(M)
	err := s.db.NewSelect().
		Model(m).
		Where("? = ?", bun.Ident(s.pk), key).
		Scan(ctx)
	if err != nil {
		return nil, s.HandleErrorWithID("get", s.entity, key, err)
	}
	return m, nil
}

func (s *store[M, K]) Exists(ctx context.Context, key K) (bool, error) {
	ctx, cancel := s.WithTimeout(ctx)
	defer cancel()

	exists, err := s.db.NewSelect().
		Model((*M)(nil)).
		Where("? = ?", bun.Ident(s.pk), key).
		Exists(ctx)
	if err != nil {
		return false, s.HandleErrorWithID("exists", s.entity, key, err)
	}
	return exists, nil
}

func (s *store[M, K]) Create(ctx context.Context, m *M) error {
	ctx, cancel := s.WithTimeout(ctx)
	defer cancel()

	_, err := s.db.NewInsert().Model(m).Returning("*").Exec(ctx)
	return s.HandleError("create", s.entity, err)
}

func (s *store[M, K]) Update(ctx context.Context, m *M) error {
	ctx, cancel := s.WithTimeout(ctx)
	defer cancel()

	res, err := s.db.NewUpdate().Model(m).WherePK().Exec(ctx)
	if err != nil {
		return s.HandleError("update", s.entity, err)
	}
	return s.expectRow(res, "update", "unknown")
}

func (s *store[M, K]) Delete(ctx context.Context, key K) error {
	ctx, cancel := s.WithTimeout(ctx)
	defer cancel()

	res, err := s.db.NewDelete().
		Model((*M)(nil)).
		Where("? = ?", bun.Ident(s.pk), key).
		Exec(ctx)
	if err != nil {
		return s.HandleErrorWithID("delete", s.entity, key, err)
	}
	return s.expectRow(res, "delete", key)
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func (s *store[M, K]) expectRow(res rowsAffecter, operation string, id any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return s.HandleError(operation, s.entity, fmt.Errorf("rows affected: %w", err))
	}
	if n == 0 {
		return &NotFoundError{Entity: s.entity, ID: id}
	}
	return nil
}
