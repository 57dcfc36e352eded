package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/pydis/site-api/siteapi/config"
)

const uniqueViolation = "23505"

// BaseRepository provides common repository functionality
type BaseRepository struct {
	db             *bun.DB
	defaultTimeout time.Duration
}

func NewBaseRepository(db *bun.DB) *BaseRepository {
	return &BaseRepository{
		db:             db,
		defaultTimeout: config.DefaultQueryTimeout,
	}
}

// RepositoryError represents a repository-level error
type RepositoryError struct {
	Operation string
	Entity    string
	Err       error
}

func (re *RepositoryError) Error() string {
	return fmt.Sprintf("repository error during %s for %s: %v", re.Operation, re.Entity, re.Err)
}

func (re *RepositoryError) Unwrap() error {
	return re.Err
}

// NotFoundError represents an entity not found error
type NotFoundError struct {
	Entity string
	ID     any
}

func (nfe *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %v not found", nfe.Entity, nfe.ID)
}

// ConflictError is returned when a write violates a unique constraint.
type ConflictError struct {
	Entity     string
	Constraint string
	Detail     string
}

func (ce *ConflictError) Error() string {
	if ce.Detail != "" {
		return fmt.Sprintf("%s conflicts with an existing record: %s", ce.Entity, ce.Detail)
	}
	return fmt.Sprintf("%s conflicts with an existing record (%s)", ce.Entity, ce.Constraint)
}

func (br *BaseRepository) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, br.defaultTimeout)
}

func (br *BaseRepository) WithCustomTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// HandleError standardizes error handling across repositories
func (br *BaseRepository) HandleError(operation, entity string, err error) error {
	return br.HandleErrorWithID(operation, entity, "unknown", err)
}

func (br *BaseRepository) HandleErrorWithID(operation, entity string, id any, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Entity: entity, ID: id}
	}

	if conflict := asConflict(entity, err); conflict != nil {
		return conflict
	}

	return &RepositoryError{
		Operation: operation,
		Entity:    entity,
		Err:       err,
	}
}

// asConflict recognises unique violations from either driver.
func asConflict(entity string, err error) *ConflictError {
	var driverErr pgdriver.Error
	if errors.As(err, &driverErr) && driverErr.Field('C') == uniqueViolation {
		return &ConflictError{
			Entity:     entity,
			Constraint: driverErr.Field('n'),
			Detail:     driverErr.Field('D'),
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &ConflictError{
			Entity:     entity,
			Constraint: pgErr.ConstraintName,
			Detail:     pgErr.Detail,
		}
	}
	return nil
}

// Transaction executes a function within a database transaction
func (br *BaseRepository) Transaction(ctx context.Context, fn func(context.Context, bun.Tx) error) error {
	timeoutCtx, cancel := br.WithTimeout(ctx)
	defer cancel()

	return br.db.RunInTx(timeoutCtx, nil, fn)
}

// BatchInsert inserts a slice of models in one statement.
func (br *BaseRepository) BatchInsert(ctx context.Context, entity string, items any) error {
	timeoutCtx, cancel := br.WithCustomTimeout(ctx, config.BatchQueryTimeout)
	defer cancel()

	_, err := br.db.NewInsert().Model(items).Returning("*").Exec(timeoutCtx)
	return br.HandleError("batch_insert", entity, err)
}

func (br *BaseRepository) GetDB() *bun.DB {
	return br.db
}

func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

func IsRepositoryError(err error) bool {
	var re *RepositoryError
	return errors.As(err, &re)
}
