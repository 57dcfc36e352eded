package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorWithID(t *testing.T) {
	br := &BaseRepository{}

	tests := []struct {
		name  string
		err   error
		check func(t *testing.T, err error)
	}{
		{
			name: "nil stays nil",
			err:  nil,
			check: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "no rows is not found",
			err:  fmt.Errorf("scan: %w", sql.ErrNoRows),
			check: func(t *testing.T, err error) {
				var nfe *NotFoundError
				require.ErrorAs(t, err, &nfe)
				assert.Equal(t, "tag", nfe.Entity)
				assert.Equal(t, "python", nfe.ID)
				assert.True(t, IsNotFound(err))
			},
		},
		{
			name: "pgx unique violation is a conflict",
			err: &pgconn.PgError{
				Code:           "23505",
				ConstraintName: "unique_name_type",
				Detail:         "Key (name, list_type)=(token, 0) already exists.",
			},
			check: func(t *testing.T, err error) {
				var ce *ConflictError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, "unique_name_type", ce.Constraint)
				assert.Contains(t, ce.Error(), "already exists")
				assert.True(t, IsConflict(err))
			},
		},
		{
			name: "other pgx errors are wrapped",
			err:  &pgconn.PgError{Code: "23503"},
			check: func(t *testing.T, err error) {
				var re *RepositoryError
				require.ErrorAs(t, err, &re)
				assert.Equal(t, "get", re.Operation)
				assert.False(t, IsConflict(err))
			},
		},
		{
			name: "plain errors are wrapped and unwrap",
			err:  errors.New("connection reset"),
			check: func(t *testing.T, err error) {
				assert.True(t, IsRepositoryError(err))
				assert.EqualError(t, errors.Unwrap(err), "connection reset")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, br.HandleErrorWithID("get", "tag", "python", tt.err))
		})
	}
}

func TestConflictErrorMessage(t *testing.T) {
	err := &ConflictError{Entity: "infraction", Constraint: "unique_active_infraction_per_type_per_user"}
	assert.Equal(t, "infraction conflicts with an existing record (unique_active_infraction_per_type_per_user)", err.Error())
}
