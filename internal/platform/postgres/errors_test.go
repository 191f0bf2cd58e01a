package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/taskboard-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNil bool
	}{
		{
			name:    "nil error",
			err:     nil,
			wantNil: true,
		},
		{
			name:   "no rows maps to not found",
			err:    sql.ErrNoRows,
			wantIs: store.ErrNotFound,
		},
		{
			name: "email unique violation maps to email exists",
			err: &pgconn.PgError{
				Code:           uniqueViolationCode,
				ConstraintName: usersEmailUniqueConstraint,
			},
			wantIs: store.ErrEmailExists,
		},
		{
			name: "other unique violation maps to generic duplicate",
			err: &pgconn.PgError{
				Code:           uniqueViolationCode,
				ConstraintName: "some_other_key",
			},
			wantIs: store.ErrDuplicate,
		},
		{
			name: "assignee fk violation maps to assignee not found",
			err: &pgconn.PgError{
				Code:           foreignKeyViolationCode,
				ConstraintName: tasksAssigneeFKConstraint,
			},
			wantIs: store.ErrAssigneeNotFound,
		},
		{
			name: "other fk violation maps to invalid reference",
			err: &pgconn.PgError{
				Code:           foreignKeyViolationCode,
				ConstraintName: "some_other_fkey",
			},
			wantIs: store.ErrInvalidReference,
		},
		{
			name: "check violation maps to invalid entity",
			err: &pgconn.PgError{
				Code:           checkViolationCode,
				ConstraintName: "tasks_title_check",
			},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name: "not null violation maps to invalid entity",
			err: &pgconn.PgError{
				Code:       notNullViolationCode,
				ColumnName: "title",
			},
			wantIs: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mapped := MapError(tt.err)
			if tt.wantNil {
				assert.NoError(t, mapped)
				return
			}
			assert.True(t, errors.Is(mapped, tt.wantIs),
				"MapError(%v) = %v, want errors.Is(..., %v)", tt.err, mapped, tt.wantIs)
		})
	}

	t.Run("unknown errors pass through", func(t *testing.T) {
		t.Parallel()

		err := errors.New("connection reset")
		assert.Equal(t, err, MapError(err))
	})

	t.Run("wrapped pg errors are still mapped", func(t *testing.T) {
		t.Parallel()

		pgErr := &pgconn.PgError{
			Code:           uniqueViolationCode,
			ConstraintName: usersEmailUniqueConstraint,
		}
		wrapped := fmt.Errorf("insert user: %w", pgErr)
		assert.True(t, errors.Is(MapError(wrapped), store.ErrEmailExists))
	})
}

func TestViolationPredicates(t *testing.T) {
	t.Parallel()

	unique := &pgconn.PgError{Code: uniqueViolationCode}
	fk := &pgconn.PgError{Code: foreignKeyViolationCode}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.False(t, IsUniqueViolation(errors.New("boom")))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.False(t, IsForeignKeyViolation(nil))
}
