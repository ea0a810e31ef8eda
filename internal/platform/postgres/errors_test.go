package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/directory-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func pgError(code, constraint string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "nil_error",
			err:      nil,
			expected: nil,
		},
		{
			name:     "no_rows_maps_to_not_found",
			err:      sql.ErrNoRows,
			expected: store.ErrNotFound,
		},
		{
			name:     "unique_violation_maps_to_duplicate",
			err:      pgError("23505", "posts_pkey"),
			expected: store.ErrDuplicate,
		},
		{
			name:     "foreign_key_violation_maps_to_invalid_entity",
			err:      pgError("23503", "posts_user_id_fkey"),
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "wrapped_foreign_key_violation",
			err:      fmt.Errorf("exec: %w", pgError("23503", "posts_user_id_fkey")),
			expected: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			if tt.expected == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tt.expected)
		})
	}
}

func TestMapError_PassesThroughUnknownErrors(t *testing.T) {
	unknown := errors.New("connection reset by peer")
	assert.Same(t, unknown, MapError(unknown))
}

func TestViolationHelpers(t *testing.T) {
	fk := pgError("23503", "posts_user_id_fkey")
	unique := pgError("23505", "posts_pkey")

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.False(t, IsForeignKeyViolation(errors.New("other")))

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))

	assert.True(t, IsNotFoundError(sql.ErrNoRows))
	assert.True(t, IsNotFoundError(store.ErrPostNotFound))
	assert.False(t, IsNotFoundError(errors.New("other")))
}
