package store

import (
	"context"

	"github.com/phrazzld/directory-api/internal/domain"
)

// UserStore defines the read-only interface for user directory persistence.
// Users are seed data; no create, update or delete operations exist.
type UserStore interface {
	// Count returns the total number of user rows.
	// Fails with a storage error if the query cannot execute.
	Count(ctx context.Context) (int, error)

	// List returns up to pageSize users starting at offset
	// pageNumber*pageSize, ordered by primary key. Optional address
	// fields are normalized (NULL to empty string, surrounding
	// whitespace trimmed) before being returned.
	// The store itself enforces no upper bound on pageSize; that is
	// the caller's responsibility.
	List(ctx context.Context, pageNumber, pageSize int) ([]domain.User, error)

	// Exists reports whether a user with the given ID exists.
	// It never fails merely because the ID does not match a row;
	// only an actual storage fault produces an error.
	Exists(ctx context.Context, id string) (bool, error)
}
