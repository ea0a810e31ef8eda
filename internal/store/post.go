package store

import (
	"context"

	"github.com/phrazzld/directory-api/internal/domain"
)

// PostStore defines the interface for post persistence.
type PostStore interface {
	// ListByUser returns all posts owned by the given user in insertion
	// order. It returns an empty slice (not an error) when the user has
	// no posts or does not exist; user existence is the caller's concern.
	ListByUser(ctx context.Context, userID string) ([]domain.Post, error)

	// Create persists a fully populated post.
	// Returns a wrapped ErrInvalidEntity if the owning user does not
	// exist (foreign key violation), or a wrapped ErrNotPersisted if the
	// insert affected zero rows.
	Create(ctx context.Context, post *domain.Post) error

	// Delete removes the post with the given ID if present.
	// Returns true iff at least one row was removed, and false with a
	// nil error when no row matched. Only an actual storage fault
	// produces an error.
	Delete(ctx context.Context, id string) (bool, error)
}
