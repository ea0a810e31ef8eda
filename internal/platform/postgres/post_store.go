package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/directory-api/internal/domain"
	"github.com/phrazzld/directory-api/internal/platform/logger"
	"github.com/phrazzld/directory-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// ListByUser implements store.PostStore.ListByUser
// It returns all posts owned by the given user in insertion order.
// An unknown user yields an empty slice, not an error.
func (s *PostgresPostStore) ListByUser(ctx context.Context, userID string) ([]domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("listing posts for user", slog.String("user_id", userID))

	query := `
		SELECT id, user_id, title, body, created_at
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query posts",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return nil, store.NewStoreError("post", "list", "query failed", MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post

		err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.Title,
			&post.Body,
			&post.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("post", "list", "scan failed", MapError(err))
		}

		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("post", "list", "row iteration failed", MapError(err))
	}

	// Return empty slice instead of nil if the user has no posts
	if posts == nil {
		posts = []domain.Post{}
	}

	log.Debug("listed posts for user",
		slog.String("user_id", userID),
		slog.Int("count", len(posts)))
	return posts, nil
}

// Create implements store.PostStore.Create
// It persists a fully populated post. Returns a wrapped
// store.ErrInvalidEntity if the owning user does not exist (foreign key
// violation), or a wrapped store.ErrNotPersisted if the insert affected
// zero rows.
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID))
		return err
	}

	query := `
		INSERT INTO posts (id, user_id, title, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		post.ID,
		post.UserID,
		post.Title,
		post.Body,
		post.CreatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during post creation",
				slog.String("error", err.Error()),
				slog.String("post_id", post.ID),
				slog.String("user_id", post.UserID))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, post.UserID)
		}

		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID),
			slog.String("user_id", post.UserID))
		return store.NewStoreError("post", "create", "insert failed", MapError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID))
		return store.NewStoreError("post", "create", "rows affected unavailable", err)
	}

	if rowsAffected == 0 {
		log.Error("post insert affected zero rows",
			slog.String("post_id", post.ID),
			slog.String("user_id", post.UserID))
		return store.NewStoreError("post", "create", "insert affected zero rows", store.ErrNotPersisted)
	}

	log.Info("post created successfully",
		slog.String("post_id", post.ID),
		slog.String("user_id", post.UserID))
	return nil
}

// Delete implements store.PostStore.Delete
// It removes the post with the given ID if present, returning true iff at
// least one row was removed. A missing row is not an error.
func (s *PostgresPostStore) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("deleting post", slog.String("post_id", id))

	query := `DELETE FROM posts WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.String("post_id", id))
		return false, store.NewStoreError("post", "delete", "delete failed", MapError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("post_id", id))
		return false, store.NewStoreError("post", "delete", "rows affected unavailable", err)
	}

	if rowsAffected == 0 {
		log.Debug("post not found for delete", slog.String("post_id", id))
		return false, nil
	}

	log.Info("post deleted successfully",
		slog.String("post_id", id),
		slog.Int64("rows_affected", rowsAffected))
	return true, nil
}
