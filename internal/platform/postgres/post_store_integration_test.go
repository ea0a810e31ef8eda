package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/directory-api/internal/domain"
	"github.com/phrazzld/directory-api/internal/platform/postgres"
	"github.com/phrazzld/directory-api/internal/store"
	"github.com/phrazzld/directory-api/internal/testdb"
)

func insertTestPost(t *testing.T, tx *sql.Tx, id, userID, title, createdAt string) {
	t.Helper()

	_, err := tx.ExecContext(context.Background(),
		`INSERT INTO posts (id, user_id, title, body, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, userID, title, "body of "+title, createdAt)
	require.NoError(t, err)
}

func TestPostgresPostStore_Integration(t *testing.T) {
	db := testdb.NewTestDB(t)

	t.Run("Create and ListByUser", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			posts := postgres.NewPostgresPostStore(tx, nil)
			ctx := context.Background()

			insertTestUser(t, tx, "it-author", "Author")

			post, err := domain.NewPost("it-author", "First Post", "Hello from the suite")
			require.NoError(t, err)
			require.NoError(t, posts.Create(ctx, post))

			got, err := posts.ListByUser(ctx, "it-author")
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, post.ID, got[0].ID)
			assert.Equal(t, "First Post", got[0].Title)
			assert.Equal(t, post.CreatedAt, got[0].CreatedAt)
		})
	})

	t.Run("ListByUser orders by creation time", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			posts := postgres.NewPostgresPostStore(tx, nil)
			ctx := context.Background()

			insertTestUser(t, tx, "it-ordered", "Ordered")
			insertTestPost(t, tx, "p-late", "it-ordered", "Later", "2026-02-01T00:00:00Z")
			insertTestPost(t, tx, "p-early", "it-ordered", "Earlier", "2026-01-01T00:00:00Z")

			got, err := posts.ListByUser(ctx, "it-ordered")
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "p-early", got[0].ID)
			assert.Equal(t, "p-late", got[1].ID)
		})
	})

	t.Run("ListByUser for unknown user is empty not nil", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			posts := postgres.NewPostgresPostStore(tx, nil)

			got, err := posts.ListByUser(context.Background(), "it-nobody")
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	})

	t.Run("Create against unknown user reports invalid entity", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			posts := postgres.NewPostgresPostStore(tx, nil)

			post, err := domain.NewPost("it-ghost", "Orphan", "No such author")
			require.NoError(t, err)

			err = posts.Create(context.Background(), post)
			require.Error(t, err)
			assert.ErrorIs(t, err, store.ErrInvalidEntity)
		})
	})

	t.Run("Delete", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			posts := postgres.NewPostgresPostStore(tx, nil)
			ctx := context.Background()

			insertTestUser(t, tx, "it-deleter", "Deleter")
			insertTestPost(t, tx, "p-doomed", "it-deleter", "Doomed", "2026-03-01T00:00:00Z")

			deleted, err := posts.Delete(ctx, "p-doomed")
			require.NoError(t, err)
			assert.True(t, deleted)

			deleted, err = posts.Delete(ctx, "p-doomed")
			require.NoError(t, err)
			assert.False(t, deleted)
		})
	})
}
