package postgres

import (
	"context"
	"database/sql"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableDBTX fails the test if any query reaches the database. Used to
// assert short-circuit paths that must not touch the connection.
type unreachableDBTX struct {
	t *testing.T
}

func (u *unreachableDBTX) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	u.t.Fatalf("unexpected ExecContext: %s", query)
	return nil, nil
}

func (u *unreachableDBTX) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	u.t.Fatalf("unexpected PrepareContext: %s", query)
	return nil, nil
}

func (u *unreachableDBTX) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	u.t.Fatalf("unexpected QueryContext: %s", query)
	return nil, nil
}

func (u *unreachableDBTX) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	u.t.Fatalf("unexpected QueryRowContext: %s", query)
	return nil
}

func TestPostgresUserStore_ListOffsetOverflow(t *testing.T) {
	store := NewPostgresUserStore(&unreachableDBTX{t: t}, nil)

	tests := []struct {
		name       string
		pageNumber int
		pageSize   int
	}{
		{name: "max_int_page_number", pageNumber: math.MaxInt, pageSize: 4},
		{name: "overflowing_product", pageNumber: math.MaxInt/4 + 1, pageSize: 4},
		{name: "both_huge", pageNumber: math.MaxInt / 2, pageSize: math.MaxInt / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := store.List(context.Background(), tt.pageNumber, tt.pageSize)
			require.NoError(t, err)
			assert.NotNil(t, users)
			assert.Empty(t, users)
		})
	}
}
