// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database. Tests using it skip themselves when no database URL is
// configured, except in CI where a missing database is treated as a failure.
package testdb

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/directory-api/internal/ciutil"
	"github.com/phrazzld/directory-api/internal/platform/postgres"
)

// TestTimeout bounds individual test database operations.
const TestTimeout = 5 * time.Second

// GetTestDatabaseURL returns the database URL for integration tests, checking
// DATABASE_URL first and DIRECTORY_TEST_DB_URL as a fallback.
func GetTestDatabaseURL() string {
	return ciutil.GetEnvWithFallbacks(
		[]string{ciutil.EnvDatabaseURL, ciutil.EnvDirectoryTestDBURL},
		"",
		nil,
	)
}

// IsIntegrationTestEnvironment returns true if a test database URL is
// configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// SkipIfNoDatabase skips the test when no database URL is configured. In CI
// the test fails instead, so a misconfigured pipeline cannot silently skip
// the integration suite.
func SkipIfNoDatabase(t *testing.T) {
	t.Helper()

	if IsIntegrationTestEnvironment() {
		return
	}
	if ciutil.IsCI() {
		t.Fatal("integration test requires DATABASE_URL, which is not set in this CI environment")
	}
	t.Skip("skipping integration test: DATABASE_URL not set")
}

// NewTestDB opens a connection to the test database, applies migrations and
// registers cleanup. The pool is limited to a single connection to match the
// server's connection discipline.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	SkipIfNoDatabase(t)

	db, err := sql.Open("pgx", GetTestDatabaseURL())
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() {
		if cerr := db.Close(); cerr != nil {
			t.Logf("failed to close test database: %v", cerr)
		}
	})

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "test database is not reachable")

	require.NoError(t, postgres.Migrate(ctx, db, nil), "failed to migrate test database")

	return db
}

// ResetTables removes all rows from the tables used by the directory service.
// Posts are cleared before users to respect the foreign key.
func ResetTables(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	for _, table := range []string{"posts", "users"} {
		_, err := db.ExecContext(ctx, "DELETE FROM "+table)
		require.NoError(t, err, "failed to clear table %s", table)
	}
}

// WithTx runs fn inside a transaction that is always rolled back, isolating
// the test's writes from the rest of the suite.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		if rerr := tx.Rollback(); rerr != nil && !errors.Is(rerr, sql.ErrTxDone) {
			t.Logf("failed to roll back transaction: %v", rerr)
		}
	}()

	fn(t, tx)
}
