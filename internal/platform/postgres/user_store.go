package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"math"
	"strings"

	"github.com/phrazzld/directory-api/internal/domain"
	"github.com/phrazzld/directory-api/internal/platform/logger"
	"github.com/phrazzld/directory-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Count implements store.UserStore.Count
// It returns the total number of user rows.
func (s *PostgresUserStore) Count(ctx context.Context) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT COUNT(*) FROM users`

	var count int
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		log.Error("failed to count users", slog.String("error", err.Error()))
		return 0, store.NewStoreError("user", "count", "query failed", MapError(err))
	}

	log.Debug("counted users", slog.Int("count", count))
	return count, nil
}

// List implements store.UserStore.List
// It returns up to pageSize users starting at offset pageNumber*pageSize,
// ordered by primary key. NULL address fields are normalized to empty
// strings and all address values are trimmed of surrounding whitespace.
func (s *PostgresUserStore) List(ctx context.Context, pageNumber, pageSize int) ([]domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// An offset that would overflow cannot address any row; treat it as a
	// page past the end rather than handing a negative offset to the driver.
	if pageSize > 0 && pageNumber > math.MaxInt/pageSize {
		log.Debug("requested page is beyond any addressable offset",
			slog.Int("page_number", pageNumber),
			slog.Int("page_size", pageSize))
		return []domain.User{}, nil
	}

	offset := pageNumber * pageSize

	log.Debug("listing users",
		slog.Int("page_number", pageNumber),
		slog.Int("page_size", pageSize))

	query := `
		SELECT id, name, username, email, phone, street, city, state, zipcode
		FROM users
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		log.Error("failed to query users",
			slog.String("error", err.Error()),
			slog.Int("page_number", pageNumber),
			slog.Int("page_size", pageSize))
		return nil, store.NewStoreError("user", "list", "query failed", MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		var street, city, state, zipcode sql.NullString

		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Username,
			&user.Email,
			&user.Phone,
			&street,
			&city,
			&state,
			&zipcode,
		)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("user", "list", "scan failed", MapError(err))
		}

		user.Street = normalizeAddressField(street)
		user.City = normalizeAddressField(city)
		user.State = normalizeAddressField(state)
		user.Zipcode = normalizeAddressField(zipcode)

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "list", "row iteration failed", MapError(err))
	}

	// Return empty slice instead of nil if no users found
	if users == nil {
		users = []domain.User{}
	}

	log.Debug("listed users",
		slog.Int("page_number", pageNumber),
		slog.Int("page_size", pageSize),
		slog.Int("count", len(users)))
	return users, nil
}

// Exists implements store.UserStore.Exists
// It reports whether a user with the given ID exists. A missing row is not
// an error; only storage faults are.
func (s *PostgresUserStore) Exists(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		log.Error("failed to check user existence",
			slog.String("error", err.Error()),
			slog.String("user_id", id))
		return false, store.NewStoreError("user", "exists", "query failed", MapError(err))
	}

	log.Debug("checked user existence",
		slog.String("user_id", id),
		slog.Bool("exists", exists))
	return exists, nil
}

// normalizeAddressField converts a nullable address column to the wire
// representation: NULL becomes the empty string and surrounding whitespace
// is trimmed.
func normalizeAddressField(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return strings.TrimSpace(ns.String)
}
