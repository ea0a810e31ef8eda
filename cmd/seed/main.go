// Package main implements the user seeding tool. Users are reference data
// with no write endpoints on the API, so rows are loaded out-of-band by
// this binary from a JSON file.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/phrazzld/directory-api/internal/config"
	"github.com/phrazzld/directory-api/internal/domain"
	"github.com/phrazzld/directory-api/internal/platform/logger"
	"github.com/phrazzld/directory-api/internal/platform/postgres"
)

func main() {
	file := flag.String("file", "cmd/seed/testdata/users.json", "path to the JSON file of users to seed")
	flag.Parse()

	if err := run(*file); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

func run(file string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	seedLogger, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	users, err := readUsers(file)
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			seedLogger.Error("Failed to close database connection", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := postgres.Migrate(ctx, db, seedLogger); err != nil {
		return err
	}

	inserted, err := seedUsers(ctx, db, users, seedLogger)
	if err != nil {
		return err
	}

	seedLogger.Info("Seeding completed",
		slog.Int("total", len(users)),
		slog.Int("inserted", inserted),
		slog.Int("skipped", len(users)-inserted))
	return nil
}

// readUsers parses the seed file into domain users.
func readUsers(file string) ([]domain.User, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", file, err)
	}

	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", file, err)
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("seed file %s contains no users", file)
	}

	return users, nil
}

// seedUsers inserts the given users, skipping IDs that already exist so the
// tool can be re-run safely. Returns the number of newly inserted rows.
func seedUsers(ctx context.Context, db *sql.DB, users []domain.User, log *slog.Logger) (int, error) {
	query := `
		INSERT INTO users (id, name, username, email, phone, street, city, state, zipcode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`

	inserted := 0
	for _, user := range users {
		if user.ID == "" {
			return inserted, fmt.Errorf("seed user without an ID: %+v", user)
		}

		result, err := db.ExecContext(ctx, query,
			user.ID,
			user.Name,
			user.Username,
			user.Email,
			user.Phone,
			user.Street,
			user.City,
			user.State,
			user.Zipcode,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert user %s: %w", user.ID, err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("failed to get rows affected for user %s: %w", user.ID, err)
		}

		if rows > 0 {
			inserted++
			log.Debug("user seeded", slog.String("user_id", user.ID))
		} else {
			log.Debug("user already present, skipped", slog.String("user_id", user.ID))
		}
	}

	return inserted, nil
}
