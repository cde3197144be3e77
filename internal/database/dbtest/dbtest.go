//go:build integration

// Package dbtest connects integration tests to a real Postgres with the schema applied.
// Fixtures use fresh ids so packages can share the database while running in parallel.
package dbtest

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/walkies/internal/database"
)

func Open(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5432"),
		getEnv("TEST_DB_NAME", "walkies_test"),
	)

	db, err := database.New(dsn)
	require.NoError(t, err, "integration tests need a reachable Postgres (TEST_DB_* env)")
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(context.Background(), db))

	return db
}

func Client(t *testing.T, db *sql.DB, firstName, lastName string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(
		`INSERT INTO clients (first_name, last_name, email) VALUES ($1, $2, $3) RETURNING id`,
		firstName, lastName, uuid.NewString()+"@walkies.test",
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func Walker(t *testing.T, db *sql.DB) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(
		`INSERT INTO walkers (name, email) VALUES ('Test Walker', $1) RETURNING id`,
		uuid.NewString()+"@walkies.test",
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func Pet(t *testing.T, db *sql.DB, clientID uuid.UUID) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(`INSERT INTO pets (client_id, name) VALUES ($1, 'Rex') RETURNING id`, clientID).Scan(&id)
	require.NoError(t, err)

	return id
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
