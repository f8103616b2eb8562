package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/shelf-api/internal/platform/postgres"
	"github.com/phrazzld/shelf-api/internal/redact"
	"github.com/stretchr/testify/require"
)

// URLEnvVar names the environment variable holding the test database URL.
const URLEnvVar = "SHELF_TEST_DATABASE_URL"

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 30 * time.Second

// GetTestDatabaseURL returns the database URL for tests, or "" if unset.
func GetTestDatabaseURL() string {
	return os.Getenv(URLEnvVar)
}

// Open connects to the test database and applies all migrations.
// The test is skipped when no database is configured. The connection is
// closed when the test finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skipf("%s not set", URLEnvVar)
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("database connection failed (%s): %s", redact.String(dbURL), redact.Error(err))
	}

	require.NoError(t, postgres.Migrate(ctx, db, postgres.MigrateUp, nil), "failed to run migrations")
	return db
}

// WithTx runs fn inside a transaction that is always rolled back,
// so tests can write freely without affecting each other.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// Truncate empties the given tables and resets their identity sequences.
// Use it instead of WithTx when a test needs statements to fail mid-way,
// since a failed statement aborts the surrounding transaction.
func Truncate(t *testing.T, db *sql.DB, tables ...string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	for _, table := range tables {
		_, err := db.ExecContext(ctx, "TRUNCATE "+pgx.Identifier{table}.Sanitize()+" RESTART IDENTITY")
		require.NoError(t, err, "failed to truncate %s", table)
	}
}
