// Package testutil provides database helpers for the SunnyTrips integration
// tests. Every helper that needs Postgres reads TEST_DATABASE_URL and skips
// the calling test when it is unset, so `go test ./...` stays green on a
// machine without a database.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/pkordes/sunnytrips/migrations"
)

// DSNEnv names the environment variable holding the test database URL.
const DSNEnv = "TEST_DATABASE_URL"

// NewPool returns a pgx pool on the test database, closed at test end.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// BeginTx opens a transaction on the test database and rolls it back when
// the test finishes. Repositories built on it leave no rows behind, and
// nested Begin calls on it become savepoints.
func BeginTx(t *testing.T) pgx.Tx {
	t.Helper()

	tx, err := NewPool(t).Begin(context.Background())
	if err != nil {
		t.Fatalf("testutil.BeginTx: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

// NewSQLDB returns a database/sql handle on the test database for goose,
// closed at test end.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := openSQLDB(requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// MigrateOrExit brings the database at DSNEnv up to the latest schema.
// It is meant for TestMain, which has no *testing.T: it reports whether a
// database is configured and exits the process if migrating fails.
func MigrateOrExit() bool {
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		return false
	}
	db, err := openSQLDB(dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "testutil.MigrateOrExit: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if _, err := migrations.Up(context.Background(), db); err != nil {
		fmt.Fprintf(os.Stderr, "testutil.MigrateOrExit: %v\n", err)
		os.Exit(1)
	}
	return true
}

func openSQLDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skip(DSNEnv + " not set; skipping integration test")
	}
	return dsn
}
