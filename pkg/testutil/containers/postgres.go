//go:build integration

// Package containers starts throwaway infrastructure for integration tests.
// Each helper boots a real container, wires a ready client, and registers
// cleanup with the test.
package containers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// schema mirrors the portal's production tables used by the screening engine
// and watchlist stores.
const schema = `
CREATE TABLE IF NOT EXISTS watchlist_entries (
	id          UUID PRIMARY KEY,
	national_id TEXT NOT NULL,
	full_name   TEXT NOT NULL,
	reason      TEXT NOT NULL,
	flag_type   TEXT NOT NULL,
	severity    TEXT NOT NULL,
	is_active   BOOLEAN NOT NULL DEFAULT TRUE,
	expires_at  TIMESTAMPTZ,
	created_by  TEXT,
	created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_watchlist_entries_national_id
	ON watchlist_entries (national_id) WHERE is_active;

CREATE TABLE IF NOT EXISTS applications (
	id               UUID PRIMARY KEY,
	national_id      TEXT NOT NULL,
	phone_number     TEXT NOT NULL DEFAULT '',
	reference_number TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL,
	rejection_date   TIMESTAMPTZ,
	overstay_days    INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_applications_national_id ON applications (national_id);
CREATE INDEX IF NOT EXISTS idx_applications_phone_number ON applications (phone_number);
`

// PostgresContainer wraps a testcontainers PostgreSQL instance with the
// schema already applied.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *sql.DB
}

// NewPostgresContainer starts a PostgreSQL container and applies the schema.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("permitgate_test"),
		tcpostgres.WithUsername("permitgate"),
		tcpostgres.WithPassword("permitgate"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("failed to open postgres connection: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("failed to ping postgres: %v", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	return &PostgresContainer{Container: container, DSN: dsn, DB: db}
}

// TruncateTables empties the given tables between tests.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	_, err := p.DB.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s", strings.Join(tables, ", ")))
	return err
}
