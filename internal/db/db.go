package db

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// Open connects to Postgres with the service's pool limits and verifies
// the connection.
func Open(dsn string) (*sql.DB, error) {
	pool, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	pool.SetMaxOpenConns(20)
	pool.SetMaxIdleConns(10)
	pool.SetConnMaxLifetime(30 * time.Minute)

	if err := pool.Ping(); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS events (
    id           BIGSERIAL PRIMARY KEY,
    event_type   TEXT NOT NULL,
    occurred_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    payload      JSONB,
    amount_cents BIGINT NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_events_occurred_at ON events (occurred_at);

CREATE TABLE IF NOT EXISTS scan_snapshots (
    id           BIGSERIAL PRIMARY KEY,
    captured_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    total_count  BIGINT NOT NULL,
    unique_count BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scan_snapshots_captured_at ON scan_snapshots (captured_at);

CREATE TABLE IF NOT EXISTS signups (
    email       TEXT PRIMARY KEY,
    source      TEXT,
    captured_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema creates the tables on first boot. Everything is
// append-only, so there is nothing to migrate beyond creation.
func EnsureSchema(ctx context.Context, pool *sql.DB) error {
	_, err := pool.ExecContext(ctx, schemaSQL)
	return err
}
