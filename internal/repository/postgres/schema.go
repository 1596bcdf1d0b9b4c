package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema holds the idempotent DDL for the four tables. The persistence
// layer owns schema creation; EnsureSchema runs at startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		phone         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		is_driver     BOOLEAN NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id               TEXT PRIMARY KEY,
		owner_id         TEXT NOT NULL REFERENCES users(id),
		make             TEXT NOT NULL,
		model            TEXT NOT NULL,
		year             INTEGER NOT NULL,
		battery_capacity DOUBLE PRECISION NOT NULL,
		current_battery  DOUBLE PRECISION NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS trips (
		id              TEXT PRIMARY KEY,
		driver_id       TEXT NOT NULL REFERENCES users(id),
		start_address   TEXT NOT NULL,
		start_lat       DOUBLE PRECISION,
		start_lng       DOUBLE PRECISION,
		end_address     TEXT NOT NULL,
		end_lat         DOUBLE PRECISION,
		end_lng         DOUBLE PRECISION,
		departure_time  TIMESTAMPTZ NOT NULL,
		arrival_time    TIMESTAMPTZ NOT NULL,
		available_seats INTEGER NOT NULL CHECK (available_seats >= 0),
		status          TEXT NOT NULL DEFAULT 'scheduled',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS trip_passengers (
		id              TEXT PRIMARY KEY,
		trip_id         TEXT NOT NULL REFERENCES trips(id),
		passenger_id    TEXT NOT NULL REFERENCES users(id),
		pickup_address  TEXT NOT NULL DEFAULT '',
		pickup_lat      DOUBLE PRECISION,
		pickup_lng      DOUBLE PRECISION,
		dropoff_address TEXT NOT NULL DEFAULT '',
		dropoff_lat     DOUBLE PRECISION,
		dropoff_lng     DOUBLE PRECISION,
		seats_requested INTEGER NOT NULL DEFAULT 1,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
