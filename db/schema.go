// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// DriverName maps a configured database type to its database/sql driver.
func DriverName(dbType string) (string, error) {
	switch dbType {
	case TypeSQLite:
		return "sqlite", nil
	case TypePostgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported database type %q", dbType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are stored as fixed-width UTC text so they sort lexically and
// scan the same way on every driver.
const schema = `
-- Votes: one row per normalized voter name
CREATE TABLE IF NOT EXISTS votes (
    name_key TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    day TEXT NOT NULL CHECK (day IN ('Saturday', 'Sunday')),
    choice TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

-- Availability: open slots per day and court
CREATE TABLE IF NOT EXISTS availability (
    id TEXT PRIMARY KEY,
    day TEXT NOT NULL CHECK (day IN ('Saturday', 'Sunday')),
    court TEXT NOT NULL,
    slot TEXT NOT NULL,
    created_at TEXT NOT NULL,
    UNIQUE (day, court, slot)
);

CREATE INDEX IF NOT EXISTS idx_availability_day ON availability(day);
`
