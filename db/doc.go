// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and driver selection.

# Drivers

Two database types are supported:

	sqlite   → modernc.org/sqlite (default, file path in DATABASE_URL)
	postgres → github.com/lib/pq (connection string in DATABASE_URL)

DriverName maps the configured type to the registered driver name:

	driver, err := db.DriverName(cfg.DatabaseType)
	conn, err := sql.Open(driver, cfg.DatabaseURL)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same SQL runs on both drivers.

# Tables

  - votes: name_key (lower-cased, trimmed name) → name, day, choice, timestamps
  - availability: (day, court, slot) triples, unique per triple

# Indexes

  - availability.day
*/
package db
