// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Drivers

Two drivers are supported: modernc.org/sqlite (the default, pure Go, no
CGO) and github.com/lib/pq for PostgreSQL. Open picks the driver from the
configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

# Placeholder Rebinding

Queries throughout the codebase are written with postgres-style $N
placeholders. The DB wrapper rebinds them to ? for SQLite, so the same
query text runs on both drivers:

	conn.QueryRow("SELECT id FROM cue_design WHERE cue_id = $1", cueID)

Arguments must appear in ascending $1, $2, ... order with no repetition.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The SQL sticks to the subset both drivers accept; timestamps
are written by the application rather than column defaults.

# Tables

The schema includes:

  - cue_design: Design metadata (style, overall length, notes)
  - cue_section: Axial sections per design with positions and diameters

cue_section cascades on design deletion.
*/
package db
