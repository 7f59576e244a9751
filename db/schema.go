// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "fmt"

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The SQL sticks to the
// subset both SQLite and PostgreSQL accept; timestamps are written by the
// application rather than column defaults.
func CreateSchema(db *DB) error {
	_, err := db.DB.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Cue designs
CREATE TABLE IF NOT EXISTS cue_design (
    id TEXT PRIMARY KEY,
    cue_id TEXT NOT NULL UNIQUE,
    design_style TEXT NOT NULL,
    overall_length_in REAL NOT NULL CHECK (overall_length_in > 0 AND overall_length_in <= 40),
    notes TEXT,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cue_design_cue_id ON cue_design(cue_id);

-- Butt sections, ordered along the cue axis by start position
CREATE TABLE IF NOT EXISTS cue_section (
    id TEXT PRIMARY KEY,
    design_id TEXT NOT NULL REFERENCES cue_design(id) ON DELETE CASCADE,
    section_type TEXT NOT NULL CHECK (section_type IN ('joint', 'forearm', 'handle', 'sleeve', 'butt')),
    start_position_in REAL NOT NULL CHECK (start_position_in >= 0),
    end_position_in REAL NOT NULL,
    outer_diameter_start_mm REAL NOT NULL CHECK (outer_diameter_start_mm > 0),
    outer_diameter_end_mm REAL NOT NULL CHECK (outer_diameter_end_mm > 0),
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cue_section_design_id ON cue_section(design_id);
CREATE INDEX IF NOT EXISTS idx_cue_section_position ON cue_section(design_id, start_position_in);
`
