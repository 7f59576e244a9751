// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func TestRebind(t *testing.T) {
	sqliteDB := &DB{rebind: true}
	postgresDB := &DB{rebind: false}

	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "single placeholder",
			query:    "SELECT * FROM cue_design WHERE id = $1",
			expected: "SELECT * FROM cue_design WHERE id = ?",
		},
		{
			name:     "multiple placeholders",
			query:    "INSERT INTO cue_section (id, design_id) VALUES ($1, $2)",
			expected: "INSERT INTO cue_section (id, design_id) VALUES (?, ?)",
		},
		{
			name:     "double-digit placeholder",
			query:    "UPDATE t SET a = $1, b = $2, c = $3, d = $4, e = $5, f = $6, g = $7, h = $8, i = $9, j = $10",
			expected: "UPDATE t SET a = ?, b = ?, c = ?, d = ?, e = ?, f = ?, g = ?, h = ?, i = ?, j = ?",
		},
		{
			name:     "no placeholders",
			query:    "SELECT COUNT(*) FROM cue_design",
			expected: "SELECT COUNT(*) FROM cue_design",
		},
		{
			name:     "dollar without digit untouched",
			query:    "SELECT '$' || cue_id FROM cue_design WHERE id = $1",
			expected: "SELECT '$' || cue_id FROM cue_design WHERE id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sqliteDB.Rebind(tt.query); got != tt.expected {
				t.Errorf("sqlite rebind:\n got  %s\n want %s", got, tt.expected)
			}
			// Postgres passes queries through untouched
			if got := postgresDB.Rebind(tt.query); got != tt.query {
				t.Errorf("postgres rebind changed query:\n got  %s\n want %s", got, tt.query)
			}
		})
	}
}

func TestOpenRejectsUnknownType(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestCreateSchemaAndRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema-test.db")
	raw, err := sql.Open("sqlite", "file:"+path+"?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer raw.Close()

	conn := Wrap(raw, true)

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}
	// Idempotent
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}

	now := time.Now().UTC()
	_, err = conn.Exec(`
		INSERT INTO cue_design (id, cue_id, design_style, overall_length_in, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, "d1", "cue-001", "ornate", 29.0, "test", now, now)
	if err != nil {
		t.Fatalf("Insert through rebound placeholders failed: %v", err)
	}

	var cueID string
	var length float64
	err = conn.QueryRow("SELECT cue_id, overall_length_in FROM cue_design WHERE id = $1", "d1").
		Scan(&cueID, &length)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if cueID != "cue-001" || length != 29.0 {
		t.Errorf("Unexpected row: %s, %v", cueID, length)
	}

	// Length check constraint holds
	_, err = conn.Exec(`
		INSERT INTO cue_design (id, cue_id, design_style, overall_length_in, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, "d2", "cue-002", "ornate", 45.0, "too long", now, now)
	if err == nil {
		t.Error("Expected check constraint to reject 45 inch design")
	}
}
