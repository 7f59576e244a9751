// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// DB wraps *sql.DB so the same query text runs on both supported drivers.
// Queries are written with postgres-style $N placeholders; for SQLite they
// are rebound to ? on the way through. Arguments must appear in ascending
// $1, $2, ... order with no repetition.
type DB struct {
	*sql.DB
	rebind bool
}

// Open connects using the configured database type ("sqlite" or "postgres").
func Open(databaseType, databaseURL string) (*DB, error) {
	var driverName string
	switch databaseType {
	case "sqlite":
		driverName = "sqlite"
	case "postgres":
		driverName = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}

	conn, err := sql.Open(driverName, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", databaseType, err)
	}

	return &DB{DB: conn, rebind: databaseType == "sqlite"}, nil
}

// Wrap adopts an existing connection, rebinding placeholders when sqlite is true.
func Wrap(conn *sql.DB, sqlite bool) *DB {
	return &DB{DB: conn, rebind: sqlite}
}

func (d *DB) Exec(query string, args ...any) (sql.Result, error) {
	return d.DB.Exec(d.Rebind(query), args...)
}

func (d *DB) Query(query string, args ...any) (*sql.Rows, error) {
	return d.DB.Query(d.Rebind(query), args...)
}

func (d *DB) QueryRow(query string, args ...any) *sql.Row {
	return d.DB.QueryRow(d.Rebind(query), args...)
}

// Rebind converts $N placeholders to ? for the SQLite driver.
func (d *DB) Rebind(query string) string {
	if !d.rebind {
		return query
	}

	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		if query[i] == '$' && i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
			b.WriteByte('?')
			for i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
				i++
			}
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
