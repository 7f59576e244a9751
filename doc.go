// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the cue designer API server.

Cue Designer is a backend for designing pool-cue butt sections: the
tapered segments (joint, forearm, handle, sleeve, butt) that make up the
lower half of a two-piece cue. It derives each section's geometry,
validates the assembled design against manufacturing constraints, and
renders a 2D profile view.

# Starting the Server

The server runs on SQLite by default with no configuration:

	go run main.go

Or against PostgreSQL:

	go run main.go -t postgres -d "postgres://..."

# Configuration

Optional settings (flags or environment variables):

  - PORT (-p): Server port (default: 3418)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - DATABASE_URL (-d): Connection string (required for postgres)

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - geometry: Derivation, structural checks, constraint validation
  - handlers: HTTP request handlers (designs, sections, geometry)
  - render: SVG profile rendering
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Connections, placeholder rebinding, schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
