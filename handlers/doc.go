// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the cue designer API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - DesignHandler: Design lifecycle (create, list, get, update, delete)
  - SectionHandler: Section CRUD within a design
  - GeometryHandler: Derived geometry, validation reports, SVG rendering

Handlers are created via constructor functions that accept *db.DB and Config:

	designHandler := handlers.NewDesignHandler(conn, cfg)

# Design Flow

A design holds metadata plus an ordered set of butt sections:

	POST /designs                → CreateDesign (sections optional inline)
	POST /designs/{id}/sections  → AddSection
	PUT  /sections/{id}          → UpdateSection
	GET  /designs/{id}/geometry  → GetGeometry (validation report)

# Error Tiers

Structural errors (negative positions, zero-length sections, impossible
diameters) are rejected at the door with a 400 and a machine-readable
code. Manufacturing constraint breaches are not errors: they are stored
and returned as violation data so a client can show an in-progress
design with its remaining problems.

Every mutation that touches sections re-validates the whole design and
returns the current violation list in the response.

# Geometry Derivation

Derivation and validation live in the geometry package:

	derived, err := geometry.ComputeDesign(sections)
	violations := geometry.Validate(sections, derived)
*/
package handlers
