// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the cue designer API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(conn, cfg)

# Endpoints

Health:

	GET /health

Design management:

	POST   /designs      - Create design (sections optional inline)
	GET    /designs      - List designs
	GET    /designs/{id} - Get design with sections
	PUT    /designs/{id} - Update design metadata
	DELETE /designs/{id} - Delete design and its sections

Section management:

	POST   /designs/{id}/sections - Add section to design
	PUT    /sections/{id}         - Update section
	DELETE /sections/{id}         - Delete section

Derived geometry:

	GET /designs/{id}/geometry - Validation report with derived totals
	GET /designs/{id}/profile  - Per-section geometry and profile points
	GET /designs/{id}/svg      - Rendered 2D side view

# Handler Initialization

The router creates handler instances with dependency injection:

	designHandler := handlers.NewDesignHandler(conn, cfg)
	sectionHandler := handlers.NewSectionHandler(conn, cfg)
	geometryHandler := handlers.NewGeometryHandler(conn, cfg)

All handlers receive the database connection and configuration.
*/
package router
