// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/tjhirt/cue-designer/cliparse"
	"github.com/tjhirt/cue-designer/db"
	"github.com/tjhirt/cue-designer/handlers"
	"github.com/tjhirt/cue-designer/middleware"
)

func NewRouter(conn *db.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	designHandler := handlers.NewDesignHandler(conn, cfg)
	sectionHandler := handlers.NewSectionHandler(conn, cfg)
	geometryHandler := handlers.NewGeometryHandler(conn, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Design management
	mux.HandleFunc("POST /designs", middleware.WithLogging(designHandler.CreateDesign))
	mux.HandleFunc("GET /designs", middleware.WithLogging(designHandler.ListDesigns))
	mux.HandleFunc("GET /designs/{id}", middleware.WithLogging(designHandler.GetDesign))
	mux.HandleFunc("PUT /designs/{id}", middleware.WithLogging(designHandler.UpdateDesign))
	mux.HandleFunc("DELETE /designs/{id}", middleware.WithLogging(designHandler.DeleteDesign))

	// Section management
	mux.HandleFunc("POST /designs/{id}/sections", middleware.WithLogging(sectionHandler.AddSection))
	mux.HandleFunc("PUT /sections/{id}", middleware.WithLogging(sectionHandler.UpdateSection))
	mux.HandleFunc("DELETE /sections/{id}", middleware.WithLogging(sectionHandler.DeleteSection))

	// Derived geometry and rendering
	mux.HandleFunc("GET /designs/{id}/geometry", middleware.WithLogging(geometryHandler.GetGeometry))
	mux.HandleFunc("GET /designs/{id}/profile", middleware.WithLogging(geometryHandler.GetProfile))
	mux.HandleFunc("GET /designs/{id}/svg", middleware.WithLogging(geometryHandler.GetSVG))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("cue-designer API v1"))
	})

	return mux
}
