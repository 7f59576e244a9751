// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/tjhirt/cue-designer/cliparse"
	"github.com/tjhirt/cue-designer/db"
	"github.com/tjhirt/cue-designer/geometry"
	"github.com/tjhirt/cue-designer/middleware"
	"github.com/tjhirt/cue-designer/models"
	"github.com/tjhirt/cue-designer/render"
)

// profileResolutionIn is the sampling step for profile points.
const profileResolutionIn = 0.1

type GeometryHandler struct {
	db  *db.DB
	cfg cliparse.Config
}

func NewGeometryHandler(conn *db.DB, cfg cliparse.Config) *GeometryHandler {
	return &GeometryHandler{db: conn, cfg: cfg}
}

// GetGeometry handles GET /designs/{id}/geometry
// Returns the validation report: derived totals plus every manufacturing
// violation. A design with no sections is valid but not complete.
func (h *GeometryHandler) GetGeometry(w http.ResponseWriter, r *http.Request) {
	sections, derived, ok := h.loadGeometry(w, r)
	if !ok {
		return
	}

	violations := geometry.Validate(sections, derived)
	if violations == nil {
		violations = []geometry.Violation{}
	}

	volume := geometry.DesignVolumeCuIn(derived)
	report := models.GeometryReport{
		TotalLengthIn:     geometry.TotalLengthIn(derived),
		SectionCount:      len(derived),
		SectionsByType:    geometry.SectionCountByType(derived),
		SurfaceAreaSqIn:   geometry.DesignSurfaceAreaSqIn(derived),
		VolumeCuIn:        volume,
		EstimatedWeightOz: geometry.EstimatedWeightOz(volume),
		Valid:             len(violations) == 0,
		Complete:          len(derived) > 0 && len(violations) == 0,
		Violations:        violations,
	}

	middleware.JSONResponse(w, http.StatusOK, report)
}

// GetProfile handles GET /designs/{id}/profile
// Returns per-section derived geometry in axial order plus profile points
// sampled at 0.1" resolution - exactly what the frontend renderer consumes.
func (h *GeometryHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	_, derived, ok := h.loadGeometry(w, r)
	if !ok {
		return
	}

	points := []models.ProfilePoint{}
	if len(derived) > 0 {
		start := derived[0].StartPositionIn
		end := derived[len(derived)-1].EndPositionIn
		steps := int((end - start) / profileResolutionIn)
		for i := 0; i <= steps; i++ {
			x := start + float64(i)*profileResolutionIn
			radius, err := geometry.DesignRadiusAt(derived, x)
			if err != nil {
				// Positions inside a gap have no radius; skip them.
				continue
			}
			points = append(points, models.ProfilePoint{
				XIn:        x,
				RadiusMM:   radius,
				DiameterMM: radius * 2,
			})
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProfileResponse{
		TotalLengthIn: geometry.TotalLengthIn(derived),
		Sections:      derived,
		ProfilePoints: points,
	})
}

// GetSVG handles GET /designs/{id}/svg
func (h *GeometryHandler) GetSVG(w http.ResponseWriter, r *http.Request) {
	_, derived, ok := h.loadGeometry(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	render.WriteProfileSVG(w, derived)
}

// loadGeometry fetches a design's sections and derives their geometry,
// writing the error response itself when something goes wrong.
func (h *GeometryHandler) loadGeometry(w http.ResponseWriter, r *http.Request) ([]geometry.Section, []geometry.DerivedSectionGeometry, bool) {
	designID := r.PathValue("id")

	if _, err := loadDesign(h.db, designID); err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Design not found")
		return nil, nil, false
	} else if err != nil {
		slog.Error("failed to query design", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return nil, nil, false
	}

	stored, err := loadSections(h.db, designID)
	if err != nil {
		slog.Error("failed to query sections", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return nil, nil, false
	}

	sections := make([]geometry.Section, len(stored))
	for i, s := range stored {
		sections[i] = s.Geometry()
	}

	derived, err := geometry.ComputeDesign(sections)
	if err != nil {
		// Stored rows pass structural checks at ingestion, so this means
		// the database was modified out of band.
		slog.Error("stored sections failed geometry derivation", "error", err, "design_id", designID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Stored geometry is invalid")
		return nil, nil, false
	}

	return sections, derived, true
}
