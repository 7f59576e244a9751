// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tjhirt/cue-designer/cliparse"
	"github.com/tjhirt/cue-designer/db"
	"github.com/tjhirt/cue-designer/geometry"
	"github.com/tjhirt/cue-designer/middleware"
	"github.com/tjhirt/cue-designer/models"
)

type SectionHandler struct {
	db  *db.DB
	cfg cliparse.Config
}

func NewSectionHandler(conn *db.DB, cfg cliparse.Config) *SectionHandler {
	return &SectionHandler{db: conn, cfg: cfg}
}

// AddSection handles POST /designs/{id}/sections
func (h *SectionHandler) AddSection(w http.ResponseWriter, r *http.Request) {
	designID := r.PathValue("id")

	design, err := loadDesign(h.db, designID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Design not found")
		return
	}
	if err != nil {
		slog.Error("failed to query design", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var req models.SectionInput
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := checkSectionInput(req, design.OverallLengthIn); err != nil {
		de := geometry.AsDomainError(err)
		middleware.DomainErrorResponse(w, http.StatusBadRequest, de.Code, de.Message)
		return
	}

	sectionID := uuid.NewString()
	_, err = h.db.Exec(`
		INSERT INTO cue_section (id, design_id, section_type, start_position_in, end_position_in,
			outer_diameter_start_mm, outer_diameter_end_mm, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, sectionID, designID, req.SectionType, req.StartPositionIn, req.EndPositionIn,
		req.OuterDiameterStartMM, req.OuterDiameterEndMM, time.Now().UTC())

	if err != nil {
		slog.Error("failed to insert section", "error", err, "design_id", designID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create section")
		return
	}

	violations, err := h.designViolations(designID)
	if err != nil {
		slog.Error("failed to validate design", "error", err, "design_id", designID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to validate design")
		return
	}

	slog.Info("section added", "design_id", designID, "section_id", sectionID,
		"type", req.SectionType, "violations", len(violations))

	middleware.JSONResponse(w, http.StatusCreated, models.AddSectionResponse{
		SectionID:  sectionID,
		Violations: violations,
	})
}

// UpdateSection handles PUT /sections/{id}
func (h *SectionHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("id")

	var designID string
	err := h.db.QueryRow("SELECT design_id FROM cue_section WHERE id = $1", sectionID).Scan(&designID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Section not found")
		return
	}
	if err != nil {
		slog.Error("failed to query section", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	design, err := loadDesign(h.db, designID)
	if err != nil {
		slog.Error("failed to query design", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var req models.SectionInput
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := checkSectionInput(req, design.OverallLengthIn); err != nil {
		de := geometry.AsDomainError(err)
		middleware.DomainErrorResponse(w, http.StatusBadRequest, de.Code, de.Message)
		return
	}

	_, err = h.db.Exec(`
		UPDATE cue_section
		SET section_type = $1, start_position_in = $2, end_position_in = $3,
		    outer_diameter_start_mm = $4, outer_diameter_end_mm = $5
		WHERE id = $6
	`, req.SectionType, req.StartPositionIn, req.EndPositionIn,
		req.OuterDiameterStartMM, req.OuterDiameterEndMM, sectionID)

	if err != nil {
		slog.Error("failed to update section", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update section")
		return
	}

	violations, err := h.designViolations(designID)
	if err != nil {
		slog.Error("failed to validate design", "error", err, "design_id", designID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to validate design")
		return
	}

	slog.Info("section updated", "design_id", designID, "section_id", sectionID,
		"violations", len(violations))

	middleware.JSONResponse(w, http.StatusOK, models.AddSectionResponse{
		SectionID:  sectionID,
		Violations: violations,
	})
}

// DeleteSection handles DELETE /sections/{id}
func (h *SectionHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("id")

	res, err := h.db.Exec("DELETE FROM cue_section WHERE id = $1", sectionID)
	if err != nil {
		slog.Error("failed to delete section", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete section")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Section not found")
		return
	}

	slog.Info("section deleted", "section_id", sectionID)
	w.WriteHeader(http.StatusNoContent)
}

// designViolations reloads a design's sections and runs both geometry stages.
func (h *SectionHandler) designViolations(designID string) ([]geometry.Violation, error) {
	stored, err := loadSections(h.db, designID)
	if err != nil {
		return nil, err
	}

	sections := make([]geometry.Section, len(stored))
	for i, s := range stored {
		sections[i] = s.Geometry()
	}
	return validateSections(sections)
}
