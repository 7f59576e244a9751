// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tjhirt/cue-designer/cliparse"
	"github.com/tjhirt/cue-designer/db"
	"github.com/tjhirt/cue-designer/geometry"
	"github.com/tjhirt/cue-designer/middleware"
	"github.com/tjhirt/cue-designer/models"
)

type DesignHandler struct {
	db  *db.DB
	cfg cliparse.Config
}

func NewDesignHandler(conn *db.DB, cfg cliparse.Config) *DesignHandler {
	return &DesignHandler{db: conn, cfg: cfg}
}

// CreateDesign handles POST /designs
// Structural problems reject the request; manufacturing-rule violations are
// returned alongside the stored design so in-progress work is never blocked.
func (h *DesignHandler) CreateDesign(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDesignRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.CueID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "cue_id is required")
		return
	}
	if req.DesignStyle == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "design_style is required")
		return
	}
	if req.OverallLengthIn <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "overall_length_in must be positive")
		return
	}
	if req.OverallLengthIn > geometry.MaxTotalLengthIn {
		middleware.ErrorResponse(w, http.StatusBadRequest, "overall_length_in cannot exceed 40 inches")
		return
	}

	// Structural checks on inline sections before anything is written
	for _, in := range req.Sections {
		if err := checkSectionInput(in, req.OverallLengthIn); err != nil {
			de := geometry.AsDomainError(err)
			middleware.DomainErrorResponse(w, http.StatusBadRequest, de.Code, de.Message)
			return
		}
	}

	// cue_id is the builder-facing key and must be unique
	var exists int
	err := h.db.QueryRow("SELECT COUNT(*) FROM cue_design WHERE cue_id = $1", req.CueID).Scan(&exists)
	if err != nil {
		slog.Error("failed to check cue_id", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if exists > 0 {
		middleware.ErrorResponse(w, http.StatusConflict, "cue_id already exists")
		return
	}

	designID := uuid.NewString()
	now := time.Now().UTC()

	_, err = h.db.Exec(`
		INSERT INTO cue_design (id, cue_id, design_style, overall_length_in, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, designID, req.CueID, req.DesignStyle, req.OverallLengthIn, req.Notes, now, now)

	if err != nil {
		slog.Error("failed to insert design", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create design")
		return
	}

	sectionIDs := make([]string, 0, len(req.Sections))
	geoSections := make([]geometry.Section, 0, len(req.Sections))
	for _, in := range req.Sections {
		sectionID := uuid.NewString()
		_, err = h.db.Exec(`
			INSERT INTO cue_section (id, design_id, section_type, start_position_in, end_position_in,
				outer_diameter_start_mm, outer_diameter_end_mm, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, sectionID, designID, in.SectionType, in.StartPositionIn, in.EndPositionIn,
			in.OuterDiameterStartMM, in.OuterDiameterEndMM, now)

		if err != nil {
			slog.Error("failed to insert section", "error", err, "design_id", designID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create design")
			return
		}

		sectionIDs = append(sectionIDs, sectionID)
		geoSections = append(geoSections, geometry.Section{
			ID:              sectionID,
			Type:            in.SectionType,
			StartPositionIn: in.StartPositionIn,
			EndPositionIn:   in.EndPositionIn,
			StartDiameterMM: in.OuterDiameterStartMM,
			EndDiameterMM:   in.OuterDiameterEndMM,
		})
	}

	violations, err := validateSections(geoSections)
	if err != nil {
		slog.Error("failed to validate design", "error", err, "design_id", designID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to validate design")
		return
	}

	slog.Info("design created", "design_id", designID, "cue_id", req.CueID,
		"sections", len(sectionIDs), "violations", len(violations))

	middleware.JSONResponse(w, http.StatusCreated, models.CreateDesignResponse{
		DesignID:   designID,
		SectionIDs: sectionIDs,
		Violations: violations,
	})
}

// ListDesigns handles GET /designs
func (h *DesignHandler) ListDesigns(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, cue_id, design_style, overall_length_in, notes, created_at, updated_at
		FROM cue_design
		ORDER BY cue_id
	`)
	if err != nil {
		slog.Error("failed to query designs", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	designs := []models.CueDesign{}
	for rows.Next() {
		var d models.CueDesign
		var notes sql.NullString
		if err := rows.Scan(&d.ID, &d.CueID, &d.DesignStyle, &d.OverallLengthIn,
			&notes, &d.CreatedAt, &d.UpdatedAt); err != nil {
			slog.Error("failed to scan design", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		d.Notes = notes.String
		designs = append(designs, d)
	}

	middleware.JSONResponse(w, http.StatusOK, designs)
}

// GetDesign handles GET /designs/{id}
func (h *DesignHandler) GetDesign(w http.ResponseWriter, r *http.Request) {
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

	sections, err := loadSections(h.db, designID)
	if err != nil {
		slog.Error("failed to query sections", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DesignWithSections{
		Design:   design,
		Sections: sections,
	})
}

// UpdateDesign handles PUT /designs/{id}
func (h *DesignHandler) UpdateDesign(w http.ResponseWriter, r *http.Request) {
	designID := r.PathValue("id")

	var req models.UpdateDesignRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.DesignStyle == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "design_style is required")
		return
	}
	if req.OverallLengthIn <= 0 || req.OverallLengthIn > geometry.MaxTotalLengthIn {
		middleware.ErrorResponse(w, http.StatusBadRequest, "overall_length_in must be in (0, 40]")
		return
	}

	if _, err := loadDesign(h.db, designID); err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Design not found")
		return
	} else if err != nil {
		slog.Error("failed to query design", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Shrinking the design under its sections would strand stored rows
	var maxEnd sql.NullFloat64
	err := h.db.QueryRow("SELECT MAX(end_position_in) FROM cue_section WHERE design_id = $1", designID).Scan(&maxEnd)
	if err != nil {
		slog.Error("failed to query section span", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if maxEnd.Valid && maxEnd.Float64 > req.OverallLengthIn {
		middleware.DomainErrorResponse(w, http.StatusBadRequest, geometry.CodePastDesignEnd,
			"existing sections extend past the requested overall length")
		return
	}

	now := time.Now().UTC()
	_, err = h.db.Exec(`
		UPDATE cue_design
		SET design_style = $1, overall_length_in = $2, notes = $3, updated_at = $4
		WHERE id = $5
	`, req.DesignStyle, req.OverallLengthIn, req.Notes, now, designID)

	if err != nil {
		slog.Error("failed to update design", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update design")
		return
	}

	design, err := loadDesign(h.db, designID)
	if err != nil {
		slog.Error("failed to reload design", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("design updated", "design_id", designID)
	middleware.JSONResponse(w, http.StatusOK, design)
}

// DeleteDesign handles DELETE /designs/{id}
func (h *DesignHandler) DeleteDesign(w http.ResponseWriter, r *http.Request) {
	designID := r.PathValue("id")

	if _, err := loadDesign(h.db, designID); err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Design not found")
		return
	} else if err != nil {
		slog.Error("failed to query design", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Explicit child delete keeps behavior identical whether or not the
	// SQLite connection has foreign keys enabled.
	if _, err := h.db.Exec("DELETE FROM cue_section WHERE design_id = $1", designID); err != nil {
		slog.Error("failed to delete sections", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete design")
		return
	}
	if _, err := h.db.Exec("DELETE FROM cue_design WHERE id = $1", designID); err != nil {
		slog.Error("failed to delete design", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete design")
		return
	}

	slog.Info("design deleted", "design_id", designID)
	w.WriteHeader(http.StatusNoContent)
}

// loadDesign fetches one design row. Returns sql.ErrNoRows when absent.
func loadDesign(conn *db.DB, designID string) (models.CueDesign, error) {
	var d models.CueDesign
	var notes sql.NullString
	err := conn.QueryRow(`
		SELECT id, cue_id, design_style, overall_length_in, notes, created_at, updated_at
		FROM cue_design
		WHERE id = $1
	`, designID).Scan(&d.ID, &d.CueID, &d.DesignStyle, &d.OverallLengthIn,
		&notes, &d.CreatedAt, &d.UpdatedAt)
	d.Notes = notes.String
	return d, err
}

// loadSections fetches a design's sections in axial order.
func loadSections(conn *db.DB, designID string) ([]models.CueSection, error) {
	rows, err := conn.Query(`
		SELECT id, design_id, section_type, start_position_in, end_position_in,
		       outer_diameter_start_mm, outer_diameter_end_mm, created_at
		FROM cue_section
		WHERE design_id = $1
		ORDER BY start_position_in
	`, designID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sections := []models.CueSection{}
	for rows.Next() {
		var s models.CueSection
		if err := rows.Scan(&s.ID, &s.DesignID, &s.SectionType, &s.StartPositionIn,
			&s.EndPositionIn, &s.OuterDiameterStartMM, &s.OuterDiameterEndMM, &s.CreatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}

	return sections, rows.Err()
}

// checkSectionInput applies the structural (tier 1) checks to a section
// payload before it is persisted.
func checkSectionInput(in models.SectionInput, overallLengthIn float64) error {
	s := geometry.Section{
		Type:            in.SectionType,
		StartPositionIn: in.StartPositionIn,
		EndPositionIn:   in.EndPositionIn,
		StartDiameterMM: in.OuterDiameterStartMM,
		EndDiameterMM:   in.OuterDiameterEndMM,
	}
	if err := geometry.CheckSection(s); err != nil {
		return err
	}
	if in.EndPositionIn > overallLengthIn {
		return &geometry.DomainError{
			Code:    geometry.CodePastDesignEnd,
			Message: "section end position cannot exceed overall cue length",
		}
	}
	return nil
}

// validateSections runs the two geometry stages over raw section inputs.
func validateSections(sections []geometry.Section) ([]geometry.Violation, error) {
	ordered := make([]geometry.Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartPositionIn < ordered[j].StartPositionIn
	})

	derived, err := geometry.ComputeDesign(ordered)
	if err != nil {
		return nil, err
	}
	violations := geometry.Validate(ordered, derived)
	if violations == nil {
		violations = []geometry.Violation{}
	}
	return violations, nil
}
