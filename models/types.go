// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/tjhirt/cue-designer/geometry"
)

// Design style constants
const (
	StyleTraditionalClassic = "traditional_classic"
	StyleModernMinimal      = "modern_minimal"
	StyleOrnate             = "ornate"
	StyleArtDeco            = "art_deco"
	StyleContemporary       = "contemporary"
)

// Request types

type SectionInput struct {
	SectionType          string  `json:"section_type"`
	StartPositionIn      float64 `json:"start_position_in"`
	EndPositionIn        float64 `json:"end_position_in"`
	OuterDiameterStartMM float64 `json:"outer_diameter_start_mm"`
	OuterDiameterEndMM   float64 `json:"outer_diameter_end_mm"`
}

type CreateDesignRequest struct {
	CueID           string         `json:"cue_id"`
	DesignStyle     string         `json:"design_style"`
	OverallLengthIn float64        `json:"overall_length_in"`
	Notes           string         `json:"notes"`
	Sections        []SectionInput `json:"sections,omitempty"`
}

type UpdateDesignRequest struct {
	DesignStyle     string  `json:"design_style"`
	OverallLengthIn float64 `json:"overall_length_in"`
	Notes           string  `json:"notes"`
}

// Response types

type CreateDesignResponse struct {
	DesignID   string               `json:"design_id"`
	SectionIDs []string             `json:"section_ids,omitempty"`
	Violations []geometry.Violation `json:"violations"`
}

type AddSectionResponse struct {
	SectionID  string               `json:"section_id"`
	Violations []geometry.Violation `json:"violations"`
}

// GeometryReport is the validation report for one design. Valid means the
// rule set found nothing; Complete additionally requires at least one
// section, so an empty in-progress design is valid but not complete.
type GeometryReport struct {
	TotalLengthIn     float64              `json:"total_length_in"`
	SectionCount      int                  `json:"section_count"`
	SectionsByType    map[string]int       `json:"sections_by_type"`
	SurfaceAreaSqIn   float64              `json:"surface_area_sqin"`
	VolumeCuIn        float64              `json:"volume_cuin"`
	EstimatedWeightOz float64              `json:"estimated_weight_oz"`
	Valid             bool                 `json:"valid"`
	Complete          bool                 `json:"complete"`
	Violations        []geometry.Violation `json:"violations"`
}

type ProfilePoint struct {
	XIn        float64 `json:"x_in"`
	RadiusMM   float64 `json:"radius_mm"`
	DiameterMM float64 `json:"diameter_mm"`
}

type ProfileResponse struct {
	TotalLengthIn float64                           `json:"total_length_in"`
	Sections      []geometry.DerivedSectionGeometry `json:"sections"`
	ProfilePoints []ProfilePoint                    `json:"profile_points"`
}

// Domain types

type CueDesign struct {
	ID              string    `json:"id"`
	CueID           string    `json:"cue_id"`
	DesignStyle     string    `json:"design_style"`
	OverallLengthIn float64   `json:"overall_length_in"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CueSection struct {
	ID                   string    `json:"id"`
	DesignID             string    `json:"design_id"`
	SectionType          string    `json:"section_type"`
	StartPositionIn      float64   `json:"start_position_in"`
	EndPositionIn        float64   `json:"end_position_in"`
	OuterDiameterStartMM float64   `json:"outer_diameter_start_mm"`
	OuterDiameterEndMM   float64   `json:"outer_diameter_end_mm"`
	CreatedAt            time.Time `json:"created_at"`
}

type DesignWithSections struct {
	Design   CueDesign    `json:"design"`
	Sections []CueSection `json:"sections"`
}

// Geometry converts the persisted record into the geometry core's input.
func (s CueSection) Geometry() geometry.Section {
	return geometry.Section{
		ID:              s.ID,
		Type:            s.SectionType,
		StartPositionIn: s.StartPositionIn,
		EndPositionIn:   s.EndPositionIn,
		StartDiameterMM: s.OuterDiameterStartMM,
		EndDiameterMM:   s.OuterDiameterEndMM,
	}
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}
