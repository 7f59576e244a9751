// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateDesignRequest: cue_id, design_style, overall_length_in, notes, optional sections
  - UpdateDesignRequest: design_style, overall_length_in, notes
  - SectionInput: section_type, positions (inches), diameters (mm)

# Response Types

Types for JSON responses:

  - CreateDesignResponse: design_id, section_ids, violations
  - AddSectionResponse: section_id, violations
  - GeometryReport: derived totals, weight estimate, validity flags, violations
  - ProfileResponse: derived sections plus sampled profile points
  - ErrorResponse: error, message, code

# Domain Types

Internal data structures:

  - CueDesign: design metadata
  - CueSection: one axial section with positions and diameters
  - DesignWithSections: design plus ordered sections

CueSection.Geometry converts a persisted row into the geometry core's
input type.

# Constants

Design styles:

	StyleTraditionalClassic = "traditional_classic"
	StyleModernMinimal      = "modern_minimal"
	StyleOrnate             = "ornate"
	StyleArtDeco            = "art_deco"
	StyleContemporary       = "contemporary"
*/
package models
