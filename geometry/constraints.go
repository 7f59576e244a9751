// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geometry

// Section type constants, in canonical axial order from the joint end.
const (
	TypeJoint   = "joint"
	TypeForearm = "forearm"
	TypeHandle  = "handle"
	TypeSleeve  = "sleeve"
	TypeButt    = "butt"
)

// typeRank maps section types to their canonical position along the cue.
// Present types must appear in non-decreasing rank order; not every type
// is required.
var typeRank = map[string]int{
	TypeJoint:   0,
	TypeForearm: 1,
	TypeHandle:  2,
	TypeSleeve:  3,
	TypeButt:    4,
}

// SectionTypes lists the valid types in canonical order.
var SectionTypes = []string{TypeJoint, TypeForearm, TypeHandle, TypeSleeve, TypeButt}

// TypeBounds is one row of the per-type manufacturing bound table.
type TypeBounds struct {
	MinLengthIn   float64
	MaxLengthIn   float64
	MinDiameterMM float64
	MaxDiameterMM float64
}

// SectionBounds is the per-type bound table. Kept data-driven so new
// section types or tightened tolerances only touch this map.
var SectionBounds = map[string]TypeBounds{
	TypeJoint:   {MinLengthIn: 0.5, MaxLengthIn: 2.0, MinDiameterMM: 18, MaxDiameterMM: 25},
	TypeForearm: {MinLengthIn: 8.0, MaxLengthIn: 14.0, MinDiameterMM: 19, MaxDiameterMM: 24},
	TypeHandle:  {MinLengthIn: 8.0, MaxLengthIn: 12.0, MinDiameterMM: 20, MaxDiameterMM: 26},
	TypeSleeve:  {MinLengthIn: 4.0, MaxLengthIn: 8.0, MinDiameterMM: 24, MaxDiameterMM: 32},
	TypeButt:    {MinLengthIn: 2.0, MaxLengthIn: 6.0, MinDiameterMM: 26, MaxDiameterMM: 32},
}

// Global manufacturing constants.
const (
	// MaxTaperAngleDeg is the steepest half-angle the lathe tooling handles.
	MaxTaperAngleDeg = 5.0

	// MinRadiusMM and MaxRadiusMM bound every section end regardless of type.
	MinRadiusMM = 5.0
	MaxRadiusMM = 25.0

	// MaxSectionLengthIn caps any single section.
	MaxSectionLengthIn = 20.0

	// MaxTotalLengthIn caps the summed length of all sections.
	MaxTotalLengthIn = 40.0

	// MaxDiameterJumpMM is the largest permitted diameter discontinuity
	// between adjacent sections.
	MaxDiameterJumpMM = 1.0

	// MaxStructuralDiameterMM is the hard ingestion cap; anything larger is
	// rejected as unusable input rather than reported as a violation.
	MaxStructuralDiameterMM = 50.0

	// PositionToleranceIn absorbs floating-point jitter when classifying
	// section boundaries as touching, gapped, or overlapping. Exact
	// equality is fragile across representations.
	PositionToleranceIn = 1e-6
)
