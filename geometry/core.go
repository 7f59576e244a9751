// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geometry

import (
	"math"
	"sort"
)

// mmPerInch converts millimeter radii to inches for angle and area math.
const mmPerInch = 25.4

// defaultDensityGPerCm3 approximates dense hardwood (ebony) for weight estimates.
const defaultDensityGPerCm3 = 1.2

// Section is the raw record for one axial segment of a cue butt.
// Positions run along the cue axis in inches, diameters are in millimeters.
type Section struct {
	ID              string
	Type            string
	StartPositionIn float64
	EndPositionIn   float64
	StartDiameterMM float64
	EndDiameterMM   float64
}

// DerivedSectionGeometry holds the quantities computed from a Section.
// Positions and radii are echoed so the profile renderer can consume the
// slice directly without going back to the raw records.
type DerivedSectionGeometry struct {
	SectionID       string  `json:"section_id"`
	Type            string  `json:"type"`
	StartPositionIn float64 `json:"start_position_in"`
	EndPositionIn   float64 `json:"end_position_in"`
	LengthIn        float64 `json:"length_in"`
	StartRadiusMM   float64 `json:"start_radius_mm"`
	EndRadiusMM     float64 `json:"end_radius_mm"`
	TaperMMPerIn    float64 `json:"taper_mm_per_in"`
	TaperAngleDeg   float64 `json:"taper_angle_deg"`
}

// Compute derives per-section geometry from a raw section record.
// A section with end position at or before its start position is unusable
// input, not a design-quality issue, so it fails hard before any taper math.
func Compute(s Section) (DerivedSectionGeometry, error) {
	length := s.EndPositionIn - s.StartPositionIn
	if length <= 0 {
		return DerivedSectionGeometry{}, domainErrorf(CodeNonPositiveLength,
			"section %s has non-positive length: start %g must be less than end %g",
			s.ID, s.StartPositionIn, s.EndPositionIn)
	}

	taper := (s.EndDiameterMM - s.StartDiameterMM) / length

	return DerivedSectionGeometry{
		SectionID:       s.ID,
		Type:            s.Type,
		StartPositionIn: s.StartPositionIn,
		EndPositionIn:   s.EndPositionIn,
		LengthIn:        length,
		StartRadiusMM:   s.StartDiameterMM / 2,
		EndRadiusMM:     s.EndDiameterMM / 2,
		TaperMMPerIn:    taper,
		// Radius change per inch, converted to inches, as a half-angle.
		TaperAngleDeg: radToDeg(math.Atan(taper / 2 / mmPerInch)),
	}, nil
}

// ComputeDesign derives geometry for every section of a design, ordered by
// start position. Cross-section rules are the validator's job; this only
// computes per-section quantities.
func ComputeDesign(sections []Section) ([]DerivedSectionGeometry, error) {
	ordered := make([]Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartPositionIn < ordered[j].StartPositionIn
	})

	derived := make([]DerivedSectionGeometry, 0, len(ordered))
	for _, s := range ordered {
		d, err := Compute(s)
		if err != nil {
			return nil, err
		}
		derived = append(derived, d)
	}
	return derived, nil
}

// RadiusAt interpolates the radius (mm) at an axial position inside the section.
func (d DerivedSectionGeometry) RadiusAt(xIn float64) (float64, error) {
	if xIn < d.StartPositionIn || xIn > d.EndPositionIn {
		return 0, domainErrorf(CodePositionOutOfRange,
			"position %g is outside section %s range [%g, %g]",
			xIn, d.SectionID, d.StartPositionIn, d.EndPositionIn)
	}
	t := (xIn - d.StartPositionIn) / d.LengthIn
	return d.StartRadiusMM + t*(d.EndRadiusMM-d.StartRadiusMM), nil
}

// SurfaceAreaSqIn is the lateral surface area of the section in square inches.
func (d DerivedSectionGeometry) SurfaceAreaSqIn() float64 {
	avgRadiusIn := (d.StartRadiusMM + d.EndRadiusMM) / 2 / mmPerInch
	return 2 * math.Pi * avgRadiusIn * d.LengthIn
}

// VolumeCuIn is the frustum volume of the section in cubic inches.
func (d DerivedSectionGeometry) VolumeCuIn() float64 {
	r1 := d.StartRadiusMM / mmPerInch
	r2 := d.EndRadiusMM / mmPerInch
	return math.Pi / 3 * d.LengthIn * (r1*r1 + r1*r2 + r2*r2)
}

// TotalLengthIn is the axial span covered by the derived sections.
// Assumes the slice is ordered by start position, as ComputeDesign returns it.
func TotalLengthIn(derived []DerivedSectionGeometry) float64 {
	if len(derived) == 0 {
		return 0
	}
	return derived[len(derived)-1].EndPositionIn - derived[0].StartPositionIn
}

// DesignSurfaceAreaSqIn sums lateral surface area over all sections.
func DesignSurfaceAreaSqIn(derived []DerivedSectionGeometry) float64 {
	var total float64
	for _, d := range derived {
		total += d.SurfaceAreaSqIn()
	}
	return total
}

// DesignVolumeCuIn sums frustum volume over all sections.
func DesignVolumeCuIn(derived []DerivedSectionGeometry) float64 {
	var total float64
	for _, d := range derived {
		total += d.VolumeCuIn()
	}
	return total
}

// EstimatedWeightOz converts a volume in cubic inches to ounces using a
// uniform hardwood density. Material assignments are out of scope, so this
// is an estimate for display only.
func EstimatedWeightOz(volumeCuIn float64) float64 {
	const cm3PerCuIn = 16.387
	const gramsPerOz = 28.3495
	return volumeCuIn * cm3PerCuIn * defaultDensityGPerCm3 / gramsPerOz
}

// SectionCountByType groups derived sections into per-type counts.
func SectionCountByType(derived []DerivedSectionGeometry) map[string]int {
	counts := make(map[string]int)
	for _, d := range derived {
		counts[d.Type]++
	}
	return counts
}

// DesignRadiusAt finds the section containing the position and interpolates
// its radius. Positions between sections (inside a gap) or outside the
// design's span are out of range.
func DesignRadiusAt(derived []DerivedSectionGeometry, xIn float64) (float64, error) {
	for _, d := range derived {
		if xIn >= d.StartPositionIn && xIn <= d.EndPositionIn {
			return d.RadiusAt(xIn)
		}
	}
	return 0, domainErrorf(CodePositionOutOfRange,
		"position %g is outside the cue design", xIn)
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
