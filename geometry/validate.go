// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geometry

import (
	"fmt"
	"math"
	"sort"

	"github.com/dustin/go-humanize"
)

// Violation kinds.
const (
	KindSequenceError    = "sequence_error"
	KindLengthBound      = "length_bound"
	KindDiameterBound    = "diameter_bound"
	KindTaperExceeded    = "taper_exceeded"
	KindRadiusOutOfRange = "radius_out_of_range"
	KindDiameterJump     = "diameter_jump"
	KindGap              = "gap"
	KindOverlap          = "overlap"
)

// Violation is one manufacturing-rule breach. All violations are hard
// failures; there is no warning tier. Design-level violations (total
// length) carry no section reference.
type Violation struct {
	Kind              string `json:"kind"`
	SectionID         string `json:"section_id,omitempty"`
	AdjacentSectionID string `json:"adjacent_section_id,omitempty"`
	Message           string `json:"message"`
}

// Validate evaluates the manufacturing rule set against a design's sections
// and their derived geometry, and returns every breach found. It never
// fails: domain-invalid geometry is data, not an error. An empty design
// validates to an empty list; callers decide what "complete" means.
//
// The sections and derived slices must correspond element-wise, as
// ComputeDesign produces them.
func Validate(sections []Section, derived []DerivedSectionGeometry) []Violation {
	type entry struct {
		raw Section
		geo DerivedSectionGeometry
	}

	entries := make([]entry, 0, len(sections))
	for i := range sections {
		entries = append(entries, entry{raw: sections[i], geo: derived[i]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].raw.StartPositionIn < entries[j].raw.StartPositionIn
	})

	var violations []Violation
	highestRank := -1
	var totalLength float64

	for i, e := range entries {
		s, g := e.raw, e.geo
		totalLength += g.LengthIn

		// Sequence: present types must not regress in canonical order.
		if rank, ok := typeRank[s.Type]; ok {
			if rank < highestRank {
				violations = append(violations, Violation{
					Kind:      KindSequenceError,
					SectionID: s.ID,
					Message: fmt.Sprintf("%s is out of order: it cannot follow %s",
						s.Type, SectionTypes[highestRank]),
				})
			} else {
				highestRank = rank
			}
		}

		violations = append(violations, checkLengthBounds(s, g)...)
		violations = append(violations, checkDiameterBounds(s, g)...)

		if math.Abs(g.TaperAngleDeg) > MaxTaperAngleDeg {
			violations = append(violations, Violation{
				Kind:      KindTaperExceeded,
				SectionID: s.ID,
				Message: fmt.Sprintf("%s taper angle too steep: %s° (max %s°)",
					s.Type, ftoa(math.Abs(g.TaperAngleDeg)), ftoa(MaxTaperAngleDeg)),
			})
		}

		violations = append(violations, checkRadiusRange(s, g)...)

		if i > 0 {
			violations = append(violations, checkAdjacency(entries[i-1].raw, s)...)
		}
	}

	if totalLength > MaxTotalLengthIn {
		violations = append(violations, Violation{
			Kind: KindLengthBound,
			Message: fmt.Sprintf("total length too long: %s\" (max %s\")",
				ftoa(totalLength), ftoa(MaxTotalLengthIn)),
		})
	}

	return violations
}

func checkLengthBounds(s Section, g DerivedSectionGeometry) []Violation {
	var out []Violation

	if bounds, ok := SectionBounds[s.Type]; ok {
		if g.LengthIn < bounds.MinLengthIn {
			out = append(out, Violation{
				Kind:      KindLengthBound,
				SectionID: s.ID,
				Message: fmt.Sprintf("%s too short: %s\" (min %s\")",
					s.Type, ftoa(g.LengthIn), ftoa(bounds.MinLengthIn)),
			})
		}
		if g.LengthIn > bounds.MaxLengthIn {
			out = append(out, Violation{
				Kind:      KindLengthBound,
				SectionID: s.ID,
				Message: fmt.Sprintf("%s too long: %s\" (max %s\")",
					s.Type, ftoa(g.LengthIn), ftoa(bounds.MaxLengthIn)),
			})
		}
	}

	if g.LengthIn > MaxSectionLengthIn {
		out = append(out, Violation{
			Kind:      KindLengthBound,
			SectionID: s.ID,
			Message: fmt.Sprintf("%s exceeds single-section limit: %s\" (max %s\")",
				s.Type, ftoa(g.LengthIn), ftoa(MaxSectionLengthIn)),
		})
	}

	return out
}

func checkDiameterBounds(s Section, g DerivedSectionGeometry) []Violation {
	bounds, ok := SectionBounds[s.Type]
	if !ok {
		return nil
	}

	var out []Violation
	ends := []struct {
		label string
		diam  float64
	}{
		{"start", s.StartDiameterMM},
		{"end", s.EndDiameterMM},
	}
	for _, e := range ends {
		if e.diam < bounds.MinDiameterMM {
			out = append(out, Violation{
				Kind:      KindDiameterBound,
				SectionID: s.ID,
				Message: fmt.Sprintf("%s %s diameter too small: %smm (min %smm)",
					s.Type, e.label, ftoa(e.diam), ftoa(bounds.MinDiameterMM)),
			})
		}
		if e.diam > bounds.MaxDiameterMM {
			out = append(out, Violation{
				Kind:      KindDiameterBound,
				SectionID: s.ID,
				Message: fmt.Sprintf("%s %s diameter too large: %smm (max %smm)",
					s.Type, e.label, ftoa(e.diam), ftoa(bounds.MaxDiameterMM)),
			})
		}
	}
	return out
}

func checkRadiusRange(s Section, g DerivedSectionGeometry) []Violation {
	var out []Violation

	minRadius := math.Min(g.StartRadiusMM, g.EndRadiusMM)
	if minRadius < MinRadiusMM {
		out = append(out, Violation{
			Kind:      KindRadiusOutOfRange,
			SectionID: s.ID,
			Message: fmt.Sprintf("%s radius too small: %smm (min %smm)",
				s.Type, ftoa(minRadius), ftoa(MinRadiusMM)),
		})
	}

	maxRadius := math.Max(g.StartRadiusMM, g.EndRadiusMM)
	if maxRadius > MaxRadiusMM {
		out = append(out, Violation{
			Kind:      KindRadiusOutOfRange,
			SectionID: s.ID,
			Message: fmt.Sprintf("%s radius too large: %smm (max %smm)",
				s.Type, ftoa(maxRadius), ftoa(MaxRadiusMM)),
		})
	}

	return out
}

// checkAdjacency classifies the boundary between two consecutive sections.
// Position continuity and diameter continuity are independent rules: a pair
// can produce both a gap and a diameter jump.
func checkAdjacency(prev, next Section) []Violation {
	var out []Violation

	delta := next.StartPositionIn - prev.EndPositionIn
	switch {
	case delta > PositionToleranceIn:
		out = append(out, Violation{
			Kind:              KindGap,
			SectionID:         prev.ID,
			AdjacentSectionID: next.ID,
			Message: fmt.Sprintf("gap of %s\" between %s and %s",
				ftoa(delta), prev.Type, next.Type),
		})
	case delta < -PositionToleranceIn:
		out = append(out, Violation{
			Kind:              KindOverlap,
			SectionID:         prev.ID,
			AdjacentSectionID: next.ID,
			Message: fmt.Sprintf("overlap of %s\" between %s and %s",
				ftoa(-delta), prev.Type, next.Type),
		})
	}

	jump := math.Abs(next.StartDiameterMM - prev.EndDiameterMM)
	if jump > MaxDiameterJumpMM {
		out = append(out, Violation{
			Kind:              KindDiameterJump,
			SectionID:         prev.ID,
			AdjacentSectionID: next.ID,
			Message: fmt.Sprintf("diameter jump of %smm between %s and %s (max %smm)",
				ftoa(jump), prev.Type, next.Type, ftoa(MaxDiameterJumpMM)),
		})
	}

	return out
}

func ftoa(f float64) string {
	return humanize.FtoaWithDigits(f, 2)
}
