// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package geometry computes derived cue-butt geometry and validates it
against manufacturing constraints.

# Two Stages

The package is split into two independently testable stages:

  - Compute/ComputeDesign: pure derivation of per-section quantities
    (length, taper rate, taper angle, radii) with no policy knowledge
  - Validate: the manufacturing rule set, evaluated over the derived
    geometry, returning a list of Violations

The usual call sequence runs both:

	derived, err := geometry.ComputeDesign(sections)
	if err != nil {
		// structurally unusable input (DomainError)
	}
	violations := geometry.Validate(sections, derived)

# Error Tiers

Structural errors (non-positive length, unknown type, absurd diameters)
fail fast with a *DomainError before any rule runs. Manufacturing-rule
breaches never raise: they come back as Violation values so a caller can
show every problem at once.

# Rules

  - section types must follow the canonical order joint → forearm →
    handle → sleeve → butt (present types only, no regressions)
  - per-type length and diameter bounds (SectionBounds table)
  - taper half-angle at most 5°
  - end radii within [5, 25] mm
  - adjacent sections touch exactly (±1e-6" tolerance) with at most a
    1 mm diameter discontinuity
  - summed section length at most 40", any single section at most 20"

# Renderer Support

DerivedSectionGeometry echoes positions and radii so the SVG renderer
consumes ComputeDesign output directly. RadiusAt/DesignRadiusAt provide
profile sampling; SurfaceAreaSqIn, VolumeCuIn and EstimatedWeightOz
feed the geometry report.

Everything here is stateless pure computation: identical input yields
identical output, and concurrent callers share nothing.
*/
package geometry
