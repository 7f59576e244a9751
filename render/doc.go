// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render draws the 2D side view of a cue design as SVG.

# Rendering

WriteProfileSVG takes derived section geometry, ordered by start
position, and writes a complete SVG document:

	render.WriteProfileSVG(w, derived)

The view shows the tapered outline mirrored about a dashed centerline,
with a background grid (one line per inch horizontally, one per 5mm of
diameter vertically), section dividers with type labels, a total length
dimension, the tip diameter, and a scale legend.

# Coordinate Mapping

Transform maps axial inches and radius millimeters onto pixels. The
design is fit to the canvas: the x axis scales to total length, the y
axis to the largest radius plus 10% headroom, leaving a fixed padding
margin on all sides.
*/
package render
