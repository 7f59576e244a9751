// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

// Transform maps cue geometry (inches along the axis, millimeters of
// radius) onto SVG pixel coordinates, leaving a fixed padding margin.
// The cue centerline sits at half the canvas height; positive radii go up.
type Transform struct {
	Width   int
	Height  int
	Padding int
}

func NewTransform(width, height int) Transform {
	return Transform{Width: width, Height: height, Padding: 50}
}

func (t Transform) AvailableWidth() float64 {
	return float64(t.Width - 2*t.Padding)
}

func (t Transform) AvailableHeight() float64 {
	return float64(t.Height - 2*t.Padding)
}

// ToSVG converts an axial position and radius into pixel coordinates,
// scaled against the design's total length and maximum radius.
func (t Transform) ToSVG(xIn, radiusMM, totalLengthIn, maxRadiusMM float64) (float64, float64) {
	x := float64(t.Padding) + (xIn/totalLengthIn)*t.AvailableWidth()
	y := float64(t.Height)/2 - (radiusMM/maxRadiusMM)*(t.AvailableHeight()/2)
	return x, y
}

// ScaleFactors reports pixels-per-inch and pixels-per-millimeter for the
// legend.
func (t Transform) ScaleFactors(totalLengthIn, maxRadiusMM float64) (xScale, yScale float64) {
	xScale = t.AvailableWidth() / totalLengthIn
	yScale = t.AvailableHeight() / 2 / maxRadiusMM
	return xScale, yScale
}
