// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/tjhirt/cue-designer/geometry"
)

const (
	defaultWidth  = 1200
	defaultHeight = 400

	// pathStepsPerSection controls outline smoothness. Sections are linear
	// tapers, so this mostly matters if curved profiles are added later.
	pathStepsPerSection = 20
)

// WriteProfileSVG renders the 2D side view of a cue design to w. The
// derived slice must be ordered by start position, as
// geometry.ComputeDesign returns it. An empty design renders the frame
// (background, grid, centerline) with no profile.
func WriteProfileSVG(w io.Writer, derived []geometry.DerivedSectionGeometry) {
	tr := NewTransform(defaultWidth, defaultHeight)
	canvas := svg.New(w)
	canvas.Start(tr.Width, tr.Height, `style="font-family: Arial, sans-serif;"`)

	canvas.Rect(0, 0, tr.Width, tr.Height, "fill:#f8f9fa")

	totalLength := geometry.TotalLengthIn(derived)
	maxRadius := maxRadiusMM(derived)

	drawGrid(canvas, tr, totalLength, maxRadius)
	drawCenterline(canvas, tr)

	if len(derived) > 0 {
		drawProfile(canvas, tr, derived, totalLength, maxRadius)
		drawSectionDividers(canvas, tr, derived, totalLength)
		drawDimensions(canvas, tr, derived, totalLength, maxRadius)
	}
	drawLegend(canvas, tr, derived, totalLength, maxRadius)

	canvas.End()
}

// maxRadiusMM finds the scaling radius, padded 10% so the outline never
// touches the frame.
func maxRadiusMM(derived []geometry.DerivedSectionGeometry) float64 {
	if len(derived) == 0 {
		return 10.0
	}
	var max float64
	for _, d := range derived {
		max = math.Max(max, math.Max(d.StartRadiusMM, d.EndRadiusMM))
	}
	return max * 1.1
}

func drawGrid(canvas *svg.SVG, tr Transform, totalLength, maxRadius float64) {
	canvas.Gstyle("opacity:0.3")

	// Vertical lines, one per inch
	if totalLength > 0 {
		for i := 0; i <= int(totalLength); i++ {
			x := round(float64(tr.Padding) + float64(i)/totalLength*tr.AvailableWidth())
			canvas.Line(x, tr.Padding, x, tr.Height-tr.Padding, "stroke:#cccccc;stroke-width:1")
		}
	}

	// Horizontal lines, every 5mm of diameter off the centerline
	for mm := 0; mm < int(maxRadius*2); mm += 5 {
		offset := round(float64(mm) / (maxRadius * 2) * tr.AvailableHeight())
		canvas.Line(tr.Padding, tr.Height/2-offset, tr.Width-tr.Padding, tr.Height/2-offset,
			"stroke:#cccccc;stroke-width:1")
		canvas.Line(tr.Padding, tr.Height/2+offset, tr.Width-tr.Padding, tr.Height/2+offset,
			"stroke:#cccccc;stroke-width:1")
	}

	canvas.Gend()
}

func drawCenterline(canvas *svg.SVG, tr Transform) {
	canvas.Line(tr.Padding, tr.Height/2, tr.Width-tr.Padding, tr.Height/2,
		"stroke:#666666;stroke-width:2;stroke-dasharray:10,5")
}

func drawProfile(canvas *svg.SVG, tr Transform, derived []geometry.DerivedSectionGeometry, totalLength, maxRadius float64) {
	canvas.Path(profilePath(tr, derived, totalLength, maxRadius),
		"fill:#8B4513;stroke:#654321;stroke-width:2")
}

// profilePath walks the top edge left to right, then the bottom edge
// (mirrored radii) right to left, and closes.
func profilePath(tr Transform, derived []geometry.DerivedSectionGeometry, totalLength, maxRadius float64) string {
	var points []string

	sample := func(d geometry.DerivedSectionGeometry, t float64, mirror bool) {
		x := d.StartPositionIn + t*d.LengthIn
		r := d.StartRadiusMM + t*(d.EndRadiusMM-d.StartRadiusMM)
		if mirror {
			r = -r
		}
		sx, sy := tr.ToSVG(x, r, totalLength, maxRadius)
		points = append(points, fmt.Sprintf("%.1f,%.1f", sx, sy))
	}

	for _, d := range derived {
		for i := 0; i <= pathStepsPerSection; i++ {
			sample(d, float64(i)/pathStepsPerSection, false)
		}
	}
	for i := len(derived) - 1; i >= 0; i-- {
		for j := pathStepsPerSection; j >= 0; j-- {
			sample(derived[i], float64(j)/pathStepsPerSection, true)
		}
	}

	return "M " + strings.Join(points, " L ") + " Z"
}

func drawSectionDividers(canvas *svg.SVG, tr Transform, derived []geometry.DerivedSectionGeometry, totalLength float64) {
	if len(derived) <= 1 {
		return
	}

	for i := 0; i < len(derived)-1; i++ {
		x := round(float64(tr.Padding) + derived[i].EndPositionIn/totalLength*tr.AvailableWidth())
		canvas.Line(x, tr.Padding, x, tr.Height-tr.Padding,
			"stroke:#ff6600;stroke-width:2;stroke-dasharray:5,5")
		canvas.Text(x, tr.Padding-10, titleCase(derived[i].Type),
			"text-anchor:middle;font-size:10px;fill:#666666")
	}
}

func drawDimensions(canvas *svg.SVG, tr Transform, derived []geometry.DerivedSectionGeometry, totalLength, maxRadius float64) {
	canvas.Text(tr.Width/2, tr.Height-10, fmt.Sprintf("%.1f\"", totalLength),
		"text-anchor:middle;font-size:12px;font-weight:bold;fill:#333333")

	// Tip diameter annotation at the joint end
	first := derived[0]
	sx, _ := tr.ToSVG(first.StartPositionIn, first.StartRadiusMM, totalLength, maxRadius)
	canvas.Text(round(sx), tr.Padding-20, fmt.Sprintf("Ø%.1fmm", first.StartRadiusMM*2),
		"text-anchor:middle;font-size:10px;fill:#333333")
}

func drawLegend(canvas *svg.SVG, tr Transform, derived []geometry.DerivedSectionGeometry, totalLength, maxRadius float64) {
	canvas.Gstyle("font-size:10px;fill:#666666")
	if totalLength > 0 {
		xScale, yScale := tr.ScaleFactors(totalLength, maxRadius)
		canvas.Text(tr.Width-tr.Padding, tr.Height-20,
			fmt.Sprintf("Scale: %.1f px/in, %.1f px/mm", xScale, yScale), "text-anchor:end")
	}
	canvas.Text(tr.Width-tr.Padding, tr.Height-10,
		fmt.Sprintf("Sections: %d", len(derived)), "text-anchor:end")
	canvas.Gend()
}

func titleCase(sectionType string) string {
	if sectionType == "" {
		return ""
	}
	return strings.ToUpper(sectionType[:1]) + sectionType[1:]
}

func round(v float64) int {
	return int(math.Round(v))
}
