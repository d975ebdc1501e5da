// Package styles defines the visual appearance of bay drawings.
//
// A Style controls how structural parts and dimension lines are written as
// SVG fragments. The sink computes positions in drawing coordinates (SVG y
// already pointing down) and hands fully resolved shapes to the style, so
// styles only decide stroke, fill, and text presentation.
package styles

import "bytes"

// Style defines the visual appearance for bay drawings.
type Style interface {
	// Name returns the style identifier used on the CLI.
	Name() string
	// Background returns a fill color for the drawing background,
	// or "" for none.
	Background() string
	// RenderDefs writes SVG <defs> content (markers, patterns).
	RenderDefs(buf *bytes.Buffer)
	// RenderPart writes the SVG for a single structural part.
	RenderPart(buf *bytes.Buffer, s Shape)
	// RenderDimension writes the SVG for a dimension line with its label.
	RenderDimension(buf *bytes.Buffer, d Dimension)
}

// Shape contains all data needed to draw one structural part.
type Shape struct {
	Role       string  // structural role (side_panel, shelf, divider, top_cap)
	X, Y, W, H float64 // position and size, SVG coordinates
	Fill       string  // the group's display color
}

// Dimension contains positioning data for one dimension line.
type Dimension struct {
	X1, Y1, X2, Y2 float64
	Label          string
	Vertical       bool    // vertical lines get rotated labels
	FontSize       float64 // label size in drawing units, scaled by the sink
}
