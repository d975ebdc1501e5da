package layout

import (
	"fmt"

	"bayplan/pkg/model"
)

// Orientation of a dimension annotation.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Annotation is one dimension line: two endpoints, a formatted label, and
// an orientation hint for the renderer (vertical labels are rotated).
// Annotations are purely presentational and are never fed back into the
// model.
type Annotation struct {
	X1, Y1, X2, Y2 float64
	Label          string
	Orientation    Orientation
}

// offsetRatio separates dimension lines from the structure, proportional to
// the overall size so drawings of any scale keep readable spacing.
const offsetRatio = 0.05

// Annotate derives the dimension lines for a group from its already
// computed parts. It never recomputes geometry; the parts slice is the one
// Plan returned for the same group.
//
// Produced annotations:
//   - overall width (below) and overall height (left)
//   - ground clearance (right, only when non-zero)
//   - per level: net bin height and pitch (net + shelf thickness), both on
//     the right, labelled with the level letter
//   - per bay: one bin-width annotation above the structure
//
// All lines sit at least one offset away from the structure, so they can
// never overlap its rectangles.
func Annotate(g *model.BayGroup, parts []Part) []Annotation {
	left, right, top := extent(parts)
	offset := offsetRatio * max(top, right-left)

	anns := make([]Annotation, 0, 3+2*g.NumRows+g.NumBays)

	anns = append(anns, Annotation{
		X1: left, Y1: -offset, X2: right, Y2: -offset,
		Label:       fmt.Sprintf("%.1f mm", right-left),
		Orientation: Horizontal,
	})
	anns = append(anns, Annotation{
		X1: left - offset, Y1: 0, X2: left - offset, Y2: top,
		Label:       fmt.Sprintf("%.1f mm", top),
		Orientation: Vertical,
	})

	if g.GroundClearance > 0 {
		anns = append(anns, Annotation{
			X1: right + offset, Y1: 0, X2: right + offset, Y2: g.GroundClearance,
			Label:       fmt.Sprintf("%.1f mm", g.GroundClearance),
			Orientation: Vertical,
		})
	}

	// Net height and pitch per level, walking the same bottom-up y as the
	// shelf emission in Plan.
	y := g.GroundClearance
	for i := 0; i < g.NumRows; i++ {
		shelfTop := y + g.ShelfThickness
		net := g.LevelHeights[i]
		anns = append(anns, Annotation{
			X1: right + offset, Y1: shelfTop, X2: right + offset, Y2: shelfTop + net,
			Label:       fmt.Sprintf("%s %.1f mm", model.LevelName(i), net),
			Orientation: Vertical,
		})
		anns = append(anns, Annotation{
			X1: right + 2*offset, Y1: y, X2: right + 2*offset, Y2: shelfTop + net,
			Label:       fmt.Sprintf("%s pitch %.1f mm", model.LevelName(i), net+g.ShelfThickness),
			Orientation: Vertical,
		})
		y = shelfTop + net
	}

	// Bin width repeats per bay; with uniform bay widths the labels repeat
	// too, which keeps each bay's drawing self-contained.
	binWidth := g.BinWidth()
	for b := 0; b < g.NumBays; b++ {
		start := float64(b) * g.BayWidth
		anns = append(anns, Annotation{
			X1: start, Y1: top + offset, X2: start + binWidth, Y2: top + offset,
			Label:       fmt.Sprintf("%.1f mm", binWidth),
			Orientation: Horizontal,
		})
	}

	return anns
}

// extent returns the bounding box of the parts: leftmost edge, rightmost
// edge, and the top of the structure.
func extent(parts []Part) (left, right, top float64) {
	for i, p := range parts {
		if i == 0 || p.Left < left {
			left = p.Left
		}
		if i == 0 || p.Right > right {
			right = p.Right
		}
		if i == 0 || p.Top > top {
			top = p.Top
		}
	}
	return left, right, top
}
