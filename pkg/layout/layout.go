// Package layout turns a validated bay group into drawing geometry: the
// rectangles of every structural part plus the dimension annotations that
// describe them.
//
// Plan and Annotate are pure functions. Same input, bit-identical output;
// no side effects, no retries, no partial results. Neither function guards
// against degenerate input — a group must pass model.Validate first, and a
// validator-passing group that still produces a zero-size part is a
// documented limitation, not something the engine clamps away.
package layout

import "bayplan/pkg/model"

// Plan computes the full set of structural parts for one group.
//
// Coordinate convention: x = 0 is the left edge of the leftmost bay's
// interior, so the left side panel occupies negative x and the right one
// starts at the core width. y = 0 is the floor.
//
// Emission order is deterministic: side panels, then dividers bay by bay,
// then shelves bottom-up, then the optional top cap.
func Plan(g *model.BayGroup) []Part {
	core := g.CoreWidth()
	binWidth := g.BinWidth()

	parts := make([]Part, 0, 2+g.DividerCount()+g.ShelfCount())

	// Side panels run the full height, outside the bay footprint.
	parts = append(parts,
		Part{Role: RoleSidePanel, Left: -g.SidePanelThickness, Right: 0, Bottom: 0, Top: g.TotalHeight},
		Part{Role: RoleSidePanel, Left: core, Right: core + g.SidePanelThickness, Bottom: 0, Top: g.TotalHeight},
	)

	// Dividers stop under the top cap; without one they reach the full height.
	dividerTop := g.TotalHeight
	if g.HasTopCap {
		dividerTop -= g.ShelfThickness
	}
	for b := 0; b < g.NumBays; b++ {
		bayStart := float64(b) * g.BayWidth
		for i := 0; i < g.NumCols-1; i++ {
			x := bayStart + float64(i+1)*binWidth + float64(i)*g.BinSplitThickness
			parts = append(parts, Part{
				Role:   RoleDivider,
				Left:   x,
				Right:  x + g.BinSplitThickness,
				Bottom: g.GroundClearance,
				Top:    dividerTop,
			})
		}
	}

	// Shelves span the whole group including the side panels, walking
	// bottom-up: shelf, then the level's net height, then the next shelf.
	left := -g.SidePanelThickness
	right := core + g.SidePanelThickness
	y := g.GroundClearance
	for i := 0; i < g.NumRows; i++ {
		parts = append(parts, Part{Role: RoleShelf, Left: left, Right: right, Bottom: y, Top: y + g.ShelfThickness})
		y += g.ShelfThickness + g.LevelHeights[i]
	}

	if g.HasTopCap {
		parts = append(parts, Part{
			Role:   RoleTopCap,
			Left:   left,
			Right:  right,
			Bottom: g.TotalHeight - g.ShelfThickness,
			Top:    g.TotalHeight,
		})
	}

	return parts
}
