package model

// The two reconciliation operations keep TotalHeight and LevelHeights in
// agreement. They are triggered by disjoint edit events and must never both
// run for the same edit:
//
//   - the user edits TotalHeight          -> DistributeTotalHeight
//   - the user edits anything that feeds
//     into the height sum (a level height,
//     a thickness, the row count, the top
//     cap flag, ground clearance)         -> UpdateTotalHeight
//
// Edits to NumRows must resize the level slices (BayGroup.SetNumRows) before
// either operation runs.

// DistributeTotalHeight spreads the height budget implied by TotalHeight
// evenly across all unlocked levels. Locked levels keep their height.
//
// When the budget is non-positive or every level is locked the operation is
// a no-op: the model is left inconsistent on purpose, and the validator
// reports the mismatch instead of this function silently correcting it.
func DistributeTotalHeight(g *BayGroup) {
	available := g.TotalHeight - g.GroundClearance - float64(g.ShelfCount())*g.ShelfThickness
	if available <= 0 {
		return
	}

	var locked float64
	unlocked := 0
	for i, h := range g.LevelHeights {
		if g.LevelLocked[i] {
			locked += h
		} else {
			unlocked++
		}
	}
	if unlocked == 0 {
		return
	}

	share := (available - locked) / float64(unlocked)
	for i := range g.LevelHeights {
		if !g.LevelLocked[i] {
			g.LevelHeights[i] = share
		}
	}
}

// UpdateTotalHeight recomputes TotalHeight from the level heights. This is
// the inverse direction of DistributeTotalHeight, used whenever an
// individual level height, a thickness, the row count, or the top-cap flag
// changes.
func UpdateTotalHeight(g *BayGroup) {
	var sum float64
	for _, h := range g.LevelHeights {
		sum += h
	}
	g.TotalHeight = sum + float64(g.ShelfCount())*g.ShelfThickness + g.GroundClearance
}
