package model

import (
	"math"

	"bayplan/pkg/errors"
)

// HeightTolerance is the permitted disagreement between TotalHeight and the
// reconstructed height sum. It absorbs floating-point drift from repeated
// distribute/update cycles.
const HeightTolerance = 0.1

// Validate checks a group for internal consistency and returns every
// violation found, not just the first. An empty list means the group may be
// passed to the layout engine; a non-empty list must be surfaced to the
// user in full.
func Validate(g *BayGroup) errors.List {
	var errs errors.List

	if g.NumBays < 1 {
		errs = append(errs, errors.New(errors.ErrCodeInvalidCount, "number of bays must be at least 1, got %d", g.NumBays))
	}
	if g.NumCols < 1 {
		errs = append(errs, errors.New(errors.ErrCodeInvalidCount, "number of columns must be at least 1, got %d", g.NumCols))
	}
	if g.NumRows < 1 {
		errs = append(errs, errors.New(errors.ErrCodeInvalidCount, "number of rows must be at least 1, got %d", g.NumRows))
	}
	if g.BayWidth <= 0 {
		errs = append(errs, errors.New(errors.ErrCodeInvalidDimension, "bay width must be positive, got %.1f", g.BayWidth))
	}
	if g.ShelfThickness <= 0 {
		errs = append(errs, errors.New(errors.ErrCodeInvalidDimension, "shelf thickness must be positive, got %.1f", g.ShelfThickness))
	}
	if g.SidePanelThickness <= 0 {
		errs = append(errs, errors.New(errors.ErrCodeInvalidDimension, "side panel thickness must be positive, got %.1f", g.SidePanelThickness))
	}
	if g.BinSplitThickness <= 0 {
		errs = append(errs, errors.New(errors.ErrCodeInvalidDimension, "bin split thickness must be positive, got %.1f", g.BinSplitThickness))
	}
	if g.GroundClearance < 0 {
		errs = append(errs, errors.New(errors.ErrCodeInvalidDimension, "ground clearance must not be negative, got %.1f", g.GroundClearance))
	}

	if len(g.LevelHeights) != g.NumRows || len(g.LevelLocked) != g.NumRows {
		errs = append(errs, errors.New(errors.ErrCodeInvalidLevels,
			"level slices must match the row count: %d heights, %d locks, %d rows",
			len(g.LevelHeights), len(g.LevelLocked), g.NumRows))
	}
	for i, h := range g.LevelHeights {
		if h <= 0 {
			errs = append(errs, errors.New(errors.ErrCodeInvalidLevels,
				"level %s height must be positive, got %.1f", LevelName(i), h))
		}
	}

	// Height-sum agreement is only meaningful once the slices line up.
	if len(g.LevelHeights) == g.NumRows && g.NumRows >= 1 {
		var sum float64
		for _, h := range g.LevelHeights {
			sum += h
		}
		want := sum + float64(g.ShelfCount())*g.ShelfThickness + g.GroundClearance
		if math.Abs(want-g.TotalHeight) > HeightTolerance {
			errs = append(errs, errors.New(errors.ErrCodeHeightMismatch,
				"total height %.1f disagrees with level sum %.1f", g.TotalHeight, want))
		}
	}

	// Splits thicker than the bay leaves no room for bins. The layout engine
	// never clamps, so reject the configuration here.
	if g.NumCols >= 1 && g.BayWidth > 0 && g.BinSplitThickness > 0 {
		if g.BinWidth() <= 0 {
			errs = append(errs, errors.New(errors.ErrCodeDegenerateBin,
				"computed bin width %.1f is not positive: %d splits of %.1f exceed the bay width %.1f",
				g.BinWidth(), g.NumCols-1, g.BinSplitThickness, g.BayWidth))
		}
	}

	return errs
}
