// Package model defines the parameter model for a storage bay group and the
// operations that keep it internally consistent.
//
// A BayGroup is the canonical description of one design unit: a run of bays
// sharing continuous shelves, closed by two side panels, subdivided into bins
// by vertical splits. All lengths are millimetres. The model is a plain
// mutable value owned by exactly one caller; nothing in this package
// synchronizes access.
//
// The lifecycle is: create with New, mutate one field at a time, run exactly
// one of the two reconciler operations (see reconcile.go) after each edit,
// and gate the result through Validate before handing it to the layout
// engine.
package model

import "github.com/google/uuid"

// Default parameter values for a freshly created group.
const (
	DefaultBayWidth          = 1050.0
	DefaultShelfThickness    = 18.0
	DefaultSidePanelThick    = 18.0
	DefaultBinSplitThickness = 18.0
	DefaultGroundClearance   = 50.0
	DefaultLevelHeight       = 350.0
	DefaultNumCols           = 4
	DefaultNumRows           = 5
	DefaultColor             = "#4A90E2"
)

// BayGroup describes one bay-group design unit.
//
// LevelHeights and LevelLocked are parallel slices of length NumRows with
// level 0 at the bottom. TotalHeight is kept consistent with the level
// heights by the reconciler; the invariant is
//
//	TotalHeight = Σ LevelHeights + ShelfCount()*ShelfThickness + GroundClearance
type BayGroup struct {
	ID   string // stable identity, survives renames
	Name string

	NumBays  int
	BayWidth float64 // interior width of one bay; side panels sit outside

	GroundClearance float64
	HasTopCap       bool

	ShelfThickness     float64
	SidePanelThickness float64
	BinSplitThickness  float64

	NumCols int // vertical bin splits per bay, uniform across bays and rows
	NumRows int // horizontal shelf levels

	LevelHeights []float64 // net usable height per level, bottom to top
	LevelLocked  []bool    // locked levels are untouched by redistribution

	TotalHeight float64

	Color string // display only, irrelevant to geometry
}

// New creates a group with the standard workshop defaults and a fresh ID.
// TotalHeight is derived from the defaults so the group starts consistent.
func New(name string) *BayGroup {
	g := &BayGroup{
		ID:                 uuid.NewString(),
		Name:               name,
		NumBays:            1,
		BayWidth:           DefaultBayWidth,
		GroundClearance:    DefaultGroundClearance,
		HasTopCap:          true,
		ShelfThickness:     DefaultShelfThickness,
		SidePanelThickness: DefaultSidePanelThick,
		BinSplitThickness:  DefaultBinSplitThickness,
		NumCols:            DefaultNumCols,
		NumRows:            DefaultNumRows,
		Color:              DefaultColor,
	}
	g.LevelHeights = make([]float64, g.NumRows)
	g.LevelLocked = make([]bool, g.NumRows)
	for i := range g.LevelHeights {
		g.LevelHeights[i] = DefaultLevelHeight
	}
	UpdateTotalHeight(g)
	return g
}

// Clone returns a deep, independent copy with a fresh ID. Used by the
// "copy as template" operation; the copy shares no mutable state with the
// original.
func (g *BayGroup) Clone() *BayGroup {
	c := *g
	c.ID = uuid.NewString()
	c.LevelHeights = make([]float64, len(g.LevelHeights))
	copy(c.LevelHeights, g.LevelHeights)
	c.LevelLocked = make([]bool, len(g.LevelLocked))
	copy(c.LevelLocked, g.LevelLocked)
	return &c
}

// SetNumRows resizes LevelHeights and LevelLocked to n entries, preserving
// the first min(old, n) values. New levels get the default height, unlocked.
// Callers must run a reconciler operation afterwards; this method only
// restores the structural invariant len(LevelHeights) == len(LevelLocked) == NumRows.
func (g *BayGroup) SetNumRows(n int) {
	if n < 1 {
		n = 1
	}
	heights := make([]float64, n)
	locked := make([]bool, n)
	for i := 0; i < n; i++ {
		if i < len(g.LevelHeights) {
			heights[i] = g.LevelHeights[i]
		} else {
			heights[i] = DefaultLevelHeight
		}
		if i < len(g.LevelLocked) {
			locked[i] = g.LevelLocked[i]
		}
	}
	g.NumRows = n
	g.LevelHeights = heights
	g.LevelLocked = locked
}

// ShelfCount returns the number of horizontal panels: one shelf under each
// level plus the optional top cap.
func (g *BayGroup) ShelfCount() int {
	if g.HasTopCap {
		return g.NumRows + 1
	}
	return g.NumRows
}

// CoreWidth returns the combined interior span of all bays.
func (g *BayGroup) CoreWidth() float64 {
	return float64(g.NumBays) * g.BayWidth
}

// TotalWidth returns the overall width including both side panels.
func (g *BayGroup) TotalWidth() float64 {
	return g.CoreWidth() + 2*g.SidePanelThickness
}

// BinWidth returns the net width of a single bin within one bay.
// The result may be zero or negative for degenerate configurations; the
// validator rejects those before they reach the layout engine.
func (g *BayGroup) BinWidth() float64 {
	if g.NumCols <= 0 {
		return 0
	}
	return (g.BayWidth - float64(g.NumCols-1)*g.BinSplitThickness) / float64(g.NumCols)
}

// DividerCount returns the total number of vertical bin splits across all bays.
func (g *BayGroup) DividerCount() int {
	if g.NumCols < 1 || g.NumBays < 1 {
		return 0
	}
	return (g.NumCols - 1) * g.NumBays
}

// BinCount returns the total number of storage bins.
func (g *BayGroup) BinCount() int {
	return g.NumBays * g.NumCols * g.NumRows
}

// LevelName returns the display letter for a level index: "A" for the
// bottom level, "B" above it, and so on. Indexes past "Z" wrap to "AA"
// style names, though real furniture never gets there.
func LevelName(i int) string {
	name := ""
	for {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
		if i < 0 {
			return name
		}
	}
}
