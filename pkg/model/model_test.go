package model

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewDefaults(t *testing.T) {
	g := New("Workshop wall")

	if g.ID == "" {
		t.Error("New should assign an ID")
	}
	if g.Name != "Workshop wall" {
		t.Errorf("Name = %q", g.Name)
	}
	if g.NumBays != 1 || g.NumCols != DefaultNumCols || g.NumRows != DefaultNumRows {
		t.Errorf("counts = %d bays, %d cols, %d rows", g.NumBays, g.NumCols, g.NumRows)
	}
	if !g.HasTopCap {
		t.Error("new groups should have a top cap")
	}
	if len(g.LevelHeights) != DefaultNumRows || len(g.LevelLocked) != DefaultNumRows {
		t.Fatalf("level slices = %d heights, %d locks", len(g.LevelHeights), len(g.LevelLocked))
	}
	for i, h := range g.LevelHeights {
		if h != DefaultLevelHeight {
			t.Errorf("LevelHeights[%d] = %.1f, want %.1f", i, h, DefaultLevelHeight)
		}
	}

	// 5 levels of 350 + 6 shelves of 18 + 50 clearance.
	if !almostEqual(g.TotalHeight, 1908) {
		t.Errorf("TotalHeight = %.1f, want 1908.0", g.TotalHeight)
	}
	if errs := Validate(g); len(errs) > 0 {
		t.Errorf("a new group must validate cleanly: %v", errs.Messages())
	}
}

func TestClone(t *testing.T) {
	g := New("Original")
	g.LevelLocked[2] = true

	c := g.Clone()

	if c.ID == g.ID {
		t.Error("clone must get a fresh ID")
	}
	if c.Name != g.Name || c.TotalHeight != g.TotalHeight {
		t.Error("clone should copy all parameters")
	}

	c.LevelHeights[0] = 999
	c.LevelLocked[2] = false
	if g.LevelHeights[0] == 999 {
		t.Error("clone shares LevelHeights with the original")
	}
	if !g.LevelLocked[2] {
		t.Error("clone shares LevelLocked with the original")
	}
}

func TestSetNumRows(t *testing.T) {
	tests := []struct {
		name string
		from int
		to   int
	}{
		{"grow", 3, 6},
		{"shrink", 5, 2},
		{"same", 4, 4},
		{"clamp to one", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New("g")
			g.SetNumRows(tt.from)
			for i := range g.LevelHeights {
				g.LevelHeights[i] = 100 + float64(i)
				g.LevelLocked[i] = i%2 == 0
			}

			g.SetNumRows(tt.to)

			want := tt.to
			if want < 1 {
				want = 1
			}
			if g.NumRows != want || len(g.LevelHeights) != want || len(g.LevelLocked) != want {
				t.Fatalf("rows = %d, %d heights, %d locks, want %d",
					g.NumRows, len(g.LevelHeights), len(g.LevelLocked), want)
			}

			keep := tt.from
			if want < keep {
				keep = want
			}
			for i := 0; i < keep; i++ {
				if g.LevelHeights[i] != 100+float64(i) {
					t.Errorf("LevelHeights[%d] = %.1f, existing value not preserved", i, g.LevelHeights[i])
				}
				if g.LevelLocked[i] != (i%2 == 0) {
					t.Errorf("LevelLocked[%d] flipped", i)
				}
			}
			for i := keep; i < want; i++ {
				if g.LevelHeights[i] != DefaultLevelHeight {
					t.Errorf("new level %d = %.1f, want default", i, g.LevelHeights[i])
				}
				if g.LevelLocked[i] {
					t.Errorf("new level %d should be unlocked", i)
				}
			}
		})
	}
}

func TestDerivedCounts(t *testing.T) {
	g := New("g")
	g.NumBays = 2
	g.NumCols = 4
	g.NumRows = 5

	if got := g.CoreWidth(); !almostEqual(got, 2100) {
		t.Errorf("CoreWidth = %.1f, want 2100.0", got)
	}
	if got := g.TotalWidth(); !almostEqual(got, 2136) {
		t.Errorf("TotalWidth = %.1f, want 2136.0", got)
	}
	// (1050 - 3*18) / 4
	if got := g.BinWidth(); !almostEqual(got, 249) {
		t.Errorf("BinWidth = %.1f, want 249.0", got)
	}
	if got := g.DividerCount(); got != 6 {
		t.Errorf("DividerCount = %d, want 6", got)
	}
	if got := g.BinCount(); got != 40 {
		t.Errorf("BinCount = %d, want 40", got)
	}

	if got := g.ShelfCount(); got != 6 {
		t.Errorf("ShelfCount with top cap = %d, want 6", got)
	}
	g.HasTopCap = false
	if got := g.ShelfCount(); got != 5 {
		t.Errorf("ShelfCount without top cap = %d, want 5", got)
	}
}

func TestBinWidthDegenerate(t *testing.T) {
	g := New("g")
	g.BayWidth = 100
	g.NumCols = 10
	g.BinSplitThickness = 18

	if got := g.BinWidth(); got > 0 {
		t.Errorf("BinWidth = %.1f, want non-positive for oversubscribed bay", got)
	}

	g.NumCols = 0
	if got := g.BinWidth(); got != 0 {
		t.Errorf("BinWidth with zero columns = %.1f, want 0", got)
	}
}

func TestLevelName(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
	}

	for _, tt := range tests {
		if got := LevelName(tt.index); got != tt.want {
			t.Errorf("LevelName(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}
