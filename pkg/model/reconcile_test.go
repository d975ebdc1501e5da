package model

import (
	"math"
	"testing"
)

func TestUpdateTotalHeight(t *testing.T) {
	g := New("g")

	// 5 * 350 + 6 * 18 + 50
	if !almostEqual(g.TotalHeight, 1908) {
		t.Fatalf("TotalHeight = %.1f, want 1908.0", g.TotalHeight)
	}

	g.HasTopCap = false
	UpdateTotalHeight(g)
	if !almostEqual(g.TotalHeight, 1890) {
		t.Errorf("TotalHeight without cap = %.1f, want 1890.0", g.TotalHeight)
	}

	g.HasTopCap = true
	g.LevelHeights[0] = 500
	UpdateTotalHeight(g)
	if !almostEqual(g.TotalHeight, 2058) {
		t.Errorf("TotalHeight after level edit = %.1f, want 2058.0", g.TotalHeight)
	}
}

func TestDistributeTotalHeight(t *testing.T) {
	t.Run("even split", func(t *testing.T) {
		g := New("g")
		g.TotalHeight = 2000
		DistributeTotalHeight(g)

		// (2000 - 50 - 6*18) / 5
		for i, h := range g.LevelHeights {
			if !almostEqual(h, 368.4) {
				t.Errorf("LevelHeights[%d] = %.2f, want 368.40", i, h)
			}
		}
		if errs := Validate(g); len(errs) > 0 {
			t.Errorf("distributed group should validate: %v", errs.Messages())
		}
	})

	t.Run("locked level keeps its height", func(t *testing.T) {
		g := New("g")
		g.LevelHeights[0] = 400
		g.LevelLocked[0] = true
		g.TotalHeight = 2000
		DistributeTotalHeight(g)

		if !almostEqual(g.LevelHeights[0], 400) {
			t.Errorf("locked level = %.2f, want 400.00", g.LevelHeights[0])
		}
		// (2000 - 50 - 108 - 400) / 4
		for i := 1; i < g.NumRows; i++ {
			if !almostEqual(g.LevelHeights[i], 360.5) {
				t.Errorf("LevelHeights[%d] = %.2f, want 360.50", i, g.LevelHeights[i])
			}
		}
	})

	t.Run("all levels locked is a no-op", func(t *testing.T) {
		g := New("g")
		for i := range g.LevelLocked {
			g.LevelLocked[i] = true
		}
		g.TotalHeight = 3000
		DistributeTotalHeight(g)

		for i, h := range g.LevelHeights {
			if !almostEqual(h, DefaultLevelHeight) {
				t.Errorf("LevelHeights[%d] = %.1f, locked levels must not move", i, h)
			}
		}
		// The mismatch is left for the validator to report.
		if errs := Validate(g); !errs.Has("HEIGHT_MISMATCH") {
			t.Error("expected HEIGHT_MISMATCH after no-op distribution")
		}
	})

	t.Run("non-positive budget is a no-op", func(t *testing.T) {
		g := New("g")
		g.TotalHeight = 100 // less than clearance + shelves
		DistributeTotalHeight(g)

		for i, h := range g.LevelHeights {
			if !almostEqual(h, DefaultLevelHeight) {
				t.Errorf("LevelHeights[%d] = %.1f, want untouched", i, h)
			}
		}
	})
}

func TestReconcileRoundTrip(t *testing.T) {
	g := New("g")
	g.LevelLocked[2] = true
	g.LevelHeights[2] = 420
	g.TotalHeight = 2200
	DistributeTotalHeight(g)

	want := g.TotalHeight
	UpdateTotalHeight(g)
	if math.Abs(g.TotalHeight-want) > HeightTolerance {
		t.Errorf("round trip drifted: %.4f -> %.4f", want, g.TotalHeight)
	}

	// Repeating the distribution with the same total is stable.
	before := append([]float64(nil), g.LevelHeights...)
	DistributeTotalHeight(g)
	for i := range before {
		if math.Abs(before[i]-g.LevelHeights[i]) > 1e-9 {
			t.Errorf("level %d moved on repeated distribution: %.4f -> %.4f", i, before[i], g.LevelHeights[i])
		}
	}
}
