package layout

import (
	"math"
	"testing"

	"bayplan/pkg/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func partsByRole(parts []Part, role Role) []Part {
	var out []Part
	for _, p := range parts {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out
}

func TestPlanPartCounts(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(g *model.BayGroup)
		panels   int
		dividers int
		shelves  int
		caps     int
	}{
		{
			"default single bay",
			func(g *model.BayGroup) {},
			2, 3, 5, 1,
		},
		{
			"two bays",
			func(g *model.BayGroup) { g.NumBays = 2 },
			2, 6, 5, 1,
		},
		{
			"no top cap",
			func(g *model.BayGroup) {
				g.HasTopCap = false
				model.UpdateTotalHeight(g)
			},
			2, 3, 5, 0,
		},
		{
			"single column has no dividers",
			func(g *model.BayGroup) { g.NumCols = 1 },
			2, 0, 5, 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := model.New("g")
			tt.mutate(g)

			parts := Plan(g)
			if got := len(partsByRole(parts, RoleSidePanel)); got != tt.panels {
				t.Errorf("side panels = %d, want %d", got, tt.panels)
			}
			if got := len(partsByRole(parts, RoleDivider)); got != tt.dividers {
				t.Errorf("dividers = %d, want %d", got, tt.dividers)
			}
			if got := len(partsByRole(parts, RoleShelf)); got != tt.shelves {
				t.Errorf("shelves = %d, want %d", got, tt.shelves)
			}
			if got := len(partsByRole(parts, RoleTopCap)); got != tt.caps {
				t.Errorf("top caps = %d, want %d", got, tt.caps)
			}
		})
	}
}

func TestPlanSidePanels(t *testing.T) {
	g := model.New("g")
	g.NumBays = 2
	panels := partsByRole(Plan(g), RoleSidePanel)

	left, right := panels[0], panels[1]
	if !almostEqual(left.Left, -18) || !almostEqual(left.Right, 0) {
		t.Errorf("left panel spans [%.1f, %.1f], want [-18.0, 0.0]", left.Left, left.Right)
	}
	if !almostEqual(right.Left, 2100) || !almostEqual(right.Right, 2118) {
		t.Errorf("right panel spans [%.1f, %.1f], want [2100.0, 2118.0]", right.Left, right.Right)
	}
	for _, p := range panels {
		if !almostEqual(p.Bottom, 0) || !almostEqual(p.Top, g.TotalHeight) {
			t.Errorf("panel spans [%.1f, %.1f] vertically, want [0, %.1f]", p.Bottom, p.Top, g.TotalHeight)
		}
	}
}

func TestPlanDividers(t *testing.T) {
	g := model.New("g") // 4 columns, bin width 249
	dividers := partsByRole(Plan(g), RoleDivider)

	wantLefts := []float64{249, 516, 783}
	if len(dividers) != len(wantLefts) {
		t.Fatalf("dividers = %d, want %d", len(dividers), len(wantLefts))
	}
	for i, d := range dividers {
		if !almostEqual(d.Left, wantLefts[i]) {
			t.Errorf("divider %d left = %.1f, want %.1f", i, d.Left, wantLefts[i])
		}
		if !almostEqual(d.Width(), g.BinSplitThickness) {
			t.Errorf("divider %d width = %.1f, want %.1f", i, d.Width(), g.BinSplitThickness)
		}
		if !almostEqual(d.Bottom, g.GroundClearance) {
			t.Errorf("divider %d bottom = %.1f, want %.1f", i, d.Bottom, g.GroundClearance)
		}
		// Dividers stop under the top cap.
		if !almostEqual(d.Top, g.TotalHeight-g.ShelfThickness) {
			t.Errorf("divider %d top = %.1f, want %.1f", i, d.Top, g.TotalHeight-g.ShelfThickness)
		}
	}

	// The last bin must close exactly at the bay's right edge.
	last := dividers[len(dividers)-1]
	if !almostEqual(last.Right+g.BinWidth(), g.BayWidth) {
		t.Errorf("last bin ends at %.1f, want %.1f", last.Right+g.BinWidth(), g.BayWidth)
	}
}

func TestPlanDividersWithoutTopCap(t *testing.T) {
	g := model.New("g")
	g.HasTopCap = false
	model.UpdateTotalHeight(g)

	for i, d := range partsByRole(Plan(g), RoleDivider) {
		if !almostEqual(d.Top, g.TotalHeight) {
			t.Errorf("divider %d top = %.1f, want full height %.1f", i, d.Top, g.TotalHeight)
		}
	}
}

func TestPlanShelves(t *testing.T) {
	g := model.New("g")
	parts := Plan(g)
	shelves := partsByRole(parts, RoleShelf)

	// Bottom-up: shelf at the clearance line, then net height, then the next.
	wantBottoms := []float64{50, 418, 786, 1154, 1522}
	for i, s := range shelves {
		if !almostEqual(s.Bottom, wantBottoms[i]) {
			t.Errorf("shelf %d bottom = %.1f, want %.1f", i, s.Bottom, wantBottoms[i])
		}
		if !almostEqual(s.Height(), g.ShelfThickness) {
			t.Errorf("shelf %d height = %.1f, want %.1f", i, s.Height(), g.ShelfThickness)
		}
		if !almostEqual(s.Left, -g.SidePanelThickness) || !almostEqual(s.Right, g.CoreWidth()+g.SidePanelThickness) {
			t.Errorf("shelf %d spans [%.1f, %.1f], want full group width", i, s.Left, s.Right)
		}
	}

	caps := partsByRole(parts, RoleTopCap)
	if len(caps) != 1 {
		t.Fatalf("top caps = %d, want 1", len(caps))
	}
	if !almostEqual(caps[0].Bottom, 1890) || !almostEqual(caps[0].Top, 1908) {
		t.Errorf("top cap spans [%.1f, %.1f], want [1890.0, 1908.0]", caps[0].Bottom, caps[0].Top)
	}
}

func TestPlanBinTiling(t *testing.T) {
	g := model.New("g")
	g.NumBays = 3
	g.NumCols = 5
	model.UpdateTotalHeight(g)

	// Bins plus splits must tile each bay exactly.
	span := float64(g.NumCols)*g.BinWidth() + float64(g.NumCols-1)*g.BinSplitThickness
	if !almostEqual(span, g.BayWidth) {
		t.Fatalf("bin tiling spans %.4f, want %.1f", span, g.BayWidth)
	}

	// Vertical parts never overlap each other horizontally.
	var vertical []Part
	parts := Plan(g)
	vertical = append(vertical, partsByRole(parts, RoleSidePanel)...)
	vertical = append(vertical, partsByRole(parts, RoleDivider)...)
	for i := range vertical {
		for j := i + 1; j < len(vertical); j++ {
			a, b := vertical[i], vertical[j]
			if a.Left < b.Right && b.Left < a.Right {
				t.Errorf("parts %d and %d overlap: [%.1f,%.1f] vs [%.1f,%.1f]",
					i, j, a.Left, a.Right, b.Left, b.Right)
			}
		}
	}

	// Shelves stack without overlapping each other.
	shelves := partsByRole(parts, RoleShelf)
	shelves = append(shelves, partsByRole(parts, RoleTopCap)...)
	for i := range shelves {
		for j := i + 1; j < len(shelves); j++ {
			a, b := shelves[i], shelves[j]
			if a.Bottom < b.Top && b.Bottom < a.Top {
				t.Errorf("shelves %d and %d overlap vertically", i, j)
			}
		}
	}
}

func TestPlanDeterministic(t *testing.T) {
	g := model.New("g")
	g.NumBays = 2

	a := Plan(g)
	b := Plan(g)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("part %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
