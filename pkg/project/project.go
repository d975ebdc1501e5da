// Package project reads and writes bayplan design files.
//
// A design file is a TOML document with an optional [defaults] table and
// one [[group]] table per bay group:
//
//	[defaults]
//	bay_width = 1050.0
//	shelf_thickness = 18.0
//	num_cols = 4
//	num_rows = 5
//	level_height = 350.0
//
//	[[group]]
//	name = "Workshop wall"
//	num_bays = 2
//	has_top_cap = true
//	level_heights = [350.0, 350.0, 350.0, 350.0, 350.0]
//
// Groups inherit unset fields from the defaults. A missing total_height is
// derived from the level heights, so hand-written files never need to do
// the shelf arithmetic themselves. Loading assigns fresh IDs to groups that
// lack one; saving writes IDs back so later loads keep identity stable.
package project

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"bayplan/pkg/errors"
	"bayplan/pkg/model"
)

// Defaults are the file-level fallbacks applied to every group. The
// clearance is a pointer so an explicit zero survives, same as the
// per-group field.
type Defaults struct {
	NumBays            int      `toml:"num_bays,omitempty"`
	BayWidth           float64  `toml:"bay_width,omitempty"`
	GroundClearance    *float64 `toml:"ground_clearance,omitempty"`
	ShelfThickness     float64  `toml:"shelf_thickness,omitempty"`
	SidePanelThickness float64  `toml:"side_panel_thickness,omitempty"`
	BinSplitThickness  float64  `toml:"bin_split_thickness,omitempty"`
	NumCols            int      `toml:"num_cols,omitempty"`
	NumRows            int      `toml:"num_rows,omitempty"`
	LevelHeight        float64  `toml:"level_height,omitempty"`
	Color              string   `toml:"color,omitempty"`
}

// groupFile is the TOML shape of one [[group]] table. Pointer fields
// distinguish "omitted" from an explicit zero/false.
type groupFile struct {
	ID                 string    `toml:"id,omitempty"`
	Name               string    `toml:"name"`
	NumBays            int       `toml:"num_bays,omitempty"`
	BayWidth           float64   `toml:"bay_width,omitempty"`
	GroundClearance    *float64  `toml:"ground_clearance,omitempty"`
	HasTopCap          *bool     `toml:"has_top_cap,omitempty"`
	ShelfThickness     float64   `toml:"shelf_thickness,omitempty"`
	SidePanelThickness float64   `toml:"side_panel_thickness,omitempty"`
	BinSplitThickness  float64   `toml:"bin_split_thickness,omitempty"`
	NumCols            int       `toml:"num_cols,omitempty"`
	NumRows            int       `toml:"num_rows,omitempty"`
	LevelHeights       []float64 `toml:"level_heights,omitempty"`
	LevelLocked        []bool    `toml:"level_locked,omitempty"`
	TotalHeight        float64   `toml:"total_height,omitempty"`
	Color              string    `toml:"color,omitempty"`
}

type designFile struct {
	Defaults Defaults    `toml:"defaults"`
	Groups   []groupFile `toml:"group"`
}

// Project is the in-memory form of one design file: an ordered, exclusively
// owned collection of bay groups. The host application passes it into
// render and export calls; nothing reaches into ambient state.
type Project struct {
	Path     string
	Defaults Defaults
	Groups   []*model.BayGroup
}

// Load reads and decodes a design file, applying defaults, deriving
// missing total heights, and assigning IDs where absent.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "design file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "read design file %s", path)
	}

	var file designFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "parse design file %s", path)
	}
	if len(file.Groups) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidProject, "design file %s defines no groups", path)
	}

	p := &Project{Path: path, Defaults: file.Defaults}
	for i, gf := range file.Groups {
		g, err := buildGroup(gf, file.Defaults)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "group %d (%q)", i+1, gf.Name)
		}
		p.Groups = append(p.Groups, g)
	}
	return p, nil
}

// Save writes the project back to path in the same TOML shape Load reads,
// including group IDs so identity survives round trips.
func (p *Project) Save(path string) error {
	file := designFile{Defaults: p.Defaults, Groups: make([]groupFile, len(p.Groups))}
	for i, g := range p.Groups {
		clearance := g.GroundClearance
		topCap := g.HasTopCap
		file.Groups[i] = groupFile{
			ID:                 g.ID,
			Name:               g.Name,
			NumBays:            g.NumBays,
			BayWidth:           g.BayWidth,
			GroundClearance:    &clearance,
			HasTopCap:          &topCap,
			ShelfThickness:     g.ShelfThickness,
			SidePanelThickness: g.SidePanelThickness,
			BinSplitThickness:  g.BinSplitThickness,
			NumCols:            g.NumCols,
			NumRows:            g.NumRows,
			LevelHeights:       g.LevelHeights,
			LevelLocked:        g.LevelLocked,
			TotalHeight:        g.TotalHeight,
			Color:              g.Color,
		}
	}

	var buf bytes.Buffer
	buf.WriteString("# bayplan design file\n\n")
	if err := toml.NewEncoder(&buf).Encode(file); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode design file")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write design file %s", path)
	}
	return nil
}

// Find returns the group matching an ID or, failing that, a name.
func (p *Project) Find(idOrName string) (*model.BayGroup, error) {
	for _, g := range p.Groups {
		if g.ID == idOrName {
			return g, nil
		}
	}
	for _, g := range p.Groups {
		if g.Name == idOrName {
			return g, nil
		}
	}
	return nil, errors.New(errors.ErrCodeGroupNotFound, "no group with id or name %q", idOrName)
}

// buildGroup merges one group table with the file defaults into a model
// value and restores the height invariant.
func buildGroup(gf groupFile, def Defaults) (*model.BayGroup, error) {
	g := &model.BayGroup{
		ID:                 gf.ID,
		Name:               gf.Name,
		NumBays:            firstInt(gf.NumBays, def.NumBays, 1),
		BayWidth:           firstFloat(gf.BayWidth, def.BayWidth, model.DefaultBayWidth),
		ShelfThickness:     firstFloat(gf.ShelfThickness, def.ShelfThickness, model.DefaultShelfThickness),
		SidePanelThickness: firstFloat(gf.SidePanelThickness, def.SidePanelThickness, model.DefaultSidePanelThick),
		BinSplitThickness:  firstFloat(gf.BinSplitThickness, def.BinSplitThickness, model.DefaultBinSplitThickness),
		NumCols:            firstInt(gf.NumCols, def.NumCols, model.DefaultNumCols),
		NumRows:            firstInt(gf.NumRows, def.NumRows, model.DefaultNumRows),
		Color:              firstString(gf.Color, def.Color, model.DefaultColor),
		HasTopCap:          true,
		GroundClearance:    model.DefaultGroundClearance,
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Name == "" {
		return nil, fmt.Errorf("group has no name")
	}
	if gf.HasTopCap != nil {
		g.HasTopCap = *gf.HasTopCap
	}
	switch {
	case gf.GroundClearance != nil:
		g.GroundClearance = *gf.GroundClearance
	case def.GroundClearance != nil:
		g.GroundClearance = *def.GroundClearance
	}

	if gf.NumRows == 0 && len(gf.LevelHeights) > 0 {
		g.NumRows = len(gf.LevelHeights)
	}
	// A negative row count would blow up the slice allocation below; the
	// Validator never gets a chance to see it, so reject it here.
	if g.NumRows < 1 {
		return nil, fmt.Errorf("row count must be at least 1, got %d", g.NumRows)
	}
	levelDefault := firstFloat(0, def.LevelHeight, model.DefaultLevelHeight)
	g.LevelHeights = make([]float64, g.NumRows)
	g.LevelLocked = make([]bool, g.NumRows)
	for i := 0; i < g.NumRows; i++ {
		if i < len(gf.LevelHeights) {
			g.LevelHeights[i] = gf.LevelHeights[i]
		} else {
			g.LevelHeights[i] = levelDefault
		}
		if i < len(gf.LevelLocked) {
			g.LevelLocked[i] = gf.LevelLocked[i]
		}
	}

	if gf.TotalHeight > 0 {
		g.TotalHeight = gf.TotalHeight
	} else {
		model.UpdateTotalHeight(g)
	}
	return g, nil
}

func firstFloat(vals ...float64) float64 {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstInt(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
