package export

import (
	"math"

	"github.com/xuri/excelize/v2"

	"bayplan/pkg/errors"
	"bayplan/pkg/layout"
	"bayplan/pkg/model"
)

const (
	sheetSummary = "Summary"
	sheetCutList = "Cut List"
)

// BuildBOM assembles the bill-of-materials workbook for the given groups:
// a Summary sheet with per-group component counts and a totals row, and a
// Cut List sheet with one row per distinct part size. Groups that fail
// validation are skipped and reported like deck pages.
//
// The caller owns the returned file and is responsible for closing it.
func BuildBOM(groups []*model.BayGroup) (*excelize.File, []error, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeExportFailed, err, "create summary sheet")
	}
	if _, err := f.NewSheet(sheetCutList); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeExportFailed, err, "create cut list sheet")
	}

	var skipped []error
	valid := make([]*model.BayGroup, 0, len(groups))
	for _, g := range groups {
		if errs := model.Validate(g); len(errs) > 0 {
			skipped = append(skipped, errors.Wrap(errors.ErrCodeExportFailed, errs,
				"group %q failed validation", g.Name))
			continue
		}
		valid = append(valid, g)
	}

	if err := writeSummary(f, valid); err != nil {
		return nil, nil, err
	}
	if err := writeCutList(f, valid); err != nil {
		return nil, nil, err
	}
	return f, skipped, nil
}

// WriteBOM builds the workbook and saves it to path.
func WriteBOM(groups []*model.BayGroup, path string) ([]error, error) {
	f, skipped, err := BuildBOM(groups)
	if err != nil {
		return skipped, err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return skipped, errors.Wrap(errors.ErrCodeExportFailed, err, "save workbook %s", path)
	}
	return skipped, nil
}

func writeSummary(f *excelize.File, groups []*model.BayGroup) error {
	headers := []string{"Group", "Bays", "Rows", "Columns", "Side Panels", "Shelves", "Dividers", "Bins"}
	if err := writeRow(f, sheetSummary, 1, toAny(headers)); err != nil {
		return err
	}

	var totalPanels, totalShelves, totalDividers, totalBins int
	row := 2
	for _, g := range groups {
		cells := []any{g.Name, g.NumBays, g.NumRows, g.NumCols, 2, g.ShelfCount(), g.DividerCount(), g.BinCount()}
		if err := writeRow(f, sheetSummary, row, cells); err != nil {
			return err
		}
		totalPanels += 2
		totalShelves += g.ShelfCount()
		totalDividers += g.DividerCount()
		totalBins += g.BinCount()
		row++
	}

	totals := []any{"Total", "", "", "", totalPanels, totalShelves, totalDividers, totalBins}
	if err := writeRow(f, sheetSummary, row, totals); err != nil {
		return err
	}

	if err := f.SetColWidth(sheetSummary, "A", "A", 28); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "format summary sheet")
	}
	styleHeader(f, sheetSummary, len(headers))
	return nil
}

// cutKey groups identical part sizes so the cut list stays compact:
// a five-shelf group yields one shelf row with quantity five.
type cutKey struct {
	role string
	w, h float64
}

func writeCutList(f *excelize.File, groups []*model.BayGroup) error {
	headers := []string{"Group", "Part", "Quantity", "Width (mm)", "Height (mm)"}
	if err := writeRow(f, sheetCutList, 1, toAny(headers)); err != nil {
		return err
	}

	row := 2
	for _, g := range groups {
		counts := map[cutKey]int{}
		var order []cutKey
		for _, p := range layout.Plan(g) {
			key := cutKey{
				role: partLabel(p.Role),
				w:    round1(p.Width()),
				h:    round1(p.Height()),
			}
			if _, seen := counts[key]; !seen {
				order = append(order, key)
			}
			counts[key]++
		}
		for _, key := range order {
			cells := []any{g.Name, key.role, counts[key], key.w, key.h}
			if err := writeRow(f, sheetCutList, row, cells); err != nil {
				return err
			}
			row++
		}
	}

	if err := f.SetColWidth(sheetCutList, "A", "B", 24); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "format cut list sheet")
	}
	styleHeader(f, sheetCutList, len(headers))
	return nil
}

func partLabel(r layout.Role) string {
	switch r {
	case layout.RoleSidePanel:
		return "Side panel"
	case layout.RoleShelf:
		return "Shelf"
	case layout.RoleDivider:
		return "Divider"
	case layout.RoleTopCap:
		return "Top cap"
	}
	return string(r)
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return errors.Wrap(errors.ErrCodeExportFailed, err, "cell name")
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return errors.Wrap(errors.ErrCodeExportFailed, err, "write %s!%s", sheet, cell)
		}
	}
	return nil
}

// styleHeader bolds the header row; formatting failures are cosmetic and
// deliberately ignored.
func styleHeader(f *excelize.File, sheet string, cols int) {
	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return
	}
	last, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return
	}
	_ = f.SetCellStyle(sheet, "A1", last, styleID)
}

func toAny(strs []string) []any {
	out := make([]any, len(strs))
	for i, s := range strs {
		out[i] = s
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
