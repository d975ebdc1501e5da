// Package export turns an ordered collection of bay groups into the two
// terminal artifacts: a multi-page drawing deck (PDF) and a bill-of-
// materials workbook (XLSX).
//
// Export failures are local to one group: a group that fails validation is
// skipped and reported, and the remaining groups still export. Nothing here
// is fatal to the session.
package export

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/log"

	"bayplan/pkg/errors"
	"bayplan/pkg/layout"
	"bayplan/pkg/model"
	"bayplan/pkg/render"
	"bayplan/pkg/render/sink"
	"bayplan/pkg/render/styles"
)

// DeckOptions configures deck generation.
type DeckOptions struct {
	Style styles.Style // drawing style for the per-group pages (default workshop)
	Zoom  float64      // view padding factor, >= 1
}

// summary page geometry, drawing units
const (
	pageWidth     = 1122.0 // A4 landscape at 96 dpi
	pageHeight    = 794.0
	pageMargin    = 60.0
	titleSize     = 28.0
	rowTextSize   = 15.0
	summaryRowGap = 26.0
)

// BuildPages composes the deck's SVG pages: a summary page first, then one
// drawing page per valid group. Groups that fail validation are skipped and
// returned as errors; callers surface them and continue.
func BuildPages(groups []*model.BayGroup, opts DeckOptions) (pages [][]byte, skipped []error) {
	style := opts.Style
	if style == nil {
		style = styles.Workshop{}
	}

	valid := make([]*model.BayGroup, 0, len(groups))
	for _, g := range groups {
		if errs := model.Validate(g); len(errs) > 0 {
			skipped = append(skipped, errors.Wrap(errors.ErrCodeExportFailed, errs,
				"group %q failed validation", g.Name))
			continue
		}
		valid = append(valid, g)
	}

	pages = append(pages, summaryPage(valid))
	for _, g := range valid {
		svgOpts := []sink.SVGOption{sink.WithStyle(style)}
		if opts.Zoom > 1 {
			svgOpts = append(svgOpts, sink.WithZoom(opts.Zoom))
		}
		pages = append(pages, sink.RenderSVG(layout.Compose(g), svgOpts...))
	}
	return pages, skipped
}

// Deck builds the full deck PDF. Skipped groups are logged through logger
// and do not abort the export; the error return is reserved for the deck
// itself being unbuildable (no valid groups, conversion failure).
func Deck(logger *log.Logger, groups []*model.BayGroup, opts DeckOptions) ([]byte, error) {
	pages, skipped := BuildPages(groups, opts)
	for _, err := range skipped {
		logger.Warnf("Skipping group: %s", errors.UserMessage(err))
	}
	if len(pages) == 1 && len(groups) > 0 && len(skipped) == len(groups) {
		return nil, errors.New(errors.ErrCodeExportFailed, "every group failed validation")
	}

	pdf, err := render.ToMultiPagePDF(pages)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "convert deck to PDF")
	}
	return pdf, nil
}

// summaryPage draws the component-count table: one row per group and a
// totals row, as native SVG text.
func summaryPage(groups []*model.BayGroup) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		pageWidth, pageHeight, pageWidth, pageHeight)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.0f" height="%.0f" fill="white"/>`+"\n", pageWidth, pageHeight)
	fmt.Fprintf(&buf, `  <text x="%.0f" y="%.0f" font-size="%.0f" font-weight="bold">Bay Group Summary</text>`+"\n",
		pageMargin, pageMargin+titleSize, titleSize)

	cols := []struct {
		title string
		x     float64
	}{
		{"Group", pageMargin},
		{"Bays", 420},
		{"Side Panels", 520},
		{"Shelves", 660},
		{"Dividers", 780},
		{"Bins", 900},
	}

	y := pageMargin + titleSize + 2*summaryRowGap
	for _, c := range cols {
		fmt.Fprintf(&buf, `  <text x="%.0f" y="%.0f" font-size="%.0f" font-weight="bold">%s</text>`+"\n",
			c.x, y, rowTextSize, c.title)
	}
	fmt.Fprintf(&buf, `  <line x1="%.0f" y1="%.0f" x2="%.0f" y2="%.0f" stroke="black" stroke-width="1"/>`+"\n",
		pageMargin, y+8, pageWidth-pageMargin, y+8)

	var totalPanels, totalShelves, totalDividers, totalBins int
	for _, g := range groups {
		y += summaryRowGap
		row := []string{
			g.Name,
			fmt.Sprintf("%d", g.NumBays),
			"2",
			fmt.Sprintf("%d", g.ShelfCount()),
			fmt.Sprintf("%d", g.DividerCount()),
			fmt.Sprintf("%d", g.BinCount()),
		}
		for i, cell := range row {
			fmt.Fprintf(&buf, `  <text x="%.0f" y="%.0f" font-size="%.0f">%s</text>`+"\n",
				cols[i].x, y, rowTextSize, xmlEscape(cell))
		}
		totalPanels += 2
		totalShelves += g.ShelfCount()
		totalDividers += g.DividerCount()
		totalBins += g.BinCount()
	}

	y += summaryRowGap
	fmt.Fprintf(&buf, `  <line x1="%.0f" y1="%.0f" x2="%.0f" y2="%.0f" stroke="black" stroke-width="1"/>`+"\n",
		pageMargin, y-summaryRowGap+8, pageWidth-pageMargin, y-summaryRowGap+8)
	totals := []string{"Total", "", fmt.Sprintf("%d", totalPanels), fmt.Sprintf("%d", totalShelves),
		fmt.Sprintf("%d", totalDividers), fmt.Sprintf("%d", totalBins)}
	for i, cell := range totals {
		if cell == "" {
			continue
		}
		fmt.Fprintf(&buf, `  <text x="%.0f" y="%.0f" font-size="%.0f" font-weight="bold">%s</text>`+"\n",
			cols[i].x, y, rowTextSize, cell)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
