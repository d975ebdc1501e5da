package styles

import (
	"bytes"
	"fmt"
)

// Workshop is the default style: flat single-color parts on a white
// background with black dimension lines, the look of the original paper
// drawings this tool replaces.
type Workshop struct{}

func (Workshop) Name() string       { return "workshop" }
func (Workshop) Background() string { return "" }

func (Workshop) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <marker id="dim-arrow" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="7" markerHeight="7" orient="auto-start-reverse">
      <path d="M 0 0 L 10 5 L 0 10 z" fill="black"/>
    </marker>
  </defs>
`)
}

func (Workshop) RenderPart(buf *bytes.Buffer, s Shape) {
	fmt.Fprintf(buf,
		`  <rect class="part part-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#333" stroke-width="0.5"/>`+"\n",
		s.Role, s.X, s.Y, s.W, s.H, s.Fill)
}

func (Workshop) RenderDimension(buf *bytes.Buffer, d Dimension) {
	fmt.Fprintf(buf,
		`  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="black" stroke-width="1" marker-start="url(#dim-arrow)" marker-end="url(#dim-arrow)"/>`+"\n",
		d.X1, d.Y1, d.X2, d.Y2)

	cx := (d.X1 + d.X2) / 2
	cy := (d.Y1 + d.Y2) / 2
	if d.Vertical {
		fmt.Fprintf(buf,
			`  <text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" transform="rotate(-90 %.1f %.1f)" dy="-0.4em">%s</text>`+"\n",
			cx, cy, d.FontSize, cx, cy, d.Label)
		return
	}
	fmt.Fprintf(buf,
		`  <text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" dy="-0.4em">%s</text>`+"\n",
		cx, cy, d.FontSize, d.Label)
}

var _ Style = Workshop{}
