package styles

import (
	"bytes"
	"fmt"
)

// Blueprint draws white line-work on a deep blue background, ignoring the
// group's display color. Dimension lines use end ticks instead of arrows.
type Blueprint struct{}

func (Blueprint) Name() string       { return "blueprint" }
func (Blueprint) Background() string { return "#16355c" }

func (Blueprint) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <pattern id="bp-hatch" width="6" height="6" patternTransform="rotate(45)" patternUnits="userSpaceOnUse">
      <line x1="0" y1="0" x2="0" y2="6" stroke="#e8eef7" stroke-width="0.6"/>
    </pattern>
  </defs>
`)
}

func (Blueprint) RenderPart(buf *bytes.Buffer, s Shape) {
	fmt.Fprintf(buf,
		`  <rect class="part part-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="url(#bp-hatch)" stroke="#e8eef7" stroke-width="1"/>`+"\n",
		s.Role, s.X, s.Y, s.W, s.H)
}

func (Blueprint) RenderDimension(buf *bytes.Buffer, d Dimension) {
	fmt.Fprintf(buf,
		`  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#e8eef7" stroke-width="0.8"/>`+"\n",
		d.X1, d.Y1, d.X2, d.Y2)

	// End ticks perpendicular to the line.
	tick := d.FontSize / 3
	if d.Vertical {
		for _, y := range []float64{d.Y1, d.Y2} {
			fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#e8eef7" stroke-width="0.8"/>`+"\n",
				d.X1-tick, y, d.X1+tick, y)
		}
	} else {
		for _, x := range []float64{d.X1, d.X2} {
			fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#e8eef7" stroke-width="0.8"/>`+"\n",
				x, d.Y1-tick, x, d.Y1+tick)
		}
	}

	cx := (d.X1 + d.X2) / 2
	cy := (d.Y1 + d.Y2) / 2
	if d.Vertical {
		fmt.Fprintf(buf,
			`  <text x="%.1f" y="%.1f" font-size="%.1f" fill="#e8eef7" text-anchor="middle" transform="rotate(-90 %.1f %.1f)" dy="-0.4em">%s</text>`+"\n",
			cx, cy, d.FontSize, cx, cy, d.Label)
		return
	}
	fmt.Fprintf(buf,
		`  <text x="%.1f" y="%.1f" font-size="%.1f" fill="#e8eef7" text-anchor="middle" dy="-0.4em">%s</text>`+"\n",
		cx, cy, d.FontSize, d.Label)
}

var _ Style = Blueprint{}
