// Package sink renders a composed bay drawing into output formats.
//
// SVG is the native format; PNG and PDF are derived from it through
// rsvg-convert. JSON carries the raw geometry and annotations for external
// consumers (the preview server, other renderers).
package sink

import (
	"bytes"
	"fmt"

	"bayplan/pkg/layout"
	"bayplan/pkg/render/styles"
)

const (
	// padRatio sets the viewport padding relative to the structure size.
	// The effective padding scales with the zoom factor.
	padRatio = 0.06
	// fontRatio sets label text size relative to the structure size.
	fontRatio = 0.02
	// defaultMinVisual is the minimum drawn thickness in millimetres for
	// parts that would otherwise be too thin to see.
	defaultMinVisual = 1.0
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       styles.Style
	zoom        float64
	annotations bool
	minVisual   float64
}

// WithStyle selects the drawing style (default: workshop).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithZoom sets the display zoom factor. Values below 1 are clamped to 1;
// larger values widen the padding around the structure.
func WithZoom(z float64) SVGOption {
	return func(r *svgRenderer) {
		if z > 1 {
			r.zoom = z
		}
	}
}

// WithoutAnnotations suppresses dimension lines, drawing geometry only.
func WithoutAnnotations() SVGOption { return func(r *svgRenderer) { r.annotations = false } }

// WithMinVisual sets the minimum drawn part thickness in millimetres.
func WithMinVisual(mm float64) SVGOption { return func(r *svgRenderer) { r.minVisual = mm } }

// RenderSVG renders one drawing as a standalone SVG document. The output is
// deterministic: parts appear in the engine's emission order and all
// coordinates are formatted with fixed precision.
func RenderSVG(d layout.Drawing, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	minX, minY, maxX, maxY := bounds(d, r.annotations)
	maxDim := max(maxX-minX, maxY-minY)
	pad := padRatio * maxDim * r.zoom
	fontSize := fontRatio * maxDim

	// SVG y points down; flip around the top of the bounding box.
	flip := func(y float64) float64 { return maxY - y }

	width := (maxX - minX) + 2*pad
	height := (maxY - minY) + 2*pad

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		minX-pad, -pad, width, height, width, height)

	if bg := r.style.Background(); bg != "" {
		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			minX-pad, -pad, width, height, bg)
	}
	r.style.RenderDefs(&buf)

	for _, p := range d.Parts {
		w := p.Width()
		h := p.Height()
		x := p.Left
		top := p.Top
		// Too-thin parts are widened for visibility only; the geometry
		// itself is never altered.
		if w < r.minVisual {
			x = p.CenterX() - r.minVisual/2
			w = r.minVisual
		}
		if h < r.minVisual {
			top = p.CenterY() + r.minVisual/2
			h = r.minVisual
		}
		r.style.RenderPart(&buf, styles.Shape{
			Role: string(p.Role),
			X:    x,
			Y:    flip(top),
			W:    w,
			H:    h,
			Fill: d.Group.Color,
		})
	}

	if r.annotations {
		for _, a := range d.Annotations {
			r.style.RenderDimension(&buf, styles.Dimension{
				X1: a.X1, Y1: flip(a.Y1),
				X2: a.X2, Y2: flip(a.Y2),
				Label:    a.Label,
				Vertical: a.Orientation == layout.Vertical,
				FontSize: fontSize,
			})
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		style:       styles.Workshop{},
		zoom:        1.0,
		annotations: true,
		minVisual:   defaultMinVisual,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// bounds returns the bounding box of the drawing, including annotation
// endpoints when they are rendered.
func bounds(d layout.Drawing, annotations bool) (minX, minY, maxX, maxY float64) {
	first := true
	grow := func(x, y float64) {
		if first {
			minX, maxX, minY, maxY = x, x, y, y
			first = false
			return
		}
		minX = min(minX, x)
		maxX = max(maxX, x)
		minY = min(minY, y)
		maxY = max(maxY, y)
	}
	for _, p := range d.Parts {
		grow(p.Left, p.Bottom)
		grow(p.Right, p.Top)
	}
	if annotations {
		for _, a := range d.Annotations {
			grow(a.X1, a.Y1)
			grow(a.X2, a.Y2)
		}
	}
	return minX, minY, maxX, maxY
}
