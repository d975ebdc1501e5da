package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"bayplan/pkg/layout"
)

// The JSON wire shape mirrors the drawing one-to-one so external renderers
// can consume geometry and annotations without recomputing anything.

type jsonDrawing struct {
	Group       jsonGroup        `json:"group"`
	Parts       []jsonPart       `json:"parts"`
	Annotations []jsonAnnotation `json:"annotations"`
}

type jsonGroup struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type jsonPart struct {
	Role   string  `json:"role"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
}

type jsonAnnotation struct {
	X1          float64 `json:"x1"`
	Y1          float64 `json:"y1"`
	X2          float64 `json:"x2"`
	Y2          float64 `json:"y2"`
	Label       string  `json:"label"`
	Orientation string  `json:"orientation"`
}

// WriteJSON encodes a drawing as indented JSON and writes it to w.
func WriteJSON(d layout.Drawing, w io.Writer) error {
	out := jsonDrawing{
		Group: jsonGroup{
			ID:    d.Group.ID,
			Name:  d.Group.Name,
			Color: d.Group.Color,
		},
		Parts:       make([]jsonPart, len(d.Parts)),
		Annotations: make([]jsonAnnotation, len(d.Annotations)),
	}
	for i, p := range d.Parts {
		out.Parts[i] = jsonPart{
			Role:   string(p.Role),
			Left:   p.Left,
			Right:  p.Right,
			Bottom: p.Bottom,
			Top:    p.Top,
		}
	}
	for i, a := range d.Annotations {
		out.Annotations[i] = jsonAnnotation{
			X1: a.X1, Y1: a.Y1, X2: a.X2, Y2: a.Y2,
			Label:       a.Label,
			Orientation: string(a.Orientation),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// RenderJSON returns the drawing encoded as indented JSON.
func RenderJSON(d layout.Drawing) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
