package layout

import "bayplan/pkg/model"

// Drawing bundles everything a renderer or exporter needs for one group:
// the group itself (for color and naming), its geometry, and its dimension
// annotations.
type Drawing struct {
	Group       *model.BayGroup
	Parts       []Part
	Annotations []Annotation
}

// Compose runs Plan and Annotate for a group. The group must already have
// passed model.Validate; Compose does not gate.
func Compose(g *model.BayGroup) Drawing {
	parts := Plan(g)
	return Drawing{
		Group:       g,
		Parts:       parts,
		Annotations: Annotate(g, parts),
	}
}
