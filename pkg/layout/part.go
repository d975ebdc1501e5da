package layout

// Role identifies the structural function of a part.
type Role string

const (
	RoleSidePanel Role = "side_panel"
	RoleShelf     Role = "shelf"
	RoleDivider   Role = "divider"
	RoleTopCap    Role = "top_cap"
)

// Part is a single axis-aligned rectangle of the bay structure.
// All coordinates are millimetres in the drawing plane: x grows rightward
// from the left edge of the leftmost bay interior, y grows upward from the
// floor. Parts are produced fresh on every Plan call and owned solely by
// the caller.
type Part struct {
	Role        Role
	Left, Right float64
	Bottom, Top float64
}

// Width returns the horizontal span of the part.
func (p Part) Width() float64 { return p.Right - p.Left }

// Height returns the vertical span of the part.
func (p Part) Height() float64 { return p.Top - p.Bottom }

// CenterX returns the horizontal center point of the part.
func (p Part) CenterX() float64 { return (p.Left + p.Right) / 2 }

// CenterY returns the vertical center point of the part.
func (p Part) CenterY() float64 { return (p.Bottom + p.Top) / 2 }
