package dxf

// Entity type names as they appear on code-0 marker tags.
const (
	TypeLine   = "LINE"
	TypeCircle = "CIRCLE"
	TypeArc    = "ARC"
)

// Common holds the fields shared by all supported entities. Color is the
// per-entity override; nil means the color is inherited from the layer.
type Common struct {
	LayerName string
	Color     *int
}

// Entity is one drawing entity that survives cleaning: a Line, Circle, or
// Arc. Entities reference layers by name only and never reference each
// other.
type Entity interface {
	// Type returns the DXF marker name of the entity.
	Type() string
}

// Line is a straight segment between two points.
type Line struct {
	Common
	Start, End Point3
}

func (*Line) Type() string { return TypeLine }

// Circle is a full circle around a center point.
type Circle struct {
	Common
	Center Point3
	Radius Real
}

func (*Circle) Type() string { return TypeCircle }

// Arc is a circular arc swept counterclockwise from StartAngle to EndAngle,
// both in degrees.
type Arc struct {
	Common
	Center     Point3
	Radius     Real
	StartAngle Real
	EndAngle   Real
}

func (*Arc) Type() string { return TypeArc }
