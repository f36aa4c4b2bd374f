package cadio

import "github.com/rehmanul/floorplan-engine/internal/geomx"

// Kind identifies the DXF entity type a RawEntity was extracted from. It is
// a closed tagged-variant enumeration rather than a free-form string match
// on the original DXF type name, per spec §9's redesign note: "prefer a
// tagged variant enumeration over entity kinds with exhaustive match, so
// adding a new entity kind is a compile-error."
type Kind int

const (
	KindLine Kind = iota
	KindLWPolyline
	KindPolyline
	KindArc
	KindCircle
	KindEllipse
	KindSpline
	KindHatch
	KindSolid
	Kind3DFace
)

// String returns the DXF entity type name for the given Kind.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "LINE"
	case KindLWPolyline:
		return "LWPOLYLINE"
	case KindPolyline:
		return "POLYLINE"
	case KindArc:
		return "ARC"
	case KindCircle:
		return "CIRCLE"
	case KindEllipse:
		return "ELLIPSE"
	case KindSpline:
		return "SPLINE"
	case KindHatch:
		return "HATCH"
	case KindSolid:
		return "SOLID"
	case Kind3DFace:
		return "3DFACE"
	default:
		return "UNKNOWN"
	}
}

// RawEntity is one DXF entity reduced to the fields the zone classifier and
// geometry extractors need: its kind, color/layer attributes (for
// classification), and enough raw geometry (vertices, center/radius, arc
// angles, ellipse axis/ratio, boundary loops) to build a polygon per spec
// §4.1's per-entity extraction rule.
type RawEntity struct {
	Kind Kind

	Layer      string
	ACIColor   uint16  // AutoCAD Color Index, 0-256.
	TrueColor  *uint32 // 24-bit packed RGB, if the entity carries one.

	// Vertices holds LINE endpoints, LWPOLYLINE/POLYLINE vertices, or
	// SPLINE control/fit points (pre-flattening).
	Vertices []geomx.Point

	// Center, Radius, StartAngle, EndAngle describe ARC and CIRCLE
	// entities. Angles are radians, measured counter-clockwise from +X.
	Center     geomx.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64

	// MajorAxisEnd and Ratio describe ELLIPSE entities: the endpoint of the
	// major axis relative to Center, and the minor/major axis ratio.
	MajorAxisEnd geomx.Point
	Ratio        float64

	// BoundaryLoops holds one or more closed point loops for HATCH, SOLID,
	// and 3DFACE entities, each of which may define multiple paths.
	BoundaryLoops [][]geomx.Point
}
