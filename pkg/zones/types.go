package zones

import "github.com/rehmanul/floorplan-engine/internal/geomx"

// Kind is one of the four disjoint semantic layers a raw entity is sorted
// into. It is a closed tagged-variant enumeration, not a free-form string,
// so a new kind is a compile error everywhere it must be handled.
type Kind int

const (
	Wall Kind = iota
	Restricted
	Entrance
	OpenSpace
)

func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Restricted:
		return "restricted"
	case Entrance:
		return "entrance"
	case OpenSpace:
		return "open_space"
	default:
		return "unknown"
	}
}

// RawZone is one classified polygon together with the attributes the
// classifier consulted to produce it. An entity can emit zero or more
// RawZones (a HATCH with several boundary loops emits one per loop, for
// instance). RawZones are transient: partition consumes them and returns a
// ZoneSet.
type RawZone struct {
	Kind       Kind
	Polygon    geomx.Polygon
	LayerName  string
	ACIColor   uint16
	TrueColor  *uint32
}

// ZoneSet holds the four classified layers as independent polygon lists.
// Walls are treated as linear structures and may overlap each other;
// restricted, entrances, and open_spaces are guaranteed disjoint in area
// once Space has recomputed OpenSpaces (see pkg/space).
type ZoneSet struct {
	Walls       []geomx.Polygon
	Restricted  []geomx.Polygon
	Entrances   []geomx.Polygon
	OpenSpaces  []geomx.Polygon
}

// Bounds returns the axis-aligned envelope of every polygon across all four
// layers. Panics-free on an empty set: returns the zero Rect.
func (z *ZoneSet) Bounds() geomx.Rect {
	first := true
	var acc geomx.Rect
	consider := func(polys []geomx.Polygon) {
		for _, p := range polys {
			b := p.Bounds()
			if first {
				acc = b
				first = false
				continue
			}
			acc = acc.Union(b)
		}
	}
	consider(z.Walls)
	consider(z.Restricted)
	consider(z.Entrances)
	consider(z.OpenSpaces)
	return acc
}

// AsMultiPolygon flattens a polygon slice into a geomx.MultiPolygon, the
// shape the boolean-op helpers in internal/geomx expect.
func AsMultiPolygon(polys []geomx.Polygon) geomx.MultiPolygon {
	mp := make(geomx.MultiPolygon, len(polys))
	copy(mp, polys)
	return mp
}
