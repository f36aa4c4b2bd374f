package geomx

import (
	"math"

	polyclip "github.com/ctessum/polyclip-go"
)

// Point is a single 2D coordinate in the drawing's native unit (meters).
type Point struct {
	X, Y float64
}

// Ring is a simple closed polygon boundary: a sequence of vertices with an
// implicit closing edge from the last point back to the first. Rings must
// not self-intersect.
type Ring []Point

// Polygon is a single simple polygon: an outer ring plus zero or more holes.
// Wall, restricted, entrance, and open-space zones are all represented as
// Polygon values; ílots and corridors use the degenerate case of a single
// 4-point rectangular outer ring with no holes.
type Polygon struct {
	Outer Ring
	Holes []Ring
}

// MultiPolygon is an unordered set of disjoint Polygons. Boolean operations
// (Union, Difference, Intersection) return a MultiPolygon because splitting
// or merging regions can change the number of disjoint pieces.
type MultiPolygon []Polygon

// Rect is an axis-aligned rectangle, used for the envelope, placement
// candidates, and corridors before they are converted to Polygon form.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the rectangle's extent along X.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the rectangle's extent along Y.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Polygon converts the rectangle into a single closed 4-point ring, wound
// counter-clockwise.
func (r Rect) Polygon() Polygon {
	return Polygon{Outer: Ring{
		{X: r.MinX, Y: r.MinY},
		{X: r.MaxX, Y: r.MinY},
		{X: r.MaxX, Y: r.MaxY},
		{X: r.MinX, Y: r.MaxY},
	}}
}

// Union merges a and b into the rectangle spanning both.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

func ringToContour(r Ring) polyclip.Contour {
	c := make(polyclip.Contour, len(r))
	for i, p := range r {
		c[i] = polyclip.Point{X: p.X, Y: p.Y}
	}
	return c
}

func contourToRing(c polyclip.Contour) Ring {
	r := make(Ring, len(c))
	for i, p := range c {
		r[i] = Point{X: p.X, Y: p.Y}
	}
	return r
}

// toPolyclip flattens a Polygon's outer ring and holes into a single
// polyclip.Polygon (one contour per ring; polyclip treats winding order to
// distinguish outer rings from holes via its even-odd / non-zero fill rule
// during Construct).
func (p Polygon) toPolyclip() polyclip.Polygon {
	pc := make(polyclip.Polygon, 0, 1+len(p.Holes))
	pc = append(pc, ringToContour(p.Outer))
	for _, h := range p.Holes {
		pc = append(pc, ringToContour(h))
	}
	return pc
}

// toPolyclip flattens every polygon in the set into one polyclip.Polygon:
// each member's outer ring and each of its holes become one contour, with
// no marker distinguishing the two; polyclip tells them apart by its fill
// rule during Construct.
func (mp MultiPolygon) toPolyclip() polyclip.Polygon {
	var pc polyclip.Polygon
	for _, poly := range mp {
		pc = append(pc, ringToContour(poly.Outer))
		for _, h := range poly.Holes {
			pc = append(pc, ringToContour(h))
		}
	}
	return pc
}

// fromPolyclip reinterprets a polyclip result as a MultiPolygon, treating
// every contour as an independent outer ring with no holes. This matches how
// this package uses polyclip: inputs for union/difference/intersection are
// always sets of simple outer rings, never polygons-with-holes, so the
// output requires no hole-reassembly step.
func fromPolyclip(pc polyclip.Polygon) MultiPolygon {
	mp := make(MultiPolygon, 0, len(pc))
	for _, c := range pc {
		if len(c) < 3 {
			continue
		}
		mp = append(mp, Polygon{Outer: contourToRing(c)})
	}
	return mp
}
