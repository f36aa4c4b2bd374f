package geomx

import (
	"math"

	polyclip "github.com/ctessum/polyclip-go"
)

// MinZoneArea is the smallest polygon area (m²) the pipeline will keep as a
// standalone zone; anything smaller is noise from a degenerate entity and is
// dropped silently by the parser and space computer alike.
const MinZoneArea = 0.1

// areaEpsilon bounds floating point noise when comparing computed areas
// against zero, per the invariants in spec §8 ("> 10⁻⁶ m²", "> ε").
const areaEpsilon = 1e-6

// Union returns the set union of two polygon sets.
func Union(a, b MultiPolygon) MultiPolygon {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	result := a.toPolyclip().Construct(polyclip.UNION, b.toPolyclip())
	return fromPolyclip(result)
}

// UnionAll folds Union across every member of sets, left to right.
func UnionAll(sets ...MultiPolygon) MultiPolygon {
	var acc MultiPolygon
	for _, s := range sets {
		acc = Union(acc, s)
	}
	return acc
}

// Difference returns a minus b (the area of a not covered by b).
func Difference(a, b MultiPolygon) MultiPolygon {
	if len(a) == 0 || len(b) == 0 {
		return a
	}
	result := a.toPolyclip().Construct(polyclip.DIFFERENCE, b.toPolyclip())
	return fromPolyclip(result)
}

// Intersection returns the area shared by a and b.
func Intersection(a, b MultiPolygon) MultiPolygon {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	result := a.toPolyclip().Construct(polyclip.INTERSECTION, b.toPolyclip())
	return fromPolyclip(result)
}

// Area computes a ring's signed area via the shoelace formula and returns
// its absolute value, winding-independent.
func (r Ring) Area() float64 {
	if len(r) < 3 {
		return 0
	}
	sum := 0.0
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += r[i].X*r[j].Y - r[j].X*r[i].Y
	}
	return math.Abs(sum) / 2
}

// Area returns the polygon's area, outer ring minus holes.
func (p Polygon) Area() float64 {
	a := p.Outer.Area()
	for _, h := range p.Holes {
		a -= h.Area()
	}
	if a < 0 {
		return 0
	}
	return a
}

// Area sums the area of every polygon in the set.
func (mp MultiPolygon) Area() float64 {
	total := 0.0
	for _, p := range mp {
		total += p.Area()
	}
	return total
}

// Centroid returns the ring's area-weighted centroid (degenerates to the
// vertex average for zero-area rings, e.g. collapsed slivers).
func (r Ring) Centroid() Point {
	if len(r) == 0 {
		return Point{}
	}
	var cx, cy, areaAcc float64
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := r[i].X*r[j].Y - r[j].X*r[i].Y
		cx += (r[i].X + r[j].X) * cross
		cy += (r[i].Y + r[j].Y) * cross
		areaAcc += cross
	}
	if math.Abs(areaAcc) < 1e-12 {
		var sx, sy float64
		for _, p := range r {
			sx += p.X
			sy += p.Y
		}
		return Point{X: sx / float64(n), Y: sy / float64(n)}
	}
	areaAcc /= 2
	return Point{X: cx / (6 * areaAcc), Y: cy / (6 * areaAcc)}
}

// Centroid returns the polygon's outer-ring centroid.
func (p Polygon) Centroid() Point {
	return p.Outer.Centroid()
}

// Bounds returns the ring's axis-aligned bounding box.
func (r Ring) Bounds() Rect {
	if len(r) == 0 {
		return Rect{}
	}
	b := Rect{MinX: r[0].X, MinY: r[0].Y, MaxX: r[0].X, MaxY: r[0].Y}
	for _, p := range r[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// Bounds returns the polygon's axis-aligned bounding box (holes do not
// shrink it).
func (p Polygon) Bounds() Rect {
	return p.Outer.Bounds()
}

// Bounds returns the bounding box enclosing every polygon in the set.
func (mp MultiPolygon) Bounds() Rect {
	if len(mp) == 0 {
		return Rect{}
	}
	b := mp[0].Bounds()
	for _, p := range mp[1:] {
		b = b.Union(p.Bounds())
	}
	return b
}

// Contains reports whether outer strictly contains inner: inner's area is
// entirely covered by outer, with no leftover sliver when inner is clipped
// against outer's complement. This matches the placement validator's
// "S.Contains(R)" check in spec §4.3.4.
func Contains(outer MultiPolygon, inner Polygon) bool {
	if len(outer) == 0 || inner.Area() < areaEpsilon {
		return false
	}
	leftover := Difference(MultiPolygon{inner}, outer)
	return leftover.Area() <= areaEpsilon
}

// IntersectsArea returns the area of overlap between a and b. Zero means the
// shapes do not overlap (edges may still touch).
func IntersectsArea(a, b MultiPolygon) float64 {
	return Intersection(a, b).Area()
}

// Distance returns the minimum Euclidean distance between the boundaries of
// two polygons, or 0 if they overlap or touch.
func Distance(a, b Polygon) float64 {
	if IntersectsArea(MultiPolygon{a}, MultiPolygon{b}) > areaEpsilon {
		return 0
	}
	min := math.Inf(1)
	ringsA := append([]Ring{a.Outer}, a.Holes...)
	ringsB := append([]Ring{b.Outer}, b.Holes...)
	for _, ra := range ringsA {
		for _, rb := range ringsB {
			if d := ringDistance(ra, rb); d < min {
				min = d
			}
		}
	}
	if math.IsInf(min, 1) {
		return 0
	}
	return min
}

func ringDistance(a, b Ring) float64 {
	min := math.Inf(1)
	for i := 0; i < len(a); i++ {
		a1, a2 := a[i], a[(i+1)%len(a)]
		for j := 0; j < len(b); j++ {
			b1, b2 := b[j], b[(j+1)%len(b)]
			if d := segmentDistance(a1, a2, b1, b2); d < min {
				min = d
			}
		}
	}
	return min
}

// segmentDistance returns the minimum distance between segments p1p2 and
// p3p4, handling the parallel/intersecting case via point-to-segment checks
// on all four endpoint combinations — sufficient precision for this domain's
// rectangular ílots and corridor rectangles.
func segmentDistance(p1, p2, p3, p4 Point) float64 {
	if segmentsIntersect(p1, p2, p3, p4) {
		return 0
	}
	d := pointToSegmentDistance(p1, p3, p4)
	d = math.Min(d, pointToSegmentDistance(p2, p3, p4))
	d = math.Min(d, pointToSegmentDistance(p3, p1, p2))
	d = math.Min(d, pointToSegmentDistance(p4, p1, p2))
	return d
}

func pointToSegmentDistance(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	apx, apy := p.X-a.X, p.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq < 1e-18 {
		return math.Hypot(apx, apy)
	}
	t := (apx*abx + apy*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	projX := a.X + t*abx
	projY := a.Y + t*aby
	return math.Hypot(p.X-projX, p.Y-projY)
}

func orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X)-1e-9 <= p.X && p.X <= math.Max(a.X, b.X)+1e-9 &&
		math.Min(a.Y, b.Y)-1e-9 <= p.Y && p.Y <= math.Max(a.Y, b.Y)+1e-9
}

func segmentsIntersect(p1, p2, p3, p4 Point) bool {
	d1 := orientation(p3, p4, p1)
	d2 := orientation(p3, p4, p2)
	d3 := orientation(p1, p2, p3)
	d4 := orientation(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if math.Abs(d1) < 1e-12 && onSegment(p3, p4, p1) {
		return true
	}
	if math.Abs(d2) < 1e-12 && onSegment(p3, p4, p2) {
		return true
	}
	if math.Abs(d3) < 1e-12 && onSegment(p1, p2, p3) {
		return true
	}
	if math.Abs(d4) < 1e-12 && onSegment(p1, p2, p4) {
		return true
	}
	return false
}
