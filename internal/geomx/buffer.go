package geomx

import "math"

// capSegments is the number of chord segments used to approximate a
// semicircular cap. The parser's ARC flattening rule (spec §4.1: "≤20 chord
// vertices per radian") motivates a similar fixed angular resolution here;
// 12 segments per half-turn keeps capsule joins visually round without
// generating excessive vertex counts for what are, in this domain, thin
// wall and entrance buffers.
const capSegments = 12

// BufferSegment returns the capsule (stadium) polygon swept by a disk of the
// given radius sliding from a to b: a rectangle of width 2*radius between
// the two offset edges, closed with a semicircular cap at each end. This is
// the shape spec §4.1 calls for when buffering LINE, flattened ARC, and
// flattened SPLINE entities ("buffered into a rectangle of half-width =
// WALL_BUFFER... capped round").
func BufferSegment(a, b Point, radius float64) Polygon {
	if radius <= 0 {
		return Polygon{Outer: Ring{a, b, a}}
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length < 1e-12 {
		return bufferPoint(a, radius)
	}
	// Unit direction and its perpendicular.
	ux, uy := dx/length, dy/length
	px, py := -uy, ux

	var ring Ring
	// Left side, a -> b.
	ring = append(ring,
		Point{X: a.X + px*radius, Y: a.Y + py*radius},
		Point{X: b.X + px*radius, Y: b.Y + py*radius},
	)
	// Cap at b, sweeping from the left-normal to the right-normal through
	// the forward direction.
	ring = append(ring, arcFan(b, px, py, ux, uy, radius, capSegments)...)
	// Right side, b -> a.
	ring = append(ring,
		Point{X: b.X - px*radius, Y: b.Y - py*radius},
		Point{X: a.X - px*radius, Y: a.Y - py*radius},
	)
	// Cap at a, sweeping back through the reverse direction.
	ring = append(ring, arcFan(a, -px, -py, -ux, -uy, radius, capSegments)...)

	return Polygon{Outer: ring}
}

func bufferPoint(center Point, radius float64) Polygon {
	ring := make(Ring, 0, capSegments*2)
	for i := 0; i <= capSegments*2; i++ {
		theta := 2 * math.Pi * float64(i) / float64(capSegments*2)
		ring = append(ring, Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		})
	}
	return Polygon{Outer: ring}
}

// arcFan generates points tracing a semicircle of the given radius around
// center, starting at angle (startX, startY) and sweeping 180° through
// forward direction (fwdX, fwdY).
func arcFan(center Point, startX, startY, fwdX, fwdY, radius float64, segments int) Ring {
	startAngle := math.Atan2(startY, startX)
	fwdAngle := math.Atan2(fwdY, fwdX)
	// Normalize so the sweep goes the short way through the forward angle.
	sweep := math.Pi
	delta := fwdAngle - startAngle
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}
	if delta < 0 {
		sweep = -math.Pi
	}

	ring := make(Ring, 0, segments)
	for i := 1; i < segments; i++ {
		theta := startAngle + sweep*float64(i)/float64(segments)
		ring = append(ring, Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		})
	}
	return ring
}

// BufferPolyline unions the capsule buffer of every consecutive segment in
// points, producing a single rounded corridor around an open polyline. Used
// for flattened ARC and SPLINE entities (spec §4.1) which are chains of
// vertices rather than single segments.
func BufferPolyline(points []Point, radius float64) MultiPolygon {
	if len(points) < 2 {
		if len(points) == 1 {
			return MultiPolygon{bufferPoint(points[0], radius)}
		}
		return nil
	}
	var acc MultiPolygon
	for i := 0; i < len(points)-1; i++ {
		acc = Union(acc, MultiPolygon{BufferSegment(points[i], points[i+1], radius)})
	}
	return acc
}

// BufferPolygon expands a closed polygon outward by radius with round
// joins. It unions the polygon's filled interior with the capsule buffer of
// its boundary ring, which dilates the shape uniformly along its perimeter
// without needing an analytic offset-curve construction. Used for the
// restricted-zone and entrance-clearance buffers in spec §4.2/§4.3.2.
func BufferPolygon(p Polygon, radius float64) MultiPolygon {
	if radius <= 0 {
		return MultiPolygon{p}
	}
	closed := append(append(Ring{}, p.Outer...), p.Outer[0])
	boundary := BufferPolyline(closed, radius)
	return Union(MultiPolygon{p}, boundary)
}

// BufferPolygons applies BufferPolygon to every member of a set and unions
// the results.
func BufferPolygons(mp MultiPolygon, radius float64) MultiPolygon {
	var acc MultiPolygon
	for _, p := range mp {
		acc = Union(acc, BufferPolygon(p, radius))
	}
	return acc
}
