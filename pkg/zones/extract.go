package zones

import (
	"math"

	"github.com/rehmanul/floorplan-engine/internal/cadio"
	"github.com/rehmanul/floorplan-engine/internal/geomx"
)

// WallBuffer is the default half-width applied when flattening LINE, ARC,
// and SPLINE entities into filled polygons.
const WallBuffer = 0.15

// chordToleranceSpline is the sampling step (native units) flattenSpline
// uses along each segment between SPLINE points; a smaller value produces
// more chord segments.
const chordToleranceSpline = 0.01

// arcChordsPerRadian bounds how many vertices an ARC is flattened into,
// expressed as a density rather than a fixed count so long arcs stay smooth
// and short arcs stay cheap.
const arcChordsPerRadian = 20

// extractPolygons converts one raw entity into zero or more filled polygons,
// following the per-entity rule table. Entities yielding no usable geometry
// (degenerate lines, unreadable boundary loops) return no polygons rather
// than erroring; the caller silently drops them. wallBuffer is the
// half-width applied to LINE, ARC, and SPLINE entities (defaults to
// WallBuffer, overridable via ParseWithWallBuffer).
func extractPolygons(e cadio.RawEntity, wallBuffer float64) []geomx.Polygon {
	switch e.Kind {
	case cadio.KindLine:
		return bufferedSegments(e.Vertices, wallBuffer)

	case cadio.KindLWPolyline, cadio.KindPolyline:
		return polylinePolygons(e.Vertices, wallBuffer)

	case cadio.KindArc:
		pts := flattenArc(e.Center, e.Radius, e.StartAngle, e.EndAngle)
		return bufferedSegments(pts, wallBuffer)

	case cadio.KindCircle:
		return []geomx.Polygon{circlePolygon(e.Center, e.Radius)}

	case cadio.KindEllipse:
		return []geomx.Polygon{ellipsePolygon(e.Center, e.MajorAxisEnd, e.Ratio)}

	case cadio.KindSpline:
		pts := flattenSpline(e.Vertices, chordToleranceSpline)
		return bufferedSegments(pts, wallBuffer)

	case cadio.KindHatch, cadio.KindSolid, cadio.Kind3DFace:
		var out []geomx.Polygon
		loops := e.BoundaryLoops
		if len(loops) == 0 && len(e.Vertices) >= 3 {
			loops = [][]geomx.Point{e.Vertices}
		}
		for _, loop := range loops {
			if p, ok := closedLoopPolygon(loop); ok {
				out = append(out, p)
			}
		}
		return out

	default:
		return nil
	}
}

// bufferedSegments buffers every consecutive pair of points into a
// round-capped capsule and unions the result into one or more polygons.
func bufferedSegments(pts []geomx.Point, radius float64) []geomx.Polygon {
	if len(pts) < 2 {
		return nil
	}
	mp := geomx.BufferPolyline(pts, radius)
	return []geomx.Polygon(mp)
}

// polylinePolygons realizes the LWPOLYLINE/POLYLINE extraction rule: three
// or more distinct vertices form a closed polygon via closedLoopPolygon,
// and if that keeps nothing the vertices are buffered as an open polyline;
// exactly two vertices degrade to a buffered line segment.
func polylinePolygons(verts []geomx.Point, wallBuffer float64) []geomx.Polygon {
	distinct := dedupConsecutive(verts)
	switch {
	case len(distinct) >= 3:
		if p, ok := closedLoopPolygon(distinct); ok {
			return []geomx.Polygon{p}
		}
		return bufferedSegments(distinct, wallBuffer)
	case len(distinct) == 2:
		return bufferedSegments(distinct, wallBuffer)
	default:
		return nil
	}
}

func dedupConsecutive(pts []geomx.Point) []geomx.Point {
	var out []geomx.Point
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			out = append(out, p)
		}
	}
	if len(out) >= 2 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// closedLoopPolygon builds a polygon from a point loop. A loop whose
// shoelace area exceeds MinZoneArea is returned as is; it is not checked
// for self-intersection. A smaller loop is run through BufferPolyline with
// zero radius and the largest resulting piece is kept if its area exceeds
// MinZoneArea; zero-radius capsules carry no area, so this path does not
// recover a polygon from a degenerate loop. ok is false when nothing is kept.
func closedLoopPolygon(loop []geomx.Point) (geomx.Polygon, bool) {
	if len(loop) < 3 {
		return geomx.Polygon{}, false
	}
	ring := geomx.Ring(loop)
	if ring.Area() > geomx.MinZoneArea {
		return geomx.Polygon{Outer: ring}, true
	}
	healed := geomx.BufferPolyline(append(append([]geomx.Point{}, loop...), loop[0]), 0)
	if len(healed) == 0 {
		return geomx.Polygon{}, false
	}
	best := healed[0]
	for _, p := range healed[1:] {
		if p.Area() > best.Area() {
			best = p
		}
	}
	if best.Area() <= geomx.MinZoneArea {
		return geomx.Polygon{}, false
	}
	return best, true
}

func circlePolygon(center geomx.Point, radius float64) geomx.Polygon {
	const segments = 36
	ring := make(geomx.Ring, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		ring[i] = geomx.Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	return geomx.Polygon{Outer: ring}
}

// ellipsePolygon approximates an ELLIPSE with a 36-point ring (10° steps)
// around its major axis, scaling the minor axis by ratio. majorAxisEnd is
// the major-axis endpoint relative to center, as DXF stores it.
func ellipsePolygon(center, majorAxisEnd geomx.Point, ratio float64) geomx.Polygon {
	dx := majorAxisEnd.X
	dy := majorAxisEnd.Y
	a := math.Hypot(dx, dy)
	b := a * ratio
	angle := math.Atan2(dy, dx)
	cosA, sinA := math.Cos(angle), math.Sin(angle)

	const segments = 36
	ring := make(geomx.Ring, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		lx := a * math.Cos(theta)
		ly := b * math.Sin(theta)
		ring[i] = geomx.Point{
			X: center.X + lx*cosA - ly*sinA,
			Y: center.Y + lx*sinA + ly*cosA,
		}
	}
	return geomx.Polygon{Outer: ring}
}

// flattenArc samples an ARC into chord vertices at a density of
// arcChordsPerRadian per radian of sweep, matching the rule that long arcs
// should stay visually round while short arcs stay cheap to process.
func flattenArc(center geomx.Point, radius, start, end float64) []geomx.Point {
	sweep := end - start
	for sweep < 0 {
		sweep += 2 * math.Pi
	}
	if sweep == 0 {
		sweep = 2 * math.Pi
	}
	segments := int(math.Ceil(sweep * arcChordsPerRadian))
	if segments < 1 {
		segments = 1
	}
	pts := make([]geomx.Point, segments+1)
	for i := 0; i <= segments; i++ {
		theta := start + sweep*float64(i)/float64(segments)
		pts[i] = geomx.Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	return pts
}

// flattenSpline inserts evenly spaced points along the straight segment
// between each pair of consecutive control/fit points, int(length/tolerance)
// steps per segment (so the spacing lies between tolerance and twice it),
// capped at 200 steps. The spline curve itself is not evaluated: every
// output point lies on the polyline through the given points.
func flattenSpline(pts []geomx.Point, tolerance float64) []geomx.Point {
	if len(pts) < 2 {
		return pts
	}
	var out []geomx.Point
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		out = append(out, a)
		length := math.Hypot(b.X-a.X, b.Y-a.Y)
		steps := int(length / tolerance)
		if steps > 200 {
			steps = 200 // Guard against degenerate tolerance/length ratios.
		}
		for s := 1; s < steps; s++ {
			t := float64(s) / float64(steps)
			out = append(out, geomx.Point{
				X: a.X + (b.X-a.X)*t,
				Y: a.Y + (b.Y-a.Y)*t,
			})
		}
	}
	out = append(out, pts[len(pts)-1])
	return out
}
