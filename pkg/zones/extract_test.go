package zones

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/rehmanul/floorplan-engine/internal/cadio"
	"github.com/rehmanul/floorplan-engine/internal/geomx"
)

func TestExtractLineBuffersToCapsule(t *testing.T) {
	e := cadio.RawEntity{
		Kind:     cadio.KindLine,
		Vertices: []geomx.Point{{X: 0, Y: 0}, {X: 5, Y: 0}},
	}
	polys := extractPolygons(e, WallBuffer)
	if len(polys) == 0 {
		t.Fatal("extractPolygons(LINE) returned no polygons")
	}
	totalArea := 0.0
	for _, p := range polys {
		totalArea += p.Area()
	}
	// A 5m line buffered to 0.15m half-width covers at least its bare
	// rectangle area (5 * 0.3), plus the round caps add a bit more.
	if totalArea < 5*2*WallBuffer {
		t.Errorf("buffered line area = %v, want >= %v", totalArea, 5*2*WallBuffer)
	}
}

func TestExtractPolylineClosedRing(t *testing.T) {
	e := cadio.RawEntity{
		Kind: cadio.KindLWPolyline,
		Vertices: []geomx.Point{
			{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3},
		},
	}
	polys := extractPolygons(e, WallBuffer)
	if len(polys) != 1 {
		t.Fatalf("extractPolygons(LWPOLYLINE) = %d polygons, want 1", len(polys))
	}
	if got, want := polys[0].Area(), 12.0; math.Abs(got-want) > 1e-6 {
		t.Errorf("area = %v, want %v", got, want)
	}
}

func TestExtractPolylineTwoVerticesBuffersAsLine(t *testing.T) {
	e := cadio.RawEntity{
		Kind:     cadio.KindPolyline,
		Vertices: []geomx.Point{{X: 0, Y: 0}, {X: 2, Y: 0}},
	}
	polys := extractPolygons(e, WallBuffer)
	if len(polys) == 0 {
		t.Fatal("two-vertex polyline should buffer into a capsule, got nothing")
	}
}

func TestExtractCircleArea(t *testing.T) {
	e := cadio.RawEntity{Kind: cadio.KindCircle, Center: geomx.Point{X: 1, Y: 1}, Radius: 2}
	polys := extractPolygons(e, WallBuffer)
	if len(polys) != 1 {
		t.Fatalf("extractPolygons(CIRCLE) = %d polygons, want 1", len(polys))
	}
	want := math.Pi * 4
	if got := polys[0].Area(); math.Abs(got-want)/want > 0.02 {
		t.Errorf("circle area = %v, want ~%v", got, want)
	}
}

func TestExtractEllipseRatioScalesMinorAxis(t *testing.T) {
	e := cadio.RawEntity{
		Kind:         cadio.KindEllipse,
		Center:       geomx.Point{X: 0, Y: 0},
		MajorAxisEnd: geomx.Point{X: 4, Y: 0},
		Ratio:        0.5,
	}
	polys := extractPolygons(e, WallBuffer)
	if len(polys) != 1 {
		t.Fatalf("extractPolygons(ELLIPSE) = %d polygons, want 1", len(polys))
	}
	want := math.Pi * 4 * 2 // pi*a*b, a=4, b=2
	if got := polys[0].Area(); math.Abs(got-want)/want > 0.05 {
		t.Errorf("ellipse area = %v, want ~%v", got, want)
	}
}

func TestExtractHatchBoundaryLoop(t *testing.T) {
	e := cadio.RawEntity{
		Kind: cadio.KindHatch,
		BoundaryLoops: [][]geomx.Point{
			{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 3}, {X: 0, Y: 3}},
		},
	}
	polys := extractPolygons(e, WallBuffer)
	if len(polys) != 1 {
		t.Fatalf("extractPolygons(HATCH) = %d polygons, want 1", len(polys))
	}
	if got, want := polys[0].Area(), 9.0; math.Abs(got-want) > 1e-6 {
		t.Errorf("area = %v, want %v", got, want)
	}
}

func TestExtractDegenerateLineYieldsNothing(t *testing.T) {
	e := cadio.RawEntity{Kind: cadio.KindLine, Vertices: []geomx.Point{{X: 1, Y: 1}}}
	if polys := extractPolygons(e, WallBuffer); len(polys) != 0 {
		t.Errorf("single-point LINE produced %d polygons, want 0", len(polys))
	}
}

func TestFlattenArcSweepNonNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := rapid.Float64Range(-10, 10).Draw(rt, "start")
		end := rapid.Float64Range(-10, 10).Draw(rt, "end")
		radius := rapid.Float64Range(0.1, 50).Draw(rt, "radius")

		pts := flattenArc(geomx.Point{}, radius, start, end)
		if len(pts) < 2 {
			rt.Fatalf("flattenArc produced %d points, want >= 2", len(pts))
		}
		for _, p := range pts {
			dist := math.Hypot(p.X, p.Y)
			if math.Abs(dist-radius) > 1e-6 {
				rt.Fatalf("flattened point %v is at distance %v from center, want %v", p, dist, radius)
			}
		}
	})
}
