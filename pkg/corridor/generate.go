package corridor

import (
	"github.com/rehmanul/floorplan-engine/internal/geomx"
	"github.com/rehmanul/floorplan-engine/pkg/placement"
)

// DefaultWidth is the corridor rectangle's width when no override is
// configured.
const DefaultWidth = 1.5

// MinCorridorLength is the minimum x-overlap between two rows for a
// corridor to be worth routing between them.
const MinCorridorLength = 2.0

// maxRowGap is the largest y-gap between adjacent rows that still permits a
// corridor; beyond this the rows are considered too far apart to connect.
const maxRowGap = 10.0

// interiorOverlapTolerance is the largest area a candidate corridor may
// share with a placed unit's interior before it is rejected as overlapping
// (touching edges is fine; overlapping interiors is not).
const interiorOverlapTolerance = 0.01

// clippedAreaFactor scales MinCorridorLength*width to the minimum area a
// clipped (partially-obstructed) corridor candidate must retain to be kept.
const clippedAreaFactor = 0.5

// Generate clusters units into rows and emits a corridor rectangle between
// every pair of adjacent rows whose gap and x-overlap clear the thresholds,
// clipped against open space and checked against unit interiors. IDs are
// assigned sequentially in row-pair order.
func Generate(units []placement.PlacedUnit, openSpaces []geomx.Polygon, width float64) []Corridor {
	if width <= 0 {
		width = DefaultWidth
	}
	rows := clusterRows(units)
	if len(rows) < 2 {
		return nil
	}

	openMP := geomx.MultiPolygon(openSpaces)

	var corridors []Corridor
	nextID := 0
	for i := 0; i < len(rows)-1; i++ {
		a, b := rows[i], rows[i+1]
		if c, ok := buildCorridor(a.bounds, b.bounds, width, units, openMP); ok {
			c.ID = nextID
			c.Connects = [2]int{i, i + 1}
			corridors = append(corridors, c)
			nextID++
		}
	}
	return corridors
}

func buildCorridor(a, b geomx.Rect, width float64, units []placement.PlacedUnit, openSpaces geomx.MultiPolygon) (Corridor, bool) {
	gap := b.MinY - a.MaxY
	if gap <= 0 || gap > maxRowGap {
		return Corridor{}, false
	}

	cxMin := max(a.MinX, b.MinX)
	cxMax := min(a.MaxX, b.MaxX)
	if cxMax-cxMin < MinCorridorLength {
		return Corridor{}, false
	}

	cy := (a.MaxY + b.MinY) / 2
	rect := geomx.Rect{MinX: cxMin, MinY: cy - width/2, MaxX: cxMax, MaxY: cy + width/2}
	poly := rect.Polygon()

	if overlapsAnyUnitInterior(poly, units) {
		return Corridor{}, false
	}

	final, ok := fitToOpenSpace(poly, openSpaces, width)
	if !ok {
		return Corridor{}, false
	}

	return Corridor{
		Polygon:   final,
		Width:     width,
		Length:    cxMax - cxMin,
		Endpoints: [2]geomx.Point{{X: cxMin, Y: cy}, {X: cxMax, Y: cy}},
	}, true
}

func overlapsAnyUnitInterior(candidate geomx.Polygon, units []placement.PlacedUnit) bool {
	for _, u := range units {
		if geomx.IntersectsArea(geomx.MultiPolygon{candidate}, geomx.MultiPolygon{u.Polygon}) > interiorOverlapTolerance {
			return true
		}
	}
	return false
}

// fitToOpenSpace keeps the candidate rectangle as-is if some open-space
// polygon already strictly contains it; otherwise it clips the candidate
// against the union of open space and keeps the largest resulting piece,
// provided its area is at least MinCorridorLength*width*clippedAreaFactor.
func fitToOpenSpace(candidate geomx.Polygon, openSpaces geomx.MultiPolygon, width float64) (geomx.Polygon, bool) {
	if geomx.Contains(openSpaces, candidate) {
		return candidate, true
	}

	clipped := geomx.Intersection(geomx.MultiPolygon{candidate}, openSpaces)
	if len(clipped) == 0 {
		return geomx.Polygon{}, false
	}

	largest := clipped[0]
	for _, p := range clipped[1:] {
		if p.Area() > largest.Area() {
			largest = p
		}
	}

	minArea := MinCorridorLength * width * clippedAreaFactor
	if largest.Area() < minArea {
		return geomx.Polygon{}, false
	}
	return largest, true
}
