package placement

import (
	"github.com/rehmanul/floorplan-engine/internal/geomx"
)

// MinSpacing is the default minimum clearance required between accepted
// units' polygons (meters); callers may override via Config.
const MinSpacing = 0.3

// forbiddenBuffer is the clearance applied around entrances before they
// join restricted zones to form the placement-time forbidden region —
// wider than the space computer's own entrance buffer, since a placed unit
// must clear the door swing by more margin than bare open-space
// eligibility requires.
const forbiddenBuffer = 0.3

// ForbiddenZone precomputes restricted ∪ buffer(entrances, 0.3) once per
// search so every gene-to-unit validation reuses the same cached multi-
// polygon instead of re-buffering entrances per candidate.
func ForbiddenZone(restricted, entrances []geomx.Polygon) geomx.MultiPolygon {
	bufferedEntrances := geomx.BufferPolygons(geomx.MultiPolygon(entrances), forbiddenBuffer)
	return geomx.UnionAll(geomx.MultiPolygon(restricted), bufferedEntrances)
}

// realize validates one gene against its spec and the accumulated set of
// already-accepted units for this chromosome, returning the placed unit and
// true if it passes, or false if the gene must be silently dropped.
//
// Acceptance requires, in order:
//  1. some open-space polygon strictly contains the candidate rectangle;
//  2. the candidate does not overlap the forbidden zone;
//  3. the candidate is at least minSpacing from every unit already accepted
//     in this realization.
func realize(g Gene, spec UnitSpec, openSpaces geomx.MultiPolygon, forbidden geomx.MultiPolygon, accepted []PlacedUnit, minSpacing float64, id int) (PlacedUnit, bool) {
	w, h := spec.Width, spec.Height
	if g.Rotation == Rotation90 {
		w, h = h, w
	}

	rect := geomx.Rect{MinX: g.X, MinY: g.Y, MaxX: g.X + w, MaxY: g.Y + h}
	poly := rect.Polygon()

	if !geomx.Contains(openSpaces, poly) {
		return PlacedUnit{}, false
	}
	if geomx.IntersectsArea(geomx.MultiPolygon{poly}, forbidden) > 0 {
		return PlacedUnit{}, false
	}
	for _, u := range accepted {
		if geomx.Distance(poly, u.Polygon) < minSpacing {
			return PlacedUnit{}, false
		}
	}

	return PlacedUnit{
		ID:       id,
		Polygon:  poly,
		Area:     w * h,
		Category: spec.Category,
		Center:   poly.Centroid(),
		Width:    w,
		Height:   h,
		Rotation: g.Rotation,
	}, true
}

// Realize walks a chromosome's genes in order, validating each against its
// positional spec and every previously-accepted unit in the same
// chromosome, returning the subset that passes. A chromosome's realized
// unit count may be smaller than len(specs): genes that fail validation are
// dropped, not retried.
func Realize(chrom Chromosome, specs []UnitSpec, openSpaces, forbidden geomx.MultiPolygon, minSpacing float64) []PlacedUnit {
	var accepted []PlacedUnit
	nextID := 0
	for i, g := range chrom {
		if i >= len(specs) {
			break
		}
		if u, ok := realize(g, specs[i], openSpaces, forbidden, accepted, minSpacing, nextID); ok {
			accepted = append(accepted, u)
			nextID++
		}
	}
	return accepted
}
