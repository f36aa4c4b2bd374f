package space

import (
	"github.com/rehmanul/floorplan-engine/internal/geomx"
	"github.com/rehmanul/floorplan-engine/pkg/zones"
)

// RestrictedClearance is the buffer applied around restricted zones before
// subtracting them from the envelope.
const RestrictedClearance = 0.1

// EntranceClearance is the buffer applied around entrance zones before
// subtracting them from the envelope — wider than RestrictedClearance so
// placed units never crowd a doorway's swing.
const EntranceClearance = 0.2

// ErrNoGeometry is returned when a ZoneSet has no walls, restricted zones,
// entrances, or pre-existing open space to compute an envelope from.
type ErrNoGeometry struct{}

func (ErrNoGeometry) Error() string {
	return "space: zone set has no geometry to compute an envelope from"
}

// Compute derives the authoritative open_spaces for set using the default
// EntranceClearance. See ComputeWithClearance for a configurable buffer.
func Compute(set *zones.ZoneSet) (*zones.ZoneSet, error) {
	return ComputeWithClearance(set, EntranceClearance)
}

// ComputeWithClearance is Compute with an overridable entrance-clearance
// buffer, for callers whose configuration sets entrance_clearance away from
// its default. The envelope minus walls, minus a buffered union of
// restricted and entrance zones, with any resulting piece below
// zones.MinZoneArea dropped. The returned ZoneSet carries the same
// walls/restricted/entrances as the input with OpenSpaces replaced.
func ComputeWithClearance(set *zones.ZoneSet, entranceClearance float64) (*zones.ZoneSet, error) {
	if len(set.Walls) == 0 && len(set.Restricted) == 0 && len(set.Entrances) == 0 && len(set.OpenSpaces) == 0 {
		return nil, ErrNoGeometry{}
	}

	envelope := set.Bounds()
	if envelope.Width() <= 0 || envelope.Height() <= 0 {
		return nil, ErrNoGeometry{}
	}

	walls := zones.AsMultiPolygon(set.Walls)
	restricted := geomx.BufferPolygons(zones.AsMultiPolygon(set.Restricted), RestrictedClearance)
	entrances := geomx.BufferPolygons(zones.AsMultiPolygon(set.Entrances), entranceClearance)

	obstacles := geomx.UnionAll(walls, restricted, entrances)
	remaining := geomx.Difference(geomx.MultiPolygon{envelope.Polygon()}, obstacles)

	var open []geomx.Polygon
	for _, p := range remaining {
		if p.Area() >= zones.MinZoneArea {
			open = append(open, p)
		}
	}

	out := &zones.ZoneSet{
		Walls:      set.Walls,
		Restricted: set.Restricted,
		Entrances:  set.Entrances,
		OpenSpaces: open,
	}
	return out, nil
}

// Envelope returns the axis-aligned bounding rectangle of set, the same
// envelope Compute subtracts obstacles from. Exposed separately because the
// orchestrator reports it in LayoutResult metrics.
func Envelope(set *zones.ZoneSet) geomx.Rect {
	return set.Bounds()
}

// TotalOpenArea sums the area of every open-space polygon in set, used as
// the denominator for coverage-percent metrics.
func TotalOpenArea(set *zones.ZoneSet) float64 {
	return zones.AsMultiPolygon(set.OpenSpaces).Area()
}
