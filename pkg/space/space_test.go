package space

import (
	"math"
	"testing"

	"github.com/rehmanul/floorplan-engine/internal/geomx"
	"github.com/rehmanul/floorplan-engine/pkg/zones"
)

func rect(minX, minY, maxX, maxY float64) geomx.Polygon {
	return geomx.Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}.Polygon()
}

func TestComputeSubtractsWallsAndBuffers(t *testing.T) {
	set := &zones.ZoneSet{
		Walls:      []geomx.Polygon{rect(0, 0, 1, 10)}, // left wall strip
		Restricted: []geomx.Polygon{rect(8, 0, 9, 10)}, // right restricted strip
	}
	// Force an envelope: without entrances/open spaces, Bounds() derives
	// solely from walls+restricted, which here span x in [0,9], y in [0,10].
	out, err := Compute(set)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(out.OpenSpaces) == 0 {
		t.Fatal("expected at least one open space between the wall and restricted strips")
	}
	total := TotalOpenArea(out)
	envelopeArea := Envelope(set).Width() * Envelope(set).Height()
	if total <= 0 || total >= envelopeArea {
		t.Errorf("open area = %v, want strictly between 0 and envelope area %v", total, envelopeArea)
	}
}

func TestComputeNoGeometryError(t *testing.T) {
	set := &zones.ZoneSet{}
	if _, err := Compute(set); err == nil {
		t.Fatal("expected ErrNoGeometry for an empty zone set")
	}
}

func TestComputeEntranceClearanceWiderThanRestricted(t *testing.T) {
	if EntranceClearance <= RestrictedClearance {
		t.Errorf("EntranceClearance (%v) should exceed RestrictedClearance (%v)", EntranceClearance, RestrictedClearance)
	}
}

func TestComputeDropsSliversBelowMinZoneArea(t *testing.T) {
	// A wall covering the whole envelope, with a restricted zone inside it,
	// leaves at most slivers of open space; none below MinZoneArea may be
	// returned.
	set := &zones.ZoneSet{
		Walls:      []geomx.Polygon{rect(0, 0, 10, 10)},
		Restricted: []geomx.Polygon{rect(0.01, 0.01, 9.99, 9.99)},
	}
	out, err := Compute(set)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for _, p := range out.OpenSpaces {
		if p.Area() < zones.MinZoneArea {
			t.Errorf("open space with area %v below MinZoneArea leaked through", p.Area())
		}
	}
}

func TestEnvelopeMatchesBounds(t *testing.T) {
	set := &zones.ZoneSet{Walls: []geomx.Polygon{rect(1, 2, 5, 9)}}
	env := Envelope(set)
	if math.Abs(env.Width()-4) > 1e-9 || math.Abs(env.Height()-7) > 1e-9 {
		t.Errorf("envelope = %+v, want width 4 height 7", env)
	}
}
