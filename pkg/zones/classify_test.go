package zones

import (
	"testing"

	"github.com/rehmanul/floorplan-engine/internal/geomx"
)

func square(side float64) geomx.Polygon {
	return geomx.Polygon{Outer: geomx.Ring{
		{X: 0, Y: 0},
		{X: side, Y: 0},
		{X: side, Y: side},
		{X: 0, Y: side},
	}}
}

func packRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func TestClassifyTrueColorPriority(t *testing.T) {
	red := packRGB(200, 10, 10)
	// ACI color index 5 would normally mean Restricted, but true-color is
	// checked first and must win.
	got := classify(square(3), "UNLABELED", 5, &red)
	if got != Entrance {
		t.Errorf("classify() = %v, want Entrance (true-color rule outranks ACI)", got)
	}
}

func TestClassifyACIRules(t *testing.T) {
	cases := []struct {
		aci  uint16
		want Kind
	}{
		{1, Entrance},
		{5, Restricted},
		{0, Wall},
		{7, Wall},
		{8, Wall},
		{256, Wall},
	}
	for _, tc := range cases {
		got := classify(square(3), "UNLABELED", tc.aci, nil)
		if got != tc.want {
			t.Errorf("classify(aci=%d) = %v, want %v", tc.aci, got, tc.want)
		}
	}
}

func TestClassifyLayerNameRules(t *testing.T) {
	cases := []struct {
		layer string
		want  Kind
	}{
		{"A-WALL-EXT", Wall},
		{"MUR-PORTEUR", Wall},
		{"STAIR-01", Restricted},
		{"ELEVATOR-SHAFT", Restricted},
		{"DOOR-MAIN", Entrance},
		{"PORTE-SECONDAIRE", Entrance},
	}
	// ACI 2 is unassigned by the ACI rule, so layer name decides.
	for _, tc := range cases {
		got := classify(square(3), tc.layer, 2, nil)
		if got != tc.want {
			t.Errorf("classify(layer=%q) = %v, want %v", tc.layer, got, tc.want)
		}
	}
}

func TestClassifyAreaFallback(t *testing.T) {
	// ACI 2 and an unrecognized layer name fall through to the area rule.
	small := classify(square(1), "MISC", 2, nil)
	if small != Entrance {
		t.Errorf("small polygon classify() = %v, want Entrance", small)
	}
	large := classify(square(11), "MISC", 2, nil)
	if large != Wall {
		t.Errorf("large polygon classify() = %v, want Wall", large)
	}
}

func TestClassifyDefaultsToWall(t *testing.T) {
	// area 9 m^2 (3x3) falls in neither area-fallback band, ACI 2 is
	// unassigned, layer name is unrecognized: default rule applies.
	got := classify(square(3), "MISC", 2, nil)
	if got != Wall {
		t.Errorf("classify() = %v, want Wall (default)", got)
	}
}

func TestPartitionGroupsByKind(t *testing.T) {
	raw := []RawZone{
		{Kind: Wall, Polygon: square(3)},
		{Kind: Restricted, Polygon: square(2)},
		{Kind: Entrance, Polygon: square(1)},
	}
	set := partition(raw)
	if len(set.Walls) != 1 || len(set.Restricted) != 1 || len(set.Entrances) != 1 {
		t.Fatalf("partition() = %+v, want one polygon per kind", set)
	}
}
