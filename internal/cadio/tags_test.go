package cadio

import (
	"os"
	"path/filepath"
	"testing"
)

// minimalDXF builds a tiny ASCII DXF with a HEADER section (to be skipped)
// and an ENTITIES section containing one ELLIPSE, one SPLINE (fit points),
// one HATCH, and one 3DFACE, mirroring the subset of group codes rawTagScan
// reads.
const minimalDXF = `0
SECTION
2
HEADER
9
$ACADVER
1
AC1015
0
ENDSEC
0
SECTION
2
ENTITIES
0
ELLIPSE
8
A-WALL
62
1
10
5.0
20
5.0
11
3.0
21
0.0
40
0.5
0
SPLINE
8
A-DOOR
62
3
11
1.0
21
1.0
11
2.0
21
1.5
11
3.0
21
1.0
0
HATCH
8
A-RESTRICTED
62
5
10
0.0
20
0.0
10
4.0
20
0.0
10
4.0
20
4.0
10
0.0
20
4.0
0
3DFACE
8
A-FLOOR
10
0.0
20
0.0
10
1.0
20
0.0
10
1.0
20
1.0
10
0.0
20
1.0
0
ENDSEC
0
EOF
`

func writeTempDXF(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.dxf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp dxf: %v", err)
	}
	return path
}

func TestRawTagScanExtractsFourKinds(t *testing.T) {
	path := writeTempDXF(t, minimalDXF)

	entities, err := rawTagScan(path)
	if err != nil {
		t.Fatalf("rawTagScan: %v", err)
	}

	want := map[Kind]bool{
		KindEllipse: false,
		KindSpline:  false,
		KindHatch:   false,
		Kind3DFace:  false,
	}
	for _, e := range entities {
		if _, ok := want[e.Kind]; ok {
			want[e.Kind] = true
		}
	}
	for k, found := range want {
		if !found {
			t.Errorf("expected an entity of kind %s, found none", k)
		}
	}
}

func TestRawTagScanIgnoresHeaderSection(t *testing.T) {
	path := writeTempDXF(t, minimalDXF)

	entities, err := rawTagScan(path)
	if err != nil {
		t.Fatalf("rawTagScan: %v", err)
	}
	for _, e := range entities {
		if e.Layer == "" {
			t.Errorf("entity %s has no layer; HEADER section tags may have leaked in", e.Kind)
		}
	}
}

func TestRawTagScanEllipseFields(t *testing.T) {
	path := writeTempDXF(t, minimalDXF)

	entities, err := rawTagScan(path)
	if err != nil {
		t.Fatalf("rawTagScan: %v", err)
	}
	for _, e := range entities {
		if e.Kind != KindEllipse {
			continue
		}
		if e.Layer != "A-WALL" {
			t.Errorf("layer = %q, want A-WALL", e.Layer)
		}
		if e.Center.X != 5.0 || e.Center.Y != 5.0 {
			t.Errorf("center = %+v, want (5,5)", e.Center)
		}
		if e.MajorAxisEnd.X != 3.0 || e.MajorAxisEnd.Y != 0.0 {
			t.Errorf("major axis end = %+v, want (3,0)", e.MajorAxisEnd)
		}
		if e.Ratio != 0.5 {
			t.Errorf("ratio = %v, want 0.5", e.Ratio)
		}
		return
	}
	t.Fatal("no ELLIPSE entity found")
}

func TestRawTagScanHatchBoundary(t *testing.T) {
	path := writeTempDXF(t, minimalDXF)

	entities, err := rawTagScan(path)
	if err != nil {
		t.Fatalf("rawTagScan: %v", err)
	}
	for _, e := range entities {
		if e.Kind != KindHatch {
			continue
		}
		if len(e.BoundaryLoops) != 1 || len(e.BoundaryLoops[0]) != 4 {
			t.Fatalf("boundary loops = %+v, want one loop of 4 points", e.BoundaryLoops)
		}
		return
	}
	t.Fatal("no HATCH entity found")
}

func TestRawTagScanMalformedFileDoesNotPanic(t *testing.T) {
	path := writeTempDXF(t, "not a dxf file\nat all\n")
	if _, err := rawTagScan(path); err != nil {
		t.Fatalf("rawTagScan on malformed input: %v", err)
	}
}

func TestRawTagScanMissingFile(t *testing.T) {
	if _, err := rawTagScan(filepath.Join(t.TempDir(), "missing.dxf")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
