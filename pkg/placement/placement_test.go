package placement

import (
	"context"
	"crypto/sha256"
	"math"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/rehmanul/floorplan-engine/internal/geomx"
	"github.com/rehmanul/floorplan-engine/pkg/rng"
	"github.com/rehmanul/floorplan-engine/pkg/zones"
)

func testRNG(stage string) *rng.RNG {
	hash := sha256.Sum256([]byte("placement-test-config"))
	return rng.NewRNG(42, stage, hash[:])
}

func TestGenerateSpecsMatchesTargetCountExactly(t *testing.T) {
	mix := SizeMix{F0_1: 0.3, F1_3: 0.3, F3_5: 0.25, F5_10: 0.15}
	for _, n := range []int{1, 7, 13, 50, 97, 101} {
		specs := GenerateSpecs(testRNG("specgen"), mix, n)
		if len(specs) != n {
			t.Errorf("GenerateSpecs(target=%d) returned %d specs, want exactly %d", n, len(specs), n)
		}
	}
}

func TestGenerateSpecsAspectWithinRange(t *testing.T) {
	mix := SizeMix{F0_1: 0.25, F1_3: 0.25, F3_5: 0.25, F5_10: 0.25}
	specs := GenerateSpecs(testRNG("specgen2"), mix, 200)
	for _, s := range specs {
		aspect := s.Width / s.Height
		if aspect < 1.2-1e-6 || aspect > 1.8+1e-6 {
			t.Errorf("spec aspect = %v, want within [1.2, 1.8]", aspect)
		}
		if math.Abs(s.Width*s.Height-s.TargetArea) > 1e-6 {
			t.Errorf("width*height = %v, want target area %v", s.Width*s.Height, s.TargetArea)
		}
	}
}

func TestGenerateSpecsZeroTargetCount(t *testing.T) {
	mix := SizeMix{F0_1: 1.0}
	if specs := GenerateSpecs(testRNG("specgen3"), mix, 0); specs != nil {
		t.Errorf("GenerateSpecs(target=0) = %v, want nil", specs)
	}
}

func TestFitnessCountDominatesArea(t *testing.T) {
	small := []PlacedUnit{{Area: 100, Category: B0_1, Center: geomx.Point{}}}
	two := []PlacedUnit{
		{Area: 0.6, Category: B0_1, Center: geomx.Point{X: 0, Y: 0}},
		{Area: 0.6, Category: B1_3, Center: geomx.Point{X: 1, Y: 0}},
	}
	if Fitness(two) <= Fitness(small) {
		t.Errorf("two small units (fitness %v) should outscore one huge unit (fitness %v)", Fitness(two), Fitness(small))
	}
}

func TestFitnessEmptyIsZero(t *testing.T) {
	if got := Fitness(nil); got != 0 {
		t.Errorf("Fitness(nil) = %v, want 0", got)
	}
}

func TestRealizeRejectsOutsideOpenSpace(t *testing.T) {
	openSpaces := geomx.MultiPolygon{geomx.Rect{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}.Polygon()}
	spec := UnitSpec{Width: 2, Height: 1, TargetArea: 2, Category: B1_3}
	g := Gene{X: 4, Y: 4, Rotation: Rotation0} // rectangle would extend to x=6, outside bounds
	_, ok := realize(g, spec, openSpaces, nil, nil, 0, 0)
	if ok {
		t.Error("expected realize to reject a candidate extending outside open space")
	}
}

func TestRealizeAcceptsContainedCandidate(t *testing.T) {
	openSpaces := geomx.MultiPolygon{geomx.Rect{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}.Polygon()}
	spec := UnitSpec{Width: 2, Height: 1, TargetArea: 2, Category: B1_3}
	g := Gene{X: 1, Y: 1, Rotation: Rotation0}
	u, ok := realize(g, spec, openSpaces, nil, nil, 0, 0)
	if !ok {
		t.Fatal("expected realize to accept a fully-contained candidate")
	}
	if math.Abs(u.Area-2) > 1e-9 {
		t.Errorf("area = %v, want 2", u.Area)
	}
}

func TestRealizeRotationSwapsDimensions(t *testing.T) {
	openSpaces := geomx.MultiPolygon{geomx.Rect{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}.Polygon()}
	spec := UnitSpec{Width: 3, Height: 1, TargetArea: 3, Category: B3_5}
	g := Gene{X: 1, Y: 1, Rotation: Rotation90}
	u, ok := realize(g, spec, openSpaces, nil, nil, 0, 0)
	if !ok {
		t.Fatal("expected realize to accept rotated candidate")
	}
	if u.Width != 1 || u.Height != 3 {
		t.Errorf("rotated unit dims = (%v, %v), want (1, 3)", u.Width, u.Height)
	}
}

func TestRealizeRejectsForbiddenOverlap(t *testing.T) {
	openSpaces := geomx.MultiPolygon{geomx.Rect{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}.Polygon()}
	forbidden := geomx.MultiPolygon{geomx.Rect{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}.Polygon()}
	spec := UnitSpec{Width: 1, Height: 1, TargetArea: 1, Category: B0_1}
	g := Gene{X: 1, Y: 1, Rotation: Rotation0}
	if _, ok := realize(g, spec, openSpaces, forbidden, nil, 0, 0); ok {
		t.Error("expected realize to reject a candidate overlapping the forbidden zone")
	}
}

func TestSearchOnAmpleOpenSpacePlacesUnits(t *testing.T) {
	set := &zones.ZoneSet{
		OpenSpaces: []geomx.Polygon{geomx.Rect{MinX: 0, MinY: 0, MaxX: 20, MaxY: 20}.Polygon()},
	}
	mix := SizeMix{F0_1: 0.25, F1_3: 0.25, F3_5: 0.25, F5_10: 0.25}
	specs := GenerateSpecs(testRNG("specsearch"), mix, 8)

	cfg := DefaultSearchConfig()
	cfg.MaxGenerations = 15
	cfg.Deadline = 5 * time.Second

	outcome := Search(context.Background(), testRNG("search"), set, specs, cfg)
	if outcome.Empty {
		t.Fatal("expected a non-empty placement on ample open space")
	}
	if len(outcome.Units) == 0 {
		t.Error("expected at least one placed unit")
	}
	if outcome.CoveragePercent <= 0 {
		t.Errorf("coverage percent = %v, want > 0", outcome.CoveragePercent)
	}
}

func TestSearchEmptyWhenNoOpenSpace(t *testing.T) {
	set := &zones.ZoneSet{}
	mix := SizeMix{F0_1: 1.0}
	specs := GenerateSpecs(testRNG("specempty"), mix, 5)

	cfg := DefaultSearchConfig()
	cfg.MaxGenerations = 5

	outcome := Search(context.Background(), testRNG("searchempty"), set, specs, cfg)
	if !outcome.Empty {
		t.Error("expected an empty outcome with no open space to place into")
	}
}

func TestSearchHonorsContextCancellation(t *testing.T) {
	set := &zones.ZoneSet{
		OpenSpaces: []geomx.Polygon{geomx.Rect{MinX: 0, MinY: 0, MaxX: 20, MaxY: 20}.Polygon()},
	}
	mix := SizeMix{F0_1: 1.0}
	specs := GenerateSpecs(testRNG("speccancel"), mix, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := DefaultSearchConfig()
	outcome := Search(ctx, testRNG("searchcancel"), set, specs, cfg)
	if outcome.GenerationsRun > 1 {
		t.Errorf("generations run = %d after immediate cancellation, want <= 1", outcome.GenerationsRun)
	}
}

func TestCrossoverSplicesAtSinglePoint(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		length := rapid.IntRange(2, 10).Draw(rt, "length")
		p1 := make(Chromosome, length)
		p2 := make(Chromosome, length)
		for i := range p1 {
			p1[i] = Gene{X: float64(i), Rotation: Rotation0}
			p2[i] = Gene{X: float64(i) + 100, Rotation: Rotation90}
		}
		child := crossover(testRNG("crossover"), p1, p2)
		if len(child) != length {
			rt.Fatalf("child length = %d, want %d", len(child), length)
		}
		// Every gene in the child must have come from one parent or the other,
		// verbatim, at its own index.
		for i, g := range child {
			if g != p1[i] && g != p2[i] {
				rt.Fatalf("child[%d] = %+v, not equal to either parent's gene at that index", i, g)
			}
		}
	})
}
