package placement

import "github.com/rehmanul/floorplan-engine/internal/geomx"

// SizeBand classifies a unit's target area into one of four half-open
// ranges (m²).
type SizeBand int

const (
	B0_1 SizeBand = iota
	B1_3
	B3_5
	B5_10
)

func (b SizeBand) String() string {
	switch b {
	case B0_1:
		return "0-1"
	case B1_3:
		return "1-3"
	case B3_5:
		return "3-5"
	case B5_10:
		return "5-10"
	default:
		return "unknown"
	}
}

// sizeBandRange returns the half-open [lo, hi) area range for a band. The
// lower bound of B0_1 is 0.5, not 0, to keep a derivable width/height pair.
func sizeBandRange(b SizeBand) (lo, hi float64) {
	switch b {
	case B0_1:
		return 0.5, 1.0
	case B1_3:
		return 1.0, 3.0
	case B3_5:
		return 3.0, 5.0
	case B5_10:
		return 5.0, 10.0
	default:
		return 0.5, 1.0
	}
}

// SizeMix gives the target fraction of units in each band; the four
// fractions must sum to 1.0 within ±0.01.
type SizeMix struct {
	F0_1  float64
	F1_3  float64
	F3_5  float64
	F5_10 float64
}

// Sum returns the total of the four fractions, for validating a SizeMix
// sums to 1.0 ± 0.01.
func (m SizeMix) Sum() float64 {
	return m.F0_1 + m.F1_3 + m.F3_5 + m.F5_10
}

func (m SizeMix) fraction(b SizeBand) float64 {
	switch b {
	case B0_1:
		return m.F0_1
	case B1_3:
		return m.F1_3
	case B3_5:
		return m.F3_5
	case B5_10:
		return m.F5_10
	default:
		return 0
	}
}

// UnitSpec is one ílot's pre-rotation target footprint, generated before the
// search begins.
type UnitSpec struct {
	TargetArea float64
	Width      float64
	Height     float64
	Category   SizeBand
}

// Rotation is one of the two orientations a gene may propose.
type Rotation int

const (
	Rotation0  Rotation = 0
	Rotation90 Rotation = 90
)

// Gene proposes a placement for the UnitSpec at the same index in a
// Chromosome's parallel spec list.
type Gene struct {
	X, Y     float64
	Rotation Rotation
}

// Chromosome is an ordered set of placement proposals, one per UnitSpec.
type Chromosome []Gene

// PlacedUnit is one ílot that survived validation against open space,
// forbidden zones, and minimum spacing.
type PlacedUnit struct {
	ID       int
	Polygon  geomx.Polygon
	Area     float64
	Category SizeBand
	Center   geomx.Point
	Width    float64
	Height   float64
	Rotation Rotation
}

// GenerationStats records one generation's best-fitness snapshot, used to
// build the search's convergence history.
type GenerationStats struct {
	Generation  int
	BestFitness float64
}

// PlacementOutcome is the result of a search: either a realized placement
// or Empty if no chromosome ever produced a placed unit.
type PlacementOutcome struct {
	Empty bool

	Units           []PlacedUnit
	Fitness         float64
	CoveragePercent float64
	GenerationsRun  int
	StallCount      int
	BestFitnessLog  []GenerationStats
}
