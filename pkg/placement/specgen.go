package placement

import (
	"math"

	"github.com/rehmanul/floorplan-engine/pkg/rng"
)

// bandOrder fixes the iteration order used for both count allocation and
// the largest-remainder rounding correction below.
var bandOrder = []SizeBand{B0_1, B1_3, B3_5, B5_10}

// GenerateSpecs emits target_count UnitSpecs distributed across the four
// size bands according to mix, then shuffles their order so the search
// sees no positional bias by band.
//
// Each band's raw share is round(target_count * mix[b]); naive per-band
// rounding can over- or under-shoot target_count by a unit or two when the
// fractional remainders don't cancel out; the remainder is corrected by
// adding or removing from the bands with the largest fractional part
// first, so the returned slice always has exactly target_count specs.
func GenerateSpecs(r *rng.RNG, mix SizeMix, targetCount int) []UnitSpec {
	if targetCount <= 0 {
		return nil
	}

	counts := make(map[SizeBand]int, len(bandOrder))
	remainders := make(map[SizeBand]float64, len(bandOrder))
	assigned := 0
	for _, b := range bandOrder {
		raw := float64(targetCount) * mix.fraction(b)
		n := int(math.Round(raw))
		counts[b] = n
		remainders[b] = raw - math.Floor(raw)
		assigned += n
	}

	for assigned != targetCount {
		if assigned < targetCount {
			b := largestRemainder(remainders, counts, false)
			counts[b]++
			remainders[b] = -1 // Consumed; don't pick again this pass.
			assigned++
		} else {
			b := largestRemainder(remainders, counts, true)
			counts[b]--
			remainders[b] = 2 // Consumed.
			assigned--
		}
	}

	specs := make([]UnitSpec, 0, targetCount)
	for _, b := range bandOrder {
		for i := 0; i < counts[b]; i++ {
			specs = append(specs, newUnitSpec(r, b))
		}
	}

	r.Shuffle(len(specs), func(i, j int) {
		specs[i], specs[j] = specs[j], specs[i]
	})

	return specs
}

// largestRemainder picks the band with the largest fractional remainder
// (or, for removal, the eligible band with the largest remainder among
// those that still have units to remove) to absorb a +1/-1 rounding
// correction.
func largestRemainder(remainders map[SizeBand]float64, counts map[SizeBand]int, removing bool) SizeBand {
	best := bandOrder[0]
	bestVal := math.Inf(-1)
	for _, b := range bandOrder {
		if removing && counts[b] <= 0 {
			continue
		}
		if remainders[b] > bestVal {
			bestVal = remainders[b]
			best = b
		}
	}
	return best
}

func newUnitSpec(r *rng.RNG, b SizeBand) UnitSpec {
	lo, hi := sizeBandRange(b)
	area := r.Float64Range(lo, hi)
	aspect := r.Float64Range(1.2, 1.8)
	width := math.Sqrt(area * aspect)
	height := area / width
	return UnitSpec{
		TargetArea: area,
		Width:      width,
		Height:     height,
		Category:   b,
	}
}
