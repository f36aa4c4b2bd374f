package placement

import "math"

// numCategories is the number of distinct SizeBands a placement can draw
// from; category diversity is normalized against this.
const numCategories = 4

// Fitness scores a realized placement: count dominates (so the search
// always prefers more units), area is a tie-breaker among equal counts,
// and category diversity and spacing are smaller refinement terms.
//
//	fitness = 10*n + 0.1*A + 5*C + 2*S
func Fitness(units []PlacedUnit) float64 {
	n := len(units)
	if n == 0 {
		return 0
	}

	var area float64
	seen := make(map[SizeBand]bool, numCategories)
	for _, u := range units {
		area += u.Area
		seen[u.Category] = true
	}
	diversity := float64(len(seen)) / numCategories

	spacing := spacingScore(units)

	return 10*float64(n) + 0.1*area + 5*diversity + 2*spacing
}

// spacingScore is 1.0 when units are neither too cramped nor too sparse on
// average (mean nearest-neighbor center distance in [0.5, 2.0] meters), and
// 0.5 otherwise. A single unit has no neighbor to measure against, so it is
// scored 1.0 by definition.
func spacingScore(units []PlacedUnit) float64 {
	if len(units) <= 1 {
		return 1.0
	}

	var sum float64
	for i, u := range units {
		min := math.Inf(1)
		for j, v := range units {
			if i == j {
				continue
			}
			d := centerDistance(u, v)
			if d < min {
				min = d
			}
		}
		sum += min
	}
	mean := sum / float64(len(units))
	if mean >= 0.5 && mean <= 2.0 {
		return 1.0
	}
	return 0.5
}

func centerDistance(a, b PlacedUnit) float64 {
	dx := a.Center.X - b.Center.X
	dy := a.Center.Y - b.Center.Y
	return math.Hypot(dx, dy)
}
