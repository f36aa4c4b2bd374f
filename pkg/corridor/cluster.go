package corridor

import (
	"sort"

	"github.com/rehmanul/floorplan-engine/pkg/placement"
)

// RowTolerance is the maximum y-gap between consecutive units' centers for
// them to join the same row.
const RowTolerance = 3.0

// clusterRows sorts units by center-y and greedily groups consecutive units
// whose gap is below RowTolerance, then drops any group with fewer than two
// members (a "row" of one unit has nothing to route a corridor to). Fewer
// than four units overall skips clustering entirely, since the corridor
// generator has nothing meaningful to connect either way.
func clusterRows(units []placement.PlacedUnit) []row {
	if len(units) < 4 {
		return nil
	}

	order := make([]int, len(units))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return units[order[i]].Center.Y < units[order[j]].Center.Y
	})

	var rows []row
	var current []int
	for i, idx := range order {
		if i == 0 {
			current = []int{idx}
			continue
		}
		prevY := units[order[i-1]].Center.Y
		y := units[idx].Center.Y
		if y-prevY < RowTolerance {
			current = append(current, idx)
		} else {
			rows = append(rows, finalizeRow(units, current))
			current = []int{idx}
		}
	}
	if len(current) > 0 {
		rows = append(rows, finalizeRow(units, current))
	}

	var valid []row
	for _, r := range rows {
		if len(r.unitIndices) >= 2 {
			valid = append(valid, r)
		}
	}

	sort.Slice(valid, func(i, j int) bool { return valid[i].meanY < valid[j].meanY })
	return valid
}

func finalizeRow(units []placement.PlacedUnit, indices []int) row {
	bounds := units[indices[0]].Polygon.Bounds()
	sumY := 0.0
	for _, idx := range indices {
		b := units[idx].Polygon.Bounds()
		bounds = bounds.Union(b)
		sumY += units[idx].Center.Y
	}
	return row{
		unitIndices: indices,
		bounds:      bounds,
		meanY:       sumY / float64(len(indices)),
	}
}
