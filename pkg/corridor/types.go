package corridor

import "github.com/rehmanul/floorplan-engine/internal/geomx"

// Corridor is an axis-aligned rectangle connecting two y-adjacent rows of
// placed units.
type Corridor struct {
	ID        int
	Polygon   geomx.Polygon
	Width     float64
	Length    float64
	Connects  [2]int // Row indices, in sorted (mean-y ascending) order.
	Endpoints [2]geomx.Point
}

// row is an internal grouping of unit indices sharing a similar center-y,
// along with its aggregate footprint bounds.
type row struct {
	unitIndices []int
	bounds      geomx.Rect
	meanY       float64
}
