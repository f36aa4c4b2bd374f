package floorplan

import (
	"time"

	"github.com/rehmanul/floorplan-engine/internal/geomx"
	"github.com/rehmanul/floorplan-engine/pkg/corridor"
	"github.com/rehmanul/floorplan-engine/pkg/placement"
)

// Envelope is the axis-aligned bounding rectangle of all input geometry,
// computed once by the space computer and reused by the placement engine's
// gene-sampling domain and by coverage metrics.
type Envelope struct {
	Min geomx.Point
	Max geomx.Point
}

func envelopeFromRect(r geomx.Rect) Envelope {
	return Envelope{Min: geomx.Point{X: r.MinX, Y: r.MinY}, Max: geomx.Point{X: r.MaxX, Y: r.MaxY}}
}

// ZoneSummary totals the area of each classified zone kind, supplementing
// the coverage metrics with a per-kind breakdown.
type ZoneSummary struct {
	WallsArea      float64
	RestrictedArea float64
	EntranceArea   float64
	OpenArea       float64
}

// GenerationStats mirrors the evolutionary search's per-run diagnostics.
// Purely observational; no invariant depends on it.
type GenerationStats struct {
	GenerationsRun      int
	BestFitnessHistory  []float64
	StallCount          int
	PopulationFinalSize int
}

// LayoutResult is the orchestrator's sole output: the classified zones, the
// placed units, the corridor network, and the derived metrics. On failure,
// Success is false, Units and Corridors are empty, and Error carries a
// description; the zone slices are empty too, except for a no-open-space
// result, which still carries the classified walls, restricted zones, and
// entrances.
type LayoutResult struct {
	Success bool
	Error   string

	Walls      []geomx.Polygon
	Restricted []geomx.Polygon
	Entrances  []geomx.Polygon
	OpenSpaces []geomx.Polygon
	Units      []placement.PlacedUnit
	Corridors  []corridor.Corridor

	Envelope Envelope
	Summary  ZoneSummary
	Stats    *GenerationStats

	Fitness             float64
	UnitCoveragePct     float64
	CorridorCoveragePct float64
	TotalCoveragePct    float64

	Elapsed time.Duration
}
