package floorplan

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rehmanul/floorplan-engine/internal/geomx"
	"github.com/rehmanul/floorplan-engine/pkg/corridor"
	"github.com/rehmanul/floorplan-engine/pkg/placement"
	"github.com/rehmanul/floorplan-engine/pkg/rng"
	"github.com/rehmanul/floorplan-engine/pkg/space"
	"github.com/rehmanul/floorplan-engine/pkg/zones"
)

// Process drives the four pipeline stages — CAD parsing, space computation,
// placement, and corridor generation — in strict sequence, logging one
// structured event per stage boundary. Stage failures are fatal and
// short-circuit the remaining stages, as is a space-computation result with
// zero open-space regions; cancellation and empty-placement are non-fatal
// and return a best-so-far result with success=true.
func Process(ctx context.Context, path string, cfg Config, logger *zap.Logger) LayoutResult {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		logger.Error("config validation failed", zap.Error(err))
		return failure(err, start)
	}

	if cfg.RNGSeed == 0 {
		cfg.RNGSeed = generateSeed()
	}

	configHash := cfg.Hash()
	specRNG := rng.NewRNG(cfg.RNGSeed, "specgen", configHash)
	searchRNG := rng.NewRNG(cfg.RNGSeed, "search", configHash)

	set, err := zones.ParseWithWallBuffer(path, cfg.WallBuffer)
	if err != nil {
		logger.Error("stage failed", zap.String("stage", "parse"), zap.Error(err))
		return failure(err, start)
	}
	logger.Info("stage ok",
		zap.String("stage", "parse"),
		zap.Int("walls", len(set.Walls)),
		zap.Int("restricted", len(set.Restricted)),
		zap.Int("entrances", len(set.Entrances)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if cancelled(ctx) {
		return cancelledResult(set, nil, nil, start)
	}

	refined, err := space.ComputeWithClearance(set, cfg.EntranceClearance)
	if err != nil {
		logger.Error("stage failed", zap.String("stage", "space"), zap.Error(err))
		return failure(err, start)
	}
	envelope := space.Envelope(refined)
	logger.Info("stage ok",
		zap.String("stage", "space"),
		zap.Int("open_spaces", len(refined.OpenSpaces)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if len(refined.OpenSpaces) == 0 {
		logger.Error("no open space", zap.String("stage", "space"))
		return noOpenSpaceResult(refined, envelope, start)
	}

	if cancelled(ctx) {
		return cancelledResult(refined, nil, nil, start)
	}

	specs := placement.GenerateSpecs(specRNG, cfg.SizeMix, cfg.TargetCount)
	outcome := placement.Search(ctx, searchRNG, refined, specs, cfg.searchConfig())
	logger.Info("stage ok",
		zap.String("stage", "placement"),
		zap.Int("units", len(outcome.Units)),
		zap.Float64("fitness", outcome.Fitness),
		zap.Int("generations_run", outcome.GenerationsRun),
		zap.Duration("elapsed", time.Since(start)),
	)

	if cancelled(ctx) {
		return cancelledResult(refined, outcome.Units, nil, start)
	}

	var corridors []corridor.Corridor
	if !outcome.Empty {
		corridors = corridor.Generate(outcome.Units, refined.OpenSpaces, cfg.CorridorWidth)
	}
	logger.Info("stage ok",
		zap.String("stage", "corridor"),
		zap.Int("corridors", len(corridors)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return success(refined, envelope, outcome, corridors, cfg.GAPopulation, start)
}

func cancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func failure(err error, start time.Time) LayoutResult {
	return LayoutResult{
		Success: false,
		Error:   err.Error(),
		Elapsed: time.Since(start),
	}
}

func noOpenSpaceResult(set *zones.ZoneSet, envelope geomx.Rect, start time.Time) LayoutResult {
	return LayoutResult{
		Success:    false,
		Error:      NoOpenSpaceError{}.Error(),
		Walls:      set.Walls,
		Restricted: set.Restricted,
		Entrances:  set.Entrances,
		Envelope:   envelopeFromRect(envelope),
		Summary:    zoneSummary(set),
		Elapsed:    time.Since(start),
	}
}

func cancelledResult(set *zones.ZoneSet, units []placement.PlacedUnit, corridors []corridor.Corridor, start time.Time) LayoutResult {
	return LayoutResult{
		Success:    true,
		Error:      CancelledError{}.Error(),
		Walls:      set.Walls,
		Restricted: set.Restricted,
		Entrances:  set.Entrances,
		OpenSpaces: set.OpenSpaces,
		Units:      units,
		Corridors:  corridors,
		Envelope:   envelopeFromRect(space.Envelope(set)),
		Summary:    zoneSummary(set),
		Elapsed:    time.Since(start),
	}
}

func success(set *zones.ZoneSet, envelope geomx.Rect, outcome placement.PlacementOutcome, corridors []corridor.Corridor, populationSize int, start time.Time) LayoutResult {
	result := LayoutResult{
		Success:    true,
		Walls:      set.Walls,
		Restricted: set.Restricted,
		Entrances:  set.Entrances,
		OpenSpaces: set.OpenSpaces,
		Envelope:   envelopeFromRect(envelope),
		Summary:    zoneSummary(set),
		Elapsed:    time.Since(start),
	}

	if outcome.Empty {
		result.Error = PlacementEmptyError{}.Error()
		return result
	}

	result.Units = outcome.Units
	result.Corridors = corridors
	result.Fitness = outcome.Fitness
	result.Stats = &GenerationStats{
		GenerationsRun:      outcome.GenerationsRun,
		StallCount:          outcome.StallCount,
		PopulationFinalSize: populationSize,
	}
	for _, g := range outcome.BestFitnessLog {
		result.Stats.BestFitnessHistory = append(result.Stats.BestFitnessHistory, g.BestFitness)
	}

	totalArea := space.TotalOpenArea(set)
	unitArea := 0.0
	for _, u := range outcome.Units {
		unitArea += u.Area
	}
	corridorArea := 0.0
	for _, c := range corridors {
		corridorArea += c.Polygon.Area()
	}

	if totalArea > 0 {
		result.UnitCoveragePct = unitArea / totalArea * 100
		result.CorridorCoveragePct = corridorArea / totalArea * 100
		result.TotalCoveragePct = result.UnitCoveragePct + result.CorridorCoveragePct
	}

	return result
}

func zoneSummary(set *zones.ZoneSet) ZoneSummary {
	var s ZoneSummary
	for _, p := range set.Walls {
		s.WallsArea += p.Area()
	}
	for _, p := range set.Restricted {
		s.RestrictedArea += p.Area()
	}
	for _, p := range set.Entrances {
		s.EntranceArea += p.Area()
	}
	for _, p := range set.OpenSpaces {
		s.OpenArea += p.Area()
	}
	return s
}
