package placement

import (
	"context"
	"time"

	"github.com/rehmanul/floorplan-engine/internal/geomx"
	"github.com/rehmanul/floorplan-engine/pkg/rng"
	"github.com/rehmanul/floorplan-engine/pkg/zones"
)

// SearchConfig holds the evolutionary search's tunable parameters. Zero
// values are not valid; callers should start from DefaultSearchConfig.
type SearchConfig struct {
	PopulationSize int
	MaxGenerations int
	MutationRate   float64
	CrossoverRate  float64
	EliteSize      int
	TournamentSize int
	StallLimit     int
	MinSpacing     float64
	Deadline       time.Duration
}

// DefaultSearchConfig returns the fixed defaults from the placement design.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		PopulationSize: 50,
		MaxGenerations: 100,
		MutationRate:   0.10,
		CrossoverRate:  0.70,
		EliteSize:      10,
		TournamentSize: 3,
		StallLimit:     20,
		MinSpacing:     MinSpacing,
		Deadline:       30 * time.Second,
	}
}

type scored struct {
	chrom   Chromosome
	units   []PlacedUnit
	fitness float64
}

// Search runs the bounded evolutionary search over specs against set's open
// spaces and forbidden zones, returning the best placement seen at any
// point during the run (not necessarily the final generation's best).
func Search(ctx context.Context, r *rng.RNG, set *zones.ZoneSet, specs []UnitSpec, cfg SearchConfig) PlacementOutcome {
	if len(specs) == 0 {
		return PlacementOutcome{Empty: true}
	}

	openSpaces := zones.AsMultiPolygon(set.OpenSpaces)
	forbidden := ForbiddenZone(set.Restricted, set.Entrances)
	domain := envelopeOf(openSpaces)

	population := initialPopulation(r, cfg.PopulationSize, specs, domain)

	var best *scored
	var log []GenerationStats
	stall := 0
	deadlineAt := time.Now().Add(cfg.Deadline)

	generationsRun := 0
	for gen := 0; gen < cfg.MaxGenerations; gen++ {
		select {
		case <-ctx.Done():
			generationsRun = gen
			goto done
		default:
		}
		if time.Now().After(deadlineAt) {
			generationsRun = gen
			goto done
		}

		evaluated := evaluatePopulation(population, specs, openSpaces, forbidden, cfg.MinSpacing)
		genBest := fittest(evaluated)

		improved := best == nil || genBest.fitness > best.fitness
		if improved {
			best = genBest
			stall = 0
		} else {
			stall++
		}
		log = append(log, GenerationStats{Generation: gen, BestFitness: genBestFitness(best)})

		if stall >= cfg.StallLimit {
			generationsRun = gen + 1
			goto done
		}

		population = nextGeneration(r, evaluated, specs, cfg, domain)
		generationsRun = gen + 1
	}

done:
	if best == nil || len(best.units) == 0 {
		return PlacementOutcome{Empty: true, GenerationsRun: generationsRun, StallCount: stall, BestFitnessLog: log}
	}

	totalOpen := openSpaces.Area()
	coverage := 0.0
	if totalOpen > 0 {
		coverage = unitArea(best.units) / totalOpen * 100
	}

	return PlacementOutcome{
		Units:           best.units,
		Fitness:         best.fitness,
		CoveragePercent: coverage,
		GenerationsRun:  generationsRun,
		StallCount:      stall,
		BestFitnessLog:  log,
	}
}

func genBestFitness(best *scored) float64 {
	if best == nil {
		return 0
	}
	return best.fitness
}

func unitArea(units []PlacedUnit) float64 {
	var a float64
	for _, u := range units {
		a += u.Area
	}
	return a
}

func envelopeOf(mp geomx.MultiPolygon) geomx.Rect {
	return mp.Bounds()
}

func initialPopulation(r *rng.RNG, size int, specs []UnitSpec, domain geomx.Rect) []Chromosome {
	pop := make([]Chromosome, size)
	for i := range pop {
		pop[i] = randomChromosome(r, specs, domain)
	}
	return pop
}

func randomChromosome(r *rng.RNG, specs []UnitSpec, domain geomx.Rect) Chromosome {
	c := make(Chromosome, len(specs))
	for i, spec := range specs {
		c[i] = randomGene(r, spec, domain)
	}
	return c
}

// randomGene samples a fresh (x, y, rotation) within the envelope bounds
// shrunk by the gene's own spec footprint, so [min_x, max_x - w'] never
// asks the candidate to start past where it could still fit — a given
// sample can still fail validation against the real open-space shape, but
// it is never trivially out of the envelope.
func randomGene(r *rng.RNG, spec UnitSpec, domain geomx.Rect) Gene {
	rot := Rotation0
	if r.Bool() {
		rot = Rotation90
	}
	w, h := spec.Width, spec.Height
	if rot == Rotation90 {
		w, h = h, w
	}

	x := domain.MinX
	maxX := domain.MaxX - w
	if maxX > domain.MinX {
		x = r.Float64Range(domain.MinX, maxX)
	}

	y := domain.MinY
	maxY := domain.MaxY - h
	if maxY > domain.MinY {
		y = r.Float64Range(domain.MinY, maxY)
	}

	return Gene{X: x, Y: y, Rotation: rot}
}

func evaluatePopulation(pop []Chromosome, specs []UnitSpec, openSpaces, forbidden geomx.MultiPolygon, minSpacing float64) []scored {
	out := make([]scored, len(pop))
	for i, c := range pop {
		units := Realize(c, specs, openSpaces, forbidden, minSpacing)
		out[i] = scored{chrom: c, units: units, fitness: Fitness(units)}
	}
	return out
}

func fittest(evaluated []scored) *scored {
	best := evaluated[0]
	for _, e := range evaluated[1:] {
		if e.fitness > best.fitness {
			best = e
		}
	}
	return &best
}

// nextGeneration builds the following generation: the top EliteSize
// chromosomes survive unchanged, the remainder are filled by
// tournament-selected, crossed-over, and mutated offspring. Only the
// chromosomes are carried over; the next generation's evaluation realizes
// and scores the elites again, and since Realize and Fitness are
// deterministic their fitness comes out the same as before.
func nextGeneration(r *rng.RNG, evaluated []scored, specs []UnitSpec, cfg SearchConfig, domain geomx.Rect) []Chromosome {
	sorted := append([]scored{}, evaluated...)
	sortByFitnessDesc(sorted)

	next := make([]Chromosome, 0, cfg.PopulationSize)
	eliteN := cfg.EliteSize
	if eliteN > len(sorted) {
		eliteN = len(sorted)
	}
	for i := 0; i < eliteN; i++ {
		next = append(next, sorted[i].chrom)
	}

	for len(next) < cfg.PopulationSize {
		p1 := tournamentSelect(r, sorted, cfg.TournamentSize)
		p2 := tournamentSelect(r, sorted, cfg.TournamentSize)

		child := p1
		if r.Float64() < cfg.CrossoverRate {
			child = crossover(r, p1, p2)
		}
		if r.Float64() < cfg.MutationRate {
			child = mutate(r, child, specs, domain)
		}
		next = append(next, child)
	}

	return next
}

func sortByFitnessDesc(s []scored) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j].fitness > s[j-1].fitness; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// tournamentSelect draws tournamentSize chromosomes uniformly without
// replacement and returns the fittest.
func tournamentSelect(r *rng.RNG, sorted []scored, tournamentSize int) Chromosome {
	n := len(sorted)
	if tournamentSize > n {
		tournamentSize = n
	}
	indices := permIndices(r, n)
	best := sorted[indices[0]]
	for _, idx := range indices[1:tournamentSize] {
		if sorted[idx].fitness > best.fitness {
			best = sorted[idx]
		}
	}
	return best.chrom
}

// permIndices returns a uniformly random permutation of [0, n) using the
// stage RNG's Shuffle, giving draw-without-replacement sampling for
// tournament selection and mutation's gene subset.
func permIndices(r *rng.RNG, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	r.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
	return idx
}

// crossover builds a child by splicing parent1's prefix with parent2's
// suffix at a uniformly chosen single point k in [1, len-1].
func crossover(r *rng.RNG, parent1, parent2 Chromosome) Chromosome {
	length := len(parent1)
	if length < 2 {
		return append(Chromosome{}, parent1...)
	}
	k := r.IntRange(1, length-1)
	child := make(Chromosome, length)
	copy(child[:k], parent1[:k])
	copy(child[k:], parent2[k:])
	return child
}

// mutate resamples a random subset of U(0.1, 0.2)*len genes to a fresh
// position and rotation within domain.
func mutate(r *rng.RNG, c Chromosome, specs []UnitSpec, domain geomx.Rect) Chromosome {
	length := len(c)
	if length == 0 {
		return c
	}
	fraction := r.Float64Range(0.1, 0.2)
	count := int(fraction * float64(length))
	if count < 1 {
		count = 1
	}

	mutated := append(Chromosome{}, c...)
	indices := permIndices(r, length)
	for _, idx := range indices[:count] {
		if idx >= len(specs) {
			continue
		}
		mutated[idx] = randomGene(r, specs[idx], domain)
	}
	return mutated
}
