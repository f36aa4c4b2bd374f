// Package placement packs a target count of rectangular ílots into a
// floor's open space, matching a user-supplied size mix. It runs a bounded
// evolutionary search over (x, y, rotation) chromosomes: tournament
// selection, single-point crossover, mutation, and elitism, scored by a
// composite fitness favoring unit count first, then covered area, category
// diversity, and inter-unit spacing.
//
// # Usage
//
//	specs := placement.GenerateSpecs(rngSpecs, mix, targetCount)
//	outcome := placement.Search(ctx, rngSearch, zoneSet, specs, cfg)
package placement
