// Package zones turns the raw entities read by internal/cadio into a
// ZoneSet: four disjoint semantic layers (walls, restricted areas,
// entrances, open floor) that the rest of the pipeline operates on.
//
// # Classification
//
// Each raw entity is first reduced to one or more polygons (internal/geomx
// types), then run through a priority-ordered cascade: true-color RGB, ACI
// color index, layer-name substring match, area fallback, and finally a
// conservative default of Wall. The first matching rule wins; later rules
// never override an earlier match.
//
// # Usage
//
//	set, err := zones.Parse(path)
package zones
