package zones

import (
	"strings"

	"github.com/rehmanul/floorplan-engine/internal/cadio"
	"github.com/rehmanul/floorplan-engine/internal/geomx"
)

// MinZoneArea mirrors internal/geomx.MinZoneArea: any extracted polygon
// smaller than this is discarded before classification, since it cannot
// represent a meaningful wall, room, or opening.
const MinZoneArea = geomx.MinZoneArea

// Parse reads the DXF file at path and returns its classified ZoneSet,
// buffering linear wall entities (LINE, ARC, SPLINE) to WallBuffer's
// half-width.
func Parse(path string) (*ZoneSet, error) {
	return ParseWithWallBuffer(path, WallBuffer)
}

// ParseWithWallBuffer is Parse with an overridable wall-buffer half-width,
// for callers whose configuration sets wall_buffer away from its default.
func ParseWithWallBuffer(path string, wallBuffer float64) (*ZoneSet, error) {
	entities, err := cadio.ReadEntities(path)
	if err != nil {
		return nil, &ParseError{Reason: ReasonUnreadableFile, Path: path, Err: err}
	}

	raw := rawZonesFromEntities(entities, wallBuffer)
	if len(raw) == 0 {
		return nil, &ParseError{Reason: ReasonNoEntities, Path: path}
	}

	return partition(raw), nil
}

// rawZonesFromEntities extracts and classifies polygons for every entity,
// discarding any polygon below MinZoneArea.
func rawZonesFromEntities(entities []cadio.RawEntity, wallBuffer float64) []RawZone {
	var out []RawZone
	for _, e := range entities {
		for _, poly := range extractPolygons(e, wallBuffer) {
			if poly.Area() < MinZoneArea {
				continue
			}
			out = append(out, RawZone{
				Kind:      classify(poly, e.Layer, e.ACIColor, e.TrueColor),
				Polygon:   poly,
				LayerName: e.Layer,
				ACIColor:  e.ACIColor,
				TrueColor: e.TrueColor,
			})
		}
	}
	return out
}

func partition(raw []RawZone) *ZoneSet {
	set := &ZoneSet{}
	for _, z := range raw {
		switch z.Kind {
		case Wall:
			set.Walls = append(set.Walls, z.Polygon)
		case Restricted:
			set.Restricted = append(set.Restricted, z.Polygon)
		case Entrance:
			set.Entrances = append(set.Entrances, z.Polygon)
		case OpenSpace:
			set.OpenSpaces = append(set.OpenSpaces, z.Polygon)
		}
	}
	return set
}

// classify applies the priority-ordered cascade: true-color RGB, then ACI
// color index, then layer-name substring, then area fallback, then a
// conservative default of Wall. The first matching rule decides; later
// rules never run once one has matched.
func classify(poly geomx.Polygon, layer string, aci uint16, trueColor *uint32) Kind {
	if trueColor != nil {
		if k, ok := classifyTrueColor(*trueColor); ok {
			return k
		}
	}
	if k, ok := classifyACI(aci); ok {
		return k
	}
	if k, ok := classifyLayerName(layer); ok {
		return k
	}
	if k, ok := classifyArea(poly.Area()); ok {
		return k
	}
	return Wall
}

func classifyTrueColor(packed uint32) (Kind, bool) {
	r := uint8(packed >> 16)
	g := uint8(packed >> 8)
	b := uint8(packed)

	switch {
	case r > 180 && g < 100 && b < 100:
		return Entrance, true
	case b > 180 && r < 100 && g < 150:
		return Restricted, true
	case (r < 100 && g < 100 && b < 100) || (r > 200 && g > 200 && b > 200):
		return Wall, true
	default:
		return Wall, false
	}
}

func classifyACI(aci uint16) (Kind, bool) {
	switch aci {
	case 1:
		return Entrance, true
	case 5:
		return Restricted, true
	case 0, 7, 8, 256:
		return Wall, true
	default:
		return Wall, false
	}
}

func classifyLayerName(layer string) (Kind, bool) {
	upper := strings.ToUpper(layer)
	if containsAny(upper, "WALL", "MUR", "STRUCTURE", "OUTLINE") {
		return Wall, true
	}
	if containsAny(upper, "STAIR", "ELEVATOR", "LIFT", "RESTRICTED", "EQUIPMENT") {
		return Restricted, true
	}
	if containsAny(upper, "DOOR", "ENTRANCE", "OPENING", "PORTE", "EXIT") {
		return Entrance, true
	}
	return Wall, false
}

func classifyArea(area float64) (Kind, bool) {
	switch {
	case area < 2.0:
		return Entrance, true
	case area > 100.0:
		return Wall, true
	default:
		return Wall, false
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
