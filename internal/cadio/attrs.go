package cadio

import (
	"github.com/yofu/dxf/entity"
	"github.com/yofu/dxf/table"
)

// layerName, aciColor, and trueColor read the classification-relevant
// attributes off whichever concrete yofu/dxf entity type we were handed.
// The library attaches layer and ACI color directly as fields on each
// entity struct (embedded from a common base), so these are simple
// switches rather than an interface — kept explicit, per spec §9's
// preference for exhaustive type switches over entity kinds.

func layerName(e entity.Entity) string {
	switch v := e.(type) {
	case *entity.Line:
		return layerOf(v.Layer)
	case *entity.LwPolyline:
		return layerOf(v.Layer)
	case *entity.Polyline:
		return layerOf(v.Layer)
	case *entity.Circle:
		return layerOf(v.Layer)
	case *entity.Arc:
		return layerOf(v.Layer)
	case *entity.Solid:
		return layerOf(v.Layer)
	default:
		return ""
	}
}

func layerOf(l *table.Layer) string {
	if l == nil {
		return ""
	}
	return l.Name
}

func aciColor(e entity.Entity) uint16 {
	switch v := e.(type) {
	case *entity.Line:
		return uint16(v.Color)
	case *entity.LwPolyline:
		return uint16(v.Color)
	case *entity.Polyline:
		return uint16(v.Color)
	case *entity.Circle:
		return uint16(v.Color)
	case *entity.Arc:
		return uint16(v.Color)
	case *entity.Solid:
		return uint16(v.Color)
	default:
		return 256 // BYLAYER, treated as Wall by the classification cascade.
	}
}

// trueColor is always nil: yofu/dxf does not surface the 24-bit true-color
// extended data (DXF group code 420) on its typed entities. The classifier
// cascade (spec §4.1 rule 1) is skipped whenever TrueColor is nil and falls
// through to the ACI, layer-name, and area rules, which is the common case
// for DXF files authored without per-entity true-color overrides.
func trueColor(entity.Entity) *uint32 {
	return nil
}
