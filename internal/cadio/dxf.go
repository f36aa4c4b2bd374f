package cadio

import (
	"fmt"
	"math"

	dxf "github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/rehmanul/floorplan-engine/internal/geomx"
)

// ErrUnreadable wraps any failure to open or parse the DXF file itself,
// distinct from a successfully-parsed document with zero usable entities.
type ErrUnreadable struct {
	Path string
	Err  error
}

func (e *ErrUnreadable) Error() string {
	return fmt.Sprintf("cadio: cannot read DXF file %q: %v", e.Path, e.Err)
}

func (e *ErrUnreadable) Unwrap() error { return e.Err }

// ReadEntities opens the DXF file at path and returns every model-space
// entity this pipeline consults (LINE, LWPOLYLINE, POLYLINE, ARC, CIRCLE,
// ELLIPSE, SPLINE, HATCH, SOLID, 3DFACE), reduced to RawEntity. All other
// entity types are ignored without error, per spec §6.
//
// LINE, LWPOLYLINE, POLYLINE, ARC, CIRCLE, and SOLID are read through
// github.com/yofu/dxf's typed entity set. That library does not model
// ELLIPSE, SPLINE, or HATCH (and treats 3DFACE as a raw-tag entity it
// re-serializes without interpreting), so those four kinds are extracted by
// rawTagScan, a small group-code scanner in tags.go.
func ReadEntities(path string) ([]RawEntity, error) {
	doc, err := dxf.Open(path)
	if err != nil {
		return nil, &ErrUnreadable{Path: path, Err: err}
	}

	var out []RawEntity
	for _, e := range doc.Entities() {
		if raw, ok := convertEntity(e); ok {
			out = append(out, raw)
		}
	}

	extra, err := rawTagScan(path)
	if err != nil {
		// The library-backed entities above are still usable even if the
		// supplemental scan fails (e.g. a DXF variant rawTagScan's simple
		// section-finder doesn't recognize); NoEntities is only raised by
		// the caller if out ends up empty overall.
		return out, nil
	}
	out = append(out, extra...)

	return out, nil
}

func convertEntity(e entity.Entity) (RawEntity, bool) {
	switch v := e.(type) {
	case *entity.Line:
		return RawEntity{
			Kind:      KindLine,
			Layer:     layerName(v),
			ACIColor:  aciColor(v),
			TrueColor: trueColor(v),
			Vertices: []geomx.Point{
				{X: v.Start[0], Y: v.Start[1]},
				{X: v.End[0], Y: v.End[1]},
			},
		}, true

	case *entity.LwPolyline:
		verts := make([]geomx.Point, 0, len(v.Vertices))
		for _, p := range v.Vertices {
			verts = append(verts, geomx.Point{X: p[0], Y: p[1]})
		}
		return RawEntity{
			Kind:      KindLWPolyline,
			Layer:     layerName(v),
			ACIColor:  aciColor(v),
			TrueColor: trueColor(v),
			Vertices:  verts,
		}, true

	case *entity.Polyline:
		verts := make([]geomx.Point, 0, len(v.Vertices))
		for _, p := range v.Vertices {
			verts = append(verts, geomx.Point{X: p.Coord[0], Y: p.Coord[1]})
		}
		return RawEntity{
			Kind:      KindPolyline,
			Layer:     layerName(v),
			ACIColor:  aciColor(v),
			TrueColor: trueColor(v),
			Vertices:  verts,
		}, true

	case *entity.Arc:
		return RawEntity{
			Kind:       KindArc,
			Layer:      layerName(v),
			ACIColor:   aciColor(v),
			TrueColor:  trueColor(v),
			Center:     geomx.Point{X: v.Center[0], Y: v.Center[1]},
			Radius:     v.Radius,
			StartAngle: v.Angle[0] * math.Pi / 180,
			EndAngle:   v.Angle[1] * math.Pi / 180,
		}, true

	case *entity.Circle:
		return RawEntity{
			Kind:      KindCircle,
			Layer:     layerName(v),
			ACIColor:  aciColor(v),
			TrueColor: trueColor(v),
			Center:    geomx.Point{X: v.Center[0], Y: v.Center[1]},
			Radius:    v.Radius,
		}, true

	case *entity.Solid:
		loop := make([]geomx.Point, 0, 4)
		for _, p := range v.Points {
			loop = append(loop, geomx.Point{X: p[0], Y: p[1]})
		}
		return RawEntity{
			Kind:          KindSolid,
			Layer:         layerName(v),
			ACIColor:      aciColor(v),
			TrueColor:     trueColor(v),
			BoundaryLoops: [][]geomx.Point{loop},
		}, true

	default:
		return RawEntity{}, false
	}
}
