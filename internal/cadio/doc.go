// Package cadio isolates the one place in this module that knows about the
// on-disk DXF format. It wraps github.com/yofu/dxf to open a drawing and
// walks model space, yielding a RawEntity per entity with geometry already
// reduced to plain points — callers never import the DXF library directly,
// mirroring the teacher's separation of pkg/carving (pure tile logic) from
// the tile-map types it consumes without caring how they were produced.
//
// yofu/dxf's typed entity set (entity.Line, entity.LwPolyline,
// entity.Polyline, entity.Circle, entity.Arc, entity.Solid) covers most of
// the entities this pipeline cares about. It does not expose ELLIPSE,
// SPLINE, HATCH, or 3DFACE as distinct Go types, so those four kinds are
// read by a second, independent pass: tags.go scans the file's raw DXF
// group-code pairs directly (plain text, no library involved) and builds
// RawEntity values for just those four kinds. See DESIGN.md for the
// per-entity grounding.
package cadio
