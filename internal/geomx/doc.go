// Package geomx is the 2D planar geometry backend shared by the CAD parser,
// space computer, placement engine, and corridor generator.
//
// Polygon boolean operations (union, difference, intersection) delegate to
// github.com/ctessum/polyclip-go, a robust polygon-clipping implementation.
// Metric queries (area, centroid, bounds, distance) are computed directly on
// this package's own Ring/Polygon types using the shoelace formula and
// standard point/segment primitives; containment uses a polyclip
// difference. This follows the same split the
// teacher's embedding package uses between library-provided simulation and
// hand-rolled geometric bookkeeping (see pkg/embedding/force_directed.go in
// the reference pack).
//
// Buffering (stadium/capsule expansion with round joins) has no off-the-shelf
// implementation in the example pack; it is implemented here as the union of
// per-edge capsule polygons, approximating round joins with a fixed-segment
// arc fan. See buffer.go.
package geomx
