// Package floorplan orchestrates the full pipeline — CAD parsing, open-space
// computation, îlot placement, and corridor synthesis — into a single
// Process call, driven by a YAML-loadable Config.
package floorplan
