package cadio

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rehmanul/floorplan-engine/internal/geomx"
)

// rawTagScan reads the DXF file as a flat stream of (group code, value)
// pairs — the format's lowest common denominator, present in every DXF
// revision R12 and later — and extracts ELLIPSE, SPLINE, HATCH, and 3DFACE
// entities, which github.com/yofu/dxf does not model as typed structs. This
// is plain stdlib text scanning, not a geometry library: each DXF entity is
// a flat run of "code\nvalue\n" pairs starting at a 0/ENTITIES-section
// ENTITY-name line and ending at the next code-0 line, so no recursive
// parser is needed — only grouping consecutive tags into entities and
// reading the handful of codes each kind uses.
func rawTagScan(path string) ([]RawEntity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tags, err := scanTags(f)
	if err != nil {
		return nil, err
	}

	entities := groupEntities(tags)

	var out []RawEntity
	for _, tags := range entities {
		switch entityType(tags) {
		case "ELLIPSE":
			if re, ok := buildEllipse(tags); ok {
				out = append(out, re)
			}
		case "SPLINE":
			if re, ok := buildSpline(tags); ok {
				out = append(out, re)
			}
		case "HATCH":
			if re, ok := buildHatch(tags); ok {
				out = append(out, re)
			}
		case "3DFACE":
			if re, ok := build3DFace(tags); ok {
				out = append(out, re)
			}
		}
	}
	return out, nil
}

type tag struct {
	code int
	val  string
}

func scanTags(f *os.File) ([]tag, error) {
	var tags []tag
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		codeLine := strings.TrimSpace(sc.Text())
		code, err := strconv.Atoi(codeLine)
		if err != nil {
			continue // Malformed pair; resynchronize on the next line.
		}
		if !sc.Scan() {
			break
		}
		val := strings.TrimSpace(sc.Text())
		tags = append(tags, tag{code: code, val: val})
	}
	return tags, sc.Err()
}

// groupEntities splits the ENTITIES section's tag stream into one slice per
// entity. A DXF section opens with "0/SECTION" followed by "2/<name>" and
// closes with "0/ENDSEC"; within ENTITIES, each entity itself starts at a
// group code 0 tag carrying its DXF type name. Tags outside the ENTITIES
// section (HEADER, TABLES, BLOCKS, OBJECTS) are skipped entirely.
func groupEntities(tags []tag) [][]tag {
	inEntities := false
	afterSection := false
	var groups [][]tag
	var current []tag

	flush := func() {
		if len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
	}

	for _, t := range tags {
		switch {
		case t.code == 0 && t.val == "SECTION":
			flush()
			afterSection = true
			inEntities = false
			continue
		case t.code == 2 && afterSection:
			afterSection = false
			inEntities = t.val == "ENTITIES"
			continue
		case t.code == 0 && (t.val == "ENDSEC" || t.val == "EOF"):
			flush()
			inEntities = false
			continue
		}

		if !inEntities {
			continue
		}

		if t.code == 0 {
			flush()
		}
		current = append(current, t)
	}
	flush()
	return groups
}

func entityType(tags []tag) string {
	if len(tags) == 0 {
		return ""
	}
	return tags[0].val
}

func firstString(tags []tag, code int) (string, bool) {
	for _, t := range tags {
		if t.code == code {
			return t.val, true
		}
	}
	return "", false
}

func firstFloat(tags []tag, code int, fallback float64) float64 {
	s, ok := firstString(tags, code)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func layerOfTags(tags []tag) string {
	s, _ := firstString(tags, 8)
	return s
}

func colorOfTags(tags []tag) uint16 {
	s, ok := firstString(tags, 62)
	if !ok {
		return 256
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 256
	}
	return uint16(v)
}

// pointSeries collects every (xCode, yCode) pair in encounter order — used
// for HATCH/3DFACE boundary vertices and SPLINE fit points, which DXF
// repeats as sibling tags rather than nesting them.
func pointSeries(tags []tag, xCode, yCode int) []geomx.Point {
	var pts []geomx.Point
	var pendingX *float64
	for _, t := range tags {
		switch t.code {
		case xCode:
			if v, err := strconv.ParseFloat(t.val, 64); err == nil {
				x := v
				pendingX = &x
			}
		case yCode:
			if pendingX == nil {
				continue
			}
			if v, err := strconv.ParseFloat(t.val, 64); err == nil {
				pts = append(pts, geomx.Point{X: *pendingX, Y: v})
			}
			pendingX = nil
		}
	}
	return pts
}

func buildEllipse(tags []tag) (RawEntity, bool) {
	cx := firstFloat(tags, 10, math.NaN())
	cy := firstFloat(tags, 20, math.NaN())
	ex := firstFloat(tags, 11, math.NaN())
	ey := firstFloat(tags, 21, math.NaN())
	if math.IsNaN(cx) || math.IsNaN(cy) || math.IsNaN(ex) || math.IsNaN(ey) {
		return RawEntity{}, false
	}
	return RawEntity{
		Kind:         KindEllipse,
		Layer:        layerOfTags(tags),
		ACIColor:     colorOfTags(tags),
		Center:       geomx.Point{X: cx, Y: cy},
		MajorAxisEnd: geomx.Point{X: ex, Y: ey},
		Ratio:        firstFloat(tags, 40, 1.0),
	}, true
}

func buildSpline(tags []tag) (RawEntity, bool) {
	pts := pointSeries(tags, 11, 21) // Fit points, when present.
	if len(pts) < 2 {
		pts = pointSeries(tags, 10, 20) // Control points otherwise.
	}
	if len(pts) < 2 {
		return RawEntity{}, false
	}
	return RawEntity{
		Kind:     KindSpline,
		Layer:    layerOfTags(tags),
		ACIColor: colorOfTags(tags),
		Vertices: pts,
	}, true
}

func buildHatch(tags []tag) (RawEntity, bool) {
	pts := pointSeries(tags, 10, 20)
	if len(pts) < 3 {
		return RawEntity{}, false
	}
	return RawEntity{
		Kind:          KindHatch,
		Layer:         layerOfTags(tags),
		ACIColor:      colorOfTags(tags),
		BoundaryLoops: [][]geomx.Point{pts},
	}, true
}

func build3DFace(tags []tag) (RawEntity, bool) {
	pts := pointSeries(tags, 10, 20)
	if len(pts) < 3 {
		return RawEntity{}, false
	}
	return RawEntity{
		Kind:          Kind3DFace,
		Layer:         layerOfTags(tags),
		ACIColor:      colorOfTags(tags),
		BoundaryLoops: [][]geomx.Point{pts},
	}, true
}
