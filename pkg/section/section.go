package section

import (
	"math"

	"dxf2fbd/pkg/cfg"
	"dxf2fbd/pkg/drawing"
	"dxf2fbd/pkg/geometry"
)

// Section is the assembled planar section: every registered point in
// identifier order (identifier = index+1), every registered curve likewise,
// and the detected closed loops. Once built it is read-only.
type Section struct {
	Points []geometry.Point
	Curves []Curve
	Loops  []Loop
}

// Build registers the extracted curves and detects closed loops. Curves are
// processed in extraction order, which makes identifier assignment stable
// across runs. Degenerate curves (both endpoints within tolerance of each
// other) and duplicates of already-registered curves are dropped silently;
// both are normal outcomes of sketch authoring, not errors.
func Build(curves []drawing.Curve, config cfg.Config) *Section {
	min, max := bounds(curves)
	points := NewPointRegistry(min, max, config.Tolerance)
	registry := NewCurveRegistry(config.Tolerance)

	for _, c := range curves {
		start := points.Register(c.Start)
		end := points.Register(c.End)
		if start == end {
			continue
		}
		sc := Curve{
			Kind:     c.Kind,
			Start:    start,
			End:      end,
			Radius:   c.Radius,
			CenterPt: c.Center,
			Major:    c.Major,
			Ratio:    c.Ratio,
		}
		if registry.Find(sc) != 0 {
			continue
		}
		switch c.Kind {
		case drawing.KindArc:
			// The arc command references its center as a third point, so
			// the center goes through the same registry.
			sc.Center = points.Register(c.Center)
		case drawing.KindEllipseArc:
			for _, p := range c.Interior {
				sc.Interior = append(sc.Interior, points.Register(p))
			}
		}
		registry.Add(sc)
	}

	return &Section{
		Points: points.Points(),
		Curves: registry.Curves(),
		Loops:  DetectLoops(registry.Curves(), config.MinLoop, config.MaxLoop),
	}
}

// bounds returns the bounding box over every coordinate that could be
// registered, sizing the point registry's spatial index.
func bounds(curves []drawing.Curve) (geometry.Point, geometry.Point) {
	min := geometry.Point{X: math.Inf(1), Y: math.Inf(1)}
	max := geometry.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	grow := func(p geometry.Point) {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	for _, c := range curves {
		grow(c.Start)
		grow(c.End)
		if c.Kind != drawing.KindLine {
			grow(c.Center)
		}
		for _, p := range c.Interior {
			grow(p)
		}
	}
	if len(curves) == 0 {
		return geometry.Point{}, geometry.Point{}
	}
	return min, max
}
