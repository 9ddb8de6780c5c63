// Package section assembles extracted curves into a planar section model:
// deduplicated points, deduplicated curves referencing them, and the closed
// loops that become surfaces.
package section

import (
	"math"

	"github.com/asim/quadtree"

	"dxf2fbd/pkg/drawing"
	"dxf2fbd/pkg/geometry"
)

// PointRegistry assigns a stable 1-based identifier to every distinct
// coordinate. Two coordinates closer than the tolerance share an identifier.
// Identifiers are assigned in registration order and never change.
type PointRegistry struct {
	eps    float64
	tree   *quadtree.QuadTree
	points []geometry.Point
}

// NewPointRegistry creates a registry for points within the given bounds.
// The bounds only size the spatial index; registering a point slightly
// outside them is prevented by the margin added here.
func NewPointRegistry(min, max geometry.Point, eps float64) *PointRegistry {
	midX := (max.X + min.X) / 2
	midY := (max.Y + min.Y) / 2
	halfWidth := max.X - midX
	halfHeight := max.Y - midY

	// Margin so points on the boundary still insert cleanly.
	halfWidth += 1 + eps
	halfHeight += 1 + eps

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(midX, midY, nil),
		quadtree.NewPoint(halfWidth, halfHeight, nil))
	return &PointRegistry{
		eps:  eps,
		tree: quadtree.New(aabb, 0, nil),
	}
}

// Register returns the identifier for p, creating a new entry only if no
// previously registered point lies within the tolerance.
func (r *PointRegistry) Register(p geometry.Point) int {
	near := r.tree.Search(quadtree.NewAABB(
		quadtree.NewPoint(p.X, p.Y, nil),
		quadtree.NewPoint(r.eps, r.eps, nil)))

	best := 0
	bestDist := math.Inf(1)
	for _, qp := range near {
		x, y := qp.Coordinates()
		d := p.Distance(geometry.Point{X: x, Y: y})
		if d < r.eps && d < bestDist {
			best = qp.Data().(int)
			bestDist = d
		}
	}
	if best != 0 {
		return best
	}

	r.points = append(r.points, p)
	id := len(r.points)
	r.tree.Insert(quadtree.NewPoint(p.X, p.Y, id))
	return id
}

// Points returns the registered points in identifier order; index i holds
// the point with identifier i+1.
func (r *PointRegistry) Points() []geometry.Point {
	return r.points
}

// Curve is a registered curve. Start, End and (for arcs) Center are point
// identifiers; CenterPt keeps the raw center coordinate for identity checks
// on curves whose center is not a registered point.
type Curve struct {
	ID       int
	Kind     drawing.Kind
	Start    int
	End      int
	Center   int
	Radius   float64
	CenterPt geometry.Point
	Major    geometry.Point
	Ratio    float64
	Interior []int
}

// CurveRegistry deduplicates curves by geometric identity and assigns
// sequential 1-based identifiers in registration order.
type CurveRegistry struct {
	eps    float64
	curves []Curve
}

func NewCurveRegistry(eps float64) *CurveRegistry {
	return &CurveRegistry{eps: eps}
}

// Find returns the identifier of a curve geometrically identical to c, or 0.
// Lines are identical when they join the same unordered point pair. Arcs
// additionally need a matching center and radius, so an arc and a line (or
// two different arcs) sharing endpoints stay distinct.
func (r *CurveRegistry) Find(c Curve) int {
	for _, o := range r.curves {
		if o.Kind != c.Kind {
			continue
		}
		if !samePair(o.Start, o.End, c.Start, c.End) {
			continue
		}
		switch c.Kind {
		case drawing.KindLine:
			return o.ID
		case drawing.KindArc, drawing.KindEllipseArc:
			if geometry.Close(o.CenterPt, c.CenterPt, r.eps) &&
				math.Abs(o.Radius-c.Radius) < r.eps &&
				geometry.Close(o.Major, c.Major, r.eps) &&
				math.Abs(o.Ratio-c.Ratio) < r.eps {
				return o.ID
			}
		}
	}
	return 0
}

// Add registers c as a new curve and returns its identifier. The caller is
// expected to have checked Find first.
func (r *CurveRegistry) Add(c Curve) int {
	c.ID = len(r.curves) + 1
	r.curves = append(r.curves, c)
	return c.ID
}

// Curves returns the registered curves in identifier order.
func (r *CurveRegistry) Curves() []Curve {
	return r.curves
}

func samePair(a1, a2, b1, b2 int) bool {
	return (a1 == b1 && a2 == b2) || (a1 == b2 && a2 == b1)
}
