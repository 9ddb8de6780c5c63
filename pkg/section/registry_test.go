package section

import (
	"testing"

	"dxf2fbd/pkg/drawing"
	"dxf2fbd/pkg/geometry"
)

func newTestPointRegistry(eps float64) *PointRegistry {
	return NewPointRegistry(geometry.Point{X: -100, Y: -100}, geometry.Point{X: 100, Y: 100}, eps)
}

func TestPointRegistryIdempotent(t *testing.T) {
	r := newTestPointRegistry(1e-4)

	a := r.Register(geometry.Point{X: 1, Y: 2})
	if got := r.Register(geometry.Point{X: 1, Y: 2}); got != a {
		t.Errorf("re-registering identical point: got id %d, want %d", got, a)
	}
	if got := r.Register(geometry.Point{X: 1, Y: 2 + 5e-5}); got != a {
		t.Errorf("registering point within tolerance: got id %d, want %d", got, a)
	}
	if got := r.Register(geometry.Point{X: 1, Y: 2 + 2e-4}); got == a {
		t.Errorf("registering point beyond tolerance: got id %d, want a new id", got)
	}
	if n := len(r.Points()); n != 2 {
		t.Errorf("registry holds %d points, want 2", n)
	}
}

func TestPointRegistrySequentialIDs(t *testing.T) {
	r := newTestPointRegistry(1e-4)
	coords := []geometry.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 0}}
	want := []int{1, 2, 3, 1}
	for i, p := range coords {
		if got := r.Register(p); got != want[i] {
			t.Errorf("Register(%v) = %d, want %d", p, got, want[i])
		}
	}
}

func TestCurveRegistryUndirectedLines(t *testing.T) {
	r := NewCurveRegistry(1e-4)
	id := r.Add(Curve{Kind: drawing.KindLine, Start: 1, End: 2})

	if got := r.Find(Curve{Kind: drawing.KindLine, Start: 2, End: 1}); got != id {
		t.Errorf("reversed line: Find = %d, want %d", got, id)
	}
	if got := r.Find(Curve{Kind: drawing.KindLine, Start: 1, End: 3}); got != 0 {
		t.Errorf("different line: Find = %d, want 0", got)
	}
}

func TestCurveRegistryArcIdentity(t *testing.T) {
	center := geometry.Point{X: 5, Y: 0}
	r := NewCurveRegistry(1e-4)
	id := r.Add(Curve{Kind: drawing.KindArc, Start: 1, End: 2, CenterPt: center, Radius: 5})

	// A line sharing the arc's endpoints is a different curve.
	if got := r.Find(Curve{Kind: drawing.KindLine, Start: 1, End: 2}); got != 0 {
		t.Errorf("line with arc endpoints: Find = %d, want 0", got)
	}
	// So is an arc with another center or radius.
	if got := r.Find(Curve{Kind: drawing.KindArc, Start: 1, End: 2,
		CenterPt: geometry.Point{X: 5, Y: 3}, Radius: 5.83}); got != 0 {
		t.Errorf("arc with different center: Find = %d, want 0", got)
	}
	// The same arc traversed backwards is the same curve.
	if got := r.Find(Curve{Kind: drawing.KindArc, Start: 2, End: 1, CenterPt: center, Radius: 5}); got != id {
		t.Errorf("reversed arc: Find = %d, want %d", got, id)
	}
}
