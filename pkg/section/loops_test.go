package section

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"dxf2fbd/pkg/drawing"
)

// chain builds line curves joining consecutive point ids, closing back to
// the first: chain(1,2,3) is a triangle over points 1, 2, 3.
func chain(pointIDs ...int) []Curve {
	var curves []Curve
	n := len(pointIDs)
	for i := 0; i < n; i++ {
		curves = append(curves, Curve{
			ID:    i + 1,
			Kind:  drawing.KindLine,
			Start: pointIDs[i],
			End:   pointIDs[(i+1)%n],
		})
	}
	return curves
}

func TestDetectLoops(t *testing.T) {
	tests := []struct {
		name   string
		curves []Curve
		want   []Loop
	}{
		{
			name:   "triangle",
			curves: chain(1, 2, 3),
			want:   []Loop{{1, 2, 3}},
		},
		{
			name:   "square",
			curves: chain(1, 2, 3, 4),
			want:   []Loop{{1, 2, 3, 4}},
		},
		{
			name:   "pentagon",
			curves: chain(1, 2, 3, 4, 5),
			want:   []Loop{{1, 2, 3, 4, 5}},
		},
		{
			name:   "hexagon exceeds the edge bound",
			curves: chain(1, 2, 3, 4, 5, 6),
			want:   nil,
		},
		{
			name: "open path",
			curves: []Curve{
				{ID: 1, Kind: drawing.KindLine, Start: 1, End: 2},
				{ID: 2, Kind: drawing.KindLine, Start: 2, End: 3},
				{ID: 3, Kind: drawing.KindLine, Start: 3, End: 4},
			},
			want: nil,
		},
		{
			name: "triangle with a dangling edge",
			curves: append(chain(1, 2, 3),
				Curve{ID: 4, Kind: drawing.KindLine, Start: 3, End: 4}),
			want: []Loop{{1, 2, 3}},
		},
		{
			name: "square with diagonal reports every cycle",
			curves: append(chain(1, 2, 3, 4),
				Curve{ID: 5, Kind: drawing.KindLine, Start: 1, End: 3}),
			want: []Loop{{1, 2, 3, 4}, {1, 2, 5}, {5, 3, 4}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := DetectLoops(test.curves, 3, 5)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("DetectLoops mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// A cycle fed in as two opposite traversals must come out once.
func TestDetectLoopsUndirected(t *testing.T) {
	forward := chain(1, 2, 3, 4)
	backward := []Curve{
		{ID: 1, Kind: drawing.KindLine, Start: 2, End: 1},
		{ID: 2, Kind: drawing.KindLine, Start: 3, End: 2},
		{ID: 3, Kind: drawing.KindLine, Start: 4, End: 3},
		{ID: 4, Kind: drawing.KindLine, Start: 1, End: 4},
	}
	want := DetectLoops(forward, 3, 5)
	got := DetectLoops(backward, 3, 5)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("traversal direction changed the result (-forward +backward):\n%s", diff)
	}
	if len(got) != 1 {
		t.Fatalf("got %d loops, want 1", len(got))
	}
}

func TestDetectLoopsLengthBounds(t *testing.T) {
	for n := 3; n <= 8; n++ {
		ids := make([]int, n)
		for i := range ids {
			ids[i] = i + 1
		}
		loops := DetectLoops(chain(ids...), 3, 5)
		wantFound := n >= 3 && n <= 5
		if found := len(loops) == 1; found != wantFound {
			t.Errorf("%d-gon: found=%v, want %v", n, found, wantFound)
		}
		for _, loop := range loops {
			if len(loop) < 3 || len(loop) > 5 {
				t.Errorf("%d-gon: loop of %d edges escaped the bounds", n, len(loop))
			}
		}
	}
}
