// Package drawing extracts planar curves from a parsed DXF document. Only
// entities on the configured contour layer are considered, and everything is
// normalized into the Curve variant type with the unit scale already applied.
// Z coordinates in the source never survive extraction.
package drawing

import (
	"dxf2fbd/pkg/geometry"
)

// Kind discriminates the Curve variants. The set is closed: the extractor
// produces nothing else, and the emitter switches over it exhaustively.
type Kind int

const (
	KindLine Kind = iota
	KindArc
	KindEllipseArc
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindArc:
		return "arc"
	case KindEllipseArc:
		return "ellipse-arc"
	}
	return "unknown"
}

// Curve is a normalized planar curve in target units, before registration.
// Which fields are meaningful depends on Kind:
//
//	KindLine        Start, End
//	KindArc         Start, End, Center, Radius
//	KindEllipseArc  Start, End, Center, Major, Ratio, Interior
//
// Interior holds sample points strictly between the endpoints of an ellipse
// arc, used to emit it as a spline.
type Curve struct {
	Kind     Kind
	Start    geometry.Point
	End      geometry.Point
	Center   geometry.Point
	Radius   float64
	Major    geometry.Point
	Ratio    float64
	Interior []geometry.Point
}
