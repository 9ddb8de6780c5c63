package geometry

import (
	"math"
)

// ArcEndpoints returns the start and end points of a circular arc given its
// center, radius and start/end angles in degrees. DXF measures arc angles
// counterclockwise from the positive X axis.
func ArcEndpoints(center Point, radius, startDeg, endDeg float64) (Point, Point) {
	sa := startDeg * math.Pi / 180
	ea := endDeg * math.Pi / 180
	start := Point{
		X: center.X + radius*math.Cos(sa),
		Y: center.Y + radius*math.Sin(sa),
	}
	end := Point{
		X: center.X + radius*math.Cos(ea),
		Y: center.Y + radius*math.Sin(ea),
	}
	return start, end
}

// BulgeArc converts a polyline segment with a non-zero bulge into the center
// and radius of the arc it describes. The bulge is the tangent of a quarter
// of the included angle, negative when the arc runs clockwise from p1 to p2.
func BulgeArc(p1, p2 Point, bulge float64) (center Point, radius float64) {
	theta := 4 * math.Atan(math.Abs(bulge))
	chord := p2.Minus(p1)
	c := chord.Magnitude()
	radius = c / (2 * math.Sin(theta/2))

	// Distance from the chord midpoint to the center. Negative for included
	// angles over pi, which puts the center on the far side of the chord.
	m := radius * math.Cos(theta/2)

	mid := Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
	left := chord.Scale(1 / c).Perp()
	if bulge < 0 {
		m = -m
	}
	center = mid.Add(left.Scale(m))
	return center, radius
}

// EllipsePoint evaluates a point on an ellipse at parameter t (radians).
// major is the endpoint of the major axis relative to the center; ratio is
// the minor-to-major axis ratio.
func EllipsePoint(center, major Point, ratio, t float64) Point {
	minor := major.Perp().Scale(ratio)
	return center.
		Add(major.Scale(math.Cos(t))).
		Add(minor.Scale(math.Sin(t)))
}
