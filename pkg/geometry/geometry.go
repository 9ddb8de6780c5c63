package geometry

import (
	"math"
)

type Point struct {
	X float64
	Y float64
}

type Vector2 = Point

func (a Vector2) Minus(b Vector2) Vector2 {
	return Vector2{
		X: a.X - b.X,
		Y: a.Y - b.Y,
	}
}

func (a Vector2) Add(b Vector2) Vector2 {
	return Vector2{
		X: a.X + b.X,
		Y: a.Y + b.Y,
	}
}

func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Scale returns the point scaled by the given factor f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Perp returns the vector rotated 90 degrees counterclockwise.
func (v Vector2) Perp() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// Close reports whether two points lie within eps of each other. This is the
// single identity predicate shared by point registration and curve
// deduplication; using any other comparison would let the two stages disagree
// about which coordinates are "the same".
func Close(a, b Point, eps float64) bool {
	return a.Distance(b) < eps
}
