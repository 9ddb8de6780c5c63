package cfg

// Config carries the tunables for a single conversion run. The zero value is
// not useful; start from Default() and override fields as needed. Every
// pipeline stage receives the same Config so that tolerance decisions stay
// consistent between point registration and curve deduplication.
type Config struct {
	// Tolerance is the distance below which two coordinates are considered
	// the same point, in target (output) units.
	Tolerance float64

	// Scale converts source drawing units to target units. The default
	// converts millimeters to meters.
	Scale float64

	// Layer is the name of the drawing layer holding the section contour.
	// Entities on any other layer are ignored.
	Layer string

	// MinLoop and MaxLoop bound the number of edges in a closed loop that
	// is emitted as a surface. cgx surfaces take 3 to 5 edges.
	MinLoop int
	MaxLoop int

	// SplineSamples is the number of interior points generated along a
	// partial ellipse, which cgx can only represent as a spline through a
	// point sequence.
	SplineSamples int
}

// Default returns the documented default configuration: 1e-4 tolerance,
// mm→m scaling, layer "contour", surfaces of 3 to 5 edges.
func Default() Config {
	return Config{
		Tolerance:     1e-4,
		Scale:         0.001,
		Layer:         "contour",
		MinLoop:       3,
		MaxLoop:       5,
		SplineSamples: 8,
	}
}
