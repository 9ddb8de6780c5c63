package drawing

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"reflect"
	"strings"

	"github.com/rpaloschi/dxf-go/core"
	"github.com/rpaloschi/dxf-go/document"
	"github.com/rpaloschi/dxf-go/entities"

	"dxf2fbd/pkg/cfg"
	"dxf2fbd/pkg/geometry"
)

// ReadFile parses the DXF file at path and extracts the contour curves.
func ReadFile(path string, config cfg.Config) ([]Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, config)
}

// Read parses a DXF document from r and extracts the contour curves.
func Read(r io.Reader, config cfg.Config) ([]Curve, error) {
	doc, err := document.DxfDocumentFromStream(r)
	if err != nil {
		return nil, fmt.Errorf("parsing DXF: %w", err)
	}
	return Extract(doc.Entities.Entities, config), nil
}

// Extract filters the drawing entities to the contour layer and normalizes
// each into Curve values, in document order. Entities on other layers are
// skipped without comment; unsupported entity kinds and full ellipses on the
// contour layer are skipped with a warning.
func Extract(ents []entities.Entity, config cfg.Config) []Curve {
	var curves []Curve
	onLayer := 0
	unknown := map[string]bool{}
	for _, ent := range ents {
		switch e := ent.(type) {
		case *entities.Line:
			if e.LayerName != config.Layer {
				continue
			}
			onLayer++
			curves = append(curves, lineCurve(e, config))
		case *entities.Arc:
			if e.LayerName != config.Layer {
				continue
			}
			onLayer++
			curves = append(curves, arcCurve(e, config))
		case *entities.Polyline:
			if e.LayerName != config.Layer {
				continue
			}
			onLayer++
			curves = append(curves, polylineCurves(e, config)...)
		case *entities.LWPolyline:
			if e.LayerName != config.Layer {
				continue
			}
			onLayer++
			curves = append(curves, lwPolylineCurves(e, config)...)
		case *entities.Ellipse:
			if e.LayerName != config.Layer {
				continue
			}
			onLayer++
			if full(e) {
				log.Printf("skipping full ellipse on layer %q; only partial ellipses are supported", config.Layer)
				continue
			}
			curves = append(curves, ellipseCurve(e, config))
		default:
			// Only entities on the contour layer deserve a diagnostic.
			// Layer attribution lives on the concrete entity types, so for
			// kinds this switch does not name it has to be read generically.
			if layerOf(ent) != config.Layer {
				continue
			}
			onLayer++
			name := strings.TrimPrefix(fmt.Sprintf("%T", ent), "*entities.")
			if !unknown[name] {
				unknown[name] = true
				log.Printf("entities of type %q will be ignored", name)
			}
		}
	}
	if onLayer == 0 {
		log.Printf("no entities in layer %q", config.Layer)
	}
	return curves
}

// layerOf reads the layer name off any entity type.
func layerOf(ent entities.Entity) string {
	v := reflect.Indirect(reflect.ValueOf(ent))
	if v.Kind() != reflect.Struct {
		return ""
	}
	f := v.FieldByName("LayerName")
	if f.IsValid() && f.Kind() == reflect.String {
		return f.String()
	}
	return ""
}

// point discards the source Z coordinate and applies the unit scale. The
// remapping of the source XY plane onto the target YZ plane happens at
// emission; internally everything stays planar.
func point(p core.Point, scale float64) geometry.Point {
	return geometry.Point{X: p.X * scale, Y: p.Y * scale}
}

func lineCurve(e *entities.Line, config cfg.Config) Curve {
	return Curve{
		Kind:  KindLine,
		Start: point(e.Start, config.Scale),
		End:   point(e.End, config.Scale),
	}
}

func arcCurve(e *entities.Arc, config cfg.Config) Curve {
	center := point(e.Center, config.Scale)
	radius := e.Radius * config.Scale
	start, end := geometry.ArcEndpoints(center, radius, e.StartAngle, e.EndAngle)
	return Curve{
		Kind:   KindArc,
		Start:  start,
		End:    end,
		Center: center,
		Radius: radius,
	}
}

// vertex is a polyline vertex after scaling, with the bulge of the segment
// leaving it.
type vertex struct {
	p     geometry.Point
	bulge float64
}

func polylineCurves(e *entities.Polyline, config cfg.Config) []Curve {
	verts := make([]vertex, len(e.Vertices))
	for i, v := range e.Vertices {
		verts[i] = vertex{p: point(v.Location, config.Scale), bulge: v.Bulge}
	}
	return segmentCurves(verts, e.Closed)
}

func lwPolylineCurves(e *entities.LWPolyline, config cfg.Config) []Curve {
	verts := make([]vertex, len(e.Points))
	for i, v := range e.Points {
		verts[i] = vertex{p: point(v.Point, config.Scale), bulge: v.Bulge}
	}
	return segmentCurves(verts, e.Closed)
}

// segmentCurves decomposes a polyline's vertices into line and arc segments
// based on the per-vertex bulge. A closed polyline gets one extra segment
// from the last vertex back to the first, carrying the last vertex's bulge.
func segmentCurves(verts []vertex, closed bool) []Curve {
	n := len(verts)
	if n < 2 {
		return nil
	}
	segments := n - 1
	if closed {
		segments = n
	}
	var curves []Curve
	for i := 0; i < segments; i++ {
		v := verts[i]
		p2 := verts[(i+1)%n].p
		if v.bulge == 0 {
			curves = append(curves, Curve{Kind: KindLine, Start: v.p, End: p2})
			continue
		}
		center, radius := geometry.BulgeArc(v.p, p2, v.bulge)
		curves = append(curves, Curve{
			Kind:   KindArc,
			Start:  v.p,
			End:    p2,
			Center: center,
			Radius: radius,
		})
	}
	return curves
}

// full reports whether the ellipse entity covers the whole ellipse rather
// than an arc of it. DXF writes full ellipses with parameters 0 to 2π.
func full(e *entities.Ellipse) bool {
	const tol = 1e-9
	span := math.Abs(math.Mod(e.EndParameter-e.StartParameter, 2*math.Pi))
	return span < tol || 2*math.Pi-span < tol
}

func ellipseCurve(e *entities.Ellipse, config cfg.Config) Curve {
	center := point(e.Center, config.Scale)
	// The major axis arrives as an endpoint relative to the center, in
	// source units, so it scales like any coordinate.
	major := geometry.Point{X: e.MajorAxisEnd.X * config.Scale, Y: e.MajorAxisEnd.Y * config.Scale}
	t0 := e.StartParameter
	t1 := e.EndParameter
	for t1 <= t0 {
		t1 += 2 * math.Pi
	}
	interior := make([]geometry.Point, config.SplineSamples)
	for i := range interior {
		t := t0 + (t1-t0)*float64(i+1)/float64(config.SplineSamples+1)
		interior[i] = geometry.EllipsePoint(center, major, e.MinorToMajorAxisRatio, t)
	}
	return Curve{
		Kind:     KindEllipseArc,
		Start:    geometry.EllipsePoint(center, major, e.MinorToMajorAxisRatio, t0),
		End:      geometry.EllipsePoint(center, major, e.MinorToMajorAxisRatio, t1),
		Center:   center,
		Major:    major,
		Ratio:    e.MinorToMajorAxisRatio,
		Interior: interior,
	}
}
