// Package fbd serializes a section into a CalculiX cgx command file. The
// command language resolves references by previously defined names, so the
// emission order is fixed: points, then point sequences, then lines and
// arcs, then surfaces.
package fbd

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"dxf2fbd/pkg/drawing"
	"dxf2fbd/pkg/section"
)

// Overridable for tests; the header carries a generation timestamp.
var timeNow = time.Now

// Write emits the section as an FBD command stream suitable for "cgx -b".
// source names the input file in the header comment. Points are written on
// the YZ plane: the drawing's X becomes FBD Y, the drawing's Y becomes FBD
// Z, and the FBD X coordinate is always zero.
func Write(w io.Writer, s *section.Section, source string) error {
	b := bufio.NewWriter(w)

	fmt.Fprintf(b, "# Generated by dxf2fbd\n")
	fmt.Fprintf(b, "# from %q\n", source)
	fmt.Fprintf(b, "# on %s\n", timeNow().Format("2006-01-02 15:04:05"))

	pw := width(len(s.Points))
	lw := width(len(s.Curves))

	fmt.Fprintf(b, "\n# Points extracted from DXF\n")
	for i, p := range s.Points {
		fmt.Fprintf(b, "pnt P%0*d 0.0 %.7f %.7f\n", pw, i+1, p.X, p.Y)
	}

	// Ellipse arcs become splines through a named point sequence.
	seq := map[int]int{}
	for _, c := range s.Curves {
		if c.Kind == drawing.KindEllipseArc {
			seq[c.ID] = len(seq) + 1
		}
	}
	if len(seq) > 0 {
		fmt.Fprintf(b, "\n# Point sequences for ellipse arcs\n")
		for _, c := range s.Curves {
			if c.Kind != drawing.KindEllipseArc {
				continue
			}
			fmt.Fprintf(b, "seqa A%d pnt", seq[c.ID])
			for _, id := range c.Interior {
				fmt.Fprintf(b, " P%0*d", pw, id)
			}
			fmt.Fprintf(b, "\n")
		}
	}

	fmt.Fprintf(b, "\n# Lines and arcs extracted from DXF\n")
	for _, c := range s.Curves {
		switch c.Kind {
		case drawing.KindLine:
			fmt.Fprintf(b, "line L%0*d P%0*d P%0*d\n",
				lw, c.ID, pw, c.Start, pw, c.End)
		case drawing.KindArc:
			fmt.Fprintf(b, "line L%0*d P%0*d P%0*d P%0*d\n",
				lw, c.ID, pw, c.Start, pw, c.End, pw, c.Center)
		case drawing.KindEllipseArc:
			fmt.Fprintf(b, "line L%0*d P%0*d P%0*d A%d\n",
				lw, c.ID, pw, c.Start, pw, c.End, seq[c.ID])
		}
	}

	if len(s.Loops) > 0 {
		sw := width(len(s.Loops))
		fmt.Fprintf(b, "\n# Detected surfaces\n")
		for i, loop := range s.Loops {
			fmt.Fprintf(b, "surf S%0*d", sw, i+1)
			for _, id := range loop {
				fmt.Fprintf(b, " L%0*d", lw, id)
			}
			fmt.Fprintf(b, "\n")
		}
	}

	fmt.Fprintf(b, "\n# Show geometry up to now\n")
	fmt.Fprintf(b, "plot pa all\n")
	fmt.Fprintf(b, "plus la all\n")
	fmt.Fprintf(b, "plus sa all\n")
	fmt.Fprintf(b, "rot y\n")
	fmt.Fprintf(b, "rot r 90\n")
	fmt.Fprintf(b, "break\n")

	return b.Flush()
}

// width returns the number of digits needed for identifiers up to n, so
// names sort and align the same way the original files did (P01..P12).
func width(n int) int {
	w := 1
	for n >= 10 {
		n /= 10
		w++
	}
	return w
}
