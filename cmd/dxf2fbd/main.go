package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dxf2fbd/pkg/cfg"
	"dxf2fbd/pkg/drawing"
	"dxf2fbd/pkg/fbd"
	"dxf2fbd/pkg/section"
)

var errNoContour = errors.New("no contour entities found")

var (
	tolerance float64
	scale     float64
	layer     string
	output    string
	minLoop   int
	maxLoop   int
	quiet     bool

	// Class of the first failing input: 2 for unreadable or unparseable
	// files, 3 when a file held no contour entities.
	exitCode int
)

var rootCmd = &cobra.Command{
	Use:   "dxf2fbd [flags] file.dxf...",
	Short: "Convert DXF contour sketches to CalculiX cgx FBD geometry",
	Long: `dxf2fbd converts lines and arcs from one layer of a DXF file (by default
the layer named "contour") into point, line and surface definitions in an
FBD file, suitable for showing with "cgx -b".

The XY plane in the DXF file is mapped onto the YZ plane in the FBD file;
any Z coordinates in the DXF file are ignored. Closed loops of 3 to 5 lines
or arcs become surfaces. The generated output is a starting point for
creating and extruding surfaces.`,
	Version:       "1.0.0",
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.Float64VarP(&tolerance, "tolerance", "t", cfg.Default().Tolerance,
		"minimum distance between distinct coordinates, in output units")
	flags.Float64VarP(&scale, "scale", "s", cfg.Default().Scale,
		"scaling factor from DXF units to FBD units")
	flags.StringVarP(&layer, "layer", "l", cfg.Default().Layer,
		"name of the layer holding the section contour")
	flags.StringVarP(&output, "output", "o", "",
		"output file (single input only; default standard output)")
	flags.IntVar(&minLoop, "min-loop", cfg.Default().MinLoop,
		"minimum number of edges in a closed loop emitted as a surface")
	flags.IntVar(&maxLoop, "max-loop", cfg.Default().MaxLoop,
		"maximum number of edges in a closed loop emitted as a surface")
	flags.BoolVarP(&quiet, "quiet", "q", false,
		"suppress diagnostics")
}

func run(cmd *cobra.Command, args []string) error {
	if quiet {
		log.SetOutput(io.Discard)
	}
	if output != "" && len(args) > 1 {
		return fmt.Errorf("--output cannot be combined with multiple inputs")
	}

	config := cfg.Default()
	config.Tolerance = tolerance
	config.Scale = scale
	config.Layer = layer
	config.MinLoop = minLoop
	config.MaxLoop = maxLoop
	if config.MinLoop < 3 || config.MaxLoop < config.MinLoop {
		return fmt.Errorf("invalid loop length bounds %d..%d", config.MinLoop, config.MaxLoop)
	}

	for _, path := range args {
		out := output
		if len(args) > 1 {
			out = strings.TrimSuffix(path, filepath.Ext(path)) + ".fbd"
		}
		if err := convert(path, out, config); err != nil {
			log.Printf("%s: %v", path, err)
			code := 2
			if errors.Is(err, errNoContour) {
				code = 3
			}
			if exitCode == 0 {
				exitCode = code
			}
		}
	}
	return nil
}

// convert runs the full pipeline for one input file. The output file is only
// created after the input parsed cleanly, so a failing run never leaves a
// partial command file behind.
func convert(path, outPath string, config cfg.Config) error {
	curves, err := drawing.ReadFile(path, config)
	if err != nil {
		return err
	}

	sec := section.Build(curves, config)
	if len(sec.Points) == 0 {
		return errNoContour
	}
	if len(sec.Loops) == 0 {
		log.Printf("no closed loops of %d to %d edges found; verify that the sketch has the expected topology",
			config.MinLoop, config.MaxLoop)
	}

	out := os.Stdout
	if outPath != "" {
		out, err = os.Create(outPath)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	return fbd.Write(out, sec, path)
}

func main() {
	// Diagnostics go to stderr as comment lines, keeping stdout a clean
	// command stream.
	log.SetFlags(0)
	log.SetPrefix("# ")

	if err := rootCmd.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
