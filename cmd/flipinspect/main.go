package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"flip3d-renderer/internal/config"
	"flip3d-renderer/internal/flip"
	"flip3d-renderer/internal/mathutil"
)

// flipinspect prints the angles, matrices and free-edge gaps of planned
// transitions without rendering anything.
func main() {
	configFile := flag.String("config", "", "Path to a .json or .toml config file")
	style := flag.String("style", "", "Flip style: view, image, rotate, list, cube, flipper")
	axis := flag.String("axis", "", "Rotation axis: x or y")
	transitions := flag.Int("transitions", 1, "Number of transitions")
	frames := flag.Int("frames", 10, "Samples per transition")
	matrices := flag.Bool("matrices", false, "Print both 3x3 matrices of every sample")
	scrub := flag.Bool("scrub", false, "Project every sample exactly instead of blending")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Style: *style, Axis: *axis, Transitions: *transitions, Frames: *frames})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, err := cfg.SequencerOptions(0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	seq, err := flip.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	o := seq.Options()
	fmt.Printf("Style: %s, Axis: %s, Camera: %+v, Panel: %gx%g, Panels: %d\n",
		o.Style, o.Axis, o.Camera, o.Width, o.Height, o.Panels)

	for t := 0; t < cfg.Transitions; t++ {
		seq.Start()
		leaving, entering := seq.Hinges()
		p := seq.Pair()
		fmt.Printf("\nTransition %d: %d → %d (forward=%v)\n", t, p.Current, p.Next, p.Forward)
		fmt.Printf("  leaving:  %s %+.0f→%+.0f pivot (%.1f, %.1f)\n",
			leaving.Rotation.Axis, leaving.Rotation.From, leaving.Rotation.To, leaving.Pivot.X, leaving.Pivot.Y)
		fmt.Printf("  entering: %s %+.0f→%+.0f pivot (%.1f, %.1f)\n",
			entering.Rotation.Axis, entering.Rotation.From, entering.Rotation.To, entering.Pivot.X, entering.Pivot.Y)
		if opts.Style == flip.StyleFlipper {
			fmt.Printf("  direction: %s\n", seq.Direction())
		}

		fmt.Printf("  %6s %8s %8s %10s %10s\n", "frac", "angle1", "angle2", "gap(aff)", "gap(persp)")
		for i := 0; i < cfg.Frames; i++ {
			f := float64(i) / float64(cfg.Frames-1)
			fr := seq.Frame(f)
			if *scrub {
				fr = seq.Scrub(f)
			}
			fmt.Printf("  %6.3f %8.2f %8.2f %10.4f %10.4f\n",
				fr.Fraction, fr.Angle1, fr.Angle2, seq.EdgeGap(fr, true), seq.EdgeGap(fr, false))
			if *matrices {
				printMatrix("M1", fr.Panel1)
				printMatrix("M2", fr.Panel2)
			}
		}
	}
}

func printMatrix(name string, m mathutil.Mat3) {
	rows := make([]string, 3)
	for r := 0; r < 3; r++ {
		rows[r] = fmt.Sprintf("[% .6f % .6f % .6f]", m[r*3], m[r*3+1], m[r*3+2])
	}
	fmt.Printf("    %s %s\n", name, strings.Join(rows, " "))
}
