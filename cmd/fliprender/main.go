package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"flip3d-renderer/internal/batch"
	"flip3d-renderer/internal/config"
	"flip3d-renderer/internal/flip"
	"flip3d-renderer/internal/panel"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a .json or .toml config file")
	style := flag.String("style", "", "Flip style: view, image, rotate, list, cube, flipper")
	axis := flag.String("axis", "", "Rotation axis: x or y (default: per style)")
	panelDir := flag.String("panels", "", "Directory of panel images (default: generated demo panels)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	transitions := flag.Int("transitions", 0, "Number of transitions to render (default: 4)")
	frames := flag.Int("frames", 0, "Frames per transition, both ends included (default: 24)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	title := flag.Bool("title", false, "Draw the fraction and angles on every frame")
	profile := flag.Bool("profile", false, "Draw the side-view diagram on every frame")

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

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Style:       *style,
		Axis:        *axis,
		PanelDir:    *panelDir,
		OutputDir:   *outputDir,
		Transitions: *transitions,
		Frames:      *frames,
		Workers:     *workers,
	})
	cfg.Title = cfg.Title || *title
	cfg.Profile = cfg.Profile || *profile

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pw, ph := cfg.PanelSize()
	panels := panel.Open(cfg.PanelDir, cfg.ListPanels(), pw, ph)
	if cfg.PanelDir != "" {
		fmt.Printf("Panels: %d indexed in %s\n", len(panels), cfg.PanelDir)
	}
	if len(panels) < 2 {
		fmt.Fprintln(os.Stderr, "Error: need at least 2 panels to flip between.")
		os.Exit(1)
	}

	opts, err := cfg.SequencerOptions(len(panels))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	seq, err := flip.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	jobs := batch.Plan(seq, cfg.Transitions, cfg.Frames)

	fmt.Printf("3D flip → WebP (%s, axis %s)\n", opts.Style, opts.Axis)
	fmt.Printf("Panels: %d, Transitions: %d, Frames: %d, Workers: %d\n", len(panels), cfg.Transitions, len(jobs), cfg.Workers)
	fmt.Printf("Camera: %+v\n", seq.Options().Camera)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir: cfg.OutputDir,
		Panels:    panels,
		Render:    cfg.RenderOptions(),
		Workers:   cfg.Workers,
		Title:     cfg.Title,
		Profile:   cfg.Profile,
		Progress:  os.Stdout,
	}

	results := batch.Run(batchCfg, jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(jobs))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(len(errors), 20)
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Path, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, jobs); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
