package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flip3d-renderer/internal/config"
	"flip3d-renderer/internal/flip"
	"flip3d-renderer/internal/player"
)

// flipplay runs the flip clock in real time and prints the diagnostic line
// of every tick, or of one scrubbed position with -seek.
func main() {
	configFile := flag.String("config", "", "Path to a .json or .toml config file")
	style := flag.String("style", "", "Flip style: view, image, rotate, list, cube, flipper")
	axis := flag.String("axis", "", "Rotation axis: x or y")
	duration := flag.Duration("duration", 0, "Length of one transition (default: 1s)")
	interval := flag.Duration("interval", 50*time.Millisecond, "Tick interval")
	runFor := flag.Duration("for", 0, "Stop after this long (default: until interrupted)")
	seek := flag.Float64("seek", -1, "Print the frame at this fraction and exit")
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
	cfg.Resolve(config.Flags{Style: *style, Axis: *axis, Duration: *duration})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *interval <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -interval must be positive")
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
	p, err := player.New(seq, cfg.Duration())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *seek >= 0 {
		fr := p.Seek(*seek)
		fmt.Printf("%d → %d  %s\n", fr.Index1, fr.Index2, fr.Title())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *runFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *runFor)
		defer cancel()
	}

	fmt.Printf("Playing %s every %s (Ctrl-C to stop)\n", opts.Style, cfg.Duration())
	err = p.Run(ctx, *interval, func(fr flip.Frame) {
		fmt.Printf("[%3d] %d → %d  %s\n", p.Transitions(), fr.Index1, fr.Index2, fr.Title())
	})
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Stopped after %d transitions\n", p.Transitions())
}
