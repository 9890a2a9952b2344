// Package batch renders planned flip frames to WebP files with a worker pool.
package batch

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"flip3d-renderer/internal/camera"
	"flip3d-renderer/internal/flip"
	"flip3d-renderer/internal/overlay"
	"flip3d-renderer/internal/postprocess"
	"flip3d-renderer/internal/raster"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a batch run. Panels and Render are
// read concurrently and must not change during Run.
type Config struct {
	OutputDir string
	Panels    []*image.NRGBA
	Render    raster.Options
	Workers   int

	Title   bool // draw the diagnostic title
	Profile bool // draw the side-view diagram

	// Progress receives a rate line every couple of seconds; nil is silent.
	Progress io.Writer
}

// Job is one frame of a transition, fully computed before rendering.
type Job struct {
	Transition int
	Step       int
	Axis       camera.Axis
	Frame      flip.Frame
	Sides      [2]overlay.Side
}

// Name is the output file name of the job.
func (j Job) Name() string {
	return fmt.Sprintf("t%03d_f%03d.webp", j.Transition, j.Step)
}

// Result holds the outcome of rendering one job.
type Result struct {
	Transition int
	Step       int
	Path       string
	Success    bool
	Error      string
}

// Plan starts transitions transitions on s and samples each at frames
// evenly spaced fractions from 0 to 1 inclusive. The sequencer is only
// touched here, on the calling goroutine.
func Plan(s *flip.Sequencer, transitions, frames int) []Job {
	if frames < 2 {
		frames = 2
	}
	o := s.Options()
	jobs := make([]Job, 0, transitions*frames)
	for t := 0; t < transitions; t++ {
		s.Start()
		leaving, entering := s.Hinges()
		for i := 0; i < frames; i++ {
			fr := s.Frame(float64(i) / float64(frames-1))
			jobs = append(jobs, Job{
				Transition: t,
				Step:       i,
				Axis:       leaving.Rotation.Axis,
				Frame:      fr,
				Sides: [2]overlay.Side{
					{Degrees: fr.Angle1, Right: hingedFar(leaving, o.Width, o.Height)},
					{Degrees: fr.Angle2, Right: hingedFar(entering, o.Width, o.Height)},
				},
			})
		}
	}
	return jobs
}

func hingedFar(h flip.Hinge, w, ht float64) bool {
	if h.Rotation.Axis == camera.AxisY {
		return h.Pivot.X > w/2
	}
	return h.Pivot.Y > ht/2
}

// Run renders all jobs using a worker pool.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64
	workers := max(cfg.Workers, 1)

	start := time.Now()

	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

// RenderJob rasterises one job and draws the requested overlays.
func RenderJob(cfg Config, job Job) *image.NRGBA {
	img := raster.RenderFrame(job.Frame, job.Axis, cfg.Panels, cfg.Render)

	if cfg.Render.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Render.Width, cfg.Render.Height)
	}

	if cfg.Profile {
		b := img.Bounds()
		side := min(b.Dx(), b.Dy()) / 3
		overlay.Profile(img, image.Rect(b.Max.X-side, b.Max.Y-2*side, b.Max.X, b.Max.Y), job.Sides)
	}
	if cfg.Title {
		overlay.Title(img, job.Frame.Title())
	}
	return img
}

func processJob(cfg Config, job Job) Result {
	res := Result{Transition: job.Transition, Step: job.Step}

	img := RenderJob(cfg, job)

	outPath := filepath.Join(cfg.OutputDir, job.Name())
	res.Path = outPath
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		slog.Warn("frame encode failed", "path", outPath, "err", err)
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	res.Success = true
	return res
}
