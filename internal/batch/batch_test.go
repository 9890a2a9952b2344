package batch

import (
	"encoding/json"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"flip3d-renderer/internal/flip"
	"flip3d-renderer/internal/panel"
	"flip3d-renderer/internal/raster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"
)

func newSequencer(t *testing.T, style flip.Style) *flip.Sequencer {
	t.Helper()
	s, err := flip.New(flip.DefaultOptions(style, 48, 32))
	require.NoError(t, err)
	return s
}

func TestPlan(t *testing.T) {
	s := newSequencer(t, flip.StyleView)
	jobs := Plan(s, 3, 5)
	require.Len(t, jobs, 15)

	assert.Equal(t, 0.0, jobs[0].Frame.Fraction)
	assert.Equal(t, 0.25, jobs[1].Frame.Fraction)
	assert.Equal(t, 1.0, jobs[4].Frame.Fraction)

	// ping-pong over three panels: 0→1, 1→2, 2→1
	assert.Equal(t, [2]int{0, 1}, [2]int{jobs[0].Frame.Index1, jobs[0].Frame.Index2})
	assert.Equal(t, [2]int{1, 2}, [2]int{jobs[5].Frame.Index1, jobs[5].Frame.Index2})
	assert.Equal(t, [2]int{2, 1}, [2]int{jobs[10].Frame.Index1, jobs[10].Frame.Index2})
	assert.False(t, jobs[10].Frame.Forward)

	assert.Equal(t, "t002_f004.webp", jobs[14].Name())
	assert.Equal(t, jobs[14].Frame.Angle1, jobs[14].Sides[0].Degrees)
}

func TestPlanHingeSides(t *testing.T) {
	s := newSequencer(t, flip.StyleRotate)
	jobs := Plan(s, 2, 2)
	// forward: leaving hinged on the far edge; reverse swaps
	assert.True(t, jobs[0].Sides[0].Right)
	assert.False(t, jobs[0].Sides[1].Right)
	assert.False(t, jobs[2].Sides[0].Right)
	assert.True(t, jobs[2].Sides[1].Right)
}

func TestRunWritesFrames(t *testing.T) {
	dir := t.TempDir()
	s := newSequencer(t, flip.StyleView)
	jobs := Plan(s, 1, 3)

	cfg := Config{
		OutputDir: dir,
		Panels:    panel.Render(panel.DemoCards, 48, 32),
		Render:    raster.Options{Width: 48, Height: 32, Supersample: 2, Background: color.NRGBA{A: 255}},
		Workers:   2,
		Title:     true,
		Profile:   true,
	}
	results := Run(cfg, jobs)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.Success, r.Error)
		assert.FileExists(t, r.Path)
	}

	f, err := os.Open(filepath.Join(dir, "t000_f000.webp"))
	require.NoError(t, err)
	defer f.Close()
	img, err := webp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 48, 32), img.Bounds())
}

func TestRenderJobAtRestShowsLeavingPanel(t *testing.T) {
	s := newSequencer(t, flip.StyleView)
	jobs := Plan(s, 1, 2)
	cfg := Config{
		Panels: panel.Render(panel.DemoCards, 48, 32),
		Render: raster.Options{Width: 48, Height: 32, Light: raster.Flat()},
	}
	img := RenderJob(cfg, jobs[0])
	want := panel.DemoCards[0].Background
	got := img.NRGBAAt(47, 0)
	assert.Equal(t, color.NRGBA{R: want.R, G: want.G, B: want.B, A: 255}, got)
}

func TestWriteManifest(t *testing.T) {
	s := newSequencer(t, flip.StyleList)
	jobs := Plan(s, 2, 3)
	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, WriteManifest(path, jobs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 6)

	last := entries[5]
	assert.Equal(t, 1, last.Transition)
	assert.Equal(t, 1, last.Leaving)
	assert.Equal(t, 2, last.Entering)
	assert.Equal(t, "t001_f002.webp", last.Image)
	assert.Equal(t, "Frac:1.00  D1:90  D2:0", last.Title)
	assert.Equal(t, [9]float64(jobs[5].Frame.Panel2), last.Matrix2)
}
