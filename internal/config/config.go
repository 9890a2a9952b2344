package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"

	"flip3d-renderer/internal/camera"
	"flip3d-renderer/internal/flip"
	"flip3d-renderer/internal/raster"
)

// ErrInvalid is returned by Validate for settings that cannot be rendered.
var ErrInvalid = errors.New("config: invalid")

// DefaultDPI converts a view camera distance in pixels to inches.
const DefaultDPI = 160

// Config holds the flip look and the render settings.
type Config struct {
	// Flip
	Style     string  `json:"style" toml:"style"`
	Axis      string  `json:"axis" toml:"axis"`
	Direction string  `json:"direction" toml:"direction"`
	PivotPos  float64 `json:"pivot_pos" toml:"pivot_pos"`

	// Camera location in inches. ViewDistance, when set, wins and is
	// converted with DPI.
	CameraX      float64 `json:"camera_x" toml:"camera_x"`
	CameraY      float64 `json:"camera_y" toml:"camera_y"`
	CameraZ      float64 `json:"camera_z" toml:"camera_z"`
	ViewDistance float64 `json:"view_distance" toml:"view_distance"`
	DPI          float64 `json:"dpi" toml:"dpi"`

	// Panels
	PanelDir   string  `json:"panel_dir" toml:"panel_dir"`
	Width      int     `json:"width" toml:"width"`
	Height     int     `json:"height" toml:"height"`
	ImageWidth float64 `json:"image_width" toml:"image_width"`

	// Timing
	Transitions int `json:"transitions" toml:"transitions"`
	Frames      int `json:"frames" toml:"frames"`
	DurationMS  int `json:"duration_ms" toml:"duration_ms"`

	// Render settings
	OutputDir   string `json:"output_dir" toml:"output_dir"`
	Supersample int    `json:"supersample" toml:"supersample"`
	Workers     int    `json:"workers" toml:"workers"`
	Background  string `json:"background" toml:"background"`
	Shading     *bool  `json:"shading" toml:"shading"`
	Title       bool   `json:"title" toml:"title"`
	Profile     bool   `json:"profile" toml:"profile"`
}

// Load reads a .json or .toml config file. Fields not set in the file keep
// their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Style       string
	Axis        string
	PanelDir    string
	OutputDir   string
	Transitions int
	Frames      int
	Workers     int
	Duration    time.Duration
}

// Resolve applies non-zero flags over the file values, then fills every
// empty field with its default.
func (c *Config) Resolve(flags Flags) {
	if flags.Style != "" {
		c.Style = flags.Style
	}
	if flags.Axis != "" {
		c.Axis = flags.Axis
	}
	if flags.PanelDir != "" {
		c.PanelDir = flags.PanelDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Transitions > 0 {
		c.Transitions = flags.Transitions
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Duration > 0 {
		c.DurationMS = int(flags.Duration / time.Millisecond)
	}

	if c.Style == "" {
		c.Style = flip.StyleView.String()
	}
	if c.Axis == "" {
		if st, err := flip.ParseStyle(c.Style); err == nil {
			c.Axis = st.DefaultAxis().String()
		}
	}
	if c.PivotPos == 0 {
		c.PivotPos = 0.5
	}
	if c.DPI <= 0 {
		c.DPI = DefaultDPI
	}
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 240
	}
	if c.Transitions <= 0 {
		c.Transitions = 4
	}
	if c.Frames <= 0 {
		c.Frames = 24
	}
	if c.DurationMS <= 0 {
		c.DurationMS = 1000
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Background == "" {
		c.Background = "black"
	}
}

// Validate reports the first setting that cannot be rendered. Call it after
// Resolve.
func (c *Config) Validate() error {
	st, err := flip.ParseStyle(c.Style)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	axis, err := camera.ParseAxis(c.Axis)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Direction != "" {
		d, err := flip.ParseDirection(c.Direction)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		if st == flip.StyleFlipper && d.Axis() != axis {
			return fmt.Errorf("%w: direction %s does not travel across axis %s", ErrInvalid, d, axis)
		}
	}
	if st == flip.StyleCube && axis != camera.AxisX {
		return fmt.Errorf("%w: style cube turns about x only", ErrInvalid)
	}
	if c.PivotPos < 0 || c.PivotPos > 1 {
		return fmt.Errorf("%w: pivot_pos %v outside [0,1]", ErrInvalid, c.PivotPos)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.ImageWidth < 0 {
		return fmt.Errorf("%w: image_width %v", ErrInvalid, c.ImageWidth)
	}
	if c.Frames < 2 {
		return fmt.Errorf("%w: frames %d, need at least 2", ErrInvalid, c.Frames)
	}
	if c.Supersample > 8 {
		return fmt.Errorf("%w: supersample %d above 8", ErrInvalid, c.Supersample)
	}
	if _, err := c.Camera(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, ok := colornames.Map[strings.ToLower(c.Background)]; !ok {
		return fmt.Errorf("%w: unknown background colour %q", ErrInvalid, c.Background)
	}
	return nil
}

// Camera returns the configured camera, or the zero camera when none is
// set so the style default applies.
func (c *Config) Camera() (camera.Camera, error) {
	if c.ViewDistance != 0 {
		return camera.FromViewDistance(c.ViewDistance, c.DPI)
	}
	if c.CameraX == 0 && c.CameraY == 0 && c.CameraZ == 0 {
		return camera.Camera{}, nil
	}
	return camera.New(c.CameraX, c.CameraY, c.CameraZ)
}

// SequencerOptions builds the flip options of a validated config.
func (c *Config) SequencerOptions(panels int) (flip.Options, error) {
	st, err := flip.ParseStyle(c.Style)
	if err != nil {
		return flip.Options{}, err
	}
	axis, err := camera.ParseAxis(c.Axis)
	if err != nil {
		return flip.Options{}, err
	}
	cam, err := c.Camera()
	if err != nil {
		return flip.Options{}, err
	}

	o := flip.DefaultOptions(st, float64(c.Width), float64(c.Height))
	o.Axis = axis
	o.Direction = flip.DirectionFor(axis)
	if c.Direction != "" {
		if o.Direction, err = flip.ParseDirection(c.Direction); err != nil {
			return flip.Options{}, err
		}
	}
	if cam != (camera.Camera{}) {
		o.Camera = cam
	}
	o.PivotPos = c.PivotPos
	o.ImageWidth = c.ImageWidth
	if panels > 0 {
		o.Panels = panels
	}
	return o, nil
}

// Duration is the length of one transition.
func (c *Config) Duration() time.Duration {
	return time.Duration(c.DurationMS) * time.Millisecond
}

// BackgroundColor resolves Background by colour name.
func (c *Config) BackgroundColor() color.NRGBA {
	rgba := colornames.Map[strings.ToLower(c.Background)]
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}
}

// ShadingEnabled reports whether panels darken as they turn. On unless the
// file turns it off.
func (c *Config) ShadingEnabled() bool {
	return c.Shading == nil || *c.Shading
}

// PanelSize is the pixel size panel images are fitted to. With ImageWidth
// set the panels keep the view aspect and are scaled up by the pivot.
func (c *Config) PanelSize() (int, int) {
	if c.ImageWidth > 0 {
		return int(c.ImageWidth), int(float64(c.Height) * c.ImageWidth / float64(c.Width))
	}
	return c.Width, c.Height
}

// ListPanels reports whether the style flips through a list.
func (c *Config) ListPanels() bool {
	st, err := flip.ParseStyle(c.Style)
	return err == nil && (st == flip.StyleList || st == flip.StyleCube)
}

// RenderOptions returns the raster settings of the config.
func (c *Config) RenderOptions() raster.Options {
	light := raster.DefaultLightConfig()
	if !c.ShadingEnabled() {
		light = raster.Flat()
	}
	return raster.Options{
		Width:       c.Width,
		Height:      c.Height,
		Supersample: c.Supersample,
		Background:  c.BackgroundColor(),
		Light:       light,
	}
}
