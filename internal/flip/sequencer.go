// Package flip drives a pair of hinged panels through a 3D flip: it picks
// which panels take part, sets each panel's sweep and pivot, and turns a
// progress fraction into per-panel angles and projection matrices.
package flip

import (
	"fmt"

	"flip3d-renderer/internal/camera"
	"flip3d-renderer/internal/mathutil"
)

// Options configures a Sequencer. Zero fields take the style defaults.
type Options struct {
	Style  Style
	Axis   camera.Axis
	Camera camera.Camera

	// Panel size in view pixels.
	Width, Height float64
	// PivotPos places the pivot along the hinge line (0.5 = centre).
	PivotPos float64
	Panels   int

	// ImageWidth is the width of the image content for StyleImage; the
	// pivot scale corrects it to Width. Zero means the content is already
	// view sized.
	ImageWidth float64
	// Direction is the first travel direction of StyleFlipper.
	Direction Direction
}

// DefaultOptions returns the options a style was tuned with for a w×h panel.
func DefaultOptions(style Style, w, h float64) Options {
	return Options{
		Style:     style,
		Axis:      style.DefaultAxis(),
		Camera:    style.DefaultCamera(),
		Width:     w,
		Height:    h,
		PivotPos:  0.5,
		Panels:    style.DefaultPanels(),
		Direction: DirectionFor(style.DefaultAxis()),
	}
}

// Frame is the state of both panels at one fraction of a transition.
type Frame struct {
	Fraction float64
	Index1   int // leaving panel
	Index2   int // entering panel
	Angle1   float64
	Angle2   float64
	Panel1   mathutil.Mat3
	Panel2   mathutil.Mat3
	Forward  bool
}

// Sequencer owns the panel pair state of one flip host. It is not safe for
// concurrent use; call it from the goroutine that ticks the animation.
type Sequencer struct {
	opts Options
	law  AngleFunc

	pair   PanelPair
	active Direction // flipper direction of the current transition
	next   Direction // flipper direction of the following transition

	leaving, entering Hinge
	blend             [2][2]mathutil.Mat3
}

// New validates opts and returns a sequencer resting on panel 0.
func New(opts Options) (*Sequencer, error) {
	if !opts.Style.valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownStyle, int(opts.Style))
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("flip: invalid panel size %vx%v", opts.Width, opts.Height)
	}
	if opts.Camera == (camera.Camera{}) {
		opts.Camera = opts.Style.DefaultCamera()
	}
	if err := opts.Camera.Validate(); err != nil {
		return nil, err
	}
	if opts.PivotPos == 0 {
		opts.PivotPos = 0.5
	}
	if opts.Panels == 0 {
		opts.Panels = opts.Style.DefaultPanels()
	}
	pair, err := NewPanelPair(opts.Panels)
	if err != nil {
		return nil, err
	}
	if opts.Style == StyleFlipper && opts.Direction.Axis() != opts.Axis {
		opts.Direction = DirectionFor(opts.Axis)
	}

	s := &Sequencer{
		opts:   opts,
		law:    opts.Style.Law(),
		pair:   pair,
		active: opts.Direction,
		next:   opts.Direction,
	}
	s.prepare()
	return s, nil
}

func (s *Sequencer) Options() Options { return s.opts }

// Pair returns the current panel pair.
func (s *Sequencer) Pair() PanelPair { return s.pair }

// Hinges returns the leaving and entering hinges of the current transition.
func (s *Sequencer) Hinges() (Hinge, Hinge) { return s.leaving, s.entering }

// Direction returns the flipper travel direction of the current transition.
func (s *Sequencer) Direction() Direction { return s.active }

// Start advances to the next panel pair and sets up its sweeps.
// Call it once per transition, before the first Frame.
func (s *Sequencer) Start() PanelPair {
	switch {
	case s.opts.Style == StyleFlipper:
		s.active = s.next
		s.pair, s.next = FlipTransition(s.pair, s.active)
	case s.opts.Style.PingPong():
		s.pair = AdvancePingPong(s.pair)
	default:
		s.pair = AdvanceRoundRobin(s.pair)
	}
	s.prepare()
	return s.pair
}

// Select makes panel i the leaving panel of the next transition.
func (s *Sequencer) Select(i int) error {
	if i < 0 || i >= s.pair.Count {
		return fmt.Errorf("flip: panel %d out of range [0,%d)", i, s.pair.Count)
	}
	s.pair.Next = i
	return nil
}

// SetCamera changes the simulated camera; it applies from the next Frame.
func (s *Sequencer) SetCamera(c camera.Camera) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.opts.Camera = c
	s.prepare()
	return nil
}

// SetAxis changes the rotation axis and re-lays the current hinges.
func (s *Sequencer) SetAxis(a camera.Axis) {
	s.opts.Axis = a
	if s.opts.Style == StyleFlipper {
		s.active = DirectionFor(a)
		s.next = s.active
	}
	s.prepare()
}

func (s *Sequencer) prepare() {
	o := s.opts
	switch o.Style {
	case StyleCube:
		s.leaving, s.entering = cubePair(o.Width, o.Height, o.PivotPos)
	case StyleFlipper:
		s.leaving, s.entering = FlipHinges(s.active, o.Width, o.Height)
	default:
		s.leaving, s.entering = hingePair(o.Axis, s.pair.Direction(), o.Width, o.Height, o.PivotPos)
	}

	if o.Style == StyleImage && o.ImageWidth > 0 {
		sx := o.Width / o.ImageWidth
		s.leaving.Pivot.ScaleX, s.leaving.Pivot.ScaleY = sx, sx
		s.entering.Pivot.ScaleX, s.entering.Pivot.ScaleY = sx, sx
	}

	if o.Style.Blends() {
		for i, h := range [2]Hinge{s.leaving, s.entering} {
			s.blend[i][0] = h.Matrix(h.Rotation.From, 0, o.Camera)
			s.blend[i][1] = h.Matrix(h.Rotation.To, 1, o.Camera)
		}
	}
}

// Frame returns both panels at fraction of the current transition, the way
// automatic playback shows them. For blending styles the matrices are the
// raw linear blend of the transition's end points.
func (s *Sequencer) Frame(fraction float64) Frame {
	fr := s.Scrub(fraction)
	if s.opts.Style.Blends() {
		fr.Panel1 = mathutil.Mat3Lerp(s.blend[0][0], s.blend[0][1], fraction)
		fr.Panel2 = mathutil.Mat3Lerp(s.blend[1][0], s.blend[1][1], fraction)
	}
	return fr
}

// Scrub returns both panels at fraction with every matrix projected from
// its angle, the way a manually positioned transition is shown.
func (s *Sequencer) Scrub(fraction float64) Frame {
	a1 := s.leaving.Angle(fraction, s.law)
	a2 := s.entering.Angle(fraction, s.law)
	return Frame{
		Fraction: fraction,
		Index1:   s.pair.Current,
		Index2:   s.pair.Next,
		Angle1:   a1,
		Angle2:   a2,
		Panel1:   s.leaving.Matrix(a1, fraction, s.opts.Camera),
		Panel2:   s.entering.Matrix(a2, fraction, s.opts.Camera),
		Forward:  s.pair.Forward,
	}
}

// Title is the diagnostic line shown over a frame.
func (f Frame) Title() string {
	return fmt.Sprintf("Frac:%.2f  D1:%.0f  D2:%.0f", f.Fraction, f.Angle1, f.Angle2)
}
