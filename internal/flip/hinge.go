package flip

import (
	"math"

	"flip3d-renderer/internal/camera"
	"flip3d-renderer/internal/mathutil"
)

// Rotation is one panel's angular sweep over a transition. It is set when
// the transition starts and left alone until the next one.
type Rotation struct {
	Axis camera.Axis
	From float64
	To   float64
}

// Hinge is everything needed to place one panel at any fraction of a
// transition: its sweep, pivot and an optional slide.
type Hinge struct {
	Rotation Rotation
	Pivot    camera.Pivot

	// Slide offsets are post-translated in view pixels, interpolated
	// linearly from SlideFrom to SlideTo.
	SlideFrom [2]float64
	SlideTo   [2]float64
	// SnapSlide truncates the slide to whole pixels.
	SnapSlide bool
}

// Angle returns the panel angle at fraction under law.
func (h Hinge) Angle(fraction float64, law AngleFunc) float64 {
	return law(fraction, h.Rotation.From, h.Rotation.To)
}

// Rotator binds the hinge's axis and pivot to cam.
func (h Hinge) Rotator(cam camera.Camera) camera.Rotator {
	return camera.NewRotator(h.Rotation.Axis, cam, h.Pivot)
}

// Matrix projects the panel at the given angle; fraction only drives the slide.
func (h Hinge) Matrix(degrees, fraction float64, cam camera.Camera) mathutil.Mat3 {
	return h.slideBy(h.Rotator(cam).Project(degrees), fraction)
}

// AffineMatrix is Matrix without the perspective divide.
func (h Hinge) AffineMatrix(degrees, fraction float64, cam camera.Camera) mathutil.Mat3 {
	return h.slideBy(h.Rotator(cam).Orthographic(degrees), fraction)
}

func (h Hinge) slideBy(m mathutil.Mat3, fraction float64) mathutil.Mat3 {
	dx, dy := h.slide(fraction)
	if dx == 0 && dy == 0 {
		return m
	}
	return m.PostTranslate(dx, dy)
}

func (h Hinge) slide(fraction float64) (float64, float64) {
	dx := h.SlideFrom[0] + (h.SlideTo[0]-h.SlideFrom[0])*fraction
	dy := h.SlideFrom[1] + (h.SlideTo[1]-h.SlideFrom[1])*fraction
	if h.SnapSlide {
		dx, dy = math.Trunc(dx), math.Trunc(dy)
	}
	return dx, dy
}

// FreeEdge returns the midpoint of the edge opposite the hinge, in
// panel-local pixels, for a panel of size w×h.
func (h Hinge) FreeEdge(w, ht float64) (float64, float64) {
	p := h.Pivot
	if h.Rotation.Axis == camera.AxisY {
		if p.X < w/2 {
			return w, p.Y
		}
		return 0, p.Y
	}
	if p.Y < ht/2 {
		return p.X, ht
	}
	return p.X, 0
}

// hingePair builds the leaving and entering hinges of two panels that swing
// about opposite edges. dir is +1 forward, -1 reverse; pivotPos places the
// pivot along the hinge line as a fraction of the panel.
func hingePair(axis camera.Axis, dir, w, ht, pivotPos float64) (Hinge, Hinge) {
	leaving := Hinge{Rotation: Rotation{Axis: axis, From: 0, To: EndAngle * dir}}
	entering := Hinge{Rotation: Rotation{Axis: axis, From: -EndAngle * dir, To: 0}}

	near, far := 0.0, w
	if axis == camera.AxisX {
		// rotating about X swings the opposite way, so the edges swap
		near, far = ht, 0
	}
	if dir < 0 {
		near, far = far, near
	}

	if axis == camera.AxisY {
		leaving.Pivot = camera.NewPivot(far, ht*pivotPos)
		entering.Pivot = camera.NewPivot(near, ht*pivotPos)
	} else {
		leaving.Pivot = camera.NewPivot(w*pivotPos, far)
		entering.Pivot = camera.NewPivot(w*pivotPos, near)
	}
	return leaving, entering
}

// cubePair is the list "cube" look: both panels turn about X while sliding
// down by one panel height.
func cubePair(w, ht, pivotPos float64) (Hinge, Hinge) {
	leaving := Hinge{
		Rotation:  Rotation{Axis: camera.AxisX, From: 0, To: -EndAngle},
		Pivot:     camera.NewPivot(w*pivotPos, 0),
		SlideTo:   [2]float64{0, ht},
		SnapSlide: true,
	}
	entering := Hinge{
		Rotation:  Rotation{Axis: camera.AxisX, From: EndAngle, To: 0},
		Pivot:     camera.NewPivot(w*pivotPos, ht),
		SlideFrom: [2]float64{0, -ht},
		SnapSlide: true,
	}
	return leaving, entering
}
