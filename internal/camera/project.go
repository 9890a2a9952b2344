package camera

import "flip3d-renderer/internal/mathutil"

// PivotEpsilon replaces a pivot coordinate of exactly zero. Hosts that treat
// a literal zero pivot as "unset" would otherwise rotate about the centre.
const PivotEpsilon = 1e-4

// Pivot anchors rotation and aspect correction in view-local pixels.
// Zero scales are read as 1.
type Pivot struct {
	X, Y           float64
	ScaleX, ScaleY float64
}

// NewPivot returns an unscaled pivot.
func NewPivot(x, y float64) Pivot {
	return Pivot{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

func (p Pivot) normalized() Pivot {
	if p.X == 0 {
		p.X = PivotEpsilon
	}
	if p.Y == 0 {
		p.Y = PivotEpsilon
	}
	if p.ScaleX == 0 && p.ScaleY == 0 {
		p.ScaleX, p.ScaleY = 1, 1
	}
	return p
}

// Project returns the transform of a panel rotated by degrees about axis,
// seen through cam and anchored at pivot. A point goes through the pivot
// scale, the pivot-centred camera projection, then base.
func Project(degrees float64, axis Axis, cam Camera, pivot Pivot, base mathutil.Mat3) mathutil.Mat3 {
	return anchor(cam.Matrix(degrees, axis), pivot).PostConcat(base)
}

// Orthographic is Project without the perspective divide: the camera
// matrix loses its perspective row before the pivot is applied, so the
// panel is foreshortened by the cosine of its angle alone.
func Orthographic(degrees float64, axis Axis, cam Camera, pivot Pivot, base mathutil.Mat3) mathutil.Mat3 {
	return anchor(cam.Matrix(degrees, axis).Affine(), pivot).PostConcat(base)
}

func anchor(m mathutil.Mat3, pivot Pivot) mathutil.Mat3 {
	p := pivot.normalized()
	return m.PreTranslate(-p.X, -p.Y).
		PreScale(p.ScaleX, p.ScaleY).
		PostTranslate(p.X, p.Y)
}

// Rotator binds the parameters of one panel so callers only vary the angle.
// A zero Base is read as identity.
type Rotator struct {
	Axis   Axis
	Camera Camera
	Pivot  Pivot
	Base   mathutil.Mat3
}

// NewRotator returns a rotator with an identity base transform.
func NewRotator(axis Axis, cam Camera, pivot Pivot) Rotator {
	return Rotator{Axis: axis, Camera: cam, Pivot: pivot, Base: mathutil.Mat3Identity()}
}

func (r Rotator) Project(degrees float64) mathutil.Mat3 {
	return Project(degrees, r.Axis, r.Camera, r.Pivot, r.base())
}

func (r Rotator) Orthographic(degrees float64) mathutil.Mat3 {
	return Orthographic(degrees, r.Axis, r.Camera, r.Pivot, r.base())
}

func (r Rotator) base() mathutil.Mat3 {
	if r.Base == (mathutil.Mat3{}) {
		return mathutil.Mat3Identity()
	}
	return r.Base
}
