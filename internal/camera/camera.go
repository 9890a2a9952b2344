// Package camera simulates the pinhole camera used to give a flat panel a
// perspective "3D flip" look, and flattens the result into a 2D projective
// matrix.
package camera

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"flip3d-renderer/internal/mathutil"
)

// PointsPerInch converts camera locations (inches) into view units.
const PointsPerInch = 72.0

var ErrZeroDistance = errors.New("camera: zero distance")

// Axis selects the axis a panel rotates about.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// ParseAxis accepts "x" or "y" in any case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y", "":
		return AxisY, nil
	}
	return AxisY, fmt.Errorf("camera: unknown axis %q", s)
}

// Camera is the simulated eye position, in inches. Z is negative (behind
// the view plane); the further away, the weaker the distortion.
type Camera struct {
	X, Y, Z float64
}

// Default matches the stock 3D view camera eight inches behind the screen.
var Default = Camera{0, 0, -8}

// New validates the location.
func New(x, y, z float64) (Camera, error) {
	c := Camera{x, y, z}
	return c, c.Validate()
}

// FromViewDistance converts a view camera distance in pixels into a camera
// location for a display with the given density.
func FromViewDistance(distance, dpi float64) (Camera, error) {
	if dpi <= 0 {
		return Camera{}, fmt.Errorf("camera: invalid dpi %v", dpi)
	}
	return New(0, 0, -math.Abs(distance)/dpi)
}

func (c Camera) Validate() error {
	if c.Z == 0 {
		return ErrZeroDistance
	}
	return nil
}

// View-space basis of the camera: it looks down +Z with screen-up along -Y.
var (
	viewAxis = mathutil.Vec3{0, 0, 1}
	zenith   = mathutil.Vec3{0, -1, 0}
)

// Matrix returns the camera projection of a unit patch rotated by degrees
// about axis, with no pivot applied. Rotation about Y follows the view
// convention (about -Y) so positive angles swing the right edge away.
//
// Matrix panics on a zero camera distance; use New or Validate first.
func (c Camera) Matrix(degrees float64, axis Axis) mathutil.Mat3 {
	if c.Z == 0 {
		panic(ErrZeroDistance)
	}
	loc := mathutil.Vec3{c.X, c.Y, c.Z}.Scale(PointsPerInch)
	observer := mathutil.Vec3{0, 0, loc[2]}

	fwd := viewAxis.Normalize()
	up := zenith.Reject(fwd).Normalize()
	right := fwd.Cross(up)

	// z-shear along the view axis from the observer offset, scaled by the
	// observer's distance
	rows := [3]mathutil.Vec3{
		fwd.Scale(observer[0]).Sub(right.Scale(observer[2])),
		fwd.Scale(observer[1]).Sub(up.Scale(observer[2])),
		fwd,
	}

	rot := patchRotation(degrees, axis)
	u := rot.MulVec3(mathutil.Vec3{1, 0, 0})
	v := rot.MulVec3(mathutil.Vec3{0, -1, 0})
	diff := mathutil.Vec3{}.Sub(loc)
	dot := diff.Dot(rows[2])

	return mathutil.Mat3{
		u.Dot(rows[0]) / dot, v.Dot(rows[0]) / dot, diff.Dot(rows[0]) / dot,
		u.Dot(rows[1]) / dot, v.Dot(rows[1]) / dot, diff.Dot(rows[1]) / dot,
		u.Dot(rows[2]) / dot, v.Dot(rows[2]) / dot, 1,
	}
}

func patchRotation(degrees float64, axis Axis) mathutil.Mat3 {
	rad := mathutil.Deg2Rad(degrees)
	if axis == AxisX {
		return mathutil.QuatToMat3(mathutil.AxisAngle(mathutil.Vec3{1, 0, 0}, rad))
	}
	return mathutil.QuatToMat3(mathutil.AxisAngle(mathutil.Vec3{0, -1, 0}, rad))
}
