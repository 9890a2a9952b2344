package flip

import (
	"math"

	"flip3d-renderer/internal/mathutil"
)

// EndAngle is the sweep of one panel through a transition, in degrees.
const EndAngle = 90.0

// AngleFunc maps a transition fraction onto one panel's angle between
// start and end.
type AngleFunc func(fraction, start, end float64) float64

// SyncedAngle reparameterizes the sweep so that the free edges of two
// equally sized hinged panels stay together for every fraction, not just
// at 0 and 1. A non-zero start marks the panel that runs in reverse phase.
//
// The fraction is clamped to [0,1] to keep acos in its domain.
func SyncedAngle(fraction, start, end float64) float64 {
	return start + (end-start)*syncedPercent(fraction, start)
}

func syncedPercent(fraction, start float64) float64 {
	f := math.Max(0, math.Min(1, fraction))
	if start != 0 {
		f = 1 - f
	}
	percent := mathutil.Rad2Deg(math.Acos(1-f)) / EndAngle
	if start != 0 {
		percent = 1 - percent
	}
	return percent
}

// LinearAngle interpolates linearly and extrapolates outside [0,1].
func LinearAngle(fraction, start, end float64) float64 {
	return start + (end-start)*fraction
}
