package raster

import (
	"math"

	"flip3d-renderer/internal/camera"
	"flip3d-renderer/internal/mathutil"
)

// LightConfig darkens panels as they turn away from the viewer.
type LightConfig struct {
	LightDir mathutil.Vec3 // towards the light, camera space
	Ambient  float64
	Direct   float64
}

// DefaultLightConfig is a head-on light with enough ambient that an
// edge-on panel is still visible.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		LightDir: mathutil.Vec3{0, 0, -1},
		Ambient:  0.35,
		Direct:   0.65,
	}
}

// Flat disables shading.
func Flat() LightConfig {
	return LightConfig{Ambient: 1}
}

// PanelNormal returns the normal of a panel rotated by degrees about axis.
// An unrotated panel faces the camera along -Z.
func PanelNormal(degrees float64, axis camera.Axis) mathutil.Vec3 {
	rad := mathutil.Deg2Rad(degrees)
	rot := mathutil.RotY(rad)
	if axis == camera.AxisX {
		rot = mathutil.RotX(rad)
	}
	return rot.MulVec3(mathutil.Vec3{0, 0, -1})
}

// ComputeShade returns the lighting scalar for a panel normal, in [0, 1]
// for the default config. Panels are double-sided.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	ndl := math.Abs(normal.Dot(lc.LightDir))
	return math.Min(lc.Ambient+ndl*lc.Direct, 1)
}
