package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float64

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Reject removes the component of v along the unit vector n.
func (v Vec3) Reject(n Vec3) Vec3 {
	return v.Sub(n.Scale(v.Dot(n)))
}

// Normalize returns v scaled to unit length, or the zero vector for a
// (near) zero input.
func (v Vec3) Normalize() Vec3 {
	l := math.Sqrt(v.Dot(v))
	if l < 1e-12 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}
