package mathutil

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// As a 2D transform the layout is
//
//	| scaleX skewX  transX |
//	| skewY  scaleY transY |
//	| persp0 persp1 persp2 |
//
// Value type for zero heap allocation; every operation returns a new matrix.
type Mat3 [9]float64

func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

func Mat3Diag(x, y, z float64) Mat3 {
	return Mat3{x, 0, 0, 0, y, 0, 0, 0, z}
}

// Translate returns a pure 2D translation.
func Translate(dx, dy float64) Mat3 {
	return Mat3{1, 0, dx, 0, 1, dy, 0, 0, 1}
}

// Scale returns a pure 2D scale about the origin.
func Scale(sx, sy float64) Mat3 {
	return Mat3Diag(sx, sy, 1)
}

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

// PreConcat returns m × o: o is applied to a point before m.
func (m Mat3) PreConcat(o Mat3) Mat3 {
	return Mat3Mul(m, o)
}

// PostConcat returns o × m: o is applied to a point after m.
func (m Mat3) PostConcat(o Mat3) Mat3 {
	return Mat3Mul(o, m)
}

func (m Mat3) PreTranslate(dx, dy float64) Mat3 {
	return Mat3Mul(m, Translate(dx, dy))
}

func (m Mat3) PostTranslate(dx, dy float64) Mat3 {
	return Mat3Mul(Translate(dx, dy), m)
}

func (m Mat3) PreScale(sx, sy float64) Mat3 {
	return Mat3Mul(m, Scale(sx, sy))
}

// Mat3Lerp blends the nine raw entries of a and b. The fraction is not
// clamped, so values outside [0,1] extrapolate.
func Mat3Lerp(a, b Mat3, fraction float64) Mat3 {
	var m Mat3
	for i := range m {
		m[i] = (1-fraction)*a[i] + fraction*b[i]
	}
	return m
}

// MulVec3 returns M × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// MapPoint transforms a 2D point, dividing by the homogeneous coordinate.
// w is returned so callers can reject points behind the camera (w <= 0).
func (m Mat3) MapPoint(x, y float64) (float64, float64, float64) {
	h := m.MulVec3(Vec3{x, y, 1})
	if h[2] == 0 {
		return h[0], h[1], 0
	}
	return h[0] / h[2], h[1] / h[2], h[2]
}

// Affine drops the perspective row, leaving the orthographic part of the transform.
func (m Mat3) Affine() Mat3 {
	return Mat3{m[0], m[1], m[2], m[3], m[4], m[5], 0, 0, 1}
}

// IsAffine reports whether the last row is [0,0,1].
func (m Mat3) IsAffine() bool {
	return m[6] == 0 && m[7] == 0 && m[8] == 1
}

// ApproxEqual compares element-wise within tol.
func (m Mat3) ApproxEqual(o Mat3, tol float64) bool {
	for i := range m {
		d := m[i] - o[i]
		if d > tol || d < -tol {
			return false
		}
	}
	return true
}

func (m Mat3) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns the inverse matrix and false when m is singular.
func (m Mat3) Inverse() (Mat3, bool) {
	d := m.Det()
	if d == 0 {
		return Mat3Identity(), false
	}
	invD := 1.0 / d
	return Mat3{
		(m[4]*m[8] - m[5]*m[7]) * invD,
		(m[2]*m[7] - m[1]*m[8]) * invD,
		(m[1]*m[5] - m[2]*m[4]) * invD,
		(m[5]*m[6] - m[3]*m[8]) * invD,
		(m[0]*m[8] - m[2]*m[6]) * invD,
		(m[2]*m[3] - m[0]*m[5]) * invD,
		(m[3]*m[7] - m[4]*m[6]) * invD,
		(m[1]*m[6] - m[0]*m[7]) * invD,
		(m[0]*m[4] - m[1]*m[3]) * invD,
	}, true
}
