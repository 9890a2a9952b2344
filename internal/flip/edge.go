package flip

import (
	"math"

	"flip3d-renderer/internal/mathutil"
)

// EdgeGap measures how far apart the free edges of the two panels of f land
// in view space. With affine set both panels are projected orthographically
// from the frame's angles, which is where SyncedAngle keeps the edges
// exactly together; with the frame's own matrices a small residual remains
// that shrinks as the camera moves away.
func (s *Sequencer) EdgeGap(f Frame, affine bool) float64 {
	w, h := s.opts.Width, s.opts.Height
	x1, y1 := s.leaving.FreeEdge(w, h)
	x2, y2 := s.entering.FreeEdge(w, h)

	m1, m2 := f.Panel1, f.Panel2
	if affine {
		cam := s.opts.Camera
		m1 = s.leaving.AffineMatrix(f.Angle1, f.Fraction, cam)
		m2 = s.entering.AffineMatrix(f.Angle2, f.Fraction, cam)
	}
	return pointDist(m1, x1, y1, m2, x2, y2)
}

func pointDist(m1 mathutil.Mat3, x1, y1 float64, m2 mathutil.Mat3, x2, y2 float64) float64 {
	ax, ay, _ := m1.MapPoint(x1, y1)
	bx, by, _ := m2.MapPoint(x2, y2)
	return math.Hypot(ax-bx, ay-by)
}
