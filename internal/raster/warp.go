package raster

import (
	"image"
	"math"

	"flip3d-renderer/internal/mathutil"
)

// WarpPanel draws tex into fb through m, which maps panel pixels to buffer
// pixels. Every covered buffer pixel is pulled back through the inverse
// homography, depth-tested on its homogeneous w and blended over what is
// already there, tinted by shade. It returns the number of pixels written.
//
// This is the HOT PATH: no allocation inside the pixel loop.
func WarpPanel(fb *FrameBuffer, tex *image.NRGBA, m mathutil.Mat3, shade float64) int {
	tw := float64(tex.Rect.Dx())
	th := float64(tex.Rect.Dy())
	if tw == 0 || th == 0 {
		return 0
	}

	inv, ok := m.Inverse()
	if !ok {
		// edge-on
		return 0
	}

	// Bounding box of the projected panel. A corner at or behind the camera
	// plane has no screen position.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{0, 0}, {tw, 0}, {0, th}, {tw, th}} {
		p := m.MulVec3(mathutil.Vec3{c[0], c[1], 1})
		if p[2] <= 0 {
			return 0
		}
		x, y := p[0]/p[2], p[1]/p[2]
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	x0 := max(int(math.Floor(minX)), 0)
	y0 := max(int(math.Floor(minY)), 0)
	x1 := min(int(math.Ceil(maxX)), fb.Width)
	y1 := min(int(math.Ceil(maxY)), fb.Height)
	if x0 >= x1 || y0 >= y1 {
		return 0
	}

	shade = clampf(shade, 0, 1)
	written := 0
	for py := y0; py < y1; py++ {
		v := float64(py) + 0.5
		for px := x0; px < x1; px++ {
			u := float64(px) + 0.5

			qx := inv[0]*u + inv[1]*v + inv[2]
			qy := inv[3]*u + inv[4]*v + inv[5]
			qw := inv[6]*u + inv[7]*v + inv[8]
			if qw == 0 {
				continue
			}
			x, y := qx/qw, qy/qw
			if x < 0 || x >= tw || y < 0 || y >= th {
				continue
			}

			depth := m[6]*x + m[7]*y + m[8]
			zi := py*fb.Width + px
			if depth >= fb.ZBuf[zi] {
				continue
			}

			sr, sg, sb, sa := SampleBilinear(tex, x, y)
			if sa == 0 {
				continue
			}
			fb.ZBuf[zi] = depth

			ci := zi * 4
			alpha := float64(sa) / 255
			keep := 1 - alpha
			fb.Color[ci] = uint8(float64(sr)*shade*alpha + float64(fb.Color[ci])*keep + 0.5)
			fb.Color[ci+1] = uint8(float64(sg)*shade*alpha + float64(fb.Color[ci+1])*keep + 0.5)
			fb.Color[ci+2] = uint8(float64(sb)*shade*alpha + float64(fb.Color[ci+2])*keep + 0.5)
			fb.Color[ci+3] = uint8(float64(sa) + float64(fb.Color[ci+3])*keep + 0.5)
			written++
		}
	}
	return written
}
