package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

var (
	railColor   = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	centreColor = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	// SideColors are the leaving and entering panel colours.
	SideColors = [2]color.NRGBA{
		{R: 0x40, G: 0x80, B: 0x80, A: 255},
		{R: 0x80, G: 0x40, B: 0x80, A: 255},
	}
)

const sweepAlpha = 40

// Side is one panel seen edge-on from above: its angle and which rail it
// is hinged on.
type Side struct {
	Degrees float64
	Right   bool
}

// Profile draws a top-down diagram of both panels into r: two rails at the
// panel edges, each panel as a line from its hinge and a translucent wedge
// over the angle it has swept.
func Profile(dst draw.Image, r image.Rectangle, sides [2]Side) {
	w, h := r.Dx(), r.Dy()
	dim := float32(min(w, h/2))
	if dim <= 0 {
		return
	}
	lo := 0.1 * dim
	size := 0.8 * dim
	maxX := lo + size
	maxY := lo + size*2
	cenY := (lo + maxY) / 2

	z := vector.NewRasterizer(w, h)
	stroke(z, lo, lo, lo, maxY, 3)
	stroke(z, maxX, lo, maxX, maxY, 3)
	fill(dst, r, z, railColor)

	z.Reset(w, h)
	stroke(z, lo, cenY, maxX, cenY, 1)
	fill(dst, r, z, centreColor)

	for i, s := range sides {
		x1, base := lo, 0.0
		deg := s.Degrees
		if s.Right {
			x1, base = maxX, 180
			deg += 180
		}
		rad := deg * math.Pi / 180
		x2 := x1 + float32(math.Cos(rad))*size
		y2 := cenY + float32(math.Sin(rad))*size

		z.Reset(w, h)
		wedge(z, x1, cenY, size, base, deg)
		c := SideColors[i]
		c.A = sweepAlpha
		fill(dst, r, z, c)

		z.Reset(w, h)
		stroke(z, x1, cenY, x2, y2, 4)
		fill(dst, r, z, SideColors[i])
	}
}

func fill(dst draw.Image, r image.Rectangle, z *vector.Rasterizer, c color.Color) {
	z.DrawOp = draw.Over
	z.Draw(dst, r, image.NewUniform(c), image.Point{})
}

// stroke adds a line of the given width as a filled quad.
func stroke(z *vector.Rasterizer, x1, y1, x2, y2, width float32) {
	dx, dy := x2-x1, y2-y1
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	z.MoveTo(x1+nx, y1+ny)
	z.LineTo(x2+nx, y2+ny)
	z.LineTo(x2-nx, y2-ny)
	z.LineTo(x1-nx, y1-ny)
	z.ClosePath()
}

// wedge adds a pie slice centred on (cx, cy) between two angles in degrees,
// measured clockwise from the +X axis in screen space.
func wedge(z *vector.Rasterizer, cx, cy, radius float32, from, to float64) {
	if from == to {
		return
	}
	steps := int(math.Ceil(math.Abs(to-from)/5)) + 1
	z.MoveTo(cx, cy)
	for i := 0; i <= steps; i++ {
		a := (from + (to-from)*float64(i)/float64(steps)) * math.Pi / 180
		z.LineTo(cx+float32(math.Cos(a))*radius, cy+float32(math.Sin(a))*radius)
	}
	z.ClosePath()
}
