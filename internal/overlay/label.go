// Package overlay draws diagnostics on top of rendered frames.
package overlay

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var face = basicfont.Face7x13

// LineHeight is the pixel height of one label line.
func LineHeight() int {
	return face.Metrics().Height.Ceil()
}

// LabelWidth returns the advance of text in pixels.
func LabelWidth(text string) int {
	return font.MeasureString(face, text).Ceil()
}

// Label draws text with its baseline starting at (x, y).
func Label(dst draw.Image, text string, x, y int, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// CenterLabel draws text centred in r.
func CenterLabel(dst draw.Image, r image.Rectangle, text string, col color.Color) {
	m := face.Metrics()
	x := r.Min.X + (r.Dx()-LabelWidth(text))/2
	y := r.Min.Y + (r.Dy()+m.Ascent.Ceil()-m.Descent.Ceil())/2
	Label(dst, text, x, y, col)
}

// Title draws a frame's diagnostic line in the top-left corner on a dark
// band so it stays readable over any panel.
func Title(dst draw.Image, text string) {
	b := dst.Bounds()
	band := image.Rect(b.Min.X, b.Min.Y, b.Min.X+LabelWidth(text)+8, b.Min.Y+LineHeight()+4)
	draw.Draw(dst, band.Intersect(b), image.NewUniform(color.NRGBA{A: 160}), image.Point{}, draw.Over)
	Label(dst, text, b.Min.X+4, b.Min.Y+2+face.Metrics().Ascent.Ceil(), color.White)
}
