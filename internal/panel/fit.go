package panel

import (
	"image"

	"golang.org/x/image/draw"
)

// Fit scales img to exactly w×h. Images already that size are returned
// unchanged.
func Fit(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
