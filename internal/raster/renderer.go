package raster

import (
	"image"
	"image/color"

	"flip3d-renderer/internal/camera"
	"flip3d-renderer/internal/flip"
	"flip3d-renderer/internal/mathutil"
)

// Options controls how a frame is rasterised.
type Options struct {
	Width, Height int // view size in pixels
	Supersample   int
	Background    color.NRGBA
	Light         LightConfig
}

// Panel is one image placed in the view.
type Panel struct {
	Image   *image.NRGBA
	Matrix  mathutil.Mat3 // panel pixels → view pixels
	Degrees float64
	Axis    camera.Axis
}

// RenderFrame renders the two panels of fr at Width·Supersample ×
// Height·Supersample. images is indexed by panel number.
func RenderFrame(fr flip.Frame, axis camera.Axis, images []*image.NRGBA, opts Options) *image.NRGBA {
	var panels []Panel
	if img := at(images, fr.Index2); img != nil && fr.Index2 != fr.Index1 {
		panels = append(panels, Panel{Image: img, Matrix: fr.Panel2, Degrees: fr.Angle2, Axis: axis})
	}
	if img := at(images, fr.Index1); img != nil {
		panels = append(panels, Panel{Image: img, Matrix: fr.Panel1, Degrees: fr.Angle1, Axis: axis})
	}
	return RenderPanels(panels, opts)
}

// RenderPanels rasterises panels into one depth-tested buffer. A zero
// Light uses DefaultLightConfig.
func RenderPanels(panels []Panel, opts Options) *image.NRGBA {
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	fb := NewFrameBuffer(opts.Width*ss, opts.Height*ss, opts.Background)
	toBuffer := mathutil.Scale(float64(ss), float64(ss))
	light := opts.Light
	if light == (LightConfig{}) {
		light = DefaultLightConfig()
	}

	for _, p := range panels {
		shade := light.ComputeShade(PanelNormal(p.Degrees, p.Axis))
		WarpPanel(fb, p.Image, p.Matrix.PostConcat(toBuffer), shade)
	}
	return fb.Image()
}

func at(images []*image.NRGBA, i int) *image.NRGBA {
	if i < 0 || i >= len(images) {
		return nil
	}
	return images[i]
}
