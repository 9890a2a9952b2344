package flip

import (
	"errors"
	"fmt"
	"strings"

	"flip3d-renderer/internal/camera"
)

var ErrUnknownStyle = errors.New("flip: unknown style")

// Style selects one of the flip looks. All of them share the same camera
// projection and differ only in traversal, angle law and hinge layout.
type Style int

const (
	// StyleView flips a ping-pong stack of panels with synchronized edges.
	StyleView Style = iota
	// StyleImage blends the raw start and end matrices of two image panels.
	StyleImage
	// StyleRotate swings two panels with linear angles, reversing each time.
	StyleRotate
	// StyleList flips through a cyclic list with synchronized edges.
	StyleList
	// StyleCube turns and slides list rows like the faces of a cube.
	StyleCube
	// StyleFlipper is the view-animator flip with direction reversal on wrap.
	StyleFlipper
)

var styleNames = [...]string{"view", "image", "rotate", "list", "cube", "flipper"}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return StyleView, fmt.Errorf("%w %q", ErrUnknownStyle, name)
}

// Styles lists every style in declaration order.
func Styles() []Style {
	out := make([]Style, len(styleNames))
	for i := range out {
		out[i] = Style(i)
	}
	return out
}

func (s Style) valid() bool {
	return s >= 0 && int(s) < len(styleNames)
}

// PingPong reports whether the style bounces off the ends of its panels
// instead of wrapping around.
func (s Style) PingPong() bool {
	return s == StyleView || s == StyleImage || s == StyleRotate
}

// Synced reports whether the style uses SyncedAngle.
func (s Style) Synced() bool {
	return s == StyleView || s == StyleList
}

// Law returns the angle interpolation of the style.
func (s Style) Law() AngleFunc {
	if s.Synced() {
		return SyncedAngle
	}
	return LinearAngle
}

// Blends reports whether automatic playback blends endpoint matrices
// instead of projecting every angle.
func (s Style) Blends() bool {
	return s == StyleImage
}

// DefaultCamera is the camera each look was tuned with.
func (s Style) DefaultCamera() camera.Camera {
	switch s {
	case StyleImage:
		return camera.Camera{Z: -50}
	case StyleRotate:
		return camera.Camera{Z: -25}
	case StyleView, StyleList:
		// 192000 px on a 160 dpi display
		return camera.Camera{Z: -1200}
	}
	return camera.Default
}

// DefaultAxis is the rotation axis each look starts with.
func (s Style) DefaultAxis() camera.Axis {
	switch s {
	case StyleImage, StyleRotate, StyleFlipper:
		return camera.AxisY
	}
	return camera.AxisX
}

// DefaultPanels is the panel count each look was built around.
func (s Style) DefaultPanels() int {
	switch s {
	case StyleView:
		return 3
	case StyleList, StyleCube:
		return 13
	case StyleFlipper:
		return 3
	}
	return 2
}
