package flip

import (
	"math"
	"testing"

	"flip3d-renderer/internal/camera"
	"flip3d-renderer/internal/mathutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hingeOptions(axis camera.Axis, z float64) Options {
	return Options{
		Style:    StyleView,
		Axis:     axis,
		Camera:   camera.Camera{Z: z},
		Width:    100,
		Height:   100,
		PivotPos: 0.5,
		Panels:   3,
	}
}

func TestNewValidates(t *testing.T) {
	o := hingeOptions(camera.AxisY, -50)
	o.Panels = 1
	_, err := New(o)
	assert.ErrorIs(t, err, ErrTooFewPanels)

	o = hingeOptions(camera.AxisY, -50)
	o.Width = 0
	_, err = New(o)
	assert.Error(t, err)

	o = hingeOptions(camera.AxisY, -50)
	o.Camera = camera.Camera{X: 1}
	_, err = New(o)
	assert.ErrorIs(t, err, camera.ErrZeroDistance)

	o = hingeOptions(camera.AxisY, -50)
	o.Style = Style(42)
	_, err = New(o)
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestNewFillsDefaults(t *testing.T) {
	s, err := New(Options{Style: StyleRotate, Width: 10, Height: 10})
	require.NoError(t, err)
	o := s.Options()
	assert.Equal(t, camera.Camera{Z: -25}, o.Camera)
	assert.Equal(t, 0.5, o.PivotPos)
	assert.Equal(t, 2, o.Panels)
}

func TestViewForwardSweep(t *testing.T) {
	s, err := New(hingeOptions(camera.AxisY, -50))
	require.NoError(t, err)
	p := s.Start()
	assert.Equal(t, 0, p.Current)
	assert.Equal(t, 1, p.Next)

	leaving, entering := s.Hinges()
	assert.Equal(t, camera.NewPivot(100, 50), leaving.Pivot)
	assert.Equal(t, camera.NewPivot(0, 50), entering.Pivot)

	f0 := s.Frame(0)
	assert.InDelta(t, 0.0, f0.Angle1, 1e-9)
	assert.InDelta(t, -90.0, f0.Angle2, 1e-9)
	f1 := s.Frame(1)
	assert.InDelta(t, 90.0, f1.Angle1, 1e-9)
	assert.InDelta(t, 0.0, f1.Angle2, 1e-9)
	assert.Equal(t, 0, f1.Index1)
	assert.Equal(t, 1, f1.Index2)
	assert.True(t, f1.Forward)

	// at rest the leaving panel is untouched
	assert.True(t, f0.Panel1.ApproxEqual(mathutil.Mat3Identity(), 1e-9), "%v", f0.Panel1)
}

func TestHingeEdgesMeet(t *testing.T) {
	for _, axis := range []camera.Axis{camera.AxisX, camera.AxisY} {
		s, err := New(hingeOptions(axis, -50))
		require.NoError(t, err)
		s.Start()

		const w, l = 100.0, 50 * camera.PointsPerInch
		r := w / l
		bound := w*r/(1-r) + 1e-3

		prev := -1.0
		for i := 0; i < 10; i++ {
			f := float64(i) / 9
			fr := s.Frame(f)
			assert.Less(t, s.EdgeGap(fr, true), 1e-3, "axis %v fraction %v", axis, f)
			assert.LessOrEqual(t, s.EdgeGap(fr, false), bound, "axis %v fraction %v", axis, f)

			p := syncedPercent(f, 0)
			assert.Greater(t, p, prev)
			prev = p
		}
		assert.Less(t, s.EdgeGap(s.Frame(0), false), 1e-3)
		assert.Less(t, s.EdgeGap(s.Frame(1), false), 1e-3)
	}
}

func TestHingeEdgesMeetInReverse(t *testing.T) {
	s, err := New(hingeOptions(camera.AxisY, -50))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		s.Start()
	}
	p := s.Pair()
	assert.Equal(t, 2, p.Current)
	assert.Equal(t, 1, p.Next)
	assert.False(t, p.Forward)

	leaving, entering := s.Hinges()
	assert.Equal(t, Rotation{Axis: camera.AxisY, From: 0, To: -90}, leaving.Rotation)
	assert.Equal(t, Rotation{Axis: camera.AxisY, From: 90, To: 0}, entering.Rotation)
	assert.Equal(t, 0.0, leaving.Pivot.X)
	assert.Equal(t, 100.0, entering.Pivot.X)

	for i := 0; i <= 8; i++ {
		fr := s.Frame(float64(i) / 8)
		assert.Less(t, s.EdgeGap(fr, true), 1e-3)
	}
}

func TestHingeMatricesComeFromRotator(t *testing.T) {
	s, err := New(hingeOptions(camera.AxisY, -50))
	require.NoError(t, err)
	s.Start()
	leaving, entering := s.Hinges()
	cam := s.Options().Camera

	fr := s.Scrub(0.4)
	assert.Equal(t, leaving.Rotator(cam).Project(fr.Angle1), fr.Panel1)
	assert.Equal(t, entering.Rotator(cam).Project(fr.Angle2), fr.Panel2)
	assert.Equal(t, leaving.Rotator(cam).Orthographic(fr.Angle1), leaving.AffineMatrix(fr.Angle1, 0.4, cam))
}

func TestLinearLawSeparatesEdges(t *testing.T) {
	o := hingeOptions(camera.AxisY, -50)
	o.Style = StyleRotate
	s, err := New(o)
	require.NoError(t, err)
	s.Start()

	// 45 and -45 degrees: the free edges land 100*(2cos45 - 1) apart
	fr := s.Frame(0.5)
	assert.InDelta(t, 100*(math.Sqrt2-1), s.EdgeGap(fr, true), 1e-3)
	assert.Less(t, s.EdgeGap(s.Frame(0), true), 1e-3)
	assert.Less(t, s.EdgeGap(s.Frame(1), true), 1e-3)
}

func TestFartherCameraShrinksPerspectiveGap(t *testing.T) {
	near, err := New(hingeOptions(camera.AxisY, -50))
	require.NoError(t, err)
	far, err := New(hingeOptions(camera.AxisY, -500))
	require.NoError(t, err)
	near.Start()
	far.Start()

	gNear := near.EdgeGap(near.Frame(0.3), false)
	gFar := far.EdgeGap(far.Frame(0.3), false)
	assert.Greater(t, gNear, gFar)
	assert.Greater(t, gNear, 0.0)
}

func TestImageStyleBlendsEndpoints(t *testing.T) {
	o := DefaultOptions(StyleImage, 100, 60)
	o.ImageWidth = 50
	s, err := New(o)
	require.NoError(t, err)
	s.Start()

	leaving, _ := s.Hinges()
	assert.Equal(t, 2.0, leaving.Pivot.ScaleX)
	assert.Equal(t, 2.0, leaving.Pivot.ScaleY)

	start, end := s.Scrub(0), s.Scrub(1)
	for _, f := range []float64{0, 0.25, 0.5, 1} {
		fr := s.Frame(f)
		assert.True(t, fr.Panel1.ApproxEqual(mathutil.Mat3Lerp(start.Panel1, end.Panel1, f), 1e-12))
		assert.True(t, fr.Panel2.ApproxEqual(mathutil.Mat3Lerp(start.Panel2, end.Panel2, f), 1e-12))
	}

	// the raw blend is not the projected pose in between
	assert.False(t, s.Frame(0.5).Panel1.ApproxEqual(s.Scrub(0.5).Panel1, 1e-6))
	assert.InDelta(t, 45.0, s.Frame(0.5).Angle1, 1e-9)
}

func TestImageStyleAlternatesDirection(t *testing.T) {
	s, err := New(DefaultOptions(StyleImage, 100, 60))
	require.NoError(t, err)

	s.Start()
	l, e := s.Hinges()
	assert.Equal(t, 90.0, l.Rotation.To)
	assert.Equal(t, -90.0, e.Rotation.From)

	p := s.Start()
	assert.Equal(t, 1, p.Current)
	assert.Equal(t, 0, p.Next)
	l, e = s.Hinges()
	assert.Equal(t, -90.0, l.Rotation.To)
	assert.Equal(t, 90.0, e.Rotation.From)
}

func TestRotateStyleIsLinear(t *testing.T) {
	s, err := New(DefaultOptions(StyleRotate, 100, 60))
	require.NoError(t, err)
	s.Start()
	fr := s.Frame(0.5)
	assert.Equal(t, 45.0, fr.Angle1)
	assert.Equal(t, -45.0, fr.Angle2)
}

func TestListStyleRoundRobinAndSelect(t *testing.T) {
	s, err := New(DefaultOptions(StyleList, 200, 40))
	require.NoError(t, err)

	var next []int
	for i := 0; i < 14; i++ {
		next = append(next, s.Start().Next)
	}
	assert.Equal(t, 0, next[12])
	assert.Equal(t, 1, next[13])
	assert.True(t, s.Pair().Forward)

	require.NoError(t, s.Select(5))
	p := s.Start()
	assert.Equal(t, 5, p.Current)
	assert.Equal(t, 6, p.Next)

	assert.Error(t, s.Select(13))
	assert.Error(t, s.Select(-1))

	leaving, entering := s.Hinges()
	assert.Equal(t, camera.AxisX, leaving.Rotation.Axis)
	assert.Equal(t, 0.0, leaving.Pivot.Y)
	assert.Equal(t, 40.0, entering.Pivot.Y)
}

func TestCubeStyleSlidesWholePixels(t *testing.T) {
	s, err := New(DefaultOptions(StyleCube, 200, 101))
	require.NoError(t, err)
	s.Start()

	fr := s.Frame(0.5)
	assert.Equal(t, -45.0, fr.Angle1)
	assert.Equal(t, 45.0, fr.Angle2)

	// pivots stay put under rotation, so they show the slide directly
	_, y, _ := fr.Panel1.MapPoint(100, camera.PivotEpsilon)
	assert.InDelta(t, camera.PivotEpsilon+50, y, 1e-6)
	_, y, _ = fr.Panel2.MapPoint(100, 101)
	assert.InDelta(t, 101.0-50, y, 1e-6)
}

func TestFlipperReversesOnWrap(t *testing.T) {
	s, err := New(DefaultOptions(StyleFlipper, 100, 80))
	require.NoError(t, err)

	var dirs []Direction
	var cur []int
	for i := 0; i < 7; i++ {
		p := s.Start()
		dirs = append(dirs, s.Direction())
		cur = append(cur, p.Current)
	}
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, cur)
	assert.Equal(t, []Direction{LeftRight, LeftRight, LeftRight, RightLeft, RightLeft, RightLeft, LeftRight}, dirs)
}

func TestSetAxisAndCamera(t *testing.T) {
	s, err := New(hingeOptions(camera.AxisY, -50))
	require.NoError(t, err)
	s.Start()

	s.SetAxis(camera.AxisX)
	leaving, _ := s.Hinges()
	assert.Equal(t, camera.AxisX, leaving.Rotation.Axis)
	assert.Equal(t, 50.0, leaving.Pivot.X)

	assert.ErrorIs(t, s.SetCamera(camera.Camera{X: 2}), camera.ErrZeroDistance)
	require.NoError(t, s.SetCamera(camera.Camera{Z: -10}))
	assert.Equal(t, camera.Camera{Z: -10}, s.Options().Camera)

	f, err := New(DefaultOptions(StyleFlipper, 100, 80))
	require.NoError(t, err)
	f.SetAxis(camera.AxisX)
	assert.Equal(t, TopBottom, f.Direction())
}

func TestFrameTitle(t *testing.T) {
	fr := Frame{Fraction: 0.5, Angle1: 60.2, Angle2: -59.6}
	assert.Equal(t, "Frac:0.50  D1:60  D2:-60", fr.Title())
}

func TestParseStyle(t *testing.T) {
	for _, st := range Styles() {
		got, err := ParseStyle(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}
	_, err := ParseStyle("spin")
	assert.ErrorIs(t, err, ErrUnknownStyle)
}
