package flip

import (
	"fmt"
	"strings"

	"flip3d-renderer/internal/camera"
)

// Direction is the travel direction of a view-animator flip.
type Direction int

const (
	LeftRight Direction = iota
	RightLeft
	TopBottom
	BottomTop
)

var directionNames = [...]string{"left-right", "right-left", "top-bottom", "bottom-top"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection accepts the names printed by String.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == s {
			return Direction(i), nil
		}
	}
	return LeftRight, fmt.Errorf("flip: unknown direction %q", s)
}

// Sign is +1 for LeftRight and TopBottom, -1 for the reversed directions.
func (d Direction) Sign() float64 {
	if d == LeftRight || d == TopBottom {
		return 1
	}
	return -1
}

// Other returns the reverse direction on the same axis.
func (d Direction) Other() Direction {
	switch d {
	case LeftRight:
		return RightLeft
	case RightLeft:
		return LeftRight
	case TopBottom:
		return BottomTop
	default:
		return TopBottom
	}
}

// Axis is X for vertical travel, Y for horizontal travel.
func (d Direction) Axis() camera.Axis {
	if d == TopBottom || d == BottomTop {
		return camera.AxisX
	}
	return camera.AxisY
}

// DirectionFor returns the forward direction travelling across axis.
func DirectionFor(axis camera.Axis) Direction {
	if axis == camera.AxisX {
		return TopBottom
	}
	return LeftRight
}

// flipEdge mirrors a 0..1 fraction when the sign is negative.
func flipEdge(v, sign float64) float64 {
	return v*sign + (1-sign)/2
}

// FlipHinges builds the outgoing and incoming hinges of a cube-style flip:
// both panels turn while sliding one panel size in the travel direction.
func FlipHinges(d Direction, w, ht float64) (Hinge, Hinge) {
	sign := d.Sign()
	axis := d.Axis()

	type side struct {
		from, to float64
		origin   [2]float64
		pivot    [2]float64
	}
	var out, in side
	if axis == camera.AxisX {
		out = side{0, -EndAngle, [2]float64{0, 0}, [2]float64{0.5, 0}}
		in = side{EndAngle, 0, [2]float64{0, -1}, [2]float64{0.5, 1}}
	} else {
		out = side{0, EndAngle, [2]float64{0, 0}, [2]float64{0, 0.5}}
		in = side{-EndAngle, 0, [2]float64{-1, 0}, [2]float64{1, 0.5}}
	}

	build := func(s side) Hinge {
		h := Hinge{
			Rotation: Rotation{Axis: axis, From: s.from * sign, To: s.to * sign},
			Pivot:    camera.NewPivot(flipEdge(s.pivot[0], sign)*w, flipEdge(s.pivot[1], sign)*ht),
		}
		if axis == camera.AxisX {
			h.SlideFrom = [2]float64{0, s.origin[1] * ht * sign}
			h.SlideTo = [2]float64{0, (1 + s.origin[1]) * ht * sign}
		} else {
			h.SlideFrom = [2]float64{s.origin[0] * w * sign, 0}
			h.SlideTo = [2]float64{(1 + s.origin[0]) * w * sign, 0}
		}
		return h
	}
	return build(out), build(in)
}

// FlipTransition advances a round-robin pair and returns the direction to
// use for the transition after it: wrapping back to the first panel
// reverses the travel direction.
func FlipTransition(p PanelPair, d Direction) (PanelPair, Direction) {
	p = AdvanceRoundRobin(p)
	if p.Next < p.Current {
		d = d.Other()
	}
	return p, d
}
