package flip

import (
	"errors"
	"fmt"
)

var ErrTooFewPanels = errors.New("flip: need at least two panels")

// PanelPair tracks which two panels take part in the current transition.
// Current leaves, Next enters.
type PanelPair struct {
	Current int
	Next    int
	Forward bool
	Count   int
}

// NewPanelPair returns the resting state before the first transition.
func NewPanelPair(count int) (PanelPair, error) {
	if count < 2 {
		return PanelPair{}, fmt.Errorf("%w: got %d", ErrTooFewPanels, count)
	}
	return PanelPair{Current: 0, Next: 0, Forward: true, Count: count}, nil
}

// AdvancePingPong slides the pair by one and bounces off both ends of the
// panel array: 0,1,…,N-1,N-2,…,0,1,… Count must be at least 2.
func AdvancePingPong(p PanelPair) PanelPair {
	step := 1
	if !p.Forward {
		step = -1
	}
	p.Current = p.Next
	p.Next = p.Current + step

	if p.Next == p.Count {
		p.Forward = false
		p.Next = p.Count - 2
	} else if p.Next < 0 {
		p.Forward = true
		p.Next = 1
	}
	return p
}

// AdvanceRoundRobin slides the pair by one around a cyclic list.
func AdvanceRoundRobin(p PanelPair) PanelPair {
	p.Current = p.Next
	p.Next = (p.Current + 1) % p.Count
	return p
}

// Direction returns +1 for forward traversal, -1 for reverse.
func (p PanelPair) Direction() float64 {
	if p.Forward {
		return 1
	}
	return -1
}
