// Package player turns elapsed time into flip frames, either driven by a
// ticker (auto-play) or positioned by hand (scrub).
package player

import (
	"context"
	"errors"
	"time"

	"flip3d-renderer/internal/flip"
)

var ErrNoDuration = errors.New("player: duration must be positive")

// Player plays back-to-back transitions of one sequencer. It owns the
// sequencer; neither is safe for concurrent use.
type Player struct {
	seq      *flip.Sequencer
	duration time.Duration
	elapsed  time.Duration
	count    int
}

// New starts the first transition of seq.
func New(seq *flip.Sequencer, duration time.Duration) (*Player, error) {
	if duration <= 0 {
		return nil, ErrNoDuration
	}
	seq.Start()
	return &Player{seq: seq, duration: duration, count: 1}, nil
}

// Transitions returns how many transitions have been started.
func (p *Player) Transitions() int { return p.count }

// Sequencer returns the underlying sequencer.
func (p *Player) Sequencer() *flip.Sequencer { return p.seq }

// Seek positions the current transition by hand. The frame is projected
// exactly from its angles, with no matrix blending.
func (p *Player) Seek(fraction float64) flip.Frame {
	p.elapsed = time.Duration(fraction * float64(p.duration))
	return p.seq.Scrub(fraction)
}

// Tick advances the clock by dt and returns the frame to show. When a
// transition completes its final frame is returned, the next transition
// is started and wrapped is true. A dt spanning several transitions starts
// each of them in turn, so the pair stays in step with the clock; the frame
// is then the final one of the last completed transition.
func (p *Player) Tick(dt time.Duration) (fr flip.Frame, wrapped bool) {
	p.elapsed += dt
	if p.elapsed < p.duration {
		return p.seq.Frame(float64(p.elapsed) / float64(p.duration)), false
	}

	for p.elapsed >= p.duration {
		fr = p.seq.Frame(1)
		p.elapsed -= p.duration
		p.seq.Start()
		p.count++
	}
	return fr, true
}

// Run ticks every interval until ctx is done, handing each frame to emit
// on the calling goroutine. It returns ctx.Err().
func (p *Player) Run(ctx context.Context, interval time.Duration, emit func(flip.Frame)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			fr, _ := p.Tick(now.Sub(last))
			last = now
			emit(fr)
		}
	}
}
