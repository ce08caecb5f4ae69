package primer

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Player drives a tween from wall-clock time. Call Update(dt) once per frame.
// The tween's Delay is waited out before its first step. When the tween
// finishes it is snapped to its end state and disposed.
//
// There is no global animation manager. Callers update players themselves or
// group them in a Director.
type Player struct {
	tween *Tween
	clock *gween.Tween
	done  bool
}

// NewPlayer creates a player for tw.
func NewPlayer(tw *Tween) *Player {
	p := &Player{tween: tw}
	if total := tw.TotalDuration(); total > 0 {
		p.clock = gween.New(0, float32(total), float32(total), ease.Linear)
	}
	return p
}

// Tween returns the tween being played.
func (p *Player) Tween() *Tween {
	return p.tween
}

// Update advances the clock by dt seconds and reports whether playback has
// finished.
func (p *Player) Update(dt float64) bool {
	if p.done {
		return true
	}
	if p.tween.IsDisposed() {
		p.done = true
		return true
	}
	if p.clock == nil {
		p.finish()
		return true
	}
	elapsed, finished := p.clock.Update(float32(dt))
	if finished {
		p.finish()
		return true
	}
	local := float64(elapsed) - p.tween.Delay
	if local < 0 {
		return false
	}
	if p.tween.Duration <= 0 {
		p.finish()
		return true
	}
	p.tween.Step(local / p.tween.Duration)
	return false
}

func (p *Player) finish() {
	p.tween.Step(1)
	p.tween.Dispose()
	p.done = true
}

// Stop cancels playback. The tween is disposed without completing.
func (p *Player) Stop() {
	if p.done {
		return
	}
	p.tween.Dispose()
	p.done = true
}

// Done reports whether playback has finished or been stopped.
func (p *Player) Done() bool {
	return p.done
}

// Director ticks a set of players together, once per frame.
type Director struct {
	players []*Player
}

// NewDirector creates an empty director.
func NewDirector() *Director {
	return &Director{}
}

// Play starts playing tw and returns its player. Nil tweens are ignored.
func (d *Director) Play(tw *Tween) *Player {
	if tw == nil {
		return nil
	}
	p := NewPlayer(tw)
	d.players = append(d.players, p)
	return p
}

// Update advances every player by dt and drops the finished ones.
func (d *Director) Update(dt float64) {
	// Hooks may start new players while this loop runs; they land in the
	// fresh slice and are first updated next frame.
	current := d.players
	d.players = nil
	for _, p := range current {
		if !p.Update(dt) {
			d.players = append(d.players, p)
		}
	}
}

// Len returns the number of players still running.
func (d *Director) Len() int {
	return len(d.players)
}

// StopAll cancels every running player.
func (d *Director) StopAll() {
	for _, p := range d.players {
		p.Stop()
	}
	clear(d.players)
	d.players = d.players[:0]
}
