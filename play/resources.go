package play

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Round is the game currently being played.
type Round struct {
	Game   *tetris.Game
	Paused bool
	// Number counts rounds from 1; Restart increments it.
	Number int
}

// GravityClock accumulates frame time. Once the accumulated time reaches
// Interval exactly one gravity tick is due and the accumulator restarts at
// zero, however far past the interval the frame went.
type GravityClock struct {
	Interval time.Duration
	elapsed  time.Duration
}

// Advance adds dt and reports whether a tick is due.
func (c *GravityClock) Advance(dt time.Duration) bool {
	c.elapsed += dt
	if c.elapsed < c.Interval {
		return false
	}
	c.elapsed = 0
	return true
}

func (c *GravityClock) Elapsed() time.Duration {
	return c.elapsed
}

func (c *GravityClock) Reset() {
	c.elapsed = 0
}

// Events buffers the game events raised during a frame until EventSystem
// hands them to the handlers.
type Events struct {
	pending []tetris.Event
}

func (e *Events) record(ev tetris.Event) {
	e.pending = append(e.pending, ev)
}

func (e *Events) drain() []tetris.Event {
	out := e.pending
	e.pending = nil
	return out
}
