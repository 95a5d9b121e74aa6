package play

import (
	"log"
	"math"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

// Handler receives every game event once per frame, in the order the game
// raised them.
type Handler func(tetris.Event)

// InputSystem applies queued actions to the current round.
type InputSystem struct {
	Queue engine.Resource[InputQueue]
	Round engine.Resource[Round]
	Clock engine.Resource[GravityClock]

	restart func(number int) (Round, error)
}

func (s *InputSystem) Execute(frame *engine.UpdateFrame) {
	queue := s.Queue.Get()
	round := s.Round.Get()
	if queue == nil || round == nil {
		return
	}

	restarting := false
	for _, action := range queue.Drain() {
		switch action {
		case Quit:
			frame.Commands.Halt()
		case Pause:
			if !round.Game.Over() {
				round.Paused = !round.Paused
			}
		case Restart:
			// The new round only lands when commands flush, so later
			// restarts in this frame still see the finished one.
			if restarting || !round.Game.Over() || s.restart == nil {
				continue
			}
			next, err := s.restart(round.Number + 1)
			if err != nil {
				log.Printf("[session] restart failed: %v", err)
				continue
			}
			restarting = true
			frame.Commands.Insert(next)
			if clock := s.Clock.Get(); clock != nil {
				frame.Commands.Defer(clock.Reset)
			}
		default:
			if round.Paused {
				continue
			}
			apply(round.Game, action)
		}
	}
}

func apply(game *tetris.Game, action Action) {
	switch action {
	case MoveLeft:
		game.MoveLeft()
	case MoveRight:
		game.MoveRight()
	case SoftDrop:
		game.SoftDrop()
	case Rotate:
		game.Rotate()
	case HardDrop:
		game.HardDrop()
	}
}

// GravitySystem advances the gravity clock by the frame time and ticks the
// game when it fires.
type GravitySystem struct {
	Round engine.Resource[Round]
	Clock engine.Resource[GravityClock]

	interval func(level int) time.Duration
}

func (s *GravitySystem) Execute(frame *engine.UpdateFrame) {
	round := s.Round.Get()
	clock := s.Clock.Get()
	if round == nil || clock == nil || round.Paused || round.Game.Over() {
		return
	}

	if s.interval != nil {
		clock.Interval = s.interval(round.Game.Level())
	}
	if clock.Advance(seconds(frame.DeltaTime)) {
		round.Game.GravityTick()
	}
}

func seconds(dt float64) time.Duration {
	return time.Duration(math.Round(dt * float64(time.Second)))
}

// EventSystem hands the frame's buffered game events to every handler.
type EventSystem struct {
	Events engine.Resource[Events]

	handlers []Handler
}

func (s *EventSystem) Execute(frame *engine.UpdateFrame) {
	events := s.Events.Get()
	if events == nil {
		return
	}
	for _, ev := range events.drain() {
		for _, h := range s.handlers {
			h(ev)
		}
	}
}
