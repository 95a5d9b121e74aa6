// Package play runs a tetris game on the engine: frontends push Actions and
// advance the session with elapsed time, and systems apply input, gravity
// and event fan-out in that order every frame.
package play

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

// Factory creates the game for a new round. The listener must be installed
// as the game's event listener.
type Factory func(listener func(tetris.Event)) (*tetris.Game, error)

// ConfigFactory builds games from cfg, with a fresh randomizer per round.
func ConfigFactory(cfg config.Config) Factory {
	return func(listener func(tetris.Event)) (*tetris.Game, error) {
		gc := cfg.Game()
		gc.Listener = listener
		return tetris.New(gc)
	}
}

// Session owns one World with a running Round and the scheduler driving it.
type Session struct {
	cfg       config.Config
	factory   Factory
	world     *engine.World
	scheduler *engine.Scheduler

	round  *engine.Resource[Round]
	queue  *engine.Resource[InputQueue]
	clock  *engine.Resource[GravityClock]
	events *engine.Resource[Events]
}

// New starts a session whose games come from cfg.
func New(cfg config.Config, handlers ...Handler) (*Session, error) {
	return NewWithFactory(cfg, ConfigFactory(cfg), handlers...)
}

// NewWithFactory starts a session with custom game construction. cfg still
// supplies the gravity settings.
func NewWithFactory(cfg config.Config, factory Factory, handlers ...Handler) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	world := engine.NewWorld()
	s := &Session{
		cfg:       cfg,
		factory:   factory,
		world:     world,
		scheduler: engine.NewScheduler(world),
		queue:     engine.NewResource(world, InputQueue{}),
		clock:     engine.NewResource(world, GravityClock{Interval: cfg.GravityInterval(1)}),
		events:    engine.NewResource(world, Events{}),
	}

	first, err := s.newRound(1)
	if err != nil {
		return nil, err
	}
	s.round = engine.NewResource(world, first)

	s.scheduler.Register(&InputSystem{restart: s.newRound})
	s.scheduler.Register(&GravitySystem{interval: cfg.GravityInterval})
	s.scheduler.Register(&EventSystem{handlers: append([]Handler{s.logEvent}, handlers...)})
	return s, nil
}

func (s *Session) newRound(number int) (Round, error) {
	game, err := s.factory(s.events.Get().record)
	if err != nil {
		return Round{}, fmt.Errorf("failed to start round %d: %w", number, err)
	}
	log.Printf("[session] round %d started on %dx%d", number, game.Width(), game.Height())
	return Round{Game: game, Number: number}, nil
}

func (s *Session) logEvent(ev tetris.Event) {
	if ev.Kind != tetris.EventGameOver {
		return
	}
	round := s.round.Get()
	log.Printf("[session] round %d over: score %d, lines %d, pieces %d",
		round.Number, ev.Score, round.Game.Lines(), round.Game.Pieces())
}

// Register adds a system that runs after the session's own systems, such as
// a renderer or a debug overlay.
func (s *Session) Register(system engine.System) {
	s.scheduler.Register(system)
}

// Push queues an action for the next Step.
func (s *Session) Push(a Action) {
	s.queue.Get().Push(a)
}

// Step runs one frame covering dt of wall-clock time and reports whether the
// session is still running.
func (s *Session) Step(dt time.Duration) bool {
	return s.scheduler.Once(dt.Seconds())
}

// Run steps the session on a fixed interval until ctx is done or a Quit
// action is applied.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	s.scheduler.Run(ctx, interval)
}

func (s *Session) Game() *tetris.Game {
	return s.round.Get().Game
}

func (s *Session) Round() Round {
	return *s.round.Get()
}

func (s *Session) Paused() bool {
	return s.round.Get().Paused
}

// Halted reports whether a Quit action stopped the session.
func (s *Session) Halted() bool {
	return s.scheduler.Halted()
}

func (s *Session) Config() config.Config {
	return s.cfg
}

func (s *Session) World() *engine.World {
	return s.world
}

func (s *Session) Scheduler() *engine.Scheduler {
	return s.scheduler
}

// View is everything a renderer needs for one frame.
type View struct {
	tetris.Snapshot
	Paused bool
	Round  int
}

func (s *Session) View() View {
	round := s.round.Get()
	return View{
		Snapshot: round.Game.Snapshot(),
		Paused:   round.Paused,
		Round:    round.Number,
	}
}
