package engine_test

import (
	"fmt"

	"github.com/plus3/blockfall/engine"
)

type Tick struct {
	Elapsed float64
	Frames  int
}

type ClockSystem struct {
	Tick engine.Resource[Tick]
}

func (s *ClockSystem) Execute(frame *engine.UpdateFrame) {
	tick := s.Tick.Get()
	tick.Elapsed += frame.DeltaTime
	tick.Frames++
	if tick.Frames == 3 {
		frame.Commands.Halt()
	}
}

// ExampleScheduler runs a single system against a World resource until the
// system asks the scheduler to stop.
func ExampleScheduler() {
	world := engine.NewWorld()
	tick := engine.NewResource(world, Tick{})

	scheduler := engine.NewScheduler(world)
	scheduler.Register(&ClockSystem{})

	for scheduler.Once(0.5) {
	}

	fmt.Printf("frames=%d elapsed=%.1f halted=%v\n", tick.Get().Frames, tick.Get().Elapsed, scheduler.Halted())

	// Output:
	// frames=3 elapsed=1.5 halted=true
}

// ExampleWorld_Read shows direct access to a resource.
func ExampleWorld_Read() {
	world := engine.NewWorld()
	world.Insert(Tick{Frames: 2})

	var tick *Tick
	if world.Read(&tick) {
		fmt.Println("frames:", tick.Frames)
	}

	// Output:
	// frames: 2
}
