package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countSystem struct {
	Score        engine.Resource[score]
	ExecuteCount int
	TotalTime    float64
}

func (s *countSystem) Execute(frame *engine.UpdateFrame) {
	s.ExecuteCount++
	s.TotalTime += frame.DeltaTime
	if sc := s.Score.Get(); sc != nil {
		sc.Points++
	}
}

type orderSystem struct {
	name string
	log  *[]string
}

func (s *orderSystem) Execute(frame *engine.UpdateFrame) {
	*s.log = append(*s.log, s.name)
}

type haltSystem struct {
	after int
	seen  int
}

func (s *haltSystem) Execute(frame *engine.UpdateFrame) {
	s.seen++
	if s.seen >= s.after {
		frame.Commands.Halt()
	}
}

func TestSchedulerBindsResources(t *testing.T) {
	w := engine.NewWorld()
	w.Insert(score{})
	scheduler := engine.NewScheduler(w)

	counter := &countSystem{}
	scheduler.Register(counter)

	assert.True(t, scheduler.Once(0.5))
	assert.True(t, scheduler.Once(0.25))

	assert.Equal(t, 2, counter.ExecuteCount)
	assert.InDelta(t, 0.75, counter.TotalTime, 1e-9)

	got, ok := engine.ReadResource[score](w)
	require.True(t, ok)
	assert.Equal(t, 2, got.Points)
	assert.Same(t, w, scheduler.World())
}

func TestSchedulerOrder(t *testing.T) {
	scheduler := engine.NewScheduler(engine.NewWorld())

	var log []string
	scheduler.Register(&orderSystem{name: "input", log: &log})
	scheduler.Register(&orderSystem{name: "gravity", log: &log})
	scheduler.Register(&orderSystem{name: "render", log: &log})

	scheduler.Once(0)
	scheduler.Once(0)

	assert.Equal(t, []string{"input", "gravity", "render", "input", "gravity", "render"}, log)
}

func TestSchedulerHalt(t *testing.T) {
	scheduler := engine.NewScheduler(engine.NewWorld())
	halter := &haltSystem{after: 2}
	counter := &countSystem{}
	scheduler.Register(halter)
	scheduler.Register(counter)

	assert.True(t, scheduler.Once(0))
	assert.False(t, scheduler.Halted())

	// The halting frame still runs every system.
	assert.False(t, scheduler.Once(0))
	assert.True(t, scheduler.Halted())
	assert.Equal(t, 2, counter.ExecuteCount)

	assert.False(t, scheduler.Once(0))
	assert.Equal(t, 2, counter.ExecuteCount)
	assert.Equal(t, int64(2), scheduler.GetStats().Frames)
}

func TestSchedulerRunStopsOnHalt(t *testing.T) {
	scheduler := engine.NewScheduler(engine.NewWorld())
	halter := &haltSystem{after: 3}
	scheduler.Register(halter)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	scheduler.Run(ctx, time.Millisecond)

	assert.Equal(t, 3, halter.seen)
	assert.NoError(t, ctx.Err())
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	scheduler := engine.NewScheduler(engine.NewWorld())
	counter := &countSystem{}
	scheduler.Register(counter)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	scheduler.Run(ctx, time.Millisecond)

	assert.Greater(t, counter.ExecuteCount, 0)
	assert.False(t, scheduler.Halted())
}

func TestSchedulerStats(t *testing.T) {
	scheduler := engine.NewScheduler(engine.NewWorld())
	scheduler.Register(&countSystem{})
	scheduler.Register(&haltSystem{after: 100})

	stats := scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration)

	for range 5 {
		scheduler.Once(0.016)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, int64(5), stats.Frames)
	assert.Equal(t, int64(10), stats.TotalExecutions)
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "countSystem", stats.Systems[0].Name)
	assert.Equal(t, "haltSystem", stats.Systems[1].Name)
	for _, sys := range stats.Systems {
		assert.Equal(t, int64(5), sys.ExecutionCount)
		assert.LessOrEqual(t, sys.MinDuration, sys.MaxDuration)
		assert.GreaterOrEqual(t, sys.TotalDuration, sys.MaxDuration)
	}
}
