package debugui_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/engine/debugui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlays(t *testing.T) {
	var o debugui.Overlays
	o.Add("stats", func() {})
	o.Add("board", func() {})
	o.Add("stats", func() {})

	assert.Len(t, o.Items, 3)
	assert.True(t, o.Remove("stats"))
	assert.False(t, o.Remove("stats"))
	require.Len(t, o.Items, 1)
	assert.Equal(t, "board", o.Items[0].Name)
}

func TestNewImguiSystemCreatesResources(t *testing.T) {
	world := engine.NewWorld()
	debugui.NewImguiSystem(world)

	_, ok := engine.ReadResource[debugui.Overlays](world)
	assert.True(t, ok)
	_, ok = engine.ReadResource[debugui.ImguiInputState](world)
	assert.True(t, ok)
}

func TestPerformanceStatsAverage(t *testing.T) {
	ps := debugui.NewPerformanceStats(4)
	assert.Equal(t, float32(0), ps.AverageFrameTime())

	ps.Record(0.010)
	ps.Record(0.020)
	assert.InDelta(t, 15.0, ps.AverageFrameTime(), 1e-3)

	// Older samples fall out of the ring.
	for range 4 {
		ps.Record(0.005)
	}
	assert.InDelta(t, 5.0, ps.AverageFrameTime(), 1e-3)
}

func TestFrameTimer(t *testing.T) {
	ft := debugui.NewFrameTimer()
	time.Sleep(5 * time.Millisecond)

	first := ft.GetDeltaTime()
	assert.GreaterOrEqual(t, first, float32(0.004))

	second := ft.GetDeltaTime()
	assert.Less(t, second, first)
}
