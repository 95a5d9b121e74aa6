package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/play"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestStatsFinalize(t *testing.T) {
	s := statsOf(5, 1, 3, 7, 4)
	s.Finalize()

	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(7), s.Max)
	assert.Equal(t, time.Duration(4), s.Avg)
	assert.Equal(t, time.Duration(7), s.P99)

	var empty Stats
	empty.Finalize()
	assert.Equal(t, time.Duration(0), empty.Max)
}

func statsOf(ds ...time.Duration) Stats {
	var s Stats
	for _, d := range ds {
		s.Add(d)
	}
	return s
}

func TestStatsReservoirIsBounded(t *testing.T) {
	var s Stats
	for i := range 3 * maxSamples {
		s.Add(time.Duration(i + 1))
	}
	s.Finalize()

	assert.Len(t, s.Samples, maxSamples)
	assert.Equal(t, int64(3*maxSamples), s.Count)
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3*maxSamples), s.Max)
	assert.Equal(t, time.Duration((3*maxSamples+1)/2), s.Avg)
	assert.Greater(t, s.P99, time.Duration(2*maxSamples))
}

func TestSoak(t *testing.T) {
	cfg := config.Default()
	cfg.Board.Width = 6
	cfg.Board.Height = 8
	cfg.Pieces.Seed = 3

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	res, err := Soak(ctx, cfg, 50*time.Millisecond)
	require.NoError(t, err)

	assert.Greater(t, res.Frames, int64(0))
	assert.Equal(t, res.Frames, res.Update.Count)
	assert.Greater(t, res.Pieces, 0)
	assert.Len(t, res.Scores, res.Rounds)
	require.Len(t, res.Systems, 3)
	assert.Equal(t, "InputSystem", res.Systems[0].Name)
}

func TestReportMerge(t *testing.T) {
	r := &Report{}
	r.Merge([]Result{
		{
			Frames: 10, Rounds: 2, Pieces: 20, Lines: 3, Best: 2,
			Scores:  []int{1, 2},
			Update:  statsOf(time.Millisecond),
			Systems: []engine.SystemStats{{Name: "InputSystem", ExecutionCount: 10, TotalDuration: 10 * time.Microsecond, MinDuration: time.Microsecond, MaxDuration: time.Microsecond}},
			Actions: map[play.Action]int{play.HardDrop: 4, play.Rotate: 1},
		},
		{
			Frames: 5, Rounds: 1, Pieces: 7, Lines: 0, Best: 0,
			Scores:  []int{0},
			Update:  statsOf(3 * time.Millisecond),
			Systems: []engine.SystemStats{{Name: "InputSystem", ExecutionCount: 5, TotalDuration: 20 * time.Microsecond, MinDuration: 2 * time.Microsecond, MaxDuration: 6 * time.Microsecond}},
			Actions: map[play.Action]int{play.HardDrop: 1},
		},
	})

	assert.Equal(t, int64(15), r.TotalFrames)
	assert.Equal(t, 3, r.Rounds)
	assert.Equal(t, 27, r.Pieces)
	assert.Equal(t, 2, r.BestScore)
	assert.Equal(t, 1, r.MedianScore)
	assert.Equal(t, 2*time.Millisecond, r.UpdateTime.Avg)
	assert.Equal(t, time.Millisecond, r.UpdateTime.Min)
	assert.Equal(t, 3*time.Millisecond, r.UpdateTime.Max)

	require.Len(t, r.Systems, 1)
	assert.Equal(t, int64(15), r.Systems[0].ExecutionCount)
	assert.Equal(t, 2*time.Microsecond, r.Systems[0].AvgDuration)
	assert.Equal(t, time.Microsecond, r.Systems[0].MinDuration)
	assert.Equal(t, 6*time.Microsecond, r.Systems[0].MaxDuration)

	assert.Equal(t, []ActionCount{{play.Rotate, 1}, {play.HardDrop, 5}}, r.Actions)

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	assert.Contains(t, buf.String(), "- **Finished Rounds:** 3")
	assert.Contains(t, buf.String(), "- hard drop: 5")
	assert.Contains(t, buf.String(), "| InputSystem | 15 | 2µs | 6µs |")
}
