package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func held(durations map[ebiten.Key]int) func(ebiten.Key) int {
	return func(k ebiten.Key) int { return durations[k] }
}

func TestKeyRepeatMovement(t *testing.T) {
	r := KeyRepeat{Delay: 10, Interval: 3}

	var fired []int
	for d := 1; d <= 20; d++ {
		if len(r.Poll(held(map[ebiten.Key]int{ebiten.KeyArrowLeft: d}))) > 0 {
			fired = append(fired, d)
		}
	}
	assert.Equal(t, []int{1, 10, 13, 16, 19}, fired)
}

func TestKeyRepeatSinglePress(t *testing.T) {
	var r KeyRepeat

	assert.Equal(t, []play.Action{play.HardDrop}, r.Poll(held(map[ebiten.Key]int{ebiten.KeySpace: 1})))
	assert.Empty(t, r.Poll(held(map[ebiten.Key]int{ebiten.KeySpace: 10})))
	assert.Empty(t, r.Poll(held(map[ebiten.Key]int{ebiten.KeySpace: 13})))
}

func TestKeyRepeatAliasesFireOnce(t *testing.T) {
	var r KeyRepeat
	got := r.Poll(held(map[ebiten.Key]int{
		ebiten.KeyArrowUp: 1,
		ebiten.KeyW:       1,
		ebiten.KeyP:       1,
	}))
	assert.Equal(t, []play.Action{play.Rotate, play.Pause}, got)
}

func TestBoardLayout(t *testing.T) {
	l := NewBoardLayout(10, 20, ScreenWidth, ScreenHeight)

	// Height limits the cell: (720-40)/20 = 34.
	assert.Equal(t, float32(34), l.Cell)
	x, y, w, h := l.CellRect(2, 3)
	assert.Equal(t, float32(20+68), x)
	assert.Equal(t, float32(20+102), y)
	assert.Equal(t, l.Cell, w)
	assert.Equal(t, l.Cell, h)
	assert.Equal(t, float32(20+340+20), l.PanelX)

	tiny := NewBoardLayout(10, 20, 50, 50)
	assert.Equal(t, float32(4), tiny.Cell)
}

func TestColors(t *testing.T) {
	assert.NotEqual(t, colorOf(tetris.Red), colorOf(tetris.Blue))
	assert.Equal(t, uint8(70), ghostOf(tetris.Red).A)
	assert.Equal(t, uint8(255), colorOf(tetris.Red).A)
	assert.Equal(t, frameColor, colorOf(tetris.Color(200)))
}
