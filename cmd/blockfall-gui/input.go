package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/play"
)

type binding struct {
	keys   []ebiten.Key
	action play.Action
	repeat bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, action: play.MoveLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, action: play.MoveRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, action: play.SoftDrop, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyX}, action: play.Rotate},
	{keys: []ebiten.Key{ebiten.KeySpace}, action: play.HardDrop},
	{keys: []ebiten.Key{ebiten.KeyP}, action: play.Pause},
	{keys: []ebiten.Key{ebiten.KeyR}, action: play.Restart},
	{keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}, action: play.Quit},
}

// KeyRepeat turns key hold durations, in ticks, into actions. Movement keys
// fire on press, again after Delay ticks and then every Interval ticks.
type KeyRepeat struct {
	Delay    int
	Interval int
}

func pressedFrames(k ebiten.Key) int {
	return inpututil.KeyPressDuration(k)
}

func (r KeyRepeat) fires(d int, repeat bool) bool {
	if d == 1 {
		return true
	}
	if !repeat || d <= 1 {
		return false
	}

	delay, interval := r.Delay, r.Interval
	if delay <= 0 {
		delay = 10
	}
	if interval <= 0 {
		interval = 3
	}
	return d >= delay && (d-delay)%interval == 0
}

// Poll returns the actions due this tick. duration reports for how many
// ticks a key has been held, 0 when it is up.
func (r KeyRepeat) Poll(duration func(ebiten.Key) int) []play.Action {
	var out []play.Action
	for _, b := range bindings {
		for _, k := range b.keys {
			if r.fires(duration(k), b.repeat) {
				out = append(out, b.action)
				break
			}
		}
	}
	return out
}
