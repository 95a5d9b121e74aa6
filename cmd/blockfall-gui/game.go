package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/engine/debugui"
	debugui_ebiten "github.com/plus3/blockfall/engine/debugui/ebiten"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/play"
)

// Game implements ebiten.Game on top of a play.Session.
type Game struct {
	Session *play.Session
	Scores  *highscore.Store
	Keys    KeyRepeat

	// Set only with -debug.
	ImguiBackend *engine.Resource[debugui_ebiten.ImguiBackend]
	InputState   *engine.Resource[debugui.ImguiInputState]
}

func (g *Game) keyboardCaptured() bool {
	if g.InputState == nil {
		return false
	}
	state := g.InputState.Get()
	return state != nil && state.WantCaptureKeyboard
}

func (g *Game) Update() error {
	if !g.keyboardCaptured() {
		for _, action := range g.Keys.Poll(pressedFrames) {
			g.Session.Push(action)
		}
	}

	if g.ImguiBackend != nil {
		g.ImguiBackend.Get().BeginFrame()
	}

	running := g.Session.Step(time.Second / time.Duration(ebiten.TPS()))

	if g.ImguiBackend != nil {
		g.ImguiBackend.Get().EndFrame()
	}

	if !running {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	best := 0
	if g.Scores != nil {
		best = g.Scores.Best()
	}
	view := g.Session.View()
	bounds := screen.Bounds()
	NewBoardLayout(view.Width, view.Height, bounds.Dx(), bounds.Dy()).Draw(screen, view, best)

	if g.ImguiBackend != nil {
		g.ImguiBackend.Get().Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.ImguiBackend != nil {
		g.ImguiBackend.Get().Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
