package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/tetris"
)

func renderGameWindow(session *play.Session) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 220), imgui.CondOnce)

	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	v := session.View()
	imgui.Text(fmt.Sprintf("Round: %d (%v)", v.Round, v.State))
	imgui.Text(fmt.Sprintf("Score: %d  Lines: %d  Level: %d", v.Score, v.Lines, v.Level))
	imgui.Text(fmt.Sprintf("Pieces: %d", v.Pieces))
	imgui.Text(fmt.Sprintf("Gravity: %v", session.Config().GravityInterval(v.Level)))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Piece: %v at (%d, %d)", v.Piece.Kind, v.Piece.X, v.Piece.Y))
	imgui.Text(fmt.Sprintf("Shape: %s", v.Piece.Shape))
	imgui.Text(fmt.Sprintf("Ghost row: %d", v.GhostY))
	imgui.Text(fmt.Sprintf("Next: %v", v.Next))

	if imgui.TreeNodeStr("Board") {
		for y := 0; y < v.Height; y++ {
			row := make([]byte, v.Width)
			for x := range row {
				row[x] = '.'
				if v.At(x, y) != tetris.Empty {
					row[x] = '#'
				}
			}
			imgui.Text(string(row))
		}
		imgui.TreePop()
	}

	imgui.End()
}
