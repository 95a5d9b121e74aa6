package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/tetris"
)

var (
	backgroundColor = color.RGBA{12, 12, 20, 255}
	wellColor       = color.RGBA{24, 24, 36, 255}
	frameColor      = color.RGBA{140, 140, 160, 255}
)

var cellColors = [...]color.RGBA{
	tetris.Empty:  {24, 24, 36, 255},
	tetris.Red:    {230, 40, 40, 255},
	tetris.Green:  {60, 200, 60, 255},
	tetris.Blue:   {50, 90, 230, 255},
	tetris.Yellow: {240, 220, 40, 255},
	tetris.Orange: {245, 150, 30, 255},
	tetris.Purple: {170, 60, 210, 255},
	tetris.Cyan:   {40, 220, 230, 255},
}

func colorOf(c tetris.Color) color.RGBA {
	if int(c) < len(cellColors) {
		return cellColors[c]
	}
	return frameColor
}

func ghostOf(c tetris.Color) color.RGBA {
	rgba := colorOf(c)
	rgba.A = 70
	return rgba
}

// BoardLayout places the well on the left of the screen with square cells
// and the status panel to its right.
type BoardLayout struct {
	Cell   float32
	X, Y   float32
	PanelX float32
	boardW int
	boardH int
}

func NewBoardLayout(boardW, boardH, screenW, screenH int) BoardLayout {
	const margin = 20
	const panelWidth = 160

	cell := min(
		float32(screenW-2*margin-panelWidth)/float32(boardW),
		float32(screenH-2*margin)/float32(boardH),
	)
	cell = max(cell, 4)

	return BoardLayout{
		Cell:   cell,
		X:      margin,
		Y:      margin,
		PanelX: margin + cell*float32(boardW) + margin,
		boardW: boardW,
		boardH: boardH,
	}
}

// CellRect returns the screen rectangle of board cell (x, y).
func (l BoardLayout) CellRect(x, y int) (float32, float32, float32, float32) {
	return l.X + float32(x)*l.Cell, l.Y + float32(y)*l.Cell, l.Cell, l.Cell
}

func (l BoardLayout) fillCell(screen *ebiten.Image, x, y int, clr color.Color) {
	if y < 0 {
		return
	}
	sx, sy, w, h := l.CellRect(x, y)
	vector.DrawFilledRect(screen, sx+1, sy+1, w-2, h-2, clr, false)
}

func (l BoardLayout) Draw(screen *ebiten.Image, v play.View, best int) {
	screen.Fill(backgroundColor)

	w := l.Cell * float32(l.boardW)
	h := l.Cell * float32(l.boardH)
	vector.DrawFilledRect(screen, l.X, l.Y, w, h, wellColor, false)
	vector.StrokeRect(screen, l.X-1, l.Y-1, w+2, h+2, 2, frameColor, false)

	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			if c := v.At(x, y); c != tetris.Empty {
				l.fillCell(screen, x, y, colorOf(c))
			}
		}
	}

	if v.State != tetris.GameOver {
		for p := range v.Piece.Shape.Cells() {
			l.fillCell(screen, v.Piece.X+p.X, v.GhostY+p.Y, ghostOf(v.Piece.Color))
		}
		for p := range v.Piece.Cells() {
			l.fillCell(screen, p.X, p.Y, colorOf(v.Piece.Color))
		}
	}

	l.drawPanel(screen, v, best)
}

func (l BoardLayout) drawPanel(screen *ebiten.Image, v play.View, best int) {
	x := int(l.PanelX)
	y := int(l.Y)

	text := fmt.Sprintf("SCORE %d\nLINES %d\nLEVEL %d\nROUND %d", v.Score, v.Lines, v.Level, v.Round)
	if best > 0 {
		text += fmt.Sprintf("\nBEST  %d", max(best, v.Score))
	}
	ebitenutil.DebugPrintAt(screen, text, x, y)

	ebitenutil.DebugPrintAt(screen, "NEXT", x, y+100)
	preview := l.Cell * 0.75
	for p := range v.Next.Shape().Cells() {
		px := l.PanelX + float32(p.X)*preview
		py := l.Y + 120 + float32(p.Y)*preview
		vector.DrawFilledRect(screen, px+1, py+1, preview-2, preview-2, colorOf(v.NextColor), false)
	}

	switch {
	case v.State == tetris.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nR restart\nQ quit", x, y+200)
	case v.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED\nP resume", x, y+200)
	}
}
