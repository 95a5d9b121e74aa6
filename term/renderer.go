// Package term draws a play.View on a character grid and maps terminal keys
// to play actions.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/tetris"
)

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

const (
	cellWidth = 2
	hudGap    = 3
	hudWidth  = 16
)

// Renderer lays out the well with a frame at Origin and the status panel to
// its right. Every board cell is two characters wide.
type Renderer struct {
	OriginX, OriginY int
	Ghost            bool
	// Best is shown in the panel when positive.
	Best int
}

func NewRenderer() *Renderer {
	return &Renderer{OriginX: 1, OriginY: 1, Ghost: true}
}

// Size returns the characters needed to draw a width x height board.
func (r *Renderer) Size(width, height int) (int, int) {
	return r.OriginX + width*cellWidth + 2 + hudGap + hudWidth, r.OriginY + height + 1
}

// Fits reports whether c is large enough for the board.
func (r *Renderer) Fits(c Canvas, width, height int) bool {
	cw, ch := c.Size()
	w, h := r.Size(width, height)
	return cw >= w && ch >= h
}

// cellX returns the screen column of board column x.
func (r *Renderer) cellX(x int) int {
	return r.OriginX + 1 + x*cellWidth
}

func (r *Renderer) Draw(c Canvas, v play.View) {
	base := tcell.StyleDefault.Background(RgbBackground)

	r.drawFrame(c, v.Width, v.Height, base)
	r.drawCells(c, v, base)
	r.drawPanel(c, v, base)
}

func (r *Renderer) drawFrame(c Canvas, width, height int, base tcell.Style) {
	frame := base.Foreground(RgbFrame)
	left := r.OriginX
	right := r.cellX(width)
	bottom := r.OriginY + height

	for y := r.OriginY; y < bottom; y++ {
		c.SetContent(left, y, '│', nil, frame)
		c.SetContent(right, y, '│', nil, frame)
	}
	c.SetContent(left, bottom, '└', nil, frame)
	c.SetContent(right, bottom, '┘', nil, frame)
	for x := left + 1; x < right; x++ {
		c.SetContent(x, bottom, '─', nil, frame)
	}
}

func (r *Renderer) drawCells(c Canvas, v play.View, base tcell.Style) {
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			if color := v.At(x, y); color != tetris.Empty {
				r.drawBlock(c, x, y, base.Foreground(ColorOf(color)))
				continue
			}
			sx := r.cellX(x)
			c.SetContent(sx, r.OriginY+y, ' ', nil, base)
			c.SetContent(sx+1, r.OriginY+y, '·', nil, base.Foreground(RgbGrid))
		}
	}

	if v.State == tetris.GameOver {
		return
	}

	if r.Ghost && v.GhostY != v.Piece.Y {
		ghost := base.Foreground(ColorOf(v.Piece.Color)).Dim(true)
		for p := range v.Piece.Shape.Cells() {
			y := v.GhostY + p.Y
			if y < 0 {
				continue
			}
			sx := r.cellX(v.Piece.X + p.X)
			c.SetContent(sx, r.OriginY+y, '[', nil, ghost)
			c.SetContent(sx+1, r.OriginY+y, ']', nil, ghost)
		}
	}

	style := base.Foreground(ColorOf(v.Piece.Color))
	for p := range v.Piece.Cells() {
		if p.Y < 0 {
			continue
		}
		r.drawBlock(c, p.X, p.Y, style)
	}
}

func (r *Renderer) drawBlock(c Canvas, x, y int, style tcell.Style) {
	sx := r.cellX(x)
	c.SetContent(sx, r.OriginY+y, '█', nil, style)
	c.SetContent(sx+1, r.OriginY+y, '█', nil, style)
}

// panelX returns the first column of the status panel.
func (r *Renderer) panelX(width int) int {
	return r.cellX(width) + 1 + hudGap
}

func (r *Renderer) drawPanel(c Canvas, v play.View, base tcell.Style) {
	x := r.panelX(v.Width)
	y := r.OriginY
	label := base.Foreground(RgbDim)
	value := base.Foreground(RgbText).Bold(true)

	type stat struct {
		name  string
		value int
	}
	rows := []stat{
		{"SCORE", v.Score},
		{"LINES", v.Lines},
		{"LEVEL", v.Level},
	}
	if r.Best > 0 {
		rows = append(rows, stat{"BEST", max(r.Best, v.Score)})
	}

	for _, row := range rows {
		drawText(c, x, y, label, row.name)
		drawText(c, x, y+1, value, fmt.Sprintf("%d", row.value))
		y += 3
	}

	drawText(c, x, y, label, "NEXT")
	y++
	next := v.Next.Shape()
	style := base.Foreground(ColorOf(v.NextColor))
	for p := range next.Cells() {
		sx := x + p.X*cellWidth
		c.SetContent(sx, y+p.Y, '█', nil, style)
		c.SetContent(sx+1, y+p.Y, '█', nil, style)
	}
	y += 3

	alert := base.Foreground(RgbAlert).Bold(true)
	switch {
	case v.State == tetris.GameOver:
		drawText(c, x, y, alert, "GAME OVER")
		drawText(c, x, y+1, label, "r restart  q quit")
	case v.Paused:
		drawText(c, x, y, alert, "PAUSED")
		drawText(c, x, y+1, label, "p resume")
	}
}

func drawText(c Canvas, x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		c.SetContent(x, y, ch, nil, style)
		x++
	}
}
