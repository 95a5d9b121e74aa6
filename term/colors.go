package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

var (
	RgbBackground = tcell.NewRGBColor(12, 12, 20)
	RgbGrid       = tcell.NewRGBColor(48, 48, 64)
	RgbFrame      = tcell.NewRGBColor(140, 140, 160)
	RgbText       = tcell.NewRGBColor(220, 220, 220)
	RgbDim        = tcell.NewRGBColor(110, 110, 130)
	RgbAlert      = tcell.NewRGBColor(255, 80, 80)
)

var palette = [...]tcell.Color{
	tetris.Empty:  RgbBackground,
	tetris.Red:    tcell.NewRGBColor(230, 40, 40),
	tetris.Green:  tcell.NewRGBColor(60, 200, 60),
	tetris.Blue:   tcell.NewRGBColor(50, 90, 230),
	tetris.Yellow: tcell.NewRGBColor(240, 220, 40),
	tetris.Orange: tcell.NewRGBColor(245, 150, 30),
	tetris.Purple: tcell.NewRGBColor(170, 60, 210),
	tetris.Cyan:   tcell.NewRGBColor(40, 220, 230),
}

// ColorOf returns the terminal color of a cell marker.
func ColorOf(c tetris.Color) tcell.Color {
	if int(c) < len(palette) {
		return palette[c]
	}
	return RgbText
}
