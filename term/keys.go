package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/play"
)

// ActionFor maps a key press to a game action. Arrow keys and hjkl/wasd
// move, space drops, p pauses, r restarts, q or Esc quits.
func ActionFor(key tcell.Key, r rune) play.Action {
	switch key {
	case tcell.KeyLeft:
		return play.MoveLeft
	case tcell.KeyRight:
		return play.MoveRight
	case tcell.KeyDown:
		return play.SoftDrop
	case tcell.KeyUp:
		return play.Rotate
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return play.Quit
	case tcell.KeyRune:
		return actionForRune(r)
	}
	return play.ActionNone
}

func actionForRune(r rune) play.Action {
	switch r {
	case 'h', 'a', 'H', 'A':
		return play.MoveLeft
	case 'l', 'd', 'L', 'D':
		return play.MoveRight
	case 'j', 's', 'J', 'S':
		return play.SoftDrop
	case 'k', 'w', 'K', 'W':
		return play.Rotate
	case ' ':
		return play.HardDrop
	case 'p', 'P':
		return play.Pause
	case 'r', 'R':
		return play.Restart
	case 'q', 'Q':
		return play.Quit
	}
	return play.ActionNone
}

// ActionForEvent maps a tcell key event.
func ActionForEvent(ev *tcell.EventKey) play.Action {
	return ActionFor(ev.Key(), ev.Rune())
}
