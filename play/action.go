package play

import "fmt"

// Action is one player command, queued by a frontend and applied by
// InputSystem on the next frame.
type Action uint8

const (
	ActionNone Action = iota
	MoveLeft
	MoveRight
	SoftDrop
	Rotate
	HardDrop
	Pause
	Restart
	Quit
)

var actionNames = [...]string{
	ActionNone: "none",
	MoveLeft:   "left",
	MoveRight:  "right",
	SoftDrop:   "soft drop",
	Rotate:     "rotate",
	HardDrop:   "hard drop",
	Pause:      "pause",
	Restart:    "restart",
	Quit:       "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// InputQueue is the resource frontends push actions into.
type InputQueue struct {
	actions []Action
}

func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.actions = append(q.actions, a)
}

func (q *InputQueue) Len() int {
	return len(q.actions)
}

// Drain returns the queued actions in push order and empties the queue.
func (q *InputQueue) Drain() []Action {
	out := q.actions
	q.actions = nil
	return out
}
