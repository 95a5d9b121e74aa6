package tetris

// EventKind classifies game events.
type EventKind uint8

const (
	EventSpawned EventKind = iota + 1
	EventLanded
	EventLinesCleared
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventLanded:
		return "landed"
	case EventLinesCleared:
		return "lines-cleared"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event describes a state change. Rows is set for EventLinesCleared; Score
// is the score after the change.
type Event struct {
	Kind  EventKind
	Piece Kind
	Rows  int
	Score int
}
