package tetris

import (
	"fmt"
	"math/rand/v2"
)

// State is the game's lifecycle state.
type State uint8

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "running"
}

// LinesPerLevel is the number of cleared rows that raises the level by one.
const LinesPerLevel = 10

// Game owns a board and the falling piece. It is not safe for concurrent
// use; a single driver goroutine calls every method.
type Game struct {
	board    *Board
	piece    Piece
	next     Kind
	nextCol  Color
	random   Randomizer
	colors   ColorMode
	colorRNG *rand.Rand
	listener func(Event)

	state  State
	score  int
	lines  int
	pieces int
}

// New creates a game with an empty board and spawns the first piece.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	board, err := NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return newGame(cfg, board), nil
}

// NewWithBoard creates a game on a prepared board, for puzzles and replays.
// The board must match the configured dimensions.
func NewWithBoard(cfg Config, board *Board) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if board == nil || board.Width() != cfg.Width || board.Height() != cfg.Height {
		return nil, fmt.Errorf("board does not match %dx%d: %w", cfg.Width, cfg.Height, ErrInvalidConfig)
	}
	return newGame(cfg, board), nil
}

func newGame(cfg Config, board *Board) *Game {
	random := cfg.Randomizer
	if random == nil {
		random = NewUniform(cfg.Seed)
	}
	colorSeed := cfg.Seed
	if colorSeed != 0 {
		colorSeed ^= 0x5bd1e995
	}
	g := &Game{
		board:    board,
		random:   random,
		colors:   cfg.Colors,
		colorRNG: newRand(colorSeed),
		listener: cfg.Listener,
	}
	g.draw()
	g.spawn()
	return g
}

// draw queues the next kind and picks its color up front so previews match
// the piece that spawns.
func (g *Game) draw() {
	kind := g.random.Next()
	if !kind.Valid() {
		panic(fmt.Sprintf("tetris: randomizer returned invalid kind %d", kind))
	}
	g.next = kind
	g.nextCol = g.pickColor(kind)
}

func (g *Game) emit(ev Event) {
	if g.listener != nil {
		ev.Score = g.score
		g.listener(ev)
	}
}

func (g *Game) pickColor(kind Kind) Color {
	if g.colors == ColorByKind {
		return kind.Color()
	}
	return Color(1 + g.colorRNG.IntN(PaletteSize))
}

// spawn installs the next piece at the top centre and ends the game if it
// does not fit there.
func (g *Game) spawn() {
	kind, color := g.next, g.nextCol
	g.draw()

	p := NewPiece(kind, color)
	p.X = g.board.Width()/2 - p.Shape.Cols()/2
	p.Y = 0
	g.piece = p
	g.pieces++
	g.emit(Event{Kind: EventSpawned, Piece: kind})

	if !g.board.IsValid(p, 0, 0) {
		g.state = GameOver
		g.emit(Event{Kind: EventGameOver, Piece: kind})
	}
}

// land freezes the active piece, clears rows and spawns the next piece.
func (g *Game) land() {
	kind := g.piece.Kind
	g.board.Freeze(g.piece)
	g.emit(Event{Kind: EventLanded, Piece: kind})

	if n := g.board.ClearFullRows(); n > 0 {
		g.score += n
		g.lines += n
		g.emit(Event{Kind: EventLinesCleared, Piece: kind, Rows: n})
	}
	g.spawn()
}

func (g *Game) shift(dx, dy int) bool {
	if g.state == GameOver || !g.board.IsValid(g.piece, dx, dy) {
		return false
	}
	g.piece = g.piece.Moved(dx, dy)
	return true
}

// MoveLeft shifts the piece one column left if it fits.
func (g *Game) MoveLeft() bool {
	return g.shift(-1, 0)
}

// MoveRight shifts the piece one column right if it fits.
func (g *Game) MoveRight() bool {
	return g.shift(1, 0)
}

// GravityTick moves the piece down one row. When it cannot move, the piece
// lands: it is frozen, full rows are cleared and scored, and the next piece
// spawns. GravityTick reports whether the piece moved.
func (g *Game) GravityTick() bool {
	if g.state == GameOver {
		return false
	}
	if g.shift(0, 1) {
		return true
	}
	g.land()
	return false
}

// SoftDrop is GravityTick triggered by the player.
func (g *Game) SoftDrop() bool {
	return g.GravityTick()
}

// HardDrop drops the piece as far as it goes and lands it. It returns the
// number of rows the piece fell.
func (g *Game) HardDrop() int {
	if g.state == GameOver {
		return 0
	}
	rows := g.DropDistance()
	g.piece = g.piece.Moved(0, rows)
	g.land()
	return rows
}

// Rotate turns the piece clockwise in place. A rotation that collides is
// rejected and the previous orientation kept.
func (g *Game) Rotate() bool {
	if g.state == GameOver {
		return false
	}
	rotated := g.piece.Rotated()
	if !g.board.IsValid(rotated, 0, 0) {
		return false
	}
	g.piece = rotated
	return true
}

// DropDistance is the number of rows the piece can still fall.
func (g *Game) DropDistance() int {
	n := 0
	for g.board.IsValid(g.piece, 0, n+1) {
		n++
	}
	return n
}

func (g *Game) State() State { return g.state }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.state == GameOver }

// Score is the total number of rows cleared, one point each.
func (g *Game) Score() int { return g.score }

func (g *Game) Lines() int { return g.lines }

// Level starts at 1 and rises every LinesPerLevel cleared rows.
func (g *Game) Level() int { return g.lines/LinesPerLevel + 1 }

// Pieces counts the pieces spawned so far, including the active one.
func (g *Game) Pieces() int { return g.pieces }

// Next is the kind that spawns after the active piece lands.
func (g *Game) Next() Kind { return g.next }

// NextColor is the color the next piece will spawn with.
func (g *Game) NextColor() Color { return g.nextCol }

// Piece returns a copy of the active piece.
func (g *Game) Piece() Piece { return g.piece.Clone() }

// Width and Height return the board dimensions.
func (g *Game) Width() int  { return g.board.Width() }
func (g *Game) Height() int { return g.board.Height() }

// At returns the settled color at (x, y). The active piece is not included.
func (g *Game) At(x, y int) Color { return g.board.At(x, y) }

// Snapshot copies everything a renderer needs.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:     g.board.Width(),
		Height:    g.board.Height(),
		Cells:     g.board.Rows(),
		Piece:     g.piece.Clone(),
		GhostY:    g.piece.Y + g.DropDistance(),
		Next:      g.next,
		NextColor: g.nextCol,
		Score:     g.score,
		Lines:     g.lines,
		Level:     g.Level(),
		Pieces:    g.pieces,
		State:     g.state,
	}
}

// Snapshot is a detached view of a game at one instant.
type Snapshot struct {
	Width, Height int
	// Cells holds settled colors indexed [y][x].
	Cells     [][]Color
	Piece     Piece
	GhostY    int
	Next      Kind
	NextColor Color
	Score     int
	Lines     int
	Level     int
	Pieces    int
	State     State
}

// At returns the settled color at (x, y), or Empty outside the board.
func (s Snapshot) At(x, y int) Color {
	if y < 0 || y >= len(s.Cells) || x < 0 || x >= len(s.Cells[y]) {
		return Empty
	}
	return s.Cells[y][x]
}
