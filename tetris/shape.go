package tetris

import "iter"

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	I Kind = iota + 1
	O
	T
	S
	Z
	L
	J
)

// Kinds lists every tetromino in canonical order.
var Kinds = [...]Kind{I, O, T, S, Z, L, J}

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case L:
		return "L"
	case J:
		return "J"
	}
	return "?"
}

// Valid reports whether k is one of the seven tetrominoes.
func (k Kind) Valid() bool {
	return k >= I && k <= J
}

// Color is the marker stored in a board cell. The zero value is Empty.
type Color uint8

const (
	Empty Color = iota
	Red
	Green
	Blue
	Yellow
	Orange
	Purple
	Cyan
)

// PaletteSize is the number of non-empty colors.
const PaletteSize = 7

func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Orange:
		return "orange"
	case Purple:
		return "purple"
	case Cyan:
		return "cyan"
	}
	return "unknown"
}

// Color returns the default color of the tetromino.
func (k Kind) Color() Color {
	switch k {
	case I:
		return Cyan
	case O:
		return Yellow
	case T:
		return Purple
	case S:
		return Green
	case Z:
		return Red
	case L:
		return Orange
	case J:
		return Blue
	}
	return Empty
}

// Point is a cell coordinate. Y grows downwards.
type Point struct {
	X, Y int
}

// Shape is a boolean occupancy matrix indexed [row][col].
type Shape [][]bool

var shapes = map[Kind]Shape{
	I: {
		{true, true, true, true},
	},
	T: {
		{true, true, true},
		{false, true, false},
	},
	Z: {
		{true, true, false},
		{false, true, true},
	},
	S: {
		{false, true, true},
		{true, true, false},
	},
	O: {
		{true, true},
		{true, true},
	},
	L: {
		{true, true, true},
		{true, false, false},
	},
	J: {
		{true, true, true},
		{false, false, true},
	},
}

// Shape returns a fresh copy of the tetromino's default orientation.
func (k Kind) Shape() Shape {
	return shapes[k].Clone()
}

// Rows returns the matrix height.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the matrix width.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for r := range s {
		out[r] = make([]bool, len(s[r]))
		copy(out[r], s[r])
	}
	return out
}

// Rotate returns the shape turned 90 degrees clockwise. The receiver is not
// modified. A rows x cols matrix becomes cols x rows.
func (s Shape) Rotate() Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make(Shape, cols)
	for r := range out {
		out[r] = make([]bool, rows)
		for c := range out[r] {
			out[r][c] = s[rows-1-c][r]
		}
	}
	return out
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Cells yields the occupied cells relative to the top-left corner.
func (s Shape) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for r, row := range s {
			for c, filled := range row {
				if !filled {
					continue
				}
				if !yield(Point{X: c, Y: r}) {
					return
				}
			}
		}
	}
}

// String renders the shape as rows of '#' and '.' separated by '/'.
func (s Shape) String() string {
	buf := make([]byte, 0, s.Rows()*(s.Cols()+1))
	for r, row := range s {
		if r > 0 {
			buf = append(buf, '/')
		}
		for _, filled := range row {
			if filled {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
