package tetris

import "fmt"

// Board is the fixed-size grid of settled cells. Row 0 is the top.
type Board struct {
	width  int
	height int
	cells  []Color
}

// NewBoard creates an empty width x height board.
func NewBoard(width, height int) (*Board, error) {
	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("board %dx%d smaller than %dx%d: %w",
			width, height, MinWidth, MinHeight, ErrInvalidConfig)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Color, width*height),
	}, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the color at (x, y), or Empty outside the board.
func (b *Board) At(x, y int) Color {
	if !b.inside(x, y) {
		return Empty
	}
	return b.cells[y*b.width+x]
}

// Occupied reports whether (x, y) holds a settled cell.
func (b *Board) Occupied(x, y int) bool {
	return b.At(x, y) != Empty
}

// Set writes a cell directly. Coordinates outside the board are ignored.
func (b *Board) Set(x, y int, c Color) {
	if !b.inside(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// IsValid reports whether p shifted by (dx, dy) fits: every cell within the
// side walls, above the floor and not on a settled cell. Cells above the top
// edge are never obstructed.
func (b *Board) IsValid(p Piece, dx, dy int) bool {
	for cell := range p.Cells() {
		x, y := cell.X+dx, cell.Y+dy
		if x < 0 || x >= b.width || y >= b.height {
			return false
		}
		if y >= 0 && b.cells[y*b.width+x] != Empty {
			return false
		}
	}
	return true
}

// Freeze writes the piece's color into every cell it covers. The caller must
// have validated the position; cells above the top edge are dropped.
func (b *Board) Freeze(p Piece) {
	for cell := range p.Cells() {
		b.Set(cell.X, cell.Y, p.Color)
	}
}

func (b *Board) row(y int) []Color {
	return b.cells[y*b.width : (y+1)*b.width]
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.row(y) {
		if c == Empty {
			return false
		}
	}
	return true
}

// FullRows returns the indices of every full row, top to bottom.
func (b *Board) FullRows() []int {
	var full []int
	for y := 0; y < b.height; y++ {
		if b.rowFull(y) {
			full = append(full, y)
		}
	}
	return full
}

// ClearFullRows removes every full row, drops the rows above it and fills
// the top with empty rows. It returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	write := b.height - 1
	for read := b.height - 1; read >= 0; read-- {
		if b.rowFull(read) {
			continue
		}
		if write != read {
			copy(b.row(write), b.row(read))
		}
		write--
	}

	cleared := write + 1
	for y := 0; y <= write; y++ {
		clear(b.row(y))
	}
	return cleared
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Rows returns a copy of the grid indexed [y][x].
func (b *Board) Rows() [][]Color {
	rows := make([][]Color, b.height)
	for y := range rows {
		rows[y] = make([]Color, b.width)
		copy(rows[y], b.row(y))
	}
	return rows
}

// String renders settled cells as '#' and empty cells as '.', one line per row.
func (b *Board) String() string {
	buf := make([]byte, 0, (b.width+1)*b.height)
	for y := 0; y < b.height; y++ {
		for _, c := range b.row(y) {
			if c == Empty {
				buf = append(buf, '.')
			} else {
				buf = append(buf, '#')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
