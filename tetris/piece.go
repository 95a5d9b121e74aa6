package tetris

import "iter"

// Piece is a tetromino placed on a board. X and Y locate the top-left cell of
// Shape; Y may be negative while the piece pokes out above the board.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
	Color Color
}

// NewPiece returns a piece of the given kind in its default orientation at
// the origin.
func NewPiece(kind Kind, color Color) Piece {
	return Piece{
		Kind:  kind,
		Shape: kind.Shape(),
		Color: color,
	}
}

// Cells yields the absolute board coordinates the piece covers.
func (p Piece) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for cell := range p.Shape.Cells() {
			if !yield(Point{X: p.X + cell.X, Y: p.Y + cell.Y}) {
				return
			}
		}
	}
}

// Moved returns a copy shifted by (dx, dy). The shape is shared.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy turned clockwise around its anchor.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// Clone returns a copy that does not share the shape matrix.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}
