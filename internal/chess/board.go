package chess

// Board maps squares to pieces and caches each king's square.
// A Board knows nothing about whose turn it is or how it was reached.
type Board struct {
	geom  Geometry
	cells []Piece
	kings [2]Square
	count int
}

// NewBoard creates an empty board.
func NewBoard(g Geometry) *Board {
	return &Board{
		geom:  g,
		cells: make([]Piece, g.Size()),
		kings: [2]Square{NoSquare, NoSquare},
	}
}

// Geometry returns the board dimensions.
func (b *Board) Geometry() Geometry {
	return b.geom
}

// Get returns the piece on sq, or NoPiece.
func (b *Board) Get(sq Square) Piece {
	return b.cells[sq]
}

// IsEmpty reports whether sq is unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return b.cells[sq].IsEmpty()
}

// Set places p on sq, replacing whatever was there. Setting NoPiece
// is the same as Remove.
func (b *Board) Set(sq Square, p Piece) {
	old := b.cells[sq]
	if old.Kind == King && b.kings[old.Colour] == sq {
		b.kings[old.Colour] = NoSquare
	}
	switch {
	case old.IsEmpty() && !p.IsEmpty():
		b.count++
	case !old.IsEmpty() && p.IsEmpty():
		b.count--
	}
	b.cells[sq] = p
	if p.Kind == King {
		b.kings[p.Colour] = sq
	}
}

// Remove empties sq and returns what was on it.
func (b *Board) Remove(sq Square) Piece {
	old := b.cells[sq]
	b.Set(sq, NoPiece)
	return old
}

// Relocate moves the piece on from to to, returning any piece that was
// on to.
func (b *Board) Relocate(from, to Square) Piece {
	p := b.Remove(from)
	captured := b.Remove(to)
	b.Set(to, p)
	return captured
}

// King returns the square of colour's king, or NoSquare.
func (b *Board) King(c Colour) Square {
	return b.kings[c]
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	return b.count
}

// Squares returns the occupied squares of colour c in index order.
func (b *Board) Squares(c Colour) []Square {
	out := make([]Square, 0, 16)
	for i, p := range b.cells {
		if !p.IsEmpty() && p.Colour == c {
			out = append(out, Square(i))
		}
	}
	return out
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := &Board{
		geom:  b.geom,
		cells: make([]Piece, len(b.cells)),
		kings: b.kings,
		count: b.count,
	}
	copy(nb.cells, b.cells)
	return nb
}

// CopyFrom overwrites b with other without allocating. Both boards must
// share a geometry.
func (b *Board) CopyFrom(other *Board) {
	copy(b.cells, other.cells)
	b.kings = other.kings
	b.count = other.count
}

// Equal reports whether both boards hold the same pieces.
func (b *Board) Equal(other *Board) bool {
	if b.geom != other.geom || b.count != other.count {
		return false
	}
	for i, p := range b.cells {
		if other.cells[i] != p {
			return false
		}
	}
	return true
}
