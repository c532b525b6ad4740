// Package chess provides the board-level types of the rules core: square
// addressing, the piece catalog, the board itself, castling rights and moves.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// Colours lists both colours, White first.
var Colours = [2]Colour{White, Black}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Direction returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// Kind identifies a type of piece independent of its colour.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	// Ferz moves one square diagonally (shatranj counsellor).
	Ferz
	// Alfil leaps exactly two squares diagonally (shatranj elephant).
	Alfil
	NumKinds
)

// Offset is a (file, rank) displacement.
type Offset struct {
	File int
	Rank int
}

var (
	knightOffsets   = []Offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	diagonalOffsets = []Offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightOffsets = []Offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	adjacentOffsets = append(append([]Offset{}, straightOffsets...), diagonalOffsets...)
	alfilOffsets    = []Offset{{-2, -2}, {-2, 2}, {2, -2}, {2, 2}}
	// Pawn captures as seen from White; Black mirrors the rank.
	pawnOffsets = []Offset{{-1, 1}, {1, 1}}
)

type kindInfo struct {
	name    string
	letter  byte
	offsets []Offset
	sliding bool
}

var kinds = [NumKinds]kindInfo{
	NoKind: {name: "Empty", letter: ' '},
	Pawn:   {name: "Pawn", letter: 'P', offsets: pawnOffsets},
	Knight: {name: "Knight", letter: 'N', offsets: knightOffsets},
	Bishop: {name: "Bishop", letter: 'B', offsets: diagonalOffsets, sliding: true},
	Rook:   {name: "Rook", letter: 'R', offsets: straightOffsets, sliding: true},
	Queen:  {name: "Queen", letter: 'Q', offsets: adjacentOffsets, sliding: true},
	King:   {name: "King", letter: 'K', offsets: adjacentOffsets},
	Ferz:   {name: "Ferz", letter: 'F', offsets: diagonalOffsets},
	Alfil:  {name: "Alfil", letter: 'A', offsets: alfilOffsets},
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kinds[k].name
	}
	return "Unknown"
}

// Letter returns the default upper-case letter for the kind.
func (k Kind) Letter() byte {
	if k > NoKind && k < NumKinds {
		return kinds[k].letter
	}
	return '?'
}

// Sliding reports whether the kind repeats its offsets until blocked.
func (k Kind) Sliding() bool {
	return kinds[k].sliding
}

// Offsets returns the kind's offset table for the given colour. Only pawns
// depend on colour. The returned slice must not be modified.
func (k Kind) Offsets(c Colour) []Offset {
	if k == Pawn && c == Black {
		return blackPawnOffsets
	}
	return kinds[k].offsets
}

var blackPawnOffsets = []Offset{{-1, -1}, {1, -1}}

// Piece is an immutable coloured piece. The zero value is NoPiece, an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece marks an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(k Kind) Piece {
	return Piece{Kind: k, Colour: White}
}

// B creates a black piece.
func B(k Kind) Piece {
	return Piece{Kind: k, Colour: Black}
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}
