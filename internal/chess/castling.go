package chess

import "math/bits"

// CastlingRights records, per colour, the files of the rooks that may still
// castle. It is a value type: copying it copies the rights.
type CastlingRights struct {
	files [2]uint16
}

// NoCastling has no rights for either colour.
var NoCastling = CastlingRights{}

// Has reports whether colour c may still castle with the rook from file.
func (cr CastlingRights) Has(c Colour, file int) bool {
	return file >= 0 && file < MaxDimension && cr.files[c]&(1<<file) != 0
}

// Add returns cr with the right for (c, file) added.
func (cr CastlingRights) Add(c Colour, file int) CastlingRights {
	cr.files[c] |= 1 << file
	return cr
}

// Without returns cr with the right for (c, file) dropped.
func (cr CastlingRights) Without(c Colour, file int) CastlingRights {
	cr.files[c] &^= 1 << file
	return cr
}

// WithoutColour returns cr with every right of colour c dropped.
func (cr CastlingRights) WithoutColour(c Colour) CastlingRights {
	cr.files[c] = 0
	return cr
}

// Files returns c's rook files in ascending order.
func (cr CastlingRights) Files(c Colour) []int {
	out := make([]int, 0, 2)
	for m := cr.files[c]; m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros16(m))
	}
	return out
}

// IsEmpty reports whether neither colour may castle.
func (cr CastlingRights) IsEmpty() bool {
	return cr.files[0] == 0 && cr.files[1] == 0
}

// Wing distinguishes queen-side from king-side castling.
type Wing int

const (
	QueenSide Wing = iota
	KingSide
)

// String returns "O-O-O" or "O-O".
func (w Wing) String() string {
	if w == KingSide {
		return "O-O"
	}
	return "O-O-O"
}

// WingOf returns the wing of a rook on rookFile relative to a king on kingFile.
func WingOf(kingFile, rookFile int) Wing {
	if rookFile < kingFile {
		return QueenSide
	}
	return KingSide
}
