package chess

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Square is a dense board index: rank*width + file, a1 = 0.
type Square int

// NoSquare is returned when stepping leaves the board.
const NoSquare Square = -1

// NoFile marks the absence of a file.
const NoFile = -1

// MaxDimension bounds board width and height.
const MaxDimension = 16

// Geometry describes a rectangular board.
type Geometry struct {
	Width  int
	Height int
}

// StandardGeometry is the 8x8 board.
var StandardGeometry = Geometry{Width: 8, Height: 8}

// Valid reports whether the dimensions are supported.
func (g Geometry) Valid() bool {
	return g.Width >= 1 && g.Width <= MaxDimension && g.Height >= 1 && g.Height <= MaxDimension
}

// Size returns the number of squares.
func (g Geometry) Size() int {
	return g.Width * g.Height
}

// Index returns the square at (file, rank), or NoSquare if off the board.
func (g Geometry) Index(file, rank int) Square {
	if file < 0 || file >= g.Width || rank < 0 || rank >= g.Height {
		return NoSquare
	}
	return Square(rank*g.Width + file)
}

// Contains reports whether sq lies on the board.
func (g Geometry) Contains(sq Square) bool {
	return sq >= 0 && int(sq) < g.Size()
}

// File returns the 0-based file of sq.
func (g Geometry) File(sq Square) int {
	return int(sq) % g.Width
}

// Rank returns the 0-based rank of sq.
func (g Geometry) Rank(sq Square) int {
	return int(sq) / g.Width
}

// Step moves from sq by (df, dr). It reports false instead of wrapping
// around an edge.
func (g Geometry) Step(sq Square, df, dr int) (Square, bool) {
	to := g.Index(g.File(sq)+df, g.Rank(sq)+dr)
	return to, to != NoSquare
}

// IsLight reports the colour parity of sq. Two squares share a colour
// exactly when IsLight agrees.
func (g Geometry) IsLight(sq Square) bool {
	return (g.File(sq)+g.Rank(sq))%2 == 1
}

// BackRank returns the rank on which colour's pieces start.
func (g Geometry) BackRank(c Colour) int {
	if c == White {
		return 0
	}
	return g.Height - 1
}

// SquareName returns the algebraic name, e.g. "e4". Ranks above 9 use
// two digits.
func (g Geometry) SquareName(sq Square) string {
	if !g.Contains(sq) {
		return "-"
	}
	return string(rune('a'+g.File(sq))) + strconv.Itoa(g.Rank(sq)+1)
}

// ParseSquare converts an algebraic name to a square.
func (g Geometry) ParseSquare(name string) (Square, error) {
	if len(name) < 2 || name[0] < 'a' || name[0] > 'z' {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	rank, err := strconv.Atoi(name[1:])
	if err != nil || name[1] == '0' || name[1] == '+' || name[1] == '-' {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	sq := g.Index(int(name[0]-'a'), rank-1)
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("%q off the %dx%d board: %w", name, g.Width, g.Height, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// FileLetter returns the letter for a 0-based file.
func FileLetter(file int) byte {
	return byte('a' + file)
}
