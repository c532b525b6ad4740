// Package engine provides legal move generation, move application and
// game-status classification over immutable positions.
package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Variant is the rule configuration a Position is built with. One move
// generator serves every variant; only this data differs.
type Variant struct {
	Name     string
	Geometry chess.Geometry
	Catalog  *chess.Catalog

	// DoubleStep allows pawns on their second rank to advance two squares.
	DoubleStep bool

	// Castling enables castling moves. CastledKingFiles and CastledRookFiles
	// give destination files indexed by chess.Wing, independent of where the
	// rook started.
	Castling         bool
	CastledKingFiles [2]int
	CastledRookFiles [2]int

	// ShredderCastling writes castling rights as rook file letters.
	ShredderCastling bool

	// StartFEN is the variant's initial position.
	StartFEN string
}

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Standard is orthodox chess.
var Standard = &Variant{
	Name:             "standard",
	Geometry:         chess.StandardGeometry,
	Catalog:          chess.StandardCatalog,
	DoubleStep:       true,
	Castling:         true,
	CastledKingFiles: [2]int{chess.QueenSide: 2, chess.KingSide: 6},
	CastledRookFiles: [2]int{chess.QueenSide: 3, chess.KingSide: 5},
	StartFEN:         InitialFEN,
}

// Chess960 is Fischer random chess. Castling ends on the orthodox squares
// whatever the starting files.
var Chess960 = &Variant{
	Name:             "chess960",
	Geometry:         chess.StandardGeometry,
	Catalog:          chess.StandardCatalog,
	DoubleStep:       true,
	Castling:         true,
	CastledKingFiles: Standard.CastledKingFiles,
	CastledRookFiles: Standard.CastledRookFiles,
	ShredderCastling: true,
	StartFEN:         "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w HAha - 0 1",
}

// Shatranj is the medieval ancestor of chess: ferz instead of queen, alfil
// instead of bishop, single-step pawns promoting to ferz, no castling.
var Shatranj = &Variant{
	Name:     "shatranj",
	Geometry: chess.StandardGeometry,
	Catalog:  chess.ShatranjCatalog,
	StartFEN: "rnbkqbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBKQBNR w - - 0 1",
}

var variants = map[string]*Variant{
	Standard.Name: Standard,
	Chess960.Name: Chess960,
	Shatranj.Name: Shatranj,
}

// LookupVariant returns the built-in variant with the given name.
func LookupVariant(name string) (*Variant, bool) {
	v, ok := variants[name]
	return v, ok
}

// pawnStartRank returns the rank from which colour's pawns may double-step.
func (v *Variant) pawnStartRank(c chess.Colour) int {
	if c == chess.White {
		return 1
	}
	return v.Geometry.Height - 2
}

// promotionRank returns the rank on which colour's pawns promote.
func (v *Variant) promotionRank(c chess.Colour) int {
	return v.Geometry.BackRank(c.Opposite())
}
