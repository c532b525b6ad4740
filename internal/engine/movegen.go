package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// moveGen generates pseudo-legal moves for one side of a board.
type moveGen struct {
	v         *Variant
	b         *chess.Board
	side      chess.Colour
	enPassant chess.Square
	moves     []chess.Move
	buf       []chess.Square
}

// pseudoLegalMoves returns every move that obeys piece movement rules for
// side, ignoring king safety and castling.
func pseudoLegalMoves(v *Variant, b *chess.Board, side chess.Colour, enPassant chess.Square) []chess.Move {
	gen := &moveGen{
		v:         v,
		b:         b,
		side:      side,
		enPassant: enPassant,
		moves:     make([]chess.Move, 0, 48),
	}
	for _, from := range b.Squares(side) {
		gen.addPieceMoves(from)
	}
	return gen.moves
}

// PseudoLegalTargets returns the destination squares the piece on from may
// move to, ignoring king safety and castling.
func PseudoLegalTargets(v *Variant, b *chess.Board, from, enPassant chess.Square) []chess.Square {
	p := b.Get(from)
	if p.IsEmpty() {
		return nil
	}
	gen := &moveGen{v: v, b: b, side: p.Colour, enPassant: enPassant}
	gen.addPieceMoves(from)

	var out []chess.Square
	seen := make(map[chess.Square]bool, len(gen.moves))
	for _, m := range gen.moves {
		if !seen[m.To] {
			seen[m.To] = true
			out = append(out, m.To)
		}
	}
	return out
}

func (gen *moveGen) addPieceMoves(from chess.Square) {
	p := gen.b.Get(from)
	if p.Kind == chess.Pawn {
		gen.addPawnMoves(from, p)
		return
	}

	gen.buf = appendAttacks(gen.buf[:0], gen.b, from)
	for _, to := range gen.buf {
		target := gen.b.Get(to)
		if !target.IsEmpty() && target.Colour == gen.side {
			continue
		}
		capSq := chess.NoSquare
		if !target.IsEmpty() {
			capSq = to
		}
		gen.moves = append(gen.moves, chess.Move{
			Type:          chess.Normal,
			From:          from,
			To:            to,
			Piece:         p,
			Captured:      target,
			CaptureSquare: capSq,
		})
	}
}

// addPawnMoves generates forward advances, the double step, diagonal
// captures, en passant and promotions.
func (gen *moveGen) addPawnMoves(from chess.Square, pawn chess.Piece) {
	g := gen.b.Geometry()
	dir := pawn.Colour.Direction()

	if one, ok := g.Step(from, 0, dir); ok && gen.b.IsEmpty(one) {
		gen.addPawnMove(from, one, pawn, chess.NoPiece)

		if gen.v.DoubleStep && g.Rank(from) == gen.v.pawnStartRank(pawn.Colour) {
			if two, ok := g.Step(one, 0, dir); ok && gen.b.IsEmpty(two) {
				gen.moves = append(gen.moves, chess.Move{
					Type:          chess.DoubleStep,
					From:          from,
					To:            two,
					Piece:         pawn,
					CaptureSquare: chess.NoSquare,
				})
			}
		}
	}

	gen.buf = appendAttacks(gen.buf[:0], gen.b, from)
	for _, to := range gen.buf {
		target := gen.b.Get(to)
		switch {
		case !target.IsEmpty() && target.Colour != pawn.Colour:
			gen.addPawnMove(from, to, pawn, target)
		case target.IsEmpty() && to == gen.enPassant:
			capSq := g.Index(g.File(to), g.Rank(from))
			captured := gen.b.Get(capSq)
			if captured.Kind != chess.Pawn || captured.Colour == pawn.Colour {
				continue
			}
			gen.moves = append(gen.moves, chess.Move{
				Type:          chess.EnPassant,
				From:          from,
				To:            to,
				Piece:         pawn,
				Captured:      captured,
				CaptureSquare: capSq,
			})
		}
	}
}

// addPawnMove adds a single-step or capturing pawn move, expanding it into
// one move per promotion kind on the last rank.
func (gen *moveGen) addPawnMove(from, to chess.Square, pawn, captured chess.Piece) {
	capSq := chess.NoSquare
	if !captured.IsEmpty() {
		capSq = to
	}
	if gen.b.Geometry().Rank(to) != gen.v.promotionRank(pawn.Colour) {
		gen.moves = append(gen.moves, chess.Move{
			Type:          chess.Normal,
			From:          from,
			To:            to,
			Piece:         pawn,
			Captured:      captured,
			CaptureSquare: capSq,
		})
		return
	}
	for _, k := range gen.v.Catalog.Promotions() {
		gen.moves = append(gen.moves, chess.Move{
			Type:          chess.Promotion,
			From:          from,
			To:            to,
			Piece:         pawn,
			Captured:      captured,
			CaptureSquare: capSq,
			Promotion:     k,
		})
	}
}
