package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// castlingMoves returns the castling moves available to side. scratch is a
// copy of b that is restored before returning.
//
// A castling move is legal when the rook's file is still in the rights, every
// square between the king, the rook and their destinations is empty apart
// from those two pieces, and no square the king stands on, crosses or lands
// on is attacked.
func castlingMoves(v *Variant, b, scratch *chess.Board, side chess.Colour, rights chess.CastlingRights) []chess.Move {
	if !v.Castling {
		return nil
	}
	g := b.Geometry()
	kingSq := b.King(side)
	rank := g.BackRank(side)
	if kingSq == chess.NoSquare || g.Rank(kingSq) != rank {
		return nil
	}
	kingFile := g.File(kingSq)
	king := b.Get(kingSq)
	rook := chess.Piece{Kind: chess.Rook, Colour: side}
	enemy := side.Opposite()

	var moves []chess.Move
	var attacked []bool

	for _, rookFile := range rights.Files(side) {
		rookSq := g.Index(rookFile, rank)
		if rookSq == chess.NoSquare || b.Get(rookSq) != rook {
			continue
		}
		wing := chess.WingOf(kingFile, rookFile)
		kingToFile := v.CastledKingFiles[wing]
		rookToFile := v.CastledRookFiles[wing]

		if !pathClear(b, rank, kingSq, rookSq, kingFile, rookFile, kingToFile, rookToFile) {
			continue
		}

		if attacked == nil {
			attacked = AttackedSquares(b, enemy)
		}
		if !kingPathSafe(g, attacked, rank, kingFile, kingToFile) {
			continue
		}

		m := chess.Move{
			Type:          chess.Castling,
			From:          kingSq,
			To:            g.Index(kingToFile, rank),
			Piece:         king,
			CaptureSquare: chess.NoSquare,
			RookFrom:      rookSq,
			RookTo:        g.Index(rookToFile, rank),
		}

		// The king must also be safe once the rook stands on its new square.
		m.Apply(scratch)
		safe := !IsAttacked(scratch, m.To, enemy)
		m.Undo(scratch)
		if safe {
			moves = append(moves, m)
		}
	}
	return moves
}

// pathClear reports whether every square spanned by files on rank is
// empty, apart from the king and rook themselves.
func pathClear(b *chess.Board, rank int, kingSq, rookSq chess.Square, files ...int) bool {
	g := b.Geometry()
	lo, hi := files[0], files[0]
	for _, f := range files[1:] {
		lo = min(lo, f)
		hi = max(hi, f)
	}
	for f := lo; f <= hi; f++ {
		sq := g.Index(f, rank)
		if sq == kingSq || sq == rookSq {
			continue
		}
		if !b.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// kingPathSafe reports whether none of the squares from the king's file to
// its destination file, both included, are attacked.
func kingPathSafe(g chess.Geometry, attacked []bool, rank, from, to int) bool {
	step := 1
	if to < from {
		step = -1
	}
	for f := from; ; f += step {
		if attacked[g.Index(f, rank)] {
			return false
		}
		if f == to {
			return true
		}
	}
}
