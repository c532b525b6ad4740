package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// appendAttacks appends the squares attacked by the piece on from. Sliding
// kinds repeat each offset until the ray leaves the board or meets a piece;
// the blocker is included only when it belongs to the other colour.
func appendAttacks(dst []chess.Square, b *chess.Board, from chess.Square) []chess.Square {
	p := b.Get(from)
	if p.IsEmpty() {
		return dst
	}
	g := b.Geometry()
	sliding := p.Kind.Sliding()

	for _, off := range p.Kind.Offsets(p.Colour) {
		to, ok := g.Step(from, off.File, off.Rank)
		if !sliding {
			if ok {
				dst = append(dst, to)
			}
			continue
		}
		for ok {
			target := b.Get(to)
			if !target.IsEmpty() {
				if target.Colour != p.Colour {
					dst = append(dst, to)
				}
				break
			}
			dst = append(dst, to)
			to, ok = g.Step(to, off.File, off.Rank)
		}
	}
	return dst
}

// Attacks returns the squares attacked by the piece on from.
func Attacks(b *chess.Board, from chess.Square) []chess.Square {
	return appendAttacks(nil, b, from)
}

// attacksSquare reports whether the piece on from attacks target, without
// building the full attack list.
func attacksSquare(b *chess.Board, from, target chess.Square) bool {
	p := b.Get(from)
	g := b.Geometry()
	df := g.File(target) - g.File(from)
	dr := g.Rank(target) - g.Rank(from)

	for _, off := range p.Kind.Offsets(p.Colour) {
		if !p.Kind.Sliding() {
			if off.File == df && off.Rank == dr {
				return true
			}
			continue
		}
		// target must lie on this ray: a positive multiple of the offset.
		n, ok := rayDistance(off, df, dr)
		if !ok {
			continue
		}
		sq := from
		for i := 1; i < n; i++ {
			sq, _ = g.Step(sq, off.File, off.Rank)
			if !b.IsEmpty(sq) {
				return false
			}
		}
		t := b.Get(target)
		return t.IsEmpty() || t.Colour != p.Colour
	}
	return false
}

// rayDistance returns n such that (df, dr) = n*off with n >= 1.
func rayDistance(off chess.Offset, df, dr int) (int, bool) {
	var n int
	switch {
	case off.File != 0:
		if df%off.File != 0 {
			return 0, false
		}
		n = df / off.File
	case off.Rank != 0:
		if dr%off.Rank != 0 {
			return 0, false
		}
		n = dr / off.Rank
	default:
		return 0, false
	}
	if n < 1 || off.File*n != df || off.Rank*n != dr {
		return 0, false
	}
	return n, true
}

// IsAttacked reports whether any piece of colour by attacks sq.
func IsAttacked(b *chess.Board, sq chess.Square, by chess.Colour) bool {
	g := b.Geometry()
	for i := 0; i < g.Size(); i++ {
		from := chess.Square(i)
		p := b.Get(from)
		if p.IsEmpty() || p.Colour != by || from == sq {
			continue
		}
		if attacksSquare(b, from, sq) {
			return true
		}
	}
	return false
}

// AttackedSquares returns the set of squares attacked by colour by,
// indexed by square.
func AttackedSquares(b *chess.Board, by chess.Colour) []bool {
	g := b.Geometry()
	set := make([]bool, g.Size())
	var buf []chess.Square
	for _, from := range b.Squares(by) {
		buf = appendAttacks(buf[:0], b, from)
		for _, sq := range buf {
			set[sq] = true
		}
	}
	return set
}
