package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// MustPosition parses a standard chess FEN string. It calls t.Fatal if the
// FEN is rejected.
func MustPosition(t *testing.T, fen string) *engine.Position {
	t.Helper()
	return MustVariantPosition(t, engine.Standard, fen)
}

// MustVariantPosition parses a FEN string under the given variant.
func MustVariantPosition(t *testing.T, v *engine.Variant, fen string) *engine.Position {
	t.Helper()
	pos, err := v.ParseFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	return pos
}

// MustSquare converts an algebraic square name on the standard board.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.StandardGeometry.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return sq
}

// MustFind returns the legal move written in coordinate form, e.g. "e2e4"
// or "e7e8n".
func MustFind(t *testing.T, pos *engine.Position, coord string) chess.Move {
	t.Helper()
	g := pos.Geometry()
	if len(coord) < 4 {
		t.Fatalf("bad coordinate move %q", coord)
	}
	// Split the destination off at its file letter so tall boards work.
	split := strings.IndexFunc(coord[1:], func(r rune) bool { return r >= 'a' && r <= 'z' }) + 1
	from, err := g.ParseSquare(coord[:split])
	if err != nil {
		t.Fatalf("bad coordinate move %q: %v", coord, err)
	}
	rest := coord[split:]
	promo := chess.NoKind
	if last := rest[len(rest)-1]; last >= 'a' && last <= 'z' && len(rest) > 2 {
		p, ok := pos.Variant().Catalog.Piece(last)
		if !ok {
			t.Fatalf("bad promotion in %q", coord)
		}
		promo = p.Kind
		rest = rest[:len(rest)-1]
	}
	to, err := g.ParseSquare(rest)
	if err != nil {
		t.Fatalf("bad coordinate move %q: %v", coord, err)
	}
	m, err := pos.Find(from, to, promo)
	if err != nil {
		t.Fatalf("move %q in %q: %v", coord, pos.FEN(), err)
	}
	return m
}

// MustPlay plays a sequence of coordinate moves and returns the final
// position. It calls t.Fatal on the first move that cannot be played.
func MustPlay(t *testing.T, pos *engine.Position, coords ...string) *engine.Position {
	t.Helper()
	for _, c := range coords {
		next, err := pos.Play(MustFind(t, pos, c))
		if err != nil {
			t.Fatalf("playing %q in %q: %v", c, pos.FEN(), err)
		}
		pos = next
	}
	return pos
}
