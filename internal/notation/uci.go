package notation

import (
	"strings"
	"unicode"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// UCI returns m in coordinate notation, e.g. "e2e4" or "e7e8q". Castling is
// written as the king's move, or as king takes rook in variants that write
// castling rights as rook files.
func UCI(pos *engine.Position, m chess.Move) string {
	g := pos.Geometry()
	to := m.To
	if m.Type == chess.Castling && pos.Variant().ShredderCastling {
		to = m.RookFrom
	}
	s := g.SquareName(m.From) + g.SquareName(to)
	if m.Type == chess.Promotion {
		s += strings.ToLower(string(pos.Variant().Catalog.KindLetter(m.Promotion)))
	}
	return s
}

// ParseUCI finds the legal move written in coordinate notation. A castling
// move may name either the king's destination or the rook's square. A
// missing promotion letter selects the variant's first promotion kind.
func ParseUCI(pos *engine.Position, text string) (chess.Move, error) {
	g := pos.Geometry()
	s := strings.TrimSpace(text)

	// The destination starts at the second file letter.
	split := strings.IndexFunc(s[min(1, len(s)):], unicode.IsLower) + 1
	if len(s) < 4 || split < 2 {
		return chess.Move{}, moveError(pos, text, errors.ErrInvalidSquare)
	}
	from, err := g.ParseSquare(s[:split])
	if err != nil {
		return chess.Move{}, moveError(pos, text, err)
	}

	rest := s[split:]
	promo := chess.NoKind
	if n := len(rest); n > 2 && unicode.IsLetter(rune(rest[n-1])) {
		p, ok := pos.Variant().Catalog.Piece(rest[n-1])
		if !ok {
			return chess.Move{}, moveError(pos, text, errors.ErrIllegalMove)
		}
		promo = p.Kind
		rest = rest[:n-1]
	}
	to, err := g.ParseSquare(rest)
	if err != nil {
		return chess.Move{}, moveError(pos, text, err)
	}

	m, err := pos.Find(from, to, promo)
	if err != nil {
		return chess.Move{}, withText(err, text)
	}
	return m, nil
}

// PlayUCI parses text in coordinate notation and plays it.
func PlayUCI(pos *engine.Position, text string) (*engine.Position, error) {
	m, err := ParseUCI(pos, text)
	if err != nil {
		return nil, err
	}
	next, err := pos.Play(m)
	if err != nil {
		return nil, withText(err, text)
	}
	return next, nil
}
