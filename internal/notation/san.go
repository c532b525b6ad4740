// Package notation converts between moves and their text forms: standard
// algebraic notation (SAN) and UCI coordinate notation. Both directions work
// against a position's legal move list, so any text that parses names a
// legal move.
package notation

import (
	stderrors "errors"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// SAN returns the standard algebraic notation for m, which must be legal
// in pos. Check and mate suffixes are included.
func SAN(pos *engine.Position, m chess.Move) string {
	var sb strings.Builder
	g := pos.Geometry()
	cat := pos.Variant().Catalog

	switch {
	case m.Type == chess.Castling:
		sb.WriteString(chess.WingOf(g.File(m.From), g.File(m.RookFrom)).String())
	case m.Piece.Kind == chess.Pawn:
		if m.IsCapture() {
			sb.WriteByte(chess.FileLetter(g.File(m.From)))
			sb.WriteByte('x')
		}
		sb.WriteString(g.SquareName(m.To))
		if m.Type == chess.Promotion {
			sb.WriteByte('=')
			sb.WriteByte(cat.KindLetter(m.Promotion))
		}
	default:
		sb.WriteByte(cat.KindLetter(m.Piece.Kind))
		sb.WriteString(disambiguation(pos, m))
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(g.SquareName(m.To))
	}

	next := pos.Successor(m)
	if next.IsCheck() {
		if len(next.LegalMoves()) == 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('+')
		}
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell m
// apart from other legal moves of the same kind to the same square.
func disambiguation(pos *engine.Position, m chess.Move) string {
	g := pos.Geometry()
	var rivals, sameFile, sameRank int
	for _, other := range pos.LegalMoves() {
		if other.Type == chess.Castling || other.From == m.From || other.To != m.To || other.Piece != m.Piece {
			continue
		}
		rivals++
		if g.File(other.From) == g.File(m.From) {
			sameFile++
		}
		if g.Rank(other.From) == g.Rank(m.From) {
			sameRank++
		}
	}

	file := string(chess.FileLetter(g.File(m.From)))
	rank := strconv.Itoa(g.Rank(m.From) + 1)
	switch {
	case rivals == 0:
		return ""
	case sameFile == 0:
		return file
	case sameRank == 0:
		return rank
	default:
		return file + rank
	}
}

// isCapture returns true if c is a capture or separator character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isSuffix returns true if c is a check indicator or annotation glyph.
func isSuffix(c byte) bool {
	return c == '+' || c == '#' || c == '!' || c == '?'
}

func isFile(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// sanQuery is move text broken into the parts that constrain a legal move.
type sanQuery struct {
	kind     chess.Kind
	castle   bool
	wing     chess.Wing
	fromFile int
	fromRank int
	to       chess.Square
	promo    chess.Kind
}

// ParseSAN finds the legal move in pos written as text. It accepts 0-0 for
// O-O, an optional capture mark, and trailing check or annotation marks.
// Text that matches no legal move fails with errors.ErrIllegalMove; text
// that matches several fails with errors.ErrAmbiguousMove.
func ParseSAN(pos *engine.Position, text string) (chess.Move, error) {
	q, ok := decodeSAN(pos, text)
	if !ok {
		return chess.Move{}, moveError(pos, text, errors.Wrap(errors.ErrIllegalMove, "unreadable move text"))
	}

	g := pos.Geometry()
	var found []chess.Move
	for _, m := range pos.LegalMoves() {
		if q.castle {
			if m.Type == chess.Castling && chess.WingOf(g.File(m.From), g.File(m.RookFrom)) == q.wing {
				found = append(found, m)
			}
			continue
		}
		if m.Type == chess.Castling || m.Piece.Kind != q.kind || m.To != q.to {
			continue
		}
		if q.fromFile != chess.NoFile && g.File(m.From) != q.fromFile {
			continue
		}
		if q.fromRank >= 0 && g.Rank(m.From) != q.fromRank {
			continue
		}
		if m.Promotion != q.promo {
			continue
		}
		found = append(found, m)
	}

	switch len(found) {
	case 0:
		return chess.Move{}, moveError(pos, text, errors.ErrIllegalMove)
	case 1:
		return found[0], nil
	default:
		return chess.Move{}, moveError(pos, text, errors.ErrAmbiguousMove)
	}
}

// PlaySAN parses text and plays it.
func PlaySAN(pos *engine.Position, text string) (*engine.Position, error) {
	m, err := ParseSAN(pos, text)
	if err != nil {
		return nil, err
	}
	next, err := pos.Play(m)
	if err != nil {
		return nil, withText(err, text)
	}
	return next, nil
}

// decodeSAN splits move text into its parts without consulting the board
// beyond its geometry and piece letters.
func decodeSAN(pos *engine.Position, text string) (sanQuery, bool) {
	q := sanQuery{kind: chess.Pawn, fromFile: chess.NoFile, fromRank: -1, to: chess.NoSquare}
	s := strings.TrimSpace(text)
	for len(s) > 0 && isSuffix(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	if s == "" {
		return q, false
	}

	if isCastlingChar(s[0]) {
		return decodeCastling(q, s)
	}

	cat := pos.Variant().Catalog
	g := pos.Geometry()

	if c := s[0]; c >= 'A' && c <= 'Z' {
		p, ok := cat.Piece(c)
		if !ok {
			return q, false
		}
		q.kind = p.Kind
		s = s[1:]
	}

	// Promotion: a trailing piece letter, optionally after '='.
	if n := len(s); n > 0 && q.kind == chess.Pawn {
		last := s[n-1]
		if last >= 'A' && last <= 'Z' || n > 1 && s[n-2] == '=' {
			p, ok := cat.Piece(last)
			if !ok || p.Kind == chess.Pawn || p.Kind == chess.King {
				return q, false
			}
			q.promo = p.Kind
			s = strings.TrimSuffix(s[:n-1], "=")
		}
	}

	// Destination: the last file letter and the digits after it.
	i := len(s)
	for i > 0 && isDigit(s[i-1]) {
		i--
	}
	if i == len(s) || i == 0 || !isFile(s[i-1]) {
		return q, false
	}
	to, err := g.ParseSquare(s[i-1:])
	if err != nil {
		return q, false
	}
	q.to = to
	s = s[:i-1]

	if n := len(s); n > 0 && isCapture(s[n-1]) {
		s = s[:n-1]
	}

	// What remains disambiguates the origin: a file, a rank, or both.
	if len(s) > 0 && isFile(s[0]) {
		q.fromFile = int(s[0] - 'a')
		s = s[1:]
	}
	if len(s) > 0 {
		r, err := strconv.Atoi(s)
		if err != nil || r < 1 || r > g.Height {
			return q, false
		}
		q.fromRank = r - 1
	}
	return q, true
}

// decodeCastling reads O-O or O-O-O, with 0 or o standing in for O and the
// dashes optional.
func decodeCastling(q sanQuery, s string) (sanQuery, bool) {
	count := 0
	for i := 0; i < len(s); i++ {
		switch {
		case isCastlingChar(s[i]):
			count++
		case s[i] == '-':
		default:
			return q, false
		}
	}
	q.castle = true
	switch count {
	case 2:
		q.wing = chess.KingSide
	case 3:
		q.wing = chess.QueenSide
	default:
		return q, false
	}
	return q, true
}

func moveError(pos *engine.Position, text string, err error) error {
	return &errors.MoveError{Err: err, MoveText: text, Ply: pos.Ply() + 1}
}

// withText fills in the move text on a MoveError returned by the engine.
func withText(err error, text string) error {
	var me *errors.MoveError
	if stderrors.As(err, &me) && me.MoveText == "" {
		me.MoveText = text
	}
	return err
}
