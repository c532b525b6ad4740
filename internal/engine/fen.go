package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// NewPositionFromFEN parses a standard chess FEN string.
func NewPositionFromFEN(fen string) (*Position, error) {
	return Standard.ParseFEN(fen)
}

// NewVariantPosition returns the variant's start position.
func NewVariantPosition(v *Variant) (*Position, error) {
	return v.ParseFEN(v.StartFEN)
}

// ParseFEN parses a six-field FEN string under the variant's rules. The
// castling field accepts KQkq, Shredder file letters or a mix of both.
func (v *Variant) ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    fen,
			Expected: "6 fields",
			Got:      strconv.Itoa(len(fields)),
		}
	}
	fail := func(field, expected, got string) error {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    fen,
			Field:    field,
			Expected: expected,
			Got:      got,
		}
	}

	board, err := v.parsePlacement(fields[0])
	if err != nil {
		return nil, fail("placement", err.Error(), fields[0])
	}

	var toMove chess.Colour
	switch fields[1] {
	case "w":
		toMove = chess.White
	case "b":
		toMove = chess.Black
	default:
		return nil, fail("side to move", "w or b", fields[1])
	}

	castling, err := v.parseCastling(board, fields[2])
	if err != nil {
		return nil, fail("castling", err.Error(), fields[2])
	}

	enPassant, err := v.parseEnPassant(board, toMove, fields[3])
	if err != nil {
		return nil, fail("en passant", err.Error(), fields[3])
	}

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil || halfMove < 0 {
		return nil, fail("halfmove clock", "a non-negative integer", fields[4])
	}
	fullMove, err := strconv.Atoi(fields[5])
	if err != nil || fullMove < 1 {
		return nil, fail("fullmove number", "a positive integer", fields[5])
	}

	if IsAttacked(board, board.King(toMove.Opposite()), toMove) {
		return nil, fail("placement", "the side not to move out of check", fields[0])
	}

	return &Position{
		variant:   v,
		board:     board,
		toMove:    toMove,
		castling:  castling,
		enPassant: enPassant,
		halfMove:  halfMove,
		fullMove:  fullMove,
	}, nil
}

func (v *Variant) parsePlacement(s string) (*chess.Board, error) {
	g := v.Geometry
	ranks := strings.Split(s, "/")
	if len(ranks) != g.Height {
		return nil, fmt.Errorf("%d ranks", g.Height)
	}

	b := chess.NewBoard(g)
	var kings [2]int
	for i, row := range ranks {
		rank := g.Height - 1 - i
		file := 0
		for j := 0; j < len(row); {
			c := row[j]
			if c >= '0' && c <= '9' {
				k := j
				for k < len(row) && row[k] >= '0' && row[k] <= '9' {
					k++
				}
				n, _ := strconv.Atoi(row[j:k])
				if n == 0 {
					return nil, fmt.Errorf("positive empty-square counts on rank %d", rank+1)
				}
				file += n
				j = k
				continue
			}
			p, ok := v.Catalog.Piece(c)
			if !ok {
				return nil, fmt.Errorf("piece letters, %q is unknown", c)
			}
			if file >= g.Width {
				return nil, fmt.Errorf("%d squares on rank %d", g.Width, rank+1)
			}
			if p.Kind == chess.King {
				kings[p.Colour]++
			}
			b.Set(g.Index(file, rank), p)
			file++
			j++
		}
		if file != g.Width {
			return nil, fmt.Errorf("%d squares on rank %d", g.Width, rank+1)
		}
	}

	for _, c := range chess.Colours {
		if kings[c] != 1 {
			return nil, fmt.Errorf("one %s king", strings.ToLower(c.String()))
		}
	}
	return b, nil
}

func (v *Variant) parseCastling(b *chess.Board, s string) (chess.CastlingRights, error) {
	rights := chess.NoCastling
	if s == "-" {
		return rights, nil
	}
	if !v.Castling {
		return rights, fmt.Errorf("- for %s", v.Name)
	}
	g := v.Geometry
	for i := 0; i < len(s); i++ {
		c := s[i]
		colour := chess.White
		if c >= 'a' && c <= 'z' {
			colour = chess.Black
		}
		rank := g.BackRank(colour)
		kingSq := b.King(colour)
		if g.Rank(kingSq) != rank {
			return rights, fmt.Errorf("the %s king on its back rank", strings.ToLower(colour.String()))
		}
		kingFile := g.File(kingSq)

		var file int
		switch lower := c | 0x20; {
		case lower == 'k':
			file = outermostRook(b, colour, chess.KingSide)
		case lower == 'q':
			file = outermostRook(b, colour, chess.QueenSide)
		case lower >= 'a' && int(lower-'a') < g.Width:
			file = int(lower - 'a')
		default:
			return rights, fmt.Errorf("KQkq or file letters, %q is unknown", c)
		}
		if file == chess.NoFile || file == kingFile {
			return rights, fmt.Errorf("a %s rook for %q", strings.ToLower(colour.String()), c)
		}
		if b.Get(g.Index(file, rank)) != (chess.Piece{Kind: chess.Rook, Colour: colour}) {
			return rights, fmt.Errorf("a %s rook on the %c-file", strings.ToLower(colour.String()), chess.FileLetter(file))
		}
		rights = rights.Add(colour, file)
	}
	return rights, nil
}

// outermostRook returns the file of colour's rook furthest from its king on
// the given wing of the back rank, or chess.NoFile.
func outermostRook(b *chess.Board, colour chess.Colour, wing chess.Wing) int {
	g := b.Geometry()
	rank := g.BackRank(colour)
	kingFile := g.File(b.King(colour))
	rook := chess.Piece{Kind: chess.Rook, Colour: colour}
	if wing == chess.KingSide {
		for f := g.Width - 1; f > kingFile; f-- {
			if b.Get(g.Index(f, rank)) == rook {
				return f
			}
		}
		return chess.NoFile
	}
	for f := 0; f < kingFile; f++ {
		if b.Get(g.Index(f, rank)) == rook {
			return f
		}
	}
	return chess.NoFile
}

func (v *Variant) parseEnPassant(b *chess.Board, toMove chess.Colour, s string) (chess.Square, error) {
	if s == "-" {
		return chess.NoSquare, nil
	}
	g := v.Geometry
	sq, err := g.ParseSquare(s)
	if err != nil {
		return chess.NoSquare, fmt.Errorf("a square or -")
	}
	// The target lies behind a pawn of the side that just moved.
	want := 2
	if toMove == chess.White {
		want = g.Height - 3
	}
	if g.Rank(sq) != want {
		return chess.NoSquare, fmt.Errorf("a square on rank %d", want+1)
	}
	if !b.IsEmpty(sq) {
		return chess.NoSquare, fmt.Errorf("an empty square")
	}
	return sq, nil
}

// FEN returns the position as a six-field FEN string.
func (p *Position) FEN() string {
	return p.fenPrefix() + " " + strconv.Itoa(p.halfMove) + " " + strconv.Itoa(p.fullMove)
}

// fenPrefix renders the placement, side, castling and en passant fields.
func (p *Position) fenPrefix() string {
	g := p.variant.Geometry
	var sb strings.Builder

	for rank := g.Height - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < g.Width; file++ {
			pc := p.board.Get(g.Index(file, rank))
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.variant.Catalog.Letter(pc))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if p.toMove == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(p.castlingString())
	sb.WriteByte(' ')
	sb.WriteString(g.SquareName(p.enPassant))
	return sb.String()
}

// castlingString writes White's rights before Black's, king side first.
// Rights on the outermost rook use K/Q letters unless the variant writes
// Shredder file letters.
func (p *Position) castlingString() string {
	if p.castling.IsEmpty() {
		return "-"
	}
	var sb strings.Builder
	for _, c := range chess.Colours {
		files := p.castling.Files(c)
		for i := len(files) - 1; i >= 0; i-- {
			sb.WriteByte(p.castlingLetter(c, files[i]))
		}
	}
	return sb.String()
}

func (p *Position) castlingLetter(c chess.Colour, file int) byte {
	letter := chess.FileLetter(file) - 'a' + 'A'
	if !p.variant.ShredderCastling {
		kingFile := p.variant.Geometry.File(p.board.King(c))
		wing := chess.WingOf(kingFile, file)
		if outermostRook(p.board, c, wing) == file {
			letter = 'K'
			if wing == chess.QueenSide {
				letter = 'Q'
			}
		}
	}
	if c == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}
