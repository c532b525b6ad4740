package engine

import (
	"sync"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Position is an immutable snapshot of a game: board, side to move,
// castling rights, en passant target and clocks, plus a link to the
// position it was reached from. Derived data is computed on first use and
// cached; a Position is safe for concurrent readers.
type Position struct {
	variant   *Variant
	board     *chess.Board
	toMove    chess.Colour
	castling  chess.CastlingRights
	enPassant chess.Square
	halfMove  int
	fullMove  int

	// prev is read only; it exists for repetition scanning and history.
	prev     *Position
	lastMove chess.Move
	ply      int

	legalOnce sync.Once
	legal     []chess.Move

	checkOnce sync.Once
	check     bool

	statusOnce sync.Once
	status     Status

	sigOnce sync.Once
	sig     string
	sigHash uint64
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() *Position {
	pos, err := Standard.ParseFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

// Variant returns the rules this position is played under.
func (p *Position) Variant() *Variant {
	return p.variant
}

// Geometry returns the board dimensions.
func (p *Position) Geometry() chess.Geometry {
	return p.variant.Geometry
}

// Piece returns the piece on sq.
func (p *Position) Piece(sq chess.Square) chess.Piece {
	return p.board.Get(sq)
}

// Board returns a copy of the board.
func (p *Position) Board() *chess.Board {
	return p.board.Clone()
}

// King returns the square of colour's king.
func (p *Position) King(c chess.Colour) chess.Square {
	return p.board.King(c)
}

// SideToMove returns the colour to play.
func (p *Position) SideToMove() chess.Colour {
	return p.toMove
}

// CastlingRights returns the remaining castling rights.
func (p *Position) CastlingRights() chess.CastlingRights {
	return p.castling
}

// EnPassant returns the en passant target square, or chess.NoSquare.
func (p *Position) EnPassant() chess.Square {
	return p.enPassant
}

// HalfMoveClock returns the number of plies since the last capture or pawn move.
func (p *Position) HalfMoveClock() int {
	return p.halfMove
}

// FullMoveNumber returns the move number, incremented after Black plays.
func (p *Position) FullMoveNumber() int {
	return p.fullMove
}

// Prev returns the position this one was reached from, or nil.
func (p *Position) Prev() *Position {
	return p.prev
}

// LastMove returns the move that produced this position. ok is false for a
// position built from FEN.
func (p *Position) LastMove() (m chess.Move, ok bool) {
	return p.lastMove, p.prev != nil
}

// Ply returns the number of moves played since the root position.
func (p *Position) Ply() int {
	return p.ply
}

// IsCheck reports whether the side to move is in check.
func (p *Position) IsCheck() bool {
	p.checkOnce.Do(func() {
		king := p.board.King(p.toMove)
		p.check = king != chess.NoSquare && IsAttacked(p.board, king, p.toMove.Opposite())
	})
	return p.check
}

// LegalMoves returns every legal move. The slice is shared and must not
// be modified.
func (p *Position) LegalMoves() []chess.Move {
	p.legalOnce.Do(func() {
		p.legal = p.generateLegalMoves()
	})
	return p.legal
}

// generateLegalMoves keeps each pseudo-legal move that does not leave the
// mover's king attacked, testing it on one scratch board, then adds castling.
func (p *Position) generateLegalMoves() []chess.Move {
	side := p.toMove
	enemy := side.Opposite()
	pseudo := pseudoLegalMoves(p.variant, p.board, side, p.enPassant)
	scratch := p.board.Clone()

	legal := make([]chess.Move, 0, len(pseudo))
	for _, m := range pseudo {
		m.Apply(scratch)
		king := scratch.King(side)
		if king == chess.NoSquare || !IsAttacked(scratch, king, enemy) {
			legal = append(legal, m)
		}
		m.Undo(scratch)
	}

	if !p.IsCheck() {
		legal = append(legal, castlingMoves(p.variant, p.board, scratch, side, p.castling)...)
	}
	return legal
}

// IsLegal reports whether m is in the legal move list.
func (p *Position) IsLegal(m chess.Move) bool {
	for _, lm := range p.LegalMoves() {
		if lm == m {
			return true
		}
	}
	return false
}

// Play returns the position after m. m must be one of LegalMoves; anything
// else, or any move once the game is over, is rejected and p is unchanged.
func (p *Position) Play(m chess.Move) (*Position, error) {
	if !p.IsLegal(m) {
		return nil, p.moveError(errors.ErrIllegalMove, m.From, m.To, m.Promotion)
	}
	if s := p.Status(); s.IsTerminal() {
		return nil, p.moveError(errors.Wrapf(errors.ErrGameOver, "%s", s), m.From, m.To, m.Promotion)
	}
	return p.successor(m), nil
}

// Find returns the legal move from from to to. For promotions promo picks
// the new kind; chess.NoKind selects the variant's first promotion kind.
// A castling move may be named by the king's destination or by the
// rook's square.
func (p *Position) Find(from, to chess.Square, promo chess.Kind) (chess.Move, error) {
	if promo == chess.NoKind {
		if promos := p.variant.Catalog.Promotions(); len(promos) > 0 {
			promo = promos[0]
		}
	}
	moves := p.LegalMoves()
	for _, m := range moves {
		if m.Type == chess.Castling || m.From != from || m.To != to {
			continue
		}
		if m.Type == chess.Promotion && m.Promotion != promo {
			continue
		}
		return m, nil
	}
	for _, m := range moves {
		if m.Type == chess.Castling && m.From == from && (m.To == to || m.RookFrom == to) {
			return m, nil
		}
	}
	return chess.Move{}, p.moveError(errors.ErrIllegalMove, from, to, promo)
}

// PlayMove finds and plays the move from from to to.
func (p *Position) PlayMove(from, to chess.Square, promo chess.Kind) (*Position, error) {
	m, err := p.Find(from, to, promo)
	if err != nil {
		return nil, err
	}
	return p.Play(m)
}

func (p *Position) moveError(err error, from, to chess.Square, promo chess.Kind) error {
	g := p.variant.Geometry
	me := &errors.MoveError{
		Err:  err,
		From: g.SquareName(from),
		To:   g.SquareName(to),
		Ply:  p.ply + 1,
	}
	if promo != chess.NoKind {
		me.Promotion = p.variant.Catalog.KindLetter(promo)
	}
	return me
}

// successor builds the position after m without checking legality.
func (p *Position) successor(m chess.Move) *Position {
	g := p.variant.Geometry
	mover := p.toMove
	enemy := mover.Opposite()

	board := p.board.Clone()
	m.Apply(board)

	castling := p.castling
	switch m.Piece.Kind {
	case chess.King:
		castling = castling.WithoutColour(mover)
	case chess.Rook:
		if g.Rank(m.From) == g.BackRank(mover) {
			castling = castling.Without(mover, g.File(m.From))
		}
	}
	if m.Captured.Kind == chess.Rook && g.Rank(m.CaptureSquare) == g.BackRank(enemy) {
		castling = castling.Without(enemy, g.File(m.CaptureSquare))
	}

	enPassant := chess.NoSquare
	if m.Type == chess.DoubleStep {
		enPassant = g.Index(g.File(m.From), (g.Rank(m.From)+g.Rank(m.To))/2)
	}

	halfMove := p.halfMove + 1
	if m.Piece.Kind == chess.Pawn || m.IsCapture() {
		halfMove = 0
	}
	fullMove := p.fullMove
	if mover == chess.Black {
		fullMove++
	}

	return &Position{
		variant:   p.variant,
		board:     board,
		toMove:    enemy,
		castling:  castling,
		enPassant: enPassant,
		halfMove:  halfMove,
		fullMove:  fullMove,
		prev:      p,
		lastMove:  m,
		ply:       p.ply + 1,
	}
}
