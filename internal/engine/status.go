package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/hashing"
)

// Status classifies a position. Check is not a status; see Position.IsCheck.
type Status int

const (
	Active Status = iota
	Checkmate
	Stalemate
	FiftyMoveDraw
	TripleRepetitionDraw
	InsufficientMaterialDraw
)

// FiftyMovePlies is the halfmove clock value at which the game is drawn.
const FiftyMovePlies = 100

// RepetitionLimit is how often a signature must occur to draw.
const RepetitionLimit = 3

var statusNames = [...]string{
	Active:                   "active",
	Checkmate:                "checkmate",
	Stalemate:                "stalemate",
	FiftyMoveDraw:            "draw by fifty-move rule",
	TripleRepetitionDraw:     "triple repetition",
	InsufficientMaterialDraw: "insufficient material",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// IsTerminal reports whether no further moves may be played.
func (s Status) IsTerminal() bool {
	return s != Active
}

// IsDraw reports whether s is one of the drawn outcomes.
func (s Status) IsDraw() bool {
	switch s {
	case Stalemate, FiftyMoveDraw, TripleRepetitionDraw, InsufficientMaterialDraw:
		return true
	}
	return false
}

// Status classifies the position. The checks run in a fixed order and the
// first that applies wins: no legal moves, the fifty-move rule,
// insufficient material, threefold repetition.
func (p *Position) Status() Status {
	p.statusOnce.Do(func() {
		p.status = p.classify()
	})
	return p.status
}

func (p *Position) classify() Status {
	if len(p.LegalMoves()) == 0 {
		if p.IsCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if p.halfMove >= FiftyMovePlies {
		return FiftyMoveDraw
	}
	if p.IsInsufficientMaterial() {
		return InsufficientMaterialDraw
	}
	if p.RepetitionCount() >= RepetitionLimit {
		return TripleRepetitionDraw
	}
	return Active
}

// IsCheckmate reports whether the side to move is mated.
func (p *Position) IsCheckmate() bool {
	return p.Status() == Checkmate
}

// IsStalemate reports whether the side to move has no moves and is not in check.
func (p *Position) IsStalemate() bool {
	return p.Status() == Stalemate
}

// IsInsufficientMaterial applies the rule-book approximation: a lone king
// against a king with one knight, or with bishops all on one square colour,
// is drawn; so is one knight each, or one bishop each on the same colour.
// Every other distribution counts as sufficient.
func (p *Position) IsInsufficientMaterial() bool {
	g := p.variant.Geometry
	var pieces [2][]chess.Square
	for _, c := range chess.Colours {
		for _, sq := range p.board.Squares(c) {
			if p.board.Get(sq).Kind != chess.King {
				pieces[c] = append(pieces[c], sq)
			}
		}
	}
	white, black := pieces[chess.White], pieces[chess.Black]

	switch {
	case len(white) == 0:
		return p.minorOnly(g, black)
	case len(black) == 0:
		return p.minorOnly(g, white)
	case len(white) == 1 && len(black) == 1:
		wk, bk := p.board.Get(white[0]).Kind, p.board.Get(black[0]).Kind
		if wk == chess.Knight && bk == chess.Knight {
			return true
		}
		return wk == chess.Bishop && bk == chess.Bishop && g.IsLight(white[0]) == g.IsLight(black[0])
	}
	return false
}

// minorOnly reports whether squares hold exactly one knight or only bishops
// sharing a square colour. An empty set qualifies.
func (p *Position) minorOnly(g chess.Geometry, squares []chess.Square) bool {
	if len(squares) == 1 && p.board.Get(squares[0]).Kind == chess.Knight {
		return true
	}
	for _, sq := range squares {
		if p.board.Get(sq).Kind != chess.Bishop || g.IsLight(sq) != g.IsLight(squares[0]) {
			return false
		}
	}
	return true
}

// RepetitionCount returns how many positions in the history, this one
// included, share this position's signature. The scan stops at the first
// position reached by a capture or pawn move, since nothing before it can
// recur.
func (p *Position) RepetitionCount() int {
	sig, key := p.signature()
	count := 0
	for q := p; q != nil; q = q.prev {
		if qsig, qkey := q.signature(); qkey == key && qsig == sig {
			count++
		}
		if q.halfMove == 0 {
			break
		}
	}
	return count
}

// Signature identifies the position for repetition: placement, side to
// move, castling rights and en passant target. Clocks are not included.
func (p *Position) Signature() string {
	sig, _ := p.signature()
	return sig
}

// SignatureHash returns the xxhash of Signature.
func (p *Position) SignatureHash() uint64 {
	_, key := p.signature()
	return key
}

func (p *Position) signature() (string, uint64) {
	p.sigOnce.Do(func() {
		p.sig = p.fenPrefix()
		p.sigHash = hashing.Sum(p.sig)
	})
	return p.sig, p.sigHash
}
