package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree depth plies deep.
// Draw rules are ignored; only positions without legal moves end a branch.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(p.successor(m), depth-1)
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide runs Perft to depth-1 below each legal move of p, in legal move order.
func Divide(p *Position, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	moves := p.LegalMoves()
	out := make([]DivideEntry, len(moves))
	for i, m := range moves {
		out[i] = DivideEntry{Move: m, Nodes: Perft(p.successor(m), depth-1)}
	}
	return out
}

// Successor returns the position after m without checking legality or
// game status. It is meant for tree walks over moves taken from LegalMoves.
func (p *Position) Successor(m chess.Move) *Position {
	return p.successor(m)
}
