// Package processing analyzes games: it replays move lists and reports
// features of the main line such as captures, checks, promotions and the
// draw rules it reached.
package processing

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/game"
	"github.com/lgbarn/chesscore-go/internal/hashing"
)

// GameAnalysis holds analysis results from walking a game's main line.
type GameAnalysis struct {
	Plies      int
	Captures   int
	Checks     int
	Castles    int
	Promotions int

	HasUnderpromotion       bool
	HasFiftyMoveRule        bool
	HasRepetition           bool
	HasInsufficientMaterial bool

	// MaxRepetition is the highest repetition count of any position.
	MaxRepetition int

	// Positions holds the signature hash of each position, root first.
	Positions []uint64

	// DistinctPositions counts positions with different signatures.
	DistinctPositions int
}

// FiftyMoveTriggered returns true if the game reached the fifty-move rule.
func (ga *GameAnalysis) FiftyMoveTriggered() bool {
	return ga.HasFiftyMoveRule
}

// RepetitionDetected returns true if some position occurred three times.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// UnderpromotionFound returns true if any pawn promoted to something other
// than the variant's first promotion choice.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// AnalyzeGame walks the main line of g from the root.
func AnalyzeGame(g *game.Game) *GameAnalysis {
	analysis := &GameAnalysis{}
	seen := hashing.NewTable(0)

	record := func(pos *engine.Position) {
		analysis.Positions = append(analysis.Positions, pos.SignatureHash())
		seen.CheckAndAdd(pos.Signature())
		if n := pos.RepetitionCount(); n > analysis.MaxRepetition {
			analysis.MaxRepetition = n
		}
		if pos.HalfMoveClock() >= engine.FiftyMovePlies {
			analysis.HasFiftyMoveRule = true
		}
	}

	n := g.Root()
	record(n.Position)
	for len(n.Children) > 0 {
		before := n.Position
		n = n.Children[0]
		move := n.Move
		analysis.Plies++

		if move.IsCapture() {
			analysis.Captures++
		}
		if move.Type == chess.Castling {
			analysis.Castles++
		}
		if move.Type == chess.Promotion {
			analysis.Promotions++
			if move.Promotion != before.Variant().Catalog.Promotions()[0] {
				analysis.HasUnderpromotion = true
			}
		}
		if n.Position.IsCheck() {
			analysis.Checks++
		}
		record(n.Position)
	}

	analysis.HasRepetition = analysis.MaxRepetition >= engine.RepetitionLimit
	analysis.HasInsufficientMaterial = n.Position.IsInsufficientMaterial()
	analysis.DistinctPositions = seen.UniqueCount()
	return analysis
}

// ReplayGame plays moves from start and returns the game. Each move is
// read as SAN and, failing that, as UCI coordinates; the SAN error is
// returned when both fail.
func ReplayGame(start *engine.Position, moves []string) (*game.Game, error) {
	g := game.New(start)
	for _, mv := range moves {
		if err := g.Play(mv); err != nil {
			if g.PlayUCI(mv) != nil {
				return g, err
			}
		}
	}
	return g, nil
}

// CountPlies counts the moves of the main line.
func CountPlies(g *game.Game) int {
	return len(g.Moves())
}
