package engine_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

const (
	foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	stalemateFEN = "k7/8/2NN4/8/2K5/8/8/8 b - - 0 1"
	smotheredFEN = "6rk/5Npp/8/8/8/8/8/K7 b - - 0 1"
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
)

// coords renders moves as from-to pairs for comparison.
func coords(pos *engine.Position, moves []chess.Move) map[string]bool {
	g := pos.Geometry()
	out := make(map[string]bool, len(moves))
	for _, m := range moves {
		s := g.SquareName(m.From) + g.SquareName(m.To)
		if m.Promotion != chess.NoKind {
			s += string(pos.Variant().Catalog.KindLetter(m.Promotion))
		}
		out[s] = true
	}
	return out
}

func TestStartPositionLegalMoves(t *testing.T) {
	pos := engine.NewInitialPosition()
	moves := pos.LegalMoves()
	testutil.AssertEqual(t, len(moves), 20)
	testutil.AssertEqual(t, pos.Status(), engine.Active)
	testutil.AssertFalse(t, pos.IsCheck())

	got := coords(pos, moves)
	for _, want := range []string{"e2e4", "e2e3", "g1f3", "b1a3", "a2a4"} {
		testutil.AssertTrue(t, got[want], "missing %s", want)
	}
}

func TestLegalMovesNeverLeaveKingInCheck(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		kiwipeteFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
		foolsMateFEN,
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos := testutil.MustPosition(t, fen)
			mover := pos.SideToMove()
			for _, m := range pos.LegalMoves() {
				next := pos.Successor(m)
				b := next.Board()
				testutil.AssertFalse(t, engine.IsAttacked(b, b.King(mover), mover.Opposite()),
					"%s leaves the king attacked", m.Type)
			}
		})
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	pos := testutil.MustPosition(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	got := coords(pos, pos.LegalMoves())
	want := map[string]bool{"e1d1": true, "e1d2": true, "e1f1": true, "e1f2": true}
	testutil.AssertEqual(t, got, want)
}

func TestEnPassant(t *testing.T) {
	pos := testutil.MustPosition(t, "8/8/8/2pP4/8/8/8/k1K5 w - c6 0 1")
	m := testutil.MustFind(t, pos, "d5c6")
	testutil.AssertEqual(t, m.Type, chess.EnPassant)
	testutil.AssertEqual(t, m.CaptureSquare, testutil.MustSquare(t, "c5"))

	next, err := pos.Play(m)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, next.FEN(), "8/8/2P5/8/8/8/8/k1K5 b - - 0 1")
	testutil.AssertEqual(t, next.Status(), engine.Active)
}

func TestEnPassantTargetOnlyAfterDoubleStep(t *testing.T) {
	pos := testutil.MustPlay(t, engine.NewInitialPosition(), "e2e4")
	testutil.AssertEqual(t, pos.EnPassant(), testutil.MustSquare(t, "e3"))

	pos = testutil.MustPlay(t, pos, "g8f6")
	testutil.AssertEqual(t, pos.EnPassant(), chess.NoSquare)

	pos = testutil.MustPlay(t, pos, "e4e5", "d7d5")
	testutil.AssertEqual(t, pos.EnPassant(), testutil.MustSquare(t, "d6"))
	testutil.AssertTrue(t, coords(pos, pos.LegalMoves())["e5d6"], "en passant must be available")

	// Declining the capture forfeits it.
	pos = testutil.MustPlay(t, pos, "b1c3", "b8c6")
	testutil.AssertFalse(t, coords(pos, pos.LegalMoves())["e5d6"])
}

func TestPromotion(t *testing.T) {
	pos := testutil.MustPosition(t, "8/4P3/8/8/8/8/8/k1K5 w - - 0 1")
	got := coords(pos, pos.LegalMoves())
	want := map[string]bool{
		"e7e8Q": true, "e7e8R": true, "e7e8B": true, "e7e8N": true,
		"c1c2": true, "c1d1": true, "c1d2": true,
	}
	testutil.AssertEqual(t, got, want)

	next := testutil.MustPlay(t, pos, "e7e8n")
	testutil.AssertEqual(t, next.Piece(testutil.MustSquare(t, "e8")), chess.W(chess.Knight))

	// No promotion kind given picks the queen.
	m, err := pos.Find(testutil.MustSquare(t, "e7"), testutil.MustSquare(t, "e8"), chess.NoKind)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Promotion, chess.Queen)
}

func TestCastling(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want map[string]bool
	}{
		{
			name: "both wings",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			want: map[string]bool{"e1g1": true, "e1c1": true},
		},
		{
			name: "transit square attacked",
			fen:  "4k3/8/8/8/8/8/5r2/R3K2R w KQ - 0 1",
			want: map[string]bool{"e1c1": true},
		},
		{
			name: "rook square attacked does not matter",
			fen:  "4k3/8/8/8/8/8/1r6/R3K2R w KQ - 0 1",
			want: map[string]bool{"e1g1": true, "e1c1": true},
		},
		{
			name: "blocked by a piece",
			fen:  "4k3/8/8/8/8/8/8/RN2K1NR w KQ - 0 1",
			want: map[string]bool{},
		},
		{
			name: "in check",
			fen:  "4k3/4r3/8/8/8/8/8/R3K2R w KQ - 0 1",
			want: map[string]bool{},
		},
		{
			name: "no rights",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1",
			want: map[string]bool{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustPosition(t, tt.fen)
			got := map[string]bool{}
			g := pos.Geometry()
			for _, m := range pos.LegalMoves() {
				if m.Type == chess.Castling {
					got[g.SquareName(m.From)+g.SquareName(m.To)] = true
				}
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestCastlingMovesRook(t *testing.T) {
	pos := testutil.MustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	next := testutil.MustPlay(t, pos, "e1g1")
	testutil.AssertEqual(t, next.FEN(), "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1")

	next = testutil.MustPlay(t, next, "e8c8")
	testutil.AssertEqual(t, next.FEN(), "2kr3r/8/8/8/8/8/8/R4RK1 w - - 2 2")
}

func TestCastlingRightsUpdates(t *testing.T) {
	start := testutil.MustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	tests := []struct {
		name  string
		moves []string
		want  string
	}{
		{"king move drops both", []string{"e1e2"}, "kq"},
		{"rook move drops one file", []string{"a1a2"}, "Kkq"},
		{"rook capture drops both files", []string{"h1h8"}, "Qq"},
		{"rook returning does not restore", []string{"h1h2", "a8a7", "h2h1"}, "Qk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustPlay(t, start, tt.moves...)
			testutil.AssertEqual(t, strings.Fields(pos.FEN())[2], tt.want)
		})
	}
}

func TestChess960Castling(t *testing.T) {
	pos := testutil.MustVariantPosition(t, engine.Chess960, "k7/8/8/8/8/8/8/2R3KR b CH - 0 1")
	testutil.AssertEqual(t, strings.Fields(pos.FEN())[2], "HC")
	pos = testutil.MustPlay(t, pos, "a8b8")

	var rookFiles []string
	for _, m := range pos.LegalMoves() {
		if m.Type == chess.Castling {
			rookFiles = append(rookFiles, pos.Geometry().SquareName(m.RookFrom))
		}
	}
	testutil.AssertEqual(t, rookFiles, []string{"c1", "h1"})

	// The king already stands on its castled square; the move is named by
	// the rook it castles with.
	kingSide := testutil.MustPlay(t, pos, "g1h1")
	testutil.AssertEqual(t, kingSide.FEN(), "1k6/8/8/8/8/8/8/2R2RK1 b - - 2 2")

	queenSide := testutil.MustPlay(t, pos, "g1c1")
	testutil.AssertEqual(t, queenSide.FEN(), "1k6/8/8/8/8/8/8/2KR3R b - - 2 2")
}

func TestChess960CastlingKingBesideRook(t *testing.T) {
	pos := testutil.MustVariantPosition(t, engine.Chess960, "1k6/8/8/8/8/8/8/RK5R w HA - 0 1")
	next := testutil.MustPlay(t, pos, "b1a1")
	testutil.AssertEqual(t, next.FEN(), "1k6/8/8/8/8/8/8/2KR3R b - - 1 1")

	next = testutil.MustPlay(t, pos, "b1h1")
	testutil.AssertEqual(t, next.FEN(), "1k6/8/8/8/8/8/8/R4RK1 b - - 1 1")
}

func TestPlayRejectsIllegalMove(t *testing.T) {
	pos := engine.NewInitialPosition()
	illegal := chess.Move{
		Type:          chess.Normal,
		From:          testutil.MustSquare(t, "e2"),
		To:            testutil.MustSquare(t, "e5"),
		Piece:         chess.W(chess.Pawn),
		CaptureSquare: chess.NoSquare,
	}
	next, err := pos.Play(illegal)
	testutil.AssertNil(t, next)
	testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrIllegalMove), "got %v", err)

	var me *chesserrors.MoveError
	testutil.AssertTrue(t, errors.As(err, &me))
	testutil.AssertEqual(t, me.From, "e2")
	testutil.AssertEqual(t, me.To, "e5")
	testutil.AssertEqual(t, me.Ply, 1)

	_, err = pos.PlayMove(testutil.MustSquare(t, "e1"), testutil.MustSquare(t, "e2"), chess.NoKind)
	testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrIllegalMove))
}

func TestPlayRejectsMovesWhenGameIsOver(t *testing.T) {
	pos := testutil.MustPosition(t, "4k3/8/8/8/8/8/8/4K2R w - - 100 80")
	testutil.AssertEqual(t, pos.Status(), engine.FiftyMoveDraw)
	testutil.AssertTrue(t, len(pos.LegalMoves()) > 0, "a drawn position still lists its moves")

	_, err := pos.PlayMove(testutil.MustSquare(t, "e1"), testutil.MustSquare(t, "d1"), chess.NoKind)
	testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrGameOver), "got %v", err)
}

func TestPlayLeavesPositionUnchanged(t *testing.T) {
	pos := testutil.MustPosition(t, kiwipeteFEN)
	before := pos.FEN()
	for _, m := range pos.LegalMoves() {
		next, err := pos.Play(m)
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, next.Prev() == pos)
		last, ok := next.LastMove()
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, last, m)
	}
	testutil.AssertEqual(t, pos.FEN(), before)
	_, ok := pos.LastMove()
	testutil.AssertFalse(t, ok)
}

func TestClocks(t *testing.T) {
	pos := engine.NewInitialPosition()
	steps := []struct {
		move     string
		halfMove int
		fullMove int
	}{
		{"g1f3", 1, 1},
		{"g8f6", 2, 2},
		{"e2e4", 0, 2},
		{"f6e4", 0, 3},
		{"b1c3", 1, 3},
		{"e4c3", 0, 4},
	}
	for _, s := range steps {
		pos = testutil.MustPlay(t, pos, s.move)
		testutil.AssertEqual(t, pos.HalfMoveClock(), s.halfMove, "halfmove after %s", s.move)
		testutil.AssertEqual(t, pos.FullMoveNumber(), s.fullMove, "fullmove after %s", s.move)
	}
	testutil.AssertEqual(t, pos.Ply(), len(steps))
}

func TestShatranj(t *testing.T) {
	pos, err := engine.NewVariantPosition(engine.Shatranj)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(pos.LegalMoves()), 16)
	testutil.AssertFalse(t, coords(pos, pos.LegalMoves())["e2e4"], "no double step")
	testutil.AssertTrue(t, coords(pos, pos.LegalMoves())["c1e3"], "alfil leaps over pawns")

	promo := testutil.MustVariantPosition(t, engine.Shatranj, "8/4P3/8/8/8/8/8/k1K5 w - - 0 1")
	got := coords(promo, promo.LegalMoves())
	want := map[string]bool{"e7e8Q": true, "c1c2": true, "c1d1": true, "c1d2": true}
	testutil.AssertEqual(t, got, want)

	next := testutil.MustPlay(t, promo, "e7e8")
	testutil.AssertEqual(t, next.Piece(testutil.MustSquare(t, "e8")), chess.W(chess.Ferz))
}

func TestPseudoLegalTargets(t *testing.T) {
	pos := testutil.MustPosition(t, "4k3/8/8/8/3Q4/8/8/4K3 w - - 0 1")
	b := pos.Board()
	targets := engine.PseudoLegalTargets(pos.Variant(), b, testutil.MustSquare(t, "d4"), chess.NoSquare)
	testutil.AssertEqual(t, len(targets), 27)

	attacks := engine.Attacks(b, testutil.MustSquare(t, "e1"))
	testutil.AssertEqual(t, len(attacks), 5)
}
