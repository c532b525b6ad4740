package chess_test

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestMoveApplyUndo(t *testing.T) {
	setup := func(t *testing.T) *chess.Board {
		b := chess.NewBoard(g)
		b.Set(sq(t, "e1"), chess.W(chess.King))
		b.Set(sq(t, "h1"), chess.W(chess.Rook))
		b.Set(sq(t, "e8"), chess.B(chess.King))
		b.Set(sq(t, "d5"), chess.W(chess.Pawn))
		b.Set(sq(t, "c5"), chess.B(chess.Pawn))
		b.Set(sq(t, "b7"), chess.W(chess.Pawn))
		b.Set(sq(t, "a8"), chess.B(chess.Rook))
		return b
	}

	tests := []struct {
		name  string
		move  func(t *testing.T) chess.Move
		check map[string]chess.Piece
	}{
		{
			name: "castling",
			move: func(t *testing.T) chess.Move {
				return chess.Move{
					Type: chess.Castling, From: sq(t, "e1"), To: sq(t, "g1"),
					Piece: chess.W(chess.King), CaptureSquare: chess.NoSquare,
					RookFrom: sq(t, "h1"), RookTo: sq(t, "f1"),
				}
			},
			check: map[string]chess.Piece{
				"e1": chess.NoPiece, "h1": chess.NoPiece,
				"g1": chess.W(chess.King), "f1": chess.W(chess.Rook),
			},
		},
		{
			name: "en passant",
			move: func(t *testing.T) chess.Move {
				return chess.Move{
					Type: chess.EnPassant, From: sq(t, "d5"), To: sq(t, "c6"),
					Piece: chess.W(chess.Pawn), Captured: chess.B(chess.Pawn), CaptureSquare: sq(t, "c5"),
				}
			},
			check: map[string]chess.Piece{
				"d5": chess.NoPiece, "c5": chess.NoPiece, "c6": chess.W(chess.Pawn),
			},
		},
		{
			name: "capturing promotion",
			move: func(t *testing.T) chess.Move {
				return chess.Move{
					Type: chess.Promotion, From: sq(t, "b7"), To: sq(t, "a8"),
					Piece: chess.W(chess.Pawn), Captured: chess.B(chess.Rook), CaptureSquare: sq(t, "a8"),
					Promotion: chess.Knight,
				}
			},
			check: map[string]chess.Piece{
				"b7": chess.NoPiece, "a8": chess.W(chess.Knight),
			},
		},
		{
			name: "king move",
			move: func(t *testing.T) chess.Move {
				return chess.Move{
					Type: chess.Normal, From: sq(t, "e8"), To: sq(t, "d7"),
					Piece: chess.B(chess.King), CaptureSquare: chess.NoSquare,
				}
			},
			check: map[string]chess.Piece{
				"e8": chess.NoPiece, "d7": chess.B(chess.King),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setup(t)
			before := b.Clone()
			m := tt.move(t)

			m.Apply(b)
			for name, want := range tt.check {
				testutil.AssertEqual(t, b.Get(sq(t, name)), want, "after Apply on %s", name)
			}
			if m.Piece.Kind == chess.King {
				testutil.AssertEqual(t, b.King(m.Piece.Colour), m.To)
			}

			m.Undo(b)
			testutil.AssertTrue(t, b.Equal(before), "Undo must restore the board")
			testutil.AssertEqual(t, b.King(chess.White), before.King(chess.White))
			testutil.AssertEqual(t, b.King(chess.Black), before.King(chess.Black))
		})
	}
}

func TestMoveFlags(t *testing.T) {
	quiet := chess.Move{Type: chess.Normal, Piece: chess.W(chess.Knight)}
	testutil.AssertFalse(t, quiet.IsCapture())
	testutil.AssertFalse(t, quiet.IsPromotion())
	testutil.AssertFalse(t, quiet.IsCastle())

	ep := chess.Move{Type: chess.EnPassant, Captured: chess.B(chess.Pawn)}
	testutil.AssertTrue(t, ep.IsCapture())
	testutil.AssertEqual(t, ep.Type.String(), "EnPassant")
}

func TestCastlingRights(t *testing.T) {
	cr := chess.NoCastling.Add(chess.White, 7).Add(chess.White, 0).Add(chess.Black, 2)
	testutil.AssertTrue(t, cr.Has(chess.White, 7))
	testutil.AssertTrue(t, cr.Has(chess.White, 0))
	testutil.AssertFalse(t, cr.Has(chess.Black, 7))
	testutil.AssertEqual(t, cr.Files(chess.White), []int{0, 7})

	dropped := cr.Without(chess.White, 7)
	testutil.AssertFalse(t, dropped.Has(chess.White, 7))
	testutil.AssertTrue(t, cr.Has(chess.White, 7), "Without must not modify the receiver")

	none := cr.WithoutColour(chess.White).WithoutColour(chess.Black)
	testutil.AssertTrue(t, none.IsEmpty())
	testutil.AssertFalse(t, cr.Has(chess.Black, -1))
}

func TestWingOf(t *testing.T) {
	testutil.AssertEqual(t, chess.WingOf(4, 7), chess.KingSide)
	testutil.AssertEqual(t, chess.WingOf(4, 0), chess.QueenSide)
	testutil.AssertEqual(t, chess.WingOf(1, 0).String(), "O-O-O")
	testutil.AssertEqual(t, chess.WingOf(6, 7).String(), "O-O")
}

func TestCatalog(t *testing.T) {
	p, ok := chess.StandardCatalog.Piece('n')
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, p, chess.B(chess.Knight))
	testutil.AssertEqual(t, chess.StandardCatalog.Letter(chess.W(chess.Queen)), byte('Q'))
	_, ok = chess.StandardCatalog.Piece('x')
	testutil.AssertFalse(t, ok)

	f, ok := chess.ShatranjCatalog.Piece('Q')
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, f, chess.W(chess.Ferz))
	testutil.AssertEqual(t, chess.ShatranjCatalog.Letter(chess.B(chess.Alfil)), byte('b'))
	testutil.AssertEqual(t, chess.ShatranjCatalog.Promotions(), []chess.Kind{chess.Ferz})
	testutil.AssertFalse(t, chess.ShatranjCatalog.CanPromoteTo(chess.Queen))
	testutil.AssertFalse(t, chess.ShatranjCatalog.Has(chess.Queen))
}
