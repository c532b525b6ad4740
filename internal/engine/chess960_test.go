package engine_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/engine"
	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestChess960BackRank(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "BBQNNRKR"},
		{518, "RNBQKBNR"},
		{959, "RKRNNQBB"},
	}
	for _, tt := range tests {
		got, err := engine.Chess960BackRank(tt.n)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, tt.want, "position %d", tt.n)
	}

	for _, n := range []int{-1, 960} {
		_, err := engine.Chess960BackRank(n)
		testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrInvalidConfig), "position %d: %v", n, err)
	}
}

func TestChess960AllStartsValid(t *testing.T) {
	seen := make(map[string]bool, engine.Chess960Positions)
	for n := 0; n < engine.Chess960Positions; n++ {
		rank, err := engine.Chess960BackRank(n)
		testutil.AssertNoError(t, err)
		seen[rank] = true

		b1, b2 := strings.IndexByte(rank, 'B'), strings.LastIndexByte(rank, 'B')
		testutil.AssertTrue(t, b1%2 != b2%2, "%s: bishops share a colour", rank)

		r1, k, r2 := strings.IndexByte(rank, 'R'), strings.IndexByte(rank, 'K'), strings.LastIndexByte(rank, 'R')
		testutil.AssertTrue(t, r1 < k && k < r2, "%s: king not between rooks", rank)
	}
	testutil.AssertEqual(t, len(seen), engine.Chess960Positions)
}

func TestChess960Start(t *testing.T) {
	pos, err := engine.Chess960Start(engine.Chess960Standard)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos.FEN(), engine.Chess960.StartFEN)

	pos, err = engine.Chess960Start(0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos.FEN(), "bbqnnrkr/pppppppp/8/8/8/8/PPPPPPPP/BBQNNRKR w HFhf - 0 1")
	testutil.AssertEqual(t, len(pos.LegalMoves()), 20)
}

func TestRandomChess960(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		pos, n, err := engine.RandomChess960(rng)
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, n >= 0 && n < engine.Chess960Positions)
		want, err := engine.Chess960StartFEN(n)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, pos.FEN(), want)
	}
}
