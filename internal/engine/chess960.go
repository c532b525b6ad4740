package engine

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Chess960Positions is the number of Chess960 start positions.
const Chess960Positions = 960

// Chess960Standard is the number of the orthodox start position.
const Chess960Standard = 518

// knightPairs lists the knight placements, as indices into the five
// squares left after bishops and queen, in Scharnagl order.
var knightPairs = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {1, 3}, {1, 4},
	{2, 3}, {2, 4},
	{3, 4},
}

// Chess960BackRank returns the white back rank, file a first, for start
// position n using Scharnagl numbering.
func Chess960BackRank(n int) (string, error) {
	if n < 0 || n >= Chess960Positions {
		return "", fmt.Errorf("chess960 start %d not in 0..%d: %w", n, Chess960Positions-1, errors.ErrInvalidConfig)
	}
	var rank [8]byte

	rank[2*(n%4)+1] = 'B'
	n /= 4
	rank[2*(n%4)] = 'B'
	n /= 4

	placeNth(&rank, n%6, 'Q')
	n /= 6

	// Place the second knight first so the first index is unaffected.
	pair := knightPairs[n]
	placeNth(&rank, pair[1], 'N')
	placeNth(&rank, pair[0], 'N')

	placeNth(&rank, 0, 'R')
	placeNth(&rank, 0, 'K')
	placeNth(&rank, 0, 'R')
	return string(rank[:]), nil
}

// placeNth puts piece on the i-th empty file.
func placeNth(rank *[8]byte, i int, piece byte) {
	for f := range rank {
		if rank[f] != 0 {
			continue
		}
		if i == 0 {
			rank[f] = piece
			return
		}
		i--
	}
}

// Chess960StartFEN returns the FEN of start position n with Shredder
// castling rights.
func Chess960StartFEN(n int) (string, error) {
	back, err := Chess960BackRank(n)
	if err != nil {
		return "", err
	}
	var rights strings.Builder
	for i := len(back) - 1; i >= 0; i-- {
		if back[i] == 'R' {
			rights.WriteByte('A' + byte(i))
		}
	}
	white := rights.String()
	return fmt.Sprintf("%s/pppppppp/8/8/8/8/PPPPPPPP/%s w %s%s - 0 1",
		strings.ToLower(back), back, white, strings.ToLower(white)), nil
}

// Chess960Start returns start position n.
func Chess960Start(n int) (*Position, error) {
	fen, err := Chess960StartFEN(n)
	if err != nil {
		return nil, err
	}
	return Chess960.ParseFEN(fen)
}

// RandomChess960 returns a uniformly chosen start position and its number.
func RandomChess960(rng *rand.Rand) (*Position, int, error) {
	n := rng.IntN(Chess960Positions)
	pos, err := Chess960Start(n)
	return pos, n, err
}
