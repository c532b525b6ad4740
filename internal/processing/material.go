package processing

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// materialOrder lists kinds from most to least valuable for display.
var materialOrder = []chess.Kind{
	chess.King, chess.Queen, chess.Rook, chess.Bishop, chess.Knight,
	chess.Ferz, chess.Alfil, chess.Pawn,
}

// Material counts the pieces of each side.
type Material struct {
	counts  [2][chess.NumKinds]int
	catalog *chess.Catalog
}

// MaterialOf counts the pieces on the board of pos.
func MaterialOf(pos *engine.Position) Material {
	m := Material{catalog: pos.Variant().Catalog}
	g := pos.Geometry()
	for sq := chess.Square(0); sq < chess.Square(g.Size()); sq++ {
		if p := pos.Piece(sq); !p.IsEmpty() {
			m.counts[p.Colour][p.Kind]++
		}
	}
	return m
}

// Count returns how many pieces of kind k side c has.
func (m Material) Count(c chess.Colour, k chess.Kind) int {
	return m.counts[c][k]
}

// Total returns the number of pieces side c has, king included.
func (m Material) Total(c chess.Colour) int {
	total := 0
	for _, n := range m.counts[c] {
		total += n
	}
	return total
}

// Side writes the material of side c, e.g. "KQR2B2N2P8".
func (m Material) Side(c chess.Colour) string {
	var sb strings.Builder
	for _, k := range materialOrder {
		n := m.counts[c][k]
		if n == 0 {
			continue
		}
		sb.WriteByte(m.catalog.KindLetter(k))
		if n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}

// String returns both sides, White first, e.g. "KR v K".
func (m Material) String() string {
	return m.Side(chess.White) + " v " + m.Side(chess.Black)
}
