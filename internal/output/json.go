package output

import (
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/game"
	"github.com/lgbarn/chesscore-go/internal/notation"
	"github.com/lgbarn/chesscore-go/internal/processing"
)

// Report describes a position: its FEN and status, the moves that reached
// it and the moves available from it.
type Report struct {
	Variant        string          `json:"variant"`
	FEN            string          `json:"fen"`
	InitialFEN     string          `json:"initialFEN,omitempty"`
	SideToMove     string          `json:"sideToMove"`
	Status         string          `json:"status"`
	Check          bool            `json:"check"`
	Result         string          `json:"result"`
	Termination    string          `json:"termination,omitempty"`
	HalfMoveClock  int             `json:"halfMoveClock"`
	FullMoveNumber int             `json:"fullMoveNumber"`
	Repetitions    int             `json:"repetitions"`
	Material       MaterialReport  `json:"material"`
	MoveText       string          `json:"moveText,omitempty"`
	Played         []JSONMove      `json:"played,omitempty"`
	Analysis       *AnalysisReport `json:"analysis,omitempty"`
	LegalMoves     []JSONMove      `json:"legalMoves,omitempty"`
	Perft          *PerftReport    `json:"perft,omitempty"`

	// board is kept for the text diagram.
	board   *chess.Board
	catalog *chess.Catalog
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castling   string `json:"castling,omitempty"`
}

// MaterialReport lists each side's pieces, e.g. "KQR2B2N2P8".
type MaterialReport struct {
	White string `json:"white"`
	Black string `json:"black"`
}

// AnalysisReport summarizes the main line of the game.
type AnalysisReport struct {
	Plies             int  `json:"plies"`
	Captures          int  `json:"captures"`
	Checks            int  `json:"checks"`
	Castles           int  `json:"castles"`
	Promotions        int  `json:"promotions"`
	Underpromotion    bool `json:"underpromotion,omitempty"`
	MaxRepetition     int  `json:"maxRepetition"`
	DistinctPositions int  `json:"distinctPositions"`
}

// PerftReport holds node counts for a perft run.
type PerftReport struct {
	Depth          int          `json:"depth"`
	Nodes          uint64       `json:"nodes"`
	Distinct       int          `json:"distinct,omitempty"`
	Transpositions int          `json:"transpositions,omitempty"`
	LimitReached   bool         `json:"distinctLimitReached,omitempty"`
	Divide         []DivideLine `json:"divide,omitempty"`
}

// DivideLine is the node count below one root move.
type DivideLine struct {
	Move  string `json:"move"`
	SAN   string `json:"san"`
	Nodes uint64 `json:"nodes"`
}

// NewReport describes the current position of g. Played moves are the
// line from the root to the cursor.
func NewReport(g *game.Game, cfg *config.Config) *Report {
	pos := g.Position()
	r := &Report{
		Variant:        pos.Variant().Name,
		FEN:            pos.FEN(),
		SideToMove:     colorName(pos.SideToMove()),
		Status:         pos.Status().String(),
		Check:          pos.IsCheck(),
		Result:         string(g.Result()),
		Termination:    g.Termination(),
		HalfMoveClock:  pos.HalfMoveClock(),
		FullMoveNumber: pos.FullMoveNumber(),
		Repetitions:    pos.RepetitionCount(),
		Material:       materialReport(processing.MaterialOf(pos)),
		board:          pos.Board(),
		catalog:        pos.Variant().Catalog,
	}

	if root := g.Root().Position; root.FEN() != root.Variant().StartFEN {
		r.InitialFEN = root.FEN()
	}

	if cfg.Output.ShowGame && g.Ply() > 0 {
		r.MoveText = g.MoveText()
		r.Played = playedMoves(g)
		r.Analysis = analysisReport(processing.AnalyzeGame(g))
	}
	if cfg.Output.ShowMoves {
		r.LegalMoves = make([]JSONMove, 0, len(pos.LegalMoves()))
		for _, m := range pos.LegalMoves() {
			r.LegalMoves = append(r.LegalMoves, convertMove(pos, m))
		}
	}
	return r
}

func materialReport(m processing.Material) MaterialReport {
	return MaterialReport{White: m.Side(chess.White), Black: m.Side(chess.Black)}
}

func analysisReport(a *processing.GameAnalysis) *AnalysisReport {
	return &AnalysisReport{
		Plies:             a.Plies,
		Captures:          a.Captures,
		Checks:            a.Checks,
		Castles:           a.Castles,
		Promotions:        a.Promotions,
		Underpromotion:    a.UnderpromotionFound(),
		MaxRepetition:     a.MaxRepetition,
		DistinctPositions: a.DistinctPositions,
	}
}

// playedMoves converts the line from the root to the cursor.
func playedMoves(g *game.Game) []JSONMove {
	var nodes []*game.Node
	for n := g.Current(); !n.IsRoot(); n = n.Parent {
		nodes = append(nodes, n)
	}
	moves := make([]JSONMove, len(nodes))
	for i, n := range nodes {
		moves[len(nodes)-1-i] = convertMove(n.Parent.Position, n.Move)
	}
	return moves
}

// NewPerftReport converts node counts, listing divide entries by UCI and
// SAN in pos.
func NewPerftReport(pos *engine.Position, depth int, nodes uint64, divide []engine.DivideEntry, distinct int) *PerftReport {
	pr := &PerftReport{Depth: depth, Nodes: nodes, Distinct: distinct}
	for _, e := range divide {
		pr.Divide = append(pr.Divide, DivideLine{
			Move:  notation.UCI(pos, e.Move),
			SAN:   notation.SAN(pos, e.Move),
			Nodes: e.Nodes,
		})
	}
	return pr
}

// convertMove converts a legal move of pos to JSON format.
func convertMove(pos *engine.Position, m chess.Move) JSONMove {
	g := pos.Geometry()
	jm := JSONMove{
		Color: colorName(m.Piece.Colour),
		SAN:   notation.SAN(pos, m),
		UCI:   notation.UCI(pos, m),
		From:  g.SquareName(m.From),
		To:    g.SquareName(m.To),
		Piece: pieceTypeName(m.Piece.Kind),
	}
	if m.Piece.Colour == chess.White {
		jm.MoveNumber = pos.FullMoveNumber()
	}
	if m.IsCapture() {
		jm.Captured = pieceTypeName(m.Captured.Kind)
	}
	if m.Type == chess.Promotion {
		jm.Promotion = pieceTypeName(m.Promotion)
	}
	if m.Type == chess.Castling {
		jm.Castling = chess.WingOf(g.File(m.From), g.File(m.RookFrom)).String()
	}
	return jm
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceTypeName returns the piece kind as a lower-case string.
func pieceTypeName(k chess.Kind) string {
	if k == chess.NoKind {
		return ""
	}
	return strings.ToLower(k.String())
}
