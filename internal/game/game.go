// Package game records the moves of a game as a tree of positions: a main
// line plus any variations that branch from it. Moves are added by SAN,
// coordinates or UCI text and the game result follows from the status of
// the last main-line position unless a player resigns.
package game

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/notation"
)

// Result is a game result as written in PGN.
type Result string

const (
	WhiteWins  Result = "1-0"
	BlackWins  Result = "0-1"
	Drawn      Result = "1/2-1/2"
	Unfinished Result = "*"
)

// Win returns the result for a win by c.
func Win(c chess.Colour) Result {
	if c == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// Node is one position in the game tree together with the move that
// reached it. Children[0] continues the main line; later children are
// variations.
type Node struct {
	Position *engine.Position
	Move     chess.Move
	SAN      string
	Parent   *Node
	Children []*Node
}

// IsRoot returns true for the starting position of the game.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// Game is a move tree with a cursor on the current position.
type Game struct {
	root    *Node
	current *Node

	resigned    bool
	resignation chess.Colour
}

// New starts a game from pos.
func New(pos *engine.Position) *Game {
	root := &Node{Position: pos}
	return &Game{root: root, current: root}
}

// NewStandard starts a game from the standard initial position.
func NewStandard() *Game {
	return New(engine.NewInitialPosition())
}

// Root returns the starting node.
func (g *Game) Root() *Node {
	return g.root
}

// Current returns the node under the cursor.
func (g *Game) Current() *Node {
	return g.current
}

// Position returns the position under the cursor.
func (g *Game) Position() *engine.Position {
	return g.current.Position
}

// Ply returns the number of moves from the root to the cursor.
func (g *Game) Ply() int {
	return g.current.Position.Ply() - g.root.Position.Ply()
}

// Play parses san in the current position and plays it. If the move is
// already in the tree the cursor follows it; otherwise it is added as the
// main line when the current node has no continuation, or as a new
// variation when it does.
func (g *Game) Play(san string) error {
	if err := g.checkOpen(san); err != nil {
		return err
	}
	m, err := notation.ParseSAN(g.current.Position, san)
	if err != nil {
		return err
	}
	return withText(g.add(m), san)
}

// PlayUCI plays a move written in coordinate notation.
func (g *Game) PlayUCI(text string) error {
	if err := g.checkOpen(text); err != nil {
		return err
	}
	m, err := notation.ParseUCI(g.current.Position, text)
	if err != nil {
		return err
	}
	return withText(g.add(m), text)
}

// PlayMove plays the legal move from one square to another. promo selects
// the promotion piece, chess.NoKind meaning the variant's first choice.
func (g *Game) PlayMove(from, to chess.Square, promo chess.Kind) error {
	if err := g.checkOpen(""); err != nil {
		return err
	}
	m, err := g.current.Position.Find(from, to, promo)
	if err != nil {
		return err
	}
	return g.add(m)
}

func (g *Game) add(m chess.Move) error {
	for _, child := range g.current.Children {
		if child.Move == m {
			g.current = child
			return nil
		}
	}
	next, err := g.current.Position.Play(m)
	if err != nil {
		return err
	}
	n := &Node{
		Position: next,
		Move:     m,
		SAN:      notation.SAN(g.current.Position, m),
		Parent:   g.current,
	}
	g.current.Children = append(g.current.Children, n)
	g.current = n
	return nil
}

// checkOpen rejects moves after a resignation or from a finished position.
func (g *Game) checkOpen(text string) error {
	var err error
	switch status := g.current.Position.Status(); {
	case g.resigned:
		err = errors.Wrapf(errors.ErrGameOver, "%s resigned", g.resignation)
	case status.IsTerminal():
		err = errors.Wrap(errors.ErrGameOver, status.String())
	default:
		return nil
	}
	return &errors.MoveError{Err: err, MoveText: text, Ply: g.current.Position.Ply() + 1}
}

// Back moves the cursor to the previous position. It returns false at the
// root.
func (g *Game) Back() bool {
	if g.current.IsRoot() {
		return false
	}
	g.current = g.current.Parent
	return true
}

// Forward moves the cursor along the main continuation. It returns false
// when there is none.
func (g *Game) Forward() bool {
	if len(g.current.Children) == 0 {
		return false
	}
	g.current = g.current.Children[0]
	return true
}

// GoTo moves the cursor to the given ply, counted from the root, along the
// current line: back through the cursor's ancestors or forward along main
// continuations.
func (g *Game) GoTo(ply int) error {
	if ply < 0 {
		return errors.Wrapf(errors.ErrNoSuchMove, "ply %d", ply)
	}
	n := g.current
	depth := g.Ply()
	for depth > ply {
		n = n.Parent
		depth--
	}
	for depth < ply {
		if len(n.Children) == 0 {
			return errors.Wrapf(errors.ErrNoSuchMove, "ply %d (line ends at %d)", ply, depth)
		}
		n = n.Children[0]
		depth++
	}
	g.current = n
	return nil
}

// GoToMove moves the cursor to the position just after c played move
// number.
func (g *Game) GoToMove(number int, c chess.Colour) error {
	start := g.root.Position
	ply := 2*(number-start.FullMoveNumber()) + colourOffset(c) - colourOffset(start.SideToMove()) + 1
	if err := g.GoTo(ply); err != nil {
		return errors.Wrapf(err, "move %d for %s", number, c)
	}
	return nil
}

func colourOffset(c chess.Colour) int {
	if c == chess.Black {
		return 1
	}
	return 0
}

// GoToStart moves the cursor to the root.
func (g *Game) GoToStart() {
	g.current = g.root
}

// GoToEnd moves the cursor to the end of the current main continuation.
func (g *Game) GoToEnd() {
	for g.Forward() {
	}
}

// Variations returns the SAN of every continuation from the current
// position, main line first.
func (g *Game) Variations() []string {
	out := make([]string, len(g.current.Children))
	for i, child := range g.current.Children {
		out[i] = child.SAN
	}
	return out
}

// SelectVariation moves the cursor into continuation i of the current
// position.
func (g *Game) SelectVariation(i int) error {
	if i < 0 || i >= len(g.current.Children) {
		return errors.Wrapf(errors.ErrNoSuchMove, "variation %d of %d", i, len(g.current.Children))
	}
	g.current = g.current.Children[i]
	return nil
}

// PromoteVariation makes the line through the cursor the main line at its
// branch point.
func (g *Game) PromoteVariation() {
	for n := g.current; !n.IsRoot(); n = n.Parent {
		siblings := n.Parent.Children
		for i, s := range siblings {
			if s == n && i > 0 {
				copy(siblings[1:i+1], siblings[:i])
				siblings[0] = n
				return
			}
		}
	}
}

// Resign ends the game with a loss for c.
func (g *Game) Resign(c chess.Colour) error {
	if r := g.Result(); r != Unfinished {
		return errors.Wrapf(errors.ErrGameOver, "result already %s", r)
	}
	g.resigned = true
	g.resignation = c
	return nil
}

// MainLineEnd returns the last node of the main line.
func (g *Game) MainLineEnd() *Node {
	n := g.root
	for len(n.Children) > 0 {
		n = n.Children[0]
	}
	return n
}

// Result returns the game result: a resignation, or else the status of
// the last main-line position. Checkmate is a loss for the side to move.
func (g *Game) Result() Result {
	if g.resigned {
		return Win(g.resignation.Opposite())
	}
	pos := g.MainLineEnd().Position
	switch status := pos.Status(); {
	case status == engine.Checkmate:
		return Win(pos.SideToMove().Opposite())
	case status.IsDraw():
		return Drawn
	default:
		return Unfinished
	}
}

// Termination describes how the game ended, or "" if it has not.
func (g *Game) Termination() string {
	if g.resigned {
		return "resignation"
	}
	if status := g.MainLineEnd().Position.Status(); status.IsTerminal() {
		return status.String()
	}
	return ""
}

// Moves returns the SAN of every main-line move.
func (g *Game) Moves() []string {
	var out []string
	for n := g.root; len(n.Children) > 0; n = n.Children[0] {
		out = append(out, n.Children[0].SAN)
	}
	return out
}

// Line returns the SAN of the moves from the root to the cursor.
func (g *Game) Line() []string {
	out := make([]string, g.Ply())
	for n, i := g.current, g.Ply()-1; !n.IsRoot(); n, i = n.Parent, i-1 {
		out[i] = n.SAN
	}
	return out
}

// MoveText writes the tree as PGN movetext with variations in
// parentheses, followed by the result.
func (g *Game) MoveText() string {
	tokens := append(lineTokens(g.root, true), string(g.Result()))
	return strings.Join(tokens, " ")
}

// lineTokens writes the main continuation from n. After a variation the
// next black move needs its number repeated.
func lineTokens(n *Node, number bool) []string {
	var out []string
	for len(n.Children) > 0 {
		main := n.Children[0]
		out = append(out, moveTokens(main, number)...)
		number = false
		for _, alt := range n.Children[1:] {
			v := append(moveTokens(alt, true), lineTokens(alt, false)...)
			v[0] = "(" + v[0]
			v[len(v)-1] += ")"
			out = append(out, v...)
			number = true
		}
		n = main
	}
	return out
}

func moveTokens(n *Node, number bool) []string {
	before := n.Parent.Position
	switch {
	case before.SideToMove() == chess.White:
		return []string{fmt.Sprintf("%d.", before.FullMoveNumber()), n.SAN}
	case number:
		return []string{fmt.Sprintf("%d...", before.FullMoveNumber()), n.SAN}
	default:
		return []string{n.SAN}
	}
}

func withText(err error, text string) error {
	var me *errors.MoveError
	if stderrors.As(err, &me) && me.MoveText == "" {
		me.MoveText = text
	}
	return err
}
