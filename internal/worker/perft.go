package worker

import (
	"context"
	"runtime"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/hashing"
)

// Workers returns n, or the CPU count when n is 0.
func Workers(n int) int {
	if n < 1 {
		return runtime.NumCPU()
	}
	return n
}

// run submits one item per legal move of pos and collects the results in
// legal move order.
func run(ctx context.Context, pos *engine.Position, depth, workers int, fn ProcessFunc) ([]ProcessResult, error) {
	moves := pos.LegalMoves()
	if depth < 1 || len(moves) == 0 {
		return nil, nil
	}

	pool := NewPool(ctx, Workers(workers), len(moves), fn)
	pool.Start()
	go func() {
		defer pool.Close()
		for i, m := range moves {
			if !pool.Submit(WorkItem{Position: pos, Move: m, Depth: depth, Index: i}) {
				return
			}
		}
	}()

	results := make([]ProcessResult, len(moves))
	for r := range pool.Results() {
		results[r.Index] = r
	}
	// Items are dropped once ctx is done, so the results are incomplete.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, r := range results {
		if r.Error != nil {
			return nil, r.Error
		}
	}
	return results, nil
}

// checkEvery is the number of interior nodes a walker visits between
// context checks.
const checkEvery = 1024

// walker searches one root move's subtree and gives up once its context is
// done, so a cancelled search returns without finishing the subtree.
type walker struct {
	ctx    context.Context
	visits int
	err    error
}

func newWalker(ctx context.Context) *walker {
	return &walker{ctx: ctx, err: ctx.Err()}
}

// stopped polls the context every checkEvery calls.
func (w *walker) stopped() bool {
	if w.err == nil {
		w.visits++
		if w.visits%checkEvery == 0 {
			w.err = w.ctx.Err()
		}
	}
	return w.err != nil
}

// perft counts leaves like engine.Perft. The count is partial once w.err
// is set.
func (w *walker) perft(pos *engine.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := pos.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	if w.stopped() {
		return 0
	}
	var nodes uint64
	for _, m := range moves {
		nodes += w.perft(pos.Successor(m), depth-1)
		if w.err != nil {
			break
		}
	}
	return nodes
}

// collect adds the signature of every leaf depth plies below pos to seen.
// It stops early when the context ends or seen is full.
func (w *walker) collect(pos *engine.Position, depth int, seen *hashing.ThreadSafeTable) {
	if depth == 0 {
		seen.CheckAndAdd(pos.Signature())
		return
	}
	if w.stopped() || seen.IsFull() {
		return
	}
	for _, m := range pos.LegalMoves() {
		w.collect(pos.Successor(m), depth-1, seen)
	}
}

// Divide counts the leaf nodes below each legal move of pos at depth,
// searching root moves in parallel. Entries follow pos.LegalMoves order
// and match engine.Divide.
func Divide(ctx context.Context, pos *engine.Position, depth, workers int) ([]engine.DivideEntry, error) {
	results, err := run(ctx, pos, depth, workers, func(item WorkItem) ProcessResult {
		w := newWalker(ctx)
		nodes := w.perft(item.Position.Successor(item.Move), item.Depth-1)
		return ProcessResult{Move: item.Move, Index: item.Index, Nodes: nodes, Error: w.err}
	})
	if err != nil || results == nil {
		return nil, err
	}

	entries := make([]engine.DivideEntry, len(results))
	for i, r := range results {
		entries[i] = engine.DivideEntry{Move: r.Move, Nodes: r.Nodes}
	}
	return entries, nil
}

// Perft counts leaf nodes at depth using the worker pool.
func Perft(ctx context.Context, pos *engine.Position, depth, workers int) (uint64, error) {
	if depth < 1 {
		return engine.Perft(pos, depth), nil
	}
	entries, err := Divide(ctx, pos, depth, workers)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total, nil
}

// Distinct is the result of counting distinct positions.
type Distinct struct {
	// Positions is the number of different signatures among the leaves.
	Positions int

	// Transpositions counts leaves whose signature was already recorded.
	Transpositions int

	// LimitReached is set when the table filled up; the walk then stops
	// and both counts are lower bounds.
	LimitReached bool
}

// DistinctPositions counts the distinct positions reachable in exactly
// depth plies. Positions are told apart by their repetition signature, so
// move counters are ignored. Leaves from every worker share one table of
// at most limit signatures; 0 means unlimited.
func DistinctPositions(ctx context.Context, pos *engine.Position, depth, workers, limit int) (Distinct, error) {
	if depth < 1 {
		return Distinct{Positions: 1}, nil
	}
	seen := hashing.NewThreadSafeTable(limit)
	_, err := run(ctx, pos, depth, workers, func(item WorkItem) ProcessResult {
		w := newWalker(ctx)
		w.collect(item.Position.Successor(item.Move), item.Depth-1, seen)
		return ProcessResult{Move: item.Move, Index: item.Index, Error: w.err}
	})
	if err != nil {
		return Distinct{}, err
	}
	return Distinct{
		Positions:      seen.UniqueCount(),
		Transpositions: seen.DuplicateCount(),
		LimitReached:   seen.IsFull(),
	}, nil
}
