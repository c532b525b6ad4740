package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chesscore-go/internal/engine"
)

// perftFunc counts leaves below the item's move.
func perftFunc(item WorkItem) ProcessResult {
	next := item.Position.Successor(item.Move)
	return ProcessResult{Move: item.Move, Index: item.Index, Nodes: engine.Perft(next, item.Depth-1)}
}

// submitRoots queues every legal move of pos and closes the pool.
func submitRoots(pool *Pool, pos *engine.Position, depth int) {
	for i, m := range pos.LegalMoves() {
		if !pool.Submit(WorkItem{Position: pos, Move: m, Depth: depth, Index: i}) {
			break
		}
	}
	pool.Close()
}

// TestPoolSearchesEveryRootMove checks that each root move comes back once
// with its index.
func TestPoolSearchesEveryRootMove(t *testing.T) {
	pos := engine.NewInitialPosition()
	pool := NewPool(context.Background(), 4, 4, perftFunc)
	pool.Start()
	go submitRoots(pool, pos, 2)

	seen := make(map[int]bool)
	for r := range pool.Results() {
		if seen[r.Index] {
			t.Errorf("index %d returned twice", r.Index)
		}
		seen[r.Index] = true
		if r.Move != pos.LegalMoves()[r.Index] {
			t.Errorf("result %d has move %v; want %v", r.Index, r.Move, pos.LegalMoves()[r.Index])
		}
		if r.Nodes != 20 {
			t.Errorf("move %d: nodes = %d; want 20", r.Index, r.Nodes)
		}
	}
	if len(seen) != 20 {
		t.Errorf("results = %d; want 20", len(seen))
	}
	if got := pool.Nodes(); got != 400 {
		t.Errorf("Nodes() = %d; want 400", got)
	}
}

// TestPoolStop checks that queued items are dropped after Stop.
func TestPoolStop(t *testing.T) {
	var processed int32
	release := make(chan struct{})
	slow := func(item WorkItem) ProcessResult {
		<-release
		atomic.AddInt32(&processed, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(context.Background(), 1, 10, slow)
	pool.Start()
	for i := 0; i < 10; i++ {
		if !pool.Submit(WorkItem{Index: i}) {
			t.Fatalf("Submit(%d) refused before Stop", i)
		}
	}

	pool.Stop()
	close(release)
	if pool.Submit(WorkItem{Index: 10}) {
		t.Error("Submit after Stop should return false")
	}
	go pool.Close()
	for range pool.Results() {
	}

	// At most the item already taken by the worker is searched.
	if got := atomic.LoadInt32(&processed); got > 1 {
		t.Errorf("processed = %d after Stop; want at most 1", got)
	}
}

// TestPoolCancelledContext checks that a done context stops the pool.
func TestPoolCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(ctx, 2, 1, perftFunc)
	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	cancel()
	if !pool.IsStopped() {
		t.Error("pool should be stopped once the context is cancelled")
	}
	if pool.Submit(WorkItem{}) {
		t.Error("Submit should fail on a cancelled context")
	}

	pool.Start()
	pool.Close()
	if _, ok := <-pool.Results(); ok {
		t.Error("no results expected from a cancelled pool")
	}
}

// TestPoolSubmitUnblocksOnCancel checks that a Submit blocked on a full
// buffer returns when the context ends.
func TestPoolSubmitUnblocksOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(ctx, 1, 1, perftFunc)

	// Not started: the first item fills the buffer and the second blocks.
	pool.Submit(WorkItem{})
	done := make(chan bool)
	go func() { done <- pool.Submit(WorkItem{}) }()

	cancel()
	select {
	case ok := <-done:
		if ok {
			t.Error("blocked Submit should report failure after cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("Submit did not return after cancel")
	}
}

// TestPoolNumWorkers tests NumWorkers method.
func TestPoolNumWorkers(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"valid workers", 4, 4},
		{"minimum workers", 1, 1},
		{"zero defaults to 1", 0, 1},
		{"negative defaults to 1", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(context.Background(), tt.input, 10, perftFunc)
			if got := pool.NumWorkers(); got != tt.expected {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.expected)
			}
		})
	}
}

// TestPoolNoRace is meant for the -race flag: many workers share one root
// position.
func TestPoolNoRace(t *testing.T) {
	pos := testPosition(t)
	pool := NewPool(context.Background(), 8, 2, perftFunc)
	pool.Start()
	go submitRoots(pool, pos, 2)

	var total uint64
	for r := range pool.Results() {
		total += r.Nodes
	}
	if want := engine.Perft(pos, 2); total != want {
		t.Errorf("total = %d; want %d", total, want)
	}
}

func testPosition(t *testing.T) *engine.Position {
	t.Helper()
	pos, err := engine.NewPositionFromFEN(kiwipeteFEN)
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}
	return pos
}
