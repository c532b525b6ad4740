// Package worker provides a worker pool for searching move trees in
// parallel. Positions are immutable, so each root move's subtree can be
// walked by a different goroutine.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// WorkItem is one root move to search below.
type WorkItem struct {
	Position *engine.Position // Position before Move
	Move     chess.Move
	Depth    int // Plies to search, counting Move itself
	Index    int // Position of Move in the root's legal move list
}

// ProcessResult represents the result of searching one root move.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Error error
}

// ProcessFunc searches below one root move.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted root moves on a fixed number of
// goroutines. Results arrive in completion order; Index gives the
// submission order back.
type Pool struct {
	ctx     context.Context
	workers int
	items   chan WorkItem
	results chan ProcessResult
	process ProcessFunc
	wg      sync.WaitGroup
	stopped atomic.Bool
	nodes   atomic.Uint64
}

// NewPool creates a pool bound to ctx. Once ctx is done, queued items are
// dropped and Submit refuses new ones.
func NewPool(ctx context.Context, workers, bufferSize int, process ProcessFunc) *Pool {
	if workers < 1 {
		workers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		ctx:     ctx,
		workers: workers,
		items:   make(chan WorkItem, bufferSize),
		results: make(chan ProcessResult, bufferSize),
		process: process,
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()

	for item := range p.items {
		if p.IsStopped() {
			continue
		}
		r := p.process(item)
		p.nodes.Add(r.Nodes)
		p.results <- r
	}
}

// Submit queues an item, blocking while the buffer is full. It returns
// false if the pool was stopped or its context ended first.
func (p *Pool) Submit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.items <- item:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// Stop makes workers drop the items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true after Stop or once the context is done.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load() || p.ctx.Err() != nil
}

// Close waits for the workers to finish and then closes Results. No item
// may be submitted after Close.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished items.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Nodes returns the sum of Nodes over the results produced so far.
func (p *Pool) Nodes() uint64 {
	return p.nodes.Load()
}
