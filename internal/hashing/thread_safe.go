package hashing

import "sync"

// ThreadSafeTable wraps Table with mutex protection for concurrent access.
type ThreadSafeTable struct {
	table *Table
	mu    sync.RWMutex
}

// NewThreadSafeTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeTable(maxCapacity int) *ThreadSafeTable {
	return &ThreadSafeTable{
		table: NewTable(maxCapacity),
	}
}

// CheckAndAdd atomically checks whether signature was seen and records it.
func (t *ThreadSafeTable) CheckAndAdd(signature string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.CheckAndAdd(signature)
}

// DuplicateCount returns the number of repeats detected.
func (t *ThreadSafeTable) DuplicateCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.DuplicateCount()
}

// UniqueCount returns the number of distinct signatures.
func (t *ThreadSafeTable) UniqueCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.UniqueCount()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafeTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}
