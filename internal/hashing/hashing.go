// Package hashing provides position-signature hashing and duplicate tracking.
package hashing

import "github.com/cespare/xxhash/v2"

// Sum returns the 64-bit hash of a position signature.
func Sum(signature string) uint64 {
	return xxhash.Sum64String(signature)
}

// Table tracks seen position signatures.
type Table struct {
	// entries maps a hash to every distinct signature that produced it.
	entries map[uint64][]string
	// uniqueCount is the number of distinct signatures stored.
	uniqueCount int
	// duplicateCount tracks number of repeats found
	duplicateCount int
	// maxCapacity caps uniqueCount; 0 means unlimited.
	maxCapacity int
}

// NewTable creates a new signature table. maxCapacity of 0 means unlimited.
func NewTable(maxCapacity int) *Table {
	return &Table{
		entries:     make(map[uint64][]string),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd records signature and returns true if it had been seen before.
// When the table is full new signatures are not stored.
func (t *Table) CheckAndAdd(signature string) bool {
	h := Sum(signature)
	for _, s := range t.entries[h] {
		if s == signature {
			t.duplicateCount++
			return true
		}
	}
	if t.IsFull() {
		return false
	}
	t.entries[h] = append(t.entries[h], signature)
	t.uniqueCount++
	return false
}

// DuplicateCount returns the number of repeats detected.
func (t *Table) DuplicateCount() int {
	return t.duplicateCount
}

// UniqueCount returns the number of distinct signatures.
func (t *Table) UniqueCount() int {
	return t.uniqueCount
}

// IsFull returns true if the table has reached its capacity limit.
func (t *Table) IsFull() bool {
	return t.maxCapacity > 0 && t.uniqueCount >= t.maxCapacity
}
