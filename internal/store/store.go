// Package store holds the in-memory record collections and their ID policy.
package store

import "sync"

// Record is anything the store can hold.
type Record interface {
	RecordID() int
}

// Store is an append/remove collection for one entity type. The next ID is
// always max(existing IDs)+1, or 1 when the collection is empty; after a
// deletion that leaves {2}, the next record gets 3, not 2. A RWMutex
// serializes mutations so reads never observe a partially applied
// create or delete.
type Store[T Record] struct {
	mu    sync.RWMutex
	items []T
}

// New returns an empty store.
func New[T Record]() *Store[T] {
	return &Store[T]{}
}

// Create assigns the next ID, builds the record with it, and appends it.
// Validation has already happened upstream; Create itself cannot reject.
func (s *Store[T]) Create(build func(id int) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := build(s.nextIDLocked())
	s.items = append(s.items, rec)
	return rec
}

func (s *Store[T]) nextIDLocked() int {
	next := 1
	for _, it := range s.items {
		if id := it.RecordID(); id >= next {
			next = id + 1
		}
	}
	return next
}

// Get returns the record with the given ID.
func (s *Store[T]) Get(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Delete removes the record with the given ID and reports whether one
// existed. There is no soft delete; the record is gone entirely.
func (s *Store[T]) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.RecordID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a copy of the collection in insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports how many records are stored.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
