// Package favorites mirrors the server's favorite-track set on the client.
//
// Toggles are optimistic: Begin flips membership immediately and remembers
// the previous value, then Resolve applies the server's answer or Revert
// restores the previous value. At most one toggle per track is in flight, so
// the local set never drifts from the last acknowledged server state by more
// than that single pending request.
package favorites

import (
	"sort"
	"sync"
)

// Store is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	ids     map[string]struct{}
	pending map[string]bool // track id -> membership before the toggle
}

// New returns an empty store.
func New() *Store {
	return &Store{
		ids:     make(map[string]struct{}),
		pending: make(map[string]bool),
	}
}

// Replace swaps the whole set for the server's list. Tracks with a toggle in
// flight keep their optimistic value until that toggle settles.
func (s *Store) Replace(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		next[id] = struct{}{}
	}
	for id := range s.pending {
		if _, ok := s.ids[id]; ok {
			next[id] = struct{}{}
		} else {
			delete(next, id)
		}
	}
	s.ids = next
}

// Has reports whether id is currently a favorite.
func (s *Store) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

// Pending reports whether a toggle for id is in flight.
func (s *Store) Pending(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.pending[id]
	return ok
}

// IDs returns the current favorites in sorted order.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// Begin starts a toggle for id. It returns false, changing nothing, when a
// toggle for the same track is already in flight.
func (s *Store) Begin(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.pending[id]; busy {
		return false
	}
	_, was := s.ids[id]
	s.pending[id] = was
	s.set(id, !was)
	return true
}

// Resolve settles the toggle for id with the server-acknowledged state.
func (s *Store) Resolve(id string, isFavorite bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, id)
	s.set(id, isFavorite)
}

// Revert settles a failed toggle for id, restoring the membership it had
// before Begin.
func (s *Store) Revert(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	was, ok := s.pending[id]
	if !ok {
		return
	}
	delete(s.pending, id)
	s.set(id, was)
}

func (s *Store) set(id string, member bool) {
	if member {
		s.ids[id] = struct{}{}
		return
	}
	delete(s.ids, id)
}
