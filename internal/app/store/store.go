package store

import "sync"

// Store holds the application state and exposes a single mutation channel.
//
// It is an explicit, injectable container: tests and callers instantiate
// isolated stores rather than sharing a process-wide singleton. The mutex
// exists because the HTTP adapter may dispatch from concurrent requests; the
// reducer itself stays single-threaded under the lock.
type Store struct {
	mu    sync.RWMutex
	state State
}

// New returns a store holding InitialState.
func New() *Store {
	return NewWithState(InitialState())
}

// NewWithState returns a store seeded with the given state. Used by tests to
// start from a known fixture.
func NewWithState(s State) *Store {
	return &Store{state: cloneState(s)}
}

// Dispatch applies one action through the reducer.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
}

// Snapshot returns a deep copy of the current state. Mutating the returned
// value never affects the store.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}
