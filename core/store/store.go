package store

import (
	"sync"

	"github.com/google/uuid"
)

// Hook runs after an action has been committed locally. Hooks must not
// block: remote mirroring and notifications go through them, the dispatch
// path never waits on them.
type Hook func(action Action, next State)

// Store owns the canonical snapshot. Dispatch is the only mutation path;
// direct field assignment on a snapshot never reaches the store.
type Store struct {
	mu    sync.Mutex
	state State
	hooks []Hook
}

func New(initial State) *Store {
	return &Store{state: initial.Clone()}
}

// OnDispatch registers a post-commit hook. Not safe to call concurrently
// with Dispatch; register hooks during wiring.
func (s *Store) OnDispatch(h Hook) {
	s.hooks = append(s.hooks, h)
}

// Dispatch applies the action through the reducer and commits the result,
// then feeds the committed action to the registered hooks. It returns the
// new snapshot.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	next := s.state.Clone()
	s.mu.Unlock()

	for _, h := range s.hooks {
		h(action, next)
	}
	return next
}

// State returns a copy of the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// NewID returns a collision-safe unique id. Timestamp-derived ids are not
// unique under rapid sequential calls; UUIDs are.
func NewID() string {
	return uuid.New().String()
}
