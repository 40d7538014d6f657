package metadata

import (
	"sync"

	"go.uber.org/atomic"
)

// Listener is called after every dispatch with the previous and the next
// state. Listeners run in dispatch order and must not dispatch themselves.
type Listener func(prev, next State)

// Store holds the current State. Dispatches are applied one at a time in the
// order they arrive; reads never block on a dispatch.
type Store struct {
	mu        sync.Mutex
	state     *atomic.Pointer[State]
	listeners []Listener
}

func NewStore(initial State) *Store {
	return &Store{
		state: atomic.NewPointer(&initial),
	}
}

func (s *Store) State() State {
	return *s.state.Load()
}

func (s *Store) Dispatch(event Event) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := *s.state.Load()
	next := Reduce(prev, event)
	s.state.Store(&next)
	for _, l := range s.listeners {
		l(prev, next)
	}
	return next
}

func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}
