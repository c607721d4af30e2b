package nav

import "sync"

// Store holds the current State and notifies subscribers on change.
type Store struct {
	mu          sync.Mutex
	state       State
	subscribers []func(prev, next State)
}

// NewStore starts from s.
func NewStore(s State) *Store {
	return &Store{state: s}
}

// State returns the current state.
func (st *Store) State() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}

// Dispatch reduces a into the store and returns the new state. Subscribers
// run after the lock is released, only when the state changed.
func (st *Store) Dispatch(a Action) State {
	st.mu.Lock()
	prev := st.state
	next := Reduce(prev, a)
	st.state = next
	subs := append([]func(prev, next State){}, st.subscribers...)
	st.mu.Unlock()

	if prev != next {
		for _, fn := range subs {
			fn(prev, next)
		}
	}
	return next
}

// Subscribe registers fn for state changes.
func (st *Store) Subscribe(fn func(prev, next State)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.subscribers = append(st.subscribers, fn)
}
