package timer

import "sync"

// Store holds timer state per event id. Update must apply fn atomically with
// respect to other calls for the same event.
//
// The shipped implementation is process memory: a restart during a live heat
// silently returns every event to idle. That volatility is a documented
// operational property of the platform, not an accident — a durable
// implementation can be substituted here without touching the Machine.
type Store interface {
	Get(eventID string) (State, bool)
	Set(eventID string, st State)
	Update(eventID string, fn func(State) State) State
}

// MemoryStore is the in-process Store. A single mutex guards the map; timer
// traffic is a handful of operator clicks plus sub-second polls, nowhere near
// contention territory.
type MemoryStore struct {
	mu     sync.Mutex
	states map[string]State
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]State)}
}

func (s *MemoryStore) Get(eventID string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[eventID]
	return st, ok
}

func (s *MemoryStore) Set(eventID string, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[eventID] = st
}

func (s *MemoryStore) Update(eventID string, fn func(State) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(s.states[eventID])
	s.states[eventID] = next
	return next
}
