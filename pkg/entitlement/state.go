package entitlement

import (
	"fmt"
	"sync"
)

// Change describes a single SetTier call.
// From equals To when the call did not change the tier.
type Change struct {
	From Tier
	To   Tier
}

// Changed reports whether the tier actually moved.
func (c Change) Changed() bool {
	return c.From != c.To
}

// Listener is notified after every SetTier call.
type Listener func(Change)

type listener struct {
	id uint64
	fn Listener
}

// State holds the tier of one session.
//
// Reads are safe from any goroutine. SetTier calls are serialised and each one
// notifies all listeners, in registration order, before returning. Listeners must
// not call SetTier on the same State.
type State struct {
	writeMu sync.Mutex

	mu        sync.RWMutex
	tier      Tier
	listeners []listener
	nextID    uint64
}

// NewState returns a state holding TierFree.
func NewState() *State {
	return &State{tier: TierFree}
}

// NewStateWithTier returns a state holding the given tier.
func NewStateWithTier(t Tier) (*State, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTierKind, t)
	}
	return &State{tier: t}, nil
}

// Tier returns the currently held tier.
func (s *State) Tier() Tier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tier
}

// SetTier replaces the held tier and notifies every listener, including when
// the tier is unchanged.
func (s *State) SetTier(t Tier) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTierKind, t)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	change := Change{From: s.tier, To: t}
	s.tier = t
	snapshot := make([]listener, len(s.listeners))
	copy(snapshot, s.listeners)
	s.mu.Unlock()

	for _, l := range snapshot {
		l.fn(change)
	}
	return nil
}

// Subscribe registers fn and returns a function that removes it.
// The returned function is safe to call more than once.
func (s *State) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		panic("entitlement: nil listener")
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

// Listeners returns the number of registered listeners.
func (s *State) Listeners() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

func (s *State) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}
