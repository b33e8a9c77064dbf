package session

import (
	"context"
	"sync"
	"time"
)

type entry[T any] struct {
	value    T
	lastSeen time.Time
}

// Store keeps one value of screen state per session, in memory only. Values
// are created lazily from the factory and replaced whole on update, so a
// reader never sees a partially applied change.
type Store[T any] struct {
	mu      sync.Mutex
	entries map[string]*entry[T]
	init    func() T
	ttl     time.Duration
	now     func() time.Time
}

// NewStore creates a store whose entries expire after ttl without access.
// A ttl of zero keeps entries until the process exits.
func NewStore[T any](ttl time.Duration, init func() T) *Store[T] {
	return &Store[T]{
		entries: make(map[string]*entry[T]),
		init:    init,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the session's current value, creating it if needed.
func (s *Store[T]) Get(id string) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(id).value
}

// Update applies fn to the session's current value and stores the result.
func (s *Store[T]) Update(id string, fn func(T) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.lookup(id)
	e.value = fn(e.value)
	return e.value
}

// Len returns the number of live sessions.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep removes entries idle for longer than the ttl and returns how many
// were removed.
func (s *Store[T]) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Run sweeps on every tick until ctx is done.
func (s *Store[T]) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// lookup must be called with mu held.
func (s *Store[T]) lookup(id string) *entry[T] {
	e, ok := s.entries[id]
	if !ok {
		e = &entry[T]{value: s.init()}
		s.entries[id] = e
	}
	e.lastSeen = s.now()
	return e
}

// Sweeper is implemented by every Store regardless of its value type.
type Sweeper interface {
	Sweep() int
	Run(ctx context.Context, interval time.Duration)
}
