package factory

import (
	"cmp"
	"sync"
)

// Synced guards a Factory with a single mutex. Creators run while the lock is
// held, so concurrent Gets for the same key build one instance. A creator
// must not call back into the Synced that invokes it.
type Synced[K cmp.Ordered, B any] struct {
	mu sync.Mutex
	f  *Factory[K, B]
}

// NewSynced wraps f. f must not be used directly afterwards.
func NewSynced[K cmp.Ordered, B any](f *Factory[K, B]) *Synced[K, B] {
	return &Synced[K, B]{f: f}
}

func (s *Synced[K, B]) Add(key K, c Creator[B]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.Add(key, c)
}

func (s *Synced[K, B]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Remove(key)
}

func (s *Synced[K, B]) Get(key K) (B, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Get(key)
}

func (s *Synced[K, B]) Registered() map[K]Creator[B] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Registered()
}

func (s *Synced[K, B]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Keys()
}

func (s *Synced[K, B]) Live() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Live()
}

func (s *Synced[K, B]) Cached(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Cached(key)
}

func (s *Synced[K, B]) Stop(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Stop(key)
}

func (s *Synced[K, B]) StopAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.StopAll()
}
