package factory

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"
)

var (
	// ErrDuplicateKey is returned by New when a key repeats in the entry list.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNilCreator is returned when a registration has no creator.
	ErrNilCreator = errors.New("nil creator")
)

// ID is the default key type for factories keyed by numeric identifier.
type ID = uint64

// Creator builds a new instance of B.
type Creator[B any] func() (B, error)

// Entry pairs a key with the creator used to build the instance cached under it.
type Entry[K cmp.Ordered, B any] struct {
	Key    K
	Create Creator[B]
}

// Factory lazily instantiates, caches and releases instances of B by key.
type Factory[K cmp.Ordered, B any] struct {
	creators map[K]Creator[B]
	live     map[K]B
	obs      Observer
}

// New returns a factory holding the given registrations. Entries are inserted
// in order and a key already inserted earlier in the list yields
// ErrDuplicateKey.
func New[K cmp.Ordered, B any](entries []Entry[K, B], opts ...Option) (*Factory[K, B], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	f := &Factory[K, B]{
		creators: make(map[K]Creator[B], len(entries)),
		live:     make(map[K]B),
		obs:      o.observer(),
	}
	for _, e := range entries {
		if _, ok := f.creators[e.Key]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, e.Key)
		}
		if e.Create == nil {
			return nil, fmt.Errorf("%w: %v", ErrNilCreator, e.Key)
		}
		f.Add(e.Key, e.Create)
	}
	return f, nil
}

// Add registers c under key, replacing any previous creator. An instance
// already cached for key is kept.
func (f *Factory[K, B]) Add(key K, c Creator[B]) {
	f.creators[key] = c
}

// Remove deletes the registration for key and reports whether it existed.
func (f *Factory[K, B]) Remove(key K) bool {
	if _, ok := f.creators[key]; !ok {
		return false
	}
	delete(f.creators, key)
	return true
}

// Get returns the instance cached for key, creating it on first use. The
// boolean is false when key is neither cached nor registered. Creator errors
// are returned as is and leave the cache untouched.
func (f *Factory[K, B]) Get(key K) (B, bool, error) {
	if inst, ok := f.live[key]; ok {
		f.obs.Reused(label(key))
		return inst, true, nil
	}
	var zero B
	create, ok := f.creators[key]
	if !ok {
		return zero, false, nil
	}
	if create == nil {
		return zero, false, fmt.Errorf("%w: %v", ErrNilCreator, key)
	}
	start := time.Now()
	inst, err := create()
	if err != nil {
		f.obs.CreateFailed(label(key), err)
		return zero, false, err
	}
	f.live[key] = inst
	f.obs.Created(label(key), time.Since(start))
	return inst, true, nil
}

// Registered returns a copy of the creator registrations.
func (f *Factory[K, B]) Registered() map[K]Creator[B] {
	return maps.Clone(f.creators)
}

// Keys returns the registered keys in ascending order.
func (f *Factory[K, B]) Keys() []K {
	return slices.Sorted(maps.Keys(f.creators))
}

// Live returns the keys holding a cached instance in ascending order.
func (f *Factory[K, B]) Live() []K {
	return slices.Sorted(maps.Keys(f.live))
}

// Cached reports whether an instance is cached for key.
func (f *Factory[K, B]) Cached(key K) bool {
	_, ok := f.live[key]
	return ok
}

// Stop drops the cached instance for key and reports whether one existed.
// Callers still holding the instance may keep using it; the registration is
// untouched so the next Get creates a new instance.
func (f *Factory[K, B]) Stop(key K) bool {
	if _, ok := f.live[key]; !ok {
		return false
	}
	delete(f.live, key)
	f.obs.Stopped(label(key))
	return true
}

// StopAll drops every cached instance and returns how many were released.
func (f *Factory[K, B]) StopAll() int {
	keys := f.Live()
	for _, k := range keys {
		f.Stop(k)
	}
	return len(keys)
}

func label[K cmp.Ordered](key K) string { return fmt.Sprint(key) }
