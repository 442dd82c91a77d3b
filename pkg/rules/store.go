package rules

import (
	"sync"

	"github.com/rs/zerolog"
)

// StoreOption customises store construction.
type StoreOption func(*Store)

// WithLogger injects the logger used for the warn side channel. The default
// logger discards everything.
func WithLogger(log zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.log = log
	}
}

// Store holds the rule instances configured during one editing session as an
// ordered collection. Insertion order drives rendering and serialization.
//
// Every mutation replaces the backing slice wholesale (copy-on-write), so a
// snapshot handed to a reader is never mutated underneath it. The mutex only
// serialises the slice swap.
type Store struct {
	mu       sync.RWMutex
	registry *Registry
	items    []Instance
	log      zerolog.Logger
}

// NewStore constructs an empty store bound to a registry. A nil registry is
// treated as empty: every add is a warned no-op.
func NewStore(registry *Registry, opts ...StoreOption) *Store {
	s := &Store{
		registry: registry,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Add builds the default instance for a tag and appends it. Optional patches
// shallow-merge into the default before insertion. An unknown tag leaves the
// store unchanged and reports false after a warning.
func (s *Store) Add(tag Tag, definitionID int, overrides ...Patch) (string, bool) {
	entry, ok := s.registry.Get(tag)
	if !ok {
		s.log.Warn().Str("tag", string(tag)).Msg("rules: add skipped, tag not registered")
		return "", false
	}

	inst := entry.MakeDefault(definitionID)
	for _, patch := range overrides {
		inst = patch.apply(inst)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]Instance, 0, len(s.items)+1)
	next = append(next, s.items...)
	next = append(next, inst)
	s.items = next
	return inst.ID, true
}

// Patch shallow-merges the patch into the instance with the given id. A
// stale id is a no-op, which keeps removed rows harmless while their UI is
// still mounted.
func (s *Store) Patch(id string, patch Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	next := append([]Instance(nil), s.items...)
	next[idx] = patch.apply(next[idx])
	s.items = next
}

// Remove deletes the instance with the given id, preserving the order of the
// rest. Absent ids are a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	next := make([]Instance, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	s.items = next
}

// ReplaceAll atomically swaps in a full set of instances, used when hydrating
// a saved form version.
func (s *Store) ReplaceAll(instances []Instance) {
	next := make([]Instance, 0, len(instances))
	for _, inst := range instances {
		next = append(next, inst.Clone())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = next
}

// Clear empties the store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Get returns a copy of the instance with the given id.
func (s *Store) Get(id string) (Instance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return Instance{}, false
	}
	return s.items[idx].Clone(), true
}

// Snapshot returns a copy of the collection in insertion order.
func (s *Store) Snapshot() []Instance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Instance, 0, len(s.items))
	for _, inst := range s.items {
		out = append(out, inst.Clone())
	}
	return out
}

// Len reports the number of instances.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Registry exposes the registry the store was constructed with.
func (s *Store) Registry() *Registry {
	return s.registry
}

// Binding scopes store access to a single instance id.
func (s *Store) Binding(id string) *Binding {
	return &Binding{store: s, id: id}
}

// indexOf must be called with the mutex held.
func (s *Store) indexOf(id string) int {
	for idx, inst := range s.items {
		if inst.ID == id {
			return idx
		}
	}
	return -1
}
