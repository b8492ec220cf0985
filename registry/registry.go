// Package registry maps extracted type names to factories, so that a
// serialized payload carrying a type name can be turned back into a
// typed instance for unmarshaling.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/namekit/typename"
)

// ErrDuplicate indicates that a key is already registered for a
// different type.
var ErrDuplicate = errors.New("typename: duplicate registration")

// Factory creates a fresh instance ready for unmarshaling.
type Factory func() any

// Registry maps rendered type names to factories. The zero value is
// ready to use and renders keys with [typename.Exact]. Safe for
// concurrent use.
type Registry struct {
	mu       sync.RWMutex
	strategy typename.Strategy
	entries  map[string]entry
}

type entry struct {
	name    *typename.Name // nil for explicit registrations
	factory Factory
}

// New creates a Registry rendering keys with the given strategy. A nil
// strategy uses [typename.Exact].
func New(strategy typename.Strategy) *Registry {
	return &Registry{strategy: strategy}
}

// Register adds a factory producing *T under T's rendered name.
// Registering the same T again is a no-op. A different type rendering to
// the same key returns [ErrDuplicate].
func Register[T any](r *Registry) error {
	return r.register(typename.For[T](), func() any { return new(T) })
}

// RegisterNamed adds a factory under an explicit key, bypassing name
// extraction. Registering an occupied key returns [ErrDuplicate].
func (r *Registry) RegisterNamed(key string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, key)
	}
	r.store(key, entry{factory: factory})
	return nil
}

// NewInput returns a fresh instance for key, or nil if the key is
// unknown.
func (r *Registry) NewInput(key string) any {
	r.mu.RLock()
	e, ok := r.entries[key]
	r.mu.RUnlock()

	if !ok {
		return nil
	}
	return e.factory()
}

// Lookup returns the factory registered for key.
func (r *Registry) Lookup(key string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	return e.factory, true
}

// Names returns all registered keys in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for key := range r.entries {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered keys.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Registry) register(n *typename.Name, factory Factory) error {
	key := r.render(n)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[key]; ok {
		// Names are cached per type, so pointer identity distinguishes
		// a repeat of the same type from a key collision.
		if existing.name == n {
			return nil
		}
		return fmt.Errorf("%w: %q", ErrDuplicate, key)
	}
	r.store(key, entry{name: n, factory: factory})
	return nil
}

func (r *Registry) render(n *typename.Name) string {
	if r.strategy == nil {
		return typename.Exact.Render(n)
	}
	return r.strategy.Render(n)
}

// store assumes r.mu is held for writing.
func (r *Registry) store(key string, e entry) {
	if r.entries == nil {
		r.entries = make(map[string]entry)
	}
	r.entries[key] = e
}
