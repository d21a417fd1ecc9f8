package fixture

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kbukum/fixmap/errors"
	"github.com/kbukum/fixmap/mapping"
)

// Registry holds named fixture definitions.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]Fixture
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Fixture)}
}

// Add registers a fixture definition. Re-registering a name fails.
func (r *Registry) Add(f Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := f.Name()
	if _, exists := r.defs[name]; exists {
		return errors.InvalidOptions(fmt.Sprintf("fixture %q already registered", name))
	}
	r.defs[name] = f
	return nil
}

// Get returns a registered fixture by name.
func (r *Registry) Get(name string) (Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.defs[name]
	if !ok {
		return nil, errors.NotRegistered(name)
	}
	return f, nil
}

// MustGet is Get that panics on error.
func (r *Registry) MustGet(name string) Fixture {
	f, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return f
}

// List returns sorted names of all registered fixtures.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Autouse returns all registered autouse fixtures, sorted by name.
func (r *Registry) Autouse() []Fixture {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Fixture, 0)
	for _, f := range r.defs {
		if f.Options().Autouse {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Lookup provides key-typed retrieval of a registered definition.
func Lookup[K comparable](r *Registry, name string) (*Definition[K], error) {
	f, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	d, ok := f.(*Definition[K])
	if !ok {
		return nil, errors.NotRegistered(name).
			WithDetail("reason", fmt.Sprintf("registered with a different key type (%T)", f))
	}
	return d, nil
}

// RegisterIn builds a Definition from explicitly tagged basis objects and
// adds it to the given registry.
func RegisterIn[K comparable](r *Registry, name string, m mapping.Basis[K], opts Options) (*Definition[K], error) {
	d, err := New(name, m, opts)
	if err != nil {
		return nil, err
	}
	if err := r.Add(d); err != nil {
		return nil, err
	}
	return d, nil
}

// RegisterSimpleIn is RegisterIn with call-time factory detection.
func RegisterSimpleIn[K comparable](r *Registry, name string, m mapping.Basis[K], opts Options) (*Definition[K], error) {
	d, err := NewSimple(name, m, opts)
	if err != nil {
		return nil, err
	}
	if err := r.Add(d); err != nil {
		return nil, err
	}
	return d, nil
}
