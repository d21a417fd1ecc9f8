package fixture

import (
	"sync"

	"github.com/kbukum/fixmap/mapping"
)

// defaultRegistry is initialized on first use so importing this package
// costs nothing until a fixture is actually registered.
var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the package default registry, creating it on first use.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register builds a Definition from explicitly tagged basis objects and
// adds it to the default registry.
func Register[K comparable](name string, m mapping.Basis[K], opts Options) (*Definition[K], error) {
	return RegisterIn(Default(), name, m, opts)
}

// RegisterSimple is Register with call-time factory detection.
func RegisterSimple[K comparable](name string, m mapping.Basis[K], opts Options) (*Definition[K], error) {
	return RegisterSimpleIn(Default(), name, m, opts)
}

// Get returns a fixture from the default registry.
func Get(name string) (Fixture, error) {
	return Default().Get(name)
}
