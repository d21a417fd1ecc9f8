package fixtest

import (
	"fmt"
	"testing"

	"github.com/kbukum/fixmap/basis"
	"github.com/kbukum/fixmap/fixture"
	"github.com/kbukum/fixmap/mapping"
)

// Resolve produces a fresh lookup from an unparametrized definition and
// registers its release with t.Cleanup.
func Resolve[K comparable](t *testing.T, def *fixture.Definition[K]) *mapping.Lookup[K] {
	t.Helper()
	return resolve(t, def, nil)
}

// ResolveParam produces a fresh lookup from a parametrized definition
// with the given parameter value, registering release with t.Cleanup.
func ResolveParam[K comparable](t *testing.T, def *fixture.Definition[K], param any) *mapping.Lookup[K] {
	t.Helper()
	return resolve(t, def, &mapping.Request{Param: param})
}

func resolve[K comparable](t *testing.T, def *fixture.Definition[K], req *mapping.Request) *mapping.Lookup[K] {
	t.Helper()

	lookup, err := def.Resolve(req)
	if err != nil {
		t.Fatalf("failed to resolve fixture %s: %v", def.Name(), err)
	}
	t.Cleanup(func() {
		if err := lookup.ReleaseAll(); err != nil {
			t.Errorf("failed to release fixture %s: %v", def.Name(), err)
		}
	})
	return lookup
}

// RunParametrized runs fn once per registered param in a subtest named by
// the matching id (or the param's string form when no ids were given).
// Each subtest resolves its own lookup; nothing is shared across params.
func RunParametrized[K comparable](t *testing.T, def *fixture.Definition[K], fn func(t *testing.T, lookup *mapping.Lookup[K], param any)) {
	t.Helper()

	opts := def.Options()
	if !def.Parametrized() {
		t.Fatalf("fixture %s is not parametrized", def.Name())
	}

	for i, param := range opts.Params {
		name := fmt.Sprint(param)
		if i < len(opts.IDs) {
			name = opts.IDs[i]
		}
		t.Run(name, func(t *testing.T) {
			fn(t, ResolveParam(t, def, param), param)
		})
	}
}

// Value fetches a key from a lookup, failing the test on error. When the
// resolution is a teardown handle, Value acquires it and registers its
// release with t.Cleanup, returning the yielded value.
func Value[K comparable](t *testing.T, lookup *mapping.Lookup[K], key K) any {
	t.Helper()

	v, err := lookup.Get(key)
	if err != nil {
		t.Fatalf("lookup failed for key %v: %v", key, err)
	}

	h, ok := v.(*basis.Handle)
	if !ok {
		return v
	}

	yielded, err := h.Acquire()
	if err != nil {
		t.Fatalf("failed to acquire value for key %v: %v", key, err)
	}
	t.Cleanup(func() {
		if h.State() != basis.StateValueYielded {
			return
		}
		if err := h.Release(); err != nil {
			t.Errorf("failed to release value for key %v: %v", key, err)
		}
	})
	return yielded
}

// ResolveAutouse resolves every unparametrized autouse fixture in the
// registry, registering release with t.Cleanup. Parametrized autouse
// fixtures are skipped: without a param list selection they have no
// single resolution, and they belong in RunParametrized.
func ResolveAutouse(t *testing.T, reg *fixture.Registry) {
	t.Helper()

	for _, f := range reg.Autouse() {
		if f.Parametrized() {
			continue
		}
		rel, err := f.Instantiate(nil)
		if err != nil {
			t.Fatalf("failed to resolve autouse fixture %s: %v", f.Name(), err)
		}
		t.Cleanup(func() {
			if err := rel.ReleaseAll(); err != nil {
				t.Errorf("failed to release autouse fixture %s: %v", f.Name(), err)
			}
		})
	}
}
