// Package fixture registers mapping fixtures under names so tests can
// resolve them through a registry, mirroring how a host test framework
// discovers named fixtures.
//
// A Definition pairs a name with a constructed mapping fixture function
// and its options. The parametrized construction path is selected exactly
// when a non-empty Params list is supplied; the basis mapping is handed
// to the mapping package unchanged.
//
//	def, err := fixture.Register("contexts", mapping.Basis[int]{
//	    0: 5,
//	    1: basis.NewCallable(func() int { return 6 }),
//	}, fixture.Options{})
//
// Scope, caching, and finalization ordering stay with the host framework;
// a Definition only builds lookups and reports its options.
package fixture
