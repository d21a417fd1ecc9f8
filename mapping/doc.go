// Package mapping constructs mapping fixtures: fixture functions whose
// resolved value is a key-indexed lookup over a mapping of basis objects.
//
// A fixture function produces a fresh Lookup per invocation. The Lookup
// resolves each basis object on demand, every time a key is accessed;
// there is no memoization, and keys resolve strictly in access order.
// Accessing a teardown-yielding key again starts another handle, and each
// started handle is tracked and released independently.
//
//	contexts := mapping.New(mapping.Basis[int]{
//	    0: 5,
//	    1: basis.NewCallable(func() int { return 6 }),
//	    2: basis.NewGeneratorFunc(func() basis.Iterator {
//	        return basis.SingleYield(7, nil)
//	    }),
//	})
//	lookup := contexts()
//	v, err := lookup.Get(0)
//
// The simple constructors (NewSimple, NewSimpleParametrized) detect
// factories at call time instead of requiring explicit tags; see
// basis.AutoResolver for the documented misclassification trade-off.
package mapping
