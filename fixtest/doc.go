// Package fixtest integrates mapping fixtures with Go's testing package,
// the host framework on whose behalf fixmap manages setup and teardown.
//
// Resolve produces a fixture's lookup and registers its release with
// t.Cleanup, so teardown-yielding basis objects are driven to completion
// when the test ends:
//
//	func TestContexts(t *testing.T) {
//	    lookup := fixtest.Resolve(t, contextsDef)
//	    conn := fixtest.Value(t, lookup, "db")
//	    // teardown runs automatically after the test
//	}
//
// RunParametrized runs one subtest per registered param, threading each
// value through the fixture's factories.
package fixtest
