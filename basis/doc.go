// Package basis implements the basis-object model for mapping fixtures.
//
// A basis object is the value a fixture resolves from: a literal used
// as-is, a one-shot factory invoked for its return value, or a
// teardown-yielding factory whose invocation produces an Iterator that
// yields exactly one value before completing.
//
// Two resolution strategies share the Resolver interface:
//   - TaggedResolver: factories are marked explicitly with Callable or
//     GeneratorFunc wrappers. No runtime guessing.
//   - AutoResolver: basis objects are classified at call time by invoking
//     callables and inspecting the result. Less verbose, but a one-shot
//     factory that happens to return an Iterator is misclassified as
//     teardown-yielding. Callers needing certainty must tag explicitly.
//
// Teardown sequencing follows a two-phase handle protocol: Acquire pulls
// the single yielded value, Release drives the iterator to completion.
// Release is invoked by the host's teardown mechanism (see fixtest), not
// by this package.
package basis
