package basis

import "reflect"

// Kind classifies a basis object.
type Kind int

const (
	// KindLiteral is a value used as-is.
	KindLiteral Kind = iota
	// KindFactory is a one-shot factory invoked for its return value.
	KindFactory
	// KindGenerator is a teardown-yielding factory whose invocation
	// produces a single-yield Iterator.
	KindGenerator
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindFactory:
		return "factory"
	case KindGenerator:
		return "generator"
	default:
		return "unknown"
	}
}

// Callable tags a one-shot factory. The wrapped function is invoked with
// zero arguments, or with the parametrization value when the fixture is
// parametrized, and its return value is the resolved value.
//
// Supported signatures: func() V, func() (V, error), func(P) V,
// func(P) (V, error).
type Callable struct {
	Fn any
}

// NewCallable wraps fn as a one-shot factory basis.
func NewCallable(fn any) Callable {
	return Callable{Fn: fn}
}

// GeneratorFunc tags a teardown-yielding factory. The wrapped function is
// invoked like a Callable but must return an Iterator that yields exactly
// one value before completing. The yielded value is the resolved value;
// driving the iterator to completion is the teardown trigger.
//
// Note this wraps a function returning an Iterator, not an Iterator
// itself. Wrapping an already-started iterator defeats per-resolution
// setup.
type GeneratorFunc struct {
	Fn any
}

// NewGeneratorFunc wraps fn as a teardown-yielding factory basis.
func NewGeneratorFunc(fn any) GeneratorFunc {
	return GeneratorFunc{Fn: fn}
}

// Classify reports the static kind of a basis object. Explicit wrappers
// are authoritative. An untagged function is reported as KindFactory:
// distinguishing a one-shot factory from a teardown-yielding one requires
// invoking it, which Classify never does (see AutoResolver).
func Classify(obj any) Kind {
	switch obj.(type) {
	case Callable:
		return KindFactory
	case GeneratorFunc:
		return KindGenerator
	}
	if obj != nil && reflect.ValueOf(obj).Kind() == reflect.Func {
		return KindFactory
	}
	return KindLiteral
}
