package mapping

import (
	"github.com/google/uuid"
	"github.com/kbukum/fixmap/basis"
)

// Basis maps keys to basis objects.
type Basis[K comparable] map[K]any

// Func is the unparametrized fixture-function shape: each invocation
// produces a fresh Lookup resolving factories with zero arguments.
type Func[K comparable] func() *Lookup[K]

// ParamFunc is the parametrized fixture-function shape: the host
// framework supplies the per-invocation Request whose parameter is
// threaded into every factory invocation.
type ParamFunc[K comparable] func(req *Request) *Lookup[K]

// Options configures fixture-function construction.
type Options struct {
	// CopyMapping takes a shallow snapshot of the mapping at construction
	// time, decoupling the fixture from later mutation of the caller's
	// map. Enabled by default.
	CopyMapping bool
	// Resolver is the basis resolution strategy. Defaults to
	// basis.TaggedResolver.
	Resolver basis.Resolver
}

// Option mutates Options.
type Option func(*Options)

// WithCopyMapping controls mapping snapshotting.
func WithCopyMapping(enabled bool) Option {
	return func(o *Options) { o.CopyMapping = enabled }
}

// WithResolver sets the basis resolution strategy.
func WithResolver(r basis.Resolver) Option {
	return func(o *Options) { o.Resolver = r }
}

// WithAutoDetect selects basis.AutoResolver.
func WithAutoDetect() Option {
	return WithResolver(basis.AutoResolver{})
}

func buildOptions(opts []Option) Options {
	o := Options{
		CopyMapping: true,
		Resolver:    basis.TaggedResolver{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New creates an unparametrized mapping fixture function from explicitly
// tagged basis objects. The mapping is snapshotted unless
// WithCopyMapping(false) is given.
func New[K comparable](m Basis[K], opts ...Option) Func[K] {
	o := buildOptions(opts)
	snapshot := snapshotMapping(m, o.CopyMapping)
	return func() *Lookup[K] {
		return &Lookup[K]{
			id:       uuid.NewString(),
			mapping:  snapshot,
			resolver: o.Resolver,
		}
	}
}

// NewParametrized creates a parametrized mapping fixture function from
// explicitly tagged basis objects. Resolving through a nil Request fails
// with a PARAM_MISSING error at lookup time.
func NewParametrized[K comparable](m Basis[K], opts ...Option) ParamFunc[K] {
	o := buildOptions(opts)
	snapshot := snapshotMapping(m, o.CopyMapping)
	return func(req *Request) *Lookup[K] {
		return &Lookup[K]{
			id:           uuid.NewString(),
			mapping:      snapshot,
			resolver:     o.Resolver,
			req:          req,
			parametrized: true,
		}
	}
}

// NewSimple is New with call-time factory detection instead of explicit
// tags. It can misidentify factories in certain situations; see
// basis.AutoResolver.
func NewSimple[K comparable](m Basis[K], opts ...Option) Func[K] {
	return New(m, append([]Option{WithAutoDetect()}, opts...)...)
}

// NewSimpleParametrized is NewParametrized with call-time factory
// detection instead of explicit tags.
func NewSimpleParametrized[K comparable](m Basis[K], opts ...Option) ParamFunc[K] {
	return NewParametrized(m, append([]Option{WithAutoDetect()}, opts...)...)
}

func snapshotMapping[K comparable](m Basis[K], copyMapping bool) map[K]any {
	if !copyMapping {
		return m
	}
	snapshot := make(map[K]any, len(m))
	for k, v := range m {
		snapshot[k] = v
	}
	return snapshot
}
