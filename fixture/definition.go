package fixture

import (
	"github.com/kbukum/fixmap/errors"
	"github.com/kbukum/fixmap/logger"
	"github.com/kbukum/fixmap/mapping"
)

// Releasable is the key-type-erased view of a resolved lookup, used by
// integration code that releases fixtures without knowing their key type.
type Releasable interface {
	ReleaseAll() error
}

// Fixture is the key-type-erased view of a Definition held by a Registry.
// Typed resolution goes through Definition.Resolve via Lookup.
type Fixture interface {
	// Name returns the fixture name.
	Name() string
	// Options returns the fixture options.
	Options() Options
	// Parametrized reports whether the fixture was built with params.
	Parametrized() bool
	// Instantiate resolves the fixture erased of its key type.
	Instantiate(req *mapping.Request) (Releasable, error)
}

// Definition is a named mapping fixture: a constructed fixture function
// plus the options it was registered with.
type Definition[K comparable] struct {
	name string
	opts Options
	fn   mapping.Func[K]
	pfn  mapping.ParamFunc[K]
}

// New builds a Definition from explicitly tagged basis objects. It
// selects the parametrized construction path exactly when opts.Params is
// non-empty and passes the mapping through unchanged.
func New[K comparable](name string, m mapping.Basis[K], opts Options) (*Definition[K], error) {
	return build(name, m, opts, nil)
}

// NewSimple is New with call-time factory detection; see basis.AutoResolver.
func NewSimple[K comparable](name string, m mapping.Basis[K], opts Options) (*Definition[K], error) {
	return build(name, m, opts, []mapping.Option{mapping.WithAutoDetect()})
}

func build[K comparable](name string, m mapping.Basis[K], opts Options, mopts []mapping.Option) (*Definition[K], error) {
	if name == "" {
		return nil, errors.InvalidOptions("name is required")
	}
	opts.ApplyDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if opts.DisableCopyMapping {
		mopts = append(mopts, mapping.WithCopyMapping(false))
	}

	d := &Definition[K]{name: name, opts: opts}
	if opts.Parametrized() {
		d.pfn = mapping.NewParametrized(m, mopts...)
	} else {
		d.fn = mapping.New(m, mopts...)
	}

	logger.Get("fixture").Debug("fixture defined", logger.Fields(
		logger.FieldFixture, name,
		logger.FieldScope, string(opts.Scope),
		logger.FieldParam, len(opts.Params),
	))
	return d, nil
}

// Name returns the fixture name.
func (d *Definition[K]) Name() string { return d.name }

// Options returns the fixture options.
func (d *Definition[K]) Options() Options { return d.opts }

// Parametrized reports whether the fixture was built with params.
func (d *Definition[K]) Parametrized() bool { return d.opts.Parametrized() }

// Resolve produces a fresh Lookup for one fixture invocation. A
// parametrized definition requires a non-nil Request; resolving one
// without fails with a PARAM_MISSING error. Unparametrized definitions
// ignore req.
func (d *Definition[K]) Resolve(req *mapping.Request) (*mapping.Lookup[K], error) {
	if d.opts.Parametrized() {
		if req == nil {
			return nil, errors.ParamMissing().WithDetail("fixture", d.name)
		}
		return d.pfn(req), nil
	}
	return d.fn(), nil
}

// Instantiate implements Fixture.
func (d *Definition[K]) Instantiate(req *mapping.Request) (Releasable, error) {
	return d.Resolve(req)
}
