package fixture

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/fixmap/errors"
)

// Scope mirrors the host framework's fixture sharing scopes. fixmap does
// not enforce scoping itself; the value is carried for the integration
// layer (see fixtest) and for introspection.
type Scope string

const (
	ScopeFunction Scope = "function"
	ScopePackage  Scope = "package"
	ScopeSession  Scope = "session"
)

// Options configures a fixture definition.
type Options struct {
	// Scope is the sharing scope reported to the host framework.
	Scope Scope `validate:"omitempty,oneof=function package session"`
	// Params parametrizes the fixture: one invocation per value, with the
	// current value passed to every mapped factory (discarded for
	// literals). A non-empty list selects the parametrized construction
	// path.
	Params []any
	// IDs label the params in subtest names. When set, it must have one
	// id per param.
	IDs []string
	// Autouse marks the fixture for resolution in every test that can see
	// it, without being requested explicitly.
	Autouse bool
	// DisableCopyMapping aliases the caller's mapping instead of taking
	// the default shallow snapshot; see mapping.Options.CopyMapping.
	DisableCopyMapping bool
}

// ApplyDefaults applies default values to fixture options.
func (o *Options) ApplyDefaults() {
	if o.Scope == "" {
		o.Scope = ScopeFunction
	}
}

// Validate validates fixture options.
func (o *Options) Validate() error {
	if err := getValidator().Struct(o); err != nil {
		return errors.InvalidOptions(err.Error()).WithCause(err)
	}
	if len(o.IDs) > 0 && len(o.IDs) != len(o.Params) {
		return errors.InvalidOptions(fmt.Sprintf(
			"ids must match params (%d ids for %d params)", len(o.IDs), len(o.Params)))
	}
	return nil
}

// Parametrized reports whether a non-empty params list was supplied.
func (o *Options) Parametrized() bool {
	return len(o.Params) > 0
}

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}
