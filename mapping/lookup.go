package mapping

import (
	stderrors "errors"
	"sync"

	"github.com/kbukum/fixmap/basis"
	"github.com/kbukum/fixmap/errors"
	"github.com/kbukum/fixmap/logger"
)

// Request is the parametrization context supplied by the host framework
// when a fixture is parametrized. Param carries the current parameter
// value and is threaded unchanged into every factory invocation during
// one resolution. Literals ignore it.
type Request struct {
	Param any
}

// Lookup is the resolved value of a mapping fixture: a key-indexed
// accessor resolving basis objects on demand. Call and Get are
// equivalent; both exist to match the two idiomatic access styles at the
// call site.
//
// A Lookup is created fresh per fixture resolution and tracks every
// teardown handle it started so the host's teardown hook can release
// them with ReleaseAll.
type Lookup[K comparable] struct {
	id           string
	mapping      map[K]any
	resolver     basis.Resolver
	req          *Request
	parametrized bool

	mu      sync.Mutex
	handles []*basis.Handle
}

// ID returns the resolution id used for log correlation.
func (l *Lookup[K]) ID() string { return l.id }

// Get resolves the basis object mapped to key. A literal resolves to
// itself, a one-shot factory to its return value, and a teardown-yielding
// factory to an unstarted *basis.Handle. An absent key fails with a
// KEY_NOT_FOUND error.
func (l *Lookup[K]) Get(key K) (any, error) {
	obj, ok := l.mapping[key]
	if !ok {
		return nil, errors.KeyNotFound(key)
	}

	var (
		v   any
		err error
	)
	if l.parametrized {
		if l.req == nil {
			return nil, errors.ParamMissing()
		}
		v, err = l.resolver.ResolveParametrized(obj, l.req.Param)
	} else {
		v, err = l.resolver.Resolve(obj)
	}
	if err != nil {
		return nil, err
	}

	if h, ok := v.(*basis.Handle); ok {
		l.track(h)
	}

	logger.Get("mapping").Debug("basis resolved", logger.Fields(
		logger.FieldResolutionID, l.id,
		logger.FieldKey, key,
		logger.FieldKind, basis.Classify(obj).String(),
	))
	return v, nil
}

// Call is equivalent to Get.
func (l *Lookup[K]) Call(key K) (any, error) {
	return l.Get(key)
}

// MustGet is Get that panics on error.
func (l *Lookup[K]) MustGet(key K) any {
	v, err := l.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Handles returns the teardown handles started by this Lookup, in
// acquisition order.
func (l *Lookup[K]) Handles() []*basis.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*basis.Handle, len(l.handles))
	copy(out, l.handles)
	return out
}

// ReleaseAll releases every acquired handle in reverse order. Handles
// that were never acquired or are already closed are skipped. Intended
// for the host framework's teardown hook.
func (l *Lookup[K]) ReleaseAll() error {
	l.mu.Lock()
	handles := make([]*basis.Handle, len(l.handles))
	copy(handles, l.handles)
	l.mu.Unlock()

	var errs []error
	for i := len(handles) - 1; i >= 0; i-- {
		h := handles[i]
		if h.State() != basis.StateValueYielded {
			continue
		}
		if err := h.Release(); err != nil {
			logger.Get("mapping").Error("handle release failed",
				logger.ErrorFields("release", err))
			errs = append(errs, err)
		}
	}
	return joinErrors(errs)
}

func (l *Lookup[K]) track(h *basis.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handles = append(l.handles, h)
}

// joinErrors aggregates release failures without inventing an error code:
// each underlying error stays reachable through errors.Is/As.
func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return stderrors.Join(errs...)
	}
}
