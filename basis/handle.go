package basis

import (
	"sync"

	"github.com/kbukum/fixmap/errors"
)

// HandleState is the lifecycle state of a Handle.
type HandleState int

const (
	// StateNotStarted means the single value has not been pulled yet.
	StateNotStarted HandleState = iota
	// StateValueYielded means the value was pulled and teardown is pending.
	StateValueYielded
	// StateClosed means the iterator was driven to completion.
	StateClosed
)

// String returns the human-readable name of the state.
func (s HandleState) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateValueYielded:
		return "ValueYielded"
	case StateClosed:
		return "Closed"
	default:
		return "unknown"
	}
}

// Handle is the two-phase view of a teardown-yielding resolution:
// Acquire pulls the single yielded value, Release drives the underlying
// iterator to completion. The host framework's teardown hook calls
// Release; the resolving core never does.
//
// Valid transitions are Acquire (NotStarted -> ValueYielded) and Release
// (ValueYielded -> Closed). Acquiring twice or releasing before acquiring
// is a contract violation and fails with a HANDLE_STATE error.
type Handle struct {
	mu    sync.Mutex
	it    Iterator
	state HandleState
	value any
}

// NewHandle wraps a single-yield iterator in a fresh, unstarted Handle.
func NewHandle(it Iterator) *Handle {
	return &Handle{it: it}
}

// State returns the current lifecycle state.
func (h *Handle) State() HandleState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Acquire pulls the single yielded value. An iterator that completes
// without yielding fails with an ITERATOR_EXHAUSTED error: the factory
// violated the single-yield contract, and that authoring bug surfaces
// rather than being recovered.
func (h *Handle) Acquire() (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != StateNotStarted {
		return nil, errors.HandleState("Acquire", h.state.String())
	}

	v, ok, err := h.it.Next()
	if err != nil {
		h.state = StateClosed
		return nil, err
	}
	if !ok {
		h.state = StateClosed
		return nil, errors.IteratorExhausted()
	}

	h.value = v
	h.state = StateValueYielded
	return v, nil
}

// Value returns the value produced by Acquire. It fails with a
// HANDLE_STATE error if the value has not been yielded.
func (h *Handle) Value() (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state != StateValueYielded {
		return nil, errors.HandleState("Value", h.state.String())
	}
	return h.value, nil
}

// Release drives the iterator to completion and closes it. A second value
// is never requested: the single-yield contract makes it undefined.
func (h *Handle) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != StateValueYielded {
		return errors.HandleState("Release", h.state.String())
	}

	h.state = StateClosed
	return h.it.Close()
}
