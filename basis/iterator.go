package basis

import "sync"

// Iterator provides pull-based access to a sequence of values.
// A teardown-yielding basis produces an Iterator that yields exactly one
// value; code run on exhaustion or Close is its teardown.
type Iterator interface {
	// Next returns the next value. Returns (nil, false, nil) when exhausted.
	Next() (any, bool, error)
	// Close releases any resources held by the iterator. Implementations
	// must run pending teardown if a value was already yielded.
	Close() error
}

// SingleYield builds an Iterator that yields value once and runs teardown
// when it is exhausted or closed. teardown runs at most once, and only if
// the value was actually yielded.
func SingleYield(value any, teardown func()) Iterator {
	if teardown == nil {
		return SingleYieldErr(value, nil)
	}
	return SingleYieldErr(value, func() error {
		teardown()
		return nil
	})
}

// SingleYieldErr is SingleYield for teardown functions that can fail.
func SingleYieldErr(value any, teardown func() error) Iterator {
	return &singleYieldIterator{value: value, teardown: teardown}
}

type singleYieldIterator struct {
	mu       sync.Mutex
	value    any
	teardown func() error
	yielded  bool
	done     bool
}

func (it *singleYieldIterator) Next() (any, bool, error) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if !it.yielded && !it.done {
		it.yielded = true
		return it.value, true, nil
	}
	return nil, false, it.finish()
}

func (it *singleYieldIterator) Close() error {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.finish()
}

// finish runs teardown once. Callers hold it.mu.
func (it *singleYieldIterator) finish() error {
	if it.done {
		return nil
	}
	it.done = true
	if it.teardown != nil && it.yielded {
		return it.teardown()
	}
	return nil
}

// FromSlice builds an Iterator over the given values with no teardown.
// Mostly useful in tests and as a deliberate example of a value that
// satisfies the Iterator capability.
func FromSlice(values []any) Iterator {
	return &sliceIterator{values: values}
}

type sliceIterator struct {
	values []any
	pos    int
}

func (it *sliceIterator) Next() (any, bool, error) {
	if it.pos >= len(it.values) {
		return nil, false, nil
	}
	v := it.values[it.pos]
	it.pos++
	return v, true, nil
}

func (it *sliceIterator) Close() error { return nil }
