package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Lookup errors
const (
	// ErrCodeKeyNotFound indicates a lookup on a key absent from the basis mapping.
	ErrCodeKeyNotFound ErrorCode = "KEY_NOT_FOUND"
	// ErrCodeNotRegistered indicates a fixture name with no registered definition.
	ErrCodeNotRegistered ErrorCode = "NOT_REGISTERED"
)

// Basis-object and teardown-protocol errors
const (
	// ErrCodeIteratorExhausted indicates a generator basis completed without
	// yielding a value.
	ErrCodeIteratorExhausted ErrorCode = "ITERATOR_EXHAUSTED"
	// ErrCodeHandleState indicates a handle protocol violation: Acquire called
	// twice, or Release before Acquire.
	ErrCodeHandleState ErrorCode = "HANDLE_STATE"
	// ErrCodeInvalidBasis indicates a factory with an unsupported signature.
	ErrCodeInvalidBasis ErrorCode = "INVALID_BASIS"
)

// Construction and registration errors
const (
	// ErrCodeParamMissing indicates a parametrized lookup resolved without a
	// parametrization context.
	ErrCodeParamMissing ErrorCode = "PARAM_MISSING"
	// ErrCodeInvalidOptions indicates fixture options that failed validation.
	ErrCodeInvalidOptions ErrorCode = "INVALID_OPTIONS"
)
