package errors

import (
	"errors"
	"fmt"
)

// AppError is the unified fixmap error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an AppError with the same code.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if !errors.As(target, &appErr) {
		return false
	}
	return e.Code == appErr.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// CodeOf returns the error code of err, or "" if err is not an AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// --- Common Error Constructors ---

// KeyNotFound creates a new AppError for a key absent from a basis mapping.
func KeyNotFound(key any) *AppError {
	return &AppError{
		Code: ErrCodeKeyNotFound, Message: fmt.Sprintf("no basis object mapped to key %v", key),
		Details: map[string]any{"key": fmt.Sprintf("%v", key)},
	}
}

// NotRegistered creates a new AppError for an unknown fixture name.
func NotRegistered(name string) *AppError {
	return &AppError{
		Code: ErrCodeNotRegistered, Message: fmt.Sprintf("fixture %q is not registered", name),
		Details: map[string]any{"fixture": name},
	}
}

// IteratorExhausted creates a new AppError for a generator basis that
// completed without yielding a value.
func IteratorExhausted() *AppError {
	return &AppError{
		Code:    ErrCodeIteratorExhausted,
		Message: "generator basis completed without yielding a value",
	}
}

// HandleState creates a new AppError for a handle protocol violation.
func HandleState(op, state string) *AppError {
	return &AppError{
		Code: ErrCodeHandleState, Message: fmt.Sprintf("%s is not allowed in state %s", op, state),
		Details: map[string]any{"op": op, "state": state},
	}
}

// InvalidBasis creates a new AppError for a factory with an unsupported signature.
func InvalidBasis(reason string) *AppError {
	return &AppError{Code: ErrCodeInvalidBasis, Message: reason}
}

// ParamMissing creates a new AppError for a parametrized lookup resolved
// without a parametrization context.
func ParamMissing() *AppError {
	return &AppError{
		Code:    ErrCodeParamMissing,
		Message: "parametrized fixture resolved without a parametrization context",
	}
}

// InvalidOptions creates a new AppError for fixture options that failed validation.
func InvalidOptions(reason string) *AppError {
	return &AppError{Code: ErrCodeInvalidOptions, Message: fmt.Sprintf("invalid fixture options: %s", reason)}
}
