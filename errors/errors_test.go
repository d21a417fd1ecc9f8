package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	err := KeyNotFound("db")
	if !strings.Contains(err.Error(), "KEY_NOT_FOUND") {
		t.Errorf("expected code in error text, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "db") {
		t.Errorf("expected key in error text, got %q", err.Error())
	}
}

func TestAppErrorWithCause(t *testing.T) {
	cause := errors.New("boom")
	err := IteratorExhausted().WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to match the cause")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected cause in error text, got %q", err.Error())
	}
}

func TestAppErrorIsMatchesByCode(t *testing.T) {
	a := KeyNotFound("x")
	b := KeyNotFound("y")
	if !errors.Is(a, b) {
		t.Error("expected two KEY_NOT_FOUND errors to match")
	}
	if errors.Is(a, ParamMissing()) {
		t.Error("expected different codes not to match")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"app error", HandleState("Acquire", "ValueYielded"), ErrCodeHandleState},
		{"wrapped app error", fmt.Errorf("outer: %w", ParamMissing()), ErrCodeParamMissing},
		{"plain error", errors.New("plain"), ""},
		{"nil-safe details", InvalidOptions("scope"), ErrCodeInvalidOptions},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CodeOf(tc.err); got != tc.want {
				t.Errorf("CodeOf = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCodeInvalidBasis, "bad factory").WithDetail("arity", 3)
	if err.Details["arity"] != 3 {
		t.Errorf("expected detail arity=3, got %v", err.Details["arity"])
	}
}

func TestHasCode(t *testing.T) {
	if !HasCode(NotRegistered("contexts"), ErrCodeNotRegistered) {
		t.Error("expected HasCode to match NOT_REGISTERED")
	}
	if HasCode(nil, ErrCodeNotRegistered) {
		t.Error("expected HasCode(nil) to be false")
	}
}
