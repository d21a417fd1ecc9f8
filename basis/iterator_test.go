package basis

import (
	"errors"
	"testing"
)

func TestSingleYieldYieldsOnce(t *testing.T) {
	it := SingleYield("conn", nil)

	v, ok, err := it.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a value on first pull")
	}
	if v != "conn" {
		t.Errorf("expected 'conn', got %v", v)
	}

	_, ok, err = it.Next()
	if err != nil {
		t.Fatalf("second Next failed: %v", err)
	}
	if ok {
		t.Error("expected exhaustion on second pull")
	}
}

func TestSingleYieldTeardownOnClose(t *testing.T) {
	closed := 0
	it := SingleYield("conn", func() { closed++ })

	if _, _, err := it.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if closed != 0 {
		t.Error("teardown must not run before completion")
	}

	if err := it.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if closed != 1 {
		t.Errorf("expected exactly one teardown, got %d", closed)
	}

	// Close is idempotent.
	if err := it.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if closed != 1 {
		t.Errorf("teardown ran again on repeated Close: %d", closed)
	}
}

func TestSingleYieldTeardownOnExhaustion(t *testing.T) {
	closed := 0
	it := SingleYield("conn", func() { closed++ })

	it.Next()
	it.Next()
	if closed != 1 {
		t.Errorf("expected teardown on exhaustion, got %d runs", closed)
	}
	it.Close()
	if closed != 1 {
		t.Errorf("teardown ran again on Close after exhaustion: %d", closed)
	}
}

func TestSingleYieldNoTeardownWithoutYield(t *testing.T) {
	closed := 0
	it := SingleYield("conn", func() { closed++ })

	if err := it.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if closed != 0 {
		t.Error("teardown must not run when the value was never yielded")
	}
}

func TestSingleYieldErrPropagates(t *testing.T) {
	want := errors.New("release failed")
	it := SingleYieldErr("conn", func() error { return want })

	it.Next()
	if err := it.Close(); !errors.Is(err, want) {
		t.Errorf("expected teardown error, got %v", err)
	}
}

func TestFromSlice(t *testing.T) {
	it := FromSlice([]any{1, 2})

	v, ok, _ := it.Next()
	if !ok || v != 1 {
		t.Errorf("expected 1, got %v (ok=%v)", v, ok)
	}
	v, ok, _ = it.Next()
	if !ok || v != 2 {
		t.Errorf("expected 2, got %v (ok=%v)", v, ok)
	}
	if _, ok, _ := it.Next(); ok {
		t.Error("expected exhaustion")
	}
	if err := it.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
