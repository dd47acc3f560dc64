//go:build cgo

package z3

import (
	"errors"
	"sync"
	"testing"
)

func TestGatePoisoning(t *testing.T) {
	ctx := newTestContext(t)
	x := must(ctx.MkIntConst("x"))
	t.Cleanup(func() {
		gate.mu.Lock()
		gate.poisoned = false
		gate.mu.Unlock()
	})

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Fatalf("expected original panic to propagate, got %v", r)
			}
		}()
		withGate(func() { panic("boom") })
	}()

	func() {
		defer func() {
			r := recover()
			err, ok := r.(error)
			if !ok || !errors.Is(err, ErrGatePoisoned) {
				t.Fatalf("expected ErrGatePoisoned, got %v", r)
			}
		}()
		withGate(func() {})
	}()

	// Releases still never fail.
	x.Close()
}

func TestContractErrorDoesNotPoisonGate(t *testing.T) {
	ctx := newTestContext(t)
	expectContractError(t, func() { _, _ = ctx.MkAnd() })
	if _, err := ctx.MkTrue(); err != nil {
		t.Fatalf("gate unusable after contract violation: %v", err)
	}
}

func TestConcurrentConstruction(t *testing.T) {
	ctx := newTestContext(t)
	x := must(ctx.MkIntConst("x"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				e := must(ctx.MkAdd(x, must(ctx.MkInt(int64(i*j)))))
				_ = e.String()
				e.Close()
			}
		}(i)
	}
	wg.Wait()

	if n := x.refCount(); n != 1 {
		t.Fatalf("expected x to keep one reference, got %d", n)
	}
}
