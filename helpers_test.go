//go:build cgo

package z3

import (
	"errors"
	"testing"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func newTestContext(t *testing.T) *Context {
	t.Helper()
	ctx, err := NewContext(nil)
	if err != nil {
		t.Fatalf("new context: %v", err)
	}
	t.Cleanup(ctx.Close)
	return ctx
}

// expectContractError runs fn and fails unless it panics with a
// *ContractError.
func expectContractError(t *testing.T, fn func()) *ContractError {
	t.Helper()
	var got *ContractError
	func() {
		defer func() {
			r := recover()
			err, ok := r.(error)
			if !ok || !errors.As(err, &got) {
				t.Fatalf("expected *ContractError panic, got %v", r)
			}
		}()
		fn()
	}()
	return got
}

// checkSat asserts every constraint on a fresh solver and returns the model
// of a satisfiable check.
func checkSat(t *testing.T, ctx *Context, constraints ...*Expr) *Model {
	t.Helper()
	s := must(ctx.NewSolver())
	t.Cleanup(s.Close)
	for _, c := range constraints {
		if err := s.Assert(c); err != nil {
			t.Fatalf("assert %s: %v", c, err)
		}
	}
	ok, err := s.Check()
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !ok {
		t.Fatalf("expected sat")
	}
	m := must(s.Model())
	t.Cleanup(m.Close)
	return m
}

func evalInt(t *testing.T, m *Model, e *Expr) int64 {
	t.Helper()
	v, err := must(m.Eval(e)).AsInt64()
	if err != nil {
		t.Fatalf("eval %s: %v", e, err)
	}
	return v
}

func evalBool(t *testing.T, m *Model, e *Expr) bool {
	t.Helper()
	v, err := must(m.Eval(e)).AsBool()
	if err != nil {
		t.Fatalf("eval %s: %v", e, err)
	}
	return v
}

func gatePoisoned() bool {
	gate.mu.Lock()
	defer gate.mu.Unlock()
	return gate.poisoned
}
