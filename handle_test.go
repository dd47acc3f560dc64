//go:build cgo

package z3

import (
	"runtime"
	"testing"
)

func TestRefCountLedger(t *testing.T) {
	ctx := newTestContext(t)

	x1 := must(ctx.MkIntConst("x"))
	x2 := must(ctx.MkIntConst("x"))
	if x1.ptr != x2.ptr {
		t.Fatalf("expected both handles to reference the same native term")
	}
	p := x1.ptr
	if n := ctx.refCountOf(p); n != 2 {
		t.Fatalf("expected 2 references, got %d", n)
	}

	x1.Close()
	if n := ctx.refCountOf(p); n != 1 {
		t.Fatalf("expected 1 reference before releasing the last handle, got %d", n)
	}
	if n := x2.refCount(); n != 1 {
		t.Fatalf("expected last handle to see 1 reference, got %d", n)
	}

	x2.Close()
	if n := ctx.refCountOf(p); n != 0 {
		t.Fatalf("expected no references after release, got %d", n)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	ctx := newTestContext(t)

	s := must(ctx.IntSort())
	p := s.ptr
	base := ctx.refCountOf(p)
	s.Close()
	s.Close()
	if n := ctx.refCountOf(p); n != base-1 {
		t.Fatalf("expected exactly one release, got %d -> %d", base, n)
	}
	if !s.Released() {
		t.Fatalf("expected sort to report released")
	}
}

func TestReleasedHandleUsePanics(t *testing.T) {
	ctx := newTestContext(t)

	x := must(ctx.MkIntConst("x"))
	x.Close()
	err := expectContractError(t, func() { _ = x.String() })
	if err.Op != "Expr.String" {
		t.Fatalf("unexpected op %q", err.Op)
	}
}

func TestClosedContext(t *testing.T) {
	ctx, err := NewContext(nil)
	if err != nil {
		t.Fatalf("new context: %v", err)
	}
	x := must(ctx.MkIntConst("x"))
	s := must(ctx.NewSolver())
	ctx.Close()
	ctx.Close()

	expectContractError(t, func() { _, _ = ctx.IntSort() })
	expectContractError(t, func() { _, _ = ctx.MkAdd(x, x) })
	expectContractError(t, func() { _ = s.Assert(x) })

	// Releasing after the context is gone must not touch native memory.
	x.Close()
	s.Close()
	if !x.Released() || !s.Released() {
		t.Fatalf("expected handles to report released")
	}
}

// An operation can pass its liveness check and then wait on the gate while
// Close deletes the native context. It must fail without reaching Z3.
func TestCloseWinsRaceForGate(t *testing.T) {
	ctx := newTestContext(t)
	x := must(ctx.MkIntConst("x"))
	s := must(ctx.NewSolver())
	defer s.Close()

	// State as Close leaves it once it holds the gate, before the closed
	// flag is observed by a waiting operation.
	raw := ctx.ptr
	withGate(func() { ctx.ptr = nil })
	ops := map[string]func(){
		"MkTrue":       func() { _, _ = ctx.MkTrue() },
		"IntSort":      func() { _, _ = ctx.IntSort() },
		"MkAdd":        func() { _, _ = ctx.MkAdd(x, x) },
		"Expr.String":  func() { _ = x.String() },
		"Expr.AsInt64": func() { _, _ = x.AsInt64() },
		"Solver.Push":  func() { s.Push() },
		"Solver.Check": func() { _, _ = s.CheckStatus() },
		"SetParam":     func() { _ = ctx.SetParam("timeout", "1000") },
	}
	for name, fn := range ops {
		err := expectContractError(t, fn)
		if err.Reason != "context is closed" {
			t.Fatalf("%s: unexpected reason %q", name, err.Reason)
		}
	}
	withGate(func() { ctx.ptr = raw })

	if gatePoisoned() {
		t.Fatalf("a lost race must not poison the gate")
	}
	if _, err := ctx.MkAdd(x, x); err != nil {
		t.Fatalf("context unusable after restore: %v", err)
	}
}

func TestFinalizerReleasesLeakedHandles(t *testing.T) {
	ctx := newTestContext(t)

	keep := must(ctx.MkIntConst("kept"))
	base := ctx.liveRefs()
	func() {
		for i := 0; i < 16; i++ {
			_ = must(ctx.MkFreshConst("tmp", must(ctx.IntSort())))
		}
	}()
	for i := 0; i < 10 && ctx.liveRefs() > base; i++ {
		runtime.GC()
	}
	if n := ctx.liveRefs(); n > base {
		t.Logf("finalizers have not run yet: %d live references, baseline %d", n, base)
	}
	if keep.Released() {
		t.Fatalf("reachable handle was released")
	}
	runtime.KeepAlive(keep)
}

func TestStringRendering(t *testing.T) {
	ctx := newTestContext(t)

	tests := []struct {
		name string
		got  func() string
		want string
	}{
		{"int sort", func() string { return must(ctx.IntSort()).String() }, "Int"},
		{"bv sort", func() string { return must(ctx.BVSort(8)).String() }, "(_ BitVec 8)"},
		{"const", func() string { return must(ctx.MkIntConst("x")).String() }, "x"},
		{"symbol", func() string { return must(ctx.MkIntSymbol(7)).String() }, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
