//go:build cgo

package z3

import (
	"errors"
	"strings"
	"testing"
)

func TestIntegerModel(t *testing.T) {
	ctx := newTestContext(t)
	x := must(ctx.MkIntConst("x"))
	y := must(ctx.MkIntConst("y"))
	zero := must(ctx.MkInt(0))
	two := must(ctx.MkInt(2))
	seven := must(ctx.MkInt(7))

	m := checkSat(t, ctx,
		must(ctx.MkGt(x, y)),
		must(ctx.MkGt(y, zero)),
		must(ctx.MkEq(must(ctx.MkMod(y, seven)), two)),
		must(ctx.MkGt(must(ctx.MkAdd(x, two)), seven)),
	)
	xv := evalInt(t, m, x)
	yv := evalInt(t, m, y)
	if !(xv > yv && yv > 0 && yv%7 == 2 && xv+2 > 7) {
		t.Fatalf("model x=%d y=%d violates the constraints", xv, yv)
	}
	if m.NumConsts() < 2 {
		t.Fatalf("expected x and y in model, got %d constants", m.NumConsts())
	}
}

func TestBitVectorModel(t *testing.T) {
	ctx := newTestContext(t)
	x := must(ctx.MkBVConst("x", 8))
	one := must(ctx.MkBVAdd(must(ctx.MkBVFromUint64(0, 8)), must(ctx.MkBVFromUint64(1, 8))))

	m := checkSat(t, ctx, must(ctx.MkEq(x, one)))
	if v := evalInt(t, m, x); v != 1 {
		t.Fatalf("expected x = 1, got %d", v)
	}
	if w := must(must(x.Sort()).BVSize()); w != 8 {
		t.Fatalf("expected width 8, got %d", w)
	}
}

func TestBitVectorShift(t *testing.T) {
	ctx := newTestContext(t)
	bv32 := must(ctx.BVSort(32))
	x := must(ctx.MkBVConst("x", 32))
	num := func(s string) *Expr { return must(ctx.MkNumeral(s, bv32)) }

	m := checkSat(t, ctx,
		must(ctx.MkBVUGT(x, num("0"))),
		must(ctx.MkBVULT(x, num("4"))),
		must(ctx.MkEq(must(ctx.MkBVShl(x, num("1"))), num("4"))),
	)
	if v := evalInt(t, m, x); v != 2 {
		t.Fatalf("expected x = 2, got %d", v)
	}
}

func TestCheckStatus(t *testing.T) {
	ctx := newTestContext(t)
	x := must(ctx.MkIntConst("x"))
	s := must(ctx.NewSolver())
	defer s.Close()

	must(0, s.Assert(must(ctx.MkGt(x, must(ctx.MkInt(0))))))
	s.Push()
	must(0, s.Assert(must(ctx.MkLt(x, must(ctx.MkInt(0))))))
	if s.NumScopes() != 1 {
		t.Fatalf("expected 1 scope, got %d", s.NumScopes())
	}

	st, err := s.CheckStatus()
	if err != nil || st != Unsatisfiable {
		t.Fatalf("expected unsat, got %s, %v", st, err)
	}
	if ok, err := s.Check(); ok || err != nil {
		t.Fatalf("expected false, got %v, %v", ok, err)
	}

	must(0, s.Pop(1))
	if ok, err := s.Check(); !ok || err != nil {
		t.Fatalf("expected sat after pop, got %v, %v", ok, err)
	}
	if got := must(s.Assertions()); len(got) != 1 {
		t.Fatalf("expected 1 assertion after pop, got %d", len(got))
	}

	var zerr *Error
	if err := s.Pop(5); !errors.As(err, &zerr) {
		t.Fatalf("expected *Error popping too many scopes, got %v", err)
	}

	s.Reset()
	if got := must(s.Assertions()); len(got) != 0 {
		t.Fatalf("expected no assertions after reset, got %d", len(got))
	}
}

func TestAssertionsKeepOrderAndDuplicates(t *testing.T) {
	ctx := newTestContext(t)
	p := must(ctx.MkBoolConst("p"))
	q := must(ctx.MkBoolConst("q"))
	s := must(ctx.NewSolver())
	defer s.Close()

	for _, e := range []*Expr{p, q, p} {
		must(0, s.Assert(e))
	}
	got := must(s.Assertions())
	if len(got) != 3 || !got[0].Equal(p) || !got[1].Equal(q) || !got[2].Equal(p) {
		t.Fatalf("unexpected assertions %v", got)
	}
}

func TestUnsatCore(t *testing.T) {
	ctx := newTestContext(t)
	x := must(ctx.MkIntConst("x"))
	a := must(ctx.MkBoolConst("a"))
	b := must(ctx.MkBoolConst("b"))
	s := must(ctx.NewSolver())
	defer s.Close()

	must(0, s.AssertAndTrack(must(ctx.MkGt(x, must(ctx.MkInt(10)))), a))
	must(0, s.AssertAndTrack(must(ctx.MkLt(x, must(ctx.MkInt(5)))), b))
	if ok, err := s.Check(); ok || err != nil {
		t.Fatalf("expected unsat, got %v, %v", ok, err)
	}
	if core := must(s.UnsatCore()); len(core) != 2 {
		t.Fatalf("expected both tracked assertions in the core, got %v", core)
	}
}

func TestFromString(t *testing.T) {
	ctx := newTestContext(t)
	s := must(ctx.NewSolver())
	defer s.Close()

	if err := s.FromString("(declare-const x Int) (assert (> x 3))"); err != nil {
		t.Fatalf("from string: %v", err)
	}
	if ok, err := s.Check(); !ok || err != nil {
		t.Fatalf("expected sat, got %v, %v", ok, err)
	}
	if !strings.Contains(s.String(), "x") {
		t.Fatalf("expected solver to mention x:\n%s", s)
	}

	var zerr *Error
	if err := s.FromString("(assert (> y"); !errors.As(err, &zerr) {
		t.Fatalf("expected *Error for malformed input, got %v", err)
	}
}

func TestModelOutlivesSolver(t *testing.T) {
	ctx := newTestContext(t)
	x := must(ctx.MkIntConst("x"))
	s := must(ctx.NewSolver())
	must(0, s.Assert(must(ctx.MkEq(x, must(ctx.MkInt(3))))))
	if ok, err := s.Check(); !ok || err != nil {
		t.Fatalf("expected sat, got %v, %v", ok, err)
	}
	m := must(s.Model())
	defer m.Close()
	s.Close()

	if v := evalInt(t, m, x); v != 3 {
		t.Fatalf("expected x = 3, got %d", v)
	}
	decl := must(m.ConstDecl(0))
	if decl.Name() != "x" {
		t.Fatalf("expected x, got %s", decl.Name())
	}
	if v := must(must(m.ConstInterp(decl)).AsInt64()); v != 3 {
		t.Fatalf("expected interpretation 3, got %d", v)
	}
}

func TestEvalCompletion(t *testing.T) {
	ctx := newTestContext(t)
	x := must(ctx.MkIntConst("x"))
	free := must(ctx.MkIntConst("free"))
	m := checkSat(t, ctx, must(ctx.MkEq(x, must(ctx.MkInt(1)))))

	if _, err := must(m.EvalPartial(free)).AsInt64(); err == nil {
		t.Fatalf("expected free constant to stay symbolic without completion")
	}
	if _, err := must(m.Eval(free)).AsInt64(); err != nil {
		t.Fatalf("expected completion to assign a value: %v", err)
	}
}

func TestOptimizeMaximize(t *testing.T) {
	ctx := newTestContext(t)
	x := must(ctx.MkIntConst("x"))
	y := must(ctx.MkIntConst("y"))
	o := must(ctx.NewOptimize())
	defer o.Close()

	must(0, o.Assert(must(ctx.MkLe(x, must(ctx.MkInt(5))))))
	must(0, o.Assert(must(ctx.MkLe(y, must(ctx.MkInt(7))))))
	idx := must(o.Maximize(must(ctx.MkAdd(x, y))))

	ok, err := o.Check()
	if err != nil || !ok {
		t.Fatalf("expected sat, got %v, %v", ok, err)
	}
	m := must(o.Model())
	defer m.Close()
	if xv, yv := evalInt(t, m, x), evalInt(t, m, y); xv != 5 || yv != 7 {
		t.Fatalf("expected x=5 y=7, got x=%d y=%d", xv, yv)
	}
	if v := must(must(o.Upper(idx)).AsInt64()); v != 12 {
		t.Fatalf("expected upper bound 12, got %d", v)
	}
}

func TestOptimizeMinimizeWithScopes(t *testing.T) {
	ctx := newTestContext(t)
	x := must(ctx.MkIntConst("x"))
	o := must(ctx.NewOptimize())
	defer o.Close()

	must(0, o.Assert(must(ctx.MkGe(x, must(ctx.MkInt(-3))))))
	o.Push()
	must(0, o.Assert(must(ctx.MkGe(x, must(ctx.MkInt(2))))))
	must(o.Minimize(x))
	if ok, err := o.Check(); !ok || err != nil {
		t.Fatalf("expected sat, got %v, %v", ok, err)
	}
	if v := evalInt(t, must(o.Model()), x); v != 2 {
		t.Fatalf("expected x = 2, got %d", v)
	}
	must(0, o.Pop())

	p := must(ctx.MkBoolConst("p"))
	st, err := o.CheckStatus(must(ctx.MkNot(p)))
	if err != nil || st != Satisfiable {
		t.Fatalf("expected sat under assumption, got %s, %v", st, err)
	}
}
