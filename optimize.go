package z3

/*
#include <z3.h>
*/
import "C"
import (
	"runtime"
	"unsafe"
)

// Optimize represents a Z3 optimization context. Unlike Solver it also
// looks for an assignment that is optimal for its objectives.
type Optimize struct {
	handle
}

// NewOptimize creates a new optimization context.
func (c *Context) NewOptimize() (*Optimize, error) {
	const op = "NewOptimize"
	c.live(op)
	var o *Optimize
	var err error
	c.withLive(op, func() {
		p := C.Z3_mk_optimize(c.ptr)
		if p == nil {
			err = c.nullLocked(op)
			return
		}
		o = &Optimize{handle: c.wrapLocked(unsafe.Pointer(p), optimizeKind)}
	})
	if err != nil {
		return nil, err
	}
	runtime.SetFinalizer(o, func(o *Optimize) { o.Close() })
	return o, nil
}

func (o *Optimize) opt() C.Z3_optimize {
	return C.Z3_optimize(o.ptr)
}

// String returns the string representation of the optimize context.
func (o *Optimize) String() string {
	return o.toString("Optimize.String", func() C.Z3_string {
		return C.Z3_optimize_to_string(o.ctx.ptr, o.opt())
	})
}

// Assert adds a hard constraint.
func (o *Optimize) Assert(constraint *Expr) error {
	const op = "Optimize.Assert"
	o.live(op)
	constraint.liveIn(o.ctx, op)
	return gatedLive(o.ctx, op, func() error {
		C.Z3_optimize_assert(o.ctx.ptr, o.opt(), constraint.ast())
		return o.ctx.errorLocked(op)
	})
}

// objective registers expr through fn and returns the objective index.
func (o *Optimize) objective(op string, expr *Expr, fn func() C.uint) (uint, error) {
	o.live(op)
	expr.liveIn(o.ctx, op)
	var idx uint
	var err error
	o.ctx.withLive(op, func() {
		idx = uint(fn())
		err = o.ctx.errorLocked(op)
	})
	return idx, err
}

// Maximize adds a maximization objective and returns its index.
func (o *Optimize) Maximize(expr *Expr) (uint, error) {
	return o.objective("Optimize.Maximize", expr, func() C.uint {
		return C.Z3_optimize_maximize(o.ctx.ptr, o.opt(), expr.ast())
	})
}

// Minimize adds a minimization objective and returns its index.
func (o *Optimize) Minimize(expr *Expr) (uint, error) {
	return o.objective("Optimize.Minimize", expr, func() C.uint {
		return C.Z3_optimize_minimize(o.ctx.ptr, o.opt(), expr.ast())
	})
}

// Check reports whether the constraints are satisfiable under the given
// assumptions, optimizing the objectives. Unknown reports false.
func (o *Optimize) Check(assumptions ...*Expr) (bool, error) {
	st, err := o.CheckStatus(assumptions...)
	return st == Satisfiable, err
}

// CheckStatus is Check returning the native tri-state.
func (o *Optimize) CheckStatus(assumptions ...*Expr) (Status, error) {
	const op = "Optimize.Check"
	o.live(op)
	raw := exprPtrs(o.ctx, op, assumptions)
	var st Status
	var err error
	o.ctx.withLive(op, func() {
		r := C.Z3_optimize_check(o.ctx.ptr, o.opt(), C.uint(len(raw)), firstAST(raw))
		st, err = o.ctx.statusLocked(op, r)
	})
	runtime.KeepAlive(assumptions)
	logger.Debug("z3: optimize check", "status", st.String())
	return st, err
}

// Model returns the model of the last check.
func (o *Optimize) Model() (*Model, error) {
	const op = "Optimize.Model"
	o.live(op)
	var m *Model
	var err error
	o.ctx.withLive(op, func() { m, err = o.ctx.modelLocked(op, C.Z3_optimize_get_model(o.ctx.ptr, o.opt())) })
	return m, err
}

// Push creates a backtracking point.
func (o *Optimize) Push() {
	o.live("Optimize.Push")
	o.ctx.withLive("Optimize.Push", func() { C.Z3_optimize_push(o.ctx.ptr, o.opt()) })
}

// Pop removes the most recent backtracking point.
func (o *Optimize) Pop() error {
	o.live("Optimize.Pop")
	return gatedLive(o.ctx, "Optimize.Pop", func() error {
		C.Z3_optimize_pop(o.ctx.ptr, o.opt())
		return o.ctx.errorLocked("Optimize.Pop")
	})
}

// Lower returns the lower bound of objective idx after a check.
func (o *Optimize) Lower(idx uint) (*Expr, error) {
	o.live("Optimize.Lower")
	return o.ctx.mkExpr("Optimize.Lower", func() C.Z3_ast {
		return C.Z3_optimize_get_lower(o.ctx.ptr, o.opt(), C.uint(idx))
	})
}

// Upper returns the upper bound of objective idx after a check.
func (o *Optimize) Upper(idx uint) (*Expr, error) {
	o.live("Optimize.Upper")
	return o.ctx.mkExpr("Optimize.Upper", func() C.Z3_ast {
		return C.Z3_optimize_get_upper(o.ctx.ptr, o.opt(), C.uint(idx))
	})
}

// ReasonUnknown returns the reason the last check returned unknown.
func (o *Optimize) ReasonUnknown() string {
	return o.toString("Optimize.ReasonUnknown", func() C.Z3_string {
		return C.Z3_optimize_get_reason_unknown(o.ctx.ptr, o.opt())
	})
}
