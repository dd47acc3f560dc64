package z3

/*
#include <z3.h>
*/
import "C"
import (
	"fmt"
	"runtime"
	"unsafe"
)

// Model represents a Z3 model: a snapshot of a satisfying assignment. It
// stays valid after the solver that produced it is closed.
type Model struct {
	handle
}

func (c *Context) modelLocked(op string, p C.Z3_model) (*Model, error) {
	if p == nil {
		return nil, c.nullLocked(op)
	}
	m := &Model{handle: c.wrapLocked(unsafe.Pointer(p), modelKind)}
	runtime.SetFinalizer(m, func(m *Model) { m.Close() })
	return m, nil
}

func (m *Model) model() C.Z3_model {
	return C.Z3_model(m.ptr)
}

// String returns the string representation of the model.
func (m *Model) String() string {
	return m.toString("Model.String", func() C.Z3_string {
		return C.Z3_model_to_string(m.ctx.ptr, m.model())
	})
}

// NumConsts returns the number of constants in the model.
func (m *Model) NumConsts() uint {
	m.live("Model.NumConsts")
	return gatedLive(m.ctx, "Model.NumConsts", func() uint { return uint(C.Z3_model_get_num_consts(m.ctx.ptr, m.model())) })
}

// NumFuncs returns the number of function interpretations in the model.
func (m *Model) NumFuncs() uint {
	m.live("Model.NumFuncs")
	return gatedLive(m.ctx, "Model.NumFuncs", func() uint { return uint(C.Z3_model_get_num_funcs(m.ctx.ptr, m.model())) })
}

// ConstDecl returns the i-th constant declaration in the model.
func (m *Model) ConstDecl(i uint) (*FuncDecl, error) {
	const op = "Model.ConstDecl"
	m.live(op)
	var fd *FuncDecl
	var err error
	m.ctx.withLive(op, func() {
		fd, err = m.ctx.funcDeclLocked(op, C.Z3_model_get_const_decl(m.ctx.ptr, m.model(), C.uint(i)))
	})
	return fd, err
}

// ConstInterp returns the value the model assigns to a constant. A constant
// the model does not mention yields ErrNoValue.
func (m *Model) ConstInterp(decl *FuncDecl) (*Expr, error) {
	const op = "Model.ConstInterp"
	m.live(op)
	decl.liveIn(m.ctx, op)
	return m.ctx.mkExpr(op, func() C.Z3_ast {
		return C.Z3_model_get_const_interp(m.ctx.ptr, m.model(), decl.decl())
	})
}

// Eval evaluates expr under the model with model completion: constants the
// model leaves open get an arbitrary value consistent with it.
func (m *Model) Eval(expr *Expr) (*Expr, error) {
	return m.eval("Model.Eval", expr, true)
}

// EvalPartial evaluates expr without model completion, so open constants
// stay symbolic.
func (m *Model) EvalPartial(expr *Expr) (*Expr, error) {
	return m.eval("Model.EvalPartial", expr, false)
}

func (m *Model) eval(op string, expr *Expr, completion bool) (*Expr, error) {
	m.live(op)
	expr.liveIn(m.ctx, op)
	var e *Expr
	var err error
	m.ctx.withLive(op, func() {
		var out C.Z3_ast
		if !C.Z3_model_eval(m.ctx.ptr, m.model(), expr.ast(), C.bool(completion), &out) {
			if err = m.ctx.errorLocked(op); err == nil {
				err = fmt.Errorf("%s: %w", op, ErrNoValue)
			}
			return
		}
		e, err = m.ctx.exprLocked(op, out)
	})
	return e, err
}
