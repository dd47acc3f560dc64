package z3

/*
#include <z3.h>
*/
import "C"
import (
	"runtime"
	"unsafe"
)

// Quantifier construction. Bound-variable lists and their correspondence
// with the body are the caller's responsibility and are not verified here.

// MkForall creates a universal quantifier over de Bruijn bound variables.
// names[i] and sorts[i] describe the variable created with MkBound(i) in
// reverse order of declaration, as in the Z3 C API.
func (c *Context) MkForall(names []*Symbol, sorts []*Sort, body *Expr) (*Expr, error) {
	return c.mkQuantifier("MkForall", true, names, sorts, body)
}

// MkExists creates an existential quantifier over de Bruijn bound variables.
func (c *Context) MkExists(names []*Symbol, sorts []*Sort, body *Expr) (*Expr, error) {
	return c.mkQuantifier("MkExists", false, names, sorts, body)
}

// MkForallConst creates a universal quantifier that binds the given
// constants in body.
func (c *Context) MkForallConst(bound []*Expr, body *Expr) (*Expr, error) {
	return c.mkQuantifierConst("MkForallConst", true, bound, body)
}

// MkExistsConst creates an existential quantifier that binds the given
// constants in body.
func (c *Context) MkExistsConst(bound []*Expr, body *Expr) (*Expr, error) {
	return c.mkQuantifierConst("MkExistsConst", false, bound, body)
}

func (c *Context) mkQuantifier(op string, forall bool, names []*Symbol, sorts []*Sort, body *Expr) (*Expr, error) {
	c.live(op)
	body.liveIn(c, op)
	if len(names) != len(sorts) {
		contractViolation(op, "number of names must match number of sorts")
	}
	cNames := make([]C.Z3_symbol, len(names))
	for i, n := range names {
		if n == nil {
			contractViolation(op, "use of released or nil handle")
		}
		n.liveIn(c, op)
		cNames[i] = n.sym()
	}
	cSorts := sortPtrs(c, op, sorts)
	var namesPtr *C.Z3_symbol
	if len(cNames) > 0 {
		namesPtr = &cNames[0]
	}
	e, err := c.mkExpr(op, func() C.Z3_ast {
		return C.Z3_mk_quantifier(c.ptr, C.bool(forall), 0, 0, nil,
			C.uint(len(cSorts)), firstSort(cSorts), namesPtr, body.ast())
	})
	runtime.KeepAlive(names)
	runtime.KeepAlive(sorts)
	return e, err
}

func (c *Context) mkQuantifierConst(op string, forall bool, bound []*Expr, body *Expr) (*Expr, error) {
	c.live(op)
	body.liveIn(c, op)
	cBound := make([]C.Z3_app, len(bound))
	// Constants are applications; Z3_app is a subtype of Z3_ast.
	for i, b := range exprPtrs(c, op, bound) {
		cBound[i] = C.Z3_app(unsafe.Pointer(b))
	}
	var boundPtr *C.Z3_app
	if len(cBound) > 0 {
		boundPtr = &cBound[0]
	}
	e, err := c.mkExpr(op, func() C.Z3_ast {
		return C.Z3_mk_quantifier_const(c.ptr, C.bool(forall), 0,
			C.uint(len(cBound)), boundPtr, 0, nil, body.ast())
	})
	runtime.KeepAlive(bound)
	return e, err
}

// IsQuantifier reports whether the expression is a quantifier.
func (e *Expr) IsQuantifier() bool {
	e.live("Expr.IsQuantifier")
	return gatedLive(e.ctx, "Expr.IsQuantifier", func() bool {
		return C.Z3_get_ast_kind(e.ctx.ptr, e.ast()) == C.Z3_QUANTIFIER_AST
	})
}
