package z3

/*
#include <z3.h>
*/
import "C"
import (
	"runtime"
	"strconv"
)

// shape is the operand count an operator accepts. Variadic operators take
// one or more operands.
type shape int

const (
	variadic shape = -1
	unary    shape = 1
	binary   shape = 2
	ternary  shape = 3
)

// operator is one row of the term operator table: a name used in errors
// and traces, an operand shape, and the native constructor.
type operator struct {
	name  string
	shape shape
	mk    func(c C.Z3_context, args []C.Z3_ast) C.Z3_ast
}

func op1(name string, f func(C.Z3_context, C.Z3_ast) C.Z3_ast) *operator {
	return &operator{name, unary, func(c C.Z3_context, a []C.Z3_ast) C.Z3_ast {
		return f(c, a[0])
	}}
}

func op2(name string, f func(C.Z3_context, C.Z3_ast, C.Z3_ast) C.Z3_ast) *operator {
	return &operator{name, binary, func(c C.Z3_context, a []C.Z3_ast) C.Z3_ast {
		return f(c, a[0], a[1])
	}}
}

func op3(name string, f func(C.Z3_context, C.Z3_ast, C.Z3_ast, C.Z3_ast) C.Z3_ast) *operator {
	return &operator{name, ternary, func(c C.Z3_context, a []C.Z3_ast) C.Z3_ast {
		return f(c, a[0], a[1], a[2])
	}}
}

func opN(name string, f func(C.Z3_context, C.uint, *C.Z3_ast) C.Z3_ast) *operator {
	return &operator{name, variadic, func(c C.Z3_context, a []C.Z3_ast) C.Z3_ast {
		return f(c, C.uint(len(a)), &a[0])
	}}
}

// apply is the single construction path shared by every operator: check
// operands, build under the gate, validate through the error channel, wrap.
func (c *Context) apply(o *operator, args []*Expr) (*Expr, error) {
	c.live(o.name)
	switch {
	case o.shape == variadic && len(args) == 0:
		contractViolation(o.name, "variadic operator needs at least one operand")
	case o.shape != variadic && len(args) != int(o.shape):
		contractViolation(o.name, "expected "+strconv.Itoa(int(o.shape))+" operands, got "+strconv.Itoa(len(args)))
	}
	raw := exprPtrs(c, o.name, args)
	e, err := c.mkExpr(o.name, func() C.Z3_ast { return o.mk(c.ptr, raw) })
	runtime.KeepAlive(args)
	return e, err
}

func (c *Context) mk1(o *operator, a *Expr) (*Expr, error) {
	return c.apply(o, []*Expr{a})
}

func (c *Context) mk2(o *operator, a, b *Expr) (*Expr, error) {
	return c.apply(o, []*Expr{a, b})
}

func (c *Context) mk3(o *operator, a, b, d *Expr) (*Expr, error) {
	return c.apply(o, []*Expr{a, b, d})
}

func (c *Context) mkN(o *operator, args []*Expr) (*Expr, error) {
	return c.apply(o, args)
}

// Boolean operators.
var (
	opNot = op1("MkNot", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_not(c, a) })

	opImplies = op2("MkImplies", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_implies(c, a, b) })
	opIff     = op2("MkIff", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_iff(c, a, b) })
	opXor     = op2("MkXor", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_xor(c, a, b) })
	opEq      = op2("MkEq", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_eq(c, a, b) })

	opIte = op3("MkIte", func(c C.Z3_context, a, b, d C.Z3_ast) C.Z3_ast { return C.Z3_mk_ite(c, a, b, d) })

	opAnd      = opN("MkAnd", func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_and(c, n, a) })
	opOr       = opN("MkOr", func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_or(c, n, a) })
	opDistinct = opN("MkDistinct", func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_distinct(c, n, a) })
)

// MkNot creates a logical negation.
func (c *Context) MkNot(expr *Expr) (*Expr, error) { return c.mk1(opNot, expr) }

// MkAnd creates a conjunction of one or more terms.
func (c *Context) MkAnd(exprs ...*Expr) (*Expr, error) { return c.mkN(opAnd, exprs) }

// MkOr creates a disjunction of one or more terms.
func (c *Context) MkOr(exprs ...*Expr) (*Expr, error) { return c.mkN(opOr, exprs) }

// MkImplies creates an implication.
func (c *Context) MkImplies(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opImplies, lhs, rhs) }

// MkIff creates a bi-implication.
func (c *Context) MkIff(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opIff, lhs, rhs) }

// MkXor creates an exclusive or.
func (c *Context) MkXor(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opXor, lhs, rhs) }

// MkEq creates an equality.
func (c *Context) MkEq(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opEq, lhs, rhs) }

// MkDistinct creates a pairwise distinctness constraint.
func (c *Context) MkDistinct(exprs ...*Expr) (*Expr, error) { return c.mkN(opDistinct, exprs) }

// MkIte creates an if-then-else term.
func (c *Context) MkIte(cond, then, els *Expr) (*Expr, error) { return c.mk3(opIte, cond, then, els) }
