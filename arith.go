package z3

/*
#include <z3.h>
*/
import "C"

// Arithmetic operators

var (
	opUnaryMinus = op1("MkUnaryMinus", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_unary_minus(c, a) })
	opInt2Real   = op1("MkInt2Real", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_int2real(c, a) })
	opReal2Int   = op1("MkReal2Int", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_real2int(c, a) })
	opIsInt      = op1("MkIsInt", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_is_int(c, a) })

	opDiv   = op2("MkDiv", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_div(c, a, b) })
	opMod   = op2("MkMod", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_mod(c, a, b) })
	opRem   = op2("MkRem", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_rem(c, a, b) })
	opPower = op2("MkPower", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_power(c, a, b) })
	opLt    = op2("MkLt", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_lt(c, a, b) })
	opLe    = op2("MkLe", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_le(c, a, b) })
	opGt    = op2("MkGt", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_gt(c, a, b) })
	opGe    = op2("MkGe", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_ge(c, a, b) })

	opAdd = opN("MkAdd", func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_add(c, n, a) })
	opSub = opN("MkSub", func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_sub(c, n, a) })
	opMul = opN("MkMul", func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_mul(c, n, a) })
)

// MkAdd creates a sum of one or more terms.
func (c *Context) MkAdd(exprs ...*Expr) (*Expr, error) { return c.mkN(opAdd, exprs) }

// MkSub creates a left-associated difference of one or more terms.
func (c *Context) MkSub(exprs ...*Expr) (*Expr, error) { return c.mkN(opSub, exprs) }

// MkMul creates a product of one or more terms.
func (c *Context) MkMul(exprs ...*Expr) (*Expr, error) { return c.mkN(opMul, exprs) }

// MkDiv creates a division. Integer operands give integer division.
func (c *Context) MkDiv(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opDiv, lhs, rhs) }

// MkMod creates an integer modulus.
func (c *Context) MkMod(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opMod, lhs, rhs) }

// MkRem creates an integer remainder.
func (c *Context) MkRem(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opRem, lhs, rhs) }

// MkPower creates an exponentiation.
func (c *Context) MkPower(base, exp *Expr) (*Expr, error) { return c.mk2(opPower, base, exp) }

// MkUnaryMinus creates a negation.
func (c *Context) MkUnaryMinus(expr *Expr) (*Expr, error) { return c.mk1(opUnaryMinus, expr) }

// MkLt creates a less-than constraint.
func (c *Context) MkLt(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opLt, lhs, rhs) }

// MkLe creates a less-than-or-equal constraint.
func (c *Context) MkLe(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opLe, lhs, rhs) }

// MkGt creates a greater-than constraint.
func (c *Context) MkGt(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opGt, lhs, rhs) }

// MkGe creates a greater-than-or-equal constraint.
func (c *Context) MkGe(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opGe, lhs, rhs) }

// MkInt2Real coerces an integer term to a real.
func (c *Context) MkInt2Real(expr *Expr) (*Expr, error) { return c.mk1(opInt2Real, expr) }

// MkReal2Int takes the floor of a real term.
func (c *Context) MkReal2Int(expr *Expr) (*Expr, error) { return c.mk1(opReal2Int, expr) }

// MkIsInt tests whether a real term is an integer.
func (c *Context) MkIsInt(expr *Expr) (*Expr, error) { return c.mk1(opIsInt, expr) }
