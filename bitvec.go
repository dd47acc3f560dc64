package z3

/*
#include <z3.h>
*/
import "C"

// Bit-vector operators

var (
	opBVNot    = op1("MkBVNot", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvnot(c, a) })
	opBVNeg    = op1("MkBVNeg", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvneg(c, a) })
	opBVRedAnd = op1("MkBVRedAnd", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvredand(c, a) })
	opBVRedOr  = op1("MkBVRedOr", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvredor(c, a) })

	opBVAnd  = op2("MkBVAnd", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvand(c, a, b) })
	opBVOr   = op2("MkBVOr", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvor(c, a, b) })
	opBVXor  = op2("MkBVXor", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvxor(c, a, b) })
	opBVNand = op2("MkBVNand", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvnand(c, a, b) })
	opBVNor  = op2("MkBVNor", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvnor(c, a, b) })
	opBVXnor = op2("MkBVXnor", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvxnor(c, a, b) })
	opBVAdd  = op2("MkBVAdd", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvadd(c, a, b) })
	opBVSub  = op2("MkBVSub", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsub(c, a, b) })
	opBVMul  = op2("MkBVMul", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvmul(c, a, b) })
	opBVUDiv = op2("MkBVUDiv", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvudiv(c, a, b) })
	opBVSDiv = op2("MkBVSDiv", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsdiv(c, a, b) })
	opBVURem = op2("MkBVURem", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvurem(c, a, b) })
	opBVSRem = op2("MkBVSRem", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsrem(c, a, b) })
	opBVSMod = op2("MkBVSMod", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsmod(c, a, b) })
	opBVULT  = op2("MkBVULT", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvult(c, a, b) })
	opBVSLT  = op2("MkBVSLT", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvslt(c, a, b) })
	opBVULE  = op2("MkBVULE", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvule(c, a, b) })
	opBVSLE  = op2("MkBVSLE", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsle(c, a, b) })
	opBVUGE  = op2("MkBVUGE", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvuge(c, a, b) })
	opBVSGE  = op2("MkBVSGE", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsge(c, a, b) })
	opBVUGT  = op2("MkBVUGT", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvugt(c, a, b) })
	opBVSGT  = op2("MkBVSGT", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsgt(c, a, b) })
	opConcat = op2("MkConcat", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_concat(c, a, b) })
	opBVShl  = op2("MkBVShl", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvshl(c, a, b) })
	opBVLShr = op2("MkBVLShr", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvlshr(c, a, b) })
	opBVAShr = op2("MkBVAShr", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvashr(c, a, b) })
)

// MkBVNot creates a bit-vector bitwise NOT.
func (c *Context) MkBVNot(expr *Expr) (*Expr, error) { return c.mk1(opBVNot, expr) }

// MkBVNeg creates a bit-vector two's complement negation.
func (c *Context) MkBVNeg(expr *Expr) (*Expr, error) { return c.mk1(opBVNeg, expr) }

// MkBVRedAnd creates a bit-vector AND reduction to a 1-bit vector.
func (c *Context) MkBVRedAnd(expr *Expr) (*Expr, error) { return c.mk1(opBVRedAnd, expr) }

// MkBVRedOr creates a bit-vector OR reduction to a 1-bit vector.
func (c *Context) MkBVRedOr(expr *Expr) (*Expr, error) { return c.mk1(opBVRedOr, expr) }

// MkBVAnd creates a bit-vector bitwise AND.
func (c *Context) MkBVAnd(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVAnd, lhs, rhs) }

// MkBVOr creates a bit-vector bitwise OR.
func (c *Context) MkBVOr(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVOr, lhs, rhs) }

// MkBVXor creates a bit-vector bitwise XOR.
func (c *Context) MkBVXor(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVXor, lhs, rhs) }

// MkBVNand creates a bit-vector bitwise NAND.
func (c *Context) MkBVNand(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVNand, lhs, rhs) }

// MkBVNor creates a bit-vector bitwise NOR.
func (c *Context) MkBVNor(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVNor, lhs, rhs) }

// MkBVXnor creates a bit-vector bitwise XNOR.
func (c *Context) MkBVXnor(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVXnor, lhs, rhs) }

// MkBVAdd creates a bit-vector addition.
func (c *Context) MkBVAdd(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVAdd, lhs, rhs) }

// MkBVSub creates a bit-vector subtraction.
func (c *Context) MkBVSub(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVSub, lhs, rhs) }

// MkBVMul creates a bit-vector multiplication.
func (c *Context) MkBVMul(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVMul, lhs, rhs) }

// MkBVUDiv creates a bit-vector unsigned division.
func (c *Context) MkBVUDiv(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVUDiv, lhs, rhs) }

// MkBVSDiv creates a bit-vector signed division.
func (c *Context) MkBVSDiv(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVSDiv, lhs, rhs) }

// MkBVURem creates a bit-vector unsigned remainder.
func (c *Context) MkBVURem(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVURem, lhs, rhs) }

// MkBVSRem creates a bit-vector signed remainder.
func (c *Context) MkBVSRem(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVSRem, lhs, rhs) }

// MkBVSMod creates a bit-vector signed modulus.
func (c *Context) MkBVSMod(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVSMod, lhs, rhs) }

// MkBVULT creates a bit-vector unsigned less-than.
func (c *Context) MkBVULT(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVULT, lhs, rhs) }

// MkBVSLT creates a bit-vector signed less-than.
func (c *Context) MkBVSLT(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVSLT, lhs, rhs) }

// MkBVULE creates a bit-vector unsigned less-than-or-equal.
func (c *Context) MkBVULE(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVULE, lhs, rhs) }

// MkBVSLE creates a bit-vector signed less-than-or-equal.
func (c *Context) MkBVSLE(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVSLE, lhs, rhs) }

// MkBVUGE creates a bit-vector unsigned greater-than-or-equal.
func (c *Context) MkBVUGE(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVUGE, lhs, rhs) }

// MkBVSGE creates a bit-vector signed greater-than-or-equal.
func (c *Context) MkBVSGE(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVSGE, lhs, rhs) }

// MkBVUGT creates a bit-vector unsigned greater-than.
func (c *Context) MkBVUGT(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVUGT, lhs, rhs) }

// MkBVSGT creates a bit-vector signed greater-than.
func (c *Context) MkBVSGT(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVSGT, lhs, rhs) }

// MkConcat creates a bit-vector concatenation.
func (c *Context) MkConcat(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opConcat, lhs, rhs) }

// MkBVShl creates a bit-vector shift left.
func (c *Context) MkBVShl(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVShl, lhs, rhs) }

// MkBVLShr creates a bit-vector logical shift right.
func (c *Context) MkBVLShr(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVLShr, lhs, rhs) }

// MkBVAShr creates a bit-vector arithmetic shift right.
func (c *Context) MkBVAShr(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opBVAShr, lhs, rhs) }

// MkExtract creates the bit-vector slice [high:low] of expr.
func (c *Context) MkExtract(high, low uint, expr *Expr) (*Expr, error) {
	return c.mk1(op1("MkExtract", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_extract(c, C.uint(high), C.uint(low), a)
	}), expr)
}

// MkSignExt sign-extends expr by i bits.
func (c *Context) MkSignExt(i uint, expr *Expr) (*Expr, error) {
	return c.mk1(op1("MkSignExt", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_sign_ext(c, C.uint(i), a)
	}), expr)
}

// MkZeroExt zero-extends expr by i bits.
func (c *Context) MkZeroExt(i uint, expr *Expr) (*Expr, error) {
	return c.mk1(op1("MkZeroExt", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_zero_ext(c, C.uint(i), a)
	}), expr)
}

// MkBV2Int converts a bit-vector to an integer, reading it as signed when
// signed is true.
func (c *Context) MkBV2Int(expr *Expr, signed bool) (*Expr, error) {
	return c.mk1(op1("MkBV2Int", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_bv2int(c, a, C.bool(signed))
	}), expr)
}

// MkInt2BV converts an integer to a bit-vector of the given width.
func (c *Context) MkInt2BV(width uint, expr *Expr) (*Expr, error) {
	return c.mk1(op1("MkInt2BV", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_int2bv(c, C.uint(width), a)
	}), expr)
}
