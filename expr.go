package z3

/*
#include <stdlib.h>
#include <stdint.h>
#include <z3.h>
*/
import "C"
import (
	"fmt"
	"runtime"
	"unsafe"
)

// Expr represents a Z3 term: a typed symbolic expression.
type Expr struct {
	handle
}

// newExprLocked wraps a term and manages its reference count.
func newExprLocked(ctx *Context, p C.Z3_ast) *Expr {
	e := &Expr{handle: ctx.wrapLocked(unsafe.Pointer(p), astKind)}
	runtime.SetFinalizer(e, func(e *Expr) { e.Close() })
	return e
}

func (c *Context) exprLocked(op string, p C.Z3_ast) (*Expr, error) {
	if p == nil {
		return nil, c.nullLocked(op)
	}
	return newExprLocked(c, p), nil
}

// mkExpr runs a term factory under the gate and validates its result.
func (c *Context) mkExpr(op string, fn func() C.Z3_ast) (*Expr, error) {
	c.live(op)
	var e *Expr
	var err error
	c.withLive(op, func() { e, err = c.exprLocked(op, fn()) })
	return e, err
}

func (e *Expr) ast() C.Z3_ast {
	return C.Z3_ast(e.ptr)
}

// exprPtrs checks that every operand is live and belongs to c, and collects
// the native terms. Callers keep the operands alive until the native call
// returns.
func exprPtrs(c *Context, op string, exprs []*Expr) []C.Z3_ast {
	out := make([]C.Z3_ast, len(exprs))
	for i, e := range exprs {
		if e == nil {
			contractViolation(op, "use of released or nil handle")
		}
		e.liveIn(c, op)
		out[i] = e.ast()
	}
	return out
}

func firstAST(a []C.Z3_ast) *C.Z3_ast {
	if len(a) == 0 {
		return nil
	}
	return &a[0]
}

// String returns the string representation of the expression.
func (e *Expr) String() string {
	return e.toString("Expr.String", func() C.Z3_string {
		return C.Z3_ast_to_string(e.ctx.ptr, e.ast())
	})
}

// Equal checks if two expressions denote the same canonical term.
func (e *Expr) Equal(other *Expr) bool {
	if other == nil {
		return false
	}
	return e.equalAST(&other.handle)
}

// Hash returns the native hash of the expression.
func (e *Expr) Hash() uint32 {
	return e.hashAST()
}

// Sort returns the sort of the expression.
func (e *Expr) Sort() (*Sort, error) {
	e.live("Expr.Sort")
	return e.ctx.mkSort("Expr.Sort", func() C.Z3_sort {
		return C.Z3_get_sort(e.ctx.ptr, e.ast())
	})
}

// Simplify returns a simplified version of the expression.
func (e *Expr) Simplify() (*Expr, error) {
	e.live("Expr.Simplify")
	return e.ctx.mkExpr("Expr.Simplify", func() C.Z3_ast {
		return C.Z3_simplify(e.ctx.ptr, e.ast())
	})
}

// MkTrue creates the Boolean constant true.
func (c *Context) MkTrue() (*Expr, error) {
	return c.mkExpr("MkTrue", func() C.Z3_ast { return C.Z3_mk_true(c.ptr) })
}

// MkFalse creates the Boolean constant false.
func (c *Context) MkFalse() (*Expr, error) {
	return c.mkExpr("MkFalse", func() C.Z3_ast { return C.Z3_mk_false(c.ptr) })
}

// MkBool creates a Boolean constant.
func (c *Context) MkBool(value bool) (*Expr, error) {
	if value {
		return c.MkTrue()
	}
	return c.MkFalse()
}

// MkInt creates an integer literal.
func (c *Context) MkInt(value int64) (*Expr, error) {
	return c.mkExpr("MkInt", func() C.Z3_ast {
		return C.Z3_mk_int64(c.ptr, C.int64_t(value), C.Z3_mk_int_sort(c.ptr))
	})
}

// MkInt64 creates a numeral of the given sort from an int64.
func (c *Context) MkInt64(value int64, sort *Sort) (*Expr, error) {
	sort.liveIn(c, "MkInt64")
	return c.mkExpr("MkInt64", func() C.Z3_ast {
		return C.Z3_mk_int64(c.ptr, C.int64_t(value), sort.sort())
	})
}

// MkUint64 creates a numeral of the given sort from a uint64.
func (c *Context) MkUint64(value uint64, sort *Sort) (*Expr, error) {
	sort.liveIn(c, "MkUint64")
	return c.mkExpr("MkUint64", func() C.Z3_ast {
		return C.Z3_mk_unsigned_int64(c.ptr, C.uint64_t(value), sort.sort())
	})
}

// MkReal creates the rational literal num/den. A zero denominator is
// reported through the error channel.
func (c *Context) MkReal(num, den int) (*Expr, error) {
	return c.mkExpr("MkReal", func() C.Z3_ast {
		return C.Z3_mk_real(c.ptr, C.int(num), C.int(den))
	})
}

// MkNumeral creates a numeral of the given sort from its decimal string.
func (c *Context) MkNumeral(numeral string, sort *Sort) (*Expr, error) {
	sort.liveIn(c, "MkNumeral")
	cStr := C.CString(numeral)
	defer C.free(unsafe.Pointer(cStr))
	return c.mkExpr("MkNumeral", func() C.Z3_ast {
		return C.Z3_mk_numeral(c.ptr, cStr, sort.sort())
	})
}

// MkBVFromUint64 creates a bit-vector literal of the given width.
func (c *Context) MkBVFromUint64(value uint64, width uint) (*Expr, error) {
	return c.mkExpr("MkBVFromUint64", func() C.Z3_ast {
		return C.Z3_mk_unsigned_int64(c.ptr, C.uint64_t(value), C.Z3_mk_bv_sort(c.ptr, C.uint(width)))
	})
}

// MkConst creates a constant (variable) named by sym.
func (c *Context) MkConst(sym *Symbol, sort *Sort) (*Expr, error) {
	sym.liveIn(c, "MkConst")
	sort.liveIn(c, "MkConst")
	return c.mkExpr("MkConst", func() C.Z3_ast {
		return C.Z3_mk_const(c.ptr, sym.sym(), sort.sort())
	})
}

// MkFreshConst creates a constant whose name is unique within the context.
func (c *Context) MkFreshConst(prefix string, sort *Sort) (*Expr, error) {
	sort.liveIn(c, "MkFreshConst")
	cStr := C.CString(prefix)
	defer C.free(unsafe.Pointer(cStr))
	return c.mkExpr("MkFreshConst", func() C.Z3_ast {
		return C.Z3_mk_fresh_const(c.ptr, cStr, sort.sort())
	})
}

// MkBound creates a de Bruijn bound variable for use in quantifier bodies.
func (c *Context) MkBound(index uint, sort *Sort) (*Expr, error) {
	sort.liveIn(c, "MkBound")
	return c.mkExpr("MkBound", func() C.Z3_ast {
		return C.Z3_mk_bound(c.ptr, C.uint(index), sort.sort())
	})
}

// namedConst creates a constant from a Go string, building the symbol and
// the sort inside the same gate section.
func (c *Context) namedConst(op, name string, sortFn func() C.Z3_sort) (*Expr, error) {
	cStr := C.CString(name)
	defer C.free(unsafe.Pointer(cStr))
	return c.mkExpr(op, func() C.Z3_ast {
		return C.Z3_mk_const(c.ptr, C.Z3_mk_string_symbol(c.ptr, cStr), sortFn())
	})
}

// MkIntConst creates an integer constant with the given name.
func (c *Context) MkIntConst(name string) (*Expr, error) {
	return c.namedConst("MkIntConst", name, func() C.Z3_sort { return C.Z3_mk_int_sort(c.ptr) })
}

// MkBoolConst creates a Boolean constant with the given name.
func (c *Context) MkBoolConst(name string) (*Expr, error) {
	return c.namedConst("MkBoolConst", name, func() C.Z3_sort { return C.Z3_mk_bool_sort(c.ptr) })
}

// MkRealConst creates a real constant with the given name.
func (c *Context) MkRealConst(name string) (*Expr, error) {
	return c.namedConst("MkRealConst", name, func() C.Z3_sort { return C.Z3_mk_real_sort(c.ptr) })
}

// MkBVConst creates a bit-vector constant with the given name and width.
func (c *Context) MkBVConst(name string, width uint) (*Expr, error) {
	return c.namedConst("MkBVConst", name, func() C.Z3_sort { return C.Z3_mk_bv_sort(c.ptr, C.uint(width)) })
}

// absentLocked classifies a failed extraction: a pending native error wins,
// then a numeral that did not fit, then plain absence.
func (e *Expr) absentLocked(op string) error {
	if err := e.ctx.errorLocked(op); err != nil {
		return err
	}
	if C.Z3_is_numeral_ast(e.ctx.ptr, e.ast()) {
		return fmt.Errorf("%s: %w", op, ErrNotRepresentable)
	}
	return fmt.Errorf("%s: %w", op, ErrNoValue)
}

// AsBool reads a Boolean literal. A term that is neither true nor false
// yields ErrNoValue.
func (e *Expr) AsBool() (bool, error) {
	const op = "Expr.AsBool"
	e.live(op)
	var v bool
	var err error
	e.ctx.withLive(op, func() {
		switch C.Z3_get_bool_value(e.ctx.ptr, e.ast()) {
		case C.Z3_L_TRUE:
			v = true
		case C.Z3_L_FALSE:
		default:
			if err = e.ctx.errorLocked(op); err == nil {
				err = fmt.Errorf("%s: %w", op, ErrNoValue)
			}
		}
	})
	return v, err
}

// AsInt64 reads a numeral as an int64.
func (e *Expr) AsInt64() (int64, error) {
	const op = "Expr.AsInt64"
	e.live(op)
	var v C.int64_t
	var err error
	e.ctx.withLive(op, func() {
		if !C.Z3_get_numeral_int64(e.ctx.ptr, e.ast(), &v) {
			err = e.absentLocked(op)
		}
	})
	return int64(v), err
}

// AsUint64 reads a numeral as a uint64.
func (e *Expr) AsUint64() (uint64, error) {
	const op = "Expr.AsUint64"
	e.live(op)
	var v C.uint64_t
	var err error
	e.ctx.withLive(op, func() {
		if !C.Z3_get_numeral_uint64(e.ctx.ptr, e.ast(), &v) {
			err = e.absentLocked(op)
		}
	})
	return uint64(v), err
}

// AsReal reads a rational numeral as num/den.
func (e *Expr) AsReal() (num, den int64, err error) {
	const op = "Expr.AsReal"
	e.live(op)
	var n, d C.int64_t
	e.ctx.withLive(op, func() {
		if !C.Z3_get_numeral_rational_int64(e.ctx.ptr, e.ast(), &n, &d) {
			err = e.absentLocked(op)
		}
	})
	return int64(n), int64(d), err
}

// AsApp decomposes an application into its declaration and arguments.
// Constants are applications with no arguments. Terms that are not
// applications, such as quantifiers and bound variables, yield ErrNotApp.
func (e *Expr) AsApp() (*FuncDecl, []*Expr, error) {
	const op = "Expr.AsApp"
	e.live(op)
	var (
		decl *FuncDecl
		args []*Expr
		err  error
	)
	e.ctx.withLive(op, func() {
		c := e.ctx
		if !C.Z3_is_app(c.ptr, e.ast()) {
			if err = c.errorLocked(op); err == nil {
				err = fmt.Errorf("%s: %w", op, ErrNotApp)
			}
			return
		}
		app := C.Z3_to_app(c.ptr, e.ast())
		if app == nil {
			err = c.nullLocked(op)
			return
		}
		n := int(C.Z3_get_app_num_args(c.ptr, app))
		raw := make([]C.Z3_ast, n)
		for i := range raw {
			if raw[i] = C.Z3_get_app_arg(c.ptr, app, C.uint(i)); raw[i] == nil {
				err = c.nullLocked(op)
				return
			}
		}
		if decl, err = c.funcDeclLocked(op, C.Z3_get_app_decl(c.ptr, app)); err != nil {
			return
		}
		args = make([]*Expr, n)
		for i, p := range raw {
			args[i] = newExprLocked(c, p)
		}
	})
	return decl, args, err
}
