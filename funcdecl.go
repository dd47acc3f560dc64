package z3

/*
#include <stdlib.h>
#include <z3.h>
*/
import "C"
import (
	"runtime"
	"unsafe"
)

// FuncDecl represents a function declaration: a named, fixed-arity callable
// symbol. Applying it to terms yields a new term.
type FuncDecl struct {
	handle
}

// newFuncDeclLocked wraps a declaration and manages its reference count. It
// also serves declarations that were produced as a byproduct of composite
// sort construction.
func newFuncDeclLocked(ctx *Context, p C.Z3_func_decl) *FuncDecl {
	fd := &FuncDecl{handle: ctx.wrapLocked(unsafe.Pointer(p), funcDeclKind)}
	runtime.SetFinalizer(fd, func(f *FuncDecl) { f.Close() })
	return fd
}

func (c *Context) funcDeclLocked(op string, p C.Z3_func_decl) (*FuncDecl, error) {
	if p == nil {
		return nil, c.nullLocked(op)
	}
	return newFuncDeclLocked(c, p), nil
}

func (f *FuncDecl) decl() C.Z3_func_decl {
	return C.Z3_func_decl(f.ptr)
}

// sortPtrs is exprPtrs for sorts.
func sortPtrs(c *Context, op string, sorts []*Sort) []C.Z3_sort {
	out := make([]C.Z3_sort, len(sorts))
	for i, s := range sorts {
		if s == nil {
			contractViolation(op, "use of released or nil handle")
		}
		s.liveIn(c, op)
		out[i] = s.sort()
	}
	return out
}

func firstSort(s []C.Z3_sort) *C.Z3_sort {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

// MkFuncDecl declares a function from domain to rng.
func (c *Context) MkFuncDecl(name *Symbol, domain []*Sort, rng *Sort) (*FuncDecl, error) {
	const op = "MkFuncDecl"
	c.live(op)
	name.liveIn(c, op)
	rng.liveIn(c, op)
	cDomain := sortPtrs(c, op, domain)
	var fd *FuncDecl
	var err error
	c.withLive(op, func() {
		p := C.Z3_mk_func_decl(c.ptr, name.sym(), C.uint(len(cDomain)), firstSort(cDomain), rng.sort())
		fd, err = c.funcDeclLocked(op, p)
	})
	runtime.KeepAlive(domain)
	return fd, err
}

// MkFreshFuncDecl declares a function whose name is prefix plus a suffix
// that is unique within the context.
func (c *Context) MkFreshFuncDecl(prefix string, domain []*Sort, rng *Sort) (*FuncDecl, error) {
	const op = "MkFreshFuncDecl"
	c.live(op)
	rng.liveIn(c, op)
	cDomain := sortPtrs(c, op, domain)
	cPrefix := C.CString(prefix)
	defer C.free(unsafe.Pointer(cPrefix))
	var fd *FuncDecl
	var err error
	c.withLive(op, func() {
		p := C.Z3_mk_fresh_func_decl(c.ptr, cPrefix, C.uint(len(cDomain)), firstSort(cDomain), rng.sort())
		fd, err = c.funcDeclLocked(op, p)
	})
	runtime.KeepAlive(domain)
	return fd, err
}

// Apply applies the declaration to args. Constants such as an enumeration
// value or the empty list take no arguments.
func (f *FuncDecl) Apply(args ...*Expr) (*Expr, error) {
	const op = "FuncDecl.Apply"
	f.live(op)
	cArgs := exprPtrs(f.ctx, op, args)
	e, err := f.ctx.mkExpr(op, func() C.Z3_ast {
		return C.Z3_mk_app(f.ctx.ptr, f.decl(), C.uint(len(cArgs)), firstAST(cArgs))
	})
	runtime.KeepAlive(args)
	return e, err
}

// String returns the string representation of the function declaration.
func (f *FuncDecl) String() string {
	return f.toString("FuncDecl.String", func() C.Z3_string {
		return C.Z3_func_decl_to_string(f.ctx.ptr, f.decl())
	})
}

// Name returns the declared name.
func (f *FuncDecl) Name() string {
	f.live("FuncDecl.Name")
	return gatedLive(f.ctx, "FuncDecl.Name", func() string {
		sym := C.Z3_get_decl_name(f.ctx.ptr, f.decl())
		return C.GoString(C.Z3_get_symbol_string(f.ctx.ptr, sym))
	})
}

// Arity returns the number of parameters.
func (f *FuncDecl) Arity() int {
	f.live("FuncDecl.Arity")
	return gatedLive(f.ctx, "FuncDecl.Arity", func() int {
		return int(C.Z3_get_arity(f.ctx.ptr, f.decl()))
	})
}

// Range returns the result sort.
func (f *FuncDecl) Range() (*Sort, error) {
	return f.ctx.mkSort("FuncDecl.Range", func() C.Z3_sort {
		return C.Z3_get_range(f.ctx.ptr, f.decl())
	})
}

// Equal checks if two declarations are the same native declaration.
func (f *FuncDecl) Equal(other *FuncDecl) bool {
	if other == nil {
		return false
	}
	return f.equalAST(&other.handle)
}

// Hash returns the native hash of the declaration.
func (f *FuncDecl) Hash() uint32 {
	return f.hashAST()
}
