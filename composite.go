package z3

/*
#include <z3.h>
*/
import "C"
import (
	"runtime"
	"unsafe"
)

// bundle is a sort together with the declarations that one native
// constructor produced for it. The whole bundle is acquired in the gate
// section that created it and released in a single gate section, so a
// partially counted bundle is never observable.
type bundle struct {
	sort  handle
	decls []handle
}

// bundleLocked validates the native outputs and takes a reference on every
// one of them. Nothing is acquired unless all outputs are present.
func (c *Context) bundleLocked(op string, s unsafe.Pointer, decls []unsafe.Pointer) (bundle, error) {
	if s == nil {
		return bundle{}, c.nullLocked(op)
	}
	for _, d := range decls {
		if d == nil {
			return bundle{}, c.nullLocked(op)
		}
	}
	b := bundle{
		sort:  c.wrapLocked(s, sortKind),
		decls: make([]handle, len(decls)),
	}
	for i, d := range decls {
		b.decls[i] = c.wrapLocked(d, funcDeclKind)
	}
	return b, nil
}

func declPtrs(decls []C.Z3_func_decl) []unsafe.Pointer {
	out := make([]unsafe.Pointer, len(decls))
	for i, d := range decls {
		out[i] = unsafe.Pointer(d)
	}
	return out
}

func (b *bundle) releaseLocked() {
	b.sort.releaseLocked()
	for i := range b.decls {
		b.decls[i].releaseLocked()
	}
}

// Close releases the sort and every declaration of the bundle. It is safe
// to call more than once.
func (b *bundle) Close() {
	withGateRelease(b.releaseLocked)
}

// Released reports whether Close has run.
func (b *bundle) Released() bool {
	return b.sort.Released()
}

func (b *bundle) live(op string) {
	b.sort.live(op)
}

// Sort returns the composite sort as an independently counted handle.
func (b *bundle) Sort() *Sort {
	b.live("Sort")
	return gatedLive(b.sort.ctx, "Sort", func() *Sort {
		return newSortLocked(b.sort.ctx, C.Z3_sort(b.sort.ptr))
	})
}

// String returns the string representation of the composite sort.
func (b *bundle) String() string {
	return b.sort.toString("String", func() C.Z3_string {
		return C.Z3_sort_to_string(b.sort.ctx.ptr, C.Z3_sort(b.sort.ptr))
	})
}

// decl returns declaration i as an independently counted handle.
func (b *bundle) decl(op string, i int) *FuncDecl {
	b.live(op)
	return gatedLive(b.sort.ctx, op, func() *FuncDecl {
		return newFuncDeclLocked(b.sort.ctx, C.Z3_func_decl(b.decls[i].ptr))
	})
}

// apply applies declaration i to args.
func (b *bundle) apply(op string, i int, args ...*Expr) (*Expr, error) {
	b.live(op)
	c := b.sort.ctx
	raw := exprPtrs(c, op, args)
	e, err := c.mkExpr(op, func() C.Z3_ast {
		return C.Z3_mk_app(c.ptr, C.Z3_func_decl(b.decls[i].ptr), C.uint(len(raw)), firstAST(raw))
	})
	runtime.KeepAlive(args)
	return e, err
}
