package z3

/*
#include <z3.h>
*/
import "C"
import (
	"unsafe"
)

// refKind binds a handle kind to its native reference-counting pair. Kinds
// without a pair (symbols) are interned by Z3 and never released.
type refKind struct {
	name string
	inc  func(C.Z3_context, unsafe.Pointer)
	dec  func(C.Z3_context, unsafe.Pointer)
}

var (
	symbolKind = &refKind{name: "symbol"}

	astKind = &refKind{
		name: "ast",
		inc:  func(c C.Z3_context, p unsafe.Pointer) { C.Z3_inc_ref(c, C.Z3_ast(p)) },
		dec:  func(c C.Z3_context, p unsafe.Pointer) { C.Z3_dec_ref(c, C.Z3_ast(p)) },
	}

	sortKind = &refKind{
		name: "sort",
		inc:  func(c C.Z3_context, p unsafe.Pointer) { C.Z3_inc_ref(c, C.Z3_sort_to_ast(c, C.Z3_sort(p))) },
		dec: func(c C.Z3_context, p unsafe.Pointer) {
			// Z3_sort_to_ast is a cast today; a null here must not fail a release.
			if a := C.Z3_sort_to_ast(c, C.Z3_sort(p)); a != nil {
				C.Z3_dec_ref(c, a)
			}
		},
	}

	funcDeclKind = &refKind{
		name: "func_decl",
		inc:  func(c C.Z3_context, p unsafe.Pointer) { C.Z3_inc_ref(c, C.Z3_func_decl_to_ast(c, C.Z3_func_decl(p))) },
		dec: func(c C.Z3_context, p unsafe.Pointer) {
			if a := C.Z3_func_decl_to_ast(c, C.Z3_func_decl(p)); a != nil {
				C.Z3_dec_ref(c, a)
			}
		},
	}

	solverKind = &refKind{
		name: "solver",
		inc:  func(c C.Z3_context, p unsafe.Pointer) { C.Z3_solver_inc_ref(c, C.Z3_solver(p)) },
		dec:  func(c C.Z3_context, p unsafe.Pointer) { C.Z3_solver_dec_ref(c, C.Z3_solver(p)) },
	}

	optimizeKind = &refKind{
		name: "optimize",
		inc:  func(c C.Z3_context, p unsafe.Pointer) { C.Z3_optimize_inc_ref(c, C.Z3_optimize(p)) },
		dec:  func(c C.Z3_context, p unsafe.Pointer) { C.Z3_optimize_dec_ref(c, C.Z3_optimize(p)) },
	}

	modelKind = &refKind{
		name: "model",
		inc:  func(c C.Z3_context, p unsafe.Pointer) { C.Z3_model_inc_ref(c, C.Z3_model(p)) },
		dec:  func(c C.Z3_context, p unsafe.Pointer) { C.Z3_model_dec_ref(c, C.Z3_model(p)) },
	}
)

// handle owns one native reference on behalf of a wrapper type. ptr is nil
// once the reference has been released.
type handle struct {
	ctx  *Context
	ptr  unsafe.Pointer
	kind *refKind
}

// wrapLocked takes a reference on p and records it in the context ledger.
// A null p means an earlier construction step skipped the error channel.
func (c *Context) wrapLocked(p unsafe.Pointer, kind *refKind) handle {
	if p == nil {
		panic(&ContractError{Op: "wrap " + kind.name, Reason: "null native handle"})
	}
	if kind.inc != nil {
		kind.inc(c.ptr, p)
		c.refs[p]++
		logger.Debug("z3: acquire", "kind", kind.name, "ptr", p, "refs", c.refs[p])
	}
	return handle{ctx: c, ptr: p, kind: kind}
}

// releaseLocked drops the reference exactly once. After the owning context
// has been closed the native object is already gone and nothing is done.
func (h *handle) releaseLocked() {
	p := h.ptr
	if p == nil {
		return
	}
	h.ptr = nil
	c := h.ctx
	if c.ptr == nil || h.kind.dec == nil {
		return
	}
	h.kind.dec(c.ptr, p)
	if n := c.refs[p] - 1; n > 0 {
		c.refs[p] = n
	} else {
		delete(c.refs, p)
	}
	logger.Debug("z3: release", "kind", h.kind.name, "ptr", p, "refs", c.refs[p])
}

// Close releases the native reference. It never fails and is safe to call
// more than once; later calls do nothing.
func (h *handle) Close() {
	withGateRelease(h.releaseLocked)
}

// Released reports whether Close has run.
func (h *handle) Released() bool {
	return gated(func() bool { return h.ptr == nil })
}

// live is the pre-gate contract check for every operation on a handle.
func (h *handle) live(op string) {
	if h == nil || h.ptr == nil {
		contractViolation(op, "use of released or nil handle")
	}
	h.ctx.live(op)
}

// liveIn is live plus the check that h belongs to c. Handles from another
// context are never passed to native code.
func (h *handle) liveIn(c *Context, op string) {
	h.live(op)
	if h.ctx != c {
		contractViolation(op, "operand belongs to a different context")
	}
}

// toString renders a native string, reporting a null result through the
// error channel.
func (h *handle) toString(op string, fn func() C.Z3_string) string {
	h.live(op)
	return gatedLive(h.ctx, op, func() string {
		s := fn()
		if s == nil {
			if err := h.ctx.nullLocked(op); err != nil {
				logger.Debug("z3: render failed", "op", op, "err", err)
			}
			return "<invalid>"
		}
		return C.GoString(s)
	})
}

// equalAST compares two AST-backed handles by native structural identity.
func (h *handle) equalAST(other *handle) bool {
	if other == nil || h.ctx != other.ctx {
		return false
	}
	h.live("equal")
	other.live("equal")
	return gatedLive(h.ctx, "equal", func() bool {
		return bool(C.Z3_is_eq_ast(h.ctx.ptr, C.Z3_ast(h.ptr), C.Z3_ast(other.ptr)))
	})
}

// hashAST returns the native structural hash of an AST-backed handle.
func (h *handle) hashAST() uint32 {
	h.live("hash")
	return gatedLive(h.ctx, "hash", func() uint32 {
		return uint32(C.Z3_get_ast_hash(h.ctx.ptr, C.Z3_ast(h.ptr)))
	})
}

// refCount reports how many live handles of this layer reference the same
// native object.
func (h *handle) refCount() int {
	return gated(func() int {
		if h.ptr == nil || h.ctx.refs == nil {
			return 0
		}
		return h.ctx.refs[h.ptr]
	})
}
