package z3

/*
#include <stdlib.h>
#include <z3.h>
*/
import "C"
import (
	"errors"
	"runtime"
	"sync/atomic"
	"unsafe"
)

// Context represents a Z3 logical context, the root scope of every other
// object in this package.
//
// Everything created from a Context borrows it and must not be used after
// Close. Releasing such objects after Close is allowed and does nothing,
// because deleting the native context frees them all.
type Context struct {
	ptr    C.Z3_context
	cfg    *Config
	refs   map[unsafe.Pointer]int
	closed atomic.Bool
}

// NewContext creates a reference-counted Z3 context from cfg. A nil cfg
// means NewConfig().
func NewContext(cfg *Config) (*Context, error) {
	cfg = cfg.clone()
	params := cfg.Params()
	keys := make([]*C.char, 0, 2*len(params))
	defer func() {
		for _, k := range keys {
			C.free(unsafe.Pointer(k))
		}
	}()
	for _, p := range params {
		keys = append(keys, C.CString(p.Key), C.CString(p.Value))
	}

	raw := gated(func() C.Z3_context {
		ncfg := C.Z3_mk_config()
		defer C.Z3_del_config(ncfg)
		for i := 0; i < len(keys); i += 2 {
			C.Z3_set_param_value(ncfg, keys[i], keys[i+1])
		}
		c := C.Z3_mk_context_rc(ncfg)
		if c != nil {
			// Report errors through Z3_get_error_code instead of aborting.
			C.Z3_set_error_handler(c, nil)
		}
		return c
	})
	if raw == nil {
		return nil, errors.New("z3: failed to create context")
	}
	ctx := &Context{ptr: raw, cfg: cfg, refs: make(map[unsafe.Pointer]int)}
	logger.Debug("z3: new context", "params", len(params))
	runtime.SetFinalizer(ctx, func(c *Context) { c.Close() })
	return ctx, nil
}

// Close deletes the native context. It is safe to call more than once.
func (c *Context) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	withGateRelease(func() {
		C.Z3_del_context(c.ptr)
		c.ptr = nil
		c.refs = nil
	})
	logger.Debug("z3: context closed")
}

// live panics if the context has been closed.
func (c *Context) live(op string) {
	if c == nil || c.closed.Load() {
		contractViolation(op, "context is closed")
	}
}

// withLive runs fn under the gate, provided c is still open once the gate
// is held. A Close that won the race after live passed is reported as a
// contract violation, raised after the gate is released so it does not
// poison it.
func (c *Context) withLive(op string, fn func()) {
	var closed bool
	withGate(func() {
		if closed = c.ptr == nil; !closed {
			fn()
		}
	})
	if closed {
		contractViolation(op, "context is closed")
	}
}

// gatedLive is withLive for native calls that produce a value.
func gatedLive[T any](c *Context, op string, fn func() T) T {
	var v T
	c.withLive(op, func() { v = fn() })
	return v
}

// Config returns a copy of the configuration the context was created with.
func (c *Context) Config() *Config {
	return c.cfg.clone()
}

// SetParam updates a parameter of the live context.
func (c *Context) SetParam(key, value string) error {
	c.live("SetParam")
	cKey := C.CString(key)
	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cKey))
	defer C.free(unsafe.Pointer(cValue))
	return gatedLive(c, "SetParam", func() error {
		C.Z3_update_param_value(c.ptr, cKey, cValue)
		return c.errorLocked("SetParam")
	})
}

// refCountOf reports the ledger count for a native pointer.
func (c *Context) refCountOf(p unsafe.Pointer) int {
	return gated(func() int { return c.refs[p] })
}

// liveRefs reports the number of distinct native objects this layer holds
// references to.
func (c *Context) liveRefs() int {
	return gated(func() int { return len(c.refs) })
}
