package z3

/*
#include <stdlib.h>
#include <z3.h>
*/
import "C"
import (
	"strconv"
	"unsafe"
)

// Symbol represents a Z3 symbol. Symbols are interned by Z3 and live as
// long as their context, so Close is a no-op.
type Symbol struct {
	handle
}

func (c *Context) symbolLocked(op string, p C.Z3_symbol) (*Symbol, error) {
	if p == nil {
		return nil, c.nullLocked(op)
	}
	return &Symbol{handle: c.wrapLocked(unsafe.Pointer(p), symbolKind)}, nil
}

func (s *Symbol) sym() C.Z3_symbol {
	return C.Z3_symbol(s.ptr)
}

// MkStringSymbol creates a string symbol.
func (c *Context) MkStringSymbol(name string) (*Symbol, error) {
	c.live("MkStringSymbol")
	cStr := C.CString(name)
	defer C.free(unsafe.Pointer(cStr))
	var s *Symbol
	var err error
	c.withLive("MkStringSymbol", func() {
		s, err = c.symbolLocked("MkStringSymbol", C.Z3_mk_string_symbol(c.ptr, cStr))
	})
	return s, err
}

// MkIntSymbol creates an integer symbol.
func (c *Context) MkIntSymbol(i int) (*Symbol, error) {
	c.live("MkIntSymbol")
	var s *Symbol
	var err error
	c.withLive("MkIntSymbol", func() {
		s, err = c.symbolLocked("MkIntSymbol", C.Z3_mk_int_symbol(c.ptr, C.int(i)))
	})
	return s, err
}

// String returns the symbol name; integer symbols render as their number.
func (s *Symbol) String() string {
	s.live("Symbol.String")
	return gatedLive(s.ctx, "Symbol.String", func() string {
		if C.Z3_get_symbol_kind(s.ctx.ptr, s.sym()) == C.Z3_INT_SYMBOL {
			return strconv.Itoa(int(C.Z3_get_symbol_int(s.ctx.ptr, s.sym())))
		}
		return C.GoString(C.Z3_get_symbol_string(s.ctx.ptr, s.sym()))
	})
}
