package z3

/*
#include <stdlib.h>
#include <z3.h>
*/
import "C"
import (
	"fmt"
	"runtime"
	"unsafe"
)

// EnumSort is an enumeration sort together with one constant and one
// tester declaration per value. The bundle holds the constants first, then
// the testers, both in declaration order.
type EnumSort struct {
	bundle
	names []string
}

// EnumSort creates an enumeration sort with the given value names. Names
// must be distinct; this is not checked.
func (c *Context) EnumSort(name string, values []string) (*EnumSort, error) {
	const op = "EnumSort"
	c.live(op)
	if len(values) == 0 {
		contractViolation(op, "enumeration needs at least one value")
	}
	cStrs := make([]*C.char, 0, len(values)+1)
	defer func() {
		for _, s := range cStrs {
			C.free(unsafe.Pointer(s))
		}
	}()
	cStrs = append(cStrs, C.CString(name))
	for _, v := range values {
		cStrs = append(cStrs, C.CString(v))
	}

	n := len(values)
	syms := make([]C.Z3_symbol, n)
	raw := make([]C.Z3_func_decl, 2*n)
	e := &EnumSort{names: append([]string(nil), values...)}
	var err error
	c.withLive(op, func() {
		for i := range syms {
			syms[i] = C.Z3_mk_string_symbol(c.ptr, cStrs[i+1])
		}
		s := C.Z3_mk_enumeration_sort(c.ptr, C.Z3_mk_string_symbol(c.ptr, cStrs[0]),
			C.uint(n), &syms[0], &raw[0], &raw[n])
		e.bundle, err = c.bundleLocked(op, unsafe.Pointer(s), declPtrs(raw))
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("z3: enumeration sort", "name", name, "values", n)
	runtime.SetFinalizer(e, func(e *EnumSort) { e.Close() })
	return e, nil
}

// Values returns the value names in declaration order.
func (e *EnumSort) Values() []string {
	return append([]string(nil), e.names...)
}

// index finds name by linear scan; the first match wins.
func (e *EnumSort) index(op, name string) (int, error) {
	for i, n := range e.names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s: %q: %w", op, name, ErrUnknownEnumValue)
}

// ValueDecl returns the constant declaration for name.
func (e *EnumSort) ValueDecl(name string) (*FuncDecl, error) {
	const op = "EnumSort.ValueDecl"
	i, err := e.index(op, name)
	if err != nil {
		return nil, err
	}
	return e.decl(op, i), nil
}

// IsValueDecl returns the tester declaration for name.
func (e *EnumSort) IsValueDecl(name string) (*FuncDecl, error) {
	const op = "EnumSort.IsValueDecl"
	i, err := e.index(op, name)
	if err != nil {
		return nil, err
	}
	return e.decl(op, len(e.names)+i), nil
}

// Value returns the enumeration constant for name.
func (e *EnumSort) Value(name string) (*Expr, error) {
	const op = "EnumSort.Value"
	i, err := e.index(op, name)
	if err != nil {
		return nil, err
	}
	return e.apply(op, i)
}

// IsValue tests whether t is the enumeration constant for name.
func (e *EnumSort) IsValue(name string, t *Expr) (*Expr, error) {
	const op = "EnumSort.IsValue"
	i, err := e.index(op, name)
	if err != nil {
		return nil, err
	}
	return e.apply(op, len(e.names)+i, t)
}
