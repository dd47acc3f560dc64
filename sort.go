package z3

/*
#include <z3.h>
*/
import "C"
import (
	"runtime"
	"strconv"
	"unsafe"
)

// SortKind mirrors Z3_sort_kind.
type SortKind int

// Sort kinds reported by Sort.Kind.
const (
	SortUninterpreted SortKind = SortKind(C.Z3_UNINTERPRETED_SORT)
	SortBool          SortKind = SortKind(C.Z3_BOOL_SORT)
	SortInt           SortKind = SortKind(C.Z3_INT_SORT)
	SortReal          SortKind = SortKind(C.Z3_REAL_SORT)
	SortBV            SortKind = SortKind(C.Z3_BV_SORT)
	SortArray         SortKind = SortKind(C.Z3_ARRAY_SORT)
	SortDatatype      SortKind = SortKind(C.Z3_DATATYPE_SORT)
	SortUnknown       SortKind = SortKind(C.Z3_UNKNOWN_SORT)
)

var sortKindNames = map[SortKind]string{
	SortUninterpreted: "uninterpreted",
	SortBool:          "bool",
	SortInt:           "int",
	SortReal:          "real",
	SortBV:            "bv",
	SortArray:         "array",
	SortDatatype:      "datatype",
	SortUnknown:       "unknown",
}

func (k SortKind) String() string {
	if s, ok := sortKindNames[k]; ok {
		return s
	}
	return "SortKind(" + strconv.Itoa(int(k)) + ")"
}

// Sort represents a Z3 sort (type).
type Sort struct {
	handle
}

// newSortLocked wraps a sort and manages its reference count.
func newSortLocked(ctx *Context, p C.Z3_sort) *Sort {
	s := &Sort{handle: ctx.wrapLocked(unsafe.Pointer(p), sortKind)}
	runtime.SetFinalizer(s, func(s *Sort) { s.Close() })
	return s
}

func (c *Context) sortLocked(op string, p C.Z3_sort) (*Sort, error) {
	if p == nil {
		return nil, c.nullLocked(op)
	}
	return newSortLocked(c, p), nil
}

// mkSort runs a sort factory under the gate and validates its result.
func (c *Context) mkSort(op string, fn func() C.Z3_sort) (*Sort, error) {
	c.live(op)
	var s *Sort
	var err error
	c.withLive(op, func() { s, err = c.sortLocked(op, fn()) })
	return s, err
}

func (s *Sort) sort() C.Z3_sort {
	return C.Z3_sort(s.ptr)
}

// String returns the string representation of the sort.
func (s *Sort) String() string {
	return s.toString("Sort.String", func() C.Z3_string {
		return C.Z3_sort_to_string(s.ctx.ptr, s.sort())
	})
}

// Equal checks if two sorts are the same native sort.
func (s *Sort) Equal(other *Sort) bool {
	if other == nil {
		return false
	}
	return s.equalAST(&other.handle)
}

// Hash returns the native hash of the sort.
func (s *Sort) Hash() uint32 {
	return s.hashAST()
}

// Kind returns the sort kind.
func (s *Sort) Kind() SortKind {
	s.live("Sort.Kind")
	return gatedLive(s.ctx, "Sort.Kind", func() SortKind {
		return SortKind(C.Z3_get_sort_kind(s.ctx.ptr, s.sort()))
	})
}

// Name returns the sort's symbolic name.
func (s *Sort) Name() string {
	s.live("Sort.Name")
	return gatedLive(s.ctx, "Sort.Name", func() string {
		sym := C.Z3_get_sort_name(s.ctx.ptr, s.sort())
		if C.Z3_get_symbol_kind(s.ctx.ptr, sym) == C.Z3_INT_SYMBOL {
			return strconv.Itoa(int(C.Z3_get_symbol_int(s.ctx.ptr, sym)))
		}
		return C.GoString(C.Z3_get_symbol_string(s.ctx.ptr, sym))
	})
}

// BVSize returns the width of a bit-vector sort.
func (s *Sort) BVSize() (uint, error) {
	s.live("Sort.BVSize")
	var n uint
	var err error
	s.ctx.withLive("Sort.BVSize", func() {
		n = uint(C.Z3_get_bv_sort_size(s.ctx.ptr, s.sort()))
		err = s.ctx.errorLocked("Sort.BVSize")
	})
	return n, err
}

// BoolSort creates the Boolean sort.
func (c *Context) BoolSort() (*Sort, error) {
	return c.mkSort("BoolSort", func() C.Z3_sort { return C.Z3_mk_bool_sort(c.ptr) })
}

// IntSort creates the integer sort.
func (c *Context) IntSort() (*Sort, error) {
	return c.mkSort("IntSort", func() C.Z3_sort { return C.Z3_mk_int_sort(c.ptr) })
}

// RealSort creates the real number sort.
func (c *Context) RealSort() (*Sort, error) {
	return c.mkSort("RealSort", func() C.Z3_sort { return C.Z3_mk_real_sort(c.ptr) })
}

// BVSort creates a bit-vector sort of the given width.
func (c *Context) BVSort(width uint) (*Sort, error) {
	return c.mkSort("BVSort", func() C.Z3_sort { return C.Z3_mk_bv_sort(c.ptr, C.uint(width)) })
}

// UninterpretedSort creates a free sort named by sym.
func (c *Context) UninterpretedSort(sym *Symbol) (*Sort, error) {
	sym.liveIn(c, "UninterpretedSort")
	return c.mkSort("UninterpretedSort", func() C.Z3_sort {
		return C.Z3_mk_uninterpreted_sort(c.ptr, sym.sym())
	})
}

// ArraySort creates the sort of arrays from domain to range.
func (c *Context) ArraySort(domain, rng *Sort) (*Sort, error) {
	domain.liveIn(c, "ArraySort")
	rng.liveIn(c, "ArraySort")
	return c.mkSort("ArraySort", func() C.Z3_sort {
		return C.Z3_mk_array_sort(c.ptr, domain.sort(), rng.sort())
	})
}

// SetSort creates the sort of sets over elem.
func (c *Context) SetSort(elem *Sort) (*Sort, error) {
	elem.liveIn(c, "SetSort")
	return c.mkSort("SetSort", func() C.Z3_sort {
		return C.Z3_mk_set_sort(c.ptr, elem.sort())
	})
}
