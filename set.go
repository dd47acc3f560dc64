package z3

/*
#include <z3.h>
*/
import "C"

// Set operators. Sets are arrays from the element sort to Bool.

var (
	opSetComplement = op1("MkSetComplement", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_set_complement(c, a) })

	opSetAdd        = op2("MkSetAdd", func(c C.Z3_context, s, e C.Z3_ast) C.Z3_ast { return C.Z3_mk_set_add(c, s, e) })
	opSetDel        = op2("MkSetDel", func(c C.Z3_context, s, e C.Z3_ast) C.Z3_ast { return C.Z3_mk_set_del(c, s, e) })
	opSetMember     = op2("MkSetMember", func(c C.Z3_context, e, s C.Z3_ast) C.Z3_ast { return C.Z3_mk_set_member(c, e, s) })
	opSetSubset     = op2("MkSetSubset", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_set_subset(c, a, b) })
	opSetDifference = op2("MkSetDifference", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_set_difference(c, a, b) })

	opSetUnion     = opN("MkSetUnion", func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_set_union(c, n, a) })
	opSetIntersect = opN("MkSetIntersect", func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_set_intersect(c, n, a) })
)

// MkEmptySet creates the empty set over elem.
func (c *Context) MkEmptySet(elem *Sort) (*Expr, error) {
	elem.liveIn(c, "MkEmptySet")
	return c.mkExpr("MkEmptySet", func() C.Z3_ast { return C.Z3_mk_empty_set(c.ptr, elem.sort()) })
}

// MkFullSet creates the set containing every value of elem.
func (c *Context) MkFullSet(elem *Sort) (*Expr, error) {
	elem.liveIn(c, "MkFullSet")
	return c.mkExpr("MkFullSet", func() C.Z3_ast { return C.Z3_mk_full_set(c.ptr, elem.sort()) })
}

// MkSetAdd adds elem to set.
func (c *Context) MkSetAdd(set, elem *Expr) (*Expr, error) { return c.mk2(opSetAdd, set, elem) }

// MkSetDel removes elem from set.
func (c *Context) MkSetDel(set, elem *Expr) (*Expr, error) { return c.mk2(opSetDel, set, elem) }

// MkSetUnion creates the union of one or more sets.
func (c *Context) MkSetUnion(sets ...*Expr) (*Expr, error) { return c.mkN(opSetUnion, sets) }

// MkSetIntersect creates the intersection of one or more sets.
func (c *Context) MkSetIntersect(sets ...*Expr) (*Expr, error) { return c.mkN(opSetIntersect, sets) }

// MkSetDifference creates the difference of two sets.
func (c *Context) MkSetDifference(lhs, rhs *Expr) (*Expr, error) {
	return c.mk2(opSetDifference, lhs, rhs)
}

// MkSetComplement creates the complement of a set.
func (c *Context) MkSetComplement(set *Expr) (*Expr, error) { return c.mk1(opSetComplement, set) }

// MkSetMember tests membership of elem in set.
func (c *Context) MkSetMember(elem, set *Expr) (*Expr, error) { return c.mk2(opSetMember, elem, set) }

// MkSetSubset tests whether lhs is a subset of rhs.
func (c *Context) MkSetSubset(lhs, rhs *Expr) (*Expr, error) { return c.mk2(opSetSubset, lhs, rhs) }
