package z3

/*
#include <z3.h>
*/
import "C"
import "runtime"

// Array operators

var (
	opSelect = op2("MkSelect", func(c C.Z3_context, a, i C.Z3_ast) C.Z3_ast { return C.Z3_mk_select(c, a, i) })
	opStore  = op3("MkStore", func(c C.Z3_context, a, i, v C.Z3_ast) C.Z3_ast { return C.Z3_mk_store(c, a, i, v) })
)

// MkSelect creates an array read (select) operation.
func (c *Context) MkSelect(array, index *Expr) (*Expr, error) { return c.mk2(opSelect, array, index) }

// MkStore creates an array write (store) operation.
func (c *Context) MkStore(array, index, value *Expr) (*Expr, error) {
	return c.mk3(opStore, array, index, value)
}

// MkConstArray creates an array over domain that maps every index to value.
func (c *Context) MkConstArray(domain *Sort, value *Expr) (*Expr, error) {
	domain.liveIn(c, "MkConstArray")
	e, err := c.mk1(op1("MkConstArray", func(c C.Z3_context, v C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_const_array(c, domain.sort(), v)
	}), value)
	runtime.KeepAlive(domain)
	return e, err
}
