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

// Positions of the list declarations in the bundle.
const (
	listNil = iota
	listIsNil
	listCons
	listIsCons
	listHead
	listTail
	listDecls
)

// ListSort is a list sort over an element sort, together with its nil,
// is-nil, cons, is-cons, head and tail declarations.
type ListSort struct {
	bundle
}

// ListSort creates a list sort named name whose elements have sort elem.
func (c *Context) ListSort(name string, elem *Sort) (*ListSort, error) {
	const op = "ListSort"
	c.live(op)
	elem.liveIn(c, op)
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var raw [listDecls]C.Z3_func_decl
	l := &ListSort{}
	var err error
	c.withLive(op, func() {
		s := C.Z3_mk_list_sort(c.ptr, C.Z3_mk_string_symbol(c.ptr, cName), elem.sort(),
			&raw[listNil], &raw[listIsNil], &raw[listCons], &raw[listIsCons], &raw[listHead], &raw[listTail])
		l.bundle, err = c.bundleLocked(op, unsafe.Pointer(s), declPtrs(raw[:]))
	})
	runtime.KeepAlive(elem)
	if err != nil {
		return nil, err
	}
	logger.Debug("z3: list sort", "name", name)
	runtime.SetFinalizer(l, func(l *ListSort) { l.Close() })
	return l, nil
}

// NilDecl returns the empty-list constant declaration.
func (l *ListSort) NilDecl() *FuncDecl { return l.decl("ListSort.NilDecl", listNil) }

// IsNilDecl returns the empty-list recognizer.
func (l *ListSort) IsNilDecl() *FuncDecl { return l.decl("ListSort.IsNilDecl", listIsNil) }

// ConsDecl returns the list constructor.
func (l *ListSort) ConsDecl() *FuncDecl { return l.decl("ListSort.ConsDecl", listCons) }

// IsConsDecl returns the non-empty-list recognizer.
func (l *ListSort) IsConsDecl() *FuncDecl { return l.decl("ListSort.IsConsDecl", listIsCons) }

// HeadDecl returns the head accessor.
func (l *ListSort) HeadDecl() *FuncDecl { return l.decl("ListSort.HeadDecl", listHead) }

// TailDecl returns the tail accessor.
func (l *ListSort) TailDecl() *FuncDecl { return l.decl("ListSort.TailDecl", listTail) }

// Nil returns the empty list.
func (l *ListSort) Nil() (*Expr, error) { return l.apply("ListSort.Nil", listNil) }

// IsNil tests whether list is empty.
func (l *ListSort) IsNil(list *Expr) (*Expr, error) { return l.apply("ListSort.IsNil", listIsNil, list) }

// Cons prepends head to tail.
func (l *ListSort) Cons(head, tail *Expr) (*Expr, error) {
	return l.apply("ListSort.Cons", listCons, head, tail)
}

// IsCons tests whether list is non-empty.
func (l *ListSort) IsCons(list *Expr) (*Expr, error) {
	return l.apply("ListSort.IsCons", listIsCons, list)
}

// Head returns the first element of list.
func (l *ListSort) Head(list *Expr) (*Expr, error) { return l.apply("ListSort.Head", listHead, list) }

// Tail returns list without its first element.
func (l *ListSort) Tail(list *Expr) (*Expr, error) { return l.apply("ListSort.Tail", listTail, list) }
