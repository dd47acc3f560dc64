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

// Status represents the result of a satisfiability check.
type Status int

const (
	// Unsatisfiable means the constraints are unsatisfiable.
	Unsatisfiable Status = -1
	// Unknown means Z3 could not determine satisfiability.
	Unknown Status = 0
	// Satisfiable means the constraints are satisfiable.
	Satisfiable Status = 1
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case Unsatisfiable:
		return "unsat"
	case Satisfiable:
		return "sat"
	default:
		return "unknown"
	}
}

// statusLocked converts a native tri-state. Undef with a pending native
// error is a failed check, not an unknown result.
func (c *Context) statusLocked(op string, r C.Z3_lbool) (Status, error) {
	if r == C.Z3_L_UNDEF {
		if err := c.errorLocked(op); err != nil {
			return Unknown, err
		}
	}
	return Status(r), nil
}

// Solver represents a Z3 solver: an ordered accumulator of assertions.
type Solver struct {
	handle
}

func (c *Context) solverLocked(op string, p C.Z3_solver) (*Solver, error) {
	if p == nil {
		return nil, c.nullLocked(op)
	}
	s := &Solver{handle: c.wrapLocked(unsafe.Pointer(p), solverKind)}
	runtime.SetFinalizer(s, func(s *Solver) { s.Close() })
	return s, nil
}

// NewSolver creates a new solver for the given context.
func (c *Context) NewSolver() (*Solver, error) {
	c.live("NewSolver")
	var s *Solver
	var err error
	c.withLive("NewSolver", func() { s, err = c.solverLocked("NewSolver", C.Z3_mk_solver(c.ptr)) })
	return s, err
}

// NewSolverForLogic creates a solver for a specific logic, such as "QF_LIA".
func (c *Context) NewSolverForLogic(logic string) (*Solver, error) {
	c.live("NewSolverForLogic")
	cLogic := C.CString(logic)
	defer C.free(unsafe.Pointer(cLogic))
	var s *Solver
	var err error
	c.withLive("NewSolverForLogic", func() {
		p := C.Z3_mk_solver_for_logic(c.ptr, C.Z3_mk_string_symbol(c.ptr, cLogic))
		s, err = c.solverLocked("NewSolverForLogic", p)
	})
	return s, err
}

func (s *Solver) solver() C.Z3_solver {
	return C.Z3_solver(s.ptr)
}

// String returns the string representation of the solver.
func (s *Solver) String() string {
	return s.toString("Solver.String", func() C.Z3_string {
		return C.Z3_solver_to_string(s.ctx.ptr, s.solver())
	})
}

// Assert adds a constraint to the solver. Assertions are kept in order and
// are not deduplicated.
func (s *Solver) Assert(constraint *Expr) error {
	const op = "Solver.Assert"
	s.live(op)
	constraint.liveIn(s.ctx, op)
	return gatedLive(s.ctx, op, func() error {
		C.Z3_solver_assert(s.ctx.ptr, s.solver(), constraint.ast())
		return s.ctx.errorLocked(op)
	})
}

// AssertAndTrack adds a constraint tracked by the Boolean constant track,
// which then appears in unsat cores.
func (s *Solver) AssertAndTrack(constraint, track *Expr) error {
	const op = "Solver.AssertAndTrack"
	s.live(op)
	constraint.liveIn(s.ctx, op)
	track.liveIn(s.ctx, op)
	return gatedLive(s.ctx, op, func() error {
		C.Z3_solver_assert_and_track(s.ctx.ptr, s.solver(), constraint.ast(), track.ast())
		return s.ctx.errorLocked(op)
	})
}

// Check reports whether the assertions are satisfiable. Unknown results
// report false, like unsatisfiable ones; use CheckStatus to tell them apart.
func (s *Solver) Check() (bool, error) {
	st, err := s.CheckStatus()
	return st == Satisfiable, err
}

// CheckStatus checks the assertions and returns the native tri-state.
func (s *Solver) CheckStatus() (Status, error) {
	const op = "Solver.Check"
	s.live(op)
	var st Status
	var err error
	s.ctx.withLive(op, func() {
		st, err = s.ctx.statusLocked(op, C.Z3_solver_check(s.ctx.ptr, s.solver()))
	})
	logger.Debug("z3: check", "status", st.String())
	return st, err
}

// CheckAssumptions checks satisfiability under the given assumptions.
func (s *Solver) CheckAssumptions(assumptions ...*Expr) (Status, error) {
	const op = "Solver.CheckAssumptions"
	s.live(op)
	raw := exprPtrs(s.ctx, op, assumptions)
	var st Status
	var err error
	s.ctx.withLive(op, func() {
		r := C.Z3_solver_check_assumptions(s.ctx.ptr, s.solver(), C.uint(len(raw)), firstAST(raw))
		st, err = s.ctx.statusLocked(op, r)
	})
	runtime.KeepAlive(assumptions)
	return st, err
}

// Model returns the model of the last check. It is only meaningful after a
// satisfiable check; otherwise Z3 reports an error.
func (s *Solver) Model() (*Model, error) {
	const op = "Solver.Model"
	s.live(op)
	var m *Model
	var err error
	s.ctx.withLive(op, func() { m, err = s.ctx.modelLocked(op, C.Z3_solver_get_model(s.ctx.ptr, s.solver())) })
	return m, err
}

// Push creates a backtracking point.
func (s *Solver) Push() {
	s.live("Solver.Push")
	s.ctx.withLive("Solver.Push", func() { C.Z3_solver_push(s.ctx.ptr, s.solver()) })
}

// Pop removes n backtracking points.
func (s *Solver) Pop(n uint) error {
	s.live("Solver.Pop")
	return gatedLive(s.ctx, "Solver.Pop", func() error {
		C.Z3_solver_pop(s.ctx.ptr, s.solver(), C.uint(n))
		return s.ctx.errorLocked("Solver.Pop")
	})
}

// Reset removes all assertions from the solver.
func (s *Solver) Reset() {
	s.live("Solver.Reset")
	s.ctx.withLive("Solver.Reset", func() { C.Z3_solver_reset(s.ctx.ptr, s.solver()) })
}

// NumScopes returns the number of backtracking points.
func (s *Solver) NumScopes() uint {
	s.live("Solver.NumScopes")
	return gatedLive(s.ctx, "Solver.NumScopes", func() uint { return uint(C.Z3_solver_get_num_scopes(s.ctx.ptr, s.solver())) })
}

// Assertions returns the assertions in the solver, in assertion order.
func (s *Solver) Assertions() ([]*Expr, error) {
	const op = "Solver.Assertions"
	s.live(op)
	var out []*Expr
	var err error
	s.ctx.withLive(op, func() {
		out, err = s.ctx.exprVectorLocked(op, C.Z3_solver_get_assertions(s.ctx.ptr, s.solver()))
	})
	return out, err
}

// UnsatCore returns the tracked assertions of the last unsatisfiable check.
func (s *Solver) UnsatCore() ([]*Expr, error) {
	const op = "Solver.UnsatCore"
	s.live(op)
	var out []*Expr
	var err error
	s.ctx.withLive(op, func() {
		out, err = s.ctx.exprVectorLocked(op, C.Z3_solver_get_unsat_core(s.ctx.ptr, s.solver()))
	})
	return out, err
}

// ReasonUnknown returns the reason the last check returned unknown.
func (s *Solver) ReasonUnknown() string {
	return s.toString("Solver.ReasonUnknown", func() C.Z3_string {
		return C.Z3_solver_get_reason_unknown(s.ctx.ptr, s.solver())
	})
}

// FromString parses SMT-LIB2 text and asserts its formulas. Parse failures
// are reported as *Error.
func (s *Solver) FromString(text string) error {
	const op = "Solver.FromString"
	s.live(op)
	cStr := C.CString(text)
	defer C.free(unsafe.Pointer(cStr))
	return gatedLive(s.ctx, op, func() error {
		C.Z3_solver_from_string(s.ctx.ptr, s.solver(), cStr)
		return s.ctx.errorLocked(op)
	})
}

// exprVectorLocked copies a native AST vector into counted expressions.
// The vector itself is only held for the duration of the copy.
func (c *Context) exprVectorLocked(op string, v C.Z3_ast_vector) ([]*Expr, error) {
	if v == nil {
		return nil, c.nullLocked(op)
	}
	C.Z3_ast_vector_inc_ref(c.ptr, v)
	defer C.Z3_ast_vector_dec_ref(c.ptr, v)
	out := make([]*Expr, int(C.Z3_ast_vector_size(c.ptr, v)))
	for i := range out {
		out[i] = newExprLocked(c, C.Z3_ast_vector_get(c.ptr, v, C.uint(i)))
	}
	return out, nil
}
