// Package z3 provides lifetime-safe Go bindings for the Z3 theorem prover.
//
// Every call into the Z3 C API is serialized through one process-wide gate
// and checked against the context's error state, so native failures come
// back as Go errors instead of aborting the process.
//
// # Basic Usage
//
// Create a context and solver:
//
//	ctx, err := z3.NewContext(nil)
//	if err != nil {
//	    return err
//	}
//	defer ctx.Close()
//	solver, _ := ctx.NewSolver()
//
// Create variables and constraints:
//
//	x, _ := ctx.MkIntConst("x")
//	y, _ := ctx.MkIntConst("y")
//	ten, _ := ctx.MkInt(10)
//	sum, _ := ctx.MkAdd(x, y)
//	eq, _ := ctx.MkEq(sum, ten)
//	solver.Assert(eq)
//
// Check satisfiability and get model:
//
//	if ok, _ := solver.Check(); ok {
//	    model, _ := solver.Model()
//	    xVal, _ := model.Eval(x)
//	    fmt.Println("x =", xVal)
//	}
//
// # Memory Management
//
// Each wrapper owns one native reference, taken when it is created and
// dropped exactly once by Close or, failing that, by a finalizer. Wrappers
// borrow their Context: using one after the Context is closed panics with
// a *ContractError, while closing one afterwards does nothing.
//
// # Supported Features
//
//   - Boolean logic, integer and real arithmetic
//   - Bit-vectors, arrays and sets
//   - Enumeration and list sorts
//   - Quantifiers
//   - Optimization
package z3

/*
#cgo LDFLAGS: -lz3
#include <z3.h>
*/
import "C"
import "fmt"

// Version returns the version of the linked Z3 library.
func Version() string {
	var major, minor, build, rev C.uint
	withGate(func() { C.Z3_get_version(&major, &minor, &build, &rev) })
	return fmt.Sprintf("%d.%d.%d.%d", major, minor, build, rev)
}
