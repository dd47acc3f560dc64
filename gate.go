package z3

import "sync"

// Z3 is only mostly thread-safe: a few initializers race even across
// distinct contexts. Every call into the library is therefore serialized
// through one process-wide gate.
var gate struct {
	mu       sync.Mutex
	poisoned bool
}

// acquire takes the gate. A gate poisoned by an earlier panic is fatal.
func acquire() {
	gate.mu.Lock()
	if gate.poisoned {
		gate.mu.Unlock()
		panic(ErrGatePoisoned)
	}
}

// withGate runs fn while holding the gate. The gate is not reentrant: fn
// must only call *Locked helpers, never exported operations.
func withGate(fn func()) {
	acquire()
	defer func() {
		if r := recover(); r != nil {
			gate.poisoned = true
			gate.mu.Unlock()
			panic(r)
		}
		gate.mu.Unlock()
	}()
	fn()
}

// gated is withGate for native calls that produce a value.
func gated[T any](fn func() T) T {
	var v T
	withGate(func() { v = fn() })
	return v
}

// withGateRelease runs a release under the gate. Releases never fail: on a
// poisoned gate the native reference is left to leak instead.
func withGateRelease(fn func()) {
	gate.mu.Lock()
	defer gate.mu.Unlock()
	if gate.poisoned {
		return
	}
	fn()
}
