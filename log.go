// Z3 interaction log

package z3

/*
#include <stdlib.h>
#include <z3.h>
*/
import "C"
import "unsafe"

// isLogOpen is only read and written while the gate is held.
var isLogOpen bool

// OpenLog opens an interaction log file that records every API call.
// Returns true if successful, false otherwise.
func OpenLog(filename string) bool {
	cFilename := C.CString(filename)
	defer C.free(unsafe.Pointer(cFilename))
	ok := gated(func() bool {
		if bool(C.Z3_open_log(cFilename)) {
			isLogOpen = true
		}
		return isLogOpen
	})
	logger.Debug("z3: open log", "file", filename, "ok", ok)
	return ok
}

// CloseLog closes the interaction log.
func CloseLog() {
	withGate(func() {
		C.Z3_close_log()
		isLogOpen = false
	})
}

// AppendLog appends a user-provided string to the interaction log.
// Panics if the log is not open.
func AppendLog(s string) {
	cStr := C.CString(s)
	defer C.free(unsafe.Pointer(cStr))
	if !gated(func() bool {
		if isLogOpen {
			C.Z3_append_log(cStr)
		}
		return isLogOpen
	}) {
		contractViolation("AppendLog", "log is not open")
	}
}

// IsLogOpen returns true if the interaction log is open.
func IsLogOpen() bool {
	return gated(func() bool { return isLogOpen })
}
