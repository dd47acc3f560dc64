package z3

/*
#include <z3.h>
*/
import "C"
import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorCode mirrors Z3_error_code.
type ErrorCode int

// Z3 error codes.
const (
	ErrorCodeOK               ErrorCode = ErrorCode(C.Z3_OK)
	ErrorCodeSort             ErrorCode = ErrorCode(C.Z3_SORT_ERROR)
	ErrorCodeIndexOutOfBounds ErrorCode = ErrorCode(C.Z3_IOB)
	ErrorCodeInvalidArg       ErrorCode = ErrorCode(C.Z3_INVALID_ARG)
	ErrorCodeParser           ErrorCode = ErrorCode(C.Z3_PARSER_ERROR)
	ErrorCodeNoParser         ErrorCode = ErrorCode(C.Z3_NO_PARSER)
	ErrorCodeInvalidPattern   ErrorCode = ErrorCode(C.Z3_INVALID_PATTERN)
	ErrorCodeMemout           ErrorCode = ErrorCode(C.Z3_MEMOUT_FAIL)
	ErrorCodeFileAccess       ErrorCode = ErrorCode(C.Z3_FILE_ACCESS_ERROR)
	ErrorCodeInternalFatal    ErrorCode = ErrorCode(C.Z3_INTERNAL_FATAL)
	ErrorCodeInvalidUsage     ErrorCode = ErrorCode(C.Z3_INVALID_USAGE)
	ErrorCodeDecRef           ErrorCode = ErrorCode(C.Z3_DEC_REF_ERROR)
	ErrorCodeException        ErrorCode = ErrorCode(C.Z3_EXCEPTION)
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCodeOK:               "ok",
	ErrorCodeSort:             "sort error",
	ErrorCodeIndexOutOfBounds: "index out of bounds",
	ErrorCodeInvalidArg:       "invalid argument",
	ErrorCodeParser:           "parser error",
	ErrorCodeNoParser:         "no parser",
	ErrorCodeInvalidPattern:   "invalid pattern",
	ErrorCodeMemout:           "out of memory",
	ErrorCodeFileAccess:       "file access error",
	ErrorCodeInternalFatal:    "internal fatal error",
	ErrorCodeInvalidUsage:     "invalid usage",
	ErrorCodeDecRef:           "dec_ref error",
	ErrorCodeException:        "exception",
}

func (c ErrorCode) String() string {
	if s, ok := errorCodeNames[c]; ok {
		return s
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}

// Error is a failure reported through Z3's per-context error state.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
}

// Error returns the error as a string.
func (e *Error) Error() string {
	return fmt.Sprintf("z3: %s: %s (%s)", e.Op, e.Message, e.Code)
}

var (
	// ErrNoValue is returned when Z3 yields no value without reporting an
	// error, e.g. a boolean that evaluates to undef.
	ErrNoValue = errors.New("z3: no value")

	// ErrNotRepresentable is returned when a numeral exists but does not fit
	// the requested Go type.
	ErrNotRepresentable = errors.New("z3: value not representable")

	// ErrNotApp is returned by AsApp for terms that are not applications.
	ErrNotApp = errors.New("z3: not an application")

	// ErrUnknownEnumValue is returned when an enumeration lookup misses.
	ErrUnknownEnumValue = errors.New("z3: unknown enumeration value")

	// ErrGatePoisoned is the panic value raised when the serialization gate
	// is used after a panic escaped while it was held.
	ErrGatePoisoned = errors.New("z3: serialization gate poisoned by an earlier panic")
)

// ContractError is the panic value for caller-contract violations: use of a
// closed context or a released handle, or an empty operand list for a
// variadic operator.
type ContractError struct {
	Op     string
	Reason string
}

func (e *ContractError) Error() string {
	return "z3: " + e.Op + ": " + e.Reason
}

func contractViolation(op, reason string) {
	panic(&ContractError{Op: op, Reason: reason})
}

// errorLocked consults the native error state of the context. A nil result
// means the last call left no error behind, so a null result it produced is
// a deliberate "no value" signal.
func (c *Context) errorLocked(op string) error {
	code := C.Z3_get_error_code(c.ptr)
	if code == C.Z3_OK {
		return nil
	}
	err := &Error{
		Code:    ErrorCode(code),
		Op:      op,
		Message: C.GoString(C.Z3_get_error_msg(c.ptr, code)),
	}
	logger.Debug("z3: native error", "op", op, "code", err.Code.String(), "msg", err.Message)
	return err
}

// nullLocked converts a null native result into an error: the native error
// if one is pending, ErrNoValue otherwise.
func (c *Context) nullLocked(op string) error {
	if err := c.errorLocked(op); err != nil {
		return err
	}
	return fmt.Errorf("%s: %w", op, ErrNoValue)
}
