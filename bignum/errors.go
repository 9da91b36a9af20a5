package bignum

import (
	"fmt"
	"os"
)

// FailureCategory classifies a fatal contract violation or system
// error: fatal system errors (out-of-memory) and fatal contract
// violations (negative-result subtraction, divide-by-zero, malformed
// decimal input, unsupported base). An unsupported format verb is not a
// category here: package format panics on it instead.
type FailureCategory int

const (
	// OutOfMemory signals allocation failure while growing limb storage.
	OutOfMemory FailureCategory = iota
	// NegativeResult signals a subtraction whose true result is negative.
	NegativeResult
	// DivideByZero signals division or modulus by zero.
	DivideByZero
	// MalformedInput signals a decimal string containing a non-digit.
	MalformedInput
	// UnsupportedBase signals a base other than 10 passed to string
	// conversion.
	UnsupportedBase
)

func (c FailureCategory) String() string {
	switch c {
	case OutOfMemory:
		return "out-of-memory"
	case NegativeResult:
		return "negative-result"
	case DivideByZero:
		return "divide-by-zero"
	case MalformedInput:
		return "malformed-input"
	case UnsupportedBase:
		return "unsupported-base"
	default:
		return "unknown-failure"
	}
}

// FatalError represents the condition xbarin02/mpi's error() macro
// reports before calling abort(): the library has no recoverable error
// channel on arithmetic operations, so FatalError is never returned to
// a caller. It is only ever passed to Abort, which renders it to the
// diagnostic stream and terminates the process. Exposed as a type
// (rather than killing the process directly) so a caller can format or
// log it before the process exits.
type FatalError struct {
	Category FailureCategory
	Message  string
}

// Error implements the error interface, rendering a single-line
// diagnostic identifying the failure category.
func (e *FatalError) Error() string {
	return fmt.Sprintf("bignum: %s: %s", e.Category, e.Message)
}

var (
	diagnosticStream = os.Stderr
	exitFunc         = os.Exit
)

// SetDiagnosticStream overrides where Abort writes its diagnostic line.
// Tests use this to capture the line instead of writing to the process's
// real stderr.
func SetDiagnosticStream(w *os.File) {
	diagnosticStream = w
}

// SetExitFunc overrides the function Abort calls after writing its
// diagnostic. Tests use this to observe an abort without killing the
// test binary; production code leaves the default of os.Exit(1).
func SetExitFunc(f func(int)) {
	exitFunc = f
}

// Abort reports err on the configured diagnostic stream and terminates
// the process with a non-success exit status, the Go-native equivalent
// of xbarin02/mpi's error()-then-abort() sequence: every arithmetic
// primitive is total over its documented domain and aborts outside it.
func Abort(err *FatalError) {
	fmt.Fprintln(diagnosticStream, err.Error())
	exitFunc(1)
}

func abortf(category FailureCategory, format string, args ...interface{}) {
	Abort(&FatalError{Category: category, Message: fmt.Sprintf(format, args...)})
}
