package bignum

// TraceEvent identifies the kind of internal event a trace hook is
// notified about.
type TraceEvent string

const (
	// TraceLimbGrowth fires whenever a buffer is enlarged, detail is
	// "<old>-><new>" limb counts.
	TraceLimbGrowth TraceEvent = "limb_growth"
	// TraceMulDispatch fires whenever Mul decides between Karatsuba
	// recursion and schoolbook multiplication, detail is "karatsuba" or
	// "naive".
	TraceMulDispatch TraceEvent = "mul_dispatch"
)

// traceFunc is nil by default, meaning tracing is off; SetTraceFunc
// installs a hook that watches limb growth and multiplication dispatch
// decisions without this package depending on any particular tracing
// or metrics library.
var traceFunc func(event TraceEvent, detail string)

// SetTraceFunc installs f as the package's trace hook, or clears it if
// f is nil, the same override-a-package-seam shape as
// SetExitFunc/SetDiagnosticStream: a no-op by default, safe for every
// consumer that never calls it.
func SetTraceFunc(f func(event TraceEvent, detail string)) {
	traceFunc = f
}

func trace(event TraceEvent, detail string) {
	if traceFunc != nil {
		traceFunc(event, detail)
	}
}
