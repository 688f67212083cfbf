// Package arch provides the portable FP-environment shim the FP-RTO and
// FP-EXACT engines need to manipulate the host's rounding mode and read
// its exception flags. It is the Go analogue of the generic <cfenv>
// fallback path the source's own arch layer falls back to when it has no
// MXCSR/FPCR register code for the host, since Go exposes no standard
// library equivalent of <fenv.h>.
package arch

/*
#cgo LDFLAGS: -lm
#include <fenv.h>
*/
import "C"

import "runtime"

// RTOGuard pins the calling goroutine to its OS thread and holds the FP
// environment saved by BeginRTO. It must be ended exactly once; the
// engines call End directly after their single operation, since End's
// result is the inexact flag they need.
type RTOGuard struct {
	saved C.fenv_t
}

// BeginRTO locks the current goroutine to its OS thread, saves the FP
// environment, switches the rounding mode to round-toward-zero, and clears
// the exception flags. Callers must call End on the returned guard exactly
// once before the goroutine can safely be rescheduled onto another thread.
func BeginRTO() RTOGuard {
	runtime.LockOSThread()
	var g RTOGuard
	C.fegetenv(&g.saved)
	C.fesetround(C.FE_TOWARDZERO)
	C.feclearexcept(C.FE_ALL_EXCEPT)
	return g
}

// End reads whether the inexact exception was raised since BeginRTO,
// restores the saved FP environment, and unlocks the OS thread. It must be
// called exactly once per BeginRTO.
func (g RTOGuard) End() (inexact bool) {
	inexact = C.fetestexcept(C.FE_INEXACT) != 0
	overflow := C.fetestexcept(C.FE_OVERFLOW|C.FE_UNDERFLOW) != 0
	C.fesetenv(&g.saved)
	runtime.UnlockOSThread()
	if overflow {
		panic("arch: double-precision overflow/underflow during RTO emulation (contract violation)")
	}
	return inexact
}

// ExactGuard runs a debug-mode exactness check for the FP-EXACT engine: it
// clears exceptions, lets the caller perform its "guaranteed exact"
// operation, and reports whether that guarantee held. Unlike RTOGuard it
// never changes the rounding mode.
type ExactGuard struct{}

// BeginExact clears the exception flags so a subsequent Violated can
// observe whether the operation that follows raised inexact/overflow.
func BeginExact() ExactGuard {
	C.feclearexcept(C.FE_ALL_EXCEPT)
	return ExactGuard{}
}

// Violated reports whether inexact or overflow was raised since
// BeginExact — i.e. whether the FP-EXACT engine's caller broke its
// contract that the operation is exact in double precision.
func (ExactGuard) Violated() bool {
	return C.fetestexcept(C.FE_INEXACT|C.FE_OVERFLOW) != 0
}
