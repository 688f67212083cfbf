package engine

import (
	"math"

	"github.com/pfcm/mpfx/internal/arch"
)

// RTO emulates hardware round-to-odd: it runs the native double-precision
// operation under a temporarily toward-zero rounding mode and forces the
// result's LSB to one whenever the host reported the operation inexact.
// Go lowers +, -, *, / and math.Sqrt to hardware instructions that honor
// the process rounding-control register on every architecture this
// library's cgo shim supports, so this is sufficient for every primitive
// except fused multiply-add: math.FMA is a portable software
// implementation that always rounds to nearest regardless of the rounding
// control register, so RTO.Fma instead reuses the error-free
// decomposition EFT.Fma is built from (see eft.go) to recover the
// exact error term and finalize it to odd directly.
type RTO struct{}

func (RTO) Add(x, y float64) Intermediate {
	g := arch.BeginRTO()
	r := x + y
	inexact := g.End()
	return fromFloat(finishRTO(r, inexact))
}

func (RTO) Sub(x, y float64) Intermediate {
	g := arch.BeginRTO()
	r := x - y
	inexact := g.End()
	return fromFloat(finishRTO(r, inexact))
}

func (RTO) Mul(x, y float64) Intermediate {
	g := arch.BeginRTO()
	r := x * y
	inexact := g.End()
	return fromFloat(finishRTO(r, inexact))
}

func (RTO) Div(x, y float64) Intermediate {
	g := arch.BeginRTO()
	r := x / y
	inexact := g.End()
	return fromFloat(finishRTO(r, inexact))
}

func (RTO) Sqrt(x float64) Intermediate {
	g := arch.BeginRTO()
	r := math.Sqrt(x)
	inexact := g.End()
	return fromFloat(finishRTO(r, inexact))
}

func (RTO) Fma(x, y, z float64) Intermediate {
	if !math.IsInf(x, 0) && !math.IsNaN(x) && !math.IsInf(y, 0) && !math.IsNaN(y) && !math.IsInf(z, 0) && !math.IsNaN(z) {
		hi, lo := eftFMA(x, y, z)
		return fromFloat(roundFinalizeEFT(hi, lo))
	}
	return fromFloat(math.FMA(x, y, z))
}

// finishRTO jams the LSB of r to one when inexact is set, the shared
// "make it odd" step for every engine backed by a hardware/native op plus
// an externally observed inexact flag.
func finishRTO(r float64, inexact bool) float64 {
	if !inexact {
		return r
	}
	return math.Float64frombits(math.Float64bits(r) | 1)
}
