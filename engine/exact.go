package engine

import "github.com/pfcm/mpfx/internal/arch"

// Exact relies on its caller's guarantee that an operation is exact in
// double precision — e.g. multiplying two values whose combined
// significand width fits comfortably in 53 bits. It supports only add,
// sub and mul, matching the source's own FP-EXACT engine. Every call
// verifies the guarantee via arch.BeginExact/Violated and panics if it
// does not hold, the debug-build assertion from the reference design
// collapsed into the only build this port ships.
type Exact struct{}

func (Exact) Add(x, y float64) Intermediate {
	g := arch.BeginExact()
	r := x + y
	if g.Violated() {
		panic("engine: Exact.Add was not exact (contract violation)")
	}
	return fromFloat(r)
}

func (Exact) Sub(x, y float64) Intermediate {
	g := arch.BeginExact()
	r := x - y
	if g.Violated() {
		panic("engine: Exact.Sub was not exact (contract violation)")
	}
	return fromFloat(r)
}

func (Exact) Mul(x, y float64) Intermediate {
	g := arch.BeginExact()
	r := x * y
	if g.Violated() {
		panic("engine: Exact.Mul was not exact (contract violation)")
	}
	return fromFloat(r)
}
