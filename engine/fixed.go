package engine

import "github.com/pfcm/mpfx/params"

// Fixed computes a multiply as a signed 64-bit integer product of the
// operands' minimal significands, sidestepping float64 rounding. The
// product is exact only when it fits in an int64; a larger product wraps
// around. It supports only Mul. Its
// Intermediate carries Fixed=true and the context must round it via
// RoundFixed, not Round.
type Fixed struct{}

func (Fixed) Mul(x, y float64) Intermediate {
	mx, ex := params.ToFixed(x)
	my, ey := params.ToFixed(y)
	m := mx * my
	return fromFixed(m, ex+ey)
}
