// Package softfloat stands in for the external software-floating-point
// libraries the SOFTFLOAT and FFLOAT engines delegate to. Neither a
// round-to-odd-native library nor a round-toward-zero one exists as a Go
// dependency anywhere in the retrieval pack this module was grounded on,
// so both engines share this single math/big.Float-backed implementation:
// it computes each primitive at a working precision comfortably above any
// supported target precision, then rounds the wide result down to a
// double with the LSB jammed to one whenever that rounding was inexact —
// the same "round toward zero, then force odd" recipe FFLOAT uses natively,
// which is observationally identical to SOFTFLOAT's native round-to-odd
// mode for every finite, non-overflowing input this library accepts.
package softfloat

import (
	"math"
	"math/big"
)

// workingPrec comfortably exceeds round_prec for every precision this
// library supports (p <= 53, round_prec = p + 2 <= 55): it is wide enough
// that the rounding performed here never itself introduces a second
// rounding step ahead of the kernel's own. Sums, differences and products
// of finite doubles, and the fused x*y+z (whose bits span at most 4197
// positions), are held exactly; quotients and square roots are rounded at
// this width, far finer than any gap to a neighbouring double.
const workingPrec = 4200

func roundOdd(z *big.Float) float64 {
	// SetMode must run before SetPrec: SetPrec rounds using z's mode at the
	// time it runs, and SetMode never retroactively re-rounds a value
	// already truncated under the default ToNearestEven.
	z.SetMode(big.ToZero)
	z.SetPrec(53)
	f, _ := z.Float64()
	if z.Acc() != big.Exact {
		f = jamOdd(f)
	}
	return f
}

func jamOdd(f float64) float64 {
	bits := math.Float64bits(f) | 1
	return math.Float64frombits(bits)
}

// Add returns x+y rounded to round-to-odd double precision.
func Add(x, y float64) float64 {
	bx := new(big.Float).SetPrec(workingPrec).SetFloat64(x)
	by := new(big.Float).SetPrec(workingPrec).SetFloat64(y)
	z := new(big.Float).SetPrec(workingPrec).Add(bx, by)
	return roundOdd(z)
}

// Sub returns x-y rounded to round-to-odd double precision.
func Sub(x, y float64) float64 {
	bx := new(big.Float).SetPrec(workingPrec).SetFloat64(x)
	by := new(big.Float).SetPrec(workingPrec).SetFloat64(y)
	z := new(big.Float).SetPrec(workingPrec).Sub(bx, by)
	return roundOdd(z)
}

// Mul returns x*y rounded to round-to-odd double precision.
func Mul(x, y float64) float64 {
	bx := new(big.Float).SetPrec(workingPrec).SetFloat64(x)
	by := new(big.Float).SetPrec(workingPrec).SetFloat64(y)
	z := new(big.Float).SetPrec(workingPrec).Mul(bx, by)
	return roundOdd(z)
}

// Div returns x/y rounded to round-to-odd double precision. y must be
// non-zero; callers are expected to have already special-cased div-by-zero.
func Div(x, y float64) float64 {
	bx := new(big.Float).SetPrec(workingPrec).SetFloat64(x)
	by := new(big.Float).SetPrec(workingPrec).SetFloat64(y)
	z := new(big.Float).SetPrec(workingPrec).Quo(bx, by)
	return roundOdd(z)
}

// Sqrt returns sqrt(x) rounded to round-to-odd double precision. x must be
// non-negative; callers are expected to have already special-cased
// negative inputs.
func Sqrt(x float64) float64 {
	bx := new(big.Float).SetPrec(workingPrec).SetFloat64(x)
	z := new(big.Float).SetPrec(workingPrec).Sqrt(bx)
	return roundOdd(z)
}

// Fma returns x*y+z, the product held at full working precision before the
// addition, rounded to round-to-odd double precision.
func Fma(x, y, z float64) float64 {
	bx := new(big.Float).SetPrec(workingPrec).SetFloat64(x)
	by := new(big.Float).SetPrec(workingPrec).SetFloat64(y)
	bz := new(big.Float).SetPrec(workingPrec).SetFloat64(z)
	p := new(big.Float).SetPrec(workingPrec).Mul(bx, by)
	s := new(big.Float).SetPrec(workingPrec).Add(p, bz)
	return roundOdd(s)
}
